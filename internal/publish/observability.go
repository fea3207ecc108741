package publish

import (
	"errors"
	"fmt"
	"io"
	"time"
)

// PublishEvent records the outcome of a single Publish call.
type PublishEvent struct {
	Value     string
	Status    int
	LatencyMs int64
	Success   bool
	Err       error
}

// Observer receives publish outcomes for logging.
type Observer interface {
	OnPublish(event PublishEvent)
}

// LogObserver writes publish events to an io.Writer, one line each.
type LogObserver struct {
	w io.Writer
}

// NewLogObserver creates an Observer that logs events to w.
func NewLogObserver(w io.Writer) *LogObserver {
	return &LogObserver{w: w}
}

func (o *LogObserver) OnPublish(event PublishEvent) {
	ts := time.Now().UTC().Format(time.RFC3339)
	status := "ok"
	if !event.Success {
		status = "err:" + errorCode(event.Err)
	}
	fmt.Fprintf(o.w, "[%s] cron_publish value=%q http_status=%d latency_ms=%d status=%s\n",
		ts, event.Value, event.Status, event.LatencyMs, status)
}

// NoopObserver discards all events.
type NoopObserver struct{}

func (NoopObserver) OnPublish(PublishEvent) {}

func errorCode(err error) string {
	switch {
	case err == nil:
		return "unknown"
	case errors.Is(err, ErrTimeout):
		return "timeout"
	case errors.Is(err, ErrUnavailable):
		return "unavailable"
	case errors.Is(err, ErrRejected):
		return "rejected"
	default:
		return "error"
	}
}
