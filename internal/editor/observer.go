package editor

import (
	"io"
	"log/slog"
)

// ChangeSource says where a value change came from.
type ChangeSource string

const (
	SourceProgrammatic ChangeSource = "set_value"
	SourceUser         ChangeSource = "user"
)

// ChangeEvent describes an accepted or rejected value change.
type ChangeEvent struct {
	Source   ChangeSource
	Previous string
	Value    string
	Period   string
	Err      error
}

// Observer receives editor change events for logging.
type Observer interface {
	OnValueChange(event ChangeEvent)
}

// NoopObserver discards all events.
type NoopObserver struct{}

func (NoopObserver) OnValueChange(ChangeEvent) {}

type logObserver struct {
	logger *slog.Logger
}

// NewLogObserver writes change events to w as slog text records.
func NewLogObserver(w io.Writer) Observer {
	if w == nil {
		return NoopObserver{}
	}
	return &logObserver{
		logger: slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo})),
	}
}

func (o *logObserver) OnValueChange(event ChangeEvent) {
	attrs := []any{
		"source", string(event.Source),
		"period", event.Period,
		"previous", event.Previous,
	}
	if event.Err != nil {
		attrs = append(attrs, "error", event.Err.Error())
		o.logger.Warn("cron_value_rejected", attrs...)
		return
	}
	attrs = append(attrs, "value", event.Value)
	o.logger.Info("cron_value_changed", attrs...)
}
