package importer

import (
	"fmt"

	"github.com/alexanderramin/cronpick/internal/cronexpr"
	"github.com/alexanderramin/cronpick/internal/domain"
)

// ValidateScheduleDocument checks the document for errors before any row is
// written. Returns a slice of all validation errors found.
func ValidateScheduleDocument(doc *ScheduleDocument) []error {
	var errs []error

	if doc.Version != 0 && doc.Version != SchemaVersion {
		errs = append(errs, fmt.Errorf("version: unsupported value %d (expected %d)", doc.Version, SchemaVersion))
	}
	if len(doc.Schedules) == 0 {
		errs = append(errs, fmt.Errorf("schedules: at least one schedule is required"))
	}

	names := make(map[string]bool)
	for i, s := range doc.Schedules {
		prefix := fmt.Sprintf("schedules[%d]", i)

		candidate := domain.Schedule{Name: s.Name}
		if err := candidate.ValidateName(); err != nil {
			errs = append(errs, fmt.Errorf("%s.name: %w", prefix, err))
		} else if names[s.Name] {
			errs = append(errs, fmt.Errorf("%s.name: duplicate name %q", prefix, s.Name))
		}
		names[s.Name] = true

		if s.Expression == "" {
			errs = append(errs, fmt.Errorf("%s.expression is required", prefix))
			continue
		}
		shape, err := cronexpr.Classify(s.Expression)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s.expression: %w", prefix, err))
			continue
		}
		if s.Shape != "" && s.Shape != shape.String() {
			errs = append(errs, fmt.Errorf("%s.shape: %q does not match expression shape %q", prefix, s.Shape, shape))
		}
	}

	return errs
}
