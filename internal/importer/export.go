package importer

import "github.com/alexanderramin/cronpick/internal/domain"

// FromSchedules builds an exportable document from saved schedules,
// preserving their order.
func FromSchedules(schedules []*domain.Schedule) *ScheduleDocument {
	doc := &ScheduleDocument{
		Version:   SchemaVersion,
		Schedules: make([]ScheduleImport, 0, len(schedules)),
	}
	for _, s := range schedules {
		doc.Schedules = append(doc.Schedules, ScheduleImport{
			Name:       s.Name,
			Expression: s.Expression,
			Shape:      s.Shape,
		})
	}
	return doc
}
