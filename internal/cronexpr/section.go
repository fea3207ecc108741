package cronexpr

import "fmt"

// Section is a logical subdivision of an editing surface.
type Section int

const (
	SectionPeriod Section = iota
	SectionMinuteOfHour
	SectionHourOfDay
	SectionMinuteOfHourWithinDay
	SectionDayOfWeek
	SectionDayOfMonth
	SectionMonth
)

const sectionCount = 7

var sectionNames = [sectionCount]string{
	SectionPeriod:                "period",
	SectionMinuteOfHour:          "minuteOfHour",
	SectionHourOfDay:             "hourOfDay",
	SectionMinuteOfHourWithinDay: "minuteOfHourWithinDay",
	SectionDayOfWeek:             "dayOfWeek",
	SectionDayOfMonth:            "dayOfMonth",
	SectionMonth:                 "month",
}

// sectionFields maps each value-carrying section to its expression field.
var sectionFields = [sectionCount]Field{
	SectionMinuteOfHour:          FieldMinute,
	SectionHourOfDay:             FieldHour,
	SectionMinuteOfHourWithinDay: FieldMinute,
	SectionDayOfWeek:             FieldDayOfWeek,
	SectionDayOfMonth:            FieldDayOfMonth,
	SectionMonth:                 FieldMonth,
}

// Sections lists every section, period first.
var Sections = []Section{
	SectionPeriod,
	SectionMinuteOfHour,
	SectionHourOfDay,
	SectionMinuteOfHourWithinDay,
	SectionDayOfWeek,
	SectionDayOfMonth,
	SectionMonth,
}

// Valid reports whether s is a defined section.
func (s Section) Valid() bool {
	return s >= SectionPeriod && s <= SectionMonth
}

func (s Section) String() string {
	if !s.Valid() {
		return fmt.Sprintf("section(%d)", int(s))
	}
	return sectionNames[s]
}

// ParseSection maps a section name such as "dayOfWeek" to its Section.
func ParseSection(name string) (Section, error) {
	for _, s := range Sections {
		if sectionNames[s] == name {
			return s, nil
		}
	}
	return 0, fmt.Errorf("unknown section %q", name)
}

// Field returns the expression field edited by s. The period section edits
// no field and reports false.
func (s Section) Field() (Field, bool) {
	if !s.Valid() || s == SectionPeriod {
		return 0, false
	}
	return sectionFields[s], true
}

// primarySection returns the section that reports errors for f when no
// shape context is available.
func primarySection(f Field) Section {
	switch f {
	case FieldMinute:
		return SectionMinuteOfHourWithinDay
	case FieldHour:
		return SectionHourOfDay
	case FieldDayOfMonth:
		return SectionDayOfMonth
	case FieldMonth:
		return SectionMonth
	default:
		return SectionDayOfWeek
	}
}
