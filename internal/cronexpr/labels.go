package cronexpr

import (
	"fmt"
	"strconv"
)

var monthNames = [...]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

var dayNames = [...]string{
	"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday",
}

// Label returns the display text for value v of field f: zero-padded
// minutes and hours, ordinal days of month, English month and day names.
func Label(f Field, v int) string {
	if !f.Contains(v) {
		return strconv.Itoa(v)
	}
	switch f {
	case FieldMinute, FieldHour:
		return fmt.Sprintf("%02d", v)
	case FieldDayOfMonth:
		return strconv.Itoa(v) + ordinalSuffix(v)
	case FieldMonth:
		return monthNames[v-1]
	case FieldDayOfWeek:
		return dayNames[v]
	default:
		return strconv.Itoa(v)
	}
}

func ordinalSuffix(day int) string {
	switch day {
	case 1, 21, 31:
		return "st"
	case 2, 22:
		return "nd"
	case 3, 23:
		return "rd"
	default:
		return "th"
	}
}
