package models

import (
	"fmt"
	"strings"

	"github.com/recipath/recipath/services/mealplan/domain"
)

// Weekday is one of the seven plan slots. Slots are labels, not calendar
// dates: the plan is a template week, and "Monday" means every Monday.
type Weekday string

const (
	Monday    Weekday = "Monday"
	Tuesday   Weekday = "Tuesday"
	Wednesday Weekday = "Wednesday"
	Thursday  Weekday = "Thursday"
	Friday    Weekday = "Friday"
	Saturday  Weekday = "Saturday"
	Sunday    Weekday = "Sunday"
)

// Weekdays lists all seven days in display order, Monday first.
var Weekdays = [7]Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

// ParseWeekday matches s against the seven day labels case-insensitively.
func ParseWeekday(s string) (Weekday, error) {
	trimmed := strings.TrimSpace(s)
	for _, day := range Weekdays {
		if strings.EqualFold(trimmed, string(day)) {
			return day, nil
		}
	}
	return "", fmt.Errorf("%w: %q", domain.ErrInvalidWeekday, s)
}

func (d Weekday) String() string {
	return string(d)
}
