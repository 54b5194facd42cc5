package models

import (
	"errors"
	"testing"

	"github.com/recipath/recipath/services/mealplan/domain"
)

func TestParseWeekday(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    Weekday
		wantErr bool
	}{
		{"canonical label", "Monday", Monday, false},
		{"lowercase", "friday", Friday, false},
		{"uppercase", "SUNDAY", Sunday, false},
		{"surrounding whitespace", "  Wednesday ", Wednesday, false},
		{"empty", "", "", true},
		{"abbreviation", "Mon", "", true},
		{"not a day", "Caturday", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseWeekday(tt.in)
			if tt.wantErr {
				if !errors.Is(err, domain.ErrInvalidWeekday) {
					t.Errorf("ParseWeekday(%q) error = %v, want ErrInvalidWeekday", tt.in, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseWeekday(%q) error = %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseWeekday(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestWeekdaysOrder(t *testing.T) {
	if Weekdays[0] != Monday || Weekdays[6] != Sunday {
		t.Errorf("Weekdays = %v, want Monday first and Sunday last", Weekdays)
	}
	seen := make(map[Weekday]bool, len(Weekdays))
	for _, d := range Weekdays {
		if seen[d] {
			t.Errorf("duplicate weekday %q", d)
		}
		seen[d] = true
	}
}
