package availability

import (
	"testing"

	"github.com/medibook/medibook/internal/platform/civil"
)

func TestWindowContains_HalfOpenInterval(t *testing.T) {
	w := &Window{Date: "2024-06-01", StartTime: "09:00", EndTime: "12:00"}

	cases := []struct {
		date string
		at   string
		want bool
	}{
		{"2024-06-01", "09:00", true}, // start minute is bookable
		{"2024-06-01", "10:30", true},
		{"2024-06-01", "11:59", true},
		{"2024-06-01", "12:00", false}, // end minute is not
		{"2024-06-01", "08:59", false},
		{"2024-06-01", "13:00", false},
		{"2024-06-02", "10:30", false}, // wrong date
	}
	for _, tc := range cases {
		if got := w.Contains(civil.Date(tc.date), civil.Clock(tc.at)); got != tc.want {
			t.Errorf("Contains(%s %s) = %v, want %v", tc.date, tc.at, got, tc.want)
		}
	}
}
