package service

import (
	"math"
	"testing"

	"quizhub/internal/model"
)

func TestParseDayNumber(t *testing.T) {
	tests := []struct {
		in     string
		want   int
		wantOK bool
	}{
		{"day-1", 1, true},
		{"day-42", 42, true},
		{"day-7b", 7, true},
		{"day- 3", 3, true},
		{"day--2", -2, true},
		{"12", 12, true},
		{"day-", 0, false},
		{"intro", 0, false},
		{"xday-3", 0, false},
		{"day-9223372036854775808", math.MaxInt, true},
		{"day-99999999999999999999999", math.MaxInt, true},
		{"day--99999999999999999999999", math.MinInt, true},
	}
	for _, tt := range tests {
		got, ok := parseDayNumber(tt.in)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("parseDayNumber(%q) = %d, %v; want %d, %v", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestDayNumbersSkipsNonConforming(t *testing.T) {
	days := []model.Day{{Day: "day-3"}, {Day: "intro"}, {Day: "day-1"}, {Day: "5"}, {Day: "day-x"}}
	got := dayNumbers(days)
	if len(got) != 2 || got[0] != 1 || got[1] != 3 {
		t.Fatalf("expected [1 3], got %v", got)
	}
}

func TestHugeDayNumbersStayOrdered(t *testing.T) {
	days := []model.Day{{Day: "day-2"}, {Day: "day-9223372036854775808"}, {Day: "day-1"}}
	sortDaysByNumber(days)
	if days[0].Day != "day-1" || days[1].Day != "day-2" || days[2].Day != "day-9223372036854775808" {
		t.Fatalf("unexpected order %v", days)
	}
	got := dayNumbers(days)
	if len(got) != 3 || got[0] != 1 || got[2] != math.MaxInt {
		t.Fatalf("expected [1 2 MaxInt], got %v", got)
	}
}

func TestCapitalize(t *testing.T) {
	tests := map[string]string{
		"html":       "Html",
		"javaScript": "JavaScript",
		"":           "",
		"école":      "École",
		"C":          "C",
	}
	for in, want := range tests {
		if got := capitalize(in); got != want {
			t.Errorf("capitalize(%q) = %q, want %q", in, got, want)
		}
	}
}
