package service

import (
	"errors"
	"sort"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"quizhub/internal/model"
)

const dayPrefix = "day-"

// parseDayNumber reads the integer after the first "day-" in id. Like a
// lenient integer parse it skips leading whitespace, accepts a sign and stops
// at the first non-digit; ok is false when no digits were found. Values past
// the int range saturate at math.MaxInt or math.MinInt.
func parseDayNumber(id string) (n int, ok bool) {
	s := strings.TrimLeftFunc(strings.Replace(id, dayPrefix, "", 1), unicode.IsSpace)
	sign := ""
	if s != "" && (s[0] == '-' || s[0] == '+') {
		sign, s = s[:1], s[1:]
	}
	end := strings.IndexFunc(s, func(r rune) bool { return r < '0' || r > '9' })
	if end < 0 {
		end = len(s)
	}
	if end == 0 {
		return 0, false
	}
	// On ErrRange ParseInt returns the saturated value.
	v, err := strconv.ParseInt(sign+s[:end], 10, 0)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, false
	}
	return int(v), true
}

// sortDaysByNumber orders days ascending by their numeric suffix. Pairs where
// either side has no number compare as equal and keep their relative order.
func sortDaysByNumber(days []model.Day) {
	sort.SliceStable(days, func(i, j int) bool {
		a, okA := parseDayNumber(days[i].Day)
		b, okB := parseDayNumber(days[j].Day)
		if !okA || !okB {
			return false
		}
		return a < b
	})
}

// dayNumbers collects the sorted numbers of identifiers that start with "day-".
func dayNumbers(days []model.Day) []int {
	nums := []int{}
	for _, d := range days {
		if !strings.HasPrefix(d.Day, dayPrefix) {
			continue
		}
		if n, ok := parseDayNumber(d.Day); ok {
			nums = append(nums, n)
		}
	}
	sort.Ints(nums)
	return nums
}

// capitalize upper-cases the first character and leaves the rest untouched.
func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

func dayID(n int) string {
	return dayPrefix + strconv.Itoa(n)
}
