package helpers

import (
	"fmt"
	"time"
)

const monthDayLayout = "01-02"

// IsMonthDay reports whether s is a calendar date written as MM-DD. February 29
// is accepted.
func IsMonthDay(s string) bool {
	_, err := time.Parse(monthDayLayout, s)
	return err == nil
}

// MonthDay formats t as MM-DD.
func MonthDay(t time.Time) string {
	return fmt.Sprintf("%02d-%02d", int(t.Month()), t.Day())
}

// InWindow reports whether the MM-DD value today lies in the inclusive window
// [from, to]. A window with from after to wraps through the end of the year.
// An open window (either bound nil) always matches.
func InWindow(from, to *string, today string) bool {
	if from == nil || to == nil {
		return true
	}
	if *from <= *to {
		return *from <= today && today <= *to
	}
	return today >= *from || today <= *to
}
