package calendar

import "time"

// YearMonth identifies a single calendar month.
type YearMonth struct {
	Year  int
	Month time.Month
}

// MonthWindow enumerates the months covered by a scrape, from a starting month inclusive.
type MonthWindow struct {
	start  YearMonth
	length int
}

// NewMonthWindow builds a window beginning at the month containing startTime and spanning monthCount months.
func NewMonthWindow(startTime time.Time, monthCount int) MonthWindow {
	if monthCount < 1 {
		monthCount = 1
	}
	return MonthWindow{
		start:  YearMonth{Year: startTime.Year(), Month: startTime.Month()},
		length: monthCount,
	}
}

// Months returns the ordered list of months in the window.
func (window MonthWindow) Months() []YearMonth {
	months := make([]YearMonth, 0, window.length)
	currentYear := window.start.Year
	currentMonth := window.start.Month
	for monthIndex := 0; monthIndex < window.length; monthIndex++ {
		months = append(months, YearMonth{Year: currentYear, Month: currentMonth})
		if currentMonth == time.December {
			currentYear++
			currentMonth = time.January
		} else {
			currentMonth++
		}
	}
	return months
}
