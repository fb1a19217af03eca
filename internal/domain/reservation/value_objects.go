package reservation

import (
	"errors"
	"time"
)

var (
	ErrInvalidStayRange = errors.New("check-in must be before check-out")
	ErrNegativeMoney    = errors.New("money cannot be negative")
)

// Money is an integer amount of cents.
type Money struct {
	cents int64
}

func NewMoney(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, ErrNegativeMoney
	}
	return Money{cents: cents}, nil
}

func ZeroMoney() Money {
	return Money{}
}

func (m Money) Cents() int64 {
	return m.cents
}

func (m Money) Add(other Money) Money {
	return Money{cents: m.cents + other.cents}
}

func (m Money) IsZero() bool {
	return m.cents == 0
}

// StayRange is a half-open [checkIn, checkOut) span of calendar dates.
type StayRange struct {
	checkIn  time.Time
	checkOut time.Time
}

func NewStayRange(checkIn, checkOut time.Time) (StayRange, error) {
	checkIn = truncateToDate(checkIn)
	checkOut = truncateToDate(checkOut)
	if !checkIn.Before(checkOut) {
		return StayRange{}, ErrInvalidStayRange
	}
	return StayRange{checkIn: checkIn, checkOut: checkOut}, nil
}

// SpanFromDates derives the aggregate stay range from the dates of live
// details: min(date) to max(date) plus one day. ok is false when there are no
// live details left.
func SpanFromDates(dates []time.Time) (StayRange, bool) {
	if len(dates) == 0 {
		return StayRange{}, false
	}

	minDate := truncateToDate(dates[0])
	maxDate := minDate
	for _, d := range dates[1:] {
		d = truncateToDate(d)
		if d.Before(minDate) {
			minDate = d
		}
		if d.After(maxDate) {
			maxDate = d
		}
	}

	return StayRange{checkIn: minDate, checkOut: maxDate.AddDate(0, 0, 1)}, true
}

func (r StayRange) CheckIn() time.Time {
	return r.checkIn
}

func (r StayRange) CheckOut() time.Time {
	return r.checkOut
}

func (r StayRange) Nights() int {
	return int(r.checkOut.Sub(r.checkIn).Hours() / 24)
}

// Dates lists every stay date in the range, check-out excluded.
func (r StayRange) Dates() []time.Time {
	dates := make([]time.Time, 0, r.Nights())
	for d := r.checkIn; d.Before(r.checkOut); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d)
	}
	return dates
}

func (r StayRange) Contains(date time.Time) bool {
	date = truncateToDate(date)
	return !date.Before(r.checkIn) && date.Before(r.checkOut)
}

func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// Comment is free-form text on a reservation.
type Comment struct {
	value string
}

func NewComment(value string) Comment {
	return Comment{value: value}
}

func (c Comment) String() string {
	return c.value
}

func (c Comment) IsEmpty() bool {
	return c.value == ""
}
