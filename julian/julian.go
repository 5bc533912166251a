// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package julian provides conversions between Gregorian calendar dates
// and Julian Day Numbers using the integer arithmetic published by
// Fliegel and Van Flandern, together with helpers for fractional
// Julian Dates and time.Time values.
package julian

import (
	"math"
	"time"

	"cloudeng.io/datetime"
)

// FromGregorian returns the Julian Day Number for the given Gregorian
// calendar date. The Julian Day Number is the number of the julian day
// that begins at noon UT on the given date.
func FromGregorian(year, month, day int) int {
	return day - 32075 +
		1461*(year+4800+(month-14)/12)/4 +
		367*(month-2-(month-14)/12*12)/12 -
		3*((year+4900+(month-14)/12)/100)/4
}

// ToGregorian returns the Gregorian calendar date for the given Julian
// Day Number. It is the inverse of FromGregorian.
func ToGregorian(jdn int) (year, month, day int) {
	l := jdn + 68569
	n := 4 * l / 146097
	l = l - (146097*n+3)/4
	i := 4000 * (l + 1) / 1461001
	l = l - 1461*i/4 + 31
	j := 80 * l / 2447
	day = l - 2447*j/80
	l = j / 11
	month = j + 2 - 12*l
	year = 100*(n-49) + i + l
	return
}

// FromCalendarDate returns the Julian Day Number for the given
// calendar date.
func FromCalendarDate(cd datetime.CalendarDate) int {
	return FromGregorian(cd.Year(), int(cd.Month()), cd.Day())
}

// CalendarDateFromJDN returns the calendar date for the given Julian
// Day Number.
func CalendarDateFromJDN(jdn int) datetime.CalendarDate {
	y, m, d := ToGregorian(jdn)
	return datetime.NewCalendarDate(y, datetime.Month(m), d)
}

// FromTime returns the fractional Julian Date for the given time,
// which is converted to UTC first. Julian days begin at noon and hence
// midnight UT falls on a half day boundary.
func FromTime(t time.Time) float64 {
	t = t.UTC()
	jdn := FromGregorian(t.Year(), int(t.Month()), t.Day())
	frac := (float64(t.Hour())-12.0)/24.0 +
		float64(t.Minute())/1440.0 +
		(float64(t.Second())+float64(t.Nanosecond())/1e9)/86400.0
	return float64(jdn) + frac
}

// TimeFromJD returns the UTC time for the given fractional Julian
// Date, rounded to the nearest second.
func TimeFromJD(jd float64) time.Time {
	jdn := int(math.Floor(jd + 0.5))
	frac := jd + 0.5 - math.Floor(jd+0.5)
	y, m, d := ToGregorian(jdn)
	midnight := time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
	return midnight.Add(time.Duration(math.Round(frac*86400)) * time.Second)
}
