// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package astronomy

import (
	"time"

	"cloudeng.io/datetime"
	"cloudeng.io/solar"
)

func dynamicTimeOfDay(cd datetime.CalendarDate, place datetime.Place, class solar.Class, ev solar.Event) datetime.TimeOfDay {
	res, err := solar.Compute(solar.Request{
		Date: cd, Place: place, Classes: class})
	if err != nil {
		return datetime.TimeOfDayFromTime(time.Time{})
	}
	when, err := res.Lookup(ev)
	if err != nil {
		return datetime.TimeOfDayFromTime(time.Time{})
	}
	return datetime.TimeOfDayFromTime(when.In(place.TimeLocation))
}

// Sunrise implements datetime.DynamicTimeOfDay for official sunrise.
type Sunrise struct{}

func (s Sunrise) Name() string {
	return "Sunrise"
}

func (s Sunrise) Evaluate(cd datetime.CalendarDate, place datetime.Place) datetime.TimeOfDay {
	return dynamicTimeOfDay(cd, place, solar.Official, solar.Sunrise)
}

// Sunset implements datetime.DynamicTimeOfDay for official sunset.
type Sunset struct{}

func (s Sunset) Name() string {
	return "Sunset"
}

func (s Sunset) Evaluate(cd datetime.CalendarDate, place datetime.Place) datetime.TimeOfDay {
	return dynamicTimeOfDay(cd, place, solar.Official, solar.Sunset)
}

// CivilDawn implements datetime.DynamicTimeOfDay for the start of
// civil twilight.
type CivilDawn struct{}

func (c CivilDawn) Name() string {
	return "CivilDawn"
}

func (c CivilDawn) Evaluate(cd datetime.CalendarDate, place datetime.Place) datetime.TimeOfDay {
	return dynamicTimeOfDay(cd, place, solar.Civil, solar.CivilDawn)
}

// CivilDusk implements datetime.DynamicTimeOfDay for the end of
// civil twilight.
type CivilDusk struct{}

func (c CivilDusk) Name() string {
	return "CivilDusk"
}

func (c CivilDusk) Evaluate(cd datetime.CalendarDate, place datetime.Place) datetime.TimeOfDay {
	return dynamicTimeOfDay(cd, place, solar.Civil, solar.CivilDusk)
}

// NauticalDawn implements datetime.DynamicTimeOfDay for the start of
// nautical twilight.
type NauticalDawn struct{}

func (n NauticalDawn) Name() string {
	return "NauticalDawn"
}

func (n NauticalDawn) Evaluate(cd datetime.CalendarDate, place datetime.Place) datetime.TimeOfDay {
	return dynamicTimeOfDay(cd, place, solar.Nautical, solar.NauticalDawn)
}

// NauticalDusk implements datetime.DynamicTimeOfDay for the end of
// nautical twilight.
type NauticalDusk struct{}

func (n NauticalDusk) Name() string {
	return "NauticalDusk"
}

func (n NauticalDusk) Evaluate(cd datetime.CalendarDate, place datetime.Place) datetime.TimeOfDay {
	return dynamicTimeOfDay(cd, place, solar.Nautical, solar.NauticalDusk)
}

// AstronomicalDawn implements datetime.DynamicTimeOfDay for the start
// of astronomical twilight.
type AstronomicalDawn struct{}

func (a AstronomicalDawn) Name() string {
	return "AstronomicalDawn"
}

func (a AstronomicalDawn) Evaluate(cd datetime.CalendarDate, place datetime.Place) datetime.TimeOfDay {
	return dynamicTimeOfDay(cd, place, solar.Astronomical, solar.AstronomicalDawn)
}

// AstronomicalDusk implements datetime.DynamicTimeOfDay for the end of
// astronomical twilight.
type AstronomicalDusk struct{}

func (a AstronomicalDusk) Name() string {
	return "AstronomicalDusk"
}

func (a AstronomicalDusk) Evaluate(cd datetime.CalendarDate, place datetime.Place) datetime.TimeOfDay {
	return dynamicTimeOfDay(cd, place, solar.Astronomical, solar.AstronomicalDusk)
}
