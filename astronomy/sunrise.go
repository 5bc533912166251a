// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package astronomy provides calendar oriented astronomical
// calculations, including sunrise, sunset, twilight and solar noon
// times computed by cloudeng.io/solar, and solstice and equinox dates.
package astronomy

import (
	"time"

	"cloudeng.io/datetime"
	"cloudeng.io/solar"
)

// SunRiseAndSet returns the time of sunrise and sunset for the
// specified date and place. The returned times are in UTC. Zero times
// are returned for dates and latitudes for which the sun never rises
// or never sets.
func SunRiseAndSet(date datetime.CalendarDate, place datetime.Place) (rise, set time.Time) {
	res, err := solar.Compute(solar.Request{
		Date: date, Place: place, Classes: solar.Official})
	if err != nil {
		return
	}
	rise, _ = res.Lookup(solar.Sunrise)
	set, _ = res.Lookup(solar.Sunset)
	return
}

// Twilight returns the dawn and dusk times for the specified date,
// place and a single event class; solar.Official is accepted and
// returns sunrise and sunset. The returned times are in UTC. Zero
// times are returned for a class set that is not a single class and
// for dates and latitudes for which the sun never crosses the class's
// zenith angle.
func Twilight(date datetime.CalendarDate, place datetime.Place, class solar.Class) (dawn, dusk time.Time) {
	dawnEv, duskEv, ok := classEvents(class)
	if !ok {
		return
	}
	res, err := solar.Compute(solar.Request{
		Date: date, Place: place, Classes: class})
	if err != nil {
		return
	}
	dawn, _ = res.Lookup(dawnEv)
	dusk, _ = res.Lookup(duskEv)
	return
}

// classEvents returns the rising and setting events for a single
// class; ok is false for any other class set.
func classEvents(class solar.Class) (dawn, dusk solar.Event, ok bool) {
	switch class {
	case solar.Official:
		return solar.Sunrise, solar.Sunset, true
	case solar.Civil:
		return solar.CivilDawn, solar.CivilDusk, true
	case solar.Nautical:
		return solar.NauticalDawn, solar.NauticalDusk, true
	case solar.Astronomical:
		return solar.AstronomicalDawn, solar.AstronomicalDusk, true
	}
	return 0, 0, false
}
