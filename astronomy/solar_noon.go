// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package astronomy

import (
	"time"

	"cloudeng.io/datetime"
	"cloudeng.io/solar"
)

// ApparentSolarNoon returns the midpoint of sunrise and sunset for the
// specified date and place, in the place's time zone. The zero time is
// returned for dates and latitudes with no sunrise or sunset.
func ApparentSolarNoon(date datetime.CalendarDate, place datetime.Place) time.Time {
	res, err := solar.Compute(solar.Request{
		Date: date, Place: place, Classes: solar.Official})
	if err != nil {
		return time.Time{}
	}
	noon, err := res.Lookup(solar.SolarNoon)
	if err != nil {
		return time.Time{}
	}
	return noon.In(place.TimeLocation)
}

// SolarNoon implements datetime.DynamicTimeOfDay for the solar noon (aka Zenith).
type SolarNoon struct{}

func (s SolarNoon) Name() string {
	return "SolarNoon"
}

func (s SolarNoon) Evaluate(cd datetime.CalendarDate, place datetime.Place) datetime.TimeOfDay {
	return datetime.TimeOfDayFromTime(ApparentSolarNoon(cd, place))
}
