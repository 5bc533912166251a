// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package astronomy_test

import (
	"testing"
	"time"

	"cloudeng.io/datetime"
	"cloudeng.io/solar"
	"cloudeng.io/solar/astronomy"
	"github.com/nathan-osman/go-sunrise"
)

// The almanac algorithm is accurate to a minute or two; allow a little
// more when comparing against the NOAA style calculation used by the
// go-sunrise package.
const tolerance = 5 * time.Minute

func within(t *testing.T, got, want time.Time, tolerance time.Duration) {
	t.Helper()
	if d := got.Sub(want); d < -tolerance || d > tolerance {
		t.Errorf("got %v, want %v (+- %v)", got, want, tolerance)
	}
}

func TestSunrise(t *testing.T) {
	// London: every event falls within the same UTC day as the date,
	// so the times can be compared as instants.
	place := datetime.Place{
		TimeLocation: time.UTC,
		Latitude:     51.5074,
		Longitude:    -0.1278}
	cd := datetime.NewCalendarDate(2024, 3, 15)
	rise, set := astronomy.SunRiseAndSet(cd, place)

	wantRise, wantSet := sunrise.SunriseSunset(
		place.Latitude, place.Longitude,
		cd.Year(), time.Month(cd.Month()), cd.Day())
	within(t, rise, wantRise, tolerance)
	within(t, set, wantSet, tolerance)

	sn := astronomy.ApparentSolarNoon(cd, place)
	within(t, sn, wantRise.Add(wantSet.Sub(wantRise)/2), tolerance)
}

func TestTwilight(t *testing.T) {
	place := datetime.Place{
		TimeLocation: time.UTC,
		Latitude:     51.5074,
		Longitude:    -0.1278}
	cd := datetime.NewCalendarDate(2024, 3, 15)
	rise, set := astronomy.SunRiseAndSet(cd, place)

	var prevDawn, prevDusk time.Time
	for _, class := range []solar.Class{
		solar.Civil, solar.Nautical, solar.Astronomical,
	} {
		dawn, dusk := astronomy.Twilight(cd, place, class)
		if dawn.IsZero() || dusk.IsZero() {
			t.Fatalf("%v: missing twilight", class)
		}
		if !dawn.Before(rise) || !dusk.After(set) {
			t.Errorf("%v: dawn %v / dusk %v not outside %v..%v", class, dawn, dusk, rise, set)
		}
		// Each class's twilight brackets the previous, narrower one.
		if !prevDawn.IsZero() && !dawn.Before(prevDawn) {
			t.Errorf("%v: dawn %v not before %v", class, dawn, prevDawn)
		}
		if !prevDusk.IsZero() && !dusk.After(prevDusk) {
			t.Errorf("%v: dusk %v not after %v", class, dusk, prevDusk)
		}
		prevDawn, prevDusk = dawn, dusk
	}
}

func TestTwilightClasses(t *testing.T) {
	place := datetime.Place{
		TimeLocation: time.UTC,
		Latitude:     51.5074,
		Longitude:    -0.1278}
	cd := datetime.NewCalendarDate(2024, 3, 15)

	// Official yields sunrise and sunset.
	rise, set := astronomy.SunRiseAndSet(cd, place)
	dawn, dusk := astronomy.Twilight(cd, place, solar.Official)
	if !dawn.Equal(rise) || !dusk.Equal(set) {
		t.Errorf("got %v, %v, want %v, %v", dawn, dusk, rise, set)
	}

	// Anything other than a single class yields zero times.
	for _, class := range []solar.Class{0, solar.Civil | solar.Nautical, solar.All} {
		if dawn, dusk := astronomy.Twilight(cd, place, class); !dawn.IsZero() || !dusk.IsZero() {
			t.Errorf("%v: got %v, %v, want zero times", class, dawn, dusk)
		}
	}
}

func TestCircumpolarZeroTimes(t *testing.T) {
	place := datetime.Place{
		TimeLocation: time.UTC,
		Latitude:     78,
		Longitude:    15}
	cd := datetime.NewCalendarDate(2024, 6, 20)
	rise, set := astronomy.SunRiseAndSet(cd, place)
	if !rise.IsZero() || !set.IsZero() {
		t.Errorf("got %v, %v, want zero times", rise, set)
	}
	if sn := astronomy.ApparentSolarNoon(cd, place); !sn.IsZero() {
		t.Errorf("got %v, want zero time", sn)
	}
}

func TestDynamicTimesOfDay(t *testing.T) {
	loc, _ := time.LoadLocation("America/Los_Angeles")
	place := datetime.Place{
		TimeLocation: loc,
		Latitude:     37.3229978,
		Longitude:    -122.0321823}
	cd := datetime.NewCalendarDate(2024, 1, 1)

	for _, tc := range []struct {
		dyn  datetime.DynamicTimeOfDay
		name string
	}{
		{astronomy.Sunrise{}, "Sunrise"},
		{astronomy.Sunset{}, "Sunset"},
		{astronomy.SolarNoon{}, "SolarNoon"},
		{astronomy.CivilDawn{}, "CivilDawn"},
		{astronomy.CivilDusk{}, "CivilDusk"},
		{astronomy.NauticalDawn{}, "NauticalDawn"},
		{astronomy.NauticalDusk{}, "NauticalDusk"},
		{astronomy.AstronomicalDawn{}, "AstronomicalDawn"},
		{astronomy.AstronomicalDusk{}, "AstronomicalDusk"},
	} {
		if got, want := tc.dyn.Name(), tc.name; got != want {
			t.Errorf("got %v, want %v", got, want)
		}
		if got := tc.dyn.Evaluate(cd, place); got == datetime.TimeOfDayFromTime(time.Time{}) {
			t.Errorf("%v: no time of day", tc.name)
		}
	}

	// The dynamic sunrise agrees with the underlying calculation.
	rise, _ := astronomy.SunRiseAndSet(cd, place)
	if got, want := (astronomy.Sunrise{}).Evaluate(cd, place), datetime.TimeOfDayFromTime(rise.In(loc)); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}
