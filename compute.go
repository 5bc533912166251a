// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package solar

import (
	"errors"
	"fmt"
	"math"
	"time"

	"cloudeng.io/datetime"
	"cloudeng.io/solar/sunpos"
)

// Request specifies the date, place and event classes for which event
// times are to be computed. It is a value type; Compute never modifies
// its argument.
type Request struct {
	Date    datetime.CalendarDate
	Place   datetime.Place
	Classes Class
}

// Validate returns an error if the request's latitude, longitude or
// date are out of range. Rejecting bad values here keeps NaNs out of
// the trigonometric pipeline.
func (r Request) Validate() error {
	lat, long := r.Place.Latitude, r.Place.Longitude
	if math.IsNaN(lat) || lat < -90 || lat > 90 {
		return fmt.Errorf("invalid latitude: %v", lat)
	}
	if math.IsNaN(long) || long < -180 || long > 180 {
		return fmt.Errorf("invalid longitude: %v", long)
	}
	if y := r.Date.Year(); y < 1 || y > 9999 {
		return fmt.Errorf("invalid year: %v", y)
	}
	if r.Classes&^All != 0 {
		return fmt.Errorf("invalid event class set: %b", r.Classes)
	}
	return nil
}

// ErrNotComputed is returned by Result.Lookup and the Calculator
// accessors for events that have not been computed, either because
// they were not requested or because the inputs changed since the last
// calculation.
var ErrNotComputed = errors.New("event not computed")

// outcome is the computed state of a single event: absent (the zero
// value), a concrete UTC time, or a circumpolar error.
type outcome struct {
	when time.Time
	err  error
}

// Result holds the computed event times for a single request. The
// zero value has every event absent.
type Result struct {
	events [numEvents]outcome
}

// Lookup returns the UTC time of the given event. It returns
// ErrNotComputed if the event was not requested or not yet computed,
// or sunpos.ErrNeverRises/sunpos.ErrNeverSets if the event does not
// occur on the requested date at the requested place.
func (r Result) Lookup(ev Event) (time.Time, error) {
	if ev < 0 || ev >= numEvents {
		return time.Time{}, fmt.Errorf("invalid event: %v", int(ev))
	}
	o := r.events[ev]
	if o.err != nil {
		return time.Time{}, o.err
	}
	if o.when.IsZero() {
		return time.Time{}, ErrNotComputed
	}
	return o.when, nil
}

// Compute calculates the event times for the requested classes and
// returns them in a Result. Events for classes that were not requested
// are left absent. It is a pure function of its argument.
func Compute(req Request) (Result, error) {
	if err := req.Validate(); err != nil {
		return Result{}, err
	}
	var res Result
	computeInto(req, &res)
	return res, nil
}

// pipeline holds the per-direction intermediate values that are shared
// by every event class: they depend only on the day, the longitude and
// the direction, not on the zenith angle.
type pipeline struct {
	t   float64 // approximate event time, fractional day of year
	l   float64 // true longitude, degrees
	ra  float64 // right ascension, hours
	lng float64 // longitude hour
}

func newPipeline(dayOfYear int, longitudeHour float64, dir sunpos.Direction) pipeline {
	t := sunpos.ApproxTime(dayOfYear, longitudeHour, dir)
	l := sunpos.TrueLongitude(sunpos.MeanAnomaly(t))
	return pipeline{t: t, l: l, ra: sunpos.RightAscension(l), lng: longitudeHour}
}

// eventOutcome computes a single event from the shared pipeline values
// for its direction.
func eventOutcome(date datetime.CalendarDate, p pipeline, latitude, zenith float64, dir sunpos.Direction) outcome {
	h, err := sunpos.LocalHourAngle(p.l, latitude, zenith, dir)
	if err != nil {
		return outcome{err: err}
	}
	ut := sunpos.ToUTC(sunpos.LocalMeanTime(h, p.ra, p.t), p.lng)
	return outcome{when: utcTime(date, ut)}
}

// computeInto overwrites the events of the requested classes in res,
// leaving all other events untouched.
func computeInto(req Request, res *Result) {
	dayOfYear := req.Date.Date().DayOfYear(req.Date.Year())
	longitudeHour := sunpos.LongitudeHour(req.Place.Longitude)
	rising := newPipeline(dayOfYear, longitudeHour, sunpos.Rising)
	setting := newPipeline(dayOfYear, longitudeHour, sunpos.Setting)
	for _, cl := range classes {
		if !req.Classes.Has(cl) {
			continue
		}
		zenith := cl.Zenith()
		res.events[eventFor(cl, sunpos.Rising)] = eventOutcome(
			req.Date, rising, req.Place.Latitude, zenith, sunpos.Rising)
		res.events[eventFor(cl, sunpos.Setting)] = eventOutcome(
			req.Date, setting, req.Place.Latitude, zenith, sunpos.Setting)
	}
	if req.Classes.Has(Official) {
		res.events[SolarNoon] = solarNoon(res.events[Sunrise], res.events[Sunset])
	}
}

// solarNoon is the midpoint of sunrise and sunset. Both events are
// anchored to the same UTC calendar day and hence sunset may be
// numerically earlier than sunrise for longitudes where the local day
// spans a UTC day boundary; the midpoint is taken over the actual day
// length in that case.
func solarNoon(rise, set outcome) outcome {
	if rise.err != nil {
		return outcome{err: rise.err}
	}
	if set.err != nil {
		return outcome{err: set.err}
	}
	s := set.when
	if s.Before(rise.when) {
		s = s.Add(24 * time.Hour)
	}
	return outcome{when: rise.when.Add(s.Sub(rise.when) / 2)}
}

// utcTime anchors a fractional UTC hour to the calendar day of the
// request, rounding to the nearest second.
func utcTime(date datetime.CalendarDate, hours float64) time.Time {
	h := int(hours)
	mf := (hours - float64(h)) * 60
	m := int(mf)
	s := int(math.Round((mf - float64(m)) * 60))
	// time.Date normalizes a 60th second into the next minute.
	return time.Date(date.Year(), time.Month(date.Month()), date.Day(), h, m, s, 0, time.UTC)
}
