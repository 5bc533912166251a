// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package solar

import (
	"time"

	"cloudeng.io/datetime"
)

// Calculator computes and caches solar event times for a date and
// place. Results are retained until the date or place is changed, at
// which point every event reverts to absent until the next call to
// Calculate. Changing the requested classes does not invalidate
// previously computed events; a Calculate call only overwrites the
// events of the classes it was asked for.
//
// A Calculator is not safe for concurrent use; use one per goroutine
// or provide external synchronization.
type Calculator struct {
	date    datetime.CalendarDate
	place   datetime.Place
	classes Class
	result  Result
}

// NewCalculator returns a Calculator for the given date and place with
// all event classes requested. The date and place are validated as for
// Compute.
func NewCalculator(date datetime.CalendarDate, place datetime.Place) (*Calculator, error) {
	c := &Calculator{date: date, place: place, classes: All}
	if err := c.request().Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Calculator) request() Request {
	return Request{Date: c.date, Place: c.place, Classes: c.classes}
}

// SetDate changes the date, discarding any previously computed
// results.
func (c *Calculator) SetDate(date datetime.CalendarDate) error {
	r := c.request()
	r.Date = date
	if err := r.Validate(); err != nil {
		return err
	}
	c.date = date
	c.result = Result{}
	return nil
}

// SetPlace changes the place, discarding any previously computed
// results.
func (c *Calculator) SetPlace(place datetime.Place) error {
	r := c.request()
	r.Place = place
	if err := r.Validate(); err != nil {
		return err
	}
	c.place = place
	c.result = Result{}
	return nil
}

// SetClasses changes the set of classes computed by the next call to
// Calculate. Previously computed results are retained.
func (c *Calculator) SetClasses(classes Class) error {
	r := c.request()
	r.Classes = classes
	if err := r.Validate(); err != nil {
		return err
	}
	c.classes = classes
	return nil
}

// Calculate computes the event times for the currently requested
// classes. Events of classes that are not requested retain whatever
// value they last held. Calling Calculate repeatedly with unchanged
// inputs yields identical results.
func (c *Calculator) Calculate() {
	computeInto(c.request(), &c.result)
}

// Result returns a copy of the current results.
func (c *Calculator) Result() Result {
	return c.result
}

// Sunrise returns the time of official sunrise.
func (c *Calculator) Sunrise() (time.Time, error) {
	return c.result.Lookup(Sunrise)
}

// Sunset returns the time of official sunset.
func (c *Calculator) Sunset() (time.Time, error) {
	return c.result.Lookup(Sunset)
}

// SolarNoon returns the midpoint of official sunrise and sunset.
func (c *Calculator) SolarNoon() (time.Time, error) {
	return c.result.Lookup(SolarNoon)
}

// CivilDawn returns the start of civil twilight.
func (c *Calculator) CivilDawn() (time.Time, error) {
	return c.result.Lookup(CivilDawn)
}

// CivilDusk returns the end of civil twilight.
func (c *Calculator) CivilDusk() (time.Time, error) {
	return c.result.Lookup(CivilDusk)
}

// NauticalDawn returns the start of nautical twilight.
func (c *Calculator) NauticalDawn() (time.Time, error) {
	return c.result.Lookup(NauticalDawn)
}

// NauticalDusk returns the end of nautical twilight.
func (c *Calculator) NauticalDusk() (time.Time, error) {
	return c.result.Lookup(NauticalDusk)
}

// AstronomicalDawn returns the start of astronomical twilight.
func (c *Calculator) AstronomicalDawn() (time.Time, error) {
	return c.result.Lookup(AstronomicalDawn)
}

// AstronomicalDusk returns the end of astronomical twilight.
func (c *Calculator) AstronomicalDusk() (time.Time, error) {
	return c.result.Lookup(AstronomicalDusk)
}
