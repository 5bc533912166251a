// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package solar_test

import (
	"errors"
	"testing"
	"time"

	"cloudeng.io/datetime"
	"cloudeng.io/solar"
)

func newCalculator(t *testing.T) *solar.Calculator {
	t.Helper()
	c, err := solar.NewCalculator(
		datetime.NewCalendarDate(2024, 6, 20), place(37.77, -122.42))
	if err != nil {
		t.Fatal(err)
	}
	return c
}

func allEventTimes(t *testing.T, c *solar.Calculator) map[solar.Event]time.Time {
	t.Helper()
	out := map[solar.Event]time.Time{}
	for _, ev := range solar.Events() {
		if when, err := c.Result().Lookup(ev); err == nil {
			out[ev] = when
		}
	}
	return out
}

func TestCalculatorIdempotence(t *testing.T) {
	c := newCalculator(t)
	c.Calculate()
	first := allEventTimes(t, c)
	if len(first) != 9 {
		t.Fatalf("got %v events, want 9", len(first))
	}
	c.Calculate()
	second := allEventTimes(t, c)
	for ev, when := range first {
		if got, want := second[ev], when; !got.Equal(want) {
			t.Errorf("%v: got %v, want %v", ev, got, want)
		}
	}
}

func TestCalculatorInvalidation(t *testing.T) {
	c := newCalculator(t)
	c.Calculate()
	if _, err := c.Sunrise(); err != nil {
		t.Fatal(err)
	}

	if err := c.SetDate(datetime.NewCalendarDate(2024, 6, 21)); err != nil {
		t.Fatal(err)
	}
	for _, ev := range solar.Events() {
		if _, err := c.Result().Lookup(ev); !errors.Is(err, solar.ErrNotComputed) {
			t.Errorf("%v: got %v, want %v", ev, err, solar.ErrNotComputed)
		}
	}

	c.Calculate()
	if _, err := c.Sunset(); err != nil {
		t.Fatal(err)
	}
	if err := c.SetPlace(place(51.5, -0.12)); err != nil {
		t.Fatal(err)
	}
	if _, err := c.Sunset(); !errors.Is(err, solar.ErrNotComputed) {
		t.Errorf("got %v, want %v", err, solar.ErrNotComputed)
	}
}

func TestCalculatorMaskScoping(t *testing.T) {
	c := newCalculator(t)
	if err := c.SetClasses(solar.Civil); err != nil {
		t.Fatal(err)
	}
	c.Calculate()
	if _, err := c.CivilDawn(); err != nil {
		t.Fatal(err)
	}
	if _, err := c.CivilDusk(); err != nil {
		t.Fatal(err)
	}
	for _, ev := range []solar.Event{
		solar.Sunrise, solar.Sunset, solar.SolarNoon,
		solar.NauticalDawn, solar.NauticalDusk,
		solar.AstronomicalDawn, solar.AstronomicalDusk,
	} {
		if _, err := c.Result().Lookup(ev); !errors.Is(err, solar.ErrNotComputed) {
			t.Errorf("%v: got %v, want %v", ev, err, solar.ErrNotComputed)
		}
	}

	// Changing the classes does not discard the civil results, and a
	// subsequent calculation fills in the official events alongside
	// them.
	dawn, err := c.CivilDawn()
	if err != nil {
		t.Fatal(err)
	}
	if err := c.SetClasses(solar.Official); err != nil {
		t.Fatal(err)
	}
	if got, err := c.CivilDawn(); err != nil || !got.Equal(dawn) {
		t.Errorf("got %v, %v, want %v", got, err, dawn)
	}
	c.Calculate()
	if _, err := c.Sunrise(); err != nil {
		t.Fatal(err)
	}
	if got, err := c.CivilDawn(); err != nil || !got.Equal(dawn) {
		t.Errorf("got %v, %v, want %v", got, err, dawn)
	}
}

func TestCalculatorAccessors(t *testing.T) {
	c := newCalculator(t)
	c.Calculate()
	for _, accessor := range []func() (time.Time, error){
		c.Sunrise, c.Sunset, c.SolarNoon,
		c.CivilDawn, c.CivilDusk,
		c.NauticalDawn, c.NauticalDusk,
		c.AstronomicalDawn, c.AstronomicalDusk,
	} {
		when, err := accessor()
		if err != nil {
			t.Errorf("unexpected error: %v", err)
			continue
		}
		if when.IsZero() {
			t.Error("got zero time")
		}
	}
}

func TestCalculatorValidation(t *testing.T) {
	c := newCalculator(t)
	c.Calculate()
	if err := c.SetPlace(place(95, 0)); err == nil {
		t.Error("expected an error")
	}
	// A rejected mutation leaves the previous inputs and results
	// intact.
	if _, err := c.Sunrise(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := c.SetDate(datetime.NewCalendarDate(0, 1, 1)); err == nil {
		t.Error("expected an error")
	}
	if err := c.SetClasses(solar.Class(1 << 7)); err == nil {
		t.Error("expected an error")
	}
	if _, err := solar.NewCalculator(
		datetime.NewCalendarDate(2024, 6, 20), place(0, 300)); err == nil {
		t.Error("expected an error")
	}
}
