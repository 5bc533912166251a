// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"cloudeng.io/datetime"
	"cloudeng.io/errors"
	"cloudeng.io/logging/ctxlog"
	"cloudeng.io/solar"
	"cloudeng.io/solar/astronomy"
)

type PlaceFlags struct {
	Config    string  `subcmd:"config,,YAML file of named places"`
	Place     string  `subcmd:"place,,name of a place in the config file; all places if empty"`
	Latitude  float64 `subcmd:"latitude,0,latitude in degrees north; used when no config is given"`
	Longitude float64 `subcmd:"longitude,0,longitude in degrees east; used when no config is given"`
	TimeZone  string  `subcmd:"timezone,UTC,time zone used to display event times when no config is given"`
}

type timesFlags struct {
	PlaceFlags
	Date    string `subcmd:"date,,date as YYYY-MM-DD; defaults to today"`
	Classes string `subcmd:"classes,all,space separated event classes: official civil nautical astronomical or all"`
}

type noonFlags struct {
	PlaceFlags
	Date string `subcmd:"date,,date as YYYY-MM-DD; defaults to today"`
}

func parseDate(val string) (datetime.CalendarDate, error) {
	t := time.Now()
	if val != "" {
		var err error
		if t, err = time.Parse("2006-01-02", val); err != nil {
			var none datetime.CalendarDate
			return none, err
		}
	}
	return datetime.NewCalendarDate(t.Year(), datetime.Month(t.Month()), t.Day()), nil
}

func parseClasses(val string) (solar.Class, error) {
	var set solar.Class
	for _, f := range strings.Fields(val) {
		c, err := solar.ParseClass(f)
		if err != nil {
			return 0, err
		}
		set |= c
	}
	if set == 0 {
		set = solar.All
	}
	return set, nil
}

// placesFromFlags returns the places to compute for, either from the
// config file or from the latitude/longitude flags.
func placesFromFlags(ctx context.Context, cl PlaceFlags) ([]placeConfig, error) {
	if cl.Config == "" {
		loc, err := time.LoadLocation(cl.TimeZone)
		if err != nil {
			return nil, err
		}
		return []placeConfig{{
			Name:      fmt.Sprintf("%v,%v", cl.Latitude, cl.Longitude),
			Latitude:  cl.Latitude,
			Longitude: cl.Longitude,
			location:  loc,
		}}, nil
	}
	cfg, err := configFromFile(ctx, cl.Config)
	if err != nil {
		return nil, err
	}
	ctxlog.Logger(ctx).Info("loaded places", "config", cl.Config, "places", len(cfg.Places))
	return cfg.lookup(cl.Place)
}

func times(ctx context.Context, values any, _ []string) error {
	cl := values.(*timesFlags)
	date, err := parseDate(cl.Date)
	if err != nil {
		return err
	}
	mask, err := parseClasses(cl.Classes)
	if err != nil {
		return err
	}
	places, err := placesFromFlags(ctx, cl.PlaceFlags)
	if err != nil {
		return err
	}
	errs := errors.M{}
	for _, p := range places {
		errs.Append(printTimes(date, p, mask))
	}
	return errs.Err()
}

func printTimes(date datetime.CalendarDate, p placeConfig, mask solar.Class) error {
	res, err := solar.Compute(solar.Request{
		Date: date, Place: p.place(), Classes: mask})
	if err != nil {
		return fmt.Errorf("%v: %w", p.Name, err)
	}
	fmt.Printf("%v: %v\n", p.Name, date)
	for _, ev := range solar.Events() {
		when, err := res.Lookup(ev)
		switch {
		case err == nil:
			fmt.Printf("  %-18s %v\n", ev, when.In(p.location).Format(time.RFC3339))
		case errors.Is(err, solar.ErrNotComputed):
		default:
			fmt.Printf("  %-18s %v\n", ev, err)
		}
	}
	return nil
}

func noon(ctx context.Context, values any, _ []string) error {
	cl := values.(*noonFlags)
	date, err := parseDate(cl.Date)
	if err != nil {
		return err
	}
	places, err := placesFromFlags(ctx, cl.PlaceFlags)
	if err != nil {
		return err
	}
	errs := errors.M{}
	for _, p := range places {
		sn := astronomy.ApparentSolarNoon(date, p.place())
		if sn.IsZero() {
			errs.Append(fmt.Errorf("%v: no solar noon on %v", p.Name, date))
			continue
		}
		fmt.Printf("%v: %v\n", p.Name, sn.Format(time.RFC3339))
	}
	return errs.Err()
}
