// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"strings"

	"cloudeng.io/datetime"
	"cloudeng.io/solar/astronomy"
	"cloudeng.io/solar/julian"
)

type julianFlags struct {
	Date string `subcmd:"date,,date as YYYY-MM-DD to convert to a julian day number"`
	JDN  int    `subcmd:"jdn,0,julian day number to convert to a date"`
}

func julianDays(_ context.Context, values any, _ []string) error {
	cl := values.(*julianFlags)
	if cl.JDN != 0 {
		y, m, d := julian.ToGregorian(cl.JDN)
		fmt.Printf("%v: %04d-%02d-%02d\n", cl.JDN, y, m, d)
		return nil
	}
	if cl.Date == "" {
		return fmt.Errorf("one of --date or --jdn must be specified")
	}
	date, err := parseDate(cl.Date)
	if err != nil {
		return err
	}
	fmt.Printf("%v: %v\n", cl.Date, julian.FromCalendarDate(date))
	return nil
}

type seasonsFlags struct {
	Year int `subcmd:"year,0,year to print the solstice and equinox dates for; defaults to the current year"`
}

func seasons(_ context.Context, values any, _ []string) error {
	cl := values.(*seasonsFlags)
	year := cl.Year
	if year == 0 {
		date, err := parseDate("")
		if err != nil {
			return err
		}
		year = date.Year()
	}
	fmt.Printf("spring equinox:  %v\n", astronomy.March(year))
	fmt.Printf("summer solstice: %v\n", astronomy.June(year))
	fmt.Printf("autumn equinox:  %v\n", astronomy.September(year))
	fmt.Printf("winter solstice: %v\n", astronomy.December(year))
	for _, season := range []datetime.DynamicDateRange{
		astronomy.Spring{}, astronomy.Summer{}, astronomy.Autumn{}, astronomy.Winter{},
	} {
		fmt.Printf("%-16s %v\n", strings.ToLower(season.Name())+":", season.Evaluate(year))
	}
	return nil
}
