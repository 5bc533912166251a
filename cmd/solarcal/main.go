// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Command solarcal prints solar event times, solstice/equinox dates
// and julian day conversions for dates and places.
package main

import (
	"context"
	"log/slog"
	"os"

	"cloudeng.io/cmdutil/subcmd"
	"cloudeng.io/logging/ctxlog"
)

var cmdSet *subcmd.CommandSet

func init() {
	timesCmd := subcmd.NewCommand("times",
		subcmd.MustRegisterFlagStruct(&timesFlags{}, nil, nil),
		times, subcmd.ExactlyNumArguments(0))
	timesCmd.Document(`print the times of solar events (sunrise/sunset and twilights) for a date and place.`)

	noonCmd := subcmd.NewCommand("noon",
		subcmd.MustRegisterFlagStruct(&noonFlags{}, nil, nil),
		noon, subcmd.ExactlyNumArguments(0))
	noonCmd.Document(`print the apparent solar noon for a date and place.`)

	seasonsCmd := subcmd.NewCommand("seasons",
		subcmd.MustRegisterFlagStruct(&seasonsFlags{}, nil, nil),
		seasons, subcmd.ExactlyNumArguments(0))
	seasonsCmd.Document(`print the solstice and equinox dates and the season date ranges for a year.`)

	julianCmd := subcmd.NewCommand("julian",
		subcmd.MustRegisterFlagStruct(&julianFlags{}, nil, nil),
		julianDays, subcmd.ExactlyNumArguments(0))
	julianCmd.Document(`convert between gregorian dates and julian day numbers.`)

	cmdSet = subcmd.NewCommandSet(timesCmd, noonCmd, seasonsCmd, julianCmd)
	cmdSet.Document(`solarcal prints the times of solar events such as sunrise,
sunset, the civil, nautical and astronomical twilights and solar noon
for a given date and place, as well as solstice/equinox dates and
julian day number conversions.`)
}

func main() {
	ctx := ctxlog.NewJSONLogger(context.Background(), os.Stderr,
		&slog.HandlerOptions{Level: slog.LevelWarn})
	cmdSet.MustDispatch(ctx)
}
