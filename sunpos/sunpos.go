// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package sunpos implements the closed form solar position arithmetic
// used to determine the time at which the sun crosses a given zenith
// angle, following the sunrise/sunset equation published in the
// Almanac for Computers (US Naval Observatory). The functions are
// stateless and are intended to be composed into a pipeline:
//
//	ApproxTime -> MeanAnomaly -> TrueLongitude -> RightAscension
//	-> LocalHourAngle -> LocalMeanTime -> ToUTC
//
// Angles passed between the functions are in degrees, times in
// fractional hours, matching the published form of the equations.
package sunpos

import (
	"errors"
	"math"

	"github.com/soniakeys/unit"
)

// Zenith angles, in degrees, for the commonly used rise and set
// definitions. The official zenith accounts for atmospheric refraction
// and the apparent radius of the solar disc.
const (
	ZenithOfficial     = 90.8333
	ZenithCivil        = 96.0
	ZenithNautical     = 102.0
	ZenithAstronomical = 108.0
)

// Direction selects whether the pipeline computes the rising (morning)
// or setting (evening) crossing of the zenith angle.
type Direction int

const (
	Rising Direction = iota
	Setting
)

func (d Direction) String() string {
	if d == Rising {
		return "rising"
	}
	return "setting"
}

var (
	// ErrNeverRises indicates that the sun does not climb above the
	// requested zenith angle on the given day at the given latitude.
	ErrNeverRises = errors.New("sun never rises")
	// ErrNeverSets indicates that the sun does not drop below the
	// requested zenith angle on the given day at the given latitude.
	ErrNeverSets = errors.New("sun never sets")
)

func sinDeg(d float64) float64 {
	return math.Sin(unit.AngleFromDeg(d).Rad())
}

func cosDeg(d float64) float64 {
	return math.Cos(unit.AngleFromDeg(d).Rad())
}

func tanDeg(d float64) float64 {
	return math.Tan(unit.AngleFromDeg(d).Rad())
}

// LongitudeHour returns the longitude expressed in hours, there being
// 15 degrees of longitude per hour of the earth's rotation.
func LongitudeHour(longitude float64) float64 {
	return longitude / 15.0
}

// ApproxTime returns the approximate time of the rising or setting
// event as a fractional day of the year, based on 6am local time for
// rising events and 6pm for setting ones.
func ApproxTime(dayOfYear int, longitudeHour float64, dir Direction) float64 {
	base := 6.0
	if dir == Setting {
		base = 18.0
	}
	return float64(dayOfYear) + (base-longitudeHour)/24.0
}

// MeanAnomaly returns the sun's mean anomaly, in degrees, for the
// approximate event time t returned by ApproxTime.
func MeanAnomaly(t float64) float64 {
	return 0.9856*t - 3.289
}

// TrueLongitude returns the sun's true ecliptic longitude, in degrees
// normalized to [0, 360), for the given mean anomaly in degrees.
func TrueLongitude(meanAnomaly float64) float64 {
	l := meanAnomaly +
		1.916*sinDeg(meanAnomaly) +
		0.020*sinDeg(2*meanAnomaly) +
		282.634
	return unit.PMod(l, 360)
}

// RightAscension returns the sun's right ascension, in hours, for the
// given true longitude in degrees. The arctangent collapses the
// quadrant of the longitude and so the result is shifted back into the
// same quadrant as the longitude before being converted to hours.
func RightAscension(trueLongitude float64) float64 {
	ra := unit.PMod(unit.Angle(math.Atan(0.91764*tanDeg(trueLongitude))).Deg(), 360)
	lQuadrant := math.Floor(trueLongitude/90.0) * 90.0
	raQuadrant := math.Floor(ra/90.0) * 90.0
	ra += lQuadrant - raQuadrant
	return ra / 15.0
}

// Declination returns the sine and cosine of the sun's declination for
// the given true longitude in degrees.
func Declination(trueLongitude float64) (sinDec, cosDec float64) {
	sinDec = 0.39782 * sinDeg(trueLongitude)
	cosDec = math.Cos(math.Asin(sinDec))
	return
}

// LocalHourAngle returns the sun's local hour angle, in hours, at
// which it crosses the given zenith angle (in degrees) at the given
// latitude (in degrees). ErrNeverRises is returned when the sun stays
// below the zenith angle for the entire day and ErrNeverSets when it
// stays above it; in either case there is no crossing to report.
func LocalHourAngle(trueLongitude, latitude, zenith float64, dir Direction) (float64, error) {
	sinDec, cosDec := Declination(trueLongitude)
	cosH := (cosDeg(zenith) - sinDec*sinDeg(latitude)) / (cosDec * cosDeg(latitude))
	switch {
	case cosH > 1:
		return 0, ErrNeverRises
	case cosH < -1:
		return 0, ErrNeverSets
	}
	h := unit.Angle(math.Acos(cosH)).Deg()
	if dir == Rising {
		h = 360.0 - h
	}
	return h / 15.0, nil
}

// LocalMeanTime returns the local mean time, in hours, of the event
// given its hour angle (hours), right ascension (hours) and the
// approximate event time t returned by ApproxTime.
func LocalMeanTime(hourAngle, rightAscension, t float64) float64 {
	return hourAngle + rightAscension - 0.06571*t - 6.622
}

// ToUTC converts a local mean time to UTC, in hours normalized
// to [0, 24).
func ToUTC(localMeanTime, longitudeHour float64) float64 {
	return unit.PMod(localMeanTime-longitudeHour, 24)
}
