// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package solar computes the UTC times of solar events (sunrise,
// sunset, solar noon and the civil, nautical and astronomical dawn and
// dusk twilights) for a given calendar date and place. The underlying
// arithmetic is provided by cloudeng.io/solar/sunpos.
package solar

import (
	"fmt"
	"strings"

	"cloudeng.io/solar/sunpos"
)

// Class identifies the zenith angle definitions for which event times
// are requested. Classes form a bit set and may be or'ed together.
type Class int

const (
	// Official requests sunrise and sunset (zenith 90.8333 degrees).
	Official Class = 1 << iota
	// Civil requests civil dawn and dusk (zenith 96 degrees).
	Civil
	// Nautical requests nautical dawn and dusk (zenith 102 degrees).
	Nautical
	// Astronomical requests astronomical dawn and dusk (zenith 108 degrees).
	Astronomical
)

// All requests every class. Solar noon is derived whenever Official
// is requested.
const All = Official | Civil | Nautical | Astronomical

// classes in the order their events are computed.
var classes = []Class{Official, Civil, Nautical, Astronomical}

// Has returns true if the set c includes class cl.
func (c Class) Has(cl Class) bool {
	return c&cl != 0
}

// Zenith returns the zenith angle, in degrees, for a single class.
func (c Class) Zenith() float64 {
	switch c {
	case Official:
		return sunpos.ZenithOfficial
	case Civil:
		return sunpos.ZenithCivil
	case Nautical:
		return sunpos.ZenithNautical
	case Astronomical:
		return sunpos.ZenithAstronomical
	}
	panic(fmt.Sprintf("no zenith angle for class set %b", c))
}

func (c Class) String() string {
	if c == All {
		return "all"
	}
	names := []string{}
	for _, cl := range classes {
		if c.Has(cl) {
			switch cl {
			case Official:
				names = append(names, "official")
			case Civil:
				names = append(names, "civil")
			case Nautical:
				names = append(names, "nautical")
			case Astronomical:
				names = append(names, "astronomical")
			}
		}
	}
	return strings.Join(names, "|")
}

// ParseClass parses a class name, one of "official", "civil",
// "nautical", "astronomical" or "all".
func ParseClass(val string) (Class, error) {
	switch strings.ToLower(strings.TrimSpace(val)) {
	case "official":
		return Official, nil
	case "civil":
		return Civil, nil
	case "nautical":
		return Nautical, nil
	case "astronomical":
		return Astronomical, nil
	case "all":
		return All, nil
	}
	return 0, fmt.Errorf("invalid event class: %q", val)
}

// Event identifies a single computed solar event.
type Event int

const (
	Sunrise Event = iota
	Sunset
	SolarNoon
	CivilDawn
	CivilDusk
	NauticalDawn
	NauticalDusk
	AstronomicalDawn
	AstronomicalDusk
	numEvents
)

// Events returns all events in their canonical order.
func Events() []Event {
	evs := make([]Event, numEvents)
	for i := range evs {
		evs[i] = Event(i)
	}
	return evs
}

func (e Event) String() string {
	switch e {
	case Sunrise:
		return "sunrise"
	case Sunset:
		return "sunset"
	case SolarNoon:
		return "solar-noon"
	case CivilDawn:
		return "civil-dawn"
	case CivilDusk:
		return "civil-dusk"
	case NauticalDawn:
		return "nautical-dawn"
	case NauticalDusk:
		return "nautical-dusk"
	case AstronomicalDawn:
		return "astronomical-dawn"
	case AstronomicalDusk:
		return "astronomical-dusk"
	}
	return fmt.Sprintf("event(%d)", int(e))
}

// eventFor returns the event populated by the given class and
// direction, eg. Official/Rising is sunrise, Civil/Setting is civil
// dusk.
func eventFor(c Class, dir sunpos.Direction) Event {
	switch c {
	case Official:
		if dir == sunpos.Rising {
			return Sunrise
		}
		return Sunset
	case Civil:
		if dir == sunpos.Rising {
			return CivilDawn
		}
		return CivilDusk
	case Nautical:
		if dir == sunpos.Rising {
			return NauticalDawn
		}
		return NauticalDusk
	case Astronomical:
		if dir == sunpos.Rising {
			return AstronomicalDawn
		}
		return AstronomicalDusk
	}
	panic(fmt.Sprintf("no event for class set %b", c))
}
