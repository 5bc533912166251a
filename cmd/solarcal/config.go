// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"time"

	"cloudeng.io/cmdutil/cmdyaml"
	"cloudeng.io/datetime"
	"gopkg.in/yaml.v3"
)

// placeConfig names a place in the YAML config file, eg:
//
//	places:
//	  - name: home
//	    latitude: 37.77
//	    longitude: -122.42
//	    timezone: America/Los_Angeles
type placeConfig struct {
	Name      string  `yaml:"name"`
	Latitude  float64 `yaml:"latitude"`
	Longitude float64 `yaml:"longitude"`
	TimeZone  string  `yaml:"timezone"`
	location  *time.Location
}

// UnmarshalYAML resolves the timezone name as the config is parsed so
// that a bad name is reported against the config file rather than on
// first use. An empty timezone means UTC.
func (p *placeConfig) UnmarshalYAML(node *yaml.Node) error {
	type raw placeConfig
	var r raw
	if err := node.Decode(&r); err != nil {
		return err
	}
	*p = placeConfig(r)
	if p.Name == "" {
		return fmt.Errorf("place with no name")
	}
	if p.TimeZone == "" {
		p.location = time.UTC
		return nil
	}
	loc, err := time.LoadLocation(p.TimeZone)
	if err != nil {
		return fmt.Errorf("place %q: %w", p.Name, err)
	}
	p.location = loc
	return nil
}

func (p placeConfig) place() datetime.Place {
	return datetime.Place{
		TimeLocation: p.location,
		Latitude:     p.Latitude,
		Longitude:    p.Longitude,
	}
}

type config struct {
	Places []placeConfig `yaml:"places"`
}

func configFromFile(ctx context.Context, filename string) (config, error) {
	var cfg config
	if err := cmdyaml.ParseConfigFile(ctx, filename, &cfg); err != nil {
		return config{}, err
	}
	return cfg, nil
}

// lookup returns the named place, or all places if name is empty.
func (c config) lookup(name string) ([]placeConfig, error) {
	if name == "" {
		return c.Places, nil
	}
	for _, p := range c.Places {
		if p.Name == name {
			return []placeConfig{p}, nil
		}
	}
	return nil, fmt.Errorf("no such place: %q", name)
}
