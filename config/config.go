// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

// Package config loads the optional YAML configuration file shared by
// the placeholder binaries.  A file might look like
//
//     api:
//       base_url: http://localhost:5980
//       timeout: 10s
//     alert:
//       delay: 3s
//     server:
//       listen: ":5980"
//       backend: memory
//       log_requests: true
//
// Every key is optional; missing keys keep the values from Default().
// Durations are Go duration strings.
package config

import (
	"io"
	"io/ioutil"
	"os"
	"time"

	"github.com/diffeo/go-placeholder/alert"
	"github.com/diffeo/go-placeholder/restclient"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v2"
)

// Config is the complete configuration.
type Config struct {
	API    restclient.Config `mapstructure:"api"`
	Alert  Alert             `mapstructure:"alert"`
	Server Server            `mapstructure:"server"`
}

// Alert configures the notification store.
type Alert struct {
	// Delay is how long a notification stays visible.
	Delay time.Duration `mapstructure:"delay"`
}

// Server configures placeholderd.
type Server struct {
	// Listen is the [ip]:port for the HTTP interface.
	Listen string `mapstructure:"listen"`

	// Backend is an impl[:address] storage description.
	Backend string `mapstructure:"backend"`

	// Seed names a YAML file of records to load at startup.  If
	// empty, the built-in seed data is used.
	Seed string `mapstructure:"seed"`

	// LogRequests logs every HTTP request.
	LogRequests bool `mapstructure:"log_requests"`
}

// Default returns the configuration used when there is no file.
func Default() Config {
	return Config{
		API:   restclient.DefaultConfig(),
		Alert: Alert{Delay: alert.DefaultDelay},
		Server: Server{
			Listen:  ":5980",
			Backend: "memory",
		},
	}
}

// Load reads a YAML configuration file.  An empty filename returns
// Default().
func Load(filename string) (Config, error) {
	if filename == "" {
		return Default(), nil
	}
	f, err := os.Open(filename)
	if err != nil {
		return Config{}, err
	}
	defer f.Close()
	return Read(f)
}

// Read decodes YAML configuration from r on top of Default().
func Read(r io.Reader) (Config, error) {
	result := Default()
	bytes, err := ioutil.ReadAll(r)
	if err != nil {
		return result, err
	}
	var raw map[string]interface{}
	if err = yaml.Unmarshal(bytes, &raw); err != nil {
		return result, err
	}
	if raw == nil {
		return result, nil
	}
	config := mapstructure.DecoderConfig{
		DecodeHook:       mapstructure.StringToTimeDurationHookFunc(),
		ErrorUnused:      true,
		WeaklyTypedInput: true,
		Result:           &result,
	}
	decoder, err := mapstructure.NewDecoder(&config)
	if err == nil {
		err = decoder.Decode(raw)
	}
	return result, err
}
