// Copyright 2015-2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

// Command placeholderd serves a JSONPlaceholder-compatible REST API
// from a local backend.  Point a client's base URL at it to work
// without the public service:
//
//     placeholderd -http :5980 -backend memory
//     placeholderctl --base-url http://localhost:5980 posts get 1
//
// The seeded data has the same shape as the public service: 10 users,
// 10 posts per user, and 5 comments per post.
package main

import (
	"flag"
	"os"
	"time"

	"github.com/diffeo/go-placeholder/backend"
	"github.com/diffeo/go-placeholder/config"
	"github.com/diffeo/go-placeholder/placeholder"
	"github.com/sirupsen/logrus"
)

func main() {
	defaults := config.Default()
	httpBind := flag.String("http", defaults.Server.Listen,
		"[ip]:port for HTTP REST interface")
	backend := backend.Backend{Implementation: "memory", Address: ""}
	flag.Var(&backend, "backend", "impl[:address] of the storage backend")
	configFile := flag.String("config", "", "global configuration YAML file")
	seedFile := flag.String("seed", "", "YAML file of records to load into an empty backend")
	logRequests := flag.Bool("log-requests", false, "log all requests")
	metricsInterval := flag.Duration("metrics-interval", 30*time.Second,
		"how often to refresh record counts for /metrics")
	flag.Parse()

	cfg, err := config.Load(*configFile)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"err":  err,
			"file": *configFile,
		}).Fatal("Could not load YAML configuration")
		return
	}

	// Explicit flags win over the configuration file.
	setFlags := map[string]bool{}
	flag.Visit(func(f *flag.Flag) { setFlags[f.Name] = true })
	if setFlags["http"] {
		cfg.Server.Listen = *httpBind
	}
	if setFlags["backend"] {
		cfg.Server.Backend = backend.String()
	} else if err = backend.Set(cfg.Server.Backend); err != nil {
		logrus.WithFields(logrus.Fields{
			"err":     err,
			"backend": cfg.Server.Backend,
		}).Fatal("Invalid backend in configuration")
		return
	}
	if setFlags["seed"] {
		cfg.Server.Seed = *seedFile
	}
	if setFlags["log-requests"] {
		cfg.Server.LogRequests = *logRequests
	}

	seed, err := loadSeed(cfg.Server.Seed)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"err":  err,
			"file": cfg.Server.Seed,
		}).Fatal("Could not load seed data")
		return
	}

	p, err := backend.Placeholder(seed)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"err":     err,
			"backend": backend.String(),
		}).Fatal("Could not create placeholder backend")
		return
	}

	var reqLogger *logrus.Logger
	if cfg.Server.LogRequests {
		stdlog := logrus.StandardLogger()
		reqLogger = &logrus.Logger{
			Out:       stdlog.Out,
			Formatter: stdlog.Formatter,
			Hooks:     stdlog.Hooks,
			Level:     logrus.InfoLevel,
		}
	}

	go observe(p, *metricsInterval)
	h := HTTP{
		placeholder: p,
		laddr:       cfg.Server.Listen,
		logger:      reqLogger,
	}
	logrus.WithFields(logrus.Fields{
		"http":    cfg.Server.Listen,
		"backend": backend.String(),
	}).Info("Serving")
	if err = h.Serve(); err != nil {
		logrus.WithFields(logrus.Fields{
			"err": err,
		}).Fatal("HTTP server failed")
	}
}

// loadSeed reads seed records from filename, or returns the built-in
// seed if filename is empty.
func loadSeed(filename string) (placeholder.Seed, error) {
	if filename == "" {
		return placeholder.DefaultSeed(), nil
	}
	f, err := os.Open(filename)
	if err != nil {
		return placeholder.Seed{}, err
	}
	defer f.Close()
	return placeholder.LoadSeed(f)
}
