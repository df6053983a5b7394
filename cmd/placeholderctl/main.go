// Copyright 2016-2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

// Command placeholderctl is a command-line client for a
// JSONPlaceholder-compatible REST API, such as the public service or
// placeholderd.
//
//     placeholderctl posts list --user 1 --limit 3
//     placeholderctl posts create --user 1 --title hi --body there
//     placeholderctl comments 7
//     placeholderctl users get 1
//
// Commands that change data show a notification on standard error.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/benbjohnson/clock"
	"github.com/diffeo/go-placeholder/alert"
	"github.com/diffeo/go-placeholder/config"
	"github.com/diffeo/go-placeholder/restclient"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"
)

// ctl holds the state shared by all commands.
type ctl struct {
	Client *restclient.Client
	Alerts *alert.Store
	Out    io.Writer
	Err    io.Writer
	Clock  clock.Clock
	JSON   bool
	Linger bool

	hidden chan struct{}
}

// render writes visible notifications to c.Err, and signals c.hidden
// when one goes away.
func (c *ctl) render(state alert.State) {
	if state.Visible {
		fmt.Fprintf(c.Err, "[%s] %s\n", state.Severity, state.Message)
		return
	}
	select {
	case c.hidden <- struct{}{}:
	default:
	}
}

// finish waits for, or dismisses, any visible notification.
func (c *ctl) finish() {
	if c.Alerts == nil {
		return
	}
	if c.Linger && c.Alerts.State().Visible {
		<-c.hidden
		return
	}
	c.Alerts.Dismiss()
}

func newApp(c *ctl, clk clock.Clock) *cli.App {
	c.Clock = clk
	app := cli.NewApp()
	app.Name = "placeholderctl"
	app.Usage = "talk to a JSONPlaceholder-compatible REST API"
	app.Writer = c.Out
	app.ErrWriter = c.Err
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "config",
			Usage: "global configuration YAML file",
		},
		cli.StringFlag{
			Name:   "base-url",
			Value:  restclient.DefaultBaseURL,
			Usage:  "root URL of the REST API",
			EnvVar: "PLACEHOLDER_BASE_URL",
		},
		cli.DurationFlag{
			Name:  "timeout",
			Value: restclient.DefaultTimeout,
			Usage: "per-request timeout",
		},
		cli.DurationFlag{
			Name:  "alert-delay",
			Value: alert.DefaultDelay,
			Usage: "how long notifications stay visible",
		},
		cli.BoolFlag{
			Name:  "linger",
			Usage: "wait for notifications to hide before exiting",
		},
		cli.BoolFlag{
			Name:  "json",
			Usage: "print records as JSON",
		},
		cli.BoolFlag{
			Name:  "debug",
			Usage: "log every HTTP request",
		},
	}
	app.Commands = []cli.Command{
		postsCommand(c),
		commentsCommand(c),
		usersCommand(c),
		dateCommand(c),
	}
	app.Before = func(cc *cli.Context) error {
		cfg, err := config.Load(cc.String("config"))
		if err != nil {
			return err
		}
		if cc.IsSet("base-url") || cc.String("config") == "" {
			cfg.API.BaseURL = cc.String("base-url")
		}
		if cc.IsSet("timeout") || cc.String("config") == "" {
			cfg.API.Timeout = cc.Duration("timeout")
		}
		if cc.IsSet("alert-delay") || cc.String("config") == "" {
			cfg.Alert.Delay = cc.Duration("alert-delay")
		}

		logger := logrus.New()
		logger.Out = c.Err
		if cc.Bool("debug") {
			logger.Level = logrus.DebugLevel
		}
		c.Client, err = restclient.NewWithLogger(cfg.API, logger)
		if err != nil {
			return err
		}

		c.JSON = cc.Bool("json")
		c.Linger = cc.Bool("linger")
		c.hidden = make(chan struct{}, 1)
		c.Alerts = alert.NewWithClock(clk, cfg.Alert.Delay)
		c.Alerts.Subscribe(c.render)
		return nil
	}
	app.After = func(cc *cli.Context) error {
		c.finish()
		return nil
	}
	return app
}

func main() {
	c := &ctl{Out: os.Stdout, Err: os.Stderr}
	app := newApp(c, clock.New())
	if err := app.Run(os.Args); err != nil {
		logrus.WithFields(logrus.Fields{
			"err": err,
		}).Fatal("placeholderctl failed")
	}
}
