// SPDX-License-Identifier: GPL-3.0-or-later

package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/bchew/munin-mysql/cli"
	"github.com/bchew/munin-mysql/logger"
	"github.com/bchew/munin-mysql/mysql"
	"github.com/bchew/munin-mysql/pkg/executable"
	"github.com/bchew/munin-mysql/plugin"
)

var version = "devel"

func main() {
	opts := parseCLI()

	if opts.Version {
		fmt.Printf("%s, version: %s\n", executable.Name, version)
		return
	}

	if opts.Debug || os.Getenv("MUNIN_DEBUG") == "1" {
		logger.Level.Set(slog.LevelDebug)
	}

	log := logger.New()

	collr := mysql.New()
	if err := loadConfig(collr, opts.ConfigFile); err != nil {
		log.Errorf("failed to load configuration: %v", err)
		os.Exit(1)
	}
	applyEnv(collr)

	if executable.Instance != "" {
		log = log.With(slog.String("instance", executable.Instance))
	}

	p := plugin.New(plugin.Config{
		Name:        "mysql",
		Instance:    executable.Instance,
		DirtyConfig: os.Getenv("MUNIN_CAP_DIRTYCONFIG") == "1",
		Module:      collr,
		Out:         os.Stdout,
		Logger:      log,
	})

	os.Exit(p.Run(opts.Command))
}

func parseCLI() *cli.Option {
	opt, err := cli.Parse(os.Args)
	if err != nil {
		if cli.IsHelp(err) {
			os.Exit(0)
		}
		os.Exit(1)
	}

	return opt
}
