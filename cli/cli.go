// SPDX-License-Identifier: GPL-3.0-or-later

package cli

import (
	"github.com/jessevdk/go-flags"

	"github.com/bchew/munin-mysql/pkg/executable"
)

// Option defines command line options.
type Option struct {
	// Command is the munin plugin command (config, autoconf or fetch);
	// munin passes it as the first positional argument, empty means fetch.
	Command string

	ConfigFile string `short:"c" long:"config" description:"configuration file path"`
	Debug      bool   `short:"d" long:"debug" description:"debug mode"`
	Version    bool   `short:"v" long:"version" description:"display the version and exit"`
}

// Parse returns parsed command-line flags in Option struct
func Parse(args []string) (*Option, error) {
	opt := &Option{}
	parser := flags.NewParser(opt, flags.Default)
	parser.Name = executable.Name
	parser.Usage = "[OPTIONS] [config|autoconf|fetch]"

	rest, err := parser.ParseArgs(args)
	if err != nil {
		return nil, err
	}

	if len(rest) > 1 {
		opt.Command = rest[1]
	}

	return opt, nil
}

func IsHelp(err error) bool {
	return flags.WroteHelp(err)
}
