// SPDX-License-Identifier: GPL-3.0-or-later

// Package plugin runs one collector module behind the Munin plugin protocol:
// it maps the argv command (autoconf, config, fetch) to the module lifecycle
// and renders graph definitions and fetched values on stdout.
package plugin

import (
	"github.com/bchew/munin-mysql/logger"
)

// Module is an interface that represents a collector module.
type Module interface {
	// Init does initialization.
	// If it returns error, the plugin run fails.
	Init() error

	// Check is called after Init.
	// If it returns error, the plugin run fails.
	Check() error

	// Graphs returns the graph definitions.
	Graphs() []Graph

	// Collect collects values for the graph data sources. Missing keys are
	// reported as unknown, not as errors.
	Collect() map[string]string

	// Cleanup releases acquired resources.
	Cleanup()

	GetBase() *Base
}

// Base is a helper struct. All modules should embed this struct.
type Base struct {
	*logger.Logger
}

func (b *Base) GetBase() *Base { return b }
