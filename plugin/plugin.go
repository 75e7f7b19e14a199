// SPDX-License-Identifier: GPL-3.0-or-later

package plugin

import (
	"fmt"
	"io"

	"github.com/bchew/munin-mysql/logger"
	"github.com/bchew/munin-mysql/pkg/muninapi"
)

// Config is the Plugin configuration.
type Config struct {
	// Name is the plugin name used as the graph name prefix.
	Name string
	// Instance is the server instance from the symlink name; empty for a
	// single-server setup.
	Instance string
	// DirtyConfig makes the config command also emit values, per the munin
	// dirtyconfig capability.
	DirtyConfig bool

	Module Module
	Out    io.Writer
	Logger *logger.Logger
}

// Plugin drives one module through a single munin plugin invocation.
type Plugin struct {
	*logger.Logger

	name        string
	instance    string
	dirtyConfig bool

	mod Module
	api *muninapi.API
}

// New creates a new Plugin and hands the logger down to the module.
func New(cfg Config) *Plugin {
	p := &Plugin{
		Logger:      cfg.Logger,
		name:        cfg.Name,
		instance:    cfg.Instance,
		dirtyConfig: cfg.DirtyConfig,
		mod:         cfg.Module,
		api:         muninapi.New(cfg.Out),
	}
	p.mod.GetBase().Logger = cfg.Logger
	return p
}

// Run executes one plugin command and returns the process exit code. An
// empty command means fetch.
func (p *Plugin) Run(cmd string) int {
	defer p.mod.Cleanup()

	switch cmd {
	case "autoconf":
		return p.autoconf()
	case "config":
		return p.config()
	case "", "fetch":
		return p.fetch()
	default:
		p.Errorf("unknown command '%s'", cmd)
		return 1
	}
}

func (p *Plugin) autoconf() int {
	// autoconf never fails the process: the answer is the diagnostic.
	if err := p.check(); err != nil {
		p.api.AUTOCONFNO(err.Error())
	} else {
		p.api.AUTOCONFYES()
	}
	return 0
}

func (p *Plugin) config() int {
	if err := p.mod.Init(); err != nil {
		p.Errorf("init failed: %v", err)
		return 1
	}

	for _, g := range p.mod.Graphs() {
		p.api.MULTIGRAPH(p.graphName(g))
		p.api.GRAPH(muninapi.GraphOpts{
			Title:    g.Title,
			Args:     g.Args,
			VLabel:   g.VLabel,
			Category: g.Category,
			Info:     g.Info,
		})
		for _, f := range g.Fields {
			p.api.FIELD(muninapi.FieldOpts{
				ID:       f.ID,
				Label:    f.Label,
				Type:     string(f.Type),
				Draw:     string(f.Draw),
				Min:      f.Min,
				Negative: f.Negative,
				Info:     f.Info,
			})
		}
		_ = p.api.EMPTYLINE()
	}

	if p.dirtyConfig {
		if err := p.mod.Check(); err != nil {
			p.Errorf("check failed: %v", err)
			return 1
		}
		return p.emitValues()
	}
	return 0
}

func (p *Plugin) fetch() int {
	if err := p.check(); err != nil {
		p.Errorf("%v", err)
		return 1
	}
	return p.emitValues()
}

func (p *Plugin) emitValues() int {
	mx := p.mod.Collect()
	if mx == nil {
		p.Error("collect returned nothing")
		return 1
	}

	for _, g := range p.mod.Graphs() {
		p.api.MULTIGRAPH(p.graphName(g))
		for _, f := range g.Fields {
			p.api.VALUE(f.ID, mx[f.ID])
		}
		_ = p.api.EMPTYLINE()
	}
	return 0
}

func (p *Plugin) check() error {
	if err := p.mod.Init(); err != nil {
		return fmt.Errorf("init failed: %v", err)
	}
	if err := p.mod.Check(); err != nil {
		return fmt.Errorf("check failed: %v", err)
	}
	return nil
}

func (p *Plugin) graphName(g Graph) string {
	if p.instance == "" {
		return p.name + "_" + g.ID
	}
	return p.name + "_" + p.instance + "_" + g.ID
}
