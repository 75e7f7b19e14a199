// SPDX-License-Identifier: GPL-3.0-or-later

package plugin

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testGraphs() []Graph {
	return []Graph{
		{
			ID:       "commands",
			Title:    "Command Counters",
			Args:     "--base 1000",
			VLabel:   "commands per ${graph_period}",
			Category: "mysql",
			Fields: Fields{
				{ID: "Com_select", Label: "Select", Type: Derive, Draw: AreaStack, Min: "0"},
				{ID: "Com_insert", Label: "Insert", Type: Derive, Draw: AreaStack, Min: "0"},
			},
		},
		{
			ID:    "innodb_io",
			Title: "InnoDB I/O",
			Fields: Fields{
				{ID: "io_read", Label: "File reads", Type: Derive, Min: "0"},
			},
		},
	}
}

func newTestPlugin(out *bytes.Buffer, mod *MockModule) *Plugin {
	return New(Config{
		Name:   "mysql",
		Module: mod,
		Out:    out,
	})
}

func TestPlugin_Run_config(t *testing.T) {
	out := &bytes.Buffer{}
	mod := &MockModule{GraphsFunc: testGraphs}

	code := newTestPlugin(out, mod).Run("config")

	require.Equal(t, 0, code)
	assert.True(t, mod.CleanupDone)
	assert.Equal(t, `multigraph mysql_commands
graph_title Command Counters
graph_args --base 1000
graph_vlabel commands per ${graph_period}
graph_category mysql
Com_select.label Select
Com_select.type DERIVE
Com_select.draw AREASTACK
Com_select.min 0
Com_insert.label Insert
Com_insert.type DERIVE
Com_insert.draw AREASTACK
Com_insert.min 0

multigraph mysql_innodb_io
graph_title InnoDB I/O
io_read.label File reads
io_read.type DERIVE
io_read.min 0

`, out.String())
}

func TestPlugin_Run_fetch(t *testing.T) {
	out := &bytes.Buffer{}
	mod := &MockModule{
		GraphsFunc: testGraphs,
		CollectFunc: func() map[string]string {
			return map[string]string{
				"Com_select": "100",
				"Com_insert": "7",
				// io_read deliberately missing
			}
		},
	}

	code := newTestPlugin(out, mod).Run("")

	require.Equal(t, 0, code)
	assert.True(t, mod.CleanupDone)
	assert.Equal(t, `multigraph mysql_commands
Com_select.value 100
Com_insert.value 7

multigraph mysql_innodb_io
io_read.value U

`, out.String())
}

func TestPlugin_Run_dirtyConfig(t *testing.T) {
	out := &bytes.Buffer{}
	mod := &MockModule{
		GraphsFunc: func() []Graph {
			return []Graph{{
				ID:     "innodb_io",
				Title:  "InnoDB I/O",
				Fields: Fields{{ID: "io_read", Label: "File reads"}},
			}}
		},
		CollectFunc: func() map[string]string {
			return map[string]string{"io_read": "332"}
		},
	}

	p := New(Config{Name: "mysql", Module: mod, Out: out, DirtyConfig: true})
	code := p.Run("config")

	require.Equal(t, 0, code)
	assert.Contains(t, out.String(), "graph_title InnoDB I/O\n")
	assert.Contains(t, out.String(), "io_read.value 332\n")
}

func TestPlugin_Run_instanceInGraphNames(t *testing.T) {
	out := &bytes.Buffer{}
	mod := &MockModule{GraphsFunc: testGraphs}

	p := New(Config{Name: "mysql", Instance: "db01", Module: mod, Out: out})
	code := p.Run("config")

	require.Equal(t, 0, code)
	assert.Contains(t, out.String(), "multigraph mysql_db01_commands\n")
	assert.Contains(t, out.String(), "multigraph mysql_db01_innodb_io\n")
}

func TestPlugin_Run_autoconf(t *testing.T) {
	t.Run("yes", func(t *testing.T) {
		out := &bytes.Buffer{}
		mod := &MockModule{}

		code := newTestPlugin(out, mod).Run("autoconf")

		require.Equal(t, 0, code)
		assert.Equal(t, "yes\n", out.String())
		assert.True(t, mod.CleanupDone)
	})

	t.Run("no", func(t *testing.T) {
		out := &bytes.Buffer{}
		mod := &MockModule{
			CheckFunc: func() error { return errors.New("connection refused") },
		}

		code := newTestPlugin(out, mod).Run("autoconf")

		require.Equal(t, 0, code, "autoconf reports, it does not fail")
		assert.Equal(t, "no (check failed: connection refused)\n", out.String())
	})
}

func TestPlugin_Run_failures(t *testing.T) {
	tests := map[string]struct {
		cmd string
		mod *MockModule
	}{
		"unknown command":    {cmd: "suggest", mod: &MockModule{}},
		"init fails":         {cmd: "", mod: &MockModule{FailOnInit: true}},
		"check fails":        {cmd: "", mod: &MockModule{CheckFunc: func() error { return errors.New("mock") }}},
		"collect returns nil": {cmd: "", mod: &MockModule{GraphsFunc: testGraphs}},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			out := &bytes.Buffer{}

			code := newTestPlugin(out, test.mod).Run(test.cmd)

			assert.Equal(t, 1, code)
			assert.True(t, test.mod.CleanupDone)
		})
	}
}
