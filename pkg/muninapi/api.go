// SPDX-License-Identifier: GPL-3.0-or-later

package muninapi

import (
	"bytes"
	"io"
)

// API implements the Munin plugin protocol, multigraph extension included.
// See: https://guide.munin-monitoring.org/en/latest/plugin/protocol.html
type API struct {
	io.Writer
}

var newLine = []byte("\n")

// New creates a new API instance writing protocol lines to w.
// Panics if the provided writer is nil.
func New(w io.Writer) *API {
	if w == nil {
		panic("writer cannot be nil")
	}
	return &API{w}
}

// MULTIGRAPH switches the current context to the named graph. All GRAPH,
// FIELD and VALUE lines that follow belong to it.
func (a *API) MULTIGRAPH(name string) {
	_, _ = a.Write([]byte("multigraph " + name + "\n"))
}

// GRAPH emits the graph_* attribute lines of the current graph.
func (a *API) GRAPH(opts GraphOpts) {
	var buf bytes.Buffer

	buf.WriteString("graph_title " + opts.Title + "\n")
	if opts.Args != "" {
		buf.WriteString("graph_args " + opts.Args + "\n")
	}
	if opts.VLabel != "" {
		buf.WriteString("graph_vlabel " + opts.VLabel + "\n")
	}
	if opts.Category != "" {
		buf.WriteString("graph_category " + opts.Category + "\n")
	}
	if opts.Info != "" {
		buf.WriteString("graph_info " + opts.Info + "\n")
	}
	if opts.Order != "" {
		buf.WriteString("graph_order " + opts.Order + "\n")
	}

	_, _ = buf.WriteTo(a)
}

// FIELD emits the attribute lines of one data source of the current graph.
func (a *API) FIELD(opts FieldOpts) {
	var buf bytes.Buffer

	buf.WriteString(opts.ID + ".label " + opts.Label + "\n")
	if opts.Type != "" {
		buf.WriteString(opts.ID + ".type " + opts.Type + "\n")
	}
	if opts.Draw != "" {
		buf.WriteString(opts.ID + ".draw " + opts.Draw + "\n")
	}
	if opts.Min != "" {
		buf.WriteString(opts.ID + ".min " + opts.Min + "\n")
	}
	if opts.Negative != "" {
		buf.WriteString(opts.ID + ".negative " + opts.Negative + "\n")
	}
	if opts.Info != "" {
		buf.WriteString(opts.ID + ".info " + opts.Info + "\n")
	}

	_, _ = buf.WriteTo(a)
}

// VALUE reports one fetched value of the current graph. Unknown values are
// reported as "U" per the protocol.
func (a *API) VALUE(id, value string) {
	if value == "" {
		value = "U"
	}
	_, _ = a.Write([]byte(id + ".value " + value + "\n"))
}

// AUTOCONFYES reports that the plugin can be enabled on this node.
func (a *API) AUTOCONFYES() {
	_, _ = a.Write([]byte("yes\n"))
}

// AUTOCONFNO reports that the plugin cannot be enabled, with the reason.
func (a *API) AUTOCONFNO(reason string) {
	_, _ = a.Write([]byte("no (" + reason + ")\n"))
}

// EMPTYLINE writes an empty line to the output.
func (a *API) EMPTYLINE() error {
	_, err := a.Write(newLine)
	return err
}
