// SPDX-License-Identifier: GPL-3.0-or-later

package muninapi

// GraphOpts contains the graph-level attributes of one multigraph.
type GraphOpts struct {
	Title    string
	Args     string
	VLabel   string
	Category string
	Info     string
	Order    string
}

// FieldOpts contains the attributes of one data source.
type FieldOpts struct {
	ID       string
	Label    string
	Type     string
	Draw     string
	Min      string
	Negative string
	Info     string
}
