// SPDX-License-Identifier: GPL-3.0-or-later

package plugin

type (
	// Graph is one munin multigraph: graph-level attributes plus the data
	// sources drawn on it. ID is the bare graph name; the plugin prefixes it
	// with the plugin name and server instance on output.
	Graph struct {
		ID       string
		Title    string
		Args     string
		VLabel   string
		Category string
		Info     string
		Fields   Fields
	}

	Fields []Field

	// Field is one data source of a graph. ID doubles as the key into the
	// values map returned by Module.Collect.
	Field struct {
		ID       string
		Label    string
		Type     FieldType
		Draw     DrawType
		Min      string
		Negative string
		Info     string
	}
)

type FieldType string

const (
	Gauge  FieldType = "GAUGE"
	Derive FieldType = "DERIVE"
)

type DrawType string

const (
	Line1     DrawType = "LINE1"
	Line2     DrawType = "LINE2"
	Area      DrawType = "AREA"
	AreaStack DrawType = "AREASTACK"
)
