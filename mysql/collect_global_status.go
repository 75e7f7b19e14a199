// SPDX-License-Identifier: GPL-3.0-or-later

package mysql

const queryShowGlobalStatus = "SHOW GLOBAL STATUS;"

func (m *MySQL) collectGlobalStatus(mx map[string]string) error {
	// MariaDB: https://mariadb.com/kb/en/server-status-variables/
	// MySQL: https://dev.mysql.com/doc/refman/8.0/en/server-status-variable-reference.html
	q := queryShowGlobalStatus
	m.Debugf("executing query: '%s'", q)

	var name string
	_, err := m.collectQuery(q, func(column, value string, _ bool) {
		switch column {
		case "Variable_name":
			name = value
		case "Value":
			if globalStatusKeys[name] {
				mx[name] = value
			}
		}
	})
	return err
}

// globalStatusKeys is the subset of status variables the graphs draw;
// everything else the server reports is dropped on the floor.
var globalStatusKeys = map[string]bool{
	"Aborted_connects":        true,
	"Bytes_received":          true,
	"Bytes_sent":              true,
	"Com_delete":              true,
	"Com_insert":              true,
	"Com_load":                true,
	"Com_replace":             true,
	"Com_select":              true,
	"Com_update":              true,
	"Connections":             true,
	"Created_tmp_disk_tables": true,
	"Created_tmp_files":       true,
	"Created_tmp_tables":      true,
	"Max_used_connections":    true,
	"Qcache_free_blocks":      true,
	"Qcache_free_memory":      true,
	"Qcache_hits":             true,
	"Qcache_inserts":          true,
	"Qcache_lowmem_prunes":    true,
	"Qcache_not_cached":       true,
	"Qcache_queries_in_cache": true,
	"Qcache_total_blocks":     true,
	"Slow_queries":            true,
	"Table_locks_immediate":   true,
	"Table_locks_waited":      true,
	"Threads_cached":          true,
	"Threads_connected":       true,
	"Threads_created":         true,
	"Threads_running":         true,
}
