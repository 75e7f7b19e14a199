// SPDX-License-Identifier: GPL-3.0-or-later

package mysql

import (
	"github.com/blang/semver/v4"
)

const (
	queryShowReplicaStatus   = "SHOW REPLICA STATUS;"
	queryShowSlaveStatus     = "SHOW SLAVE STATUS;"
	queryShowAllSlavesStatus = "SHOW ALL SLAVES STATUS;"
)

func (m *MySQL) collectSlaveStatus(mx map[string]string) error {
	// https://mariadb.com/docs/reference/es/sql-statements/SHOW_ALL_SLAVES_STATUS/
	mariaDBMinVer := semver.Version{Major: 10, Minor: 2, Patch: 0}
	mysqlMinVer := semver.Version{Major: 8, Minor: 0, Patch: 22}
	var q string
	if m.isMariaDB && m.version.GTE(mariaDBMinVer) {
		q = queryShowAllSlavesStatus
	} else if !m.isMariaDB && m.version.GTE(mysqlMinVer) {
		q = queryShowReplicaStatus
	} else {
		q = queryShowSlaveStatus
	}
	m.Debugf("executing query: '%s'", q)

	_, err := m.collectQuery(q, func(column, value string, _ bool) {
		switch column {
		case "Seconds_Behind_Master", "Seconds_Behind_Source":
			mx["seconds_behind_master"] = value
		case "Slave_SQL_Running", "Replica_SQL_Running":
			mx["slave_sql_running"] = convertSlaveRunning(value)
		case "Slave_IO_Running", "Replica_IO_Running":
			mx["slave_io_running"] = convertSlaveRunning(value)
		}
	})
	return err
}

func convertSlaveRunning(value string) string {
	// NOTE: There is 'Connecting' state and probably others
	switch value {
	case "Yes":
		return "1"
	default:
		return "0"
	}
}
