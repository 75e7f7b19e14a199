// SPDX-License-Identifier: GPL-3.0-or-later

package mysql

import (
	"github.com/bchew/munin-mysql/mysql/innodbstatus"
)

// The version hint keeps the statement valid on pre-5.0 servers, which used
// SHOW INNODB STATUS without the ENGINE keyword.
const queryShowEngineInnoDBStatus = "SHOW /*!50000 ENGINE*/ INNODB STATUS;"

func (m *MySQL) collectInnoDBStatus(mx map[string]string) error {
	q := queryShowEngineInnoDBStatus
	m.Debugf("executing query: '%s'", q)

	var report string
	_, err := m.collectQuery(q, func(column, value string, _ bool) {
		if column == "Status" {
			report = value
		}
	})
	if err != nil {
		// Servers built without InnoDB answer with an error instead of a
		// report. Not a collection failure, there is just nothing to report.
		if innodbstatus.IsEngineDisabledMessage(err.Error()) {
			m.Info("innodb engine is unavailable on the server")
			return nil
		}
		return err
	}

	res, err := innodbstatus.Parse(report)
	if err != nil {
		return err
	}

	if res.Disabled {
		m.Info("innodb engine is disabled on the server")
		return nil
	}
	if res.Truncated && !m.warnedTruncated {
		m.Warning("innodb status report is truncated, some metrics may be missing")
		m.warnedTruncated = true
	}

	for name, value := range res.Metrics {
		mx[name] = value.String()
	}
	return nil
}
