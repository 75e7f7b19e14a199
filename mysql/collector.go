// SPDX-License-Identifier: GPL-3.0-or-later

// Package mysql collects the server metrics behind the munin graphs: global
// status counters, replication status and the parsed InnoDB status report.
package mysql

import (
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/blang/semver/v4"
	"github.com/go-sql-driver/mysql"
	_ "github.com/go-sql-driver/mysql"

	"github.com/bchew/munin-mysql/pkg/confopt"
	"github.com/bchew/munin-mysql/plugin"
)

func New() *MySQL {
	return &MySQL{
		Config: Config{
			DSN:     "root@tcp(localhost:3306)/",
			Timeout: confopt.Duration(time.Second),
		},

		doSlaveStatus:            true,
		doDisableSessionQueryLog: true,
	}
}

type Config struct {
	DSN     string           `yaml:"dsn"`
	MyCNF   string           `yaml:"my.cnf"`
	Timeout confopt.Duration `yaml:"timeout"`
}

type MySQL struct {
	plugin.Base
	Config `yaml:",inline"`

	db      *sql.DB
	safeDSN string

	version   *semver.Version
	isMariaDB bool
	isPercona bool

	doSlaveStatus            bool
	doDisableSessionQueryLog bool
	warnedTruncated          bool
}

func (m *MySQL) Init() error {
	if m.MyCNF != "" {
		dsn, err := dsnFromFile(m.MyCNF)
		if err != nil {
			return err
		}
		m.DSN = dsn
	}

	if m.DSN == "" {
		return errors.New("DSN not set")
	}

	cfg, err := mysql.ParseDSN(m.DSN)
	if err != nil {
		return err
	}

	cfg.Passwd = strings.Repeat("*", len(cfg.Passwd))
	m.safeDSN = cfg.FormatDSN()

	m.Debugf("using DSN [%s]", m.safeDSN)
	return nil
}

func (m *MySQL) Check() error {
	if m.db == nil {
		if err := m.openConnection(); err != nil {
			return err
		}
	}
	if m.version == nil {
		if err := m.collectVersion(); err != nil {
			return err
		}
	}
	return nil
}

func (m *MySQL) Graphs() []plugin.Graph {
	return graphs
}

func (m *MySQL) Collect() map[string]string {
	mx, err := m.collect()
	if err != nil {
		m.Error(err)
	}

	if len(mx) == 0 {
		return nil
	}
	return mx
}

func (m *MySQL) Cleanup() {
	if m.db == nil {
		return
	}
	if err := m.db.Close(); err != nil {
		m.Errorf("cleanup: error on closing the mysql database [%s]: %v", m.safeDSN, err)
	}
	m.db = nil
}
