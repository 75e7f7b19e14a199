// SPDX-License-Identifier: GPL-3.0-or-later

package main

import (
	"fmt"
	"os"

	godriver "github.com/go-sql-driver/mysql"
	"gopkg.in/yaml.v2"

	"github.com/bchew/munin-mysql/mysql"
)

const defaultConfigPath = "/etc/munin/munin-mysql.yaml"

// loadConfig fills the collector configuration from a yaml file. The default
// path is optional, a path given explicitly (flag or environment) is not.
func loadConfig(collr *mysql.MySQL, path string) error {
	explicit := true
	if path == "" {
		path = os.Getenv("MUNIN_MYSQL_CONFIG")
	}
	if path == "" {
		path, explicit = defaultConfigPath, false
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return nil
		}
		return err
	}

	if err := yaml.Unmarshal(data, &collr.Config); err != nil {
		return fmt.Errorf("'%s': %v", path, err)
	}
	return nil
}

// applyEnv applies the plugin-conf.d environment, which wins over the yaml
// file. The variable names follow the original wildcard plugin contract
// (env.mysqlconnection, env.mysqluser, env.mysqlpassword,
// env.mysqlconfigfile), with the connection given as a go-sql-driver DSN.
func applyEnv(collr *mysql.MySQL) {
	if v := os.Getenv("mysqlconnection"); v != "" {
		collr.DSN = v
	}
	if v := os.Getenv("mysqlconfigfile"); v != "" {
		collr.MyCNF = v
	}

	usr, pass := os.Getenv("mysqluser"), os.Getenv("mysqlpassword")
	if usr == "" && pass == "" {
		return
	}

	cfg, err := godriver.ParseDSN(collr.DSN)
	if err != nil {
		// Init reports the bad DSN with context.
		return
	}
	if usr != "" {
		cfg.User = usr
	}
	if pass != "" {
		cfg.Passwd = pass
	}
	collr.DSN = cfg.FormatDSN()
}
