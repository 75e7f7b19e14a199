// SPDX-License-Identifier: GPL-3.0-or-later

package mysql

import (
	"fmt"
	"os/user"

	"gopkg.in/ini.v1"
)

// dsnFromFile builds a go-sql-driver DSN from the [client] section of a
// my.cnf style file. A socket wins over host/port, matching the mysql client.
func dsnFromFile(filename string) (string, error) {
	f, err := ini.Load(filename)
	if err != nil {
		return "", fmt.Errorf("error on loading '%s': %v", filename, err)
	}

	section, err := f.GetSection("client")
	if err != nil {
		return "", fmt.Errorf("no [client] section in '%s': %v", filename, err)
	}

	var (
		usr      = section.Key("user").String()
		password = section.Key("password").String()
		socket   = section.Key("socket").String()
		host     = section.Key("host").String()
		port     = section.Key("port").String()
		database = section.Key("database").String()
	)

	var dsn string

	if usr != "" {
		dsn = usr
	} else {
		dsn = getUser()
	}
	if password != "" {
		dsn += ":" + password
	}

	switch {
	case socket != "":
		dsn += "@unix(" + socket + ")/"
	case host != "" && port != "":
		dsn += "@tcp(" + host + ":" + port + ")/"
	case host != "":
		dsn += "@tcp(" + host + ":3306)/"
	case port != "":
		dsn += "@tcp(localhost:" + port + ")/"
	default:
		dsn += "@/"
	}

	return dsn + database, nil
}

func getUser() string {
	if usr, err := user.Current(); err == nil {
		return usr.Username
	}
	return ""
}
