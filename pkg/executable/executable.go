// SPDX-License-Identifier: GPL-3.0-or-later

// Package executable resolves how the plugin binary was invoked. Munin runs
// wildcard plugins through symlinks ("mysql_db01" -> munin-mysql), and the
// part after the first underscore selects the server instance to monitor.
package executable

import (
	"os"
	"path/filepath"
	"strings"
)

var (
	Name      string
	Instance  string
	Directory string
)

func init() {
	path, err := os.Executable()
	if err != nil || path == "" {
		Name = "munin-mysql"
		return
	}

	_, Name = filepath.Split(path)

	if strings.HasSuffix(Name, ".test") {
		Name = "test"
	}

	if _, inst, ok := strings.Cut(Name, "_"); ok {
		Instance = inst
	}

	// FIXME: can't use logger because of circular import
	fi, err := os.Lstat(path)
	if err != nil {
		return
	}

	if fi.Mode()&os.ModeSymlink != 0 {
		realPath, err := filepath.EvalSymlinks(path)
		if err != nil {
			return
		}
		Directory = filepath.Dir(realPath)
	} else {
		Directory = filepath.Dir(path)
	}
}
