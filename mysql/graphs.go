// SPDX-License-Identifier: GPL-3.0-or-later

package mysql

import (
	"github.com/bchew/munin-mysql/plugin"
)

// graphs holds every munin graph the plugin serves. Field IDs are the keys
// of the values map built by collect(); a key absent from a fetch is drawn
// as unknown.
var graphs = []plugin.Graph{
	{
		ID:       "network_traffic",
		Title:    "Network Traffic",
		Args:     "--base 1024",
		VLabel:   "bytes received (-) / sent (+) per ${graph_period}",
		Category: "mysql",
		Fields: plugin.Fields{
			{ID: "Bytes_received", Label: "Received", Type: plugin.Derive, Draw: plugin.Line2, Min: "0"},
			{ID: "Bytes_sent", Label: "Sent", Type: plugin.Derive, Draw: plugin.Line2, Min: "0", Negative: "Bytes_received"},
		},
	},
	{
		ID:       "commands",
		Title:    "Command Counters",
		Args:     "--base 1000",
		VLabel:   "commands per ${graph_period}",
		Category: "mysql",
		Fields: plugin.Fields{
			{ID: "Com_select", Label: "Select", Type: plugin.Derive, Draw: plugin.AreaStack, Min: "0"},
			{ID: "Com_insert", Label: "Insert", Type: plugin.Derive, Draw: plugin.AreaStack, Min: "0"},
			{ID: "Com_update", Label: "Update", Type: plugin.Derive, Draw: plugin.AreaStack, Min: "0"},
			{ID: "Com_delete", Label: "Delete", Type: plugin.Derive, Draw: plugin.AreaStack, Min: "0"},
			{ID: "Com_replace", Label: "Replace", Type: plugin.Derive, Draw: plugin.AreaStack, Min: "0"},
			{ID: "Com_load", Label: "Load", Type: plugin.Derive, Draw: plugin.AreaStack, Min: "0"},
		},
	},
	{
		ID:       "connections",
		Title:    "Connections",
		Args:     "--base 1000",
		VLabel:   "connections per ${graph_period}",
		Category: "mysql",
		Fields: plugin.Fields{
			{ID: "Connections", Label: "New connections", Type: plugin.Derive, Min: "0"},
			{ID: "Aborted_connects", Label: "Aborted connects", Type: plugin.Derive, Min: "0"},
			{ID: "Threads_connected", Label: "Connected", Type: plugin.Gauge, Min: "0"},
			{ID: "Max_used_connections", Label: "Max used", Type: plugin.Gauge, Min: "0"},
		},
	},
	{
		ID:       "qcache",
		Title:    "Query Cache",
		Args:     "--base 1000",
		VLabel:   "queries per ${graph_period}",
		Category: "mysql",
		Fields: plugin.Fields{
			{ID: "Qcache_hits", Label: "Cache hits", Type: plugin.Derive, Min: "0"},
			{ID: "Qcache_inserts", Label: "Inserts", Type: plugin.Derive, Min: "0"},
			{ID: "Qcache_not_cached", Label: "Not cached", Type: plugin.Derive, Min: "0"},
			{ID: "Qcache_lowmem_prunes", Label: "Low-memory prunes", Type: plugin.Derive, Min: "0"},
			{ID: "Qcache_queries_in_cache", Label: "Queries in cache", Type: plugin.Gauge, Min: "0"},
		},
	},
	{
		ID:       "qcache_mem",
		Title:    "Query Cache Memory",
		Args:     "--base 1024 --lower-limit 0",
		VLabel:   "bytes",
		Category: "mysql",
		Fields: plugin.Fields{
			{ID: "Qcache_free_memory", Label: "Free memory", Type: plugin.Gauge, Draw: plugin.Area, Min: "0"},
		},
	},
	{
		ID:       "qcache_blocks",
		Title:    "Query Cache Blocks",
		Args:     "--base 1000 --lower-limit 0",
		VLabel:   "blocks",
		Category: "mysql",
		Fields: plugin.Fields{
			{ID: "Qcache_total_blocks", Label: "Total blocks", Type: plugin.Gauge, Min: "0"},
			{ID: "Qcache_free_blocks", Label: "Free blocks", Type: plugin.Gauge, Min: "0"},
		},
	},
	{
		ID:       "slow",
		Title:    "Slow Queries",
		Args:     "--base 1000",
		VLabel:   "queries per ${graph_period}",
		Category: "mysql",
		Fields: plugin.Fields{
			{ID: "Slow_queries", Label: "Slow queries", Type: plugin.Derive, Min: "0"},
		},
	},
	{
		ID:       "table_locks",
		Title:    "Table Locks",
		Args:     "--base 1000",
		VLabel:   "locks per ${graph_period}",
		Category: "mysql",
		Fields: plugin.Fields{
			{ID: "Table_locks_immediate", Label: "Immediate", Type: plugin.Derive, Min: "0"},
			{ID: "Table_locks_waited", Label: "Waited", Type: plugin.Derive, Min: "0"},
		},
	},
	{
		ID:       "tmp_tables",
		Title:    "Temporary Objects",
		Args:     "--base 1000",
		VLabel:   "objects per ${graph_period}",
		Category: "mysql",
		Fields: plugin.Fields{
			{ID: "Created_tmp_tables", Label: "Tmp tables", Type: plugin.Derive, Min: "0"},
			{ID: "Created_tmp_disk_tables", Label: "Tmp disk tables", Type: plugin.Derive, Min: "0"},
			{ID: "Created_tmp_files", Label: "Tmp files", Type: plugin.Derive, Min: "0"},
		},
	},
	{
		ID:       "threads",
		Title:    "Threads",
		Args:     "--base 1000",
		VLabel:   "threads",
		Category: "mysql",
		Fields: plugin.Fields{
			{ID: "Threads_running", Label: "Running", Type: plugin.Gauge, Min: "0"},
			{ID: "Threads_connected", Label: "Connected", Type: plugin.Gauge, Min: "0"},
			{ID: "Threads_cached", Label: "Cached", Type: plugin.Gauge, Min: "0"},
			{ID: "Threads_created", Label: "Created", Type: plugin.Derive, Min: "0"},
		},
	},
	{
		ID:       "replication",
		Title:    "Replication",
		Args:     "--base 1000",
		VLabel:   "seconds / state",
		Category: "mysql",
		Fields: plugin.Fields{
			{ID: "slave_io_running", Label: "Slave IO running", Type: plugin.Gauge, Min: "0"},
			{ID: "slave_sql_running", Label: "Slave SQL running", Type: plugin.Gauge, Min: "0"},
			{ID: "seconds_behind_master", Label: "Seconds behind master", Type: plugin.Gauge, Min: "0"},
		},
	},
	{
		ID:       "innodb_bpool",
		Title:    "InnoDB Buffer Pool",
		Args:     "--base 1000 --lower-limit 0",
		VLabel:   "pages",
		Category: "mysql",
		Fields: plugin.Fields{
			{ID: "bpool_size", Label: "Buffer pool size", Type: plugin.Gauge, Draw: plugin.Area, Min: "0"},
			{ID: "bpool_dbpages", Label: "Database pages", Type: plugin.Gauge, Draw: plugin.Area, Min: "0"},
			{ID: "bpool_free", Label: "Free pages", Type: plugin.Gauge, Min: "0"},
			{ID: "bpool_modpages", Label: "Modified pages", Type: plugin.Gauge, Min: "0"},
		},
	},
	{
		ID:       "innodb_bpool_act",
		Title:    "InnoDB Buffer Pool Activity",
		Args:     "--base 1000",
		VLabel:   "pages per ${graph_period}",
		Category: "mysql",
		Fields: plugin.Fields{
			{ID: "bpool_read", Label: "Pages read", Type: plugin.Derive, Min: "0"},
			{ID: "bpool_created", Label: "Pages created", Type: plugin.Derive, Min: "0"},
			{ID: "bpool_written", Label: "Pages written", Type: plugin.Derive, Min: "0"},
		},
	},
	{
		ID:       "innodb_io",
		Title:    "InnoDB I/O",
		Args:     "--base 1000",
		VLabel:   "operations per ${graph_period}",
		Category: "mysql",
		Fields: plugin.Fields{
			{ID: "io_read", Label: "File reads", Type: plugin.Derive, Min: "0"},
			{ID: "io_write", Label: "File writes", Type: plugin.Derive, Min: "0"},
			{ID: "io_fsync", Label: "File fsyncs", Type: plugin.Derive, Min: "0"},
			{ID: "io_log", Label: "Log I/Os", Type: plugin.Derive, Min: "0"},
		},
	},
	{
		ID:       "innodb_io_pend",
		Title:    "InnoDB Pending I/O",
		Args:     "--base 1000 --lower-limit 0",
		VLabel:   "operations",
		Category: "mysql",
		Fields: plugin.Fields{
			{ID: "iop_aioread", Label: "AIO reads", Type: plugin.Gauge, Min: "0"},
			{ID: "iop_aiowrite", Label: "AIO writes", Type: plugin.Gauge, Min: "0"},
			{ID: "iop_ibuf_aio", Label: "Insert buffer AIO reads", Type: plugin.Gauge, Min: "0"},
			{ID: "iop_log", Label: "Log I/Os", Type: plugin.Gauge, Min: "0"},
			{ID: "iop_sync", Label: "Sync I/Os", Type: plugin.Gauge, Min: "0"},
			{ID: "iop_flush_log", Label: "Log flushes", Type: plugin.Gauge, Min: "0"},
			{ID: "iop_flush_bpool", Label: "Buffer pool flushes", Type: plugin.Gauge, Min: "0"},
		},
	},
	{
		ID:       "innodb_insert_buf",
		Title:    "InnoDB Insert Buffer",
		Args:     "--base 1000",
		VLabel:   "activity per ${graph_period}",
		Category: "mysql",
		Fields: plugin.Fields{
			{ID: "ibuf_inserts", Label: "Inserts", Type: plugin.Derive, Min: "0"},
			{ID: "ibuf_merged_rec", Label: "Merged records", Type: plugin.Derive, Min: "0"},
			{ID: "ibuf_merges", Label: "Merges", Type: plugin.Derive, Min: "0"},
		},
	},
	{
		ID:       "innodb_insert_buf_size",
		Title:    "InnoDB Insert Buffer Size",
		Args:     "--base 1000 --lower-limit 0",
		VLabel:   "pages",
		Category: "mysql",
		Fields: plugin.Fields{
			{ID: "ibuf_size", Label: "Size", Type: plugin.Gauge, Min: "0"},
			{ID: "ibuf_free_len", Label: "Free list length", Type: plugin.Gauge, Min: "0"},
			{ID: "ibuf_seg_size", Label: "Segment size", Type: plugin.Gauge, Min: "0"},
		},
	},
	{
		ID:       "innodb_log",
		Title:    "InnoDB Log",
		Args:     "--base 1024",
		VLabel:   "bytes per ${graph_period}",
		Category: "mysql",
		Fields: plugin.Fields{
			{ID: "log_written", Label: "Log bytes written", Type: plugin.Derive, Min: "0"},
			{ID: "log_flush", Label: "Log bytes flushed", Type: plugin.Derive, Min: "0"},
			{ID: "log_checkpoint", Label: "Last checkpoint", Type: plugin.Derive, Min: "0"},
		},
	},
	{
		ID:       "innodb_semaphores",
		Title:    "InnoDB Semaphores",
		Args:     "--base 1000",
		VLabel:   "waits per ${graph_period}",
		Category: "mysql",
		Fields: plugin.Fields{
			{ID: "spin_waits", Label: "Spin waits", Type: plugin.Derive, Min: "0"},
			{ID: "spin_rounds", Label: "Spin rounds", Type: plugin.Derive, Min: "0"},
			{ID: "os_waits", Label: "OS waits", Type: plugin.Derive, Min: "0"},
		},
	},
	{
		ID:       "innodb_tnx",
		Title:    "InnoDB Transactions",
		Args:     "--base 1000",
		VLabel:   "transactions per ${graph_period}",
		Category: "mysql",
		Fields: plugin.Fields{
			{ID: "tnx", Label: "Transactions", Type: plugin.Derive, Min: "0"},
			{ID: "tnx_prg", Label: "Purged", Type: plugin.Derive, Min: "0"},
		},
	},
	{
		ID:       "innodb_history",
		Title:    "InnoDB History List",
		Args:     "--base 1000 --lower-limit 0",
		VLabel:   "length",
		Category: "mysql",
		Fields: plugin.Fields{
			{ID: "tnx_hist", Label: "History list length", Type: plugin.Gauge, Min: "0"},
		},
	},
}
