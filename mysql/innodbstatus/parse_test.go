// SPDX-License-Identifier: GPL-3.0-or-later

package innodbstatus

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	dataStatusV5, _ = os.ReadFile("testdata/innodb_status_v5.txt")
	dataStatusV8, _ = os.ReadFile("testdata/innodb_status_v8.txt")
)

func Test_testDataIsValid(t *testing.T) {
	for name, data := range map[string][]byte{
		"dataStatusV5": dataStatusV5,
		"dataStatusV8": dataStatusV8,
	} {
		require.NotEmpty(t, data, name)
	}
}

// reportHeader is the fixed six lines of boilerplate preceding the first
// section.
const reportHeader = `
=====================================
2024-08-28 09:00:00 0x7f2a3c INNODB MONITOR OUTPUT
=====================================
Per second averages calculated from the last 30 seconds

`

const reportEnd = "----------------------------\nEND OF INNODB MONITOR OUTPUT\n============================\n"

func section(title string, lines ...string) string {
	sep := strings.Repeat("-", len(title))
	s := sep + "\n" + title + "\n" + sep + "\n"
	for _, ln := range lines {
		s += ln + "\n"
	}
	return s
}

func buildReport(sections ...string) string {
	return reportHeader + strings.Join(sections, "") + reportEnd
}

func metricsAsStrings(set MetricSet) map[string]string {
	out := make(map[string]string, len(set))
	for k, v := range set {
		out[k] = v.String()
	}
	return out
}

func TestParse_sections(t *testing.T) {
	tests := map[string]struct {
		report string
		want   map[string]string
	}{
		"SEMAPHORES": {
			report: buildReport(section("SEMAPHORES",
				"Mutex spin waits 79626940, rounds 157459864, OS waits 698719",
			)),
			want: map[string]string{
				"spin_waits":  "79626940",
				"spin_rounds": "157459864",
				"os_waits":    "698719",
			},
		},
		"TRANSACTIONS old format": {
			report: buildReport(section("TRANSACTIONS",
				"Trx id counter 0 80157601",
				"Purge done for trx's n:o < 0 80154573 undo n:o < 0 0",
				"History list length 6",
			)),
			want: map[string]string{
				"tnx":      "80157601",
				"tnx_prg":  "80154573",
				"tnx_hist": "6",
			},
		},
		"TRANSACTIONS new format decodes single values as hex": {
			report: buildReport(section("TRANSACTIONS",
				"Trx id counter F0157601",
				"Purge done for trx's n:o < 562946 undo n:o < 0 state: running but idle",
				"History list length 11",
			)),
			want: map[string]string{
				"tnx":      "4027938305", // 0xF0157601
				"tnx_prg":  "5646662",    // 0x562946
				"tnx_hist": "11",
			},
		},
		"FILE I/O": {
			report: buildReport(section("FILE I/O",
				"Pending normal aio reads: 3 [1, 0, 1, 1] , aio writes: 2 [0, 2, 0, 0] ,",
				" ibuf aio reads: 4, log i/o's: 5, sync i/o's: 6",
				"Pending flushes (fsync) log: 7; buffer pool: 8",
				"332 OS file reads, 47 OS file writes, 32 OS fsyncs",
			)),
			want: map[string]string{
				"iop_aioread":     "3",
				"iop_aiowrite":    "2",
				"iop_ibuf_aio":    "4",
				"iop_log":         "5",
				"iop_sync":        "6",
				"iop_flush_log":   "7",
				"iop_flush_bpool": "8",
				"io_read":         "332",
				"io_write":        "47",
				"io_fsync":        "32",
			},
		},
		"FILE I/O without per-thread bracket lists": {
			report: buildReport(section("FILE I/O",
				"Pending normal aio reads: 3, aio writes: 2,",
			)),
			want: map[string]string{
				"iop_aioread":  "3",
				"iop_aiowrite": "2",
			},
		},
		"INSERT BUFFER legacy format": {
			report: buildReport(section("INSERT BUFFER AND ADAPTIVE HASH INDEX",
				"Ibuf: size 1, free list len 5, seg size 2,",
				"9767 inserts, 9633 merged recs, 5620 merges",
			)),
			want: map[string]string{
				"ibuf_size":       "1",
				"ibuf_free_len":   "5",
				"ibuf_seg_size":   "2",
				"ibuf_inserts":    "9767",
				"ibuf_merged_rec": "9633",
				"ibuf_merges":     "5620",
			},
		},
		"INSERT BUFFER new format sums merged and discarded": {
			report: buildReport(section("INSERT BUFFER AND ADAPTIVE HASH INDEX",
				"Ibuf: size 1, free list len 0, seg size 2, 41 merges",
				"merged operations:",
				" insert 10, delete mark 20, delete 3",
				"discarded operations:",
				" insert 1, delete mark 2, delete 4",
			)),
			want: map[string]string{
				"ibuf_size":       "1",
				"ibuf_free_len":   "0",
				"ibuf_seg_size":   "2",
				"ibuf_merges":     "41",
				"ibuf_inserts":    "10",
				"ibuf_merged_rec": "40", // 10+20+3 + 1+2+4
			},
		},
		"LOG split format": {
			report: buildReport(section("LOG",
				"Log sequence number 84 3000620880",
				"Log flushed up to   84 3000611265",
				"Last checkpoint at  84 3000620880",
				"14 log i/o's done, 0.00 log i/o's/second",
			)),
			want: map[string]string{
				"log_written":    "363777873744",
				"log_flush":      "363777864129",
				"log_checkpoint": "363777873744",
				"io_log":         "14",
			},
		},
		"LOG lone values are decimal, not hex": {
			report: buildReport(section("LOG",
				"Log sequence number          20725666",
				"Log flushed up to            20725666",
				"Last checkpoint at           20725665",
				"Checkpoint age 1",
			)),
			want: map[string]string{
				"log_written":     "20725666",
				"log_flush":       "20725666",
				"log_checkpoint":  "20725665",
				"log_checkpt_age": "1",
			},
		},
		"BUFFER POOL AND MEMORY": {
			report: buildReport(section("BUFFER POOL AND MEMORY",
				"Buffer pool size   512",
				"Free buffers       10",
				"Database pages     501",
				"Modified db pages  25",
				"Pages read 6, created 2, written 3",
			)),
			want: map[string]string{
				"bpool_size":     "512",
				"bpool_free":     "10",
				"bpool_dbpages":  "501",
				"bpool_modpages": "25",
				"bpool_read":     "6",
				"bpool_created":  "2",
				"bpool_written":  "3",
			},
		},
		"ignored sections produce nothing": {
			report: buildReport(
				section("BACKGROUND THREAD",
					"srv_master_thread loops: 112 srv_active, 0 srv_shutdown, 8239 srv_idle",
				),
				section("INDIVIDUAL BUFFER POOL INFO",
					"---BUFFER POOL 0",
					"Buffer pool size   256",
				),
				section("LATEST DETECTED DEADLOCK",
					"*** (1) TRANSACTION:",
					"*** WE ROLL BACK TRANSACTION (2)",
				),
				section("ROW OPERATIONS",
					"Number of rows inserted 50, updated 220, deleted 1, read 80",
				),
			),
			want: map[string]string{},
		},
		"unmatched lines inside a known section are skipped": {
			report: buildReport(section("SEMAPHORES",
				"OS WAIT ARRAY INFO: reservation count 13569, signal count 11421",
				"Mutex spin waits 1, rounds 2, OS waits 3",
				"RW-shared spins 3896, rounds 102569, OS waits 1510",
			)),
			want: map[string]string{
				"spin_waits":  "1",
				"spin_rounds": "2",
				"os_waits":    "3",
			},
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			res, err := Parse(test.report)

			require.NoError(t, err)
			assert.False(t, res.Truncated)
			assert.False(t, res.Disabled)
			assert.Equal(t, test.want, metricsAsStrings(res.Metrics))
		})
	}
}

func TestParse_endToEnd(t *testing.T) {
	report := buildReport(
		section("SEMAPHORES",
			"Mutex spin waits 79626940, rounds 157459864, OS waits 698719",
		),
		section("LOG",
			"Log sequence number 84 3000620880",
			"Log flushed up to   84 3000611265",
			"Last checkpoint at  84 3000620880",
		),
	)

	res, err := Parse(report)

	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"spin_waits":     "79626940",
		"spin_rounds":    "157459864",
		"os_waits":       "698719",
		"log_written":    "363777873744",
		"log_flush":      "363777864129",
		"log_checkpoint": "363777873744",
	}, metricsAsStrings(res.Metrics))
}

func TestParse_fullReports(t *testing.T) {
	tests := map[string]struct {
		report string
		want   map[string]string
	}{
		"v5 dialect": {
			report: string(dataStatusV5),
			want: map[string]string{
				"spin_waits":      "5672442",
				"spin_rounds":     "3899888",
				"os_waits":        "4719",
				"tnx":             "80157601",
				"tnx_prg":         "80154573",
				"tnx_hist":        "6",
				"iop_aioread":     "0",
				"iop_aiowrite":    "0",
				"iop_ibuf_aio":    "0",
				"iop_log":         "0",
				"iop_sync":        "0",
				"iop_flush_log":   "0",
				"iop_flush_bpool": "0",
				"io_read":         "332",
				"io_write":        "47",
				"io_fsync":        "32",
				"ibuf_size":       "1",
				"ibuf_free_len":   "0",
				"ibuf_seg_size":   "2",
				"ibuf_inserts":    "0",
				"ibuf_merged_rec": "0",
				"ibuf_merges":     "0",
				"log_written":     "363777873744",
				"log_flush":       "363777864129",
				"log_checkpoint":  "363777873744",
				"io_log":          "14",
				"bpool_size":      "512",
				"bpool_free":      "0",
				"bpool_dbpages":   "501",
				"bpool_modpages":  "0",
				"bpool_read":      "6",
				"bpool_created":   "0",
				"bpool_written":   "0",
			},
		},
		"v8 dialect": {
			report: string(dataStatusV8),
			want: map[string]string{
				"spin_waits":      "85",
				"spin_rounds":     "94",
				"os_waits":        "2",
				"tnx":             "5646664", // 0x562948
				"tnx_prg":         "5646662", // 0x562946
				"tnx_hist":        "0",
				"iop_flush_log":   "0",
				"iop_flush_bpool": "0",
				"io_read":         "1646",
				"io_write":        "540",
				"io_fsync":        "253",
				"ibuf_size":       "1",
				"ibuf_free_len":   "0",
				"ibuf_seg_size":   "2",
				"ibuf_inserts":    "0",
				"ibuf_merged_rec": "0",
				"ibuf_merges":     "0",
				"log_written":     "20725666",
				"log_flush":       "20725666",
				"log_checkpoint":  "20725666",
				"io_log":          "129",
				"bpool_size":      "8192",
				"bpool_free":      "7075",
				"bpool_dbpages":   "1108",
				"bpool_modpages":  "0",
				"bpool_read":      "965",
				"bpool_created":   "143",
				"bpool_written":   "393",
			},
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			res, err := Parse(test.report)

			require.NoError(t, err)
			assert.False(t, res.Truncated)
			assert.False(t, res.Disabled)
			assert.Equal(t, test.want, metricsAsStrings(res.Metrics))
		})
	}
}

func TestParse_idempotent(t *testing.T) {
	report := string(dataStatusV5)

	first, err := Parse(report)
	require.NoError(t, err)
	second, err := Parse(report)
	require.NoError(t, err)

	assert.Equal(t, metricsAsStrings(first.Metrics), metricsAsStrings(second.Metrics))
}

func TestParse_truncated(t *testing.T) {
	t.Run("missing end marker", func(t *testing.T) {
		report := reportHeader +
			section("SEMAPHORES",
				"Mutex spin waits 1, rounds 2, OS waits 3",
			) +
			"--------\nFILE I/O\n--------\nPending norm" // cut mid-line by the server

		res, err := Parse(report)

		require.NoError(t, err)
		assert.True(t, res.Truncated)
		assert.Equal(t, map[string]string{
			"spin_waits":  "1",
			"spin_rounds": "2",
			"os_waits":    "3",
		}, metricsAsStrings(res.Metrics))
	})

	t.Run("sentinel already appended by the collector", func(t *testing.T) {
		report := reportHeader +
			section("SEMAPHORES",
				"Mutex spin waits 1, rounds 2, OS waits 3",
			) +
			TruncationSentinel

		res, err := Parse(report)

		require.NoError(t, err)
		assert.True(t, res.Truncated)
		assert.Len(t, res.Metrics, 3)
	})
}

func TestParse_engineDisabled(t *testing.T) {
	tests := map[string]string{
		"unknown table engine":   "Unknown table engine 'InnoDB'",
		"unknown storage engine": "unknown storage engine 'innodb'",
		"skip-innodb":            "Cannot call SHOW INNODB STATUS because skip-innodb is defined",
	}

	for name, report := range tests {
		t.Run(name, func(t *testing.T) {
			res, err := Parse(report)

			require.NoError(t, err)
			assert.True(t, res.Disabled)
			assert.Empty(t, res.Metrics)
			assert.False(t, res.Truncated)
		})
	}
}

func TestParse_unknownSection(t *testing.T) {
	report := buildReport(
		section("SEMAPHORES",
			"Mutex spin waits 1, rounds 2, OS waits 3",
		),
		section("SHINY NEW SECTION",
			"something unheard of 42",
		),
	)

	res, err := Parse(report)

	assert.Nil(t, res)
	var unknownErr *UnknownSectionError
	require.ErrorAs(t, err, &unknownErr)
	assert.Equal(t, "SHINY NEW SECTION", unknownErr.Section)
	assert.Contains(t, err.Error(), "SHINY NEW SECTION")
}

func TestParse_malformedBoundary(t *testing.T) {
	report := reportHeader +
		"----------\nSEMAPHORES\nMutex spin waits 1, rounds 2, OS waits 3\n" +
		reportEnd

	res, err := Parse(report)

	assert.Nil(t, res)
	var malformedErr *MalformedBoundaryError
	require.ErrorAs(t, err, &malformedErr)
	assert.Equal(t, "SEMAPHORES", malformedErr.Section)
}

func TestParse_interiorDashLinesAreNotBoundaries(t *testing.T) {
	report := buildReport(section("TRANSACTIONS",
		"Trx id counter 0 80157601",
		"---TRANSACTION 0 80157600, ACTIVE 4 sec, process no 3190, OS thread id 34831",
		"------- TRX HAS BEEN WAITING 4 SEC FOR THIS LOCK TO BE GRANTED:",
		"-------------------",
		"RECORD LOCKS space id 0 page no 843102 n bits 72 index `PRIMARY` of table `test/t` trx id 0 80157600",
		"History list length 6",
	))

	res, err := Parse(report)

	require.NoError(t, err)
	assert.False(t, res.Truncated)
	assert.Equal(t, map[string]string{
		"tnx":      "80157601",
		"tnx_hist": "6",
	}, metricsAsStrings(res.Metrics))
}
