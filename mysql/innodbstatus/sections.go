// SPDX-License-Identifier: GPL-3.0-or-later

package innodbstatus

import "regexp"

// counter is the raw grammar shared by all 64-bit counters: hex-or-decimal
// digits, optionally followed by a space and more decimal digits. How a lone
// first group is decoded depends on the field (makeBigInt vs makeBigIntNoHex).
const counter = `([0-9A-Fa-f]+)(?: (\d+))?`

var (
	reSpinWaits = regexp.MustCompile(`^Mutex spin waits (\d+), rounds (\d+), OS waits (\d+)\n`)

	reTrxCounter = regexp.MustCompile(`^Trx id counter ` + counter + `\n`)
	reTrxPurge   = regexp.MustCompile(`^Purge done for trx's n:o < ` + counter + ` undo n:o < ` + counter + `.*\n`)
	reTrxHistory = regexp.MustCompile(`^History list length (\d+)\n`)

	rePendingAIO     = regexp.MustCompile(`^Pending normal aio reads: (\d+) ?(?:\[[\d, ]*\] )?, aio writes: (\d+) ?(?:\[[\d, ]*\] )?,?\n`)
	rePendingIbufAIO = regexp.MustCompile(`^ ?ibuf aio reads: (\d+), log i/o's: (\d+), sync i/o's: (\d+)\n`)
	rePendingFlushes = regexp.MustCompile(`^Pending flushes \(fsync\) log: (\d+); buffer pool: (\d+)\n`)
	reOSFileIO       = regexp.MustCompile(`^(\d+) OS file reads, (\d+) OS file writes, (\d+) OS fsyncs\n`)

	reIbufInfo      = regexp.MustCompile(`^Ibuf: size (\d+), free list len (\d+), seg size (\d+),?(?: (\d+) merges)?\n`)
	reIbufLegacy    = regexp.MustCompile(`^(\d+) inserts, (\d+) merged recs, (\d+) merges\n`)
	reIbufMerged    = regexp.MustCompile(`^merged operations:\n insert (\d+), delete mark (\d+), delete (\d+)\n`)
	reIbufDiscarded = regexp.MustCompile(`^discarded operations:\n insert (\d+), delete mark (\d+), delete (\d+)\n`)

	reLogSequence   = regexp.MustCompile(`^Log sequence number +` + counter + `\n`)
	reLogFlushed    = regexp.MustCompile(`^Log flushed up to +` + counter + `\n`)
	reLogCheckpoint = regexp.MustCompile(`^Last checkpoint at +` + counter + `\n`)
	reLogIODone     = regexp.MustCompile(`^(\d+) log i/o's done.*\n`)
	reCheckpointAge = regexp.MustCompile(`^Checkpoint age +(\d+)\n`)

	reBpoolSize     = regexp.MustCompile(`^Buffer pool size +(\d+)\n`)
	reBpoolFree     = regexp.MustCompile(`^Free buffers +(\d+)\n`)
	reBpoolDBPages  = regexp.MustCompile(`^Database pages +(\d+)\n`)
	reBpoolModPages = regexp.MustCompile(`^Modified db pages +(\d+)\n`)
	reBpoolActivity = regexp.MustCompile(`^Pages read (\d+), created (\d+), written (\d+)\n`)
)

// lineRule is one recognized line shape within a section.
type lineRule struct {
	re    *regexp.Regexp
	apply func(m []string, set MetricSet)
}

// sectionGrammars maps every known section title to its line rules, in
// priority order. Sections whose content is intentionally ignored map to
// nil: their lines are consumed and discarded up to the next boundary.
// A different status dialect extends this table, not the dispatcher.
var sectionGrammars = map[string][]lineRule{
	"SEMAPHORES": {
		{reSpinWaits, func(m []string, set MetricSet) {
			set.dec("spin_waits", m[1])
			set.dec("spin_rounds", m[2])
			set.dec("os_waits", m[3])
		}},
	},

	"TRANSACTIONS": {
		{reTrxCounter, func(m []string, set MetricSet) {
			set.setBig("tnx", makeBigInt(m[1], m[2]))
		}},
		// The old format carries a second undo counter; it is dropped here
		// to keep the output contract of the original plugin.
		{reTrxPurge, func(m []string, set MetricSet) {
			set.setBig("tnx_prg", makeBigInt(m[1], m[2]))
		}},
		{reTrxHistory, func(m []string, set MetricSet) {
			set.dec("tnx_hist", m[1])
		}},
	},

	"FILE I/O": {
		{rePendingAIO, func(m []string, set MetricSet) {
			set.dec("iop_aioread", m[1])
			set.dec("iop_aiowrite", m[2])
		}},
		{rePendingIbufAIO, func(m []string, set MetricSet) {
			set.dec("iop_ibuf_aio", m[1])
			set.dec("iop_log", m[2])
			set.dec("iop_sync", m[3])
		}},
		{rePendingFlushes, func(m []string, set MetricSet) {
			set.dec("iop_flush_log", m[1])
			set.dec("iop_flush_bpool", m[2])
		}},
		{reOSFileIO, func(m []string, set MetricSet) {
			set.dec("io_read", m[1])
			set.dec("io_write", m[2])
			set.dec("io_fsync", m[3])
		}},
	},

	"INSERT BUFFER AND ADAPTIVE HASH INDEX": {
		{reIbufInfo, func(m []string, set MetricSet) {
			set.dec("ibuf_size", m[1])
			set.dec("ibuf_free_len", m[2])
			set.dec("ibuf_seg_size", m[3])
			if m[4] != "" {
				set.dec("ibuf_merges", m[4])
			}
		}},
		{reIbufLegacy, func(m []string, set MetricSet) {
			set.dec("ibuf_inserts", m[1])
			set.dec("ibuf_merged_rec", m[2])
			set.dec("ibuf_merges", m[3])
		}},
		// The newer format splits the legacy "merged recs" into per-operation
		// merged and discarded counts; both roll up into ibuf_merged_rec.
		{reIbufMerged, func(m []string, set MetricSet) {
			set.dec("ibuf_inserts", m[1])
			set.addDec("ibuf_merged_rec", m[1], m[2], m[3])
		}},
		{reIbufDiscarded, func(m []string, set MetricSet) {
			set.addDec("ibuf_merged_rec", m[1], m[2], m[3])
		}},
	},

	"LOG": {
		{reLogSequence, func(m []string, set MetricSet) {
			set.setBig("log_written", makeBigIntNoHex(m[1], m[2]))
		}},
		{reLogFlushed, func(m []string, set MetricSet) {
			set.setBig("log_flush", makeBigIntNoHex(m[1], m[2]))
		}},
		{reLogCheckpoint, func(m []string, set MetricSet) {
			set.setBig("log_checkpoint", makeBigIntNoHex(m[1], m[2]))
		}},
		{reLogIODone, func(m []string, set MetricSet) {
			set.dec("io_log", m[1])
		}},
		{reCheckpointAge, func(m []string, set MetricSet) {
			set.dec("log_checkpt_age", m[1])
		}},
	},

	"BUFFER POOL AND MEMORY": {
		{reBpoolSize, func(m []string, set MetricSet) {
			set.dec("bpool_size", m[1])
		}},
		{reBpoolFree, func(m []string, set MetricSet) {
			set.dec("bpool_free", m[1])
		}},
		{reBpoolDBPages, func(m []string, set MetricSet) {
			set.dec("bpool_dbpages", m[1])
		}},
		{reBpoolModPages, func(m []string, set MetricSet) {
			set.dec("bpool_modpages", m[1])
		}},
		{reBpoolActivity, func(m []string, set MetricSet) {
			set.dec("bpool_read", m[1])
			set.dec("bpool_created", m[2])
			set.dec("bpool_written", m[3])
		}},
	},

	"BACKGROUND THREAD":           nil,
	"INDIVIDUAL BUFFER POOL INFO": nil,
	"LATEST DETECTED DEADLOCK":    nil,
	"LATEST FOREIGN KEY ERROR":    nil,
	"ROW OPERATIONS":              nil,
}

// runSection drives one section: stop the moment the next section boundary
// is recognized, otherwise try the rules in priority order, otherwise drop
// the current line. Unmatched lines are never an error: unrecognized engine
// versions degrade to fewer metrics, not to a failed parse.
func runSection(cur *cursor, rules []lineRule, set MetricSet) {
	for !cur.exhausted() && !cur.peek(reSectionBoundary) {
		matched := false
		for _, r := range rules {
			if m := cur.tryMatch(r.re); m != nil {
				r.apply(m, set)
				matched = true
				break
			}
		}
		if !matched && !cur.skipLine() {
			return
		}
	}
}
