// SPDX-License-Identifier: GPL-3.0-or-later

// Package innodbstatus turns the free-form text of SHOW ENGINE INNODB STATUS
// into a set of named numeric metrics.
//
// The report is a sequence of titled, dash-delimited sections whose grammar
// drifts across engine releases. The parser is a single forward pass: a
// dispatcher recognizes section boundaries and hands the cursor to a
// per-section grammar; lines a grammar does not recognize are skipped, so
// new engine versions degrade to fewer metrics instead of failing. Unknown
// section titles do fail the pass: the section set is assumed closed, and
// silently misparsing an unfamiliar report is worse than an error.
//
// Large reports are cut off by the server itself. Parse always appends a
// synthetic terminal section so the pass terminates even without the real
// end marker; reaching it flags the result as truncated, which is not an
// error.
package innodbstatus

import (
	"fmt"
	"math/big"
	"regexp"
	"strings"
)

const (
	// headerLines is the fixed header/timestamp boilerplate preceding the
	// first section of a report.
	headerLines = 6

	endMarker       = "END OF INNODB MONITOR OUTPUT"
	truncatedMarker = "INNODB REPORT TRUNCATED"
)

// TruncationSentinel terminates a report that was cut short by the server.
// Parse appends it to every report; a collector that detected the cut during
// retrieval may have appended one already, the parser stops at the first.
const TruncationSentinel = "\n----------------------------\n" +
	truncatedMarker +
	"\n----------------------------\n"

var (
	// A section boundary is a line of only dashes followed by a line that
	// looks like an all-caps section title. The title requirement
	// disambiguates interior dash-only lines (seen in TRANSACTIONS) from
	// real boundaries. The separator line after the title is checked by the
	// dispatcher, not here: a missing separator is a malformed report.
	reSectionBoundary = regexp.MustCompile(`^-+\n([A-Z][A-Z0-9 /]+?) *\n`)
	reSectionSep      = regexp.MustCompile(`^[-=]+\n`)

	// Two message variants mean the engine itself is unavailable; neither
	// is a parse failure.
	reEngineUnknown  = regexp.MustCompile(`(?i)Unknown (?:table|storage) engine '?InnoDB'?`)
	reEngineDisabled = regexp.MustCompile(`(?i)Cannot call SHOW INNODB STATUS because skip-innodb is defined`)
)

// MetricSet is the structured output of one parse pass: metric name to
// value. Counters reconstructed from two 32-bit halves can legitimately
// exceed 64 bits, so values are kept as big.Int.
type MetricSet map[string]*big.Int

func (s MetricSet) setBig(name string, v *big.Int) {
	if v != nil {
		s[name] = v
	}
}

// dec stores a plain decimal capture.
func (s MetricSet) dec(name, raw string) {
	if v, ok := new(big.Int).SetString(raw, 10); ok {
		s[name] = v
	}
}

// addDec accumulates decimal captures into an existing metric.
func (s MetricSet) addDec(name string, raws ...string) {
	sum, ok := s[name]
	if !ok {
		sum = new(big.Int)
		s[name] = sum
	}
	for _, raw := range raws {
		if v, ok := new(big.Int).SetString(raw, 10); ok {
			sum.Add(sum, v)
		}
	}
}

// Result is one parsed report.
type Result struct {
	Metrics MetricSet

	// Truncated is set when the report ended at the truncation sentinel
	// instead of the real end marker. Metrics holds everything collected
	// before the cut and is still valid.
	Truncated bool

	// Disabled is set when the server reported the engine itself as unknown
	// or disabled. Metrics is empty then; this is "nothing to report", not
	// a failed parse.
	Disabled bool
}

// UnknownSectionError reports a section title outside the known set. The
// report format is assumed closed, so this fails the whole pass: it
// indicates an unsupported engine version and must not be ignored.
type UnknownSectionError struct {
	Section string
}

func (e *UnknownSectionError) Error() string {
	return fmt.Sprintf("unknown section %q in innodb status report", e.Section)
}

// MalformedBoundaryError reports a section title that is not followed by its
// separator line.
type MalformedBoundaryError struct {
	Section string
}

func (e *MalformedBoundaryError) Error() string {
	return fmt.Sprintf("section %q is not followed by a separator line", e.Section)
}

// IsEngineDisabledMessage reports whether s carries one of the messages a
// server emits when the engine is unknown or disabled. Exported for
// collectors that receive the message as a driver error rather than as
// report text.
func IsEngineDisabledMessage(s string) bool {
	return reEngineUnknown.MatchString(s) || reEngineDisabled.MatchString(s)
}

// Parse scans one status report. It is stateless: every call builds a fresh
// MetricSet, so parsing the same report twice yields identical results.
//
// The returned error is either *UnknownSectionError or
// *MalformedBoundaryError, both fatal for this report: partial or garbled
// metrics are worse than none. Truncation and a disabled engine are flags on
// the Result, never errors.
func Parse(report string) (*Result, error) {
	res := &Result{Metrics: make(MetricSet)}

	if IsEngineDisabledMessage(report) {
		res.Disabled = true
		return res, nil
	}

	cur := &cursor{text: report + TruncationSentinel}
	for i := 0; i < headerLines; i++ {
		if !cur.skipLine() {
			break
		}
	}

	for {
		m := cur.tryMatch(reSectionBoundary)
		if m == nil {
			// Only boundaries are expected here, but header length has
			// drifted across releases; the sentinel guarantees the loop
			// stops.
			if !cur.skipLine() {
				res.Truncated = true
				return res, nil
			}
			continue
		}

		name := strings.TrimRight(m[1], " ")
		switch name {
		case endMarker:
			return res, nil
		case truncatedMarker:
			res.Truncated = true
			return res, nil
		}

		if cur.tryMatch(reSectionSep) == nil {
			return nil, &MalformedBoundaryError{Section: name}
		}

		rules, known := sectionGrammars[name]
		if !known {
			return nil, &UnknownSectionError{Section: name}
		}

		runSection(cur, rules, res.Metrics)
	}
}
