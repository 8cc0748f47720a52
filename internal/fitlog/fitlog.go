// Package fitlog loads the per-generation progression log written by the
// solvers and repairs it into a clean fitness series.
//
// The producer's own generation column is known to be corrupt, so it is
// never read: generations are rebuilt from the order of the rows that
// survive cleaning. Trusting the source column reproduces the corruption.
package fitlog

import (
	"math"
	"strconv"
	"strings"
)

// Record is one cleaned generation of the log.
type Record struct {
	Generation int // 1-based position after cleaning
	Max        float64
	Avg        float64
}

// Series is the cleaned log. A Series returned by Load or Parse is never
// empty and its generations run 1..len without gaps.
type Series []Record

// Tail returns the last n records, or the whole series if it is shorter.
func (s Series) Tail(n int) Series {
	if n <= 0 {
		return nil
	}
	if n >= len(s) {
		return s
	}
	return s[len(s)-n:]
}

// Stats counts what cleaning did to the raw rows.
type Stats struct {
	Raw            int // data rows after the header
	DroppedMissing int // rows with an absent or NA cell
	DroppedInvalid int // rows whose max or avg did not coerce
	Kept           int
}

// Cell is an optional number: Valid is false when the text did not coerce.
type Cell struct {
	Value float64
	Valid bool
}

// ParseCell coerces text to a fitness value. Anything that is not a finite,
// non-negative number yields an invalid Cell.
func ParseCell(text string) Cell {
	v, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return Cell{}
	}
	return Cell{Value: v, Valid: true}
}

// naTokens are the cell spellings treated as missing values, the usual set
// emitted by spreadsheet and dataframe tools.
var naTokens = map[string]struct{}{
	"":         {},
	"#N/A":     {},
	"#N/A N/A": {},
	"#NA":      {},
	"-1.#IND":  {},
	"-1.#QNAN": {},
	"-NaN":     {},
	"-nan":     {},
	"1.#IND":   {},
	"1.#QNAN":  {},
	"<NA>":     {},
	"N/A":      {},
	"NA":       {},
	"NULL":     {},
	"NaN":      {},
	"None":     {},
	"n/a":      {},
	"nan":      {},
	"null":     {},
}

// IsMissing reports whether a raw cell counts as an absent value. The text
// is matched as is: a blank but non-empty cell is present, and a blank
// max or avg is then dropped by coercion instead.
func IsMissing(text string) bool {
	_, ok := naTokens[text]
	return ok
}

// columns is the positional layout of a log row: generation marker, max, avg.
const columns = 3

// rawRow is one data row as read, before any cleaning.
type rawRow struct {
	fields []string
}

// complete reports whether all three cells are present and not NA.
func (r rawRow) complete() bool {
	if len(r.fields) < columns {
		return false
	}
	for _, f := range r.fields[:columns] {
		if IsMissing(f) {
			return false
		}
	}
	return true
}

// clean runs both cleaning passes and numbers the survivors.
func clean(rows []rawRow) (Series, Stats) {
	st := Stats{Raw: len(rows)}

	present := rows[:0:0]
	for _, r := range rows {
		if !r.complete() {
			st.DroppedMissing++
			continue
		}
		present = append(present, r)
	}

	out := make(Series, 0, len(present))
	for _, r := range present {
		maxCell, avgCell := ParseCell(r.fields[1]), ParseCell(r.fields[2])
		if !maxCell.Valid || !avgCell.Valid {
			st.DroppedInvalid++
			continue
		}
		out = append(out, Record{
			Generation: len(out) + 1,
			Max:        maxCell.Value,
			Avg:        avgCell.Value,
		})
	}
	st.Kept = len(out)
	return out, st
}
