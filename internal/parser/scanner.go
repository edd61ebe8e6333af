package parser

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"
)

// ErrMissingValue reports a row that ends right after its marker
var ErrMissingValue = errors.New("missing value after row marker")

// RowError is a structural defect in the input that stops the run
type RowError struct {
	Line int    // Line number of the row's first physical line
	Raw  string // Offending input as read
	Err  error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("line %d: %v: %s", e.Line, e.Err, e.Raw)
}

func (e *RowError) Unwrap() error { return e.Err }

// RawRow is one logical table row after continuation lines are merged
type RawRow struct {
	Marker string // "04h", "01h" or a decimal bit index
	Rest   string // Remaining words, single-space separated
	Raw    string // Physical lines as read, newline separated
	Line   int    // Line number of the first physical line
}

// Words splits the row remainder into words
func (r RawRow) Words() []string {
	return strings.Fields(r.Rest)
}

var (
	hexRowRe = regexp.MustCompile(`^([0-9A-Fa-f]{2}h\S*)(?:\s+(.*))?$`)
	bitRowRe = regexp.MustCompile(`^Bit\s+(\d+)(?:\s+(.*))?$`)
)

// maxLineSize bounds a single physical input line
const maxLineSize = 1 << 20

// Scanner turns physical table lines into RawRows
//
// A line that matches the table kind's row pattern starts a new row, with its
// whole first word as the marker ("03h-7Fh" included; builders drop markers
// they cannot parse). Any other
// line continues the current row, so descriptions that wrap in the source
// document end up on one row:
//
//	04h 2.0+ Manufacturer BYTE STRING Number of null-terminated
//	string
//
// Lines seen before the first row (captions, column headings) are dropped for
// struct and enum tables. Bit-field tables keep them, together with rows
// whose leading "Bit"/"Bits" word is not followed by a bit index, as
// passthrough lines for the generated output.
type Scanner struct {
	r    io.Reader
	kind TableKind

	cur         *RawRow
	rows        []RawRow
	passthrough []string
}

// NewScanner creates a Scanner reading a table of the given kind from r
func NewScanner(r io.Reader, kind TableKind) *Scanner {
	return &Scanner{r: r, kind: kind}
}

// ParseRows reads a whole table from r
func ParseRows(r io.Reader, kind TableKind) ([]RawRow, []string, error) {
	return NewScanner(r, kind).Rows()
}

// Rows reads the input to completion and returns the rows in input order
// along with any passthrough lines. A *RowError is returned for a row that
// has no data after its marker.
func (s *Scanner) Rows() ([]RawRow, []string, error) {
	sc := bufio.NewScanner(s.r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	n := 0
	for sc.Scan() {
		n++
		if err := s.line(n, sc.Text()); err != nil {
			return nil, nil, err
		}
	}
	if err := sc.Err(); err != nil {
		return nil, nil, fmt.Errorf("read table: %w", err)
	}

	// The last row has no following marker to close it
	if err := s.flush(); err != nil {
		return nil, nil, err
	}

	return s.rows, s.passthrough, nil
}

func (s *Scanner) line(n int, text string) error {
	text = strings.TrimRight(text, " \t\r")
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil
	}

	if s.kind == BitFieldTable {
		first := strings.Fields(trimmed)[0]
		if first == "Bit" || first == "Bits" {
			return s.bitRow(n, text, trimmed)
		}
	} else if m := hexRowRe.FindStringSubmatch(trimmed); m != nil {
		return s.start(RawRow{Marker: m[1], Rest: m[2], Raw: text, Line: n})
	}

	s.continueRow(text, trimmed)
	return nil
}

func (s *Scanner) bitRow(n int, text, trimmed string) error {
	if trimmed == "Bit" {
		return &RowError{Line: n, Raw: text, Err: ErrMissingValue}
	}

	if m := bitRowRe.FindStringSubmatch(trimmed); m != nil {
		if _, err := ParseBit(m[1]); err == nil {
			return s.start(RawRow{Marker: m[1], Rest: m[2], Raw: text, Line: n})
		}
	}

	// Not a single-bit row ("Bits 8:15 Reserved"): close the current row
	// and keep the line as written.
	if err := s.flush(); err != nil {
		return err
	}
	s.passthrough = append(s.passthrough, text)
	return nil
}

func (s *Scanner) start(row RawRow) error {
	if err := s.flush(); err != nil {
		return err
	}
	s.cur = &row
	return nil
}

func (s *Scanner) continueRow(text, trimmed string) {
	if s.cur == nil {
		if s.kind == BitFieldTable {
			s.passthrough = append(s.passthrough, text)
		}
		return
	}

	if s.cur.Rest == "" {
		s.cur.Rest = trimmed
	} else {
		s.cur.Rest += " " + trimmed
	}
	s.cur.Raw += "\n" + text
}

func (s *Scanner) flush() error {
	if s.cur == nil {
		return nil
	}
	row := *s.cur
	s.cur = nil

	row.Rest = strings.Join(strings.Fields(row.Rest), " ")
	if row.Rest == "" {
		return &RowError{Line: row.Line, Raw: row.Raw, Err: ErrMissingValue}
	}

	s.rows = append(s.rows, row)
	return nil
}
