package analyzer

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/alexhholmes/smbiosgen/internal/parser"
)

// FieldKind is the declared type class of a structure field
type FieldKind int

const (
	KindInteger  FieldKind = iota // uint8/16/32/64 from the Length column
	KindString                    // STRING
	KindEnum                      // ENUM
	KindBitField                  // Bit Field
)

func (k FieldKind) String() string {
	switch k {
	case KindInteger:
		return "integer"
	case KindString:
		return "string"
	case KindEnum:
		return "enum"
	case KindBitField:
		return "bit-field"
	default:
		return "unknown"
	}
}

// Nested reports whether the kind refers to a generated enum or bit-field type
func (k FieldKind) Nested() bool {
	return k == KindEnum || k == KindBitField
}

// ParseState is the column a RowClassifier is reading
type ParseState int

const (
	SeekingIdentifier   ParseState = iota // Name column, until a width word
	SeekingType                           // Value column
	AccumulatingComment                   // Description column
)

func (s ParseState) String() string {
	switch s {
	case SeekingIdentifier:
		return "seeking-identifier"
	case SeekingType:
		return "seeking-type"
	case AccumulatingComment:
		return "accumulating-comment"
	default:
		return "unknown"
	}
}

const (
	maxCommentLen = 50 // Comment words past this length are dropped
	ellipsis      = "..."
)

// RowClassifier turns the words of one structure table row into a
// FieldRecord, reading left to right without backtracking:
//
//	2.0+ Power Supply State | BYTE | ENUM | State of the enclosure's power supply
//	identifier (2.0+ skipped) | width | type | comment
type RowClassifier struct {
	state     ParseState
	field     FieldRecord
	ident     strings.Builder
	comment   strings.Builder
	truncated bool
}

// NewRowClassifier starts classifying the row at the given offset
func NewRowClassifier(offset int) *RowClassifier {
	return &RowClassifier{
		state: SeekingIdentifier,
		field: FieldRecord{Offset: offset, Kind: KindInteger},
	}
}

// State returns the column the next word will be read as
func (c *RowClassifier) State() ParseState {
	return c.state
}

// Feed classifies the next word of the row
func (c *RowClassifier) Feed(word string) {
	switch c.state {
	case SeekingIdentifier:
		c.seekIdentifier(word)
	case SeekingType:
		c.seekType(word)
	case AccumulatingComment:
		c.appendComment(word)
	}
}

func (c *RowClassifier) seekIdentifier(word string) {
	if width, ok := WidthOf(word); ok {
		c.field.Width = width
		c.state = SeekingType
		return
	}

	// Spec version column: "2.0+", "2.3+"
	if strings.HasSuffix(word, "+") {
		return
	}

	c.ident.WriteString(parser.Capitalize(parser.Sanitize(word)))
}

func (c *RowClassifier) seekType(word string) {
	// "Bit" already seen, "Field" completes "Bit Field"
	if c.field.Kind == KindBitField {
		c.state = AccumulatingComment
		if word != "Field" {
			c.appendComment(word)
		}
		return
	}

	switch word {
	case "STRING":
		c.field.Kind = KindString
		c.state = AccumulatingComment
	case "ENUM":
		c.field.Kind = KindEnum
		c.state = AccumulatingComment
	case "Bit":
		c.field.Kind = KindBitField
	case "Field":
		c.field.Kind = KindBitField
		c.state = AccumulatingComment
	case "Varies":
		c.state = AccumulatingComment
	default:
		c.state = AccumulatingComment
		c.appendComment(word)
	}
}

func (c *RowClassifier) appendComment(word string) {
	if c.comment.Len() >= maxCommentLen {
		if !c.truncated {
			c.comment.WriteString(ellipsis)
			c.truncated = true
		}
		return
	}

	if c.comment.Len() > 0 {
		c.comment.WriteByte(' ')
	}
	c.comment.WriteString(word)
}

// Finish returns the classified field. TypeName is left empty; nested type
// names depend on the enclosing structure and are set by BuildStruct.
func (c *RowClassifier) Finish() FieldRecord {
	f := c.field
	f.Name = c.ident.String()
	f.Comment = c.comment.String()

	if f.Name == "" {
		f.Name = fmt.Sprintf("Field%02Xh", f.Offset)
	} else if r, _ := utf8.DecodeRuneInString(f.Name); unicode.IsDigit(r) {
		f.Name = "Field" + f.Name
	}

	if f.Width == 0 {
		f.Width = 1
	}

	return f
}

// ClassifyRow runs a RowClassifier over all words of a row
func ClassifyRow(offset int, words []string) FieldRecord {
	c := NewRowClassifier(offset)
	for _, w := range words {
		c.Feed(w)
	}
	return c.Finish()
}
