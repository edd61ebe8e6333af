package analyzer

import (
	"errors"
	"fmt"

	"github.com/alexhholmes/smbiosgen/internal/parser"
)

var (
	// ErrDuplicateIdentifier reports two declarations deriving the same Go name
	ErrDuplicateIdentifier = errors.New("duplicate identifier")

	// ErrDuplicateValue reports an enum value or bit index listed twice
	ErrDuplicateValue = errors.New("duplicate value")

	// ErrOffsetOrder reports a structure row whose offset is below its predecessor's
	ErrOffsetOrder = errors.New("offset out of order")
)

// HeaderField is the embedded common structure header every SMBIOS
// structure starts with (Type, Length, Handle)
const HeaderField = "Table"

// headerSize is the length of the common header. Rows inside it describe the
// header itself and are not modeled.
const headerSize = 4

// FieldRecord is one member of a generated structure
type FieldRecord struct {
	Offset   int
	Name     string
	Kind     FieldKind
	Width    int    // 1, 2, 4 or 8 bytes
	TypeName string // Nested type for KindEnum and KindBitField
	Comment  string
}

// GoType returns the declared Go type of the field
func (f FieldRecord) GoType() string {
	switch f.Kind {
	case KindString:
		return "string"
	case KindEnum, KindBitField:
		return f.TypeName
	default:
		return GoType(f.Width)
	}
}

// StructModel is the field model of a structure table
type StructModel struct {
	TypeName string
	Fields   []FieldRecord // Input order, header excluded
	Nested   []NestedType  // Types the fields refer to, first reference first
}

// BuildStruct builds the field model of a structure table.
//
// Rows whose marker is not a hex offset are skipped. Nested enum and
// bit-field types are named after the structure and the field:
// ChassisInfo + BootupState → ChassisInfoBootupState.
func BuildStruct(typeName string, rows []parser.RawRow) (*StructModel, error) {
	m := &StructModel{TypeName: typeName}
	reg := NewTypeRegistry()

	seen := map[string]int{HeaderField: 0} // field name → offset
	last := headerSize

	for _, row := range rows {
		offset, err := parser.ParseHex(row.Marker)
		if err != nil {
			continue
		}
		if offset < headerSize {
			continue
		}
		if offset < last {
			return nil, fmt.Errorf("line %d: %02Xh follows %02Xh: %w", row.Line, offset, last, ErrOffsetOrder)
		}
		last = offset

		f := ClassifyRow(offset, row.Words())
		if prev, ok := seen[f.Name]; ok {
			return nil, fmt.Errorf("line %d: field %s at %02Xh and %02Xh: %w", row.Line, f.Name, prev, offset, ErrDuplicateIdentifier)
		}
		seen[f.Name] = offset

		if f.Kind.Nested() {
			f.TypeName = typeName + f.Name
			reg.Register(NestedType{Name: f.TypeName, Kind: f.Kind, Width: f.Width})
		}

		m.Fields = append(m.Fields, f)
	}

	m.Nested = reg.Types()
	return m, nil
}
