package analyzer

import (
	"fmt"
	"strings"

	"github.com/alexhholmes/smbiosgen/internal/parser"
)

// ValueRecord is one named value of an enum or bit-field type
type ValueRecord struct {
	Value       int    // Byte code for enums, bit index for bit-fields
	Name        string // Type name + description words
	Description string
}

// ValueModel is the value model of an enum or bit-field table
type ValueModel struct {
	TypeName string
	Kind     FieldKind // KindEnum or KindBitField
	Width    int       // Underlying type width in bytes
	Values   []ValueRecord
}

// BuildEnum builds an enum from rows keyed by two digit hex codes ("01h").
// Rows with any other marker are dropped.
func BuildEnum(typeName string, rows []parser.RawRow) (*ValueModel, error) {
	return buildValues(typeName, KindEnum, rows, parser.ParseHex)
}

// BuildBitField builds a bit-field from rows keyed by decimal bit indexes.
// Rows with any other marker are dropped.
func BuildBitField(typeName string, rows []parser.RawRow) (*ValueModel, error) {
	return buildValues(typeName, KindBitField, rows, parser.ParseBit)
}

func buildValues(typeName string, kind FieldKind, rows []parser.RawRow, parseValue func(string) (int, error)) (*ValueModel, error) {
	m := &ValueModel{
		TypeName: typeName,
		Kind:     kind,
		Width:    1,
	}

	names := map[string]int{typeName: -1} // identifier → line
	values := map[int]int{}               // value → line

	for _, row := range rows {
		v, err := parseValue(row.Marker)
		if err != nil {
			continue
		}

		name := typeName + parser.Identifier(strings.Fields(row.Rest)...)
		if prev, ok := names[name]; ok {
			if prev < 0 {
				return nil, fmt.Errorf("line %d: %s collides with the type name: %w", row.Line, name, ErrDuplicateIdentifier)
			}
			return nil, fmt.Errorf("line %d: %s already declared on line %d: %w", row.Line, name, prev, ErrDuplicateIdentifier)
		}
		if prev, ok := values[v]; ok {
			return nil, fmt.Errorf("line %d: %s already declared on line %d: %w", row.Line, row.Marker, prev, ErrDuplicateValue)
		}
		names[name] = row.Line
		values[v] = row.Line

		if kind == KindBitField {
			m.Width = max(m.Width, BitWidth(v))
		}

		m.Values = append(m.Values, ValueRecord{
			Value:       v,
			Name:        name,
			Description: row.Rest,
		})
	}

	return m, nil
}
