package codegen

import (
	"fmt"
	"go/token"
	"io"

	"github.com/alexhholmes/smbiosgen/internal/analyzer"
	"github.com/alexhholmes/smbiosgen/internal/parser"
)

// Compile reads a table of the given kind from r and returns the generated
// declarations for typeName
func Compile(kind parser.TableKind, typeName string, r io.Reader) (string, error) {
	if err := validateTypeName(typeName); err != nil {
		return "", err
	}

	rows, passthrough, err := parser.ParseRows(r, kind)
	if err != nil {
		return "", err
	}

	g := NewGenerator()

	switch kind {
	case parser.StructTable:
		m, err := analyzer.BuildStruct(typeName, rows)
		if err != nil {
			return "", err
		}
		return g.Struct(m)

	case parser.EnumTable:
		m, err := analyzer.BuildEnum(typeName, rows)
		if err != nil {
			return "", err
		}
		return g.Enum(m)

	case parser.BitFieldTable:
		m, err := analyzer.BuildBitField(typeName, rows)
		if err != nil {
			return "", err
		}
		return g.BitField(m, passthrough)

	default:
		return "", fmt.Errorf("unsupported table kind: %v", kind)
	}
}

func validateTypeName(name string) error {
	if !token.IsIdentifier(name) {
		return fmt.Errorf("type name must be a Go identifier, got: %q", name)
	}
	return nil
}
