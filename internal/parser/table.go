package parser

import (
	"fmt"
	"strconv"
	"strings"
)

// TableKind selects the row shape a Scanner recognizes
type TableKind int

const (
	StructTable   TableKind = iota // 04h 2.0+ Manufacturer BYTE STRING ...
	EnumTable                      // 01h Other
	BitFieldTable                  // Bit 2 64-bit Capable
)

func (k TableKind) String() string {
	switch k {
	case StructTable:
		return "struct"
	case EnumTable:
		return "enum"
	case BitFieldTable:
		return "bitfield"
	default:
		return "unknown"
	}
}

// ParseTableKind is the inverse of TableKind.String
func ParseTableKind(s string) (TableKind, error) {
	switch s {
	case "struct":
		return StructTable, nil
	case "enum":
		return EnumTable, nil
	case "bitfield":
		return BitFieldTable, nil
	default:
		return 0, fmt.Errorf("unknown table kind: %s (expected struct, enum or bitfield)", s)
	}
}

// UnmarshalText lets table kinds be read from fixtures by name
func (k *TableKind) UnmarshalText(text []byte) error {
	kind, err := ParseTableKind(string(text))
	if err != nil {
		return err
	}
	*k = kind
	return nil
}

// ParseHex parses a two digit hex marker: "0Ah" → 10
func ParseHex(marker string) (int, error) {
	digits, ok := strings.CutSuffix(marker, "h")
	if !ok || len(digits) != 2 {
		return 0, fmt.Errorf("invalid hex marker: %s", marker)
	}
	v, err := strconv.ParseUint(digits, 16, 8)
	if err != nil {
		return 0, fmt.Errorf("invalid hex marker: %s", marker)
	}
	return int(v), nil
}

// ParseBit parses a decimal bit index in [0, 63]
func ParseBit(marker string) (int, error) {
	bit, err := strconv.Atoi(marker)
	if err != nil {
		return 0, fmt.Errorf("invalid bit index: %s", marker)
	}
	if bit < 0 || bit > 63 {
		return 0, fmt.Errorf("bit index out of range: %d", bit)
	}
	return bit, nil
}
