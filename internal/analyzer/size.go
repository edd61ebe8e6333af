package analyzer

import "strings"

// widthTokens maps Length column words to byte widths.
// Longer tokens come first so DWORD and QWORD are not read as WORD.
var widthTokens = []struct {
	token string
	width int
}{
	{"QWORD", 8},
	{"DWORD", 4},
	{"WORD", 2},
	{"BYTE", 1},
}

// WidthOf returns the width in bytes named by a Length column word.
// The token may be part of a longer word ("BYTEs").
func WidthOf(word string) (int, bool) {
	for _, wt := range widthTokens {
		if strings.Contains(word, wt.token) {
			return wt.width, true
		}
	}
	return 0, false
}

// GoType returns the unsigned integer type holding width bytes
func GoType(width int) string {
	switch width {
	case 2:
		return "uint16"
	case 4:
		return "uint32"
	case 8:
		return "uint64"
	default:
		return "uint8"
	}
}

// BitWidth returns the width in bytes of the smallest unsigned integer with
// the given bit index
func BitWidth(bit int) int {
	switch {
	case bit < 8:
		return 1
	case bit < 16:
		return 2
	case bit < 32:
		return 4
	default:
		return 8
	}
}

// NestedType is an enum or bit-field type referenced by a structure field
type NestedType struct {
	Name  string
	Kind  FieldKind
	Width int
}

// TypeRegistry tracks nested types in the order they are first referenced
type TypeRegistry struct {
	types []NestedType
	index map[string]int // type name → position in types
}

func NewTypeRegistry() *TypeRegistry {
	return &TypeRegistry{
		index: make(map[string]int),
	}
}

// Register adds a nested type. It returns false, leaving the registry
// unchanged, if a type with the same name is already known.
func (r *TypeRegistry) Register(t NestedType) bool {
	if _, ok := r.index[t.Name]; ok {
		return false
	}
	r.index[t.Name] = len(r.types)
	r.types = append(r.types, t)
	return true
}

// Lookup returns a registered type by name
func (r *TypeRegistry) Lookup(name string) (NestedType, bool) {
	i, ok := r.index[name]
	if !ok {
		return NestedType{}, false
	}
	return r.types[i], true
}

// Types returns the registered types in registration order
func (r *TypeRegistry) Types() []NestedType {
	out := make([]NestedType, len(r.types))
	copy(out, r.types)
	return out
}
