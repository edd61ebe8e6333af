package codegen

import (
	"fmt"
	"go/format"
	"strconv"
	"strings"

	"github.com/alexhholmes/smbiosgen/internal/analyzer"
)

// Generator renders table models as Go declarations.
//
// The output is a declaration list without package clause or imports, meant
// to be pasted into an existing package. Enum renderers need "strconv",
// bit-field renderers need "strings", and structures embed the package's
// Table header type.
type Generator struct {
	section string // DSP0134 section cited in doc comments
}

// NewGenerator creates a generator citing a placeholder section number,
// to be filled in by hand from the table's caption
func NewGenerator() *Generator {
	return &Generator{section: "x.x"}
}

// Struct generates the structure type followed by a declaration for each
// nested type its fields refer to
func (g *Generator) Struct(m *analyzer.StructModel) (string, error) {
	var code strings.Builder

	code.WriteString(fmt.Sprintf("// %s is defined in DSP0134 %s.\n", m.TypeName, g.section))
	code.WriteString(fmt.Sprintf("type %s struct {\n", m.TypeName))
	code.WriteString(fmt.Sprintf("\t%s // 00h\n", analyzer.HeaderField))
	for _, f := range m.Fields {
		code.WriteString(fmt.Sprintf("\t%s %s // %s\n", f.Name, f.GoType(), fieldComment(f)))
	}
	code.WriteString("}\n")

	for _, t := range m.Nested {
		code.WriteString("\n")
		code.WriteString(fmt.Sprintf("// %s is defined in DSP0134 %s.x.\n", t.Name, g.section))
		code.WriteString(fmt.Sprintf("type %s %s\n", t.Name, analyzer.GoType(t.Width)))
	}

	return g.format(code.String())
}

func fieldComment(f analyzer.FieldRecord) string {
	offset := fmt.Sprintf("%02Xh", f.Offset)
	if f.Comment == "" {
		return offset
	}
	return offset + " " + commentText(f.Comment)
}

// Enum generates the enum type, its values and a String method falling back
// to the decimal value. Every constant carries the type: a constant with its
// own value and no type is untyped.
func (g *Generator) Enum(m *analyzer.ValueModel) (string, error) {
	var code strings.Builder

	g.writeTypeDecl(&code, m)
	code.WriteString(fmt.Sprintf("// %s values are defined in DSP0134 %s.\n", m.TypeName, g.section))
	code.WriteString("const (\n")
	for _, v := range m.Values {
		code.WriteString(fmt.Sprintf("\t%s %s = 0x%02x // %s\n", v.Name, m.TypeName, v.Value, commentText(v.Description)))
	}
	code.WriteString(")\n\n")

	code.WriteString(fmt.Sprintf("func (v %s) String() string {\n", m.TypeName))
	code.WriteString("\tswitch v {\n")
	for _, v := range m.Values {
		code.WriteString(fmt.Sprintf("\tcase %s:\n", v.Name))
		code.WriteString(fmt.Sprintf("\t\treturn %s\n", strconv.Quote(v.Description)))
	}
	code.WriteString("\t}\n")
	code.WriteString("\treturn strconv.Itoa(int(v))\n")
	code.WriteString("}\n")

	return g.format(code.String())
}

// BitField generates the flag type, one constant per bit and a String method
// listing the descriptions of all set bits, one per line. Passthrough lines
// are appended as comments.
func (g *Generator) BitField(m *analyzer.ValueModel, passthrough []string) (string, error) {
	var code strings.Builder

	g.writeTypeDecl(&code, m)
	code.WriteString(fmt.Sprintf("// %s fields are defined in DSP0134 %s.\n", m.TypeName, g.section))
	code.WriteString("const (\n")
	for _, v := range m.Values {
		code.WriteString(fmt.Sprintf("\t%s %s = (1 << %d) // %s\n", v.Name, m.TypeName, v.Value, commentText(v.Description)))
	}
	code.WriteString(")\n\n")

	code.WriteString(fmt.Sprintf("func (v %s) String() string {\n", m.TypeName))
	code.WriteString("\tvar lines []string\n")
	for _, v := range m.Values {
		code.WriteString(fmt.Sprintf("\tif v&%s != 0 {\n", v.Name))
		code.WriteString(fmt.Sprintf("\t\tlines = append(lines, %s)\n", strconv.Quote(v.Description)))
		code.WriteString("\t}\n")
	}
	code.WriteString("\treturn strings.Join(lines, \"\\n\")\n")
	code.WriteString("}\n")

	if len(passthrough) > 0 {
		code.WriteString("\n")
		for _, line := range passthrough {
			code.WriteString("// " + commentText(line) + "\n")
		}
	}

	return g.format(code.String())
}

func (g *Generator) writeTypeDecl(code *strings.Builder, m *analyzer.ValueModel) {
	code.WriteString(fmt.Sprintf("// %s is defined in DSP0134 %s.\n", m.TypeName, g.section))
	code.WriteString(fmt.Sprintf("type %s %s\n\n", m.TypeName, analyzer.GoType(m.Width)))
}

// commentText replaces invalid UTF-8, which gofmt rejects even in comments.
// String literals keep the original bytes through strconv.Quote.
func commentText(s string) string {
	return strings.ToValidUTF8(s, "\uFFFD")
}

// format gofmts the generated declarations; a failure here means the
// generator produced invalid Go
func (g *Generator) format(src string) (string, error) {
	out, err := format.Source([]byte(src))
	if err != nil {
		return "", fmt.Errorf("format generated code: %w\n%s", err, src)
	}
	return string(out), nil
}
