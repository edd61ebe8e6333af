package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/alexhholmes/smbiosgen/internal/analyzer"
	"github.com/alexhholmes/smbiosgen/internal/parser"
)

func newParseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse <struct|enum|bitfield> <TypeName>",
		Short: "Print the field model read from a table on stdin",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := parser.ParseTableKind(args[0])
			if err != nil {
				return err
			}
			return dumpTable(cmd.OutOrStdout(), kind, args[1], cmd.InOrStdin())
		},
	}
}

func dumpTable(w io.Writer, kind parser.TableKind, typeName string, r io.Reader) error {
	rows, passthrough, err := parser.ParseRows(r, kind)
	if err != nil {
		return err
	}

	if len(rows) == 0 {
		fmt.Fprintln(w, "No rows found")
		return nil
	}

	fmt.Fprintf(w, "%s (%s, %d rows)\n", typeName, kind, len(rows))

	if kind == parser.StructTable {
		m, err := analyzer.BuildStruct(typeName, rows)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, "Fields:")
		for _, f := range m.Fields {
			fmt.Fprintf(w, "  %-24s %-32s @%02Xh %s\n", f.Name, f.GoType(), f.Offset, f.Kind)
		}
		if len(m.Nested) > 0 {
			fmt.Fprintln(w, "Nested:")
			for _, t := range m.Nested {
				fmt.Fprintf(w, "  %-24s %-32s %s\n", t.Name, analyzer.GoType(t.Width), t.Kind)
			}
		}
		return nil
	}

	build := analyzer.BuildEnum
	if kind == parser.BitFieldTable {
		build = analyzer.BuildBitField
	}
	m, err := build(typeName, rows)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "Values (%s):\n", analyzer.GoType(m.Width))
	for _, v := range m.Values {
		fmt.Fprintf(w, "  %-40s %4d %q\n", v.Name, v.Value, v.Description)
	}
	for _, line := range passthrough {
		fmt.Fprintf(w, "  # %s\n", line)
	}
	return nil
}
