package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexhholmes/smbiosgen/internal/codegen"
	"github.com/alexhholmes/smbiosgen/internal/parser"
)

var tableKinds = []parser.TableKind{parser.StructTable, parser.EnumTable, parser.BitFieldTable}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "smbiosgen",
		Short: "Generate Go declarations from DSP0134 tables",
		Long: `smbiosgen reads a DSP0134 (SMBIOS) table from stdin and writes Go
declarations for it to stdout.

Commands:
  struct    Structure table (04h 2.0+ Name BYTE STRING ...) to a struct type
  enum      Enumerated value table (01h Other) to constants and String()
  bitfield  Bit-field table (Bit 0 Reserved) to flag constants and String()
  parse     Print the rows and field model read from a table
`,
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	for _, kind := range tableKinds {
		root.AddCommand(newGenerateCmd(kind))
	}
	root.AddCommand(newParseCmd())

	return root
}

// newGenerateCmd creates the command generating declarations for one table kind
func newGenerateCmd(kind parser.TableKind) *cobra.Command {
	return &cobra.Command{
		Use:   kind.String() + " <TypeName>",
		Short: fmt.Sprintf("Generate a %s type from a table on stdin", kind),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			code, err := codegen.Compile(kind, args[0], cmd.InOrStdin())
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), code)
			return err
		},
	}
}
