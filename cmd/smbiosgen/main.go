// Command smbiosgen generates Go declarations from DSP0134 (SMBIOS) tables.
//
// The table is read from stdin as copied from the DSP0134 document,
// and the declarations are written to stdout:
//
//	smbiosgen struct ChassisInfo < chassis_info.txt
//	smbiosgen enum ChassisType < chassis_type.txt
//	smbiosgen bitfield ProcessorCharacteristics < processor_characteristics.txt
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
