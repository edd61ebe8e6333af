// Package example holds declarations generated by smbiosgen from the DSP0134
// tables in testdata, with section numbers filled in by hand:
//
//	smbiosgen enum ChassisType < testdata/chassis_type.txt
//	smbiosgen bitfield ProcessorCharacteristics < testdata/processor_characteristics.txt
//	smbiosgen struct ChassisInfo < testdata/chassis_info.txt
package example

// Table is the header every SMBIOS structure starts with
type Table struct {
	Type   uint8
	Length uint8
	Handle uint16
}
