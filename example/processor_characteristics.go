package example

import "strings"

// ProcessorCharacteristics is defined in DSP0134 7.5.9.
type ProcessorCharacteristics uint16

// ProcessorCharacteristics fields are defined in DSP0134 7.5.9.
const (
	ProcessorCharacteristicsReserved                ProcessorCharacteristics = (1 << 0) // Reserved
	ProcessorCharacteristicsUnknown                 ProcessorCharacteristics = (1 << 1) // Unknown
	ProcessorCharacteristics64bitCapable            ProcessorCharacteristics = (1 << 2) // 64-bit Capable
	ProcessorCharacteristicsMultiCore               ProcessorCharacteristics = (1 << 3) // Multi-Core
	ProcessorCharacteristicsHardwareThread          ProcessorCharacteristics = (1 << 4) // Hardware Thread
	ProcessorCharacteristicsExecuteProtection       ProcessorCharacteristics = (1 << 5) // Execute Protection
	ProcessorCharacteristicsEnhancedVirtualization  ProcessorCharacteristics = (1 << 6) // Enhanced Virtualization
	ProcessorCharacteristicsPowerPerformanceControl ProcessorCharacteristics = (1 << 7) // Power/Performance Control
	ProcessorCharacteristics128bitCapable           ProcessorCharacteristics = (1 << 8) // 128-bit Capable
	ProcessorCharacteristicsArm64SoCID              ProcessorCharacteristics = (1 << 9) // Arm64 SoC ID
)

func (v ProcessorCharacteristics) String() string {
	var lines []string
	if v&ProcessorCharacteristicsReserved != 0 {
		lines = append(lines, "Reserved")
	}
	if v&ProcessorCharacteristicsUnknown != 0 {
		lines = append(lines, "Unknown")
	}
	if v&ProcessorCharacteristics64bitCapable != 0 {
		lines = append(lines, "64-bit Capable")
	}
	if v&ProcessorCharacteristicsMultiCore != 0 {
		lines = append(lines, "Multi-Core")
	}
	if v&ProcessorCharacteristicsHardwareThread != 0 {
		lines = append(lines, "Hardware Thread")
	}
	if v&ProcessorCharacteristicsExecuteProtection != 0 {
		lines = append(lines, "Execute Protection")
	}
	if v&ProcessorCharacteristicsEnhancedVirtualization != 0 {
		lines = append(lines, "Enhanced Virtualization")
	}
	if v&ProcessorCharacteristicsPowerPerformanceControl != 0 {
		lines = append(lines, "Power/Performance Control")
	}
	if v&ProcessorCharacteristics128bitCapable != 0 {
		lines = append(lines, "128-bit Capable")
	}
	if v&ProcessorCharacteristicsArm64SoCID != 0 {
		lines = append(lines, "Arm64 SoC ID")
	}
	return strings.Join(lines, "\n")
}

// Table 7.5.9 - Processor Characteristics
// Byte Bit Position Meaning if Set
// Bits 10:15 Reserved
