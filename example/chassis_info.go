package example

// ChassisInfo is defined in DSP0134 7.4.
type ChassisInfo struct {
	Table                                                    // 00h
	Manufacturer                 string                      // 04h Number of null-terminated string
	Type                         ChassisInfoType             // 05h Chassis type
	Version                      string                      // 06h Number of null-terminated string
	SerialNumber                 string                      // 07h Number of null-terminated string
	AssetTagNumber               string                      // 08h Number of null-terminated string
	BootupState                  ChassisInfoBootupState      // 09h State of the enclosure when it was last booted
	PowerSupplyState             ChassisInfoPowerSupplyState // 0Ah State of the enclosure's power supply (PSU) when last...
	ThermalState                 ChassisInfoThermalState     // 0Bh Thermal state of the enclosure when last booted
	SecurityStatus               ChassisInfoSecurityStatus   // 0Ch Physical security status of the enclosure when last...
	OEMdefined                   uint32                      // 0Dh OEM- or BIOS vendor-specific information
	Height                       uint8                       // 11h Height of the enclosure, in 'U's
	NumberOfPowerCords           uint8                       // 12h Number of power cords associated with the enclosure
	ContainedElementCount        uint8                       // 13h Number of Contained Element records that follow
	ContainedElementRecordLength uint8                       // 14h Byte length of each Contained Element record
}

// ChassisInfoType is defined in DSP0134 7.4.1.
type ChassisInfoType uint8

// ChassisInfoBootupState is defined in DSP0134 7.4.2.
type ChassisInfoBootupState uint8

// ChassisInfoPowerSupplyState is defined in DSP0134 7.4.2.
type ChassisInfoPowerSupplyState uint8

// ChassisInfoThermalState is defined in DSP0134 7.4.2.
type ChassisInfoThermalState uint8

// ChassisInfoSecurityStatus is defined in DSP0134 7.4.3.
type ChassisInfoSecurityStatus uint8
