package example

import "strconv"

// ChassisType is defined in DSP0134 7.4.1.
type ChassisType uint8

// ChassisType values are defined in DSP0134 7.4.1.
const (
	ChassisTypeOther             ChassisType = 0x01 // Other
	ChassisTypeUnknown           ChassisType = 0x02 // Unknown
	ChassisTypeDesktop           ChassisType = 0x03 // Desktop
	ChassisTypeLowProfileDesktop ChassisType = 0x04 // Low Profile Desktop
	ChassisTypePizzaBox          ChassisType = 0x05 // Pizza Box
	ChassisTypeMiniTower         ChassisType = 0x06 // Mini Tower
	ChassisTypeTower             ChassisType = 0x07 // Tower
	ChassisTypePortable          ChassisType = 0x08 // Portable
	ChassisTypeLaptop            ChassisType = 0x09 // Laptop
	ChassisTypeNotebook          ChassisType = 0x0a // Notebook
	ChassisTypeHandHeld          ChassisType = 0x0b // Hand Held
	ChassisTypeDockingStation    ChassisType = 0x0c // Docking Station
	ChassisTypeAllInOne          ChassisType = 0x0d // All in One
	ChassisTypeSubNotebook       ChassisType = 0x0e // Sub Notebook
	ChassisTypeSpacesaving       ChassisType = 0x0f // Space-saving
	ChassisTypeLunchBox          ChassisType = 0x10 // Lunch Box
)

func (v ChassisType) String() string {
	switch v {
	case ChassisTypeOther:
		return "Other"
	case ChassisTypeUnknown:
		return "Unknown"
	case ChassisTypeDesktop:
		return "Desktop"
	case ChassisTypeLowProfileDesktop:
		return "Low Profile Desktop"
	case ChassisTypePizzaBox:
		return "Pizza Box"
	case ChassisTypeMiniTower:
		return "Mini Tower"
	case ChassisTypeTower:
		return "Tower"
	case ChassisTypePortable:
		return "Portable"
	case ChassisTypeLaptop:
		return "Laptop"
	case ChassisTypeNotebook:
		return "Notebook"
	case ChassisTypeHandHeld:
		return "Hand Held"
	case ChassisTypeDockingStation:
		return "Docking Station"
	case ChassisTypeAllInOne:
		return "All in One"
	case ChassisTypeSubNotebook:
		return "Sub Notebook"
	case ChassisTypeSpacesaving:
		return "Space-saving"
	case ChassisTypeLunchBox:
		return "Lunch Box"
	}
	return strconv.Itoa(int(v))
}
