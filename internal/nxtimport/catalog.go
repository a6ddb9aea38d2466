package nxtimport

import "strconv"

// moduleCatalog maps a unit-type code to its module model name.
var moduleCatalog = map[int]string{
	1:   "DCM-8 power module",
	4:   "DCM-16 power module",
	16:  "ACM-4 interface module",
	20:  "SIM-12 switch input module",
	24:  "KP-8 keypad",
	100: "MCU-100 bus master",
	101: "MCU-101 bus master",
}

// moduleName resolves a unit's display model from its type code and
// variant number. Unrecognized type codes yield an "unknown module"
// sentinel carrying the code.
func moduleName(typeID, variant int) string {
	name, ok := moduleCatalog[typeID]
	if !ok {
		return "unknown module (" + strconv.Itoa(typeID) + ")"
	}
	if variant > 0 {
		name += " mk" + strconv.Itoa(variant)
	}
	return name
}

// memoryType describes one stored-value storage class.
type memoryType struct {
	label string
	bits  int
}

// memoryTypes maps a stored-value type code (property 0 of a 2304
// component) to its storage class.
var memoryTypes = map[int]memoryType{
	0: {label: "flag", bits: 1},
	1: {label: "byte", bits: 8},
	2: {label: "word", bits: 16},
	3: {label: "dword", bits: 32},
}

// decodeMemoryType resolves a stored-value type code, defaulting to the
// 1-bit "unknown" class for unrecognized codes.
func decodeMemoryType(code int) (string, int) {
	mt, ok := memoryTypes[code]
	if !ok {
		return "unknown", 1
	}
	return mt.label, mt.bits
}
