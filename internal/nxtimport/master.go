package nxtimport

// noMasterDevice is returned when no unit qualifies as bus master.
const noMasterDevice = -1

// Unit-type codes of the dedicated master-module family.
const (
	typeMasterModule    = 101
	typeMasterModuleOld = 100
)

// masterCapableTypes are unit types that can be promoted to bus master
// when configured for it (property 2 set to "2").
var masterCapableTypes = map[int]bool{
	1:  true,
	4:  true,
	16: true,
	20: true,
}

// masterRoleProperty is the unit property that carries the configured
// bus role; the raw value "2" marks the unit as master.
const (
	masterRoleProperty = 2
	masterRoleValue    = "2"
)

// resolveMasterDevice scans units in document order and returns the id
// of the first unit acting as bus master: a dedicated master module, or
// a master-capable unit whose role property is set. Returns
// noMasterDevice (-1) when no unit qualifies.
func resolveMasterDevice(units []Unit) int {
	for _, u := range units {
		if u.TypeID == typeMasterModule || u.TypeID == typeMasterModuleOld {
			return u.ID
		}
		if masterCapableTypes[u.TypeID] && unitProperty(u, masterRoleProperty) == masterRoleValue {
			return u.ID
		}
	}
	return noMasterDevice
}

// unitProperty returns the raw value of the unit property with the
// given id, empty when absent. Last occurrence wins, matching the
// component property semantics.
func unitProperty(u Unit, id int) string {
	value := ""
	for _, p := range u.Properties {
		if p.ID == id {
			value = p.Value
		}
	}
	return value
}
