package nxtimport

import "errors"

// Sentinel errors for structural decode failures.
var (
	// ErrInvalidXML indicates the document is not well-formed XML.
	ErrInvalidXML = errors.New("malformed project XML")

	// ErrNoUnitsContainer indicates the units container element is missing.
	ErrNoUnitsContainer = errors.New("units container not found")

	// ErrMultipleUnitsContainers indicates more than one units container.
	ErrMultipleUnitsContainers = errors.New("multiple units containers found")

	// ErrNoUnits indicates the units container has no unit children.
	ErrNoUnits = errors.New("no units found in project")

	// ErrFileTooLarge indicates the document exceeds the size limit.
	ErrFileTooLarge = errors.New("document exceeds maximum size limit")
)

// Warning codes for permissive-decode diagnostics. These never abort a
// parse; they are collected on the Project for display to the user.
const (
	WarnUnknownComponentType = "UNKNOWN_COMPONENT_TYPE"
	WarnUnknownInputSetting  = "UNKNOWN_INPUT_SETTING"
	WarnUnknownOutputSetting = "UNKNOWN_OUTPUT_SETTING"
	WarnUnknownMemoryType    = "UNKNOWN_MEMORY_TYPE"
	WarnNoMasterDevice       = "NO_MASTER_DEVICE"
)
