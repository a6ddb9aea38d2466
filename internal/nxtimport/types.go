package nxtimport

// Project is the complete decoded model of an NXT project file.
type Project struct {
	// Metadata holds the project element attributes, nil when the
	// document carries no project element.
	Metadata *ProjectMetadata `json:"metadata,omitempty"`

	// Units are the physical units in document order.
	Units []Unit `json:"units"`

	// Schemas are the named tabs, ordered by sort index.
	Schemas []Schema `json:"schemas,omitempty"`

	// Components are the decoded NMEA-2000 components across all
	// schemas, in their deterministic sort order.
	Components []DecodedComponent `json:"components,omitempty"`

	// Alarms are the project-wide alarms, ordered by numeric alarm id.
	Alarms []Alarm `json:"alarms,omitempty"`

	// Memory is the stored-value memory map, ordered by location.
	Memory []MemoryAllocation `json:"memory,omitempty"`

	// MasterDevice is the id of the unit resolved as bus master,
	// -1 when no unit qualifies.
	MasterDevice int `json:"master_device"`

	// Statistics summarises the decode.
	Statistics ProjectStatistics `json:"statistics"`

	// Warnings contains permissive-decode diagnostics (unknown codes).
	Warnings []ParseWarning `json:"warnings,omitempty"`
}

// ProjectStatistics summarises decode results.
type ProjectStatistics struct {
	Units             int `json:"units"`
	Channels          int `json:"channels"`
	Schemas           int `json:"schemas"`
	Components        int `json:"components"`
	SkippedComponents int `json:"skipped_components"`
	Alarms            int `json:"alarms"`
	MemoryEntries     int `json:"memory_entries"`
}

// ParseWarning is a non-fatal decode diagnostic.
type ParseWarning struct {
	// Code is a machine-readable warning code.
	Code string `json:"code"`

	// Message is a human-readable description.
	Message string `json:"message"`
}

// ProjectMetadata holds the attributes of the project root element.
type ProjectMetadata struct {
	Firmware          string `json:"firmware,omitempty"`
	FileFormatVersion string `json:"file_format_version,omitempty"`
	SavedAtUTC        string `json:"saved_at_utc,omitempty"`
	FormatVersion     string `json:"format_version,omitempty"`
	StudioVersion     string `json:"studio_version,omitempty"`
}

// Unit is a physical unit on the bus.
type Unit struct {
	// ID is the unit identifier, used as the device id on the bus.
	ID int `json:"id"`

	// Serial is the unit serial number ("N/A" when absent).
	Serial string `json:"serial"`

	// Name is the display name ("N/A" when absent).
	Name string `json:"name"`

	// TypeID is the numeric unit-type code.
	TypeID int `json:"type_id"`

	// Variant is the standard unit variant number.
	Variant int `json:"variant"`

	// Model is the module name resolved from the unit-type catalog.
	Model string `json:"model"`

	// Groups are the unit's channel groups in document order.
	Groups []ChannelGroup `json:"groups,omitempty"`

	// Properties are the unit's raw properties, retained for
	// master-device resolution.
	Properties []RawProperty `json:"-"`
}

// ChannelGroup is an ordered group of channels within a unit.
type ChannelGroup struct {
	ID       int       `json:"id"`
	Channels []Channel `json:"channels,omitempty"`
}

// Channel is a single electrical channel with its raw setting codes and
// their decoded descriptions.
type Channel struct {
	Number    int    `json:"number"`
	Name      string `json:"name"`
	Direction string `json:"direction,omitempty"`

	// Raw setting codes. Absent input codes default to 0; absent output
	// codes default to -1, the explicit "not configured" sentinel.
	InMain  int `json:"in_main"`
	InSub   int `json:"in_sub"`
	OutMain int `json:"out_main"`
	OutSub  int `json:"out_sub"`

	// Input and Output are the decoded setting descriptions.
	Input  ChannelSetting `json:"input"`
	Output ChannelSetting `json:"output"`
}

// ChannelSetting is a decoded {type, subtype} pair for one side of a
// channel. Unrecognized codes yield an "unknown:" sentinel carrying the
// offending code.
type ChannelSetting struct {
	Type    string `json:"type"`
	Subtype string `json:"subtype"`
}

// Schema is a named grouping ("tab") that scopes components and alarms.
type Schema struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	SortIndex int    `json:"sort_index"`
}

// RawProperty is a single (id, value) property as found in the XML.
type RawProperty struct {
	ID    int    `json:"id"`
	Value string `json:"value"`
}

// ComponentRaw is an undecoded component record.
type ComponentRaw struct {
	// TypeID is the component-type code (componentId attribute).
	TypeID int `json:"type_id"`

	// ChannelID and UnitID are optional references, raw attribute text.
	ChannelID string `json:"channel_id,omitempty"`
	UnitID    string `json:"unit_id,omitempty"`

	// Revision is the component revision attribute.
	Revision string `json:"revision,omitempty"`

	// InstanceID is the component's own id attribute.
	InstanceID string `json:"instance_id,omitempty"`

	// Properties is the ordered property list.
	Properties []RawProperty `json:"properties,omitempty"`
}

// DecodedComponent is a component resolved to protocol identifiers.
type DecodedComponent struct {
	// Name is the display name of the component type, empty when the
	// type code has no registered decoder.
	Name string `json:"name"`

	// PGN is the NMEA-2000/J1939 parameter group number, 0 if unknown.
	PGN int `json:"pgn"`

	// Instance is the data instance, nil when the type carries none.
	Instance *int `json:"instance,omitempty"`

	// Label is the human-readable label (may be empty).
	Label string `json:"label"`

	// Direction is the transmit/receive role on the bus.
	Direction N2kDirection `json:"direction"`

	// Device is the owning device id, nil when neither the component
	// nor the master-device resolver supplies one.
	Device *int `json:"device,omitempty"`

	// Tab is the owning schema name.
	Tab string `json:"tab,omitempty"`
}

// Alarm is a configured project alarm.
type Alarm struct {
	// Tab is the owning schema name.
	Tab string `json:"tab"`

	// TypeID is the component-type code of the alarm component.
	TypeID int `json:"type_id"`

	// Revision is the component revision attribute.
	Revision string `json:"revision,omitempty"`

	// InstanceID is the alarm component's id attribute.
	InstanceID string `json:"instance_id,omitempty"`

	// ID is the alarm id, numeric-sortable ("N/A" when absent).
	ID string `json:"id"`

	// Name is the alarm name ("N/A" when absent).
	Name string `json:"name"`
}

// MemoryAllocation is a stored-value memory entry.
type MemoryAllocation struct {
	// Type is the storage type label ("unknown" for unrecognized codes).
	Type string `json:"type"`

	// Bits is the storage width in bits.
	Bits int `json:"bits"`

	// Location is the integer memory location.
	Location int `json:"location"`
}

// ValidationResult is the outcome of the pre-flight structural check.
type ValidationResult struct {
	// Valid is true when no check was violated.
	Valid bool `json:"valid"`

	// Violations lists the violated checks, empty when valid.
	Violations []Violation `json:"violations,omitempty"`
}

// Violation is a single failed structural check.
type Violation struct {
	// Code is a machine-readable check code.
	Code string `json:"code"`

	// Message is a human-readable description.
	Message string `json:"message"`
}
