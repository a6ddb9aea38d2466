package nxtimport

import (
	"strconv"
	"strings"
)

// Component type codes understood by the decoder. Alarm (1292) and
// stored-value (2304) components are extracted separately and never
// reach the generic decode pass.
const (
	typeBinarySwitch    = 1281
	typeBinaryIndicator = 1282
	typeFluidLevel      = 1283
	typeTemperature     = 1285
	typeSwitchControl   = 1291
	typeAlarm           = 1292
	typeProprietaryPGN  = 1361
	typeJ1939AC         = 1376
	typeStoredValue     = 2304
)

// Parameter group numbers produced by the component decoders.
const (
	pgnBinarySwitchBank  = 127501
	pgnSwitchBankControl = 127502
	pgnFluidLevel        = 127505
	pgnTemperature       = 130312
	pgnProprietary       = 65280
)

// fluidTypes is the NMEA-2000 fluid type table (PGN 127505).
var fluidTypes = []string{
	"fuel",
	"fresh water",
	"waste water",
	"live well",
	"oil",
	"black water",
}

// temperatureSources is the NMEA-2000 temperature source table
// (PGN 130312).
var temperatureSources = []string{
	"sea temperature",
	"outside temperature",
	"inside temperature",
	"engine room temperature",
	"main cabin temperature",
	"live well temperature",
	"bait well temperature",
	"refrigeration temperature",
	"heating system temperature",
	"dew point temperature",
	"apparent wind chill temperature",
	"theoretical wind chill temperature",
	"heat index temperature",
	"freezer temperature",
}

// j1939ACPGNs maps a J1939 AC component's selector (property 1) to the
// generator AC quantity PGN it reports.
var j1939ACPGNs = []int{
	65005, 65006, 65007, 65008,
	65009, 65010, 65011, 65012,
	65013, 65014, 65015, 65016,
}

// properties is a component's property list reduced to a mapping from
// property id to parsed integer. Values that fail to parse are absent,
// not zero; for duplicate ids the last occurrence wins, so a later
// unparseable value erases an earlier parseable one.
type properties map[int]int

func newProperties(raw []RawProperty) properties {
	props := make(properties, len(raw))
	for _, p := range raw {
		v, err := strconv.Atoi(strings.TrimSpace(p.Value))
		if err != nil {
			delete(props, p.ID)
			continue
		}
		props[p.ID] = v
	}
	return props
}

// ref returns a pointer to the property value, nil when absent.
func (p properties) ref(id int) *int {
	v, ok := p[id]
	if !ok {
		return nil
	}
	return &v
}

// n2kDirection reads a property as an N2kDirection, N2kNone when absent.
func (p properties) n2kDirection(id int) N2kDirection {
	v, ok := p[id]
	if !ok {
		return N2kNone
	}
	return N2kDirectionFromCode(v)
}

// oneBasedLabel reads a zero-based switch/indicator number property and
// returns its one-based display form, empty when absent.
func (p properties) oneBasedLabel(id int) string {
	v, ok := p[id]
	if !ok {
		return ""
	}
	return strconv.Itoa(v + 1)
}

// tableLabel reads a property as an index into a label table,
// "unknown" when absent or out of range.
func (p properties) tableLabel(id int, table []string) string {
	v, ok := p[id]
	if !ok || v < 0 || v >= len(table) {
		return "unknown"
	}
	return table[v]
}

// decodeComponent resolves a raw component to protocol identifiers via
// the closed per-type dispatch. Property ids are positional within each
// type, not universal. Type codes without a decoder yield the neutral
// record (empty name, PGN 0, direction none); they never fail.
func decodeComponent(raw ComponentRaw) DecodedComponent {
	props := newProperties(raw.Properties)

	switch raw.TypeID {
	case typeFluidLevel:
		return DecodedComponent{
			Name:      "Fluid Level",
			PGN:       pgnFluidLevel,
			Instance:  props.ref(0),
			Label:     props.tableLabel(1, fluidTypes),
			Direction: props.n2kDirection(2),
		}

	case typeBinarySwitch:
		return DecodedComponent{
			Name:      "Binary Switch",
			PGN:       pgnBinarySwitchBank,
			Instance:  props.ref(0),
			Label:     props.oneBasedLabel(1),
			Direction: props.n2kDirection(5),
		}

	case typeBinaryIndicator:
		return DecodedComponent{
			Name:      "Binary Indicator",
			PGN:       pgnBinarySwitchBank,
			Instance:  props.ref(0),
			Label:     props.oneBasedLabel(1),
			Direction: props.n2kDirection(2),
		}

	case typeTemperature:
		return DecodedComponent{
			Name:      "Temperature",
			PGN:       pgnTemperature,
			Instance:  props.ref(0),
			Label:     props.tableLabel(1, temperatureSources),
			Direction: props.n2kDirection(5),
		}

	case typeSwitchControl:
		return DecodedComponent{
			Name:      "Switch Control",
			PGN:       pgnSwitchBankControl,
			Instance:  props.ref(1),
			Label:     props.oneBasedLabel(2),
			Direction: props.n2kDirection(0),
		}

	case typeJ1939AC:
		return DecodedComponent{
			Name:      "J1939 AC PGN",
			PGN:       j1939PGN(props),
			Direction: N2kNone,
			Device:    props.ref(0),
		}

	case typeProprietaryPGN:
		return DecodedComponent{
			Name:      "Proprietary PGN",
			PGN:       pgnProprietary,
			Instance:  props.ref(2),
			Direction: props.n2kDirection(0),
		}

	default:
		return DecodedComponent{Direction: N2kNone}
	}
}

// j1939PGN resolves the PGN for a J1939 AC component, 0 when the
// selector is absent or out of range.
func j1939PGN(props properties) int {
	v, ok := props[1]
	if !ok || v < 0 || v >= len(j1939ACPGNs) {
		return 0
	}
	return j1939ACPGNs[v]
}
