package nxtimport

import "encoding/json"

// Direction is the configured signal direction of a channel.
type Direction int

// Channel directions. Codes outside the known set map to DirectionNone.
const (
	DirectionNone   Direction = -1
	DirectionBoth   Direction = 0
	DirectionInput  Direction = 1
	DirectionOutput Direction = 2
)

// DirectionFromCode maps a raw numeric direction code to a Direction.
func DirectionFromCode(code int) Direction {
	switch code {
	case 0:
		return DirectionBoth
	case 1:
		return DirectionInput
	case 2:
		return DirectionOutput
	default:
		return DirectionNone
	}
}

// DirectionFromString maps a string form back to a Direction.
func DirectionFromString(s string) Direction {
	switch s {
	case "both":
		return DirectionBoth
	case "input":
		return DirectionInput
	case "output":
		return DirectionOutput
	default:
		return DirectionNone
	}
}

func (d Direction) String() string {
	switch d {
	case DirectionBoth:
		return "both"
	case DirectionInput:
		return "input"
	case DirectionOutput:
		return "output"
	default:
		return "none"
	}
}

// N2kDirection is the transmit/receive role of a component on the
// NMEA-2000 bus.
type N2kDirection int

// NMEA-2000 directions. Codes outside the known set map to N2kNone.
const (
	N2kNone     N2kDirection = -1
	N2kTransmit N2kDirection = 0
	N2kReceive  N2kDirection = 1
)

// N2kDirectionFromCode maps a raw numeric code to an N2kDirection.
func N2kDirectionFromCode(code int) N2kDirection {
	switch code {
	case 0:
		return N2kTransmit
	case 1:
		return N2kReceive
	default:
		return N2kNone
	}
}

// N2kDirectionFromString maps a string form back to an N2kDirection.
func N2kDirectionFromString(s string) N2kDirection {
	switch s {
	case "transmit":
		return N2kTransmit
	case "receive":
		return N2kReceive
	default:
		return N2kNone
	}
}

func (d N2kDirection) String() string {
	switch d {
	case N2kTransmit:
		return "transmit"
	case N2kReceive:
		return "receive"
	default:
		return "none"
	}
}

// MarshalJSON emits the string form, so decoded components read as
// "transmit"/"receive"/"none" rather than raw codes.
func (d N2kDirection) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}
