package nxtimport

import "strconv"

// noOutputSetting is the main code written by Studio when a channel has
// no output configuration at all. It is handled before table lookup and
// decodes to the bare "unknown:" sentinel pair, distinct from a
// configured-but-unrecognized code.
const noOutputSetting = -1

// settingEntry maps a main setting code to its semantic category and
// either a fixed subtype label (subcodes nil) or a table from sub-code
// to subtype label.
type settingEntry struct {
	category string
	fixed    string
	subcodes map[int]string
}

// inputSettings is the firmware catalog of channel input main codes.
var inputSettings = map[int]settingEntry{
	1: {category: "digital input", fixed: "standard"},
	2: {category: "digital input", subcodes: map[int]string{
		0: "momentary to plus",
		1: "momentary to minus",
	}},
	3: {category: "analog input", subcodes: map[int]string{
		0: "0-5 V",
		1: "0-10 V",
		2: "4-20 mA",
	}},
	5: {category: "resistance input", subcodes: map[int]string{
		0: "european float",
		1: "american float",
		2: "custom curve",
	}},
	8: {category: "temperature input", subcodes: map[int]string{
		0: "ntc 10k",
		1: "pt1000",
	}},
	12: {category: "voltage sense", fixed: "battery bank"},
	14: {category: "frequency input", subcodes: map[int]string{
		0: "tachometer",
		1: "flow meter",
	}},
	57: {category: "digital input", subcodes: map[int]string{
		0: "activates to plus",
		1: "activates to minus",
		2: "closes to plus",
		3: "closes to minus",
		4: "opens to plus",
		5: "opens to minus",
	}},
	58: {category: "multi-position switch", subcodes: map[int]string{
		0: "2 positions",
		1: "3 positions",
		2: "4 positions",
	}},
}

// outputSettings is the firmware catalog of channel output main codes.
var outputSettings = map[int]settingEntry{
	1: {category: "switched output", subcodes: map[int]string{
		0: "high side",
		1: "low side",
	}},
	2: {category: "dimmed output", subcodes: map[int]string{
		0: "leading edge",
		1: "trailing edge",
		2: "pwm",
	}},
	4: {category: "motor output", subcodes: map[int]string{
		0: "full bridge",
		1: "half bridge",
	}},
	6: {category: "wiper output", subcodes: map[int]string{
		0: "single speed",
		1: "two speed",
		2: "intermittent",
	}},
	9:  {category: "horn output", fixed: "momentary"},
	11: {category: "navigation light", fixed: "switched"},
}

// unknownSetting formats the sentinel for an unrecognized code.
func unknownSetting(code int) string {
	return "unknown:" + strconv.Itoa(code)
}

// decodeSetting resolves one (main, sub) code pair against a settings
// table. Every code path yields a usable pair; nothing here can fail.
func decodeSetting(table map[int]settingEntry, mainCode, subCode int) ChannelSetting {
	entry, ok := table[mainCode]
	if !ok {
		return ChannelSetting{
			Type:    unknownSetting(mainCode),
			Subtype: unknownSetting(subCode),
		}
	}

	if entry.subcodes == nil {
		return ChannelSetting{Type: entry.category, Subtype: entry.fixed}
	}

	label, ok := entry.subcodes[subCode]
	if !ok {
		return ChannelSetting{Type: entry.category, Subtype: unknownSetting(subCode)}
	}
	return ChannelSetting{Type: entry.category, Subtype: label}
}

// decodeInputSetting decodes a channel's input side.
func decodeInputSetting(mainCode, subCode int) ChannelSetting {
	return decodeSetting(inputSettings, mainCode, subCode)
}

// decodeOutputSetting decodes a channel's output side. A main code of
// exactly -1 means the channel has no output configuration and yields
// the bare sentinel pair before any table lookup.
func decodeOutputSetting(mainCode, subCode int) ChannelSetting {
	if mainCode == noOutputSetting {
		return ChannelSetting{Type: "unknown:", Subtype: "unknown:"}
	}
	return decodeSetting(outputSettings, mainCode, subCode)
}
