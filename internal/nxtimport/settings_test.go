package nxtimport

import "testing"

func TestDecodeInputSetting(t *testing.T) {
	tests := []struct {
		name     string
		mainCode int
		subCode  int
		expected ChannelSetting
	}{
		{
			name:     "mapped subtype",
			mainCode: 57,
			subCode:  2,
			expected: ChannelSetting{Type: "digital input", Subtype: "closes to plus"},
		},
		{
			name:     "mapped first subtype",
			mainCode: 57,
			subCode:  0,
			expected: ChannelSetting{Type: "digital input", Subtype: "activates to plus"},
		},
		{
			name:     "fixed subtype",
			mainCode: 1,
			subCode:  0,
			expected: ChannelSetting{Type: "digital input", Subtype: "standard"},
		},
		{
			name:     "fixed subtype ignores sub code",
			mainCode: 12,
			subCode:  99,
			expected: ChannelSetting{Type: "voltage sense", Subtype: "battery bank"},
		},
		{
			name:     "known main unknown sub",
			mainCode: 3,
			subCode:  7,
			expected: ChannelSetting{Type: "analog input", Subtype: "unknown:7"},
		},
		{
			name:     "unknown main carries both codes",
			mainCode: 999,
			subCode:  3,
			expected: ChannelSetting{Type: "unknown:999", Subtype: "unknown:3"},
		},
		{
			name:     "unset input is unknown zero",
			mainCode: 0,
			subCode:  0,
			expected: ChannelSetting{Type: "unknown:0", Subtype: "unknown:0"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := decodeInputSetting(tt.mainCode, tt.subCode)
			if result != tt.expected {
				t.Errorf("decodeInputSetting(%d, %d) = %+v, want %+v",
					tt.mainCode, tt.subCode, result, tt.expected)
			}
		})
	}
}

func TestDecodeOutputSetting(t *testing.T) {
	tests := []struct {
		name     string
		mainCode int
		subCode  int
		expected ChannelSetting
	}{
		{
			name:     "not configured sentinel has no code suffix",
			mainCode: -1,
			subCode:  -1,
			expected: ChannelSetting{Type: "unknown:", Subtype: "unknown:"},
		},
		{
			name:     "mapped subtype",
			mainCode: 1,
			subCode:  1,
			expected: ChannelSetting{Type: "switched output", Subtype: "low side"},
		},
		{
			name:     "fixed subtype",
			mainCode: 9,
			subCode:  0,
			expected: ChannelSetting{Type: "horn output", Subtype: "momentary"},
		},
		{
			name:     "known main unknown sub",
			mainCode: 2,
			subCode:  9,
			expected: ChannelSetting{Type: "dimmed output", Subtype: "unknown:9"},
		},
		{
			name:     "unknown main carries both codes",
			mainCode: 77,
			subCode:  -1,
			expected: ChannelSetting{Type: "unknown:77", Subtype: "unknown:-1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := decodeOutputSetting(tt.mainCode, tt.subCode)
			if result != tt.expected {
				t.Errorf("decodeOutputSetting(%d, %d) = %+v, want %+v",
					tt.mainCode, tt.subCode, result, tt.expected)
			}
		})
	}
}
