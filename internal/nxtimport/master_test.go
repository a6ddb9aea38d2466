package nxtimport

import "testing"

func TestResolveMasterDevice(t *testing.T) {
	tests := []struct {
		name     string
		units    []Unit
		expected int
	}{
		{
			name:     "no units",
			units:    nil,
			expected: -1,
		},
		{
			name: "no unit qualifies",
			units: []Unit{
				{ID: 1, TypeID: 24},
				{ID: 2, TypeID: 20}, // master-capable but role not set
			},
			expected: -1,
		},
		{
			name: "dedicated master module",
			units: []Unit{
				{ID: 1, TypeID: 24},
				{ID: 7, TypeID: 101},
			},
			expected: 7,
		},
		{
			name: "old master module family",
			units: []Unit{
				{ID: 3, TypeID: 100},
			},
			expected: 3,
		},
		{
			name: "master-capable unit with role property",
			units: []Unit{
				{ID: 1, TypeID: 24},
				{ID: 5, TypeID: 20, Properties: []RawProperty{{ID: 2, Value: "2"}}},
			},
			expected: 5,
		},
		{
			name: "role property must be exactly two",
			units: []Unit{
				{ID: 5, TypeID: 20, Properties: []RawProperty{{ID: 2, Value: "1"}}},
				{ID: 6, TypeID: 4, Properties: []RawProperty{{ID: 2, Value: " 2"}}},
			},
			expected: -1,
		},
		{
			name: "role property on non-capable type does not qualify",
			units: []Unit{
				{ID: 9, TypeID: 24, Properties: []RawProperty{{ID: 2, Value: "2"}}},
			},
			expected: -1,
		},
		{
			name: "first match in document order wins",
			units: []Unit{
				{ID: 2, TypeID: 1, Properties: []RawProperty{{ID: 2, Value: "2"}}},
				{ID: 8, TypeID: 101},
			},
			expected: 2,
		},
		{
			name: "last occurrence of role property wins",
			units: []Unit{
				{ID: 4, TypeID: 16, Properties: []RawProperty{
					{ID: 2, Value: "2"},
					{ID: 2, Value: "0"},
				}},
			},
			expected: -1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := resolveMasterDevice(tt.units); got != tt.expected {
				t.Errorf("resolveMasterDevice = %d, want %d", got, tt.expected)
			}
		})
	}
}
