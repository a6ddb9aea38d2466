package nxtimport

import "testing"

func violationCodes(r ValidationResult) []string {
	var codes []string
	for _, v := range r.Violations {
		codes = append(codes, v.Code)
	}
	return codes
}

func hasViolation(r ValidationResult, code string) bool {
	for _, v := range r.Violations {
		if v.Code == code {
			return true
		}
	}
	return false
}

func TestValidate(t *testing.T) {
	p := NewParser()

	tests := []struct {
		name     string
		data     string
		valid    bool
		expected []string
	}{
		{
			name:  "well-formed project",
			data:  `<project><units><unit id="1"/></units></project>`,
			valid: true,
		},
		{
			name:     "malformed xml short-circuits",
			data:     `<project><units>`,
			valid:    false,
			expected: []string{CheckMalformedXML},
		},
		{
			name:     "no project element",
			data:     `<document><units><unit id="1"/></units></document>`,
			valid:    false,
			expected: []string{CheckNoProjectElement},
		},
		{
			name:     "no units container",
			data:     `<project><schemas/></project>`,
			valid:    false,
			expected: []string{CheckNoUnitsContainer},
		},
		{
			name:     "empty units container",
			data:     `<project><units/></project>`,
			valid:    false,
			expected: []string{CheckNoUnits},
		},
		{
			name:     "multiple independent violations accumulate",
			data:     `<document><units/></document>`,
			valid:    false,
			expected: []string{CheckNoProjectElement, CheckNoUnits},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := p.Validate([]byte(tt.data))

			if result.Valid != tt.valid {
				t.Errorf("Valid = %v, want %v", result.Valid, tt.valid)
			}
			got := violationCodes(result)
			if len(got) != len(tt.expected) {
				t.Fatalf("violations = %v, want %v", got, tt.expected)
			}
			for _, code := range tt.expected {
				if !hasViolation(result, code) {
					t.Errorf("missing violation %s in %v", code, got)
				}
			}
		})
	}
}

// A document with zero units is reported, not rejected: Validate must
// stay non-throwing while ParseUnits fails on the same input.
func TestValidateNeverErrorsWhereParseDoes(t *testing.T) {
	p := NewParser()
	data := []byte(`<project><units></units></project>`)

	if _, err := p.ParseUnits(data); err == nil {
		t.Fatal("ParseUnits accepted a document with no units")
	}

	result := p.Validate(data)
	if result.Valid {
		t.Error("Validate reported a unit-less document as valid")
	}
	if !hasViolation(result, CheckNoUnits) {
		t.Errorf("expected %s, got %v", CheckNoUnits, violationCodes(result))
	}
}

// Validate only checks that a units container exists somewhere; nested
// placement is acceptable at the structural level.
func TestValidateNestedUnitsContainer(t *testing.T) {
	p := NewParser()
	data := []byte(`<project><installation><units><unit id="4"/></units></installation></project>`)

	result := p.Validate(data)
	if !result.Valid {
		t.Errorf("unexpected violations: %v", violationCodes(result))
	}
}
