package nxtimport

import "encoding/xml"

// Structural check codes reported by Validate.
const (
	CheckMalformedXML     = "MALFORMED_XML"
	CheckNoProjectElement = "NO_PROJECT_ELEMENT"
	CheckNoUnitsContainer = "NO_UNITS_CONTAINER"
	CheckNoUnits          = "NO_UNITS"
)

// Validate runs the pre-flight structural checks and returns every
// violated one. It never fails: a hopeless document yields violations,
// not an error. Malformed XML short-circuits the remaining checks,
// since nothing else can be determined about the document.
func (p *Parser) Validate(data []byte) ValidationResult {
	var violations []Violation

	var root xmlNode
	if err := xml.Unmarshal(data, &root); err != nil {
		violations = append(violations, Violation{
			Code:    CheckMalformedXML,
			Message: "document is not well-formed XML: " + err.Error(),
		})
		return ValidationResult{Valid: false, Violations: violations}
	}

	if len(root.descendantsOrSelf("project")) == 0 {
		violations = append(violations, Violation{
			Code:    CheckNoProjectElement,
			Message: "no project element found",
		})
	}

	containers := root.descendantsOrSelf("units")
	if len(containers) == 0 {
		violations = append(violations, Violation{
			Code:    CheckNoUnitsContainer,
			Message: "units container not found",
		})
	} else {
		units := 0
		for _, c := range containers {
			units += len(c.children("unit"))
		}
		if units == 0 {
			violations = append(violations, Violation{
				Code:    CheckNoUnits,
				Message: "no units found in project",
			})
		}
	}

	return ValidationResult{
		Valid:      len(violations) == 0,
		Violations: violations,
	}
}
