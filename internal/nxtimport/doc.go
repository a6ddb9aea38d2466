// Package nxtimport decodes NXT Studio project exports into a normalized
// domain model.
//
// An NXT project file is an attribute-rich XML tree describing a marine
// DC distribution installation: physical units on the NMEA-2000 bus, the
// channels wired into them, configured components (switch banks, fluid
// level senders, temperature sources, proprietary PGNs), alarms, and the
// memory allocations of stored values. This package is the read-only
// decoding core: it extracts records from the XML, translates numeric
// setting and component-type codes into human-readable descriptions via
// static lookup tables, and returns deterministically ordered results.
//
// # Usage
//
//	parser := nxtimport.NewParser()
//	project, err := parser.ParseProject(data)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for _, comp := range project.Components {
//	    fmt.Printf("%s (PGN %d) on %s\n", comp.Name, comp.PGN, comp.Tab)
//	}
//
// Individual views (units, schemas, components, alarms, memory map,
// metadata) are available as independent entry points; each is a pure
// function of the document text. Callers that need several views of a
// large document should prefer ParseProject, which walks the tree once.
//
// # Error regimes
//
// Structural problems (malformed XML, missing units container, zero
// units) fail fast with sentinel errors. Unknown semantic codes — future
// firmware component types, setting codes, table indices — never fail:
// they decode to explicit "unknown" sentinels carrying the offending
// code, so one unrecognized value cannot block the rest of the document.
// Validate provides a non-throwing pre-flight diagnostic list.
package nxtimport
