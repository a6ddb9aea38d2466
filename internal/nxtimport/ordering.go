package nxtimport

import (
	"sort"
	"strconv"
	"strings"
)

// Deterministic sort orders applied to results before they leave the
// package. All sorts are stable: equal keys keep document order.

// sortComponents orders components ascending by (PGN, device, instance,
// label). Absent device or instance compares as 0. Labels that both
// parse as integers compare numerically, otherwise lexicographically.
func sortComponents(components []DecodedComponent) {
	sort.SliceStable(components, func(i, j int) bool {
		a, b := components[i], components[j]
		if a.PGN != b.PGN {
			return a.PGN < b.PGN
		}
		if da, db := intOrZero(a.Device), intOrZero(b.Device); da != db {
			return da < db
		}
		if ia, ib := intOrZero(a.Instance), intOrZero(b.Instance); ia != ib {
			return ia < ib
		}
		return compareLabels(a.Label, b.Label) < 0
	})
}

// sortAlarms orders alarms ascending by numeric alarm id; ids that do
// not parse compare as 0.
func sortAlarms(alarms []Alarm) {
	sort.SliceStable(alarms, func(i, j int) bool {
		return numericOrZero(alarms[i].ID) < numericOrZero(alarms[j].ID)
	})
}

// sortMemory orders memory allocations ascending by location.
func sortMemory(memory []MemoryAllocation) {
	sort.SliceStable(memory, func(i, j int) bool {
		return memory[i].Location < memory[j].Location
	})
}

// sortSchemas orders schemas ascending by sort index.
func sortSchemas(schemas []Schema) {
	sort.SliceStable(schemas, func(i, j int) bool {
		return schemas[i].SortIndex < schemas[j].SortIndex
	})
}

func intOrZero(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}

func numericOrZero(s string) int {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return v
}

// compareLabels compares two component labels: numerically when both
// parse as integers, case-sensitive lexicographically otherwise.
func compareLabels(a, b string) int {
	na, errA := strconv.Atoi(a)
	nb, errB := strconv.Atoi(b)
	if errA == nil && errB == nil {
		switch {
		case na < nb:
			return -1
		case na > nb:
			return 1
		default:
			return 0
		}
	}
	return strings.Compare(a, b)
}
