package nxtimport

import (
	"encoding/xml"
	"fmt"
	"strconv"
)

// DefaultMaxFileSize is the default document size limit (50MB).
const DefaultMaxFileSize = 50 * 1024 * 1024

// Parser decodes NXT project documents. Every entry point is a pure
// function of the document text: it parses the text into a tree, walks
// it, and returns freshly allocated results. No state is retained
// between calls, so a single Parser is safe for concurrent use.
type Parser struct {
	// MaxFileSize rejects documents larger than this many bytes.
	// Zero disables the limit.
	MaxFileSize int64
}

// NewParser creates a parser with the default size limit.
func NewParser() *Parser {
	return &Parser{MaxFileSize: DefaultMaxFileSize}
}

// ParseUnits extracts the unit tree: units, their channel groups, and
// channels with decoded setting descriptions. Fails with a structural
// error when the document is malformed, has no units container (or
// more than one), or contains zero units.
func (p *Parser) ParseUnits(data []byte) ([]Unit, error) {
	root, err := p.parseTree(data)
	if err != nil {
		return nil, err
	}
	return extractUnits(root)
}

// ParseSchemas extracts the named tabs, ordered by sort index. A
// document without a schemas container yields an empty result.
func (p *Parser) ParseSchemas(data []byte) ([]Schema, error) {
	root, err := p.parseTree(data)
	if err != nil {
		return nil, err
	}
	schemas := make([]Schema, 0, 4)
	for _, sn := range extractSchemaNodes(root) {
		schemas = append(schemas, sn.schema)
	}
	sortSchemas(schemas)
	return schemas, nil
}

// ParseComponents extracts and decodes the NMEA-2000 components of
// every schema, in their deterministic sort order. Components whose
// type code has no decoder are skipped; unit extraction problems do
// not fail this view, they only disable the master-device fallback.
func (p *Parser) ParseComponents(data []byte) ([]DecodedComponent, error) {
	root, err := p.parseTree(data)
	if err != nil {
		return nil, err
	}
	components, _ := extractComponents(root, nil)
	return components, nil
}

// ParseAlarms extracts the project alarms, ordered by numeric alarm id.
func (p *Parser) ParseAlarms(data []byte) ([]Alarm, error) {
	root, err := p.parseTree(data)
	if err != nil {
		return nil, err
	}
	return extractAlarms(root), nil
}

// ParseMemoryMap extracts the stored-value memory map across the whole
// document, ordered by location.
func (p *Parser) ParseMemoryMap(data []byte) ([]MemoryAllocation, error) {
	root, err := p.parseTree(data)
	if err != nil {
		return nil, err
	}
	memory, _ := extractMemory(root, nil)
	return memory, nil
}

// ParseMetadata extracts the project element attributes. A document
// without a project element, or whose project element carries none of
// the metadata attributes, yields nil without error.
func (p *Parser) ParseMetadata(data []byte) (*ProjectMetadata, error) {
	root, err := p.parseTree(data)
	if err != nil {
		return nil, err
	}
	return extractMetadata(root), nil
}

// ParseProject decodes the complete project in a single tree walk:
// units, schemas, components, alarms, memory map, metadata, statistics,
// and permissive-decode warnings.
func (p *Parser) ParseProject(data []byte) (*Project, error) {
	root, err := p.parseTree(data)
	if err != nil {
		return nil, err
	}

	units, err := extractUnits(root)
	if err != nil {
		return nil, err
	}

	warnings := newWarningSet()

	channelCount := 0
	for _, u := range units {
		for _, g := range u.Groups {
			channelCount += len(g.Channels)
			for _, ch := range g.Channels {
				warnSettings(warnings, ch)
			}
		}
	}

	master := resolveMasterDevice(units)
	if master == noMasterDevice {
		warnings.add(WarnNoMasterDevice, "no unit qualifies as bus master; component device ids stay unresolved")
	}

	components, skipped := extractComponents(root, warnings)
	memory, _ := extractMemory(root, warnings)
	alarms := extractAlarms(root)

	schemas := make([]Schema, 0, 4)
	for _, sn := range extractSchemaNodes(root) {
		schemas = append(schemas, sn.schema)
	}
	sortSchemas(schemas)

	project := &Project{
		Metadata:     extractMetadata(root),
		Units:        units,
		Schemas:      schemas,
		Components:   components,
		Alarms:       alarms,
		Memory:       memory,
		MasterDevice: master,
		Statistics: ProjectStatistics{
			Units:             len(units),
			Channels:          channelCount,
			Schemas:           len(schemas),
			Components:        len(components),
			SkippedComponents: skipped,
			Alarms:            len(alarms),
			MemoryEntries:     len(memory),
		},
		Warnings: warnings.list,
	}
	return project, nil
}

// parseTree parses the document text into a generic element tree.
func (p *Parser) parseTree(data []byte) (*xmlNode, error) {
	if p.MaxFileSize > 0 && int64(len(data)) > p.MaxFileSize {
		return nil, ErrFileTooLarge
	}

	var root xmlNode
	if err := xml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidXML, err)
	}
	return &root, nil
}

// ─────────────────────────────────────────────────────────────────────
// Generic element tree
// ─────────────────────────────────────────────────────────────────────

// xmlNode is a generic element with its attributes and child elements.
// The extraction rules need both direct-child and any-depth-descendant
// walks, which typed unmarshal structs cannot express, so the document
// is decoded into this tree once and walked from there.
type xmlNode struct {
	XMLName  xml.Name
	Attrs    []xml.Attr `xml:",any,attr"`
	Children []xmlNode  `xml:",any"`
}

// attr returns the named attribute value and whether it is present.
func (n *xmlNode) attr(name string) (string, bool) {
	for _, a := range n.Attrs {
		if a.Name.Local == name {
			return a.Value, true
		}
	}
	return "", false
}

// attrOr returns the named attribute value, or def when absent or empty.
func (n *xmlNode) attrOr(name, def string) string {
	if v, ok := n.attr(name); ok && v != "" {
		return v
	}
	return def
}

// attrInt parses the named attribute as an integer, returning def when
// the attribute is absent or does not parse.
func (n *xmlNode) attrInt(name string, def int) int {
	v, ok := n.attr(name)
	if !ok {
		return def
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return i
}

// children returns the direct child elements with the given name.
func (n *xmlNode) children(name string) []*xmlNode {
	var out []*xmlNode
	for i := range n.Children {
		if n.Children[i].XMLName.Local == name {
			out = append(out, &n.Children[i])
		}
	}
	return out
}

// descendants returns every element with the given name at any depth
// below n, in document order. The node itself is not considered.
func (n *xmlNode) descendants(name string) []*xmlNode {
	var out []*xmlNode
	for i := range n.Children {
		child := &n.Children[i]
		if child.XMLName.Local == name {
			out = append(out, child)
		}
		out = append(out, child.descendants(name)...)
	}
	return out
}

// descendantsOrSelf is descendants but also matches n itself.
func (n *xmlNode) descendantsOrSelf(name string) []*xmlNode {
	if n.XMLName.Local == name {
		return append([]*xmlNode{n}, n.descendants(name)...)
	}
	return n.descendants(name)
}

// ─────────────────────────────────────────────────────────────────────
// Record extraction
// ─────────────────────────────────────────────────────────────────────

// attributeDefault is the display default for absent serial/name fields.
const attributeDefault = "N/A"

// extractUnits extracts units from the single units container. Only the
// container's immediate unit children are taken; nested or duplicate
// unit markup elsewhere in the tree is ignored.
func extractUnits(root *xmlNode) ([]Unit, error) {
	containers := root.descendantsOrSelf("units")
	switch {
	case len(containers) == 0:
		return nil, ErrNoUnitsContainer
	case len(containers) > 1:
		return nil, ErrMultipleUnitsContainers
	}

	unitNodes := containers[0].children("unit")
	if len(unitNodes) == 0 {
		return nil, ErrNoUnits
	}

	units := make([]Unit, 0, len(unitNodes))
	for _, un := range unitNodes {
		typeID := un.attrInt("unitTypeId", 0)
		variant := un.attrInt("standardUnitVariantNumber", 0)

		unit := Unit{
			ID:         un.attrInt("id", 0),
			Serial:     un.attrOr("serial", attributeDefault),
			Name:       un.attrOr("name", attributeDefault),
			TypeID:     typeID,
			Variant:    variant,
			Model:      moduleName(typeID, variant),
			Properties: unitProperties(un),
		}

		for _, gn := range un.descendants("unitChannelGroup") {
			group := ChannelGroup{ID: gn.attrInt("channelGroupId", 0)}
			for _, cn := range gn.descendants("channel") {
				group.Channels = append(group.Channels, extractChannel(cn))
			}
			unit.Groups = append(unit.Groups, group)
		}

		units = append(units, unit)
	}
	return units, nil
}

// unitProperties collects a unit's own raw properties: direct property
// children, plus children of a direct properties wrapper.
func unitProperties(un *xmlNode) []RawProperty {
	var props []RawProperty
	collect := func(nodes []*xmlNode) {
		for _, pn := range nodes {
			props = append(props, RawProperty{
				ID:    pn.attrInt("id", -1),
				Value: pn.attrOr("value", ""),
			})
		}
	}
	collect(un.children("property"))
	for _, wrapper := range un.children("properties") {
		collect(wrapper.children("property"))
	}
	return props
}

// extractChannel builds a channel record with attribute defaults and
// decoded setting descriptions. Absent input codes default to 0; absent
// output codes default to -1, the explicit "not configured" sentinel.
func extractChannel(cn *xmlNode) Channel {
	ch := Channel{
		Number:    cn.attrInt("number", 0),
		Name:      cn.attrOr("name", attributeDefault),
		Direction: cn.attrOr("direction", ""),
		InMain:    cn.attrInt("inMainChannelSettingId", 0),
		InSub:     cn.attrInt("inChannelSettingId", 0),
		OutMain:   cn.attrInt("outMainChannelSettingId", -1),
		OutSub:    cn.attrInt("outChannelSettingId", -1),
	}
	ch.Input = decodeInputSetting(ch.InMain, ch.InSub)
	ch.Output = decodeOutputSetting(ch.OutMain, ch.OutSub)
	return ch
}

// schemaNode pairs a schema record with its element for scoped walks.
type schemaNode struct {
	schema Schema
	node   *xmlNode
}

// extractSchemaNodes returns every schema under a schemas container, in
// document order.
func extractSchemaNodes(root *xmlNode) []schemaNode {
	var out []schemaNode
	for _, container := range root.descendantsOrSelf("schemas") {
		for _, sn := range container.descendants("schema") {
			out = append(out, schemaNode{
				schema: Schema{
					ID:        sn.attrInt("id", 0),
					Name:      sn.attrOr("name", ""),
					SortIndex: sn.attrInt("sortIndex", 0),
				},
				node: sn,
			})
		}
	}
	return out
}

// extractComponentRaw reads one component element into a raw record.
func extractComponentRaw(cn *xmlNode) ComponentRaw {
	raw := ComponentRaw{
		TypeID:     cn.attrInt("componentId", 0),
		ChannelID:  cn.attrOr("channelId", ""),
		UnitID:     cn.attrOr("unitId", ""),
		Revision:   cn.attrOr("componentRevision", ""),
		InstanceID: cn.attrOr("id", ""),
	}
	for _, pn := range cn.descendants("property") {
		raw.Properties = append(raw.Properties, RawProperty{
			ID:    pn.attrInt("id", -1),
			Value: pn.attrOr("value", ""),
		})
	}
	return raw
}

// extractComponents decodes the generic components of every schema and
// returns them sorted, plus the count of skipped (undecodable) ones.
// The master-device id fills in missing device ids; unit extraction
// failures only disable that fallback. The warning set may be nil.
func extractComponents(root *xmlNode, warnings *warningSet) ([]DecodedComponent, int) {
	master := noMasterDevice
	if units, err := extractUnits(root); err == nil {
		master = resolveMasterDevice(units)
	}

	var components []DecodedComponent
	skipped := 0
	for _, sn := range extractSchemaNodes(root) {
		for _, cn := range sn.node.descendants("component") {
			raw := extractComponentRaw(cn)
			if raw.TypeID == typeAlarm || raw.TypeID == typeStoredValue {
				continue
			}

			dec := decodeComponent(raw)
			if dec.Name == "" {
				skipped++
				warnings.add(WarnUnknownComponentType,
					fmt.Sprintf("component type %d has no decoder; skipped", raw.TypeID))
				continue
			}

			dec.Tab = sn.schema.Name
			if dec.Device == nil && master != noMasterDevice {
				device := master
				dec.Device = &device
			}
			components = append(components, dec)
		}
	}

	sortComponents(components)
	return components, skipped
}

// Alarm property slots on a 1292 component.
const (
	alarmIDProperty   = 4
	alarmNameProperty = 31
)

// extractAlarms collects alarm components per schema. A record is kept
// only when at least one of alarm id or alarm name is present.
func extractAlarms(root *xmlNode) []Alarm {
	var alarms []Alarm
	for _, sn := range extractSchemaNodes(root) {
		for _, cn := range sn.node.descendants("component") {
			raw := extractComponentRaw(cn)
			if raw.TypeID != typeAlarm {
				continue
			}

			id := rawPropertyOr(raw, alarmIDProperty, attributeDefault)
			name := rawPropertyOr(raw, alarmNameProperty, attributeDefault)
			if id == attributeDefault && name == attributeDefault {
				continue
			}

			alarms = append(alarms, Alarm{
				Tab:        sn.schema.Name,
				TypeID:     raw.TypeID,
				Revision:   raw.Revision,
				InstanceID: raw.InstanceID,
				ID:         id,
				Name:       name,
			})
		}
	}

	sortAlarms(alarms)
	return alarms
}

// rawPropertyOr returns the raw string value of a property slot,
// def when the slot is absent or empty. Last occurrence wins.
func rawPropertyOr(raw ComponentRaw, id int, def string) string {
	value := def
	for _, p := range raw.Properties {
		if p.ID == id && p.Value != "" {
			value = p.Value
		}
	}
	return value
}

// Stored-value property slots on a 2304 component.
const (
	memoryTypeProperty     = 0
	memoryLocationProperty = 1
)

// extractMemory collects stored-value components across the whole
// document (not schema-scoped), sorted by location. Returns the count
// of entries with an unrecognized type code. The warning set may be nil.
func extractMemory(root *xmlNode, warnings *warningSet) ([]MemoryAllocation, int) {
	var memory []MemoryAllocation
	unknown := 0
	for _, cn := range root.descendantsOrSelf("component") {
		if cn.attrInt("componentId", 0) != typeStoredValue {
			continue
		}

		raw := extractComponentRaw(cn)
		props := newProperties(raw.Properties)

		code, ok := props[memoryTypeProperty]
		if !ok {
			code = -1
		}
		label, bits := decodeMemoryType(code)
		if label == "unknown" {
			unknown++
			warnings.add(WarnUnknownMemoryType,
				fmt.Sprintf("stored value type %d is not in the memory type table", code))
		}

		location := 0
		if v, lok := props[memoryLocationProperty]; lok {
			location = v
		}

		memory = append(memory, MemoryAllocation{
			Type:     label,
			Bits:     bits,
			Location: location,
		})
	}

	sortMemory(memory)
	return memory, unknown
}

// extractMetadata reads the project element attributes, nil when no
// project element exists or it carries none of the metadata attributes.
func extractMetadata(root *xmlNode) *ProjectMetadata {
	projects := root.descendantsOrSelf("project")
	if len(projects) == 0 {
		return nil
	}

	pn := projects[0]
	meta := &ProjectMetadata{
		Firmware:          pn.attrOr("firmware", ""),
		FileFormatVersion: pn.attrOr("fileFormatVersion", ""),
		SavedAtUTC:        pn.attrOr("savedAtUtc", ""),
		FormatVersion:     pn.attrOr("formatVersion", ""),
		StudioVersion:     pn.attrOr("studioVersion", ""),
	}
	if *meta == (ProjectMetadata{}) {
		return nil
	}
	return meta
}

// ─────────────────────────────────────────────────────────────────────
// Warnings
// ─────────────────────────────────────────────────────────────────────

// warningSet collects deduplicated parse warnings. A nil warningSet
// discards everything, so view entry points can share the extraction
// code without collecting diagnostics.
type warningSet struct {
	list []ParseWarning
	seen map[string]bool
}

func newWarningSet() *warningSet {
	return &warningSet{seen: make(map[string]bool)}
}

func (w *warningSet) add(code, message string) {
	if w == nil {
		return
	}
	key := code + "|" + message
	if w.seen[key] {
		return
	}
	w.seen[key] = true
	w.list = append(w.list, ParseWarning{Code: code, Message: message})
}

// warnSettings records diagnostics for channel setting codes that
// resolved to "unknown" sentinels. The bare output sentinel (out main
// -1, channel has no output at all) is expected and not warned about.
func warnSettings(warnings *warningSet, ch Channel) {
	if _, ok := inputSettings[ch.InMain]; !ok {
		warnings.add(WarnUnknownInputSetting,
			fmt.Sprintf("input setting %d is not in the settings table", ch.InMain))
	}
	if ch.OutMain == noOutputSetting {
		return
	}
	if _, ok := outputSettings[ch.OutMain]; !ok {
		warnings.add(WarnUnknownOutputSetting,
			fmt.Sprintf("output setting %d is not in the settings table", ch.OutMain))
	}
}
