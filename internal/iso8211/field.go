package iso8211

import "strings"

// fieldDefinition is a DDR-derived description of one tag: its name, its
// array descriptor (subfield labels, possibly repeating), and its parsed
// format controls. Data records reference these by tag to know how to
// read their field's bytes.
type fieldDefinition struct {
	tag             string
	name            string
	arrayDescriptor string
	formatControls  string
	labels          []string
	subfields       []subfieldDescriptor
	repeated        bool
}

// parseFieldDefinition decodes one DDR field-control-field entry. Its
// layout (ISO/IEC 8211 §7.3) is a 9-byte field-control subfield followed by
// three 0x1f-delimited strings: field name, array descriptor, format
// controls.
func parseFieldDefinition(tag string, raw []byte) (*fieldDefinition, error) {
	if len(raw) < 9 {
		return nil, &TruncatedRecordError{Expected: 9, Got: len(raw)}
	}
	rest := strings.TrimRight(string(raw[9:]), string(fieldTerminator))

	parts := strings.Split(rest, string(subfieldTerminator))
	def := &fieldDefinition{tag: tag}
	if len(parts) > 0 {
		def.name = parts[0]
	}
	if len(parts) > 1 {
		def.arrayDescriptor = parts[1]
	}
	if len(parts) > 2 {
		def.formatControls = parts[2]
	}

	def.labels, def.repeated = parseArrayDescriptor(def.arrayDescriptor)

	if def.formatControls != "" {
		subs, err := parseFormatControls(tag, def.formatControls)
		if err != nil {
			return nil, err
		}
		def.subfields = subs
	}

	return def, nil
}
