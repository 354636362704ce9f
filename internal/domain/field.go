package domain

// TextAlignment enumerates the Apple field alignment constants.
type TextAlignment string

const (
	TextAlignmentLeft   TextAlignment = "PKTextAlignmentLeft"
	TextAlignmentCenter TextAlignment = "PKTextAlignmentCenter"
	TextAlignmentRight  TextAlignment = "PKTextAlignmentRight"
)

// PassField is one label/value pair rendered on a pass. Key, label and
// value are required; the rest are passthrough presentation hints.
type PassField struct {
	Key             string        `json:"key"`
	Label           string        `json:"label"`
	Value           string        `json:"value"`
	DateStyle       string        `json:"dateStyle,omitempty"`
	TimeStyle       string        `json:"timeStyle,omitempty"`
	IsRelative      bool          `json:"isRelative,omitempty"`
	ChangeMessage   string        `json:"changeMessage,omitempty"`
	TextAlignment   TextAlignment `json:"textAlignment,omitempty"`
	AttributedValue string        `json:"attributedValue,omitempty"`
}

// FieldGroup names one of the five layout regions of a pass.
type FieldGroup string

const (
	FieldGroupHeader    FieldGroup = "headerFields"
	FieldGroupPrimary   FieldGroup = "primaryFields"
	FieldGroupSecondary FieldGroup = "secondaryFields"
	FieldGroupAuxiliary FieldGroup = "auxiliaryFields"
	FieldGroupBack      FieldGroup = "backFields"
)

// FieldGroups lists the regions in display order.
var FieldGroups = []FieldGroup{
	FieldGroupHeader,
	FieldGroupPrimary,
	FieldGroupSecondary,
	FieldGroupAuxiliary,
	FieldGroupBack,
}

// PassStructure aggregates the five ordered field regions. Order within
// each slice is display order and must be preserved.
type PassStructure struct {
	HeaderFields    []PassField `json:"headerFields"`
	PrimaryFields   []PassField `json:"primaryFields"`
	SecondaryFields []PassField `json:"secondaryFields"`
	AuxiliaryFields []PassField `json:"auxiliaryFields"`
	BackFields      []PassField `json:"backFields"`
}

// Group returns the slice for the named region.
func (s *PassStructure) Group(group FieldGroup) []PassField {
	switch group {
	case FieldGroupHeader:
		return s.HeaderFields
	case FieldGroupPrimary:
		return s.PrimaryFields
	case FieldGroupSecondary:
		return s.SecondaryFields
	case FieldGroupAuxiliary:
		return s.AuxiliaryFields
	case FieldGroupBack:
		return s.BackFields
	}
	return nil
}

// SetGroup replaces the slice for the named region.
func (s *PassStructure) SetGroup(group FieldGroup, fields []PassField) {
	switch group {
	case FieldGroupHeader:
		s.HeaderFields = fields
	case FieldGroupPrimary:
		s.PrimaryFields = fields
	case FieldGroupSecondary:
		s.SecondaryFields = fields
	case FieldGroupAuxiliary:
		s.AuxiliaryFields = fields
	case FieldGroupBack:
		s.BackFields = fields
	}
}
