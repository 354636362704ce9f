// Package builder holds the form-builder state machine: a pure reducer
// over the universal template, so every edit the dashboard makes is an
// explicit transition that can be tested without rendering anything.
package builder

import (
	"fmt"

	"github.com/spec-kit/passkit-service/internal/domain"
	"github.com/spec-kit/passkit-service/internal/wallet"
)

// ActionType enumerates the edits the builder can apply.
type ActionType string

const (
	ActionSetName         ActionType = "set_name"
	ActionSetDescription  ActionType = "set_description"
	ActionSetOrganization ActionType = "set_organization"
	ActionSetPassType     ActionType = "set_pass_type"
	ActionSetColors       ActionType = "set_colors"
	ActionSetBarcode      ActionType = "set_barcode"
	ActionSetNFC          ActionType = "set_nfc"
	ActionSetApple        ActionType = "set_apple"
	ActionSetGoogle       ActionType = "set_google"
	ActionSetLocations    ActionType = "set_locations"
	ActionSetStatus       ActionType = "set_status"
	ActionAddField        ActionType = "add_field"
	ActionUpdateField     ActionType = "update_field"
	ActionRemoveField     ActionType = "remove_field"
	ActionMoveField       ActionType = "move_field"
)

// Action is one edit applied to the builder state. Only the fields
// relevant to its Type are read.
type Action struct {
	Type      ActionType
	Text      string
	PassType  domain.PassType
	Colors    domain.Colors
	Barcode   domain.Barcode
	NFC       domain.NFCSettings
	Apple     domain.ApplePlatform
	Google    domain.GooglePlatform
	Locations []domain.Location
	Status    domain.TemplateStatus
	Group     domain.FieldGroup
	Field     domain.PassField
	Index     int
	ToIndex   int
}

// NewDraft returns the initial builder state for a pass type: a DRAFT
// template with empty field groups and wallet defaults filled in.
func NewDraft(passType domain.PassType, organizationName, bundleID string) domain.UniversalPassTemplate {
	return domain.UniversalPassTemplate{
		Type:             passType,
		OrganizationName: organizationName,
		Status:           domain.TemplateStatusDraft,
		Design: domain.Design{
			Colors: domain.Colors{
				BackgroundColor: "#FFFFFF",
				ForegroundColor: "#000000",
				LabelColor:      "#666666",
			},
		},
		Barcode: domain.Barcode{
			Format:          domain.BarcodeFormatQR,
			MessageEncoding: domain.DefaultMessageEncoding,
		},
		PlatformSpecific: domain.PlatformSpecific{
			Apple: domain.ApplePlatform{
				PassTypeIdentifier: wallet.PassTypeIdentifierFor(passType, bundleID),
				FormatVersion:      1,
			},
		},
	}
}

// Apply transitions the builder state with one action and returns the
// new state. The input state is never mutated. Invalid actions (unknown
// group, out-of-range index, duplicate field key) return the state
// unchanged together with an error.
func Apply(state domain.UniversalPassTemplate, action Action) (domain.UniversalPassTemplate, error) {
	next := state
	next.Structure = cloneStructure(state.Structure)

	switch action.Type {
	case ActionSetName:
		next.Name = action.Text
	case ActionSetDescription:
		next.Description = action.Text
	case ActionSetOrganization:
		next.OrganizationName = action.Text
	case ActionSetPassType:
		next.Type = action.PassType
	case ActionSetColors:
		next.Design.Colors = action.Colors
	case ActionSetBarcode:
		next.Barcode = action.Barcode
	case ActionSetNFC:
		next.NFC = wallet.NormalizeNFC(action.NFC)
	case ActionSetApple:
		next.PlatformSpecific.Apple = action.Apple
	case ActionSetGoogle:
		next.PlatformSpecific.Google = action.Google
	case ActionSetLocations:
		next.Locations = append([]domain.Location(nil), action.Locations...)
	case ActionSetStatus:
		next.Status = action.Status
	case ActionAddField:
		return addField(next, action)
	case ActionUpdateField:
		return updateField(next, action)
	case ActionRemoveField:
		return removeField(next, action)
	case ActionMoveField:
		return moveField(next, action)
	default:
		return state, fmt.Errorf("unknown builder action %q", action.Type)
	}

	return next, nil
}

func addField(state domain.UniversalPassTemplate, action Action) (domain.UniversalPassTemplate, error) {
	group, err := groupOf(&state.Structure, action.Group)
	if err != nil {
		return state, err
	}
	if action.Field.Key == "" {
		return state, fmt.Errorf("field key is required")
	}
	for _, existing := range group {
		if existing.Key == action.Field.Key {
			return state, fmt.Errorf("duplicate field key %q in %s", action.Field.Key, action.Group)
		}
	}
	state.Structure.SetGroup(action.Group, append(group, action.Field))
	return state, nil
}

func updateField(state domain.UniversalPassTemplate, action Action) (domain.UniversalPassTemplate, error) {
	group, err := groupOf(&state.Structure, action.Group)
	if err != nil {
		return state, err
	}
	if action.Index < 0 || action.Index >= len(group) {
		return state, fmt.Errorf("field index %d out of range for %s", action.Index, action.Group)
	}
	for i, existing := range group {
		if i != action.Index && existing.Key == action.Field.Key {
			return state, fmt.Errorf("duplicate field key %q in %s", action.Field.Key, action.Group)
		}
	}
	group[action.Index] = action.Field
	state.Structure.SetGroup(action.Group, group)
	return state, nil
}

func removeField(state domain.UniversalPassTemplate, action Action) (domain.UniversalPassTemplate, error) {
	group, err := groupOf(&state.Structure, action.Group)
	if err != nil {
		return state, err
	}
	if action.Index < 0 || action.Index >= len(group) {
		return state, fmt.Errorf("field index %d out of range for %s", action.Index, action.Group)
	}
	group = append(group[:action.Index], group[action.Index+1:]...)
	state.Structure.SetGroup(action.Group, group)
	return state, nil
}

func moveField(state domain.UniversalPassTemplate, action Action) (domain.UniversalPassTemplate, error) {
	group, err := groupOf(&state.Structure, action.Group)
	if err != nil {
		return state, err
	}
	if action.Index < 0 || action.Index >= len(group) {
		return state, fmt.Errorf("field index %d out of range for %s", action.Index, action.Group)
	}
	if action.ToIndex < 0 || action.ToIndex >= len(group) {
		return state, fmt.Errorf("target index %d out of range for %s", action.ToIndex, action.Group)
	}
	field := group[action.Index]
	group = append(group[:action.Index], group[action.Index+1:]...)
	group = append(group[:action.ToIndex], append([]domain.PassField{field}, group[action.ToIndex:]...)...)
	state.Structure.SetGroup(action.Group, group)
	return state, nil
}

func groupOf(structure *domain.PassStructure, group domain.FieldGroup) ([]domain.PassField, error) {
	for _, known := range domain.FieldGroups {
		if group == known {
			return structure.Group(group), nil
		}
	}
	return nil, fmt.Errorf("unknown field group %q", group)
}

func cloneStructure(s domain.PassStructure) domain.PassStructure {
	return domain.PassStructure{
		HeaderFields:    append([]domain.PassField(nil), s.HeaderFields...),
		PrimaryFields:   append([]domain.PassField(nil), s.PrimaryFields...),
		SecondaryFields: append([]domain.PassField(nil), s.SecondaryFields...),
		AuxiliaryFields: append([]domain.PassField(nil), s.AuxiliaryFields...),
		BackFields:      append([]domain.PassField(nil), s.BackFields...),
	}
}
