package builder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/passkit-service/internal/domain"
)

func TestNewDraft(t *testing.T) {
	state := NewDraft(domain.PassTypeStoreCard, "Acme", "com.acme")

	assert.Equal(t, domain.TemplateStatusDraft, state.Status)
	assert.Equal(t, domain.PassTypeStoreCard, state.Type)
	assert.Equal(t, "pass.com.acme.storeCard", state.PlatformSpecific.Apple.PassTypeIdentifier)
	assert.Equal(t, 1, state.PlatformSpecific.Apple.FormatVersion)
	assert.Equal(t, domain.BarcodeFormatQR, state.Barcode.Format)
	assert.Equal(t, "iso-8859-1", state.Barcode.MessageEncoding)
}

func TestApply_Metadata(t *testing.T) {
	state := NewDraft(domain.PassTypeGeneric, "Acme", "com.acme")

	state, err := Apply(state, Action{Type: ActionSetName, Text: "Badge"})
	require.NoError(t, err)
	state, err = Apply(state, Action{Type: ActionSetDescription, Text: "Employee badge"})
	require.NoError(t, err)
	state, err = Apply(state, Action{Type: ActionSetStatus, Status: domain.TemplateStatusActive})
	require.NoError(t, err)

	assert.Equal(t, "Badge", state.Name)
	assert.Equal(t, "Employee badge", state.Description)
	assert.Equal(t, domain.TemplateStatusActive, state.Status)
}

func TestApply_DoesNotMutateInput(t *testing.T) {
	original := NewDraft(domain.PassTypeGeneric, "Acme", "com.acme")
	original.Structure.PrimaryFields = []domain.PassField{{Key: "k", Label: "L", Value: "V"}}

	next, err := Apply(original, Action{
		Type:  ActionAddField,
		Group: domain.FieldGroupPrimary,
		Field: domain.PassField{Key: "k2", Label: "L2", Value: "V2"},
	})
	require.NoError(t, err)

	assert.Len(t, original.Structure.PrimaryFields, 1)
	assert.Len(t, next.Structure.PrimaryFields, 2)

	next.Structure.PrimaryFields[0].Value = "changed"
	assert.Equal(t, "V", original.Structure.PrimaryFields[0].Value)
}

func TestApply_AddFieldRejectsDuplicateKey(t *testing.T) {
	state := NewDraft(domain.PassTypeGeneric, "Acme", "com.acme")
	state, err := Apply(state, Action{
		Type:  ActionAddField,
		Group: domain.FieldGroupPrimary,
		Field: domain.PassField{Key: "seat", Label: "Seat", Value: "12A"},
	})
	require.NoError(t, err)

	_, err = Apply(state, Action{
		Type:  ActionAddField,
		Group: domain.FieldGroupPrimary,
		Field: domain.PassField{Key: "seat", Label: "Other", Value: "x"},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate field key")

	// Same key in a different group is fine.
	_, err = Apply(state, Action{
		Type:  ActionAddField,
		Group: domain.FieldGroupBack,
		Field: domain.PassField{Key: "seat", Label: "Seat", Value: "12A"},
	})
	assert.NoError(t, err)
}

func TestApply_AddFieldRequiresKey(t *testing.T) {
	state := NewDraft(domain.PassTypeGeneric, "Acme", "com.acme")
	_, err := Apply(state, Action{
		Type:  ActionAddField,
		Group: domain.FieldGroupPrimary,
		Field: domain.PassField{Label: "L", Value: "V"},
	})
	assert.Error(t, err)
}

func TestApply_UpdateField(t *testing.T) {
	state := NewDraft(domain.PassTypeGeneric, "Acme", "com.acme")
	state, err := Apply(state, Action{
		Type:  ActionAddField,
		Group: domain.FieldGroupPrimary,
		Field: domain.PassField{Key: "seat", Label: "Seat", Value: "12A"},
	})
	require.NoError(t, err)

	state, err = Apply(state, Action{
		Type:  ActionUpdateField,
		Group: domain.FieldGroupPrimary,
		Index: 0,
		Field: domain.PassField{Key: "seat", Label: "Seat", Value: "14C"},
	})
	require.NoError(t, err)
	assert.Equal(t, "14C", state.Structure.PrimaryFields[0].Value)

	_, err = Apply(state, Action{
		Type:  ActionUpdateField,
		Group: domain.FieldGroupPrimary,
		Index: 5,
		Field: domain.PassField{Key: "x", Label: "X", Value: "x"},
	})
	assert.Error(t, err)
}

func TestApply_RemoveAndMoveField(t *testing.T) {
	state := NewDraft(domain.PassTypeGeneric, "Acme", "com.acme")
	for _, key := range []string{"a", "b", "c"} {
		var err error
		state, err = Apply(state, Action{
			Type:  ActionAddField,
			Group: domain.FieldGroupBack,
			Field: domain.PassField{Key: key, Label: key, Value: key},
		})
		require.NoError(t, err)
	}

	state, err := Apply(state, Action{
		Type:    ActionMoveField,
		Group:   domain.FieldGroupBack,
		Index:   2,
		ToIndex: 0,
	})
	require.NoError(t, err)
	keys := []string{}
	for _, field := range state.Structure.BackFields {
		keys = append(keys, field.Key)
	}
	assert.Equal(t, []string{"c", "a", "b"}, keys)

	state, err = Apply(state, Action{
		Type:  ActionRemoveField,
		Group: domain.FieldGroupBack,
		Index: 1,
	})
	require.NoError(t, err)
	require.Len(t, state.Structure.BackFields, 2)
	assert.Equal(t, "c", state.Structure.BackFields[0].Key)
	assert.Equal(t, "b", state.Structure.BackFields[1].Key)
}

func TestApply_UnknownGroupAndAction(t *testing.T) {
	state := NewDraft(domain.PassTypeGeneric, "Acme", "com.acme")

	_, err := Apply(state, Action{
		Type:  ActionAddField,
		Group: domain.FieldGroup("bogusFields"),
		Field: domain.PassField{Key: "k"},
	})
	assert.Error(t, err)

	_, err = Apply(state, Action{Type: ActionType("bogus")})
	assert.Error(t, err)
}

func TestApply_SetNFCNormalizesFlags(t *testing.T) {
	state := NewDraft(domain.PassTypeGeneric, "Acme", "com.acme")

	state, err := Apply(state, Action{
		Type: ActionSetNFC,
		NFC: domain.NFCSettings{
			Enabled:                true,
			Message:                "tap",
			RequiresAuthentication: true,
		},
	})
	require.NoError(t, err)
	assert.True(t, state.NFC.AccessControl.RequiresAuthentication)
	assert.True(t, state.NFC.RequiresAuthentication)
}
