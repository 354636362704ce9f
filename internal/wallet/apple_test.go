package wallet

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/passkit-service/internal/domain"
)

func sampleUniversal() *domain.UniversalPassTemplate {
	return &domain.UniversalPassTemplate{
		ID:               "tmpl-42",
		Name:             "VIP Ticket",
		Description:      "Backstage access",
		Type:             domain.PassTypeEventTicket,
		OrganizationName: "Acme",
		Design: domain.Design{
			Colors: domain.Colors{
				BackgroundColor: "#FFFFFF",
				ForegroundColor: "#000000",
				LabelColor:      "#666666",
			},
		},
		Structure: domain.PassStructure{
			PrimaryFields: []domain.PassField{{Key: "seat", Label: "Seat", Value: "12A"}},
			BackFields:    []domain.PassField{{Key: "terms", Label: "Terms", Value: "No refunds"}},
		},
		Barcode: domain.Barcode{
			Format:          domain.BarcodeFormatQR,
			Message:         "m",
			AlternativeText: "scan me",
		},
		NFC: domain.NFCSettings{Enabled: true, Message: "tap"},
		Locations: []domain.Location{
			{Latitude: 52.37, Longitude: 4.89, RelevantText: "Venue nearby"},
		},
		PlatformSpecific: domain.PlatformSpecific{
			Apple: domain.ApplePlatform{
				PassTypeIdentifier:  "X.y.z",
				TeamIdentifier:      "1234567890",
				FormatVersion:       1,
				WebServiceURL:       "https://passes.acme.example",
				AuthenticationToken: "token-123",
			},
		},
		Status: domain.TemplateStatusDraft,
	}
}

func TestToApplePass_FieldMapping(t *testing.T) {
	apple := ToApplePass(sampleUniversal())

	assert.Equal(t, "X.y.z", apple.PassTypeIdentifier)
	assert.Equal(t, "1234567890", apple.TeamIdentifier)
	assert.Equal(t, "Acme", apple.OrganizationName)
	assert.Equal(t, "Backstage access", apple.Description)
	assert.Equal(t, "tmpl-42", apple.SerialNumber)
	assert.Equal(t, 1, apple.FormatVersion)
	assert.Equal(t, "https://passes.acme.example", apple.WebServiceURL)
	assert.Equal(t, "token-123", apple.AuthenticationToken)
	assert.Equal(t, sampleUniversal().Structure, apple.Structure)

	require.NotNil(t, apple.NFC)
	assert.True(t, apple.NFC.Enabled)
	assert.Equal(t, "tap", apple.NFC.Message)

	require.Len(t, apple.Locations, 1)
	assert.Equal(t, 52.37, apple.Locations[0].Latitude)
}

// The single universal barcode always becomes a one-element array.
func TestToApplePass_SingleBarcodeBecomesArray(t *testing.T) {
	apple := ToApplePass(sampleUniversal())

	require.Len(t, apple.Barcodes, 1)
	assert.Equal(t, domain.BarcodeFormatQR, apple.Barcodes[0].Format)
	assert.Equal(t, "m", apple.Barcodes[0].Message)
	assert.Equal(t, "scan me", apple.Barcodes[0].AltText)
}

// Colors pass through unchanged: the universal hex value lands in the
// Apple document as-is instead of being rewritten to rgb(). Known
// mismatch with the rgb() validation rule; HexToRGBString exists for
// callers that need the translated form.
func TestToApplePass_ColorPassthrough(t *testing.T) {
	apple := ToApplePass(sampleUniversal())

	assert.Equal(t, "#FFFFFF", apple.BackgroundColor)
	assert.Equal(t, "#000000", apple.ForegroundColor)
	assert.Equal(t, "#666666", apple.LabelColor)
}

func TestToApplePass_Deterministic(t *testing.T) {
	universal := sampleUniversal()
	first := ToApplePass(universal)
	second := ToApplePass(universal)
	assert.Equal(t, first, second)
}

func TestToApplePass_SerialFallbackWithoutID(t *testing.T) {
	universal := sampleUniversal()
	universal.ID = ""

	apple := ToApplePass(universal)
	require.NotEmpty(t, apple.SerialNumber)
	_, err := strconv.ParseInt(apple.SerialNumber, 10, 64)
	assert.NoError(t, err, "fallback serial should be a millisecond timestamp")
}

func TestToApplePass_NilAndZeroInputs(t *testing.T) {
	assert.NotPanics(t, func() {
		apple := ToApplePass(nil)
		assert.Empty(t, apple.PassTypeIdentifier)
		require.Len(t, apple.Barcodes, 1)
	})
	assert.NotPanics(t, func() {
		ToApplePass(&domain.UniversalPassTemplate{})
	})
}

func TestToApplePass_DoesNotAliasStructure(t *testing.T) {
	universal := sampleUniversal()
	apple := ToApplePass(universal)

	apple.Structure.PrimaryFields[0].Value = "changed"
	assert.Equal(t, "12A", universal.Structure.PrimaryFields[0].Value)
}
