package wallet

import (
	"fmt"
	"regexp"

	"github.com/spec-kit/passkit-service/internal/domain"
)

var (
	passTypeIdentifierPattern = regexp.MustCompile(`^[A-Z0-9]+\.[A-Za-z0-9.-]+\.[A-Za-z0-9.-]+$`)

	// Channels are checked for digit count only, not the 0-255 range.
	// "rgb(999, 0, 0)" passes. Kept as-is; see the range test.
	rgbColorPattern = regexp.MustCompile(`^rgb\(\d{1,3},\s*\d{1,3},\s*\d{1,3}\)$`)
)

const teamIdentifierLength = 10

// Candidate is the Apple-oriented template shape the builder submits for
// validation. All fields are optional; absence is reported as a
// violation, never as a panic.
type Candidate struct {
	PassTypeIdentifier string                `json:"passTypeIdentifier"`
	TeamIdentifier     string                `json:"teamIdentifier"`
	OrganizationName   string                `json:"organizationName"`
	SerialNumber       string                `json:"serialNumber"`
	Description        string                `json:"description"`
	BackgroundColor    string                `json:"backgroundColor,omitempty"`
	ForegroundColor    string                `json:"foregroundColor,omitempty"`
	LabelColor         string                `json:"labelColor,omitempty"`
	Barcodes           []CandidateBarcode    `json:"barcodes"`
	NFC                *domain.NFCSettings   `json:"nfc,omitempty"`
	Structure          *domain.PassStructure `json:"structure,omitempty"`
}

// CandidateBarcode mirrors one entry of the Apple barcodes array.
type CandidateBarcode struct {
	Format          string `json:"format"`
	Message         string `json:"message"`
	MessageEncoding string `json:"messageEncoding,omitempty"`
	AltText         string `json:"altText,omitempty"`
}

// Validate checks a candidate template against every rule and returns the
// violations in a stable order, ready to render to an end user. An empty
// slice means the candidate is valid. All rules are evaluated; an early
// failure never suppresses later violations.
func Validate(template *Candidate) []string {
	violations := []string{}
	if template == nil {
		template = &Candidate{}
	}

	required := []struct {
		name  string
		value string
	}{
		{"passTypeIdentifier", template.PassTypeIdentifier},
		{"teamIdentifier", template.TeamIdentifier},
		{"organizationName", template.OrganizationName},
		{"serialNumber", template.SerialNumber},
		{"description", template.Description},
	}
	for _, field := range required {
		if field.value == "" {
			violations = append(violations, fmt.Sprintf("%s is required", field.name))
		}
	}

	if template.PassTypeIdentifier != "" && !passTypeIdentifierPattern.MatchString(template.PassTypeIdentifier) {
		violations = append(violations, "Invalid passTypeIdentifier format")
	}

	if template.TeamIdentifier != "" && len(template.TeamIdentifier) != teamIdentifierLength {
		violations = append(violations, "Team Identifier must be 10 characters")
	}

	colors := []struct {
		name  string
		value string
	}{
		{"backgroundColor", template.BackgroundColor},
		{"foregroundColor", template.ForegroundColor},
		{"labelColor", template.LabelColor},
	}
	for _, color := range colors {
		if color.value != "" && !rgbColorPattern.MatchString(color.value) {
			violations = append(violations, fmt.Sprintf("Invalid %s format. Use rgb(r, g, b) format", color.name))
		}
	}

	if len(template.Barcodes) == 0 {
		violations = append(violations, "At least one barcode is required")
	} else {
		for i, barcode := range template.Barcodes {
			if barcode.Format == "" {
				violations = append(violations, fmt.Sprintf("Barcode %d: format is required", i+1))
			}
			if barcode.Message == "" {
				violations = append(violations, fmt.Sprintf("Barcode %d: message is required", i+1))
			}
		}
	}

	if template.NFC != nil && template.NFC.Enabled && template.NFC.Message == "" {
		violations = append(violations, "NFC message is required when NFC is enabled")
	}

	if template.Structure != nil {
		violations = append(violations, validateStructure(template.Structure)...)
	}

	return violations
}

// groupLabels maps field regions to the capitalized singular names used
// in violation messages, in report order.
var groupLabels = []struct {
	group domain.FieldGroup
	label string
}{
	{domain.FieldGroupHeader, "Header"},
	{domain.FieldGroupPrimary, "Primary"},
	{domain.FieldGroupSecondary, "Secondary"},
	{domain.FieldGroupAuxiliary, "Auxiliary"},
	{domain.FieldGroupBack, "Back"},
}

func validateStructure(structure *domain.PassStructure) []string {
	violations := []string{}

	if len(structure.PrimaryFields) == 0 {
		violations = append(violations, "At least one primary field is required")
	}

	for _, entry := range groupLabels {
		for i, field := range structure.Group(entry.group) {
			if field.Key == "" {
				violations = append(violations, fmt.Sprintf("%s field %d: key is required", entry.label, i+1))
			}
			if field.Label == "" {
				violations = append(violations, fmt.Sprintf("%s field %d: label is required", entry.label, i+1))
			}
			if field.Value == "" {
				violations = append(violations, fmt.Sprintf("%s field %d: value is required", entry.label, i+1))
			}
		}
	}

	return violations
}

// ValidateNFC checks NFC settings in isolation, for builder panels that
// edit NFC without the rest of the template. Its enabled/message rule
// matches Validate.
func ValidateNFC(nfc *domain.NFCSettings) []string {
	violations := []string{}
	if nfc == nil || !nfc.Enabled {
		return violations
	}

	if nfc.Message == "" {
		violations = append(violations, "NFC message is required when NFC is enabled")
	}
	if nfc.EncryptionPublicKey != "" && len(nfc.EncryptionPublicKey) < 10 {
		violations = append(violations, "NFC encryption public key must be at least 10 characters")
	}

	return violations
}

// ValidateUniversal runs the candidate rules against a universal template
// by projecting its Apple-relevant parts first. The structure and NFC
// blocks are checked as-is; colors are the universal hex values and are
// deliberately not checked against the rgb() rule here.
func ValidateUniversal(universal *domain.UniversalPassTemplate) []string {
	if universal == nil {
		return Validate(nil)
	}
	candidate := &Candidate{
		PassTypeIdentifier: universal.PlatformSpecific.Apple.PassTypeIdentifier,
		TeamIdentifier:     universal.PlatformSpecific.Apple.TeamIdentifier,
		OrganizationName:   universal.OrganizationName,
		SerialNumber:       universal.ID,
		Description:        universal.Description,
		NFC:                &universal.NFC,
		Structure:          &universal.Structure,
	}
	if universal.ID == "" {
		// Unsaved drafts have no id yet; the serial is assigned on save.
		candidate.SerialNumber = "pending"
	}
	if universal.Barcode.Format != "" || universal.Barcode.Message != "" {
		candidate.Barcodes = []CandidateBarcode{{
			Format:  string(universal.Barcode.Format),
			Message: universal.Barcode.Message,
			AltText: universal.Barcode.AlternativeText,
		}}
	}
	return Validate(candidate)
}
