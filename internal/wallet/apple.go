package wallet

import (
	"strconv"
	"time"

	"github.com/spec-kit/passkit-service/internal/domain"
)

// AppleBarcode is one entry of the Apple barcodes array.
type AppleBarcode struct {
	Format          domain.BarcodeFormat `json:"format"`
	Message         string               `json:"message"`
	MessageEncoding string               `json:"messageEncoding,omitempty"`
	AltText         string               `json:"altText,omitempty"`
}

// ApplePassTemplate is the flattened Apple Wallet projection of a
// universal template. It is derived on demand and never stored.
type ApplePassTemplate struct {
	PassTypeIdentifier  string               `json:"passTypeIdentifier"`
	TeamIdentifier      string               `json:"teamIdentifier"`
	OrganizationName    string               `json:"organizationName"`
	SerialNumber        string               `json:"serialNumber"`
	Description         string               `json:"description"`
	FormatVersion       int                  `json:"formatVersion"`
	BackgroundColor     string               `json:"backgroundColor,omitempty"`
	ForegroundColor     string               `json:"foregroundColor,omitempty"`
	LabelColor          string               `json:"labelColor,omitempty"`
	LogoText            string               `json:"logoText,omitempty"`
	Barcodes            []AppleBarcode       `json:"barcodes"`
	Structure           domain.PassStructure `json:"structure"`
	ExpirationDate      string               `json:"expirationDate,omitempty"`
	Voided              bool                 `json:"voided,omitempty"`
	Locations           []domain.Location    `json:"locations,omitempty"`
	RelevantDate        string               `json:"relevantDate,omitempty"`
	AuthenticationToken string               `json:"authenticationToken,omitempty"`
	WebServiceURL       string               `json:"webServiceURL,omitempty"`
	NFC                 *domain.NFCSettings  `json:"nfc,omitempty"`
}

// ToApplePass projects a universal template into the Apple Wallet shape.
// The projection is a pure function of its input: no store access, no
// re-validation. Callers validate first; converting an invalid template
// yields an Apple template with empty required fields.
//
// Colors are passed through unchanged even though the universal model
// carries hex strings and Apple expects rgb() — the historical behavior.
// Use HexToRGBString explicitly where the rgb() form is needed.
func ToApplePass(universal *domain.UniversalPassTemplate) ApplePassTemplate {
	if universal == nil {
		universal = &domain.UniversalPassTemplate{}
	}

	serial := universal.ID
	if serial == "" {
		serial = strconv.FormatInt(time.Now().UnixMilli(), 10)
	}

	apple := ApplePassTemplate{
		PassTypeIdentifier: universal.PlatformSpecific.Apple.PassTypeIdentifier,
		TeamIdentifier:     universal.PlatformSpecific.Apple.TeamIdentifier,
		OrganizationName:   universal.OrganizationName,
		Description:        universal.Description,
		SerialNumber:       serial,
		FormatVersion:      universal.PlatformSpecific.Apple.FormatVersion,
		BackgroundColor:    universal.Design.Colors.BackgroundColor,
		ForegroundColor:    universal.Design.Colors.ForegroundColor,
		LabelColor:         universal.Design.Colors.LabelColor,
		Structure:          copyStructure(universal.Structure),
		Barcodes: []AppleBarcode{{
			Format:  universal.Barcode.Format,
			Message: universal.Barcode.Message,
			AltText: universal.Barcode.AlternativeText,
		}},
		WebServiceURL:       universal.PlatformSpecific.Apple.WebServiceURL,
		AuthenticationToken: universal.PlatformSpecific.Apple.AuthenticationToken,
	}

	nfc := universal.NFC
	apple.NFC = &nfc

	if len(universal.Locations) > 0 {
		apple.Locations = append([]domain.Location(nil), universal.Locations...)
	}

	return apple
}

// copyStructure deep-copies the field slices so mutating the projection
// never aliases the universal template.
func copyStructure(s domain.PassStructure) domain.PassStructure {
	return domain.PassStructure{
		HeaderFields:    append([]domain.PassField(nil), s.HeaderFields...),
		PrimaryFields:   append([]domain.PassField(nil), s.PrimaryFields...),
		SecondaryFields: append([]domain.PassField(nil), s.SecondaryFields...),
		AuxiliaryFields: append([]domain.PassField(nil), s.AuxiliaryFields...),
		BackFields:      append([]domain.PassField(nil), s.BackFields...),
	}
}
