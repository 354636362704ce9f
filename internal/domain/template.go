package domain

import "time"

// TemplateStatus enumerates lifecycle states for pass templates.
type TemplateStatus string

const (
	TemplateStatusDraft    TemplateStatus = "DRAFT"
	TemplateStatusActive   TemplateStatus = "ACTIVE"
	TemplateStatusArchived TemplateStatus = "ARCHIVED"
)

// PassType enumerates the wallet pass styles a template can produce.
type PassType string

const (
	PassTypeGeneric      PassType = "generic"
	PassTypeEventTicket  PassType = "eventTicket"
	PassTypeBoardingPass PassType = "boardingPass"
	PassTypeStoreCard    PassType = "storeCard"
	PassTypeCoupon       PassType = "coupon"
)

// Colors holds the design palette. Universal templates carry hex strings
// ("#RRGGBB"); the Apple projection expects "rgb(r, g, b)".
type Colors struct {
	BackgroundColor string `json:"backgroundColor"`
	ForegroundColor string `json:"foregroundColor"`
	LabelColor      string `json:"labelColor"`
}

// Images holds optional artwork references per platform.
type Images struct {
	Icon  string `json:"icon,omitempty"`
	Logo  string `json:"logo,omitempty"`
	Hero  string `json:"hero,omitempty"`
	Strip string `json:"strip,omitempty"`
}

// Design groups the visual configuration of a template.
type Design struct {
	Colors Colors `json:"colors"`
	Images Images `json:"images"`
}

// Location is a geofence trigger that makes the pass relevant nearby.
type Location struct {
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
	RelevantText string  `json:"relevantText,omitempty"`
	MaxDistance  float64 `json:"maxDistance,omitempty"`
}

// ApplePlatform carries the Apple Wallet issuer identifiers.
type ApplePlatform struct {
	PassTypeIdentifier  string `json:"passTypeIdentifier"`
	TeamIdentifier      string `json:"teamIdentifier"`
	FormatVersion       int    `json:"formatVersion"`
	WebServiceURL       string `json:"webServiceURL,omitempty"`
	AuthenticationToken string `json:"authenticationToken,omitempty"`
}

// GoogleLogo references the class logo for Google Wallet.
type GoogleLogo struct {
	SourceURI          string `json:"sourceUri,omitempty"`
	ContentDescription string `json:"contentDescription,omitempty"`
}

// GooglePlatform carries the Google Wallet issuer identifiers.
type GooglePlatform struct {
	IssuerID      string      `json:"issuerId"`
	ClassID       string      `json:"classId"`
	ClassTemplate string      `json:"classTemplate,omitempty"`
	Logo          *GoogleLogo `json:"logo,omitempty"`
}

// PlatformSpecific nests the per-wallet identifier blocks.
type PlatformSpecific struct {
	Apple  ApplePlatform  `json:"apple"`
	Google GooglePlatform `json:"google"`
}

// UniversalPassTemplate is the platform-neutral aggregate for a pass.
// It is persisted verbatim as the configuration document; the Apple
// projection is derived from it, never stored.
type UniversalPassTemplate struct {
	ID               string           `json:"id,omitempty"`
	Name             string           `json:"name"`
	Description      string           `json:"description"`
	Type             PassType         `json:"type"`
	OrganizationName string           `json:"organizationName"`
	Design           Design           `json:"design"`
	Structure        PassStructure    `json:"structure"`
	Barcode          Barcode          `json:"barcode"`
	NFC              NFCSettings      `json:"nfc"`
	Locations        []Location       `json:"locations,omitempty"`
	PlatformSpecific PlatformSpecific `json:"platformSpecific"`
	Status           TemplateStatus   `json:"status"`
	CreatedAt        time.Time        `json:"createdAt,omitempty"`
	UpdatedAt        time.Time        `json:"updatedAt,omitempty"`
}

// Template is the persistence envelope: indexed columns plus the
// configuration document the store keeps opaque.
type Template struct {
	ID             string
	Name           string
	Description    string
	Type           PassType
	Status         TemplateStatus
	OrganizationID string
	Configuration  UniversalPassTemplate
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
