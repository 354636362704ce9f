package domain

// BarcodeFormat enumerates the Apple barcode symbologies.
type BarcodeFormat string

const (
	BarcodeFormatQR      BarcodeFormat = "PKBarcodeFormatQR"
	BarcodeFormatPDF417  BarcodeFormat = "PKBarcodeFormatPDF417"
	BarcodeFormatAztec   BarcodeFormat = "PKBarcodeFormatAztec"
	BarcodeFormatCode128 BarcodeFormat = "PKBarcodeFormatCode128"
)

// DefaultMessageEncoding is the wallet convention for barcode payloads.
const DefaultMessageEncoding = "iso-8859-1"

// Barcode is the single machine-readable code of a universal template.
// The Apple projection wraps it into a one-element array.
type Barcode struct {
	Format          BarcodeFormat `json:"format"`
	Message         string        `json:"message"`
	MessageEncoding string        `json:"messageEncoding,omitempty"`
	AlternativeText string        `json:"alternativeText,omitempty"`
}
