package domain

// NFCAccessControl gates NFC redemption. RequiresAuthentication here is
// the single source of truth; the flat NFCSettings flag mirrors it.
type NFCAccessControl struct {
	RequiresAuthentication bool `json:"requiresAuthentication"`
	RequiresPresence       bool `json:"requiresPresence"`
	UnlockDevice           bool `json:"unlockDevice"`
}

// GoogleSmartTap configures Smart Tap redemption for Google Wallet.
type GoogleSmartTap struct {
	Enabled bool     `json:"enabled"`
	Domains []string `json:"domains,omitempty"`
}

// NFCSettings configures NFC behavior for a template. When Enabled is
// false no other NFC field is validated.
type NFCSettings struct {
	Enabled                bool             `json:"enabled"`
	Message                string           `json:"message"`
	EncryptionPublicKey    string           `json:"encryptionPublicKey,omitempty"`
	RequiresAuthentication bool             `json:"requiresAuthentication"`
	Payload                string           `json:"payload,omitempty"`
	AccessControl          NFCAccessControl `json:"accessControl"`
	GoogleSmartTap         *GoogleSmartTap  `json:"googleSmartTap,omitempty"`
}
