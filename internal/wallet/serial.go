package wallet

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/spec-kit/passkit-service/internal/domain"
)

const serialSuffixLength = 9

// GenerateSerialNumber produces a unique-enough serial for a new pass:
// "PASS-<unix millis>-<9 base36 chars>".
func GenerateSerialNumber() string {
	const alphabet = "0123456789abcdefghijklmnopqrstuvwxyz"
	var suffix strings.Builder
	for i := 0; i < serialSuffixLength; i++ {
		suffix.WriteByte(alphabet[rand.Intn(len(alphabet))])
	}
	return fmt.Sprintf("PASS-%d-%s", time.Now().UnixMilli(), suffix.String())
}

// PassTypeIdentifierFor derives the reverse-domain pass type identifier
// for a bundle, e.g. PassTypeIdentifierFor(PassTypeCoupon, "com.acme")
// yields "pass.com.acme.coupon".
func PassTypeIdentifierFor(passType domain.PassType, bundleID string) string {
	return fmt.Sprintf("pass.%s.%s", bundleID, passType)
}

// NormalizeNFC collapses the historical duplicate requiresAuthentication
// flags. AccessControl is authoritative; the flat flag is kept in sync
// for legacy readers. Ingestion paths that accept legacy payloads with
// only the flat flag set should call this after decoding.
func NormalizeNFC(nfc domain.NFCSettings) domain.NFCSettings {
	if nfc.RequiresAuthentication && !nfc.AccessControl.RequiresAuthentication {
		// Legacy shape: only the flat flag was set.
		nfc.AccessControl.RequiresAuthentication = true
	}
	nfc.RequiresAuthentication = nfc.AccessControl.RequiresAuthentication
	return nfc
}
