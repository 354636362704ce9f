package wallet

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/spec-kit/passkit-service/internal/domain"
)

func TestGenerateSerialNumber(t *testing.T) {
	pattern := regexp.MustCompile(`^PASS-\d+-[0-9a-z]{9}$`)

	seen := make(map[string]struct{})
	for i := 0; i < 50; i++ {
		serial := GenerateSerialNumber()
		assert.Regexp(t, pattern, serial)
		seen[serial] = struct{}{}
	}
	assert.Greater(t, len(seen), 1, "serials should not all collide")
}

func TestPassTypeIdentifierFor(t *testing.T) {
	assert.Equal(t, "pass.com.acme.coupon", PassTypeIdentifierFor(domain.PassTypeCoupon, "com.acme"))
	assert.Equal(t, "pass.com.acme.eventTicket", PassTypeIdentifierFor(domain.PassTypeEventTicket, "com.acme"))
}

func TestNormalizeNFC(t *testing.T) {
	t.Run("access control wins", func(t *testing.T) {
		nfc := NormalizeNFC(domain.NFCSettings{
			RequiresAuthentication: false,
			AccessControl:          domain.NFCAccessControl{RequiresAuthentication: true},
		})
		assert.True(t, nfc.RequiresAuthentication)
		assert.True(t, nfc.AccessControl.RequiresAuthentication)
	})

	t.Run("legacy flat flag migrates", func(t *testing.T) {
		nfc := NormalizeNFC(domain.NFCSettings{
			RequiresAuthentication: true,
			AccessControl:          domain.NFCAccessControl{},
		})
		assert.True(t, nfc.RequiresAuthentication)
		assert.True(t, nfc.AccessControl.RequiresAuthentication)
	})

	t.Run("both unset stay unset", func(t *testing.T) {
		nfc := NormalizeNFC(domain.NFCSettings{})
		assert.False(t, nfc.RequiresAuthentication)
		assert.False(t, nfc.AccessControl.RequiresAuthentication)
	})

	t.Run("idempotent", func(t *testing.T) {
		nfc := NormalizeNFC(domain.NFCSettings{RequiresAuthentication: true})
		assert.Equal(t, nfc, NormalizeNFC(nfc))
	})
}
