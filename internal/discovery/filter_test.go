package discovery

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidHandle(t *testing.T) {
	valid := []string{"casaloma", "casa_loma", "casa.loma", "hotel2024", "ab"}
	for _, h := range valid {
		assert.True(t, ValidHandle(h), h)
	}

	invalid := []string{
		"explore", "reels", "accounts", "login", // reserved
		"a",                              // too short
		"abcdefghijklmnopqrstuvwxyz01234", // 31 chars
		"CasaLoma",                       // uppercase
		"casa loma",                      // space
		"casa-loma",                      // hyphen
		"caña",                           // non-ascii
		"",
	}
	for _, h := range invalid {
		assert.False(t, ValidHandle(h), h)
	}
}
