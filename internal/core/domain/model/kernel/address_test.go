package kernel_test

import (
	"testing"

	"github.com/xerodok/tcgplayer-easypost-tool/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePostalCode(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"five digits untouched", "30301", "30301"},
		{"lost leading zero", "2134", "02134"},
		{"lost two leading zeros", "501", "00501"},
		{"nine digits get hyphen", "021341234", "02134-1234"},
		{"zip plus four untouched", "02134-1234", "02134-1234"},
		{"whitespace trimmed", " 30301 ", "30301"},
		{"foreign code passes through", "K1A 0B1", "K1A 0B1"},
		{"empty stays empty", "", ""},
		{"non-ascii digits pass through", " ١٢٣ ", "١٢٣"},
		{"fullwidth digits pass through", "２１３４", "２１３４"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, kernel.NormalizePostalCode(tt.in))
		})
	}
}

func TestFullName(t *testing.T) {
	assert.Equal(t, "Ada Lovelace", kernel.FullName("Ada", "Lovelace"))
	assert.Equal(t, "Ada", kernel.FullName(" Ada ", ""))
	assert.Equal(t, "Lovelace", kernel.FullName("", "Lovelace"))
}

func TestAddress_IsZero(t *testing.T) {
	assert.True(t, kernel.Address{}.IsZero())
	assert.False(t, kernel.Address{City: "Boston"}.IsZero())
}
