package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"Elegant 18K Gold Ring":  "elegant-18k-gold-ring",
		"  Rose  Gold -- Chain ": "rose-gold-chain",
		"Café & Co.":             "caf-co",
	}
	for in, want := range cases {
		assert.Equal(t, want, Slugify(in), in)
	}
}

func TestUniqueSlug(t *testing.T) {
	a := UniqueSlug("Silver Anklet")
	b := UniqueSlug("Silver Anklet")

	assert.True(t, strings.HasPrefix(a, "silver-anklet-"))
	assert.NotEqual(t, a, b)
}
