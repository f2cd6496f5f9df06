package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := map[string]string{
		"zkSync Era Drop":                "zksync-era-drop",
		"  Hello, World!  ":              "hello-world",
		"Café Déjà Vu":                   "cafe-deja-vu",
		"Ethereum's Pectra Upgrade":      "ethereum-s-pectra-upgrade",
		"PEPE -- Binance (Spot) listing": "pepe-binance-spot-listing",
		"---":                            "",
		"":                               "",
	}
	for in, want := range tests {
		assert.Equal(t, want, Slugify(in), "input %q", in)
	}
}

func TestEnsureSlug(t *testing.T) {
	assert.Equal(t, "custom", EnsureSlug("custom", "Other Name"))
	assert.Equal(t, "other-name", EnsureSlug("", "Other Name"))
	assert.Equal(t, "other-name", EnsureSlug("   ", "Other Name"))
	assert.Empty(t, EnsureSlug("", ""))
}

func TestNormalizeTags(t *testing.T) {
	got := NormalizeTags([]string{" Ethereum ", "Layer 2", "ethereum", "", "DeFi"})
	assert.Equal(t, []string{"ethereum", "layer-2", "defi"}, got)
	assert.Empty(t, NormalizeTags(nil))
}
