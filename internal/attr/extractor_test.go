package attr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopscout-engine/internal/lexicon"
)

func newExtractor() *Extractor {
	return New(lexicon.Default())
}

func TestExtractElectronics(t *testing.T) {
	ex := newExtractor()

	attrs := ex.Extract("Dell Inspiron 15 Laptop, i5, 16GB RAM, 512GB Storage, 120Hz, 15.6 inch FHD")

	assert.Equal(t, "16", attrs.Scalar("ram_gb"))
	assert.Equal(t, "512", attrs.Scalar("storage_gb"))
	assert.Equal(t, "120", attrs.Scalar("refresh_hz"))
	assert.Equal(t, "15.6", attrs.Scalar("screen_in"))
	assert.Equal(t, []string{"i5"}, attrs.List("cpu"))
	assert.Equal(t, []string{"fhd"}, attrs.List("panel"))
}

func TestExtractTBPrecedence(t *testing.T) {
	ex := newExtractor()

	attrs := ex.Extract("Gaming Laptop 1TB SSD 16GB RAM")

	assert.Equal(t, "1", attrs.Scalar("storage_tb"))
	_, hasGB := attrs["storage_gb"]
	assert.False(t, hasGB, "storage_gb must be absent when a TB figure matched")
	assert.Equal(t, "16", attrs.Scalar("ram_gb"))
}

func TestExtractStorageSkipsRAMFigure(t *testing.T) {
	ex := newExtractor()

	attrs := ex.Extract("Phone 8GB RAM, 128GB")
	assert.Equal(t, "8", attrs.Scalar("ram_gb"))
	assert.Equal(t, "128", attrs.Scalar("storage_gb"))

	// Same figure twice: positions disambiguate, not values.
	attrs = ex.Extract("Tablet 16GB RAM, 16GB storage")
	assert.Equal(t, "16", attrs.Scalar("ram_gb"))
	assert.Equal(t, "16", attrs.Scalar("storage_gb"))
}

func TestExtractSizesAndCapacity(t *testing.T) {
	ex := newExtractor()

	attrs := ex.Extract("Nike Running Shoes UK 9 US 10 EU 43")
	assert.Equal(t, "9", attrs.Scalar("size_uk"))
	assert.Equal(t, "10", attrs.Scalar("size_us"))
	assert.Equal(t, "43", attrs.Scalar("size_eu"))

	attrs = ex.Extract("Milton Flask 1.5 Litre Stainless Steel")
	assert.Equal(t, "1", attrs.Scalar("capacity_l"))
	assert.Contains(t, attrs.List("material"), "stainless steel")

	attrs = ex.Extract("Prestige Kadhai 3L Nonstick 1200W")
	assert.Equal(t, "3", attrs.Scalar("capacity_l"))
	assert.Equal(t, "1200", attrs.Scalar("watt"))
}

func TestExtractTokenOrderAndDedup(t *testing.T) {
	ex := newExtractor()

	attrs := ex.Extract("Black and Navy Leather Boots, black sole")
	assert.Equal(t, []string{"black", "navy"}, attrs.List("color"))
	assert.Equal(t, []string{"leather"}, attrs.List("material"))
}

func TestExtractTotalOnJunk(t *testing.T) {
	ex := newExtractor()

	for _, text := range []string{"", "   ", "!!!", "αβγ", "9999999999999999999"} {
		attrs := ex.Extract(text)
		require.NotNil(t, attrs)
	}
}

func TestExtractBatteryAndRefreshClosedSet(t *testing.T) {
	ex := newExtractor()

	attrs := ex.Extract("Redmi Phone 5000mAh 90Hz AMOLED")
	assert.Equal(t, "5000", attrs.Scalar("battery_mah"))
	assert.Equal(t, "90", attrs.Scalar("refresh_hz"))
	assert.Contains(t, attrs.List("panel"), "amoled")

	// 75Hz is outside the closed refresh set.
	attrs = ex.Extract("Monitor 75Hz")
	assert.Equal(t, "", attrs.Scalar("refresh_hz"))
}
