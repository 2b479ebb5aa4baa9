package assetgraph

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Every declared kind needs a template name; a new constant without one
// would silently render as "unknown".
func TestKindsHaveNames(t *testing.T) {
	for _, dt := range DataTypes {
		assert.NotEqual(t, "unknown", dt.String(), "data type %d", int(dt))
		parsed, ok := ParseDataType(dt.String())
		assert.True(t, ok)
		assert.Equal(t, dt, parsed)
	}
	for _, it := range InputTypes[1:] {
		assert.NotEqual(t, "unknown", it.String(), "input type %d", int(it))
	}
	for _, at := range AssetTypes[1:] {
		assert.NotEqual(t, "unknown", at.String(), "asset type %d", int(at))
	}
}

func TestParseRejectsUnknown(t *testing.T) {
	_, ok := ParseDataType("float")
	assert.False(t, ok)
	it, ok := ParseInputType("trigger")
	assert.True(t, ok)
	assert.Equal(t, InputTrigger, it)
	at, ok := ParseAssetType("font")
	assert.True(t, ok)
	assert.Equal(t, AssetFont, at)
}
