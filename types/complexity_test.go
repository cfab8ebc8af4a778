package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComplexityLevel_Ordering(t *testing.T) {
	assert.True(t, ComplexityCritical.AtLeast(ComplexityHighlyComplex))
	assert.True(t, ComplexityComplex.AtLeast(ComplexityComplex))
	assert.False(t, ComplexitySimple.AtLeast(ComplexityModerate))

	levels := AllComplexityLevels()
	for i := 1; i < len(levels); i++ {
		assert.Greater(t, int(levels[i]), int(levels[i-1]))
	}
}

func TestParseComplexityLevel(t *testing.T) {
	tests := []struct {
		name string
		want ComplexityLevel
	}{
		{"simple", ComplexitySimple},
		{"moderate", ComplexityModerate},
		{"complex", ComplexityComplex},
		{"highly_complex", ComplexityHighlyComplex},
		{"critical", ComplexityCritical},
		{"", ComplexityModerate},
		{"garbage", ComplexityModerate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseComplexityLevel(tt.name))
		})
	}
}

func TestComplexityLevel_RoundTrip(t *testing.T) {
	for _, level := range AllComplexityLevels() {
		assert.Equal(t, level, ParseComplexityLevel(level.String()))
	}
}

func TestComplexityLevel_JSONByName(t *testing.T) {
	out, err := json.Marshal(ComplexityHighlyComplex)
	require.NoError(t, err)
	assert.Equal(t, `"highly_complex"`, string(out))

	out, err = json.Marshal(TierSpecialized)
	require.NoError(t, err)
	assert.Equal(t, `"specialized"`, string(out))

	// Enum-keyed maps serialize by name too.
	hits := map[ComplexityLevel][]string{ComplexityCritical: {"emergency"}}
	out, err = json.Marshal(hits)
	require.NoError(t, err)
	assert.JSONEq(t, `{"critical":["emergency"]}`, string(out))
}

func TestTier_Priority(t *testing.T) {
	assert.Less(t, TierCore.Priority(), TierSpecialized.Priority())
	assert.Less(t, TierSpecialized.Priority(), TierAdvanced.Priority())
	assert.Less(t, TierAdvanced.Priority(), TierSupport.Priority())
	assert.Greater(t, Tier(0).Priority(), TierSupport.Priority())
}

func TestParseTier(t *testing.T) {
	assert.Equal(t, TierCore, ParseTier("core"))
	assert.Equal(t, TierSupport, ParseTier("support"))
	assert.False(t, ParseTier("nope").Valid())
}
