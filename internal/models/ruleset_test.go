package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZoneCode_Normalized(t *testing.T) {
	tests := []struct {
		name string
		code ZoneCode
		want string
	}{
		{"base only", ZoneCode{BaseZone: "RL3"}, "RL3"},
		{"with suffix", ZoneCode{BaseZone: "RL1", Suffix: SuffixEnhancedInfill}, "RL1-0"},
		{"with clause", ZoneCode{BaseZone: "RL2", ClauseID: "SP:1"}, "RL2 SP:1"},
		{
			"suffix and clause",
			ZoneCode{BaseZone: "RL10", Suffix: SuffixEnhancedInfill, ClauseID: "SP:2"},
			"RL10-0 SP:2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.code.Normalized())
		})
	}
}

func TestRulePatch_IsZero(t *testing.T) {
	assert.True(t, RulePatch{}.IsZero())

	area := 500.0
	assert.False(t, RulePatch{MinLotArea: &area}.IsZero())

	assert.False(t, RulePatch{PermittedUses: []DwellingType{DwellingDetached}}.IsZero())
}

func TestRulePatch_AppliesOnlyDefinedFields(t *testing.T) {
	front := FixedSetback(7.5)
	rear := FixedSetback(7.5)
	coverage := FractionLimit(0.35)
	area := 557.5
	height := 12.0

	rs := &RuleSet{
		MinLotArea:     &area,
		FrontYard:      &front,
		RearYard:       &rear,
		MaxHeight:      &height,
		MaxLotCoverage: &coverage,
		PermittedUses:  []DwellingType{DwellingDetached},
	}

	patchedFront := FixedSetback(6.0)
	newArea := 500.0
	patch := RulePatch{
		MinLotArea: &newArea,
		FrontYard:  &patchedFront,
	}

	patch.Apply(rs)

	// Patched fields take the new values.
	require.NotNil(t, rs.MinLotArea)
	assert.InDelta(t, 500.0, *rs.MinLotArea, 1e-9)
	got, _ := rs.FrontYard.Fixed()
	assert.InDelta(t, 6.0, got, 1e-9)

	// Everything the patch leaves nil is untouched.
	require.NotNil(t, rs.MaxHeight)
	assert.InDelta(t, 12.0, *rs.MaxHeight, 1e-9)
	rearVal, _ := rs.RearYard.Fixed()
	assert.InDelta(t, 7.5, rearVal, 1e-9)
	fraction, _ := rs.MaxLotCoverage.Fraction()
	assert.InDelta(t, 0.35, fraction, 1e-9)
	assert.Equal(t, []DwellingType{DwellingDetached}, rs.PermittedUses)
}

func TestRulePatch_ApplyDoesNotAliasPatchValues(t *testing.T) {
	newArea := 500.0
	patch := RulePatch{MinLotArea: &newArea}

	rs := &RuleSet{}
	patch.Apply(rs)

	// Mutating the applied rule set must not write back into the patch.
	*rs.MinLotArea = 1.0
	assert.InDelta(t, 500.0, newArea, 1e-9)
}
