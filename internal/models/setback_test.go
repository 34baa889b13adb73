package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetback_Variants(t *testing.T) {
	fixed := FixedSetback(7.5)
	assert.Equal(t, SetbackFixed, fixed.Kind())
	v, ok := fixed.Fixed()
	require.True(t, ok)
	assert.InDelta(t, 7.5, v, 1e-9)
	assert.False(t, fixed.RequiresSurvey())

	pair := MinMaxSetback(2.4, 1.2)
	assert.Equal(t, SetbackMinMax, pair.Kind())
	min, max, ok := pair.MinMax()
	require.True(t, ok)
	assert.InDelta(t, 2.4, min, 1e-9)
	assert.InDelta(t, 1.2, max, 1e-9)
	_, ok = pair.Fixed()
	assert.False(t, ok)

	survey := SurveySetback()
	assert.True(t, survey.RequiresSurvey())
	_, ok = survey.Fixed()
	assert.False(t, ok)
}

func TestSetback_NumericUsesStandardValue(t *testing.T) {
	// The envelope calculation uses the standard (min) value of a pair,
	// never the reduced alternative.
	v, ok := MinMaxSetback(2.4, 1.2).Numeric()
	require.True(t, ok)
	assert.InDelta(t, 2.4, v, 1e-9)

	v, ok = FixedSetback(7.5).Numeric()
	require.True(t, ok)
	assert.InDelta(t, 7.5, v, 1e-9)

	// Survey-required has no numeric form; it must never read as zero.
	_, ok = SurveySetback().Numeric()
	assert.False(t, ok)

	_, ok = (Setback{}).Numeric()
	assert.False(t, ok)
}

func TestSetback_JSONRoundTrip(t *testing.T) {
	for _, s := range []Setback{
		FixedSetback(10.5),
		MinMaxSetback(2.4, 1.2),
		SurveySetback(),
	} {
		data, err := json.Marshal(s)
		require.NoError(t, err)

		var got Setback
		require.NoError(t, json.Unmarshal(data, &got))
		assert.Equal(t, s, got)
	}
}

func TestSetback_MarshalInvalidFails(t *testing.T) {
	_, err := json.Marshal(Setback{})
	assert.Error(t, err)
}

func TestSetback_UnmarshalRejectsMalformed(t *testing.T) {
	var s Setback

	// A bare number cannot silently become a setback.
	assert.Error(t, json.Unmarshal([]byte(`{"type":"fixed"}`), &s))
	assert.Error(t, json.Unmarshal([]byte(`{"type":"min_max","min":2.4}`), &s))
	assert.Error(t, json.Unmarshal([]byte(`{"type":"negative_one"}`), &s))
}

func TestRatioLimit_Variants(t *testing.T) {
	fraction := FractionLimit(0.35)
	assert.Equal(t, RatioFraction, fraction.Kind())
	v, ok := fraction.Fraction()
	require.True(t, ok)
	assert.InDelta(t, 0.35, v, 1e-9)
	_, ok = fraction.Table()
	assert.False(t, ok)

	deferred := TableLimit(TableFARByLotArea)
	assert.Equal(t, RatioTable, deferred.Kind())
	name, ok := deferred.Table()
	require.True(t, ok)
	assert.Equal(t, "table_6.4.1", name)
	_, ok = deferred.Fraction()
	assert.False(t, ok)
}

func TestRatioLimit_JSONRoundTrip(t *testing.T) {
	for _, r := range []RatioLimit{
		FractionLimit(0.30),
		TableLimit(TableCoverageByZone),
	} {
		data, err := json.Marshal(r)
		require.NoError(t, err)

		var got RatioLimit
		require.NoError(t, json.Unmarshal(data, &got))
		assert.Equal(t, r, got)
	}
}

func TestRatioLimit_UnmarshalRejectsMalformed(t *testing.T) {
	var r RatioLimit
	assert.Error(t, json.Unmarshal([]byte(`{"type":"fraction"}`), &r))
	assert.Error(t, json.Unmarshal([]byte(`{"type":"table"}`), &r))
	assert.Error(t, json.Unmarshal([]byte(`{"type":"percentage","value":35}`), &r))
}
