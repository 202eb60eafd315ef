package idm_test

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/gnames/idmdash/pkg/idm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTierOf(t *testing.T) {
	tests := []struct {
		val  float64
		tier idm.Tier
	}{
		{100, idm.Excellent},
		{90, idm.Excellent},
		{89.99, idm.Good},
		{89, idm.Good},
		{70, idm.Good},
		{69, idm.Fair},
		{50, idm.Fair},
		{49.9, idm.Poor},
		{0, idm.Poor},
		{math.NaN(), idm.NoData},
	}
	for _, v := range tests {
		assert.Equal(t, v.tier, idm.TierOf(v.val), v.val)
	}
}

// Every integer of [0,100] belongs to exactly one tier and tiers do
// not decrease when the value grows.
func TestTierPartition(t *testing.T) {
	prev := idm.Poor
	for i := 0; i <= 100; i++ {
		tier := idm.TierOf(float64(i))
		assert.NotEqual(t, idm.NoData, tier, i)
		assert.GreaterOrEqual(t, tier, prev, i)
		prev = tier
	}
}

func TestBand(t *testing.T) {
	tests := []struct {
		msg   string
		val   idm.Value
		tier  idm.Tier
		prim  string
		dark  string
		label string
	}{
		{"excellent", idm.Value{IDM: 95, Found: true}, idm.Excellent,
			"#27AE60", "#12783D", "Bien"},
		{"good", idm.Value{IDM: 87, Found: true}, idm.Good,
			"#F39C12", "#875A12", "Regular"},
		{"fair", idm.Value{IDM: 50, Found: true}, idm.Fair,
			"#E67E22", "#B35418", "Mal"},
		{"poor", idm.Value{IDM: 12, Found: true}, idm.Poor,
			"#E74C3C", "#781F16", "Muy mal"},
		{"zero is poor, not missing", idm.Value{IDM: 0, Found: true}, idm.Poor,
			"#E74C3C", "#781F16", "Muy mal"},
		{"not found", idm.NotFound, idm.NoData,
			"#BDC3C7", "#7F8C8D", "Sin datos"},
	}
	for _, v := range tests {
		res := idm.Band(v.val)
		assert.Equal(t, v.tier, res.Tier, v.msg)
		assert.Equal(t, v.prim, res.Primary, v.msg)
		assert.Equal(t, v.dark, res.Dark, v.msg)
		assert.Equal(t, v.label, res.Tier.Label(), v.msg)
	}
}

func TestBandingJSON(t *testing.T) {
	res, err := json.Marshal(idm.Band(idm.Value{IDM: 91, Found: true}))
	require.NoError(t, err)
	assert.JSONEq(t,
		`{"tier":"excellent","primary":"#27AE60","dark":"#12783D"}`,
		string(res))
}
