package idm

import "math"

// Tier is a qualitative band of the index.
type Tier int

const (
	NoData Tier = iota
	Poor
	Fair
	Good
	Excellent
)

// Lower edges of tiers, inclusive.
const (
	ExcellentMin = 90.0
	GoodMin      = 70.0
	FairMin      = 50.0
)

var tierNames = map[Tier]string{
	NoData:    "no_data",
	Poor:      "poor",
	Fair:      "fair",
	Good:      "good",
	Excellent: "excellent",
}

func (t Tier) String() string {
	return tierNames[t]
}

// MarshalText keeps tiers readable in JSON.
func (t Tier) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// Label is the user-facing name of a tier.
func (t Tier) Label() string {
	switch t {
	case Excellent:
		return "Bien"
	case Good:
		return "Regular"
	case Fair:
		return "Mal"
	case Poor:
		return "Muy mal"
	default:
		return "Sin datos"
	}
}

// Banding is a tier with its two display colors.
type Banding struct {
	Tier Tier `json:"tier"`
	// Primary is the bright shade used for the value.
	Primary string `json:"primary"`
	// Dark is the shade of the background ring.
	Dark string `json:"dark"`
}

var palette = map[Tier][2]string{
	Excellent: {"#27AE60", "#12783D"},
	Good:      {"#F39C12", "#875A12"},
	Fair:      {"#E67E22", "#B35418"},
	Poor:      {"#E74C3C", "#781F16"},
	NoData:    {"#BDC3C7", "#7F8C8D"},
}

// TierOf returns the tier of an index value.
func TierOf(f float64) Tier {
	switch {
	case math.IsNaN(f):
		return NoData
	case f >= ExcellentMin:
		return Excellent
	case f >= GoodMin:
		return Good
	case f >= FairMin:
		return Fair
	default:
		return Poor
	}
}

// Band maps a looked up value to its tier and colors. NotFound gets
// the NoData tier.
func Band(v Value) Banding {
	t := NoData
	if v.Found {
		t = TierOf(float64(v.IDM))
	}
	return BandOfTier(t)
}

// BandOfTier returns colors of a tier.
func BandOfTier(t Tier) Banding {
	c := palette[t]
	return Banding{Tier: t, Primary: c[0], Dark: c[1]}
}
