package variant

import (
	"math/rand"

	"github.com/Owennied/HimmyGames/internal/domain"
)

// Threshold pairs a variant with the cumulative upper bound of its roll band.
type Threshold struct {
	Variant domain.Variant
	Bound   float64
}

// rarestFirst is the order in which bands are checked. The order is part of
// the observable behavior: a roll is classified by the first band it falls
// under, so rarer tiers claim the low end of [0,1).
var rarestFirst = []domain.Variant{
	domain.VariantDiamond,
	domain.VariantGold,
	domain.VariantSilver,
}

// Sampler rolls a rarity tier for a harvested crop
type Sampler struct {
	rnd func() float64
}

// NewSampler creates a sampler backed by the global math/rand source
func NewSampler() *Sampler {
	return &Sampler{rnd: rand.Float64} //nolint:gosec // Game logic randomness, not security critical
}

// NewSeededSampler creates a deterministic sampler for tests and replays
func NewSeededSampler(seed int64) *Sampler {
	r := rand.New(rand.NewSource(seed)) //nolint:gosec // Game logic randomness, not security critical
	return &Sampler{rnd: r.Float64}
}

// NewSamplerWithSource creates a sampler that draws from rnd.
// rnd must return values in [0,1).
func NewSamplerWithSource(rnd func() float64) *Sampler {
	return &Sampler{rnd: rnd}
}

// Thresholds returns the ordered cumulative bands for the given odds
func Thresholds(odds map[domain.Variant]float64) []Threshold {
	out := make([]Threshold, 0, len(rarestFirst))
	cumulative := 0.0
	for _, v := range rarestFirst {
		cumulative += clamp(odds[v])
		out = append(out, Threshold{Variant: v, Bound: cumulative})
	}
	return out
}

// Sample draws one roll and classifies it against the crop's odds
func (s *Sampler) Sample(odds map[domain.Variant]float64) domain.Variant {
	return Classify(s.rnd(), odds)
}

// Classify maps a roll in [0,1) to a variant. Anything past the last band is normal.
func Classify(roll float64, odds map[domain.Variant]float64) domain.Variant {
	for _, t := range Thresholds(odds) {
		if roll < t.Bound {
			return t.Variant
		}
	}
	return domain.VariantNormal
}

func clamp(p float64) float64 {
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}
