package domain

import "strings"

// Variant is the rarity tier assigned to a crop unit at harvest time
type Variant string

// Variant values
const (
	VariantNormal  Variant = "normal"
	VariantSilver  Variant = "silver"
	VariantGold    Variant = "gold"
	VariantDiamond Variant = "diamond"
)

// Sale value multipliers per variant
const (
	MultiplierNormal  = 1.0
	MultiplierSilver  = 1.5
	MultiplierGold    = 4.0
	MultiplierDiamond = 10.0
)

// Variants lists every tier from most to least valuable
var Variants = []Variant{VariantDiamond, VariantGold, VariantSilver, VariantNormal}

// Multiplier returns the sale value multiplier for the variant.
// Unknown tags price like normal.
func (v Variant) Multiplier() float64 {
	switch v {
	case VariantSilver:
		return MultiplierSilver
	case VariantGold:
		return MultiplierGold
	case VariantDiamond:
		return MultiplierDiamond
	default:
		return MultiplierNormal
	}
}

// IsValid reports whether v is a known tier
func (v Variant) IsValid() bool {
	switch v {
	case VariantNormal, VariantSilver, VariantGold, VariantDiamond:
		return true
	}
	return false
}

// ParseVariant converts a tag into a Variant, ignoring case and surrounding space
func ParseVariant(s string) (Variant, bool) {
	v := Variant(strings.ToLower(strings.TrimSpace(s)))
	return v, v.IsValid()
}
