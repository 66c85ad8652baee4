package activator

import (
	"math"
	"strconv"
	"strings"
)

// parseNumber parses one raw token. Empty or malformed text maps to NaN so a
// missing value fails validation instead of silently becoming zero.
func parseNumber(raw string) float64 {
	s := strings.TrimSpace(raw)
	if s == "" {
		return math.NaN()
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return math.NaN()
	}
	return v
}

// parsePercent parses a percentage-style token. A value above 1 is taken as
// 0-100 percent and divided by 100; values in [0,1] are already a fraction.
// The conversion happens before any range check.
func parsePercent(raw string) float64 {
	v := parseNumber(raw)
	if v > 1.0 {
		v = v / 100.0
	}
	return v
}

// Validate parses the six raw form fields and checks every input rule,
// collecting all violations rather than stopping at the first. It returns
// either a fully populated Inputs or a *ValidationError; never a partially
// valid result.
func Validate(raw RawFields) (Inputs, error) {
	in := Inputs{
		SolidMass:         parseNumber(raw.SolidMass),
		SilicaFraction:    parsePercent(raw.SilicaFraction),
		SodaFraction:      parsePercent(raw.SodaFraction),
		TargetModulus:     parseNumber(raw.TargetModulus),
		TargetAlkali:      parseNumber(raw.TargetAlkali),
		TargetSolidLiquid: parseNumber(raw.TargetSolidLiquid),
	}

	var violations []string
	if math.IsNaN(in.SolidMass) || math.IsNaN(in.SilicaFraction) || math.IsNaN(in.SodaFraction) ||
		math.IsNaN(in.TargetModulus) || math.IsNaN(in.TargetAlkali) || math.IsNaN(in.TargetSolidLiquid) {
		violations = append(violations, "one or more fields are empty or not numeric")
	}
	if in.SolidMass <= 0 {
		violations = append(violations, "solid precursor mass A must be > 0")
	}
	if !(0 < in.SilicaFraction && in.SilicaFraction < 1) {
		violations = append(violations, "silicate SiO2 fraction C must be within (0,1); values above 1 are read as 0-100 percent")
	}
	if !(0 < in.SodaFraction && in.SodaFraction < 1) {
		violations = append(violations, "silicate Na2O fraction D must be within (0,1); values above 1 are read as 0-100 percent")
	}
	if in.TargetModulus <= 0 {
		violations = append(violations, "target alkali modulus O must be > 0")
	}
	if in.TargetAlkali <= 0 {
		violations = append(violations, "target alkali-equivalent ratio Q must be > 0")
	}
	if in.TargetSolidLiquid <= 0 {
		violations = append(violations, "target solid/liquid ratio R must be > 0")
	}
	if in.SilicaFraction+in.SodaFraction >= 1 {
		violations = append(violations, "silicate SiO2 and Na2O fractions must sum to less than 100%")
	}
	if len(violations) > 0 {
		return Inputs{}, &ValidationError{Violations: violations}
	}
	return in, nil
}
