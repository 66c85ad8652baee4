package activator

import "math"

// Solve executes the closed-form inverse mass balance for a validated Inputs.
// The derivation order is fixed: silicate mass B from the target-modulus
// equation, NaOH mass E from the target alkali-equivalent equation, water
// mass F from the target solid/liquid ratio, then the feasibility gate, then
// the verification quantities. Infeasible targets abort with a
// *InfeasibleError; no quantity is ever clamped into a feasible range.
//
// Solve is a pure function and safe for concurrent use.
func Solve(in Inputs) (Results, error) {
	if in.SilicaFraction <= 0 {
		return Results{}, &InfeasibleError{
			Reason:  ReasonSilicaFraction,
			Message: "silicate SiO2 fraction C is zero, cannot derive the silicate mass",
		}
	}

	b := (in.TargetModulus * in.TargetAlkali * in.SolidMass) / (in.SilicaFraction * SilicateModulusConst)
	e := (in.TargetAlkali*in.SolidMass - b*in.SodaFraction) / NaOHToNa2O
	f := in.SolidMass/in.TargetSolidLiquid - (b + e)

	switch {
	case math.IsNaN(b) || math.IsNaN(e) || math.IsNaN(f):
		return Results{}, &InfeasibleError{
			Reason:  ReasonNotANumber,
			Message: "derivation produced NaN, check the inputs",
		}
	case b <= 0:
		return Results{}, &InfeasibleError{
			Reason:  ReasonSilicateMass,
			Message: "silicate mass B <= 0: target modulus O or alkali ratio Q too small, or SiO2 fraction C too large",
		}
	case e < 0:
		return Results{}, &InfeasibleError{
			Reason:  ReasonHydroxideMass,
			Message: "hydroxide mass E < 0: alkali ratio Q too small or Na2O fraction D too large",
		}
	case f < 0:
		return Results{}, &InfeasibleError{
			Reason:  ReasonWaterMass,
			Message: "water mass F < 0: solid/liquid ratio R too aggressive for these targets",
		}
	}

	l := b * in.SilicaFraction
	m := b * in.SodaFraction
	n := e * NaOHToNa2O
	j := b + e

	// B > 0 past the gate, so j > 0 always holds here; the guards mirror the
	// undefined-value contract of the derivation.
	g, h := math.NaN(), math.NaN()
	if j > 0 {
		g = l / j
		h = (m + n) / j
	}
	density := math.NaN()
	if !math.IsNaN(g) && !math.IsNaN(h) {
		density = 1.0 / ((1.0-g-h)/densityWater + g/densitySiO2 + h/densityNa2O)
	}
	k := math.NaN()
	if m > 0 {
		k = (l / 60.0) / (m / 62.0)
	}
	oBack := math.NaN()
	if m+n > 0 {
		oBack = (l / 60.0) / (m/62.0 + n/62.0)
	}
	rBack := math.NaN()
	if j+f > 0 {
		rBack = in.SolidMass / (j + f)
	}

	return Results{
		SilicateMass:      b,
		HydroxideMass:     e,
		WaterMass:         f,
		SilicaFractionNew: g,
		SodaFractionNew:   h,
		LiquidDensity:     density,
		LiquidMass:        j,
		SilicateModulus:   k,
		SilicaInSilicate:  l,
		SodaInSilicate:    m,
		SodaFromHydroxide: n,
		ModulusBack:       oBack,
		InitialAlkali:     m / in.SolidMass,
		FinalAlkali:       (m + n) / in.SolidMass,
		SolidLiquidBack:   rBack,
	}, nil
}
