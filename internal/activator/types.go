package activator

import "fmt"

// Molar-mass conversion ratios used by the mass balance.
const (
	// SilicateModulusConst converts the SiO2-based molar modulus of the
	// silicate solution into mass-ratio form (62/60, the Na2O:SiO2 molar
	// mass quotient).
	SilicateModulusConst = 62.0 / 60.0

	// NaOHToNa2O is the mass fraction of Na2O obtainable from NaOH (62/80).
	NaOHToNa2O = 62.0 / 80.0
)

// Component densities for the liquid mixing rule, g/cm³.
const (
	densityWater = 0.998
	densitySiO2  = 2.2
	densityNa2O  = 2.27
)

// RawFields carries the six form tokens exactly as the user typed them.
// Validate turns them into a typed Inputs.
type RawFields struct {
	SolidMass         string // A: total solid precursor mass (g)
	SilicaFraction    string // C: SiO2 mass fraction of the silicate solution
	SodaFraction      string // D: Na2O mass fraction of the silicate solution
	TargetModulus     string // O: target alkali modulus, mol SiO2 / mol Na2O
	TargetAlkali      string // Q: target alkali-equivalent ratio
	TargetSolidLiquid string // R: target solid/liquid mass ratio
}

// Inputs is a validated parameter set. It fully determines one solve attempt
// and is never constructed partially valid.
type Inputs struct {
	SolidMass         float64 // A (g), > 0
	SilicaFraction    float64 // C, in (0,1)
	SodaFraction      float64 // D, in (0,1); C + D < 1
	TargetModulus     float64 // O, > 0
	TargetAlkali      float64 // Q, > 0
	TargetSolidLiquid float64 // R, > 0
}

// Results holds the component masses and every back-calculated verification
// quantity for one successful solve. All masses are grams, densities g/cm³.
type Results struct {
	// Primary unknowns.
	SilicateMass  float64 // B: silicate solution to add (g)
	HydroxideMass float64 // E: NaOH to add (g)
	WaterMass     float64 // F: water to add (g)

	// Derived and verification quantities.
	SilicaFractionNew float64 // G: SiO2 mass fraction of the new liquid
	SodaFractionNew   float64 // H: Na2O mass fraction of the new liquid
	LiquidDensity     float64 // I: density of the new liquid (g/cm³)
	LiquidMass        float64 // J: new liquid mass excluding added water (g)
	SilicateModulus   float64 // K: silicate modulus recomputed from composition
	SilicaInSilicate  float64 // L: SiO2 mass contributed by the silicate (g)
	SodaInSilicate    float64 // M: Na2O mass contributed by the silicate (g)
	SodaFromHydroxide float64 // N: Na2O-equivalent mass from the NaOH (g)
	ModulusBack       float64 // O': full-system alkali modulus, back-calculated
	InitialAlkali     float64 // P: silicate-only alkali-equivalent ratio
	FinalAlkali       float64 // Q': final alkali-equivalent ratio, back-calculated
	SolidLiquidBack   float64 // R': solid/liquid ratio, back-calculated
}

// Display precisions are fixed: percentages ×100 at 3 decimals, densities at
// 4, masses at 3, ratios at 5.

func FormatMass(v float64) string { return fmt.Sprintf("%.3f", v) }

func FormatPercent(v float64) string { return fmt.Sprintf("%.3f", v*100) }

func FormatDensity(v float64) string { return fmt.Sprintf("%.4f", v) }

func FormatRatio(v float64) string { return fmt.Sprintf("%.5f", v) }
