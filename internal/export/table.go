// Package export serializes a solved batch into the fixed three-row tabular
// layout consumed by spreadsheets and downstream tooling.
package export

import (
	"github.com/verskrino-zhy/geopolymer-alkali-activator-calculate/internal/activator"
)

// Columns is the width of the batch-sheet table. The column order and both
// label rows are a stable contract; consumers index into the exported table
// by position.
const Columns = 18

// Order: A, B, C, D, E, F, G, H, I, J, K, L, M, N, O', P, Q', R'.
var headers = [Columns]string{
	"Solid precursor mass (g)",
	"Silicate solution to add (g)",
	"Silicate SiO2 fraction (%)",
	"Silicate Na2O fraction (%)",
	"Sodium hydroxide to add (g)",
	"Water to add (g)",
	"New liquid SiO2 fraction (%)",
	"New liquid Na2O fraction (%)",
	"New liquid density (g/cm3)",
	"New liquid mass (g)",
	"Silicate modulus (verification)",
	"SiO2 mass in silicate (g)",
	"Na2O mass in silicate (g)",
	"Na2O equivalent from NaOH (g)",
	"Alkali modulus (back-calculated)",
	"Initial alkali-equivalent ratio",
	"Final alkali-equivalent ratio",
	"Solid/liquid ratio",
}

var varNames = [Columns]string{
	"m_solid",
	"m_silicate",
	"w_SiO2",
	"w_Na2O",
	"m_NaOH",
	"m_H2O",
	"w_SiO2_new",
	"w_Na2O_new",
	"rho_new",
	"m_liquid_new",
	"M_silicate",
	"m_SiO2",
	"m_Na2O@silicate",
	"m_Na2O@NaOH",
	"M_new",
	"N_init",
	"N_final",
	"S/L",
}

// Table is the three-row export layout: human-readable headers, short
// symbolic variable names, and the raw numeric values, all in the same fixed
// 18-column order.
type Table struct {
	Headers  []string
	VarNames []string
	Values   []float64
}

// BuildTable lays out one solved batch in the export column order.
func BuildTable(in activator.Inputs, res activator.Results) Table {
	return Table{
		Headers:  headers[:],
		VarNames: varNames[:],
		Values: []float64{
			in.SolidMass,
			res.SilicateMass,
			in.SilicaFraction,
			in.SodaFraction,
			res.HydroxideMass,
			res.WaterMass,
			res.SilicaFractionNew,
			res.SodaFractionNew,
			res.LiquidDensity,
			res.LiquidMass,
			res.SilicateModulus,
			res.SilicaInSilicate,
			res.SodaInSilicate,
			res.SodaFromHydroxide,
			res.ModulusBack,
			res.InitialAlkali,
			res.FinalAlkali,
			res.SolidLiquidBack,
		},
	}
}
