package export

import (
	"testing"

	"github.com/verskrino-zhy/geopolymer-alkali-activator-calculate/internal/activator"
)

func solvedBatch(t *testing.T) (activator.Inputs, activator.Results) {
	t.Helper()
	in, err := activator.Validate(activator.RawFields{
		SolidMass:         "200",
		SilicaFraction:    "30",
		SodaFraction:      "13.5",
		TargetModulus:     "1.5",
		TargetAlkali:      "0.15",
		TargetSolidLiquid: "0.6",
	})
	if err != nil {
		t.Fatalf("validate fixture: %v", err)
	}
	res, err := activator.Solve(in)
	if err != nil {
		t.Fatalf("solve fixture: %v", err)
	}
	return in, res
}

func TestBuildTableShape(t *testing.T) {
	in, res := solvedBatch(t)
	tab := BuildTable(in, res)

	if len(tab.Headers) != Columns || len(tab.VarNames) != Columns || len(tab.Values) != Columns {
		t.Fatalf("expected %d columns in every row, got %d/%d/%d",
			Columns, len(tab.Headers), len(tab.VarNames), len(tab.Values))
	}
}

func TestBuildTableColumnOrder(t *testing.T) {
	in, res := solvedBatch(t)
	tab := BuildTable(in, res)

	if tab.Headers[0] != "Solid precursor mass (g)" || tab.Headers[17] != "Solid/liquid ratio" {
		t.Fatalf("header order changed: first=%q last=%q", tab.Headers[0], tab.Headers[17])
	}
	if tab.VarNames[0] != "m_solid" || tab.VarNames[17] != "S/L" {
		t.Fatalf("variable-name order changed: first=%q last=%q", tab.VarNames[0], tab.VarNames[17])
	}

	// Spot-check the value mapping against the contract positions.
	if tab.Values[0] != in.SolidMass {
		t.Fatalf("column 1 must be A, got %v", tab.Values[0])
	}
	if tab.Values[1] != res.SilicateMass {
		t.Fatalf("column 2 must be B, got %v", tab.Values[1])
	}
	if tab.Values[2] != in.SilicaFraction || tab.Values[3] != in.SodaFraction {
		t.Fatalf("columns 3-4 must be C and D, got %v %v", tab.Values[2], tab.Values[3])
	}
	if tab.Values[14] != res.ModulusBack {
		t.Fatalf("column 15 must be the back-calculated modulus, got %v", tab.Values[14])
	}
	if tab.Values[17] != res.SolidLiquidBack {
		t.Fatalf("column 18 must be the back-calculated solid/liquid ratio, got %v", tab.Values[17])
	}
}
