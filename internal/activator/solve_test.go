package activator

import (
	"errors"
	"math"
	"testing"
)

// Canonical fixture: the documented base/target values with a feasible
// solid/liquid ratio. Expected values are frozen from the closed-form
// derivation (B = 4500/31, E = 12900/961, ...).
func fixtureInputs() Inputs {
	return Inputs{
		SolidMass:         200,
		SilicaFraction:    0.30,
		SodaFraction:      0.135,
		TargetModulus:     1.5,
		TargetAlkali:      0.15,
		TargetSolidLiquid: 0.6,
	}
}

func assertClose(t *testing.T, name string, got, want float64) {
	t.Helper()
	if want == 0 {
		if math.Abs(got) > 1e-9 {
			t.Fatalf("%s: got %v, want 0", name, got)
		}
		return
	}
	if math.Abs(got-want)/math.Abs(want) > 1e-9 {
		t.Fatalf("%s: got %v, want %v", name, got, want)
	}
}

func TestSolveCanonicalFixture(t *testing.T) {
	res, err := Solve(fixtureInputs())
	if err != nil {
		t.Fatalf("expected feasible solve, got %v", err)
	}

	assertClose(t, "B", res.SilicateMass, 145.16129032258065)
	assertClose(t, "E", res.HydroxideMass, 13.42351716961498)
	assertClose(t, "F", res.WaterMass, 174.7485258411377)
	assertClose(t, "J", res.LiquidMass, 158.58480749219563)
	assertClose(t, "L", res.SilicaInSilicate, 43.54838709677419)
	assertClose(t, "M", res.SodaInSilicate, 19.596774193548388)
	assertClose(t, "N", res.SodaFromHydroxide, 10.403225806451612)
	assertClose(t, "G", res.SilicaFractionNew, 0.2746062992125984)
	assertClose(t, "H", res.SodaFractionNew, 0.18917322834645669)
	assertClose(t, "K", res.SilicateModulus, 2.2962962962962963)
	assertClose(t, "O'", res.ModulusBack, 1.5)
	assertClose(t, "P", res.InitialAlkali, 0.09798387096774194)
}

func TestSolveRoundTripsTargets(t *testing.T) {
	cases := []Inputs{
		fixtureInputs(),
		{SolidMass: 500, SilicaFraction: 0.28, SodaFraction: 0.09, TargetModulus: 1.2, TargetAlkali: 0.08, TargetSolidLiquid: 0.9},
		{SolidMass: 50, SilicaFraction: 0.32, SodaFraction: 0.14, TargetModulus: 1.0, TargetAlkali: 0.12, TargetSolidLiquid: 0.4},
	}
	for _, in := range cases {
		res, err := Solve(in)
		if err != nil {
			t.Fatalf("Solve(%+v): %v", in, err)
		}
		assertClose(t, "Q' round trip", res.FinalAlkali, in.TargetAlkali)
		assertClose(t, "R' round trip", res.SolidLiquidBack, in.TargetSolidLiquid)
	}
}

// The documented demo values (R = 1.5) demand less total liquid than the
// silicate and hydroxide alone already supply, so the water mass comes out
// negative and the solve must refuse rather than clamp.
func TestSolveDemoSolidLiquidRatioInfeasible(t *testing.T) {
	in := fixtureInputs()
	in.TargetSolidLiquid = 1.5
	_, err := Solve(in)
	var ierr *InfeasibleError
	if !errors.As(err, &ierr) {
		t.Fatalf("expected *InfeasibleError, got %v", err)
	}
	if ierr.Reason != ReasonWaterMass {
		t.Fatalf("expected reason %q, got %q", ReasonWaterMass, ierr.Reason)
	}
}

func TestSolveSilicateMassGate(t *testing.T) {
	in := fixtureInputs()
	in.TargetModulus = 0
	_, err := Solve(in)
	var ierr *InfeasibleError
	if !errors.As(err, &ierr) {
		t.Fatalf("expected *InfeasibleError, got %v", err)
	}
	if ierr.Reason != ReasonSilicateMass {
		t.Fatalf("expected reason %q, got %q", ReasonSilicateMass, ierr.Reason)
	}
}

func TestSolveHydroxideMassGate(t *testing.T) {
	// A high modulus pulls in so much silicate that its Na2O alone overshoots
	// the alkali target, driving E negative.
	in := fixtureInputs()
	in.TargetModulus = 3.0
	_, err := Solve(in)
	var ierr *InfeasibleError
	if !errors.As(err, &ierr) {
		t.Fatalf("expected *InfeasibleError, got %v", err)
	}
	if ierr.Reason != ReasonHydroxideMass {
		t.Fatalf("expected reason %q, got %q", ReasonHydroxideMass, ierr.Reason)
	}
}

func TestSolveSilicaFractionGuard(t *testing.T) {
	in := fixtureInputs()
	in.SilicaFraction = 0
	_, err := Solve(in)
	var ierr *InfeasibleError
	if !errors.As(err, &ierr) {
		t.Fatalf("expected *InfeasibleError, got %v", err)
	}
	if ierr.Reason != ReasonSilicaFraction {
		t.Fatalf("expected reason %q, got %q", ReasonSilicaFraction, ierr.Reason)
	}
}

func TestSolveNaNGuard(t *testing.T) {
	in := fixtureInputs()
	in.TargetAlkali = math.NaN()
	_, err := Solve(in)
	var ierr *InfeasibleError
	if !errors.As(err, &ierr) {
		t.Fatalf("expected *InfeasibleError, got %v", err)
	}
	if ierr.Reason != ReasonNotANumber {
		t.Fatalf("expected reason %q, got %q", ReasonNotANumber, ierr.Reason)
	}
}

func TestSolveFailureReturnsZeroResults(t *testing.T) {
	in := fixtureInputs()
	in.TargetSolidLiquid = 1.5
	res, err := Solve(in)
	if err == nil {
		t.Fatal("expected failure")
	}
	if res != (Results{}) {
		t.Fatalf("failed solve must not leak partial results: %+v", res)
	}
}
