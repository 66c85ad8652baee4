package activator

import (
	"fmt"
	"strings"
)

// Infeasibility reason codes. Each names the derived quantity that failed its
// feasibility check so callers can route the message without parsing it.
const (
	ReasonSilicaFraction = "silica-fraction"
	ReasonNotANumber     = "not-a-number"
	ReasonSilicateMass   = "silicate-mass"
	ReasonHydroxideMass  = "hydroxide-mass"
	ReasonWaterMass      = "water-mass"
)

// ValidationError collects every input rule violated in one validation pass.
// A non-empty violation list means the caller must not attempt a solve.
type ValidationError struct {
	Violations []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Violations, "; ")
}

// InfeasibleError reports the single terminal reason a solve attempt failed.
// The message names the target parameter most likely responsible, so the user
// knows what to correct.
type InfeasibleError struct {
	Reason  string
	Message string
}

func (e *InfeasibleError) Error() string {
	return fmt.Sprintf("%s: %s", e.Reason, e.Message)
}
