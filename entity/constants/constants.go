package constants

import (
	"errors"
	"fmt"
	"math"
)

var ErrInvalidConstant = errors.New("invalid constant")

const (
	PlanckMass    = 2.435e18        // eV, reduced Planck mass
	SpeedOfLight  = 299792458.0     // m/s
	ReducedPlanck = 1.054571817e-34 // J*s
	RhoLambdaBase = 2.24e-3         // eV, fourth root of the dark-energy density
	MONDScale     = 1.20e-10        // m/s^2
	TransitionLen = 3.0857e19       // m, 1 kpc
)

// Constants is the input table of the calculator. It is passed by value and
// never modified after construction.
type Constants struct {
	MP        float64 // eV
	C         float64 // m/s
	Hbar      float64 // J*s
	RhoLambda float64 // eV^4
	A0        float64 // m/s^2
	Rc        float64 // m
}

func Default() Constants {
	return Constants{
		MP:        PlanckMass,
		C:         SpeedOfLight,
		Hbar:      ReducedPlanck,
		RhoLambda: math.Pow(RhoLambdaBase, 4),
		A0:        MONDScale,
		Rc:        TransitionLen,
	}
}

// Validate checks that every constant is finite and strictly positive.
func (k Constants) Validate() error {
	for _, f := range k.fields() {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			return fmt.Errorf("%w: %s is not finite (%v)", ErrInvalidConstant, f.name, f.value)
		}
		if f.value <= 0 {
			return fmt.Errorf("%w: %s must be positive, got %v", ErrInvalidConstant, f.name, f.value)
		}
	}
	return nil
}

type namedValue struct {
	name  string
	value float64
}

func (k Constants) fields() []namedValue {
	return []namedValue{
		{"M_P", k.MP},
		{"c", k.C},
		{"hbar", k.Hbar},
		{"rho_lambda", k.RhoLambda},
		{"a0", k.A0},
		{"Rc", k.Rc},
	}
}
