package entity

import (
	"fmt"
	"io"
	"math"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/AnkushinDaniil/aep/entity/constants"
	"github.com/AnkushinDaniil/aep/entity/parameters"
)

// Determine evaluates the closed-form AEP parameters for the given constants.
// Status lines are written to progress; a nil progress discards them.
// Any arithmetic failure aborts the determination with a *ComputationError.
func Determine(k constants.Constants, progress io.Writer) (parameters.Parameters, error) {
	if progress == nil {
		progress = io.Discard
	}
	startTime := time.Now()
	defer func() {
		log.WithField("time", time.Since(startTime)).Debug("Determination finished")
	}()

	fmt.Fprintln(progress, "Determining AEP parameters...")

	g, err := coupling(k)
	if err != nil {
		return parameters.Parameters{}, &ComputationError{Step: "g", Err: err}
	}
	log.WithField("g", g).Debug("Coupling computed")
	fmt.Fprintf(progress, "Step 1: g = %.6e\n", g)

	lambda := g * g / 3
	if !isFinite(lambda) {
		return parameters.Parameters{}, &ComputationError{Step: "lambda", Err: ErrNonFinite}
	}
	log.WithField("lambda", lambda).Debug("Self-coupling computed")
	fmt.Fprintf(progress, "Step 2: lambda = %.6e\n", lambda)

	xMin, err := attractorMinimum(g)
	if err != nil {
		return parameters.Parameters{}, &ComputationError{Step: "X_min", Err: err}
	}
	log.WithField("X_min", xMin).Debug("Attractor minimum computed")
	fmt.Fprintf(progress, "Step 3: X_min = %.6e\n", xMin)

	return parameters.Parameters{
		G:         g,
		Lambda:    lambda,
		XMin:      xMin,
		Kappa:     parameters.Kappa,
		VChi:      parameters.VChi,
		LambdaChi: parameters.LambdaChi,
		Gamma:     parameters.Gamma,
	}, nil
}

// coupling computes g = (c^12 / (a0^4 * hbar^4 * M_P^4 * 3))^(1/3).
func coupling(k constants.Constants) (float64, error) {
	num := math.Pow(k.C, 12)
	den := math.Pow(k.A0, 4) * math.Pow(k.Hbar, 4) * math.Pow(k.MP, 4) * 3
	if !isFinite(num) || !isFinite(den) {
		return 0, ErrNonFinite
	}
	if den == 0 {
		return 0, ErrDivisionByZero
	}

	operand := num / den
	if !isFinite(operand) {
		return 0, ErrNonFinite
	}
	if operand <= 0 {
		return 0, ErrDomain
	}
	return math.Cbrt(operand), nil
}

// attractorMinimum computes X_min = -1 / (4g).
func attractorMinimum(g float64) (float64, error) {
	if g == 0 {
		return 0, ErrDivisionByZero
	}
	xMin := -1 / (4 * g)
	if !isFinite(xMin) {
		return 0, ErrNonFinite
	}
	return xMin, nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
