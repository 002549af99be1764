package solver

import (
	"context"
	"fmt"

	"github.com/kmehta/orbitlab/internal/ode"
)

// Drive advances the system across the full time domain, recording the
// state after every step. The returned history has dom.Steps+1 entries,
// entry 0 being the initial state; the time sequence is t0, t0+h, ..., tn.
//
// Drive performs no input validation and never fails: degenerate physics
// (coincident bodies, non-positive masses) surfaces as Inf/NaN in the
// recorded states, exactly as the force model produced it.
func Drive(sys ode.System, integ ode.Integrator, x0 ode.State, dom ode.Domain) ([]ode.State, []float64) {
	h := dom.H()

	hist := make([]ode.State, 0, dom.Steps+1)
	times := make([]float64, 0, dom.Steps+1)

	x := x0.Clone()
	hist = append(hist, x.Clone())
	times = append(times, dom.T0)

	for i := 1; i <= dom.Steps; i++ {
		t := dom.T0 + float64(i-1)*h
		x = integ.Step(sys, x, t, h)
		hist = append(hist, x.Clone())
		times = append(times, dom.T0+float64(i)*h)
	}

	return hist, times
}

// DriveContext is the cancellable variant used at the orchestration
// boundary. Unlike Drive it validates the domain, since a caller reaching
// for cancellation is asking for a managed run.
func DriveContext(ctx context.Context, sys ode.System, integ ode.Integrator, x0 ode.State, dom ode.Domain) ([]ode.State, []float64, error) {
	if dom.Steps <= 0 || dom.Tn <= dom.T0 {
		return nil, nil, fmt.Errorf("%w: t0=%g tn=%g steps=%d", ode.ErrInvalidDomain, dom.T0, dom.Tn, dom.Steps)
	}
	if len(x0) != sys.Dim() {
		return nil, nil, fmt.Errorf("%w: state has %d components, system wants %d", ode.ErrDimensionMismatch, len(x0), sys.Dim())
	}

	h := dom.H()

	hist := make([]ode.State, 0, dom.Steps+1)
	times := make([]float64, 0, dom.Steps+1)

	x := x0.Clone()
	hist = append(hist, x.Clone())
	times = append(times, dom.T0)

	for i := 1; i <= dom.Steps; i++ {
		select {
		case <-ctx.Done():
			return hist, times, fmt.Errorf("%w: %v", ode.ErrCanceled, ctx.Err())
		default:
		}

		t := dom.T0 + float64(i-1)*h
		x = integ.Step(sys, x, t, h)
		hist = append(hist, x.Clone())
		times = append(times, dom.T0+float64(i)*h)
	}

	return hist, times, nil
}
