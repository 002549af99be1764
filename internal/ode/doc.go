// Package ode provides core primitives for fixed-step ODE integration.
//
// The package defines the fundamental interfaces and types shared by the
// force models, integrators, and solver drivers:
//
//   - [State]: flat vector representing system state
//   - [System]: interface for ODE systems (dX/dt = f(X, t))
//   - [Integrator]: single-step numerical integrator interface
//   - [Domain]: the fixed time domain of one solve
//
// # Example
//
//	sys := gravity.NewTwoBody(masses)
//	integ := integrators.NewRK4()
//	hist, times := solver.Drive(sys, integ, x0, dom)
//
// # Thread Safety
//
// Systems and integrators carry per-run scratch state and are NOT safe for
// concurrent use. Independent solves share nothing and may run in parallel;
// see the solver package's Ensemble.
package ode
