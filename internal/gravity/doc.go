// Package gravity provides the force models integrated by the solver.
//
// Each model implements [ode.System], returning the instantaneous derivative
// of a flat state vector:
//
//   - [FreeFall]: single body under uniform gravity, state [y, v]
//   - [NBody]: mutually interacting point masses under Newtonian gravitation
//     in 3D; NewTwoBody and NewThreeBody fix the body count used by the
//     public solve operations
//
// State layout for NBody is positions first, then velocities:
//
//	[r1x r1y r1z ... rNx rNy rNz  v1x v1y v1z ... vNx vNy vNz]
//
// Force evaluation is pure: no state is retained between calls, and a
// coincident-body singularity is deliberately not guarded. It surfaces as
// Inf/NaN in the derivative and propagates through every later step. Set
// MinSeparation to opt in to a distance floor.
package gravity
