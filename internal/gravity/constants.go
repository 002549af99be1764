package gravity

// Physical constants in SI units.
const (
	// G is the Newtonian gravitational constant, m^3/(kg s^2).
	G = 6.674e-11

	// StandardGravity is the gravitational acceleration at Earth's
	// surface, m/s^2. Used by the free-fall model.
	StandardGravity = 9.81
)
