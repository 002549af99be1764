// Package catalog provides the named celestial bodies selectable in
// two-body and three-body presets.
package catalog

import "sort"

// Body is a catalog entry. Mass is in kg.
type Body struct {
	Name string
	Mass float64
}

// Standard masses, kg.
const (
	MassSun     = 1.989e30
	MassMercury = 3.285e23
	MassVenus   = 4.867e24
	MassEarth   = 5.972e24
	MassMoon    = 7.347e22
	MassMars    = 6.390e23
	MassJupiter = 1.898e27
	MassSaturn  = 5.683e26
	MassUranus  = 8.681e25
	MassNeptune = 1.024e26
	MassPluto   = 1.309e22
)

// Standard distances and speeds used by presets, SI units.
const (
	AU                = 1.496e11
	EarthMoonDistance = 3.84e8
	MoonOrbitalSpeed  = 1022.0
	EarthOrbitalSpeed = 29780.0
)

var bodies = map[string]Body{
	"sun":     {Name: "Sun", Mass: MassSun},
	"mercury": {Name: "Mercury", Mass: MassMercury},
	"venus":   {Name: "Venus", Mass: MassVenus},
	"earth":   {Name: "Earth", Mass: MassEarth},
	"moon":    {Name: "Moon", Mass: MassMoon},
	"mars":    {Name: "Mars", Mass: MassMars},
	"jupiter": {Name: "Jupiter", Mass: MassJupiter},
	"saturn":  {Name: "Saturn", Mass: MassSaturn},
	"uranus":  {Name: "Uranus", Mass: MassUranus},
	"neptune": {Name: "Neptune", Mass: MassNeptune},
	"pluto":   {Name: "Pluto", Mass: MassPluto},
}

// Lookup returns the catalog entry for a (lowercase) body name.
func Lookup(name string) (Body, bool) {
	b, ok := bodies[name]
	return b, ok
}

// Names returns all catalog names in sorted order.
func Names() []string {
	names := make([]string, 0, len(bodies))
	for name := range bodies {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
