package domain

// Settings holds the two mutable tracker parameters. Changing either one
// triggers re-derivation of the computed fields on every stored trip.
type Settings struct {
	FuelEfficiency float64 // km per liter, must be > 0
	PetrolPrice    float64 // currency per liter, must be > 0
}
