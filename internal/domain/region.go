package domain

// PostalRegion is the resolved identity of a postal code.
// Regions are looked up, never mutated; callers may cache them.
type PostalRegion struct {
	Pincode  string
	City     string
	State    string
	District string
	Zone     Zone
}
