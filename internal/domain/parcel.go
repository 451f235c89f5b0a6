package domain

// Dimensions are parcel measurements in centimeters.
type Dimensions struct {
	LengthCm float64
	WidthCm  float64
	HeightCm float64
}

// Parcel describes the physical package being quoted.
type Parcel struct {
	WeightKg      float64
	Dimensions    Dimensions
	DeclaredValue float64
}

// VolumetricWeight returns the dimensional weight in kg using the
// carrier-standard divisor of 5000 (cm^3 per kg).
func (p Parcel) VolumetricWeight() float64 {
	return p.Dimensions.LengthCm * p.Dimensions.WidthCm * p.Dimensions.HeightCm / 5000
}

// ChargeableWeight is the greater of actual and volumetric weight,
// so bulky-but-light parcels are priced by the space they occupy.
func (p Parcel) ChargeableWeight() float64 {
	if v := p.VolumetricWeight(); v > p.WeightKg {
		return v
	}
	return p.WeightKg
}
