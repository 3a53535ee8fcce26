package shatter

import "math"

// Field holds the tunable constants of the displacement field. Only the
// shape of the field is fixed: an intensity-scaled radial expansion away
// from the focal point, an upward lift, random jitter, and a tangential
// turbulence term.
type Field struct {
	RadialExpansion float64 // outward push at full intensity
	Lift            float64 // upward push at full intensity
	JitterX         float64 // horizontal jitter range at full intensity
	JitterY         float64 // vertical jitter range at full intensity

	SwirlGain        float64 // turbulence amplitude at full intensity
	AngularFrequency float64
	RadialFrequency  float64
	TurbulenceScale  float64 // tangential pixels per unit of turbulence

	RotationSpread     float64 // random rotation range at full intensity (radians)
	RotationTurbulence float64 // rotation added per unit of turbulence
	SizeSpread         float64 // size variation range around 1
}

// DefaultField returns the constants of the classic banana-blender look.
func DefaultField() Field {
	return Field{
		RadialExpansion:    80,
		Lift:               80,
		JitterX:            100,
		JitterY:            80,
		SwirlGain:          2,
		AngularFrequency:   3,
		RadialFrequency:    0.05,
		TurbulenceScale:    30,
		RotationSpread:     math.Pi,
		RotationTurbulence: 0.5,
		SizeSpread:         0.3,
	}
}

// noise is the set of uniform draws consumed by one block.
type noise struct {
	jitterX, jitterY float64
	rotation         float64
	size             float64
	pick             float64
}

func drawNoise(r Rand) noise {
	return noise{
		jitterX:  r.Float64(),
		jitterY:  r.Float64(),
		rotation: r.Float64(),
		size:     r.Float64(),
		pick:     r.Float64(),
	}
}

// Turbulence is a bounded sinusoid of the polar position, scaled by
// intensity. Its magnitude never exceeds SwirlGain*intensity.
func (f Field) Turbulence(angle, distance, intensity float64) float64 {
	return math.Sin(angle*f.AngularFrequency+distance*f.RadialFrequency) * intensity * f.SwirlGain
}

// Offset returns the displacement of a block whose centre sits at angle
// from the focal point.
func (f Field) Offset(angle, turbulence, intensity float64, n noise) Point {
	radial := intensity * f.RadialExpansion
	tangent := turbulence * f.TurbulenceScale
	return Point{
		X: math.Cos(angle)*radial +
			(n.jitterX-0.5)*intensity*f.JitterX +
			math.Cos(angle+math.Pi/2)*tangent,
		Y: math.Sin(angle)*radial -
			intensity*f.Lift +
			(n.jitterY-0.5)*intensity*f.JitterY +
			math.Sin(angle+math.Pi/2)*tangent,
	}
}

// Rotation returns the block rotation in radians.
func (f Field) Rotation(turbulence, intensity float64, n noise) float64 {
	return intensity*(n.rotation-0.5)*f.RotationSpread + turbulence*f.RotationTurbulence
}

// SizeVariation returns the block scale factor around 1.
func (f Field) SizeVariation(n noise) float64 {
	return 1 + (n.size-0.5)*f.SizeSpread
}
