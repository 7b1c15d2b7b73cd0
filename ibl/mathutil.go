package ibl

import "math"

func sqrt32(v float32) float32  { return float32(math.Sqrt(float64(v))) }
func sin32(v float32) float32   { return float32(math.Sin(float64(v))) }
func cos32(v float32) float32   { return float32(math.Cos(float64(v))) }
func atan2_32(y, x float32) float32 {
	return float32(math.Atan2(float64(y), float64(x)))
}
func asin32(v float32) float32 { return float32(math.Asin(float64(v))) }
func pow32(b, e float32) float32 {
	return float32(math.Pow(float64(b), float64(e)))
}

const pi32 = float32(math.Pi)
