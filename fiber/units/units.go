// Package units converts fiber parameters between the practical units used
// in datasheets (dB/km, ps²/km, ps³/km, ps/km) and the internal quantities
// used by the propagation engine.
package units

import "math"

// DBPerKmToLinear converts an attenuation coefficient in dB/km to the
// equivalent linear power multiplier per kilometer. An attenuation of
// 0 dB/km maps to 1 (lossless); 3 dB/km maps to roughly 0.5.
func DBPerKmToLinear(dBPerKm float64) float64 {
	return math.Pow(10, -dBPerKm/10)
}

// Beta2ToSI converts a second-order dispersion coefficient from ps²/km
// to s²/m.
func Beta2ToSI(ps2PerKm float64) float64 {
	return ps2PerKm * 1e-24
}

// Beta3ToSI converts a third-order dispersion coefficient from ps³/km
// to s³/m.
func Beta3ToSI(ps3PerKm float64) float64 {
	return ps3PerKm * 1e-36
}

// DelayToSI converts a differential group delay from ps/km to s/m.
func DelayToSI(psPerKm float64) float64 {
	return psPerKm * 1e-12
}
