// SPDX-License-Identifier: EPL-2.0

package utils

import "math"

const uint8Center = 128.0

// Clamp limits x to [-1, 1]. NaN becomes 0 so it can never reach an integer
// conversion.
func Clamp(x float64) float64 {
	switch {
	case math.IsNaN(x):
		return 0
	case x > 1:
		return 1
	case x < -1:
		return -1
	}

	return x
}

// fullScale is the magnitude of the most negative value of a signed sample
// of the given width (32768 for 16 bits).
func fullScale(bits int) float64 {
	return float64(int64(1) << (bits - 1))
}

// IntToFloat normalizes a signed PCM sample of the given bit width by
// dividing by its full scale. bits must be between 2 and 32.
func IntToFloat(v int32, bits int) float64 {
	return float64(v) / fullScale(bits)
}

// FloatToInt is the inverse of IntToFloat: the clamped value is scaled,
// rounded half away from zero and saturated to the width's range, so +1.0
// becomes the largest positive value instead of wrapping.
func FloatToInt(x float64, bits int) int32 {
	scale := fullScale(bits)

	v := math.Round(Clamp(x) * scale)
	if v > scale-1 {
		v = scale - 1
	} else if v < -scale {
		v = -scale
	}

	return int32(v)
}

// Uint8ToFloat normalizes an unsigned 8-bit sample centered on 128.
func Uint8ToFloat(v uint8) float64 {
	return (float64(v) - uint8Center) / uint8Center
}

// FloatToUint8 is the inverse of Uint8ToFloat with rounding and saturation.
func FloatToUint8(x float64) uint8 {
	v := math.Round(Clamp(x)*uint8Center) + uint8Center
	if v > math.MaxUint8 {
		v = math.MaxUint8
	} else if v < 0 {
		v = 0
	}

	return uint8(v)
}
