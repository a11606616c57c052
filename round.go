package colorconv

import (
	"math"

	"fortio.org/safecast"
	"github.com/shopspring/decimal"
)

var half = decimal.New(5, -1)

// RoundTo rounds num to the given number of places after the decimal point.
// The rounding is done on the shortest decimal representation of num, ties
// going toward +Inf, so RoundTo(1.005, 2) is 1.01 (where the naive
// math.Round(1.005*100)/100 gives 1) and RoundTo(-2.5, 0) is -2.
// Non finite values are returned unchanged.
func RoundTo(num float64, places int) float64 {
	if math.IsNaN(num) || math.IsInf(num, 0) {
		return num
	}
	exp := safecast.MustConvert[int32](places)
	return decimal.NewFromFloat(num).Shift(exp).Add(half).Floor().Shift(-exp).InexactFloat64()
}

// Modulo is the floored modulo: the result has the sign of n, so negative
// hues wrap forward (Modulo(-30, 360) is 330).
func Modulo(x, n float64) float64 {
	return math.Mod(math.Mod(x, n)+n, n)
}
