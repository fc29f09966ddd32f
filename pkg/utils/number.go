package utils

import (
	"math"

	"github.com/shopspring/decimal"
)

// Round arredonda para places casas decimais, metade para longe do zero.
// NaN e infinito voltam sem alteração.
func Round(f float64, places int32) float64 {
	if f == 0 || math.IsNaN(f) || math.IsInf(f, 0) {
		return f
	}

	return decimal.NewFromFloat(f).Round(places).InexactFloat64()
}
