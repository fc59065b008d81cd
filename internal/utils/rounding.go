package utils

import (
	"strconv"

	"github.com/cockroachdb/apd/v3"
)

// roundCtx rounds half away from zero, matching the rounding applied to all
// stored emission figures
var roundCtx = func() *apd.Context {
	ctx := apd.BaseContext.WithPrecision(34)
	ctx.Rounding = apd.RoundHalfUp
	return ctx
}()

// Round2 rounds v to 2 decimal places, half away from zero.
//
// Rounding happens on the shortest decimal representation of the float, not
// its binary expansion, so 0.255 rounds to 0.26 even though the nearest
// float64 is slightly below 0.255. Stored emission values depend on this
// exact behavior
func Round2(v float64) float64 {
	var d apd.Decimal
	if _, _, err := d.SetString(strconv.FormatFloat(v, 'f', -1, 64)); err != nil {
		return v
	}
	var q apd.Decimal
	if _, err := roundCtx.Quantize(&q, &d, -2); err != nil {
		return v
	}
	f, err := q.Float64()
	if err != nil {
		return v
	}
	return f
}
