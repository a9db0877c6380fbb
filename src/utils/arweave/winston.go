package arweave

import (
	"math/big"
	"strings"

	"github.com/shopspring/decimal"
)

// 1 AR = 10^12 winston
const WINSTON_EXPONENT = 12

// Converts a winston amount (decimal integer string) to AR without losing precision.
// Surrounding whitespace is ignored.
func WinstonToAR(winston string) (out decimal.Decimal, err error) {
	value, ok := new(big.Int).SetString(strings.TrimSpace(winston), 10)
	if !ok {
		err = &MalformedResponse{Body: []byte(winston)}
		return
	}
	return decimal.NewFromBigInt(value, -WINSTON_EXPONENT), nil
}

// Converts AR to winston, fractions below 1 winston are truncated
func ARToWinston(ar decimal.Decimal) *big.Int {
	return ar.Shift(WINSTON_EXPONENT).Truncate(0).BigInt()
}
