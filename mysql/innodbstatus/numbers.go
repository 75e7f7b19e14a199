// SPDX-License-Identifier: GPL-3.0-or-later

package innodbstatus

import "math/big"

var twoPow32 = new(big.Int).Lsh(big.NewInt(1), 32)

// makeBigInt folds one 64-bit counter into a single integer. Old engine
// versions could not print 64-bit decimals and emitted two 32-bit halves
// ("H L" meaning H<<32 + L); newer ones emit a single hexadecimal value.
// The shifted sum can exceed 64 bits, hence big.Int.
// Returns nil when the captured text is not a number in the expected base.
func makeBigInt(hi, lo string) *big.Int {
	if lo == "" {
		v, _ := new(big.Int).SetString(hi, 16)
		return v
	}
	h, okH := new(big.Int).SetString(hi, 10)
	l, okL := new(big.Int).SetString(lo, 10)
	if !okH || !okL {
		return nil
	}
	return h.Mul(h, twoPow32).Add(h, l)
}

// makeBigIntNoHex is the log sequence number variant of makeBigInt: the
// split form decodes the same, but a lone value is plain decimal, never
// hexadecimal.
func makeBigIntNoHex(hi, lo string) *big.Int {
	if lo == "" {
		v, _ := new(big.Int).SetString(hi, 10)
		return v
	}
	return makeBigInt(hi, lo)
}
