package secp256k1

import (
	"math/big"
)

// Curve parameters.  These are initialized once when the package is loaded
// and never modified afterwards.
var (
	bigZero = big.NewInt(0)

	// fieldPrime is p = 2^256 - 2^32 - 977.
	fieldPrime = fromHex("fffffffffffffffffffffffffffffffffffffffffffffffffffffffefffffc2f")

	// groupOrder is n, the order of the subgroup generated by G.
	groupOrder = fromHex("fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364141")

	// halfOrder is floor(n/2), the upper bound of a low-S value.
	halfOrder = new(big.Int).Rsh(groupOrder, 1)

	// sqrtExponent is (p+1)/4.
	sqrtExponent = new(big.Int).Rsh(new(big.Int).Add(fieldPrime, big.NewInt(1)), 2)

	// curveB is the constant b of y^2 = x^3 + b.
	curveB = FieldElementFromUint64(7)

	generator = &Point{
		x: &FieldElement{v: fromHex("79be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798")},
		y: &FieldElement{v: fromHex("483ada7726a3c4655da4fbfc0e1108a8fd17b448a68554199c47d08ffb10d4b8")},
	}
)

func fromHex(s string) *big.Int {
	v, ok := new(big.Int).SetString(s, 16)
	if !ok {
		panic("invalid hex in source file: " + s)
	}

	return v
}

// P returns the field prime.
func P() *big.Int {
	return new(big.Int).Set(fieldPrime)
}

// N returns the group order.
func N() *big.Int {
	return new(big.Int).Set(groupOrder)
}

// Generator returns the base point G.
func Generator() *Point {
	return generator
}

// ScalarBaseMul returns k*G.
func ScalarBaseMul(k *Scalar) *Point {
	return generator.Mul(k)
}

// ScalarMul returns k*p.
func ScalarMul(k *Scalar, p *Point) *Point {
	return p.Mul(k)
}
