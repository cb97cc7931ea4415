package secp256k1

import (
	"fmt"
)

const (
	// PubKeyBytesLenCompressed is the length of a compressed SEC1 point.
	PubKeyBytesLenCompressed = 33

	// PubKeyBytesLenUncompressed is the length of an uncompressed SEC1 point.
	PubKeyBytesLenUncompressed = 65

	pubKeyFormatInfinity     = 0x00
	pubKeyFormatCompressedEv = 0x02
	pubKeyFormatCompressedOd = 0x03
	pubKeyFormatUncompressed = 0x04
)

// Point is an affine point on the secp256k1 curve, or the point at infinity.
// The zero value is the point at infinity.  Points are immutable and every
// finite Point satisfies y^2 = x^3 + 7; the only way to obtain a finite point
// from raw coordinates is NewPoint, which checks the curve equation.
type Point struct {
	// x and y are nil for the point at infinity.
	x, y *FieldElement
}

// Infinity returns the point at infinity, the identity of the group.
func Infinity() *Point {
	return &Point{}
}

// NewPoint returns the point (x, y), or ErrInvalidPoint when the coordinates
// are not on the curve.
func NewPoint(x, y *FieldElement) (*Point, error) {
	if x == nil || y == nil {
		return nil, MakeError(ErrInvalidPoint, "missing point coordinate")
	}

	p := &Point{x: x, y: y}
	if !p.IsOnCurve() {
		return nil, MakeError(ErrInvalidPoint, "point is not on the curve")
	}

	return p, nil
}

// DecompressPoint returns the point with the given x coordinate whose y
// coordinate has the requested parity.
func DecompressPoint(x *FieldElement, odd bool) (*Point, error) {
	// y^2 = x^3 + 7
	ySquared := x.Square().Mul(x).Add(curveB)
	if !ySquared.IsQuadraticResidue() {
		return nil, MakeError(ErrInvalidPoint, fmt.Sprintf("no point on the curve with x = %s", x))
	}

	y, ok := ySquared.Sqrt()
	if !ok {
		return nil, MakeError(ErrInvalidPoint, fmt.Sprintf("no point on the curve with x = %s", x))
	}

	if y.IsOdd() != odd {
		y = y.Negate()
	}

	return &Point{x: x, y: y}, nil
}

// IsInfinity reports whether p is the point at infinity.
func (p *Point) IsInfinity() bool {
	return p == nil || p.x == nil
}

// X returns the x coordinate of p.  It is zero for the point at infinity.
func (p *Point) X() *FieldElement {
	if p.IsInfinity() {
		return &FieldElement{}
	}

	return p.x
}

// Y returns the y coordinate of p.  It is zero for the point at infinity.
func (p *Point) Y() *FieldElement {
	if p.IsInfinity() {
		return &FieldElement{}
	}

	return p.y
}

// IsOnCurve reports whether p satisfies the curve equation.  The point at
// infinity is trivially on the curve.
func (p *Point) IsOnCurve() bool {
	if p.IsInfinity() {
		return true
	}

	lhs := p.y.Square()
	rhs := p.x.Square().Mul(p.x).Add(curveB)
	return lhs.Equals(rhs)
}

// Equals reports whether p and q are the same point.
func (p *Point) Equals(q *Point) bool {
	if p.IsInfinity() || q.IsInfinity() {
		return p.IsInfinity() && q.IsInfinity()
	}

	return p.x.Equals(q.x) && p.y.Equals(q.y)
}

// Negate returns -p.
func (p *Point) Negate() *Point {
	if p.IsInfinity() {
		return Infinity()
	}

	return &Point{x: p.x, y: p.y.Negate()}
}

// Add returns p + q using the affine group law.
func (p *Point) Add(q *Point) *Point {
	switch {
	case p.IsInfinity():
		return q.copy()

	case q.IsInfinity():
		return p.copy()

	case p.x.Equals(q.x):
		// Same x means q = p or q = -p.  The cancelling case also covers
		// doubling a point with y = 0.
		if p.y.Equals(q.y.Negate()) {
			return Infinity()
		}
		return p.Double()
	}

	// lambda = (y2 - y1) / (x2 - x1)
	// x3 = lambda^2 - x1 - x2
	// y3 = lambda(x1 - x3) - y1
	lambda := q.y.Sub(p.y).Mul(mustInvert(q.x.Sub(p.x)))
	x3 := lambda.Square().Sub(p.x).Sub(q.x)
	y3 := lambda.Mul(p.x.Sub(x3)).Sub(p.y)
	return &Point{x: x3, y: y3}
}

// Double returns 2p.
func (p *Point) Double() *Point {
	if p.IsInfinity() || p.y.IsZero() {
		return Infinity()
	}

	// lambda = 3x^2 / 2y
	// x3 = lambda^2 - 2x
	// y3 = lambda(x - x3) - y
	lambda := p.x.Square().MulInt(3).Mul(mustInvert(p.y.MulInt(2)))
	x3 := lambda.Square().Sub(p.x.MulInt(2))
	y3 := lambda.Mul(p.x.Sub(x3)).Sub(p.y)
	return &Point{x: x3, y: y3}
}

// Sub returns p - q.
func (p *Point) Sub(q *Point) *Point {
	return p.Add(q.Negate())
}

// Mul returns k*p using left-to-right double-and-add.  It is not constant
// time.
func (p *Point) Mul(k *Scalar) *Point {
	if p.IsInfinity() || k.IsZero() {
		return Infinity()
	}

	kv := k.int()
	result := Infinity()
	for i := kv.BitLen() - 1; i >= 0; i-- {
		result = result.Double()
		if kv.Bit(i) == 1 {
			result = result.Add(p)
		}
	}

	return result
}

// SerializeCompressed returns the 33-byte SEC1 compressed encoding of p.  The
// point at infinity is encoded as the single byte 0x00.
func (p *Point) SerializeCompressed() []byte {
	if p.IsInfinity() {
		return []byte{pubKeyFormatInfinity}
	}

	b := make([]byte, 0, PubKeyBytesLenCompressed)
	format := byte(pubKeyFormatCompressedEv)
	if p.y.IsOdd() {
		format = pubKeyFormatCompressedOd
	}
	x := p.x.Bytes()
	b = append(b, format)
	return append(b, x[:]...)
}

// SerializeUncompressed returns the 65-byte SEC1 uncompressed encoding of p.
// The point at infinity is encoded as the single byte 0x00.
func (p *Point) SerializeUncompressed() []byte {
	if p.IsInfinity() {
		return []byte{pubKeyFormatInfinity}
	}

	b := make([]byte, 0, PubKeyBytesLenUncompressed)
	x, y := p.x.Bytes(), p.y.Bytes()
	b = append(b, pubKeyFormatUncompressed)
	b = append(b, x[:]...)
	return append(b, y[:]...)
}

// ParsePoint decodes a SEC1 encoded point: 0x00 for the point at infinity,
// 0x02/0x03 followed by x for compressed points, or 0x04 followed by x and y
// for uncompressed points.
func ParsePoint(b []byte) (*Point, error) {
	if len(b) == 0 {
		return nil, MakeError(ErrInvalidPoint, "empty point encoding")
	}

	switch format := b[0]; format {
	case pubKeyFormatInfinity:
		if len(b) != 1 {
			return nil, MakeError(ErrInvalidPoint, "malformed encoding of the point at infinity")
		}
		return Infinity(), nil

	case pubKeyFormatCompressedEv, pubKeyFormatCompressedOd:
		if len(b) != PubKeyBytesLenCompressed {
			str := fmt.Sprintf("compressed point must be %d bytes, got %d",
				PubKeyBytesLenCompressed, len(b))
			return nil, MakeError(ErrInvalidPoint, str)
		}

		x, err := FieldElementFromBytes(b[1:33])
		if err != nil {
			return nil, MakeError(ErrInvalidPoint, "invalid x coordinate: "+err.Error())
		}

		return DecompressPoint(x, format == pubKeyFormatCompressedOd)

	case pubKeyFormatUncompressed:
		if len(b) != PubKeyBytesLenUncompressed {
			str := fmt.Sprintf("uncompressed point must be %d bytes, got %d",
				PubKeyBytesLenUncompressed, len(b))
			return nil, MakeError(ErrInvalidPoint, str)
		}

		x, err := FieldElementFromBytes(b[1:33])
		if err != nil {
			return nil, MakeError(ErrInvalidPoint, "invalid x coordinate: "+err.Error())
		}
		y, err := FieldElementFromBytes(b[33:65])
		if err != nil {
			return nil, MakeError(ErrInvalidPoint, "invalid y coordinate: "+err.Error())
		}

		return NewPoint(x, y)

	default:
		str := fmt.Sprintf("unknown point format %#x", format)
		return nil, MakeError(ErrInvalidPoint, str)
	}
}

// String returns the hex encoding of the compressed point.
func (p *Point) String() string {
	return fmt.Sprintf("%x", p.SerializeCompressed())
}

func (p *Point) copy() *Point {
	if p.IsInfinity() {
		return Infinity()
	}

	return &Point{x: p.x, y: p.y}
}

// mustInvert inverts a field element the group law has already proven to be
// non-zero.
func mustInvert(f *FieldElement) *FieldElement {
	inv, err := f.Invert()
	if err != nil {
		panic(fmt.Sprintf("group law reached invalid inversion: %v", err))
	}

	return inv
}
