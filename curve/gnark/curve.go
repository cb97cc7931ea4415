package gnark

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"math/big"

	gnarksecp "github.com/consensys/gnark-crypto/ecc/secp256k1"
	"github.com/consensys/gnark-crypto/ecc/secp256k1/fp"
	"github.com/consensys/gnark-crypto/ecc/secp256k1/fr"

	"github.com/athanorlabs/go-secp256k1/types"
)

type Curve = types.Curve
type Point = types.Point
type Scalar = types.Scalar

var _ Curve = &CurveImpl{}
var _ Scalar = &ScalarImpl{}
var _ Point = &PointImpl{}

const (
	compressedEven byte = 0x02
	compressedOdd  byte = 0x03
)

var (
	errScalarOverflow = errors.New("scalar is not less than the group order")
	errInvalidPoint   = errors.New("invalid point encoding")
	errNotOnCurve     = errors.New("point is not on the curve")
)

// CurveImpl implements types.Curve with the generic short Weierstrass
// arithmetic of gnark-crypto.
type CurveImpl struct {
	basePoint    gnarksecp.G1Affine
	altBasePoint gnarksecp.G1Affine
}

func NewCurve() Curve {
	_, g := gnarksecp.Generators()
	c := &CurveImpl{
		basePoint: g,
	}

	h, err := c.DecodeToPoint(types.AltBasePointEncoding())
	if err != nil {
		panic(err)
	}
	c.altBasePoint = h.(*PointImpl).inner
	return c
}

func (c *CurveImpl) Name() string {
	return "gnark"
}

func (c *CurveImpl) BitSize() uint64 {
	return 256
}

func (c *CurveImpl) CompressedPointSize() int {
	return 1 + fp.Bytes
}

func (c *CurveImpl) BasePoint() Point {
	return &PointImpl{
		inner: c.basePoint,
	}
}

func (c *CurveImpl) AltBasePoint() Point {
	return &PointImpl{
		inner: c.altBasePoint,
	}
}

func (c *CurveImpl) NewRandomScalar() Scalar {
	s := &ScalarImpl{}
	for {
		if _, err := s.inner.SetRandom(); err != nil {
			panic(err)
		}
		if !s.inner.IsZero() {
			return s
		}
	}
}

func (c *CurveImpl) ScalarFromInt(in uint32) Scalar {
	s := &ScalarImpl{}
	s.inner.SetUint64(uint64(in))
	return s
}

func (c *CurveImpl) ScalarFromBytes(b [32]byte) Scalar {
	s, err := c.DecodeToScalar(b[:])
	if err != nil {
		panic(err)
	}

	return s
}

func (c *CurveImpl) HashToScalar(in []byte) (Scalar, error) {
	h := sha256.Sum256(in)
	s := &ScalarImpl{}
	s.inner.SetBytes(h[:])
	return s, nil
}

func (c *CurveImpl) ScalarBaseMul(s Scalar) Point {
	return c.ScalarMul(s, c.BasePoint())
}

func (c *CurveImpl) ScalarMul(s Scalar, p Point) Point {
	pp, ok := p.(*PointImpl)
	if !ok {
		panic("invalid point; type is not *gnark.PointImpl")
	}

	return pp.ScalarMul(s)
}

// DecodeToPoint parses a SEC1 compressed or uncompressed point, or the single
// byte 0x00 for the point at infinity.
func (c *CurveImpl) DecodeToPoint(in []byte) (Point, error) {
	if len(in) == 1 && in[0] == 0x00 {
		return &PointImpl{}, nil
	}

	p := &PointImpl{}
	switch {
	case len(in) == 1+fp.Bytes && (in[0] == compressedEven || in[0] == compressedOdd):
		if err := p.inner.X.SetBytesCanonical(in[1:]); err != nil {
			return nil, fmt.Errorf("failed to decode point: %w", err)
		}

		// y^2 = x^3 + 7
		var rhs, seven fp.Element
		seven.SetUint64(7)
		rhs.Square(&p.inner.X).Mul(&rhs, &p.inner.X).Add(&rhs, &seven)
		if p.inner.Y.Sqrt(&rhs) == nil {
			return nil, fmt.Errorf("failed to decode point: %w", errNotOnCurve)
		}
		if isOdd(&p.inner.Y) != (in[0] == compressedOdd) {
			p.inner.Y.Neg(&p.inner.Y)
		}
	case len(in) == 1+2*fp.Bytes && in[0] == 0x04:
		if err := p.inner.X.SetBytesCanonical(in[1 : 1+fp.Bytes]); err != nil {
			return nil, fmt.Errorf("failed to decode point: %w", err)
		}
		if err := p.inner.Y.SetBytesCanonical(in[1+fp.Bytes:]); err != nil {
			return nil, fmt.Errorf("failed to decode point: %w", err)
		}
		if !p.inner.IsOnCurve() || p.inner.IsInfinity() {
			return nil, fmt.Errorf("failed to decode point: %w", errNotOnCurve)
		}
	default:
		return nil, fmt.Errorf("failed to decode point: %w", errInvalidPoint)
	}

	return p, nil
}

func (c *CurveImpl) DecodeToScalar(in []byte) (Scalar, error) {
	if len(in) != fr.Bytes {
		return nil, fmt.Errorf("invalid scalar length %d", len(in))
	}

	s := &ScalarImpl{}
	if err := s.inner.SetBytesCanonical(in); err != nil {
		return nil, fmt.Errorf("failed to decode scalar: %w", errScalarOverflow)
	}

	return s, nil
}

type ScalarImpl struct {
	inner fr.Element
}

func (s *ScalarImpl) Add(b Scalar) Scalar {
	ss, ok := b.(*ScalarImpl)
	if !ok {
		panic("invalid scalar; type is not *gnark.ScalarImpl")
	}

	r := &ScalarImpl{}
	r.inner.Add(&s.inner, &ss.inner)
	return r
}

func (s *ScalarImpl) Sub(b Scalar) Scalar {
	ss, ok := b.(*ScalarImpl)
	if !ok {
		panic("invalid scalar; type is not *gnark.ScalarImpl")
	}

	r := &ScalarImpl{}
	r.inner.Sub(&s.inner, &ss.inner)
	return r
}

func (s *ScalarImpl) Negate() Scalar {
	r := &ScalarImpl{}
	r.inner.Neg(&s.inner)
	return r
}

func (s *ScalarImpl) Mul(b Scalar) Scalar {
	ss, ok := b.(*ScalarImpl)
	if !ok {
		panic("invalid scalar; type is not *gnark.ScalarImpl")
	}

	r := &ScalarImpl{}
	r.inner.Mul(&s.inner, &ss.inner)
	return r
}

// Inverse returns the multiplicative inverse.  The inverse of zero is zero.
func (s *ScalarImpl) Inverse() Scalar {
	r := &ScalarImpl{}
	r.inner.Inverse(&s.inner)
	return r
}

func (s *ScalarImpl) Encode() []byte {
	b := s.inner.Bytes()
	return b[:]
}

func (s *ScalarImpl) Eq(b Scalar) bool {
	ss, ok := b.(*ScalarImpl)
	if !ok {
		panic("invalid scalar; type is not *gnark.ScalarImpl")
	}

	return s.inner.Equal(&ss.inner)
}

func (s *ScalarImpl) IsZero() bool {
	return s.inner.IsZero()
}

func (s *ScalarImpl) bigInt() *big.Int {
	return s.inner.BigInt(new(big.Int))
}

// PointImpl wraps an affine point.  The zero value, (0, 0), is the point at
// infinity.
type PointImpl struct {
	inner gnarksecp.G1Affine
}

func (p *PointImpl) Copy() Point {
	return &PointImpl{
		inner: p.inner,
	}
}

func (p *PointImpl) Add(b Point) Point {
	pp, ok := b.(*PointImpl)
	if !ok {
		panic("invalid point; type is not *gnark.PointImpl")
	}

	var a, c gnarksecp.G1Jac
	a.FromAffine(&p.inner)
	c.FromAffine(&pp.inner)
	a.AddAssign(&c)

	r := &PointImpl{}
	r.inner.FromJacobian(&a)
	return r
}

func (p *PointImpl) Sub(b Point) Point {
	pp, ok := b.(*PointImpl)
	if !ok {
		panic("invalid point; type is not *gnark.PointImpl")
	}

	var a, c gnarksecp.G1Jac
	a.FromAffine(&p.inner)
	c.FromAffine(&pp.inner)
	a.SubAssign(&c)

	r := &PointImpl{}
	r.inner.FromJacobian(&a)
	return r
}

func (p *PointImpl) ScalarMul(s Scalar) Point {
	ss, ok := s.(*ScalarImpl)
	if !ok {
		panic("invalid scalar; type is not *gnark.ScalarImpl")
	}

	if p.IsZero() || ss.IsZero() {
		return &PointImpl{}
	}

	var a gnarksecp.G1Jac
	a.FromAffine(&p.inner)
	a.ScalarMultiplication(&a, ss.bigInt())

	r := &PointImpl{}
	r.inner.FromJacobian(&a)
	return r
}

// Encode returns the SEC1 compressed encoding of the point.
func (p *PointImpl) Encode() []byte {
	if p.IsZero() {
		return []byte{0x00}
	}

	out := make([]byte, 1+fp.Bytes)
	out[0] = compressedEven
	if isOdd(&p.inner.Y) {
		out[0] = compressedOdd
	}
	x := p.inner.X.Bytes()
	copy(out[1:], x[:])
	return out
}

func (p *PointImpl) IsZero() bool {
	return p.inner.IsInfinity()
}

func (p *PointImpl) Equals(other Point) bool {
	pp, ok := other.(*PointImpl)
	if !ok {
		panic("invalid point; type is not *gnark.PointImpl")
	}

	return p.inner.Equal(&pp.inner)
}

func isOdd(e *fp.Element) bool {
	b := e.Bytes()
	return b[fp.Bytes-1]&1 == 1
}
