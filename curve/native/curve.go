package native

import (
	"crypto/rand"
	"fmt"

	"github.com/athanorlabs/go-secp256k1"
	"github.com/athanorlabs/go-secp256k1/types"
)

type Curve = types.Curve
type Point = types.Point
type Scalar = types.Scalar

var _ Curve = &CurveImpl{}
var _ Scalar = &ScalarImpl{}
var _ Point = &PointImpl{}

// CurveImpl implements types.Curve on top of the affine arithmetic of the
// root package.
type CurveImpl struct{}

func NewCurve() Curve {
	return &CurveImpl{}
}

func (c *CurveImpl) Name() string {
	return "native"
}

func (c *CurveImpl) BitSize() uint64 {
	return 256
}

func (c *CurveImpl) CompressedPointSize() int {
	return secp256k1.PubKeyBytesLenCompressed
}

func (c *CurveImpl) BasePoint() Point {
	return &PointImpl{
		inner: secp256k1.Generator(),
	}
}

func (c *CurveImpl) AltBasePoint() Point {
	p, err := c.DecodeToPoint(types.AltBasePointEncoding())
	if err != nil {
		panic(err)
	}

	return p
}

func (c *CurveImpl) NewRandomScalar() Scalar {
	s, err := secp256k1.RandomScalar(rand.Reader)
	if err != nil {
		panic(err)
	}

	return &ScalarImpl{
		inner: s,
	}
}

func (c *CurveImpl) ScalarFromInt(in uint32) Scalar {
	return &ScalarImpl{
		inner: secp256k1.ScalarFromUint64(uint64(in)),
	}
}

func (c *CurveImpl) ScalarFromBytes(b [32]byte) Scalar {
	s, err := secp256k1.ScalarFromBytes(b[:])
	if err != nil {
		panic(err)
	}

	return &ScalarImpl{
		inner: s,
	}
}

func (c *CurveImpl) HashToScalar(in []byte) (Scalar, error) {
	h := secp256k1.Sha256(in)
	return &ScalarImpl{
		inner: secp256k1.ScalarFromHash(h[:]),
	}, nil
}

func (c *CurveImpl) ScalarBaseMul(s Scalar) Point {
	ss, ok := s.(*ScalarImpl)
	if !ok {
		panic("invalid scalar; type is not *native.ScalarImpl")
	}

	return &PointImpl{
		inner: secp256k1.ScalarBaseMul(ss.inner),
	}
}

func (c *CurveImpl) ScalarMul(s Scalar, p Point) Point {
	ss, ok := s.(*ScalarImpl)
	if !ok {
		panic("invalid scalar; type is not *native.ScalarImpl")
	}

	pp, ok := p.(*PointImpl)
	if !ok {
		panic("invalid point; type is not *native.PointImpl")
	}

	return &PointImpl{
		inner: secp256k1.ScalarMul(ss.inner, pp.inner),
	}
}

func (c *CurveImpl) DecodeToPoint(in []byte) (Point, error) {
	p, err := secp256k1.ParsePoint(in)
	if err != nil {
		return nil, fmt.Errorf("failed to decode point: %w", err)
	}

	return &PointImpl{
		inner: p,
	}, nil
}

func (c *CurveImpl) DecodeToScalar(in []byte) (Scalar, error) {
	s, err := secp256k1.ScalarFromBytes(in)
	if err != nil {
		return nil, fmt.Errorf("failed to decode scalar: %w", err)
	}

	return &ScalarImpl{
		inner: s,
	}, nil
}

type ScalarImpl struct {
	inner *secp256k1.Scalar
}

// Inner returns the wrapped scalar.
func (s *ScalarImpl) Inner() *secp256k1.Scalar {
	return s.inner
}

func (s *ScalarImpl) Add(b Scalar) Scalar {
	ss, ok := b.(*ScalarImpl)
	if !ok {
		panic("invalid scalar; type is not *native.ScalarImpl")
	}

	return &ScalarImpl{
		inner: s.inner.Add(ss.inner),
	}
}

func (s *ScalarImpl) Sub(b Scalar) Scalar {
	ss, ok := b.(*ScalarImpl)
	if !ok {
		panic("invalid scalar; type is not *native.ScalarImpl")
	}

	return &ScalarImpl{
		inner: s.inner.Sub(ss.inner),
	}
}

func (s *ScalarImpl) Negate() Scalar {
	return &ScalarImpl{
		inner: s.inner.Negate(),
	}
}

func (s *ScalarImpl) Mul(b Scalar) Scalar {
	ss, ok := b.(*ScalarImpl)
	if !ok {
		panic("invalid scalar; type is not *native.ScalarImpl")
	}

	return &ScalarImpl{
		inner: s.inner.Mul(ss.inner),
	}
}

// Inverse returns the multiplicative inverse.  The inverse of zero is zero.
func (s *ScalarImpl) Inverse() Scalar {
	inv, err := s.inner.Invert()
	if err != nil {
		return &ScalarImpl{
			inner: &secp256k1.Scalar{},
		}
	}

	return &ScalarImpl{
		inner: inv,
	}
}

func (s *ScalarImpl) Encode() []byte {
	b := s.inner.Bytes()
	return b[:]
}

func (s *ScalarImpl) Eq(b Scalar) bool {
	ss, ok := b.(*ScalarImpl)
	if !ok {
		panic("invalid scalar; type is not *native.ScalarImpl")
	}

	return s.inner.Equals(ss.inner)
}

func (s *ScalarImpl) IsZero() bool {
	return s.inner.IsZero()
}

type PointImpl struct {
	inner *secp256k1.Point
}

// Inner returns the wrapped point.
func (p *PointImpl) Inner() *secp256k1.Point {
	return p.inner
}

// Points are immutable so a copy shares the underlying value.
func (p *PointImpl) Copy() Point {
	return &PointImpl{
		inner: p.inner,
	}
}

func (p *PointImpl) Add(b Point) Point {
	pp, ok := b.(*PointImpl)
	if !ok {
		panic("invalid point; type is not *native.PointImpl")
	}

	return &PointImpl{
		inner: p.inner.Add(pp.inner),
	}
}

func (p *PointImpl) Sub(b Point) Point {
	pp, ok := b.(*PointImpl)
	if !ok {
		panic("invalid point; type is not *native.PointImpl")
	}

	return &PointImpl{
		inner: p.inner.Sub(pp.inner),
	}
}

func (p *PointImpl) ScalarMul(s Scalar) Point {
	ss, ok := s.(*ScalarImpl)
	if !ok {
		panic("invalid scalar; type is not *native.ScalarImpl")
	}

	return &PointImpl{
		inner: p.inner.Mul(ss.inner),
	}
}

func (p *PointImpl) Encode() []byte {
	return p.inner.SerializeCompressed()
}

func (p *PointImpl) IsZero() bool {
	return p.inner.IsInfinity()
}

func (p *PointImpl) Equals(other Point) bool {
	pp, ok := other.(*PointImpl)
	if !ok {
		panic("invalid point; type is not *native.PointImpl")
	}

	return p.inner.Equals(pp.inner)
}
