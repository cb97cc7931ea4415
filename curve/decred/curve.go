package decred

import (
	"crypto/sha256"
	"errors"
	"fmt"

	dcrsecp "github.com/decred/dcrd/dcrec/secp256k1/v4"

	"github.com/athanorlabs/go-secp256k1/types"
)

type Curve = types.Curve
type Point = types.Point
type Scalar = types.Scalar

var _ Curve = &CurveImpl{}
var _ Scalar = &ScalarImpl{}
var _ Point = &PointImpl{}

var errScalarOverflow = errors.New("scalar is not less than the group order")

// CurveImpl implements types.Curve using the optimized field and group
// arithmetic of dcrd's secp256k1 package.
type CurveImpl struct {
	basePoint    *PointImpl
	altBasePoint *PointImpl
}

func NewCurve() Curve {
	var one dcrsecp.ModNScalar
	one.SetInt(1)

	var g dcrsecp.JacobianPoint
	dcrsecp.ScalarBaseMultNonConst(&one, &g)
	g.ToAffine()

	c := &CurveImpl{
		basePoint: &PointImpl{
			inner: g,
		},
	}

	h, err := c.DecodeToPoint(types.AltBasePointEncoding())
	if err != nil {
		panic(err)
	}
	c.altBasePoint = h.(*PointImpl)
	return c
}

func (c *CurveImpl) Name() string {
	return "decred"
}

func (c *CurveImpl) BitSize() uint64 {
	return 256
}

func (c *CurveImpl) CompressedPointSize() int {
	return dcrsecp.PubKeyBytesLenCompressed
}

func (c *CurveImpl) BasePoint() Point {
	return c.basePoint.Copy()
}

func (c *CurveImpl) AltBasePoint() Point {
	return c.altBasePoint.Copy()
}

func (c *CurveImpl) NewRandomScalar() Scalar {
	priv, err := dcrsecp.GeneratePrivateKey()
	if err != nil {
		panic(err)
	}

	return &ScalarImpl{
		inner: priv.Key,
	}
}

func (c *CurveImpl) ScalarFromInt(in uint32) Scalar {
	s := &ScalarImpl{}
	s.inner.SetInt(in)
	return s
}

func (c *CurveImpl) ScalarFromBytes(b [32]byte) Scalar {
	s := &ScalarImpl{}
	if s.inner.SetByteSlice(b[:]) {
		panic(errScalarOverflow)
	}

	return s
}

func (c *CurveImpl) HashToScalar(in []byte) (Scalar, error) {
	h := sha256.Sum256(in)
	s := &ScalarImpl{}
	s.inner.SetByteSlice(h[:])
	return s, nil
}

func (c *CurveImpl) ScalarBaseMul(s Scalar) Point {
	ss, ok := s.(*ScalarImpl)
	if !ok {
		panic("invalid scalar; type is not *decred.ScalarImpl")
	}

	p := &PointImpl{}
	dcrsecp.ScalarBaseMultNonConst(&ss.inner, &p.inner)
	p.inner.ToAffine()
	return p
}

func (c *CurveImpl) ScalarMul(s Scalar, p Point) Point {
	pp, ok := p.(*PointImpl)
	if !ok {
		panic("invalid point; type is not *decred.PointImpl")
	}

	return pp.ScalarMul(s)
}

func (c *CurveImpl) DecodeToPoint(in []byte) (Point, error) {
	if len(in) == 1 && in[0] == 0x00 {
		return &PointImpl{}, nil
	}

	pub, err := dcrsecp.ParsePubKey(in)
	if err != nil {
		return nil, fmt.Errorf("failed to decode point: %w", err)
	}

	p := &PointImpl{}
	pub.AsJacobian(&p.inner)
	return p, nil
}

func (c *CurveImpl) DecodeToScalar(in []byte) (Scalar, error) {
	if len(in) != 32 {
		return nil, fmt.Errorf("invalid scalar length %d", len(in))
	}

	s := &ScalarImpl{}
	if s.inner.SetByteSlice(in) {
		return nil, fmt.Errorf("failed to decode scalar: %w", errScalarOverflow)
	}

	return s, nil
}

type ScalarImpl struct {
	inner dcrsecp.ModNScalar
}

func (s *ScalarImpl) Add(b Scalar) Scalar {
	ss, ok := b.(*ScalarImpl)
	if !ok {
		panic("invalid scalar; type is not *decred.ScalarImpl")
	}

	r := &ScalarImpl{}
	r.inner.Add2(&s.inner, &ss.inner)
	return r
}

func (s *ScalarImpl) Sub(b Scalar) Scalar {
	ss, ok := b.(*ScalarImpl)
	if !ok {
		panic("invalid scalar; type is not *decred.ScalarImpl")
	}

	var neg dcrsecp.ModNScalar
	neg.NegateVal(&ss.inner)

	r := &ScalarImpl{}
	r.inner.Add2(&s.inner, &neg)
	return r
}

func (s *ScalarImpl) Negate() Scalar {
	r := &ScalarImpl{}
	r.inner.NegateVal(&s.inner)
	return r
}

func (s *ScalarImpl) Mul(b Scalar) Scalar {
	ss, ok := b.(*ScalarImpl)
	if !ok {
		panic("invalid scalar; type is not *decred.ScalarImpl")
	}

	r := &ScalarImpl{}
	r.inner.Mul2(&s.inner, &ss.inner)
	return r
}

// Inverse returns the multiplicative inverse.  The inverse of zero is zero.
func (s *ScalarImpl) Inverse() Scalar {
	r := &ScalarImpl{}
	r.inner.InverseValNonConst(&s.inner)
	return r
}

func (s *ScalarImpl) Encode() []byte {
	b := s.inner.Bytes()
	return b[:]
}

func (s *ScalarImpl) Eq(b Scalar) bool {
	ss, ok := b.(*ScalarImpl)
	if !ok {
		panic("invalid scalar; type is not *decred.ScalarImpl")
	}

	return s.inner.Equals(&ss.inner)
}

func (s *ScalarImpl) IsZero() bool {
	return s.inner.IsZero()
}

// PointImpl holds a point in affine form, Z = 1.  The zero value is the
// point at infinity.
type PointImpl struct {
	inner dcrsecp.JacobianPoint
}

func (p *PointImpl) Copy() Point {
	c := &PointImpl{}
	c.inner.Set(&p.inner)
	return c
}

func (p *PointImpl) Add(b Point) Point {
	pp, ok := b.(*PointImpl)
	if !ok {
		panic("invalid point; type is not *decred.PointImpl")
	}

	if p.IsZero() {
		return pp.Copy()
	}
	if pp.IsZero() {
		return p.Copy()
	}

	r := &PointImpl{}
	dcrsecp.AddNonConst(&p.inner, &pp.inner, &r.inner)
	r.normalize()
	return r
}

func (p *PointImpl) Sub(b Point) Point {
	pp, ok := b.(*PointImpl)
	if !ok {
		panic("invalid point; type is not *decred.PointImpl")
	}

	return p.Add(pp.negate())
}

func (p *PointImpl) ScalarMul(s Scalar) Point {
	ss, ok := s.(*ScalarImpl)
	if !ok {
		panic("invalid scalar; type is not *decred.ScalarImpl")
	}

	if p.IsZero() || ss.IsZero() {
		return &PointImpl{}
	}

	r := &PointImpl{}
	dcrsecp.ScalarMultNonConst(&ss.inner, &p.inner, &r.inner)
	r.normalize()
	return r
}

func (p *PointImpl) Encode() []byte {
	if p.IsZero() {
		return []byte{0x00}
	}

	return dcrsecp.NewPublicKey(&p.inner.X, &p.inner.Y).SerializeCompressed()
}

func (p *PointImpl) IsZero() bool {
	return (p.inner.X.IsZero() && p.inner.Y.IsZero()) || p.inner.Z.IsZero()
}

func (p *PointImpl) Equals(other Point) bool {
	pp, ok := other.(*PointImpl)
	if !ok {
		panic("invalid point; type is not *decred.PointImpl")
	}

	if p.IsZero() || pp.IsZero() {
		return p.IsZero() && pp.IsZero()
	}

	return p.inner.X.Equals(&pp.inner.X) && p.inner.Y.Equals(&pp.inner.Y)
}

func (p *PointImpl) negate() *PointImpl {
	r := &PointImpl{}
	r.inner.Set(&p.inner)
	if !r.IsZero() {
		r.inner.Y.Negate(1).Normalize()
	}
	return r
}

// normalize converts the result of a Jacobian operation back to affine form
// and collapses every representation of infinity to the zero value.
func (p *PointImpl) normalize() {
	if p.IsZero() {
		p.inner = dcrsecp.JacobianPoint{}
		return
	}

	p.inner.ToAffine()
}
