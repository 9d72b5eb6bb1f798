package curve

import (
	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// PointSize is the byte length of a SEC1 compressed point encoding.
const PointSize = 33

// Point is an affine secp256k1 point, or the point at infinity (the
// group identity). secp256k1 has cofactor 1, so any point that parses
// successfully as on-curve is automatically in the prime-order subgroup;
// there is no separate small-subgroup check to perform.
type Point struct {
	infinity bool
	x, y     secp256k1.FieldVal
}

// Identity returns the point at infinity.
func Identity() *Point {
	return &Point{infinity: true}
}

// IsIdentity reports whether p is the point at infinity.
func (p *Point) IsIdentity() bool {
	return p.infinity
}

// Generator returns the curve's standard base point G.
func Generator() *Point {
	var j secp256k1.JacobianPoint
	one := new(Scalar)
	one.v.SetInt(1)
	secp256k1.ScalarBaseMultNonConst(&one.v, &j)
	return fromJacobian(&j)
}

// ScalarBaseMult returns k*G.
func ScalarBaseMult(k *Scalar) *Point {
	var j secp256k1.JacobianPoint
	secp256k1.ScalarBaseMultNonConst(k.modN(), &j)
	return fromJacobian(&j)
}

// ScalarMult returns k*p.
func ScalarMult(k *Scalar, p *Point) *Point {
	if p.infinity {
		return Identity()
	}
	in := p.toJacobian()
	var out secp256k1.JacobianPoint
	secp256k1.ScalarMultNonConst(k.modN(), &in, &out)
	return fromJacobian(&out)
}

// Add returns p + o.
func Add(p, o *Point) *Point {
	if p.infinity {
		return o.Clone()
	}
	if o.infinity {
		return p.Clone()
	}
	pj := p.toJacobian()
	oj := o.toJacobian()
	var out secp256k1.JacobianPoint
	secp256k1.AddNonConst(&pj, &oj, &out)
	return fromJacobian(&out)
}

// Neg returns -p.
func (p *Point) Neg() *Point {
	if p.infinity {
		return Identity()
	}
	r := &Point{x: p.x}
	r.y.Set(&p.y).Negate(1).Normalize()
	return r
}

// Clone returns a deep copy of p.
func (p *Point) Clone() *Point {
	if p.infinity {
		return Identity()
	}
	r := &Point{}
	r.x.Set(&p.x)
	r.y.Set(&p.y)
	return r
}

// Equal reports whether two points are the same (both infinity, or the
// same affine coordinates).
func (p *Point) Equal(o *Point) bool {
	if p.infinity || o.infinity {
		return p.infinity == o.infinity
	}
	return p.x.Equals(&o.x) && p.y.Equals(&o.y)
}

// Encode returns the SEC1 compressed encoding: 0x02|0x03 || x (33 bytes).
// The identity point has no SEC1 encoding; callers must not call Encode on
// it (commitment and proof code rejects identity before this point).
func (p *Point) Encode() []byte {
	if p.infinity {
		panic("curve: cannot encode the identity point")
	}
	pub := secp256k1.NewPublicKey(&p.x, &p.y)
	return pub.SerializeCompressed()
}

// DecodePoint parses a 33-byte SEC1 compressed point, rejecting anything
// not on the curve. Since secp256k1's cofactor is 1, on-curve implies
// prime-order subgroup membership.
func DecodePoint(b []byte) (*Point, error) {
	if len(b) != PointSize {
		return nil, ErrInvalidPoint
	}
	pub, err := secp256k1.ParsePubKey(b)
	if err != nil {
		return nil, ErrInvalidPoint
	}
	return &Point{x: pub.X, y: pub.Y}, nil
}

func (p *Point) toJacobian() secp256k1.JacobianPoint {
	var j secp256k1.JacobianPoint
	j.X.Set(&p.x)
	j.Y.Set(&p.y)
	j.Z.SetInt(1)
	return j
}

func fromJacobian(j *secp256k1.JacobianPoint) *Point {
	if j.Z.IsZero() {
		return Identity()
	}
	j.ToAffine()
	return &Point{x: j.X, y: j.Y}
}
