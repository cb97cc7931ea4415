package secp256k1

// ErrorKind identifies a kind of error.  It has full support for errors.Is and
// errors.As, so the caller can directly check against an error kind when
// determining the reason for an error.
type ErrorKind string

// These constants are used to identify a specific Error.
const (
	// ErrInvalidScalar is returned when a scalar supplied as a private key or
	// nonce is zero, or when an encoded scalar is not less than the group
	// order.
	ErrInvalidScalar = ErrorKind("ErrInvalidScalar")

	// ErrInvalidFieldElement is returned when an encoded field element has the
	// wrong length or is not less than the field prime.
	ErrInvalidFieldElement = ErrorKind("ErrInvalidFieldElement")

	// ErrInvalidPoint is returned when coordinates do not satisfy the curve
	// equation, when an encoding cannot be decoded to a point, or when the
	// point at infinity is given where a finite point is required.
	ErrInvalidPoint = ErrorKind("ErrInvalidPoint")

	// ErrDivisionByZero is returned when inverting the zero element.
	ErrDivisionByZero = ErrorKind("ErrDivisionByZero")

	// ErrNonceCollision is returned when an ECDSA nonce yields r == 0 or
	// s == 0 (or a Schnorr nonce reduces to zero).  The caller must retry
	// with a fresh nonce.
	ErrNonceCollision = ErrorKind("ErrNonceCollision")

	// ErrMalformedDER is returned when a DER encoded signature is
	// structurally invalid.
	ErrMalformedDER = ErrorKind("ErrMalformedDER")

	// ErrMalformedSignature is returned when a fixed-size signature encoding
	// has the wrong length or out of range components.
	ErrMalformedSignature = ErrorKind("ErrMalformedSignature")
)

// Error satisfies the error interface and prints human-readable errors.
func (e ErrorKind) Error() string {
	return string(e)
}

// Error identifies an error related to secp256k1 arithmetic, keys or
// signatures.  It has full support for errors.Is and errors.As, so the caller
// can ascertain the specific reason for the error by checking the underlying
// error.
type Error struct {
	Err         error
	Description string
}

// Error satisfies the error interface and prints human-readable errors.
func (e Error) Error() string {
	return e.Description
}

// Unwrap returns the underlying wrapped error.
func (e Error) Unwrap() error {
	return e.Err
}

// MakeError creates an Error given a set of arguments.
func MakeError(kind ErrorKind, desc string) Error {
	return Error{Err: kind, Description: desc}
}
