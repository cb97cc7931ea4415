package schnorr

import (
	"github.com/athanorlabs/go-secp256k1"
)

// These kinds describe why a well-formed signature failed verification.  They
// are only surfaced through the logger and in tests since the exported verify
// functions return a bool.
const (
	// ErrSigRIsInfinity indicates that s*G - e*P is the point at infinity.
	ErrSigRIsInfinity = secp256k1.ErrorKind("ErrSigRIsInfinity")

	// ErrSigRYIsOdd indicates that the calculated R point has an odd y
	// coordinate.
	ErrSigRYIsOdd = secp256k1.ErrorKind("ErrSigRYIsOdd")

	// ErrUnequalRValues indicates that the x coordinate of the calculated R
	// point does not match the r value of the signature.
	ErrUnequalRValues = secp256k1.ErrorKind("ErrUnequalRValues")

	// ErrSelfVerify indicates that a freshly produced signature did not
	// verify.
	ErrSelfVerify = secp256k1.ErrorKind("ErrSelfVerify")
)

func signatureError(kind secp256k1.ErrorKind, desc string) secp256k1.Error {
	return secp256k1.MakeError(kind, desc)
}
