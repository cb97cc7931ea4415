// Package curve selects one of the interchangeable secp256k1 group backends.
package curve

import (
	"fmt"
	"sort"

	"github.com/athanorlabs/go-secp256k1/curve/decred"
	"github.com/athanorlabs/go-secp256k1/curve/gnark"
	"github.com/athanorlabs/go-secp256k1/curve/native"
	"github.com/athanorlabs/go-secp256k1/types"
)

// DefaultName is the backend used when none is requested.
const DefaultName = "native"

var constructors = map[string]func() types.Curve{
	"native": native.NewCurve,
	"decred": decred.NewCurve,
	"gnark":  gnark.NewCurve,
}

// New returns the backend registered under name.  An empty name selects
// DefaultName.
func New(name string) (types.Curve, error) {
	if name == "" {
		name = DefaultName
	}

	ctor, ok := constructors[name]
	if !ok {
		return nil, fmt.Errorf("unknown curve backend %q (available: %v)",
			name, Names())
	}

	return ctor(), nil
}

// Names returns the sorted names of every available backend.
func Names() []string {
	names := make([]string, 0, len(constructors))
	for name := range constructors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
