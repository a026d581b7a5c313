package sign

import "github.com/pkg/errors"

// ID identifies a signature algorithm. Values follow the Noise-C numbering scheme of
// ('S' << 8) | n so that they may be exchanged with other Noise implementations.
type ID int

const (
	// IDNone is the zero ID and names no algorithm.
	IDNone ID = 0

	// IDEd25519 identifies the Ed25519 signature algorithm.
	IDEd25519 ID = 'S'<<8 | 1

	// IDEd448 identifies the Ed448 signature algorithm.
	IDEd448 ID = 'S'<<8 | 2
)

var names = map[ID]string{
	IDEd25519: "Ed25519",
	IDEd448:   "Ed448",
}

// String returns the name of the algorithm as it appears in Noise protocol names.
func (id ID) String() string {
	if name, ok := names[id]; ok {
		return name
	}

	return "None"
}

// ParseID maps an algorithm name such as "Ed25519" back to its ID. Names are
// case-sensitive.
func ParseID(name string) (ID, error) {
	for id, n := range names {
		if n == name {
			return id, nil
		}
	}

	return IDNone, errors.Wrapf(ErrUnknownName, "sign: no signature algorithm is named %q", name)
}

// IDs returns every registered signature algorithm, in ascending order.
func IDs() []ID {
	return []ID{IDEd25519, IDEd448}
}
