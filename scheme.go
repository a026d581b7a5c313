//go:generate mockgen -source=scheme.go -destination=mock_scheme_test.go -package=sign

// Package sign implements the signature backends used by Noise handshakes: a uniform
// Scheme contract, Ed25519 and Ed448 implementations of it, and a State that manages the
// key material a handshake loads into a scheme.
package sign

import "github.com/pkg/errors"

// Scheme is the contract every signature backend satisfies. A scheme owns the buffers
// returned by PrivateKey and PublicKey; callers may read them and write raw key bytes into
// them.
//
// Key buffers passed to a scheme must be exactly PrivateKeySize or PublicKeySize bytes
// long. Passing a mis-sized key is a programming error and panics; State performs the
// length checks for callers that handle untrusted input.
//
// Schemes are not synchronized. GenerateKeypair and writes to the key buffers must not run
// concurrently with any other call on the same scheme.
type Scheme interface {
	ID() ID

	PrivateKeySize() int
	PublicKeySize() int
	SignatureSize() int

	PrivateKey() []byte
	PublicKey() []byte

	// GenerateKeypair replaces the scheme's key material with a freshly generated pair.
	// It panics if the system randomness source fails.
	GenerateKeypair()

	// ValidateKeypair reports ErrInvalidPublicKey if publicKey does not belong to
	// privateKey. The check runs in constant time.
	ValidateKeypair(privateKey, publicKey []byte) error

	// ValidatePublicKey checks a public key in isolation.
	ValidatePublicKey(publicKey []byte) error

	// DerivePublicKey writes the public key of privateKey into publicKey.
	DerivePublicKey(privateKey, publicKey []byte) error

	// Sign writes a detached signature of message, made with the scheme's own keypair,
	// into signature, which must be SignatureSize bytes long.
	Sign(message, signature []byte) error

	// Verify checks a detached signature of message against the scheme's own public key
	// and reports ErrInvalidSignature if it does not verify.
	Verify(message, signature []byte) error
}

var (
	_ Scheme = (*Ed25519)(nil)
	_ Scheme = (*Ed448)(nil)
)

// New returns a fresh scheme with zeroed key material for the given algorithm.
func New(id ID) (Scheme, error) {
	switch id {
	case IDEd25519:
		return NewEd25519(), nil
	case IDEd448:
		return NewEd448(), nil
	default:
		return nil, errors.Wrapf(ErrUnknownID, "sign: no signature algorithm has id 0x%04x", int(id))
	}
}

// MaxKeyLength returns the largest private or public key size over all algorithms.
func MaxKeyLength() int {
	return SizeEd448Key
}

// MaxSignatureLength returns the largest signature size over all algorithms.
func MaxSignatureLength() int {
	return SizeEd448Signature
}

func mustSize(what string, buf []byte, size int) {
	if len(buf) != size {
		panic(errors.Errorf("sign: %s expected to be %d bytes, but is %d bytes", what, size, len(buf)))
	}
}
