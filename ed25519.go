package sign

import (
	"crypto/rand"
	"crypto/subtle"

	"github.com/pkg/errors"
	"golang.org/x/crypto/ed25519"
)

const (
	// SizeEd25519Key is the size in bytes of an Ed25519 private seed and of a public key.
	SizeEd25519Key = 32

	// SizeEd25519Signature is the size in bytes of an Ed25519 signature.
	SizeEd25519Signature = ed25519.SignatureSize

	sizeEd25519Packed = ed25519.PrivateKeySize
)

// Ed25519 is the Ed25519 signature scheme. The private key is the 32-byte seed; the
// primitive's 64-byte seed||public key layout is only assembled at the call boundary.
type Ed25519 struct {
	privateKey [SizeEd25519Key]byte
	publicKey  [SizeEd25519Key]byte
}

// NewEd25519 returns an Ed25519 scheme holding all-zero keys.
func NewEd25519() *Ed25519 {
	return new(Ed25519)
}

func (p *Ed25519) ID() ID {
	return IDEd25519
}

func (p *Ed25519) PrivateKeySize() int {
	return SizeEd25519Key
}

func (p *Ed25519) PublicKeySize() int {
	return SizeEd25519Key
}

func (p *Ed25519) SignatureSize() int {
	return SizeEd25519Signature
}

func (p *Ed25519) PrivateKey() []byte {
	return p.privateKey[:]
}

func (p *Ed25519) PublicKey() []byte {
	return p.publicKey[:]
}

// pack writes seed||public key into dst.
func (p *Ed25519) pack(dst *[sizeEd25519Packed]byte) {
	copy(dst[:SizeEd25519Key], p.privateKey[:])
	copy(dst[SizeEd25519Key:], p.publicKey[:])
}

// unpack loads seed||public key from src.
func (p *Ed25519) unpack(src *[sizeEd25519Packed]byte) {
	copy(p.privateKey[:], src[:SizeEd25519Key])
	copy(p.publicKey[:], src[SizeEd25519Key:])
}

func (p *Ed25519) GenerateKeypair() {
	_, privateKey, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		panic(errors.Wrap(err, "ed25519: failed to generate keypair"))
	}

	var packed [sizeEd25519Packed]byte
	copy(packed[:], privateKey)
	p.unpack(&packed)

	zero(packed[:])
	zero(privateKey)
}

func (p *Ed25519) ValidateKeypair(privateKey, publicKey []byte) error {
	mustSize("ed25519: public key", publicKey, SizeEd25519Key)

	var derived [SizeEd25519Key]byte
	_ = p.DerivePublicKey(privateKey, derived[:])

	return selectCode(subtle.ConstantTimeCompare(derived[:], publicKey), CodeInvalidPublicKey).Err()
}

// ValidatePublicKey accepts every 32-byte string. Curve membership and canonical encoding
// are not checked here; the first Verify against the key rejects unusable points.
func (p *Ed25519) ValidatePublicKey(publicKey []byte) error {
	mustSize("ed25519: public key", publicKey, SizeEd25519Key)
	return nil
}

func (p *Ed25519) DerivePublicKey(privateKey, publicKey []byte) error {
	mustSize("ed25519: private key", privateKey, SizeEd25519Key)
	mustSize("ed25519: public key", publicKey, SizeEd25519Key)

	expanded := ed25519.NewKeyFromSeed(privateKey)
	copy(publicKey, expanded[SizeEd25519Key:])
	zero(expanded)

	return nil
}

func (p *Ed25519) Sign(message, signature []byte) error {
	mustSize("ed25519: signature", signature, SizeEd25519Signature)

	var packed [sizeEd25519Packed]byte
	p.pack(&packed)
	copy(signature, ed25519.Sign(packed[:], message))
	zero(packed[:])

	return nil
}

func (p *Ed25519) Verify(message, signature []byte) error {
	if len(signature) != SizeEd25519Signature || !ed25519.Verify(p.publicKey[:], message, signature) {
		return ErrInvalidSignature
	}

	return nil
}
