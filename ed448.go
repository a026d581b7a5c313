package sign

import (
	"crypto/rand"
	"crypto/subtle"

	"github.com/cloudflare/circl/sign/ed448"
	"github.com/pkg/errors"
)

const (
	// SizeEd448Key is the size in bytes of an Ed448 private seed and of a public key.
	SizeEd448Key = ed448.SeedSize

	// SizeEd448Signature is the size in bytes of an Ed448 signature.
	SizeEd448Signature = ed448.SignatureSize

	sizeEd448Packed = ed448.PrivateKeySize
)

// Ed448 is the Ed448 signature scheme with an empty context string, as used by Noise.
type Ed448 struct {
	privateKey [SizeEd448Key]byte
	publicKey  [SizeEd448Key]byte
}

// NewEd448 returns an Ed448 scheme holding all-zero keys.
func NewEd448() *Ed448 {
	return new(Ed448)
}

func (p *Ed448) ID() ID {
	return IDEd448
}

func (p *Ed448) PrivateKeySize() int {
	return SizeEd448Key
}

func (p *Ed448) PublicKeySize() int {
	return SizeEd448Key
}

func (p *Ed448) SignatureSize() int {
	return SizeEd448Signature
}

func (p *Ed448) PrivateKey() []byte {
	return p.privateKey[:]
}

func (p *Ed448) PublicKey() []byte {
	return p.publicKey[:]
}

func (p *Ed448) pack(dst *[sizeEd448Packed]byte) {
	copy(dst[:SizeEd448Key], p.privateKey[:])
	copy(dst[SizeEd448Key:], p.publicKey[:])
}

func (p *Ed448) unpack(src *[sizeEd448Packed]byte) {
	copy(p.privateKey[:], src[:SizeEd448Key])
	copy(p.publicKey[:], src[SizeEd448Key:])
}

func (p *Ed448) GenerateKeypair() {
	_, privateKey, err := ed448.GenerateKey(rand.Reader)
	if err != nil {
		panic(errors.Wrap(err, "ed448: failed to generate keypair"))
	}

	var packed [sizeEd448Packed]byte
	copy(packed[:], privateKey)
	p.unpack(&packed)

	zero(packed[:])
	zero(privateKey)
}

func (p *Ed448) ValidateKeypair(privateKey, publicKey []byte) error {
	mustSize("ed448: public key", publicKey, SizeEd448Key)

	var derived [SizeEd448Key]byte
	_ = p.DerivePublicKey(privateKey, derived[:])

	return selectCode(subtle.ConstantTimeCompare(derived[:], publicKey), CodeInvalidPublicKey).Err()
}

// ValidatePublicKey accepts every 57-byte string, like its Ed25519 counterpart.
func (p *Ed448) ValidatePublicKey(publicKey []byte) error {
	mustSize("ed448: public key", publicKey, SizeEd448Key)
	return nil
}

func (p *Ed448) DerivePublicKey(privateKey, publicKey []byte) error {
	mustSize("ed448: private key", privateKey, SizeEd448Key)
	mustSize("ed448: public key", publicKey, SizeEd448Key)

	expanded := ed448.NewKeyFromSeed(privateKey)
	copy(publicKey, expanded[SizeEd448Key:])
	zero(expanded)

	return nil
}

func (p *Ed448) Sign(message, signature []byte) error {
	mustSize("ed448: signature", signature, SizeEd448Signature)

	var packed [sizeEd448Packed]byte
	p.pack(&packed)
	copy(signature, ed448.Sign(packed[:], message, ""))
	zero(packed[:])

	return nil
}

func (p *Ed448) Verify(message, signature []byte) error {
	if len(signature) != SizeEd448Signature || !ed448.Verify(p.publicKey[:], message, signature, "") {
		return ErrInvalidSignature
	}

	return nil
}
