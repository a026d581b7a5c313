package sign

import (
	"encoding/hex"
	"strings"

	"github.com/minio/blake2b-simd"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type keyType int

const (
	keyTypeNone keyType = iota
	keyTypeKeypair
	keyTypePublic
)

func (k keyType) String() string {
	switch k {
	case keyTypeKeypair:
		return "keypair"
	case keyTypePublic:
		return "public"
	default:
		return "none"
	}
}

// FingerprintType selects how much of a public key fingerprint is formatted.
type FingerprintType int

const (
	// FingerprintBasic formats the first 16 bytes of the fingerprint.
	FingerprintBasic FingerprintType = iota

	// FingerprintFull formats all 32 bytes of the fingerprint.
	FingerprintFull
)

// State holds the key material for one signature role of a handshake. It checks buffer
// lengths and key availability before delegating to its Scheme.
//
// A State is not safe for concurrent mutation.
type State struct {
	scheme  Scheme
	keyType keyType
	logger  *zap.Logger
}

// NewState instantiates a sign state for the algorithm identified by id.
func NewState(id ID, opts ...StateOption) (*State, error) {
	scheme, err := New(id)
	if err != nil {
		return nil, err
	}

	return newState(scheme, opts...), nil
}

// NewStateByName instantiates a sign state for the algorithm with the given Noise name,
// for example "Ed25519".
func NewStateByName(name string, opts ...StateOption) (*State, error) {
	id, err := ParseID(name)
	if err != nil {
		return nil, err
	}

	return NewState(id, opts...)
}

func newState(scheme Scheme, opts ...StateOption) *State {
	s := &State{
		scheme: scheme,
		logger: zap.NewNop(),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

func (s *State) ID() ID {
	return s.scheme.ID()
}

func (s *State) PrivateKeyLength() int {
	return s.scheme.PrivateKeySize()
}

func (s *State) PublicKeyLength() int {
	return s.scheme.PublicKeySize()
}

func (s *State) SignatureLength() int {
	return s.scheme.SignatureSize()
}

// HasKeypair reports whether both a private and a public key are loaded.
func (s *State) HasKeypair() bool {
	return s.keyType == keyTypeKeypair
}

// HasPublicKey reports whether a public key is loaded, either alone or as part of a
// keypair.
func (s *State) HasPublicKey() bool {
	return s.keyType != keyTypeNone
}

// GenerateKeypair replaces the loaded keys with a freshly generated keypair.
func (s *State) GenerateKeypair() {
	s.scheme.GenerateKeypair()
	s.keyType = keyTypeKeypair

	s.logger.Debug("Generated a new keypair.", zap.Stringer("scheme", s.ID()))
}

// SetKeypair loads a private key and its public key. The pair is validated first; on any
// error the previously loaded keys are left untouched.
func (s *State) SetKeypair(privateKey, publicKey []byte) error {
	if err := s.checkLength("private key", privateKey, s.PrivateKeyLength()); err != nil {
		return err
	}

	if err := s.checkLength("public key", publicKey, s.PublicKeyLength()); err != nil {
		return err
	}

	if err := s.scheme.ValidateKeypair(privateKey, publicKey); err != nil {
		return errors.Wrapf(err, "%s: public key does not belong to the private key", s.ID())
	}

	copy(s.scheme.PrivateKey(), privateKey)
	copy(s.scheme.PublicKey(), publicKey)
	s.keyType = keyTypeKeypair

	s.logger.Debug("Loaded a keypair.", zap.Stringer("scheme", s.ID()))

	return nil
}

// SetKeypairPrivate loads a private key and derives its public key.
func (s *State) SetKeypairPrivate(privateKey []byte) error {
	if err := s.checkLength("private key", privateKey, s.PrivateKeyLength()); err != nil {
		return err
	}

	publicKey := make([]byte, s.PublicKeyLength())

	if err := s.scheme.DerivePublicKey(privateKey, publicKey); err != nil {
		return errors.Wrapf(err, "%s: failed to derive public key", s.ID())
	}

	copy(s.scheme.PrivateKey(), privateKey)
	copy(s.scheme.PublicKey(), publicKey)
	s.keyType = keyTypeKeypair

	s.logger.Debug("Loaded a private key.", zap.Stringer("scheme", s.ID()))

	return nil
}

// Keypair returns copies of the loaded private and public keys.
func (s *State) Keypair() (privateKey, publicKey []byte, err error) {
	if s.keyType != keyTypeKeypair {
		return nil, nil, errors.Wrapf(ErrInvalidState, "%s: no keypair is loaded", s.ID())
	}

	privateKey = append([]byte(nil), s.scheme.PrivateKey()...)
	publicKey = append([]byte(nil), s.scheme.PublicKey()...)

	return privateKey, publicKey, nil
}

// SetPublicKey loads a public key on its own, discarding any loaded private key.
func (s *State) SetPublicKey(publicKey []byte) error {
	if err := s.checkLength("public key", publicKey, s.PublicKeyLength()); err != nil {
		return err
	}

	if err := s.scheme.ValidatePublicKey(publicKey); err != nil {
		return errors.Wrapf(err, "%s: public key was rejected", s.ID())
	}

	zero(s.scheme.PrivateKey())
	copy(s.scheme.PublicKey(), publicKey)
	s.keyType = keyTypePublic

	s.logger.Debug("Loaded a public key.", zap.Stringer("scheme", s.ID()))

	return nil
}

// PublicKey returns a copy of the loaded public key.
func (s *State) PublicKey() ([]byte, error) {
	if s.keyType == keyTypeNone {
		return nil, errors.Wrapf(ErrInvalidState, "%s: no public key is loaded", s.ID())
	}

	return append([]byte(nil), s.scheme.PublicKey()...), nil
}

// Clear zeroes all loaded key material.
func (s *State) Clear() {
	zero(s.scheme.PrivateKey())
	zero(s.scheme.PublicKey())
	s.keyType = keyTypeNone
}

// CopyFrom replaces the keys of s with the keys of src. Both states must use the same
// algorithm.
func (s *State) CopyFrom(src *State) error {
	if src.ID() != s.ID() {
		return errors.Wrapf(ErrNotApplicable, "cannot copy %s keys into a %s state", src.ID(), s.ID())
	}

	if src == s {
		return nil
	}

	copy(s.scheme.PrivateKey(), src.scheme.PrivateKey())
	copy(s.scheme.PublicKey(), src.scheme.PublicKey())
	s.keyType = src.keyType

	return nil
}

// Sign returns a detached signature of message made with the loaded keypair.
func (s *State) Sign(message []byte) ([]byte, error) {
	if s.keyType != keyTypeKeypair {
		return nil, errors.Wrapf(ErrInvalidState, "%s: signing requires a keypair", s.ID())
	}

	signature := make([]byte, s.SignatureLength())

	if err := s.scheme.Sign(message, signature); err != nil {
		return nil, errors.Wrapf(err, "%s: failed to sign message", s.ID())
	}

	return signature, nil
}

// Verify checks a detached signature of message against the loaded public key.
func (s *State) Verify(message, signature []byte) error {
	if s.keyType == keyTypeNone {
		return errors.Wrapf(ErrInvalidState, "%s: verifying requires a public key", s.ID())
	}

	if err := s.checkLength("signature", signature, s.SignatureLength()); err != nil {
		return err
	}

	if err := s.scheme.Verify(message, signature); err != nil {
		s.logger.Debug("Signature failed to verify.", zap.Stringer("scheme", s.ID()), zap.Int("message_len", len(message)))
		return err
	}

	return nil
}

// Fingerprint formats the BLAKE2b-256 digest of the loaded public key as colon-separated
// lowercase hex bytes.
func (s *State) Fingerprint(typ FingerprintType) (string, error) {
	if s.keyType == keyTypeNone {
		return "", errors.Wrapf(ErrInvalidState, "%s: no public key is loaded", s.ID())
	}

	digest := blake2b.Sum256(s.scheme.PublicKey())

	n := len(digest)
	if typ == FingerprintBasic {
		n = 16
	}

	parts := make([]string, n)
	for i := range parts {
		parts[i] = hex.EncodeToString(digest[i : i+1])
	}

	return strings.Join(parts, ":"), nil
}

func (s *State) checkLength(what string, buf []byte, size int) error {
	if len(buf) != size {
		return errors.Wrapf(ErrInvalidLength, "%s: %s expected to be %d bytes, but is %d bytes", s.ID(), what, size, len(buf))
	}

	return nil
}
