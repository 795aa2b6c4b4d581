package irys

import (
	"crypto/ed25519"
)

type Signer interface {
	Sign(data []byte) (signature []byte, err error)
	Verify(data []byte, signature []byte) error
	GetOwner() []byte
	GetType() SignatureType
	GetSignatureLength() int
	GetOwnerLength() int
}

// Solana wallets sign the raw deep hash with ed25519, the owner field
// carries the 32 byte public key.
type SolanaSigner struct {
	PrivateKey ed25519.PrivateKey
	Owner      []byte
}

func NewSolanaSigner(privateKey ed25519.PrivateKey) (self *SolanaSigner, err error) {
	if len(privateKey) != ed25519.PrivateKeySize {
		err = ErrBadPrivateKey
		return
	}

	self = new(SolanaSigner)
	self.PrivateKey = privateKey
	self.Owner = privateKey.Public().(ed25519.PublicKey)

	return
}

func (self *SolanaSigner) Sign(data []byte) (signature []byte, err error) {
	return ed25519.Sign(self.PrivateKey, data), nil
}

func (self *SolanaSigner) Verify(data []byte, signature []byte) (err error) {
	if !ed25519.Verify(self.Owner, data, signature) {
		err = ErrSolanaSignatureMismatch
	}
	return
}

func (self *SolanaSigner) GetOwner() []byte {
	return self.Owner
}

func (self *SolanaSigner) GetType() SignatureType {
	return SignatureTypeSolana
}

func (self *SolanaSigner) GetSignatureLength() int {
	return ed25519.SignatureSize
}

func (self *SolanaSigner) GetOwnerLength() int {
	return ed25519.PublicKeySize
}

// VerifyOwner checks a detached signature against an arbitrary owner key,
// used when verifying items this process didn't sign.
func VerifyOwner(owner, data, signature []byte) error {
	if len(owner) != ed25519.PublicKeySize {
		return ErrNotEnoughBytesForOwner
	}
	if !ed25519.Verify(ed25519.PublicKey(owner), data, signature) {
		return ErrSolanaSignatureMismatch
	}
	return nil
}
