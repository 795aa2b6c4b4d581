package solana

import (
	"bytes"
	"crypto/ed25519"
	"encoding/base64"

	"github.com/blocto/solana-go-sdk/types"
)

const SignatureLength = 64

// A transaction and its signature slots. Slots align one to one with
// Message.Signers(); a slot left zeroed means that identity has not signed
// yet and the transaction cannot be submitted.
type Transaction struct {
	Signatures [][]byte
	Message    Message
}

func NewTransaction(message Message) (self Transaction) {
	self.Message = message
	self.Signatures = make([][]byte, message.Header.NumRequiredSignatures)
	for i := range self.Signatures {
		self.Signatures[i] = make([]byte, SignatureLength)
	}
	return
}

// PartialSign fills the signature slots of the given accounts, leaving every
// other slot untouched. Signing an identity the message doesn't require is an
// error, it means the instruction list and the signer set diverged.
func (self *Transaction) PartialSign(signers ...types.Account) (err error) {
	message := self.Message.Serialize()
	for _, signer := range signers {
		slot := -1
		for i, required := range self.Message.Signers() {
			if required == signer.PublicKey {
				slot = i
				break
			}
		}
		if slot < 0 {
			return ErrSignerNotRequired
		}
		self.Signatures[slot] = ed25519.Sign(signer.PrivateKey, message)
	}
	return nil
}

// SignedBy reports whether the identity's slot holds a non-zero signature
func (self *Transaction) SignedBy(slot int) bool {
	if slot < 0 || slot >= len(self.Signatures) {
		return false
	}
	for _, b := range self.Signatures[slot] {
		if b != 0 {
			return true
		}
	}
	return false
}

// Serialize is deterministic for a given message and signature set
func (self *Transaction) Serialize() []byte {
	out := new(bytes.Buffer)
	WriteCompactU16(out, len(self.Signatures))
	for _, signature := range self.Signatures {
		out.Write(signature)
	}
	out.Write(self.Message.Serialize())
	return out.Bytes()
}

func (self *Transaction) Base64() string {
	return base64.StdEncoding.EncodeToString(self.Serialize())
}

func DeserializeTransaction(data []byte) (self Transaction, err error) {
	reader := bytes.NewReader(data)

	numSignatures, err := ReadCompactU16(reader)
	if err != nil {
		return
	}
	self.Signatures = make([][]byte, numSignatures)
	for i := 0; i < numSignatures; i++ {
		self.Signatures[i] = make([]byte, SignatureLength)
		err = readFull(reader, self.Signatures[i])
		if err != nil {
			return
		}
	}

	self.Message, err = DeserializeMessage(reader)
	if err != nil {
		return
	}

	if int(self.Message.Header.NumRequiredSignatures) != numSignatures {
		err = ErrSignatureCountMismatch
		return
	}

	return
}
