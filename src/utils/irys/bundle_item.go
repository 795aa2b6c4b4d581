package irys

import (
	"bytes"
	"crypto/ed25519"
	"crypto/sha256"
	"encoding/binary"
	"io"
)

// A single ANS-104 data item, the unit the bundling node accepts
type BundleItem struct {
	SignatureType SignatureType `json:"signature_type"`
	Signature     Base64String  `json:"signature"`
	Owner         Base64String  `json:"owner"`  // public key of the signer
	Target        Base64String  `json:"target"` // optional, 32 bytes when present
	Anchor        Base64String  `json:"anchor"` // optional, 32 bytes when present
	Tags          Tags          `json:"tags"`
	Data          Base64String  `json:"data"`
	Id            Base64String  `json:"id"`

	// Not in the standard, used internally
	tagsBytes []byte
}

var signatureConfig = map[SignatureType]struct {
	Signature int
	Owner     int
	Verify    func(hash []byte, self *BundleItem) error
}{
	SignatureTypeSolana: {
		Signature: ed25519.SignatureSize,
		Owner:     ed25519.PublicKeySize,
		Verify: func(hash []byte, self *BundleItem) error {
			return VerifyOwner(self.Owner, hash, self.Signature)
		},
	},
}

func (self *BundleItem) ensureTagsSerialized() (err error) {
	if len(self.tagsBytes) != 0 || len(self.Tags) == 0 {
		return nil
	}
	self.tagsBytes, err = self.Tags.Marshal()
	if err != nil {
		return err
	}
	return nil
}

func (self *BundleItem) Size() (out int, err error) {
	err = self.ensureTagsSerialized()
	if err != nil {
		return
	}

	config, ok := signatureConfig[self.SignatureType]
	if !ok {
		err = ErrUnsupportedSignatureType
		return
	}

	out = 2 + config.Signature + config.Owner + 1 + 1 + 8 + 8 + len(self.tagsBytes) + len(self.Data)
	if len(self.Target) > 0 {
		out += len(self.Target)
	}
	if len(self.Anchor) > 0 {
		out += len(self.Anchor)
	}
	return
}

// The value the signature commits to
func (self *BundleItem) signatureData() ([48]byte, error) {
	err := self.ensureTagsSerialized()
	if err != nil {
		return [48]byte{}, err
	}

	values := []any{
		"dataitem",
		"1",
		self.SignatureType.Bytes(),
		self.Owner,
		self.Target,
		self.Anchor,
		self.tagsBytes,
		self.Data,
	}

	return DeepHash(values), nil
}

func (self *BundleItem) sign(signer Signer) (id, signature []byte, err error) {
	deepHash, err := self.signatureData()
	if err != nil {
		return
	}

	// Solana wallets sign the deep hash directly
	signature, err = signer.Sign(deepHash[:])
	if err != nil {
		return
	}

	// Bundle item id
	idArray := sha256.Sum256(signature)
	id = idArray[:]

	return
}

// Reader returns the signed binary encoding, signing on first use
func (self *BundleItem) Reader(signer Signer) (out *bytes.Buffer, err error) {
	// Rough capacity, the buffer grows if the estimate is short
	out = bytes.NewBuffer(make([]byte, 0, len(self.Data)+4096))

	err = self.Encode(signer, out)
	return
}

func (self *BundleItem) Encode(signer Signer, out *bytes.Buffer) (err error) {
	// Tags
	err = self.ensureTagsSerialized()
	if err != nil {
		return
	}

	// Crypto
	if len(self.Owner) == 0 && len(self.Signature) == 0 && len(self.Id) == 0 {
		if signer == nil {
			err = ErrSignerNotSpecified
			return
		}
		self.SignatureType = signer.GetType()
		self.Owner = signer.GetOwner()

		// Signs bundle item
		self.Id, self.Signature, err = self.sign(signer)
		if err != nil {
			return
		}
	}

	// Serialization
	out.Write(ShortTo2ByteArray(int(self.SignatureType)))
	out.Write(self.Signature)
	out.Write(self.Owner)

	// Optional target
	if len(self.Target) == 0 {
		out.WriteByte(0)
	} else {
		out.WriteByte(1)
		out.Write(self.Target)
	}

	// Optional anchor
	if len(self.Anchor) == 0 {
		out.WriteByte(0)
	} else {
		out.WriteByte(1)
		out.Write(self.Anchor)
	}

	// Rest
	out.Write(LongTo8ByteArray(len(self.Tags)))
	out.Write(LongTo8ByteArray(len(self.tagsBytes)))
	out.Write(self.tagsBytes)
	out.Write(self.Data)

	return
}

func (self *BundleItem) Unmarshal(buf []byte) (err error) {
	reader := bytes.NewReader(buf)
	return self.UnmarshalFromReader(reader)
}

// Reverse operation of Reader
func (self *BundleItem) UnmarshalFromReader(reader io.Reader) (err error) {
	// Signature type
	signatureType := make([]byte, 2)
	_, err = io.ReadFull(reader, signatureType)
	if err != nil {
		return ErrNotEnoughBytesForSignatureType
	}
	self.SignatureType = SignatureType(binary.LittleEndian.Uint16(signatureType))

	config, ok := signatureConfig[self.SignatureType]
	if !ok {
		return ErrUnsupportedSignatureType
	}

	// Signature (length depends on the signature type)
	self.Signature = make([]byte, config.Signature)
	_, err = io.ReadFull(reader, self.Signature)
	if err != nil {
		return ErrNotEnoughBytesForSignature
	}

	// Owner - public key (length depends on the signature type)
	self.Owner = make([]byte, config.Owner)
	_, err = io.ReadFull(reader, self.Owner)
	if err != nil {
		return ErrNotEnoughBytesForOwner
	}

	// Target (it's optional)
	isTargetPresent := make([]byte, 1)
	_, err = io.ReadFull(reader, isTargetPresent)
	if err != nil {
		return ErrNotEnoughBytesForTargetFlag
	}

	if isTargetPresent[0] == 0 {
		self.Target = []byte{}
	} else {
		self.Target = make([]byte, 32)
		_, err = io.ReadFull(reader, self.Target)
		if err != nil {
			return ErrNotEnoughBytesForTarget
		}
	}

	// Anchor (it's optional)
	isAnchorPresent := make([]byte, 1)
	_, err = io.ReadFull(reader, isAnchorPresent)
	if err != nil {
		return ErrNotEnoughBytesForAnchorFlag
	}

	if isAnchorPresent[0] == 0 {
		self.Anchor = []byte{}
	} else {
		self.Anchor = make([]byte, 32)
		_, err = io.ReadFull(reader, self.Anchor)
		if err != nil {
			return ErrNotEnoughBytesForAnchor
		}
	}

	// Length of the tags slice
	numTagsBuffer := make([]byte, 8)
	_, err = io.ReadFull(reader, numTagsBuffer)
	if err != nil {
		return ErrNotEnoughBytesForNumberOfTags
	}
	numTags := int(binary.LittleEndian.Uint64(numTagsBuffer))

	// Size of encoded tags
	numTagsBytesBuffer := make([]byte, 8)
	_, err = io.ReadFull(reader, numTagsBytesBuffer)
	if err != nil {
		return ErrNotEnoughBytesForNumberOfTagBytes
	}
	numTagsBytes := int(binary.LittleEndian.Uint64(numTagsBytesBuffer))

	// Tags
	self.Tags = make([]Tag, 0, numTags)
	if numTags > 0 {
		self.tagsBytes = make([]byte, numTagsBytes)
		_, err = io.ReadFull(reader, self.tagsBytes)
		if err != nil {
			return ErrNotEnoughBytesForTags
		}

		err = self.Tags.Unmarshal(self.tagsBytes)
		if err != nil {
			return
		}
	}

	// The rest is just data
	var data bytes.Buffer
	_, err = data.ReadFrom(reader)
	if err != nil {
		return
	}
	self.Data = data.Bytes()

	// Id is derived, not transported
	idArray := sha256.Sum256(self.Signature)
	self.Id = idArray[:]

	return
}

// https://github.com/ArweaveTeam/arweave-standards/blob/master/ans/ANS-104.md#21-verifying-a-dataitem
func (self *BundleItem) Verify() (err error) {
	idArray := sha256.Sum256(self.Signature)
	if !bytes.Equal(idArray[:], self.Id) {
		err = ErrVerifyIdSignatureMismatch
		return
	}

	// an anchor isn't more than 32 bytes
	if len(self.Anchor) != 0 && len(self.Anchor) != 32 {
		err = ErrVerifyBadAnchorLength
		return
	}

	// Tags
	if len(self.Tags) > 128 {
		err = ErrVerifyTooManyTags
		return
	}

	for _, tag := range self.Tags {
		if len(tag.Name) == 0 {
			err = ErrVerifyEmptyTagName
			return
		}
		if len(tag.Name) > 1024 {
			err = ErrVerifyTooLongTagName
			return
		}
		if len(tag.Value) == 0 {
			err = ErrVerifyEmptyTagValue
			return
		}
		if len(tag.Value) > 3072 {
			err = ErrVerifyTooLongTagValue
			return
		}
	}

	// Verify signature
	return self.VerifySignature()
}

func (self *BundleItem) VerifySignature() (err error) {
	deepHash, err := self.signatureData()
	if err != nil {
		return
	}

	config, ok := signatureConfig[self.SignatureType]
	if !ok {
		return ErrUnsupportedSignatureType
	}

	return config.Verify(deepHash[:], self)
}
