package irys

import "errors"

var (
	ErrFailedToParse                     = errors.New("failed to parse response")
	ErrPaymentRequired                   = errors.New("not enough funds to upload")
	ErrIdEmpty                           = errors.New("bundle id is empty")
	ErrBufferTooSmall                    = errors.New("buffer too small")
	ErrSignerNotSpecified                = errors.New("signer not specified")
	ErrUnsupportedSignatureType          = errors.New("unsupported signature type")
	ErrSolanaSignatureMismatch           = errors.New("solana signature mismatch")
	ErrBadPrivateKey                     = errors.New("bad ed25519 private key")
	ErrNotEnoughBytesForSignatureType    = errors.New("not enough bytes for signature type")
	ErrNotEnoughBytesForSignature        = errors.New("not enough bytes for signature")
	ErrNotEnoughBytesForOwner            = errors.New("not enough bytes for owner")
	ErrNotEnoughBytesForTargetFlag       = errors.New("not enough bytes for target flag")
	ErrNotEnoughBytesForTarget           = errors.New("not enough bytes for target")
	ErrNotEnoughBytesForAnchorFlag       = errors.New("not enough bytes for anchor flag")
	ErrNotEnoughBytesForAnchor           = errors.New("not enough bytes for anchor")
	ErrNotEnoughBytesForNumberOfTags     = errors.New("not enough bytes for number of tags")
	ErrNotEnoughBytesForNumberOfTagBytes = errors.New("not enough bytes for number of tag bytes")
	ErrNotEnoughBytesForTags             = errors.New("not enough bytes for tags")
	ErrVerifyIdSignatureMismatch         = errors.New("id doesn't match signature")
	ErrVerifyBadAnchorLength             = errors.New("anchor needs to be 32 bytes long")
	ErrVerifyTooManyTags                 = errors.New("too many tags")
	ErrVerifyEmptyTagName                = errors.New("empty tag name")
	ErrVerifyTooLongTagName              = errors.New("tag name too long")
	ErrVerifyEmptyTagValue               = errors.New("empty tag value")
	ErrVerifyTooLongTagValue             = errors.New("tag value too long")
)
