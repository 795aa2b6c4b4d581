package solana

import "errors"

var (
	ErrCompactU16TooLong       = errors.New("compact-u16 value exceeds 3 bytes")
	ErrBadBlockhash            = errors.New("blockhash is not a base58 encoded 32 byte value")
	ErrTooManyRequiredSigners  = errors.New("too many required signers")
	ErrAccountIndexOutOfRange  = errors.New("instruction references an account index out of range")
	ErrUnexpectedEndOfMessage  = errors.New("not enough bytes left in the message")
	ErrUnsupportedVersion      = errors.New("unsupported message version")
	ErrAddressTablesNotAllowed = errors.New("address lookup tables are not supported")
	ErrSignerNotRequired       = errors.New("account is not a required signer of this message")
	ErrSignatureCountMismatch  = errors.New("signature count does not match required signers")
)
