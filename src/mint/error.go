package mint

import "errors"

var (
	ErrMintAmountOverflow = errors.New("supply times 10^decimals exceeds the 64 bit mint amount")
	ErrUnknownNetwork     = errors.New("unknown network")
	ErrBadWalletKey       = errors.New("wallet private key must be a JSON array of 64 bytes")
)

// ValidationError carries field-level detail for a rejected request. Raised
// before any network call is made.
type ValidationError struct {
	Field  string
	Reason string
}

func (self *ValidationError) Error() string {
	return self.Field + ": " + self.Reason
}

func invalid(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}
