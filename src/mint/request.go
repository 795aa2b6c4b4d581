package mint

import "math"

const (
	minDecimals = 1
	maxDecimals = 9
)

// Caller's mint parameters for a fungible token. The recipient address is
// carried separately, it arrives in a header, not the body.
type TokenRequest struct {
	Metadata TokenMetadata `json:"metadata"`
	Decimals uint8         `json:"decimals"`
	Supply   uint64        `json:"supply"`

	// Accepted for wire compatibility, no instruction effect
	AllowUpdateAuthority bool `json:"allowUpdateAuthority"`

	RevokeMintAuthority   bool `json:"revokeMintAuthority"`
	RevokeUpdateAuthority bool `json:"revokeUpdateAuthority"`
	RevokeFreezeAuthority bool `json:"revokeFreezeAuthority"`
}

func (self *TokenRequest) Validate() error {
	err := self.Metadata.Validate()
	if err != nil {
		return err
	}
	if self.Decimals < minDecimals || self.Decimals > maxDecimals {
		return invalid("decimals", "must be between 1 and 9")
	}
	if self.Supply < 1 {
		return invalid("supply", "must be at least 1")
	}
	_, err = self.MintAmount()
	if err != nil {
		return invalid("supply", err.Error())
	}
	return nil
}

// MintAmount is supply scaled to raw units: supply * 10^decimals. Overflowing
// the 64 bit amount field is rejected here, before any instruction is built.
func (self *TokenRequest) MintAmount() (uint64, error) {
	scale := uint64(1)
	for i := uint8(0); i < self.Decimals; i++ {
		scale *= 10
	}
	if self.Supply > math.MaxUint64/scale {
		return 0, ErrMintAmountOverflow
	}
	return self.Supply * scale, nil
}
