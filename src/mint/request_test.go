package mint

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

func TestRequestTestSuite(t *testing.T) {
	suite.Run(t, new(RequestTestSuite))
}

type RequestTestSuite struct {
	suite.Suite
}

func validTokenMetadata() TokenMetadata {
	return TokenMetadata{
		Name:        "Example Token",
		Symbol:      "EXT",
		Description: "A token",
		Image:       "https://gateway.irys.xyz/abc",
	}
}

func validTokenRequest() *TokenRequest {
	return &TokenRequest{
		Metadata: validTokenMetadata(),
		Decimals: 9,
		Supply:   1,
	}
}

func (s *RequestTestSuite) TestMintAmount() {
	cases := []struct {
		decimals uint8
		supply   uint64
		expected uint64
	}{
		{9, 1, 1_000_000_000},
		{1, 1, 10},
		{2, 21_000_000, 2_100_000_000},
		{6, 1_000, 1_000_000_000},
	}
	for _, c := range cases {
		request := &TokenRequest{Decimals: c.decimals, Supply: c.supply}
		amount, err := request.MintAmount()
		require.Nil(s.T(), err)
		require.Equal(s.T(), c.expected, amount)
	}
}

func (s *RequestTestSuite) TestMintAmountOverflow() {
	request := &TokenRequest{Decimals: 9, Supply: math.MaxUint64/1_000_000_000 + 1}
	_, err := request.MintAmount()
	require.ErrorIs(s.T(), err, ErrMintAmountOverflow)

	// Largest supply that still fits
	request.Supply = math.MaxUint64 / 1_000_000_000
	_, err = request.MintAmount()
	require.Nil(s.T(), err)
}

func (s *RequestTestSuite) TestValidate() {
	require.Nil(s.T(), validTokenRequest().Validate())
}

func (s *RequestTestSuite) TestDecimalsBounds() {
	for _, decimals := range []uint8{0, 10} {
		request := validTokenRequest()
		request.Decimals = decimals
		require.NotNil(s.T(), request.Validate())
	}
	for decimals := uint8(1); decimals <= 9; decimals++ {
		request := validTokenRequest()
		request.Decimals = decimals
		require.Nil(s.T(), request.Validate())
	}
}

func (s *RequestTestSuite) TestSupplyBounds() {
	request := validTokenRequest()
	request.Supply = 0
	require.NotNil(s.T(), request.Validate())
}

func (s *RequestTestSuite) TestOverflowRejectedByValidate() {
	request := validTokenRequest()
	request.Supply = math.MaxUint64
	err := request.Validate()
	require.NotNil(s.T(), err)

	var validation *ValidationError
	require.ErrorAs(s.T(), err, &validation)
	require.Equal(s.T(), "supply", validation.Field)
}
