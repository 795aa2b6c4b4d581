package solana

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

func TestCompactTestSuite(t *testing.T) {
	suite.Run(t, new(CompactTestSuite))
}

type CompactTestSuite struct {
	suite.Suite
}

func (s *CompactTestSuite) TestRoundTrip() {
	for _, value := range []int{0, 1, 5, 127, 128, 255, 16383, 16384, 65535} {
		out := new(bytes.Buffer)
		WriteCompactU16(out, value)

		got, err := ReadCompactU16(bytes.NewReader(out.Bytes()))
		require.Nil(s.T(), err)
		require.Equal(s.T(), value, got)
	}
}

func (s *CompactTestSuite) TestEncodedLength() {
	lengths := map[int]int{
		0:     1,
		127:   1,
		128:   2,
		16383: 2,
		16384: 3,
	}
	for value, expected := range lengths {
		out := new(bytes.Buffer)
		WriteCompactU16(out, value)
		require.Equal(s.T(), expected, out.Len(), "value %d", value)
	}
}

func (s *CompactTestSuite) TestTooLong() {
	_, err := ReadCompactU16(bytes.NewReader([]byte{0x80, 0x80, 0x80}))
	require.ErrorIs(s.T(), err, ErrCompactU16TooLong)
}

func (s *CompactTestSuite) TestTruncated() {
	_, err := ReadCompactU16(bytes.NewReader([]byte{0x80}))
	require.NotNil(s.T(), err)
}
