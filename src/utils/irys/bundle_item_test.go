package irys

import (
	"crypto/ed25519"
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

func TestBundleItemTestSuite(t *testing.T) {
	suite.Run(t, new(BundleItemTestSuite))
}

type BundleItemTestSuite struct {
	suite.Suite
	signer *SolanaSigner
}

func (s *BundleItemTestSuite) SetupSuite() {
	_, privateKey, err := ed25519.GenerateKey(rand.Reader)
	require.Nil(s.T(), err)

	s.signer, err = NewSolanaSigner(privateKey)
	require.Nil(s.T(), err)
}

func (s *BundleItemTestSuite) item() *BundleItem {
	return &BundleItem{
		Data: []byte("some payload"),
		Tags: Tags{{Name: "Content-Type", Value: "application/json"}},
	}
}

func (s *BundleItemTestSuite) TestSignAndVerify() {
	item := s.item()
	reader, err := item.Reader(s.signer)
	require.Nil(s.T(), err)
	require.NotNil(s.T(), reader)

	require.Equal(s.T(), SignatureTypeSolana, item.SignatureType)
	require.Len(s.T(), []byte(item.Signature), ed25519.SignatureSize)
	require.Len(s.T(), []byte(item.Owner), ed25519.PublicKeySize)
	require.Len(s.T(), []byte(item.Id), 32)

	require.Nil(s.T(), item.Verify())
}

func (s *BundleItemTestSuite) TestTamperedDataFailsVerification() {
	item := s.item()
	_, err := item.Reader(s.signer)
	require.Nil(s.T(), err)

	item.Data = []byte("different payload")
	require.ErrorIs(s.T(), item.VerifySignature(), ErrSolanaSignatureMismatch)
}

func (s *BundleItemTestSuite) TestCodecRoundTrip() {
	item := s.item()
	reader, err := item.Reader(s.signer)
	require.Nil(s.T(), err)

	var decoded BundleItem
	require.Nil(s.T(), decoded.Unmarshal(reader.Bytes()))

	require.Equal(s.T(), item.SignatureType, decoded.SignatureType)
	require.Equal(s.T(), item.Signature, decoded.Signature)
	require.Equal(s.T(), item.Owner, decoded.Owner)
	require.Equal(s.T(), item.Tags, decoded.Tags)
	require.Equal(s.T(), item.Data, decoded.Data)
	require.Equal(s.T(), item.Id, decoded.Id)

	require.Nil(s.T(), decoded.Verify())
}

func (s *BundleItemTestSuite) TestSizeMatchesEncoding() {
	item := s.item()
	reader, err := item.Reader(s.signer)
	require.Nil(s.T(), err)

	size, err := item.Size()
	require.Nil(s.T(), err)
	require.Equal(s.T(), size, reader.Len())
}

func (s *BundleItemTestSuite) TestSignerRequired() {
	item := s.item()
	_, err := item.Reader(nil)
	require.ErrorIs(s.T(), err, ErrSignerNotSpecified)
}

func (s *BundleItemTestSuite) TestVerifyTagBounds() {
	item := s.item()
	_, err := item.Reader(s.signer)
	require.Nil(s.T(), err)

	item.Tags = append(Tags{}, item.Tags...)
	item.Tags[0].Name = ""
	require.ErrorIs(s.T(), item.Verify(), ErrVerifyEmptyTagName)
}
