package mint

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

func TestMetadataTestSuite(t *testing.T) {
	suite.Run(t, new(MetadataTestSuite))
}

type MetadataTestSuite struct {
	suite.Suite
}

func validMetadata() *Metadata {
	return &Metadata{
		Name:        "Example",
		Description: "A collectible",
		Image:       "https://gateway.irys.xyz/abc",
		Attributes: []Attribute{
			{TraitType: "color", Value: "blue"},
		},
		Properties: Properties{
			Files: []File{
				{Uri: "https://gateway.irys.xyz/abc", Type: "image/png"},
			},
			Category: "image",
		},
	}
}

func (s *MetadataTestSuite) TestValid() {
	require.Nil(s.T(), validMetadata().Validate())
}

func (s *MetadataTestSuite) TestNameTooLong() {
	metadata := validMetadata()
	metadata.Name = strings.Repeat("x", 33)
	s.requireInvalid(metadata, "name")
}

func (s *MetadataTestSuite) TestDescriptionTooLong() {
	metadata := validMetadata()
	metadata.Description = strings.Repeat("x", 2001)
	s.requireInvalid(metadata, "description")
}

func (s *MetadataTestSuite) TestTooManyAttributes() {
	metadata := validMetadata()
	metadata.Attributes = make([]Attribute, 11)
	for i := range metadata.Attributes {
		metadata.Attributes[i] = Attribute{TraitType: "t", Value: "v"}
	}
	s.requireInvalid(metadata, "attributes")
}

func (s *MetadataTestSuite) TestAttributeValueTooLong() {
	metadata := validMetadata()
	metadata.Attributes = []Attribute{{TraitType: "t", Value: strings.Repeat("x", 65)}}
	s.requireInvalid(metadata, "attributes[0].value")
}

func (s *MetadataTestSuite) TestBadImageUri() {
	metadata := validMetadata()
	metadata.Image = "not a url"
	s.requireInvalid(metadata, "image")

	metadata.Image = "https://example.com/" + strings.Repeat("x", 200)
	s.requireInvalid(metadata, "image")
}

func (s *MetadataTestSuite) TestTooManyFiles() {
	metadata := validMetadata()
	metadata.Properties.Files = make([]File, 11)
	for i := range metadata.Properties.Files {
		metadata.Properties.Files[i] = File{Uri: "https://example.com/f", Type: "image/png"}
	}
	s.requireInvalid(metadata, "properties.files")
}

func (s *MetadataTestSuite) TestUnsupportedFileType() {
	metadata := validMetadata()
	metadata.Properties.Files[0].Type = "video/mp4"
	s.requireInvalid(metadata, "properties.files[0].type")
}

func (s *MetadataTestSuite) TestBadCategory() {
	metadata := validMetadata()
	metadata.Properties.Category = "video"
	s.requireInvalid(metadata, "properties.category")
}

func (s *MetadataTestSuite) TestTokenMetadata() {
	metadata := validTokenMetadata()
	require.Nil(s.T(), metadata.Validate())

	metadata.Symbol = ""
	err := metadata.Validate()
	require.NotNil(s.T(), err)

	var validation *ValidationError
	require.ErrorAs(s.T(), err, &validation)
	require.Equal(s.T(), "symbol", validation.Field)
}

func (s *MetadataTestSuite) requireInvalid(metadata *Metadata, field string) {
	err := metadata.Validate()
	require.NotNil(s.T(), err)

	var validation *ValidationError
	require.ErrorAs(s.T(), err, &validation)
	require.Equal(s.T(), field, validation.Field)
}
