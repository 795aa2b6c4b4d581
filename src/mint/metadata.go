package mint

import (
	"fmt"
	"net/url"
)

const (
	maxNameLength        = 32
	maxDescriptionLength = 2000
	maxUriLength         = 200
	maxAttributes        = 10
	maxAttributeLength   = 64
	maxFiles             = 10
)

// MIME types accepted inside the files list
var allowedFileTypes = map[string]bool{
	"image/png":  true,
	"image/jpeg": true,
	"image/jpg":  true,
	"image/gif":  true,
	"image/webp": true,
}

type Attribute struct {
	TraitType string `json:"trait_type"`
	Value     string `json:"value"`
}

type File struct {
	Uri  string `json:"uri"`
	Type string `json:"type"`
	Cdn  *bool  `json:"cdn,omitempty"`
}

type Properties struct {
	Files    []File `json:"files"`
	Category string `json:"category"`
}

// Off-chain document describing a collectible. Uploaded verbatim once
// validated, then discarded.
type Metadata struct {
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Image       string      `json:"image"`
	ExternalUrl string      `json:"external_url,omitempty"`
	Attributes  []Attribute `json:"attributes"`
	Properties  Properties  `json:"properties"`
}

// Off-chain document describing a fungible token. The symbol additionally
// ends up in the mint account's embedded metadata.
type TokenMetadata struct {
	Name        string      `json:"name"`
	Symbol      string      `json:"symbol"`
	Description string      `json:"description"`
	Image       string      `json:"image"`
	Attributes  []Attribute `json:"attributes"`
}

func validateUri(field, value string) error {
	if len(value) > maxUriLength {
		return invalid(field, fmt.Sprintf("longer than %d characters", maxUriLength))
	}
	parsed, err := url.ParseRequestURI(value)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return invalid(field, "not a valid URL")
	}
	return nil
}

func validateAttributes(attributes []Attribute) error {
	if len(attributes) > maxAttributes {
		return invalid("attributes", fmt.Sprintf("more than %d entries", maxAttributes))
	}
	for i, attribute := range attributes {
		if len(attribute.TraitType) > maxAttributeLength {
			return invalid(fmt.Sprintf("attributes[%d].trait_type", i), fmt.Sprintf("longer than %d characters", maxAttributeLength))
		}
		if len(attribute.Value) > maxAttributeLength {
			return invalid(fmt.Sprintf("attributes[%d].value", i), fmt.Sprintf("longer than %d characters", maxAttributeLength))
		}
	}
	return nil
}

func (self *Metadata) Validate() error {
	if len(self.Name) > maxNameLength {
		return invalid("name", fmt.Sprintf("longer than %d characters", maxNameLength))
	}
	if len(self.Description) > maxDescriptionLength {
		return invalid("description", fmt.Sprintf("longer than %d characters", maxDescriptionLength))
	}
	err := validateUri("image", self.Image)
	if err != nil {
		return err
	}
	if self.ExternalUrl != "" {
		err = validateUri("external_url", self.ExternalUrl)
		if err != nil {
			return err
		}
	}
	err = validateAttributes(self.Attributes)
	if err != nil {
		return err
	}

	if len(self.Properties.Files) > maxFiles {
		return invalid("properties.files", fmt.Sprintf("more than %d entries", maxFiles))
	}
	for i, file := range self.Properties.Files {
		err = validateUri(fmt.Sprintf("properties.files[%d].uri", i), file.Uri)
		if err != nil {
			return err
		}
		if !allowedFileTypes[file.Type] {
			return invalid(fmt.Sprintf("properties.files[%d].type", i), "unsupported MIME type")
		}
	}
	if self.Properties.Category != "image" {
		return invalid("properties.category", `must be "image"`)
	}

	return nil
}

func (self *TokenMetadata) Validate() error {
	if len(self.Name) > maxNameLength {
		return invalid("name", fmt.Sprintf("longer than %d characters", maxNameLength))
	}
	if len(self.Symbol) < 1 {
		return invalid("symbol", "must not be empty")
	}
	if len(self.Description) > maxDescriptionLength {
		return invalid("description", fmt.Sprintf("longer than %d characters", maxDescriptionLength))
	}
	err := validateUri("image", self.Image)
	if err != nil {
		return err
	}
	return validateAttributes(self.Attributes)
}
