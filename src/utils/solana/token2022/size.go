package token2022

// Account layout constants. Sizes are exact, underestimating them makes the
// create-account instruction fail on chain, not locally.
const (
	// Legacy mint layout
	MintSize = 82

	// Token account layout, extensions are appended after this offset
	accountSize = 165

	// One byte discriminating mints from token accounts once extensions are in play
	accountTypeSize = 1

	// TLV entry header
	TypeSize   = 2
	LengthSize = 2

	// Metadata pointer extension body: authority + metadata address
	metadataPointerSize = 64
)

type ExtensionType uint16

const (
	ExtensionMetadataPointer ExtensionType = 18
)

func extensionSize(extension ExtensionType) int {
	switch extension {
	case ExtensionMetadataPointer:
		return metadataPointerSize
	default:
		return 0
	}
}

// MintLen returns the allocation size for a mint carrying the given fixed
// size extensions. Variable length extensions (the metadata itself) are
// excluded: the program reallocates for those at initialization, the rent
// however must be paid for the final size up front.
func MintLen(extensions []ExtensionType) uint64 {
	if len(extensions) == 0 {
		return MintSize
	}
	size := accountSize + accountTypeSize
	for _, extension := range extensions {
		size += TypeSize + LengthSize + extensionSize(extension)
	}
	return uint64(size)
}

// MetadataLen is the TLV entry size the packed metadata will occupy,
// excluding the type and length header.
func MetadataLen(metadata *Metadata) uint64 {
	return uint64(len(metadata.Pack()))
}
