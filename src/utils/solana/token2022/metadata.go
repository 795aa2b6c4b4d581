package token2022

import (
	"bytes"
	"crypto/sha256"
	"encoding/binary"

	"github.com/blocto/solana-go-sdk/common"
	"github.com/blocto/solana-go-sdk/types"
)

// The token metadata interface identifies its instructions by the first 8
// bytes of the hash of a namespaced name instead of a plain code.
func metadataDiscriminator(name string) []byte {
	sum := sha256.Sum256([]byte("spl_token_metadata_interface:" + name))
	return sum[:8]
}

// Metadata embedded directly in the mint account via the metadata pointer
// extension. AdditionalMetadata is carried for sizing but always left empty
// by this service.
type Metadata struct {
	UpdateAuthority    common.PublicKey
	Mint               common.PublicKey
	Name               string
	Symbol             string
	URI                string
	AdditionalMetadata [][2]string
}

// Pack serializes the metadata exactly as the on-chain program stores it
// inside the TLV entry: two keys, three length-prefixed strings and the
// additional metadata vector.
func (self *Metadata) Pack() []byte {
	out := new(bytes.Buffer)
	out.Write(self.UpdateAuthority.Bytes())
	out.Write(self.Mint.Bytes())
	writeBorshString(out, self.Name)
	writeBorshString(out, self.Symbol)
	writeBorshString(out, self.URI)

	count := make([]byte, 4)
	binary.LittleEndian.PutUint32(count, uint32(len(self.AdditionalMetadata)))
	out.Write(count)
	for _, pair := range self.AdditionalMetadata {
		writeBorshString(out, pair[0])
		writeBorshString(out, pair[1])
	}

	return out.Bytes()
}

type InitializeMetadataParam struct {
	// Account holding the metadata, the mint itself with a self pointer
	Metadata        common.PublicKey
	UpdateAuthority common.PublicKey
	Mint            common.PublicKey
	MintAuthority   common.PublicKey
	Name            string
	Symbol          string
	URI             string
}

// InitializeMetadata must run after InitializeMint: it writes into space
// reserved at account creation and checks the live mint authority.
func InitializeMetadata(param InitializeMetadataParam) types.Instruction {
	data := new(bytes.Buffer)
	data.Write(metadataDiscriminator("initialize_account"))
	writeBorshString(data, param.Name)
	writeBorshString(data, param.Symbol)
	writeBorshString(data, param.URI)

	return types.Instruction{
		ProgramID: ProgramID,
		Accounts: []types.AccountMeta{
			{PubKey: param.Metadata, IsSigner: false, IsWritable: true},
			{PubKey: param.UpdateAuthority, IsSigner: false, IsWritable: false},
			{PubKey: param.Mint, IsSigner: false, IsWritable: false},
			{PubKey: param.MintAuthority, IsSigner: true, IsWritable: false},
		},
		Data: data.Bytes(),
	}
}

type UpdateMetadataAuthorityParam struct {
	Metadata common.PublicKey
	Auth     common.PublicKey
	// Nil revokes the update authority permanently
	NewAuth *common.PublicKey
}

func UpdateMetadataAuthority(param UpdateMetadataAuthorityParam) types.Instruction {
	data := new(bytes.Buffer)
	data.Write(metadataDiscriminator("update_the_authority"))
	// OptionalNonZeroPubkey: an all-zero key means none
	if param.NewAuth != nil {
		data.Write(param.NewAuth.Bytes())
	} else {
		data.Write(make([]byte, 32))
	}

	return types.Instruction{
		ProgramID: ProgramID,
		Accounts: []types.AccountMeta{
			{PubKey: param.Metadata, IsSigner: false, IsWritable: true},
			{PubKey: param.Auth, IsSigner: true, IsWritable: false},
		},
		Data: data.Bytes(),
	}
}

func writeBorshString(out *bytes.Buffer, s string) {
	length := make([]byte, 4)
	binary.LittleEndian.PutUint32(length, uint32(len(s)))
	out.Write(length)
	out.WriteString(s)
}
