// Instruction builders for the token extensions program. The upstream SDK
// only targets the legacy token program, so the byte layouts are produced
// here by hand, matching the program's unpack rules.
package token2022

import (
	"bytes"
	"encoding/binary"

	"github.com/blocto/solana-go-sdk/common"
	"github.com/blocto/solana-go-sdk/types"
)

var (
	// Token extensions program
	ProgramID = common.PublicKeyFromString("TokenzQdBNbLqP5VEhdkAS6EPFLC1PHnBqCXEpPxuEb")
)

// Token program instruction codes used here
const (
	instructionInitializeMint           = 0
	instructionSetAuthority             = 6
	instructionMintToChecked            = 14
	instructionMetadataPointerExtension = 39
)

// Sub-instruction of the metadata pointer extension
const metadataPointerInitialize = 0

type AuthorityType uint8

const (
	AuthorityTypeMintTokens AuthorityType = iota
	AuthorityTypeFreezeAccount
	AuthorityTypeAccountOwner
	AuthorityTypeCloseAccount
)

type InitializeMintParam struct {
	Mint     common.PublicKey
	Decimals uint8
	MintAuth common.PublicKey
	// Nil leaves the mint permanently unfreezable
	FreezeAuth *common.PublicKey
}

func InitializeMint(param InitializeMintParam) types.Instruction {
	data := new(bytes.Buffer)
	data.WriteByte(instructionInitializeMint)
	data.WriteByte(param.Decimals)
	data.Write(param.MintAuth.Bytes())
	writeOptionalPubkey(data, param.FreezeAuth)

	return types.Instruction{
		ProgramID: ProgramID,
		Accounts: []types.AccountMeta{
			{PubKey: param.Mint, IsSigner: false, IsWritable: true},
			{PubKey: common.SysVarRentPubkey, IsSigner: false, IsWritable: false},
		},
		Data: data.Bytes(),
	}
}

type InitializeMetadataPointerParam struct {
	Mint common.PublicKey
	// Authority allowed to repoint the metadata address, zero value for none
	Authority common.PublicKey
	// Account holding the metadata, here always the mint itself
	MetadataAddress common.PublicKey
}

func InitializeMetadataPointer(param InitializeMetadataPointerParam) types.Instruction {
	data := new(bytes.Buffer)
	data.WriteByte(instructionMetadataPointerExtension)
	data.WriteByte(metadataPointerInitialize)
	data.Write(param.Authority.Bytes())
	data.Write(param.MetadataAddress.Bytes())

	return types.Instruction{
		ProgramID: ProgramID,
		Accounts: []types.AccountMeta{
			{PubKey: param.Mint, IsSigner: false, IsWritable: true},
		},
		Data: data.Bytes(),
	}
}

type MintToCheckedParam struct {
	Mint     common.PublicKey
	To       common.PublicKey
	Auth     common.PublicKey
	Amount   uint64
	Decimals uint8
}

// MintToChecked fails on chain unless Decimals matches the mint, protecting
// against a mismatch between initialization and minting.
func MintToChecked(param MintToCheckedParam) types.Instruction {
	data := make([]byte, 10)
	data[0] = instructionMintToChecked
	binary.LittleEndian.PutUint64(data[1:9], param.Amount)
	data[9] = param.Decimals

	return types.Instruction{
		ProgramID: ProgramID,
		Accounts: []types.AccountMeta{
			{PubKey: param.Mint, IsSigner: false, IsWritable: true},
			{PubKey: param.To, IsSigner: false, IsWritable: true},
			{PubKey: param.Auth, IsSigner: true, IsWritable: false},
		},
		Data: data,
	}
}

type SetAuthorityParam struct {
	Account common.PublicKey
	Type    AuthorityType
	Auth    common.PublicKey
	// Nil revokes the authority permanently
	NewAuth *common.PublicKey
}

func SetAuthority(param SetAuthorityParam) types.Instruction {
	data := new(bytes.Buffer)
	data.WriteByte(instructionSetAuthority)
	data.WriteByte(byte(param.Type))
	writeOptionalPubkey(data, param.NewAuth)

	return types.Instruction{
		ProgramID: ProgramID,
		Accounts: []types.AccountMeta{
			{PubKey: param.Account, IsSigner: false, IsWritable: true},
			{PubKey: param.Auth, IsSigner: true, IsWritable: false},
		},
		Data: data.Bytes(),
	}
}

// FindAssociatedTokenAddress derives the canonical holding account for the
// owner and mint under the token extensions program.
func FindAssociatedTokenAddress(owner, mint common.PublicKey) (common.PublicKey, error) {
	address, _, err := common.FindProgramAddress(
		[][]byte{
			owner.Bytes(),
			ProgramID.Bytes(),
			mint.Bytes(),
		},
		common.SPLAssociatedTokenAccountProgramID,
	)
	return address, err
}

type CreateAssociatedTokenAccountParam struct {
	Funder                 common.PublicKey
	Owner                  common.PublicKey
	Mint                   common.PublicKey
	AssociatedTokenAccount common.PublicKey
}

func CreateAssociatedTokenAccount(param CreateAssociatedTokenAccountParam) types.Instruction {
	return types.Instruction{
		ProgramID: common.SPLAssociatedTokenAccountProgramID,
		Accounts: []types.AccountMeta{
			{PubKey: param.Funder, IsSigner: true, IsWritable: true},
			{PubKey: param.AssociatedTokenAccount, IsSigner: false, IsWritable: true},
			{PubKey: param.Owner, IsSigner: false, IsWritable: false},
			{PubKey: param.Mint, IsSigner: false, IsWritable: false},
			{PubKey: common.SystemProgramID, IsSigner: false, IsWritable: false},
			{PubKey: ProgramID, IsSigner: false, IsWritable: false},
		},
		Data: []byte{},
	}
}

// COption<Pubkey> layout: tag byte, then the key only when present
func writeOptionalPubkey(out *bytes.Buffer, key *common.PublicKey) {
	if key == nil {
		out.WriteByte(0)
		return
	}
	out.WriteByte(1)
	out.Write(key.Bytes())
}
