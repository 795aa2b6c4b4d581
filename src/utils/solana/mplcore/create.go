// Minimal encoder for the Metaplex Core program, enough to mint a
// single standalone asset.
package mplcore

import (
	"bytes"
	"encoding/binary"

	"github.com/blocto/solana-go-sdk/common"
	"github.com/blocto/solana-go-sdk/types"
)

var ProgramID = common.PublicKeyFromString("CoREENxT6tW1HoK8ypY1SxRMZTcVPm7R94rH4PZNhX7d")

const instructionCreateV1 = 0

// DataState::AccountState, the asset lives in its own account
const dataStateAccountState = 0

type CreateV1Param struct {
	// Fresh keypair address that becomes the asset's identity, must sign
	Asset common.PublicKey
	// Funds the account, must sign
	Payer common.PublicKey
	// Receives the asset
	Owner common.PublicKey
	// Allowed to update the asset afterwards
	UpdateAuthority common.PublicKey
	Name            string
	URI             string
}

// CreateV1 builds the create instruction with no collection, no plugins and
// no external adapters. Optional accounts the program expects are filled
// with the program's own id, its convention for "absent".
func CreateV1(param CreateV1Param) types.Instruction {
	data := new(bytes.Buffer)
	data.WriteByte(instructionCreateV1)
	data.WriteByte(dataStateAccountState)
	writeBorshString(data, param.Name)
	writeBorshString(data, param.URI)
	data.WriteByte(0) // Option::None for plugins
	data.WriteByte(0) // Option::None for external plugin adapters

	return types.Instruction{
		ProgramID: ProgramID,
		Accounts: []types.AccountMeta{
			{PubKey: param.Asset, IsSigner: true, IsWritable: true},
			{PubKey: ProgramID, IsSigner: false, IsWritable: false}, // collection
			{PubKey: ProgramID, IsSigner: false, IsWritable: false}, // authority
			{PubKey: param.Payer, IsSigner: true, IsWritable: true},
			{PubKey: param.Owner, IsSigner: false, IsWritable: false},
			{PubKey: param.UpdateAuthority, IsSigner: false, IsWritable: false},
			{PubKey: common.SystemProgramID, IsSigner: false, IsWritable: false},
			{PubKey: ProgramID, IsSigner: false, IsWritable: false}, // log wrapper
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
