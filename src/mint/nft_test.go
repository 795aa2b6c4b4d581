package mint

import (
	"encoding/binary"
	"testing"

	"github.com/blocto/solana-go-sdk/common"
	"github.com/blocto/solana-go-sdk/types"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/mintforge/minter/src/utils/solana"
	"github.com/mintforge/minter/src/utils/solana/mplcore"
)

func TestNftAssemblyTestSuite(t *testing.T) {
	suite.Run(t, new(NftAssemblyTestSuite))
}

type NftAssemblyTestSuite struct {
	suite.Suite

	netCtx    *NetworkContext
	recipient types.Account
	asset     types.Account
}

func (s *NftAssemblyTestSuite) SetupSuite() {
	s.recipient = types.NewAccount()
	s.asset = types.NewAccount()
	s.netCtx = &NetworkContext{
		Network:  NetworkDevnet,
		FeePayer: types.NewAccount(),
	}
}

func (s *NftAssemblyTestSuite) instructions() []types.Instruction {
	return AssembleNftInstructions(s.netCtx, s.recipient.PublicKey, s.asset.PublicKey, "Example", "https://gateway.irys.xyz/meta")
}

func (s *NftAssemblyTestSuite) TestSequence() {
	instructions := s.instructions()
	require.Len(s.T(), instructions, 2)
	require.Equal(s.T(), mplcore.ProgramID, instructions[0].ProgramID)

	// Ends with exactly one native transfer naming the recipient as signer
	transfer := instructions[1]
	require.Equal(s.T(), common.SystemProgramID, transfer.ProgramID)
	require.Equal(s.T(), s.recipient.PublicKey, transfer.Accounts[0].PubKey)
	require.True(s.T(), transfer.Accounts[0].IsSigner)
	require.Equal(s.T(), s.netCtx.FeePayer.PublicKey, transfer.Accounts[1].PubKey)
	require.EqualValues(s.T(), 50_000_000, binary.LittleEndian.Uint64(transfer.Data[4:12]))
}

func (s *NftAssemblyTestSuite) TestCreateAccounts() {
	create := s.instructions()[0]

	require.Equal(s.T(), s.asset.PublicKey, create.Accounts[0].PubKey)
	require.True(s.T(), create.Accounts[0].IsSigner)
	require.Equal(s.T(), s.netCtx.FeePayer.PublicKey, create.Accounts[3].PubKey)
	require.True(s.T(), create.Accounts[3].IsSigner)
	require.Equal(s.T(), s.recipient.PublicKey, create.Accounts[4].PubKey)
	require.Equal(s.T(), s.recipient.PublicKey, create.Accounts[5].PubKey)
}

func (s *NftAssemblyTestSuite) TestPartialSigning() {
	var blockhash solana.Blockhash
	for i := range blockhash {
		blockhash[i] = byte(i)
	}

	message, err := solana.CompileMessage(solana.MessageVersionV0, s.netCtx.FeePayer.PublicKey, blockhash, s.instructions())
	require.Nil(s.T(), err)

	// The recipient must sign eventually, the service never signs for it
	require.Contains(s.T(), message.Signers(), s.recipient.PublicKey)

	transaction := solana.NewTransaction(message)
	err = transaction.PartialSign(s.asset, s.netCtx.FeePayer)
	require.Nil(s.T(), err)

	signed := 0
	for slot, signer := range message.Signers() {
		if transaction.SignedBy(slot) {
			signed++
			require.NotEqual(s.T(), s.recipient.PublicKey, signer)
		}
	}
	require.Equal(s.T(), 2, signed)
}
