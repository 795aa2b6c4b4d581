package solana

import (
	"testing"

	"github.com/blocto/solana-go-sdk/common"
	"github.com/blocto/solana-go-sdk/types"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

func TestTransactionTestSuite(t *testing.T) {
	suite.Run(t, new(TransactionTestSuite))
}

type TransactionTestSuite struct {
	suite.Suite

	feePayer  types.Account
	recipient types.Account
	program   common.PublicKey
	blockhash Blockhash
}

func (s *TransactionTestSuite) SetupSuite() {
	s.feePayer = types.NewAccount()
	s.recipient = types.NewAccount()
	s.program = common.PublicKeyFromString("TokenzQdBNbLqP5VEhdkAS6EPFLC1PHnBqCXEpPxuEb")
	for i := range s.blockhash {
		s.blockhash[i] = byte(i)
	}
}

func (s *TransactionTestSuite) instructions() []types.Instruction {
	readonly := types.NewAccount().PublicKey
	return []types.Instruction{
		{
			ProgramID: s.program,
			Accounts: []types.AccountMeta{
				{PubKey: s.recipient.PublicKey, IsSigner: true, IsWritable: true},
				{PubKey: s.feePayer.PublicKey, IsSigner: false, IsWritable: true},
				{PubKey: readonly, IsSigner: false, IsWritable: false},
			},
			Data: []byte{1, 2, 3},
		},
		{
			ProgramID: s.program,
			Accounts: []types.AccountMeta{
				{PubKey: readonly, IsSigner: false, IsWritable: false},
			},
			Data: []byte{4},
		},
	}
}

func (s *TransactionTestSuite) TestAccountOrdering() {
	message, err := CompileMessage(MessageVersionV0, s.feePayer.PublicKey, s.blockhash, s.instructions())
	require.Nil(s.T(), err)

	// Fee payer first, then the other writable signer
	require.Equal(s.T(), s.feePayer.PublicKey, message.AccountKeys[0])
	require.Equal(s.T(), s.recipient.PublicKey, message.AccountKeys[1])

	// Both signers are writable, the program is a readonly non-signer
	require.EqualValues(s.T(), 2, message.Header.NumRequiredSignatures)
	require.EqualValues(s.T(), 0, message.Header.NumReadonlySigned)
	require.EqualValues(s.T(), 2, message.Header.NumReadonlyUnsigned)
}

func (s *TransactionTestSuite) TestSigners() {
	message, err := CompileMessage(MessageVersionV0, s.feePayer.PublicKey, s.blockhash, s.instructions())
	require.Nil(s.T(), err)

	signers := message.Signers()
	require.Len(s.T(), signers, 2)
	require.Contains(s.T(), signers, s.feePayer.PublicKey)
	require.Contains(s.T(), signers, s.recipient.PublicKey)
}

func (s *TransactionTestSuite) TestFlagMerging() {
	// The same key appears readonly in one instruction and writable signer
	// in another, the merged flags must win
	key := types.NewAccount().PublicKey
	instructions := []types.Instruction{
		{
			ProgramID: s.program,
			Accounts:  []types.AccountMeta{{PubKey: key, IsSigner: false, IsWritable: false}},
			Data:      []byte{1},
		},
		{
			ProgramID: s.program,
			Accounts:  []types.AccountMeta{{PubKey: key, IsSigner: true, IsWritable: true}},
			Data:      []byte{2},
		},
	}

	message, err := CompileMessage(MessageVersionLegacy, s.feePayer.PublicKey, s.blockhash, instructions)
	require.Nil(s.T(), err)
	require.Contains(s.T(), message.Signers(), key)
}

func (s *TransactionTestSuite) TestRoundTrip() {
	for _, version := range []MessageVersion{MessageVersionLegacy, MessageVersionV0} {
		message, err := CompileMessage(version, s.feePayer.PublicKey, s.blockhash, s.instructions())
		require.Nil(s.T(), err)

		transaction := NewTransaction(message)
		err = transaction.PartialSign(s.feePayer)
		require.Nil(s.T(), err)

		decoded, err := DeserializeTransaction(transaction.Serialize())
		require.Nil(s.T(), err)
		require.Equal(s.T(), version, decoded.Message.Version)
		require.Equal(s.T(), transaction.Signatures, decoded.Signatures)

		// Instruction lists match: program, accounts, argument bytes
		original, err := message.Decompile()
		require.Nil(s.T(), err)
		recovered, err := decoded.Message.Decompile()
		require.Nil(s.T(), err)
		require.Equal(s.T(), original, recovered)
	}
}

func (s *TransactionTestSuite) TestPartialSign() {
	message, err := CompileMessage(MessageVersionV0, s.feePayer.PublicKey, s.blockhash, s.instructions())
	require.Nil(s.T(), err)

	transaction := NewTransaction(message)
	err = transaction.PartialSign(s.feePayer)
	require.Nil(s.T(), err)

	// The fee payer slot is filled, the recipient slot stays zeroed
	require.True(s.T(), transaction.SignedBy(0))
	require.False(s.T(), transaction.SignedBy(1))
}

func (s *TransactionTestSuite) TestSignerNotRequired() {
	message, err := CompileMessage(MessageVersionV0, s.feePayer.PublicKey, s.blockhash, s.instructions())
	require.Nil(s.T(), err)

	transaction := NewTransaction(message)
	err = transaction.PartialSign(types.NewAccount())
	require.ErrorIs(s.T(), err, ErrSignerNotRequired)
}

func (s *TransactionTestSuite) TestBlockhashFromBase58() {
	decoded, err := BlockhashFromBase58(s.blockhash.ToBase58())
	require.Nil(s.T(), err)
	require.Equal(s.T(), s.blockhash, decoded)

	_, err = BlockhashFromBase58("not-a-blockhash")
	require.ErrorIs(s.T(), err, ErrBadBlockhash)
}
