package mint

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/blocto/solana-go-sdk/client"
	"github.com/blocto/solana-go-sdk/common"
	"github.com/blocto/solana-go-sdk/types"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/mintforge/minter/src/utils/solana/token2022"
)

const stubRentLamports = 2_157_600

// Stub RPC node answering the two queries the assembler issues
func newStubRPC() *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		var request struct {
			Id     any    `json:"id"`
			Method string `json:"method"`
		}
		_ = json.Unmarshal(body, &request)

		id, _ := json.Marshal(request.Id)
		w.Header().Set("Content-Type", "application/json")

		switch request.Method {
		case "getMinimumBalanceForRentExemption":
			fmt.Fprintf(w, `{"jsonrpc":"2.0","result":%d,"id":%s}`, stubRentLamports, id)
		case "getLatestBlockhash":
			fmt.Fprintf(w, `{"jsonrpc":"2.0","result":{"context":{"slot":100},"value":{"blockhash":"9sHcv6xwn9YkB8nxTUGKDwPwNnmqVp5oLubtWziThBdP","lastValidBlockHeight":3090}},"id":%s}`, id)
		default:
			fmt.Fprintf(w, `{"jsonrpc":"2.0","error":{"code":-32601,"message":"method not found"},"id":%s}`, id)
		}
	}))
}

func TestTokenAssemblyTestSuite(t *testing.T) {
	suite.Run(t, new(TokenAssemblyTestSuite))
}

type TokenAssemblyTestSuite struct {
	suite.Suite

	rpc       *httptest.Server
	netCtx    *NetworkContext
	recipient types.Account
	mint      types.Account
}

func (s *TokenAssemblyTestSuite) SetupSuite() {
	s.rpc = newStubRPC()
	s.recipient = types.NewAccount()
	s.mint = types.NewAccount()
	s.netCtx = &NetworkContext{
		Network:  NetworkDevnet,
		RPC:      client.NewClient(s.rpc.URL),
		FeePayer: types.NewAccount(),
	}
}

func (s *TokenAssemblyTestSuite) TearDownSuite() {
	s.rpc.Close()
}

func (s *TokenAssemblyTestSuite) assemble(request *TokenRequest) []types.Instruction {
	instructions, err := AssembleTokenInstructions(context.Background(), s.netCtx, s.recipient.PublicKey, s.mint.PublicKey, request, "https://gateway.irys.xyz/meta")
	require.Nil(s.T(), err)
	return instructions
}

func (s *TokenAssemblyTestSuite) TestBaseSequence() {
	instructions := s.assemble(validTokenRequest())
	require.Len(s.T(), instructions, 7)

	// Fee transfer, create account, then the token program takes over
	require.Equal(s.T(), common.SystemProgramID, instructions[0].ProgramID)
	require.Equal(s.T(), common.SystemProgramID, instructions[1].ProgramID)
	require.Equal(s.T(), token2022.ProgramID, instructions[2].ProgramID)
	require.Equal(s.T(), token2022.ProgramID, instructions[3].ProgramID)
	require.Equal(s.T(), token2022.ProgramID, instructions[4].ProgramID)
	require.Equal(s.T(), common.SPLAssociatedTokenAccountProgramID, instructions[5].ProgramID)
	require.Equal(s.T(), token2022.ProgramID, instructions[6].ProgramID)

	// Metadata pointer before mint init, metadata init after, mint-to last
	require.EqualValues(s.T(), 39, instructions[2].Data[0])
	require.EqualValues(s.T(), 0, instructions[3].Data[0])
	require.EqualValues(s.T(), 14, instructions[6].Data[0])
}

func (s *TokenAssemblyTestSuite) TestFeeTransfer() {
	instructions := s.assemble(validTokenRequest())
	transfer := instructions[0]

	require.Equal(s.T(), s.recipient.PublicKey, transfer.Accounts[0].PubKey)
	require.True(s.T(), transfer.Accounts[0].IsSigner)
	require.Equal(s.T(), s.netCtx.FeePayer.PublicKey, transfer.Accounts[1].PubKey)
	require.EqualValues(s.T(), 100_000_000, binary.LittleEndian.Uint64(transfer.Data[4:12]))
}

func (s *TokenAssemblyTestSuite) TestCreateAccountSizing() {
	instructions := s.assemble(validTokenRequest())
	createAccount := instructions[1]

	require.Equal(s.T(), s.netCtx.FeePayer.PublicKey, createAccount.Accounts[0].PubKey)
	require.Equal(s.T(), s.mint.PublicKey, createAccount.Accounts[1].PubKey)

	// u32 index, u64 lamports, u64 space, owner key
	require.EqualValues(s.T(), stubRentLamports, binary.LittleEndian.Uint64(createAccount.Data[4:12]))
	require.EqualValues(s.T(), 234, binary.LittleEndian.Uint64(createAccount.Data[12:20]))
	require.Equal(s.T(), token2022.ProgramID.Bytes(), createAccount.Data[20:52])
}

func (s *TokenAssemblyTestSuite) TestRevokeFlagsAppendTrailingInstructions() {
	request := validTokenRequest()
	request.RevokeMintAuthority = true
	instructions := s.assemble(request)
	require.Len(s.T(), instructions, 8)
	require.EqualValues(s.T(), 6, instructions[7].Data[0])

	request = validTokenRequest()
	request.RevokeUpdateAuthority = true
	instructions = s.assemble(request)
	require.Len(s.T(), instructions, 8)

	// Both revocations, mint authority first
	request = validTokenRequest()
	request.RevokeMintAuthority = true
	request.RevokeUpdateAuthority = true
	instructions = s.assemble(request)
	require.Len(s.T(), instructions, 9)
	require.EqualValues(s.T(), 6, instructions[7].Data[0])
	require.NotEqualValues(s.T(), 6, instructions[8].Data[0])
}

func (s *TokenAssemblyTestSuite) TestFreezeAuthority() {
	instructions := s.assemble(validTokenRequest())
	initMint := instructions[3]

	// COption tag present, freeze authority is the recipient
	require.EqualValues(s.T(), 1, initMint.Data[34])
	require.Equal(s.T(), s.recipient.PublicKey.Bytes(), initMint.Data[35:])

	request := validTokenRequest()
	request.RevokeFreezeAuthority = true
	instructions = s.assemble(request)
	initMint = instructions[3]

	require.Len(s.T(), initMint.Data, 35)
	require.EqualValues(s.T(), 0, initMint.Data[34])
}

func (s *TokenAssemblyTestSuite) TestMintAmountEncoded() {
	request := validTokenRequest()
	request.Decimals = 2
	request.Supply = 21_000_000
	instructions := s.assemble(request)

	mintTo := instructions[6]
	require.EqualValues(s.T(), 2_100_000_000, binary.LittleEndian.Uint64(mintTo.Data[1:9]))
	require.EqualValues(s.T(), 2, mintTo.Data[9])

	// Minted into the recipient's associated account under its authority
	ata, err := token2022.FindAssociatedTokenAddress(s.recipient.PublicKey, s.mint.PublicKey)
	require.Nil(s.T(), err)
	require.Equal(s.T(), ata, mintTo.Accounts[1].PubKey)
	require.Equal(s.T(), s.recipient.PublicKey, mintTo.Accounts[2].PubKey)
}

func (s *TokenAssemblyTestSuite) TestOverflowRejectedBeforeAssembly() {
	request := validTokenRequest()
	request.Supply = 0xFFFFFFFFFFFFFFFF
	_, err := AssembleTokenInstructions(context.Background(), s.netCtx, s.recipient.PublicKey, s.mint.PublicKey, request, "https://gateway.irys.xyz/meta")
	require.ErrorIs(s.T(), err, ErrMintAmountOverflow)
}
