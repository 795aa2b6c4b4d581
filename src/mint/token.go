package mint

import (
	"context"

	"github.com/blocto/solana-go-sdk/common"
	"github.com/blocto/solana-go-sdk/program/system"
	"github.com/blocto/solana-go-sdk/types"

	"github.com/mintforge/minter/src/utils/solana/token2022"
)

const (
	// Flat issuance fees paid by the recipient to the fee payer, in lamports
	FeeTokenLamports = 100_000_000 // 0.1 SOL
	FeeNftLamports   = 50_000_000  // 0.05 SOL
)

// AssembleTokenInstructions builds the fixed, non-reorderable instruction
// sequence for a fungible token issuance. Every instruction consumes state
// its predecessor created within the same transaction, the two revocations
// go last because a revoked authority cannot be exercised afterwards.
func AssembleTokenInstructions(ctx context.Context, netCtx *NetworkContext, recipient, mint common.PublicKey, request *TokenRequest, metadataURI string) (out []types.Instruction, err error) {
	mintAmount, err := request.MintAmount()
	if err != nil {
		return
	}

	// The recipient holds every authority; freeze is dropped up front when
	// requested, the others are revoked by trailing instructions.
	mintAuthority := recipient
	updateAuthority := recipient
	var freezeAuthority *common.PublicKey
	if !request.RevokeFreezeAuthority {
		freezeAuthority = &recipient
	}

	onChainMetadata := token2022.Metadata{
		UpdateAuthority: updateAuthority,
		Mint:            mint,
		Name:            request.Metadata.Name,
		Symbol:          request.Metadata.Symbol,
		URI:             metadataURI,
	}

	// Rent covers the final account size including the metadata TLV entry
	// the program reallocates for, the allocation itself is the mint with
	// its fixed size extensions only.
	mintAccountSize := token2022.MintLen([]token2022.ExtensionType{token2022.ExtensionMetadataPointer})
	metadataSize := token2022.TypeSize + token2022.LengthSize + token2022.MetadataLen(&onChainMetadata)

	rent, err := netCtx.RPC.GetMinimumBalanceForRentExemption(ctx, mintAccountSize+metadataSize)
	if err != nil {
		return
	}

	ata, err := token2022.FindAssociatedTokenAddress(recipient, mint)
	if err != nil {
		return
	}

	out = []types.Instruction{
		system.Transfer(system.TransferParam{
			From:   recipient,
			To:     netCtx.FeePayer.PublicKey,
			Amount: FeeTokenLamports,
		}),
		system.CreateAccount(system.CreateAccountParam{
			From:     netCtx.FeePayer.PublicKey,
			New:      mint,
			Owner:    token2022.ProgramID,
			Lamports: rent,
			Space:    mintAccountSize,
		}),
		token2022.InitializeMetadataPointer(token2022.InitializeMetadataPointerParam{
			Mint:            mint,
			Authority:       updateAuthority,
			MetadataAddress: mint,
		}),
		token2022.InitializeMint(token2022.InitializeMintParam{
			Mint:       mint,
			Decimals:   request.Decimals,
			MintAuth:   mintAuthority,
			FreezeAuth: freezeAuthority,
		}),
		token2022.InitializeMetadata(token2022.InitializeMetadataParam{
			Metadata:        mint,
			UpdateAuthority: updateAuthority,
			Mint:            mint,
			MintAuthority:   mintAuthority,
			Name:            onChainMetadata.Name,
			Symbol:          onChainMetadata.Symbol,
			URI:             onChainMetadata.URI,
		}),
		token2022.CreateAssociatedTokenAccount(token2022.CreateAssociatedTokenAccountParam{
			Funder:                 netCtx.FeePayer.PublicKey,
			Owner:                  recipient,
			Mint:                   mint,
			AssociatedTokenAccount: ata,
		}),
		token2022.MintToChecked(token2022.MintToCheckedParam{
			Mint:     mint,
			To:       ata,
			Auth:     mintAuthority,
			Amount:   mintAmount,
			Decimals: request.Decimals,
		}),
	}

	if request.RevokeMintAuthority {
		out = append(out, token2022.SetAuthority(token2022.SetAuthorityParam{
			Account: mint,
			Type:    token2022.AuthorityTypeMintTokens,
			Auth:    mintAuthority,
			NewAuth: nil,
		}))
	}

	if request.RevokeUpdateAuthority {
		out = append(out, token2022.UpdateMetadataAuthority(token2022.UpdateMetadataAuthorityParam{
			Metadata: mint,
			Auth:     updateAuthority,
			NewAuth:  nil,
		}))
	}

	return
}
