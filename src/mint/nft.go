package mint

import (
	"github.com/blocto/solana-go-sdk/common"
	"github.com/blocto/solana-go-sdk/program/system"
	"github.com/blocto/solana-go-sdk/types"

	"github.com/mintforge/minter/src/utils/solana/mplcore"
)

// AssembleNftInstructions builds the collectible issuance sequence: the
// create instruction for the fresh asset identity, then the flat fee
// transfer from the recipient. The transfer names the recipient as a
// required signer, which is exactly what keeps the transaction incomplete
// until the client adds its signature.
func AssembleNftInstructions(netCtx *NetworkContext, recipient, asset common.PublicKey, name, metadataURI string) []types.Instruction {
	return []types.Instruction{
		mplcore.CreateV1(mplcore.CreateV1Param{
			Asset:           asset,
			Payer:           netCtx.FeePayer.PublicKey,
			Owner:           recipient,
			UpdateAuthority: recipient,
			Name:            name,
			URI:             metadataURI,
		}),
		system.Transfer(system.TransferParam{
			From:   recipient,
			To:     netCtx.FeePayer.PublicKey,
			Amount: FeeNftLamports,
		}),
	}
}
