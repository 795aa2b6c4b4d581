package mint

import (
	"encoding/json"

	"github.com/blocto/solana-go-sdk/client"
	"github.com/blocto/solana-go-sdk/types"

	"github.com/mintforge/minter/src/utils/config"
	"github.com/mintforge/minter/src/utils/irys"
)

type Network string

const (
	NetworkDevnet  Network = "devnet"
	NetworkMainnet Network = "mainnet"
)

func ParseNetwork(s string) (Network, error) {
	switch s {
	case "", string(NetworkDevnet):
		return NetworkDevnet, nil
	case string(NetworkMainnet):
		return NetworkMainnet, nil
	default:
		return "", ErrUnknownNetwork
	}
}

// One of the two parallel operating environments. Built once at startup,
// read-only afterwards, shared by all requests without locking.
type NetworkContext struct {
	Network Network

	RPC            *client.Client
	Uploader       *irys.Client
	UploaderSigner irys.Signer

	// Process-wide fee payer. Secret key material lives here and in the
	// signer only, never in logs or responses.
	FeePayer types.Account
}

func newNetworkContext(network Network, rpcURL, irysURL string, irysConfig *config.Irys, feePayer types.Account) (self *NetworkContext, err error) {
	signer, err := irys.NewSolanaSigner(feePayer.PrivateKey)
	if err != nil {
		return
	}

	self = &NetworkContext{
		Network:        network,
		RPC:            client.NewClient(rpcURL),
		Uploader:       irys.NewClient(irysConfig, irysURL),
		UploaderSigner: signer,
		FeePayer:       feePayer,
	}
	return
}

// parseWalletKey decodes the 64 byte secret from its JSON array form, the
// format solana-keygen writes.
func parseWalletKey(raw string) (out types.Account, err error) {
	var bytes []int
	err = json.Unmarshal([]byte(raw), &bytes)
	if err != nil || len(bytes) != 64 {
		err = ErrBadWalletKey
		return
	}

	buf := make([]byte, len(bytes))
	for i, b := range bytes {
		if b < 0 || b > 255 {
			err = ErrBadWalletKey
			return
		}
		buf[i] = byte(b)
	}

	return types.AccountFromBytes(buf)
}
