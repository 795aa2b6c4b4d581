package mint

import (
	"context"
	"encoding/json"

	"github.com/blocto/solana-go-sdk/common"
	"github.com/blocto/solana-go-sdk/types"
	"github.com/sirupsen/logrus"

	"github.com/mintforge/minter/src/utils/config"
	"github.com/mintforge/minter/src/utils/irys"
	"github.com/mintforge/minter/src/utils/logger"
	"github.com/mintforge/minter/src/utils/monitor"
	"github.com/mintforge/minter/src/utils/solana"
)

// Service builds partially signed issuance transactions. Immutable after
// construction, safe for concurrent use.
type Service struct {
	log     *logrus.Entry
	monitor *monitor.Monitor

	devnet  *NetworkContext
	mainnet *NetworkContext
}

func NewService(config *config.Config) (self *Service, err error) {
	feePayer, err := parseWalletKey(config.Solana.WalletPrivateKey)
	if err != nil {
		return
	}

	self = new(Service)
	self.log = logger.NewSublogger("mint")

	self.devnet, err = newNetworkContext(NetworkDevnet, config.Solana.DevnetRPCURL, config.Irys.DevnetURL, &config.Irys, feePayer)
	if err != nil {
		return
	}

	self.mainnet, err = newNetworkContext(NetworkMainnet, config.Solana.MainnetRPCURL, config.Irys.MainnetURL, &config.Irys, feePayer)
	if err != nil {
		return
	}

	self.monitor = monitor.NewMonitor().WithMaxHistorySize(30)
	return
}

func (self *Service) WithMonitor(monitor *monitor.Monitor) *Service {
	self.monitor = monitor
	return self
}

// Context resolves the environment serving one request. Never mixed within
// a request, callers pass the returned value around.
func (self *Service) Context(network Network) *NetworkContext {
	if network == NetworkMainnet {
		return self.mainnet
	}
	return self.devnet
}

// Quote the upload cost and log it. Telemetry only: a failed quote never
// fails the issuance that triggered it.
func (self *Service) logUploadPrice(ctx context.Context, netCtx *NetworkContext, numBytes int, kind string) {
	price, err := netCtx.Uploader.GetPrice(ctx, numBytes)
	if err != nil {
		self.monitor.Report.Errors.PriceQuoteErrors.Add(1)
		self.log.WithError(err).WithField("kind", kind).Warn("Failed to quote upload price")
		return
	}

	self.monitor.Report.QuotedUploadsTotal.Add(1)
	self.log.Infof("%g SOL to upload %s", float64(price)/1e9, kind)
}

func (self *Service) upload(ctx context.Context, netCtx *NetworkContext, data []byte, tags irys.Tags) (uri string, err error) {
	item := &irys.BundleItem{
		Tags: tags,
		Data: data,
	}

	response, err := netCtx.Uploader.Upload(ctx, netCtx.UploaderSigner, item)
	if err != nil {
		return
	}

	self.monitor.Report.UploadedBytes.Add(uint64(len(data)))
	return netCtx.Uploader.URI(response.Id), nil
}

func (self *Service) uploadJson(ctx context.Context, netCtx *NetworkContext, document any) (uri string, err error) {
	data, err := json.Marshal(document)
	if err != nil {
		return
	}

	self.logUploadPrice(ctx, netCtx, len(data), "metadata")

	uri, err = self.upload(ctx, netCtx, data, irys.Tags{
		{Name: "Content-Type", Value: "application/json"},
	})
	if err != nil {
		self.monitor.Report.Errors.MetadataUploadErrors.Add(1)
	}
	return
}

// UploadImage persists the blob and returns its gateway address. Size and
// MIME policy are enforced by the server before this call.
func (self *Service) UploadImage(ctx context.Context, network Network, data []byte, filename, contentType string) (uri string, err error) {
	netCtx := self.Context(network)

	tags := irys.Tags{
		{Name: "Content-Type", Value: contentType},
	}
	if filename != "" {
		tags = append(tags, irys.Tag{Name: "File-Name", Value: filename})
	}

	self.logUploadPrice(ctx, netCtx, len(data), "image")

	uri, err = self.upload(ctx, netCtx, data, tags)
	if err != nil {
		self.monitor.Report.Errors.ImageUploadErrors.Add(1)
		self.log.WithError(err).Error("Error uploading to Irys")
		return
	}

	self.monitor.Report.ImagesUploaded.Add(1)
	return
}

// CreateToken uploads the token metadata, assembles the issuance sequence
// and returns a serialized transaction signed by the fee payer and the
// fresh mint key. The recipient completes and submits it.
func (self *Service) CreateToken(ctx context.Context, recipient string, request *TokenRequest, network Network) (tx string, err error) {
	netCtx := self.Context(network)

	recipientKey := common.PublicKeyFromString(recipient)

	metadataURI, err := self.uploadJson(ctx, netCtx, &request.Metadata)
	if err != nil {
		return
	}

	mintAccount := types.NewAccount()

	instructions, err := AssembleTokenInstructions(ctx, netCtx, recipientKey, mintAccount.PublicKey, request, metadataURI)
	if err != nil {
		self.monitor.Report.Errors.RpcErrors.Add(1)
		return
	}

	tx, err = self.compose(ctx, netCtx, instructions, netCtx.FeePayer, mintAccount)
	if err != nil {
		return
	}

	self.monitor.Report.TokensAssembled.Add(1)
	return
}

// CreateNft uploads the collectible metadata, generates the asset identity
// and returns a serialized transaction signed by the asset key and the fee
// payer. The recipient's signature for the fee transfer is deliberately
// absent.
func (self *Service) CreateNft(ctx context.Context, recipient string, metadata *Metadata, network Network) (tx, assetId string, err error) {
	netCtx := self.Context(network)

	recipientKey := common.PublicKeyFromString(recipient)

	metadataURI, err := self.uploadJson(ctx, netCtx, metadata)
	if err != nil {
		return
	}

	asset := types.NewAccount()

	instructions := AssembleNftInstructions(netCtx, recipientKey, asset.PublicKey, metadata.Name, metadataURI)

	tx, err = self.compose(ctx, netCtx, instructions, asset, netCtx.FeePayer)
	if err != nil {
		return
	}

	self.monitor.Report.NftsAssembled.Add(1)
	return tx, asset.PublicKey.ToBase58(), nil
}

// compose binds the instructions to a fresh blockhash, fetched live because
// anchors expire, and attaches the given signatures.
func (self *Service) compose(ctx context.Context, netCtx *NetworkContext, instructions []types.Instruction, signers ...types.Account) (tx string, err error) {
	latest, err := netCtx.RPC.GetLatestBlockhash(ctx)
	if err != nil {
		self.monitor.Report.Errors.RpcErrors.Add(1)
		return
	}

	blockhash, err := solana.BlockhashFromBase58(latest.Blockhash)
	if err != nil {
		self.monitor.Report.Errors.RpcErrors.Add(1)
		return
	}

	message, err := solana.CompileMessage(solana.MessageVersionV0, netCtx.FeePayer.PublicKey, blockhash, instructions)
	if err != nil {
		self.monitor.Report.Errors.SigningErrors.Add(1)
		return
	}

	transaction := solana.NewTransaction(message)
	err = transaction.PartialSign(signers...)
	if err != nil {
		self.monitor.Report.Errors.SigningErrors.Add(1)
		return
	}

	return transaction.Base64(), nil
}
