package monitor

import (
	"time"

	"go.uber.org/atomic"
)

type Errors struct {
	ImageUploadErrors    atomic.Int64 `json:"image_upload"`
	MetadataUploadErrors atomic.Int64 `json:"metadata_upload"`
	PriceQuoteErrors     atomic.Int64 `json:"price_quote"`
	RpcErrors            atomic.Int64 `json:"rpc"`
	SigningErrors        atomic.Int64 `json:"signing"`
	DbNftInsert          atomic.Int64 `json:"db_nft_insert"`
}

type Report struct {
	// State
	StartTimestamp atomic.Int64  `json:"start_timestamp"`
	UpForSeconds   atomic.Uint64 `json:"up_for_seconds"`

	ImagesUploaded     atomic.Uint64 `json:"images_uploaded"`
	TokensAssembled    atomic.Uint64 `json:"tokens_assembled"`
	NftsAssembled      atomic.Uint64 `json:"nfts_assembled"`
	UploadedBytes      atomic.Uint64 `json:"uploaded_bytes"`
	QuotedUploadsTotal atomic.Uint64 `json:"quoted_uploads_total"`

	AverageTokensAssembledPerMinute atomic.Float64 `json:"average_tokens_assembled_per_minute"`
	AverageNftsAssembledPerMinute   atomic.Float64 `json:"average_nfts_assembled_per_minute"`

	Errors Errors `json:"errors"`
}

func (self *Report) Fill() {
	self.UpForSeconds.Store(uint64(time.Now().Unix() - self.StartTimestamp.Load()))
}
