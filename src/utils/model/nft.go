package model

import (
	"time"

	"github.com/jackc/pgtype"
)

const (
	TableNft = "nfts"
)

type Nft struct {
	// Auto-incremented id
	ID int64 `gorm:"primaryKey" json:"id"`

	// Cluster the asset was created for
	Network string `json:"network"`

	// On-chain asset name
	Name string `json:"name"`

	// Free form description from the request
	Description pgtype.Text `json:"description"`

	// Gateway address of the uploaded metadata
	ImageUrl string `json:"image_url"`

	// Address of the Core asset account
	AssetId string `json:"asset_id"`

	// Time of the last update to this row
	UpdatedAt time.Time `json:"updated_at"`

	// Time of creation
	CreatedAt time.Time `json:"created_at"`
}

func (Nft) TableName() string {
	return TableNft
}
