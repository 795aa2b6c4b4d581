package server

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgtype"

	"github.com/mintforge/minter/src/mint"
	. "github.com/mintforge/minter/src/utils/logger"
	"github.com/mintforge/minter/src/utils/model"
	"github.com/mintforge/minter/src/utils/solana"
)

type createNftRequest struct {
	Metadata mint.Metadata `json:"metadata"`
}

type nftItem struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	ImageURL    string `json:"imageURL"`
	SolscanURL  string `json:"solscanURL"`
}

// Maps a builder failure onto the error taxonomy: bad input is the
// caller's fault, signing is internal, everything else reached the network
// and failed there.
func serviceErrorStatus(err error) int {
	var validation *mint.ValidationError
	switch {
	case errors.As(err, &validation):
		return http.StatusBadRequest
	case errors.Is(err, solana.ErrSignerNotRequired),
		errors.Is(err, solana.ErrTooManyRequiredSigners),
		errors.Is(err, solana.ErrBadBlockhash):
		return http.StatusInternalServerError
	default:
		return http.StatusBadGateway
	}
}

func (self *Server) onUploadImage(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		LOGE(c, err, http.StatusBadRequest).Debug("Missing image file")
		return
	}

	if file.Size > self.Config.Server.MaxImageSize {
		LOGE(c, fmt.Errorf("image exceeds %d bytes", self.Config.Server.MaxImageSize), http.StatusBadRequest).
			Debug("Image too large")
		return
	}

	contentType := file.Header.Get("Content-Type")
	allowed := false
	for _, mimeType := range self.Config.Server.ImageMimeTypes {
		if contentType == mimeType {
			allowed = true
			break
		}
	}
	if !allowed {
		LOGE(c, fmt.Errorf("unsupported image type %s", contentType), http.StatusBadRequest).
			Debug("Unsupported image type")
		return
	}

	reader, err := file.Open()
	if err != nil {
		LOGE(c, err, http.StatusInternalServerError).Error("Failed to open uploaded file")
		return
	}
	defer reader.Close()

	data, err := io.ReadAll(reader)
	if err != nil {
		LOGE(c, err, http.StatusInternalServerError).Error("Failed to read uploaded file")
		return
	}

	url, err := self.service.UploadImage(c.Request.Context(), self.network(c), data, file.Filename, contentType)
	if err != nil {
		LOGE(c, err, http.StatusBadGateway).Error("Failed to upload image")
		return
	}

	c.JSON(http.StatusOK, gin.H{"image_url": url})
}

func (self *Server) onCreateToken(c *gin.Context) {
	var request mint.TokenRequest
	err := c.ShouldBindJSON(&request)
	if err != nil {
		LOGE(c, err, http.StatusBadRequest).Debug("Failed to parse request")
		return
	}

	err = request.Validate()
	if err != nil {
		LOGE(c, err, http.StatusBadRequest).Debug("Invalid token request")
		return
	}

	tx, err := self.service.CreateToken(c.Request.Context(), self.publicKey(c), &request, self.network(c))
	if err != nil {
		LOGE(c, err, serviceErrorStatus(err)).Error("Failed to create token")
		return
	}

	c.JSON(http.StatusOK, gin.H{"tx": tx})
}

func (self *Server) onCreateNft(c *gin.Context) {
	var request createNftRequest
	err := c.ShouldBindJSON(&request)
	if err != nil {
		LOGE(c, err, http.StatusBadRequest).Debug("Failed to parse request")
		return
	}

	err = request.Metadata.Validate()
	if err != nil {
		LOGE(c, err, http.StatusBadRequest).Debug("Invalid NFT metadata")
		return
	}

	network := self.network(c)

	tx, assetId, err := self.service.CreateNft(c.Request.Context(), self.publicKey(c), &request.Metadata, network)
	if err != nil {
		LOGE(c, err, serviceErrorStatus(err)).Error("Failed to create NFT")
		return
	}

	// Best effort listing record. The issuance succeeded, the client can
	// still submit the transaction even if this row is lost.
	err = self.db.WithContext(c.Request.Context()).
		Create(&model.Nft{
			Network:     string(network),
			Name:        request.Metadata.Name,
			Description: pgtype.Text{String: request.Metadata.Description, Status: pgtype.Present},
			ImageUrl:    request.Metadata.Image,
			AssetId:     assetId,
		}).
		Error
	if err != nil {
		self.monitor.Report.Errors.DbNftInsert.Add(1)
		LOG(c).WithError(err).Error("Failed to record issued NFT")
	}

	c.JSON(http.StatusOK, gin.H{"tx": tx})
}

func (self *Server) onListNfts(c *gin.Context) {
	network := self.network(c)

	var nfts []*model.Nft
	err := self.db.WithContext(c.Request.Context()).
		Where("network = ?", string(network)).
		Order("created_at DESC").
		Find(&nfts).
		Error
	if err != nil {
		LOGE(c, err, http.StatusInternalServerError).Error("Failed to list NFTs")
		return
	}

	items := make([]nftItem, 0, len(nfts))
	for _, nft := range nfts {
		items = append(items, nftItem{
			Name:        nft.Name,
			Description: nft.Description.String,
			ImageURL:    nft.ImageUrl,
			SolscanURL:  fmt.Sprintf("https://solscan.io/token/%s?cluster=%s", nft.AssetId, network),
		})
	}

	c.JSON(http.StatusOK, gin.H{"items": items})
}
