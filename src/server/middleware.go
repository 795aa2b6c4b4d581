package server

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mr-tron/base58"

	"github.com/mintforge/minter/src/mint"
	. "github.com/mintforge/minter/src/utils/logger"
)

const (
	contextNetwork   = "network"
	contextPublicKey = "public_key"
)

var (
	errPublicKeyRequired = errors.New("public key is required")
	errPublicKeyInvalid  = errors.New("public key is invalid")
)

// Bounded handling time for every request, network calls included
func (self *Server) onRequestTimeout(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), self.Config.Server.RequestTimeout)
	defer cancel()

	c.Request = c.Request.WithContext(ctx)
	c.Next()
}

// Network selector, anything but an explicit "mainnet" means devnet
func (self *Server) onNetwork(c *gin.Context) {
	network := mint.NetworkDevnet
	if c.Query("network") == string(mint.NetworkMainnet) {
		network = mint.NetworkMainnet
	}
	c.Set(contextNetwork, network)
	c.Next()
}

// Caller identity guard: a well formed ledger address in the public-key
// header. The builder trusts the key once it passes here.
func (self *Server) onPublicKeyGuard(c *gin.Context) {
	key := c.GetHeader("public-key")
	if key == "" {
		LOGE(c, errPublicKeyRequired, http.StatusUnauthorized).Debug("Missing public key header")
		return
	}

	decoded, err := base58.Decode(key)
	if err != nil || len(decoded) != 32 {
		LOGE(c, errPublicKeyInvalid, http.StatusUnauthorized).Debug("Malformed public key header")
		return
	}

	c.Set(contextPublicKey, key)
	c.Next()
}

func (self *Server) network(c *gin.Context) mint.Network {
	return c.MustGet(contextNetwork).(mint.Network)
}

func (self *Server) publicKey(c *gin.Context) string {
	return c.MustGet(contextPublicKey).(string)
}
