package webserver

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// nonceConfirmed is the value a stored nonce is replaced with once the
// matching remark has been submitted.
const nonceConfirmed = "CONFIRMED"

// NonceStore is the challenge storage Auth needs. data.NonceStore is the
// redis-backed implementation.
type NonceStore interface {
	SetNonce(ctx context.Context, addr, nonce string) error
	GetAndDelNonce(ctx context.Context, addr string) (string, error)
	ConfirmNonce(ctx context.Context, addr string) error
}

type Auth struct {
	nonces    NonceStore
	jwtSecret []byte
}

func NewAuth(nonces NonceStore, secret []byte) Auth {
	return Auth{nonces: nonces, jwtSecret: secret}
}

func randomHex32() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return "0x" + hex.EncodeToString(b), nil
}

func (a Auth) Challenge(c *gin.Context) {
	var req struct {
		Address string `json:"address" binding:"required,min=32,max=128"`
		Method  string `json:"method"  binding:"required,oneof=walletconnect polkadotjs airgap"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"err": err.Error()})
		return
	}

	log.Printf("Auth challenge for %s from IP %s using %s", req.Address, c.ClientIP(), req.Method)

	var nonce string
	var err error
	switch req.Method {
	case "polkadotjs", "walletconnect":
		// Wallets expect raw hex data for signRaw
		nonce, err = randomHex32()
	default:
		// Air-gap remark stays human readable
		nonce = uuid.NewString()
	}

	if err != nil {
		log.Printf("Failed to create nonce: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"err": "failed to create challenge"})
		return
	}

	if err := a.nonces.SetNonce(c, req.Address, nonce); err != nil {
		log.Printf("Failed to set nonce for %s: %v", req.Address, err)
		c.JSON(http.StatusInternalServerError, gin.H{"err": "failed to create challenge"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"nonce": nonce})
}

// Remark completes an air-gap challenge. It plays the role of the on-chain
// system.remark: the caller proves it received the challenge by echoing the
// nonce back, which flips the stored entry to confirmed for Verify.
func (a Auth) Remark(c *gin.Context) {
	var req struct {
		Address string `json:"address" binding:"required,min=32,max=128"`
		Remark  string `json:"remark"  binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"err": err.Error()})
		return
	}

	nonce, err := a.nonces.GetAndDelNonce(c, req.Address)
	if err != nil || nonce != req.Remark {
		log.Printf("Remark mismatch for %s", req.Address)
		c.JSON(http.StatusUnauthorized, gin.H{"err": "unknown or expired challenge"})
		return
	}

	if err := a.nonces.ConfirmNonce(c, req.Address); err != nil {
		log.Printf("Failed to confirm nonce for %s: %v", req.Address, err)
		c.JSON(http.StatusInternalServerError, gin.H{"err": "failed to confirm challenge"})
		return
	}

	log.Printf("Airgap remark confirmed for %s", req.Address)
	c.Status(http.StatusNoContent)
}

func (a Auth) Verify(c *gin.Context) {
	var req struct {
		Address   string `json:"address"   binding:"required"`
		Method    string `json:"method"    binding:"required,oneof=walletconnect polkadotjs airgap"`
		Signature string `json:"signature"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"err": err.Error()})
		return
	}

	if !isValidAddress(req.Address) {
		c.JSON(http.StatusBadRequest, gin.H{"err": "invalid address format"})
		return
	}

	// Single-use: the nonce is consumed here no matter how verification
	// ends, so a failed or replayed attempt needs a fresh challenge.
	nonce, err := a.nonces.GetAndDelNonce(c, req.Address)
	if err != nil {
		log.Printf("Failed to get nonce for %s: %v", req.Address, err)
		c.JSON(http.StatusUnauthorized, gin.H{"err": "challenge expired or not found"})
		return
	}

	switch req.Method {
	case "airgap":
		if nonce != nonceConfirmed {
			log.Printf("Airgap remark not confirmed for %s", req.Address)
			c.JSON(http.StatusUnauthorized, gin.H{"err": "remark not confirmed"})
			return
		}
	default: // polkadotjs | walletconnect
		if err := verifySignature(req.Address, req.Signature, nonce); err != nil {
			log.Printf("Signature verification failed for %s: %v", req.Address, err)
			c.JSON(http.StatusUnauthorized, gin.H{"err": "bad signature"})
			return
		}
	}

	token, err := issueJWT(req.Address, a.jwtSecret)
	if err != nil {
		log.Printf("Failed to issue JWT for %s: %v", req.Address, err)
		c.JSON(http.StatusInternalServerError, gin.H{"err": err.Error()})
		return
	}

	log.Printf("Successfully authenticated %s", req.Address)
	c.JSON(http.StatusOK, gin.H{"token": token})
}
