package webserver

import (
	"testing"

	schnorrkel "github.com/ChainSafe/go-schnorrkel"
	"github.com/stretchr/testify/assert"
)

func TestIsValidAddress(t *testing.T) {
	tests := []struct {
		name string
		addr string
		want bool
	}{
		{"hex 32 bytes", "0xabcdefabcdefabcdefabcdefabcdefabcdefabcdefabcdefabcdefabcdefabcd", true},
		{"hex too short", "0xabcdef", false},
		{"hex bad chars", "0xzzcdefabcdefabcdefabcdefabcdefabcdefabcdefabcdefabcdefabcdefabcd", false},
		{"ss58 plausible", "5GrwvaEF5zXb26Fz9rcQpDWS57CtERHpNehXCPcNoHGKutQY", true},
		{"ss58 too short", "5Grwva", false},
		{"ss58 invalid chars", "5GrwvaEF5zXb26Fz9rcQpDWS57CtERHpNehXCPcN0HGKutQ!", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isValidAddress(tt.addr))
		})
	}
}

func TestDecodeSS58Hex(t *testing.T) {
	raw, err := decodeSS58("0x" + "00112233445566778899aabbccddeeff00112233445566778899aabbccddeeff")
	assert.NoError(t, err)
	assert.Len(t, raw, 32)

	_, err = decodeSS58("not-an-address")
	assert.Error(t, err)
}

func TestStrip0x(t *testing.T) {
	assert.Equal(t, "abcd", strip0x("0xabcd"))
	assert.Equal(t, "abcd", strip0x("abcd"))
}

func TestVerifySignatureRoundTrip(t *testing.T) {
	secret, addr := testKeypair(t)

	sig := signNonce(t, secret, "the-nonce")
	assert.NoError(t, verifySignature(addr, sig, "the-nonce"))

	// A signature over different data is rejected.
	assert.Error(t, verifySignature(addr, sig, "another-nonce"))

	// So is a signature from another key.
	var otherSeed [32]byte
	otherSeed[0] = 0x42
	mini, err := schnorrkel.NewMiniSecretKeyFromRaw(otherSeed)
	assert.NoError(t, err)
	otherSig := signNonce(t, mini.ExpandEd25519(), "the-nonce")
	assert.Error(t, verifySignature(addr, otherSig, "the-nonce"))
}
