package service

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"strings"
)

// sealedPrefix versions the stored format so the key can be rotated later.
const sealedPrefix = "v1."

var errSealedFormat = errors.New("sealed recipient has unknown format")

// AESRecipientCipher implements ports.RecipientCipher using AES-256-GCM.
type AESRecipientCipher struct {
	aead cipher.AEAD
}

// NewAESRecipientCipher creates a cipher from a 64-character hex key.
func NewAESRecipientCipher(hexKey string) (*AESRecipientCipher, error) {
	key, err := hex.DecodeString(hexKey)
	if err != nil {
		return nil, fmt.Errorf("decoding AES key: %w", err)
	}
	if len(key) != 32 {
		return nil, fmt.Errorf("AES key must be 32 bytes, got %d", len(key))
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("creating cipher: %w", err)
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("creating GCM: %w", err)
	}
	return &AESRecipientCipher{aead: aead}, nil
}

// Seal encrypts the normalized address with semanticKey as associated data.
// Output: "v1." + base64url(nonce || ciphertext).
func (c *AESRecipientCipher) Seal(recipient string, semanticKey string) (string, error) {
	nonce := make([]byte, c.aead.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("generating nonce: %w", err)
	}

	out := c.aead.Seal(nonce, nonce, []byte(normalizeRecipient(recipient)), []byte(semanticKey))
	return sealedPrefix + base64.RawURLEncoding.EncodeToString(out), nil
}

// Open reverses Seal. It fails when semanticKey differs from the one sealed with.
func (c *AESRecipientCipher) Open(sealed string, semanticKey string) (string, error) {
	encoded, ok := strings.CutPrefix(sealed, sealedPrefix)
	if !ok {
		return "", errSealedFormat
	}
	raw, err := base64.RawURLEncoding.DecodeString(encoded)
	if err != nil {
		return "", fmt.Errorf("decoding sealed recipient: %w", err)
	}

	nonceSize := c.aead.NonceSize()
	if len(raw) < nonceSize+c.aead.Overhead() {
		return "", fmt.Errorf("sealed recipient too short")
	}

	plaintext, err := c.aead.Open(nil, raw[:nonceSize], raw[nonceSize:], []byte(semanticKey))
	if err != nil {
		return "", fmt.Errorf("opening sealed recipient: %w", err)
	}
	return string(plaintext), nil
}

func normalizeRecipient(addr string) string {
	return strings.ToLower(strings.TrimSpace(addr))
}
