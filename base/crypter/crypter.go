package crypter

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"io"
)

var (
	ErrInvalidKeyLength = errors.New("key must be 32 bytes")
	ErrDecryptionFailed = errors.New("decryption failed")
)

// Crypter seals and opens short strings with AES-256-GCM. The sealed
// form is base64(nonce || ciphertext || tag), so each output carries
// its own nonce and integrity tag.
type Crypter struct {
	aead cipher.AEAD
}

func New(key []byte) (*Crypter, error) {
	if len(key) != 32 {
		return nil, ErrInvalidKeyLength
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}
	return &Crypter{aead: aead}, nil
}

func (c *Crypter) Encrypt(plaintext string) (string, error) {
	nonce := make([]byte, c.aead.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", err
	}
	sealed := c.aead.Seal(nonce, nonce, []byte(plaintext), nil)
	return base64.StdEncoding.EncodeToString(sealed), nil
}

// Decrypt never returns partial output. Any malformed, truncated or
// tampered input yields ErrDecryptionFailed.
func (c *Crypter) Decrypt(sealed string) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(sealed)
	if err != nil {
		return "", ErrDecryptionFailed
	}
	if len(raw) < c.aead.NonceSize() {
		return "", ErrDecryptionFailed
	}
	nonce, ciphertext := raw[:c.aead.NonceSize()], raw[c.aead.NonceSize():]
	plaintext, err := c.aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return "", ErrDecryptionFailed
	}
	return string(plaintext), nil
}
