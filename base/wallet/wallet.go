package wallet

import (
	"crypto/ed25519"
	"crypto/rand"
	"errors"

	"github.com/btcsuite/btcutil/base58"

	"github.com/auton-labs/goapi/domain"
)

var ErrInvalidSecret = errors.New("secret key must be 32 or 64 bytes base58")

// Wallet holds one ed25519 keypair. The secret never leaves the
// struct, callers only get signatures and the public address.
type Wallet struct {
	priv    ed25519.PrivateKey
	address domain.Address
}

// NewFromBase58 loads a keypair from its base58 secret, accepting
// either a 32 byte seed or a full 64 byte private key
func NewFromBase58(secret string) (*Wallet, error) {
	raw := base58.Decode(secret)
	var priv ed25519.PrivateKey
	switch len(raw) {
	case ed25519.SeedSize:
		priv = ed25519.NewKeyFromSeed(raw)
	case ed25519.PrivateKeySize:
		priv = ed25519.PrivateKey(raw)
	default:
		return nil, ErrInvalidSecret
	}
	pub := priv.Public().(ed25519.PublicKey)
	return &Wallet{
		priv:    priv,
		address: domain.Address(base58.Encode(pub)),
	}, nil
}

// Generate makes a throwaway keypair
func Generate() (*Wallet, error) {
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, err
	}
	return &Wallet{
		priv:    priv,
		address: domain.Address(base58.Encode(pub)),
	}, nil
}

func (w *Wallet) Address() domain.Address {
	return w.address
}

func (w *Wallet) PublicKey() ed25519.PublicKey {
	return w.priv.Public().(ed25519.PublicKey)
}

func (w *Wallet) Sign(message []byte) []byte {
	return ed25519.Sign(w.priv, message)
}

// Verify checks a detached signature made by the holder of address
func Verify(address domain.Address, message, signature []byte) error {
	pub, err := address.PublicKey()
	if err != nil {
		return err
	}
	if !ed25519.Verify(pub, message, signature) {
		return domain.ErrInvalidSignature
	}
	return nil
}
