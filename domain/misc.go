package domain

import (
	"crypto/ed25519"

	"github.com/btcsuite/btcutil/base58"
)

type SortDir int8

const (
	SortDirAsc  = 1
	SortDirDesc = -1
)

// Network identifies the ledger cluster transactions settle on.
type Network string

const (
	NetworkMainnet Network = "mainnet-beta"
	NetworkDevnet  Network = "devnet"
	NetworkTestnet Network = "testnet"
)

// Address is a base58-encoded ed25519 public key. Base58 is case
// sensitive, so addresses compare byte for byte.
type Address string

func (a Address) String() string {
	return string(a)
}

func (a Address) IsEmpty() bool {
	return len(a) == 0
}

func (a Address) Equals(b Address) bool {
	return a == b
}

// PublicKey decodes the address into raw ed25519 key bytes.
func (a Address) PublicKey() (ed25519.PublicKey, error) {
	raw := base58.Decode(string(a))
	if len(raw) != ed25519.PublicKeySize {
		return nil, ErrInvalidAddress
	}
	return ed25519.PublicKey(raw), nil
}

func (a Address) IsValid() bool {
	_, err := a.PublicKey()
	return err == nil
}

// TxSignature is a base58-encoded ledger transaction signature.
type TxSignature string

func (s TxSignature) String() string {
	return string(s)
}

func (s TxSignature) IsEmpty() bool {
	return len(s) == 0
}

// Table is a mongo collection name
type Table string

const (
	TableCreators       Table = "creators"
	TableContents       Table = "contents"
	TableContentCounter Table = "content_counters"
	TablePaymentIntents Table = "payment_intents"
	TableAccessGrants   Table = "access_grants"
	TableSponsorships   Table = "sponsorships"
	TableVaultStats     Table = "vault_stats"
	TableAssets         Table = "assets"
)
