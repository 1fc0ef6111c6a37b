package ledger

import (
	"encoding/base64"
	"encoding/json"

	"github.com/btcsuite/btcutil/base58"

	"github.com/auton-labs/goapi/base/wallet"
	"github.com/auton-labs/goapi/domain"
)

// Message is the signable body of a transaction. Serialization is
// canonical: both parties re-encode the decoded struct and sign or
// verify over those exact bytes.
type Message struct {
	Network      domain.Network       `json:"network"`
	Nonce        string               `json:"nonce"`
	FeePayer     domain.Address       `json:"feePayer"`
	Instructions []domain.Instruction `json:"instructions"`
}

func (m *Message) Serialize() ([]byte, error) {
	return json.Marshal(m)
}

// EncodeBase64 is the wire form handed to a signer
func (m *Message) EncodeBase64() (string, error) {
	raw, err := m.Serialize()
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(raw), nil
}

func DecodeMessageBase64(encoded string) (*Message, error) {
	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, err
	}
	msg := &Message{}
	if err := json.Unmarshal(raw, msg); err != nil {
		return nil, err
	}
	return msg, nil
}

type Signature struct {
	Pubkey    domain.Address `json:"pubkey"`
	Signature string         `json:"signature"`
}

type Transaction struct {
	Message    Message     `json:"message"`
	Signatures []Signature `json:"signatures"`
}

func NewTransaction(msg Message) *Transaction {
	return &Transaction{Message: msg}
}

// DecodeTransaction parses the base64 wire form of a transaction
func DecodeTransaction(encoded string) (*Transaction, error) {
	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, err
	}
	txn := &Transaction{}
	if err := json.Unmarshal(raw, txn); err != nil {
		return nil, err
	}
	return txn, nil
}

// Encode returns the raw bytes submitted to the node
func (t *Transaction) Encode() ([]byte, error) {
	return json.Marshal(t)
}

func (t *Transaction) EncodeBase64() (string, error) {
	raw, err := t.Encode()
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(raw), nil
}

// Sign appends the wallet's signature over the canonical message
func (t *Transaction) Sign(w *wallet.Wallet) error {
	raw, err := t.Message.Serialize()
	if err != nil {
		return err
	}
	t.Signatures = append(t.Signatures, Signature{
		Pubkey:    w.Address(),
		Signature: base58.Encode(w.Sign(raw)),
	})
	return nil
}

func (t *Transaction) SignedBy(address domain.Address) bool {
	for _, sig := range t.Signatures {
		if sig.Pubkey.Equals(address) {
			return true
		}
	}
	return false
}

// VerifySignatures checks every attached signature over the canonical
// message bytes
func (t *Transaction) VerifySignatures() error {
	if len(t.Signatures) == 0 {
		return domain.ErrInvalidSignature
	}
	raw, err := t.Message.Serialize()
	if err != nil {
		return err
	}
	for _, sig := range t.Signatures {
		if err := wallet.Verify(sig.Pubkey, raw, base58.Decode(sig.Signature)); err != nil {
			return err
		}
	}
	return nil
}
