package ledger

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/auton-labs/goapi/base/wallet"
	"github.com/auton-labs/goapi/domain"
)

func testMessage(feePayer domain.Address) Message {
	return Message{
		Network:  domain.NetworkDevnet,
		Nonce:    "b2f7a3e1",
		FeePayer: feePayer,
		Instructions: []domain.Instruction{
			{
				ProgramId: "11111111111111111111111111111111",
				Keys: []domain.AccountMeta{
					{Pubkey: "TokenkegQfeZyiNwAJbNbGKPFXCWuBvf9Ss623VQ5DA", IsSigner: true, IsWritable: true},
				},
				Data: "AgAAAAEAAAA=",
			},
		},
	}
}

func TestMessageRoundtrip(t *testing.T) {
	req := require.New(t)

	msg := testMessage("11111111111111111111111111111111")
	encoded, err := msg.EncodeBase64()
	req.NoError(err)

	decoded, err := DecodeMessageBase64(encoded)
	req.NoError(err)
	req.Equal(&msg, decoded)

	// canonical bytes survive the roundtrip
	a, err := msg.Serialize()
	req.NoError(err)
	b, err := decoded.Serialize()
	req.NoError(err)
	req.Equal(a, b)

	_, err = DecodeMessageBase64("not base64 at all!!!")
	req.Error(err)
}

func TestCoSigning(t *testing.T) {
	req := require.New(t)

	user, err := wallet.Generate()
	req.NoError(err)
	vault, err := wallet.Generate()
	req.NoError(err)

	txn := NewTransaction(testMessage(vault.Address()))
	req.NoError(txn.Sign(user))
	req.True(txn.SignedBy(user.Address()))
	req.False(txn.SignedBy(vault.Address()))
	req.NoError(txn.VerifySignatures())

	req.NoError(txn.Sign(vault))
	req.True(txn.SignedBy(vault.Address()))
	req.Len(txn.Signatures, 2)
	req.NoError(txn.VerifySignatures())

	encoded, err := txn.EncodeBase64()
	req.NoError(err)
	decoded, err := DecodeTransaction(encoded)
	req.NoError(err)
	req.NoError(decoded.VerifySignatures())
	req.Equal(txn.Message.FeePayer, decoded.Message.FeePayer)
}

func TestVerifySignaturesRejectsTampering(t *testing.T) {
	req := require.New(t)

	user, err := wallet.Generate()
	req.NoError(err)

	txn := NewTransaction(testMessage("11111111111111111111111111111111"))
	req.NoError(txn.Sign(user))

	// message changed after signing
	txn.Message.Nonce = "different"
	req.Equal(domain.ErrInvalidSignature, txn.VerifySignatures())

	// no signatures at all
	empty := NewTransaction(testMessage("11111111111111111111111111111111"))
	req.Equal(domain.ErrInvalidSignature, empty.VerifySignatures())

	// signature swapped to another key
	other, err := wallet.Generate()
	req.NoError(err)
	forged := NewTransaction(testMessage("11111111111111111111111111111111"))
	req.NoError(forged.Sign(other))
	forged.Signatures[0].Pubkey = user.Address()
	req.Equal(domain.ErrInvalidSignature, forged.VerifySignatures())
}
