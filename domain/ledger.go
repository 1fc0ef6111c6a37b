package domain

import (
	"context"
)

type TxStatus string

const (
	TxStatusUnknown   TxStatus = ""
	TxStatusProcessed TxStatus = "processed"
	TxStatusConfirmed TxStatus = "confirmed"
	TxStatusFinalized TxStatus = "finalized"
)

type AccountMeta struct {
	Pubkey     Address `json:"pubkey"`
	IsSigner   bool    `json:"isSigner"`
	IsWritable bool    `json:"isWritable"`
}

type Instruction struct {
	ProgramId Address       `json:"programId"`
	Keys      []AccountMeta `json:"keys"`
	// base64 encoded program input
	Data string `json:"data"`
}

type TokenAmount struct {
	Amount   string `json:"amount"`
	Decimals int32  `json:"decimals"`
}

type TokenBalance struct {
	AccountIndex  int         `json:"accountIndex"`
	Mint          Address     `json:"mint"`
	Owner         Address     `json:"owner"`
	UiTokenAmount TokenAmount `json:"uiTokenAmount"`
}

// TransactionMeta carries the balance snapshots recorded around one
// transaction. Pre and post balances index into the message's account
// keys.
type TransactionMeta struct {
	Err               interface{}    `json:"err"`
	Fee               int64          `json:"fee"`
	PreBalances       []int64        `json:"preBalances"`
	PostBalances      []int64        `json:"postBalances"`
	PreTokenBalances  []TokenBalance `json:"preTokenBalances"`
	PostTokenBalances []TokenBalance `json:"postTokenBalances"`
}

type TransactionMessage struct {
	AccountKeys     []Address     `json:"accountKeys"`
	Instructions    []Instruction `json:"instructions"`
	RecentBlockhash string        `json:"recentBlockhash"`
}

type TransactionContent struct {
	Signatures []TxSignature      `json:"signatures"`
	Message    TransactionMessage `json:"message"`
}

type TransactionDetail struct {
	Slot        int64               `json:"slot"`
	BlockTime   *int64              `json:"blockTime"`
	Meta        *TransactionMeta    `json:"meta"`
	Transaction *TransactionContent `json:"transaction"`
}

type SignatureInfo struct {
	Signature TxSignature `json:"signature"`
	Slot      int64       `json:"slot"`
	Err       interface{} `json:"err"`
	BlockTime *int64      `json:"blockTime"`
}

// LedgerClientRepo reads and writes the payment ledger. A transaction
// submitted moments ago may be invisible to reads for a short while,
// GetTransaction returns ErrNotFound for that case.
type LedgerClientRepo interface {
	GetTransaction(context.Context, TxSignature) (*TransactionDetail, error)
	GetBalance(context.Context, Address) (int64, error)
	GetSignaturesForAddress(context.Context, Address, int) ([]SignatureInfo, error)
	SendRawTransaction(context.Context, []byte) (TxSignature, error)
	ConfirmTransaction(context.Context, TxSignature) (TxStatus, error)
}
