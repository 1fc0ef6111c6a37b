// Package ledger talks json-rpc to a payment ledger node. It covers
// the handful of reads the payment verifier and sponsorship checks
// need, plus raw transaction submission for vault co-signed sends.
package ledger

import (
	"time"

	"github.com/auton-labs/goapi/domain"
)

const (
	// CommitmentConfirmed is the read level verification runs at.
	// Anything weaker can still be rolled back.
	CommitmentConfirmed = "confirmed"

	defaultTimeout  = 10 * time.Second
	defaultThrottle = 8
)

type ClientCfg struct {
	Network  domain.Network
	Url      string
	Throttle int
	Timeout  time.Duration
}

type rpcContext struct {
	Slot int64 `json:"slot"`
}

type balanceResult struct {
	Context rpcContext `json:"context"`
	Value   int64      `json:"value"`
}

type signatureStatus struct {
	Slot               int64       `json:"slot"`
	Confirmations      *int64      `json:"confirmations"`
	ConfirmationStatus string      `json:"confirmationStatus"`
	Err                interface{} `json:"err"`
}

type signatureStatusesResult struct {
	Context rpcContext         `json:"context"`
	Value   []*signatureStatus `json:"value"`
}

type getTransactionOpts struct {
	Encoding   string `json:"encoding"`
	Commitment string `json:"commitment"`
}

type signaturesForAddressOpts struct {
	Limit      int    `json:"limit"`
	Commitment string `json:"commitment"`
}

type sendTransactionOpts struct {
	Encoding string `json:"encoding"`
}

type signatureStatusesOpts struct {
	SearchTransactionHistory bool `json:"searchTransactionHistory"`
}
