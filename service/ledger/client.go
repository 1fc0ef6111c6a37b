package ledger

import (
	"context"
	"encoding/base64"
	"time"

	"github.com/ethereum/go-ethereum/rpc"

	bCtx "github.com/auton-labs/goapi/base/ctx"
	"github.com/auton-labs/goapi/base/metrics"
	"github.com/auton-labs/goapi/domain"
)

type impl struct {
	network domain.Network
	rpc     *rpc.Client
	timeout time.Duration
	tokens  chan int
	met     metrics.Service
}

// NewClient dials the node and caps in flight calls at cfg.Throttle
func NewClient(c bCtx.Ctx, cfg *ClientCfg) (domain.LedgerClientRepo, error) {
	client, err := rpc.DialContext(c, cfg.Url)
	if err != nil {
		c.WithField("err", err).Error("rpc.DialContext failed")
		return nil, err
	}

	throttle := cfg.Throttle
	if throttle <= 0 {
		throttle = defaultThrottle
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	tokens := make(chan int, throttle)
	for i := 0; i < throttle; i++ {
		tokens <- i + 1
	}

	return &impl{
		network: cfg.Network,
		rpc:     client,
		timeout: timeout,
		tokens:  tokens,
		met:     metrics.New("ledger"),
	}, nil
}

func (c *impl) GetTransaction(ctx context.Context, signature domain.TxSignature) (*domain.TransactionDetail, error) {
	token := c.before(ctx)
	defer c.after(token)
	defer c.met.BumpTime("gettransaction.latency").End()

	callCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var detail *domain.TransactionDetail
	opts := getTransactionOpts{Encoding: "jsonParsed", Commitment: CommitmentConfirmed}
	if err := c.rpc.CallContext(callCtx, &detail, "getTransaction", signature, opts); err != nil {
		c.met.BumpSum("gettransaction.err", 1)
		return nil, err
	}
	if detail == nil {
		// submitted moments ago or simply nonexistent, the caller
		// cannot tell yet
		return nil, domain.ErrNotFound
	}
	return detail, nil
}

func (c *impl) GetBalance(ctx context.Context, address domain.Address) (int64, error) {
	token := c.before(ctx)
	defer c.after(token)
	defer c.met.BumpTime("getbalance.latency").End()

	callCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var res balanceResult
	if err := c.rpc.CallContext(callCtx, &res, "getBalance", address); err != nil {
		c.met.BumpSum("getbalance.err", 1)
		return 0, err
	}
	return res.Value, nil
}

func (c *impl) GetSignaturesForAddress(ctx context.Context, address domain.Address, limit int) ([]domain.SignatureInfo, error) {
	token := c.before(ctx)
	defer c.after(token)
	defer c.met.BumpTime("getsignaturesforaddress.latency").End()

	callCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var infos []domain.SignatureInfo
	opts := signaturesForAddressOpts{Limit: limit, Commitment: CommitmentConfirmed}
	if err := c.rpc.CallContext(callCtx, &infos, "getSignaturesForAddress", address, opts); err != nil {
		c.met.BumpSum("getsignaturesforaddress.err", 1)
		return nil, err
	}
	return infos, nil
}

func (c *impl) SendRawTransaction(ctx context.Context, raw []byte) (domain.TxSignature, error) {
	token := c.before(ctx)
	defer c.after(token)
	defer c.met.BumpTime("sendrawtransaction.latency").End()

	callCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var signature domain.TxSignature
	encoded := base64.StdEncoding.EncodeToString(raw)
	if err := c.rpc.CallContext(callCtx, &signature, "sendTransaction", encoded, sendTransactionOpts{Encoding: "base64"}); err != nil {
		c.met.BumpSum("sendrawtransaction.err", 1)
		return "", err
	}
	return signature, nil
}

func (c *impl) ConfirmTransaction(ctx context.Context, signature domain.TxSignature) (domain.TxStatus, error) {
	token := c.before(ctx)
	defer c.after(token)
	defer c.met.BumpTime("confirmtransaction.latency").End()

	callCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var res signatureStatusesResult
	sigs := []domain.TxSignature{signature}
	opts := signatureStatusesOpts{SearchTransactionHistory: true}
	if err := c.rpc.CallContext(callCtx, &res, "getSignatureStatuses", sigs, opts); err != nil {
		c.met.BumpSum("confirmtransaction.err", 1)
		return domain.TxStatusUnknown, err
	}
	if len(res.Value) == 0 || res.Value[0] == nil {
		return domain.TxStatusUnknown, domain.ErrNotFound
	}
	switch res.Value[0].ConfirmationStatus {
	case "processed":
		return domain.TxStatusProcessed, nil
	case "confirmed":
		return domain.TxStatusConfirmed, nil
	case "finalized":
		return domain.TxStatusFinalized, nil
	}
	return domain.TxStatusUnknown, nil
}

func (c *impl) before(ctx context.Context) int {
	select {
	case <-ctx.Done():
		return 0
	case token := <-c.tokens:
		return token
	}
}

func (c *impl) after(token int) {
	if token != 0 {
		c.tokens <- token
	}
}
