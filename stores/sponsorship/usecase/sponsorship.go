package usecase

import (
	"fmt"
	"hash/fnv"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/xerrors"

	"github.com/auton-labs/goapi/base/backoff"
	"github.com/auton-labs/goapi/base/ctx"
	"github.com/auton-labs/goapi/base/goroutine"
	"github.com/auton-labs/goapi/base/log"
	"github.com/auton-labs/goapi/base/wallet"
	"github.com/auton-labs/goapi/domain"
	"github.com/auton-labs/goapi/domain/creator"
	"github.com/auton-labs/goapi/domain/keys"
	"github.com/auton-labs/goapi/domain/sponsorship"
	"github.com/auton-labs/goapi/domain/vault"
	"github.com/auton-labs/goapi/service/ledger"
	"github.com/auton-labs/goapi/service/notifier"
	"github.com/auton-labs/goapi/service/redis"
)

const (
	// maxLamports is the per-wallet ceiling the on-chain program
	// enforces, configured grants above it are clamped
	maxLamports = 10000000

	defaultLamports     = 1000000
	defaultDustLamports = 5000
	defaultMessageTtl   = 5 * time.Minute

	defaultConfirmAttempts = 3
	defaultConfirmInterval = 2 * time.Second

	defaultMaxPerIp      = 3
	defaultMinAccountAge = 24 * time.Hour

	lockStripes = 64
)

type SponsorshipUseCaseCfg struct {
	Repo        sponsorship.Repo
	CreatorRepo creator.Repo
	Ledger      domain.LedgerClientRepo
	Redis       redis.Service
	VaultUC     vault.UseCase
	Notifier    notifier.Service
	Vault       *wallet.Wallet
	Network     domain.Network

	// Lamports is the fee subsidy granted per sponsored wallet
	Lamports        int64
	DustLamports    int64
	MessageTtl      time.Duration
	ConfirmAttempts int
	ConfirmInterval time.Duration

	// MaxPerIp and MinAccountAge feed the suspicion heuristics
	MaxPerIp      int
	MinAccountAge time.Duration
}

type impl struct {
	repo        sponsorship.Repo
	creatorRepo creator.Repo
	ledger      domain.LedgerClientRepo
	redis       redis.Service
	vault       vault.UseCase
	notifier    notifier.Service
	vaultWallet *wallet.Wallet
	network     domain.Network

	lamports        int64
	dustLamports    int64
	messageTtl      time.Duration
	confirmAttempts int
	confirmInterval time.Duration
	maxPerIp        int
	minAccountAge   time.Duration

	// check-then-record for one address must not interleave, striped
	// so the table never grows with the address space
	locks [lockStripes]sync.Mutex
}

// New creates sponsorship usecase
func New(cfg *SponsorshipUseCaseCfg) sponsorship.Usecase {
	lamports := cfg.Lamports
	if lamports <= 0 {
		lamports = defaultLamports
	}
	if lamports > maxLamports {
		lamports = maxLamports
	}
	dust := cfg.DustLamports
	if dust <= 0 {
		dust = defaultDustLamports
	}
	messageTtl := cfg.MessageTtl
	if messageTtl <= 0 {
		messageTtl = defaultMessageTtl
	}
	confirmAttempts := cfg.ConfirmAttempts
	if confirmAttempts <= 0 {
		confirmAttempts = defaultConfirmAttempts
	}
	confirmInterval := cfg.ConfirmInterval
	if confirmInterval <= 0 {
		confirmInterval = defaultConfirmInterval
	}
	maxPerIp := cfg.MaxPerIp
	if maxPerIp <= 0 {
		maxPerIp = defaultMaxPerIp
	}
	minAccountAge := cfg.MinAccountAge
	if minAccountAge <= 0 {
		minAccountAge = defaultMinAccountAge
	}
	return &impl{
		repo:            cfg.Repo,
		creatorRepo:     cfg.CreatorRepo,
		ledger:          cfg.Ledger,
		redis:           cfg.Redis,
		vault:           cfg.VaultUC,
		notifier:        cfg.Notifier,
		vaultWallet:     cfg.Vault,
		network:         cfg.Network,
		lamports:        lamports,
		dustLamports:    dust,
		messageTtl:      messageTtl,
		confirmAttempts: confirmAttempts,
		confirmInterval: confirmInterval,
		maxPerIp:        maxPerIp,
		minAccountAge:   minAccountAge,
	}
}

func (im *impl) CheckEligibility(c ctx.Ctx, address domain.Address) (*sponsorship.CheckResult, error) {
	c = ctx.WithValue(c, "address", address)
	return im.checkEligibility(c, address)
}

// checkEligibility walks the gates in order. A ledger read that fails
// answers ineligible, never eligible.
func (im *impl) checkEligibility(c ctx.Ctx, address domain.Address) (*sponsorship.CheckResult, error) {
	if _, err := im.repo.FindOne(c, address); err == nil {
		return &sponsorship.CheckResult{Reason: sponsorship.ReasonAlreadySponsored}, nil
	} else if err != domain.ErrNotFound {
		return nil, err
	}

	sigs, err := im.ledger.GetSignaturesForAddress(c, address, 1)
	if err != nil {
		c.WithField("err", err).Warn("ledger.GetSignaturesForAddress failed")
		return &sponsorship.CheckResult{Reason: sponsorship.ReasonLedgerUnavailable}, nil
	}
	if len(sigs) > 0 {
		return &sponsorship.CheckResult{Reason: sponsorship.ReasonHasHistory}, nil
	}

	balance, err := im.ledger.GetBalance(c, address)
	if err != nil {
		c.WithField("err", err).Warn("ledger.GetBalance failed")
		return &sponsorship.CheckResult{Reason: sponsorship.ReasonLedgerUnavailable}, nil
	}
	if balance > im.dustLamports {
		return &sponsorship.CheckResult{Reason: sponsorship.ReasonHasBalance}, nil
	}

	return &sponsorship.CheckResult{Eligible: true}, nil
}

func (im *impl) Prepare(c ctx.Ctx, address domain.Address, instructions []domain.Instruction) (*sponsorship.Prepared, error) {
	c = ctx.WithValue(c, "address", address)

	if len(instructions) == 0 {
		return nil, domain.ErrBadParamInput
	}

	res, err := im.checkEligibility(c, address)
	if err != nil {
		return nil, err
	}
	if !res.Eligible {
		return nil, xerrors.Errorf("%s: %w", res.Reason, domain.ErrNotEligible)
	}

	nonce := uuid.NewString()
	msg := &ledger.Message{
		Network:      im.network,
		Nonce:        nonce,
		FeePayer:     im.vaultWallet.Address(),
		Instructions: instructions,
	}
	encoded, err := msg.EncodeBase64()
	if err != nil {
		c.WithField("err", err).Error("message encode failed")
		return nil, err
	}

	// the nonce pins the address and the exact message bytes, submit
	// refuses to co-sign anything the server did not assemble
	key := keys.RedisKey(keys.PfxNonce, nonce)
	if err := im.redis.SetNX(c, key, []byte(nonceValue(address, encoded)), im.messageTtl); err != nil {
		c.WithField("err", err).Error("redis.SetNX failed")
		return nil, err
	}

	c.Info("prepared sponsored transaction")

	return &sponsorship.Prepared{
		Message:   encoded,
		Nonce:     nonce,
		ExpiresAt: time.Now().Add(im.messageTtl).Unix(),
	}, nil
}

func (im *impl) Submit(c ctx.Ctx, address domain.Address, signedTransaction string, clientIp string) (*sponsorship.Submitted, error) {
	c = ctx.WithValues(c, map[string]interface{}{
		"address":  address,
		"clientIp": clientIp,
	})

	txn, err := ledger.DecodeTransaction(signedTransaction)
	if err != nil {
		c.WithField("err", err).Warn("transaction decode failed")
		return nil, domain.ErrBadParamInput
	}

	lock := im.lock(address)
	lock.Lock()
	defer lock.Unlock()

	res, err := im.checkEligibility(c, address)
	if err != nil {
		return nil, err
	}
	if !res.Eligible {
		if res.Reason == sponsorship.ReasonAlreadySponsored {
			return nil, domain.ErrAlreadySponsored
		}
		return nil, xerrors.Errorf("%s: %w", res.Reason, domain.ErrNotEligible)
	}

	if !txn.Message.FeePayer.Equals(im.vaultWallet.Address()) {
		return nil, domain.ErrInvalidFeePayer
	}

	if err := im.consumeNonce(c, address, &txn.Message); err != nil {
		return nil, err
	}

	if !txn.SignedBy(address) {
		return nil, domain.ErrInvalidSignature
	}
	if err := txn.VerifySignatures(); err != nil {
		return nil, err
	}

	// two-party co-sign, the vault signature lands next to the user's
	if err := txn.Sign(im.vaultWallet); err != nil {
		c.WithField("err", err).Error("vault sign failed")
		return nil, err
	}

	raw, err := txn.Encode()
	if err != nil {
		c.WithField("err", err).Error("transaction encode failed")
		return nil, err
	}

	signature, err := im.ledger.SendRawTransaction(c, raw)
	if err != nil {
		c.WithField("err", err).Error("ledger.SendRawTransaction failed")
		return nil, domain.ErrLedgerUnavailable
	}
	c = ctx.WithValue(c, "txSignature", signature)

	im.awaitConfirmation(c, signature)

	record := &sponsorship.Sponsorship{
		Address:     address,
		TxSignature: signature,
		Lamports:    im.lamports,
		ClientIp:    clientIp,
		CreatedAt:   time.Now(),
	}
	record.SuspicionHints = im.scoreSuspicion(c, address, clientIp)
	record.Suspicious = len(record.SuspicionHints) > 0

	if err := im.repo.Insert(c, record); err != nil {
		if err == domain.ErrConflict {
			return nil, domain.ErrAlreadySponsored
		}
		return nil, err
	}

	if err := im.vault.RecordSponsorship(c, im.lamports); err != nil {
		c.WithField("err", err).Warn("vault.RecordSponsorship failed")
	}

	notifyCtx := ctx.WithValues(ctx.Background(), map[string]interface{}{
		"address":     address,
		"txSignature": signature,
	})
	evt := notifier.SponsorshipEvent{
		Address:     address,
		Lamports:    im.lamports,
		TxSignature: string(signature),
	}
	suspicious := record.Suspicious
	hints := record.SuspicionHints
	goroutine.RecoverableGo(func() {
		im.notifier.NotifyWalletSponsored(notifyCtx, evt)
		if suspicious {
			im.notifier.NotifySuspiciousRequest(notifyCtx, notifier.SuspicionEvent{
				Address:  address,
				ClientIp: clientIp,
				Hints:    hints,
			})
		}
	})

	c.WithField("suspicious", record.Suspicious).Info("sponsored wallet")

	return &sponsorship.Submitted{
		TxSignature: signature,
		Lamports:    im.lamports,
	}, nil
}

func (im *impl) FindFlagged(c ctx.Ctx, offset int32, limit int32) ([]*sponsorship.Sponsorship, error) {
	records, err := im.repo.FindAll(c,
		sponsorship.WithSuspicious(true),
		sponsorship.WithPagination(offset, limit),
	)
	if err != nil {
		c.WithField("err", err).Error("repo.FindAll failed")
		return nil, err
	}
	return records, nil
}

func (im *impl) lock(address domain.Address) *sync.Mutex {
	h := fnv.New32a()
	h.Write([]byte(address))
	return &im.locks[h.Sum32()%lockStripes]
}

// consumeNonce burns the single-use nonce. The stored value must match
// the submitting address and the received message bytes, a mismatch
// leaves the nonce alone so the rightful owner can still spend it.
func (im *impl) consumeNonce(c ctx.Ctx, address domain.Address, msg *ledger.Message) error {
	if msg.Nonce == "" {
		return domain.ErrBadParamInput
	}

	encoded, err := msg.EncodeBase64()
	if err != nil {
		c.WithField("err", err).Error("message encode failed")
		return err
	}

	key := keys.RedisKey(keys.PfxNonce, msg.Nonce)
	stored, err := im.redis.Get(c, key)
	if err == redis.ErrNotFound {
		return domain.ErrNonceConsumed
	} else if err != nil {
		c.WithField("err", err).Error("redis.Get failed")
		return err
	}

	if string(stored) != nonceValue(address, encoded) {
		c.Warn("nonce does not match the prepared message")
		return domain.ErrBadParamInput
	}

	if _, err := im.redis.Del(c, key); err != nil {
		c.WithField("err", err).Error("redis.Del failed")
		return err
	}
	return nil
}

func nonceValue(address domain.Address, encodedMessage string) string {
	return keys.CustomKey(":", address.String(), keys.MD5(encodedMessage))
}

// awaitConfirmation polls the signature status with a bounded budget.
// The node already accepted the send, a still-pending status only logs.
func (im *impl) awaitConfirmation(c ctx.Ctx, signature domain.TxSignature) {
	b := backoff.NewLinear(im.confirmInterval, 0)

	for attempt := 1; ; attempt++ {
		status, err := im.ledger.ConfirmTransaction(c, signature)
		if err == nil && status != domain.TxStatusUnknown {
			return
		}
		if err != nil && err != domain.ErrNotFound {
			c.WithFields(log.Fields{
				"attempt": attempt,
				"err":     err,
			}).Warn("ledger.ConfirmTransaction failed")
		}

		if attempt >= im.confirmAttempts {
			c.WithField("attempts", attempt).Warn("confirmation still pending")
			return
		}

		if err := b.Backoff(c); err != nil {
			return
		}
	}
}

func (im *impl) scoreSuspicion(c ctx.Ctx, address domain.Address, clientIp string) []string {
	var hints []string

	if clientIp != "" {
		count, err := im.repo.Count(c, sponsorship.WithClientIp(clientIp))
		if err != nil {
			c.WithField("err", err).Warn("sponsorship count by ip failed")
		} else if count >= im.maxPerIp {
			hints = append(hints, fmt.Sprintf("%d sponsorships from %s", count, clientIp))
		}
	}

	acct, err := im.creatorRepo.Get(c, address)
	if err != nil && err != domain.ErrNotFound {
		c.WithField("err", err).Warn("creator lookup failed")
	} else if err == nil && time.Since(acct.CreatedAt) < im.minAccountAge {
		hints = append(hints, fmt.Sprintf("account younger than %s", im.minAccountAge))
	}

	return hints
}
