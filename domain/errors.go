package domain

import "errors"

var (
	// ErrInternalServerError will throw if any the Internal Server Error happen
	ErrInternalServerError = errors.New("Internal Server Error")
	// ErrNotFound will throw if the requested item is not exists
	ErrNotFound = errors.New("Your requested Item is not found")
	// ErrConflict will throw if the current action already exists
	ErrConflict = errors.New("Your Item already exist")
	// ErrBadParamInput will throw if the given request-body or params is not valid
	ErrBadParamInput = errors.New("Given Param is not valid")

	// request error
	ErrInvalidAddress   = errors.New("Invalid address")
	ErrInvalidSignature = errors.New("Invalid signature")

	ErrUnsupportedSchema = errors.New("Unsupported schema")

	ErrInvalidAmount  = errors.New("invalid amount")
	ErrInvalidFeeRate = errors.New("invalid fee rate")
	ErrUnknownAsset   = errors.New("unknown asset")

	ErrInvalidUsername = errors.New("invalid username")
	ErrUsernameTaken   = errors.New("username already taken")

	// ErrPriceLocked will throw when patching price or asset of published content
	ErrPriceLocked      = errors.New("price is locked after publishing")
	ErrContentNotActive = errors.New("content is not active")

	ErrIntentExpired  = errors.New("payment intent expired")
	ErrIntentConsumed = errors.New("payment intent already confirmed")
	// ErrTxAlreadyUsed will throw when a ledger signature was spent on another intent
	ErrTxAlreadyUsed   = errors.New("transaction signature already used")
	ErrPaymentRejected = errors.New("payment rejected")
	// ErrTxNotFound will throw when a transaction stays invisible past the
	// retry budget. Retryable, the ledger may still be catching up.
	ErrTxNotFound = errors.New("transaction not found")

	ErrTokenMalformed = errors.New("malformed access token")
	ErrTokenExpired   = errors.New("access token expired")
	ErrTokenSignature = errors.New("access token signature mismatch")

	ErrAlreadySponsored  = errors.New("wallet already sponsored")
	ErrNotEligible       = errors.New("wallet not eligible for sponsorship")
	ErrLedgerUnavailable = errors.New("ledger unavailable")
	ErrInvalidFeePayer   = errors.New("fee payer is not the vault wallet")
	ErrNonceConsumed     = errors.New("transaction nonce already consumed")

	ErrDecryptionFailed = errors.New("decryption failed")
)
