package env

import (
	"os"
)

// PodName example: k8sprod-auton-api-6868d88fbd-bz8zv
func PodName() string {
	return os.Getenv("PODNAME")
}

// EnvName example: k8sprod
func EnvName() string {
	return os.Getenv("ENV_NAME")
}

// AppName example: sweeper
func AppName() string {
	return os.Getenv("APP_NAME")
}

// LogLevel overrides the default info level, accepts zap level names
func LogLevel() string {
	return os.Getenv("LOG_LEVEL")
}

// AccessSecret signs unlock tokens, HMAC key as raw bytes
func AccessSecret() string {
	return os.Getenv("AUTON_ACCESS_SECRET")
}

// ContentKey seals gated content pointers, 32 byte AES key hex encoded
func ContentKey() string {
	return os.Getenv("AUTON_CONTENT_KEY")
}

// VaultKey is the sponsorship vault keypair, base58 encoded
func VaultKey() string {
	return os.Getenv("AUTON_VAULT_KEY")
}
