package keys

import (
	"crypto/md5"
	"fmt"
	"strings"
)

const (
	// PfxHealthCheck is used for prefixing health check redis key
	PfxHealthCheck = "healthcheck"
	// PfxNonce is used for prefixing single-use descriptor and transaction nonces
	PfxNonce = "nonce"
	// PfxCreator is used for prefixing cached creator profiles
	PfxCreator = "creator"
	// PfxHttpCache is used for prefixing cached http responses
	PfxHttpCache = "httpcache"
)

// MD5 hashes the data with md5
func MD5(data string) string {
	return fmt.Sprintf("%x", md5.Sum([]byte(data)))
}

// CustomKey joins the components with the given delimiter
func CustomKey(delimiter string, components ...string) string {
	return strings.Join(components, delimiter)
}

// RedisKey joins the components into a colon separated redis key
func RedisKey(components ...string) string {
	return CustomKey(":", components...)
}

// GetPrefix extracts the leading segments of a redis key for metrics
// tagging. Keys with three or more segments keep the first two so
// entries like "nonce:sponsor:<address>" group by operation instead of
// exploding into one tag per key.
func GetPrefix(key string) string {
	s := strings.Split(key, ":")
	switch {
	case len(s) > 2:
		return strings.Join(s[:2], ":")
	case len(s) > 1:
		return s[0]
	}
	return ""
}
