package helpers

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"strings"
)

// MD5String takes a string and returns its MD5 hash.
func MD5String(f string) string {
	h := md5.New()
	h.Write([]byte(f))
	return hex.EncodeToString(h.Sum([]byte{}))
}

// ParseKeyValue splits "key=value" into its parts. The key is trimmed.
func ParseKeyValue(s string) (string, string, error) {
	i := strings.Index(s, "=")
	if i <= 0 || strings.TrimSpace(s[:i]) == "" {
		return "", "", fmt.Errorf("%q: expected key=value", s)
	}
	return strings.TrimSpace(s[:i]), s[i+1:], nil
}
