package payments

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"sort"
	"strings"
)

// ComputeXSignature reconstructs the provider's X-Signature for a set of
// callback form fields.
//
// Algorithm (wire-exact, this is a security boundary):
//   - drop the literal "x_signature" key
//   - sort the remaining keys lexicographically
//   - for each key with a non-empty value, append "key|value|"
//   - append the signing key (no trailing pipe)
//   - SHA-256 hex digest of the result
func ComputeXSignature(signingKey string, fields map[string]string) string {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		if k == "x_signature" {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, k := range keys {
		v := fields[k]
		if v == "" {
			continue
		}
		b.WriteString(k)
		b.WriteByte('|')
		b.WriteString(v)
		b.WriteByte('|')
	}
	b.WriteString(signingKey)

	sum := sha256.Sum256([]byte(b.String()))
	return hex.EncodeToString(sum[:])
}

// VerifyXSignature checks a received webhook signature in constant time.
// An empty signing key or empty received signature never verifies.
func VerifyXSignature(signingKey string, fields map[string]string, received string) bool {
	if signingKey == "" || received == "" {
		return false
	}
	expected := ComputeXSignature(signingKey, fields)
	return hmac.Equal([]byte(expected), []byte(received))
}
