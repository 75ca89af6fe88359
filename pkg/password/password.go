// Package password implements the stored-credential format
// "algorithm$salt$hex_digest". Hashing is deterministic for a fixed salt so
// verification recomputes the full string and compares it to the stored one.
package password

import (
	"crypto/sha512"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/pbkdf2"
)

// Supported algorithm tags, stored as the first credential field.
const (
	AlgorithmSHA512 = "sha512"
	AlgorithmPBKDF2 = "pbkdf2_sha512"
)

const (
	pbkdf2Iterations = 100_000
	pbkdf2KeyLen     = 64
)

// ErrMalformedCredential reports a stored credential string that does not
// parse. It is a data-integrity fault, not a verification mismatch.
var ErrMalformedCredential = errors.New("password: malformed credential string")

// Hash returns a credential string for password using the default algorithm
// and a fresh random salt.
func Hash(password string) string {
	cred, _ := HashWith(AlgorithmSHA512, password, NewSalt())
	return cred
}

// HashWith returns a credential string for password using the given
// algorithm and salt. Unknown algorithms yield ErrMalformedCredential.
func HashWith(algorithm, password, salt string) (string, error) {
	digest, err := digest(algorithm, password, salt)
	if err != nil {
		return "", err
	}
	return strings.Join([]string{algorithm, salt, digest}, "$"), nil
}

// Verify recomputes the credential for password using the salt and algorithm
// embedded in stored, and reports whether the result matches exactly.
func Verify(password, stored string) (bool, error) {
	parts := strings.Split(stored, "$")
	if len(parts) != 3 {
		return false, fmt.Errorf("%w: want 3 fields, got %d", ErrMalformedCredential, len(parts))
	}
	recomputed, err := HashWith(parts[0], password, parts[1])
	if err != nil {
		return false, err
	}
	return recomputed == stored, nil
}

// NewSalt returns a fresh random salt.
func NewSalt() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

func digest(algorithm, password, salt string) (string, error) {
	switch algorithm {
	case AlgorithmSHA512:
		sum := sha512.Sum512([]byte(salt + password))
		return hex.EncodeToString(sum[:]), nil
	case AlgorithmPBKDF2:
		key := pbkdf2.Key([]byte(password), []byte(salt), pbkdf2Iterations, pbkdf2KeyLen, sha512.New)
		return hex.EncodeToString(key), nil
	default:
		return "", fmt.Errorf("%w: unknown algorithm %q", ErrMalformedCredential, algorithm)
	}
}
