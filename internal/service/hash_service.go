package service

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
)

// Argon2Params are the argon2id costs used for new hashes.
type Argon2Params struct {
	Time    uint32
	Memory  uint32 // KiB
	Threads uint8
	KeyLen  uint32
	SaltLen uint32
}

// DefaultArgon2Params hashes with 64 MiB, one pass, four lanes.
var DefaultArgon2Params = Argon2Params{
	Time:    1,
	Memory:  64 * 1024,
	Threads: 4,
	KeyLen:  32,
	SaltLen: 16,
}

// Limits applied to hashes read back from configuration.
const (
	maxArgon2Memory = 1024 * 1024 // 1 GiB
	maxArgon2Time   = 16
	minArgon2Salt   = 8
	minArgon2Key    = 16
)

// Argon2HashService implements ports.HashService using Argon2id.
type Argon2HashService struct {
	params Argon2Params
}

// NewArgon2HashService creates a hash service producing hashes with p.
func NewArgon2HashService(p Argon2Params) *Argon2HashService {
	return &Argon2HashService{params: p}
}

// Hash returns the PHC string form:
// $argon2id$v=19$m=65536,t=1,p=4$<salt>$<key>
func (s *Argon2HashService) Hash(password string) (string, error) {
	salt := make([]byte, s.params.SaltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("generating salt: %w", err)
	}
	h := argon2Hash{params: s.params, salt: salt}
	h.key = h.derive(password)
	return h.String(), nil
}

// Verify reports whether password matches encodedHash. The costs stored in
// encodedHash are used, not the service's own.
func (s *Argon2HashService) Verify(password string, encodedHash string) (bool, error) {
	h, err := parseArgon2Hash(encodedHash)
	if err != nil {
		return false, err
	}
	return subtle.ConstantTimeCompare(h.key, h.derive(password)) == 1, nil
}

type argon2Hash struct {
	params Argon2Params
	salt   []byte
	key    []byte
}

func (h argon2Hash) derive(password string) []byte {
	return argon2.IDKey([]byte(password), h.salt, h.params.Time, h.params.Memory, h.params.Threads, h.params.KeyLen)
}

func (h argon2Hash) String() string {
	return fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version,
		h.params.Memory, h.params.Time, h.params.Threads,
		base64.RawStdEncoding.EncodeToString(h.salt),
		base64.RawStdEncoding.EncodeToString(h.key),
	)
}

// parseArgon2Hash decodes a PHC string and rejects costs outside the limits.
func parseArgon2Hash(encoded string) (*argon2Hash, error) {
	parts := strings.Split(encoded, "$")
	if len(parts) != 6 || parts[0] != "" {
		return nil, fmt.Errorf("invalid hash format: expected 6 parts, got %d", len(parts))
	}
	if parts[1] != "argon2id" {
		return nil, fmt.Errorf("unsupported algorithm: %s", parts[1])
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil {
		return nil, fmt.Errorf("parsing version: %w", err)
	}
	if version != argon2.Version {
		return nil, fmt.Errorf("unsupported argon2 version %d", version)
	}

	h := &argon2Hash{}
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &h.params.Memory, &h.params.Time, &h.params.Threads); err != nil {
		return nil, fmt.Errorf("parsing params: %w", err)
	}
	switch {
	case h.params.Memory == 0 || h.params.Memory > maxArgon2Memory:
		return nil, fmt.Errorf("argon2 memory %d KiB out of range", h.params.Memory)
	case h.params.Time == 0 || h.params.Time > maxArgon2Time:
		return nil, fmt.Errorf("argon2 time %d out of range", h.params.Time)
	case h.params.Threads == 0:
		return nil, fmt.Errorf("argon2 parallelism must be positive")
	}

	var err error
	if h.salt, err = base64.RawStdEncoding.DecodeString(parts[4]); err != nil {
		return nil, fmt.Errorf("decoding salt: %w", err)
	}
	if h.key, err = base64.RawStdEncoding.DecodeString(parts[5]); err != nil {
		return nil, fmt.Errorf("decoding hash: %w", err)
	}
	if len(h.salt) < minArgon2Salt || len(h.key) < minArgon2Key {
		return nil, fmt.Errorf("argon2 salt or key too short")
	}
	h.params.SaltLen = uint32(len(h.salt))
	h.params.KeyLen = uint32(len(h.key))
	return h, nil
}
