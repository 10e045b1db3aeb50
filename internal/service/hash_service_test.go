package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// cheapArgon2 keeps tests fast.
var cheapArgon2 = Argon2Params{Time: 1, Memory: 1024, Threads: 1, KeyLen: 32, SaltLen: 16}

func TestArgon2HashService_HashAndVerify(t *testing.T) {
	svc := NewArgon2HashService(cheapArgon2)

	hash, err := svc.Hash("ops-Passw0rd!")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(hash, "$argon2id$v=19$m=1024,t=1,p=1$"))

	match, err := svc.Verify("ops-Passw0rd!", hash)
	require.NoError(t, err)
	assert.True(t, match)

	match, err = svc.Verify("ops-Passw0rd?", hash)
	require.NoError(t, err)
	assert.False(t, match)
}

func TestArgon2HashService_UniqueSalts(t *testing.T) {
	svc := NewArgon2HashService(cheapArgon2)

	h1, err := svc.Hash("same")
	require.NoError(t, err)
	h2, err := svc.Hash("same")
	require.NoError(t, err)

	assert.NotEqual(t, h1, h2)
}

func TestArgon2HashService_VerifyUsesStoredCosts(t *testing.T) {
	hash, err := NewArgon2HashService(cheapArgon2).Hash("secret")
	require.NoError(t, err)

	match, err := NewArgon2HashService(DefaultArgon2Params).Verify("secret", hash)
	require.NoError(t, err)
	assert.True(t, match)
}

func TestArgon2HashService_DefaultParams(t *testing.T) {
	assert.Equal(t, uint32(64*1024), DefaultArgon2Params.Memory)
	assert.Equal(t, uint8(4), DefaultArgon2Params.Threads)
}

func TestArgon2HashService_RejectsBadHashes(t *testing.T) {
	svc := NewArgon2HashService(cheapArgon2)
	salt := "c29tZXNhbHRzb21lc2FsdA"
	key := "a2V5a2V5a2V5a2V5a2V5a2V5a2V5a2V5a2V5a2V5a2U"

	tests := []struct {
		name string
		hash string
		want string
	}{
		{"not phc", "not-a-valid-hash", "invalid hash format"},
		{"argon2i", "$argon2i$v=19$m=1024,t=1,p=1$" + salt + "$" + key, "unsupported algorithm"},
		{"old version", "$argon2id$v=16$m=1024,t=1,p=1$" + salt + "$" + key, "unsupported argon2 version"},
		{"huge memory", "$argon2id$v=19$m=4194304,t=1,p=1$" + salt + "$" + key, "memory"},
		{"zero time", "$argon2id$v=19$m=1024,t=0,p=1$" + salt + "$" + key, "time"},
		{"zero lanes", "$argon2id$v=19$m=1024,t=1,p=0$" + salt + "$" + key, "parallelism"},
		{"bad salt", "$argon2id$v=19$m=1024,t=1,p=1$***$" + key, "decoding salt"},
		{"short key", "$argon2id$v=19$m=1024,t=1,p=1$" + salt + "$a2V5", "too short"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Verify("secret", tt.hash)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}
