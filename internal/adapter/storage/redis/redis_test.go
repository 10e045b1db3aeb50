package redis

import (
	"context"
	"net"
	"strconv"
	"testing"
	"time"

	"payment-reconciler/config"

	"github.com/alicebob/miniredis/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func redisConfigFor(t *testing.T, addr string) config.RedisConfig {
	host, port, err := net.SplitHostPort(addr)
	require.NoError(t, err)
	p, err := strconv.Atoi(port)
	require.NoError(t, err)
	return config.RedisConfig{Host: host, Port: p, DialTimeout: time.Second, OpTimeout: time.Second}
}

func TestNewClient_Connects(t *testing.T) {
	s := miniredis.RunT(t)

	client, err := NewClient(context.Background(), redisConfigFor(t, s.Addr()), zerolog.Nop())
	require.NoError(t, err)
	defer client.Close()

	assert.NoError(t, NewHealthCheck(client).Ping(context.Background()))
}

func TestNewClient_Unreachable(t *testing.T) {
	s := miniredis.RunT(t)
	cfg := redisConfigFor(t, s.Addr())
	s.Close()

	_, err := NewClient(context.Background(), cfg, zerolog.Nop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "pinging redis")
}

func TestOptions(t *testing.T) {
	opts := options(config.RedisConfig{
		Host:        "redis.example.com",
		Port:        6380,
		DB:          2,
		PoolSize:    40,
		DialTimeout: 2 * time.Second,
		OpTimeout:   500 * time.Millisecond,
	})

	assert.Equal(t, "redis.example.com:6380", opts.Addr)
	assert.Equal(t, 2, opts.DB)
	assert.Equal(t, 40, opts.PoolSize)
	assert.Equal(t, 2*time.Second, opts.DialTimeout)
	assert.Equal(t, 500*time.Millisecond, opts.ReadTimeout)
	assert.Equal(t, 500*time.Millisecond, opts.WriteTimeout)
}

func TestHealthCheck_Name(t *testing.T) {
	assert.Equal(t, "redis", NewHealthCheck(nil).Name())
}
