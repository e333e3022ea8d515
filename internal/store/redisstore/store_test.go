package redisstore

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vaultpass/credgen/internal/logger"
	"github.com/vaultpass/credgen/internal/model"
	"github.com/vaultpass/credgen/internal/store"
	"github.com/vaultpass/credgen/internal/store/storetest"
)

func TestKeys(t *testing.T) {
	k := keys{prefix: DefaultPrefix}

	assert.Equal(t, "credgen:credential:abc", k.credential("abc"))
	assert.Equal(t, "credgen:history:alice:all", k.history("alice", ""))
	assert.Equal(t, "credgen:history:alice:password", k.history("alice", model.KindPassword))
	assert.Equal(t, "credgen:seq", k.sequence())
	assert.Equal(t, "credgen:preferences:alice", k.preferences("alice"))
}

func TestNewDefaultPrefix(t *testing.T) {
	s := New(nil, "")
	assert.Equal(t, DefaultPrefix, s.keys.prefix)

	s = New(nil, "test:")
	assert.Equal(t, "test:seq", s.keys.sequence())
}

func TestRecordCredential(t *testing.T) {
	rec := record{ID: "1", Owner: "alice", Kind: model.KindUsername, Value: "Bold_Fox", CreatedAt: 1700000000123}
	c := rec.credential()
	assert.Equal(t, "Bold_Fox", c.Value)
	assert.Equal(t, time.UnixMilli(1700000000123).UTC(), c.CreatedAt)
}

func TestConnectOptionsValidate(t *testing.T) {
	assert.NoError(t, DefaultConnectOptions().validate())

	opts := DefaultConnectOptions()
	opts.PingTimeout = 0
	assert.Error(t, opts.validate())

	_, err := Connect(context.Background(), "redis://localhost:6379", ConnectOptions{}, logger.Nop())
	assert.Error(t, err)

	_, err = Connect(context.Background(), "://bad", DefaultConnectOptions(), logger.Nop())
	assert.Error(t, err)
}

// TestRedisStore runs against a live server when CREDGEN_TEST_REDIS_URL is set.
func TestRedisStore(t *testing.T) {
	url := os.Getenv("CREDGEN_TEST_REDIS_URL")
	if url == "" {
		t.Skip("CREDGEN_TEST_REDIS_URL not set")
	}

	storetest.Run(t, func(t *testing.T) store.Store {
		opts := DefaultConnectOptions()
		opts.ConnectTimeout = 5 * time.Second
		client, err := Connect(context.Background(), url, opts, logger.Nop())
		require.NoError(t, err)

		prefix := "credgen-test:" + uuid.NewString() + ":"
		t.Cleanup(func() {
			// the store closes its own client first
			c := redis.NewClient(client.Options())
			defer c.Close()
			ctx := context.Background()
			iter := c.Scan(ctx, 0, prefix+"*", 100).Iterator()
			for iter.Next(ctx) {
				c.Del(ctx, iter.Val())
			}
		})
		return New(client, prefix)
	})
}
