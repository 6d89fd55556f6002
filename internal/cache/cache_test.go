package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNop(t *testing.T) {
	ctx := context.Background()
	var c Cache = Nop{}

	assert.NoError(t, c.Set(ctx, "ratings:shop:1", []byte(`{}`), time.Minute))
	_, err := c.Get(ctx, "ratings:shop:1")
	assert.ErrorIs(t, err, ErrCacheMiss)
	assert.NoError(t, c.Delete(ctx, "ratings:shop:1"))
}

func TestRedisCache_Unreachable(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	_, err := Connect(ctx, "127.0.0.1:1")
	assert.Error(t, err)
}
