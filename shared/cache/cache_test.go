package cache_test

import (
	"airbnc/infras/otel/mocks"
	"airbnc/shared/cache"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewRedisCache_DisabledAlwaysMisses(t *testing.T) {
	c := cache.NewRedisCache(nil, mocks.NewOtel())
	ctx := context.Background()

	assert.NoError(t, c.Save(ctx, "property:get:1", map[string]int{"a": 1}, 60))

	var out map[string]int
	err := c.Get(ctx, "property:get:1", &out)

	assert.ErrorIs(t, err, cache.ErrDisabled)
	assert.Nil(t, out)
	assert.NoError(t, c.Delete(ctx, "property:get:1"))
	assert.NoError(t, c.Clear(ctx, "property:*"))

	_, err = c.Incr(ctx, "limiter:192.0.2.1:curl", 60)
	assert.ErrorIs(t, err, cache.ErrDisabled)
}
