package seed

import (
	"airbnc/shared"
	"airbnc/shared/cache"
	"context"
)

// cachedReads are the key prefixes of every read cached from the seeded tables.
var cachedReads = []string{
	"property:gets:",
	"property:get:",
	"review:gets:",
	"user:get:",
}

// InvalidateCaches drops cached reads so a reload is visible before the TTL runs out.
func InvalidateCaches(ctx context.Context, c cache.RedisCache) {
	for _, prefix := range cachedReads {
		shared.InvalidateCaches(ctx, c, prefix)
	}
}
