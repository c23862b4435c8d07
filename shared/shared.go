package shared

import (
	"airbnc/shared/cache"
	"airbnc/shared/dto"
	"airbnc/shared/failure"
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
)

// ParseID parses a path or query identifier. Anything that is not a base-10
// integer is rejected with message as a bad request.
func ParseID(value, message string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
	if err != nil {
		return 0, failure.BadRequestFromString(message) // nolint:wrapcheck
	}

	return id, nil
}

func FilterByID(id any, fieldID, table string) dto.FilterGroup {
	return dto.FilterGroup{
		Filters: []any{
			dto.Filter{
				Field:    fieldID,
				Value:    id,
				Operator: dto.FilterOperatorEq,
				Table:    table,
			},
		},
	}
}

// BuildCacheKey joins prefix and parts with ':'.
func BuildCacheKey(prefix string, parts ...any) string {
	if len(parts) == 0 {
		return prefix
	}

	values := make([]string, 0, len(parts)+1)
	values = append(values, prefix)

	for _, part := range parts {
		values = append(values, fmt.Sprint(part))
	}

	return strings.Join(values, ":")
}

// InvalidateCaches removes every key under prefix. Failures are only logged.
func InvalidateCaches(ctx context.Context, c cache.RedisCache, prefix string) {
	if err := c.Clear(ctx, prefix+"*"); err != nil {
		log.Error().Err(err).Str("prefix", prefix).Msg("failed to invalidate caches")
	}
}
