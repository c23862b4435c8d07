package shared_test

import (
	"airbnc/shared"
	"airbnc/shared/cache/mocks"
	"airbnc/shared/dto"
	"airbnc/shared/failure"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestParseID(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int64
		wantErr bool
	}{
		{name: "numeric", input: "42", want: 42},
		{name: "surrounding spaces", input: " 7 ", want: 7},
		{name: "letters", input: "abc", wantErr: true},
		{name: "decimal", input: "1.5", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := shared.ParseID(tt.input, "Invalid property ID")

			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, failure.Is(err, failure.KindInvalidInput))
				assert.Equal(t, "Invalid property ID", err.Error())

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFilterByID(t *testing.T) {
	filter := shared.FilterByID(int64(3), "property_id", "p")

	where, args := filter.GetWhereClause()

	assert.Equal(t, "(p.property_id = :property_id)", where)
	assert.Equal(t, map[string]any{"property_id": int64(3)}, args)
	assert.IsType(t, dto.Filter{}, filter.Filters[0])
}

func TestBuildCacheKey(t *testing.T) {
	assert.Equal(t, "review:gets", shared.BuildCacheKey("review:gets"))
	assert.Equal(t, "review:gets:12", shared.BuildCacheKey("review:gets", int64(12)))
	assert.Equal(t, "property:gets:1:house", shared.BuildCacheKey("property:gets", 1, "house"))
}

func TestInvalidateCaches(t *testing.T) {
	ctrl := gomock.NewController(t)
	redis := mocks.NewMockRedisCache(ctrl)

	redis.EXPECT().Clear(gomock.Any(), "review:gets:4*").Return(nil)
	shared.InvalidateCaches(context.Background(), redis, "review:gets:4")

	redis.EXPECT().Clear(gomock.Any(), "property:gets*").Return(errors.New("down"))
	assert.NotPanics(t, func() {
		shared.InvalidateCaches(context.Background(), redis, "property:gets")
	})
}
