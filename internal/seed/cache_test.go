package seed

import (
	"airbnc/shared/cache/mocks"
	"context"
	"errors"
	"testing"

	"go.uber.org/mock/gomock"
)

func TestInvalidateCaches(t *testing.T) {
	ctrl := gomock.NewController(t)
	redis := mocks.NewMockRedisCache(ctrl)

	gomock.InOrder(
		redis.EXPECT().Clear(gomock.Any(), "property:gets:*").Return(nil),
		redis.EXPECT().Clear(gomock.Any(), "property:get:*").Return(errors.New("down")),
		redis.EXPECT().Clear(gomock.Any(), "review:gets:*").Return(nil),
		redis.EXPECT().Clear(gomock.Any(), "user:get:*").Return(nil),
	)

	InvalidateCaches(context.Background(), redis)
}
