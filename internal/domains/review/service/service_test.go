package service_test

import (
	"airbnc/config"
	otelMocks "airbnc/infras/otel/mocks"
	"airbnc/internal/domains/review/mocks"
	"airbnc/internal/domains/review/model"
	"airbnc/internal/domains/review/model/dto"
	"airbnc/internal/domains/review/service"
	cacheMocks "airbnc/shared/cache/mocks"
	"airbnc/shared/failure"
	gRepo "airbnc/shared/repository"
	repoMocks "airbnc/shared/repository/mocks"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var errCacheMiss = errors.New("cache miss")

type fixture struct {
	svc       service.Review
	repo      *mocks.MockReview
	existence *repoMocks.MockExistence
	cache     *cacheMocks.MockRedisCache
}

func setup(t *testing.T) *fixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	f := &fixture{
		repo:      mocks.NewMockReview(ctrl),
		existence: repoMocks.NewMockExistence(ctrl),
		cache:     cacheMocks.NewMockRedisCache(ctrl),
	}

	f.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.svc = service.New(f.repo, f.existence, &config.Config{}, f.cache, otelMocks.NewOtel())

	return f
}

func propertyLookup(id int64) gRepo.Lookup {
	return gRepo.Lookup{Table: "properties", Column: "property_id", Value: id, Message: "Property not found"}
}

func userLookup(id int64) gRepo.Lookup {
	return gRepo.Lookup{Table: "users", Column: "user_id", Value: id, Message: "User not found"}
}

func createRequest(guestID int64, rating float64, comment string) dto.CreateReviewRequest {
	return dto.CreateReviewRequest{GuestID: &guestID, Rating: &rating, Comment: &comment}
}

func TestCreate(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		f := setup(t)
		created := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

		f.existence.EXPECT().Check(gomock.Any(), propertyLookup(3)).Return(nil)
		f.existence.EXPECT().Check(gomock.Any(), userLookup(2)).Return(nil)
		f.repo.EXPECT().InsertReturning(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, m model.Review) (model.Review, error) {
			assert.Equal(t, int64(3), m.PropertyID)
			assert.Equal(t, 5, m.Rating)

			m.ID = 11
			m.CreatedAt = created

			return m, nil
		})

		res, err := f.svc.Create(context.Background(), 3, createRequest(2, 5, "Great place to stay!"))

		require.NoError(t, err)
		assert.Equal(t, int64(11), res.ReviewID)
		assert.Equal(t, int64(2), res.GuestID)
		assert.Equal(t, "2025-06-01T12:00:00Z", res.CreatedAt)
	})

	t.Run("property checked before guest", func(t *testing.T) {
		f := setup(t)

		f.existence.EXPECT().Check(gomock.Any(), propertyLookup(1000)).Return(failure.NotFound("Property not found"))

		_, err := f.svc.Create(context.Background(), 1000, createRequest(1000, 4, ""))

		require.Error(t, err)
		assert.Equal(t, "Property not found", err.Error())
	})

	t.Run("unknown guest", func(t *testing.T) {
		f := setup(t)

		f.existence.EXPECT().Check(gomock.Any(), propertyLookup(3)).Return(nil)
		f.existence.EXPECT().Check(gomock.Any(), userLookup(1000)).Return(failure.NotFound("User not found"))

		_, err := f.svc.Create(context.Background(), 3, createRequest(1000, 4, ""))

		require.Error(t, err)
		assert.Equal(t, "User not found", err.Error())
		assert.True(t, failure.Is(err, failure.KindNotFound))
	})
}

func TestGetByProperty(t *testing.T) {
	t.Run("reviews with average", func(t *testing.T) {
		f := setup(t)

		f.cache.EXPECT().Get(gomock.Any(), "review:gets:3", gomock.Any()).Return(errCacheMiss)
		f.existence.EXPECT().Check(gomock.Any(), propertyLookup(3)).Return(nil)
		f.repo.EXPECT().GetByProperty(gomock.Any(), int64(3)).Return([]model.PropertyReview{
			{ID: 2, Rating: 5},
			{ID: 1, Rating: 2},
		}, nil)

		res, err := f.svc.GetByProperty(context.Background(), 3)

		require.NoError(t, err)
		assert.Len(t, res.Reviews, 2)
		assert.InDelta(t, 3.5, res.AverageRating, 0.0001)
	})

	t.Run("no reviews", func(t *testing.T) {
		f := setup(t)

		f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errCacheMiss)
		f.existence.EXPECT().Check(gomock.Any(), gomock.Any()).Return(nil)
		f.repo.EXPECT().GetByProperty(gomock.Any(), int64(4)).Return([]model.PropertyReview{}, nil)

		res, err := f.svc.GetByProperty(context.Background(), 4)

		require.NoError(t, err)
		assert.Empty(t, res.Reviews)
		assert.Zero(t, res.AverageRating)
	})

	t.Run("unknown property", func(t *testing.T) {
		f := setup(t)

		f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errCacheMiss)
		f.existence.EXPECT().Check(gomock.Any(), propertyLookup(1000)).Return(failure.NotFound("Property not found"))

		_, err := f.svc.GetByProperty(context.Background(), 1000)

		assert.True(t, failure.Is(err, failure.KindNotFound))
	})
}

func TestDelete(t *testing.T) {
	t.Run("deleted", func(t *testing.T) {
		f := setup(t)

		f.repo.EXPECT().DeleteReturning(gomock.Any(), gomock.Any()).Return(model.Review{ID: 1, PropertyID: 3}, true, nil)

		assert.NoError(t, f.svc.Delete(context.Background(), 1))
	})

	t.Run("missing review", func(t *testing.T) {
		f := setup(t)

		f.repo.EXPECT().DeleteReturning(gomock.Any(), gomock.Any()).Return(model.Review{}, false, nil)

		err := f.svc.Delete(context.Background(), 1000)

		require.Error(t, err)
		assert.Equal(t, "Review not found", err.Error())
		assert.True(t, failure.Is(err, failure.KindNotFound))
	})

	t.Run("repository error", func(t *testing.T) {
		f := setup(t)

		f.repo.EXPECT().DeleteReturning(gomock.Any(), gomock.Any()).Return(model.Review{}, false, errors.New("db down"))

		err := f.svc.Delete(context.Background(), 1)

		assert.Equal(t, failure.KindInternal, failure.KindOf(err))
	})
}
