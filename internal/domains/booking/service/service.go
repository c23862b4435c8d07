package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Booking=MockBookingService

import (
	"airbnc/config"
	"airbnc/infras/kafka"
	"airbnc/infras/otel"
	"airbnc/internal/domains/booking/model"
	"airbnc/internal/domains/booking/model/dto"
	"airbnc/internal/domains/booking/repository"
	propertyModel "airbnc/internal/domains/property/model"
	userModel "airbnc/internal/domains/user/model"
	"airbnc/shared/constant"
	gRepo "airbnc/shared/repository"
	"context"
	"fmt"
	"strconv"

	"github.com/rs/zerolog/log"
)

type Booking interface {
	Create(ctx context.Context, propertyID int64, req dto.CreateBookingRequest) (dto.CreateBookingResponse, error)
	GetByProperty(ctx context.Context, propertyID int64) (dto.GetPropertyBookingsResponse, error)
	GetByUser(ctx context.Context, userID int64) (dto.GetUserBookingsResponse, error)
}

type serviceImpl struct {
	repo      repository.Booking
	existence gRepo.Existence
	publisher kafka.Publisher
	cfg       *config.Config
	otel      otel.Otel
}

func New(repo repository.Booking, existence gRepo.Existence, publisher kafka.Publisher, cfg *config.Config, otel otel.Otel) Booking {
	return &serviceImpl{
		repo:      repo,
		existence: existence,
		publisher: publisher,
		cfg:       cfg,
		otel:      otel,
	}
}

func (s *serviceImpl) checkProperty(ctx context.Context, propertyID int64) error {
	return s.existence.Check(ctx, gRepo.Lookup{ //nolint:wrapcheck
		Table:   propertyModel.TableName,
		Column:  propertyModel.FieldID,
		Value:   propertyID,
		Message: constant.MessagePropertyNotFound,
	})
}

func (s *serviceImpl) checkUser(ctx context.Context, userID int64) error {
	return s.existence.Check(ctx, gRepo.Lookup{ //nolint:wrapcheck
		Table:   userModel.TableName,
		Column:  userModel.FieldID,
		Value:   userID,
		Message: constant.MessageUserNotFound,
	})
}

func (s *serviceImpl) Create(ctx context.Context, propertyID int64, req dto.CreateBookingRequest) (res dto.CreateBookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = req.Validate(); err != nil {
		return res, err //nolint:wrapcheck
	}

	if err = s.checkProperty(ctx, propertyID); err != nil {
		return res, err
	}

	if err = s.checkUser(ctx, *req.GuestID); err != nil {
		return res, err
	}

	booking, err := s.repo.Create(ctx, req.ToModel(propertyID))
	if err != nil {
		log.Error().Err(err).Int64("property_id", propertyID).Msg("failed to create booking")

		return res, fmt.Errorf("failed to create booking: %w", err)
	}

	scope.SetAttribute("booking_id", booking.ID)

	go s.publishCreated(context.WithoutCancel(ctx), booking)

	res.Msg = constant.MessageBookingSuccessful
	res.BookingID = booking.ID

	return res, nil
}

func (s *serviceImpl) publishCreated(ctx context.Context, booking model.Booking) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".booking.Created")
	defer scope.End()

	err := s.publisher.SendMessages(ctx, s.cfg.External.Kafka.Topic.BookingCreated, kafka.Message{
		Key:   strconv.FormatInt(booking.PropertyID, 10),
		Value: dto.NewCreatedEvent(booking),
	})
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("booking_id", booking.ID).Msg("failed to publish booking created event")
	}
}

func (s *serviceImpl) GetByProperty(ctx context.Context, propertyID int64) (res dto.GetPropertyBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.GetByProperty")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = s.checkProperty(ctx, propertyID); err != nil {
		return res, err
	}

	bookings, err := s.repo.GetByProperty(ctx, propertyID)
	if err != nil {
		log.Error().Err(err).Int64("property_id", propertyID).Msg("failed to get property bookings")

		return res, fmt.Errorf("failed to get property bookings: %w", err)
	}

	res.FromModels(propertyID, bookings)

	return res, nil
}

func (s *serviceImpl) GetByUser(ctx context.Context, userID int64) (res dto.GetUserBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.GetByUser")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = s.checkUser(ctx, userID); err != nil {
		return res, err
	}

	bookings, err := s.repo.GetByGuest(ctx, userID)
	if err != nil {
		log.Error().Err(err).Int64("user_id", userID).Msg("failed to get user bookings")

		return res, fmt.Errorf("failed to get user bookings: %w", err)
	}

	res.FromModels(bookings)

	return res, nil
}
