package queries_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"courier-trust/internal/core/application/usecases/commands"
	"courier-trust/internal/core/application/usecases/queries"
	"courier-trust/internal/core/domain/model/kernel"
	"courier-trust/internal/core/domain/model/scoring"
	"courier-trust/internal/pkg/errs"
)

func TestGetScoreQueryHandler_Handle_CacheHit(t *testing.T) {
	// Arrange
	ctx := t.Context()
	courierID := kernel.NewUUID()
	cached, err := scoring.RestoreReliabilityScore(courierID, scoring.Metrics{
		SuccessRate:       95,
		OnTimeRate:        90,
		CustomerRatingAvg: 4.7,
		IncidentRate:      2,
		Verified:          true,
		TenureMonths:      8,
	}, 87, scoring.TierPlatinum, nil, time.Now().UTC())
	require.NoError(t, err)

	mockScoreRepo := new(MockScoreRepository)
	mockCourierRepo := new(MockCourierRepository)
	mockScoreRepo.On("Get", ctx, courierID).Return(cached, nil).Once()

	recalcHandler := commands.NewRecalculateScoreCommandHandler(mockCourierRepo, mockScoreRepo)
	handler := queries.NewGetScoreQueryHandler(mockScoreRepo, recalcHandler)

	query, err := queries.NewGetScoreQuery(courierID)
	require.NoError(t, err)

	// Act
	response, err := handler.Handle(ctx, query)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 87, response.Overall)
	assert.Equal(t, "platinum", response.Tier)
	assert.True(t, response.Verified)
	// Cache hit never touches the courier history.
	mockCourierRepo.AssertNotCalled(t, "GetHistory", mock.Anything, mock.Anything)
}

func TestGetScoreQueryHandler_Handle_CacheMissComputes(t *testing.T) {
	// Arrange
	ctx := t.Context()
	courierID := kernel.NewUUID()

	mockScoreRepo := new(MockScoreRepository)
	mockCourierRepo := new(MockCourierRepository)

	mockScoreRepo.On("Get", ctx, courierID).
		Return(nil, errs.NewObjectNotFoundError("courierID", courierID.String())).Once()
	// An empty history gives the neutral defaults: perfect rates, 5.0 rating,
	// no verification or tenure bonuses.
	mockCourierRepo.On("GetHistory", ctx, courierID).
		Return(scoring.History{JoinedAt: time.Now().UTC()}, nil).Once()
	mockScoreRepo.On("Upsert", ctx, mock.AnythingOfType("*scoring.ReliabilityScore")).Return(nil).Once()
	mockCourierRepo.On("UpdateScoreSummary", ctx, courierID, 85, scoring.TierPlatinum).Return(nil).Once()

	recalcHandler := commands.NewRecalculateScoreCommandHandler(mockCourierRepo, mockScoreRepo)
	handler := queries.NewGetScoreQueryHandler(mockScoreRepo, recalcHandler)

	query, err := queries.NewGetScoreQuery(courierID)
	require.NoError(t, err)

	// Act
	response, err := handler.Handle(ctx, query)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 85, response.Overall)
	assert.Equal(t, "platinum", response.Tier)
	mockScoreRepo.AssertExpectations(t)
	mockCourierRepo.AssertExpectations(t)
}

func TestGetScoreQueryHandler_Handle_UnknownCourier(t *testing.T) {
	// Arrange
	ctx := t.Context()
	courierID := kernel.NewUUID()
	notFound := errs.NewObjectNotFoundError("courierID", courierID.String())

	mockScoreRepo := new(MockScoreRepository)
	mockCourierRepo := new(MockCourierRepository)
	mockScoreRepo.On("Get", ctx, courierID).Return(nil, notFound).Once()
	mockCourierRepo.On("GetHistory", ctx, courierID).Return(scoring.History{}, notFound).Once()

	recalcHandler := commands.NewRecalculateScoreCommandHandler(mockCourierRepo, mockScoreRepo)
	handler := queries.NewGetScoreQueryHandler(mockScoreRepo, recalcHandler)

	query, err := queries.NewGetScoreQuery(courierID)
	require.NoError(t, err)

	// Act
	_, err = handler.Handle(ctx, query)

	// Assert
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}
