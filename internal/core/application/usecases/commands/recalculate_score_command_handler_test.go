package commands_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"courier-trust/internal/core/application/usecases/commands"
	"courier-trust/internal/core/domain/model/kernel"
	"courier-trust/internal/core/domain/model/scoring"
	"courier-trust/internal/pkg/errs"
)

func TestNewRecalculateScoreCommand(t *testing.T) {
	// Arrange
	courierID := kernel.NewUUID()

	// Act
	cmd, err := commands.NewRecalculateScoreCommand(courierID)

	// Assert
	require.NoError(t, err)
	assert.NoError(t, cmd.Validate())
	assert.Equal(t, courierID, cmd.CourierID())
}

func TestNewRecalculateScoreCommand_EmptyCourierID(t *testing.T) {
	_, err := commands.NewRecalculateScoreCommand(kernel.UUID{})
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestRecalculateScoreCommandHandler_Handle_Success(t *testing.T) {
	// Arrange
	ctx := t.Context()
	courierID := kernel.NewUUID()
	rating := 5.0
	history := scoring.History{
		Deliveries: []scoring.DeliveryRecord{
			{Succeeded: true, Rating: &rating},
			{Succeeded: true},
		},
		Verified: true,
		JoinedAt: time.Now().AddDate(-1, 0, 0),
	}

	cmd, err := commands.NewRecalculateScoreCommand(courierID)
	require.NoError(t, err)

	mockCourierRepo := new(MockCourierRepository)
	mockScoreRepo := new(MockScoreRepository)

	mockCourierRepo.On("GetHistory", ctx, courierID).Return(history, nil).Once()
	mockScoreRepo.On("Upsert", ctx, mock.AnythingOfType("*scoring.ReliabilityScore")).Return(nil).Once()
	mockCourierRepo.On("UpdateScoreSummary", ctx, courierID, mock.AnythingOfType("int"),
		mock.AnythingOfType("scoring.Tier")).Return(nil).Once()

	handler := commands.NewRecalculateScoreCommandHandler(mockCourierRepo, mockScoreRepo)

	// Act
	score, err := handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, score)
	assert.Equal(t, courierID, score.CourierID())
	assert.GreaterOrEqual(t, score.Overall(), 0)
	assert.LessOrEqual(t, score.Overall(), 100)
	mockCourierRepo.AssertExpectations(t)
	mockScoreRepo.AssertExpectations(t)
}

func TestRecalculateScoreCommandHandler_Handle_CourierNotFound(t *testing.T) {
	// Arrange
	ctx := t.Context()
	courierID := kernel.NewUUID()
	notFound := errs.NewObjectNotFoundError("courierID", courierID.String())

	cmd, err := commands.NewRecalculateScoreCommand(courierID)
	require.NoError(t, err)

	mockCourierRepo := new(MockCourierRepository)
	mockScoreRepo := new(MockScoreRepository)
	mockCourierRepo.On("GetHistory", ctx, courierID).Return(scoring.History{}, notFound).Once()

	handler := commands.NewRecalculateScoreCommandHandler(mockCourierRepo, mockScoreRepo)

	// Act
	_, err = handler.Handle(ctx, cmd)

	// Assert
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	mockScoreRepo.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
}

func TestRecalculateScoreCommandHandler_Handle_SummaryWriteFailureSurfaces(t *testing.T) {
	// Arrange
	ctx := t.Context()
	courierID := kernel.NewUUID()
	summaryErr := errors.New("summary update failed")

	cmd, err := commands.NewRecalculateScoreCommand(courierID)
	require.NoError(t, err)

	mockCourierRepo := new(MockCourierRepository)
	mockScoreRepo := new(MockScoreRepository)

	mockCourierRepo.On("GetHistory", ctx, courierID).
		Return(scoring.History{JoinedAt: time.Now()}, nil).Once()
	mockScoreRepo.On("Upsert", ctx, mock.AnythingOfType("*scoring.ReliabilityScore")).Return(nil).Once()
	mockCourierRepo.On("UpdateScoreSummary", ctx, courierID, mock.AnythingOfType("int"),
		mock.AnythingOfType("scoring.Tier")).Return(summaryErr).Once()

	handler := commands.NewRecalculateScoreCommandHandler(mockCourierRepo, mockScoreRepo)

	// Act
	_, err = handler.Handle(ctx, cmd)

	// Assert
	require.ErrorIs(t, err, summaryErr)
	// The score row write already went through before the summary failed.
	mockScoreRepo.AssertExpectations(t)
}
