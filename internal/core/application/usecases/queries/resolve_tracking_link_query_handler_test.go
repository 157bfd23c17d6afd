package queries_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"courier-trust/internal/core/application/usecases/queries"
	"courier-trust/internal/core/domain/model/kernel"
	"courier-trust/internal/core/domain/model/tracking"
	"courier-trust/internal/pkg/errs"
)

func restoreTestLink(t *testing.T, visibility tracking.Visibility, expiresAt time.Time) *tracking.Link {
	t.Helper()
	link, err := tracking.RestoreLink(
		kernel.NewUUID(), kernel.NewUUID(), "A2B3C4",
		"https://track.example.com/track/A2B3C4",
		visibility, true, expiresAt, 5, time.Now().Add(-time.Hour))
	require.NoError(t, err)
	return link
}

func TestResolveTrackingLinkQueryHandler_Handle_Success(t *testing.T) {
	// Arrange
	ctx := t.Context()
	eta := time.Now().Add(30 * time.Minute)
	link := restoreTestLink(t, tracking.Visibility{
		DriverName:  true,
		DriverPhone: false,
		DriverPhoto: true,
		ETA:         true,
	}, time.Now().Add(2*time.Hour))

	position, err := kernel.NewGeoPoint(51.5072, -0.1276)
	require.NoError(t, err)
	update, err := tracking.NewUpdate(link.DeliveryID(), position, "out for delivery", time.Now())
	require.NoError(t, err)

	mockLinkRepo := new(MockTrackingLinkRepository)
	mockUpdateRepo := new(MockTrackingUpdateRepository)
	mockSnapshotReader := new(MockDeliverySnapshotReader)

	mockLinkRepo.On("GetActiveByCode", ctx, "A2B3C4").Return(link, nil).Once()
	mockLinkRepo.On("IncrementViewCount", ctx, link.ID()).Return(nil).Once()
	mockSnapshotReader.On("GetSnapshot", ctx, link.DeliveryID()).Return(tracking.DeliverySnapshot{
		DeliveryID:       link.DeliveryID(),
		Status:           "in_transit",
		CourierName:      "Sam Porter",
		CourierPhone:     "+15550100",
		CourierPhotoURL:  "https://cdn.example.com/couriers/sam.jpg",
		EstimatedArrival: &eta,
		RecipientName:    "Alex Chen",
	}, nil).Once()
	mockUpdateRepo.On("GetLatestByDelivery", ctx, link.DeliveryID(), tracking.ResolveUpdateLimit).
		Return([]tracking.Update{update}, nil).Once()

	handler := queries.NewResolveTrackingLinkQueryHandler(mockLinkRepo, mockUpdateRepo, mockSnapshotReader)
	query, err := queries.NewResolveTrackingLinkQuery("A2B3C4")
	require.NoError(t, err)

	// Act
	response, err := handler.Handle(ctx, query)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "Sam Porter", response.CourierName)
	// Phone is hidden by default.
	assert.Empty(t, response.CourierPhone)
	assert.NotNil(t, response.EstimatedArrival)
	require.Len(t, response.Updates, 1)
	assert.InDelta(t, 51.5072, response.Updates[0].Latitude, 0.0001)
	mockLinkRepo.AssertExpectations(t)
}

func TestResolveTrackingLinkQueryHandler_Handle_ExpiredLinkIsNotFound(t *testing.T) {
	// Arrange
	ctx := t.Context()
	// Still switched on, but past its expiry.
	link := restoreTestLink(t, tracking.Visibility{DriverName: true}, time.Now().Add(-time.Minute))

	mockLinkRepo := new(MockTrackingLinkRepository)
	mockLinkRepo.On("GetActiveByCode", ctx, "A2B3C4").Return(link, nil).Once()

	handler := queries.NewResolveTrackingLinkQueryHandler(
		mockLinkRepo, new(MockTrackingUpdateRepository), new(MockDeliverySnapshotReader))
	query, err := queries.NewResolveTrackingLinkQuery("A2B3C4")
	require.NoError(t, err)

	// Act
	_, err = handler.Handle(ctx, query)

	// Assert
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	mockLinkRepo.AssertNotCalled(t, "IncrementViewCount", mock.Anything, mock.Anything)
}

func TestResolveTrackingLinkQueryHandler_Handle_UnknownCode(t *testing.T) {
	// Arrange
	ctx := t.Context()
	mockLinkRepo := new(MockTrackingLinkRepository)
	mockLinkRepo.On("GetActiveByCode", ctx, "ZZZZZZ").
		Return(nil, errs.NewObjectNotFoundError("code", "ZZZZZZ")).Once()

	handler := queries.NewResolveTrackingLinkQueryHandler(
		mockLinkRepo, new(MockTrackingUpdateRepository), new(MockDeliverySnapshotReader))
	query, err := queries.NewResolveTrackingLinkQuery("ZZZZZZ")
	require.NoError(t, err)

	// Act
	_, err = handler.Handle(ctx, query)

	// Assert
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}
