package queries_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"courier-trust/internal/core/domain/model/kernel"
	"courier-trust/internal/core/domain/model/proof"
	"courier-trust/internal/core/domain/model/scoring"
	"courier-trust/internal/core/domain/model/tracking"
)

// Mock implementations for testing.
type MockScoreRepository struct {
	mock.Mock
}

func (m *MockScoreRepository) Upsert(ctx context.Context, score *scoring.ReliabilityScore) error {
	args := m.Called(ctx, score)
	return args.Error(0)
}

func (m *MockScoreRepository) Get(ctx context.Context, courierID kernel.UUID) (*scoring.ReliabilityScore, error) {
	args := m.Called(ctx, courierID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*scoring.ReliabilityScore), args.Error(1)
}

type MockCourierRepository struct {
	mock.Mock
}

func (m *MockCourierRepository) GetHistory(ctx context.Context, courierID kernel.UUID) (scoring.History, error) {
	args := m.Called(ctx, courierID)
	return args.Get(0).(scoring.History), args.Error(1)
}

func (m *MockCourierRepository) UpdateScoreSummary(
	ctx context.Context, courierID kernel.UUID, overall int, tier scoring.Tier,
) error {
	args := m.Called(ctx, courierID, overall, tier)
	return args.Error(0)
}

func (m *MockCourierRepository) GetStaleCourierIDs(ctx context.Context) ([]kernel.UUID, error) {
	args := m.Called(ctx)
	return args.Get(0).([]kernel.UUID), args.Error(1)
}

type MockTrackingLinkRepository struct {
	mock.Mock
}

func (m *MockTrackingLinkRepository) Add(ctx context.Context, link *tracking.Link) error {
	args := m.Called(ctx, link)
	return args.Error(0)
}

func (m *MockTrackingLinkRepository) GetActiveByCode(ctx context.Context, code string) (*tracking.Link, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*tracking.Link), args.Error(1)
}

func (m *MockTrackingLinkRepository) IncrementViewCount(ctx context.Context, linkID kernel.UUID) error {
	args := m.Called(ctx, linkID)
	return args.Error(0)
}

func (m *MockTrackingLinkRepository) Deactivate(ctx context.Context, code string) error {
	args := m.Called(ctx, code)
	return args.Error(0)
}

type MockTrackingUpdateRepository struct {
	mock.Mock
}

func (m *MockTrackingUpdateRepository) Add(ctx context.Context, update tracking.Update) error {
	args := m.Called(ctx, update)
	return args.Error(0)
}

func (m *MockTrackingUpdateRepository) GetLatestByDelivery(
	ctx context.Context, deliveryID kernel.UUID, limit int,
) ([]tracking.Update, error) {
	args := m.Called(ctx, deliveryID, limit)
	return args.Get(0).([]tracking.Update), args.Error(1)
}

type MockDeliverySnapshotReader struct {
	mock.Mock
}

func (m *MockDeliverySnapshotReader) GetSnapshot(
	ctx context.Context, deliveryID kernel.UUID,
) (tracking.DeliverySnapshot, error) {
	args := m.Called(ctx, deliveryID)
	return args.Get(0).(tracking.DeliverySnapshot), args.Error(1)
}

type MockProofRepository struct {
	mock.Mock
}

func (m *MockProofRepository) AddArtifact(ctx context.Context, artifact *proof.Artifact) error {
	args := m.Called(ctx, artifact)
	return args.Error(0)
}

func (m *MockProofRepository) GetArtifactsByDelivery(
	ctx context.Context, deliveryID kernel.UUID,
) ([]*proof.Artifact, error) {
	args := m.Called(ctx, deliveryID)
	return args.Get(0).([]*proof.Artifact), args.Error(1)
}

func (m *MockProofRepository) AddSignature(ctx context.Context, record proof.SignatureRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}
