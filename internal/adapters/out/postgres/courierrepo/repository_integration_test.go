package courierrepo_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"courier-trust/internal/adapters/out/postgres/courierrepo"
	"courier-trust/internal/adapters/out/postgres/scorerepo"
	"courier-trust/internal/core/domain/model/kernel"
	"courier-trust/internal/core/domain/model/scoring"
	"courier-trust/internal/pkg/errs"
)

// CourierRepositoryIntegrationTestSuite provides integration tests for the
// courier and score repositories using PostgreSQL containers to verify
// database persistence behavior.
type CourierRepositoryIntegrationTestSuite struct {
	suite.Suite
	container         *postgres.PostgresContainer
	db                *gorm.DB
	courierRepository *courierrepo.GormCourierRepository
	scoreRepository   *scorerepo.GormScoreRepository
}

func (suite *CourierRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(
		&courierrepo.CourierDTO{},
		&courierrepo.DeliveryDTO{},
		&courierrepo.IncidentDTO{},
		&scorerepo.ScoreDTO{},
		&scorerepo.BadgeDTO{},
	))
}

func (suite *CourierRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec(
		"TRUNCATE TABLE couriers, deliveries, incidents, courier_scores, courier_badges").Error)

	suite.courierRepository = courierrepo.NewGormCourierRepository(suite.db)
	suite.scoreRepository = scorerepo.NewGormScoreRepository(suite.db)
}

func (suite *CourierRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *CourierRepositoryIntegrationTestSuite) seedCourier(stale bool) kernel.UUID {
	courierID := kernel.NewUUID()
	suite.Require().NoError(suite.db.Create(&courierrepo.CourierDTO{
		ID:         courierID.Bytes(),
		Name:       "Sam Porter",
		Phone:      "+15550100",
		Verified:   true,
		JoinedAt:   time.Now().UTC().AddDate(-1, 0, 0),
		Tier:       "bronze",
		ScoreStale: stale,
	}).Error)
	return courierID
}

func (suite *CourierRepositoryIntegrationTestSuite) TestGetHistory() {
	ctx := context.Background()
	courierID := suite.seedCourier(false)

	rating := 4.5
	suite.Require().NoError(suite.db.Create(&courierrepo.DeliveryDTO{
		ID:        kernel.NewUUID().Bytes(),
		CourierID: courierID.Bytes(),
		Status:    "delivered",
		Succeeded: true,
		Rating:    &rating,
		CreatedAt: time.Now().UTC(),
	}).Error)
	suite.Require().NoError(suite.db.Create(&courierrepo.IncidentDTO{
		ID:        kernel.NewUUID().Bytes(),
		CourierID: courierID.Bytes(),
		Kind:      "damaged_package",
		CreatedAt: time.Now().UTC(),
	}).Error)

	history, err := suite.courierRepository.GetHistory(ctx, courierID)
	suite.Require().NoError(err)
	suite.Require().Len(history.Deliveries, 1)
	suite.True(history.Deliveries[0].Succeeded)
	suite.Require().NotNil(history.Deliveries[0].Rating)
	suite.InDelta(4.5, *history.Deliveries[0].Rating, 0.0001)
	suite.Equal(1, history.IncidentCount)
	suite.True(history.Verified)
}

func (suite *CourierRepositoryIntegrationTestSuite) TestGetHistory_UnknownCourier() {
	ctx := context.Background()

	_, err := suite.courierRepository.GetHistory(ctx, kernel.NewUUID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *CourierRepositoryIntegrationTestSuite) TestUpdateScoreSummary_ClearsStaleFlag() {
	ctx := context.Background()
	courierID := suite.seedCourier(true)

	err := suite.courierRepository.UpdateScoreSummary(ctx, courierID, 87, scoring.TierPlatinum)
	suite.Require().NoError(err)

	var dto courierrepo.CourierDTO
	suite.Require().NoError(suite.db.First(&dto, "id = ?", courierID.Bytes()).Error)
	suite.Equal(87, dto.Score)
	suite.Equal("platinum", dto.Tier)
	suite.False(dto.ScoreStale)
}

func (suite *CourierRepositoryIntegrationTestSuite) TestGetStaleCourierIDs() {
	ctx := context.Background()
	staleID := suite.seedCourier(true)
	suite.seedCourier(false)

	ids, err := suite.courierRepository.GetStaleCourierIDs(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(ids, 1)
	suite.Equal(staleID, ids[0])
}

func (suite *CourierRepositoryIntegrationTestSuite) TestScoreUpsert_BadgeKeepsEarnedAt() {
	ctx := context.Background()
	courierID := suite.seedCourier(false)

	firstEarned := time.Date(2025, 1, 15, 12, 0, 0, 0, time.UTC)
	first, err := scoring.RestoreReliabilityScore(courierID, scoring.Metrics{
		SuccessRate: 100, OnTimeRate: 100, CustomerRatingAvg: 5, Verified: true,
	}, 85, scoring.TierPlatinum, []scoring.Badge{{
		ID:       "verified",
		Name:     "Verified",
		Icon:     "shield",
		EarnedAt: firstEarned,
	}}, firstEarned)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.scoreRepository.Upsert(ctx, first))

	// Recompute later with the same badge; the earn date must not move.
	second, err := scoring.RestoreReliabilityScore(courierID, scoring.Metrics{
		SuccessRate: 98, OnTimeRate: 97, CustomerRatingAvg: 4.9, Verified: true,
	}, 88, scoring.TierPlatinum, []scoring.Badge{{
		ID:       "verified",
		Name:     "Verified",
		Icon:     "shield",
		EarnedAt: time.Now().UTC(),
	}}, time.Now().UTC())
	suite.Require().NoError(err)
	suite.Require().NoError(suite.scoreRepository.Upsert(ctx, second))

	loaded, err := suite.scoreRepository.Get(ctx, courierID)
	suite.Require().NoError(err)
	suite.Equal(88, loaded.Overall())
	suite.Require().Len(loaded.Badges(), 1)
	suite.WithinDuration(firstEarned, loaded.Badges()[0].EarnedAt, time.Second)
}

func (suite *CourierRepositoryIntegrationTestSuite) TestScoreGet_Miss() {
	ctx := context.Background()

	_, err := suite.scoreRepository.Get(ctx, kernel.NewUUID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func TestCourierRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(CourierRepositoryIntegrationTestSuite))
}
