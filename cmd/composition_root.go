package cmd

import (
	"context"
	"log"

	"courier-trust/internal/adapters/out/blob"
	"courier-trust/internal/adapters/out/postgres/courierrepo"
	"courier-trust/internal/adapters/out/postgres/insurancerepo"
	"courier-trust/internal/adapters/out/postgres/proofrepo"
	"courier-trust/internal/adapters/out/postgres/scorerepo"
	"courier-trust/internal/adapters/out/postgres/trackingrepo"
	"courier-trust/internal/adapters/out/vision"
	"courier-trust/internal/core/application/usecases/commands"
	"courier-trust/internal/core/application/usecases/queries"
	"courier-trust/internal/core/ports"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	configs Config
	gormDB  *gorm.DB
	storage ports.ObjectStorage
}

func NewCompositionRoot(configs Config, gormDB *gorm.DB) CompositionRoot {
	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(),
		awsconfig.WithRegion(configs.S3Region))
	if err != nil {
		log.Fatalf("failed to load AWS configuration: %v", err)
	}

	return CompositionRoot{
		configs: configs,
		gormDB:  gormDB,
		storage: blob.NewS3Storage(s3.NewFromConfig(awsCfg), configs.S3Bucket, configs.S3Region),
	}
}

func (c *CompositionRoot) CreateCourierRepository() ports.CourierRepository {
	return courierrepo.NewGormCourierRepository(c.gormDB)
}

func (c *CompositionRoot) CreateRecalculateScoreCommandHandler() commands.RecalculateScoreCommandHandler {
	return commands.NewRecalculateScoreCommandHandler(
		courierrepo.NewGormCourierRepository(c.gormDB),
		scorerepo.NewGormScoreRepository(c.gormDB),
	)
}

func (c *CompositionRoot) CreateIssuePolicyCommandHandler() commands.IssuePolicyCommandHandler {
	return commands.NewIssuePolicyCommandHandler(insurancerepo.NewGormPolicyRepository(c.gormDB))
}

func (c *CompositionRoot) CreateFileClaimCommandHandler() commands.FileClaimCommandHandler {
	return commands.NewFileClaimCommandHandler(insurancerepo.NewGormClaimRepository(c.gormDB))
}

func (c *CompositionRoot) CreateCreateTrackingLinkCommandHandler() commands.CreateTrackingLinkCommandHandler {
	return commands.NewCreateTrackingLinkCommandHandler(
		trackingrepo.NewGormTrackingLinkRepository(c.gormDB),
		c.configs.TrackingBaseOrigin,
	)
}

func (c *CompositionRoot) CreateRecordTrackingUpdateCommandHandler() commands.RecordTrackingUpdateCommandHandler {
	return commands.NewRecordTrackingUpdateCommandHandler(
		trackingrepo.NewGormTrackingUpdateRepository(c.gormDB),
	)
}

func (c *CompositionRoot) CreateDeactivateTrackingLinkCommandHandler() commands.DeactivateTrackingLinkCommandHandler {
	return commands.NewDeactivateTrackingLinkCommandHandler(
		trackingrepo.NewGormTrackingLinkRepository(c.gormDB),
	)
}

func (c *CompositionRoot) CreateSubmitProofCommandHandler() commands.SubmitProofCommandHandler {
	return commands.NewSubmitProofCommandHandler(
		proofrepo.NewGormProofRepository(c.gormDB),
		c.storage,
		vision.NewStubAnalyzer(),
	)
}

func (c *CompositionRoot) CreateGetScoreQueryHandler() queries.GetScoreQueryHandler {
	return queries.NewGetScoreQueryHandler(
		scorerepo.NewGormScoreRepository(c.gormDB),
		c.CreateRecalculateScoreCommandHandler(),
	)
}

func (c *CompositionRoot) CreateResolveTrackingLinkQueryHandler() queries.ResolveTrackingLinkQueryHandler {
	return queries.NewResolveTrackingLinkQueryHandler(
		trackingrepo.NewGormTrackingLinkRepository(c.gormDB),
		trackingrepo.NewGormTrackingUpdateRepository(c.gormDB),
		trackingrepo.NewGormDeliverySnapshotReader(c.gormDB),
	)
}

func (c *CompositionRoot) CreateGetDeliveryProofsQueryHandler() queries.GetDeliveryProofsQueryHandler {
	return queries.NewGetDeliveryProofsQueryHandler(proofrepo.NewGormProofRepository(c.gormDB))
}
