// Package http provides the inbound HTTP adapter.
// It translates echo requests into application commands and queries and
// renders their results as JSON.
package http

import (
	"errors"
	"net/http"

	"courier-trust/internal/core/application/usecases/commands"
	"courier-trust/internal/core/application/usecases/queries"
	"courier-trust/internal/core/domain/model/insurance"
	"courier-trust/internal/core/domain/model/kernel"
	"courier-trust/internal/core/domain/model/proof"
	"courier-trust/internal/core/domain/model/scoring"
	"courier-trust/internal/core/domain/model/tracking"
	"courier-trust/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	recalculateScoreHandler       commands.RecalculateScoreCommandHandler
	issuePolicyHandler            commands.IssuePolicyCommandHandler
	fileClaimHandler              commands.FileClaimCommandHandler
	createTrackingLinkHandler     commands.CreateTrackingLinkCommandHandler
	recordTrackingUpdateHandler   commands.RecordTrackingUpdateCommandHandler
	deactivateTrackingLinkHandler commands.DeactivateTrackingLinkCommandHandler
	submitProofHandler            commands.SubmitProofCommandHandler

	// Query handlers
	getScoreHandler            queries.GetScoreQueryHandler
	resolveTrackingLinkHandler queries.ResolveTrackingLinkQueryHandler
	getDeliveryProofsHandler   queries.GetDeliveryProofsQueryHandler

	// defaultCountryCode is prepended to recipient phone numbers in share
	// messages when the number has no country prefix.
	defaultCountryCode string
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	recalculateScoreHandler commands.RecalculateScoreCommandHandler,
	issuePolicyHandler commands.IssuePolicyCommandHandler,
	fileClaimHandler commands.FileClaimCommandHandler,
	createTrackingLinkHandler commands.CreateTrackingLinkCommandHandler,
	recordTrackingUpdateHandler commands.RecordTrackingUpdateCommandHandler,
	deactivateTrackingLinkHandler commands.DeactivateTrackingLinkCommandHandler,
	submitProofHandler commands.SubmitProofCommandHandler,
	getScoreHandler queries.GetScoreQueryHandler,
	resolveTrackingLinkHandler queries.ResolveTrackingLinkQueryHandler,
	getDeliveryProofsHandler queries.GetDeliveryProofsQueryHandler,
	defaultCountryCode string,
) *Server {
	return &Server{
		recalculateScoreHandler:       recalculateScoreHandler,
		issuePolicyHandler:            issuePolicyHandler,
		fileClaimHandler:              fileClaimHandler,
		createTrackingLinkHandler:     createTrackingLinkHandler,
		recordTrackingUpdateHandler:   recordTrackingUpdateHandler,
		deactivateTrackingLinkHandler: deactivateTrackingLinkHandler,
		submitProofHandler:            submitProofHandler,
		getScoreHandler:               getScoreHandler,
		resolveTrackingLinkHandler:    resolveTrackingLinkHandler,
		getDeliveryProofsHandler:      getDeliveryProofsHandler,
		defaultCountryCode:            defaultCountryCode,
	}
}

// RegisterRoutes attaches all routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api/v1")
	api.POST("/couriers/:courierId/score/recalculate", s.RecalculateScore)
	api.GET("/couriers/:courierId/score", s.GetScore)
	api.POST("/deliveries/:deliveryId/insurance", s.IssuePolicy)
	api.POST("/insurance/quotes", s.QuoteInsurance)
	api.POST("/insurance/claims", s.FileClaim)
	api.POST("/deliveries/:deliveryId/share", s.CreateTrackingLink)
	api.GET("/track/:code", s.ResolveTrackingLink)
	api.DELETE("/track/:code", s.DeactivateTrackingLink)
	api.POST("/deliveries/:deliveryId/updates", s.RecordTrackingUpdate)
	api.POST("/deliveries/:deliveryId/proofs", s.SubmitProof)
	api.GET("/deliveries/:deliveryId/proofs", s.GetDeliveryProofs)
}

// Health handles GET /health - liveness probe.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "healthy"})
}

// RecalculateScore handles POST /api/v1/couriers/:courierId/score/recalculate -
// recomputes a courier's reliability score from full history.
func (s *Server) RecalculateScore(ctx echo.Context) error {
	courierID, err := kernel.UUIDFromString(ctx.Param("courierId"))
	if err != nil {
		return badRequest(ctx, "Invalid courier ID: "+err.Error())
	}

	cmd, err := commands.NewRecalculateScoreCommand(courierID)
	if err != nil {
		return badRequest(ctx, "Invalid recalculation request: "+err.Error())
	}

	score, err := s.recalculateScoreHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err, "Failed to recalculate score")
	}

	return ctx.JSON(http.StatusOK, scoreViewFromDomain(score))
}

// GetScore handles GET /api/v1/couriers/:courierId/score - serves the cached
// reliability score, computing one on the spot for never-scored couriers.
func (s *Server) GetScore(ctx echo.Context) error {
	courierID, err := kernel.UUIDFromString(ctx.Param("courierId"))
	if err != nil {
		return badRequest(ctx, "Invalid courier ID: "+err.Error())
	}

	query, err := queries.NewGetScoreQuery(courierID)
	if err != nil {
		return badRequest(ctx, "Invalid score request: "+err.Error())
	}

	score, err := s.getScoreHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err, "Failed to retrieve score")
	}

	return ctx.JSON(http.StatusOK, scoreViewFromReadModel(score))
}

// IssuePolicy handles POST /api/v1/deliveries/:deliveryId/insurance -
// prices and activates an insurance policy for a delivery.
func (s *Server) IssuePolicy(ctx echo.Context) error {
	deliveryID, err := kernel.UUIDFromString(ctx.Param("deliveryId"))
	if err != nil {
		return badRequest(ctx, "Invalid delivery ID: "+err.Error())
	}

	var req IssuePolicyRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	tier, err := insurance.PlanTierFromString(req.Tier)
	if err != nil {
		return badRequest(ctx, "Invalid plan tier: "+err.Error())
	}

	cmd, err := commands.NewIssuePolicyCommand(deliveryID, req.DeclaredValue, tier)
	if err != nil {
		return badRequest(ctx, "Invalid policy data: "+err.Error())
	}

	policy, err := s.issuePolicyHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err, "Failed to issue policy")
	}

	return ctx.JSON(http.StatusCreated, PolicyResponse{
		ID:            policy.ID().String(),
		DeliveryID:    policy.DeliveryID().String(),
		Tier:          policy.Tier().String(),
		DeclaredValue: policy.DeclaredValue(),
		Premium:       policy.Premium(),
		Coverage:      policy.Coverage(),
		IsActive:      policy.IsActive(),
		ActivatedAt:   policy.ActivatedAt(),
		ExpiresAt:     policy.ExpiresAt(),
	})
}

// QuoteInsurance handles POST /api/v1/insurance/quotes - prices a declared
// value against a plan tier without creating a policy.
func (s *Server) QuoteInsurance(ctx echo.Context) error {
	var req QuoteRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	tier, err := insurance.PlanTierFromString(req.Tier)
	if err != nil {
		return badRequest(ctx, "Invalid plan tier: "+err.Error())
	}

	quote, err := insurance.Price(req.DeclaredValue, tier)
	if err != nil {
		return badRequest(ctx, "Invalid quote request: "+err.Error())
	}

	return ctx.JSON(http.StatusOK, QuoteResponse{
		Tier:     tier.String(),
		Premium:  quote.Premium,
		Coverage: quote.Coverage,
	})
}

// FileClaim handles POST /api/v1/insurance/claims - files a claim against a policy.
func (s *Server) FileClaim(ctx echo.Context) error {
	var req FileClaimRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	policyID, err := kernel.UUIDFromString(req.PolicyID)
	if err != nil {
		return badRequest(ctx, "Invalid policy ID: "+err.Error())
	}
	deliveryID, err := kernel.UUIDFromString(req.DeliveryID)
	if err != nil {
		return badRequest(ctx, "Invalid delivery ID: "+err.Error())
	}
	filerID, err := kernel.UUIDFromString(req.FilerID)
	if err != nil {
		return badRequest(ctx, "Invalid filer ID: "+err.Error())
	}
	claimType, err := insurance.ClaimTypeFromString(req.ClaimType)
	if err != nil {
		return badRequest(ctx, "Invalid claim type: "+err.Error())
	}

	cmd, err := commands.NewFileClaimCommand(
		policyID, deliveryID, filerID, claimType,
		req.Description, req.EvidenceURLs, req.ClaimedAmount,
	)
	if err != nil {
		return badRequest(ctx, "Invalid claim data: "+err.Error())
	}

	claim, err := s.fileClaimHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err, "Failed to file claim")
	}

	return ctx.JSON(http.StatusCreated, ClaimResponse{
		ID:            claim.ID().String(),
		PolicyID:      claim.PolicyID().String(),
		DeliveryID:    claim.DeliveryID().String(),
		ClaimType:     claim.Type().String(),
		ClaimedAmount: claim.ClaimedAmount(),
		Status:        claim.Status(),
		FiledAt:       claim.FiledAt(),
	})
}

// CreateTrackingLink handles POST /api/v1/deliveries/:deliveryId/share -
// creates a shareable expiring tracking link for a delivery.
func (s *Server) CreateTrackingLink(ctx echo.Context) error {
	deliveryID, err := kernel.UUIDFromString(ctx.Param("deliveryId"))
	if err != nil {
		return badRequest(ctx, "Invalid delivery ID: "+err.Error())
	}

	var req CreateTrackingLinkRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	options := tracking.Options{
		ShowDriverName:  req.ShowDriverName,
		ShowDriverPhone: req.ShowDriverPhone,
		ShowDriverPhoto: req.ShowDriverPhoto,
		ShowETA:         req.ShowETA,
		ExpiresInHours:  req.ExpiresInHours,
	}

	cmd, err := commands.NewCreateTrackingLinkCommand(deliveryID, options)
	if err != nil {
		return badRequest(ctx, "Invalid share request: "+err.Error())
	}

	link, err := s.createTrackingLinkHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err, "Failed to create tracking link")
	}

	return ctx.JSON(http.StatusCreated, TrackingLinkResponse{
		Code:         link.Code(),
		URL:          link.ShareURL(),
		ShareMessage: tracking.FormatShareMessage(link.ShareURL(), req.RecipientPhone, s.defaultCountryCode),
		ExpiresAt:    link.ExpiresAt(),
	})
}

// ResolveTrackingLink handles GET /api/v1/track/:code - the public tracking
// view behind a share code. Counts the view.
func (s *Server) ResolveTrackingLink(ctx echo.Context) error {
	query, err := queries.NewResolveTrackingLinkQuery(ctx.Param("code"))
	if err != nil {
		return badRequest(ctx, "Invalid share code: "+err.Error())
	}

	view, err := s.resolveTrackingLinkHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err, "Failed to resolve tracking link")
	}

	updates := make([]TrackingUpdateView, 0, len(view.Updates))
	for _, update := range view.Updates {
		updates = append(updates, TrackingUpdateView{
			Latitude:   update.Latitude,
			Longitude:  update.Longitude,
			Note:       update.Note,
			RecordedAt: update.RecordedAt,
		})
	}

	return ctx.JSON(http.StatusOK, TrackingViewResponse{
		DeliveryID:       view.DeliveryID.String(),
		Status:           view.Status,
		CourierName:      view.CourierName,
		CourierPhone:     view.CourierPhone,
		CourierPhotoURL:  view.CourierPhotoURL,
		EstimatedArrival: view.EstimatedArrival,
		RecipientName:    view.RecipientName,
		ExpiresAt:        view.ExpiresAt,
		Updates:          updates,
	})
}

// DeactivateTrackingLink handles DELETE /api/v1/track/:code - revokes a share
// link before its natural expiry.
func (s *Server) DeactivateTrackingLink(ctx echo.Context) error {
	cmd, err := commands.NewDeactivateTrackingLinkCommand(ctx.Param("code"))
	if err != nil {
		return badRequest(ctx, "Invalid share code: "+err.Error())
	}

	if err := s.deactivateTrackingLinkHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err, "Failed to deactivate tracking link")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RecordTrackingUpdate handles POST /api/v1/deliveries/:deliveryId/updates -
// appends a courier position update to a delivery's trail.
func (s *Server) RecordTrackingUpdate(ctx echo.Context) error {
	deliveryID, err := kernel.UUIDFromString(ctx.Param("deliveryId"))
	if err != nil {
		return badRequest(ctx, "Invalid delivery ID: "+err.Error())
	}

	var req RecordTrackingUpdateRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	position, err := kernel.NewGeoPoint(req.Latitude, req.Longitude)
	if err != nil {
		return badRequest(ctx, "Invalid position: "+err.Error())
	}

	cmd, err := commands.NewRecordTrackingUpdateCommand(deliveryID, position, req.Note)
	if err != nil {
		return badRequest(ctx, "Invalid update data: "+err.Error())
	}

	if err := s.recordTrackingUpdateHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err, "Failed to record tracking update")
	}

	return ctx.NoContent(http.StatusCreated)
}

// SubmitProof handles POST /api/v1/deliveries/:deliveryId/proofs -
// rebuilds the capture workflow from the submitted evidence, walks it to
// review and runs the ordered upload sequence. A step failure after earlier
// artifacts were persisted returns the failed step; a retry with the same
// payload only re-runs what is missing.
func (s *Server) SubmitProof(ctx echo.Context) error {
	deliveryID, err := kernel.UUIDFromString(ctx.Param("deliveryId"))
	if err != nil {
		return badRequest(ctx, "Invalid delivery ID: "+err.Error())
	}

	var req SubmitProofRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	courierID, err := kernel.UUIDFromString(req.CourierID)
	if err != nil {
		return badRequest(ctx, "Invalid courier ID: "+err.Error())
	}

	var location *kernel.GeoPoint
	if req.Location != nil {
		point, err := kernel.NewGeoPoint(req.Location.Latitude, req.Location.Longitude)
		if err != nil {
			return badRequest(ctx, "Invalid location: "+err.Error())
		}
		location = &point
	}

	workflow, err := proof.NewWorkflow(
		deliveryID, courierID, req.RequireRecipientPhoto, req.RequireSignature, location)
	if err != nil {
		return badRequest(ctx, "Invalid proof data: "+err.Error())
	}

	if len(req.PackagePhoto) > 0 {
		if err := workflow.CapturePhoto(proof.PhotoTypePackage, req.PackagePhoto); err != nil {
			return badRequest(ctx, "Invalid package photo: "+err.Error())
		}
	}
	if len(req.RecipientPhoto) > 0 {
		if err := workflow.CapturePhoto(proof.PhotoTypeRecipient, req.RecipientPhoto); err != nil {
			return badRequest(ctx, "Invalid recipient photo: "+err.Error())
		}
	}
	if req.Signature != nil {
		workflow.CaptureSignature(req.Signature.Image, req.Signature.SignerName, req.Signature.SignerPhone)
	}

	// Each failed advance names the evidence the payload is missing.
	for workflow.Step() != proof.StepReview {
		if err := workflow.Advance(); err != nil {
			return badRequest(ctx, "Incomplete proof: "+err.Error())
		}
	}

	cmd, err := commands.NewSubmitProofCommand(workflow)
	if err != nil {
		return badRequest(ctx, "Invalid proof data: "+err.Error())
	}

	if err := s.submitProofHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		if errors.Is(err, proof.ErrPartialSubmission) {
			return ctx.JSON(http.StatusBadGateway, Error{
				Code:    http.StatusBadGateway,
				Message: err.Error(),
			})
		}
		return respondError(ctx, err, "Failed to submit proof")
	}

	return ctx.NoContent(http.StatusCreated)
}

// GetDeliveryProofs handles GET /api/v1/deliveries/:deliveryId/proofs -
// lists the stored proof-of-delivery artifacts for a delivery.
func (s *Server) GetDeliveryProofs(ctx echo.Context) error {
	deliveryID, err := kernel.UUIDFromString(ctx.Param("deliveryId"))
	if err != nil {
		return badRequest(ctx, "Invalid delivery ID: "+err.Error())
	}

	query, err := queries.NewGetDeliveryProofsQuery(deliveryID)
	if err != nil {
		return badRequest(ctx, "Invalid proofs request: "+err.Error())
	}

	artifacts, err := s.getDeliveryProofsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err, "Failed to retrieve proofs")
	}

	response := make([]ProofArtifactView, 0, len(artifacts))
	for _, artifact := range artifacts {
		response = append(response, ProofArtifactView{
			ID:         artifact.ID.String(),
			CourierID:  artifact.CourierID.String(),
			PhotoType:  artifact.PhotoType,
			URL:        artifact.URL,
			Verified:   artifact.Verified,
			Confidence: artifact.Confidence,
			CapturedAt: artifact.CapturedAt,
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

// badRequest renders a 400 with the given message.
func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// respondError maps application errors to HTTP statuses: missing objects
// to 404, validation failures to 400, everything else to 500 with the
// fallback message so persistence details stay out of responses.
func respondError(ctx echo.Context, err error, fallback string) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, Error{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	default:
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: fallback,
		})
	}
}

func scoreViewFromDomain(score *scoring.ReliabilityScore) ScoreResponse {
	metrics := score.Metrics()

	badges := make([]BadgeView, 0, len(score.Badges()))
	for _, badge := range score.Badges() {
		badges = append(badges, BadgeView{
			ID:          badge.ID,
			Name:        badge.Name,
			Description: badge.Description,
			Icon:        badge.Icon,
			EarnedAt:    badge.EarnedAt,
		})
	}

	return ScoreResponse{
		CourierID:         score.CourierID().String(),
		SuccessRate:       metrics.SuccessRate,
		OnTimeRate:        metrics.OnTimeRate,
		CustomerRatingAvg: metrics.CustomerRatingAvg,
		IncidentRate:      metrics.IncidentRate,
		Verified:          metrics.Verified,
		TenureMonths:      metrics.TenureMonths,
		Overall:           score.Overall(),
		Tier:              score.Tier().String(),
		Badges:            badges,
		ComputedAt:        score.ComputedAt(),
	}
}

func scoreViewFromReadModel(score queries.GetScoreQueryResponse) ScoreResponse {
	badges := make([]BadgeView, 0, len(score.Badges))
	for _, badge := range score.Badges {
		badges = append(badges, BadgeView{
			ID:          badge.ID,
			Name:        badge.Name,
			Description: badge.Description,
			Icon:        badge.Icon,
			EarnedAt:    badge.EarnedAt,
		})
	}

	return ScoreResponse{
		CourierID:         score.CourierID.String(),
		SuccessRate:       score.SuccessRate,
		OnTimeRate:        score.OnTimeRate,
		CustomerRatingAvg: score.CustomerRatingAvg,
		IncidentRate:      score.IncidentRate,
		Verified:          score.Verified,
		TenureMonths:      score.TenureMonths,
		Overall:           score.Overall,
		Tier:              score.Tier,
		Badges:            badges,
		ComputedAt:        score.ComputedAt,
	}
}
