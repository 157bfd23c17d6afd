package http

import "time"

// Error is the JSON error body returned on any failed request.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// IssuePolicyRequest is the body of POST /api/v1/deliveries/:deliveryId/insurance.
type IssuePolicyRequest struct {
	DeclaredValue int64  `json:"declaredValue"`
	Tier          string `json:"tier"`
}

// PolicyResponse describes an issued insurance policy.
type PolicyResponse struct {
	ID            string    `json:"id"`
	DeliveryID    string    `json:"deliveryId"`
	Tier          string    `json:"tier"`
	DeclaredValue int64     `json:"declaredValue"`
	Premium       int64     `json:"premium"`
	Coverage      int64     `json:"coverage"`
	IsActive      bool      `json:"isActive"`
	ActivatedAt   time.Time `json:"activatedAt"`
	ExpiresAt     time.Time `json:"expiresAt"`
}

// QuoteRequest is the body of POST /api/v1/insurance/quotes.
type QuoteRequest struct {
	DeclaredValue int64  `json:"declaredValue"`
	Tier          string `json:"tier"`
}

// QuoteResponse is a priced quote. Quoting never persists anything.
type QuoteResponse struct {
	Tier     string `json:"tier"`
	Premium  int64  `json:"premium"`
	Coverage int64  `json:"coverage"`
}

// FileClaimRequest is the body of POST /api/v1/insurance/claims.
type FileClaimRequest struct {
	PolicyID      string   `json:"policyId"`
	DeliveryID    string   `json:"deliveryId"`
	FilerID       string   `json:"filerId"`
	ClaimType     string   `json:"claimType"`
	Description   string   `json:"description"`
	EvidenceURLs  []string `json:"evidenceUrls"`
	ClaimedAmount int64    `json:"claimedAmount"`
}

// ClaimResponse describes a filed claim.
type ClaimResponse struct {
	ID            string    `json:"id"`
	PolicyID      string    `json:"policyId"`
	DeliveryID    string    `json:"deliveryId"`
	ClaimType     string    `json:"claimType"`
	ClaimedAmount int64     `json:"claimedAmount"`
	Status        string    `json:"status"`
	FiledAt       time.Time `json:"filedAt"`
}

// CreateTrackingLinkRequest is the body of POST /api/v1/deliveries/:deliveryId/share.
// Nil visibility flags take the server defaults.
type CreateTrackingLinkRequest struct {
	ShowDriverName  *bool  `json:"showDriverName"`
	ShowDriverPhone *bool  `json:"showDriverPhone"`
	ShowDriverPhoto *bool  `json:"showDriverPhoto"`
	ShowETA         *bool  `json:"showEta"`
	ExpiresInHours  *int   `json:"expiresInHours"`
	RecipientPhone  string `json:"recipientPhone"`
}

// TrackingLinkResponse describes a created share link.
type TrackingLinkResponse struct {
	Code         string    `json:"code"`
	URL          string    `json:"url"`
	ShareMessage string    `json:"shareMessage"`
	ExpiresAt    time.Time `json:"expiresAt"`
}

// TrackingUpdateView is one position update in the public tracking view.
type TrackingUpdateView struct {
	Latitude   float64   `json:"latitude"`
	Longitude  float64   `json:"longitude"`
	Note       string    `json:"note,omitempty"`
	RecordedAt time.Time `json:"recordedAt"`
}

// TrackingViewResponse is the public view behind a share code. Fields the
// link's visibility settings hide are blank or omitted.
type TrackingViewResponse struct {
	DeliveryID       string               `json:"deliveryId"`
	Status           string               `json:"status"`
	CourierName      string               `json:"courierName,omitempty"`
	CourierPhone     string               `json:"courierPhone,omitempty"`
	CourierPhotoURL  string               `json:"courierPhotoUrl,omitempty"`
	EstimatedArrival *time.Time           `json:"estimatedArrival,omitempty"`
	RecipientName    string               `json:"recipientName"`
	ExpiresAt        time.Time            `json:"expiresAt"`
	Updates          []TrackingUpdateView `json:"updates"`
}

// RecordTrackingUpdateRequest is the body of POST /api/v1/deliveries/:deliveryId/updates.
type RecordTrackingUpdateRequest struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Note      string  `json:"note"`
}

// SubmitProofSignature carries the signer details of a proof submission.
type SubmitProofSignature struct {
	Image       []byte `json:"image"`
	SignerName  string `json:"signerName"`
	SignerPhone string `json:"signerPhone"`
}

// SubmitProofLocation is the capture GPS fix, when the device had one.
type SubmitProofLocation struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// SubmitProofRequest is the body of POST /api/v1/deliveries/:deliveryId/proofs.
// Photo fields are base64-encoded image bytes.
type SubmitProofRequest struct {
	CourierID             string                `json:"courierId"`
	RequireRecipientPhoto bool                  `json:"requireRecipientPhoto"`
	RequireSignature      bool                  `json:"requireSignature"`
	PackagePhoto          []byte                `json:"packagePhoto"`
	RecipientPhoto        []byte                `json:"recipientPhoto"`
	Signature             *SubmitProofSignature `json:"signature"`
	Location              *SubmitProofLocation  `json:"location"`
}

// BadgeView is one earned badge in the score response.
type BadgeView struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Icon        string    `json:"icon"`
	EarnedAt    time.Time `json:"earnedAt"`
}

// ScoreResponse is the reliability score served to callers.
type ScoreResponse struct {
	CourierID         string      `json:"courierId"`
	SuccessRate       float64     `json:"successRate"`
	OnTimeRate        float64     `json:"onTimeRate"`
	CustomerRatingAvg float64     `json:"customerRatingAvg"`
	IncidentRate      float64     `json:"incidentRate"`
	Verified          bool        `json:"verified"`
	TenureMonths      int         `json:"tenureMonths"`
	Overall           int         `json:"overall"`
	Tier              string      `json:"tier"`
	Badges            []BadgeView `json:"badges"`
	ComputedAt        time.Time   `json:"computedAt"`
}

// ProofArtifactView is one stored proof artifact.
type ProofArtifactView struct {
	ID         string    `json:"id"`
	CourierID  string    `json:"courierId"`
	PhotoType  string    `json:"photoType"`
	URL        string    `json:"url"`
	Verified   bool      `json:"verified"`
	Confidence float64   `json:"confidence"`
	CapturedAt time.Time `json:"capturedAt"`
}
