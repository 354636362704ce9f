package dto

import (
	"time"

	"github.com/spec-kit/passkit-service/internal/domain"
)

// SaveTemplateRequest is the create/update payload: the universal
// template document the builder produces.
type SaveTemplateRequest struct {
	Template domain.UniversalPassTemplate `json:"template"`
}

// TemplateSummary is the listing row for the dashboard.
type TemplateSummary struct {
	ID             string                `json:"id"`
	Name           string                `json:"name"`
	Description    string                `json:"description"`
	Type           domain.PassType       `json:"type"`
	Status         domain.TemplateStatus `json:"status"`
	OrganizationID string                `json:"organization_id"`
	CreatedAt      time.Time             `json:"created_at"`
	UpdatedAt      time.Time             `json:"updated_at"`
}

// TemplateDetailResponse carries the full configuration document.
type TemplateDetailResponse struct {
	TemplateSummary
	Configuration domain.UniversalPassTemplate `json:"configuration"`
}

// ValidationResponse carries the render-ready violation list.
type ValidationResponse struct {
	Valid      bool     `json:"valid"`
	Violations []string `json:"violations"`
}
