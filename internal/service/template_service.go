package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/passkit-service/internal/config"
	"github.com/spec-kit/passkit-service/internal/domain"
	"github.com/spec-kit/passkit-service/internal/events"
	"github.com/spec-kit/passkit-service/internal/repository"
	"github.com/spec-kit/passkit-service/internal/wallet"
	apperrors "github.com/spec-kit/passkit-service/pkg/util"
)

// TemplateService coordinates template workflows: validation before
// every write, persistence, and event publication.
type TemplateService struct {
	templates  repository.TemplateRepository
	dispatcher events.Dispatcher
	passes     config.PassConfig
}

// NewTemplateService builds the service.
func NewTemplateService(templates repository.TemplateRepository, dispatcher events.Dispatcher, passes config.PassConfig) *TemplateService {
	return &TemplateService{
		templates:  templates,
		dispatcher: dispatcher,
		passes:     passes,
	}
}

// Validate runs the validator without persisting. The returned list is
// render-ready; empty means valid.
func (s *TemplateService) Validate(universal *domain.UniversalPassTemplate) []string {
	return wallet.ValidateUniversal(universal)
}

// Create validates and persists a new template. The configuration is
// stored verbatim; name, description, type and status are lifted into
// indexed columns for listing.
func (s *TemplateService) Create(ctx context.Context, actorID string, universal domain.UniversalPassTemplate) (*domain.Template, error) {
	universal.NFC = wallet.NormalizeNFC(universal.NFC)
	if universal.Status == "" {
		universal.Status = domain.TemplateStatusDraft
	}

	if violations := wallet.ValidateUniversal(&universal); len(violations) > 0 {
		return nil, apperrors.NewTemplateInvalid(violations)
	}

	template := &domain.Template{
		Name:           universal.Name,
		Description:    universal.Description,
		Type:           universal.Type,
		Status:         universal.Status,
		OrganizationID: s.passes.DefaultOrganizationID,
		Configuration:  universal,
	}
	if err := s.templates.Create(ctx, template); err != nil {
		return nil, err
	}
	template.Configuration.ID = template.ID

	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:         uuid.NewString(),
		Type:       events.EventTemplateCreated,
		TemplateID: template.ID,
		ActorID:    actorID,
		Timestamp:  time.Now(),
		Payload: events.TemplateCreatedPayload{
			Name:           template.Name,
			Type:           template.Type,
			OrganizationID: template.OrganizationID,
			Status:         template.Status,
		},
	})

	return template, nil
}

// Update replaces a template's configuration wholesale after validating
// it. Missing status falls back to DRAFT.
func (s *TemplateService) Update(ctx context.Context, actorID, id string, universal domain.UniversalPassTemplate) (*domain.Template, error) {
	existing, err := s.templates.GetByID(ctx, id)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("template", map[string]any{"id": id})
		}
		return nil, err
	}

	universal.ID = id
	universal.NFC = wallet.NormalizeNFC(universal.NFC)
	if universal.Status == "" {
		universal.Status = domain.TemplateStatusDraft
	}

	if violations := wallet.ValidateUniversal(&universal); len(violations) > 0 {
		return nil, apperrors.NewTemplateInvalid(violations)
	}

	oldStatus := existing.Status
	existing.Name = universal.Name
	existing.Description = universal.Description
	existing.Type = universal.Type
	existing.Status = universal.Status
	existing.Configuration = universal

	if err := s.templates.Update(ctx, existing); err != nil {
		return nil, err
	}

	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:         uuid.NewString(),
		Type:       events.EventTemplateUpdated,
		TemplateID: existing.ID,
		ActorID:    actorID,
		Timestamp:  time.Now(),
		Payload: events.TemplateUpdatedPayload{
			Name:      existing.Name,
			OldStatus: oldStatus,
			NewStatus: existing.Status,
		},
	})

	return existing, nil
}

// Get fetches one template by id.
func (s *TemplateService) Get(ctx context.Context, id string) (*domain.Template, error) {
	template, err := s.templates.GetByID(ctx, id)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("template", map[string]any{"id": id})
		}
		return nil, err
	}
	template.Configuration.ID = template.ID
	return template, nil
}

// List returns templates newest first.
func (s *TemplateService) List(ctx context.Context, filter repository.TemplateFilter) ([]domain.Template, error) {
	templates, err := s.templates.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	for i := range templates {
		templates[i].Configuration.ID = templates[i].ID
	}
	return templates, nil
}

// Archive soft-deletes a template by marking it ARCHIVED.
func (s *TemplateService) Archive(ctx context.Context, actorID, id string) error {
	template, err := s.templates.GetByID(ctx, id)
	if err != nil {
		if err == pgx.ErrNoRows {
			return apperrors.NewNotFound("template", map[string]any{"id": id})
		}
		return err
	}

	if err := s.templates.Archive(ctx, id); err != nil {
		return err
	}

	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:         uuid.NewString(),
		Type:       events.EventTemplateArchived,
		TemplateID: id,
		ActorID:    actorID,
		Timestamp:  time.Now(),
		Payload:    events.TemplateArchivedPayload{Name: template.Name},
	})

	return nil
}
