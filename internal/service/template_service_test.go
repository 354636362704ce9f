package service

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/passkit-service/internal/config"
	"github.com/spec-kit/passkit-service/internal/domain"
	"github.com/spec-kit/passkit-service/internal/events"
	"github.com/spec-kit/passkit-service/internal/repository"
	apperrors "github.com/spec-kit/passkit-service/pkg/util"
)

type fakeTemplateRepo struct {
	seq   int
	items map[string]domain.Template
}

func newFakeTemplateRepo() *fakeTemplateRepo {
	return &fakeTemplateRepo{items: map[string]domain.Template{}}
}

func (r *fakeTemplateRepo) Create(_ context.Context, template *domain.Template) error {
	r.seq++
	template.ID = "tmpl-" + strconv.Itoa(r.seq)
	r.items[template.ID] = *template
	return nil
}

func (r *fakeTemplateRepo) Update(_ context.Context, template *domain.Template) error {
	if _, ok := r.items[template.ID]; !ok {
		return pgx.ErrNoRows
	}
	r.items[template.ID] = *template
	return nil
}

func (r *fakeTemplateRepo) GetByID(_ context.Context, id string) (*domain.Template, error) {
	template, ok := r.items[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &template, nil
}

func (r *fakeTemplateRepo) List(_ context.Context, _ repository.TemplateFilter) ([]domain.Template, error) {
	result := make([]domain.Template, 0, len(r.items))
	for _, template := range r.items {
		result = append(result, template)
	}
	return result, nil
}

func (r *fakeTemplateRepo) Archive(_ context.Context, id string) error {
	template, ok := r.items[id]
	if !ok {
		return pgx.ErrNoRows
	}
	template.Status = domain.TemplateStatusArchived
	r.items[id] = template
	return nil
}

type recordingDispatcher struct {
	published []events.Event
}

func (d *recordingDispatcher) Publish(_ context.Context, event events.Event) error {
	d.published = append(d.published, event)
	return nil
}

func (d *recordingDispatcher) Subscribe(_ events.EventType, _ events.EventHandler) {}

func validUniversal() domain.UniversalPassTemplate {
	return domain.UniversalPassTemplate{
		Name:             "VIP Ticket",
		Description:      "Backstage access",
		Type:             domain.PassTypeEventTicket,
		OrganizationName: "Acme",
		Barcode:          domain.Barcode{Format: domain.BarcodeFormatQR, Message: "m"},
		Structure: domain.PassStructure{
			PrimaryFields: []domain.PassField{{Key: "seat", Label: "Seat", Value: "12A"}},
		},
		PlatformSpecific: domain.PlatformSpecific{
			Apple: domain.ApplePlatform{
				PassTypeIdentifier: "ABC.com.acme.ticket",
				TeamIdentifier:     "1234567890",
				FormatVersion:      1,
			},
		},
	}
}

func newTestService() (*TemplateService, *fakeTemplateRepo, *recordingDispatcher) {
	repo := newFakeTemplateRepo()
	dispatcher := &recordingDispatcher{}
	svc := NewTemplateService(repo, dispatcher, config.PassConfig{
		DefaultOrganizationID: "default-org-id",
		BundleID:              "com.acme",
	})
	return svc, repo, dispatcher
}

func TestTemplateService_CreateValid(t *testing.T) {
	svc, repo, dispatcher := newTestService()

	template, err := svc.Create(context.Background(), "user-1", validUniversal())
	require.NoError(t, err)
	assert.NotEmpty(t, template.ID)
	assert.Equal(t, domain.TemplateStatusDraft, template.Status)
	assert.Equal(t, "default-org-id", template.OrganizationID)
	assert.Equal(t, template.ID, template.Configuration.ID)

	require.Len(t, repo.items, 1)
	require.Len(t, dispatcher.published, 1)
	assert.Equal(t, events.EventTemplateCreated, dispatcher.published[0].Type)
	assert.Equal(t, "user-1", dispatcher.published[0].ActorID)
}

func TestTemplateService_CreateInvalidIsRejected(t *testing.T) {
	svc, repo, dispatcher := newTestService()

	universal := validUniversal()
	universal.Structure.PrimaryFields = nil

	_, err := svc.Create(context.Background(), "user-1", universal)
	require.Error(t, err)

	var domainErr *apperrors.DomainError
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, "TEMPLATE_INVALID", domainErr.Code)
	violations, ok := domainErr.Details["violations"].([]string)
	require.True(t, ok)
	assert.Contains(t, violations, "At least one primary field is required")

	assert.Empty(t, repo.items, "invalid template must not be persisted")
	assert.Empty(t, dispatcher.published)
}

func TestTemplateService_UpdateReplacesWholeObject(t *testing.T) {
	svc, repo, dispatcher := newTestService()

	created, err := svc.Create(context.Background(), "user-1", validUniversal())
	require.NoError(t, err)

	replacement := validUniversal()
	replacement.Name = "Renamed"
	replacement.Status = domain.TemplateStatusActive

	updated, err := svc.Update(context.Background(), "user-1", created.ID, replacement)
	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Name)
	assert.Equal(t, domain.TemplateStatusActive, updated.Status)
	assert.Equal(t, created.ID, updated.Configuration.ID)

	stored := repo.items[created.ID]
	assert.Equal(t, "Renamed", stored.Configuration.Name)

	require.Len(t, dispatcher.published, 2)
	assert.Equal(t, events.EventTemplateUpdated, dispatcher.published[1].Type)
}

func TestTemplateService_UpdateMissingStatusDefaultsToDraft(t *testing.T) {
	svc, _, _ := newTestService()

	created, err := svc.Create(context.Background(), "user-1", validUniversal())
	require.NoError(t, err)

	replacement := validUniversal()
	replacement.Status = ""

	updated, err := svc.Update(context.Background(), "user-1", created.ID, replacement)
	require.NoError(t, err)
	assert.Equal(t, domain.TemplateStatusDraft, updated.Status)
}

func TestTemplateService_UpdateUnknownID(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.Update(context.Background(), "user-1", "missing", validUniversal())
	require.Error(t, err)

	var domainErr *apperrors.DomainError
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, "NOT_FOUND", domainErr.Code)
}

func TestTemplateService_ArchivePublishesEvent(t *testing.T) {
	svc, repo, dispatcher := newTestService()

	created, err := svc.Create(context.Background(), "user-1", validUniversal())
	require.NoError(t, err)

	require.NoError(t, svc.Archive(context.Background(), "user-1", created.ID))
	assert.Equal(t, domain.TemplateStatusArchived, repo.items[created.ID].Status)

	require.Len(t, dispatcher.published, 2)
	assert.Equal(t, events.EventTemplateArchived, dispatcher.published[1].Type)
}

func TestTemplateService_ValidateDryRun(t *testing.T) {
	svc, repo, _ := newTestService()

	universal := validUniversal()
	assert.Empty(t, svc.Validate(&universal))

	universal.PlatformSpecific.Apple.TeamIdentifier = "SHORT"
	violations := svc.Validate(&universal)
	assert.Equal(t, []string{"Team Identifier must be 10 characters"}, violations)

	assert.Empty(t, repo.items, "dry run must not persist")
}

func TestTemplateService_NFCNormalizedOnCreate(t *testing.T) {
	svc, _, _ := newTestService()

	universal := validUniversal()
	universal.NFC = domain.NFCSettings{
		Enabled:                true,
		Message:                "tap",
		RequiresAuthentication: true,
	}

	template, err := svc.Create(context.Background(), "user-1", universal)
	require.NoError(t, err)
	assert.True(t, template.Configuration.NFC.AccessControl.RequiresAuthentication)
	assert.True(t, template.Configuration.NFC.RequiresAuthentication)
}
