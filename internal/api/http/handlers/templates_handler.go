package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/passkit-service/internal/api/dto"
	"github.com/spec-kit/passkit-service/internal/auth"
	"github.com/spec-kit/passkit-service/internal/domain"
	"github.com/spec-kit/passkit-service/internal/repository"
	"github.com/spec-kit/passkit-service/internal/service"
	apperrors "github.com/spec-kit/passkit-service/pkg/util"
)

// TemplatesHandler manages pass template endpoints.
type TemplatesHandler struct {
	templates *service.TemplateService
	previews  *service.PreviewService
}

// NewTemplatesHandler constructs handler.
func NewTemplatesHandler(templates *service.TemplateService, previews *service.PreviewService) *TemplatesHandler {
	return &TemplatesHandler{templates: templates, previews: previews}
}

// Create POST /templates.
func (h *TemplatesHandler) Create(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("user required")
	}
	var req dto.SaveTemplateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	template, err := h.templates.Create(c.Context(), principal.User.ID, req.Template)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": templateDetail(template)})
}

// List GET /templates.
func (h *TemplatesHandler) List(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("user required")
	}

	filter := parseTemplateQuery(c)
	filter.OrganizationID = &principal.User.OrganizationID

	templates, err := h.templates.List(c.Context(), filter)
	if err != nil {
		return err
	}
	items := make([]dto.TemplateSummary, 0, len(templates))
	for i := range templates {
		items = append(items, templateSummary(&templates[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// Get GET /templates/:id.
func (h *TemplatesHandler) Get(c *fiber.Ctx) error {
	template, err := h.templates.Get(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": templateDetail(template)})
}

// Update PUT /templates/:id.
func (h *TemplatesHandler) Update(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("user required")
	}
	var req dto.SaveTemplateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	template, err := h.templates.Update(c.Context(), principal.User.ID, c.Params("id"), req.Template)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": templateDetail(template)})
}

// Archive DELETE /templates/:id.
func (h *TemplatesHandler) Archive(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("user required")
	}
	if err := h.templates.Archive(c.Context(), principal.User.ID, c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

// Validate POST /templates/validate. Dry run for builder live feedback.
func (h *TemplatesHandler) Validate(c *fiber.Ctx) error {
	var req dto.SaveTemplateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	violations := h.templates.Validate(&req.Template)
	return c.JSON(fiber.Map{"data": dto.ValidationResponse{
		Valid:      len(violations) == 0,
		Violations: violations,
	}})
}

// ApplePreview GET /templates/:id/apple.
func (h *TemplatesHandler) ApplePreview(c *fiber.Ctx) error {
	template, err := h.templates.Get(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	apple, err := h.previews.ApplePass(c.Context(), template)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": apple})
}

func parseTemplateQuery(c *fiber.Ctx) repository.TemplateFilter {
	filter := repository.TemplateFilter{}
	if statusStr := c.Query("status"); statusStr != "" {
		for _, part := range strings.Split(statusStr, ",") {
			filter.Statuses = append(filter.Statuses, domain.TemplateStatus(strings.TrimSpace(part)))
		}
	}
	if typeStr := c.Query("type"); typeStr != "" {
		for _, part := range strings.Split(typeStr, ",") {
			filter.Types = append(filter.Types, domain.PassType(strings.TrimSpace(part)))
		}
	}
	if search := c.Query("search"); search != "" {
		filter.SearchTerm = &search
	}
	page := parseInt(c.Query("page"), 1)
	pageSize := parseInt(c.Query("page_size"), 20)
	filter.Offset = (page - 1) * pageSize
	filter.Limit = pageSize
	return filter
}

func parseInt(val string, def int) int {
	if val == "" {
		return def
	}
	parsed, err := strconv.Atoi(val)
	if err != nil || parsed <= 0 {
		return def
	}
	return parsed
}

func templateSummary(template *domain.Template) dto.TemplateSummary {
	return dto.TemplateSummary{
		ID:             template.ID,
		Name:           template.Name,
		Description:    template.Description,
		Type:           template.Type,
		Status:         template.Status,
		OrganizationID: template.OrganizationID,
		CreatedAt:      template.CreatedAt,
		UpdatedAt:      template.UpdatedAt,
	}
}

func templateDetail(template *domain.Template) dto.TemplateDetailResponse {
	return dto.TemplateDetailResponse{
		TemplateSummary: templateSummary(template),
		Configuration:   template.Configuration,
	}
}
