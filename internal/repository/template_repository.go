package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/passkit-service/internal/domain"
)

// TemplateFilter captures listing parameters for the dashboard.
type TemplateFilter struct {
	OrganizationID *string
	Statuses       []domain.TemplateStatus
	Types          []domain.PassType
	SearchTerm     *string
	Limit          int
	Offset         int
}

// TemplateRepository encapsulates pass template persistence. The
// configuration document is stored verbatim as JSONB next to the
// indexed listing columns.
type TemplateRepository interface {
	Create(ctx context.Context, template *domain.Template) error
	Update(ctx context.Context, template *domain.Template) error
	GetByID(ctx context.Context, id string) (*domain.Template, error)
	List(ctx context.Context, filter TemplateFilter) ([]domain.Template, error)
	Archive(ctx context.Context, id string) error
}

type templateRepository struct {
	pool *pgxpool.Pool
}

// NewTemplateRepository instantiates the repository.
func NewTemplateRepository(pool *pgxpool.Pool) TemplateRepository {
	return &templateRepository{pool: pool}
}

func (r *templateRepository) Create(ctx context.Context, template *domain.Template) error {
	configuration, err := json.Marshal(template.Configuration)
	if err != nil {
		return fmt.Errorf("encode configuration: %w", err)
	}

	const query = `
        INSERT INTO templates (name, description, type, status, organization_id, configuration)
        VALUES ($1,$2,$3,$4,$5,$6)
        RETURNING id, created_at, updated_at`
	return r.pool.QueryRow(ctx, query,
		template.Name,
		template.Description,
		template.Type,
		template.Status,
		template.OrganizationID,
		configuration,
	).Scan(&template.ID, &template.CreatedAt, &template.UpdatedAt)
}

func (r *templateRepository) Update(ctx context.Context, template *domain.Template) error {
	configuration, err := json.Marshal(template.Configuration)
	if err != nil {
		return fmt.Errorf("encode configuration: %w", err)
	}

	const query = `
        UPDATE templates SET name=$1, description=$2, type=$3, status=$4, configuration=$5, updated_at=NOW()
        WHERE id=$6`
	cmd, err := r.pool.Exec(ctx, query,
		template.Name,
		template.Description,
		template.Type,
		template.Status,
		configuration,
		template.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *templateRepository) GetByID(ctx context.Context, id string) (*domain.Template, error) {
	const query = `
        SELECT id, name, description, type, status, organization_id, configuration, created_at, updated_at
        FROM templates WHERE id=$1`

	var template domain.Template
	var configuration []byte
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&template.ID,
		&template.Name,
		&template.Description,
		&template.Type,
		&template.Status,
		&template.OrganizationID,
		&configuration,
		&template.CreatedAt,
		&template.UpdatedAt,
	); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(configuration, &template.Configuration); err != nil {
		return nil, fmt.Errorf("decode configuration: %w", err)
	}
	return &template, nil
}

func (r *templateRepository) List(ctx context.Context, filter TemplateFilter) ([]domain.Template, error) {
	base := `SELECT id, name, description, type, status, organization_id, configuration, created_at, updated_at
             FROM templates`
	clauses := []string{"1=1"}
	args := []any{}

	if filter.OrganizationID != nil {
		args = append(args, *filter.OrganizationID)
		clauses = append(clauses, fmt.Sprintf("organization_id=$%d", len(args)))
	}
	if len(filter.Statuses) > 0 {
		placeholders := make([]string, len(filter.Statuses))
		for i, status := range filter.Statuses {
			args = append(args, status)
			placeholders[i] = fmt.Sprintf("$%d", len(args))
		}
		clauses = append(clauses, fmt.Sprintf("status IN (%s)", strings.Join(placeholders, ",")))
	}
	if len(filter.Types) > 0 {
		placeholders := make([]string, len(filter.Types))
		for i, passType := range filter.Types {
			args = append(args, passType)
			placeholders[i] = fmt.Sprintf("$%d", len(args))
		}
		clauses = append(clauses, fmt.Sprintf("type IN (%s)", strings.Join(placeholders, ",")))
	}
	if filter.SearchTerm != nil && strings.TrimSpace(*filter.SearchTerm) != "" {
		search := "%" + strings.ToLower(strings.TrimSpace(*filter.SearchTerm)) + "%"
		args = append(args, search)
		placeholder := fmt.Sprintf("$%d", len(args))
		clauses = append(clauses, fmt.Sprintf("(LOWER(name) LIKE %s OR LOWER(description) LIKE %s)", placeholder, placeholder))
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 20
	}
	offset := filter.Offset
	if offset < 0 {
		offset = 0
	}

	query := fmt.Sprintf(`%s WHERE %s ORDER BY created_at DESC LIMIT %d OFFSET %d`,
		base, strings.Join(clauses, " AND "), limit, offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanTemplates(rows)
}

func (r *templateRepository) Archive(ctx context.Context, id string) error {
	const query = `UPDATE templates SET status=$1, updated_at=NOW() WHERE id=$2`
	cmd, err := r.pool.Exec(ctx, query, domain.TemplateStatusArchived, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func scanTemplates(rows pgx.Rows) ([]domain.Template, error) {
	var result []domain.Template
	for rows.Next() {
		var template domain.Template
		var configuration []byte
		if err := rows.Scan(
			&template.ID,
			&template.Name,
			&template.Description,
			&template.Type,
			&template.Status,
			&template.OrganizationID,
			&configuration,
			&template.CreatedAt,
			&template.UpdatedAt,
		); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(configuration, &template.Configuration); err != nil {
			return nil, fmt.Errorf("decode configuration: %w", err)
		}
		result = append(result, template)
	}
	return result, rows.Err()
}
