package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/xavierca1/crm-backend/internal/entity"
)

const uniqueViolation = "23505"

const leadColumns = "id, name, email, phone, source, status, created_at, updated_at"

type LeadRepository struct {
	DB *sql.DB
}

func NewLeadRepository(db *sql.DB) *LeadRepository {
	return &LeadRepository{DB: db}
}

// Create inserts a lead, generating the id and applying the enum defaults.
// Emails are stored lowercased; a duplicate maps to ErrDuplicateEmail.
func (r *LeadRepository) Create(ctx context.Context, lead *entity.Lead) error {
	if lead.ID == "" {
		lead.ID = uuid.NewString()
	}
	lead.Email = strings.ToLower(strings.TrimSpace(lead.Email))
	if lead.Source == "" {
		lead.Source = entity.SourceWebsite
	}
	if lead.Status == "" {
		lead.Status = entity.StatusNew
	}

	now := time.Now().UTC()
	query := `
		INSERT INTO leads (id, name, email, phone, source, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $7)
	`

	_, err := r.DB.ExecContext(ctx, query,
		lead.ID, lead.Name, lead.Email, lead.Phone, lead.Source, lead.Status, now,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == uniqueViolation {
			return entity.ErrDuplicateEmail
		}
		log.Printf("lead insert failed: %v", err)
		return err
	}

	lead.CreatedAt = now
	lead.UpdatedAt = now
	return nil
}

func (r *LeadRepository) Find(ctx context.Context, filter entity.LeadFilter, sort entity.LeadSort, page entity.Pagination) ([]entity.Lead, error) {
	where, args := buildWhere(filter)

	query := fmt.Sprintf(
		"SELECT %s FROM leads%s ORDER BY %s LIMIT $%d OFFSET $%d",
		leadColumns, where, orderBy(sort), len(args)+1, len(args)+2,
	)
	args = append(args, page.Limit, page.Skip)

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var leads []entity.Lead
	for rows.Next() {
		var l entity.Lead
		if err := rows.Scan(&l.ID, &l.Name, &l.Email, &l.Phone, &l.Source, &l.Status, &l.CreatedAt, &l.UpdatedAt); err != nil {
			return nil, err
		}
		leads = append(leads, l)
	}
	return leads, rows.Err()
}

func (r *LeadRepository) Count(ctx context.Context, filter entity.LeadFilter) (int, error) {
	where, args := buildWhere(filter)

	var total int
	err := r.DB.QueryRowContext(ctx, "SELECT COUNT(*) FROM leads"+where, args...).Scan(&total)
	return total, err
}

// FindByID treats a malformed id like any other miss: not found.
func (r *LeadRepository) FindByID(ctx context.Context, id string) (*entity.Lead, error) {
	query := fmt.Sprintf("SELECT %s FROM leads WHERE id = $1", leadColumns)

	var l entity.Lead
	err := r.DB.QueryRowContext(ctx, query, id).
		Scan(&l.ID, &l.Name, &l.Email, &l.Phone, &l.Source, &l.Status, &l.CreatedAt, &l.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrLeadNotFound
	}
	if err != nil {
		return nil, err
	}
	return &l, nil
}

// CountByStatus groups on whatever status values the table holds, not just
// the canonical four.
func (r *LeadRepository) CountByStatus(ctx context.Context) ([]entity.StatusCount, error) {
	rows, err := r.DB.QueryContext(ctx, "SELECT status, COUNT(*) FROM leads GROUP BY status")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var counts []entity.StatusCount
	for rows.Next() {
		var c entity.StatusCount
		if err := rows.Scan(&c.Status, &c.Count); err != nil {
			return nil, err
		}
		counts = append(counts, c)
	}
	return counts, rows.Err()
}

func buildWhere(filter entity.LeadFilter) (string, []interface{}) {
	var conds []string
	var args []interface{}

	if filter.Search != "" {
		pattern := "%" + escapeLike(filter.Search) + "%"
		args = append(args, pattern)
		n := len(args)
		conds = append(conds, fmt.Sprintf(`(name ILIKE $%d ESCAPE '\' OR email ILIKE $%d ESCAPE '\')`, n, n))
	}
	if filter.Status != "" {
		args = append(args, filter.Status)
		conds = append(conds, fmt.Sprintf("status = $%d", len(args)))
	}
	if filter.Source != "" {
		args = append(args, filter.Source)
		conds = append(conds, fmt.Sprintf("source = $%d", len(args)))
	}

	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

// orderBy maps the whitelisted sort spec to a column; anything unexpected
// falls back to created_at.
func orderBy(sort entity.LeadSort) string {
	column := "created_at"
	if sort.Field == entity.SortByName {
		column = "name"
	}
	direction := "DESC"
	if sort.Ascending {
		direction = "ASC"
	}
	return column + " " + direction
}

func escapeLike(s string) string {
	replacer := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return replacer.Replace(s)
}
