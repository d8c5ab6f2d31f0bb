// Package campaign implements the Campaign repository using PostgreSQL.
package campaign

import (
	"context"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	postgres "github.com/lmdrew96/FeyForge-sub001/internal/adapter/postgres"
	"github.com/lmdrew96/FeyForge-sub001/internal/domain"
)

const table = "campaigns"

var columns = []string{"id", "owner_id", "name", "description", "created_at", "updated_at"}

// Repo provides campaign persistence backed by PostgreSQL. Every query is
// scoped to the owning user.
type Repo struct {
	db postgres.Querier
}

// New creates a new campaign repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type row struct {
	ID          string    `db:"id"`
	OwnerID     string    `db:"owner_id"`
	Name        string    `db:"name"`
	Description string    `db:"description"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

func (r row) toDomain() domain.Campaign {
	return domain.Campaign{
		Meta:        domain.Meta{ID: r.ID, CreatedAt: r.CreatedAt, UpdatedAt: r.UpdatedAt},
		OwnerID:     r.OwnerID,
		Name:        r.Name,
		Description: r.Description,
	}
}

// List returns the user's campaigns, oldest first.
func (r *Repo) List(ctx context.Context, ownerID string) ([]domain.Campaign, error) {
	q := postgres.Builder().Select(columns...).From(table).
		Where(squirrel.Eq{"owner_id": ownerID}).
		OrderBy("created_at", "id")

	var rows []row
	if err := postgres.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, q); err != nil {
		return nil, postgres.MapError(err, "campaign", "*")
	}

	out := make([]domain.Campaign, len(rows))
	for i, rw := range rows {
		out[i] = rw.toDomain()
	}
	return out, nil
}

// Get returns one campaign. ForUpdate locks the row inside a transaction.
func (r *Repo) Get(ctx context.Context, ownerID, id string, forUpdate bool) (domain.Campaign, error) {
	q := postgres.Builder().Select(columns...).From(table).
		Where(squirrel.Eq{"id": id, "owner_id": ownerID})
	if forUpdate {
		q = q.Suffix("FOR UPDATE")
	}

	var rw row
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &rw, q); err != nil {
		return domain.Campaign{}, postgres.MapError(err, "campaign", id)
	}
	return rw.toDomain(), nil
}

// Create inserts a campaign and returns it with its generated id.
func (r *Repo) Create(ctx context.Context, c domain.Campaign) (domain.Campaign, error) {
	q := postgres.Builder().Insert(table).
		Columns("owner_id", "name", "description").
		Values(c.OwnerID, c.Name, c.Description).
		Suffix("RETURNING " + postgres.ColumnList(columns))

	var rw row
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &rw, q); err != nil {
		return domain.Campaign{}, postgres.MapError(err, "campaign", "new")
	}
	return rw.toDomain(), nil
}

// Update stores the mutable fields of c and bumps updated_at.
func (r *Repo) Update(ctx context.Context, c domain.Campaign) (domain.Campaign, error) {
	q := postgres.Builder().Update(table).
		Set("name", c.Name).
		Set("description", c.Description).
		Set("updated_at", squirrel.Expr("clock_timestamp()")).
		Where(squirrel.Eq{"id": c.ID, "owner_id": c.OwnerID}).
		Suffix("RETURNING " + postgres.ColumnList(columns))

	var rw row
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &rw, q); err != nil {
		return domain.Campaign{}, postgres.MapError(err, "campaign", c.ID)
	}
	return rw.toDomain(), nil
}

// Delete removes a campaign; its NPCs, locations, conversations and
// encounters go with it through ON DELETE CASCADE.
func (r *Repo) Delete(ctx context.Context, ownerID, id string) error {
	q := postgres.Builder().Delete(table).Where(squirrel.Eq{"id": id, "owner_id": ownerID})

	n, err := postgres.Exec(ctx, postgres.QuerierFromCtx(ctx, r.db), q)
	if err != nil {
		return postgres.MapError(err, "campaign", id)
	}
	if n == 0 {
		return postgres.MapError(pgx.ErrNoRows, "campaign", id)
	}
	return nil
}
