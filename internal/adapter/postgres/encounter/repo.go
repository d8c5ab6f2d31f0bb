// Package encounter implements the saved-encounter repository using
// PostgreSQL. Combatants are stored as a JSONB array in initiative order.
package encounter

import (
	"context"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	postgres "github.com/lmdrew96/FeyForge-sub001/internal/adapter/postgres"
	"github.com/lmdrew96/FeyForge-sub001/internal/domain"
)

const table = "encounters"

var columns = []string{"id", "campaign_id", "name", "combatants", "round", "created_at", "updated_at"}

// Repo provides saved-encounter persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new encounter repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type row struct {
	ID         string             `db:"id"`
	CampaignID string             `db:"campaign_id"`
	Name       string             `db:"name"`
	Combatants []domain.Combatant `db:"combatants"`
	Round      int                `db:"round"`
	CreatedAt  time.Time          `db:"created_at"`
	UpdatedAt  time.Time          `db:"updated_at"`
}

func (r row) toDomain() domain.SavedEncounter {
	combatants := r.Combatants
	if combatants == nil {
		combatants = []domain.Combatant{}
	}
	return domain.SavedEncounter{
		Meta:       domain.Meta{ID: r.ID, CreatedAt: r.CreatedAt, UpdatedAt: r.UpdatedAt},
		CampaignID: r.CampaignID,
		Name:       r.Name,
		Combatants: combatants,
		Round:      r.Round,
	}
}

func (r *Repo) List(ctx context.Context, ownerID, campaignID string) ([]domain.SavedEncounter, error) {
	where := squirrel.Eq{"owner_id": ownerID}
	if campaignID != "" {
		where["campaign_id"] = campaignID
	}
	q := postgres.Builder().Select(columns...).From(table).Where(where).OrderBy("created_at", "id")

	var rows []row
	if err := postgres.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, q); err != nil {
		return nil, postgres.MapError(err, "encounter", "*")
	}

	out := make([]domain.SavedEncounter, len(rows))
	for i, rw := range rows {
		out[i] = rw.toDomain()
	}
	return out, nil
}

func (r *Repo) Get(ctx context.Context, ownerID, id string) (domain.SavedEncounter, error) {
	q := postgres.Builder().Select(columns...).From(table).Where(squirrel.Eq{"id": id, "owner_id": ownerID})

	var rw row
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &rw, q); err != nil {
		return domain.SavedEncounter{}, postgres.MapError(err, "encounter", id)
	}
	return rw.toDomain(), nil
}

func (r *Repo) Create(ctx context.Context, ownerID string, e domain.SavedEncounter) (domain.SavedEncounter, error) {
	q := postgres.Builder().Insert(table).
		Columns("owner_id", "campaign_id", "name", "combatants", "round").
		Values(ownerID, e.CampaignID, e.Name, e.Combatants, e.Round).
		Suffix("RETURNING " + postgres.ColumnList(columns))

	var rw row
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &rw, q); err != nil {
		return domain.SavedEncounter{}, postgres.MapError(err, "encounter", "new")
	}
	return rw.toDomain(), nil
}

func (r *Repo) Rename(ctx context.Context, ownerID, id, name string) (domain.SavedEncounter, error) {
	q := postgres.Builder().Update(table).
		Set("name", name).
		Set("updated_at", squirrel.Expr("clock_timestamp()")).
		Where(squirrel.Eq{"id": id, "owner_id": ownerID}).
		Suffix("RETURNING " + postgres.ColumnList(columns))

	var rw row
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &rw, q); err != nil {
		return domain.SavedEncounter{}, postgres.MapError(err, "encounter", id)
	}
	return rw.toDomain(), nil
}

func (r *Repo) Delete(ctx context.Context, ownerID, id string) error {
	q := postgres.Builder().Delete(table).Where(squirrel.Eq{"id": id, "owner_id": ownerID})

	n, err := postgres.Exec(ctx, postgres.QuerierFromCtx(ctx, r.db), q)
	if err != nil {
		return postgres.MapError(err, "encounter", id)
	}
	if n == 0 {
		return postgres.MapError(pgx.ErrNoRows, "encounter", id)
	}
	return nil
}
