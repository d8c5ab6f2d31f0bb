// Package location implements the world-location repository using PostgreSQL.
package location

import (
	"context"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	postgres "github.com/lmdrew96/FeyForge-sub001/internal/adapter/postgres"
	"github.com/lmdrew96/FeyForge-sub001/internal/domain"
)

const table = "locations"

var columns = []string{
	"id", "campaign_id", "name", "visited", "region", "location_type",
	"description", "notes", "created_at", "updated_at",
}

// Repo provides location persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new location repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type row struct {
	ID           string    `db:"id"`
	CampaignID   string    `db:"campaign_id"`
	Name         string    `db:"name"`
	Visited      bool      `db:"visited"`
	Region       string    `db:"region"`
	LocationType string    `db:"location_type"`
	Description  string    `db:"description"`
	Notes        string    `db:"notes"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

func (r row) toDomain() domain.Location {
	return domain.Location{
		Meta:         domain.Meta{ID: r.ID, CreatedAt: r.CreatedAt, UpdatedAt: r.UpdatedAt},
		CampaignID:   r.CampaignID,
		Name:         r.Name,
		Visited:      r.Visited,
		Region:       r.Region,
		LocationType: r.LocationType,
		Description:  r.Description,
		Notes:        r.Notes,
	}
}

// List returns the user's locations, optionally narrowed to one campaign.
func (r *Repo) List(ctx context.Context, ownerID, campaignID string) ([]domain.Location, error) {
	where := squirrel.Eq{"owner_id": ownerID}
	if campaignID != "" {
		where["campaign_id"] = campaignID
	}
	q := postgres.Builder().Select(columns...).From(table).Where(where).OrderBy("created_at", "id")

	var rows []row
	if err := postgres.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, q); err != nil {
		return nil, postgres.MapError(err, "location", "*")
	}

	out := make([]domain.Location, len(rows))
	for i, rw := range rows {
		out[i] = rw.toDomain()
	}
	return out, nil
}

// Get returns one location. ForUpdate locks the row inside a transaction.
func (r *Repo) Get(ctx context.Context, ownerID, id string, forUpdate bool) (domain.Location, error) {
	q := postgres.Builder().Select(columns...).From(table).Where(squirrel.Eq{"id": id, "owner_id": ownerID})
	if forUpdate {
		q = q.Suffix("FOR UPDATE")
	}

	var rw row
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &rw, q); err != nil {
		return domain.Location{}, postgres.MapError(err, "location", id)
	}
	return rw.toDomain(), nil
}

func (r *Repo) Create(ctx context.Context, ownerID string, l domain.Location) (domain.Location, error) {
	q := postgres.Builder().Insert(table).
		Columns("owner_id", "campaign_id", "name", "visited", "region", "location_type", "description", "notes").
		Values(ownerID, l.CampaignID, l.Name, l.Visited, l.Region, l.LocationType, l.Description, l.Notes).
		Suffix("RETURNING " + postgres.ColumnList(columns))

	var rw row
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &rw, q); err != nil {
		return domain.Location{}, postgres.MapError(err, "location", "new")
	}
	return rw.toDomain(), nil
}

func (r *Repo) Update(ctx context.Context, ownerID string, l domain.Location) (domain.Location, error) {
	q := postgres.Builder().Update(table).
		SetMap(map[string]any{
			"name":          l.Name,
			"visited":       l.Visited,
			"region":        l.Region,
			"location_type": l.LocationType,
			"description":   l.Description,
			"notes":         l.Notes,
			"updated_at":    squirrel.Expr("clock_timestamp()"),
		}).
		Where(squirrel.Eq{"id": l.ID, "owner_id": ownerID}).
		Suffix("RETURNING " + postgres.ColumnList(columns))

	var rw row
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &rw, q); err != nil {
		return domain.Location{}, postgres.MapError(err, "location", l.ID)
	}
	return rw.toDomain(), nil
}

// ToggleVisited flips the visited flag in a single statement.
func (r *Repo) ToggleVisited(ctx context.Context, ownerID, id string) (domain.Location, error) {
	q := postgres.Builder().Update(table).
		Set("visited", squirrel.Expr("NOT visited")).
		Set("updated_at", squirrel.Expr("clock_timestamp()")).
		Where(squirrel.Eq{"id": id, "owner_id": ownerID}).
		Suffix("RETURNING " + postgres.ColumnList(columns))

	var rw row
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &rw, q); err != nil {
		return domain.Location{}, postgres.MapError(err, "location", id)
	}
	return rw.toDomain(), nil
}

func (r *Repo) Delete(ctx context.Context, ownerID, id string) error {
	q := postgres.Builder().Delete(table).Where(squirrel.Eq{"id": id, "owner_id": ownerID})

	n, err := postgres.Exec(ctx, postgres.QuerierFromCtx(ctx, r.db), q)
	if err != nil {
		return postgres.MapError(err, "location", id)
	}
	if n == 0 {
		return postgres.MapError(pgx.ErrNoRows, "location", id)
	}
	return nil
}

// CountByCampaigns returns the location count of each requested campaign.
func (r *Repo) CountByCampaigns(ctx context.Context, ownerID string, campaignIDs []string) (map[string]int, error) {
	return postgres.CountBy(ctx, postgres.QuerierFromCtx(ctx, r.db), table, ownerID, campaignIDs)
}
