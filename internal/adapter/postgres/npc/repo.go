// Package npc implements the NPC repository using PostgreSQL.
package npc

import (
	"context"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	postgres "github.com/lmdrew96/FeyForge-sub001/internal/adapter/postgres"
	"github.com/lmdrew96/FeyForge-sub001/internal/domain"
	"github.com/lmdrew96/FeyForge-sub001/pkg/optional"
)

const table = "npcs"

var columns = []string{
	"id", "campaign_id", "name", "role", "importance", "personality", "goals",
	"relationships", "faction", "location", "race", "class", "created_at", "updated_at",
}

// Repo provides NPC persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new NPC repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type row struct {
	ID            string    `db:"id"`
	CampaignID    string    `db:"campaign_id"`
	Name          string    `db:"name"`
	Role          string    `db:"role"`
	Importance    string    `db:"importance"`
	Personality   string    `db:"personality"`
	Goals         string    `db:"goals"`
	Relationships string    `db:"relationships"`
	Faction       *string   `db:"faction"`
	Location      *string   `db:"location"`
	Race          *string   `db:"race"`
	Class         *string   `db:"class"`
	CreatedAt     time.Time `db:"created_at"`
	UpdatedAt     time.Time `db:"updated_at"`
}

func (r row) toDomain() domain.NPC {
	return domain.NPC{
		Meta:          domain.Meta{ID: r.ID, CreatedAt: r.CreatedAt, UpdatedAt: r.UpdatedAt},
		CampaignID:    r.CampaignID,
		Name:          r.Name,
		Role:          r.Role,
		Importance:    domain.Importance(r.Importance),
		Personality:   r.Personality,
		Goals:         r.Goals,
		Relationships: r.Relationships,
		Faction:       optional.FromPtr(r.Faction),
		Location:      optional.FromPtr(r.Location),
		Race:          optional.FromPtr(r.Race),
		Class:         optional.FromPtr(r.Class),
	}
}

func toDomain(rows []row) []domain.NPC {
	out := make([]domain.NPC, len(rows))
	for i, rw := range rows {
		out[i] = rw.toDomain()
	}
	return out
}

// List returns the user's NPCs, optionally narrowed to one campaign when
// campaignID is non-empty.
func (r *Repo) List(ctx context.Context, ownerID, campaignID string) ([]domain.NPC, error) {
	where := squirrel.Eq{"owner_id": ownerID}
	if campaignID != "" {
		where["campaign_id"] = campaignID
	}
	q := postgres.Builder().Select(columns...).From(table).Where(where).OrderBy("created_at", "id")

	var rows []row
	if err := postgres.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, q); err != nil {
		return nil, postgres.MapError(err, "npc", "*")
	}
	return toDomain(rows), nil
}

// Get returns one NPC. ForUpdate locks the row inside a transaction.
func (r *Repo) Get(ctx context.Context, ownerID, id string, forUpdate bool) (domain.NPC, error) {
	q := postgres.Builder().Select(columns...).From(table).Where(squirrel.Eq{"id": id, "owner_id": ownerID})
	if forUpdate {
		q = q.Suffix("FOR UPDATE")
	}

	var rw row
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &rw, q); err != nil {
		return domain.NPC{}, postgres.MapError(err, "npc", id)
	}
	return rw.toDomain(), nil
}

// Create inserts an NPC owned by ownerID.
func (r *Repo) Create(ctx context.Context, ownerID string, n domain.NPC) (domain.NPC, error) {
	q := postgres.Builder().Insert(table).
		Columns("owner_id", "campaign_id", "name", "role", "importance", "personality",
			"goals", "relationships", "faction", "location", "race", "class").
		Values(ownerID, n.CampaignID, n.Name, n.Role, string(n.Importance), n.Personality,
			n.Goals, n.Relationships, n.Faction.Ptr(), n.Location.Ptr(), n.Race.Ptr(), n.Class.Ptr()).
		Suffix("RETURNING " + postgres.ColumnList(columns))

	var rw row
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &rw, q); err != nil {
		return domain.NPC{}, postgres.MapError(err, "npc", "new")
	}
	return rw.toDomain(), nil
}

// Update stores every mutable field of n. The campaign never changes.
func (r *Repo) Update(ctx context.Context, ownerID string, n domain.NPC) (domain.NPC, error) {
	q := postgres.Builder().Update(table).
		SetMap(map[string]any{
			"name":          n.Name,
			"role":          n.Role,
			"importance":    string(n.Importance),
			"personality":   n.Personality,
			"goals":         n.Goals,
			"relationships": n.Relationships,
			"faction":       n.Faction.Ptr(),
			"location":      n.Location.Ptr(),
			"race":          n.Race.Ptr(),
			"class":         n.Class.Ptr(),
			"updated_at":    squirrel.Expr("clock_timestamp()"),
		}).
		Where(squirrel.Eq{"id": n.ID, "owner_id": ownerID}).
		Suffix("RETURNING " + postgres.ColumnList(columns))

	var rw row
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &rw, q); err != nil {
		return domain.NPC{}, postgres.MapError(err, "npc", n.ID)
	}
	return rw.toDomain(), nil
}

// Delete removes one NPC.
func (r *Repo) Delete(ctx context.Context, ownerID, id string) error {
	q := postgres.Builder().Delete(table).Where(squirrel.Eq{"id": id, "owner_id": ownerID})

	n, err := postgres.Exec(ctx, postgres.QuerierFromCtx(ctx, r.db), q)
	if err != nil {
		return postgres.MapError(err, "npc", id)
	}
	if n == 0 {
		return postgres.MapError(pgx.ErrNoRows, "npc", id)
	}
	return nil
}

// CountByCampaigns returns the NPC count of each requested campaign.
// Campaigns without NPCs are absent from the map.
func (r *Repo) CountByCampaigns(ctx context.Context, ownerID string, campaignIDs []string) (map[string]int, error) {
	return postgres.CountBy(ctx, postgres.QuerierFromCtx(ctx, r.db), table, ownerID, campaignIDs)
}
