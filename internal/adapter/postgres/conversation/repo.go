// Package conversation implements the DM-conversation repository using
// PostgreSQL. Messages are stored inline as a JSONB array.
package conversation

import (
	"context"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	postgres "github.com/lmdrew96/FeyForge-sub001/internal/adapter/postgres"
	"github.com/lmdrew96/FeyForge-sub001/internal/domain"
)

const table = "conversations"

var columns = []string{"id", "campaign_id", "title", "messages", "created_at", "updated_at"}

// Repo provides conversation persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new conversation repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type row struct {
	ID         string               `db:"id"`
	CampaignID string               `db:"campaign_id"`
	Title      string               `db:"title"`
	Messages   []domain.ChatMessage `db:"messages"`
	CreatedAt  time.Time            `db:"created_at"`
	UpdatedAt  time.Time            `db:"updated_at"`
}

func (r row) toDomain() domain.Conversation {
	msgs := r.Messages
	if msgs == nil {
		msgs = []domain.ChatMessage{}
	}
	return domain.Conversation{
		Meta:       domain.Meta{ID: r.ID, CreatedAt: r.CreatedAt, UpdatedAt: r.UpdatedAt},
		CampaignID: r.CampaignID,
		Title:      r.Title,
		Messages:   msgs,
	}
}

func (r *Repo) List(ctx context.Context, ownerID, campaignID string) ([]domain.Conversation, error) {
	where := squirrel.Eq{"owner_id": ownerID}
	if campaignID != "" {
		where["campaign_id"] = campaignID
	}
	q := postgres.Builder().Select(columns...).From(table).Where(where).OrderBy("created_at", "id")

	var rows []row
	if err := postgres.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, q); err != nil {
		return nil, postgres.MapError(err, "conversation", "*")
	}

	out := make([]domain.Conversation, len(rows))
	for i, rw := range rows {
		out[i] = rw.toDomain()
	}
	return out, nil
}

// Get returns one conversation. ForUpdate locks the row so concurrent
// appends serialize.
func (r *Repo) Get(ctx context.Context, ownerID, id string, forUpdate bool) (domain.Conversation, error) {
	q := postgres.Builder().Select(columns...).From(table).Where(squirrel.Eq{"id": id, "owner_id": ownerID})
	if forUpdate {
		q = q.Suffix("FOR UPDATE")
	}

	var rw row
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &rw, q); err != nil {
		return domain.Conversation{}, postgres.MapError(err, "conversation", id)
	}
	return rw.toDomain(), nil
}

func (r *Repo) Create(ctx context.Context, ownerID, campaignID, title string) (domain.Conversation, error) {
	q := postgres.Builder().Insert(table).
		Columns("owner_id", "campaign_id", "title").
		Values(ownerID, campaignID, title).
		Suffix("RETURNING " + postgres.ColumnList(columns))

	var rw row
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &rw, q); err != nil {
		return domain.Conversation{}, postgres.MapError(err, "conversation", "new")
	}
	return rw.toDomain(), nil
}

func (r *Repo) Rename(ctx context.Context, ownerID, id, title string) (domain.Conversation, error) {
	return r.set(ctx, ownerID, id, "title", title)
}

// SetMessages replaces the stored message list.
func (r *Repo) SetMessages(ctx context.Context, ownerID, id string, msgs []domain.ChatMessage) (domain.Conversation, error) {
	return r.set(ctx, ownerID, id, "messages", msgs)
}

func (r *Repo) set(ctx context.Context, ownerID, id, column string, value any) (domain.Conversation, error) {
	q := postgres.Builder().Update(table).
		Set(column, value).
		Set("updated_at", squirrel.Expr("clock_timestamp()")).
		Where(squirrel.Eq{"id": id, "owner_id": ownerID}).
		Suffix("RETURNING " + postgres.ColumnList(columns))

	var rw row
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &rw, q); err != nil {
		return domain.Conversation{}, postgres.MapError(err, "conversation", id)
	}
	return rw.toDomain(), nil
}

func (r *Repo) Delete(ctx context.Context, ownerID, id string) error {
	q := postgres.Builder().Delete(table).Where(squirrel.Eq{"id": id, "owner_id": ownerID})

	n, err := postgres.Exec(ctx, postgres.QuerierFromCtx(ctx, r.db), q)
	if err != nil {
		return postgres.MapError(err, "conversation", id)
	}
	if n == 0 {
		return postgres.MapError(pgx.ErrNoRows, "conversation", id)
	}
	return nil
}
