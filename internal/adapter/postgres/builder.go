package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
)

// Builder returns a squirrel statement builder using $n placeholders.
func Builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

// Select builds q and scans every returned row into dst (a pointer to a slice).
func Select(ctx context.Context, db Querier, dst any, q squirrel.Sqlizer) error {
	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}
	return pgxscan.Select(ctx, db, dst, sql, args...)
}

// Get builds q and scans exactly one row into dst. No rows yields
// pgx.ErrNoRows, which MapError turns into domain.ErrNotFound.
func Get(ctx context.Context, db Querier, dst any, q squirrel.Sqlizer) error {
	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}
	return pgxscan.Get(ctx, db, dst, sql, args...)
}

// Exec builds q, runs it and returns the number of affected rows.
func Exec(ctx context.Context, db Querier, q squirrel.Sqlizer) (int64, error) {
	sql, args, err := q.ToSql()
	if err != nil {
		return 0, fmt.Errorf("build query: %w", err)
	}
	tag, err := db.Exec(ctx, sql, args...)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// ColumnList joins column names for RETURNING clauses.
func ColumnList(cols []string) string {
	return strings.Join(cols, ", ")
}

type campaignCount struct {
	CampaignID string `db:"campaign_id"`
	Count      int    `db:"count"`
}

// CountBy counts the rows of table per campaign for one owner.
func CountBy(ctx context.Context, db Querier, table, ownerID string, campaignIDs []string) (map[string]int, error) {
	out := make(map[string]int, len(campaignIDs))
	if len(campaignIDs) == 0 {
		return out, nil
	}

	q := Builder().Select("campaign_id", "count(*) AS count").From(table).
		Where(squirrel.Eq{"owner_id": ownerID, "campaign_id": campaignIDs}).
		GroupBy("campaign_id")

	var rows []campaignCount
	if err := Select(ctx, db, &rows, q); err != nil {
		return nil, MapError(err, table, "count")
	}
	for _, r := range rows {
		out[r.CampaignID] = r.Count
	}
	return out, nil
}
