package campaign

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	pgxmock "github.com/pashagolub/pgxmock/v2"

	"github.com/lmdrew96/FeyForge-sub001/internal/adapter/postgres/pgmock"
	"github.com/lmdrew96/FeyForge-sub001/internal/domain"
)

func campaignRows(now time.Time) *pgxmock.Rows {
	return pgxmock.NewRows(columns).
		AddRow("c1", "u1", "Thornwood", "fey border", now, now)
}

func TestRepo_List(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	mock := pgmock.New(t)
	rows := campaignRows(now).AddRow("c2", "u1", "Gloaming", "", now.Add(time.Second), now.Add(time.Second))
	mock.ExpectQuery(`SELECT (.+) FROM campaigns WHERE owner_id = \$1 ORDER BY created_at, id`).
		WithArgs("u1").
		WillReturnRows(rows)

	got, err := New(mock).List(context.Background(), "u1")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 2 || got[0].ID != "c1" || got[1].Name != "Gloaming" {
		t.Errorf("List = %+v", got)
	}
	pgmock.ExpectationsWereMet(t, mock)
}

func TestRepo_Get(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		forUpdate bool
		setup     func(mock pgxmock.PgxPoolIface)
		wantErr   error
	}{
		{
			name: "found",
			setup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(`SELECT (.+) FROM campaigns WHERE id = \$1 AND owner_id = \$2$`).
					WithArgs("c1", "u1").
					WillReturnRows(campaignRows(now))
			},
		},
		{
			name:      "locks for update",
			forUpdate: true,
			setup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(`FOR UPDATE`).
					WithArgs("c1", "u1").
					WillReturnRows(campaignRows(now))
			},
		},
		{
			name: "not found",
			setup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(`SELECT`).
					WithArgs("c1", "u1").
					WillReturnError(pgx.ErrNoRows)
			},
			wantErr: domain.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			mock := pgmock.New(t)
			tt.setup(mock)

			got, err := New(mock).Get(context.Background(), "u1", "c1", tt.forUpdate)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Get err = %v, want %v", err, tt.wantErr)
				}
			} else {
				if err != nil {
					t.Fatalf("Get: %v", err)
				}
				if got.Name != "Thornwood" || got.OwnerID != "u1" || !got.CreatedAt.Equal(now) {
					t.Errorf("Get = %+v", got)
				}
			}
			pgmock.ExpectationsWereMet(t, mock)
		})
	}
}

func TestRepo_Create(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	mock := pgmock.New(t)
	mock.ExpectQuery(`INSERT INTO campaigns \(owner_id,name,description\) VALUES \(\$1,\$2,\$3\) RETURNING`).
		WithArgs("u1", "Thornwood", "fey border").
		WillReturnRows(campaignRows(now))

	got, err := New(mock).Create(context.Background(), domain.Campaign{OwnerID: "u1", Name: "Thornwood", Description: "fey border"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if got.ID != "c1" {
		t.Errorf("Create id = %q, want c1", got.ID)
	}
	pgmock.ExpectationsWereMet(t, mock)
}

func TestRepo_Create_UnknownOwner(t *testing.T) {
	t.Parallel()

	mock := pgmock.New(t)
	mock.ExpectQuery(`INSERT INTO campaigns`).
		WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnError(&pgconn.PgError{Code: "23503"})

	_, err := New(mock).Create(context.Background(), domain.Campaign{OwnerID: "ghost", Name: "x"})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("Create err = %v, want ErrNotFound", err)
	}
	pgmock.ExpectationsWereMet(t, mock)
}

func TestRepo_Update(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	mock := pgmock.New(t)
	mock.ExpectQuery(`UPDATE campaigns SET name = \$1, description = \$2, updated_at = clock_timestamp\(\) WHERE id = \$3 AND owner_id = \$4 RETURNING`).
		WithArgs("Thornwood", "fey border", "c1", "u1").
		WillReturnRows(campaignRows(now))

	in := domain.Campaign{Meta: domain.Meta{ID: "c1"}, OwnerID: "u1", Name: "Thornwood", Description: "fey border"}
	if _, err := New(mock).Update(context.Background(), in); err != nil {
		t.Fatalf("Update: %v", err)
	}
	pgmock.ExpectationsWereMet(t, mock)
}

func TestRepo_Delete(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		result  pgconn.CommandTag
		wantErr error
	}{
		{name: "deleted", result: pgxmock.NewResult("DELETE", 1)},
		{name: "missing", result: pgxmock.NewResult("DELETE", 0), wantErr: domain.ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			mock := pgmock.New(t)
			mock.ExpectExec(`DELETE FROM campaigns WHERE id = \$1 AND owner_id = \$2`).
				WithArgs("c1", "u1").
				WillReturnResult(tt.result)

			err := New(mock).Delete(context.Background(), "u1", "c1")
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Delete err = %v, want %v", err, tt.wantErr)
			}
			pgmock.ExpectationsWereMet(t, mock)
		})
	}
}
