package testhelper

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/lmdrew96/FeyForge-sub001/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser inserts a user with a throwaway password hash.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()

	suffix := uniqueSuffix()
	u := domain.User{
		Email: "dm-" + suffix + "@example.com",
		Name:  "Test DM " + suffix,
	}

	err := pool.QueryRow(context.Background(),
		`INSERT INTO users (email, name, password_hash) VALUES ($1, $2, 'x')
		 RETURNING id::text, created_at, updated_at`,
		u.Email, u.Name,
	).Scan(&u.ID, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedUser: %v", err)
	}
	return u
}

// SeedCampaign inserts a campaign owned by ownerID.
func SeedCampaign(t *testing.T, pool *pgxpool.Pool, ownerID string) domain.Campaign {
	t.Helper()

	c := domain.Campaign{OwnerID: ownerID, Name: "Campaign " + uniqueSuffix()}
	err := pool.QueryRow(context.Background(),
		`INSERT INTO campaigns (owner_id, name) VALUES ($1, $2)
		 RETURNING id::text, created_at, updated_at`,
		ownerID, c.Name,
	).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedCampaign: %v", err)
	}
	return c
}
