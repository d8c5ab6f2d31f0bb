package domain

import "time"

// Meta is the identity and timestamp block shared by every stored record.
// ID is assigned once at creation and never changes.
type Meta struct {
	ID        string    `json:"id" yaml:"id"`
	CreatedAt time.Time `json:"createdAt" yaml:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" yaml:"updatedAt"`
}

// Identity returns the record's Meta. Promoted to every type embedding Meta.
func (m Meta) Identity() Meta { return m }

// CampaignScoped is implemented by records partitioned by campaign.
type CampaignScoped interface {
	CampaignKey() string
}

// FilterByCampaign returns the records belonging to campaignID, in their
// original order. It allocates a new slice and never modifies records.
func FilterByCampaign[T CampaignScoped](records []T, campaignID string) []T {
	out := make([]T, 0, len(records))
	for _, r := range records {
		if r.CampaignKey() == campaignID {
			out = append(out, r)
		}
	}
	return out
}
