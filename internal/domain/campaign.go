package domain

import (
	"github.com/lmdrew96/FeyForge-sub001/pkg/optional"
)

// Campaign is the top-level partition every other record belongs to.
type Campaign struct {
	Meta        `yaml:",inline"`
	OwnerID     string `json:"ownerId,omitempty" yaml:"-"`
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
}

// WithIdentity returns a copy of c carrying m.
func (c Campaign) WithIdentity(m Meta) Campaign {
	c.Meta = m
	return c
}

// CampaignPatch is a partial update. None fields are left unchanged.
type CampaignPatch struct {
	Name        optional.Option[string] `json:"name"`
	Description optional.Option[string] `json:"description"`
}

// Apply returns c with the present fields of p applied.
func (p CampaignPatch) Apply(c Campaign) Campaign {
	if v, ok := p.Name.Get(); ok {
		c.Name = v
	}
	if v, ok := p.Description.Get(); ok {
		c.Description = v
	}
	return c
}

// ReassignActive picks the active campaign after deletedID was removed.
// remaining must no longer contain deletedID. The current selection survives
// if it still exists; otherwise the first remaining campaign is chosen, or
// None when nothing is left.
func ReassignActive(remaining []Campaign, current optional.Option[string], deletedID string) optional.Option[string] {
	if id, ok := current.Get(); ok && id != deletedID {
		for _, c := range remaining {
			if c.ID == id {
				return current
			}
		}
	}
	if len(remaining) == 0 {
		return optional.None[string]()
	}
	return optional.Some(remaining[0].ID)
}
