package domain

import "github.com/lmdrew96/FeyForge-sub001/pkg/optional"

// Location is a place in a campaign's world.
type Location struct {
	Meta         `yaml:",inline"`
	CampaignID   string `json:"campaignId" yaml:"campaignId"`
	Name         string `json:"name" yaml:"name"`
	Visited      bool   `json:"visited" yaml:"visited"`
	Region       string `json:"region" yaml:"region"`
	LocationType string `json:"locationType" yaml:"locationType"`
	Description  string `json:"description" yaml:"description"`
	Notes        string `json:"notes" yaml:"notes"`
}

func (l Location) CampaignKey() string { return l.CampaignID }

func (l Location) WithIdentity(m Meta) Location {
	l.Meta = m
	return l
}

// LocationPatch is a partial update of a Location.
type LocationPatch struct {
	Name         optional.Option[string] `json:"name"`
	Visited      optional.Option[bool]   `json:"visited"`
	Region       optional.Option[string] `json:"region"`
	LocationType optional.Option[string] `json:"locationType"`
	Description  optional.Option[string] `json:"description"`
	Notes        optional.Option[string] `json:"notes"`
}

// Apply returns l with the present fields of p applied.
func (p LocationPatch) Apply(l Location) Location {
	setString(&l.Name, p.Name)
	if v, ok := p.Visited.Get(); ok {
		l.Visited = v
	}
	setString(&l.Region, p.Region)
	setString(&l.LocationType, p.LocationType)
	setString(&l.Description, p.Description)
	setString(&l.Notes, p.Notes)
	return l
}
