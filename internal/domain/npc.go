package domain

import (
	"github.com/lmdrew96/FeyForge-sub001/pkg/optional"
)

// Importance ranks an NPC's weight in the story.
type Importance string

const (
	ImportanceMinor Importance = "minor"
	ImportanceMajor Importance = "major"
	ImportanceKey   Importance = "key"
)

func (i Importance) String() string { return string(i) }

func (i Importance) IsValid() bool {
	switch i {
	case ImportanceMinor, ImportanceMajor, ImportanceKey:
		return true
	}
	return false
}

// NPC is a non-player character tracked in a campaign.
type NPC struct {
	Meta          `yaml:",inline"`
	CampaignID    string                  `json:"campaignId" yaml:"campaignId"`
	Name          string                  `json:"name" yaml:"name"`
	Role          string                  `json:"role" yaml:"role"`
	Importance    Importance              `json:"importance" yaml:"importance"`
	Personality   string                  `json:"personality" yaml:"personality"`
	Goals         string                  `json:"goals" yaml:"goals"`
	Relationships string                  `json:"relationships" yaml:"relationships"`
	Faction       optional.Option[string] `json:"faction" yaml:"faction"`
	Location      optional.Option[string] `json:"location" yaml:"location"`
	Race          optional.Option[string] `json:"race" yaml:"race"`
	Class         optional.Option[string] `json:"class" yaml:"class"`
}

func (n NPC) CampaignKey() string { return n.CampaignID }

func (n NPC) WithIdentity(m Meta) NPC {
	n.Meta = m
	return n
}

// NPCPatch is a partial update of an NPC. For the optional attributes
// (faction, location, race, class) Some("") clears the value.
type NPCPatch struct {
	Name          optional.Option[string]     `json:"name"`
	Role          optional.Option[string]     `json:"role"`
	Importance    optional.Option[Importance] `json:"importance"`
	Personality   optional.Option[string]     `json:"personality"`
	Goals         optional.Option[string]     `json:"goals"`
	Relationships optional.Option[string]     `json:"relationships"`
	Faction       optional.Option[string]     `json:"faction"`
	Location      optional.Option[string]     `json:"location"`
	Race          optional.Option[string]     `json:"race"`
	Class         optional.Option[string]     `json:"class"`
}

// Apply returns n with the present fields of p applied.
func (p NPCPatch) Apply(n NPC) NPC {
	setString(&n.Name, p.Name)
	setString(&n.Role, p.Role)
	if v, ok := p.Importance.Get(); ok {
		n.Importance = v
	}
	setString(&n.Personality, p.Personality)
	setString(&n.Goals, p.Goals)
	setString(&n.Relationships, p.Relationships)
	setOption(&n.Faction, p.Faction)
	setOption(&n.Location, p.Location)
	setOption(&n.Race, p.Race)
	setOption(&n.Class, p.Class)
	return n
}

func setString(dst *string, v optional.Option[string]) {
	if s, ok := v.Get(); ok {
		*dst = s
	}
}

func setOption(dst *optional.Option[string], v optional.Option[string]) {
	s, ok := v.Get()
	switch {
	case !ok:
	case s == "":
		*dst = optional.None[string]()
	default:
		*dst = optional.Some(s)
	}
}
