package domain

// Combatant is one participant in the live initiative order. Combatants are
// transient and never stored outside a SavedEncounter.
type Combatant struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Initiative int      `json:"initiative"`
	CurrentHP  int      `json:"currentHp"`
	MaxHP      int      `json:"maxHp"`
	IsPC       bool     `json:"isPC"`
	Conditions []string `json:"conditions,omitempty"`
}

// Clone returns a deep copy of c.
func (c Combatant) Clone() Combatant {
	if c.Conditions != nil {
		c.Conditions = append([]string(nil), c.Conditions...)
	}
	return c
}

// SavedEncounter is a frozen copy of a combat: its combatants in order and
// the round it was saved at.
type SavedEncounter struct {
	Meta
	CampaignID string      `json:"campaignId"`
	Name       string      `json:"name"`
	Combatants []Combatant `json:"combatants"`
	Round      int         `json:"round"`
}

func (e SavedEncounter) CampaignKey() string { return e.CampaignID }

func (e SavedEncounter) WithIdentity(m Meta) SavedEncounter {
	e.Meta = m
	return e
}

// CloneCombatants deep-copies a combatant list.
func CloneCombatants(in []Combatant) []Combatant {
	out := make([]Combatant, len(in))
	for i, c := range in {
		out[i] = c.Clone()
	}
	return out
}
