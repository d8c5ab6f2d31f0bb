package domain

import "time"

// CodexCategory is a section of the rules reference catalog.
type CodexCategory string

const (
	CodexSpells     CodexCategory = "spells"
	CodexMonsters   CodexCategory = "monsters"
	CodexMagicItems CodexCategory = "magicitems"
	CodexEquipment  CodexCategory = "equipment"
	CodexConditions CodexCategory = "conditions"
	CodexRules      CodexCategory = "rules"
)

func (c CodexCategory) String() string { return string(c) }

func (c CodexCategory) IsValid() bool {
	switch c {
	case CodexSpells, CodexMonsters, CodexMagicItems, CodexEquipment, CodexConditions, CodexRules:
		return true
	}
	return false
}

// CodexCategories lists every category in display order.
func CodexCategories() []CodexCategory {
	return []CodexCategory{CodexSpells, CodexMonsters, CodexMagicItems, CodexEquipment, CodexConditions, CodexRules}
}

// Bookmark marks a catalog entry. The ID is the catalog entry id, so at most
// one bookmark exists per entry.
type Bookmark struct {
	Meta     `yaml:",inline"`
	Category CodexCategory `json:"category" yaml:"category"`
	Slug     string        `json:"slug" yaml:"slug"`
	Name     string        `json:"name" yaml:"name"`
	AddedAt  time.Time     `json:"addedAt" yaml:"addedAt"`
}

func (b Bookmark) WithIdentity(m Meta) Bookmark {
	b.Meta = m
	return b
}

// BookmarkID derives the catalog entry id from category and slug.
func BookmarkID(category CodexCategory, slug string) string {
	return string(category) + "/" + slug
}
