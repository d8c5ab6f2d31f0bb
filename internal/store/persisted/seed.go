package persisted

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/lmdrew96/FeyForge-sub001/internal/domain"
	"github.com/lmdrew96/FeyForge-sub001/pkg/optional"
)

//go:embed seed.yaml
var defaultSeed []byte

// Seed is the first-run content of the persisted stores.
type Seed struct {
	Campaigns        []domain.Campaign       `yaml:"campaigns"`
	ActiveCampaignID optional.Option[string] `yaml:"activeCampaignId"`
	NPCs             []domain.NPC            `yaml:"npcs"`
	Bookmarks        []domain.Bookmark       `yaml:"bookmarks"`
}

// DefaultSeed parses the embedded seed snapshot.
func DefaultSeed() (Seed, error) {
	return ParseSeed(defaultSeed)
}

// ParseSeed decodes a YAML seed document.
func ParseSeed(data []byte) (Seed, error) {
	var s Seed
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Seed{}, fmt.Errorf("parse seed: %w", err)
	}
	return s, nil
}
