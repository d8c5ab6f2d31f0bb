package forge

import "github.com/lmdrew96/FeyForge-sub001/internal/domain"

// GeneratedNPC is a suggested NPC; it is not stored until the user saves it.
type GeneratedNPC struct {
	Name          string            `json:"name"`
	Role          string            `json:"role"`
	Importance    domain.Importance `json:"importance"`
	Personality   string            `json:"personality"`
	Goals         string            `json:"goals"`
	Relationships string            `json:"relationships"`
	Faction       string            `json:"faction,omitempty"`
	Race          string            `json:"race,omitempty"`
	Class         string            `json:"class,omitempty"`
}

// LootItem is one piece of generated treasure.
type LootItem struct {
	Name        string `json:"name"`
	Rarity      string `json:"rarity"`
	Description string `json:"description"`
	ValueGP     int    `json:"valueGp"`
}

// Coins is a coin purse.
type Coins struct {
	CP int `json:"cp"`
	SP int `json:"sp"`
	GP int `json:"gp"`
	PP int `json:"pp"`
}

// Loot is a generated treasure hoard.
type Loot struct {
	Items []LootItem `json:"items"`
	Coins Coins      `json:"coins"`
}

// ChatResult reports how a chat stream ended. Exactly one of Completed and
// Aborted is true when the stream started.
type ChatResult struct {
	Reply     string `json:"reply"`
	Completed bool   `json:"completed"`
	Aborted   bool   `json:"aborted"`
}
