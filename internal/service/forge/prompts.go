package forge

import (
	"fmt"
	"strings"

	"github.com/lmdrew96/FeyForge-sub001/internal/generation"
)

const backstorySystem = `You are a creative writing assistant for tabletop role-playing games.
Write vivid, playable character backstories in the second person past tense.
Keep it under 400 words and end with one unresolved hook the DM can use.`

const npcSystem = `You are a Dungeon Master's assistant for fifth-edition fantasy games.
Invent memorable non-player characters with clear motivations.`

const lootSystem = `You are a Dungeon Master's assistant for fifth-edition fantasy games.
Generate treasure appropriate to the party level. Prefer flavorful mundane items
over raw gold and keep magic item rarity in line with the level.`

const chatSystem = `You are FeyForge, a helpful assistant for Dungeon Masters.
Answer rules questions concisely, brainstorm plot ideas and improvise NPC dialogue.
When unsure about a rule, say so.`

var npcSchema = generation.Schema{
	Name: "NPC",
	Fields: []generation.Field{
		{Name: "name", Description: "full name", Required: true},
		{Name: "role", Description: "role in the story, e.g. innkeeper or cult leader", Required: true},
		{Name: "importance", Description: "one of minor, major, key", Required: true},
		{Name: "personality", Description: "two or three sentences", Required: true},
		{Name: "goals", Description: "what they want", Required: true},
		{Name: "relationships", Description: "ties to other characters or factions"},
		{Name: "faction", Description: "faction name or empty"},
		{Name: "race", Description: "ancestry"},
		{Name: "class", Description: "class or profession"},
	},
}

var lootSchema = generation.Schema{
	Name: "treasure hoard",
	Fields: []generation.Field{
		{Name: "items", Description: `array of {"name", "rarity" (common|uncommon|rare|very rare|legendary), "description", "valueGp" (integer)}`, Required: true},
		{Name: "coins", Description: `object {"cp","sp","gp","pp"} of integers`},
	},
}

func backstoryPrompt(in BackstoryInput) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Character name: %s\n", in.Name)
	writeIf(&b, "Race", in.Race)
	writeIf(&b, "Class", in.Class)
	writeIf(&b, "Background", in.Background)
	writeIf(&b, "Tone", in.Tone)
	writeIf(&b, "Player notes", in.Notes)
	b.WriteString("\nWrite the backstory.")
	return b.String()
}

func npcPrompt(in NPCInput) string {
	var b strings.Builder
	fmt.Fprintf(&b, "NPC concept: %s\n", in.Concept)
	writeIf(&b, "Importance", string(in.Importance))
	writeIf(&b, "Setting", in.Setting)
	return b.String()
}

func lootPrompt(in LootInput) string {
	count := in.Count
	if count == 0 {
		count = 5
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Party level: %d\nNumber of items: %d\n", in.PartyLevel, count)
	writeIf(&b, "Encounter", in.Encounter)
	return b.String()
}

func chatSystemPrompt(campaignName string) string {
	if campaignName == "" {
		return chatSystem
	}
	return chatSystem + "\nThe current campaign is called " + campaignName + "."
}

func writeIf(b *strings.Builder, label, v string) {
	if v = strings.TrimSpace(v); v != "" {
		fmt.Fprintf(b, "%s: %s\n", label, v)
	}
}
