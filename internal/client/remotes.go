package client

import (
	"context"
	"net/http"
	"net/url"

	"github.com/lmdrew96/FeyForge-sub001/internal/domain"
)

func itemPath(collection, id string) string {
	return "/api/" + collection + "/" + url.PathEscape(id)
}

// Campaigns

func (c *Client) ListCampaigns(ctx context.Context) ([]domain.Campaign, error) {
	var out []domain.Campaign
	err := c.do(ctx, http.MethodGet, "/api/campaigns", nil, &out)
	return out, err
}

func (c *Client) CreateCampaign(ctx context.Context, name, description string) (domain.Campaign, error) {
	var out domain.Campaign
	err := c.do(ctx, http.MethodPost, "/api/campaigns", map[string]string{"name": name, "description": description}, &out)
	return out, err
}

func (c *Client) UpdateCampaign(ctx context.Context, id string, patch domain.CampaignPatch) (domain.Campaign, error) {
	var out domain.Campaign
	err := c.do(ctx, http.MethodPatch, itemPath("campaigns", id), patch, &out)
	return out, err
}

func (c *Client) DeleteCampaign(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, itemPath("campaigns", id), nil, nil)
}

// Locations

func (c *Client) ListLocations(ctx context.Context, campaignID string) ([]domain.Location, error) {
	var out []domain.Location
	err := c.do(ctx, http.MethodGet, withCampaign("/api/locations", campaignID), nil, &out)
	return out, err
}

func (c *Client) CreateLocation(ctx context.Context, loc domain.Location) (domain.Location, error) {
	in := struct {
		CampaignID   string `json:"campaignId"`
		Name         string `json:"name"`
		Visited      bool   `json:"visited"`
		Region       string `json:"region"`
		LocationType string `json:"locationType"`
		Description  string `json:"description"`
		Notes        string `json:"notes"`
	}{loc.CampaignID, loc.Name, loc.Visited, loc.Region, loc.LocationType, loc.Description, loc.Notes}

	var out domain.Location
	err := c.do(ctx, http.MethodPost, "/api/locations", in, &out)
	return out, err
}

func (c *Client) UpdateLocation(ctx context.Context, id string, patch domain.LocationPatch) (domain.Location, error) {
	var out domain.Location
	err := c.do(ctx, http.MethodPatch, itemPath("locations", id), patch, &out)
	return out, err
}

func (c *Client) DeleteLocation(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, itemPath("locations", id), nil, nil)
}

// Conversations

func (c *Client) ListConversations(ctx context.Context, campaignID string) ([]domain.Conversation, error) {
	var out []domain.Conversation
	err := c.do(ctx, http.MethodGet, withCampaign("/api/conversations", campaignID), nil, &out)
	return out, err
}

func (c *Client) CreateConversation(ctx context.Context, campaignID, title string) (domain.Conversation, error) {
	var out domain.Conversation
	err := c.do(ctx, http.MethodPost, "/api/conversations", map[string]string{"campaignId": campaignID, "title": title}, &out)
	return out, err
}

func (c *Client) RenameConversation(ctx context.Context, id, title string) (domain.Conversation, error) {
	var out domain.Conversation
	err := c.do(ctx, http.MethodPatch, itemPath("conversations", id), map[string]string{"title": title}, &out)
	return out, err
}

func (c *Client) AppendMessage(ctx context.Context, id string, msg domain.ChatMessage) (domain.Conversation, error) {
	in := struct {
		Role    domain.ChatRole `json:"role"`
		Content string          `json:"content"`
	}{msg.Role, msg.Content}

	var out domain.Conversation
	err := c.do(ctx, http.MethodPost, itemPath("conversations", id)+"/messages", in, &out)
	return out, err
}

func (c *Client) DeleteConversation(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, itemPath("conversations", id), nil, nil)
}

// Encounters

func (c *Client) ListEncounters(ctx context.Context, campaignID string) ([]domain.SavedEncounter, error) {
	var out []domain.SavedEncounter
	err := c.do(ctx, http.MethodGet, withCampaign("/api/encounters", campaignID), nil, &out)
	return out, err
}

func (c *Client) SaveEncounter(ctx context.Context, enc domain.SavedEncounter) (domain.SavedEncounter, error) {
	in := struct {
		CampaignID string             `json:"campaignId"`
		Name       string             `json:"name"`
		Combatants []domain.Combatant `json:"combatants"`
		Round      int                `json:"round"`
	}{enc.CampaignID, enc.Name, enc.Combatants, enc.Round}

	var out domain.SavedEncounter
	err := c.do(ctx, http.MethodPost, "/api/encounters", in, &out)
	return out, err
}

func (c *Client) RenameEncounter(ctx context.Context, id, name string) (domain.SavedEncounter, error) {
	var out domain.SavedEncounter
	err := c.do(ctx, http.MethodPatch, itemPath("encounters", id), map[string]string{"name": name}, &out)
	return out, err
}

func (c *Client) DeleteEncounter(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, itemPath("encounters", id), nil, nil)
}
