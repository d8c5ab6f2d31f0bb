package domain

import "time"

// ChatRole identifies the author of a chat message.
type ChatRole string

const (
	ChatRoleUser      ChatRole = "user"
	ChatRoleAssistant ChatRole = "assistant"
)

func (r ChatRole) IsValid() bool {
	return r == ChatRoleUser || r == ChatRoleAssistant
}

// ChatMessage is one turn of a DM conversation.
type ChatMessage struct {
	Role      ChatRole  `json:"role"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

// Conversation is a stored DM-assistant chat thread.
type Conversation struct {
	Meta
	CampaignID string        `json:"campaignId"`
	Title      string        `json:"title"`
	Messages   []ChatMessage `json:"messages"`
}

func (c Conversation) CampaignKey() string { return c.CampaignID }

func (c Conversation) WithIdentity(m Meta) Conversation {
	c.Meta = m
	return c
}
