package rest

import (
	"net/http"

	"github.com/lmdrew96/FeyForge-sub001/internal/transport/middleware"
)

// Handlers bundles every REST handler the router mounts.
type Handlers struct {
	Health       *HealthHandler
	Auth         *AuthHandler
	Campaign     *CampaignHandler
	Location     *LocationHandler
	NPC          *NPCHandler
	Conversation *ConversationHandler
	Encounter    *EncounterHandler
	Combat       *CombatHandler
	Forge        *ForgeHandler
}

// Middlewares are the cross-cutting layers. Common wraps the whole mux; Loaders
// attaches the per-request dataloaders to /api; Limit guards the forge routes.
type Middlewares struct {
	Common  middleware.Middleware
	Loaders middleware.Middleware
	Limit   middleware.Middleware
}

// NewRouter mounts all routes on a ServeMux using method patterns.
func NewRouter(h Handlers, mw Middlewares) http.Handler {
	api := http.NewServeMux()

	api.HandleFunc("GET /api/me", h.Auth.Me)

	api.HandleFunc("GET /api/campaigns", h.Campaign.List)
	api.HandleFunc("POST /api/campaigns", h.Campaign.Create)
	api.HandleFunc("GET /api/campaigns/overview", h.Campaign.Overview)
	api.HandleFunc("GET /api/campaigns/{id}", h.Campaign.Get)
	api.HandleFunc("PATCH /api/campaigns/{id}", h.Campaign.Update)
	api.HandleFunc("DELETE /api/campaigns/{id}", h.Campaign.Delete)

	api.HandleFunc("GET /api/locations", h.Location.List)
	api.HandleFunc("POST /api/locations", h.Location.Create)
	api.HandleFunc("PATCH /api/locations/{id}", h.Location.Update)
	api.HandleFunc("POST /api/locations/{id}/toggle-visited", h.Location.ToggleVisited)
	api.HandleFunc("DELETE /api/locations/{id}", h.Location.Delete)

	api.HandleFunc("GET /api/npcs", h.NPC.List)
	api.HandleFunc("POST /api/npcs", h.NPC.Create)
	api.HandleFunc("PATCH /api/npcs/{id}", h.NPC.Update)
	api.HandleFunc("DELETE /api/npcs/{id}", h.NPC.Delete)

	api.HandleFunc("GET /api/conversations", h.Conversation.List)
	api.HandleFunc("POST /api/conversations", h.Conversation.Create)
	api.HandleFunc("GET /api/conversations/{id}", h.Conversation.Get)
	api.HandleFunc("PATCH /api/conversations/{id}", h.Conversation.Rename)
	api.HandleFunc("POST /api/conversations/{id}/messages", h.Conversation.AppendMessage)
	api.HandleFunc("DELETE /api/conversations/{id}", h.Conversation.Delete)

	api.HandleFunc("GET /api/encounters", h.Encounter.List)
	api.HandleFunc("POST /api/encounters", h.Encounter.Save)
	api.HandleFunc("GET /api/encounters/{id}", h.Encounter.Get)
	api.HandleFunc("PATCH /api/encounters/{id}", h.Encounter.Rename)
	api.HandleFunc("DELETE /api/encounters/{id}", h.Encounter.Delete)

	api.HandleFunc("GET /api/combat", h.Combat.State)
	api.HandleFunc("POST /api/combat/combatants", h.Combat.Add)
	api.HandleFunc("PATCH /api/combat/combatants/{id}", h.Combat.Update)
	api.HandleFunc("DELETE /api/combat/combatants/{id}", h.Combat.Remove)
	api.HandleFunc("POST /api/combat/combatants/{id}/damage", h.Combat.Damage)
	api.HandleFunc("POST /api/combat/combatants/{id}/heal", h.Combat.Heal)
	api.HandleFunc("POST /api/combat/combatants/{id}/reorder", h.Combat.Reorder)
	api.HandleFunc("POST /api/combat/steps/{step}", h.Combat.Step)
	api.HandleFunc("POST /api/combat/save", h.Combat.Save)
	api.HandleFunc("POST /api/combat/load", h.Combat.Load)

	forgeRoutes := http.NewServeMux()
	forgeRoutes.HandleFunc("POST /api/forge/backstory", h.Forge.Backstory)
	forgeRoutes.HandleFunc("POST /api/forge/npc", h.Forge.NPC)
	forgeRoutes.HandleFunc("POST /api/forge/loot", h.Forge.Loot)
	forgeRoutes.HandleFunc("POST /api/forge/chat", h.Forge.Chat)
	api.Handle("/api/forge/", middleware.Chain(mw.Limit)(forgeRoutes))

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health/live", h.Health.Live)
	mux.HandleFunc("GET /health/ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)

	mux.HandleFunc("POST /auth/register", h.Auth.Register)
	mux.HandleFunc("POST /auth/login", h.Auth.Login)
	mux.HandleFunc("POST /auth/refresh", h.Auth.Refresh)
	mux.HandleFunc("POST /auth/logout", h.Auth.Logout)
	mux.HandleFunc("POST /auth/logout-all", h.Auth.LogoutAll)

	mux.Handle("/api/", middleware.Chain(mw.Loaders)(api))

	return middleware.Chain(mw.Common)(mux)
}
