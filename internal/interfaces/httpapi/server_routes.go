package httpapi

import (
	"net/http"

	"github.com/riskibarqy/fantasy-cricket/internal/domain/user"
)

func registerSystemRoutes(mux *http.ServeMux, handler *Handler, swaggerEnabled bool) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
	if !swaggerEnabled {
		return
	}

	mux.HandleFunc("GET /openapi.yaml", handler.OpenAPI)
	mux.HandleFunc("GET /docs", handler.SwaggerUI)
	mux.HandleFunc("GET /docs/", handler.SwaggerUI)
}

func registerCatalogRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/matches", handler.ListMatches)
	mux.HandleFunc("GET /v1/matches/{matchID}", handler.GetMatch)
	mux.HandleFunc("GET /v1/players", handler.ListPlayers)
	mux.HandleFunc("GET /v1/players/{playerID}", handler.GetPlayer)
}

func registerAuthorizedRoutes(mux *http.ServeMux, handler *Handler, verifier user.Verifier) {
	mux.Handle("GET /v1/me", RequireAuth(verifier, http.HandlerFunc(handler.GetMe)))
	registerAuthorizedDraftRoutes(mux, handler, verifier)
	registerAuthorizedTeamRoutes(mux, handler, verifier)
}

func registerAuthorizedDraftRoutes(mux *http.ServeMux, handler *Handler, verifier user.Verifier) {
	mux.Handle("GET /v1/draft", RequireAuth(verifier, http.HandlerFunc(handler.GetDraft)))
	mux.Handle("POST /v1/draft", RequireAuth(verifier, http.HandlerFunc(handler.StartDraft)))
	mux.Handle("DELETE /v1/draft", RequireAuth(verifier, http.HandlerFunc(handler.ResetDraft)))
	mux.Handle("POST /v1/draft/players", RequireAuth(verifier, http.HandlerFunc(handler.AddDraftPlayer)))
	mux.Handle("DELETE /v1/draft/players/{playerID}", RequireAuth(verifier, http.HandlerFunc(handler.RemoveDraftPlayer)))
	mux.Handle("POST /v1/draft/players/{playerID}/toggle", RequireAuth(verifier, http.HandlerFunc(handler.ToggleDraftPlayer)))
	mux.Handle("PUT /v1/draft/captain", RequireAuth(verifier, http.HandlerFunc(handler.SetDraftCaptain)))
	mux.Handle("PUT /v1/draft/vice-captain", RequireAuth(verifier, http.HandlerFunc(handler.SetDraftViceCaptain)))
	mux.Handle("POST /v1/draft/save", RequireAuth(verifier, http.HandlerFunc(handler.SaveDraft)))
}

func registerAuthorizedTeamRoutes(mux *http.ServeMux, handler *Handler, verifier user.Verifier) {
	mux.Handle("GET /v1/teams", RequireAuth(verifier, http.HandlerFunc(handler.ListTeams)))
	mux.Handle("GET /v1/teams/{teamID}", RequireAuth(verifier, http.HandlerFunc(handler.GetTeam)))
	mux.Handle("DELETE /v1/teams/{teamID}", RequireAuth(verifier, http.HandlerFunc(handler.DeleteTeam)))
	mux.Handle("POST /v1/teams/{teamID}/edit", RequireAuth(verifier, http.HandlerFunc(handler.EditTeam)))
}
