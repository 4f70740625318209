package httpapi

import (
	"context"
	"net/http"

	"github.com/riskibarqy/fantasy-cricket/internal/usecase"
)

type startDraftRequest struct {
	MatchID string `json:"match_id" validate:"required,max=64"`
}

type playerRefRequest struct {
	PlayerID int64 `json:"player_id" validate:"required,gt=0"`
}

func (h *Handler) GetDraft(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetDraft")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	view, err := h.teamService.GetDraft(ctx, principal.UserID)
	h.respondDraft(ctx, w, "get draft", principal.UserID, view, err)
}

func (h *Handler) StartDraft(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.StartDraft")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req startDraftRequest
	if err := h.decodeRequest(ctx, w, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	view, err := h.teamService.StartDraft(ctx, principal.UserID, req.MatchID)
	h.respondDraft(ctx, w, "start draft", principal.UserID, view, err)
}

func (h *Handler) ResetDraft(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ResetDraft")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	view, err := h.teamService.ResetDraft(ctx, principal.UserID)
	h.respondDraft(ctx, w, "reset draft", principal.UserID, view, err)
}

func (h *Handler) AddDraftPlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AddDraftPlayer")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req playerRefRequest
	if err := h.decodeRequest(ctx, w, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	view, err := h.teamService.AddPlayer(ctx, principal.UserID, req.PlayerID)
	h.respondDraft(ctx, w, "add draft player", principal.UserID, view, err)
}

func (h *Handler) RemoveDraftPlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RemoveDraftPlayer")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	playerID, err := pathID(r, "playerID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	view, err := h.teamService.RemovePlayer(ctx, principal.UserID, playerID)
	h.respondDraft(ctx, w, "remove draft player", principal.UserID, view, err)
}

// ToggleDraftPlayer mirrors tapping a player card: select when absent,
// deselect when present.
func (h *Handler) ToggleDraftPlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ToggleDraftPlayer")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	playerID, err := pathID(r, "playerID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	view, err := h.teamService.TogglePlayer(ctx, principal.UserID, playerID)
	h.respondDraft(ctx, w, "toggle draft player", principal.UserID, view, err)
}

func (h *Handler) SetDraftCaptain(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SetDraftCaptain")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req playerRefRequest
	if err := h.decodeRequest(ctx, w, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	view, err := h.teamService.SetCaptain(ctx, principal.UserID, req.PlayerID)
	h.respondDraft(ctx, w, "set captain", principal.UserID, view, err)
}

func (h *Handler) SetDraftViceCaptain(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SetDraftViceCaptain")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req playerRefRequest
	if err := h.decodeRequest(ctx, w, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	view, err := h.teamService.SetViceCaptain(ctx, principal.UserID, req.PlayerID)
	h.respondDraft(ctx, w, "set vice captain", principal.UserID, view, err)
}

func (h *Handler) SaveDraft(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SaveDraft")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	detail, err := h.teamService.SaveDraft(ctx, principal.UserID)
	if err != nil {
		h.logger.WarnContext(ctx, "save draft failed", "user_id", principal.UserID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, teamDetailToDTO(detail))
}

func (h *Handler) respondDraft(ctx context.Context, w http.ResponseWriter, op, userID string, view usecase.DraftView, err error) {
	if err != nil {
		h.logger.WarnContext(ctx, op+" failed", "user_id", userID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, draftToDTO(view))
}
