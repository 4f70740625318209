package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	sonic "github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"

	"github.com/riskibarqy/fantasy-cricket/internal/platform/logging"
	"github.com/riskibarqy/fantasy-cricket/internal/platform/resilience"
	"github.com/riskibarqy/fantasy-cricket/internal/usecase"
)

const maxRequestBodyBytes = 64 << 10

// DependencyProbe exposes the circuit state of an outbound dependency on
// /healthz.
type DependencyProbe struct {
	Name  string
	State func() resilience.State
}

type Handler struct {
	catalogService *usecase.CatalogService
	teamService    *usecase.TeamService
	logger         *logging.Logger
	validator      *validator.Validate
	probes         []DependencyProbe
}

func NewHandler(
	catalogService *usecase.CatalogService,
	teamService *usecase.TeamService,
	logger *logging.Logger,
	probes ...DependencyProbe,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		catalogService: catalogService,
		teamService:    teamService,
		logger:         logger.Named("httpapi"),
		validator:      validator.New(),
		probes:         probes,
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	// Always 200: an open circuit only affects authenticated routes.
	health := healthDTO{Status: "ok"}
	for _, probe := range h.probes {
		if probe.State == nil {
			continue
		}
		if health.Dependencies == nil {
			health.Dependencies = make(map[string]string, len(h.probes))
		}
		state := probe.State()
		health.Dependencies[probe.Name] = string(state)
		if state == resilience.StateOpen {
			health.Status = "degraded"
		}
	}

	writeSuccess(ctx, w, http.StatusOK, health)
}

func (h *Handler) GetMe(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetMe")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, principalDTO{
		UserID: principal.UserID,
		Email:  principal.Email,
		Roles:  principal.Roles,
	})
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

func (h *Handler) decodeRequest(ctx context.Context, w http.ResponseWriter, r *http.Request, dst any) error {
	decoder := sonic.ConfigDefault.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBodyBytes))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dst); err != nil {
		return fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err)
	}

	return h.validateRequest(ctx, dst)
}

func pathID(r *http.Request, name string) (int64, error) {
	raw := strings.TrimSpace(r.PathValue(name))
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || value <= 0 {
		return 0, fmt.Errorf("%w: %s must be a positive integer", usecase.ErrInvalidInput, name)
	}
	return value, nil
}
