package events

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"kitty-registry/internal/domain/kitties"
	"kitty-registry/internal/middleware"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, kittiesSvc *kitties.Service) {
	r.Get("/kitties/{kittyID}/events", listKittyEventsHandler(svc, kittiesSvc))
	r.Get("/me/events", listMyEventsHandler(svc))
}

// eventResponse representa un evento de ciclo de vida devuelto por la API.
type eventResponse struct {
	ID          string    `json:"id"`
	OwnerUserID string    `json:"owner_user_id"`
	KittyID     uint32    `json:"kitty_id"`
	Type        EventType `json:"type"`
	DNA         string    `json:"dna"`
	ParentA     *uint32   `json:"parent_a,omitempty"`
	ParentB     *uint32   `json:"parent_b,omitempty"`
	RecordedAt  time.Time `json:"recorded_at"`
}

// listKittyEventsHandler godoc
// @Summary Listar eventos de un kitty
// @Description Lista los eventos de ciclo de vida (KITTY_CREATED, KITTY_BRED) de un kitty del usuario autenticado. Kitties de otros owners responden 404. Autenticación: `X-Debug-User-ID` (dev) o `Authorization: Bearer <token>` (prod).
// @Tags events
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param kittyID path int true "ID del kitty"
// @Success 200 {array} eventResponse
// @Failure 400 {string} string "invalid kitty id"
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "kitty not found"
// @Failure 500 {string} string "internal error"
// @Router /kitties/{kittyID}/events [get]
func listKittyEventsHandler(svc *Service, kittiesSvc *kitties.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		id, err := kitties.ParseKittyID(chi.URLParam(r, "kittyID"))
		if err != nil {
			http.Error(w, "invalid kitty id", http.StatusBadRequest)
			return
		}

		// El kitty debe existir bajo (caller, id); no hay delegación.
		if _, err := kittiesSvc.GetByID(r.Context(), claims.UserID, id); err != nil {
			if errors.Is(err, kitties.ErrNotFound) {
				http.Error(w, "kitty not found", http.StatusNotFound)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		items, err := svc.ListByKitty(r.Context(), claims.UserID, uint32(id))
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]eventResponse, 0, len(items))
		for _, e := range items {
			out = append(out, toEventResponse(e))
		}

		writeJSON(w, http.StatusOK, out)
	}
}

// listMyEventsHandler godoc
// @Summary Listar mis eventos
// @Description Lista los eventos de ciclo de vida de todos los kitties del usuario autenticado, más reciente primero. Permite filtrar por tipos y limitar resultados. Autenticación: `X-Debug-User-ID` (dev) o `Authorization: Bearer <token>` (prod).
// @Tags events
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param limit query int false "Máximo de eventos a devolver (1-200). Por defecto 50"
// @Param types query string false "Lista CSV de tipos de evento a incluir (ej: KITTY_CREATED,KITTY_BRED)"
// @Success 200 {array} eventResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 500 {string} string "internal error"
// @Router /me/events [get]
func listMyEventsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		items, err := svc.ListByOwner(r.Context(), claims.UserID, parseListFilter(r))
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]eventResponse, 0, len(items))
		for _, e := range items {
			out = append(out, toEventResponse(e))
		}

		writeJSON(w, http.StatusOK, out)
	}
}

func parseListFilter(r *http.Request) ListFilter {
	limit := 50
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 200 {
			limit = n
		}
	}

	filter := ListFilter{Limit: limit}

	// types=KITTY_CREATED,KITTY_BRED
	if v := strings.TrimSpace(r.URL.Query().Get("types")); v != "" {
		parts := strings.Split(v, ",")
		out := make([]EventType, 0, len(parts))
		for _, p := range parts {
			t := EventType(strings.TrimSpace(p))
			if t == "" {
				continue
			}
			out = append(out, t)
		}
		if len(out) > 0 {
			filter.Types = out
		}
	}

	return filter
}

func toEventResponse(e KittyEvent) eventResponse {
	return eventResponse{
		ID:          e.ID,
		OwnerUserID: e.OwnerUserID,
		KittyID:     e.KittyID,
		Type:        e.Type,
		DNA:         e.DNA,
		ParentA:     e.ParentA,
		ParentB:     e.ParentB,
		RecordedAt:  e.RecordedAt,
	}
}

// writeJSON está duplicado intencionalmente en handlers de distintos módulos
// para evitar crear paquetes/helpers compartidos demasiado pronto.
// Si más adelante se repite en más módulos, recién conviene extraerlo a un helper común.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
