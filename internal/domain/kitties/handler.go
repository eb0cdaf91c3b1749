package kitties

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"kitty-registry/internal/middleware"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/kitties", func(kr chi.Router) {
		kr.Post("/", createKittyHandler(svc))
		kr.Get("/", listKittiesHandler(svc))

		// Breed va antes del param route; chi prioriza rutas estáticas.
		kr.Post("/breed", breedKittiesHandler(svc))

		kr.Get("/{kittyID}", getKittyHandler(svc))
	})
}

// breedRequest es el cuerpo de la solicitud para cruzar dos kitties.
type breedRequest struct {
	// Punteros para exigir presencia: 0 es un ID válido.
	ParentA *uint32 `json:"parent_a"`
	ParentB *uint32 `json:"parent_b"`
}

// kittyResponse representa un kitty devuelto por la API.
type kittyResponse struct {
	ID          uint32    `json:"id"`
	OwnerUserID string    `json:"owner_user_id"`
	DNA         string    `json:"dna"`    // hex, 32 chars
	Gender      string    `json:"gender"` // derivado del DNA, nunca almacenado
	CreatedAt   time.Time `json:"created_at"`
}

// createKittyHandler godoc
// @Summary Crear kitty
// @Description Crea un kitty nuevo con DNA pseudo-aleatorio para el usuario autenticado. Autenticación: `X-Debug-User-ID` (dev) o `Authorization: Bearer <token>` (prod).
// @Tags kitties
// @Accept json
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Success 201 {object} kittyResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 503 {string} string "kitty id space exhausted"
// @Router /kitties [post]
func createKittyHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		k, err := svc.Create(r.Context(), claims.UserID)
		if err != nil {
			writeKittyError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, toKittyResponse(k))
	}
}

// breedKittiesHandler godoc
// @Summary Cruzar dos kitties
// @Description Cruza dos kitties del usuario autenticado y registra la cría. Ambos padres deben pertenecer al caller y tener géneros distintos. Autenticación: `X-Debug-User-ID` (dev) o `Authorization: Bearer <token>` (prod).
// @Tags kitties
// @Accept json
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param payload body breedRequest true "IDs de los dos padres"
// @Success 201 {object} kittyResponse
// @Failure 400 {string} string "invalid json / parents have the same gender"
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "kitty not found"
// @Failure 503 {string} string "kitty id space exhausted"
// @Router /kitties/breed [post]
func breedKittiesHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req breedRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		if req.ParentA == nil || req.ParentB == nil {
			http.Error(w, "parent_a and parent_b are required", http.StatusBadRequest)
			return
		}

		k, err := svc.Breed(r.Context(), claims.UserID, KittyID(*req.ParentA), KittyID(*req.ParentB))
		if err != nil {
			writeKittyError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, toKittyResponse(k))
	}
}

// listKittiesHandler godoc
// @Summary Listar mis kitties
// @Description Lista los kitties del usuario autenticado, ordenados por ID ascendente. Autenticación: `X-Debug-User-ID` (dev) o `Authorization: Bearer <token>` (prod).
// @Tags kitties
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Success 200 {array} kittyResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 500 {string} string "internal error"
// @Router /kitties [get]
func listKittiesHandler(svc *Service) http.HandlerFunc {
	// Owner-only: la clave del registro es (owner, id), no hay vista global.
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		items, err := svc.ListByOwner(r.Context(), claims.UserID)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]kittyResponse, 0, len(items))
		for _, k := range items {
			out = append(out, toKittyResponse(k))
		}

		writeJSON(w, http.StatusOK, out)
	}
}

// getKittyHandler godoc
// @Summary Obtener un kitty
// @Description Devuelve un kitty del usuario autenticado por ID. Kitties de otros owners responden 404 (la clave es (owner, id)). Autenticación: `X-Debug-User-ID` (dev) o `Authorization: Bearer <token>` (prod).
// @Tags kitties
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param kittyID path int true "ID del kitty"
// @Success 200 {object} kittyResponse
// @Failure 400 {string} string "invalid kitty id"
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "kitty not found"
// @Router /kitties/{kittyID} [get]
func getKittyHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		id, err := ParseKittyID(chi.URLParam(r, "kittyID"))
		if err != nil {
			http.Error(w, "invalid kitty id", http.StatusBadRequest)
			return
		}

		k, err := svc.GetByID(r.Context(), claims.UserID, id)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				http.Error(w, "kitty not found", http.StatusNotFound)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, toKittyResponse(k))
	}
}

// ParseKittyID parsea un ID decimal de path/query. Acota a uint32.
func ParseKittyID(s string) (KittyID, error) {
	n, err := strconv.ParseUint(strings.TrimSpace(s), 10, 32)
	if err != nil {
		return 0, ErrInvalidKittyID
	}
	return KittyID(n), nil
}

func writeKittyError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		http.Error(w, "invalid input", http.StatusBadRequest)
	case errors.Is(err, ErrInvalidKittyID):
		http.Error(w, "kitty not found", http.StatusNotFound)
	case errors.Is(err, ErrSameGender):
		http.Error(w, "parents have the same gender", http.StatusBadRequest)
	case errors.Is(err, ErrIDOverflow):
		http.Error(w, "kitty id space exhausted", http.StatusServiceUnavailable)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func toKittyResponse(k Kitty) kittyResponse {
	return kittyResponse{
		ID:          uint32(k.ID),
		OwnerUserID: k.OwnerUserID,
		DNA:         k.DNA.String(),
		Gender:      string(k.DNA.Gender()),
		CreatedAt:   k.CreatedAt,
	}
}

// writeJSON está duplicado intencionalmente en handlers de distintos módulos (kitties/events)
// para evitar crear paquetes/helpers compartidos demasiado pronto.
// Si más adelante se repite en más módulos, recién conviene extraerlo a un helper común.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
