package users

import (
	"encoding/json"
	"errors"
	"net/http"

	"adoptme/internal/platform/logger"
	"adoptme/internal/platform/respond"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, log logger.Logger) {
	r.Route("/api/users", func(ur chi.Router) {
		ur.Get("/", listUsersHandler(svc, log))
		ur.Get("/{uid}", getUserHandler(svc, log))
		ur.Put("/{uid}", updateUserHandler(svc, log))
		ur.Delete("/{uid}", deleteUserHandler(svc, log))
	})
}

type petRef struct {
	ID string `json:"_id"`
}

// userResponse es el usuario tal como lo ve el cliente (sin password).
type userResponse struct {
	ID        string   `json:"_id"`
	FirstName string   `json:"first_name"`
	LastName  string   `json:"last_name"`
	Email     string   `json:"email"`
	Role      Role     `json:"role"`
	Pets      []petRef `json:"pets"`
}

type updateUserRequest struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Email     *string `json:"email"`
	Role      *Role   `json:"role"`
}

// listUsersHandler godoc
// @Summary Listar usuarios
// @Tags users
// @Produce json
// @Success 200 {object} respond.Envelope
// @Router /api/users [get]
func listUsersHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			logger.FromContext(r.Context(), log).Error("list users failed", map[string]any{"err": err.Error()})
			respond.Internal(w)
			return
		}

		out := make([]userResponse, 0, len(items))
		for _, u := range items {
			out = append(out, toUserResponse(u))
		}
		respond.Payload(w, http.StatusOK, out)
	}
}

// getUserHandler godoc
// @Summary Obtener usuario por ID
// @Tags users
// @Produce json
// @Param uid path string true "ID del usuario"
// @Success 200 {object} respond.Envelope
// @Failure 404 {object} respond.Envelope "User not found"
// @Router /api/users/{uid} [get]
func getUserHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		u, err := svc.GetByID(r.Context(), chi.URLParam(r, "uid"))
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				respond.Error(w, http.StatusNotFound, "User not found")
				return
			}
			logger.FromContext(r.Context(), log).Error("get user failed", map[string]any{"err": err.Error()})
			respond.Internal(w)
			return
		}
		respond.Payload(w, http.StatusOK, toUserResponse(u))
	}
}

func updateUserHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req updateUserRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respond.Error(w, http.StatusBadRequest, "Invalid json")
			return
		}

		_, err := svc.Update(r.Context(), chi.URLParam(r, "uid"), UpdateInput{
			FirstName: req.FirstName,
			LastName:  req.LastName,
			Email:     req.Email,
			Role:      req.Role,
		})
		if err != nil {
			switch {
			case errors.Is(err, ErrNotFound):
				respond.Error(w, http.StatusNotFound, "User not found")
			case errors.Is(err, ErrInvalidRole):
				respond.Error(w, http.StatusBadRequest, "Invalid role")
			case errors.Is(err, ErrInvalidInput):
				respond.Error(w, http.StatusBadRequest, "Incomplete values")
			case errors.Is(err, ErrEmailTaken):
				respond.Error(w, http.StatusBadRequest, "Email already in use")
			default:
				logger.FromContext(r.Context(), log).Error("update user failed", map[string]any{"err": err.Error()})
				respond.Internal(w)
			}
			return
		}
		respond.Message(w, http.StatusOK, "User updated")
	}
}

func deleteUserHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Delete(r.Context(), chi.URLParam(r, "uid")); err != nil {
			if errors.Is(err, ErrNotFound) {
				respond.Error(w, http.StatusNotFound, "User not found")
				return
			}
			logger.FromContext(r.Context(), log).Error("delete user failed", map[string]any{"err": err.Error()})
			respond.Internal(w)
			return
		}
		respond.Message(w, http.StatusOK, "User deleted")
	}
}

func toUserResponse(u User) userResponse {
	pets := make([]petRef, 0, len(u.Pets))
	for _, id := range u.Pets {
		pets = append(pets, petRef{ID: id})
	}
	return userResponse{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		Role:      u.Role,
		Pets:      pets,
	}
}
