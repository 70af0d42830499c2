package sessions

import (
	"encoding/json"
	"errors"
	"net/http"

	"adoptme/internal/middleware"
	"adoptme/internal/platform/logger"
	"adoptme/internal/platform/respond"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, cookieName string, log logger.Logger) {
	r.Route("/api/sessions", func(sr chi.Router) {
		sr.Post("/register", registerHandler(svc, log))
		sr.Post("/login", loginHandler(svc, cookieName, log))
		sr.Get("/current", currentHandler())
		sr.Post("/logout", logoutHandler(svc, cookieName, log))
	})
}

type registerRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type currentResponse struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// registerHandler godoc
// @Summary Registrar usuario
// @Tags sessions
// @Accept json
// @Produce json
// @Param body body registerRequest true "Datos del usuario"
// @Success 200 {object} respond.Envelope "payload: id del usuario"
// @Failure 400 {object} respond.Envelope
// @Router /api/sessions/register [post]
func registerHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req registerRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respond.Error(w, http.StatusBadRequest, "Incomplete values")
			return
		}

		u, err := svc.Register(r.Context(), RegisterInput(req))
		switch {
		case err == nil:
			respond.Payload(w, http.StatusOK, u.ID)
		case errors.Is(err, ErrIncomplete):
			respond.Error(w, http.StatusBadRequest, "Incomplete values")
		case errors.Is(err, ErrUserExists):
			respond.Error(w, http.StatusBadRequest, "User already exists")
		default:
			logger.FromContext(r.Context(), log).Error("register failed", map[string]any{"err": err.Error()})
			respond.Internal(w)
		}
	}
}

// loginHandler godoc
// @Summary Iniciar sesión
// @Description Setea la cookie de sesión (JWT).
// @Tags sessions
// @Accept json
// @Produce json
// @Param body body loginRequest true "Credenciales"
// @Success 200 {object} respond.Envelope
// @Failure 400 {object} respond.Envelope
// @Failure 404 {object} respond.Envelope
// @Router /api/sessions/login [post]
func loginHandler(svc *Service, cookieName string, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respond.Error(w, http.StatusBadRequest, "Incomplete values")
			return
		}

		token, _, err := svc.Login(r.Context(), req.Email, req.Password)
		switch {
		case err == nil:
		case errors.Is(err, ErrIncomplete):
			respond.Error(w, http.StatusBadRequest, "Incomplete values")
			return
		case errors.Is(err, ErrNoSuchUser):
			respond.Error(w, http.StatusNotFound, "User doesn't exist")
			return
		case errors.Is(err, ErrBadPassword):
			respond.Error(w, http.StatusBadRequest, "Incorrect password")
			return
		default:
			logger.FromContext(r.Context(), log).Error("login failed", map[string]any{"err": err.Error()})
			respond.Internal(w)
			return
		}

		http.SetCookie(w, &http.Cookie{
			Name:     cookieName,
			Value:    token,
			Path:     "/",
			MaxAge:   int(svc.SessionTTL().Seconds()),
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
		respond.Message(w, http.StatusOK, "Logged in")
	}
}

// currentHandler godoc
// @Summary Usuario de la sesión actual
// @Tags sessions
// @Produce json
// @Success 200 {object} respond.Envelope
// @Failure 401 {object} respond.Envelope
// @Router /api/sessions/current [get]
func currentHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, ok := middleware.GetClaims(r.Context())
		if !ok {
			respond.Error(w, http.StatusUnauthorized, "Not authenticated")
			return
		}
		respond.Payload(w, http.StatusOK, currentResponse{Name: c.Name, Email: c.Email, Role: c.Role})
	}
}

// logoutHandler godoc
// @Summary Cerrar sesión
// @Tags sessions
// @Produce json
// @Success 200 {object} respond.Envelope
// @Router /api/sessions/logout [post]
func logoutHandler(svc *Service, cookieName string, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Logout(r.Context(), middleware.GetToken(r.Context())); err != nil {
			logger.FromContext(r.Context(), log).Error("logout revoke failed", map[string]any{"err": err.Error()})
			respond.Internal(w)
			return
		}

		http.SetCookie(w, &http.Cookie{
			Name:     cookieName,
			Value:    "",
			Path:     "/",
			MaxAge:   -1,
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
		respond.Message(w, http.StatusOK, "Logged out")
	}
}
