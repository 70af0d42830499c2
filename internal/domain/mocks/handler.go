package mocks

import (
	"encoding/json"
	"fmt"
	"math"
	"net/http"

	"adoptme/internal/domain/pets"
	"adoptme/internal/domain/users"
	"adoptme/internal/platform/logger"
	"adoptme/internal/platform/respond"

	"github.com/go-chi/chi/v5"
)

// MaxGenerate acota cada parámetro de /generateData.
const MaxGenerate = 10000

const (
	msgMissingParams  = "Se requieren los parámetros 'users' y 'pets' en el body"
	msgNotNumbers     = "Los parámetros 'users' y 'pets' deben ser números"
	msgNegativeParams = "Los parámetros 'users' y 'pets' deben ser números positivos"
)

func RegisterRoutes(r chi.Router, svc *Service, log logger.Logger) {
	r.Route("/api/mocks", func(mr chi.Router) {
		mr.Get("/mockingpets", mockingPetsHandler(svc))
		mr.Get("/mockingusers", mockingUsersHandler(svc, log))
		mr.Post("/generateData", generateDataHandler(svc, log))
	})
}

// mockUserResponse incluye el hash: son datos de prueba que no se persisten.
type mockUserResponse struct {
	FirstName string     `json:"first_name"`
	LastName  string     `json:"last_name"`
	Email     string     `json:"email"`
	Password  string     `json:"password"`
	Role      users.Role `json:"role"`
	Pets      []string   `json:"pets"`
}

// mockingPetsHandler godoc
// @Summary Generar mascotas mock
// @Description Devuelve 50 mascotas generadas, sin persistir.
// @Tags mocks
// @Produce json
// @Success 200 {object} respond.Envelope
// @Router /api/mocks/mockingpets [get]
func mockingPetsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		items := svc.SamplePets()
		out := make([]pets.Response, 0, len(items))
		for _, p := range items {
			out = append(out, pets.ToResponse(p))
		}
		respond.Payload(w, http.StatusOK, out)
	}
}

// mockingUsersHandler godoc
// @Summary Generar usuarios mock
// @Description Devuelve 50 usuarios generados (password "coder123" hasheado), sin persistir.
// @Tags mocks
// @Produce json
// @Success 200 {object} respond.Envelope
// @Router /api/mocks/mockingusers [get]
func mockingUsersHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.SampleUsers()
		if err != nil {
			logger.FromContext(r.Context(), log).Error("mock users failed", map[string]any{"err": err.Error()})
			respond.Internal(w)
			return
		}
		out := make([]mockUserResponse, 0, len(items))
		for _, u := range items {
			out = append(out, mockUserResponse{
				FirstName: u.FirstName,
				LastName:  u.LastName,
				Email:     u.Email,
				Password:  u.Password,
				Role:      u.Role,
				Pets:      []string{},
			})
		}
		respond.Payload(w, http.StatusOK, out)
	}
}

// generateDataHandler godoc
// @Summary Generar e insertar datos
// @Tags mocks
// @Accept json
// @Produce json
// @Param body body object true "{users: number, pets: number}"
// @Success 200 {object} respond.Envelope
// @Failure 400 {object} respond.Envelope
// @Router /api/mocks/generateData [post]
func generateDataHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		nUsers, nPets, msg := parseGenerateBody(r)
		if msg != "" {
			respond.Error(w, http.StatusBadRequest, msg)
			return
		}

		res, err := svc.Generate(r.Context(), nUsers, nPets)
		if err != nil {
			logger.FromContext(r.Context(), log).Error("generate mock data failed", map[string]any{
				"err":            err.Error(),
				"users_inserted": res.Users,
				"pets_inserted":  res.Pets,
			})
			respond.Internal(w)
			return
		}

		respond.MessagePayload(w, http.StatusOK,
			fmt.Sprintf("Se generaron e insertaron %d usuarios y %d pets correctamente", nUsers, nPets),
			res,
		)
	}
}

// parseGenerateBody devuelve el mensaje de error a mostrar o "" si el body es válido.
func parseGenerateBody(r *http.Request) (int, int, string) {
	var body map[string]json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		return 0, 0, msgMissingParams
	}

	rawUsers, okU := body["users"]
	rawPets, okP := body["pets"]
	if !okU || !okP {
		return 0, 0, msgMissingParams
	}

	nUsers, okU := parseCount(rawUsers)
	nPets, okP := parseCount(rawPets)
	if !okU || !okP {
		return 0, 0, msgNotNumbers
	}
	if nUsers < 0 || nPets < 0 {
		return 0, 0, msgNegativeParams
	}
	if nUsers > MaxGenerate || nPets > MaxGenerate {
		return 0, 0, fmt.Sprintf("Los parámetros 'users' y 'pets' no pueden superar %d", MaxGenerate)
	}
	return nUsers, nPets, ""
}

// parseCount acepta solo números JSON enteros ("3" como string o null no valen).
func parseCount(raw json.RawMessage) (int, bool) {
	var f *float64
	if err := json.Unmarshal(raw, &f); err != nil || f == nil {
		return 0, false
	}
	if *f != math.Trunc(*f) {
		return 0, false
	}
	switch {
	case *f > MaxGenerate:
		return MaxGenerate + 1, true
	case *f < 0:
		return -1, true
	}
	return int(*f), true
}
