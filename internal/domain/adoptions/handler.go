package adoptions

import (
	"errors"
	"net/http"
	"time"

	"adoptme/internal/platform/logger"
	"adoptme/internal/platform/respond"

	"github.com/go-chi/chi/v5"
)

// Outcomes que se reportan al Recorder.
const (
	OutcomeAdopted         = "adopted"
	OutcomeUserNotFound    = "user_not_found"
	OutcomePetNotFound     = "pet_not_found"
	OutcomeAlreadyAdopted  = "already_adopted"
	OutcomeUnexpectedError = "error"
)

// Recorder recibe el resultado de cada intento de adopción (métricas).
type Recorder interface {
	ObserveAdoption(outcome string)
}

type nopRecorder struct{}

func (nopRecorder) ObserveAdoption(string) {}

func RegisterRoutes(r chi.Router, svc *Service, rec Recorder, log logger.Logger) {
	if rec == nil {
		rec = nopRecorder{}
	}

	r.Route("/api/adoptions", func(ar chi.Router) {
		ar.Get("/", listAdoptionsHandler(svc, log))
		ar.Get("/{aid}", getAdoptionHandler(svc, log))
		ar.Post("/{uid}/{pid}", createAdoptionHandler(svc, rec, log))
	})
}

// adoptionResponse usa las keys que esperan los clientes (_id, owner, pet).
type adoptionResponse struct {
	ID        string    `json:"_id"`
	Owner     string    `json:"owner"`
	Pet       string    `json:"pet"`
	CreatedAt time.Time `json:"createdAt"`
}

// listAdoptionsHandler godoc
// @Summary Listar adopciones
// @Description Devuelve todas las adopciones en orden de creación. Lista vacía es un resultado válido.
// @Tags adoptions
// @Produce json
// @Success 200 {object} respond.Envelope
// @Failure 500 {object} respond.Envelope
// @Router /api/adoptions [get]
func listAdoptionsHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			logger.FromContext(r.Context(), log).Error("list adoptions failed", map[string]any{"err": err.Error()})
			respond.Internal(w)
			return
		}

		out := make([]adoptionResponse, 0, len(items))
		for _, a := range items {
			out = append(out, toAdoptionResponse(a))
		}
		respond.Payload(w, http.StatusOK, out)
	}
}

// getAdoptionHandler godoc
// @Summary Obtener adopción por ID
// @Description IDs inexistentes o con formato inválido devuelven 404.
// @Tags adoptions
// @Produce json
// @Param aid path string true "ID de la adopción"
// @Success 200 {object} respond.Envelope
// @Failure 404 {object} respond.Envelope "Adoption not found"
// @Router /api/adoptions/{aid} [get]
func getAdoptionHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		a, err := svc.GetByID(r.Context(), chi.URLParam(r, "aid"))
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				respond.Error(w, http.StatusNotFound, "Adoption not found")
				return
			}
			logger.FromContext(r.Context(), log).Error("get adoption failed", map[string]any{"err": err.Error()})
			respond.Internal(w)
			return
		}
		respond.Payload(w, http.StatusOK, toAdoptionResponse(a))
	}
}

// createAdoptionHandler godoc
// @Summary Adoptar mascota
// @Description Marca la mascota como adoptada por el usuario, la agrega a sus mascotas y registra la adopción.
// @Tags adoptions
// @Produce json
// @Param uid path string true "ID del usuario"
// @Param pid path string true "ID de la mascota"
// @Success 200 {object} respond.Envelope "Pet adopted"
// @Failure 400 {object} respond.Envelope "Pet is already adopted"
// @Failure 404 {object} respond.Envelope "user Not found / Pet not found"
// @Router /api/adoptions/{uid}/{pid} [post]
func createAdoptionHandler(svc *Service, rec Recorder, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		err := svc.Adopt(r.Context(), chi.URLParam(r, "uid"), chi.URLParam(r, "pid"))

		switch {
		case err == nil:
			rec.ObserveAdoption(OutcomeAdopted)
			respond.Message(w, http.StatusOK, "Pet adopted")
		case errors.Is(err, ErrUserNotFound):
			rec.ObserveAdoption(OutcomeUserNotFound)
			respond.Error(w, http.StatusNotFound, "user Not found")
		case errors.Is(err, ErrPetNotFound):
			rec.ObserveAdoption(OutcomePetNotFound)
			respond.Error(w, http.StatusNotFound, "Pet not found")
		case errors.Is(err, ErrPetAlreadyAdopted):
			rec.ObserveAdoption(OutcomeAlreadyAdopted)
			respond.Error(w, http.StatusBadRequest, "Pet is already adopted")
		default:
			rec.ObserveAdoption(OutcomeUnexpectedError)
			logger.FromContext(r.Context(), log).Error("adoption failed", map[string]any{"err": err.Error()})
			respond.Internal(w)
		}
	}
}

func toAdoptionResponse(a Adoption) adoptionResponse {
	return adoptionResponse{
		ID:        a.ID,
		Owner:     a.Owner,
		Pet:       a.Pet,
		CreatedAt: a.CreatedAt,
	}
}
