package pets

import (
	"encoding/json"
	"errors"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"adoptme/internal/platform/logger"
	"adoptme/internal/platform/respond"
	"adoptme/internal/ports/images"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// maxUploadBytes limita el multipart de /withimage.
const maxUploadBytes = 10 << 20

func RegisterRoutes(r chi.Router, svc *Service, imgs images.Store, log logger.Logger) {
	r.Route("/api/pets", func(pr chi.Router) {
		pr.Get("/", listPetsHandler(svc, log))
		pr.Post("/", createPetHandler(svc, log))
		pr.Post("/withimage", createPetWithImageHandler(svc, imgs, log))

		pr.Get("/{pid}", getPetHandler(svc, log))
		pr.Put("/{pid}", updatePetHandler(svc, log))
		pr.Delete("/{pid}", deletePetHandler(svc, log))
	})
}

type createPetRequest struct {
	Name      string `json:"name"`
	Specie    string `json:"specie"`
	BirthDate string `json:"birthDate"` // YYYY-MM-DD o RFC3339
}

type updatePetRequest struct {
	Name      *string `json:"name"`
	Specie    *string `json:"specie"`
	BirthDate *string `json:"birthDate"`
}

// Response mantiene las keys que usan los clientes (_id, specie, birthDate).
type Response struct {
	ID        string     `json:"_id,omitempty"`
	Name      string     `json:"name"`
	Specie    string     `json:"specie"`
	BirthDate *time.Time `json:"birthDate,omitempty"`
	Adopted   bool       `json:"adopted"`
	Owner     *string    `json:"owner"`
	Image     string     `json:"image"`
}

func listPetsHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			logger.FromContext(r.Context(), log).Error("list pets failed", map[string]any{"err": err.Error()})
			respond.Internal(w)
			return
		}

		out := make([]Response, 0, len(items))
		for _, p := range items {
			out = append(out, ToResponse(p))
		}
		respond.Payload(w, http.StatusOK, out)
	}
}

// getPetHandler godoc
// @Summary Obtener mascota por ID
// @Description Devuelve la mascota con su estado de adopción (adopted/owner).
// @Tags pets
// @Produce json
// @Param pid path string true "ID de la mascota"
// @Success 200 {object} respond.Envelope
// @Failure 404 {object} respond.Envelope "Pet not found"
// @Router /api/pets/{pid} [get]
func getPetHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := svc.GetByID(r.Context(), chi.URLParam(r, "pid"))
		if err != nil {
			writeServiceError(w, r, log, "get pet failed", err)
			return
		}
		respond.Payload(w, http.StatusOK, ToResponse(p))
	}
}

// createPetHandler godoc
// @Summary Crear mascota
// @Tags pets
// @Accept json
// @Produce json
// @Param payload body createPetRequest true "name, specie y birthDate son obligatorios"
// @Success 200 {object} respond.Envelope
// @Failure 400 {object} respond.Envelope "Incomplete values"
// @Router /api/pets [post]
func createPetHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createPetRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respond.Error(w, http.StatusBadRequest, "Incomplete values")
			return
		}

		in, ok := createInputFrom(req.Name, req.Specie, req.BirthDate)
		if !ok {
			respond.Error(w, http.StatusBadRequest, "Incomplete values")
			return
		}

		p, err := svc.Create(r.Context(), in)
		if err != nil {
			writeServiceError(w, r, log, "create pet failed", err)
			return
		}
		respond.Payload(w, http.StatusOK, ToResponse(p))
	}
}

// createPetWithImageHandler recibe multipart/form-data con los mismos campos + "image".
func createPetWithImageHandler(svc *Service, imgs images.Store, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
		if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
			respond.Error(w, http.StatusBadRequest, "Incomplete values")
			return
		}

		in, ok := createInputFrom(r.FormValue("name"), r.FormValue("specie"), r.FormValue("birthDate"))
		if !ok {
			respond.Error(w, http.StatusBadRequest, "Incomplete values")
			return
		}

		file, header, err := r.FormFile("image")
		if err != nil {
			respond.Error(w, http.StatusBadRequest, "Image is required")
			return
		}
		defer file.Close()

		key := uuid.NewString() + strings.ToLower(filepath.Ext(header.Filename))
		contentType := header.Header.Get("Content-Type")
		if contentType == "" {
			contentType = "application/octet-stream"
		}

		ref, err := imgs.Put(r.Context(), key, file, header.Size, contentType)
		if err != nil {
			logger.FromContext(r.Context(), log).Error("store pet image failed", map[string]any{"err": err.Error(), "key": key})
			respond.Internal(w)
			return
		}
		in.Image = ref

		p, err := svc.Create(r.Context(), in)
		if err != nil {
			writeServiceError(w, r, log, "create pet failed", err)
			return
		}
		respond.Payload(w, http.StatusOK, ToResponse(p))
	}
}

func updatePetHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req updatePetRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respond.Error(w, http.StatusBadRequest, "Invalid json")
			return
		}

		in := UpdateInput{Name: req.Name, Specie: req.Specie}
		if req.BirthDate != nil {
			bd, err := ParseBirthDate(*req.BirthDate)
			if err != nil {
				respond.Error(w, http.StatusBadRequest, "birthDate must be YYYY-MM-DD")
				return
			}
			in.BirthDate = &bd
		}

		if _, err := svc.Update(r.Context(), chi.URLParam(r, "pid"), in); err != nil {
			writeServiceError(w, r, log, "update pet failed", err)
			return
		}
		respond.Message(w, http.StatusOK, "pet updated")
	}
}

func deletePetHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Delete(r.Context(), chi.URLParam(r, "pid")); err != nil {
			writeServiceError(w, r, log, "delete pet failed", err)
			return
		}
		respond.Message(w, http.StatusOK, "pet deleted")
	}
}

func createInputFrom(name, specie, birthDate string) (CreateInput, bool) {
	if strings.TrimSpace(name) == "" || strings.TrimSpace(specie) == "" || strings.TrimSpace(birthDate) == "" {
		return CreateInput{}, false
	}
	bd, err := ParseBirthDate(birthDate)
	if err != nil {
		return CreateInput{}, false
	}
	return CreateInput{Name: name, Specie: specie, BirthDate: &bd}, true
}

func writeServiceError(w http.ResponseWriter, r *http.Request, log logger.Logger, msg string, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		respond.Error(w, http.StatusNotFound, "Pet not found")
	case errors.Is(err, ErrInvalidInput):
		respond.Error(w, http.StatusBadRequest, "Incomplete values")
	default:
		logger.FromContext(r.Context(), log).Error(msg, map[string]any{"err": err.Error()})
		respond.Internal(w)
	}
}

// ToResponse la reutilizan los mocks para devolver mascotas generadas.
func ToResponse(p Pet) Response {
	var owner *string
	if p.Owner != "" {
		o := p.Owner
		owner = &o
	}
	return Response{
		ID:        p.ID,
		Name:      p.Name,
		Specie:    p.Specie,
		BirthDate: p.BirthDate,
		Adopted:   p.Adopted,
		Owner:     owner,
		Image:     p.Image,
	}
}
