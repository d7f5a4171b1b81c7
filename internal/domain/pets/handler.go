package pets

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"vacunapet/internal/domain/owners"
	"vacunapet/internal/platform/httpjson"

	"github.com/go-chi/chi/v5"
)

const dateLayout = "2006-01-02"

// Registro plano (sin Route anidado) para que records pueda colgar
// /mascotas/{petID}/... en el mismo router sin conflicto de mounts.
func RegisterRoutes(r chi.Router, svc *Service, ownersSvc *owners.Service) {
	r.Get("/mascotas", listPetsHandler(svc))
	r.Post("/mascotas", createPetHandler(svc, ownersSvc))
	r.Put("/mascotas/{petID}", updatePetHandler(svc))
	r.Delete("/mascotas/{petID}", deletePetHandler(svc))
}

type createPetRequest struct {
	Name       string   `json:"nombre"`
	Species    string   `json:"especie"`
	Breed      string   `json:"raza"`
	BirthDate  string   `json:"fecha_nacimiento"` // YYYY-MM-DD opcional
	Weight     *float64 `json:"peso"`
	Microchip  string   `json:"microchip"`
	Sterilized bool     `json:"castrado"`
	Photo      string   `json:"foto"`
	OwnerID    string   `json:"user_id"`
}

// Punteros para update parcial: nil = campo no enviado.
// fecha_nacimiento se detecta aparte (ver raw map) para poder
// diferenciar "no enviada" de "enviada como null".
type updatePetRequest struct {
	Name       *string  `json:"nombre"`
	Species    *string  `json:"especie"`
	Breed      *string  `json:"raza"`
	Weight     *float64 `json:"peso"`
	Microchip  *string  `json:"microchip"`
	Sterilized *bool    `json:"castrado"`
	Photo      *string  `json:"foto"`
}

func petPayload(p Pet, at time.Time) map[string]any {
	var bd any
	if p.BirthDate != nil {
		bd = p.BirthDate.Format(dateLayout)
	}
	var edad any
	if v := p.Age(at); v != nil {
		edad = *v
	}
	return map[string]any{
		"id":               p.ID,
		"nombre":           p.Name,
		"especie":          p.Species,
		"raza":             p.Breed,
		"fecha_nacimiento": bd,
		"peso":             p.Weight,
		"microchip":        p.Microchip,
		"castrado":         p.Sterilized,
		"foto":             p.Photo,
		"user_id":          p.OwnerID,
		"edad":             edad,
	}
}

// listPetsHandler godoc
// @Summary Listar mascotas de un dueño
// @Tags mascotas
// @Produce json
// @Param user_id query string true "ID del dueño"
// @Success 200 {object} map[string]any
// @Failure 400 {object} map[string]any "falta user_id"
// @Router /mascotas [get]
func listPetsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ownerID := strings.TrimSpace(r.URL.Query().Get("user_id"))
		if ownerID == "" {
			httpjson.Fail(w, http.StatusBadRequest, "Falta user_id")
			return
		}

		items, err := svc.ListByOwner(r.Context(), ownerID)
		if err != nil {
			httpjson.Fail(w, http.StatusInternalServerError, "Error interno")
			return
		}

		now := time.Now()
		out := make([]map[string]any, 0, len(items))
		for _, p := range items {
			out = append(out, petPayload(p, now))
		}

		httpjson.OK(w, http.StatusOK, "Mascotas del usuario", map[string]any{
			"mascotas": out,
		})
	}
}

// createPetHandler godoc
// @Summary Agregar mascota
// @Description Nombre, especie, raza y user_id son obligatorios. Peso default 0, castrado default false.
// @Tags mascotas
// @Accept json
// @Produce json
// @Param payload body createPetRequest true "Datos de la mascota"
// @Success 201 {object} map[string]any
// @Failure 400 {object} map[string]any
// @Failure 404 {object} map[string]any "usuario no encontrado"
// @Router /mascotas [post]
func createPetHandler(svc *Service, ownersSvc *owners.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createPetRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httpjson.Fail(w, http.StatusBadRequest, "JSON inválido")
			return
		}

		if strings.TrimSpace(req.OwnerID) == "" {
			httpjson.Fail(w, http.StatusBadRequest, "Falta user_id")
			return
		}
		if _, err := ownersSvc.GetByID(r.Context(), req.OwnerID); err != nil {
			httpjson.Fail(w, http.StatusNotFound, "Usuario no encontrado")
			return
		}

		var bd *time.Time
		if strings.TrimSpace(req.BirthDate) != "" {
			t, err := time.Parse(dateLayout, req.BirthDate)
			if err != nil {
				httpjson.Fail(w, http.StatusBadRequest, "fecha_nacimiento debe ser YYYY-MM-DD")
				return
			}
			bd = &t
		}

		weight := 0.0
		if req.Weight != nil {
			weight = *req.Weight
		}

		p, err := svc.Create(r.Context(), CreateInput{
			OwnerID:    req.OwnerID,
			Name:       req.Name,
			Species:    req.Species,
			Breed:      req.Breed,
			BirthDate:  bd,
			Weight:     weight,
			Microchip:  req.Microchip,
			Sterilized: req.Sterilized,
			Photo:      req.Photo,
		})
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				httpjson.Fail(w, http.StatusBadRequest, "Faltan datos obligatorios")
				return
			}
			httpjson.Fail(w, http.StatusInternalServerError, "Error interno")
			return
		}

		httpjson.OK(w, http.StatusCreated, "Mascota agregada", map[string]any{
			"id": p.ID,
		})
	}
}

// updatePetHandler aplica update parcial: solo los campos presentes en el
// body tocan la mascota; el resto queda byte a byte igual.
func updatePetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Primero a un map para saber qué campos vinieron (en particular
		// fecha_nacimiento, que admite null para limpiar).
		var raw map[string]json.RawMessage
		if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
			httpjson.Fail(w, http.StatusBadRequest, "JSON inválido")
			return
		}

		var req updatePetRequest
		{
			b, _ := json.Marshal(raw)
			if err := json.Unmarshal(b, &req); err != nil {
				httpjson.Fail(w, http.StatusBadRequest, "JSON inválido")
				return
			}
		}

		bd := BirthDatePatch{}
		if v, exists := raw["fecha_nacimiento"]; exists {
			bd.Present = true
			if string(v) != "null" {
				var s string
				if err := json.Unmarshal(v, &s); err != nil {
					httpjson.Fail(w, http.StatusBadRequest, "fecha_nacimiento debe ser YYYY-MM-DD o null")
					return
				}
				t, err := time.Parse(dateLayout, s)
				if err != nil {
					httpjson.Fail(w, http.StatusBadRequest, "fecha_nacimiento debe ser YYYY-MM-DD o null")
					return
				}
				bd.Value = &t
			}
		}

		_, err := svc.Update(r.Context(), chi.URLParam(r, "petID"), UpdateInput{
			Name:       req.Name,
			Species:    req.Species,
			Breed:      req.Breed,
			BirthDate:  bd,
			Weight:     req.Weight,
			Microchip:  req.Microchip,
			Sterilized: req.Sterilized,
			Photo:      req.Photo,
		})
		if err != nil {
			switch {
			case errors.Is(err, ErrNotFound):
				httpjson.Fail(w, http.StatusNotFound, "Mascota no encontrada")
			case errors.Is(err, ErrInvalidInput):
				httpjson.Fail(w, http.StatusBadRequest, "Faltan datos obligatorios")
			default:
				httpjson.Fail(w, http.StatusInternalServerError, "Error interno")
			}
			return
		}

		httpjson.OK(w, http.StatusOK, "Mascota actualizada", nil)
	}
}

// deletePetHandler godoc
// @Summary Eliminar mascota
// @Description Borra la mascota y todos sus registros médicos en una sola transacción.
// @Tags mascotas
// @Produce json
// @Param petID path string true "ID de la mascota"
// @Success 200 {object} map[string]any
// @Failure 404 {object} map[string]any
// @Router /mascotas/{petID} [delete]
func deletePetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Delete(r.Context(), chi.URLParam(r, "petID")); err != nil {
			if errors.Is(err, ErrNotFound) {
				httpjson.Fail(w, http.StatusNotFound, "Mascota no encontrada")
				return
			}
			httpjson.Fail(w, http.StatusInternalServerError, "Error interno")
			return
		}

		httpjson.OK(w, http.StatusOK, "Mascota eliminada", nil)
	}
}
