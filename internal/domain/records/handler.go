package records

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"vacunapet/internal/domain/pets"
	"vacunapet/internal/platform/httpjson"

	"github.com/go-chi/chi/v5"
)

const dateLayout = "2006-01-02"

// Listados colgados de la mascota; altas con mascota_id en el body,
// igual que la API original del cliente móvil.
func RegisterRoutes(r chi.Router, svc *Service, petsSvc *pets.Service) {
	r.Get("/mascotas/{petID}/vacunas", listVaccinationsHandler(svc, petsSvc))
	r.Post("/vacunas", createVaccinationHandler(svc, petsSvc))

	r.Get("/mascotas/{petID}/diagnosticos", listDiagnosesHandler(svc, petsSvc))
	r.Post("/diagnosticos", createDiagnosisHandler(svc, petsSvc))

	r.Get("/mascotas/{petID}/recetas", listPrescriptionsHandler(svc, petsSvc))
	r.Post("/recetas", createPrescriptionHandler(svc, petsSvc))

	r.Get("/mascotas/{petID}/prevenciones", listPreventionsHandler(svc, petsSvc))
	r.Post("/prevenciones", createPreventionHandler(svc, petsSvc))
}

type createVaccinationRequest struct {
	Name      string `json:"nombre"`
	AppliedOn string `json:"fecha_aplicacion"` // YYYY-MM-DD
	PetID     string `json:"mascota_id"`
}

type createDiagnosisRequest struct {
	Title       string `json:"titulo"`
	Date        string `json:"fecha"`
	Description string `json:"descripcion"`
	PetID       string `json:"mascota_id"`
}

type createPrescriptionRequest struct {
	Medication   string `json:"medicamento"`
	Dosage       string `json:"dosis"`
	Date         string `json:"fecha"`
	Instructions string `json:"instrucciones"`
	PetID        string `json:"mascota_id"`
}

type createPreventionRequest struct {
	Type        string `json:"tipo"`
	Date        string `json:"fecha"`
	Description string `json:"descripcion"`
	PetID       string `json:"mascota_id"`
}

// requirePet valida que la mascota exista antes de tocar sus registros.
func requirePet(w http.ResponseWriter, r *http.Request, petsSvc *pets.Service, petID string) bool {
	if _, err := petsSvc.GetByID(r.Context(), petID); err != nil {
		httpjson.Fail(w, http.StatusNotFound, "Mascota no encontrada")
		return false
	}
	return true
}

// parseDate exige fecha calendario ISO-8601; falla antes de persistir.
func parseDate(w http.ResponseWriter, raw string) (time.Time, bool) {
	t, err := time.Parse(dateLayout, strings.TrimSpace(raw))
	if err != nil {
		httpjson.Fail(w, http.StatusBadRequest, "La fecha debe ser YYYY-MM-DD")
		return time.Time{}, false
	}
	return t, true
}

// listVaccinationsHandler godoc
// @Summary Listar vacunas de una mascota
// @Tags registros
// @Produce json
// @Param petID path string true "ID de la mascota"
// @Success 200 {object} map[string]any
// @Failure 404 {object} map[string]any
// @Router /mascotas/{petID}/vacunas [get]
func listVaccinationsHandler(svc *Service, petsSvc *pets.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		petID := chi.URLParam(r, "petID")
		if !requirePet(w, r, petsSvc, petID) {
			return
		}

		items, err := svc.ListVaccinationsByPet(r.Context(), petID)
		if err != nil {
			httpjson.Fail(w, http.StatusInternalServerError, "Error interno")
			return
		}

		out := make([]map[string]any, 0, len(items))
		for _, v := range items {
			out = append(out, map[string]any{
				"id":               v.ID,
				"nombre":           v.Name,
				"fecha_aplicacion": v.AppliedOn.Format(dateLayout),
			})
		}

		httpjson.OK(w, http.StatusOK, "Vacunas de la mascota", map[string]any{
			"vacunas": out,
		})
	}
}

// createVaccinationHandler godoc
// @Summary Agregar vacuna
// @Tags registros
// @Accept json
// @Produce json
// @Param payload body createVaccinationRequest true "nombre, fecha_aplicacion (YYYY-MM-DD) y mascota_id"
// @Success 201 {object} map[string]any
// @Failure 400 {object} map[string]any
// @Failure 404 {object} map[string]any
// @Router /vacunas [post]
func createVaccinationHandler(svc *Service, petsSvc *pets.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createVaccinationRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httpjson.Fail(w, http.StatusBadRequest, "JSON inválido")
			return
		}

		if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.AppliedOn) == "" || strings.TrimSpace(req.PetID) == "" {
			httpjson.Fail(w, http.StatusBadRequest, "Faltan datos")
			return
		}
		if !requirePet(w, r, petsSvc, req.PetID) {
			return
		}
		applied, ok := parseDate(w, req.AppliedOn)
		if !ok {
			return
		}

		v, err := svc.AddVaccination(r.Context(), VaccinationInput{
			PetID:     req.PetID,
			Name:      req.Name,
			AppliedOn: applied,
		})
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				httpjson.Fail(w, http.StatusBadRequest, "Faltan datos")
				return
			}
			httpjson.Fail(w, http.StatusInternalServerError, "Error interno")
			return
		}

		httpjson.OK(w, http.StatusCreated, "Vacuna agregada", map[string]any{"id": v.ID})
	}
}

func listDiagnosesHandler(svc *Service, petsSvc *pets.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		petID := chi.URLParam(r, "petID")
		if !requirePet(w, r, petsSvc, petID) {
			return
		}

		items, err := svc.ListDiagnosesByPet(r.Context(), petID)
		if err != nil {
			httpjson.Fail(w, http.StatusInternalServerError, "Error interno")
			return
		}

		out := make([]map[string]any, 0, len(items))
		for _, d := range items {
			out = append(out, map[string]any{
				"id":          d.ID,
				"titulo":      d.Title,
				"fecha":       d.Date.Format(dateLayout),
				"descripcion": d.Description,
			})
		}

		httpjson.OK(w, http.StatusOK, "Diagnósticos de la mascota", map[string]any{
			"diagnosticos": out,
		})
	}
}

func createDiagnosisHandler(svc *Service, petsSvc *pets.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createDiagnosisRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httpjson.Fail(w, http.StatusBadRequest, "JSON inválido")
			return
		}

		if strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.Date) == "" || strings.TrimSpace(req.PetID) == "" {
			httpjson.Fail(w, http.StatusBadRequest, "Faltan datos")
			return
		}
		if !requirePet(w, r, petsSvc, req.PetID) {
			return
		}
		date, ok := parseDate(w, req.Date)
		if !ok {
			return
		}

		d, err := svc.AddDiagnosis(r.Context(), DiagnosisInput{
			PetID:       req.PetID,
			Title:       req.Title,
			Date:        date,
			Description: req.Description,
		})
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				httpjson.Fail(w, http.StatusBadRequest, "Faltan datos")
				return
			}
			httpjson.Fail(w, http.StatusInternalServerError, "Error interno")
			return
		}

		httpjson.OK(w, http.StatusCreated, "Diagnóstico agregado", map[string]any{"id": d.ID})
	}
}

func listPrescriptionsHandler(svc *Service, petsSvc *pets.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		petID := chi.URLParam(r, "petID")
		if !requirePet(w, r, petsSvc, petID) {
			return
		}

		items, err := svc.ListPrescriptionsByPet(r.Context(), petID)
		if err != nil {
			httpjson.Fail(w, http.StatusInternalServerError, "Error interno")
			return
		}

		out := make([]map[string]any, 0, len(items))
		for _, p := range items {
			out = append(out, map[string]any{
				"id":            p.ID,
				"medicamento":   p.Medication,
				"dosis":         p.Dosage,
				"fecha":         p.Date.Format(dateLayout),
				"instrucciones": p.Instructions,
			})
		}

		httpjson.OK(w, http.StatusOK, "Recetas de la mascota", map[string]any{
			"recetas": out,
		})
	}
}

func createPrescriptionHandler(svc *Service, petsSvc *pets.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createPrescriptionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httpjson.Fail(w, http.StatusBadRequest, "JSON inválido")
			return
		}

		if strings.TrimSpace(req.Medication) == "" || strings.TrimSpace(req.Dosage) == "" ||
			strings.TrimSpace(req.Date) == "" || strings.TrimSpace(req.PetID) == "" {
			httpjson.Fail(w, http.StatusBadRequest, "Faltan datos")
			return
		}
		if !requirePet(w, r, petsSvc, req.PetID) {
			return
		}
		date, ok := parseDate(w, req.Date)
		if !ok {
			return
		}

		p, err := svc.AddPrescription(r.Context(), PrescriptionInput{
			PetID:        req.PetID,
			Medication:   req.Medication,
			Dosage:       req.Dosage,
			Date:         date,
			Instructions: req.Instructions,
		})
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				httpjson.Fail(w, http.StatusBadRequest, "Faltan datos")
				return
			}
			httpjson.Fail(w, http.StatusInternalServerError, "Error interno")
			return
		}

		httpjson.OK(w, http.StatusCreated, "Receta agregada", map[string]any{"id": p.ID})
	}
}

func listPreventionsHandler(svc *Service, petsSvc *pets.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		petID := chi.URLParam(r, "petID")
		if !requirePet(w, r, petsSvc, petID) {
			return
		}

		items, err := svc.ListPreventionsByPet(r.Context(), petID)
		if err != nil {
			httpjson.Fail(w, http.StatusInternalServerError, "Error interno")
			return
		}

		out := make([]map[string]any, 0, len(items))
		for _, p := range items {
			out = append(out, map[string]any{
				"id":          p.ID,
				"tipo":        p.Type,
				"fecha":       p.Date.Format(dateLayout),
				"descripcion": p.Description,
			})
		}

		httpjson.OK(w, http.StatusOK, "Prevenciones de la mascota", map[string]any{
			"prevenciones": out,
		})
	}
}

func createPreventionHandler(svc *Service, petsSvc *pets.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createPreventionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httpjson.Fail(w, http.StatusBadRequest, "JSON inválido")
			return
		}

		if strings.TrimSpace(req.Type) == "" || strings.TrimSpace(req.Date) == "" || strings.TrimSpace(req.PetID) == "" {
			httpjson.Fail(w, http.StatusBadRequest, "Faltan datos")
			return
		}
		if !requirePet(w, r, petsSvc, req.PetID) {
			return
		}
		date, ok := parseDate(w, req.Date)
		if !ok {
			return
		}

		p, err := svc.AddPrevention(r.Context(), PreventionInput{
			PetID:       req.PetID,
			Type:        req.Type,
			Date:        date,
			Description: req.Description,
		})
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				httpjson.Fail(w, http.StatusBadRequest, "Faltan datos")
				return
			}
			httpjson.Fail(w, http.StatusInternalServerError, "Error interno")
			return
		}

		httpjson.OK(w, http.StatusCreated, "Prevención agregada", map[string]any{"id": p.ID})
	}
}
