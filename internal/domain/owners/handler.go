package owners

import (
	"encoding/json"
	"errors"
	"net/http"

	"vacunapet/internal/platform/httpjson"

	"github.com/go-chi/chi/v5"
)

// Rutas de usuario de la API JSON (cliente móvil). Son stateless: el
// cliente manda los ids explícitos, no hay sesión del lado servidor.
func RegisterRoutes(r chi.Router, svc *Service) {
	r.Post("/register", registerHandler(svc))
	r.Post("/login", loginHandler(svc))

	r.Get("/usuario/{ownerID}", getOwnerHandler(svc))
	r.Put("/usuario/{ownerID}", updateOwnerHandler(svc))
	r.Put("/usuario/{ownerID}/foto", updateOwnerPhotoHandler(svc))
}

type registerRequest struct {
	Name     string `json:"nombre"`
	Surname  string `json:"apellido"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Punteros para update parcial: nil = campo no enviado.
type updateOwnerRequest struct {
	Name    *string `json:"nombre"`
	Surname *string `json:"apellido"`
	Email   *string `json:"email"`
	Photo   *string `json:"foto"`
}

type updatePhotoRequest struct {
	Photo string `json:"foto"`
}

func ownerPayload(o Owner) map[string]any {
	return map[string]any{
		"id":       o.ID,
		"nombre":   o.Name,
		"apellido": o.Surname,
		"email":    o.Email,
		"foto":     o.Photo,
	}
}

// registerHandler godoc
// @Summary Registrar dueño
// @Description Crea un dueño nuevo. Nombre, email y contraseña son obligatorios; el email debe ser único.
// @Tags usuarios
// @Accept json
// @Produce json
// @Param payload body registerRequest true "Datos de registro"
// @Success 201 {object} map[string]any
// @Failure 400 {object} map[string]any "faltan datos / email ya registrado"
// @Router /register [post]
func registerHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req registerRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httpjson.Fail(w, http.StatusBadRequest, "JSON inválido")
			return
		}

		o, err := svc.Register(r.Context(), RegisterInput{
			Name:     req.Name,
			Surname:  req.Surname,
			Email:    req.Email,
			Password: req.Password,
		})
		if err != nil {
			switch {
			case errors.Is(err, ErrInvalidInput):
				httpjson.Fail(w, http.StatusBadRequest, "Nombre, email y contraseña son obligatorios")
			case errors.Is(err, ErrEmailTaken):
				httpjson.Fail(w, http.StatusBadRequest, "El correo ya está registrado")
			default:
				httpjson.Fail(w, http.StatusInternalServerError, "Error interno")
			}
			return
		}

		httpjson.OK(w, http.StatusCreated, "Usuario registrado", map[string]any{
			"user_id":  o.ID,
			"nombre":   o.Name,
			"apellido": o.Surname,
			"email":    o.Email,
			"foto":     o.Photo,
		})
	}
}

// loginHandler godoc
// @Summary Login de la API
// @Description Verifica credenciales y devuelve los datos del dueño. Email desconocido y contraseña incorrecta responden igual.
// @Tags usuarios
// @Accept json
// @Produce json
// @Param payload body loginRequest true "Credenciales"
// @Success 200 {object} map[string]any
// @Failure 400 {object} map[string]any
// @Failure 401 {object} map[string]any "credenciales incorrectas"
// @Router /login [post]
func loginHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httpjson.Fail(w, http.StatusBadRequest, "JSON inválido")
			return
		}

		o, err := svc.Authenticate(r.Context(), req.Email, req.Password)
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				httpjson.Fail(w, http.StatusBadRequest, "Email y contraseña son obligatorios")
				return
			}
			httpjson.Fail(w, http.StatusUnauthorized, "Credenciales incorrectas")
			return
		}

		httpjson.OK(w, http.StatusOK, "Login exitoso", map[string]any{
			"user_id":  o.ID,
			"nombre":   o.Name,
			"apellido": o.Surname,
			"email":    o.Email,
			"foto":     o.Photo,
		})
	}
}

func getOwnerHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		o, err := svc.GetByID(r.Context(), chi.URLParam(r, "ownerID"))
		if err != nil {
			httpjson.Fail(w, http.StatusNotFound, "Usuario no encontrado")
			return
		}

		httpjson.OK(w, http.StatusOK, "Usuario encontrado", map[string]any{
			"usuario": ownerPayload(o),
		})
	}
}

func updateOwnerHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req updateOwnerRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httpjson.Fail(w, http.StatusBadRequest, "JSON inválido")
			return
		}

		_, err := svc.UpdateProfile(r.Context(), chi.URLParam(r, "ownerID"), UpdateProfileInput{
			Name:    req.Name,
			Surname: req.Surname,
			Email:   req.Email,
			Photo:   req.Photo,
		})
		if err != nil {
			switch {
			case errors.Is(err, ErrNotFound):
				httpjson.Fail(w, http.StatusNotFound, "Usuario no encontrado")
			case errors.Is(err, ErrInvalidInput):
				httpjson.Fail(w, http.StatusBadRequest, "Faltan datos obligatorios")
			case errors.Is(err, ErrEmailTaken):
				httpjson.Fail(w, http.StatusBadRequest, "El correo ya está registrado")
			default:
				httpjson.Fail(w, http.StatusInternalServerError, "Error interno")
			}
			return
		}

		httpjson.OK(w, http.StatusOK, "Usuario actualizado", nil)
	}
}

func updateOwnerPhotoHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req updatePhotoRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httpjson.Fail(w, http.StatusBadRequest, "JSON inválido")
			return
		}
		if req.Photo == "" {
			httpjson.Fail(w, http.StatusBadRequest, "No se envió ninguna foto")
			return
		}

		if err := svc.UpdatePhoto(r.Context(), chi.URLParam(r, "ownerID"), req.Photo); err != nil {
			if errors.Is(err, ErrNotFound) {
				httpjson.Fail(w, http.StatusNotFound, "Usuario no encontrado")
				return
			}
			httpjson.Fail(w, http.StatusInternalServerError, "Error interno")
			return
		}

		httpjson.OK(w, http.StatusOK, "Foto actualizada", nil)
	}
}
