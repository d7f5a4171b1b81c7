package web

import (
	"embed"
	"errors"
	"html/template"
	"net/http"
	"strconv"
	"strings"
	"time"

	"vacunapet/internal/adapters/auth/sessions"
	"vacunapet/internal/domain/owners"
	"vacunapet/internal/domain/pets"
	"vacunapet/internal/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

//go:embed templates/*.html
var templatesFS embed.FS

const dateLayout = "2006-01-02"

// Handlers atiende la superficie web con sesión: formularios
// renderizados en el servidor, redirects y avisos one-shot.
type Handlers struct {
	owners    *owners.Service
	pets      *pets.Service
	sessions  *sessions.Manager
	uploadDir string
	log       zerolog.Logger

	tmpl *template.Template
}

func NewHandlers(ownersSvc *owners.Service, petsSvc *pets.Service, mgr *sessions.Manager, uploadDir string, log zerolog.Logger) *Handlers {
	return &Handlers{
		owners:    ownersSvc,
		pets:      petsSvc,
		sessions:  mgr,
		uploadDir: uploadDir,
		log:       log,
		tmpl:      template.Must(template.ParseFS(templatesFS, "templates/*.html")),
	}
}

func (h *Handlers) RegisterRoutes(r chi.Router) {
	r.Get("/", h.root)
	r.Get("/web", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
	})

	r.Get("/register", h.registerForm)
	r.Post("/register", h.register)
	r.Get("/login", h.loginForm)
	r.Post("/login", h.login)

	r.Get("/logout", middleware.RequireUser(h.logout))
	r.Get("/dashboard", middleware.RequireUser(h.dashboard))
	r.Get("/add_pet", middleware.RequireUser(h.addPetForm))
	r.Post("/add_pet", middleware.RequireUser(h.addPet))
}

func (h *Handlers) render(w http.ResponseWriter, name string, data any) {
	if err := h.tmpl.ExecuteTemplate(w, name, data); err != nil {
		h.log.Error().Err(err).Str("template", name).Msg("render failed")
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func (h *Handlers) root(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("Servidor VacunaPet funcionando correctamente"))
}

type formPage struct {
	Flash string
}

func (h *Handlers) registerForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, "register.html", formPage{Flash: popFlash(w, r)})
}

func (h *Handlers) register(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		setFlash(w, "Formulario inválido.")
		http.Redirect(w, r, "/register", http.StatusSeeOther)
		return
	}

	_, err := h.owners.Register(r.Context(), owners.RegisterInput{
		Name:     r.PostFormValue("nombre"),
		Surname:  r.PostFormValue("apellido"),
		Email:    r.PostFormValue("email"),
		Password: r.PostFormValue("password"),
	})
	if err != nil {
		switch {
		case errors.Is(err, owners.ErrEmailTaken):
			setFlash(w, "El correo ya está registrado.")
		case errors.Is(err, owners.ErrInvalidInput):
			setFlash(w, "Nombre, email y contraseña son obligatorios.")
		default:
			h.log.Error().Err(err).Msg("web register failed")
			setFlash(w, "No se pudo completar el registro.")
		}
		http.Redirect(w, r, "/register", http.StatusSeeOther)
		return
	}

	setFlash(w, "Registro exitoso. Inicia sesión.")
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

func (h *Handlers) loginForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, "login.html", formPage{Flash: popFlash(w, r)})
}

func (h *Handlers) login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		setFlash(w, "Formulario inválido.")
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	o, err := h.owners.Authenticate(r.Context(), r.PostFormValue("email"), r.PostFormValue("password"))
	if err != nil {
		setFlash(w, "Credenciales incorrectas.")
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	token, err := h.sessions.Issue(o.ID, o.Email)
	if err != nil {
		h.log.Error().Err(err).Msg("issue session failed")
		setFlash(w, "No se pudo iniciar sesión.")
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	http.SetCookie(w, h.sessions.Cookie(token))
	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

func (h *Handlers) logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, h.sessions.ExpiredCookie())
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

type dashboardPet struct {
	Name       string
	Species    string
	Breed      string
	Age        *int
	Weight     float64
	Microchip  string
	Sterilized bool
	Photo      string
}

type dashboardPage struct {
	Flash string
	Pets  []dashboardPet
}

func (h *Handlers) dashboard(w http.ResponseWriter, r *http.Request) {
	claims, _ := middleware.GetClaims(r.Context())

	items, err := h.pets.ListByOwner(r.Context(), claims.UserID)
	if err != nil {
		h.log.Error().Err(err).Msg("list pets failed")
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	now := time.Now()
	page := dashboardPage{Flash: popFlash(w, r)}
	for _, p := range items {
		page.Pets = append(page.Pets, dashboardPet{
			Name:       p.Name,
			Species:    p.Species,
			Breed:      p.Breed,
			Age:        p.Age(now),
			Weight:     p.Weight,
			Microchip:  p.Microchip,
			Sterilized: p.Sterilized,
			Photo:      p.Photo,
		})
	}

	h.render(w, "dashboard.html", page)
}

func (h *Handlers) addPetForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, "add_pet_form.html", formPage{Flash: popFlash(w, r)})
}

func (h *Handlers) addPet(w http.ResponseWriter, r *http.Request) {
	claims, _ := middleware.GetClaims(r.Context())

	if err := r.ParseMultipartForm(32 << 20); err != nil {
		setFlash(w, "Formulario inválido.")
		http.Redirect(w, r, "/add_pet", http.StatusSeeOther)
		return
	}

	var bd *time.Time
	if raw := strings.TrimSpace(r.PostFormValue("fecha_nacimiento")); raw != "" {
		t, err := time.Parse(dateLayout, raw)
		if err != nil {
			setFlash(w, "La fecha de nacimiento no tiene un formato válido.")
			http.Redirect(w, r, "/add_pet", http.StatusSeeOther)
			return
		}
		bd = &t
	}

	weight := 0.0
	if raw := strings.TrimSpace(r.PostFormValue("peso")); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil || v < 0 {
			setFlash(w, "El peso no es válido.")
			http.Redirect(w, r, "/add_pet", http.StatusSeeOther)
			return
		}
		weight = v
	}

	sterilized := false
	switch strings.ToLower(r.PostFormValue("castrado")) {
	case "true", "on", "1":
		sterilized = true
	}

	// La foto web va al filesystem del servidor con nombre saneado;
	// la mascota guarda solo el nombre de archivo.
	photo := ""
	if _, fh, err := r.FormFile("foto"); err == nil && fh != nil && fh.Filename != "" {
		name, err := saveUpload(h.uploadDir, fh)
		if err != nil {
			setFlash(w, "No se pudo guardar la foto.")
			http.Redirect(w, r, "/add_pet", http.StatusSeeOther)
			return
		}
		photo = name
	}

	_, err := h.pets.Create(r.Context(), pets.CreateInput{
		OwnerID:    claims.UserID,
		Name:       r.PostFormValue("nombre"),
		Species:    r.PostFormValue("especie"),
		Breed:      r.PostFormValue("raza"),
		BirthDate:  bd,
		Weight:     weight,
		Microchip:  r.PostFormValue("microchip"),
		Sterilized: sterilized,
		Photo:      photo,
	})
	if err != nil {
		if errors.Is(err, pets.ErrInvalidInput) {
			setFlash(w, "Nombre, especie y raza son obligatorios.")
		} else {
			h.log.Error().Err(err).Msg("web add pet failed")
			setFlash(w, "No se pudo registrar la mascota.")
		}
		http.Redirect(w, r, "/add_pet", http.StatusSeeOther)
		return
	}

	setFlash(w, "Mascota registrada correctamente.")
	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}
