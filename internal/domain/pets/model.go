package pets

import "time"

// Pet es el perfil de una mascota; pertenece a exactamente un dueño.
type Pet struct {
	ID      string
	OwnerID string

	Name    string
	Species string
	Breed   string

	BirthDate  *time.Time // solo fecha, sin hora
	Weight     float64    // kg, nunca negativo; 0 si no se informó
	Microchip  string
	Sterilized bool

	// Para la API la foto viaja inline (texto codificado); para la web
	// es el nombre de archivo guardado en uploads/.
	Photo string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Age calcula la edad en años a la fecha dada; nil sin fecha de nacimiento.
// Derivada siempre en lectura, nunca se guarda.
func (p Pet) Age(at time.Time) *int {
	if p.BirthDate == nil {
		return nil
	}
	bd := *p.BirthDate
	years := at.Year() - bd.Year()
	if at.Month() < bd.Month() || (at.Month() == bd.Month() && at.Day() < bd.Day()) {
		years--
	}
	if years < 0 {
		years = 0
	}
	return &years
}
