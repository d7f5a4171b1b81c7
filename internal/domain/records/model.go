package records

import "time"

// Los cuatro tipos de registro médico. Todos cuelgan de una mascota y
// llevan fecha calendario (sin hora).

type Vaccination struct {
	ID        string
	PetID     string
	Name      string
	AppliedOn time.Time
}

type Diagnosis struct {
	ID          string
	PetID       string
	Title       string
	Date        time.Time
	Description string
}

type Prescription struct {
	ID           string
	PetID        string
	Medication   string
	Dosage       string
	Date         time.Time
	Instructions string
}

type Prevention struct {
	ID          string
	PetID       string
	Type        string
	Date        time.Time
	Description string
}
