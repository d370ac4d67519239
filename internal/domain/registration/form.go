package registration

import (
	"guestlink/internal/domain/link"
)

const dateLayout = "2006-01-02"

// Guest is one person on the registration. The primary guest and every companion share this shape.
type Guest struct {
	Names          string  `json:"nombres"`
	FirstSurname   string  `json:"primer_apellido"`
	SecondSurname  *string `json:"segundo_apellido"`
	DocumentType   string  `json:"tipo_documento"`
	DocumentNumber string  `json:"numero_documento"`
	Nationality    string  `json:"nacionalidad"`

	ResidenceCountry     string `json:"pais_residencia"`
	ResidenceCountryCode string `json:"codigo_pais_residencia,omitempty"`
	ResidenceCity        string `json:"ciudad_residencia"`
	ResidenceCityCode    string `json:"codigo_ciudad_residencia,omitempty"`
	OriginCountry        string `json:"pais_procedencia"`
	OriginCountryCode    string `json:"codigo_pais_procedencia,omitempty"`
	OriginCity           string `json:"ciudad_procedencia"`
	OriginCityCode       string `json:"codigo_ciudad_procedencia,omitempty"`

	BirthDate    string  `json:"fecha_nacimiento"`
	Occupation   string  `json:"ocupacion"`
	Gender       string  `json:"genero"`
	Email        *string `json:"correo"`
	Phone        *string `json:"telefono"`
	TravelReason string  `json:"motivo_viaje"`
}

// FormData is the aggregate collected across the wizard steps. The reservation
// fields are seeded from the link and are not editable by the guest.
type FormData struct {
	Guest

	StartDate      string `json:"fecha_inicio"`
	EndDate        string `json:"fecha_fin"`
	Cost           int64  `json:"costo"`
	RoomNumber     int    `json:"numero_habitacion"`
	CompanionCount int    `json:"numero_acompanantes"`

	Companions []Guest `json:"acompanantes"`
}

// NewFormData seeds the reservation echo fields from l.
func NewFormData(l *link.RegistrationLink) FormData {
	return FormData{
		StartDate:  l.StartDate.Format(dateLayout),
		EndDate:    l.EndDate.Format(dateLayout),
		Cost:       l.Cost,
		RoomNumber: l.RoomNumber,
		Companions: []Guest{},
	}
}

// WithGuest replaces the primary guest fields and keeps the reservation fields.
func (f FormData) WithGuest(g Guest) FormData {
	f.Guest = g
	return f
}

func (f FormData) WithCompanions(companions []Guest) FormData {
	cp := make([]Guest, len(companions))
	copy(cp, companions)
	f.Companions = cp
	f.CompanionCount = len(cp)
	return f
}

// Clone returns a copy that shares no slices or pointers with f.
func (f FormData) Clone() FormData {
	out := f
	out.Guest = f.Guest.clone()
	out.Companions = make([]Guest, len(f.Companions))
	for i, c := range f.Companions {
		out.Companions[i] = c.clone()
	}
	return out
}

func (g Guest) clone() Guest {
	g.SecondSurname = cloneString(g.SecondSurname)
	g.Email = cloneString(g.Email)
	g.Phone = cloneString(g.Phone)
	return g
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
