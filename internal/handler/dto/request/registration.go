package request

import (
	"guestlink/internal/domain/registration"

	"github.com/jinzhu/copier"
)

// GuestRequest carries one guest's form fields. Required-field checks run at
// submission time, so every field may be blank while the guest is still editing.
type GuestRequest struct {
	Names          string  `json:"nombres" binding:"max=120"`
	FirstSurname   string  `json:"primer_apellido" binding:"max=120"`
	SecondSurname  *string `json:"segundo_apellido" binding:"omitempty,max=120"`
	DocumentType   string  `json:"tipo_documento" binding:"max=40"`
	DocumentNumber string  `json:"numero_documento" binding:"max=40"`
	Nationality    string  `json:"nacionalidad" binding:"max=80"`

	ResidenceCountry     string `json:"pais_residencia" binding:"max=80"`
	ResidenceCountryCode string `json:"codigo_pais_residencia" binding:"max=10"`
	ResidenceCity        string `json:"ciudad_residencia" binding:"max=80"`
	ResidenceCityCode    string `json:"codigo_ciudad_residencia" binding:"max=10"`
	OriginCountry        string `json:"pais_procedencia" binding:"max=80"`
	OriginCountryCode    string `json:"codigo_pais_procedencia" binding:"max=10"`
	OriginCity           string `json:"ciudad_procedencia" binding:"max=80"`
	OriginCityCode       string `json:"codigo_ciudad_procedencia" binding:"max=10"`

	BirthDate    string  `json:"fecha_nacimiento" binding:"omitempty,datetime=2006-01-02"`
	Occupation   string  `json:"ocupacion" binding:"max=80"`
	Gender       string  `json:"genero" binding:"max=20"`
	Email        *string `json:"correo" binding:"omitempty,max=254"`
	Phone        *string `json:"telefono" binding:"omitempty,max=30"`
	TravelReason string  `json:"motivo_viaje" binding:"max=80"`
}

func (r GuestRequest) ToDomain() (registration.Guest, error) {
	var g registration.Guest
	if err := copier.Copy(&g, &r); err != nil {
		return registration.Guest{}, err
	}
	return g, nil
}

type CompanionsRequest struct {
	Companions []GuestRequest `json:"acompanantes" binding:"max=20,dive"`
}

func (r CompanionsRequest) ToDomain() ([]registration.Guest, error) {
	guests := make([]registration.Guest, 0, len(r.Companions))
	for _, c := range r.Companions {
		g, err := c.ToDomain()
		if err != nil {
			return nil, err
		}
		guests = append(guests, g)
	}
	return guests, nil
}
