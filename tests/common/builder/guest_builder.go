//go:build unit || e2e

package builder

import (
	"guestlink/internal/domain/registration"
	"guestlink/internal/handler/dto/request"
)

type GuestBuilder struct {
	guest registration.Guest
}

func NewGuestBuilder() *GuestBuilder {
	return &GuestBuilder{guest: registration.Guest{
		Names:            "Ana María",
		FirstSurname:     "Restrepo",
		DocumentType:     "CC",
		DocumentNumber:   "1020304050",
		Nationality:      "Colombiana",
		ResidenceCountry: "Colombia",
		ResidenceCity:    "Medellín",
		OriginCountry:    "Colombia",
		OriginCity:       "Bogotá",
		BirthDate:        "1990-05-17",
		Occupation:       "Ingeniera",
		Gender:           "F",
		TravelReason:     "Turismo",
	}}
}

func (b *GuestBuilder) With(mutate func(*registration.Guest)) *GuestBuilder {
	mutate(&b.guest)
	return b
}

func (b *GuestBuilder) WithNames(names string) *GuestBuilder {
	b.guest.Names = names
	return b
}

func (b *GuestBuilder) WithEmail(email string) *GuestBuilder {
	b.guest.Email = &email
	return b
}

func (b *GuestBuilder) WithPhone(phone string) *GuestBuilder {
	b.guest.Phone = &phone
	return b
}

func (b *GuestBuilder) WithSecondSurname(s string) *GuestBuilder {
	b.guest.SecondSurname = &s
	return b
}

// Build methods
func (b *GuestBuilder) BuildDomain() registration.Guest {
	return b.guest
}

func (b *GuestBuilder) BuildRequestDTO() request.GuestRequest {
	g := b.guest
	return request.GuestRequest{
		Names:                g.Names,
		FirstSurname:         g.FirstSurname,
		SecondSurname:        g.SecondSurname,
		DocumentType:         g.DocumentType,
		DocumentNumber:       g.DocumentNumber,
		Nationality:          g.Nationality,
		ResidenceCountry:     g.ResidenceCountry,
		ResidenceCountryCode: g.ResidenceCountryCode,
		ResidenceCity:        g.ResidenceCity,
		ResidenceCityCode:    g.ResidenceCityCode,
		OriginCountry:        g.OriginCountry,
		OriginCountryCode:    g.OriginCountryCode,
		OriginCity:           g.OriginCity,
		OriginCityCode:       g.OriginCityCode,
		BirthDate:            g.BirthDate,
		Occupation:           g.Occupation,
		Gender:               g.Gender,
		Email:                g.Email,
		Phone:                g.Phone,
		TravelReason:         g.TravelReason,
	}
}

// NewCompleteFormData returns form data for the default link with every required field set.
func NewCompleteFormData() registration.FormData {
	f := registration.NewFormData(NewLinkBuilder().BuildDomain())
	return f.WithGuest(NewGuestBuilder().BuildDomain())
}
