package repository

import (
	"guestlink/internal/domain/registration"
	"guestlink/internal/infra/queries"
	"guestlink/internal/pkg/pgconv"

	"github.com/google/uuid"
)

func registrationToParams(linkID int64, f registration.FormData) queries.CreateRegistrationParams {
	return queries.CreateRegistrationParams{
		LinkID:         linkID,
		RoomNumber:     int32(f.RoomNumber),
		StartDate:      pgconv.DateStringToPgtype(f.StartDate),
		EndDate:        pgconv.DateStringToPgtype(f.EndDate),
		Cost:           f.Cost,
		CompanionCount: int32(len(f.Companions)),
	}
}

// guestsToParams returns the primary guest at position 0 followed by the companions.
func guestsToParams(registrationID uuid.UUID, f registration.FormData) []queries.CreateRegistrationGuestParams {
	params := make([]queries.CreateRegistrationGuestParams, 0, len(f.Companions)+1)
	params = append(params, guestToParams(registrationID, 0, true, f.Guest))
	for i, c := range f.Companions {
		params = append(params, guestToParams(registrationID, i+1, false, c))
	}
	return params
}

func guestToParams(registrationID uuid.UUID, position int, primary bool, g registration.Guest) queries.CreateRegistrationGuestParams {
	return queries.CreateRegistrationGuestParams{
		RegistrationID:       pgconv.UUIDToPgtype(registrationID),
		Position:             int32(position),
		IsPrimary:            primary,
		Names:                g.Names,
		FirstSurname:         g.FirstSurname,
		SecondSurname:        pgconv.StringPtrToPgtype(g.SecondSurname),
		DocumentType:         g.DocumentType,
		DocumentNumber:       g.DocumentNumber,
		Nationality:          g.Nationality,
		ResidenceCountry:     pgconv.TextOrNull(g.ResidenceCountry),
		ResidenceCountryCode: pgconv.TextOrNull(g.ResidenceCountryCode),
		ResidenceCity:        pgconv.TextOrNull(g.ResidenceCity),
		ResidenceCityCode:    pgconv.TextOrNull(g.ResidenceCityCode),
		OriginCountry:        pgconv.TextOrNull(g.OriginCountry),
		OriginCountryCode:    pgconv.TextOrNull(g.OriginCountryCode),
		OriginCity:           pgconv.TextOrNull(g.OriginCity),
		OriginCityCode:       pgconv.TextOrNull(g.OriginCityCode),
		BirthDate:            pgconv.DateStringToPgtype(g.BirthDate),
		Occupation:           pgconv.TextOrNull(g.Occupation),
		Gender:               pgconv.TextOrNull(g.Gender),
		Email:                pgconv.StringPtrToPgtype(g.Email),
		Phone:                pgconv.StringPtrToPgtype(g.Phone),
		TravelReason:         pgconv.TextOrNull(g.TravelReason),
	}
}
