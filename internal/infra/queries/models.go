package queries

import (
	"github.com/jackc/pgx/v5/pgtype"
)

type RegistrationLinks struct {
	ID         int64
	Token      string
	Role       string
	Url        pgtype.Text
	RoomNumber pgtype.Int4
	StartDate  pgtype.Date
	EndDate    pgtype.Date
	Cost       pgtype.Int8
	ExpiresAt  pgtype.Timestamptz
	Completed  bool
}

type LockLinkForUpdateRow struct {
	ID        int64
	ExpiresAt pgtype.Timestamptz
	Completed bool
}

type CreateRegistrationParams struct {
	LinkID         int64
	RoomNumber     int32
	StartDate      pgtype.Date
	EndDate        pgtype.Date
	Cost           int64
	CompanionCount int32
}

type CreateRegistrationGuestParams struct {
	RegistrationID       pgtype.UUID
	Position             int32
	IsPrimary            bool
	Names                string
	FirstSurname         string
	SecondSurname        pgtype.Text
	DocumentType         string
	DocumentNumber       string
	Nationality          string
	ResidenceCountry     pgtype.Text
	ResidenceCountryCode pgtype.Text
	ResidenceCity        pgtype.Text
	ResidenceCityCode    pgtype.Text
	OriginCountry        pgtype.Text
	OriginCountryCode    pgtype.Text
	OriginCity           pgtype.Text
	OriginCityCode       pgtype.Text
	BirthDate            pgtype.Date
	Occupation           pgtype.Text
	Gender               pgtype.Text
	Email                pgtype.Text
	Phone                pgtype.Text
	TravelReason         pgtype.Text
}
