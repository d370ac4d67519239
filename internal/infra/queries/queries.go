// Package queries holds the SQL the infra layer runs. Every method takes the
// executor explicitly so the same query runs on the pool or inside a transaction.
package queries

import (
	"context"

	"guestlink/internal/infra/db"

	"github.com/google/uuid"
)

type Queries struct{}

func New() *Queries {
	return &Queries{}
}

const findLinkByID = `
SELECT id, token, role, url, room_number, start_date, end_date, cost, expires_at, completed
FROM registration_links
WHERE id = $1`

func (q *Queries) FindLinkByID(ctx context.Context, dbtx db.DBTX, id int64) (RegistrationLinks, error) {
	row := dbtx.QueryRow(ctx, findLinkByID, id)
	var i RegistrationLinks
	err := row.Scan(
		&i.ID,
		&i.Token,
		&i.Role,
		&i.Url,
		&i.RoomNumber,
		&i.StartDate,
		&i.EndDate,
		&i.Cost,
		&i.ExpiresAt,
		&i.Completed,
	)
	return i, err
}

const lockLinkForUpdate = `
SELECT id, expires_at, completed
FROM registration_links
WHERE id = $1
FOR UPDATE`

func (q *Queries) LockLinkForUpdate(ctx context.Context, dbtx db.DBTX, id int64) (LockLinkForUpdateRow, error) {
	row := dbtx.QueryRow(ctx, lockLinkForUpdate, id)
	var i LockLinkForUpdateRow
	err := row.Scan(&i.ID, &i.ExpiresAt, &i.Completed)
	return i, err
}

const createRegistration = `
INSERT INTO registrations (link_id, room_number, start_date, end_date, cost, companion_count)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id`

func (q *Queries) CreateRegistration(ctx context.Context, dbtx db.DBTX, arg CreateRegistrationParams) (uuid.UUID, error) {
	row := dbtx.QueryRow(ctx, createRegistration,
		arg.LinkID,
		arg.RoomNumber,
		arg.StartDate,
		arg.EndDate,
		arg.Cost,
		arg.CompanionCount,
	)
	var id uuid.UUID
	err := row.Scan(&id)
	return id, err
}

const createRegistrationGuest = `
INSERT INTO registration_guests (
    registration_id, position, is_primary, names, first_surname, second_surname,
    document_type, document_number, nationality,
    residence_country, residence_country_code, residence_city, residence_city_code,
    origin_country, origin_country_code, origin_city, origin_city_code,
    birth_date, occupation, gender, email, phone, travel_reason
) VALUES (
    $1, $2, $3, $4, $5, $6,
    $7, $8, $9,
    $10, $11, $12, $13,
    $14, $15, $16, $17,
    $18, $19, $20, $21, $22, $23
)`

func (q *Queries) CreateRegistrationGuest(ctx context.Context, dbtx db.DBTX, arg CreateRegistrationGuestParams) error {
	_, err := dbtx.Exec(ctx, createRegistrationGuest,
		arg.RegistrationID,
		arg.Position,
		arg.IsPrimary,
		arg.Names,
		arg.FirstSurname,
		arg.SecondSurname,
		arg.DocumentType,
		arg.DocumentNumber,
		arg.Nationality,
		arg.ResidenceCountry,
		arg.ResidenceCountryCode,
		arg.ResidenceCity,
		arg.ResidenceCityCode,
		arg.OriginCountry,
		arg.OriginCountryCode,
		arg.OriginCity,
		arg.OriginCityCode,
		arg.BirthDate,
		arg.Occupation,
		arg.Gender,
		arg.Email,
		arg.Phone,
		arg.TravelReason,
	)
	return err
}

const markLinkCompleted = `
UPDATE registration_links
SET completed = true, updated_at = now()
WHERE id = $1`

func (q *Queries) MarkLinkCompleted(ctx context.Context, dbtx db.DBTX, id int64) error {
	_, err := dbtx.Exec(ctx, markLinkCompleted, id)
	return err
}
