package registration

import (
	"strings"

	"guestlink/internal/pkg/errs"
)

var ErrMissingRequiredFields = errs.New("missing required fields")

type requiredField struct {
	name    string
	missing func(*FormData) bool
}

func blank(s string) bool { return strings.TrimSpace(s) == "" }

// Checked in this order; names are the wire field names.
var requiredFields = []requiredField{
	{name: "nombres", missing: func(f *FormData) bool { return blank(f.Names) }},
	{name: "primer_apellido", missing: func(f *FormData) bool { return blank(f.FirstSurname) }},
	{name: "tipo_documento", missing: func(f *FormData) bool { return blank(f.DocumentType) }},
	{name: "numero_documento", missing: func(f *FormData) bool { return blank(f.DocumentNumber) }},
	{name: "nacionalidad", missing: func(f *FormData) bool { return blank(f.Nationality) }},
	{name: "motivo_viaje", missing: func(f *FormData) bool { return blank(f.TravelReason) }},
	{name: "fecha_inicio", missing: func(f *FormData) bool { return blank(f.StartDate) }},
	{name: "fecha_fin", missing: func(f *FormData) bool { return blank(f.EndDate) }},
	{name: "costo", missing: func(f *FormData) bool { return f.Cost == 0 }},
}

// MissingRequiredFields lists the absent required fields of the primary guest and stay.
func (f *FormData) MissingRequiredFields() []string {
	var missing []string
	for _, r := range requiredFields {
		if r.missing(f) {
			missing = append(missing, r.name)
		}
	}
	return missing
}

// MissingFieldsMessage is the guest-facing text for a failed required-field check.
func MissingFieldsMessage(fields []string) string {
	return ErrMissingRequiredFields.Error() + ": " + strings.Join(fields, ", ")
}
