//go:build unit

package registration_test

import (
	"testing"

	"guestlink/internal/domain/registration"
	"guestlink/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFormData(t *testing.T) {
	l := builder.NewLinkBuilder().BuildDomain()

	f := registration.NewFormData(l)

	assert.Equal(t, 101, f.RoomNumber)
	assert.Equal(t, int64(150000), f.Cost)
	assert.Equal(t, "2025-03-10", f.StartDate)
	assert.Equal(t, "2025-03-12", f.EndDate)
	assert.Equal(t, 0, f.CompanionCount)
	assert.NotNil(t, f.Companions)
	assert.Empty(t, f.Companions)
}

func TestWithGuest_KeepsReservationFields(t *testing.T) {
	f := registration.NewFormData(builder.NewLinkBuilder().BuildDomain())

	updated := f.WithGuest(builder.NewGuestBuilder().WithNames("Luis").BuildDomain())

	assert.Equal(t, "Luis", updated.Names)
	assert.Equal(t, 101, updated.RoomNumber)
	assert.Equal(t, int64(150000), updated.Cost)
	assert.Empty(t, f.Names, "receiver must not change")
}

func TestWithCompanions_SetsCount(t *testing.T) {
	f := builder.NewCompleteFormData()
	companions := []registration.Guest{
		builder.NewGuestBuilder().WithNames("Carlos").BuildDomain(),
		builder.NewGuestBuilder().WithNames("Lucía").BuildDomain(),
	}

	updated := f.WithCompanions(companions)
	companions[0].Names = "changed"

	assert.Equal(t, 2, updated.CompanionCount)
	assert.Equal(t, "Carlos", updated.Companions[0].Names)
}

func TestClone_IsIndependent(t *testing.T) {
	f := builder.NewCompleteFormData().WithCompanions([]registration.Guest{
		builder.NewGuestBuilder().WithEmail("c@example.com").BuildDomain(),
	})

	c := f.Clone()
	*c.Companions[0].Email = "other@example.com"
	c.Companions[0].Names = "other"

	assert.Equal(t, "c@example.com", *f.Companions[0].Email)
	assert.NotEqual(t, "other", f.Companions[0].Names)
}

func TestMissingRequiredFields(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*registration.FormData)
		want   []string
	}{
		{
			name:   "complete form",
			mutate: func(f *registration.FormData) {},
			want:   nil,
		},
		{
			name:   "missing names",
			mutate: func(f *registration.FormData) { f.Names = "" },
			want:   []string{"nombres"},
		},
		{
			name:   "whitespace counts as missing",
			mutate: func(f *registration.FormData) { f.DocumentNumber = "   " },
			want:   []string{"numero_documento"},
		},
		{
			name: "several fields keep declaration order",
			mutate: func(f *registration.FormData) {
				f.TravelReason = ""
				f.Names = ""
				f.Cost = 0
			},
			want: []string{"nombres", "motivo_viaje", "costo"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := builder.NewCompleteFormData()
			tt.mutate(&f)

			got := f.MissingRequiredFields()

			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("missing fields mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestMissingFieldsMessage(t *testing.T) {
	assert.Equal(t, "missing required fields: nombres, costo",
		registration.MissingFieldsMessage([]string{"nombres", "costo"}))
}

func TestSanitize(t *testing.T) {
	t.Run("空文字のオプション項目はnilになる", func(t *testing.T) {
		f := builder.NewCompleteFormData()
		f.Guest = builder.NewGuestBuilder().WithSecondSurname("").WithEmail("").WithPhone("3001234567").BuildDomain()
		f = f.WithCompanions([]registration.Guest{
			builder.NewGuestBuilder().WithEmail("").WithPhone("").BuildDomain(),
		})

		out := f.Sanitize()

		assert.Nil(t, out.SecondSurname)
		assert.Nil(t, out.Email)
		require.NotNil(t, out.Phone)
		assert.Equal(t, "3001234567", *out.Phone)
		assert.Nil(t, out.Companions[0].Email)
		assert.Nil(t, out.Companions[0].Phone)
	})

	t.Run("元のデータは変更されない", func(t *testing.T) {
		f := builder.NewCompleteFormData().WithCompanions([]registration.Guest{
			builder.NewGuestBuilder().WithEmail("").BuildDomain(),
		})

		_ = f.Sanitize()

		require.NotNil(t, f.Companions[0].Email)
		assert.Equal(t, "", *f.Companions[0].Email)
	})
}
