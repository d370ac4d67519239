//go:build unit

package readstore

import (
	"context"
	"testing"

	"guestlink/internal/infra"
	"guestlink/internal/infra/db"
	"guestlink/internal/infra/queries"
	"guestlink/internal/domain/link"
	"guestlink/tests/common/builder"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockLinkReadQueries struct {
	mock.Mock
}

func (m *MockLinkReadQueries) FindLinkByID(ctx context.Context, dbtx db.DBTX, id int64) (queries.RegistrationLinks, error) {
	args := m.Called(ctx, dbtx, id)
	return args.Get(0).(queries.RegistrationLinks), args.Error(1)
}

func TestFindByID(t *testing.T) {
	full := builder.NewLinkBuilder()
	sparse := builder.NewLinkBuilder().WithID(9).WithRoomNumber(0).WithCost(0).WithURL("").WithoutDates()

	tests := []struct {
		name       string
		id         int64
		mockReturn queries.RegistrationLinks
		mockError  error
		want       *link.RegistrationLink
		wantKind   infra.RepositoryErrorKind
	}{
		{
			name:       "success - full row",
			id:         7,
			mockReturn: full.BuildInfra(),
			want:       full.BuildDomain(),
		},
		{
			name:       "success - nullable columns map to zero values",
			id:         9,
			mockReturn: sparse.BuildInfra(),
			want:       sparse.BuildDomain(),
		},
		{
			name:       "link not found",
			id:         404,
			mockReturn: queries.RegistrationLinks{},
			mockError:  pgx.ErrNoRows,
			wantKind:   infra.KindNotFound,
		},
		{
			name:       "database error",
			id:         7,
			mockReturn: queries.RegistrationLinks{},
			mockError:  assert.AnError,
			wantKind:   infra.KindDBFailure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockQueries := new(MockLinkReadQueries)
			mockQueries.On("FindLinkByID", mock.Anything, mock.Anything, tt.id).Return(tt.mockReturn, tt.mockError)

			store := NewLinkReadStore(mockQueries, nil)

			got, err := store.FindByID(context.Background(), tt.id)

			if tt.wantKind != "" {
				require.Error(t, err)
				assert.Nil(t, got)
				assert.True(t, infra.IsKind(err, tt.wantKind))
			} else {
				require.NoError(t, err)
				require.NotNil(t, got)
				assert.Equal(t, tt.want.ID, got.ID)
				assert.Equal(t, tt.want.Role, got.Role)
				assert.Equal(t, tt.want.RoomNumber, got.RoomNumber)
				assert.Equal(t, tt.want.Cost, got.Cost)
				assert.Equal(t, tt.want.URL, got.URL)
				assert.Equal(t, tt.want.Completed, got.Completed)
				assert.True(t, tt.want.StartDate.Equal(got.StartDate))
				assert.True(t, tt.want.EndDate.Equal(got.EndDate))
				assert.True(t, tt.want.ExpiresAt.Equal(got.ExpiresAt))
			}

			mockQueries.AssertExpectations(t)
		})
	}
}
