//go:build unit

package repository

import (
	"context"
	"testing"
	"time"

	"guestlink/internal/domain/link"
	"guestlink/internal/domain/registration"
	"guestlink/internal/infra"
	"guestlink/internal/infra/db"
	"guestlink/internal/infra/queries"
	"guestlink/internal/pkg/clock"
	"guestlink/internal/pkg/errs"
	"guestlink/tests/common/builder"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockRegistrationWriteQueries struct {
	mock.Mock
}

func (m *MockRegistrationWriteQueries) LockLinkForUpdate(ctx context.Context, dbtx db.DBTX, id int64) (queries.LockLinkForUpdateRow, error) {
	args := m.Called(ctx, dbtx, id)
	return args.Get(0).(queries.LockLinkForUpdateRow), args.Error(1)
}

func (m *MockRegistrationWriteQueries) CreateRegistration(ctx context.Context, dbtx db.DBTX, arg queries.CreateRegistrationParams) (uuid.UUID, error) {
	args := m.Called(ctx, dbtx, arg)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *MockRegistrationWriteQueries) CreateRegistrationGuest(ctx context.Context, dbtx db.DBTX, arg queries.CreateRegistrationGuestParams) error {
	args := m.Called(ctx, dbtx, arg)
	return args.Error(0)
}

func (m *MockRegistrationWriteQueries) MarkLinkCompleted(ctx context.Context, dbtx db.DBTX, id int64) error {
	args := m.Called(ctx, dbtx, id)
	return args.Error(0)
}

// fakeTx only tracks commit/rollback; the queries are mocked so nothing else is called.
type fakeTx struct {
	pgx.Tx
	committed  bool
	rolledBack bool
}

func (tx *fakeTx) Commit(context.Context) error {
	tx.committed = true
	return nil
}

func (tx *fakeTx) Rollback(context.Context) error {
	if tx.committed {
		return pgx.ErrTxClosed
	}
	tx.rolledBack = true
	return nil
}

type fakeBeginner struct {
	tx *fakeTx
}

func (b *fakeBeginner) Begin(context.Context) (pgx.Tx, error) {
	return b.tx, nil
}

func lockedRow(completed bool, expiresAt pgtype.Timestamptz) queries.LockLinkForUpdateRow {
	return queries.LockLinkForUpdateRow{ID: 7, ExpiresAt: expiresAt, Completed: completed}
}

func TestRegistrationRepository_Create(t *testing.T) {
	valid := pgtype.Timestamptz{Time: builder.LinkNow.Add(24 * time.Hour), Valid: true}
	expired := pgtype.Timestamptz{Time: builder.LinkNow.Add(-time.Minute), Valid: true}

	data := builder.NewCompleteFormData().WithCompanions([]registration.Guest{
		builder.NewGuestBuilder().WithNames("Carlos").BuildDomain(),
	})

	t.Run("success stores registration and guests then completes the link", func(t *testing.T) {
		q := new(MockRegistrationWriteQueries)
		tx := &fakeTx{}
		regID := uuid.New()

		q.On("LockLinkForUpdate", mock.Anything, tx, int64(7)).Return(lockedRow(false, valid), nil)
		q.On("CreateRegistration", mock.Anything, tx, mock.MatchedBy(func(p queries.CreateRegistrationParams) bool {
			return p.LinkID == 7 && p.RoomNumber == 101 && p.Cost == 150000 && p.CompanionCount == 1
		})).Return(regID, nil)
		q.On("CreateRegistrationGuest", mock.Anything, tx, mock.MatchedBy(func(p queries.CreateRegistrationGuestParams) bool {
			return p.IsPrimary && p.Position == 0
		})).Return(nil).Once()
		q.On("CreateRegistrationGuest", mock.Anything, tx, mock.MatchedBy(func(p queries.CreateRegistrationGuestParams) bool {
			return !p.IsPrimary && p.Position == 1 && p.Names == "Carlos"
		})).Return(nil).Once()
		q.On("MarkLinkCompleted", mock.Anything, tx, int64(7)).Return(nil)

		repo := NewRegistrationRepository(q, &fakeBeginner{tx: tx}, clock.NewMockClock(builder.LinkNow))

		got, err := repo.Create(context.Background(), 7, data)

		require.NoError(t, err)
		assert.Equal(t, regID, got)
		assert.True(t, tx.committed)
		q.AssertExpectations(t)
	})

	t.Run("completed link is a conflict", func(t *testing.T) {
		q := new(MockRegistrationWriteQueries)
		tx := &fakeTx{}
		q.On("LockLinkForUpdate", mock.Anything, tx, int64(7)).Return(lockedRow(true, valid), nil)

		repo := NewRegistrationRepository(q, &fakeBeginner{tx: tx}, clock.NewMockClock(builder.LinkNow))

		_, err := repo.Create(context.Background(), 7, data)

		require.Error(t, err)
		assert.True(t, errs.Is(err, link.ErrAlreadyCompleted))
		assert.True(t, infra.IsKind(err, infra.KindConflict))
		assert.False(t, tx.committed)
		assert.True(t, tx.rolledBack)
		q.AssertNotCalled(t, "CreateRegistration", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("expired link is a conflict", func(t *testing.T) {
		q := new(MockRegistrationWriteQueries)
		tx := &fakeTx{}
		q.On("LockLinkForUpdate", mock.Anything, tx, int64(7)).Return(lockedRow(false, expired), nil)

		repo := NewRegistrationRepository(q, &fakeBeginner{tx: tx}, clock.NewMockClock(builder.LinkNow))

		_, err := repo.Create(context.Background(), 7, data)

		require.Error(t, err)
		assert.True(t, errs.Is(err, link.ErrLinkExpired))
		assert.False(t, tx.committed)
	})

	t.Run("unknown link is not found", func(t *testing.T) {
		q := new(MockRegistrationWriteQueries)
		tx := &fakeTx{}
		q.On("LockLinkForUpdate", mock.Anything, tx, int64(7)).Return(queries.LockLinkForUpdateRow{}, pgx.ErrNoRows)

		repo := NewRegistrationRepository(q, &fakeBeginner{tx: tx}, clock.NewMockClock(builder.LinkNow))

		_, err := repo.Create(context.Background(), 7, data)

		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("guest insert failure rolls back", func(t *testing.T) {
		q := new(MockRegistrationWriteQueries)
		tx := &fakeTx{}
		q.On("LockLinkForUpdate", mock.Anything, tx, int64(7)).Return(lockedRow(false, valid), nil)
		q.On("CreateRegistration", mock.Anything, tx, mock.Anything).Return(uuid.New(), nil)
		q.On("CreateRegistrationGuest", mock.Anything, tx, mock.Anything).Return(assert.AnError)

		repo := NewRegistrationRepository(q, &fakeBeginner{tx: tx}, clock.NewMockClock(builder.LinkNow))

		_, err := repo.Create(context.Background(), 7, data)

		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
		assert.True(t, tx.rolledBack)
		q.AssertNotCalled(t, "MarkLinkCompleted", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestGuestsToParams(t *testing.T) {
	f := builder.NewCompleteFormData().WithCompanions([]registration.Guest{
		builder.NewGuestBuilder().WithNames("Carlos").WithEmail("carlos@example.com").BuildDomain(),
	})
	regID := uuid.New()

	params := guestsToParams(regID, f)

	require.Len(t, params, 2)
	assert.True(t, params[0].IsPrimary)
	assert.Equal(t, int32(0), params[0].Position)
	assert.False(t, params[0].Email.Valid)
	assert.False(t, params[0].ResidenceCityCode.Valid)
	assert.True(t, params[0].BirthDate.Valid)
	assert.Equal(t, "carlos@example.com", params[1].Email.String)
	assert.Equal(t, [16]byte(regID), params[1].RegistrationID.Bytes)
}
