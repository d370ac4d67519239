//go:build unit

package backend_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"guestlink/internal/domain/link"
	"guestlink/internal/domain/registration"
	"guestlink/internal/infra"
	"guestlink/internal/infra/backend"
	"guestlink/internal/pkg/clock"
	"guestlink/internal/pkg/errs"
	"guestlink/internal/pkg/jwt"
	"guestlink/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockLinkReader struct {
	mock.Mock
}

func (m *mockLinkReader) FindByID(ctx context.Context, id int64) (*link.RegistrationLink, error) {
	args := m.Called(ctx, id)
	l, _ := args.Get(0).(*link.RegistrationLink)
	return l, args.Error(1)
}

type mockRegistrationWriter struct {
	mock.Mock
}

func (m *mockRegistrationWriter) Create(ctx context.Context, linkID int64, data registration.FormData) (uuid.UUID, error) {
	args := m.Called(ctx, linkID, data)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func newGateway(t *testing.T) (*backend.Gateway, *jwt.Service, *mockLinkReader, *mockRegistrationWriter) {
	t.Helper()
	tokens := jwt.NewService("test-secret", "guestlink-test", clock.NewRealClock())
	links := new(mockLinkReader)
	regs := new(mockRegistrationWriter)
	return backend.NewGateway(tokens, links, regs), tokens, links, regs
}

func mint(t *testing.T, svc *jwt.Service, id int64, role link.Role, exp time.Duration) string {
	t.Helper()
	token, err := svc.GenerateToken(id, role, time.Now().Add(exp))
	require.NoError(t, err)
	return token
}

func TestGateway_ValidateToken(t *testing.T) {
	gw, svc, _, _ := newGateway(t)

	t.Run("valid token decodes", func(t *testing.T) {
		decoded, err := gw.ValidateToken(context.Background(), mint(t, svc, 7, link.RoleRegistration, time.Hour))

		require.NoError(t, err)
		assert.Equal(t, int64(7), decoded.LinkID)
		assert.Equal(t, link.RoleRegistration, decoded.Role)
	})

	t.Run("expired token reads as invalid or expired link", func(t *testing.T) {
		_, err := gw.ValidateToken(context.Background(), mint(t, svc, 7, link.RoleRegistration, -time.Minute))

		assert.True(t, errs.Is(err, link.ErrInvalidOrExpiredLink))
	})

	t.Run("garbage reads as invalid", func(t *testing.T) {
		_, err := gw.ValidateToken(context.Background(), "garbage")

		assert.True(t, errs.Is(err, link.ErrInvalidToken))
	})
}

func TestGateway_FetchLink(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		gw, _, links, _ := newGateway(t)
		want := builder.NewLinkBuilder().BuildDomain()
		links.On("FindByID", mock.Anything, int64(7)).Return(want, nil)

		got, err := gw.FetchLink(context.Background(), 7)

		require.NoError(t, err)
		assert.Same(t, want, got)
	})

	t.Run("not found reads as invalid or expired link", func(t *testing.T) {
		gw, _, links, _ := newGateway(t)
		links.On("FindByID", mock.Anything, int64(7)).
			Return(nil, infra.WrapRepoErr("registration link not found", errors.New("no rows"), infra.KindNotFound))

		_, err := gw.FetchLink(context.Background(), 7)

		assert.True(t, errs.Is(err, link.ErrInvalidOrExpiredLink))
	})

	t.Run("db failure stays generic", func(t *testing.T) {
		gw, _, links, _ := newGateway(t)
		links.On("FindByID", mock.Anything, int64(7)).Return(nil, infra.WrapRepoErr("boom", assert.AnError))

		_, err := gw.FetchLink(context.Background(), 7)

		require.Error(t, err)
		for _, known := range link.KnownBackendErrors {
			assert.False(t, errs.Is(err, known.Err))
		}
	})
}

func TestGateway_CreateRegistration(t *testing.T) {
	data := builder.NewCompleteFormData()

	tests := []struct {
		name     string
		repoErr  error
		wantErr  bool
		wantHint string
	}{
		{name: "success"},
		{
			name:     "already completed",
			repoErr:  errs.Mark(infra.WrapRepoErr("registration link already completed", nil, infra.KindConflict), link.ErrAlreadyCompleted),
			wantErr:  true,
			wantHint: "form was already completed",
		},
		{
			name:     "expired",
			repoErr:  errs.Mark(infra.WrapRepoErr("registration link expired", nil, infra.KindConflict), link.ErrLinkExpired),
			wantErr:  true,
			wantHint: "link has expired",
		},
		{
			name:     "link vanished",
			repoErr:  infra.WrapRepoErr("registration link not found", errors.New("no rows"), infra.KindNotFound),
			wantErr:  true,
			wantHint: "invalid or expired link",
		},
		{
			name:    "db failure has no guest message",
			repoErr: infra.WrapRepoErr("failed to create registration", assert.AnError),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gw, svc, _, regs := newGateway(t)
			regs.On("Create", mock.Anything, int64(7), data).Return(uuid.New(), tt.repoErr)

			err := gw.CreateRegistration(context.Background(), mint(t, svc, 7, link.RoleRegistration, time.Hour), data)

			if !tt.wantErr {
				require.NoError(t, err)
				regs.AssertExpectations(t)
				return
			}
			require.Error(t, err)
			msg, ok := errs.UserMessage(err)
			if tt.wantHint == "" {
				assert.False(t, ok)
				return
			}
			assert.True(t, ok)
			assert.Equal(t, tt.wantHint, msg)
		})
	}

	t.Run("bad token never reaches the repository", func(t *testing.T) {
		gw, _, _, regs := newGateway(t)

		err := gw.CreateRegistration(context.Background(), "garbage", data)

		msg, ok := errs.UserMessage(err)
		assert.True(t, ok)
		assert.Equal(t, "invalid or expired link", msg)
		regs.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("wrong role is refused", func(t *testing.T) {
		gw, svc, _, regs := newGateway(t)

		err := gw.CreateRegistration(context.Background(), mint(t, svc, 7, link.Role("staff"), time.Hour), data)

		msg, _ := errs.UserMessage(err)
		assert.Equal(t, "insufficient permissions", msg)
		regs.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
	})
}
