//go:build e2e

package helper

import (
	"testing"
	"time"

	"guestlink/internal/domain/link"
	"guestlink/internal/pkg/clock"
	"guestlink/internal/pkg/config"
	"guestlink/internal/pkg/jwt"
	"guestlink/tests/common/builder"
	"guestlink/tests/common/dbtest"

	"github.com/stretchr/testify/require"
)

type LinkTestHelper struct {
	tokens *jwt.Service
	clock  clock.Clock
}

// NewLinkTestHelper mints tokens on clk, the same clock the app under test reads.
func NewLinkTestHelper(cfg config.JWTConfig, clk clock.Clock) *LinkTestHelper {
	return &LinkTestHelper{tokens: jwt.NewService(cfg.Secret, cfg.Issuer, clk), clock: clk}
}

// IssuedLink is a stored link together with the token the guest received.
type IssuedLink struct {
	ID    int64
	Token string
}

// IssueLink stores the link, then mints a token for its id and writes it back
// into the link's token and URL.
func (h *LinkTestHelper) IssueLink(t *testing.T, db dbtest.DBLike, b *builder.LinkBuilder) IssuedLink {
	t.Helper()
	return h.IssueLinkWithRole(t, db, b, link.RoleRegistration)
}

func (h *LinkTestHelper) IssueLinkWithRole(t *testing.T, db dbtest.DBLike, b *builder.LinkBuilder, role link.Role) IssuedLink {
	t.Helper()

	id := dbtest.CreateTestLink(t, db, b)

	token, err := h.tokens.GenerateToken(id, role, h.clock.Now().Add(time.Hour))
	require.NoError(t, err)

	url := ""
	if b.URL != "" {
		url = "https://hotel.example.com/registro/" + token
	}
	dbtest.UpdateTestLink(t, db, id, token, url)

	return IssuedLink{ID: id, Token: token}
}

// ExpiredToken mints a token for id that has already expired.
func (h *LinkTestHelper) ExpiredToken(t *testing.T, id int64) string {
	t.Helper()

	token, err := h.tokens.GenerateToken(id, link.RoleRegistration, h.clock.Now().Add(-time.Minute))
	require.NoError(t, err)
	return token
}
