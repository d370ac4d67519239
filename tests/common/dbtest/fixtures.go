//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"guestlink/tests/common/builder"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// DBLike is satisfied by a pool or a transaction.
type DBLike interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// CreateTestLink inserts a registration link and returns its id. token is stored as
// given; tests that go through the real codec pass a minted JWT.
func CreateTestLink(t *testing.T, db DBLike, b *builder.LinkBuilder) int64 {
	t.Helper()

	row := b.BuildInfra()
	var id int64
	err := db.QueryRow(context.Background(), `
		INSERT INTO registration_links (token, role, url, room_number, start_date, end_date, cost, expires_at, completed)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id`,
		row.Token, row.Role, row.Url, row.RoomNumber, row.StartDate, row.EndDate, row.Cost, row.ExpiresAt, row.Completed,
	).Scan(&id)
	require.NoError(t, err)

	return id
}

// UpdateTestLink sets token and url after the id is known.
func UpdateTestLink(t *testing.T, db DBLike, id int64, token, url string) {
	t.Helper()

	_, err := db.Exec(context.Background(),
		"UPDATE registration_links SET token = $2, url = $3 WHERE id = $1", id, token, url)
	require.NoError(t, err)
}

func IsLinkCompleted(t *testing.T, db DBLike, id int64) bool {
	t.Helper()

	var completed bool
	err := db.QueryRow(context.Background(),
		"SELECT completed FROM registration_links WHERE id = $1", id).Scan(&completed)
	require.NoError(t, err)
	return completed
}

func CountRegistrations(t *testing.T, db DBLike, linkID int64) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(),
		"SELECT count(*) FROM registrations WHERE link_id = $1", linkID).Scan(&n)
	require.NoError(t, err)
	return n
}

func CountRegistrationGuests(t *testing.T, db DBLike, linkID int64) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(), `
		SELECT count(*) FROM registration_guests g
		JOIN registrations r ON r.id = g.registration_id
		WHERE r.link_id = $1`, linkID).Scan(&n)
	require.NoError(t, err)
	return n
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return nil
}
