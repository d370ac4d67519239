//go:build e2e

package e2e

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"guestlink/cmd/bootstrap"
	"guestlink/cmd/bootstrap/components"
	"guestlink/internal/infra/db"
	"guestlink/internal/pkg/clock"
	"guestlink/internal/pkg/config"
	"guestlink/tests/common/builder"
	"guestlink/tests/common/dbtest"

	"github.com/docker/go-connections/nat"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"go.uber.org/fx"
)

const (
	pgImage    = "postgres:17-alpine"
	pgUser     = "test"
	pgPassword = "testpass"
	pgTimeZone = "America/Bogota"
)

var migrationFiles = []string{
	"migrations/001_initial_schema.sql",
}

var (
	pgOnce      sync.Once
	pgContainer *tcpostgres.PostgresContainer
	pgErr       error
)

type pgEndpoint struct {
	Host string
	Port nat.Port
}

func (e pgEndpoint) dsn(dbName string) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", pgUser, pgPassword, e.Host, e.Port.Port(), dbName)
}

// ------------------------------------------------------------
// PostgreSQLコンテナはプロセス内で一度だけ起動し、Ryukに片付けを任せる
// ------------------------------------------------------------
func postgresEndpoint(t *testing.T) pgEndpoint {
	t.Helper()

	pgOnce.Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
		defer cancel()

		pgContainer, pgErr = tcpostgres.Run(ctx, pgImage,
			tcpostgres.WithDatabase("postgres"),
			tcpostgres.WithUsername(pgUser),
			tcpostgres.WithPassword(pgPassword),
			tcpostgres.BasicWaitStrategies(),
			testcontainers.CustomizeRequest(testcontainers.GenericContainerRequest{
				ContainerRequest: testcontainers.ContainerRequest{
					// データはRAM上、耐久性は不要
					Tmpfs:  map[string]string{"/var/lib/postgresql/data": "rw,size=256m"},
					Cmd:    []string{"postgres", "-c", "fsync=off", "-c", "synchronous_commit=off", "-c", "timezone=" + pgTimeZone},
					Labels: map[string]string{"purpose": "guestlink-e2e"},
				},
			}),
		)
	})
	require.NoError(t, pgErr, "PostgreSQLコンテナの起動に失敗")

	ctx := context.Background()
	host, err := pgContainer.Host(ctx)
	require.NoError(t, err, "コンテナホストの取得に失敗")
	port, err := pgContainer.MappedPort(ctx, "5432/tcp")
	require.NoError(t, err, "コンテナポートの取得に失敗")

	return pgEndpoint{Host: host, Port: port}
}

// ------------------------------------------------------------
// スイート毎に専用DBを作成してマイグレーションを流す
// ------------------------------------------------------------
func createSuiteDatabase(t *testing.T, ep pgEndpoint) config.DBConfig {
	t.Helper()

	dbName := "guestlink_" + strings.ReplaceAll(uuid.NewString(), "-", "")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	admin, err := pgxpool.New(ctx, ep.dsn("postgres"))
	require.NoError(t, err, "管理者接続に失敗")
	defer admin.Close()

	// 並列スイートがテンプレートDBを同時に使うと失敗するので少し待って再試行
	for attempt := range 5 {
		if _, err = admin.Exec(ctx, "CREATE DATABASE "+dbName); err == nil {
			break
		}
		slog.Warn("データベース作成を再試行中", "attempt", attempt+1, "error", err.Error())
		time.Sleep(time.Duration(attempt+1) * 300 * time.Millisecond)
	}
	require.NoError(t, err, "テスト用データベースの作成に失敗")

	t.Cleanup(func() {
		dropCtx, dropCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer dropCancel()

		admin, err := pgxpool.New(dropCtx, ep.dsn("postgres"))
		if err != nil {
			slog.Warn("クリーンアップ用の接続に失敗しました", "database", dbName, "error", err.Error())
			return
		}
		defer admin.Close()
		if _, err := admin.Exec(dropCtx, "DROP DATABASE IF EXISTS "+dbName+" WITH (FORCE)"); err != nil {
			slog.Warn("テストデータベースの削除に失敗しました", "database", dbName, "error", err.Error())
		}
	})

	return config.DBConfig{
		Host:     ep.Host,
		Port:     ep.Port.Port(),
		User:     pgUser,
		Password: pgPassword,
		DBName:   dbName,
		SSLMode:  "disable",
		TimeZone: pgTimeZone,
		MaxConns: 5,
	}
}

func applyMigrations(ctx context.Context, pool *pgxpool.Pool) error {
	for _, file := range migrationFiles {
		sql, err := readMigration(file)
		if err != nil {
			return err
		}
		if _, err := pool.Exec(ctx, string(sql)); err != nil {
			return fmt.Errorf("failed to execute migration %s: %w", file, err)
		}
	}
	return nil
}

// go test runs in the package directory, so walk up to the module root.
func readMigration(file string) ([]byte, error) {
	dir := file
	for range 4 {
		if b, err := os.ReadFile(dir); err == nil {
			return b, nil
		}
		dir = filepath.Join("..", dir)
	}
	return nil, fmt.Errorf("migration file %s not found", file)
}

// ------------------------------------------------------------
// 本番と同じfxモジュールで組み立て、時計だけMockClockに差し替える
// ------------------------------------------------------------
func buildApp(t *testing.T, pool *pgxpool.Pool, cfg config.Config) (*gin.Engine, *clock.MockClock) {
	t.Helper()

	var router *gin.Engine
	clk := clock.NewMockClock(builder.LinkNow)

	app := fx.New(
		fx.Supply(cfg, pool),
		fx.Provide(func() *gin.Engine { return gin.New() }),
		bootstrap.LoggerModule,
		bootstrap.JWTModule,
		bootstrap.MetricsModule,
		components.PersistenceModule,
		components.BackendModule,
		components.UseCaseModule,
		components.HandlerModule,
		fx.Decorate(func(clock.Clock) clock.Clock { return clk }),
		fx.Populate(&router),
		fx.NopLogger,
	)

	startCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	require.NoError(t, app.Start(startCtx), "fxアプリケーションの起動に失敗")

	t.Cleanup(func() {
		stopCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := app.Stop(stopCtx); err != nil {
			slog.Warn("fxアプリケーションの停止に失敗しました", "error", err.Error())
		}
	})

	return router, clk
}

// ------------------------------------------------------------
// E2Eテストスイートで共通のセットアップ
// ------------------------------------------------------------
type SharedSuite struct {
	suite.Suite
	Router *gin.Engine
	DB     *pgxpool.Pool
	Config config.Config
	Clock  *clock.MockClock
}

func (s *SharedSuite) SetupSuite() {
	t := s.T()
	gin.SetMode(gin.TestMode)

	s.Config = config.NewTestConfig()
	s.Config.DB = createSuiteDatabase(t, postgresEndpoint(t))

	pool, cleanup, err := db.Connect(s.Config.DB)
	require.NoError(t, err, "データベース接続に失敗")
	t.Cleanup(cleanup)

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	require.NoError(t, applyMigrations(ctx, pool), "データベースマイグレーションに失敗")

	s.DB = pool
	s.Router, s.Clock = buildApp(t, pool, s.Config)
}

func (s *SharedSuite) SetupSubTest() {
	require.NoError(s.T(), dbtest.ResetDB(s.DB), "Failed to reset database state")
	s.Clock.Set(builder.LinkNow)
}
