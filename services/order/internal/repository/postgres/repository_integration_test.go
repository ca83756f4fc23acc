//go:build integration

package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	_ "github.com/jackc/pgx/v5/stdlib" // драйвер "pgx" для database/sql

	"github.com/shestoi/GoCommerce/services/order/internal/repository"
	"github.com/shestoi/GoCommerce/services/order/migrations"
)

func TestRepository_Integration(t *testing.T) {
	ctx := context.Background()

	container, err := postgres.Run(ctx, "postgres:16-alpine",
		postgres.WithDatabase("orders"),
		postgres.WithUsername("order_user"),
		postgres.WithPassword("order_password"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, container.Terminate(ctx))
	})

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := sql.Open("pgx", dsn)
	require.NoError(t, err)
	defer db.Close()
	require.NoError(t, migrations.Up(ctx, db))

	pool, err := pgxpool.New(ctx, dsn)
	require.NoError(t, err)
	defer pool.Close()

	repo := NewRepository(pool)

	t.Run("CreateWithLines and read back", func(t *testing.T) {
		id, err := repo.CreateWithLines(ctx, repository.Order{
			Reference:     "ORD-1",
			TotalAmount:   99.5,
			PaymentMethod: repository.PaymentMethodVisa,
			CustomerID:    "c-1",
		}, []repository.OrderLine{
			{ProductID: 1, Quantity: 2},
			{ProductID: 3, Quantity: 0.25},
		})
		require.NoError(t, err)
		require.Positive(t, id)

		got, err := repo.GetByID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, "ORD-1", got.Reference)
		assert.InDelta(t, 99.5, got.TotalAmount, 0.001)
		assert.Equal(t, repository.PaymentMethodVisa, got.PaymentMethod)
		assert.Equal(t, "c-1", got.CustomerID)
		assert.False(t, got.CreatedAt.IsZero())

		lines, err := repo.ListLines(ctx, id)
		require.NoError(t, err)
		require.Len(t, lines, 2)
		assert.Equal(t, int64(1), lines[0].ProductID)
		assert.Equal(t, id, lines[1].OrderID)
		assert.InDelta(t, 0.25, lines[1].Quantity, 0.0001)

		all, err := repo.List(ctx)
		require.NoError(t, err)
		assert.Len(t, all, 1)
	})

	t.Run("failed line insert rolls back the order", func(t *testing.T) {
		before, err := repo.List(ctx)
		require.NoError(t, err)

		// quantity CHECK (> 0) ломает вторую позицию
		_, err = repo.CreateWithLines(ctx, repository.Order{
			Reference:     "ORD-2",
			TotalAmount:   10,
			PaymentMethod: repository.PaymentMethodCash,
			CustomerID:    "c-2",
		}, []repository.OrderLine{{ProductID: 1, Quantity: 1}, {ProductID: 2, Quantity: -1}})
		require.Error(t, err)

		after, err := repo.List(ctx)
		require.NoError(t, err)
		assert.Len(t, after, len(before))
	})

	t.Run("GetByID not found", func(t *testing.T) {
		_, err := repo.GetByID(ctx, 100500)
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})
}
