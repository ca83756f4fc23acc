//go:build integration

package mongo

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go/modules/mongodb"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/shestoi/GoCommerce/services/notification/internal/event"
	"github.com/shestoi/GoCommerce/services/notification/internal/model"
	"github.com/shestoi/GoCommerce/services/notification/internal/repository"
)

func setupMongo(t *testing.T) *mongo.Client {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	container, err := mongodb.Run(ctx, "mongo:6")
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(context.Background()) })

	uri, err := container.ConnectionString(ctx)
	require.NoError(t, err)

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Disconnect(context.Background()) })

	require.NoError(t, client.Database("admin").RunCommand(ctx, bson.D{{Key: "ping", Value: 1}}).Err())
	return client
}

func TestRepository_SaveAndGet(t *testing.T) {
	ctx := context.Background()
	client := setupMongo(t)

	repo, err := NewRepository(ctx, client, "notification")
	require.NoError(t, err)

	now := time.Now().UTC().Truncate(time.Millisecond)
	order := &event.OrderConfirmation{
		OrderReference: "ORD-1",
		TotalAmount:    20,
		PaymentMethod:  "PAYPAL",
		Customer:       event.Customer{ID: "c1", Firstname: "Jane", Lastname: "Doe", Email: "jane@x.com"},
		Products:       []event.Product{{ProductID: 1, Name: "Keyboard", Price: 10, Quantity: 2}},
	}

	id, err := repo.Save(ctx, model.Notification{
		Type:              model.OrderConfirmation,
		NotificationDate:  now,
		OrderConfirmation: order,
	})
	require.NoError(t, err)
	require.NotEmpty(t, id)

	got, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, id, got.ID)
	assert.Equal(t, model.OrderConfirmation, got.Type)
	assert.True(t, now.Equal(got.NotificationDate))
	assert.Nil(t, got.PaymentConfirmation)
	assert.Equal(t, order, got.OrderConfirmation)

	// то же событие повторно сохраняется отдельной записью
	id2, err := repo.Save(ctx, model.Notification{Type: model.OrderConfirmation, NotificationDate: now, OrderConfirmation: order})
	require.NoError(t, err)
	assert.NotEqual(t, id, id2)

	count, err := client.Database("notification").Collection(CollectionName).CountDocuments(ctx, bson.M{"type": "ORDER_CONFIRMATION"})
	require.NoError(t, err)
	assert.EqualValues(t, 2, count)
}

func TestRepository_GetByID_NotFound(t *testing.T) {
	ctx := context.Background()
	client := setupMongo(t)

	repo, err := NewRepository(ctx, client, "notification")
	require.NoError(t, err)

	_, err = repo.GetByID(ctx, "000000000000000000000000")
	assert.ErrorIs(t, err, repository.ErrNotFound)

	_, err = repo.GetByID(ctx, "not-an-object-id")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
