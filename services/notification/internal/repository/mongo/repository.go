package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/shestoi/GoCommerce/services/notification/internal/event"
	"github.com/shestoi/GoCommerce/services/notification/internal/model"
	"github.com/shestoi/GoCommerce/services/notification/internal/repository"
)

// CollectionName коллекция уведомлений
const CollectionName = "notifications"

// notificationDocument документ коллекции notifications
type notificationDocument struct {
	ID                  primitive.ObjectID         `bson:"_id,omitempty"`
	Type                string                     `bson:"type"`
	NotificationDate    time.Time                  `bson:"notificationDate"`
	OrderConfirmation   *event.OrderConfirmation   `bson:"orderConfirmation,omitempty"`
	PaymentConfirmation *event.PaymentConfirmation `bson:"paymentConfirmation,omitempty"`
}

// Repository реализует NotificationRepository поверх MongoDB
type Repository struct {
	col *mongo.Collection
}

// NewRepository создаёт репозиторий и индекс по type + notificationDate
func NewRepository(ctx context.Context, client *mongo.Client, dbName string) (*Repository, error) {
	col := client.Database(dbName).Collection(CollectionName)

	indexModel := mongo.IndexModel{
		Keys: bson.D{{Key: "type", Value: 1}, {Key: "notificationDate", Value: -1}},
	}
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if _, err := col.Indexes().CreateOne(ctx, indexModel); err != nil {
		return nil, fmt.Errorf("create notifications index: %w", err)
	}

	return &Repository{col: col}, nil
}

// Save вставляет новый документ; дубликаты событий не отсеиваются
func (r *Repository) Save(ctx context.Context, n model.Notification) (string, error) {
	doc := notificationDocument{
		Type:                string(n.Type),
		NotificationDate:    n.NotificationDate.UTC(),
		OrderConfirmation:   n.OrderConfirmation,
		PaymentConfirmation: n.PaymentConfirmation,
	}

	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		return "", fmt.Errorf("insert notification: %w", err)
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}
	return oid.Hex(), nil
}

// GetByID ищет документ по hex ObjectID
func (r *Repository) GetByID(ctx context.Context, id string) (model.Notification, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return model.Notification{}, repository.ErrNotFound
	}

	var doc notificationDocument
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return model.Notification{}, repository.ErrNotFound
		}
		return model.Notification{}, fmt.Errorf("find notification: %w", err)
	}

	return model.Notification{
		ID:                  doc.ID.Hex(),
		Type:                model.NotificationType(doc.Type),
		NotificationDate:    doc.NotificationDate,
		OrderConfirmation:   doc.OrderConfirmation,
		PaymentConfirmation: doc.PaymentConfirmation,
	}, nil
}
