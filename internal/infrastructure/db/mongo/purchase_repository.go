package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/skillforge/course-platform/internal/core/domain"
)

const collectionPurchases = "purchases"

// PurchaseRepository persists the append-only purchase log.
type PurchaseRepository struct {
	coll *mongo.Collection
}

func NewPurchaseRepository(db *mongo.Database) *PurchaseRepository {
	return &PurchaseRepository{coll: db.Collection(collectionPurchases)}
}

type purchaseDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	UserID    string             `bson:"userId"`
	CourseID  string             `bson:"courseId"`
	CreatedAt time.Time          `bson:"createdAt"`
}

func (r *PurchaseRepository) Create(ctx context.Context, purchase *domain.Purchase) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := purchaseDoc{
		UserID:    purchase.UserID,
		CourseID:  purchase.CourseID,
		CreatedAt: purchase.CreatedAt.UTC(),
	}

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert purchase: %w", err)
	}
	return nil
}

func (r *PurchaseRepository) ListByUser(ctx context.Context, userID string) ([]domain.Purchase, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, bson.M{"userId": userID})
	if err != nil {
		return nil, fmt.Errorf("list purchases: %w", err)
	}
	defer cur.Close(ctx)

	purchases := []domain.Purchase{}
	for cur.Next(ctx) {
		var doc purchaseDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode purchase: %w", err)
		}
		purchases = append(purchases, domain.Purchase{
			ID:        doc.ID.Hex(),
			UserID:    doc.UserID,
			CourseID:  doc.CourseID,
			CreatedAt: doc.CreatedAt,
		})
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("list purchases: %w", err)
	}
	return purchases, nil
}

// EnsureIndexes creates the user index backing the purchase listing.
func (r *PurchaseRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "userId", Value: 1}},
	})
	return err
}
