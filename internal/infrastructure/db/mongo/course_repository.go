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

const collectionCourses = "courses"

// CourseRepository persists catalog entries.
type CourseRepository struct {
	coll *mongo.Collection
}

func NewCourseRepository(db *mongo.Database) *CourseRepository {
	return &CourseRepository{coll: db.Collection(collectionCourses)}
}

type courseDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Title       string             `bson:"title"`
	Description string             `bson:"description"`
	ImageURL    string             `bson:"imageUrl"`
	Price       float64            `bson:"price"`
	CreatorID   string             `bson:"creatorId"`
	CreatedAt   time.Time          `bson:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt"`
}

func (d courseDoc) toDomain() domain.Course {
	return domain.Course{
		ID:          d.ID.Hex(),
		Title:       d.Title,
		Description: d.Description,
		ImageURL:    d.ImageURL,
		Price:       d.Price,
		CreatorID:   d.CreatorID,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

func (r *CourseRepository) Create(ctx context.Context, course *domain.Course) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := courseDoc{
		Title:       course.Title,
		Description: course.Description,
		ImageURL:    course.ImageURL,
		Price:       course.Price,
		CreatorID:   course.CreatorID,
		CreatedAt:   course.CreatedAt.UTC(),
		UpdatedAt:   course.UpdatedAt.UTC(),
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return "", fmt.Errorf("insert course: %w", err)
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("insert course: unexpected id type %T", res.InsertedID)
	}
	return oid.Hex(), nil
}

// UpdateOwned overwrites the mutable fields of the course matching both id
// and creator. A filter that matches nothing updates zero documents and is
// not an error.
func (r *CourseRepository) UpdateOwned(ctx context.Context, courseID, creatorID string, fields domain.Course) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(courseID)
	if err != nil {
		// A malformed id cannot match any document; mirror the zero-match case.
		return nil
	}

	filter := bson.M{"_id": oid, "creatorId": creatorID}
	update := bson.M{"$set": bson.M{
		"title":       fields.Title,
		"description": fields.Description,
		"imageUrl":    fields.ImageURL,
		"price":       fields.Price,
		"updatedAt":   fields.UpdatedAt.UTC(),
	}}

	if _, err := r.coll.UpdateOne(ctx, filter, update); err != nil {
		return fmt.Errorf("update course: %w", err)
	}
	return nil
}

func (r *CourseRepository) ListByCreator(ctx context.Context, creatorID string) ([]domain.Course, error) {
	return r.list(ctx, bson.M{"creatorId": creatorID})
}

func (r *CourseRepository) ListAll(ctx context.Context) ([]domain.Course, error) {
	return r.list(ctx, bson.M{})
}

func (r *CourseRepository) FindByIDs(ctx context.Context, ids []string) ([]domain.Course, error) {
	oids := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		oid, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			continue
		}
		oids = append(oids, oid)
	}
	if len(oids) == 0 {
		return []domain.Course{}, nil
	}
	return r.list(ctx, bson.M{"_id": bson.M{"$in": oids}})
}

func (r *CourseRepository) list(ctx context.Context, filter bson.M) ([]domain.Course, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list courses: %w", err)
	}
	defer cur.Close(ctx)

	courses := []domain.Course{}
	for cur.Next(ctx) {
		var doc courseDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode course: %w", err)
		}
		courses = append(courses, doc.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("list courses: %w", err)
	}
	return courses, nil
}

// EnsureIndexes creates the creator index used by scoped queries.
func (r *CourseRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "creatorId", Value: 1}},
	})
	return err
}
