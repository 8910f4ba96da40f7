package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/pixgram/backend/internal/apperrors"
	"github.com/pixgram/backend/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// PostRepository defines the interface for post data operations
type PostRepository interface {
	CreatePost(ctx context.Context, post *models.Post) error
	GetPostByID(ctx context.Context, id string) (*models.Post, error)
	// GetPostsByUploader returns a newest-first page of one uploader's posts.
	GetPostsByUploader(ctx context.Context, username string, skip, limit int64) ([]models.Post, error)
	GetPostsCountByUploader(ctx context.Context, username string) (int64, error)
	// GetPostsByUploaders returns a newest-first page of posts authored by
	// any of the given uploaders.
	GetPostsByUploaders(ctx context.Context, usernames []string, skip, limit int64) ([]models.Post, error)
	GetPostsCountByUploaders(ctx context.Context, usernames []string) (int64, error)
	UpdatePost(ctx context.Context, post *models.Post) error
	DeletePost(ctx context.Context, id string) error
}

// MongoPostRepository implements PostRepository for MongoDB
type MongoPostRepository struct {
	collection *mongo.Collection
}

// NewMongoPostRepository creates a new MongoPostRepository
func NewMongoPostRepository(db *mongo.Database) *MongoPostRepository {
	return &MongoPostRepository{collection: db.Collection("posts")}
}

func (r *MongoPostRepository) CreatePost(ctx context.Context, post *models.Post) error {
	post.ID = primitive.NewObjectID()
	post.CreatedAt = time.Now()
	post.UpdatedAt = post.CreatedAt
	_, err := r.collection.InsertOne(ctx, post)
	return err
}

func (r *MongoPostRepository) GetPostByID(ctx context.Context, id string) (*models.Post, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		// Malformed IDs reference nothing.
		return nil, apperrors.ErrNotFound
	}

	var post models.Post
	err = r.collection.FindOne(ctx, bson.M{"_id": objID}).Decode(&post)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &post, nil
}

func (r *MongoPostRepository) GetPostsByUploader(ctx context.Context, username string, skip, limit int64) ([]models.Post, error) {
	return r.findPage(ctx, bson.M{"uploader": username}, skip, limit)
}

func (r *MongoPostRepository) GetPostsCountByUploader(ctx context.Context, username string) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{"uploader": username})
}

func (r *MongoPostRepository) GetPostsByUploaders(ctx context.Context, usernames []string, skip, limit int64) ([]models.Post, error) {
	return r.findPage(ctx, bson.M{"uploader": bson.M{"$in": usernames}}, skip, limit)
}

func (r *MongoPostRepository) GetPostsCountByUploaders(ctx context.Context, usernames []string) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{"uploader": bson.M{"$in": usernames}})
}

func (r *MongoPostRepository) findPage(ctx context.Context, filter bson.M, skip, limit int64) ([]models.Post, error) {
	posts := []models.Post{}
	findOptions := options.Find().SetSkip(skip).SetLimit(limit).SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

func (r *MongoPostRepository) UpdatePost(ctx context.Context, post *models.Post) error {
	post.UpdatedAt = time.Now()
	update := bson.M{
		"$set": bson.M{
			"description": post.Description,
			"hashtags":    post.Hashtags,
			"image":       post.Image,
			"updated_at":  post.UpdatedAt,
		},
	}
	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": post.ID}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *MongoPostRepository) DeletePost(ctx context.Context, id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return apperrors.ErrNotFound
	}

	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
