package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/devfolio/portfolio-api/internal/core/domain"
)

const commentsCollection = "comments"

type CommentRepository struct {
	coll *mongo.Collection
}

func NewCommentRepository(db *mongo.Database) *CommentRepository {
	return &CommentRepository{coll: db.Collection(commentsCollection)}
}

type commentDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	PostID    string             `bson:"post_id"`
	Author    string             `bson:"author"`
	Email     string             `bson:"email,omitempty"`
	Body      string             `bson:"body"`
	Approved  bool               `bson:"approved"`
	CreatedAt time.Time          `bson:"created_at"`
}

func (d commentDoc) toDomain() *domain.Comment {
	return &domain.Comment{
		ID:        d.ID.Hex(),
		PostID:    d.PostID,
		Author:    d.Author,
		Email:     d.Email,
		Body:      d.Body,
		Approved:  d.Approved,
		CreatedAt: d.CreatedAt,
	}
}

func (r *CommentRepository) Create(ctx context.Context, comment *domain.Comment) (*domain.Comment, error) {
	doc := commentDoc{
		PostID:    comment.PostID,
		Author:    comment.Author,
		Email:     comment.Email,
		Body:      comment.Body,
		Approved:  comment.Approved,
		CreatedAt: comment.CreatedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert comment: %w", err)
	}

	doc.ID = res.InsertedID.(primitive.ObjectID)
	return doc.toDomain(), nil
}

func (r *CommentRepository) ListByPost(ctx context.Context, postID string, approvedOnly bool) ([]*domain.Comment, error) {
	filter := bson.M{"post_id": postID}
	if approvedOnly {
		filter["approved"] = true
	}
	return r.list(ctx, filter)
}

func (r *CommentRepository) List(ctx context.Context, approved *bool) ([]*domain.Comment, error) {
	filter := bson.M{}
	if approved != nil {
		filter["approved"] = *approved
	}
	return r.list(ctx, filter)
}

func (r *CommentRepository) list(ctx context.Context, filter bson.M) ([]*domain.Comment, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	cur, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	defer cur.Close(ctx)

	var comments []*domain.Comment
	for cur.Next(ctx) {
		var doc commentDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode comment: %w", err)
		}
		comments = append(comments, doc.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate comments: %w", err)
	}
	return comments, nil
}

func (r *CommentRepository) SetApproved(ctx context.Context, id string, approved bool) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrCommentNotFound
	}

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{"approved": approved}})
	if err != nil {
		return fmt.Errorf("update comment: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrCommentNotFound
	}
	return nil
}

func (r *CommentRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrCommentNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete comment: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrCommentNotFound
	}
	return nil
}

func (r *CommentRepository) CountPending(ctx context.Context) (int64, error) {
	n, err := r.coll.CountDocuments(ctx, bson.M{"approved": false})
	if err != nil {
		return 0, fmt.Errorf("count pending comments: %w", err)
	}
	return n, nil
}
