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

const resumeCollection = "resume_entries"

type ResumeRepository struct {
	coll *mongo.Collection
}

func NewResumeRepository(db *mongo.Database) *ResumeRepository {
	return &ResumeRepository{coll: db.Collection(resumeCollection)}
}

type resumeDoc struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Kind         string             `bson:"kind"`
	Title        string             `bson:"title"`
	Organization string             `bson:"organization"`
	Location     string             `bson:"location,omitempty"`
	StartDate    time.Time          `bson:"start_date"`
	EndDate      time.Time          `bson:"end_date,omitempty"`
	Description  string             `bson:"description,omitempty"`
	SortOrder    int                `bson:"sort_order"`
}

func (d resumeDoc) toDomain() *domain.ResumeEntry {
	return &domain.ResumeEntry{
		ID:           d.ID.Hex(),
		Kind:         domain.ResumeKind(d.Kind),
		Title:        d.Title,
		Organization: d.Organization,
		Location:     d.Location,
		StartDate:    d.StartDate,
		EndDate:      d.EndDate,
		Description:  d.Description,
		SortOrder:    d.SortOrder,
	}
}

func docFromResumeEntry(e *domain.ResumeEntry) resumeDoc {
	return resumeDoc{
		Kind:         string(e.Kind),
		Title:        e.Title,
		Organization: e.Organization,
		Location:     e.Location,
		StartDate:    e.StartDate,
		EndDate:      e.EndDate,
		Description:  e.Description,
		SortOrder:    e.SortOrder,
	}
}

func (r *ResumeRepository) Create(ctx context.Context, e *domain.ResumeEntry) (*domain.ResumeEntry, error) {
	doc := docFromResumeEntry(e)

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert resume entry: %w", err)
	}

	doc.ID = res.InsertedID.(primitive.ObjectID)
	return doc.toDomain(), nil
}

func (r *ResumeRepository) List(ctx context.Context, kind domain.ResumeKind) ([]*domain.ResumeEntry, error) {
	opts := options.Find().SetSort(bson.D{{Key: "sort_order", Value: 1}, {Key: "start_date", Value: -1}})
	cur, err := r.coll.Find(ctx, bson.M{"kind": string(kind)}, opts)
	if err != nil {
		return nil, fmt.Errorf("list resume entries: %w", err)
	}
	defer cur.Close(ctx)

	var entries []*domain.ResumeEntry
	for cur.Next(ctx) {
		var doc resumeDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode resume entry: %w", err)
		}
		entries = append(entries, doc.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate resume entries: %w", err)
	}
	return entries, nil
}

func (r *ResumeRepository) Update(ctx context.Context, e *domain.ResumeEntry) error {
	oid, err := primitive.ObjectIDFromHex(e.ID)
	if err != nil {
		return domain.ErrResumeEntryNotFound
	}

	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": oid}, docFromResumeEntry(e))
	if err != nil {
		return fmt.Errorf("update resume entry: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrResumeEntryNotFound
	}
	return nil
}

func (r *ResumeRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrResumeEntryNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete resume entry: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrResumeEntryNotFound
	}
	return nil
}
