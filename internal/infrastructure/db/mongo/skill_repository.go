package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/devfolio/portfolio-api/internal/core/domain"
)

const skillsCollection = "skills"

type SkillRepository struct {
	coll *mongo.Collection
}

func NewSkillRepository(db *mongo.Database) *SkillRepository {
	return &SkillRepository{coll: db.Collection(skillsCollection)}
}

type skillDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Name      string             `bson:"name"`
	Category  string             `bson:"category"`
	Level     int                `bson:"level"`
	SortOrder int                `bson:"sort_order"`
}

func (d skillDoc) toDomain() *domain.Skill {
	return &domain.Skill{
		ID:        d.ID.Hex(),
		Name:      d.Name,
		Category:  d.Category,
		Level:     d.Level,
		SortOrder: d.SortOrder,
	}
}

func (r *SkillRepository) Create(ctx context.Context, s *domain.Skill) (*domain.Skill, error) {
	doc := skillDoc{Name: s.Name, Category: s.Category, Level: s.Level, SortOrder: s.SortOrder}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert skill: %w", err)
	}

	doc.ID = res.InsertedID.(primitive.ObjectID)
	return doc.toDomain(), nil
}

func (r *SkillRepository) List(ctx context.Context) ([]*domain.Skill, error) {
	opts := options.Find().SetSort(bson.D{{Key: "category", Value: 1}, {Key: "sort_order", Value: 1}})
	cur, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list skills: %w", err)
	}
	defer cur.Close(ctx)

	var skills []*domain.Skill
	for cur.Next(ctx) {
		var doc skillDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode skill: %w", err)
		}
		skills = append(skills, doc.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate skills: %w", err)
	}
	return skills, nil
}

func (r *SkillRepository) Update(ctx context.Context, s *domain.Skill) error {
	oid, err := primitive.ObjectIDFromHex(s.ID)
	if err != nil {
		return domain.ErrSkillNotFound
	}

	doc := skillDoc{Name: s.Name, Category: s.Category, Level: s.Level, SortOrder: s.SortOrder}
	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": oid}, doc)
	if err != nil {
		return fmt.Errorf("update skill: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrSkillNotFound
	}
	return nil
}

func (r *SkillRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrSkillNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete skill: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrSkillNotFound
	}
	return nil
}
