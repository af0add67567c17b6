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

const certificatesCollection = "certificates"

type CertificateRepository struct {
	coll *mongo.Collection
}

func NewCertificateRepository(db *mongo.Database) *CertificateRepository {
	return &CertificateRepository{coll: db.Collection(certificatesCollection)}
}

type certificateDoc struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	Title         string             `bson:"title"`
	Issuer        string             `bson:"issuer"`
	IssueDate     time.Time          `bson:"issue_date"`
	CredentialURL string             `bson:"credential_url,omitempty"`
	SortOrder     int                `bson:"sort_order"`
}

func (d certificateDoc) toDomain() *domain.Certificate {
	return &domain.Certificate{
		ID:            d.ID.Hex(),
		Title:         d.Title,
		Issuer:        d.Issuer,
		IssueDate:     d.IssueDate,
		CredentialURL: d.CredentialURL,
		SortOrder:     d.SortOrder,
	}
}

func (r *CertificateRepository) Create(ctx context.Context, c *domain.Certificate) (*domain.Certificate, error) {
	doc := certificateDoc{
		Title:         c.Title,
		Issuer:        c.Issuer,
		IssueDate:     c.IssueDate,
		CredentialURL: c.CredentialURL,
		SortOrder:     c.SortOrder,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert certificate: %w", err)
	}

	doc.ID = res.InsertedID.(primitive.ObjectID)
	return doc.toDomain(), nil
}

func (r *CertificateRepository) List(ctx context.Context) ([]*domain.Certificate, error) {
	opts := options.Find().SetSort(bson.D{{Key: "sort_order", Value: 1}, {Key: "issue_date", Value: -1}})
	cur, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list certificates: %w", err)
	}
	defer cur.Close(ctx)

	var certs []*domain.Certificate
	for cur.Next(ctx) {
		var doc certificateDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode certificate: %w", err)
		}
		certs = append(certs, doc.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate certificates: %w", err)
	}
	return certs, nil
}

func (r *CertificateRepository) Update(ctx context.Context, c *domain.Certificate) error {
	oid, err := primitive.ObjectIDFromHex(c.ID)
	if err != nil {
		return domain.ErrCertificateNotFound
	}

	doc := certificateDoc{
		Title:         c.Title,
		Issuer:        c.Issuer,
		IssueDate:     c.IssueDate,
		CredentialURL: c.CredentialURL,
		SortOrder:     c.SortOrder,
	}
	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": oid}, doc)
	if err != nil {
		return fmt.Errorf("update certificate: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrCertificateNotFound
	}
	return nil
}

func (r *CertificateRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrCertificateNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete certificate: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrCertificateNotFound
	}
	return nil
}
