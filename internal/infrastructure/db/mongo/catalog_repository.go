package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/ecomfire/storefront-api/internal/core/domain"
)

const collectionProducts = "products"

// CatalogRepository implements ports.CatalogRepository over the products
// collection.
type CatalogRepository struct {
	col *mongo.Collection
}

func NewCatalogRepository(db *mongo.Database) *CatalogRepository {
	return &CatalogRepository{col: db.Collection(collectionProducts)}
}

// mongoProduct mirrors the stored document. Stock is decoded untyped because
// legacy documents carry it as a string while newer ones use a number; it is
// normalized exactly once, in toDomain.
type mongoProduct struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Name        string             `bson:"name"`
	Description string             `bson:"description"`
	Category    string             `bson:"category"`
	ImageURL    string             `bson:"imageURL"`
	Price       float64            `bson:"price"`
	Stock       any                `bson:"stock"`
	SellerID    string             `bson:"sellerId,omitempty"`
}

func toDomain(mp mongoProduct) (domain.Product, error) {
	stock, err := domain.ParseStock(mp.Stock)
	if err != nil {
		return domain.Product{}, fmt.Errorf("product %s: %w", mp.ID.Hex(), err)
	}
	return domain.Product{
		ID:          mp.ID.Hex(),
		Name:        mp.Name,
		Description: mp.Description,
		Category:    mp.Category,
		ImageURL:    mp.ImageURL,
		Price:       mp.Price,
		Stock:       stock,
		SellerID:    mp.SellerID,
	}, nil
}

// List returns every product in the catalog.
func (r *CatalogRepository) List(ctx context.Context) ([]domain.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer cursor.Close(ctx)

	return decodeProducts(ctx, cursor)
}

// FindByID retrieves a product by its hex id. Malformed ids are reported as
// not found, matching what the store itself would say.
func (r *CatalogRepository) FindByID(ctx context.Context, id string) (*domain.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrProductNotFound
	}

	var mp mongoProduct
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&mp); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrProductNotFound
		}
		return nil, fmt.Errorf("find product: %w", err)
	}

	p, err := toDomain(mp)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// ListBySeller returns the products whose sellerId matches.
func (r *CatalogRepository) ListBySeller(ctx context.Context, sellerID string) ([]domain.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.col.Find(ctx, bson.M{"sellerId": sellerID})
	if err != nil {
		return nil, fmt.Errorf("list seller products: %w", err)
	}
	defer cursor.Close(ctx)

	return decodeProducts(ctx, cursor)
}

// Insert stores a new product document and returns the assigned id. Stock is
// written as a number; only reads have to tolerate the legacy string form.
func (r *CatalogRepository) Insert(ctx context.Context, p *domain.Product) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := bson.M{
		"name":        p.Name,
		"description": p.Description,
		"category":    p.Category,
		"imageURL":    p.ImageURL,
		"price":       p.Price,
		"stock":       p.Stock,
	}
	if p.SellerID != "" {
		doc["sellerId"] = p.SellerID
	}

	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		return "", fmt.Errorf("insert product: %w", err)
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("insert product: unexpected id type %T", res.InsertedID)
	}
	return oid.Hex(), nil
}

// Delete removes a product document by id.
func (r *CatalogRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrProductNotFound
	}

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrProductNotFound
	}
	return nil
}

// EnsureIndexes creates the indexes the catalog queries rely on.
func (r *CatalogRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "sellerId", Value: 1}}},
		{Keys: bson.D{{Key: "category", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}

func decodeProducts(ctx context.Context, cursor *mongo.Cursor) ([]domain.Product, error) {
	var out []domain.Product
	for cursor.Next(ctx) {
		var mp mongoProduct
		if err := cursor.Decode(&mp); err != nil {
			return nil, fmt.Errorf("decode product: %w", err)
		}
		p, err := toDomain(mp)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("iterate products: %w", err)
	}
	return out, nil
}
