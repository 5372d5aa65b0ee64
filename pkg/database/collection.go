// Package database provides the typed collection accessor shared by the
// ledger and metadata services.
package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection provides typed access to a MongoDB collection. Unlike a
// cached accessor, every read hits the store: ledger callers need
// read-after-update consistency, so caching lives with the services that
// can replace their cache wholesale (the metadata service), never here.
type Collection[T any] struct {
	collection *mongo.Collection
	dbInstance *Database
}

// NewCollection creates a typed accessor for a collection
func NewCollection[T any](collectionName string, db *Database) *Collection[T] {
	return &Collection[T]{
		collection: db.GetCollection(collectionName),
		dbInstance: db,
	}
}

// ready returns the underlying handle, failing fast while offline
func (c *Collection[T]) ready() (*mongo.Collection, error) {
	if !c.dbInstance.Connected() || c.collection == nil {
		return nil, fmt.Errorf("database not connected")
	}
	return c.collection, nil
}

// FindOne retrieves a single document matching the query. A nil result
// with a nil error means nothing matched.
func (c *Collection[T]) FindOne(ctx context.Context, query bson.M, opts ...*options.FindOneOptions) (*T, error) {
	col, err := c.ready()
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var result T
	err = col.FindOne(ctx, query, opts...).Decode(&result)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &result, nil
}

// FindAll retrieves all documents matching the query in store order
func (c *Collection[T]) FindAll(ctx context.Context, query bson.M) ([]*T, error) {
	col, err := c.ready()
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	cursor, err := col.Find(ctx, query)
	if err != nil {
		return nil, err
	}
	defer func() { _ = cursor.Close(ctx) }()

	var results []*T
	for cursor.Next(ctx) {
		var doc T
		if err := cursor.Decode(&doc); err != nil {
			continue
		}
		results = append(results, &doc)
	}

	return results, cursor.Err()
}

// InsertOne writes a new document
func (c *Collection[T]) InsertOne(ctx context.Context, doc T) error {
	col, err := c.ready()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err = col.InsertOne(ctx, doc)
	return err
}

// PatchOne applies a partial $set update to the single document matching
// the query and returns the post-update document. A nil result with a nil
// error means nothing matched.
func (c *Collection[T]) PatchOne(ctx context.Context, query bson.M, updates bson.M) (*T, error) {
	col, err := c.ready()
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var result T
	err = col.FindOneAndUpdate(ctx, query, bson.M{"$set": updates}, opts).Decode(&result)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &result, nil
}

// UpsertOne applies a $set update to the document matching the query,
// inserting it when absent, and returns the post-update document
func (c *Collection[T]) UpsertOne(ctx context.Context, query bson.M, updates bson.M) (*T, error) {
	col, err := c.ready()
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var result T
	err = col.FindOneAndUpdate(ctx, query, bson.M{"$set": updates}, opts).Decode(&result)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// Count returns the number of documents matching the query
func (c *Collection[T]) Count(ctx context.Context, query bson.M) (int64, error) {
	col, err := c.ready()
	if err != nil {
		return 0, err
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	return col.CountDocuments(ctx, query)
}

// Raw returns the underlying mongo collection for operations the typed
// accessor does not cover
func (c *Collection[T]) Raw() *mongo.Collection {
	return c.collection
}
