package mongodb

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

var testRegistry = NewRegistry(UUIDStandard)

func found(doc any) *mongo.SingleResult {
	return mongo.NewSingleResultFromDocument(doc, nil, testRegistry)
}

func notFound() *mongo.SingleResult {
	return mongo.NewSingleResultFromDocument(bson.D{}, mongo.ErrNoDocuments, testRegistry)
}

func cursorOf(t *testing.T, docs ...any) *mongo.Cursor {
	t.Helper()
	cur, err := mongo.NewCursorFromDocuments(docs, nil, testRegistry)
	require.NoError(t, err)
	return cur
}

func set(field string, value any) bson.D {
	return bson.D{{Key: "$set", Value: bson.D{{Key: field, Value: value}}}}
}

func idFilter(id any) bson.D {
	return bson.D{{Key: "_id", Value: id}}
}

var acknowledged = &mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}
