package bootstrap

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// EnsureIndexes creates the indexes the API relies on: one account per
// email, and the feed sort on post date.
func EnsureIndexes(db *mongo.Database) error {
	_, err := db.Collection("users").Indexes().CreateOne(
		context.Background(),
		mongo.IndexModel{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("uniq_email"),
		},
	)
	if err != nil {
		return err
	}

	_, err = db.Collection("posts").Indexes().CreateOne(
		context.Background(),
		mongo.IndexModel{
			Keys:    bson.D{{Key: "date", Value: -1}},
			Options: options.Index().SetName("date_desc"),
		},
	)
	return err
}
