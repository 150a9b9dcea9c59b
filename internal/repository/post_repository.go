package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"devconnector/model"
)

type PostRepository struct {
	Col *mongo.Collection
}

func NewPostRepository(db *mongo.Database) *PostRepository {
	return &PostRepository{Col: db.Collection("posts")}
}

func (r *PostRepository) Insert(ctx context.Context, post *model.Post) error {
	res, err := r.Col.InsertOne(ctx, post)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(bson.ObjectID); ok {
		post.ID = oid
	}
	return nil
}

func (r *PostRepository) FindByID(ctx context.Context, id bson.ObjectID) (*model.Post, error) {
	var post model.Post
	if err := r.Col.FindOne(ctx, bson.M{"_id": id}).Decode(&post); err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *PostRepository) FindAllNewestFirst(ctx context.Context) ([]model.Post, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	cur, err := r.Col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	posts := []model.Post{}
	if err := cur.All(ctx, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// Save replaces the whole document. Mutations are read-modify-write, so
// concurrent saves of the same post are last-write-wins.
func (r *PostRepository) Save(ctx context.Context, post *model.Post) error {
	res, err := r.Col.ReplaceOne(ctx, bson.M{"_id": post.ID}, post)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *PostRepository) Remove(ctx context.Context, id bson.ObjectID) error {
	res, err := r.Col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
