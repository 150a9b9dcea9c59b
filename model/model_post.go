package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Post carries its likes and comments as embedded subdocuments; every
// mutation is a single-document load, edit and save. Name and Avatar are
// snapshots of the author taken at creation time, not live references.
type Post struct {
	ID       bson.ObjectID `json:"id"       bson:"_id,omitempty"`
	UserID   bson.ObjectID `json:"user"     bson:"user"`
	Text     string        `json:"text"     bson:"text"`
	Name     string        `json:"name"     bson:"name"`
	Avatar   string        `json:"avatar"   bson:"avatar"`
	Likes    []Like        `json:"likes"    bson:"likes"`
	Comments []Comment     `json:"comments" bson:"comments"`
	Date     time.Time     `json:"date"     bson:"date"`
}

type Like struct {
	ID     bson.ObjectID `json:"id"   bson:"_id,omitempty"`
	UserID bson.ObjectID `json:"user" bson:"user"`
}

type Comment struct {
	ID     bson.ObjectID `json:"id"     bson:"_id,omitempty"`
	UserID bson.ObjectID `json:"user"   bson:"user"`
	Text   string        `json:"text"   bson:"text"`
	Name   string        `json:"name"   bson:"name"`
	Avatar string        `json:"avatar" bson:"avatar"`
	Date   time.Time     `json:"date"   bson:"date"`
}
