package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type User struct {
	ID       bson.ObjectID `json:"id"     bson:"_id,omitempty"`
	Name     string        `json:"name"   bson:"name"`
	Email    string        `json:"email"  bson:"email"`
	Avatar   string        `json:"avatar" bson:"avatar"`
	Password string        `json:"-"      bson:"password"`
	Date     time.Time     `json:"date"   bson:"date"`
}
