package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

const (
	BlogDraft     = "draft"
	BlogPublished = "published"
)

type Blog struct {
	ID        bson.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Title     string        `bson:"title" json:"title"`
	Thumbnail string        `bson:"thumbnail" json:"thumbnail"`
	Content   string        `bson:"content" json:"content"`
	Status    string        `bson:"status" json:"status"`
	CreatedAt time.Time     `bson:"createdAt" json:"createdAt"`
}

func IsBlogStatus(s string) bool {
	return s == BlogDraft || s == BlogPublished
}
