package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type Comment struct {
	ID        bson.ObjectID `json:"id"        bson:"_id,omitempty"`
	Content   string        `json:"content"   bson:"content"`
	PostID    bson.ObjectID `json:"postId"    bson:"post_id"`
	CreatorID bson.ObjectID `json:"creatorId" bson:"creator_id"`
	CreatedAt time.Time     `json:"createdAt" bson:"created_at"`
	UpdatedAt time.Time     `json:"updatedAt" bson:"updated_at"`
}
