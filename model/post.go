package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Post document. Likes is the set of user ids that liked the post; the
// store updates it with $addToSet / $pull so a double like collapses.
type Post struct {
	ID        bson.ObjectID   `json:"id"        bson:"_id,omitempty"`
	Title     string          `json:"title"     bson:"title"`
	Content   string          `json:"content"   bson:"content"`
	ImageURL  string          `json:"imageUrl"  bson:"image_url"`
	CreatorID bson.ObjectID   `json:"creatorId" bson:"creator_id"`
	Likes     []bson.ObjectID `json:"likes"     bson:"likes"`
	CreatedAt time.Time       `json:"createdAt" bson:"created_at"`
	UpdatedAt time.Time       `json:"updatedAt" bson:"updated_at"`
}

// LikedBy reports whether userID is in the like set.
func (p *Post) LikedBy(userID bson.ObjectID) bool {
	for _, id := range p.Likes {
		if id == userID {
			return true
		}
	}
	return false
}
