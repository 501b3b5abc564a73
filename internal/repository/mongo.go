package repository

import (
	"go.mongodb.org/mongo-driver/v2/mongo"
)

// MongoStore bundles the three collection repositories into one Store.
type MongoStore struct {
	*UserRepository
	*PostRepository
	*CommentRepository
}

var _ Store = (*MongoStore)(nil)

func NewMongoStore(db *mongo.Database) *MongoStore {
	return &MongoStore{
		UserRepository:    NewUserRepository(db),
		PostRepository:    NewPostRepository(db),
		CommentRepository: NewCommentRepository(db),
	}
}
