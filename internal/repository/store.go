package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"

	"blogfeed/model"
)

var (
	ErrNotFound   = errors.New("not found")
	ErrEmailTaken = errors.New("email already taken")
)

type UserStore interface {
	CreateUser(ctx context.Context, u *model.User) error
	UserByID(ctx context.Context, id bson.ObjectID) (*model.User, error)
	UserByEmail(ctx context.Context, email string) (*model.User, error)
	UsersByIDs(ctx context.Context, ids []bson.ObjectID) ([]model.User, error)
	Users(ctx context.Context) ([]model.User, error)
	UpdateUser(ctx context.Context, u *model.User) error
	DeleteUser(ctx context.Context, id bson.ObjectID) error
}

type PostStore interface {
	CreatePost(ctx context.Context, p *model.Post) error
	PostByID(ctx context.Context, id bson.ObjectID) (*model.Post, error)
	// Posts returns one page of posts ordered by creation time descending,
	// plus the unfiltered total count.
	Posts(ctx context.Context, page, perPage int64) ([]model.Post, int64, error)
	PostsByCreator(ctx context.Context, creatorID bson.ObjectID) ([]model.Post, error)
	UpdatePost(ctx context.Context, p *model.Post) error
	DeletePost(ctx context.Context, id bson.ObjectID) error
	AddLike(ctx context.Context, postID, userID bson.ObjectID) error
	RemoveLike(ctx context.Context, postID, userID bson.ObjectID) error
	RemoveLikesByUser(ctx context.Context, userID bson.ObjectID) error
}

type CommentStore interface {
	CreateComment(ctx context.Context, c *model.Comment) error
	CommentByID(ctx context.Context, id bson.ObjectID) (*model.Comment, error)
	// CommentsByPost returns the post's comments, newest first.
	CommentsByPost(ctx context.Context, postID bson.ObjectID) ([]model.Comment, error)
	CountByPost(ctx context.Context, postID bson.ObjectID) (int64, error)
	UpdateComment(ctx context.Context, c *model.Comment) error
	DeleteComment(ctx context.Context, id bson.ObjectID) error
	DeleteCommentsByPost(ctx context.Context, postID bson.ObjectID) error
	DeleteCommentsByCreator(ctx context.Context, creatorID bson.ObjectID) error
}

// Store is what the resolver layer depends on.
type Store interface {
	UserStore
	PostStore
	CommentStore
}
