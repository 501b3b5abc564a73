package graph

import (
	"context"
	"errors"

	graphql "github.com/graph-gophers/graphql-go"
	"go.mongodb.org/mongo-driver/v2/bson"

	"blogfeed/internal/repository"
	"blogfeed/model"
)

type CommentInput struct {
	Content string
	PostID  graphql.ID
}

func (r *Resolver) AddComment(ctx context.Context, args struct{ CommentInput CommentInput }) (*commentResolver, error) {
	viewer, err := r.require(ctx, "addComment")
	if err != nil {
		return nil, err
	}

	if blank(args.CommentInput.Content) {
		return nil, errUnprocessable("Comment cannot be empty!")
	}

	p, err := r.postLookup(ctx, args.CommentInput.PostID, "Post not found!")
	if err != nil {
		return nil, err
	}
	if _, err := r.store.UserByID(ctx, viewer.UserID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, errNotFound("User not found!")
		}
		return nil, err
	}

	c := &model.Comment{
		Content:   args.CommentInput.Content,
		PostID:    p.ID,
		CreatorID: viewer.UserID,
	}
	if err := r.store.CreateComment(ctx, c); err != nil {
		return nil, err
	}
	return &commentResolver{r: r, c: *c}, nil
}

func (r *Resolver) UpdateComment(ctx context.Context, args struct {
	CommentID graphql.ID
	Content   string
}) (*commentResolver, error) {
	viewer, err := r.require(ctx, "updateComment")
	if err != nil {
		return nil, err
	}

	if blank(args.Content) {
		return nil, errUnprocessable("Comment cannot be empty!")
	}

	c, err := r.commentLookup(ctx, args.CommentID)
	if err != nil {
		return nil, err
	}
	if c.CreatorID != viewer.UserID {
		return nil, errNotAuthorized()
	}

	c.Content = args.Content
	if err := r.store.UpdateComment(ctx, c); err != nil {
		return nil, err
	}
	return &commentResolver{r: r, c: *c}, nil
}

func (r *Resolver) DeleteComment(ctx context.Context, args struct{ CommentID graphql.ID }) (bool, error) {
	viewer, err := r.require(ctx, "deleteComment")
	if err != nil {
		return false, err
	}

	c, err := r.commentLookup(ctx, args.CommentID)
	if err != nil {
		return false, err
	}
	if c.CreatorID != viewer.UserID {
		return false, errNotAuthorized()
	}

	if err := r.store.DeleteComment(ctx, c.ID); err != nil {
		return false, err
	}
	return true, nil
}

func (r *Resolver) commentLookup(ctx context.Context, id graphql.ID) (*model.Comment, error) {
	oid, err := bson.ObjectIDFromHex(string(id))
	if err != nil {
		return nil, errNotFound("Comment not found!")
	}
	c, err := r.store.CommentByID(ctx, oid)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, errNotFound("Comment not found!")
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}
