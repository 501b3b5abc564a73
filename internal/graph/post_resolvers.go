package graph

import (
	"context"
	"errors"

	graphql "github.com/graph-gophers/graphql-go"
	"go.mongodb.org/mongo-driver/v2/bson"

	"blogfeed/internal/repository"
	"blogfeed/model"
)

// perPage is the fixed feed page size.
const perPage = 2

type PostInput struct {
	Title    string
	Content  string
	ImageURL string
}

func validatePostInput(in PostInput) []FieldError {
	var fieldErrs []FieldError
	if !minLen(in.Title, 5) {
		fieldErrs = append(fieldErrs, FieldError{Message: "Title is invalid."})
	}
	if !minLen(in.Content, 5) {
		fieldErrs = append(fieldErrs, FieldError{Message: "Content is invalid."})
	}
	return fieldErrs
}

func (r *Resolver) CreatePost(ctx context.Context, args struct{ PostInput PostInput }) (*postResolver, error) {
	viewer, err := r.require(ctx, "createPost")
	if err != nil {
		return nil, err
	}

	if fieldErrs := validatePostInput(args.PostInput); len(fieldErrs) > 0 {
		return nil, errInvalid(fieldErrs)
	}

	if _, err := r.store.UserByID(ctx, viewer.UserID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, errUnauthenticated()
		}
		return nil, err
	}

	p := &model.Post{
		Title:     args.PostInput.Title,
		Content:   args.PostInput.Content,
		ImageURL:  args.PostInput.ImageURL,
		CreatorID: viewer.UserID,
	}
	if err := r.store.CreatePost(ctx, p); err != nil {
		return nil, err
	}
	return &postResolver{r: r, p: *p}, nil
}

func (r *Resolver) Posts(ctx context.Context, args struct{ Page *int32 }) (*postDataResolver, error) {
	if _, err := r.require(ctx, "posts"); err != nil {
		return nil, err
	}

	page := int64(1)
	if args.Page != nil && *args.Page > 0 {
		page = int64(*args.Page)
	}

	posts, total, err := r.store.Posts(ctx, page, perPage)
	if err != nil {
		return nil, err
	}

	out := make([]*postResolver, 0, len(posts))
	for _, p := range posts {
		out = append(out, &postResolver{r: r, p: p})
	}
	return &postDataResolver{posts: out, total: int32(total)}, nil
}

func (r *Resolver) Post(ctx context.Context, args struct{ ID graphql.ID }) (*postResolver, error) {
	if _, err := r.require(ctx, "post"); err != nil {
		return nil, err
	}

	p, err := r.postLookup(ctx, args.ID, "No post found!")
	if err != nil {
		return nil, err
	}
	return &postResolver{r: r, p: *p}, nil
}

func (r *Resolver) UpdatePost(ctx context.Context, args struct {
	ID        graphql.ID
	PostInput PostInput
}) (*postResolver, error) {
	viewer, err := r.require(ctx, "updatePost")
	if err != nil {
		return nil, err
	}

	p, err := r.postLookup(ctx, args.ID, "No post found!")
	if err != nil {
		return nil, err
	}
	if p.CreatorID != viewer.UserID {
		return nil, errNotAuthorized()
	}

	if fieldErrs := validatePostInput(args.PostInput); len(fieldErrs) > 0 {
		return nil, errInvalid(fieldErrs)
	}

	p.Title = args.PostInput.Title
	p.Content = args.PostInput.Content
	// the SPA sends the literal string "undefined" when the image is kept
	if args.PostInput.ImageURL != "undefined" {
		p.ImageURL = args.PostInput.ImageURL
	}

	if err := r.store.UpdatePost(ctx, p); err != nil {
		return nil, err
	}
	return &postResolver{r: r, p: *p}, nil
}

// DeletePost removes the post, its comments and its stored image.
func (r *Resolver) DeletePost(ctx context.Context, args struct{ ID graphql.ID }) (bool, error) {
	viewer, err := r.require(ctx, "deletePost")
	if err != nil {
		return false, err
	}

	p, err := r.postLookup(ctx, args.ID, "No post found!")
	if err != nil {
		return false, err
	}
	if p.CreatorID != viewer.UserID {
		return false, errNotAuthorized()
	}

	if err := r.images.Remove(p.ImageURL); err != nil {
		return false, err
	}
	if err := r.store.DeleteCommentsByPost(ctx, p.ID); err != nil {
		return false, err
	}
	if err := r.store.DeletePost(ctx, p.ID); err != nil {
		return false, err
	}
	return true, nil
}

// LikePost is idempotent: liking an already-liked post changes nothing.
func (r *Resolver) LikePost(ctx context.Context, args struct{ PostID graphql.ID }) (*postResolver, error) {
	viewer, err := r.require(ctx, "likePost")
	if err != nil {
		return nil, err
	}

	p, err := r.postLookup(ctx, args.PostID, "Post not found!")
	if err != nil {
		return nil, err
	}

	if err := r.store.AddLike(ctx, p.ID, viewer.UserID); err != nil {
		return nil, err
	}

	p, err = r.store.PostByID(ctx, p.ID)
	if err != nil {
		return nil, err
	}
	return &postResolver{r: r, p: *p}, nil
}

// UnlikePost is a no-op when the viewer had not liked the post.
func (r *Resolver) UnlikePost(ctx context.Context, args struct{ PostID graphql.ID }) (*postResolver, error) {
	viewer, err := r.require(ctx, "unlikePost")
	if err != nil {
		return nil, err
	}

	p, err := r.postLookup(ctx, args.PostID, "Post not found!")
	if err != nil {
		return nil, err
	}

	if err := r.store.RemoveLike(ctx, p.ID, viewer.UserID); err != nil {
		return nil, err
	}

	p, err = r.store.PostByID(ctx, p.ID)
	if err != nil {
		return nil, err
	}
	return &postResolver{r: r, p: *p}, nil
}

func (r *Resolver) postLookup(ctx context.Context, id graphql.ID, missing string) (*model.Post, error) {
	oid, err := bson.ObjectIDFromHex(string(id))
	if err != nil {
		return nil, errNotFound(missing)
	}
	p, err := r.store.PostByID(ctx, oid)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, errNotFound(missing)
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}
