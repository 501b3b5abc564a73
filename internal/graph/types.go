package graph

import (
	"context"
	"errors"

	graphql "github.com/graph-gophers/graphql-go"

	"blogfeed/internal/repository"
	"blogfeed/model"
)

type userResolver struct {
	r *Resolver
	u model.User
}

func (ur *userResolver) ID() graphql.ID { return graphql.ID(ur.u.ID.Hex()) }
func (ur *userResolver) Name() string   { return ur.u.Name }
func (ur *userResolver) Email() string  { return ur.u.Email }
func (ur *userResolver) Status() string { return ur.u.Status }
func (ur *userResolver) Role() string   { return ur.u.Role }

// Posts is derived by querying the posts collection; the user document does
// not keep an owned-post array.
func (ur *userResolver) Posts(ctx context.Context) ([]*postResolver, error) {
	posts, err := ur.r.store.PostsByCreator(ctx, ur.u.ID)
	if err != nil {
		return nil, err
	}
	out := make([]*postResolver, 0, len(posts))
	for _, p := range posts {
		out = append(out, &postResolver{r: ur.r, p: p})
	}
	return out, nil
}

type postResolver struct {
	r *Resolver
	p model.Post
}

func (pr *postResolver) ID() graphql.ID    { return graphql.ID(pr.p.ID.Hex()) }
func (pr *postResolver) Title() string     { return pr.p.Title }
func (pr *postResolver) Content() string   { return pr.p.Content }
func (pr *postResolver) ImageURL() string  { return pr.p.ImageURL }
func (pr *postResolver) CreatedAt() string { return isoTime(pr.p.CreatedAt) }
func (pr *postResolver) UpdatedAt() string { return isoTime(pr.p.UpdatedAt) }

func (pr *postResolver) Creator(ctx context.Context) (*userResolver, error) {
	u, err := pr.r.store.UserByID(ctx, pr.p.CreatorID)
	if err != nil {
		return nil, err
	}
	return &userResolver{r: pr.r, u: *u}, nil
}

func (pr *postResolver) Likes(ctx context.Context) ([]*userResolver, error) {
	users, err := pr.r.store.UsersByIDs(ctx, pr.p.Likes)
	if err != nil {
		return nil, err
	}
	out := make([]*userResolver, 0, len(users))
	for _, u := range users {
		out = append(out, &userResolver{r: pr.r, u: u})
	}
	return out, nil
}

func (pr *postResolver) LikesCount() int32 { return int32(len(pr.p.Likes)) }

func (pr *postResolver) Comments(ctx context.Context) ([]*commentResolver, error) {
	comments, err := pr.r.store.CommentsByPost(ctx, pr.p.ID)
	if err != nil {
		return nil, err
	}
	out := make([]*commentResolver, 0, len(comments))
	for _, c := range comments {
		out = append(out, &commentResolver{r: pr.r, c: c})
	}
	return out, nil
}

func (pr *postResolver) CommentsCount(ctx context.Context) (int32, error) {
	n, err := pr.r.store.CountByPost(ctx, pr.p.ID)
	if err != nil {
		return 0, err
	}
	return int32(n), nil
}

type commentResolver struct {
	r *Resolver
	c model.Comment
}

func (cr *commentResolver) ID() graphql.ID    { return graphql.ID(cr.c.ID.Hex()) }
func (cr *commentResolver) Content() string   { return cr.c.Content }
func (cr *commentResolver) CreatedAt() string { return isoTime(cr.c.CreatedAt) }

// Creator is nullable: the comment survives its author's deletion.
func (cr *commentResolver) Creator(ctx context.Context) (*userResolver, error) {
	u, err := cr.r.store.UserByID(ctx, cr.c.CreatorID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &userResolver{r: cr.r, u: *u}, nil
}

func (cr *commentResolver) Post(ctx context.Context) (*postResolver, error) {
	p, err := cr.r.store.PostByID(ctx, cr.c.PostID)
	if err != nil {
		return nil, err
	}
	return &postResolver{r: cr.r, p: *p}, nil
}

type authDataResolver struct {
	token  string
	userID string
}

func (ar *authDataResolver) Token() string  { return ar.token }
func (ar *authDataResolver) UserID() string { return ar.userID }

type postDataResolver struct {
	posts []*postResolver
	total int32
}

func (pd *postDataResolver) Posts() []*postResolver { return pd.posts }
func (pd *postDataResolver) TotalPosts() int32      { return pd.total }
