package graph

import (
	"context"
	"errors"

	graphql "github.com/graph-gophers/graphql-go"
	"go.mongodb.org/mongo-driver/v2/bson"

	"blogfeed/internal/auth"
	"blogfeed/internal/repository"
	"blogfeed/model"
)

type UserInput struct {
	Email    string
	Name     string
	Password string
}

type UserUpdate struct {
	Name   string
	Status string
}

func (r *Resolver) CreateUser(ctx context.Context, args struct{ UserInput UserInput }) (*userResolver, error) {
	if _, err := r.require(ctx, "createUser"); err != nil {
		return nil, err
	}

	var fieldErrs []FieldError
	if !validEmail(args.UserInput.Email) {
		fieldErrs = append(fieldErrs, FieldError{Message: "E-Mail is invalid."})
	}
	if !minLen(args.UserInput.Password, 5) {
		fieldErrs = append(fieldErrs, FieldError{Message: "Password too short!"})
	}
	if blank(args.UserInput.Name) {
		fieldErrs = append(fieldErrs, FieldError{Message: "Name is required."})
	}
	if len(fieldErrs) > 0 {
		return nil, errInvalid(fieldErrs)
	}

	if _, err := r.store.UserByEmail(ctx, args.UserInput.Email); err == nil {
		return nil, errUnprocessable("User exists already!")
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	hash, err := auth.HashPassword(args.UserInput.Password)
	if err != nil {
		return nil, err
	}

	u := &model.User{
		Name:         args.UserInput.Name,
		Email:        args.UserInput.Email,
		PasswordHash: hash,
		Status:       "I am new!",
		Role:         model.RoleUser,
	}
	if err := r.store.CreateUser(ctx, u); err != nil {
		if errors.Is(err, repository.ErrEmailTaken) {
			return nil, errUnprocessable("User exists already!")
		}
		return nil, err
	}
	return &userResolver{r: r, u: *u}, nil
}

func (r *Resolver) Login(ctx context.Context, args struct{ Email, Password string }) (*authDataResolver, error) {
	u, err := r.store.UserByEmail(ctx, args.Email)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, errUnauthorizedMsg("User not found.")
	}
	if err != nil {
		return nil, err
	}

	if !auth.CheckPassword(u.PasswordHash, args.Password) {
		return nil, errUnauthorizedMsg("Password is incorrect.")
	}

	token, err := r.tokens.Issue(u.ID.Hex(), u.Email)
	if err != nil {
		return nil, err
	}
	return &authDataResolver{token: token, userID: u.ID.Hex()}, nil
}

func (r *Resolver) User(ctx context.Context) (*userResolver, error) {
	viewer, err := r.require(ctx, "user")
	if err != nil {
		return nil, err
	}

	u, err := r.store.UserByID(ctx, viewer.UserID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, errNotFound("No user found!")
	}
	if err != nil {
		return nil, err
	}
	return &userResolver{r: r, u: *u}, nil
}

func (r *Resolver) UpdateStatus(ctx context.Context, args struct{ Status string }) (*userResolver, error) {
	viewer, err := r.require(ctx, "updateStatus")
	if err != nil {
		return nil, err
	}

	u, err := r.store.UserByID(ctx, viewer.UserID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, errNotFound("No user found!")
	}
	if err != nil {
		return nil, err
	}

	u.Status = args.Status
	if err := r.store.UpdateUser(ctx, u); err != nil {
		return nil, err
	}
	return &userResolver{r: r, u: *u}, nil
}

func (r *Resolver) Users(ctx context.Context) ([]*userResolver, error) {
	if _, err := r.require(ctx, "users"); err != nil {
		return nil, err
	}

	users, err := r.store.Users(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*userResolver, 0, len(users))
	for _, u := range users {
		out = append(out, &userResolver{r: r, u: u})
	}
	return out, nil
}

func (r *Resolver) UserByID(ctx context.Context, args struct{ ID graphql.ID }) (*userResolver, error) {
	if _, err := r.require(ctx, "userById"); err != nil {
		return nil, err
	}

	u, err := r.userLookup(ctx, args.ID)
	if err != nil {
		return nil, err
	}
	return &userResolver{r: r, u: *u}, nil
}

func (r *Resolver) MakeAdmin(ctx context.Context, args struct{ UserID graphql.ID }) (*userResolver, error) {
	if _, err := r.require(ctx, "makeAdmin"); err != nil {
		return nil, err
	}

	u, err := r.userLookup(ctx, args.UserID)
	if err != nil {
		return nil, err
	}

	u.Role = model.RoleAdmin
	if err := r.store.UpdateUser(ctx, u); err != nil {
		return nil, err
	}
	return &userResolver{r: r, u: *u}, nil
}

func (r *Resolver) UpdateUser(ctx context.Context, args struct {
	UserID    graphql.ID
	UserInput UserUpdate
}) (*userResolver, error) {
	viewer, err := r.require(ctx, "updateUser")
	if err != nil {
		return nil, err
	}

	u, err := r.userLookup(ctx, args.UserID)
	if err != nil {
		return nil, err
	}

	// self-service or admin
	if u.ID != viewer.UserID {
		caller, err := r.store.UserByID(ctx, viewer.UserID)
		if err != nil || !caller.IsAdmin() {
			return nil, errNotAuthorized()
		}
	}

	if blank(args.UserInput.Name) {
		return nil, errInvalid([]FieldError{{Message: "Name is required."}})
	}

	u.Name = args.UserInput.Name
	u.Status = args.UserInput.Status
	if err := r.store.UpdateUser(ctx, u); err != nil {
		return nil, err
	}
	return &userResolver{r: r, u: *u}, nil
}

// DeleteUser removes the user and everything they own: their posts with
// images and comment threads, their comments on other posts, and their
// likes everywhere.
func (r *Resolver) DeleteUser(ctx context.Context, args struct{ UserID graphql.ID }) (bool, error) {
	if _, err := r.require(ctx, "deleteUser"); err != nil {
		return false, err
	}

	u, err := r.userLookup(ctx, args.UserID)
	if err != nil {
		return false, err
	}

	posts, err := r.store.PostsByCreator(ctx, u.ID)
	if err != nil {
		return false, err
	}
	for _, p := range posts {
		if err := r.images.Remove(p.ImageURL); err != nil {
			return false, err
		}
		if err := r.store.DeleteCommentsByPost(ctx, p.ID); err != nil {
			return false, err
		}
		if err := r.store.DeletePost(ctx, p.ID); err != nil && !errors.Is(err, repository.ErrNotFound) {
			return false, err
		}
	}

	if err := r.store.DeleteCommentsByCreator(ctx, u.ID); err != nil {
		return false, err
	}
	if err := r.store.RemoveLikesByUser(ctx, u.ID); err != nil {
		return false, err
	}
	if err := r.store.DeleteUser(ctx, u.ID); err != nil {
		return false, err
	}
	return true, nil
}

func (r *Resolver) userLookup(ctx context.Context, id graphql.ID) (*model.User, error) {
	oid, err := bson.ObjectIDFromHex(string(id))
	if err != nil {
		return nil, errNotFound("No user found!")
	}
	u, err := r.store.UserByID(ctx, oid)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, errNotFound("No user found!")
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}
