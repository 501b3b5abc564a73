package graph

import (
	"context"

	"blogfeed/internal/authctx"
	"blogfeed/model"
)

// Capability is what an operation demands of the caller.
type Capability int

const (
	// Public operations run for anonymous callers.
	Public Capability = iota
	// Authenticated operations need a valid bearer token.
	Authenticated
	// Admin operations additionally need the admin role.
	Admin
)

// policy is the declarative per-operation authorization table. Resolvers do
// a single require() lookup instead of repeating inline auth checks.
// Operations missing from the table fail closed.
var policy = map[string]Capability{
	"createUser": Public,
	"login":      Public,

	"user":          Authenticated,
	"posts":         Authenticated,
	"post":          Authenticated,
	"updateStatus":  Authenticated,
	"createPost":    Authenticated,
	"updatePost":    Authenticated,
	"deletePost":    Authenticated,
	"addComment":    Authenticated,
	"updateComment": Authenticated,
	"deleteComment": Authenticated,
	"likePost":      Authenticated,
	"unlikePost":    Authenticated,
	"updateUser":    Authenticated, // self-or-admin, checked in the resolver

	"users":      Admin,
	"userById":   Admin,
	"makeAdmin":  Admin,
	"deleteUser": Admin,
}

// require enforces the policy table entry for op and returns the viewer.
func (r *Resolver) require(ctx context.Context, op string) (authctx.Viewer, error) {
	viewer := authctx.ViewerFrom(ctx)

	cap, ok := policy[op]
	if !ok {
		return viewer, errNotAuthorized()
	}
	if cap == Public {
		return viewer, nil
	}
	if !viewer.IsAuth {
		return viewer, errUnauthenticated()
	}
	if cap == Admin {
		u, err := r.store.UserByID(ctx, viewer.UserID)
		if err != nil || u.Role != model.RoleAdmin {
			return viewer, errNotAuthorized()
		}
	}
	return viewer, nil
}
