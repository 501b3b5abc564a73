// Package graph implements the GraphQL resolver layer: one method per
// schema operation, validating input, enforcing the authorization policy
// and shaping store records into the response types.
package graph

import (
	"time"

	"blogfeed/internal/auth"
	"blogfeed/internal/repository"
)

// ImageRemover deletes a stored post image by its relative path.
type ImageRemover interface {
	Remove(path string) error
}

// Resolver is the root resolver for all queries and mutations.
type Resolver struct {
	store  repository.Store
	images ImageRemover
	tokens *auth.Service
}

func New(store repository.Store, images ImageRemover, tokens *auth.Service) *Resolver {
	return &Resolver{store: store, images: images, tokens: tokens}
}

// isoTime renders timestamps the way the SPA expects them.
func isoTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
