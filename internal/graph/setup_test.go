package graph_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	graphql "github.com/graph-gophers/graphql-go"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"blogfeed/internal/auth"
	"blogfeed/internal/authctx"
	"blogfeed/internal/graph"
	"blogfeed/internal/memstore"
	"blogfeed/model"
)

// fakeImages records removed paths instead of touching disk.
type fakeImages struct {
	removed []string
}

func (f *fakeImages) Remove(path string) error {
	if path != "" {
		f.removed = append(f.removed, path)
	}
	return nil
}

type testEnv struct {
	store  *memstore.Store
	images *fakeImages
	tokens *auth.Service
	schema *graphql.Schema
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	env := &testEnv{
		store:  memstore.New(),
		images: &fakeImages{},
		tokens: auth.NewService([]byte("test-secret"), time.Hour),
	}
	env.schema = graph.NewSchema(graph.New(env.store, env.images, env.tokens))
	return env
}

// addUser inserts a user directly into the store. The password hash is only
// valid for login tests that use hashFor.
func (env *testEnv) addUser(t *testing.T, name, email, role string) model.User {
	t.Helper()
	u := model.User{
		Name:         name,
		Email:        email,
		PasswordHash: "not-a-real-hash",
		Status:       "I am new!",
		Role:         role,
	}
	require.NoError(t, env.store.CreateUser(context.Background(), &u))
	return u
}

func (env *testEnv) addPost(t *testing.T, creator bson.ObjectID, title string) model.Post {
	t.Helper()
	p := model.Post{
		Title:     title,
		Content:   "content of " + title,
		ImageURL:  "images/" + title + ".png",
		CreatorID: creator,
	}
	require.NoError(t, env.store.CreatePost(context.Background(), &p))
	return p
}

func (env *testEnv) addComment(t *testing.T, post, creator bson.ObjectID, content string) model.Comment {
	t.Helper()
	c := model.Comment{Content: content, PostID: post, CreatorID: creator}
	require.NoError(t, env.store.CreateComment(context.Background(), &c))
	return c
}

func anonCtx() context.Context {
	return authctx.WithViewer(context.Background(), authctx.Viewer{})
}

func viewerCtx(id bson.ObjectID) context.Context {
	return authctx.WithViewer(context.Background(), authctx.Viewer{IsAuth: true, UserID: id})
}

// exec runs a query and requires it to succeed, decoding data into out.
func (env *testEnv) exec(t *testing.T, ctx context.Context, query string, vars map[string]interface{}, out interface{}) {
	t.Helper()
	resp := env.schema.Exec(ctx, query, "", vars)
	require.Empty(t, resp.Errors, "unexpected errors: %+v", resp.Errors)
	if out != nil {
		require.NoError(t, json.Unmarshal(resp.Data, out))
	}
}

// execErr runs a query and requires exactly one resolver error, returned as
// *graph.Error.
func (env *testEnv) execErr(t *testing.T, ctx context.Context, query string, vars map[string]interface{}) *graph.Error {
	t.Helper()
	resp := env.schema.Exec(ctx, query, "", vars)
	require.Len(t, resp.Errors, 1)

	var appErr *graph.Error
	require.ErrorAs(t, resp.Errors[0].ResolverError, &appErr,
		"resolver error is not *graph.Error: %v", resp.Errors[0])
	return appErr
}

func fieldMessages(data []graph.FieldError) []string {
	out := make([]string, 0, len(data))
	for _, fe := range data {
		out = append(out, fe.Message)
	}
	return out
}
