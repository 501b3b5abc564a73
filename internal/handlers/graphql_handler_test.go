package handlers

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"blogfeed/dto"
	"blogfeed/internal/auth"
	"blogfeed/internal/graph"
	"blogfeed/internal/memstore"
	"blogfeed/internal/middleware"
)

type noImages struct{}

func (noImages) Remove(string) error { return nil }

func newGraphQLApp() *fiber.App {
	tokens := auth.NewService([]byte("test-secret"), time.Hour)
	schema := graph.NewSchema(graph.New(memstore.New(), noImages{}, tokens))

	app := fiber.New()
	app.Use(middleware.BearerAuth(tokens))
	app.Post("/graphql", GraphQL(schema))
	return app
}

func postJSON(t *testing.T, app *fiber.App, body string) (int, dto.GraphQLResponse) {
	t.Helper()
	req := httptest.NewRequest("POST", "/graphql", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var out dto.GraphQLResponse
	require.NoError(t, json.Unmarshal(raw, &out), "body: %s", raw)
	return resp.StatusCode, out
}

func TestGraphQLInvalidBody(t *testing.T) {
	app := newGraphQLApp()
	req := httptest.NewRequest("POST", "/graphql", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestGraphQLValidationErrorShape(t *testing.T) {
	app := newGraphQLApp()

	query := `mutation {
		createUser(userInput: {email: "bad", name: "", password: "abc"}) { id }
	}`
	body, err := json.Marshal(dto.GraphQLRequest{Query: query})
	require.NoError(t, err)

	status, out := postJSON(t, app, string(body))
	require.Equal(t, 200, status)
	require.Len(t, out.Errors, 1)
	require.Equal(t, "Invalid input.", out.Errors[0].Message)
	require.Equal(t, 422, out.Errors[0].Status)

	raw, err := json.Marshal(out.Errors[0].Data)
	require.NoError(t, err)
	require.Contains(t, string(raw), "Password too short!")
}

func TestGraphQLUnauthenticatedErrorShape(t *testing.T) {
	app := newGraphQLApp()

	body, err := json.Marshal(dto.GraphQLRequest{Query: `{ user { id } }`})
	require.NoError(t, err)

	status, out := postJSON(t, app, string(body))
	require.Equal(t, 200, status)
	require.Len(t, out.Errors, 1)
	require.Equal(t, "Not authenticated!", out.Errors[0].Message)
	require.Equal(t, 401, out.Errors[0].Status)
}

func TestGraphQLDataSuccess(t *testing.T) {
	app := newGraphQLApp()

	query := `mutation {
		createUser(userInput: {email: "alice@example.com", name: "Alice", password: "secret"}) {
			id name status
		}
	}`
	body, err := json.Marshal(dto.GraphQLRequest{Query: query})
	require.NoError(t, err)

	status, out := postJSON(t, app, string(body))
	require.Equal(t, 200, status)
	require.Empty(t, out.Errors)

	var data struct {
		CreateUser struct {
			Name   string `json:"name"`
			Status string `json:"status"`
		} `json:"createUser"`
	}
	require.NoError(t, json.Unmarshal(out.Data, &data))
	require.Equal(t, "Alice", data.CreateUser.Name)
	require.Equal(t, "I am new!", data.CreateUser.Status)
}
