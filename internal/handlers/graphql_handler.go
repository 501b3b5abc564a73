package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	graphql "github.com/graph-gophers/graphql-go"

	"blogfeed/dto"
	"blogfeed/internal/authctx"
	"blogfeed/internal/graph"
)

// GraphQL executes a query against the schema with the request's auth state
// attached and re-shapes execution errors into {message, status, data}.
func GraphQL(schema *graphql.Schema) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req dto.GraphQLRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "invalid body"})
		}

		viewer := authctx.Viewer{}
		if uid, ok := authctx.UserIDFrom(c); ok {
			viewer = authctx.Viewer{IsAuth: true, UserID: uid}
		}
		ctx := authctx.WithViewer(c.UserContext(), viewer)

		resp := schema.Exec(ctx, req.Query, req.OperationName, req.Variables)

		out := dto.GraphQLResponse{Data: resp.Data}
		for _, qe := range resp.Errors {
			we := dto.GraphQLError{Message: qe.Message, Status: fiber.StatusInternalServerError}
			var appErr *graph.Error
			if errors.As(qe.ResolverError, &appErr) {
				we.Message = appErr.Message
				we.Status = appErr.Status
				if len(appErr.Data) > 0 {
					we.Data = appErr.Data
				}
			}
			out.Errors = append(out.Errors, we)
		}
		return c.JSON(out)
	}
}
