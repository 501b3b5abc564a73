package authctx

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/bson"
)

// Viewer is the per-request auth state every resolver consults. A request
// with a missing or bad token still gets a Viewer, just with IsAuth false.
type Viewer struct {
	IsAuth bool
	UserID bson.ObjectID
}

type ctxKey struct{}

func WithViewer(ctx context.Context, v Viewer) context.Context {
	return context.WithValue(ctx, ctxKey{}, v)
}

func ViewerFrom(ctx context.Context) Viewer {
	if v, ok := ctx.Value(ctxKey{}).(Viewer); ok {
		return v
	}
	return Viewer{}
}

// UserIDFrom reads the user id the JWT middleware stored in request locals.
func UserIDFrom(c *fiber.Ctx) (bson.ObjectID, bool) {
	if v := c.Locals("user_id"); v != nil {
		if s, ok := v.(string); ok {
			if oid, err := bson.ObjectIDFromHex(s); err == nil {
				return oid, true
			}
		}
	}
	return bson.ObjectID{}, false
}
