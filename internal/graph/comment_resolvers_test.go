package graph_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"blogfeed/model"
)

const addCommentQuery = `mutation($postId: ID!, $content: String!) {
	addComment(commentInput: {postId: $postId, content: $content}) {
		id content creator { id name }
	}
}`

func TestAddComment(t *testing.T) {
	env := newTestEnv(t)
	alice := env.addUser(t, "Alice", "alice@example.com", model.RoleUser)
	bob := env.addUser(t, "Bob", "bob@example.com", model.RoleUser)
	p := env.addPost(t, alice.ID, "commentable")

	var out struct {
		AddComment struct {
			ID      string `json:"id"`
			Content string `json:"content"`
			Creator struct {
				ID string `json:"id"`
			} `json:"creator"`
		} `json:"addComment"`
	}
	env.exec(t, viewerCtx(bob.ID), addCommentQuery, map[string]interface{}{
		"postId": p.ID.Hex(), "content": "great read",
	}, &out)

	require.Equal(t, "great read", out.AddComment.Content)
	require.Equal(t, bob.ID.Hex(), out.AddComment.Creator.ID)

	n, err := env.store.CountByPost(anonCtx(), p.ID)
	require.NoError(t, err)
	require.EqualValues(t, 1, n)
}

func TestAddCommentEmptyContent(t *testing.T) {
	env := newTestEnv(t)
	alice := env.addUser(t, "Alice", "alice@example.com", model.RoleUser)
	p := env.addPost(t, alice.ID, "commentable")

	appErr := env.execErr(t, viewerCtx(alice.ID), addCommentQuery, map[string]interface{}{
		"postId": p.ID.Hex(), "content": "   ",
	})
	require.Equal(t, "Comment cannot be empty!", appErr.Message)
	require.Equal(t, 422, appErr.Status)
}

func TestAddCommentMissingPost(t *testing.T) {
	env := newTestEnv(t)
	alice := env.addUser(t, "Alice", "alice@example.com", model.RoleUser)

	appErr := env.execErr(t, viewerCtx(alice.ID), addCommentQuery, map[string]interface{}{
		"postId": "64f0c34b2a3c4d5e6f708091", "content": "hello?",
	})
	require.Equal(t, "Post not found!", appErr.Message)
	require.Equal(t, 404, appErr.Status)
}

func TestUpdateCommentOwnership(t *testing.T) {
	env := newTestEnv(t)
	alice := env.addUser(t, "Alice", "alice@example.com", model.RoleUser)
	bob := env.addUser(t, "Bob", "bob@example.com", model.RoleUser)
	p := env.addPost(t, alice.ID, "commentable")
	c := env.addComment(t, p.ID, bob.ID, "original comment")

	query := fmt.Sprintf(`mutation { updateComment(commentId: %q, content: "edited") { content } }`, c.ID.Hex())

	appErr := env.execErr(t, viewerCtx(alice.ID), query, nil)
	require.Equal(t, "Not authorized!", appErr.Message)

	var out struct {
		UpdateComment struct {
			Content string `json:"content"`
		} `json:"updateComment"`
	}
	env.exec(t, viewerCtx(bob.ID), query, nil, &out)
	require.Equal(t, "edited", out.UpdateComment.Content)
}

func TestDeleteCommentDecrementsCount(t *testing.T) {
	env := newTestEnv(t)
	alice := env.addUser(t, "Alice", "alice@example.com", model.RoleUser)
	bob := env.addUser(t, "Bob", "bob@example.com", model.RoleUser)
	p := env.addPost(t, alice.ID, "commentable")
	c1 := env.addComment(t, p.ID, bob.ID, "first")
	env.addComment(t, p.ID, bob.ID, "second")

	postQuery := fmt.Sprintf(`{ post(id: %q) { commentsCount comments { id } } }`, p.ID.Hex())
	var out struct {
		Post struct {
			CommentsCount int `json:"commentsCount"`
			Comments      []struct {
				ID string `json:"id"`
			} `json:"comments"`
		} `json:"post"`
	}
	env.exec(t, viewerCtx(alice.ID), postQuery, nil, &out)
	require.Equal(t, 2, out.Post.CommentsCount)

	appErr := env.execErr(t, viewerCtx(alice.ID),
		fmt.Sprintf(`mutation { deleteComment(commentId: %q) }`, c1.ID.Hex()), nil)
	require.Equal(t, "Not authorized!", appErr.Message)

	var del struct {
		DeleteComment bool `json:"deleteComment"`
	}
	env.exec(t, viewerCtx(bob.ID),
		fmt.Sprintf(`mutation { deleteComment(commentId: %q) }`, c1.ID.Hex()), nil, &del)
	require.True(t, del.DeleteComment)

	env.exec(t, viewerCtx(alice.ID), postQuery, nil, &out)
	require.Equal(t, 1, out.Post.CommentsCount)
	for _, c := range out.Post.Comments {
		require.NotEqual(t, c1.ID.Hex(), c.ID)
	}
}

func TestCommentCreatorNullableAfterUserGone(t *testing.T) {
	env := newTestEnv(t)
	alice := env.addUser(t, "Alice", "alice@example.com", model.RoleUser)
	ghost := env.addUser(t, "Ghost", "ghost@example.com", model.RoleUser)
	p := env.addPost(t, alice.ID, "haunted")
	env.addComment(t, p.ID, ghost.ID, "boo")

	require.NoError(t, env.store.DeleteUser(anonCtx(), ghost.ID))

	var out struct {
		Post struct {
			Comments []struct {
				Content string `json:"content"`
				Creator *struct {
					ID string `json:"id"`
				} `json:"creator"`
			} `json:"comments"`
		} `json:"post"`
	}
	env.exec(t, viewerCtx(alice.ID),
		fmt.Sprintf(`{ post(id: %q) { comments { content creator { id } } } }`, p.ID.Hex()), nil, &out)
	require.Len(t, out.Post.Comments, 1)
	require.Nil(t, out.Post.Comments[0].Creator)
}
