// Package client is a typed Go client for the blogfeed GraphQL API. It
// covers the same operations the single-page frontend performs: auth, the
// paginated feed, post and comment mutations, likes, and image upload.
package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
)

// Doer executes an HTTP request. *http.Client satisfies it; tests inject an
// in-process Fiber app instead.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

type Client struct {
	baseURL string
	doer    Doer
	token   string
}

type Option func(*Client)

func WithDoer(d Doer) Option {
	return func(c *Client) { c.doer = d }
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		doer:    http.DefaultClient,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetToken sets the bearer token sent with subsequent requests. Login calls
// it automatically.
func (c *Client) SetToken(token string) { c.token = token }

// APIError is a failed operation: one entry of the response errors list.
type APIError struct {
	Message string       `json:"message"`
	Status  int          `json:"status"`
	Data    []FieldError `json:"data,omitempty"`
}

type FieldError struct {
	Message string `json:"message"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s (status %d)", e.Message, e.Status)
}

type User struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Status string `json:"status"`
	Role   string `json:"role"`
	Posts  []Post `json:"posts"`
}

type Post struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Content       string    `json:"content"`
	ImageURL      string    `json:"imageUrl"`
	Creator       *User     `json:"creator"`
	CreatedAt     string    `json:"createdAt"`
	UpdatedAt     string    `json:"updatedAt"`
	Likes         []User    `json:"likes"`
	LikesCount    int       `json:"likesCount"`
	Comments      []Comment `json:"comments"`
	CommentsCount int       `json:"commentsCount"`
}

type Comment struct {
	ID        string `json:"id"`
	Content   string `json:"content"`
	Creator   *User  `json:"creator"`
	CreatedAt string `json:"createdAt"`
}

type AuthData struct {
	Token  string `json:"token"`
	UserID string `json:"userId"`
}

type Feed struct {
	Posts      []Post `json:"posts"`
	TotalPosts int    `json:"totalPosts"`
}

type gqlRequest struct {
	Query     string                 `json:"query"`
	Variables map[string]interface{} `json:"variables,omitempty"`
}

type gqlResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors []APIError      `json:"errors"`
}

func (c *Client) do(query string, vars map[string]interface{}, out interface{}) error {
	body, err := json.Marshal(gqlRequest{Query: query, Variables: vars})
	if err != nil {
		return err
	}

	req, err := http.NewRequest(http.MethodPost, c.baseURL+"/graphql", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.doer.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	var gr gqlResponse
	if err := json.NewDecoder(resp.Body).Decode(&gr); err != nil {
		return err
	}
	if len(gr.Errors) > 0 {
		return &gr.Errors[0]
	}
	if out != nil {
		return json.Unmarshal(gr.Data, out)
	}
	return nil
}

const userFields = `id name email status role`

const postFields = `
	id
	title
	content
	imageUrl
	creator { id name email status role }
	createdAt
	updatedAt
	likes { id name }
	likesCount
	comments { id content createdAt creator { id name email } }
	commentsCount
`

func (c *Client) Signup(email, name, password string) (*User, error) {
	var out struct {
		CreateUser User `json:"createUser"`
	}
	query := `mutation($email: String!, $name: String!, $password: String!) {
		createUser(userInput: {email: $email, name: $name, password: $password}) {` + userFields + `}
	}`
	err := c.do(query, map[string]interface{}{
		"email": email, "name": name, "password": password,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out.CreateUser, nil
}

// Login authenticates and keeps the returned token for later calls.
func (c *Client) Login(email, password string) (*AuthData, error) {
	var out struct {
		Login AuthData `json:"login"`
	}
	query := `query($email: String!, $password: String!) {
		login(email: $email, password: $password) { token userId }
	}`
	err := c.do(query, map[string]interface{}{"email": email, "password": password}, &out)
	if err != nil {
		return nil, err
	}
	c.token = out.Login.Token
	return &out.Login, nil
}

func (c *Client) User() (*User, error) {
	var out struct {
		User User `json:"user"`
	}
	err := c.do(`{ user {`+userFields+`} }`, nil, &out)
	if err != nil {
		return nil, err
	}
	return &out.User, nil
}

func (c *Client) UpdateStatus(status string) (*User, error) {
	var out struct {
		UpdateStatus User `json:"updateStatus"`
	}
	query := `mutation($status: String!) { updateStatus(status: $status) {` + userFields + `} }`
	err := c.do(query, map[string]interface{}{"status": status}, &out)
	if err != nil {
		return nil, err
	}
	return &out.UpdateStatus, nil
}

// Posts fetches one feed page (newest first) plus the total post count.
func (c *Client) Posts(page int) (*Feed, error) {
	var out struct {
		Posts Feed `json:"posts"`
	}
	query := `query($page: Int) { posts(page: $page) { posts {` + postFields + `} totalPosts } }`
	err := c.do(query, map[string]interface{}{"page": page}, &out)
	if err != nil {
		return nil, err
	}
	return &out.Posts, nil
}

func (c *Client) Post(id string) (*Post, error) {
	var out struct {
		Post Post `json:"post"`
	}
	query := `query($id: ID!) { post(id: $id) {` + postFields + `} }`
	err := c.do(query, map[string]interface{}{"id": id}, &out)
	if err != nil {
		return nil, err
	}
	return &out.Post, nil
}

func (c *Client) CreatePost(title, content, imageURL string) (*Post, error) {
	var out struct {
		CreatePost Post `json:"createPost"`
	}
	query := `mutation($title: String!, $content: String!, $imageUrl: String!) {
		createPost(postInput: {title: $title, content: $content, imageUrl: $imageUrl}) {` + postFields + `}
	}`
	err := c.do(query, map[string]interface{}{
		"title": title, "content": content, "imageUrl": imageURL,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out.CreatePost, nil
}

func (c *Client) UpdatePost(id, title, content, imageURL string) (*Post, error) {
	var out struct {
		UpdatePost Post `json:"updatePost"`
	}
	query := `mutation($id: ID!, $title: String!, $content: String!, $imageUrl: String!) {
		updatePost(id: $id, postInput: {title: $title, content: $content, imageUrl: $imageUrl}) {` + postFields + `}
	}`
	err := c.do(query, map[string]interface{}{
		"id": id, "title": title, "content": content, "imageUrl": imageURL,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out.UpdatePost, nil
}

func (c *Client) DeletePost(id string) error {
	query := `mutation($id: ID!) { deletePost(id: $id) }`
	return c.do(query, map[string]interface{}{"id": id}, nil)
}

func (c *Client) AddComment(postID, content string) (*Comment, error) {
	var out struct {
		AddComment Comment `json:"addComment"`
	}
	query := `mutation($postId: ID!, $content: String!) {
		addComment(commentInput: {postId: $postId, content: $content}) {
			id content createdAt creator { id name email }
		}
	}`
	err := c.do(query, map[string]interface{}{"postId": postID, "content": content}, &out)
	if err != nil {
		return nil, err
	}
	return &out.AddComment, nil
}

func (c *Client) UpdateComment(commentID, content string) (*Comment, error) {
	var out struct {
		UpdateComment Comment `json:"updateComment"`
	}
	query := `mutation($commentId: ID!, $content: String!) {
		updateComment(commentId: $commentId, content: $content) {
			id content createdAt creator { id name email }
		}
	}`
	err := c.do(query, map[string]interface{}{"commentId": commentID, "content": content}, &out)
	if err != nil {
		return nil, err
	}
	return &out.UpdateComment, nil
}

func (c *Client) DeleteComment(commentID string) error {
	query := `mutation($commentId: ID!) { deleteComment(commentId: $commentId) }`
	return c.do(query, map[string]interface{}{"commentId": commentID}, nil)
}

func (c *Client) LikePost(postID string) (*Post, error) {
	var out struct {
		LikePost Post `json:"likePost"`
	}
	query := `mutation($postId: ID!) { likePost(postId: $postId) {` + postFields + `} }`
	err := c.do(query, map[string]interface{}{"postId": postID}, &out)
	if err != nil {
		return nil, err
	}
	return &out.LikePost, nil
}

func (c *Client) UnlikePost(postID string) (*Post, error) {
	var out struct {
		UnlikePost Post `json:"unlikePost"`
	}
	query := `mutation($postId: ID!) { unlikePost(postId: $postId) {` + postFields + `} }`
	err := c.do(query, map[string]interface{}{"postId": postID}, &out)
	if err != nil {
		return nil, err
	}
	return &out.UnlikePost, nil
}

type uploadResponse struct {
	Message  string `json:"message"`
	FilePath string `json:"filePath"`
}

// UploadImage sends the image via PUT /post-image and returns the stored
// relative path. oldPath, when non-empty, names the replaced image.
func (c *Client) UploadImage(filename string, content io.Reader, oldPath string) (string, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("image", filename)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(part, content); err != nil {
		return "", err
	}
	if oldPath != "" {
		if err := mw.WriteField("oldPath", oldPath); err != nil {
			return "", err
		}
	}
	if err := mw.Close(); err != nil {
		return "", err
	}

	req, err := http.NewRequest(http.MethodPut, c.baseURL+"/post-image", &buf)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.doer.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		var e struct {
			Message string `json:"message"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&e)
		if e.Message == "" {
			e.Message = "upload failed"
		}
		return "", &APIError{Message: e.Message, Status: resp.StatusCode}
	}

	var ur uploadResponse
	if err := json.NewDecoder(resp.Body).Decode(&ur); err != nil {
		return "", err
	}
	return ur.FilePath, nil
}

// ImageURL resolves a stored image path against the API base URL, leaving
// already-absolute URLs untouched.
func (c *Client) ImageURL(path string) string {
	if path == "" {
		return ""
	}
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	return c.baseURL + "/" + strings.TrimLeft(path, "/")
}
