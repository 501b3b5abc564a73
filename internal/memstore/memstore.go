// Package memstore is an in-memory repository.Store used by tests and as a
// development fallback when no MongoDB is configured. It mirrors the Mongo
// implementation's semantics: unique emails, like sets, newest-first
// ordering.
package memstore

import (
	"context"
	"sort"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"blogfeed/internal/repository"
	"blogfeed/model"
)

type Store struct {
	mu       sync.RWMutex
	users    map[bson.ObjectID]model.User
	posts    map[bson.ObjectID]model.Post
	comments map[bson.ObjectID]model.Comment
}

var _ repository.Store = (*Store)(nil)

func New() *Store {
	return &Store{
		users:    make(map[bson.ObjectID]model.User),
		posts:    make(map[bson.ObjectID]model.Post),
		comments: make(map[bson.ObjectID]model.Comment),
	}
}

func (s *Store) CreateUser(_ context.Context, u *model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.users {
		if existing.Email == u.Email {
			return repository.ErrEmailTaken
		}
	}
	u.ID = bson.NewObjectID()
	u.CreatedAt = time.Now().UTC()
	u.UpdatedAt = u.CreatedAt
	s.users[u.ID] = *u
	return nil
}

func (s *Store) UserByID(_ context.Context, id bson.ObjectID) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &u, nil
}

func (s *Store) UserByEmail(_ context.Context, email string) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.Email == email {
			u := u
			return &u, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (s *Store) UsersByIDs(_ context.Context, ids []bson.ObjectID) ([]model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []model.User
	for _, id := range ids {
		if u, ok := s.users[id]; ok {
			out = append(out, u)
		}
	}
	return out, nil
}

func (s *Store) Users(_ context.Context) ([]model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.User, 0, len(s.users))
	for _, u := range s.users {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (s *Store) UpdateUser(_ context.Context, u *model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[u.ID]; !ok {
		return repository.ErrNotFound
	}
	u.UpdatedAt = time.Now().UTC()
	s.users[u.ID] = *u
	return nil
}

func (s *Store) DeleteUser(_ context.Context, id bson.ObjectID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[id]; !ok {
		return repository.ErrNotFound
	}
	delete(s.users, id)
	return nil
}

func (s *Store) CreatePost(_ context.Context, p *model.Post) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	p.ID = bson.NewObjectID()
	p.CreatedAt = time.Now().UTC()
	p.UpdatedAt = p.CreatedAt
	if p.Likes == nil {
		p.Likes = []bson.ObjectID{}
	}
	s.posts[p.ID] = *p
	return nil
}

func (s *Store) PostByID(_ context.Context, id bson.ObjectID) (*model.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.posts[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &p, nil
}

func (s *Store) Posts(_ context.Context, page, perPage int64) ([]model.Post, int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	all := s.sortedPosts(func(model.Post) bool { return true })
	total := int64(len(all))

	skip := (page - 1) * perPage
	if skip >= total {
		return nil, total, nil
	}
	end := skip + perPage
	if end > total {
		end = total
	}
	return all[skip:end], total, nil
}

func (s *Store) PostsByCreator(_ context.Context, creatorID bson.ObjectID) ([]model.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sortedPosts(func(p model.Post) bool { return p.CreatorID == creatorID }), nil
}

// sortedPosts returns matching posts newest first. Callers hold the lock.
func (s *Store) sortedPosts(match func(model.Post) bool) []model.Post {
	var out []model.Post
	for _, p := range s.posts {
		if match(p) {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID.Hex() > out[j].ID.Hex()
	})
	return out
}

func (s *Store) UpdatePost(_ context.Context, p *model.Post) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	existing, ok := s.posts[p.ID]
	if !ok {
		return repository.ErrNotFound
	}
	existing.Title = p.Title
	existing.Content = p.Content
	existing.ImageURL = p.ImageURL
	existing.UpdatedAt = time.Now().UTC()
	s.posts[p.ID] = existing
	*p = existing
	return nil
}

func (s *Store) DeletePost(_ context.Context, id bson.ObjectID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.posts[id]; !ok {
		return repository.ErrNotFound
	}
	delete(s.posts, id)
	return nil
}

func (s *Store) AddLike(_ context.Context, postID, userID bson.ObjectID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.posts[postID]
	if !ok {
		return repository.ErrNotFound
	}
	if !p.LikedBy(userID) {
		p.Likes = append(p.Likes, userID)
		s.posts[postID] = p
	}
	return nil
}

func (s *Store) RemoveLike(_ context.Context, postID, userID bson.ObjectID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.posts[postID]
	if !ok {
		return repository.ErrNotFound
	}
	p.Likes = withoutID(p.Likes, userID)
	s.posts[postID] = p
	return nil
}

func (s *Store) RemoveLikesByUser(_ context.Context, userID bson.ObjectID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, p := range s.posts {
		p.Likes = withoutID(p.Likes, userID)
		s.posts[id] = p
	}
	return nil
}

func withoutID(ids []bson.ObjectID, drop bson.ObjectID) []bson.ObjectID {
	out := ids[:0]
	for _, id := range ids {
		if id != drop {
			out = append(out, id)
		}
	}
	return out
}

func (s *Store) CreateComment(_ context.Context, c *model.Comment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	c.ID = bson.NewObjectID()
	c.CreatedAt = time.Now().UTC()
	c.UpdatedAt = c.CreatedAt
	s.comments[c.ID] = *c
	return nil
}

func (s *Store) CommentByID(_ context.Context, id bson.ObjectID) (*model.Comment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.comments[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &c, nil
}

func (s *Store) CommentsByPost(_ context.Context, postID bson.ObjectID) ([]model.Comment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []model.Comment
	for _, c := range s.comments {
		if c.PostID == postID {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID.Hex() > out[j].ID.Hex()
	})
	return out, nil
}

func (s *Store) CountByPost(_ context.Context, postID bson.ObjectID) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var n int64
	for _, c := range s.comments {
		if c.PostID == postID {
			n++
		}
	}
	return n, nil
}

func (s *Store) UpdateComment(_ context.Context, c *model.Comment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	existing, ok := s.comments[c.ID]
	if !ok {
		return repository.ErrNotFound
	}
	existing.Content = c.Content
	existing.UpdatedAt = time.Now().UTC()
	s.comments[c.ID] = existing
	*c = existing
	return nil
}

func (s *Store) DeleteComment(_ context.Context, id bson.ObjectID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.comments[id]; !ok {
		return repository.ErrNotFound
	}
	delete(s.comments, id)
	return nil
}

func (s *Store) DeleteCommentsByPost(_ context.Context, postID bson.ObjectID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, c := range s.comments {
		if c.PostID == postID {
			delete(s.comments, id)
		}
	}
	return nil
}

func (s *Store) DeleteCommentsByCreator(_ context.Context, creatorID bson.ObjectID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, c := range s.comments {
		if c.CreatorID == creatorID {
			delete(s.comments, id)
		}
	}
	return nil
}
