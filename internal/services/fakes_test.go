package services

import (
	"context"
	"sort"
	"sync"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"devconnector/model"
)

// In-memory stores standing in for the mongo repositories. Documents are
// copied on the way in and out so a test sees only what was saved.

type fakePostStore struct {
	mu    sync.Mutex
	posts map[bson.ObjectID]model.Post
}

func newFakePostStore() *fakePostStore {
	return &fakePostStore{posts: map[bson.ObjectID]model.Post{}}
}

func copyPost(p model.Post) model.Post {
	out := p
	out.Likes = append([]model.Like{}, p.Likes...)
	out.Comments = append([]model.Comment{}, p.Comments...)
	return out
}

func (f *fakePostStore) Insert(_ context.Context, post *model.Post) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if post.ID.IsZero() {
		post.ID = bson.NewObjectID()
	}
	f.posts[post.ID] = copyPost(*post)
	return nil
}

func (f *fakePostStore) FindByID(_ context.Context, id bson.ObjectID) (*model.Post, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.posts[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	out := copyPost(p)
	return &out, nil
}

func (f *fakePostStore) FindAllNewestFirst(_ context.Context) ([]model.Post, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []model.Post{}
	for _, p := range f.posts {
		out = append(out, copyPost(p))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out, nil
}

func (f *fakePostStore) Save(_ context.Context, post *model.Post) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.posts[post.ID]; !ok {
		return mongo.ErrNoDocuments
	}
	f.posts[post.ID] = copyPost(*post)
	return nil
}

func (f *fakePostStore) Remove(_ context.Context, id bson.ObjectID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.posts[id]; !ok {
		return mongo.ErrNoDocuments
	}
	delete(f.posts, id)
	return nil
}

type fakeUserStore struct {
	mu    sync.Mutex
	users map[bson.ObjectID]model.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: map[bson.ObjectID]model.User{}}
}

func (f *fakeUserStore) Insert(_ context.Context, user *model.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if user.ID.IsZero() {
		user.ID = bson.NewObjectID()
	}
	f.users[user.ID] = *user
	return nil
}

func (f *fakeUserStore) FindByID(_ context.Context, id bson.ObjectID) (*model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	out := u
	return &out, nil
}

func (f *fakeUserStore) FindByEmail(_ context.Context, email string) (*model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Email == email {
			out := u
			return &out, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}
