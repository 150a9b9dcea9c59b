package services

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"devconnector/model"
)

var ErrUserNotFound = errors.New("user not found")
var ErrPostNotFound = errors.New("post not found")
var ErrCommentNotFound = errors.New("comment not found")
var ErrNotPostOwner = errors.New("user not authorized")
var ErrNotCommentOwner = errors.New("user not authorized")
var ErrAlreadyLiked = errors.New("post already liked")
var ErrNotLiked = errors.New("post has not yet been liked")

// PostStore is the slice of the document store the post service needs.
// The mongo implementation lives in internal/repository; tests use a fake.
type PostStore interface {
	Insert(ctx context.Context, post *model.Post) error
	FindByID(ctx context.Context, id bson.ObjectID) (*model.Post, error)
	FindAllNewestFirst(ctx context.Context) ([]model.Post, error)
	Save(ctx context.Context, post *model.Post) error
	Remove(ctx context.Context, id bson.ObjectID) error
}

type UserStore interface {
	Insert(ctx context.Context, user *model.User) error
	FindByID(ctx context.Context, id bson.ObjectID) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
}

type PostService struct {
	posts PostStore
	users UserStore
}

func NewPostService(posts PostStore, users UserStore) *PostService {
	return &PostService{posts: posts, users: users}
}

// Create inserts a post stamped with a snapshot of the author's name and
// avatar. Likes and comments start empty.
func (s *PostService) Create(ctx context.Context, authorID, text string) (*model.Post, error) {
	user, err := s.findUser(ctx, authorID)
	if err != nil {
		return nil, err
	}

	post := &model.Post{
		ID:       bson.NewObjectID(),
		UserID:   user.ID,
		Text:     text,
		Name:     user.Name,
		Avatar:   user.Avatar,
		Likes:    []model.Like{},
		Comments: []model.Comment{},
		Date:     time.Now().UTC(),
	}
	if err := s.posts.Insert(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

func (s *PostService) List(ctx context.Context) ([]model.Post, error) {
	return s.posts.FindAllNewestFirst(ctx)
}

func (s *PostService) Get(ctx context.Context, postID string) (*model.Post, error) {
	return s.findPost(ctx, postID)
}

func (s *PostService) Delete(ctx context.Context, postID, requesterID string) error {
	post, err := s.findPost(ctx, postID)
	if err != nil {
		return err
	}
	if post.UserID.Hex() != requesterID {
		return ErrNotPostOwner
	}
	if err := s.posts.Remove(ctx, post.ID); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrPostNotFound
		}
		return err
	}
	return nil
}

// Like prepends a like for the requester. A user can hold at most one like
// per post; a repeat attempt fails without touching the document.
func (s *PostService) Like(ctx context.Context, postID, requesterID string) ([]model.Like, error) {
	post, err := s.findPost(ctx, postID)
	if err != nil {
		return nil, err
	}
	uid, err := bson.ObjectIDFromHex(requesterID)
	if err != nil {
		return nil, ErrUserNotFound
	}

	for _, like := range post.Likes {
		if like.UserID == uid {
			return nil, ErrAlreadyLiked
		}
	}

	post.Likes = append([]model.Like{{ID: bson.NewObjectID(), UserID: uid}}, post.Likes...)
	if err := s.posts.Save(ctx, post); err != nil {
		return nil, err
	}
	return post.Likes, nil
}

// Unlike removes the requester's like. If the document somehow holds
// duplicates, only the first match goes.
func (s *PostService) Unlike(ctx context.Context, postID, requesterID string) ([]model.Like, error) {
	post, err := s.findPost(ctx, postID)
	if err != nil {
		return nil, err
	}
	uid, err := bson.ObjectIDFromHex(requesterID)
	if err != nil {
		return nil, ErrUserNotFound
	}

	idx := -1
	for i, like := range post.Likes {
		if like.UserID == uid {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, ErrNotLiked
	}

	post.Likes = append(post.Likes[:idx], post.Likes[idx+1:]...)
	if err := s.posts.Save(ctx, post); err != nil {
		return nil, err
	}
	return post.Likes, nil
}

func (s *PostService) AddComment(ctx context.Context, postID, authorID, text string) ([]model.Comment, error) {
	user, err := s.findUser(ctx, authorID)
	if err != nil {
		return nil, err
	}
	post, err := s.findPost(ctx, postID)
	if err != nil {
		return nil, err
	}

	comment := model.Comment{
		ID:     bson.NewObjectID(),
		UserID: user.ID,
		Text:   text,
		Name:   user.Name,
		Avatar: user.Avatar,
		Date:   time.Now().UTC(),
	}
	post.Comments = append([]model.Comment{comment}, post.Comments...)
	if err := s.posts.Save(ctx, post); err != nil {
		return nil, err
	}
	return post.Comments, nil
}

// DeleteComment removes the comment with the given id once the requester is
// confirmed as its author. Removal keys on the comment id, never on the
// author, so a user with several comments on the post loses only the one
// addressed.
func (s *PostService) DeleteComment(ctx context.Context, postID, commentID, requesterID string) ([]model.Comment, error) {
	post, err := s.findPost(ctx, postID)
	if err != nil {
		return nil, err
	}
	cid, err := bson.ObjectIDFromHex(commentID)
	if err != nil {
		return nil, ErrCommentNotFound
	}

	idx := -1
	for i, comment := range post.Comments {
		if comment.ID == cid {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, ErrCommentNotFound
	}
	if post.Comments[idx].UserID.Hex() != requesterID {
		return nil, ErrNotCommentOwner
	}

	post.Comments = append(post.Comments[:idx], post.Comments[idx+1:]...)
	if err := s.posts.Save(ctx, post); err != nil {
		return nil, err
	}
	return post.Comments, nil
}

func (s *PostService) findPost(ctx context.Context, postID string) (*model.Post, error) {
	oid, err := bson.ObjectIDFromHex(postID)
	if err != nil {
		return nil, ErrPostNotFound
	}
	post, err := s.posts.FindByID(ctx, oid)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}
	return post, nil
}

func (s *PostService) findUser(ctx context.Context, userID string) (*model.User, error) {
	oid, err := bson.ObjectIDFromHex(userID)
	if err != nil {
		return nil, ErrUserNotFound
	}
	user, err := s.users.FindByID(ctx, oid)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}
