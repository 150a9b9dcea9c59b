package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"golang.org/x/crypto/bcrypt"

	"devconnector/internal/utils"
	"devconnector/model"
)

var ErrEmailTaken = errors.New("user already exists")
var ErrInvalidCredentials = errors.New("invalid credentials")

type AuthService struct {
	users  UserStore
	secret []byte
	ttl    time.Duration
}

func NewAuthService(users UserStore, secret string, ttl time.Duration) *AuthService {
	return &AuthService{users: users, secret: []byte(secret), ttl: ttl}
}

// Register creates the account and returns a signed token. The avatar is a
// gravatar URL derived from the email, stored on the user so posts and
// comments can snapshot it later.
func (s *AuthService) Register(ctx context.Context, name, email, password string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		return "", ErrEmailTaken
	} else if !errors.Is(err, mongo.ErrNoDocuments) {
		return "", err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	user := &model.User{
		ID:       bson.NewObjectID(),
		Name:     name,
		Email:    email,
		Avatar:   utils.GravatarURL(email),
		Password: string(hash),
		Date:     time.Now().UTC(),
	}
	if err := s.users.Insert(ctx, user); err != nil {
		return "", err
	}

	return s.signToken(user.ID)
}

func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.users.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	return s.signToken(user.ID)
}

func (s *AuthService) CurrentUser(ctx context.Context, userID string) (*model.User, error) {
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

func (s *AuthService) signToken(id bson.ObjectID) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   id.Hex(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}
