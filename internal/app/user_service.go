package app

import (
	"context"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"fitness/internal/domain"
)

// UserService handles registration and lookup of users.
type UserService struct {
	users domain.UserRepository
}

// NewUserService creates a UserService backed by the given repository.
func NewUserService(users domain.UserRepository) *UserService {
	return &UserService{users: users}
}

// NewUser is the registration form.
type NewUser struct {
	Name     string  `json:"name"`
	Email    string  `json:"email"`
	Password string  `json:"password"`
	Age      int     `json:"age"`
	Gender   string  `json:"gender"`
	HeightCm float64 `json:"heightCm"`
	WeightKg float64 `json:"weightKg"`
	Goal     string  `json:"goal"`
}

// Register validates the form, hashes the password and stores the user.
func (s *UserService) Register(ctx context.Context, in NewUser) (*domain.User, error) {
	name := strings.TrimSpace(in.Name)
	email := strings.TrimSpace(in.Email)
	if name == "" {
		return nil, invalid("name is required")
	}
	if !strings.Contains(email, "@") {
		return nil, invalid("email %q is not valid", in.Email)
	}
	if in.Password == "" {
		return nil, invalid("password is required")
	}
	if in.Age < 10 || in.Age > 100 {
		return nil, invalid("age must be within [10, 100]")
	}
	if in.HeightCm < 50 || in.HeightCm > 250 {
		return nil, invalid("heightCm must be within [50, 250]")
	}
	if in.WeightKg < 20 || in.WeightKg > 200 {
		return nil, invalid("weightKg must be within [20, 200]")
	}
	gender, err := domain.ParseGender(in.Gender)
	if err != nil {
		return nil, invalid("%v", err)
	}
	goal, err := domain.ParseGoal(in.Goal)
	if err != nil {
		return nil, invalid("%v", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	u := domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Age:          in.Age,
		Gender:       gender,
		HeightCm:     in.HeightCm,
		WeightKg:     in.WeightKg,
		Goal:         goal,
		CreatedAt:    time.Now().UTC(),
	}
	id, err := s.users.CreateUser(ctx, u)
	if err != nil {
		return nil, dataErr("create user", err)
	}
	u.ID = id
	return &u, nil
}

// Get returns a user by id.
func (s *UserService) Get(ctx context.Context, id int64) (*domain.User, error) {
	u, err := s.users.GetUser(ctx, id)
	if err != nil {
		return nil, dataErr("get user", err)
	}
	if u == nil {
		return nil, ErrUserNotFound
	}
	return u, nil
}

// List returns every registered user ordered by id.
func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	users, err := s.users.ListUsers(ctx)
	if err != nil {
		return nil, dataErr("list users", err)
	}
	return users, nil
}
