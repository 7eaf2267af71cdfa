package app_test

import (
	"context"
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"fitness/internal/app"
	"fitness/internal/domain"
)

func validNewUser() app.NewUser {
	return app.NewUser{
		Name:     "Ana Lima",
		Email:    "ana@example.com",
		Password: "s3cret",
		Age:      31,
		Gender:   "Female",
		HeightCm: 168,
		WeightKg: 61.5,
		Goal:     "Lose Weight",
	}
}

func TestRegister_Validation(t *testing.T) {
	svc := app.NewUserService(&mockUserRepo{})

	tests := []struct {
		name   string
		mutate func(*app.NewUser)
	}{
		{"empty name", func(u *app.NewUser) { u.Name = "  " }},
		{"bad email", func(u *app.NewUser) { u.Email = "ana.example.com" }},
		{"empty password", func(u *app.NewUser) { u.Password = "" }},
		{"too young", func(u *app.NewUser) { u.Age = 9 }},
		{"too old", func(u *app.NewUser) { u.Age = 101 }},
		{"too short", func(u *app.NewUser) { u.HeightCm = 49 }},
		{"too heavy", func(u *app.NewUser) { u.WeightKg = 201 }},
		{"unknown gender", func(u *app.NewUser) { u.Gender = "robot" }},
		{"unknown goal", func(u *app.NewUser) { u.Goal = "bulk" }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			in := validNewUser()
			tc.mutate(&in)
			_, err := svc.Register(context.Background(), in)
			if !errors.Is(err, app.ErrValidation) {
				t.Fatalf("expected validation error, got %v", err)
			}
		})
	}
}

func TestRegister_Success(t *testing.T) {
	var stored domain.User
	repo := &mockUserRepo{
		createFn: func(_ context.Context, u domain.User) (int64, error) {
			stored = u
			return 12, nil
		},
	}
	svc := app.NewUserService(repo)
	u, err := svc.Register(context.Background(), validNewUser())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if u.ID != 12 {
		t.Fatalf("expected id 12, got %d", u.ID)
	}
	if stored.Goal != domain.GoalLoseWeight || stored.Gender != domain.GenderFemale {
		t.Fatalf("unexpected stored user: %+v", stored)
	}
	if stored.PasswordHash == "s3cret" {
		t.Fatal("password stored in clear text")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("s3cret")); err != nil {
		t.Fatalf("hash does not match password: %v", err)
	}
}

func TestGetUser_NotFound(t *testing.T) {
	svc := app.NewUserService(&mockUserRepo{
		getFn: func(_ context.Context, _ int64) (*domain.User, error) { return nil, nil },
	})
	if _, err := svc.Get(context.Background(), 3); !errors.Is(err, app.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
