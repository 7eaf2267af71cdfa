// Package domain contains the core business entities, the repository ports and
// the calorie arithmetic that every adapter and service shares.
package domain

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// Gender is the gender a user registered with.
type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
	GenderOther  Gender = "Other"
)

// ParseGender matches s against the known genders, ignoring case.
func ParseGender(s string) (Gender, error) {
	for _, g := range []Gender{GenderMale, GenderFemale, GenderOther} {
		if strings.EqualFold(strings.TrimSpace(s), string(g)) {
			return g, nil
		}
	}
	return "", fmt.Errorf("unknown gender %q", s)
}

// User is a registered person whose meals and workouts are tracked.
type User struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Age          int       `json:"age"`
	Gender       Gender    `json:"gender"`
	HeightCm     float64   `json:"heightCm"`
	WeightKg     float64   `json:"weightKg"`
	Goal         Goal      `json:"goal"`
	CreatedAt    time.Time `json:"createdAt"`
}

// UserRepository defines the port for user persistence operations.
type UserRepository interface {
	CreateUser(ctx context.Context, u User) (int64, error)
	GetUser(ctx context.Context, id int64) (*User, error)
	ListUsers(ctx context.Context) ([]User, error)
}
