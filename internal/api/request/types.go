package request

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// RegisterRequest is the body for POST /api/auth/register
type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=30"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role"`
}

// LoginRequest is the body for POST /api/auth/login
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UpdateProfileRequest is the body for PUT /api/auth/profile
type UpdateProfileRequest struct {
	Username string `json:"username" validate:"omitempty,min=3,max=30"`
	Email    string `json:"email" validate:"omitempty,email"`
}

// CreateCelebrityRequest is the body for POST /api/celebrities.
// Coordinates are ordered [longitude, latitude].
type CreateCelebrityRequest struct {
	Name          string    `json:"name" validate:"required,max=100"`
	BirthProvince string    `json:"birthProvince" validate:"required"`
	Category      string    `json:"category" validate:"required"`
	Photo         string    `json:"photo"`
	Coordinates   []float64 `json:"coordinates" validate:"required,len=2"`
	Bio           string    `json:"bio" validate:"max=500"`
	BirthYear     int       `json:"birthYear"`
}

// UpdateCelebrityRequest is the body for PUT /api/celebrities/{id}.
// Absent fields leave the stored value unchanged.
type UpdateCelebrityRequest struct {
	Name          *string   `json:"name" validate:"omitempty,max=100"`
	BirthProvince *string   `json:"birthProvince"`
	Category      *string   `json:"category"`
	Photo         *string   `json:"photo"`
	Coordinates   []float64 `json:"coordinates" validate:"omitempty,len=2"`
	Bio           *string   `json:"bio" validate:"omitempty,max=500"`
	BirthYear     *int      `json:"birthYear"`
	IsActive      *bool     `json:"isActive"`
}

// SubmitScoreRequest is the body for POST /api/games/score. Score and
// questionsAnswered are pointers so a missing field is distinguishable
// from a legitimate zero; correctAnswers and timeSpent default to 0 when
// omitted.
type SubmitScoreRequest struct {
	Difficulty        string `json:"difficulty" validate:"required"`
	Score             *int   `json:"score" validate:"required,gte=0"`
	QuestionsAnswered *int   `json:"questionsAnswered" validate:"required,gte=0"`
	CorrectAnswers    *int   `json:"correctAnswers" validate:"omitempty,gte=0"`
	TimeSpent         int    `json:"timeSpent" validate:"gte=0"`
}

// PremiumRequestRequest is the body for POST /api/premium/request
type PremiumRequestRequest struct {
	Message string `json:"message" validate:"max=500"`
}

// ProcessRequestRequest is the body for PUT /api/premium/requests/{id}
type ProcessRequestRequest struct {
	Status        string `json:"status" validate:"required"`
	AdminResponse string `json:"adminResponse" validate:"max=500"`
}

// UpdateRoleRequest is the body for PUT /api/users/{id}/role
type UpdateRoleRequest struct {
	Role string `json:"role" validate:"required"`
}

// ValidationMessage flattens validator errors into a single human-readable
// message for the error envelope
func ValidationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return "Invalid request body"
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, fmt.Sprintf("field %s is required", fieldName(fe)))
		case "email":
			msgs = append(msgs, fmt.Sprintf("field %s must be a valid email address", fieldName(fe)))
		case "min":
			msgs = append(msgs, fmt.Sprintf("field %s must be at least %s characters", fieldName(fe), fe.Param()))
		case "max":
			msgs = append(msgs, fmt.Sprintf("field %s must be at most %s characters", fieldName(fe), fe.Param()))
		case "len":
			msgs = append(msgs, fmt.Sprintf("field %s must have exactly %s elements", fieldName(fe), fe.Param()))
		case "gte":
			msgs = append(msgs, fmt.Sprintf("field %s must be at least %s", fieldName(fe), fe.Param()))
		default:
			msgs = append(msgs, fmt.Sprintf("field %s is invalid", fieldName(fe)))
		}
	}
	return strings.Join(msgs, "; ")
}

func fieldName(fe validator.FieldError) string {
	name := fe.Field()
	if name == "" {
		return fe.StructField()
	}
	return strings.ToLower(name[:1]) + name[1:]
}
