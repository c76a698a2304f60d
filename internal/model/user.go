package model

import "time"

// UserStatus gates referee eligibility: only Official users may be assigned.
type UserStatus string

const (
	StatusOfficial    UserStatus = "Official"
	StatusNonOfficial UserStatus = "Non-Official"
)

func (s UserStatus) Valid() bool {
	return s == StatusOfficial || s == StatusNonOfficial
}

type User struct {
	ID        string     `json:"id" bson:"_id"`
	Status    UserStatus `json:"status" bson:"status"`
	FirstName string     `json:"first_name" bson:"first_name"`
	LastName  string     `json:"last_name" bson:"last_name"`
	Username  string     `json:"username" bson:"username"`
	Email     string     `json:"email" bson:"email"`
	CreatedAt time.Time  `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time  `json:"updated_at" bson:"updated_at"`
}

type CreateUserRequest struct {
	Status    UserStatus `json:"status"`
	FirstName string     `json:"first_name"`
	LastName  string     `json:"last_name"`
	Username  string     `json:"username"`
	Email     string     `json:"email"`
}

type UpdateUserRequest struct {
	Status    *UserStatus `json:"status"`
	FirstName *string     `json:"first_name"`
	LastName  *string     `json:"last_name"`
	Username  *string     `json:"username"`
	Email     *string     `json:"email"`
}

// UserFilter narrows a user lookup. Zero-value fields are ignored.
type UserFilter struct {
	UserID   string
	Status   UserStatus
	Username string
	Email    string
}

// IDOnly reports whether the filter selects by id alone, the one lookup
// shape the user cache serves.
func (f UserFilter) IDOnly() bool {
	return f.UserID != "" && f.Status == "" && f.Username == "" && f.Email == ""
}
