package models

import "time"

type User struct {
	ID         string    `json:"id"`
	Email      string    `json:"email"`
	FirstName  string    `json:"firstName"`
	LastName   string    `json:"lastName"`
	JobTitle   string    `json:"jobTitle"`
	Department string    `json:"department"`
	Location   string    `json:"location"`
	Timezone   string    `json:"timezone"`
	Phone      string    `json:"phone,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
	LastLogin  time.Time `json:"lastLogin"`
}

// DisplayName is the denormalized snapshot written into activities and
// checklist item metadata. Renaming a user does not rewrite history.
func (user User) DisplayName() string {
	return user.FirstName + " " + user.LastName
}
