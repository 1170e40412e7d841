package model

type Role string

const (
	RoleAdmin   Role = "ADMIN"
	RoleCreator Role = "CREATOR"
)

type User struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	HashedPassword string `json:"hashed_password,omitempty"`
	Role           Role   `json:"role"`
	Avatar         string `json:"avatar,omitempty"`
	Active         bool   `json:"active"`
}

// FindUser looks a user up by id. The second return reports whether the
// reference resolved; callers supply their own fallback label for
// dangling creator references.
func FindUser(users []User, id string) (User, bool) {
	for _, u := range users {
		if u.ID == id {
			return u, true
		}
	}
	return User{}, false
}
