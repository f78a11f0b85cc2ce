package user

// User represents an application user. Optional profile fields are pointers so
// absent columns stay NULL in the database and null in JSON.
type User struct {
	ID       int64   `json:"id"`
	Email    string  `json:"email"`
	Name     string  `json:"name"`
	Password string  `json:"-"` // bcrypt hash, never returned
	Nickname *string `json:"nickname"`
	Age      *int    `json:"age"`
	Phone    *string `json:"phone"`
	Sex      *string `json:"sex"`
}
