package types

const (
	maxUserNameLen  = 80
	maxUserEmailLen = 80
)

// User represents a registered person.
// Both name and email are unique across all users.
type User struct {
	// ID is the store-assigned identifier of the user.
	ID int `json:"id" db:"id"`

	// Name is the user's unique display name.
	Name string `json:"name" db:"name"`

	// Email is the user's unique email address.
	Email string `json:"email" db:"email"`
}

// Validate checks the mutable fields of the user.
func (u User) Validate() error {
	if err := requireText(FieldName, u.Name, maxUserNameLen); err != nil {
		return err
	}
	return requireText(FieldEmail, u.Email, maxUserEmailLen)
}
