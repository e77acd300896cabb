package models

// UserProfile is the logged-in identity payload kept in the preference store.
type UserProfile struct {
	Email       string `json:"email"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	PhoneNumber string `json:"phoneNumber"`
}

// FullName joins first and last name for display.
func (u UserProfile) FullName() string {
	switch {
	case u.FirstName == "":
		return u.LastName
	case u.LastName == "":
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}

// Credentials is the single username/password pair held by the secure
// credential store. It never goes to plain preference storage.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// RegistrationDraft is a partially filled registration form (no password),
// persisted while the user is typing.
type RegistrationDraft struct {
	Email       string `json:"email,omitempty"`
	FirstName   string `json:"firstName,omitempty"`
	LastName    string `json:"lastName,omitempty"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
}
