package authapi

import "encoding/json"

// Credentials are sent on sign-up and sign-in.
type Credentials struct {
	Email                string `json:"email"`
	Password             string `json:"password"`
	PasswordConfirmation string `json:"password_confirmation,omitempty"`
}

// Passwords are sent on change-password.
type Passwords struct {
	Old string `json:"old"`
	New string `json:"new"`
}

// User is the account returned by the API. Token is only set by sign-in.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Token string `json:"token,omitempty"`
}

// UnmarshalJSON accepts both "_id" and "id".
func (u *User) UnmarshalJSON(data []byte) error {
	var raw struct {
		MongoID string `json:"_id"`
		ID      string `json:"id"`
		Email   string `json:"email"`
		Token   string `json:"token"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	u.ID = raw.ID
	if u.ID == "" {
		u.ID = raw.MongoID
	}
	u.Email = raw.Email
	u.Token = raw.Token
	return nil
}

type credentialsEnvelope struct {
	Credentials Credentials `json:"credentials"`
}

type passwordsEnvelope struct {
	Passwords Passwords `json:"passwords"`
}

type userEnvelope struct {
	User User `json:"user"`
}
