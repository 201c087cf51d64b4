package model

import "time"

// User is the stored account. Password is whatever the password policy stored:
// plaintext by default, a bcrypt hash when hashing is enabled.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Lastname  string    `json:"lastname"`
	Cedula    string    `json:"cedula"`
	Password  string    `json:"password"`
	CreatedAt time.Time `json:"createdAt"`
}

// PublicUser is a User without its password; it is the only shape the session exposes.
type PublicUser struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Lastname  string    `json:"lastname"`
	Cedula    string    `json:"cedula"`
	CreatedAt time.Time `json:"createdAt"`
}

func (u User) Public() PublicUser {
	return PublicUser{
		ID:        u.ID,
		Name:      u.Name,
		Lastname:  u.Lastname,
		Cedula:    u.Cedula,
		CreatedAt: u.CreatedAt,
	}
}

func (u PublicUser) FullName() string {
	if u.Lastname == "" {
		return u.Name
	}
	return u.Name + " " + u.Lastname
}

type UserInput struct {
	Name     string
	Lastname string
	Cedula   string
	Password string
}

// UserUpdate is a partial update; nil fields are left untouched.
type UserUpdate struct {
	Name     *string `json:"name,omitempty"`
	Lastname *string `json:"lastname,omitempty"`
	Password *string `json:"password,omitempty"`
}

func (u *User) Apply(upd UserUpdate) {
	if upd.Name != nil {
		u.Name = *upd.Name
	}
	if upd.Lastname != nil {
		u.Lastname = *upd.Lastname
	}
	if upd.Password != nil {
		u.Password = *upd.Password
	}
}
