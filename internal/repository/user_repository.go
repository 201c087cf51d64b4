package repository

import (
	"nextlevel_lms/internal/model"
	"nextlevel_lms/internal/store"
	"nextlevel_lms/internal/util"
	"time"
)

type UserRepository struct {
	Store *store.Store
}

func NewUserRepository(s *store.Store) *UserRepository {
	return &UserRepository{Store: s}
}

// Create appends a new user. Cedula uniqueness is the caller's check.
func (r *UserRepository) Create(input model.UserInput) *model.User {
	user := model.User{
		ID:        model.NewID("user"),
		Name:      input.Name,
		Lastname:  input.Lastname,
		Cedula:    input.Cedula,
		Password:  input.Password,
		CreatedAt: time.Now(),
	}

	_ = r.Store.Update(func(data *model.Dataset) error {
		data.Users = append(data.Users, user)
		return nil
	})
	return &user
}

func (r *UserRepository) FindByCedula(cedula string) (*model.User, error) {
	var found *model.User
	r.Store.Read(func(data *model.Dataset) {
		for i := range data.Users {
			if data.Users[i].Cedula == cedula {
				u := data.Users[i]
				found = &u
				return
			}
		}
	})
	if found == nil {
		return nil, util.ErrUserNotFound
	}
	return found, nil
}

func (r *UserRepository) FindByID(id string) (*model.User, error) {
	var found *model.User
	r.Store.Read(func(data *model.Dataset) {
		for i := range data.Users {
			if data.Users[i].ID == id {
				u := data.Users[i]
				found = &u
				return
			}
		}
	})
	if found == nil {
		return nil, util.ErrUserNotFound
	}
	return found, nil
}

func (r *UserRepository) Update(id string, upd model.UserUpdate) error {
	return r.Store.Update(func(data *model.Dataset) error {
		for i := range data.Users {
			if data.Users[i].ID == id {
				data.Users[i].Apply(upd)
				return nil
			}
		}
		return util.ErrUserNotFound
	})
}

func (r *UserRepository) All() []model.User {
	return r.Store.Snapshot().Users
}

func (r *UserRepository) Count() int {
	var n int
	r.Store.Read(func(data *model.Dataset) {
		n = len(data.Users)
	})
	return n
}
