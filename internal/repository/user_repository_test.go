package repository_test

import (
	"errors"
	"nextlevel_lms/internal/model"
	"nextlevel_lms/internal/testutil"
	"nextlevel_lms/internal/util"
	"strings"
	"testing"
)

func TestUserCreateAndFind(t *testing.T) {
	repos := testutil.NewRepos(t)
	user := testutil.SeedUser(t, repos, "V12345678")

	if !strings.HasPrefix(user.ID, "user_") {
		t.Fatalf("unexpected id %q", user.ID)
	}

	found, err := repos.Users.FindByCedula("V12345678")
	if err != nil {
		t.Fatalf("find by cedula: %v", err)
	}
	if found.ID != user.ID || found.Password != "secret1" {
		t.Fatalf("unexpected user %+v", found)
	}

	if _, err := repos.Users.FindByCedula("nobody"); !errors.Is(err, util.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
	if _, err := repos.Users.FindByID(user.ID); err != nil {
		t.Fatalf("find by id: %v", err)
	}
	if repos.Users.Count() != 1 {
		t.Fatalf("expected 1 user, got %d", repos.Users.Count())
	}
}

func TestUserUpdateIsPartial(t *testing.T) {
	repos := testutil.NewRepos(t)
	user := testutil.SeedUser(t, repos, "V1")

	name := "María"
	if err := repos.Users.Update(user.ID, model.UserUpdate{Name: &name}); err != nil {
		t.Fatalf("update: %v", err)
	}
	got, _ := repos.Users.FindByID(user.ID)
	if got.Name != "María" || got.Lastname != "Lopez" || got.Password != "secret1" {
		t.Fatalf("unexpected user after update %+v", got)
	}

	if err := repos.Users.Update("missing", model.UserUpdate{Name: &name}); !errors.Is(err, util.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestIDsAreUniqueWithinOneMillisecond(t *testing.T) {
	repos := testutil.NewRepos(t)
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		u := repos.Users.Create(model.UserInput{Name: "x", Lastname: "y", Cedula: "c", Password: "secret1"})
		if seen[u.ID] {
			t.Fatalf("duplicate id %q", u.ID)
		}
		seen[u.ID] = true
	}
}
