package user

import (
	"context"
	"errors"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/clinic/clinic/internal/platform/auth"
)

type mockRepo struct {
	nextID int64
	byID   map[int64]*User
}

func newMockRepo() *mockRepo {
	return &mockRepo{nextID: 1, byID: map[int64]*User{}}
}

func (m *mockRepo) Create(ctx context.Context, u *User) error {
	for _, existing := range m.byID {
		if existing.Email == u.Email {
			return ErrEmailTaken
		}
	}
	u.ID = m.nextID
	m.nextID++
	cp := *u
	m.byID[u.ID] = &cp
	return nil
}

func (m *mockRepo) GetByID(ctx context.Context, id int64) (*User, error) {
	u, ok := m.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (m *mockRepo) GetByEmail(ctx context.Context, email string) (*User, error) {
	for _, u := range m.byID {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (m *mockRepo) Update(ctx context.Context, u *User) error {
	if _, ok := m.byID[u.ID]; !ok {
		return ErrNotFound
	}
	cp := *u
	m.byID[u.ID] = &cp
	return nil
}

func (m *mockRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := m.byID[id]; !ok {
		return ErrNotFound
	}
	delete(m.byID, id)
	return nil
}

func (m *mockRepo) Search(ctx context.Context, f SearchFilter, limit, offset int) ([]*User, int64, error) {
	var items []*User
	for _, u := range m.byID {
		if f.Role != "" && u.Role != f.Role {
			continue
		}
		cp := *u
		items = append(items, &cp)
	}
	return items, int64(len(items)), nil
}

func newTestService(repo Repository) *Service {
	return NewService(repo, []byte("test-secret"), time.Hour)
}

func TestRegister(t *testing.T) {
	repo := newMockRepo()
	svc := newTestService(repo)

	u, err := svc.Register(context.Background(), "Ada", "ada@clinic.test", "s3cret", auth.RolePatient)
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if u.ID == 0 {
		t.Error("expected assigned id")
	}
	if u.PasswordHash == "s3cret" {
		t.Error("password must not be stored in plain text")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("s3cret")); err != nil {
		t.Errorf("stored hash does not match password: %v", err)
	}
}

func TestRegister_InvalidRole(t *testing.T) {
	svc := newTestService(newMockRepo())
	_, err := svc.Register(context.Background(), "Ada", "ada@clinic.test", "s3cret", "Superuser")
	if !errors.Is(err, ErrInvalidRole) {
		t.Fatalf("expected ErrInvalidRole, got %v", err)
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	svc := newTestService(newMockRepo())
	ctx := context.Background()
	if _, err := svc.Register(ctx, "Ada", "ada@clinic.test", "s3cret", auth.RolePatient); err != nil {
		t.Fatalf("first Register: %v", err)
	}
	_, err := svc.Register(ctx, "Ada Again", "ada@clinic.test", "other", auth.RolePatient)
	if !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestLogin(t *testing.T) {
	repo := newMockRepo()
	svc := newTestService(repo)
	ctx := context.Background()

	reg, err := svc.Register(ctx, "Ada", "ada@clinic.test", "s3cret", auth.RoleDoctor)
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	token, u, err := svc.Login(ctx, "ada@clinic.test", "s3cret")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if token == "" {
		t.Fatal("expected a token")
	}
	if u.ID != reg.ID {
		t.Errorf("user id = %d, want %d", u.ID, reg.ID)
	}
}

func TestLogin_BadCredentials(t *testing.T) {
	svc := newTestService(newMockRepo())
	ctx := context.Background()
	if _, err := svc.Register(ctx, "Ada", "ada@clinic.test", "s3cret", auth.RolePatient); err != nil {
		t.Fatalf("Register: %v", err)
	}

	// Wrong password and unknown email must be indistinguishable.
	_, _, err := svc.Login(ctx, "ada@clinic.test", "wrong")
	if !errors.Is(err, ErrBadCredentials) {
		t.Errorf("wrong password: expected ErrBadCredentials, got %v", err)
	}
	_, _, err = svc.Login(ctx, "nobody@clinic.test", "s3cret")
	if !errors.Is(err, ErrBadCredentials) {
		t.Errorf("unknown email: expected ErrBadCredentials, got %v", err)
	}
}

func TestUpdate_PartialFields(t *testing.T) {
	svc := newTestService(newMockRepo())
	ctx := context.Background()

	reg, err := svc.Register(ctx, "Ada", "ada@clinic.test", "s3cret", auth.RolePatient)
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	u, err := svc.Update(ctx, reg.ID, "Ada L.", "", "")
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if u.Name != "Ada L." {
		t.Errorf("name = %q", u.Name)
	}
	if u.Email != "ada@clinic.test" {
		t.Errorf("email must be unchanged, got %q", u.Email)
	}

	// Password still valid after a no-password update.
	if _, _, err := svc.Login(ctx, "ada@clinic.test", "s3cret"); err != nil {
		t.Errorf("Login after update: %v", err)
	}
}

func TestDelete_NotFound(t *testing.T) {
	svc := newTestService(newMockRepo())
	if err := svc.Delete(context.Background(), 99); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
