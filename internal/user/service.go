package user

import (
	"errors"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

func (s *Service) GetByID(id int) (User, error) {
	return s.repo.GetByID(id)
}

func (s *Service) Authenticate(email, password string) (User, error) {
	user, err := s.repo.GetByEmail(strings.TrimSpace(email))
	if err != nil {
		return User{}, ErrInvalidCredentials
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return User{}, ErrInvalidCredentials
	}

	return user, nil
}

// EnsureAdmin creates the account for email when it does not exist yet and
// leaves an existing account untouched. It reports whether a new account was
// created.
func (s *Service) EnsureAdmin(email, password, name string) (User, bool, error) {
	existing, err := s.repo.GetByEmail(strings.TrimSpace(email))
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return User{}, false, err
	}
	return s.ResetAdmin(email, password, name)
}

// ResetAdmin creates the account for email, or resets its password when it
// already exists. It reports whether a new account was created.
func (s *Service) ResetAdmin(email, password, name string) (User, bool, error) {
	email = strings.TrimSpace(email)
	hashed, err := adminPassword(password)
	if err != nil {
		return User{}, false, err
	}
	now := s.now().UTC().Format(time.RFC3339)

	existing, err := s.repo.GetByEmail(email)
	if err == nil {
		existing.Password = hashed
		if name != "" {
			existing.Name = name
		}
		existing.UpdatedAt = now
		updated, err := s.repo.Update(existing.ID, existing)
		return updated, false, err
	}
	if !errors.Is(err, ErrNotFound) {
		return User{}, false, err
	}

	if name == "" {
		name = "Admin"
	}
	created, err := s.repo.Create(User{
		Email:     email,
		Password:  hashed,
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	})
	return created, true, err
}

// CheckProfile reports a wrong current password as ErrInvalidCredentials
// and an email owned by another account as ErrEmailExists.
func (s *Service) CheckProfile(id int, form ProfileForm) error {
	if other, err := s.repo.GetByEmail(strings.TrimSpace(form.Email)); err == nil && other.ID != id {
		return ErrEmailExists
	}
	if form.NewPassword == "" {
		return nil
	}
	current, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if bcrypt.CompareHashAndPassword([]byte(current.Password), []byte(form.CurrentPassword)) != nil {
		return ErrInvalidCredentials
	}
	return nil
}

// UpdateProfile applies form to the account after CheckProfile passes.
func (s *Service) UpdateProfile(id int, form ProfileForm, avatar *string) (User, error) {
	existing, err := s.repo.GetByID(id)
	if err != nil {
		return User{}, err
	}
	if err := s.CheckProfile(id, form); err != nil {
		return User{}, err
	}

	existing.Name = strings.TrimSpace(form.Name)
	existing.Email = strings.TrimSpace(form.Email)
	existing.AvatarPic = avatar
	existing.Password = ""
	if form.NewPassword != "" {
		hashed, err := hashPassword(form.NewPassword)
		if err != nil {
			return User{}, err
		}
		existing.Password = hashed
	}
	existing.UpdatedAt = s.now().UTC().Format(time.RFC3339)
	return s.repo.Update(id, existing)
}

func hashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// adminPassword accepts an operator supplied bcrypt hash as is, so
// ADMIN_PASSWORD can be provisioned pre-hashed.
func adminPassword(password string) (string, error) {
	if isBcryptHash(password) {
		return password, nil
	}
	return hashPassword(password)
}

func isBcryptHash(value string) bool {
	_, err := bcrypt.Cost([]byte(value))
	return err == nil
}
