package usecases

import (
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"recipe-server/entities"
	"recipe-server/repositories"
)

type UserUseCase struct {
	UserRepo  repositories.UserRepository
	TokenRepo repositories.AuthTokenRepository
}

func NewUserUseCase(userRepo repositories.UserRepository, tokenRepo repositories.AuthTokenRepository) *UserUseCase {
	return &UserUseCase{
		UserRepo:  userRepo,
		TokenRepo: tokenRepo,
	}
}

// normalizeEmail lowercases only the domain part. The local part of an
// address is case-sensitive per RFC 5321, so it is kept exactly as given.
func normalizeEmail(email string) string {
	at := strings.LastIndex(email, "@")
	if at < 0 {
		return email
	}
	return email[:at+1] + strings.ToLower(email[at+1:])
}

// CreateUser creates a user with a normalized email and a bcrypt-hashed
// password. An empty password leaves the account without a usable
// password until one is set.
func (uc *UserUseCase) CreateUser(email, password, name string) (*entities.User, error) {
	if email == "" {
		return nil, ErrEmailRequired
	}

	user := &entities.User{
		Email:    normalizeEmail(email),
		Name:     name,
		IsActive: true,
	}

	if password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)
	}

	if err := uc.UserRepo.Create(user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	return user, nil
}

// CreateSuperuser creates a user and promotes it to staff + superuser.
func (uc *UserUseCase) CreateSuperuser(email, password string) (*entities.User, error) {
	user, err := uc.CreateUser(email, password, "")
	if err != nil {
		return nil, err
	}

	user.IsStaff = true
	user.IsSuperuser = true
	if err := uc.UserRepo.Update(user); err != nil {
		return nil, err
	}

	return user, nil
}

// Authenticate checks email + password against an active account. The
// error never reveals whether the user exists or the password was wrong.
func (uc *UserUseCase) Authenticate(email, password string) (*entities.User, error) {
	user, err := uc.UserRepo.GetByEmail(normalizeEmail(email))
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	if !user.IsActive || user.PasswordHash == "" {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

// GetUser retrieves a user by ID
func (uc *UserUseCase) GetUser(id uint) (*entities.User, error) {
	user, err := uc.UserRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return user, nil
}

// UserUpdate carries the profile fields a PATCH may change. Nil fields
// are left untouched.
type UserUpdate struct {
	Email    *string
	Name     *string
	Password *string
}

// UpdateUser applies a partial profile update. Changing the password
// revokes the user's auth token so stale bearers stop working.
// The new password is hashed before anything is written, so a hashing
// failure rejects the whole update instead of half of it.
func (uc *UserUseCase) UpdateUser(userID uint, upd UserUpdate) (*entities.User, error) {
	user, err := uc.GetUser(userID)
	if err != nil {
		return nil, err
	}

	if upd.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*upd.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)
	}
	if upd.Email != nil {
		if *upd.Email == "" {
			return nil, ErrEmailRequired
		}
		user.Email = normalizeEmail(*upd.Email)
	}
	if upd.Name != nil {
		user.Name = *upd.Name
	}

	if err := uc.UserRepo.Update(user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	if upd.Password != nil {
		if err := uc.TokenRepo.DeleteByUserID(user.ID); err != nil {
			return nil, err
		}
	}

	return user, nil
}

// SetPassword rehashes and persists a new password, then deletes the
// user's token to force a fresh login.
func (uc *UserUseCase) SetPassword(user *entities.User, newPassword string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user.PasswordHash = string(hash)
	if err := uc.UserRepo.Update(user); err != nil {
		return err
	}

	return uc.TokenRepo.DeleteByUserID(user.ID)
}
