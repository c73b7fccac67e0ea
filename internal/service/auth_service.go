package service

import (
	"cinex_api/internal/repository"
	"cinex_api/model"
	"cinex_api/util"
	"errors"
)

// ErrInvalidCredentials covers both unknown email and wrong password so
// callers cannot tell which one failed.
var ErrInvalidCredentials = errors.New("invalid email or password")

type IAuthService interface {
	Signup(name string, email string, password string) (*model.User, string, error)
	Login(email string, password string) (*model.User, string, error)
}

type AuthService struct {
	userRepo repository.IUserRepository
}

func NewAuthService(userRepo repository.IUserRepository) *AuthService {
	return &AuthService{
		userRepo: userRepo,
	}
}

//------------------------------------------
//------------------------------------------

// Signup hashes the password exactly once and stores the new user. A
// hashing failure aborts the operation; a user is never stored with a
// plaintext password.
func (s *AuthService) Signup(name string, email string, password string) (*model.User, string, error) {
	hashedPassword, err := util.HashPassword(password)
	if err != nil {
		return nil, "", err
	}

	user, err := s.userRepo.CreateUser(name, util.NormalizeEmail(email), hashedPassword)
	if err != nil {
		return nil, "", err
	}

	token, err := util.SignToken(user.Id.Hex())
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}

func (s *AuthService) Login(email string, password string) (*model.User, string, error) {
	user, err := s.userRepo.GetUserByEmail(util.NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}

	if !util.CheckPassword(password, user.Password) {
		return nil, "", ErrInvalidCredentials
	}

	token, err := util.SignToken(user.Id.Hex())
	if err != nil {
		return nil, "", err
	}

	user.Password = ""
	return user, token, nil
}
