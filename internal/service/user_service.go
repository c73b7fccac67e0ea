package service

import (
	"cinex_api/internal/repository"
	"cinex_api/model"
	"strings"
	"time"
)

type IUserService interface {
	UpdateProfile(userId string, name string) (*model.User, error)
	AddToWatchlist(userId string, req *model.AddWatchlistReq) (*model.User, error)
	RemoveFromWatchlist(userId string, mediaId int64, mediaType string) (*model.User, error)
}

type UserService struct {
	userRepo repository.IUserRepository
}

func NewUserService(userRepo repository.IUserRepository) *UserService {
	return &UserService{
		userRepo: userRepo,
	}
}

//------------------------------------------
//------------------------------------------

func (s *UserService) UpdateProfile(userId string, name string) (*model.User, error) {
	return s.userRepo.UpdateUserName(userId, strings.TrimSpace(name))
}

func (s *UserService) AddToWatchlist(userId string, req *model.AddWatchlistReq) (*model.User, error) {
	item := model.WatchlistItem{
		MediaId:    req.MediaId,
		MediaType:  req.MediaType,
		Title:      req.Title,
		PosterPath: req.PosterPath,
		AddedAt:    time.Now().UTC(),
	}
	return s.userRepo.AddToWatchlist(userId, item)
}

func (s *UserService) RemoveFromWatchlist(userId string, mediaId int64, mediaType string) (*model.User, error) {
	return s.userRepo.RemoveFromWatchlist(userId, mediaId, mediaType)
}
