package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	MediaTypeMovie = "movie"
	MediaTypeTv    = "tv"
)

type User struct {
	Id        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string             `bson:"name" json:"name"`
	Email     string             `bson:"email" json:"email"`
	Password  string             `bson:"password,omitempty" json:"-"`
	Watchlist []WatchlistItem    `bson:"watchlist" json:"watchlist"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

type WatchlistItem struct {
	MediaId    int64     `bson:"mediaId" json:"mediaId"`
	MediaType  string    `bson:"mediaType" json:"mediaType"`
	Title      string    `bson:"title" json:"title"`
	PosterPath *string   `bson:"posterPath,omitempty" json:"posterPath,omitempty"`
	AddedAt    time.Time `bson:"addedAt" json:"addedAt"`
}

//---------------------------------------
//---------------------------------------

type SignupReq struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UpdateProfileReq struct {
	Name string `json:"name"`
}

type AddWatchlistReq struct {
	MediaId    int64   `json:"mediaId"`
	MediaType  string  `json:"mediaType"`
	Title      string  `json:"title"`
	PosterPath *string `json:"posterPath"`
}

//---------------------------------------
//---------------------------------------

type UserWithTokenRes struct {
	User  *User  `json:"user"`
	Token string `json:"token"`
}

type UserRes struct {
	User *User `json:"user"`
}

type WatchlistRes struct {
	Watchlist []WatchlistItem `json:"watchlist"`
}
