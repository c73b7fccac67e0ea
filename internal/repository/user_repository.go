package repository

import (
	"cinex_api/model"
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailTaken         = errors.New("email already taken")
	ErrAlreadyInWatchlist = errors.New("already in watchlist")
)

type IUserRepository interface {
	CreateUser(name string, email string, hashedPassword string) (*model.User, error)
	GetUserByEmail(email string) (*model.User, error)
	GetUserById(userId string) (*model.User, error)
	UpdateUserName(userId string, name string) (*model.User, error)
	AddToWatchlist(userId string, item model.WatchlistItem) (*model.User, error)
	RemoveFromWatchlist(userId string, mediaId int64, mediaType string) (*model.User, error)
}

type UserRepository struct {
	mongodb *mongo.Database
}

func NewUserRepository(mongodb *mongo.Database) *UserRepository {
	return &UserRepository{mongodb: mongodb}
}

//------------------------------------------
//------------------------------------------

func (r *UserRepository) users() *mongo.Collection {
	return r.mongodb.Collection("users")
}

// excludePassword keeps the hash out of every read that is not the login
// credential check.
var excludePassword = options.FindOne().SetProjection(bson.D{
	{Key: "password", Value: 0},
})

func (r *UserRepository) CreateUser(name string, email string, hashedPassword string) (*model.User, error) {
	now := time.Now().UTC()
	user := model.User{
		Id:        primitive.NewObjectID(),
		Name:      name,
		Email:     email,
		Password:  hashedPassword,
		Watchlist: []model.WatchlistItem{},
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := r.users().InsertOne(context.TODO(), user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	user.Password = ""
	return &user, nil
}

func (r *UserRepository) GetUserByEmail(email string) (*model.User, error) {
	var user model.User
	err := r.users().
		FindOne(context.TODO(), bson.D{{Key: "email", Value: email}}).
		Decode(&user)

	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) GetUserById(userId string) (*model.User, error) {
	id, err := primitive.ObjectIDFromHex(userId)
	if err != nil {
		return nil, ErrUserNotFound
	}

	var user model.User
	err = r.users().
		FindOne(context.TODO(), bson.D{{Key: "_id", Value: id}}, excludePassword).
		Decode(&user)

	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) UpdateUserName(userId string, name string) (*model.User, error) {
	id, err := primitive.ObjectIDFromHex(userId)
	if err != nil {
		return nil, ErrUserNotFound
	}

	update := bson.D{
		{Key: "$set", Value: bson.D{
			{Key: "name", Value: name},
			{Key: "updatedAt", Value: time.Now().UTC()},
		}},
	}

	return r.findOneAndUpdate(bson.D{{Key: "_id", Value: id}}, update)
}

// AddToWatchlist pushes in a single conditional update. The filter only
// matches when no entry with the same (mediaId, mediaType) exists, so two
// concurrent adds of the same title cannot both land.
func (r *UserRepository) AddToWatchlist(userId string, item model.WatchlistItem) (*model.User, error) {
	id, err := primitive.ObjectIDFromHex(userId)
	if err != nil {
		return nil, ErrUserNotFound
	}

	filter := bson.D{
		{Key: "_id", Value: id},
		{Key: "watchlist", Value: bson.D{
			{Key: "$not", Value: bson.D{
				{Key: "$elemMatch", Value: bson.D{
					{Key: "mediaId", Value: item.MediaId},
					{Key: "mediaType", Value: item.MediaType},
				}},
			}},
		}},
	}
	update := bson.D{
		{Key: "$push", Value: bson.D{{Key: "watchlist", Value: item}}},
		{Key: "$set", Value: bson.D{{Key: "updatedAt", Value: time.Now().UTC()}}},
	}

	user, err := r.findOneAndUpdate(filter, update)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, ErrUserNotFound) {
		return nil, err
	}

	// No match: either the entry already exists or the account is gone.
	if _, lookupErr := r.GetUserById(userId); lookupErr != nil {
		return nil, lookupErr
	}
	return nil, ErrAlreadyInWatchlist
}

// RemoveFromWatchlist pulls the matching entry. Removing an absent entry
// is a no-op that still returns the current document.
func (r *UserRepository) RemoveFromWatchlist(userId string, mediaId int64, mediaType string) (*model.User, error) {
	id, err := primitive.ObjectIDFromHex(userId)
	if err != nil {
		return nil, ErrUserNotFound
	}

	match := bson.D{{Key: "mediaId", Value: mediaId}}
	if mediaType != "" {
		match = append(match, bson.E{Key: "mediaType", Value: mediaType})
	}
	update := bson.D{
		{Key: "$pull", Value: bson.D{{Key: "watchlist", Value: match}}},
		{Key: "$set", Value: bson.D{{Key: "updatedAt", Value: time.Now().UTC()}}},
	}

	return r.findOneAndUpdate(bson.D{{Key: "_id", Value: id}}, update)
}

func (r *UserRepository) findOneAndUpdate(filter bson.D, update bson.D) (*model.User, error) {
	opts := options.FindOneAndUpdate().
		SetReturnDocument(options.After).
		SetProjection(bson.D{{Key: "password", Value: 0}})

	var user model.User
	err := r.users().
		FindOneAndUpdate(context.TODO(), filter, update, opts).
		Decode(&user)

	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}
