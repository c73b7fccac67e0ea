package mongodb

import (
	"cinex_api/configs"
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoDatabase struct {
	Db     *mongo.Database
	client *mongo.Client
}

func NewDatabase() (*MongoDatabase, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	opts := options.Client().ApplyURI(configs.GetConfigs().MongodbDatabaseUrl)
	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, err
	}
	err = client.Ping(context.TODO(), nil)
	if err != nil {
		return nil, err
	}
	return &MongoDatabase{
		client: client,
		Db:     client.Database(configs.GetConfigs().MongodbDatabaseName),
	}, nil
}

// EnsureIndexes creates the unique email index that backs the
// duplicate-signup check.
func (d *MongoDatabase) EnsureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := d.Db.Collection("users").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

func (d *MongoDatabase) Close() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := d.client.Disconnect(ctx); err != nil {
		panic(err)
	}
}

func (d *MongoDatabase) GetDB() *mongo.Database {
	return d.Db
}
