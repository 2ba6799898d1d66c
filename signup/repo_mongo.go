package signup

import (
	"context"
	"time"

	"github.com/rs/xid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

type mongoUserRepository struct {
	collection *mongo.Collection
}

type dbUser struct {
	ID        string `bson:"_id"`
	Name      string
	Email     string
	Password  string
	CreatedAt time.Time
}

//NewMongoUserRepository makes sure the unique email index exists before
// returning the store.
func NewMongoUserRepository(ctx context.Context, c *mongo.Collection) (Storage, error) {
	_, err := c.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return nil, err
	}
	return &mongoUserRepository{collection: c}, nil
}

func (m *mongoUserRepository) UserExists(ctx context.Context, email string) (bool, error) {
	n, err := m.collection.CountDocuments(ctx, bson.M{"email": email}, options.Count().SetLimit(1))
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (m *mongoUserRepository) SaveUser(ctx context.Context, u User) error {
	dbu := dbUserFromUser(u)
	_, err := m.collection.InsertOne(ctx, &dbu)
	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicateAccount
	}
	return err
}

func (m *mongoUserRepository) Ping(ctx context.Context) error {
	return m.collection.Database().Client().Ping(ctx, readpref.Primary())
}

func dbUserFromUser(u User) dbUser {
	return dbUser{xid.New().String(), u.Name, u.Email, u.Password, time.Now().UTC()}
}
