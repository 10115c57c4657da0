package signup

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

//MongoHelper owns the client for the lifetime of the process. Connect and
// Disconnect are called once, from main
type MongoHelper struct {
	client   *mongo.Client
	database string
}

func Connect(ctx context.Context, uri, database string) (*MongoHelper, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}

	if err = client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, err
	}

	return &MongoHelper{client: client, database: database}, nil
}

func (h *MongoHelper) Collection(name string) *mongo.Collection {
	return h.client.Database(h.database).Collection(name)
}

func (h *MongoHelper) Disconnect(ctx context.Context) error {
	return h.client.Disconnect(ctx)
}

type mongoAccountRepository struct {
	collection *mongo.Collection
}

func NewMongoAccountRepository(c *mongo.Collection) Repository {
	return &mongoAccountRepository{collection: c}
}

func (m *mongoAccountRepository) Add(ctx context.Context, r AddAccountRequest) (*Account, error) {
	acc := Account{ID: NewID(), Name: r.Name, Email: r.Email, Password: r.Password}
	if _, err := m.collection.InsertOne(ctx, &acc); err != nil {
		return nil, err
	}
	return &acc, nil
}
