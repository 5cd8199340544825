package userRepo

import (
	"context"
	"fmt"
	"time"

	"mediconnect/config"
	"mediconnect/database"
	"mediconnect/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoUserRepo implements UserRepository using MongoDB.
type MongoUserRepo struct {
	coll *mongo.Collection
}

// NewMongoUserRepo constructs a new instance of MongoUserRepo.
func NewMongoUserRepo() UserRepository {
	db := database.MongoClient.Database(config.AppConfig.DatabaseName)
	return &MongoUserRepo{coll: db.Collection("users")}
}

func (repo *MongoUserRepo) Create(user *models.User) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := repo.coll.InsertOne(ctx, user); err != nil {
		return fmt.Errorf("error creating user: %w", err)
	}
	return nil
}

func (repo *MongoUserRepo) getOne(filter bson.M) (*models.User, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var user models.User
	if err := repo.coll.FindOne(ctx, filter).Decode(&user); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("error fetching user: %w", err)
	}
	return &user, nil
}

func (repo *MongoUserRepo) GetByID(id string) (*models.User, error) {
	return repo.getOne(bson.M{"id": id})
}

func (repo *MongoUserRepo) GetByEmail(email string) (*models.User, error) {
	return repo.getOne(bson.M{"email": email})
}

func (repo *MongoUserRepo) GetByUsername(username string) (*models.User, error) {
	return repo.getOne(bson.M{"username": username})
}

func (repo *MongoUserRepo) Update(user *models.User) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	filter := bson.M{"id": user.ID}
	update := bson.M{"$set": user}
	res, err := repo.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("error updating user %s: %w", user.ID, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("user with id %s not found", user.ID)
	}
	return nil
}

func (repo *MongoUserRepo) Delete(id string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	res, err := repo.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("error deleting user %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("user with id %s not found", id)
	}
	return nil
}

func (repo *MongoUserRepo) List() ([]models.User, error) {
	return repo.list(bson.M{})
}

func (repo *MongoUserRepo) ListDoctors(specialization, location string) ([]models.User, error) {
	filter := bson.M{"role": models.RoleDoctor}
	if specialization != "" {
		filter["specialization"] = specialization
	}
	if location != "" {
		filter["location"] = location
	}
	return repo.list(filter)
}

func (repo *MongoUserRepo) list(filter bson.M) ([]models.User, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	cursor, err := repo.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error listing users: %w", err)
	}
	defer cursor.Close(ctx)

	var users []models.User
	for cursor.Next(ctx) {
		var u models.User
		if err := cursor.Decode(&u); err != nil {
			return nil, fmt.Errorf("error decoding user: %w", err)
		}
		users = append(users, u)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return users, nil
}
