package appointmentRepo

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

// MongoAppointmentRepo implements AppointmentRepository using MongoDB.
type MongoAppointmentRepo struct {
	coll *mongo.Collection
}

// NewMongoAppointmentRepo constructs a new instance of MongoAppointmentRepo.
func NewMongoAppointmentRepo() AppointmentRepository {
	db := database.MongoClient.Database(config.AppConfig.DatabaseName)
	return &MongoAppointmentRepo{coll: db.Collection("appointments")}
}

func (repo *MongoAppointmentRepo) Create(apt *models.Appointment) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := repo.coll.InsertOne(ctx, apt); err != nil {
		return fmt.Errorf("error creating appointment: %w", err)
	}
	return nil
}

func (repo *MongoAppointmentRepo) GetByID(id string) (*models.Appointment, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var apt models.Appointment
	if err := repo.coll.FindOne(ctx, bson.M{"id": id}).Decode(&apt); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("error fetching appointment with id %s: %w", id, err)
	}
	return &apt, nil
}

func (repo *MongoAppointmentRepo) Update(apt *models.Appointment) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	filter := bson.M{"id": apt.ID}
	update := bson.M{"$set": apt}
	res, err := repo.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("error updating appointment %s: %w", apt.ID, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("appointment with id %s not found", apt.ID)
	}
	return nil
}

func (repo *MongoAppointmentRepo) FindActiveSlot(doctorID, date, timeOfDay string) (*models.Appointment, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	filter := bson.M{
		"doctorId": doctorID,
		"date":     date,
		"time":     timeOfDay,
		"status":   bson.M{"$ne": models.StatusCancelled},
	}
	var apt models.Appointment
	if err := repo.coll.FindOne(ctx, filter).Decode(&apt); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("error checking slot occupancy: %w", err)
	}
	return &apt, nil
}

func (repo *MongoAppointmentRepo) ListByPatient(patientID string) ([]models.Appointment, error) {
	return repo.list(bson.M{"patientId": patientID})
}

func (repo *MongoAppointmentRepo) ListByDoctor(doctorID string) ([]models.Appointment, error) {
	return repo.list(bson.M{"doctorId": doctorID})
}

func (repo *MongoAppointmentRepo) List() ([]models.Appointment, error) {
	return repo.list(bson.M{})
}

func (repo *MongoAppointmentRepo) list(filter bson.M) ([]models.Appointment, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	cursor, err := repo.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error listing appointments: %w", err)
	}
	defer cursor.Close(ctx)

	var appointments []models.Appointment
	for cursor.Next(ctx) {
		var apt models.Appointment
		if err := cursor.Decode(&apt); err != nil {
			return nil, fmt.Errorf("error decoding appointment: %w", err)
		}
		appointments = append(appointments, apt)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return appointments, nil
}
