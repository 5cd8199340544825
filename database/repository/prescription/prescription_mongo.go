package prescriptionRepo

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

// MongoPrescriptionRepo implements PrescriptionRepository using MongoDB.
type MongoPrescriptionRepo struct {
	coll *mongo.Collection
}

// NewMongoPrescriptionRepo constructs a new instance of MongoPrescriptionRepo.
func NewMongoPrescriptionRepo() PrescriptionRepository {
	db := database.MongoClient.Database(config.AppConfig.DatabaseName)
	return &MongoPrescriptionRepo{coll: db.Collection("prescriptions")}
}

func (repo *MongoPrescriptionRepo) Create(rx *models.Prescription) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := repo.coll.InsertOne(ctx, rx); err != nil {
		return fmt.Errorf("error creating prescription: %w", err)
	}
	return nil
}

func (repo *MongoPrescriptionRepo) getOne(filter bson.M) (*models.Prescription, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var rx models.Prescription
	if err := repo.coll.FindOne(ctx, filter).Decode(&rx); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("error fetching prescription: %w", err)
	}
	return &rx, nil
}

func (repo *MongoPrescriptionRepo) GetByID(id string) (*models.Prescription, error) {
	return repo.getOne(bson.M{"id": id})
}

func (repo *MongoPrescriptionRepo) GetByAppointment(appointmentID string) (*models.Prescription, error) {
	return repo.getOne(bson.M{"appointmentId": appointmentID})
}

func (repo *MongoPrescriptionRepo) ListByPatient(patientID string) ([]models.Prescription, error) {
	return repo.list(bson.M{"patientId": patientID})
}

func (repo *MongoPrescriptionRepo) ListByDoctor(doctorID string) ([]models.Prescription, error) {
	return repo.list(bson.M{"doctorId": doctorID})
}

func (repo *MongoPrescriptionRepo) list(filter bson.M) ([]models.Prescription, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	cursor, err := repo.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error listing prescriptions: %w", err)
	}
	defer cursor.Close(ctx)

	var prescriptions []models.Prescription
	for cursor.Next(ctx) {
		var rx models.Prescription
		if err := cursor.Decode(&rx); err != nil {
			return nil, fmt.Errorf("error decoding prescription: %w", err)
		}
		prescriptions = append(prescriptions, rx)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return prescriptions, nil
}
