package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/babetech/borastock/internal/domain/models"
)

// Repository defines the persistence operations backing the settings
// screens and the daily report history. The four stock collections stay
// in memory; only settings and reports are durable.
type Repository interface {
	SaveDailyReport(ctx context.Context, report models.DailyReport) error
	LatestDailyReports(ctx context.Context, limit int64) ([]models.DailyReport, error)
	CompanyInfo(ctx context.Context) (models.CompanyInfo, error)
	SaveCompanyInfo(ctx context.Context, info models.CompanyInfo) error
	Preferences(ctx context.Context) (models.Preferences, error)
	SavePreferences(ctx context.Context, prefs models.Preferences) error
}

const (
	reportsCollection  = "daily_reports"
	settingsCollection = "settings"

	companyInfoKey = "company_info"
	preferencesKey = "preferences"
)

// MongoDBRepository implements the Repository interface for MongoDB.
type MongoDBRepository struct {
	client *mongo.Client
	dbName string
}

// NewMongoDBRepository creates a new MongoDB repository.
func NewMongoDBRepository(ctx context.Context, uri string, dbName string) (*MongoDBRepository, error) {
	clientOptions := options.Client().ApplyURI(uri)
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	// Ping the database to verify connection
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	return &MongoDBRepository{client: client, dbName: dbName}, nil
}

func (r *MongoDBRepository) collection(name string) *mongo.Collection {
	return r.client.Database(r.dbName).Collection(name)
}

// SaveDailyReport appends a daily report to the history.
func (r *MongoDBRepository) SaveDailyReport(ctx context.Context, report models.DailyReport) error {
	if _, err := r.collection(reportsCollection).InsertOne(ctx, report); err != nil {
		return fmt.Errorf("failed to insert daily report: %w", err)
	}
	return nil
}

// LatestDailyReports returns up to limit reports, most recent first.
func (r *MongoDBRepository) LatestDailyReports(ctx context.Context, limit int64) ([]models.DailyReport, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}}).SetLimit(limit)
	cursor, err := r.collection(reportsCollection).Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query daily reports: %w", err)
	}
	defer cursor.Close(ctx)

	var reports []models.DailyReport
	if err := cursor.All(ctx, &reports); err != nil {
		return nil, fmt.Errorf("failed to decode daily reports: %w", err)
	}
	return reports, nil
}

type companyInfoDoc struct {
	ID   string             `bson:"_id"`
	Info models.CompanyInfo `bson:"info"`
}

type preferencesDoc struct {
	ID    string             `bson:"_id"`
	Prefs models.Preferences `bson:"prefs"`
}

// CompanyInfo loads the stored company profile. A missing document
// yields the zero profile, not an error.
func (r *MongoDBRepository) CompanyInfo(ctx context.Context) (models.CompanyInfo, error) {
	var doc companyInfoDoc
	err := r.collection(settingsCollection).FindOne(ctx, bson.M{"_id": companyInfoKey}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.CompanyInfo{}, nil
	}
	if err != nil {
		return models.CompanyInfo{}, fmt.Errorf("failed to load company info: %w", err)
	}
	return doc.Info, nil
}

// SaveCompanyInfo upserts the company profile.
func (r *MongoDBRepository) SaveCompanyInfo(ctx context.Context, info models.CompanyInfo) error {
	doc := companyInfoDoc{ID: companyInfoKey, Info: info}
	opts := options.Replace().SetUpsert(true)
	if _, err := r.collection(settingsCollection).ReplaceOne(ctx, bson.M{"_id": companyInfoKey}, doc, opts); err != nil {
		return fmt.Errorf("failed to save company info: %w", err)
	}
	return nil
}

// Preferences loads the stored preferences. A missing document yields
// the product defaults.
func (r *MongoDBRepository) Preferences(ctx context.Context) (models.Preferences, error) {
	var doc preferencesDoc
	err := r.collection(settingsCollection).FindOne(ctx, bson.M{"_id": preferencesKey}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Preferences{Theme: "system", Language: "fr", Notifications: true}, nil
	}
	if err != nil {
		return models.Preferences{}, fmt.Errorf("failed to load preferences: %w", err)
	}
	return doc.Prefs, nil
}

// SavePreferences upserts the preferences.
func (r *MongoDBRepository) SavePreferences(ctx context.Context, prefs models.Preferences) error {
	doc := preferencesDoc{ID: preferencesKey, Prefs: prefs}
	opts := options.Replace().SetUpsert(true)
	if _, err := r.collection(settingsCollection).ReplaceOne(ctx, bson.M{"_id": preferencesKey}, doc, opts); err != nil {
		return fmt.Errorf("failed to save preferences: %w", err)
	}
	return nil
}

// Close closes the MongoDB connection.
func (r *MongoDBRepository) Close(ctx context.Context) error {
	return r.client.Disconnect(ctx)
}
