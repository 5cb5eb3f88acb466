package bootstrap

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"bloodlink-backend/internal/models"
)

// SeedGeography loads districts.json / upazilas.json into their collections
// when those collections are still empty. The dataset itself is external
// reference data; we only mirror it so lookups go through one database.
func SeedGeography(db *mongo.Database, dataDir string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := seedCollection[models.District](ctx, db.Collection("districts"), filepath.Join(dataDir, "districts.json")); err != nil {
		return err
	}
	return seedCollection[models.Upazila](ctx, db.Collection("upazilas"), filepath.Join(dataDir, "upazilas.json"))
}

func seedCollection[T any](ctx context.Context, col *mongo.Collection, path string) error {
	n, err := col.CountDocuments(ctx, bson.D{})
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		// Missing seed file is not fatal; the deployment may load the
		// dataset some other way.
		log.Printf("geography seed skipped: %v", err)
		return nil
	}

	var rows []T
	if err := json.Unmarshal(raw, &rows); err != nil {
		return err
	}
	if len(rows) == 0 {
		return nil
	}

	docs := make([]interface{}, len(rows))
	for i := range rows {
		docs[i] = rows[i]
	}
	_, err = col.InsertMany(ctx, docs)
	if err == nil {
		log.Printf("seeded %s with %d rows", col.Name(), len(rows))
	}
	return err
}
