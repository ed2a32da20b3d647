package screenings

import (
	"context"
	"screening-service/internal/app/contracts"
	"screening-service/internal/app/models"
	"screening-service/internal/pkg/exceptions"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	syncAuditRepositoryInstance contracts.SyncAuditRepository
	onceSyncAuditRepository     sync.Once
)

type syncAuditMongoRepository struct {
	Collection *mongo.Collection
}

func NewSyncAuditMongoRepository(db *mongo.Client, dbName, collectionName string) contracts.SyncAuditRepository {
	onceSyncAuditRepository.Do(func() {
		syncAuditRepositoryInstance = &syncAuditMongoRepository{
			Collection: db.Database(dbName).Collection(collectionName),
		}
	})
	return syncAuditRepositoryInstance
}

func (repo *syncAuditMongoRepository) Insert(ctx context.Context, entry *models.SyncAuditEntry) error {
	_, err := repo.Collection.InsertOne(ctx, entry)
	if err != nil {
		return exceptions.ErrMongoDBInsertDocument(err)
	}
	return nil
}

func (repo *syncAuditMongoRepository) FindByEventID(ctx context.Context, eventID string) ([]models.SyncAuditEntry, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := repo.Collection.Find(ctx, bson.M{"event_id": eventID}, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}

	var entries []models.SyncAuditEntry
	err = cursor.All(ctx, &entries)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return entries, nil
}
