package questionnaires

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"flashcard-rest/src/models"
)

// MongoRepository stores one document per questionnaire, keyed by _id.
type MongoRepository struct {
	collection *mongo.Collection
	timeout    time.Duration
}

func NewMongoRepository(collection *mongo.Collection, timeout time.Duration) *MongoRepository {
	return &MongoRepository{collection: collection, timeout: timeout}
}

func (r *MongoRepository) FindByID(ctx context.Context, id string) (models.Questionnaire, bool, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	var q models.Questionnaire
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&q)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Questionnaire{}, false, nil
	}
	if err != nil {
		return models.Questionnaire{}, false, fmt.Errorf("find questionnaire %s: %w", id, err)
	}
	return q, true, nil
}

func (r *MongoRepository) FindAll(ctx context.Context, sort models.SortParams) ([]models.Questionnaire, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	order := sort.GetSortOrder()
	sortDoc := bson.D{{Key: "_id", Value: order}}
	if sort.SortBy == models.SortByTitle {
		sortDoc = bson.D{{Key: "title", Value: order}, {Key: "_id", Value: order}}
	}

	cursor, err := r.collection.Find(ctx, bson.M{}, options.Find().SetSort(sortDoc))
	if err != nil {
		return nil, fmt.Errorf("find questionnaires: %w", err)
	}
	defer cursor.Close(ctx)

	list := []models.Questionnaire{}
	if err := cursor.All(ctx, &list); err != nil {
		return nil, fmt.Errorf("decode questionnaires: %w", err)
	}
	return list, nil
}

func (r *MongoRepository) Save(ctx context.Context, q models.Questionnaire) (models.Questionnaire, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	_, err := r.collection.ReplaceOne(ctx, bson.M{"_id": q.ID}, q, options.Replace().SetUpsert(true))
	if err != nil {
		return models.Questionnaire{}, fmt.Errorf("save questionnaire %s: %w", q.ID, err)
	}
	return q, nil
}

func (r *MongoRepository) DeleteByID(ctx context.Context, id string) error {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	if _, err := r.collection.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return fmt.Errorf("delete questionnaire %s: %w", id, err)
	}
	return nil
}
