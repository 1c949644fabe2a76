package mongo

import (
	"context"
	"fmt"

	"animal-shelter-dashboard/internal/domain/outcomes"

	"go.mongodb.org/mongo-driver/v2/bson"
	driver "go.mongodb.org/mongo-driver/v2/mongo"
)

type OutcomesRepo struct {
	coll *driver.Collection
}

func NewOutcomesRepo(client *driver.Client, database, collection string) *OutcomesRepo {
	return &OutcomesRepo{coll: client.Database(database).Collection(collection)}
}

func (r *OutcomesRepo) Find(ctx context.Context, p outcomes.Predicate) ([]outcomes.Record, error) {
	filter, err := toFilter(p)
	if err != nil {
		return nil, err
	}

	cur, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("mongo: find: %w", err)
	}
	defer cur.Close(ctx)

	var docs []bson.M
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("mongo: decode: %w", err)
	}

	out := make([]outcomes.Record, 0, len(docs))
	for _, d := range docs {
		rec := outcomes.Record(d)
		out = append(out, rec.WithoutRowKey())
	}
	return out, nil
}

func (r *OutcomesRepo) InsertOne(ctx context.Context, rec outcomes.Record) (string, error) {
	doc := bson.M{}
	for k, v := range rec.WithoutRowKey() {
		doc[k] = v
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return "", fmt.Errorf("mongo: insert: %w", err)
	}

	switch id := res.InsertedID.(type) {
	case bson.ObjectID:
		return id.Hex(), nil
	case nil:
		return "", nil
	default:
		return fmt.Sprint(id), nil
	}
}

func (r *OutcomesRepo) Update(ctx context.Context, p outcomes.Predicate, changes outcomes.Record, many bool) (int64, error) {
	filter, err := toFilter(p)
	if err != nil {
		return 0, err
	}

	var res *driver.UpdateResult
	if many {
		res, err = r.coll.UpdateMany(ctx, filter, toSet(changes))
	} else {
		res, err = r.coll.UpdateOne(ctx, filter, toSet(changes))
	}
	if err != nil {
		return 0, fmt.Errorf("mongo: update: %w", err)
	}
	return res.ModifiedCount, nil
}

func (r *OutcomesRepo) Delete(ctx context.Context, p outcomes.Predicate, many bool) (int64, error) {
	filter, err := toFilter(p)
	if err != nil {
		return 0, err
	}

	var res *driver.DeleteResult
	if many {
		res, err = r.coll.DeleteMany(ctx, filter)
	} else {
		res, err = r.coll.DeleteOne(ctx, filter)
	}
	if err != nil {
		return 0, fmt.Errorf("mongo: delete: %w", err)
	}
	return res.DeletedCount, nil
}
