package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/Bryan-Quispe/Computer-Parts/internal/model"
	"github.com/Bryan-Quispe/Computer-Parts/platform/logger"
)

// CollectionName is the collection holding part documents.
const CollectionName = "parts"

type repository struct {
	coll *mongo.Collection
}

func NewPartRepository(collection *mongo.Collection) *repository {
	return &repository{coll: collection}
}

// EnsureIndexes creates the unique index on the custom id.
func EnsureIndexes(ctx context.Context, coll *mongo.Collection) error {
	_, err := coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: fieldCustomID, Value: 1}},
		Options: options.Index().SetUnique(true).SetName("uniq_custom_id"),
	})
	if err != nil {
		return fmt.Errorf("repository.EnsureIndexes: %w", err)
	}
	return nil
}

func (r *repository) List(ctx context.Context) ([]*model.Part, error) {
	const op = "repository.List"

	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		if cerr := cur.Close(ctx); cerr != nil {
			logger.Warn(ctx, "failed to close cursor", logger.String("op", op), logger.ErrorF(cerr))
		}
	}()

	out := make([]*model.Part, 0)
	for cur.Next(ctx) {
		var ent PartEntity
		if err := cur.Decode(&ent); err != nil {
			return nil, fmt.Errorf("%s decode: %w", op, err)
		}
		out = append(out, EntityToModel(&ent))
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("%s cursor: %w", op, err)
	}

	return out, nil
}

func (r *repository) PartByGeneratedID(ctx context.Context, id model.GeneratedID) (*model.Part, error) {
	const op = "repository.PartByGeneratedID"

	p, err := r.findOne(ctx, bson.M{fieldObjectID: id.ObjectID()})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return p, nil
}

func (r *repository) PartByCustomID(ctx context.Context, id model.CustomID) (*model.Part, error) {
	const op = "repository.PartByCustomID"

	p, err := r.findOne(ctx, bson.M{fieldCustomID: id.String()})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return p, nil
}

// Create inserts p under a new generated id. The custom id must be unused
// and the stock non-negative.
func (r *repository) Create(ctx context.Context, p *model.Part) (model.GeneratedID, error) {
	const op = "repository.Create"

	if p == nil {
		return model.GeneratedID{}, fmt.Errorf("%s: %w", op, model.ErrInvalidArgument)
	}

	_, err := r.findOne(ctx, bson.M{fieldCustomID: p.ID.String()})
	switch {
	case err == nil:
		return model.GeneratedID{}, fmt.Errorf("%s: %w", op, model.ErrDuplicatePartID)
	case !errors.Is(err, model.ErrPartNotFound):
		return model.GeneratedID{}, fmt.Errorf("%s: %w", op, err)
	}

	if p.Stock < 0 {
		return model.GeneratedID{}, fmt.Errorf("%s: %w", op, model.ErrNegativeStock)
	}

	ent := EntityFromModel(p)
	ent.ObjectID = bson.NewObjectID()

	if _, err := r.coll.InsertOne(ctx, ent); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return model.GeneratedID{}, fmt.Errorf("%s: %w", op, model.ErrDuplicatePartID)
		}
		return model.GeneratedID{}, fmt.Errorf("%s: %w", op, err)
	}

	p.GeneratedID = model.GeneratedID(ent.ObjectID)
	return p.GeneratedID, nil
}

// UpdateByCustomID merges the supplied fields of upd into the part with
// the given custom id and reports how many documents changed.
func (r *repository) UpdateByCustomID(ctx context.Context, id model.CustomID, upd model.PartUpdate) (int64, error) {
	const op = "repository.UpdateByCustomID"

	if upd.Stock != nil && *upd.Stock < 0 {
		return 0, fmt.Errorf("%s: %w", op, model.ErrNegativeStock)
	}
	if upd.Empty() {
		return 0, nil
	}

	n, err := r.updateOne(ctx, bson.M{fieldCustomID: id.String()}, BuildMergeSet(upd))
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return n, nil
}

func (r *repository) DeleteByCustomID(ctx context.Context, id model.CustomID) (int64, error) {
	const op = "repository.DeleteByCustomID"

	res, err := r.coll.DeleteOne(ctx, bson.M{fieldCustomID: id.String()})
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return res.DeletedCount, nil
}

// UpdateByGeneratedID overwrites every field of the part stored under id.
func (r *repository) UpdateByGeneratedID(ctx context.Context, id model.GeneratedID, p *model.Part) (int64, error) {
	const op = "repository.UpdateByGeneratedID"

	if p == nil {
		return 0, fmt.Errorf("%s: %w", op, model.ErrInvalidArgument)
	}

	n, err := r.updateOne(ctx, bson.M{fieldObjectID: id.ObjectID()}, BuildOverwriteSet(p))
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return n, nil
}

func (r *repository) DeleteByGeneratedID(ctx context.Context, id model.GeneratedID) (int64, error) {
	const op = "repository.DeleteByGeneratedID"

	res, err := r.coll.DeleteOne(ctx, bson.M{fieldObjectID: id.ObjectID()})
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return res.DeletedCount, nil
}

// CreateBatch inserts parts unordered. Parts without a generated id get one.
func (r *repository) CreateBatch(ctx context.Context, parts []*model.Part) error {
	const op = "repository.CreateBatch"

	docs := make([]any, 0, len(parts))
	for _, p := range parts {
		if p == nil {
			continue
		}
		if p.ID == "" {
			return fmt.Errorf("%s: part ID is empty", op)
		}
		if p.GeneratedID.IsZero() {
			p.GeneratedID = model.NewGeneratedID()
		}

		docs = append(docs, EntityFromModel(p))
	}
	if len(docs) == 0 {
		return nil
	}

	_, err := r.coll.InsertMany(ctx, docs, options.InsertMany().SetOrdered(false))
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (r *repository) Count(ctx context.Context) (int64, error) {
	n, err := r.coll.EstimatedDocumentCount(ctx)
	if err != nil {
		return 0, fmt.Errorf("repository.Count: %w", err)
	}
	return n, nil
}

func (r *repository) findOne(ctx context.Context, filter bson.M) (*model.Part, error) {
	var ent PartEntity
	if err := r.coll.FindOne(ctx, filter).Decode(&ent); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, model.ErrPartNotFound
		}
		return nil, err
	}

	return EntityToModel(&ent), nil
}

func (r *repository) updateOne(ctx context.Context, filter, set bson.M) (int64, error) {
	res, err := r.coll.UpdateOne(ctx, filter, bson.M{"$set": set})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return 0, model.ErrDuplicatePartID
		}
		return 0, err
	}
	return res.ModifiedCount, nil
}
