package mongo

import (
	"context"
	"errors"
	"time"

	"adoptme/internal/domain/adoptions"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

type adoptionDoc struct {
	ID        bson.ObjectID `bson:"_id"`
	Owner     bson.ObjectID `bson:"owner"`
	Pet       bson.ObjectID `bson:"pet"`
	CreatedAt time.Time     `bson:"created_at"`
}

type AdoptionsRepo struct {
	coll *mongo.Collection
}

func NewAdoptionsRepo(db *mongo.Database) *AdoptionsRepo {
	return &AdoptionsRepo{coll: db.Collection(adoptionsCollection)}
}

func (r *AdoptionsRepo) Create(ctx context.Context, a adoptions.Adoption) error {
	id, ok1 := parseID(a.ID)
	owner, ok2 := parseID(a.Owner)
	pet, ok3 := parseID(a.Pet)
	if !ok1 || !ok2 || !ok3 {
		return errors.New("adoption ids must be ObjectIDs")
	}
	_, err := r.coll.InsertOne(ctx, adoptionDoc{ID: id, Owner: owner, Pet: pet, CreatedAt: a.CreatedAt})
	return err
}

func (r *AdoptionsRepo) GetByID(ctx context.Context, id string) (adoptions.Adoption, error) {
	oid, ok := parseID(id)
	if !ok {
		return adoptions.Adoption{}, adoptions.ErrNotFound
	}
	var doc adoptionDoc
	if err := r.coll.FindOne(ctx, bson.D{{Key: "_id", Value: oid}}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return adoptions.Adoption{}, adoptions.ErrNotFound
		}
		return adoptions.Adoption{}, err
	}
	return doc.toDomain(), nil
}

func (r *AdoptionsRepo) List(ctx context.Context) ([]adoptions.Adoption, error) {
	cur, err := r.coll.Find(ctx, bson.D{}, byInsertion())
	if err != nil {
		return nil, err
	}
	var docs []adoptionDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}
	out := make([]adoptions.Adoption, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.toDomain())
	}
	return out, nil
}

func (d adoptionDoc) toDomain() adoptions.Adoption {
	return adoptions.Adoption{
		ID:        d.ID.Hex(),
		Owner:     d.Owner.Hex(),
		Pet:       d.Pet.Hex(),
		CreatedAt: d.CreatedAt,
	}
}
