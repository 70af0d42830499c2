package mongo

import (
	"context"
	"errors"
	"time"

	"adoptme/internal/domain/pets"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

type petDoc struct {
	ID        bson.ObjectID  `bson:"_id"`
	Name      string         `bson:"name"`
	Specie    string         `bson:"specie"`
	BirthDate *time.Time     `bson:"birthDate,omitempty"`
	Adopted   bool           `bson:"adopted"`
	Owner     *bson.ObjectID `bson:"owner,omitempty"`
	Image     string         `bson:"image"`
	CreatedAt time.Time      `bson:"created_at"`
	UpdatedAt time.Time      `bson:"updated_at"`
}

func (d petDoc) toDomain() pets.Pet {
	p := pets.Pet{
		ID:        d.ID.Hex(),
		Name:      d.Name,
		Specie:    d.Specie,
		BirthDate: d.BirthDate,
		Adopted:   d.Adopted,
		Image:     d.Image,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
	if d.Owner != nil {
		p.Owner = d.Owner.Hex()
	}
	return p
}

type PetsRepo struct {
	coll *mongo.Collection
}

func NewPetsRepo(db *mongo.Database) *PetsRepo {
	return &PetsRepo{coll: db.Collection(petsCollection)}
}

func (r *PetsRepo) Create(ctx context.Context, p pets.Pet) error {
	oid, ok := parseID(p.ID)
	if !ok {
		return errors.New("pet id must be an ObjectID")
	}
	doc := petDoc{
		ID:        oid,
		Name:      p.Name,
		Specie:    p.Specie,
		BirthDate: p.BirthDate,
		Adopted:   p.Adopted,
		Image:     p.Image,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
	if owner, ok := parseID(p.Owner); ok {
		doc.Owner = &owner
	}
	_, err := r.coll.InsertOne(ctx, doc)
	return err
}

func (r *PetsRepo) GetByID(ctx context.Context, id string) (pets.Pet, error) {
	oid, ok := parseID(id)
	if !ok {
		return pets.Pet{}, pets.ErrNotFound
	}
	var doc petDoc
	if err := r.coll.FindOne(ctx, bson.D{{Key: "_id", Value: oid}}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return pets.Pet{}, pets.ErrNotFound
		}
		return pets.Pet{}, err
	}
	return doc.toDomain(), nil
}

func (r *PetsRepo) List(ctx context.Context) ([]pets.Pet, error) {
	cur, err := r.coll.Find(ctx, bson.D{}, byInsertion())
	if err != nil {
		return nil, err
	}
	var docs []petDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}
	out := make([]pets.Pet, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.toDomain())
	}
	return out, nil
}

func (r *PetsRepo) Update(ctx context.Context, p pets.Pet) error {
	oid, ok := parseID(p.ID)
	if !ok {
		return pets.ErrNotFound
	}

	set := bson.D{
		{Key: "name", Value: p.Name},
		{Key: "specie", Value: p.Specie},
		{Key: "image", Value: p.Image},
		{Key: "updated_at", Value: p.UpdatedAt},
	}
	var update bson.D
	if p.BirthDate != nil {
		set = append(set, bson.E{Key: "birthDate", Value: *p.BirthDate})
		update = bson.D{{Key: "$set", Value: set}}
	} else {
		update = bson.D{
			{Key: "$set", Value: set},
			{Key: "$unset", Value: bson.D{{Key: "birthDate", Value: ""}}},
		}
	}

	res, err := r.coll.UpdateOne(ctx, bson.D{{Key: "_id", Value: oid}}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return pets.ErrNotFound
	}
	return nil
}

func (r *PetsRepo) Delete(ctx context.Context, id string) error {
	oid, ok := parseID(id)
	if !ok {
		return pets.ErrNotFound
	}
	res, err := r.coll.DeleteOne(ctx, bson.D{{Key: "_id", Value: oid}})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return pets.ErrNotFound
	}
	return nil
}

// MarkAdopted filtra por adopted=false: si MatchedCount es 0, un FindOne
// distingue "no existe" de "ya adoptada".
func (r *PetsRepo) MarkAdopted(ctx context.Context, petID, ownerID string, at time.Time) error {
	oid, ok := parseID(petID)
	if !ok {
		return pets.ErrNotFound
	}
	owner, ok := parseID(ownerID)
	if !ok {
		return errors.New("owner id must be an ObjectID")
	}

	res, err := r.coll.UpdateOne(ctx,
		bson.D{{Key: "_id", Value: oid}, {Key: "adopted", Value: false}},
		bson.D{{Key: "$set", Value: bson.D{
			{Key: "adopted", Value: true},
			{Key: "owner", Value: owner},
			{Key: "updated_at", Value: at},
		}}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 1 {
		return nil
	}

	if _, err := r.GetByID(ctx, petID); err != nil {
		return err
	}
	return pets.ErrAlreadyAdopted
}
