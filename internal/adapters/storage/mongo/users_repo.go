package mongo

import (
	"context"
	"errors"
	"time"

	"adoptme/internal/domain/users"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

type petRef struct {
	ID bson.ObjectID `bson:"_id"`
}

type userDoc struct {
	ID        bson.ObjectID `bson:"_id"`
	FirstName string        `bson:"first_name"`
	LastName  string        `bson:"last_name"`
	Email     string        `bson:"email"`
	Password  string        `bson:"password"`
	Role      string        `bson:"role"`
	Pets      []petRef      `bson:"pets"`
	CreatedAt time.Time     `bson:"created_at"`
	UpdatedAt time.Time     `bson:"updated_at"`
}

func (d userDoc) toDomain() users.User {
	u := users.User{
		ID:        d.ID.Hex(),
		FirstName: d.FirstName,
		LastName:  d.LastName,
		Email:     d.Email,
		Password:  d.Password,
		Role:      users.Role(d.Role),
		Pets:      make([]string, 0, len(d.Pets)),
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
	for _, p := range d.Pets {
		u.Pets = append(u.Pets, p.ID.Hex())
	}
	return u
}

type UsersRepo struct {
	coll *mongo.Collection
}

func NewUsersRepo(db *mongo.Database) *UsersRepo {
	return &UsersRepo{coll: db.Collection(usersCollection)}
}

func (r *UsersRepo) Create(ctx context.Context, u users.User) error {
	oid, ok := parseID(u.ID)
	if !ok {
		return errors.New("user id must be an ObjectID")
	}

	doc := userDoc{
		ID:        oid,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		Password:  u.Password,
		Role:      string(u.Role),
		Pets:      make([]petRef, 0, len(u.Pets)),
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
	for _, id := range u.Pets {
		if pid, ok := parseID(id); ok {
			doc.Pets = append(doc.Pets, petRef{ID: pid})
		}
	}

	_, err := r.coll.InsertOne(ctx, doc)
	if mongo.IsDuplicateKeyError(err) {
		return users.ErrEmailTaken
	}
	return err
}

func (r *UsersRepo) GetByID(ctx context.Context, id string) (users.User, error) {
	oid, ok := parseID(id)
	if !ok {
		return users.User{}, users.ErrNotFound
	}
	return r.findOne(ctx, bson.D{{Key: "_id", Value: oid}})
}

func (r *UsersRepo) GetByEmail(ctx context.Context, email string) (users.User, error) {
	return r.findOne(ctx, bson.D{{Key: "email", Value: email}})
}

func (r *UsersRepo) findOne(ctx context.Context, filter bson.D) (users.User, error) {
	var doc userDoc
	if err := r.coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return users.User{}, users.ErrNotFound
		}
		return users.User{}, err
	}
	return doc.toDomain(), nil
}

func (r *UsersRepo) List(ctx context.Context) ([]users.User, error) {
	cur, err := r.coll.Find(ctx, bson.D{}, byInsertion())
	if err != nil {
		return nil, err
	}
	var docs []userDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}

	out := make([]users.User, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.toDomain())
	}
	return out, nil
}

func (r *UsersRepo) Update(ctx context.Context, u users.User) error {
	oid, ok := parseID(u.ID)
	if !ok {
		return users.ErrNotFound
	}
	res, err := r.coll.UpdateOne(ctx, bson.D{{Key: "_id", Value: oid}}, bson.D{{Key: "$set", Value: bson.D{
		{Key: "first_name", Value: u.FirstName},
		{Key: "last_name", Value: u.LastName},
		{Key: "email", Value: u.Email},
		{Key: "role", Value: string(u.Role)},
		{Key: "updated_at", Value: u.UpdatedAt},
	}}})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return users.ErrEmailTaken
		}
		return err
	}
	if res.MatchedCount == 0 {
		return users.ErrNotFound
	}
	return nil
}

func (r *UsersRepo) Delete(ctx context.Context, id string) error {
	oid, ok := parseID(id)
	if !ok {
		return users.ErrNotFound
	}
	res, err := r.coll.DeleteOne(ctx, bson.D{{Key: "_id", Value: oid}})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return users.ErrNotFound
	}
	return nil
}

func (r *UsersRepo) AddPet(ctx context.Context, userID, petID string) error {
	uid, ok := parseID(userID)
	if !ok {
		return users.ErrNotFound
	}
	pid, ok := parseID(petID)
	if !ok {
		return users.ErrNotFound
	}
	res, err := r.coll.UpdateOne(ctx,
		bson.D{{Key: "_id", Value: uid}},
		bson.D{{Key: "$push", Value: bson.D{{Key: "pets", Value: petRef{ID: pid}}}}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return users.ErrNotFound
	}
	return nil
}
