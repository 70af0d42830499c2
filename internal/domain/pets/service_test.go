package pets

import (
	"context"
	"errors"
	"testing"
	"time"
)

type testRepo struct {
	byID map[string]Pet
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[string]Pet{}}
}

func (r *testRepo) Create(ctx context.Context, p Pet) error {
	r.byID[p.ID] = p
	return nil
}

func (r *testRepo) GetByID(ctx context.Context, id string) (Pet, error) {
	p, ok := r.byID[id]
	if !ok {
		return Pet{}, ErrNotFound
	}
	return p, nil
}

func (r *testRepo) List(ctx context.Context) ([]Pet, error) {
	out := make([]Pet, 0, len(r.byID))
	for _, p := range r.byID {
		out = append(out, p)
	}
	return out, nil
}

func (r *testRepo) Update(ctx context.Context, p Pet) error {
	if _, ok := r.byID[p.ID]; !ok {
		return ErrNotFound
	}
	r.byID[p.ID] = p
	return nil
}

func (r *testRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *testRepo) MarkAdopted(ctx context.Context, petID, ownerID string, at time.Time) error {
	p, ok := r.byID[petID]
	if !ok {
		return ErrNotFound
	}
	if p.Adopted {
		return ErrAlreadyAdopted
	}
	p.Adopted = true
	p.Owner = ownerID
	p.UpdatedAt = at
	r.byID[petID] = p
	return nil
}

func birth(t *testing.T) *time.Time {
	t.Helper()
	bd := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	return &bd
}

func TestService_Create_StartsAvailable(t *testing.T) {
	svc := NewService(newTestRepo())

	p, err := svc.Create(context.Background(), CreateInput{Name: " Milo ", Specie: "Perro", BirthDate: birth(t)})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if p.ID == "" || p.Name != "Milo" {
		t.Fatalf("unexpected pet %+v", p)
	}
	if p.Adopted || p.Owner != "" || !p.Available() {
		t.Fatalf("new pet must be available, got %+v", p)
	}
}

func TestService_Create_IncompleteValues(t *testing.T) {
	svc := NewService(newTestRepo())

	cases := []CreateInput{
		{Specie: "Gato", BirthDate: birth(t)},
		{Name: "Luna", BirthDate: birth(t)},
		{Name: "Luna", Specie: "Gato"},
	}
	for i, in := range cases {
		if _, err := svc.Create(context.Background(), in); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("case %d: expected ErrInvalidInput, got %v", i, err)
		}
	}
}

func TestService_Update_DoesNotTouchAdoptionState(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)

	p, _ := svc.Create(context.Background(), CreateInput{Name: "Milo", Specie: "Perro", BirthDate: birth(t)})
	if err := svc.MarkAdopted(context.Background(), p.ID, "user-1"); err != nil {
		t.Fatalf("MarkAdopted: %v", err)
	}

	name := "Milo II"
	updated, err := svc.Update(context.Background(), p.ID, UpdateInput{Name: &name})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Name != "Milo II" || !updated.Adopted || updated.Owner != "user-1" {
		t.Fatalf("update must keep adoption state, got %+v", updated)
	}
}

func TestService_MarkAdopted_SecondCallLoses(t *testing.T) {
	svc := NewService(newTestRepo())
	p, _ := svc.Create(context.Background(), CreateInput{Name: "Milo", Specie: "Perro", BirthDate: birth(t)})

	if err := svc.MarkAdopted(context.Background(), p.ID, "user-1"); err != nil {
		t.Fatalf("first MarkAdopted: %v", err)
	}
	if err := svc.MarkAdopted(context.Background(), p.ID, "user-2"); !errors.Is(err, ErrAlreadyAdopted) {
		t.Fatalf("expected ErrAlreadyAdopted, got %v", err)
	}

	got, _ := svc.GetByID(context.Background(), p.ID)
	if got.Owner != "user-1" {
		t.Fatalf("owner must not change, got %q", got.Owner)
	}
}

func TestParseBirthDate(t *testing.T) {
	if _, err := ParseBirthDate("2021-03-04"); err != nil {
		t.Fatalf("date-only: %v", err)
	}
	if _, err := ParseBirthDate("2021-03-04T10:00:00Z"); err != nil {
		t.Fatalf("rfc3339: %v", err)
	}
	if _, err := ParseBirthDate("04/03/2021"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestToResponse_OwnerNullUntilAdopted(t *testing.T) {
	r := ToResponse(Pet{ID: "p1", Name: "Milo"})
	if r.Owner != nil {
		t.Fatalf("expected nil owner, got %v", *r.Owner)
	}
	r = ToResponse(Pet{ID: "p1", Adopted: true, Owner: "u1"})
	if r.Owner == nil || *r.Owner != "u1" {
		t.Fatalf("expected owner u1")
	}
}
