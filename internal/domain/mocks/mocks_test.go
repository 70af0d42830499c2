package mocks

import (
	"context"
	"encoding/json"
	"math/rand/v2"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"

	"adoptme/internal/adapters/storage/memory"
	"adoptme/internal/domain/pets"
	"adoptme/internal/domain/users"
	"adoptme/internal/platform/logger"
	"adoptme/internal/platform/password"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGenerator() *Generator {
	return NewGenerator(WithRand(rand.New(rand.NewPCG(1, 2))), WithHashCost(4))
}

func TestGenerator_Users(t *testing.T) {
	got, err := newTestGenerator().Users(3, "")
	require.NoError(t, err)
	require.Len(t, got, 3)

	assert.Equal(t, "Usuario1", got[0].FirstName)
	assert.Equal(t, "Apellido3", got[2].LastName)
	assert.Equal(t, "user2@example.com", got[1].Email)
	for _, u := range got {
		assert.True(t, u.Role.Valid())
		assert.Empty(t, u.Pets)
		assert.True(t, password.Check(DefaultPassword, u.Password))
	}
}

func TestGenerator_UsersTaggedEmail(t *testing.T) {
	got, err := newTestGenerator().Users(1, "b42")
	require.NoError(t, err)
	assert.Equal(t, "user1+b42@example.com", got[0].Email)
}

func TestGenerator_Pets(t *testing.T) {
	got := newTestGenerator().Pets(20)
	require.Len(t, got, 20)

	known := map[string]bool{}
	for _, s := range pets.KnownSpecies {
		known[string(s)] = true
	}
	for i, p := range got {
		assert.Equal(t, "Mascota"+strconv.Itoa(i+1), p.Name)
		assert.True(t, known[p.Specie], p.Specie)
		assert.False(t, p.Adopted)
		assert.Empty(t, p.Owner)
		require.NotNil(t, p.BirthDate)
		assert.GreaterOrEqual(t, p.BirthDate.Year(), 2020)
		assert.LessOrEqual(t, p.BirthDate.Year(), 2023)
		assert.LessOrEqual(t, p.BirthDate.Day(), 28)
	}
}

type fixture struct {
	router   http.Handler
	usersSvc *users.Service
	petsSvc  *pets.Service
}

func newFixture() fixture {
	usersSvc := users.NewService(memory.NewUserRepo(), users.WithHashCost(4))
	petsSvc := pets.NewService(memory.NewPetRepo())
	svc := NewService(newTestGenerator(), usersSvc, petsSvc, logger.Nop())

	r := chi.NewRouter()
	RegisterRoutes(r, svc, logger.Nop())
	return fixture{router: r, usersSvc: usersSvc, petsSvc: petsSvc}
}

func (f fixture) do(t *testing.T, method, path, body string) (int, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)

	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return rec.Code, out
}

func TestMockingEndpoints_Return50(t *testing.T) {
	f := newFixture()

	code, body := f.do(t, http.MethodGet, "/api/mocks/mockingpets", "")
	require.Equal(t, http.StatusOK, code)
	list := body["payload"].([]any)
	assert.Len(t, list, 50)
	first := list[0].(map[string]any)
	assert.Nil(t, first["owner"])
	assert.Equal(t, false, first["adopted"])
	assert.Equal(t, "", first["image"])

	code, body = f.do(t, http.MethodGet, "/api/mocks/mockingusers", "")
	require.Equal(t, http.StatusOK, code)
	assert.Len(t, body["payload"].([]any), 50)

	// nada se persiste
	all, _ := f.petsSvc.List(context.Background())
	assert.Empty(t, all)
}

func TestGenerateData_Validation(t *testing.T) {
	f := newFixture()

	cases := map[string]string{
		`{}`:                      msgMissingParams,
		`{"users":1}`:             msgMissingParams,
		`{"users":"1","pets":2}`:  msgNotNumbers,
		`{"users":null,"pets":2}`: msgNotNumbers,
		`{"users":1.5,"pets":2}`:  msgNotNumbers,
		`{"users":-1,"pets":2}`:   msgNegativeParams,
		`not json`:                msgMissingParams,
	}
	for body, want := range cases {
		code, out := f.do(t, http.MethodPost, "/api/mocks/generateData", body)
		assert.Equal(t, http.StatusBadRequest, code, body)
		assert.Equal(t, want, out["error"], body)
	}

	code, _ := f.do(t, http.MethodPost, "/api/mocks/generateData", `{"users":1,"pets":100000}`)
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestGenerateData_InsertsAndCanRepeat(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	code, out := f.do(t, http.MethodPost, "/api/mocks/generateData", `{"users":3,"pets":4}`)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Se generaron e insertaron 3 usuarios y 4 pets correctamente", out["message"])
	assert.Equal(t, map[string]any{"users": float64(3), "pets": float64(4)}, out["payload"])

	code, _ = f.do(t, http.MethodPost, "/api/mocks/generateData", `{"users":3,"pets":0}`)
	require.Equal(t, http.StatusOK, code)

	us, _ := f.usersSvc.List(ctx)
	ps, _ := f.petsSvc.List(ctx)
	assert.Len(t, us, 6)
	assert.Len(t, ps, 4)

	// el password mock sirve para loguearse
	_, err := f.usersSvc.Authenticate(ctx, us[0].Email, DefaultPassword)
	assert.NoError(t, err)
}

func TestGenerator_ConcurrentUse(t *testing.T) {
	g := newTestGenerator()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			assert.Len(t, g.Pets(25), 25)
		}()
		go func() {
			defer wg.Done()
			us, err := g.Users(5, "")
			assert.NoError(t, err)
			assert.Len(t, us, 5)
		}()
	}
	wg.Wait()
}
