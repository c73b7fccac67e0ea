package handler

import (
	"bytes"
	"cinex_api/api/middleware"
	"cinex_api/configs"
	"cinex_api/internal/repository"
	"cinex_api/internal/service"
	"cinex_api/model"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// memUserRepo implements repository.IUserRepository with the same
// contract as the mongo implementation, including the conditional
// watchlist push and the password projection on reads.
type memUserRepo struct {
	mu    sync.Mutex
	users map[string]*model.User // keyed by email
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: map[string]*model.User{}}
}

func (r *memUserRepo) CreateUser(name string, email string, hashedPassword string) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[email]; ok {
		return nil, repository.ErrEmailTaken
	}
	user := &model.User{
		Id:        primitive.NewObjectID(),
		Name:      name,
		Email:     email,
		Password:  hashedPassword,
		Watchlist: []model.WatchlistItem{},
	}
	r.users[email] = user
	return withoutPassword(user), nil
}

func (r *memUserRepo) GetUserByEmail(email string) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[email]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	clone := *user
	clone.Watchlist = append([]model.WatchlistItem{}, user.Watchlist...)
	return &clone, nil
}

func (r *memUserRepo) GetUserById(userId string) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user := r.findById(userId)
	if user == nil {
		return nil, repository.ErrUserNotFound
	}
	return withoutPassword(user), nil
}

func (r *memUserRepo) UpdateUserName(userId string, name string) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user := r.findById(userId)
	if user == nil {
		return nil, repository.ErrUserNotFound
	}
	user.Name = name
	return withoutPassword(user), nil
}

func (r *memUserRepo) AddToWatchlist(userId string, item model.WatchlistItem) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user := r.findById(userId)
	if user == nil {
		return nil, repository.ErrUserNotFound
	}
	for _, existing := range user.Watchlist {
		if existing.MediaId == item.MediaId && existing.MediaType == item.MediaType {
			return nil, repository.ErrAlreadyInWatchlist
		}
	}
	user.Watchlist = append(user.Watchlist, item)
	return withoutPassword(user), nil
}

func (r *memUserRepo) RemoveFromWatchlist(userId string, mediaId int64, mediaType string) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user := r.findById(userId)
	if user == nil {
		return nil, repository.ErrUserNotFound
	}
	kept := user.Watchlist[:0]
	for _, existing := range user.Watchlist {
		if existing.MediaId == mediaId && (mediaType == "" || existing.MediaType == mediaType) {
			continue
		}
		kept = append(kept, existing)
	}
	user.Watchlist = kept
	return withoutPassword(user), nil
}

func (r *memUserRepo) findById(userId string) *model.User {
	for _, user := range r.users {
		if user.Id.Hex() == userId {
			return user
		}
	}
	return nil
}

func withoutPassword(user *model.User) *model.User {
	clone := *user
	clone.Password = ""
	clone.Watchlist = append([]model.WatchlistItem{}, user.Watchlist...)
	return &clone
}

//------------------------------------------
//------------------------------------------

// newTestApp wires the auth and user routes the way api.InitRouter does,
// without the ambient middleware stack.
func newTestApp(t *testing.T) (*fiber.App, *memUserRepo) {
	t.Helper()
	t.Setenv("ACCESS_TOKEN_SECRET", "handler-test-secret")
	configs.LoadEnvVariables()

	repo := newMemUserRepo()
	authHandler := NewAuthHandler(service.NewAuthService(repo))
	userHandler := NewUserHandler(service.NewUserService(repo))
	authMiddleware := middleware.AuthMiddleware(repo)

	app := fiber.New()

	authRoutes := app.Group("auth")
	authRoutes.Post("/signup", authHandler.Signup)
	authRoutes.Post("/login", authHandler.Login)
	authRoutes.Post("/logout", authMiddleware, authHandler.Logout)
	authRoutes.Get("/me", authMiddleware, authHandler.GetMe)

	userRoutes := app.Group("user", authMiddleware)
	userRoutes.Get("/profile", userHandler.GetProfile)
	userRoutes.Patch("/profile", userHandler.UpdateProfile)
	userRoutes.Get("/watchlist", userHandler.GetWatchlist)
	userRoutes.Post("/watchlist", userHandler.AddToWatchlist)
	userRoutes.Delete("/watchlist/:mediaId", userHandler.RemoveFromWatchlist)

	return app, repo
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Errors  []string        `json:"errors"`
}

type testResponse struct {
	status   int
	body     []byte
	envelope envelope
	cookies  []*http.Cookie
}

func jsonRequest(t *testing.T, app *fiber.App, method string, path string, payload interface{}, token string) testResponse {
	t.Helper()

	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, body)
	if payload != nil {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var env envelope
	require.NoError(t, json.Unmarshal(raw, &env))

	return testResponse{
		status:   resp.StatusCode,
		body:     raw,
		envelope: env,
		cookies:  resp.Cookies(),
	}
}

func signupUser(t *testing.T, app *fiber.App, name string, email string, password string) (userData map[string]interface{}, token string) {
	t.Helper()

	res := jsonRequest(t, app, http.MethodPost, "/auth/signup", model.SignupReq{
		Name:     name,
		Email:    email,
		Password: password,
	}, "")
	require.Equal(t, http.StatusCreated, res.status)

	var data struct {
		User  map[string]interface{} `json:"user"`
		Token string                 `json:"token"`
	}
	require.NoError(t, json.Unmarshal(res.envelope.Data, &data))
	require.NotEmpty(t, data.Token)
	return data.User, data.Token
}

func sessionCookie(t *testing.T, cookies []*http.Cookie) *http.Cookie {
	t.Helper()
	for _, cookie := range cookies {
		if cookie.Name == "cinex_token" {
			return cookie
		}
	}
	t.Fatalf("session cookie not set")
	return nil
}
