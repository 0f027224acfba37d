package handlers_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"LostAndFound/internal/blobstore"
	"LostAndFound/internal/config"
	"LostAndFound/internal/handlers"
	"LostAndFound/internal/middleware"
	"LostAndFound/internal/model"
	"LostAndFound/internal/repo"
	"LostAndFound/internal/service"
)

// Local light mocks

type hMockItemRepo struct{ mock.Mock }

func (m *hMockItemRepo) Insert(ctx context.Context, item *model.Item) error {
	args := m.Called(ctx, item)
	if args.Error(0) == nil && item.ID == "" {
		item.ID = "new-id"
	}
	return args.Error(0)
}
func (m *hMockItemRepo) ListByFoundDateDesc(ctx context.Context) ([]model.Item, error) {
	args := m.Called(ctx)
	if v, ok := args.Get(0).([]model.Item); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *hMockItemRepo) UpdateStatus(ctx context.Context, id, status string) error {
	return m.Called(ctx, id, status).Error(0)
}
func (m *hMockItemRepo) GetImageURL(ctx context.Context, id string) (string, error) {
	args := m.Called(ctx, id)
	return args.String(0), args.Error(1)
}
func (m *hMockItemRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

var _ repo.ItemRepository = (*hMockItemRepo)(nil)

type hMockBlobStore struct{ mock.Mock }

func (m *hMockBlobStore) Upload(ctx context.Context, key string, r io.Reader) error {
	return m.Called(ctx, key, r).Error(0)
}
func (m *hMockBlobStore) PublicURL(key string) string {
	return m.Called(key).String(0)
}
func (m *hMockBlobStore) Remove(ctx context.Context, keys []string) error {
	return m.Called(ctx, keys).Error(0)
}

var _ blobstore.Store = (*hMockBlobStore)(nil)

type hMockUserRepo struct{ mock.Mock }

func (m *hMockUserRepo) CreateUser(ctx context.Context, user *model.User) (*model.User, error) {
	args := m.Called(ctx, user)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *hMockUserRepo) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *hMockUserRepo) GetUserByID(ctx context.Context, id int64) (*model.User, error) {
	args := m.Called(ctx, id)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

var _ repo.UserRepository = (*hMockUserRepo)(nil)

// testEnv bundles the assembled router with its mocks.
type testEnv struct {
	handler *handlers.Handler
	items   *hMockItemRepo
	blobs   *hMockBlobStore
	users   *hMockUserRepo
	cfg     *config.Config
}

const testSecret = "test-secret"

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	items := new(hMockItemRepo)
	blobs := new(hMockBlobStore)
	users := new(hMockUserRepo)

	cfg := &config.Config{
		AuthSecret:    testSecret,
		BlobMaxSizeMB: 8,
		BlobDir:       t.TempDir(),
	}

	logger := zap.NewNop().Sugar()
	middleware.SetLogger(logger)

	userService := service.NewUserService(users)
	registry := service.NewRegistryService(items, blobs, logger)

	return &testEnv{
		handler: handlers.NewHandler(userService, registry, logger, cfg),
		items:   items,
		blobs:   blobs,
		users:   users,
		cfg:     cfg,
	}
}

// withAdminCookie attaches a valid session cookie for user 1 to the request.
func withAdminCookie(t *testing.T, req *http.Request) {
	t.Helper()
	rr := httptest.NewRecorder()
	if err := middleware.SetLoginCookie(rr, 1, testSecret); err != nil {
		t.Fatalf("SetLoginCookie: %v", err)
	}
	for _, c := range rr.Result().Cookies() {
		req.AddCookie(c)
	}
}
