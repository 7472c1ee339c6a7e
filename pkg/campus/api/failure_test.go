package api

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/tendant/campus-content/pkg/campus"
)

// mockRepository overrides the calls these tests exercise. Any other method
// panics on the nil embedded interface.
type mockRepository struct {
	campus.Repository
	mock.Mock
}

func (m *mockRepository) ListPrograms(ctx context.Context) ([]*campus.Program, error) {
	args := m.Called(ctx)
	programs, _ := args.Get(0).([]*campus.Program)
	return programs, args.Error(1)
}

func (m *mockRepository) CreateContact(ctx context.Context, c *campus.Contact) (*campus.Contact, error) {
	args := m.Called(ctx, c)
	contact, _ := args.Get(0).(*campus.Contact)
	return contact, args.Error(1)
}

func (m *mockRepository) GetSetting(ctx context.Context, key string) (*campus.Setting, error) {
	args := m.Called(ctx, key)
	setting, _ := args.Get(0).(*campus.Setting)
	return setting, args.Error(1)
}

func (m *mockRepository) Ping(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func storageFailure(op string) error {
	return &campus.StorageError{Backend: "postgres", Op: op, Err: errors.New("connection refused: password=hunter2")}
}

func TestStorageFailuresAreGeneric(t *testing.T) {
	repo := &mockRepository{}
	repo.On("ListPrograms", mock.Anything).Return(nil, storageFailure("list_programs"))
	repo.On("CreateContact", mock.Anything, mock.AnythingOfType("*campus.Contact")).Return(nil, storageFailure("create_contact"))
	repo.On("GetSetting", mock.Anything, "site_name").Return(nil, storageFailure("get_setting"))
	router := mountHandler(NewHandler(repo))

	tests := []struct {
		name    string
		method  string
		path    string
		body    string
		message string
	}{
		{"list", http.MethodGet, "/api/programs", "", "Failed to fetch programs"},
		{"create", http.MethodPost, "/api/contacts", `{"name": "Ada", "email": "ada@example.com", "subject": "Hi", "message": "Hello"}`, "Failed to create contact"},
		{"setting", http.MethodGet, "/api/settings/site_name", "", "Failed to fetch setting"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(t, router, tt.method, tt.path, tt.body)
			require.Equal(t, http.StatusInternalServerError, w.Code)
			assert.JSONEq(t, `{"message": "`+tt.message+`"}`, w.Body.String())
			assert.NotContains(t, w.Body.String(), "hunter2")
		})
	}

	repo.AssertExpectations(t)
}

func TestWrappedNotFoundIsNotAFault(t *testing.T) {
	repo := &mockRepository{}
	repo.On("GetSetting", mock.Anything, "missing").Return(nil, errors.Join(errors.New("lookup"), campus.ErrNotFound))
	router := mountHandler(NewHandler(repo))

	w := do(t, router, http.MethodGet, "/api/settings/missing", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestReadyFailure(t *testing.T) {
	repo := &mockRepository{}
	repo.On("Ping", mock.Anything).Return(storageFailure("ping"))
	router := mountHandler(NewHandler(repo))

	w := do(t, router, http.MethodGet, "/healthz/ready", "")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	repo.AssertExpectations(t)
}
