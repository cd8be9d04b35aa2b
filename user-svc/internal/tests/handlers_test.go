package tests

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	httpapi "quickbite/user-svc/internal/api/http"
	"quickbite/user-svc/internal/domain"
	"quickbite/user-svc/internal/mocks"
	"quickbite/user-svc/internal/service"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newTestRouter(users service.UserRepository) *mux.Router {
	handler := httpapi.NewHandler(users)
	r := mux.NewRouter()
	handler.RegisterRoutes(r)
	return r
}

func TestListUsers(t *testing.T) {
	mockRepo := mocks.NewUserRepository(t)
	mockRepo.On("ListUsers", mock.Anything).Return([]domain.User{
		{ID: 1, Name: "Alice", Email: "alice@example.com", Role: "customer"},
		{ID: 2, Name: "Bob", Email: "bob@example.com", Role: "driver"},
	}, nil)

	router := newTestRouter(mockRepo)
	req := httptest.NewRequest(http.MethodGet, "/users/all", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var users []domain.User
	assert.NoError(t, json.NewDecoder(rec.Body).Decode(&users))
	assert.Len(t, users, 2)
	assert.Equal(t, "Bob", users[1].Name)
}

func TestGetUser_NotFound(t *testing.T) {
	mockRepo := mocks.NewUserRepository(t)
	mockRepo.On("GetUser", mock.Anything, 999).Return(nil, service.ErrUserNotFound)

	router := newTestRouter(mockRepo)
	req := httptest.NewRequest(http.MethodGet, "/users/999", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
