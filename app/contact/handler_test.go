package contact

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/trynex/lifestyle-backend/models"
)

// --- Mock Repository ---

type MockContactRepo struct {
	Messages  []models.ContactMessage
	CreateErr error
	ListErr   error
	LastSaved *models.ContactMessage
}

func (m *MockContactRepo) CreateContactMessage(message *models.ContactMessage) error {
	if m.CreateErr != nil {
		return m.CreateErr
	}
	m.LastSaved = message
	return nil
}

func (m *MockContactRepo) GetContactMessages() ([]models.ContactMessage, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	return m.Messages, nil
}

// --- Tests: POST /api/contact ---

func TestHandleCreateMessage(t *testing.T) {
	testCases := []struct {
		name               string
		requestBody        string
		mockRepoSetup      func() *MockContactRepo
		expectedStatusCode int
		checkResponse      func(t *testing.T, rec *httptest.ResponseRecorder)
		checkRepoCall      func(t *testing.T, repo *MockContactRepo)
	}{
		{
			name:        "Success",
			requestBody: `{"name":"Karim","email":"karim@example.com","message":"When will my mug ship?"}`,
			mockRepoSetup: func() *MockContactRepo {
				return &MockContactRepo{}
			},
			expectedStatusCode: http.StatusCreated,
			checkRepoCall: func(t *testing.T, repo *MockContactRepo) {
				assert.NotNil(t, repo.LastSaved)
				assert.Equal(t, "karim@example.com", repo.LastSaved.Email)
			},
		},
		{
			name:        "Invalid email",
			requestBody: `{"name":"Karim","email":"not-an-email","message":"Hi"}`,
			mockRepoSetup: func() *MockContactRepo {
				return &MockContactRepo{}
			},
			expectedStatusCode: http.StatusBadRequest,
			checkResponse: func(t *testing.T, rec *httptest.ResponseRecorder) {
				var errResp struct {
					Error []models.FieldError `json:"error"`
				}
				assert.NoError(t, json.NewDecoder(rec.Body).Decode(&errResp))
				assert.Len(t, errResp.Error, 1)
				assert.Equal(t, "email", errResp.Error[0].Field)
				assert.Equal(t, "Valid email is required", errResp.Error[0].Message)
			},
		},
		{
			name:        "All fields missing",
			requestBody: `{}`,
			mockRepoSetup: func() *MockContactRepo {
				return &MockContactRepo{}
			},
			expectedStatusCode: http.StatusBadRequest,
			checkResponse: func(t *testing.T, rec *httptest.ResponseRecorder) {
				var errResp struct {
					Error []models.FieldError `json:"error"`
				}
				assert.NoError(t, json.NewDecoder(rec.Body).Decode(&errResp))
				fields := make([]string, 0, len(errResp.Error))
				for _, fe := range errResp.Error {
					fields = append(fields, fe.Field)
				}
				assert.ElementsMatch(t, []string{"name", "email", "message"}, fields)
			},
			checkRepoCall: func(t *testing.T, repo *MockContactRepo) {
				assert.Nil(t, repo.LastSaved)
			},
		},
		{
			name:        "Repository error",
			requestBody: `{"name":"Karim","email":"karim@example.com","message":"Hi"}`,
			mockRepoSetup: func() *MockContactRepo {
				return &MockContactRepo{CreateErr: errors.New("insert failed")}
			},
			expectedStatusCode: http.StatusInternalServerError,
			checkResponse: func(t *testing.T, rec *httptest.ResponseRecorder) {
				var errResp map[string]string
				assert.NoError(t, json.NewDecoder(rec.Body).Decode(&errResp))
				assert.Equal(t, "Failed to send message", errResp["error"])
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo := tc.mockRepoSetup()
			handler := NewContactHandler(repo)
			req := httptest.NewRequest("POST", "/api/contact", strings.NewReader(tc.requestBody))
			req.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()

			handler.HandleCreate(rec, req)

			assert.Equal(t, tc.expectedStatusCode, rec.Code)
			if tc.checkResponse != nil {
				tc.checkResponse(t, rec)
			}
			if tc.checkRepoCall != nil {
				tc.checkRepoCall(t, repo)
			}
		})
	}
}

// --- Tests: GET /api/contact ---

func TestHandleListMessages(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		repo := &MockContactRepo{Messages: []models.ContactMessage{
			{Name: "Karim", Email: "karim@example.com", Message: "Hi"},
		}}
		handler := NewContactHandler(repo)

		req := httptest.NewRequest("GET", "/api/contact", nil)
		rec := httptest.NewRecorder()
		handler.HandleList(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		var resp []models.ContactMessage
		assert.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Len(t, resp, 1)
	})

	t.Run("Empty list serializes as empty array", func(t *testing.T) {
		handler := NewContactHandler(&MockContactRepo{})

		req := httptest.NewRequest("GET", "/api/contact", nil)
		rec := httptest.NewRecorder()
		handler.HandleList(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "[]\n", rec.Body.String())
	})

	t.Run("Repository error", func(t *testing.T) {
		handler := NewContactHandler(&MockContactRepo{ListErr: errors.New("db down")})

		req := httptest.NewRequest("GET", "/api/contact", nil)
		rec := httptest.NewRecorder()
		handler.HandleList(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}
