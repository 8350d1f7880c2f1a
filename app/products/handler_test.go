package products

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/trynex/lifestyle-backend/models"
)

// --- Mock Repo ---

type MockProductRepo struct {
	Products []models.Product
	Err      error

	lastUpdatedID      uint
	lastUpdatedColumns map[string]any
	lastDeletedID      uint
	lastCreated        *models.Product
}

func (m *MockProductRepo) GetProducts() ([]models.Product, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Products, nil
}

func (m *MockProductRepo) GetProductByID(id uint) (*models.Product, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	for _, p := range m.Products {
		if p.ID == id {
			product := p
			return &product, nil
		}
	}
	return nil, models.ErrProductNotFound
}

func (m *MockProductRepo) CreateProduct(product *models.Product) error {
	if m.Err != nil {
		return m.Err
	}
	product.ID = uint(len(m.Products) + 1)
	m.Products = append(m.Products, *product)
	m.lastCreated = product
	return nil
}

func (m *MockProductRepo) UpdateProduct(id uint, updates map[string]any) (*models.Product, error) {
	m.lastUpdatedID = id
	m.lastUpdatedColumns = updates
	if m.Err != nil {
		return nil, m.Err
	}
	for _, p := range m.Products {
		if p.ID == id {
			product := p
			return &product, nil
		}
	}
	return nil, models.ErrProductNotFound
}

func (m *MockProductRepo) DeleteProduct(id uint) (bool, error) {
	m.lastDeletedID = id
	if m.Err != nil {
		return false, m.Err
	}
	for _, p := range m.Products {
		if p.ID == id {
			return true, nil
		}
	}
	return false, nil
}

// --- Helpers ---

func newTestProduct(id uint, name string, price string) models.Product {
	return models.Product{
		ID:       id,
		Name:     name,
		Price:    decimal.RequireFromString(price),
		IsActive: true,
	}
}

// --- Tests ---

func TestHandleList(t *testing.T) {
	testCases := []struct {
		name               string
		mockRepoSetup      func() *MockProductRepo
		expectedStatusCode int
		checkResponse      func(t *testing.T, rec *httptest.ResponseRecorder)
	}{
		{
			name: "Success with products",
			mockRepoSetup: func() *MockProductRepo {
				return &MockProductRepo{Products: []models.Product{
					newTestProduct(1, "Custom Mug", "299"),
					newTestProduct(2, "T-Shirt", "599"),
				}}
			},
			expectedStatusCode: http.StatusOK,
			checkResponse: func(t *testing.T, rec *httptest.ResponseRecorder) {
				var resp []models.Product
				err := json.NewDecoder(rec.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Len(t, resp, 2)
				assert.Equal(t, "Custom Mug", resp[0].Name)
			},
		},
		{
			name: "Empty catalog serializes as empty array",
			mockRepoSetup: func() *MockProductRepo {
				return &MockProductRepo{}
			},
			expectedStatusCode: http.StatusOK,
			checkResponse: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, "[]\n", rec.Body.String())
			},
		},
		{
			name: "Repository error",
			mockRepoSetup: func() *MockProductRepo {
				return &MockProductRepo{Err: errors.New("db down")}
			},
			expectedStatusCode: http.StatusInternalServerError,
			checkResponse: func(t *testing.T, rec *httptest.ResponseRecorder) {
				var errResp map[string]string
				err := json.NewDecoder(rec.Body).Decode(&errResp)
				assert.NoError(t, err)
				assert.Equal(t, "Failed to fetch products", errResp["error"])
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			handler := NewProductsHandler(tc.mockRepoSetup())
			req := httptest.NewRequest("GET", "/api/products", nil)
			rec := httptest.NewRecorder()

			handler.HandleList(rec, req)

			assert.Equal(t, tc.expectedStatusCode, rec.Code)
			if tc.checkResponse != nil {
				tc.checkResponse(t, rec)
			}
		})
	}
}

func TestHandleGet(t *testing.T) {
	repoWithOne := func() *MockProductRepo {
		return &MockProductRepo{Products: []models.Product{newTestProduct(7, "T-Shirt", "500")}}
	}

	testCases := []struct {
		name               string
		id                 string
		mockRepoSetup      func() *MockProductRepo
		expectedStatusCode int
		expectedError      string
	}{
		{name: "Success", id: "7", mockRepoSetup: repoWithOne, expectedStatusCode: http.StatusOK},
		{name: "Not found", id: "99", mockRepoSetup: repoWithOne, expectedStatusCode: http.StatusNotFound, expectedError: "Product not found"},
		{name: "Invalid id", id: "abc", mockRepoSetup: repoWithOne, expectedStatusCode: http.StatusBadRequest, expectedError: "Invalid product ID"},
		{
			name: "Repository error", id: "7",
			mockRepoSetup:      func() *MockProductRepo { return &MockProductRepo{Err: errors.New("db down")} },
			expectedStatusCode: http.StatusInternalServerError,
			expectedError:      "Failed to fetch product",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			handler := NewProductsHandler(tc.mockRepoSetup())
			req := httptest.NewRequest("GET", "/api/products/"+tc.id, nil)
			req.SetPathValue("id", tc.id)
			rec := httptest.NewRecorder()

			handler.HandleGet(rec, req)

			assert.Equal(t, tc.expectedStatusCode, rec.Code)
			if tc.expectedError != "" {
				var errResp map[string]string
				assert.NoError(t, json.NewDecoder(rec.Body).Decode(&errResp))
				assert.Equal(t, tc.expectedError, errResp["error"])
			}
		})
	}
}

func TestHandleCreateProduct(t *testing.T) {
	testCases := []struct {
		name               string
		requestBody        string
		expectedStatusCode int
		checkResponse      func(t *testing.T, rec *httptest.ResponseRecorder)
		checkRepoCall      func(t *testing.T, repo *MockProductRepo)
	}{
		{
			name:               "Success",
			requestBody:        `{"name":"Custom Mug","price":"299.50","category":"mugs","stock":30}`,
			expectedStatusCode: http.StatusCreated,
			checkResponse: func(t *testing.T, rec *httptest.ResponseRecorder) {
				var resp models.Product
				assert.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
				assert.Equal(t, "Custom Mug", resp.Name)
				assert.Equal(t, "299.5", resp.Price.String())
				assert.True(t, resp.IsActive, "is_active should default to true")
			},
			checkRepoCall: func(t *testing.T, repo *MockProductRepo) {
				assert.NotNil(t, repo.lastCreated)
				assert.Equal(t, "mugs", repo.lastCreated.Category)
			},
		},
		{
			name:               "Explicit inactive product",
			requestBody:        `{"name":"Old Mug","price":"100","is_active":false}`,
			expectedStatusCode: http.StatusCreated,
			checkRepoCall: func(t *testing.T, repo *MockProductRepo) {
				assert.NotNil(t, repo.lastCreated)
				assert.False(t, repo.lastCreated.IsActive)
			},
		},
		{
			name:               "Missing name and price",
			requestBody:        `{"category":"mugs"}`,
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
				assert.ElementsMatch(t, []string{"name", "price"}, fields)
			},
			checkRepoCall: func(t *testing.T, repo *MockProductRepo) {
				assert.Nil(t, repo.lastCreated, "CreateProduct should not be called on validation failure")
			},
		},
		{
			name:               "Negative price",
			requestBody:        `{"name":"Mug","price":"-10"}`,
			expectedStatusCode: http.StatusBadRequest,
		},
		{
			name:               "Malformed price",
			requestBody:        `{"name":"Mug","price":"abc"}`,
			expectedStatusCode: http.StatusBadRequest,
		},
		{
			name:               "Invalid JSON body",
			requestBody:        `{invalid`,
			expectedStatusCode: http.StatusBadRequest,
			checkResponse: func(t *testing.T, rec *httptest.ResponseRecorder) {
				var errResp map[string]string
				assert.NoError(t, json.NewDecoder(rec.Body).Decode(&errResp))
				assert.Equal(t, "Invalid JSON body", errResp["error"])
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo := &MockProductRepo{}
			handler := NewProductsHandler(repo)
			req := httptest.NewRequest("POST", "/api/products", strings.NewReader(tc.requestBody))
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

func TestHandleUpdateProduct(t *testing.T) {
	repoWithOne := func() *MockProductRepo {
		return &MockProductRepo{Products: []models.Product{newTestProduct(7, "T-Shirt", "500")}}
	}

	testCases := []struct {
		name               string
		id                 string
		requestBody        string
		mockRepoSetup      func() *MockProductRepo
		expectedStatusCode int
		checkRepoCall      func(t *testing.T, repo *MockProductRepo)
	}{
		{
			name: "Partial update maps only present fields",
			id:   "7", requestBody: `{"price":"750","stock":10}`,
			mockRepoSetup:      repoWithOne,
			expectedStatusCode: http.StatusOK,
			checkRepoCall: func(t *testing.T, repo *MockProductRepo) {
				assert.Equal(t, uint(7), repo.lastUpdatedID)
				assert.Len(t, repo.lastUpdatedColumns, 2)
				assert.Equal(t, 10, repo.lastUpdatedColumns["stock"])
				price, ok := repo.lastUpdatedColumns["price"].(decimal.Decimal)
				assert.True(t, ok)
				assert.Equal(t, "750", price.String())
				assert.NotContains(t, repo.lastUpdatedColumns, "name")
			},
		},
		{
			name: "Empty body rejected",
			id:   "7", requestBody: `{}`,
			mockRepoSetup:      repoWithOne,
			expectedStatusCode: http.StatusBadRequest,
		},
		{
			name: "Empty name rejected",
			id:   "7", requestBody: `{"name":"  "}`,
			mockRepoSetup:      repoWithOne,
			expectedStatusCode: http.StatusBadRequest,
		},
		{
			name: "Not found",
			id:   "99", requestBody: `{"stock":1}`,
			mockRepoSetup:      repoWithOne,
			expectedStatusCode: http.StatusNotFound,
		},
		{
			name: "Invalid id",
			id:   "x", requestBody: `{"stock":1}`,
			mockRepoSetup:      repoWithOne,
			expectedStatusCode: http.StatusBadRequest,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo := tc.mockRepoSetup()
			handler := NewProductsHandler(repo)
			req := httptest.NewRequest("PUT", "/api/products/"+tc.id, strings.NewReader(tc.requestBody))
			req.SetPathValue("id", tc.id)
			rec := httptest.NewRecorder()

			handler.HandleUpdate(rec, req)

			assert.Equal(t, tc.expectedStatusCode, rec.Code)
			if tc.checkRepoCall != nil {
				tc.checkRepoCall(t, repo)
			}
		})
	}
}

func TestHandleDeleteProduct(t *testing.T) {
	repoWithOne := func() *MockProductRepo {
		return &MockProductRepo{Products: []models.Product{newTestProduct(7, "T-Shirt", "500")}}
	}

	testCases := []struct {
		name               string
		id                 string
		expectedStatusCode int
	}{
		{name: "Success", id: "7", expectedStatusCode: http.StatusOK},
		{name: "Not found", id: "99", expectedStatusCode: http.StatusNotFound},
		{name: "Invalid id", id: "abc", expectedStatusCode: http.StatusBadRequest},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			handler := NewProductsHandler(repoWithOne())
			req := httptest.NewRequest("DELETE", "/api/products/"+tc.id, nil)
			req.SetPathValue("id", tc.id)
			rec := httptest.NewRecorder()

			handler.HandleDelete(rec, req)

			assert.Equal(t, tc.expectedStatusCode, rec.Code)
			if tc.expectedStatusCode == http.StatusOK {
				var resp map[string]bool
				assert.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
				assert.True(t, resp["success"])
			}
		})
	}
}
