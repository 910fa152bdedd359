package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"kitchen-core/internal/model"
	"kitchen-core/internal/money"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestProductHandler_Create(t *testing.T) {
	logger := zerolog.Nop()

	testProduct := &model.Product{
		ID:        uuid.New(),
		Name:      "Fried Chicken",
		Price:     money.MustParse("16000"),
		CreatedAt: time.Now(),
	}

	tests := []struct {
		name           string
		requestBody    interface{}
		mockReturn     *model.Product
		mockError      error
		expectedStatus int
		expectService  bool
	}{
		{
			name:           "Success",
			requestBody:    &model.ProductCreateRequest{Name: "Fried Chicken", Price: "16000"},
			mockReturn:     testProduct,
			expectedStatus: http.StatusCreated,
			expectService:  true,
		},
		{
			name:           "Negative price",
			requestBody:    &model.ProductCreateRequest{Name: "Fried Chicken", Price: "-1"},
			mockError:      model.InvalidArgument("product price must be a non-negative amount"),
			expectedStatus: http.StatusBadRequest,
			expectService:  true,
		},
		{
			name:           "Disallowed name",
			requestBody:    &model.ProductCreateRequest{Name: "badword", Price: "16000"},
			mockError:      model.InvalidArgument("name contains disallowed content"),
			expectedStatus: http.StatusBadRequest,
			expectService:  true,
		},
		{
			name:           "Malformed body",
			requestBody:    "{not json",
			expectedStatus: http.StatusBadRequest,
			expectService:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockProductService)
			h := NewProductHandler(mockService, logger)

			if tt.expectService {
				mockService.On("Create", mock.Anything, mock.AnythingOfType("*model.ProductCreateRequest")).
					Return(tt.mockReturn, tt.mockError)
			}

			var body bytes.Buffer
			if s, ok := tt.requestBody.(string); ok {
				body.WriteString(s)
			} else {
				require.NoError(t, json.NewEncoder(&body).Encode(tt.requestBody))
			}

			req := httptest.NewRequest(http.MethodPost, "/api/products", &body)
			rec := httptest.NewRecorder()

			h.Create(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectService {
				mockService.AssertExpectations(t)
			} else {
				mockService.AssertNotCalled(t, "Create")
			}
		})
	}
}

func TestProductHandler_ChangePrice(t *testing.T) {
	logger := zerolog.Nop()
	productID := uuid.New()

	updated := &model.Product{
		ID:    productID,
		Name:  "Fried Chicken",
		Price: money.MustParse("8000"),
	}

	mockService := new(MockProductService)
	h := NewProductHandler(mockService, logger)

	mockService.On("ChangePrice", mock.Anything, productID, mock.AnythingOfType("*model.PriceChangeRequest")).
		Return(updated, nil)

	body := bytes.NewBufferString(`{"price":"8000"}`)
	req := httptest.NewRequest(http.MethodPut, "/api/products/"+productID.String()+"/price", body)
	req.SetPathValue("id", productID.String())
	rec := httptest.NewRecorder()

	h.ChangePrice(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp model.Product
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "8000", resp.Price.String())
	mockService.AssertExpectations(t)
}

func TestProductHandler_ChangePrice_InvalidID(t *testing.T) {
	logger := zerolog.Nop()

	mockService := new(MockProductService)
	h := NewProductHandler(mockService, logger)

	body := bytes.NewBufferString(`{"price":"8000"}`)
	req := httptest.NewRequest(http.MethodPut, "/api/products/not-a-uuid/price", body)
	req.SetPathValue("id", "not-a-uuid")
	rec := httptest.NewRecorder()

	h.ChangePrice(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	mockService.AssertNotCalled(t, "ChangePrice")
}

func TestProductHandler_GetByID_NotFound(t *testing.T) {
	logger := zerolog.Nop()
	productID := uuid.New()

	mockService := new(MockProductService)
	h := NewProductHandler(mockService, logger)

	mockService.On("GetByID", mock.Anything, productID).
		Return(nil, model.NotFound("product not found"))

	req := httptest.NewRequest(http.MethodGet, "/api/products/"+productID.String(), nil)
	req.SetPathValue("id", productID.String())
	rec := httptest.NewRecorder()

	h.GetByID(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestProductHandler_GetAll(t *testing.T) {
	logger := zerolog.Nop()

	products := []model.Product{
		{ID: uuid.New(), Name: "Fried Chicken", Price: money.MustParse("16000")},
		{ID: uuid.New(), Name: "Seasoned Chicken", Price: money.MustParse("17000")},
	}

	mockService := new(MockProductService)
	h := NewProductHandler(mockService, logger)

	mockService.On("GetAll", mock.Anything).Return(products, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
	rec := httptest.NewRecorder()

	h.GetAll(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp []model.Product
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Len(t, resp, 2)
}
