package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"kitchen-core/internal/model"
	"kitchen-core/internal/money"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestMenuHandler_Create(t *testing.T) {
	logger := zerolog.Nop()

	productID := uuid.New()
	testMenu := &model.Menu{
		ID:       uuid.New(),
		Name:     "Fried Chicken Set",
		Price:    money.MustParse("30000"),
		Sellable: true,
		Items: []model.MenuItem{
			{ProductID: productID, Quantity: 2, Price: money.MustParse("16000")},
		},
	}

	tests := []struct {
		name           string
		mockReturn     *model.Menu
		mockError      error
		expectedStatus int
	}{
		{
			name:           "Success",
			mockReturn:     testMenu,
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "Price exceeds constituents",
			mockError:      model.InvalidArgument("menu price must not exceed the sum of its items"),
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Unknown product",
			mockError:      model.InvalidArgument("menu references an unknown product"),
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockMenuService)
			h := NewMenuHandler(mockService, logger)

			mockService.On("Create", mock.Anything, mock.AnythingOfType("*model.MenuCreateRequest")).
				Return(tt.mockReturn, tt.mockError)

			reqBody := &model.MenuCreateRequest{
				Name:     "Fried Chicken Set",
				Price:    "30000",
				Sellable: true,
				Items: []model.MenuItemRequest{
					{ProductID: productID, Quantity: 2},
				},
			}
			var body bytes.Buffer
			require.NoError(t, json.NewEncoder(&body).Encode(reqBody))

			req := httptest.NewRequest(http.MethodPost, "/api/menus", &body)
			rec := httptest.NewRecorder()

			h.Create(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			mockService.AssertExpectations(t)
		})
	}
}

func TestMenuHandler_Show_Conflict(t *testing.T) {
	logger := zerolog.Nop()
	menuID := uuid.New()

	mockService := new(MockMenuService)
	h := NewMenuHandler(mockService, logger)

	mockService.On("Show", mock.Anything, menuID).
		Return(nil, model.Conflict("menu price exceeds the sum of its items"))

	req := httptest.NewRequest(http.MethodPut, "/api/menus/"+menuID.String()+"/show", nil)
	req.SetPathValue("id", menuID.String())
	rec := httptest.NewRecorder()

	h.Show(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
	mockService.AssertExpectations(t)
}

func TestMenuHandler_Hide(t *testing.T) {
	logger := zerolog.Nop()
	menuID := uuid.New()

	hidden := &model.Menu{
		ID:       menuID,
		Name:     "Fried Chicken Set",
		Price:    money.MustParse("30000"),
		Sellable: false,
	}

	mockService := new(MockMenuService)
	h := NewMenuHandler(mockService, logger)

	mockService.On("Hide", mock.Anything, menuID).Return(hidden, nil)

	req := httptest.NewRequest(http.MethodPut, "/api/menus/"+menuID.String()+"/hide", nil)
	req.SetPathValue("id", menuID.String())
	rec := httptest.NewRecorder()

	h.Hide(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp model.Menu
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.False(t, resp.Sellable)
}

func TestMenuHandler_ChangePrice_NotFound(t *testing.T) {
	logger := zerolog.Nop()
	menuID := uuid.New()

	mockService := new(MockMenuService)
	h := NewMenuHandler(mockService, logger)

	mockService.On("ChangePrice", mock.Anything, menuID, mock.AnythingOfType("*model.PriceChangeRequest")).
		Return(nil, model.NotFound("menu not found"))

	body := bytes.NewBufferString(`{"price":"28000"}`)
	req := httptest.NewRequest(http.MethodPut, "/api/menus/"+menuID.String()+"/price", body)
	req.SetPathValue("id", menuID.String())
	rec := httptest.NewRecorder()

	h.ChangePrice(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
