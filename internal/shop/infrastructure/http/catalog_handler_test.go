package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	loggingmocks "github.com/Lexv0lk/game-shop/gen/mocks/logging"
	shopmocks "github.com/Lexv0lk/game-shop/gen/mocks/shop"
	"github.com/Lexv0lk/game-shop/internal/shop/domain"
	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testGameServerId = "c2f1e0d9-8b7a-4c6d-9e5f-4a3b2c1d0e9f"
	testCategoryId   = "7e6d5c4b-3a2f-4e1d-8c0b-9a8f7e6d5c4b"
)

func TestCatalogHandler_SearchListings(t *testing.T) {
	t.Parallel()

	type testCase struct {
		name           string
		query          string
		expectedStatus int

		prepareFn func(t *testing.T, service *shopmocks.MockCatalogService)
	}

	tests := []testCase{
		{
			name:           "filtered by category",
			query:          "gameServerId=" + testGameServerId + "&categoryId=" + testCategoryId,
			expectedStatus: http.StatusOK,
			prepareFn: func(t *testing.T, service *shopmocks.MockCatalogService) {
				service.EXPECT().SearchListings(gomock.Any(), domain.ListingFilter{
					GameServerId: testGameServerId,
					CategoryIds:  []string{testCategoryId},
				}).Return([]domain.Listing{{Id: testListingId}}, nil)
			},
		},
		{
			name:           "with drafts",
			query:          "gameServerId=" + testGameServerId + "&includeDrafts=true",
			expectedStatus: http.StatusOK,
			prepareFn: func(t *testing.T, service *shopmocks.MockCatalogService) {
				service.EXPECT().SearchListings(gomock.Any(), domain.ListingFilter{
					GameServerId:  testGameServerId,
					IncludeDrafts: true,
				}).Return([]domain.Listing{}, nil)
			},
		},
		{
			name:           "missing game server",
			query:          "",
			expectedStatus: http.StatusBadRequest,
			prepareFn:      func(t *testing.T, service *shopmocks.MockCatalogService) {},
		},
		{
			name:           "malformed category",
			query:          "gameServerId=" + testGameServerId + "&categoryId=weapons",
			expectedStatus: http.StatusBadRequest,
			prepareFn:      func(t *testing.T, service *shopmocks.MockCatalogService) {},
		},
	}

	gin.SetMode(gin.TestMode)

	for _, tc := range tests {
		tt := tc
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)

			service := shopmocks.NewMockCatalogService(ctrl)
			tt.prepareFn(t, service)

			c, writer := newTestContext(http.MethodGet, "/api/shop/listings?"+tt.query, nil)
			NewCatalogHandler(service, loggingmocks.NewMockLogger(ctrl)).SearchListings(c)

			assert.Equal(t, tt.expectedStatus, writer.Code)
		})
	}
}

func TestCatalogHandler_CreateListing(t *testing.T) {
	t.Parallel()

	type testCase struct {
		name           string
		body           any
		expectedStatus int

		prepareFn func(t *testing.T, service *shopmocks.MockCatalogService)
	}

	tests := []testCase{
		{
			name: "limited listing",
			body: map[string]any{
				"gameServerId": testGameServerId,
				"name":         "Arrows",
				"price":        10,
				"items":        []map[string]any{{"code": "arrow", "amount": 20}},
				"categoryIds":  []string{testCategoryId},
				"stock":        5,
			},
			expectedStatus: http.StatusCreated,
			prepareFn: func(t *testing.T, service *shopmocks.MockCatalogService) {
				service.EXPECT().CreateListing(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ any, listing domain.Listing) (domain.Listing, error) {
						assert.True(t, listing.StockEnabled)
						require.NotNil(t, listing.Stock)
						assert.Equal(t, 5, *listing.Stock)
						listing.Id = testListingId
						return listing, nil
					})
			},
		},
		{
			name:           "negative price",
			body:           map[string]any{"gameServerId": testGameServerId, "name": "Arrows", "price": -1},
			expectedStatus: http.StatusBadRequest,
			prepareFn:      func(t *testing.T, service *shopmocks.MockCatalogService) {},
		},
		{
			name:           "unknown category",
			body:           map[string]any{"gameServerId": testGameServerId, "name": "Arrows", "categoryIds": []string{testCategoryId}},
			expectedStatus: http.StatusNotFound,
			prepareFn: func(t *testing.T, service *shopmocks.MockCatalogService) {
				service.EXPECT().CreateListing(gomock.Any(), gomock.Any()).
					Return(domain.Listing{}, &domain.CategoryNotFoundError{Msg: "one or more categories not found"})
			},
		},
	}

	gin.SetMode(gin.TestMode)

	for _, tc := range tests {
		tt := tc
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)

			service := shopmocks.NewMockCatalogService(ctrl)
			tt.prepareFn(t, service)

			c, writer := newTestContext(http.MethodPost, "/api/shop/listings", tt.body)
			NewCatalogHandler(service, loggingmocks.NewMockLogger(ctrl)).CreateListing(c)

			assert.Equal(t, tt.expectedStatus, writer.Code)
		})
	}
}

func TestCatalogHandler_SetStock(t *testing.T) {
	t.Parallel()

	type testCase struct {
		name           string
		rawBody        string
		expectedStatus int

		prepareFn func(t *testing.T, service *shopmocks.MockCatalogService)
	}

	tests := []testCase{
		{
			name:           "limited stock",
			rawBody:        `{"stock": 7}`,
			expectedStatus: http.StatusOK,
			prepareFn: func(t *testing.T, service *shopmocks.MockCatalogService) {
				service.EXPECT().SetStock(gomock.Any(), testListingId, gomock.Any()).
					DoAndReturn(func(_ any, _ string, stock *int) error {
						require.NotNil(t, stock)
						assert.Equal(t, 7, *stock)
						return nil
					})
			},
		},
		{
			name:           "unlimited stock",
			rawBody:        `{"stock": null}`,
			expectedStatus: http.StatusOK,
			prepareFn: func(t *testing.T, service *shopmocks.MockCatalogService) {
				service.EXPECT().SetStock(gomock.Any(), testListingId, nil).Return(nil)
			},
		},
		{
			name:           "missing stock field",
			rawBody:        `{}`,
			expectedStatus: http.StatusBadRequest,
			prepareFn:      func(t *testing.T, service *shopmocks.MockCatalogService) {},
		},
		{
			name:           "negative stock",
			rawBody:        `{"stock": -2}`,
			expectedStatus: http.StatusBadRequest,
			prepareFn: func(t *testing.T, service *shopmocks.MockCatalogService) {
				service.EXPECT().SetStock(gomock.Any(), testListingId, gomock.Any()).
					Return(&domain.ValidationError{Msg: "stock must not be negative"})
			},
		},
		{
			name:           "stock is not a number",
			rawBody:        `{"stock": "many"}`,
			expectedStatus: http.StatusBadRequest,
			prepareFn:      func(t *testing.T, service *shopmocks.MockCatalogService) {},
		},
	}

	gin.SetMode(gin.TestMode)

	for _, tc := range tests {
		tt := tc
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)

			service := shopmocks.NewMockCatalogService(ctrl)
			tt.prepareFn(t, service)

			writer := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(writer)
			c.Request = httptest.NewRequest(http.MethodPut, "/api/shop/listings/"+testListingId+"/stock", strings.NewReader(tt.rawBody))
			c.Request.Header.Set("Content-Type", "application/json")
			c.Params = gin.Params{{Key: ListingIdKey, Value: testListingId}}

			NewCatalogHandler(service, loggingmocks.NewMockLogger(ctrl)).SetStock(c)

			assert.Equal(t, tt.expectedStatus, writer.Code)
		})
	}
}

func TestCatalogHandler_SetDraft(t *testing.T) {
	t.Parallel()

	gin.SetMode(gin.TestMode)

	t.Run("listing drafted", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)

		service := shopmocks.NewMockCatalogService(ctrl)
		service.EXPECT().SetDraft(gomock.Any(), testListingId, true).Return(nil)

		c, writer := newTestContext(http.MethodPut, "/api/shop/listings/"+testListingId+"/draft", map[string]any{"draft": true})
		c.Params = gin.Params{{Key: ListingIdKey, Value: testListingId}}
		NewCatalogHandler(service, loggingmocks.NewMockLogger(ctrl)).SetDraft(c)

		assert.Equal(t, http.StatusOK, writer.Code)
	})

	t.Run("draft flag missing", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)

		service := shopmocks.NewMockCatalogService(ctrl)

		c, writer := newTestContext(http.MethodPut, "/api/shop/listings/"+testListingId+"/draft", map[string]any{})
		c.Params = gin.Params{{Key: ListingIdKey, Value: testListingId}}
		NewCatalogHandler(service, loggingmocks.NewMockLogger(ctrl)).SetDraft(c)

		assert.Equal(t, http.StatusBadRequest, writer.Code)

		var response map[string]string
		require.NoError(t, json.Unmarshal(writer.Body.Bytes(), &response))
		assert.Equal(t, "invalid request body", response["errors"])
	})
}
