package http

import (
	"encoding/json"
	"net/http"
	"testing"

	loggingmocks "github.com/Lexv0lk/game-shop/gen/mocks/logging"
	shopmocks "github.com/Lexv0lk/game-shop/gen/mocks/shop"
	"github.com/Lexv0lk/game-shop/internal/shop/domain"
	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryHandler_GetCategoryTree(t *testing.T) {
	t.Parallel()

	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)

	tree := []domain.CategoryNode{
		{
			Category:     domain.Category{Id: testCategoryId, Name: "Weapons"},
			ListingCount: 3,
			Children:     []domain.CategoryNode{},
		},
	}

	service := shopmocks.NewMockCategoryService(ctrl)
	service.EXPECT().GetCategoryTree(gomock.Any()).Return(tree, nil)

	c, writer := newTestContext(http.MethodGet, "/api/shop/categories/tree", nil)
	NewCategoryHandler(service, loggingmocks.NewMockLogger(ctrl)).GetCategoryTree(c)

	require.Equal(t, http.StatusOK, writer.Code)

	var response struct {
		Categories []domain.CategoryNode `json:"categories"`
	}
	require.NoError(t, json.Unmarshal(writer.Body.Bytes(), &response))
	assert.Equal(t, tree, response.Categories)
}

func TestCategoryHandler_CreateCategory(t *testing.T) {
	t.Parallel()

	type testCase struct {
		name           string
		body           any
		expectedStatus int

		prepareFn func(t *testing.T, service *shopmocks.MockCategoryService)
	}

	tests := []testCase{
		{
			name:           "root category",
			body:           map[string]any{"name": "Armor", "emoji": "🛡"},
			expectedStatus: http.StatusCreated,
			prepareFn: func(t *testing.T, service *shopmocks.MockCategoryService) {
				service.EXPECT().CreateCategory(gomock.Any(), "Armor", "🛡", nil).
					Return(domain.Category{Id: testCategoryId, Name: "Armor", Emoji: "🛡"}, nil)
			},
		},
		{
			name:           "missing parent",
			body:           map[string]any{"name": "Helmets", "parentId": testCategoryId},
			expectedStatus: http.StatusNotFound,
			prepareFn: func(t *testing.T, service *shopmocks.MockCategoryService) {
				service.EXPECT().CreateCategory(gomock.Any(), "Helmets", "", gomock.Any()).
					Return(domain.Category{}, &domain.CategoryNotFoundError{Msg: "parent category not found"})
			},
		},
		{
			name:           "missing name",
			body:           map[string]any{"emoji": "🛡"},
			expectedStatus: http.StatusBadRequest,
			prepareFn:      func(t *testing.T, service *shopmocks.MockCategoryService) {},
		},
	}

	gin.SetMode(gin.TestMode)

	for _, tc := range tests {
		tt := tc
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)

			service := shopmocks.NewMockCategoryService(ctrl)
			tt.prepareFn(t, service)

			c, writer := newTestContext(http.MethodPost, "/api/shop/categories", tt.body)
			NewCategoryHandler(service, loggingmocks.NewMockLogger(ctrl)).CreateCategory(c)

			assert.Equal(t, tt.expectedStatus, writer.Code)
		})
	}
}

func TestCategoryHandler_MoveCategory(t *testing.T) {
	t.Parallel()

	const parentId = "1f2e3d4c-5b6a-4978-8a6b-5c4d3e2f1a0b"

	type testCase struct {
		name           string
		body           any
		expectedStatus int

		prepareFn func(t *testing.T, service *shopmocks.MockCategoryService)
	}

	tests := []testCase{
		{
			name:           "moved under parent",
			body:           map[string]any{"parentId": parentId},
			expectedStatus: http.StatusOK,
			prepareFn: func(t *testing.T, service *shopmocks.MockCategoryService) {
				service.EXPECT().MoveCategory(gomock.Any(), testCategoryId, gomock.Any()).
					DoAndReturn(func(_ any, _ string, parent *string) (domain.Category, error) {
						require.NotNil(t, parent)
						assert.Equal(t, parentId, *parent)
						return domain.Category{Id: testCategoryId, ParentId: parent}, nil
					})
			},
		},
		{
			name:           "moved to root",
			body:           map[string]any{"parentId": nil},
			expectedStatus: http.StatusOK,
			prepareFn: func(t *testing.T, service *shopmocks.MockCategoryService) {
				service.EXPECT().MoveCategory(gomock.Any(), testCategoryId, nil).
					Return(domain.Category{Id: testCategoryId}, nil)
			},
		},
		{
			name:           "cycle rejected",
			body:           map[string]any{"parentId": parentId},
			expectedStatus: http.StatusBadRequest,
			prepareFn: func(t *testing.T, service *shopmocks.MockCategoryService) {
				service.EXPECT().MoveCategory(gomock.Any(), testCategoryId, gomock.Any()).
					Return(domain.Category{}, &domain.ValidationError{Msg: "category can not be moved into its own subtree"})
			},
		},
	}

	gin.SetMode(gin.TestMode)

	for _, tc := range tests {
		tt := tc
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)

			service := shopmocks.NewMockCategoryService(ctrl)
			tt.prepareFn(t, service)

			c, writer := newTestContext(http.MethodPut, "/api/shop/categories/"+testCategoryId+"/parent", tt.body)
			c.Params = gin.Params{{Key: CategoryIdKey, Value: testCategoryId}}
			NewCategoryHandler(service, loggingmocks.NewMockLogger(ctrl)).MoveCategory(c)

			assert.Equal(t, tt.expectedStatus, writer.Code)
		})
	}
}

func TestCategoryHandler_DeleteCategory(t *testing.T) {
	t.Parallel()

	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)

	service := shopmocks.NewMockCategoryService(ctrl)
	service.EXPECT().DeleteCategory(gomock.Any(), testCategoryId).Return(nil)

	c, writer := newTestContext(http.MethodDelete, "/api/shop/categories/"+testCategoryId, nil)
	c.Params = gin.Params{{Key: CategoryIdKey, Value: testCategoryId}}
	NewCategoryHandler(service, loggingmocks.NewMockLogger(ctrl)).DeleteCategory(c)

	assert.Equal(t, http.StatusNoContent, writer.Code)
}

func TestCategoryHandler_BulkAssignCategories(t *testing.T) {
	t.Parallel()

	type testCase struct {
		name           string
		body           any
		expectedStatus int

		prepareFn func(t *testing.T, service *shopmocks.MockCategoryService)
	}

	tests := []testCase{
		{
			name: "assigned",
			body: map[string]any{
				"listingIds":     []string{testListingId},
				"addCategoryIds": []string{testCategoryId},
			},
			expectedStatus: http.StatusOK,
			prepareFn: func(t *testing.T, service *shopmocks.MockCategoryService) {
				service.EXPECT().BulkAssignCategories(gomock.Any(), []string{testListingId}, []string{testCategoryId}, nil).
					Return(nil)
			},
		},
		{
			name:           "no listings",
			body:           map[string]any{"listingIds": []string{}, "addCategoryIds": []string{testCategoryId}},
			expectedStatus: http.StatusBadRequest,
			prepareFn:      func(t *testing.T, service *shopmocks.MockCategoryService) {},
		},
		{
			name: "nothing to change",
			body: map[string]any{"listingIds": []string{testListingId}},
			prepareFn: func(t *testing.T, service *shopmocks.MockCategoryService) {
				service.EXPECT().BulkAssignCategories(gomock.Any(), []string{testListingId}, nil, nil).
					Return(&domain.ValidationError{Msg: "nothing to add or remove"})
			},
			expectedStatus: http.StatusBadRequest,
		},
	}

	gin.SetMode(gin.TestMode)

	for _, tc := range tests {
		tt := tc
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)

			service := shopmocks.NewMockCategoryService(ctrl)
			tt.prepareFn(t, service)

			c, writer := newTestContext(http.MethodPost, "/api/shop/categories/bulk-assign", tt.body)
			NewCategoryHandler(service, loggingmocks.NewMockLogger(ctrl)).BulkAssignCategories(c)

			assert.Equal(t, tt.expectedStatus, writer.Code)
		})
	}
}
