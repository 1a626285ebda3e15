package cart_controller

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/StyleHub-Commerce/stylehub-storefront-backend/catalog"
	"github.com/StyleHub-Commerce/stylehub-storefront-backend/middleware"
	"github.com/StyleHub-Commerce/stylehub-storefront-backend/models"
	"github.com/StyleHub-Commerce/stylehub-storefront-backend/store"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cartEnvelope struct {
	Message string              `json:"message"`
	Error   bool                `json:"error"`
	Data    models.CartResponse `json:"data"`
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cat, err := catalog.Load("")
	require.NoError(t, err)
	Init(cat, store.DefaultPricing())

	sessions := store.NewSessionManager(time.Hour)
	router := gin.New()
	router.Use(middleware.SessionMiddleware(sessions))

	router.GET("/cart", GetCart)
	router.POST("/cart/items", AddCartItem)
	router.PUT("/cart/items", UpdateCartItem)
	router.DELETE("/cart/items", RemoveCartItem)
	router.DELETE("/cart", ClearCart)
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path, sessionID string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		require.NoError(t, err)
	}

	req := httptest.NewRequest(method, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	if sessionID != "" {
		req.Header.Set("X-Session-ID", sessionID)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeCart(t *testing.T, w *httptest.ResponseRecorder) models.CartResponse {
	t.Helper()
	var envelope cartEnvelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	return envelope.Data
}

func TestGetCartStartsEmpty(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/cart", "s1", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "s1", w.Header().Get("X-Session-ID"))

	cart := decodeCart(t, w)
	assert.Empty(t, cart.Items)
	assert.Equal(t, 0, cart.Summary.ItemCount)
}

func TestAddCartItemMergesSameVariant(t *testing.T) {
	router := newTestRouter(t)
	body := models.AddCartItemRequest{
		ProductID: "mens-classic-tee",
		Size:      models.SizeM,
		ColorName: "White",
	}

	w := doJSON(t, router, http.MethodPost, "/cart/items", "s1", body)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodPost, "/cart/items", "s1", body)
	require.Equal(t, http.StatusOK, w.Code)

	cart := decodeCart(t, w)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 2, cart.Items[0].Quantity)
	assert.Equal(t, 2, cart.Summary.ItemCount)
}

func TestAddCartItemValidation(t *testing.T) {
	router := newTestRouter(t)
	quantity := -1

	cases := map[string]struct {
		body models.AddCartItemRequest
		code int
	}{
		"unknown product": {
			body: models.AddCartItemRequest{ProductID: "no-such-product", Size: models.SizeM, ColorName: "White"},
			code: http.StatusNotFound,
		},
		"size not offered": {
			body: models.AddCartItemRequest{ProductID: "mens-slim-chinos", Size: models.SizeXXL, ColorName: "Khaki"},
			code: http.StatusBadRequest,
		},
		"colour not offered": {
			body: models.AddCartItemRequest{ProductID: "mens-classic-tee", Size: models.SizeM, ColorName: "Chartreuse"},
			code: http.StatusBadRequest,
		},
		"non-positive quantity": {
			body: models.AddCartItemRequest{ProductID: "mens-classic-tee", Size: models.SizeM, ColorName: "White", Quantity: &quantity},
			code: http.StatusBadRequest,
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			w := doJSON(t, router, http.MethodPost, "/cart/items", "s1", tc.body)
			assert.Equal(t, tc.code, w.Code)
		})
	}
}

func TestUpdateCartItemZeroQuantityRemovesLine(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/cart/items", "s1", models.AddCartItemRequest{
		ProductID: "mens-classic-tee", Size: models.SizeM, ColorName: "White",
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodPut, "/cart/items", "s1", models.UpdateCartItemRequest{
		ProductID: "mens-classic-tee", Size: models.SizeM, ColorName: "White", Quantity: 0,
	})
	require.Equal(t, http.StatusOK, w.Code)

	assert.Empty(t, decodeCart(t, w).Items)
}

func TestRemoveAndClearCart(t *testing.T) {
	router := newTestRouter(t)

	for _, id := range []string{"mens-classic-tee", "acc-canvas-tote"} {
		w := doJSON(t, router, http.MethodPost, "/cart/items", "s1", map[string]any{
			"product_id": id, "size": "M", "color_name": colorFor(t, id),
		})
		require.Equal(t, http.StatusOK, w.Code, "adding %s", id)
	}

	w := doJSON(t, router, http.MethodDelete, "/cart/items", "s1", models.RemoveCartItemRequest{
		ProductID: "mens-classic-tee", Size: models.SizeM, ColorName: colorFor(t, "mens-classic-tee"),
	})
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, decodeCart(t, w).Items, 1)

	w = doJSON(t, router, http.MethodDelete, "/cart", "s1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decodeCart(t, w).Items)
}

func TestCartsAreIsolatedPerSession(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/cart/items", "s1", models.AddCartItemRequest{
		ProductID: "mens-classic-tee", Size: models.SizeM, ColorName: "White",
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodGet, "/cart", "s2", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decodeCart(t, w).Items)
}

// colorFor returns the first colour name a catalogued product is offered in.
func colorFor(t *testing.T, productID string) string {
	t.Helper()
	product, ok := productCatalog.ProductByID(productID)
	require.True(t, ok)
	require.NotEmpty(t, product.Colors)
	return product.Colors[0].Name
}
