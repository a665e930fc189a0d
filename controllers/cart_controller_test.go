package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"maison-decor/models"
	"maison-decor/repositories"
	"maison-decor/services"
)

func newCartRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	ctrl := NewCartController(services.NewCartService(repositories.NewCartRepository(nil)))

	router := gin.New()
	router.GET("/api/cart", ctrl.GetCart)
	router.POST("/api/cart", ctrl.AddItem)
	router.DELETE("/api/cart", ctrl.ClearCart)
	router.PATCH("/api/cart/:id", ctrl.UpdateQuantity)
	router.DELETE("/api/cart/:id", ctrl.RemoveItem)
	router.GET("/api/wishlist", ctrl.GetWishlist)
	router.POST("/api/wishlist", ctrl.AddWishlistItem)
	return router
}

func doCart(router *gin.Engine, method, path, session string, payload interface{}) *httptest.ResponseRecorder {
	var body *bytes.Reader
	if payload != nil {
		raw, _ := json.Marshal(payload)
		body = bytes.NewReader(raw)
	} else {
		body = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Session-ID", session)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func cartData(t *testing.T, w *httptest.ResponseRecorder) models.CartState {
	t.Helper()
	var resp struct {
		Data models.CartState `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Data
}

func TestCartEndpointsMergeAndTotals(t *testing.T) {
	router := newCartRouter()
	item := map[string]interface{}{"id": "p1", "name": "Brass Lamp", "price": 100}

	w := doCart(router, "POST", "/api/cart", "s1", item)
	require.Equal(t, http.StatusOK, w.Code)
	w = doCart(router, "POST", "/api/cart", "s1", item)
	require.Equal(t, http.StatusOK, w.Code)

	state := cartData(t, w)
	require.Len(t, state.Items, 1)
	assert.Equal(t, 2, state.Items[0].Quantity)
	assert.Equal(t, 200.0, state.TotalValue)
}

func TestCartQuantityZeroRemovesViaAPI(t *testing.T) {
	router := newCartRouter()

	doCart(router, "POST", "/api/cart", "s1", map[string]interface{}{"id": "p1", "name": "Brass Lamp", "price": 100})
	w := doCart(router, "PATCH", "/api/cart/p1", "s1", map[string]interface{}{"quantity": 0})
	require.Equal(t, http.StatusOK, w.Code)

	state := cartData(t, w)
	assert.Empty(t, state.Items)
}

func TestCartPersistsAcrossRequests(t *testing.T) {
	router := newCartRouter()

	doCart(router, "POST", "/api/cart", "s1", map[string]interface{}{"id": "p1", "name": "Brass Lamp", "price": 100})

	w := doCart(router, "GET", "/api/cart", "s1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	state := cartData(t, w)
	require.Len(t, state.Items, 1)

	// A different session sees an empty cart.
	w = doCart(router, "GET", "/api/cart", "s2", nil)
	assert.Empty(t, cartData(t, w).Items)
}

func TestCartSessionCookieIssuedWhenAbsent(t *testing.T) {
	router := newCartRouter()

	req := httptest.NewRequest("GET", "/api/cart", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	cookies := w.Result().Cookies()
	found := false
	for _, c := range cookies {
		if c.Name == sessionCookie && c.Value != "" {
			found = true
		}
	}
	assert.True(t, found)
}

func TestWishlistAddIsIdempotentViaAPI(t *testing.T) {
	router := newCartRouter()
	item := map[string]interface{}{"id": "p1", "name": "Brass Lamp", "price": 100}

	doCart(router, "POST", "/api/wishlist", "s1", item)
	w := doCart(router, "POST", "/api/wishlist", "s1", item)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data models.WishlistState `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Data.Items, 1)
}
