package orders

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/PythonShinobi/Otaku-Store/internal/middleware"
	"github.com/PythonShinobi/Otaku-Store/internal/session"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	items    []Item
	placed   *Checkout
	listAll  bool
	err      error
	nextID   int64
	placedBy int64
}

func (f *fakeStore) ListItems(_ context.Context, userID int64, all bool) ([]Item, error) {
	f.listAll = all
	if f.err != nil {
		return nil, f.err
	}
	if all {
		return f.items, nil
	}
	out := []Item{}
	for _, it := range f.items {
		if it.UserID == userID {
			out = append(out, it)
		}
	}
	return out, nil
}

func (f *fakeStore) PlaceOrder(_ context.Context, userID int64, order Checkout) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	f.placed = &order
	f.placedBy = userID
	return f.nextID, nil
}

func newRouter(store Store, claims *session.Claims) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		if claims != nil {
			c.Request = c.Request.WithContext(middleware.WithClaims(c.Request.Context(), claims))
		}
		c.Next()
	})
	NewHandler(store).RegisterRoutes(r)
	return r
}

var lee = &session.Claims{UserID: 5, Username: "lee", Email: "Lee@Konoha.jp"}

func TestList_OwnOrders(t *testing.T) {
	store := &fakeStore{items: []Item{{UserID: 5, ProductName: "Goku"}, {UserID: 6, ProductName: "Vol.1"}}}
	r := newRouter(store, lee)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/orders", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Orders []Item `json:"orders"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Orders, 1)
	assert.Equal(t, "Goku", body.Orders[0].ProductName)
	assert.False(t, store.listAll)
}

func TestList_AdminSeesAll(t *testing.T) {
	store := &fakeStore{items: []Item{{UserID: 5}, {UserID: 6}}}
	admin := &session.Claims{UserID: 1, Username: "admin", IsAdmin: true}
	r := newRouter(store, admin)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/orders", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, store.listAll)
}

func TestList_NoSession(t *testing.T) {
	r := newRouter(&fakeStore{}, nil)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/orders", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestList_StoreError(t *testing.T) {
	r := newRouter(&fakeStore{err: errors.New("db down")}, lee)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/orders", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

const checkoutBody = `{
	"firstName": "Rock", "lastName": "Lee", "email": "lee@konoha.jp",
	"address": "1 Leaf St", "city": "Konoha", "postalCode": "1000",
	"cartItems": [{"id": 1, "name": "Goku", "quantity": 2, "price": 29.5}]
}`

func postCheckout(r http.Handler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/checkout", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestCheckout_Success(t *testing.T) {
	store := &fakeStore{nextID: 42}
	r := newRouter(store, lee)

	rec := postCheckout(r, checkoutBody)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.JSONEq(t, `{"message":"Order placed successfully","orderId":42}`, rec.Body.String())
	require.NotNil(t, store.placed)
	assert.Equal(t, int64(5), store.placedBy)
	assert.Len(t, store.placed.CartItems, 1)
}

func TestCheckout_IncorrectEmail(t *testing.T) {
	store := &fakeStore{}
	r := newRouter(store, lee)

	rec := postCheckout(r, strings.Replace(checkoutBody, "lee@konoha.jp", "gai@konoha.jp", 1))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"message":"Incorrect email"}`, rec.Body.String())
	assert.Nil(t, store.placed)
}

func TestCheckout_EmptyCart(t *testing.T) {
	r := newRouter(&fakeStore{}, lee)

	rec := postCheckout(r, `{"email":"lee@konoha.jp","cartItems":[]}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCheckout_InvalidItem(t *testing.T) {
	r := newRouter(&fakeStore{}, lee)

	rec := postCheckout(r, `{"email":"lee@konoha.jp","cartItems":[{"id":1,"name":"Goku","quantity":0,"price":1}]}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCheckout_MalformedJSON(t *testing.T) {
	r := newRouter(&fakeStore{}, lee)

	rec := postCheckout(r, `{"email":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCheckout_StoreError(t *testing.T) {
	r := newRouter(&fakeStore{err: errors.New("tx failed")}, lee)

	rec := postCheckout(r, checkoutBody)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
