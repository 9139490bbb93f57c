package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/Nagesh2809/cafe-management/configs"
	"github.com/Nagesh2809/cafe-management/entity"
)

func newTestApp(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	if err := db.AutoMigrate(
		&entity.User{}, &entity.MenuItem{},
		&entity.Order{}, &entity.OrderItem{}, &entity.Review{},
	); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}

	cfg := &configs.Config{JWTSecret: "test-secret", JWTTTL: time.Hour}
	r := gin.New()
	RegisterRoutes(r, db, cfg)
	return r, db
}

func doJSON(r http.Handler, method, path, token string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req, _ := http.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func register(t *testing.T, r http.Handler, email, name, password string) {
	t.Helper()
	w := doJSON(r, "POST", "/register", "", gin.H{"email": email, "name": name, "password": password})
	assert.Equal(t, http.StatusCreated, w.Code, w.Body.String())
}

func login(t *testing.T, r http.Handler, email, password string) string {
	t.Helper()
	w := doJSON(r, "POST", "/token", "", gin.H{"email": email, "password": password})
	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "bearer", resp.TokenType)
	return resp.AccessToken
}

// ----------------------- auth ----------------------- //

func TestHealth(t *testing.T) {
	r, _ := newTestApp(t)
	w := doJSON(r, "GET", "/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	r, _ := newTestApp(t)

	register(t, r, "maya@example.com", "Maya", "secret1")
	w := doJSON(r, "POST", "/register", "", gin.H{"email": "maya@example.com", "name": "Maya", "password": "secret1"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "email already registered")
}

func TestRegisterRolePolicy(t *testing.T) {
	r, _ := newTestApp(t)

	w := doJSON(r, "POST", "/register", "", gin.H{"email": "theAdmin@cafe.com", "name": "Boss", "password": "secret1"})
	assert.Equal(t, http.StatusCreated, w.Code)
	var u entity.User
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &u))
	assert.Equal(t, entity.RoleAdmin, u.Role)

	w = doJSON(r, "POST", "/register", "", gin.H{"email": "maya@example.com", "name": "Maya", "password": "secret1"})
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &u))
	assert.Equal(t, entity.RoleUser, u.Role)
}

func TestLoginFailuresShareShape(t *testing.T) {
	r, _ := newTestApp(t)
	register(t, r, "maya@example.com", "Maya", "secret1")

	wrongPass := doJSON(r, "POST", "/token", "", gin.H{"email": "maya@example.com", "password": "nope"})
	unknownEmail := doJSON(r, "POST", "/token", "", gin.H{"email": "ghost@example.com", "password": "nope"})

	assert.Equal(t, http.StatusBadRequest, wrongPass.Code)
	assert.Equal(t, http.StatusBadRequest, unknownEmail.Code)
	// identical body so callers can't tell which part was wrong
	assert.Equal(t, wrongPass.Body.String(), unknownEmail.Body.String())
}

func TestUsersMe(t *testing.T) {
	r, _ := newTestApp(t)

	w := doJSON(r, "GET", "/users/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(r, "GET", "/users/me", "garbage-token", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	register(t, r, "maya@example.com", "Maya", "secret1")
	token := login(t, r, "maya@example.com", "secret1")

	w = doJSON(r, "GET", "/users/me", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	var u entity.User
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &u))
	assert.Equal(t, "maya@example.com", u.Email)
	assert.Equal(t, entity.RoleUser, u.Role)
}

// ----------------------- menu ----------------------- //

func sampleItem() gin.H {
	return gin.H{
		"name":        "Classic Irani Chai",
		"category":    "Chai",
		"price":       30.0,
		"description": "Signature strong tea.",
		"image":       "https://example.com/chai.jpg",
		"ingredients": []string{"Assam Tea Dust", "Milk", "Sugar"},
		"add_ons": []gin.H{
			{"name": "Extra Milk", "price": 10.0, "type": "toggle"},
			{"name": "Extra Cardamom", "price": 5.0, "type": "quantity", "maxQuantity": 2},
		},
		"is_popular":   true,
		"is_available": true,
	}
}

func TestMenuWritesAreAdminGated(t *testing.T) {
	r, _ := newTestApp(t)
	register(t, r, "maya@example.com", "Maya", "secret1")
	token := login(t, r, "maya@example.com", "secret1")

	w := doJSON(r, "POST", "/menu", "", sampleItem())
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(r, "POST", "/menu", token, sampleItem())
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestMenuCRUDRoundTrip(t *testing.T) {
	r, _ := newTestApp(t)
	register(t, r, "admin@niloufer.com", "Boss", "secret1")
	admin := login(t, r, "admin@niloufer.com", "secret1")

	w := doJSON(r, "POST", "/menu", admin, sampleItem())
	assert.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var created entity.MenuItem
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.NotZero(t, created.ID)

	// round-trip preserves ingredient and add-on lists in order
	w = doJSON(r, "GET", "/menu", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	var items []entity.MenuItem
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &items))
	assert.Len(t, items, 1)
	assert.Equal(t, []string{"Assam Tea Dust", "Milk", "Sugar"}, items[0].Ingredients)
	assert.Len(t, items[0].AddOns, 2)
	assert.Equal(t, "Extra Milk", items[0].AddOns[0].Name)
	assert.Equal(t, entity.AddOnQuantity, items[0].AddOns[1].Type)
	if assert.NotNil(t, items[0].AddOns[1].MaxQuantity) {
		assert.Equal(t, 2, *items[0].AddOns[1].MaxQuantity)
	}

	// full-field replace
	updated := sampleItem()
	updated["name"] = "Masala Chai"
	updated["ingredients"] = []string{"Tea", "Spices"}
	updated["is_popular"] = false
	w = doJSON(r, "PUT", fmt.Sprintf("/menu/%d", created.ID), admin, updated)
	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var after entity.MenuItem
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &after))
	assert.Equal(t, "Masala Chai", after.Name)
	assert.Equal(t, []string{"Tea", "Spices"}, after.Ingredients)
	assert.False(t, after.IsPopular)

	// missing ids
	w = doJSON(r, "PUT", "/menu/9999", admin, updated)
	assert.Equal(t, http.StatusNotFound, w.Code)
	w = doJSON(r, "DELETE", "/menu/9999", admin, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(r, "DELETE", fmt.Sprintf("/menu/%d", created.ID), admin, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	w = doJSON(r, "GET", "/menu", "", nil)
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &items))
	assert.Empty(t, items)
}

func TestMenuPopularCap(t *testing.T) {
	r, db := newTestApp(t)

	for i := 0; i < 6; i++ {
		db.Create(&entity.MenuItem{Name: fmt.Sprintf("Popular %d", i), Price: 10, IsPopular: true, IsAvailable: true})
	}
	db.Create(&entity.MenuItem{Name: "Plain", Price: 10, IsPopular: false, IsAvailable: true})

	w := doJSON(r, "GET", "/menu/popular", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	var items []entity.MenuItem
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &items))
	assert.Len(t, items, 4)
	for _, it := range items {
		assert.True(t, it.IsPopular)
	}
}

// ----------------------- orders ----------------------- //

func orderPayload() gin.H {
	return gin.H{
		"subtotal":        105.0,
		"discount_amount": 5.0,
		"total":           100.0,
		"items": []gin.H{
			{"menu_item_id": 1, "name": "Classic Irani Chai", "quantity": 2, "price": 30.0,
				"selected_options": []gin.H{{"name": "Extra Milk", "price": 10.0, "type": "toggle"}}},
			{"menu_item_id": "2", "name": "Bun Maska", "quantity": 1, "price": 45.0},
		},
	}
}

func TestPlaceOrder(t *testing.T) {
	r, _ := newTestApp(t)
	register(t, r, "maya@example.com", "Maya", "secret1")
	token := login(t, r, "maya@example.com", "secret1")

	w := doJSON(r, "POST", "/orders", token, orderPayload())
	assert.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var order entity.Order
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &order))
	assert.Equal(t, entity.StatusPending, order.Status)
	assert.Equal(t, 100.0, order.Total)
	assert.Len(t, order.Items, 2)
	assert.Equal(t, "Classic Irani Chai", order.Items[0].Name)
	assert.Equal(t, 2, order.Items[0].Quantity)
	assert.Equal(t, uint(2), order.Items[1].MenuItemID)
	assert.Equal(t, "Extra Milk", order.Items[0].SelectedOptions[0].Name)
}

func TestPlaceOrderAdminRejected(t *testing.T) {
	r, _ := newTestApp(t)
	register(t, r, "admin@niloufer.com", "Boss", "secret1")
	admin := login(t, r, "admin@niloufer.com", "secret1")

	w := doJSON(r, "POST", "/orders", admin, orderPayload())
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "cannot place orders")
}

func TestPlaceOrderBadItemIDLeavesNothing(t *testing.T) {
	r, db := newTestApp(t)
	register(t, r, "maya@example.com", "Maya", "secret1")
	token := login(t, r, "maya@example.com", "secret1")

	payload := orderPayload()
	payload["items"] = []gin.H{
		{"menu_item_id": 1, "name": "Chai", "quantity": 1, "price": 30.0},
		{"menu_item_id": "oops", "name": "Bun", "quantity": 1, "price": 45.0},
	}
	w := doJSON(r, "POST", "/orders", token, payload)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var orderCount, itemCount int64
	db.Model(&entity.Order{}).Count(&orderCount)
	db.Model(&entity.OrderItem{}).Count(&itemCount)
	assert.Zero(t, orderCount)
	assert.Zero(t, itemCount)
}

func TestMyOrders(t *testing.T) {
	r, db := newTestApp(t)
	register(t, r, "maya@example.com", "Maya", "secret1")
	register(t, r, "ravi@example.com", "Ravi", "secret1")
	maya := login(t, r, "maya@example.com", "secret1")
	ravi := login(t, r, "ravi@example.com", "secret1")

	for _, total := range []float64{30, 45} {
		p := orderPayload()
		p["total"] = total
		w := doJSON(r, "POST", "/orders", maya, p)
		assert.Equal(t, http.StatusCreated, w.Code)
	}
	w := doJSON(r, "POST", "/orders", ravi, orderPayload())
	assert.Equal(t, http.StatusCreated, w.Code)

	// push maya's first order back a day so ordering is unambiguous
	db.Model(&entity.Order{}).Where("total = ?", 30.0).
		Update("date", time.Now().UTC().Add(-24*time.Hour))

	w = doJSON(r, "GET", "/orders/me", maya, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	var orders []entity.Order
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &orders))
	assert.Len(t, orders, 2)
	assert.Equal(t, 45.0, orders[0].Total)
	assert.Equal(t, 30.0, orders[1].Total)
	for _, o := range orders {
		assert.Len(t, o.Items, 2)
	}
}

// ----------------------- admin ----------------------- //

func TestAdminEndpointsAreGated(t *testing.T) {
	r, _ := newTestApp(t)
	register(t, r, "maya@example.com", "Maya", "secret1")
	token := login(t, r, "maya@example.com", "secret1")

	for _, path := range []string{"/admin/stats", "/admin/orders"} {
		w := doJSON(r, "GET", path, token, nil)
		assert.Equal(t, http.StatusForbidden, w.Code, path)
		w = doJSON(r, "GET", path, "", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code, path)
	}
}

func TestAdminStatsAndOrders(t *testing.T) {
	r, _ := newTestApp(t)
	register(t, r, "admin@niloufer.com", "Boss", "secret1")
	register(t, r, "maya@example.com", "Maya", "secret1")
	admin := login(t, r, "admin@niloufer.com", "secret1")
	maya := login(t, r, "maya@example.com", "secret1")

	for _, total := range []float64{30, 45, 25} {
		p := orderPayload()
		p["total"] = total
		w := doJSON(r, "POST", "/orders", maya, p)
		assert.Equal(t, http.StatusCreated, w.Code)
	}

	w := doJSON(r, "GET", "/admin/stats", admin, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	var stats struct {
		Revenue      float64 `json:"revenue"`
		Orders       int64   `json:"orders"`
		Users        int64   `json:"users"`
		SalesHistory []struct {
			Date  string  `json:"date"`
			Sales float64 `json:"sales"`
		} `json:"sales_history"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))
	assert.Equal(t, 100.0, stats.Revenue)
	assert.Equal(t, int64(3), stats.Orders)
	assert.Equal(t, int64(2), stats.Users)
	assert.Len(t, stats.SalesHistory, 1) // all placed today
	assert.Equal(t, 100.0, stats.SalesHistory[0].Sales)

	w = doJSON(r, "GET", "/admin/orders", admin, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	var orders []entity.Order
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &orders))
	assert.Len(t, orders, 3)
}

func TestUpdateOrderStatus(t *testing.T) {
	r, _ := newTestApp(t)
	register(t, r, "admin@niloufer.com", "Boss", "secret1")
	register(t, r, "maya@example.com", "Maya", "secret1")
	admin := login(t, r, "admin@niloufer.com", "secret1")
	maya := login(t, r, "maya@example.com", "secret1")

	w := doJSON(r, "POST", "/orders", maya, orderPayload())
	assert.Equal(t, http.StatusCreated, w.Code)
	var order entity.Order
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &order))

	w = doJSON(r, "PUT", "/admin/orders/9999/status", admin, gin.H{"status": "Completed"})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(r, "PUT", fmt.Sprintf("/admin/orders/%d/status", order.ID), admin, gin.H{"status": "Processing"})
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(r, "GET", "/orders/me", maya, nil)
	var orders []entity.Order
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &orders))
	assert.Equal(t, entity.StatusProcessing, orders[0].Status)
}
