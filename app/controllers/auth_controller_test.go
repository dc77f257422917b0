package controllers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// doJSON issues a request with an optional JSON body and bearer token.
func doJSON(t *testing.T, method, url, token string, payload interface{}) (int, map[string]interface{}) {
	t.Helper()

	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, url, body)
	require.NoError(t, err)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &decoded), "body: %s", raw)
	return resp.StatusCode, decoded
}

// registerUser creates an account and returns the issued token.
func registerUser(t *testing.T, srv *httptest.Server) string {
	t.Helper()

	status, body := doJSON(t, http.MethodPost, srv.URL+"/api/auth/register", "", map[string]string{
		"fullName": "Jesse Pinkman",
		"email":    "jesse@shinyflakes.test",
		"password": "yoscience",
	})
	require.Equal(t, http.StatusCreated, status, "body: %v", body)

	token := body["token"].(map[string]interface{})
	return token["value"].(string)
}

func TestRegisterFlow(t *testing.T) {
	srv := newTestServer(t)

	status, body := doJSON(t, http.MethodPost, srv.URL+"/api/auth/register", "", map[string]string{
		"fullName": "Jesse Pinkman",
		"email":    "jesse@shinyflakes.test",
		"password": "yoscience",
	})
	require.Equal(t, http.StatusCreated, status)

	assert.Equal(t, true, body["success"])
	assert.Equal(t, "User registered successfully", body["message"])

	user := body["user"].(map[string]interface{})
	assert.Equal(t, "jesse@shinyflakes.test", user["email"])
	assert.Equal(t, "Jesse Pinkman", user["fullName"])
	assert.Equal(t, "user", user["role"])
	assert.NotContains(t, user, "password")

	token := body["token"].(map[string]interface{})
	assert.Equal(t, "Bearer", token["type"])
	assert.NotEmpty(t, token["value"])
}

func TestRegisterDuplicateEmailRejected(t *testing.T) {
	srv := newTestServer(t)
	registerUser(t, srv)

	status, body := doJSON(t, http.MethodPost, srv.URL+"/api/auth/register", "", map[string]string{
		"fullName": "Someone Else",
		"email":    "jesse@shinyflakes.test",
		"password": "different1",
	})
	require.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "User with this email already exists", body["message"])
}

func TestRegisterValidation(t *testing.T) {
	srv := newTestServer(t)

	status, body := doJSON(t, http.MethodPost, srv.URL+"/api/auth/register", "", map[string]string{
		"fullName": "J",
		"email":    "not-an-email",
		"password": "123",
	})
	require.Equal(t, http.StatusUnprocessableEntity, status)

	errs := body["errors"].(map[string]interface{})
	assert.Contains(t, errs, "fullName")
	assert.Contains(t, errs, "email")
	assert.Contains(t, errs, "password")
}

func TestLoginFlow(t *testing.T) {
	srv := newTestServer(t)
	registerUser(t, srv)

	status, body := doJSON(t, http.MethodPost, srv.URL+"/api/auth/login", "", map[string]string{
		"email":    "jesse@shinyflakes.test",
		"password": "yoscience",
	})
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "Login successful", body["message"])
	token := body["token"].(map[string]interface{})
	assert.Equal(t, "Bearer", token["type"])

	status, body = doJSON(t, http.MethodPost, srv.URL+"/api/auth/login", "", map[string]string{
		"email":    "jesse@shinyflakes.test",
		"password": "wrong",
	})
	require.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Invalid email or password", body["message"])
}

func TestMeRequiresAuth(t *testing.T) {
	srv := newTestServer(t)

	status, body := doJSON(t, http.MethodGet, srv.URL+"/api/auth/me", "", nil)
	require.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Authentication required", body["message"])
	assert.Equal(t, "Unauthorized", body["error"])
}

func TestMeReturnsCurrentUser(t *testing.T) {
	srv := newTestServer(t)
	token := registerUser(t, srv)

	status, body := doJSON(t, http.MethodGet, srv.URL+"/api/auth/me", token, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, true, body["success"])

	user := body["user"].(map[string]interface{})
	assert.Equal(t, "jesse@shinyflakes.test", user["email"])
}

func TestLogoutInvalidatesToken(t *testing.T) {
	srv := newTestServer(t)
	token := registerUser(t, srv)

	status, body := doJSON(t, http.MethodDelete, srv.URL+"/api/auth/logout", token, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, true, body["success"])

	status, _ = doJSON(t, http.MethodGet, srv.URL+"/api/auth/me", token, nil)
	assert.Equal(t, http.StatusUnauthorized, status)
}

func TestUpdateProfileEndpoint(t *testing.T) {
	srv := newTestServer(t)
	token := registerUser(t, srv)

	status, body := doJSON(t, http.MethodPut, srv.URL+"/api/auth/profile", token, map[string]string{
		"fullName": "Cap'n Cook",
	})
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, true, body["success"])
	user := body["user"].(map[string]interface{})
	assert.Equal(t, "Cap'n Cook", user["fullName"])
}

func TestCartRequiresAuth(t *testing.T) {
	srv := newTestServer(t)

	for _, route := range []string{"/api/cart", "/api/orders"} {
		status, body := doJSON(t, http.MethodGet, srv.URL+route, "", nil)
		assert.Equal(t, http.StatusUnauthorized, status, route)
		assert.Equal(t, "Unauthorized", body["error"], route)
	}
}

func TestCartEndpoints(t *testing.T) {
	srv := newTestServer(t)
	token := registerUser(t, srv)

	status, body := doJSON(t, http.MethodGet, srv.URL+"/api/cart", token, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, "data")
	assert.Contains(t, body, "total")
	assert.NotZero(t, body["user_id"])

	status, body = doJSON(t, http.MethodPost, srv.URL+"/api/cart/add", token, map[string]interface{}{
		"product_id": 1,
		"quantity":   2,
	})
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Item added to cart", body["message"])

	status, body = doJSON(t, http.MethodPut, srv.URL+"/api/cart/3", token, map[string]interface{}{
		"quantity": 5,
	})
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Cart item 3 updated", body["message"])

	status, _ = doJSON(t, http.MethodDelete, srv.URL+"/api/cart/3", token, nil)
	assert.Equal(t, http.StatusOK, status)
}

func TestOrderEndpoints(t *testing.T) {
	srv := newTestServer(t)
	token := registerUser(t, srv)

	status, body := doJSON(t, http.MethodGet, srv.URL+"/api/orders", token, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, "data")

	status, body = doJSON(t, http.MethodPost, srv.URL+"/api/orders", token, map[string]interface{}{})
	require.Equal(t, http.StatusCreated, status)
	assert.Equal(t, "Order created successfully", body["message"])
	assert.Contains(t, body, "order_id")

	status, body = doJSON(t, http.MethodGet, srv.URL+"/api/orders/7", token, nil)
	require.Equal(t, http.StatusOK, status)
	order := body["data"].(map[string]interface{})
	assert.EqualValues(t, 7, order["id"])
	assert.Equal(t, "shipped", order["status"])
}
