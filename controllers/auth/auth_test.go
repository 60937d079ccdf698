package authControllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/shoppee-dev/shoppee-api/config"
	"github.com/shoppee-dev/shoppee-api/models"
	"github.com/shoppee-dev/shoppee-api/token"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}))
	return db
}

func postJSON(t *testing.T, handler gin.HandlerFunc, target, body string) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	handler(c)
	return w
}

const registerBody = `{
	"username": "alice",
	"email": "alice@example.com",
	"first_name": "Alice",
	"last_name": "Smith",
	"password": "correct horse"
}`

func TestRegister(t *testing.T) {
	db := setupTestDB(t)

	w := postJSON(t, Register(db), "/register", registerBody)
	require.Equal(t, http.StatusCreated, w.Code)

	var user models.User
	require.NoError(t, db.Where("username = ?", "alice").First(&user).Error)
	assert.Equal(t, "alice@example.com", user.Email)
	assert.NotEqual(t, "correct horse", user.Password)
	assert.True(t, user.ValidatePassword("correct horse"))

	// The hash never leaves the API.
	assert.NotContains(t, w.Body.String(), user.Password)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	db := setupTestDB(t)

	w := postJSON(t, Register(db), "/register", registerBody)
	require.Equal(t, http.StatusCreated, w.Code)

	w = postJSON(t, Register(db), "/register", registerBody)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Username already taken"}`, w.Body.String())
}

func TestRegisterRejectsShortPassword(t *testing.T) {
	db := setupTestDB(t)

	w := postJSON(t, Register(db), "/register", `{
		"username": "bob", "email": "bob@example.com", "password": "short"
	}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLogin(t *testing.T) {
	config.Cfg.Server.SecretKey = "test-secret"
	config.Cfg.Server.ExpirationMinutes = 60

	db := setupTestDB(t)
	w := postJSON(t, Register(db), "/register", registerBody)
	require.Equal(t, http.StatusCreated, w.Code)

	t.Run("valid credentials issue a token", func(t *testing.T) {
		w := postJSON(t, Login(db), "/login/", `{"username":"alice","password":"correct horse"}`)
		require.Equal(t, http.StatusOK, w.Code)

		var resp map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.NotEmpty(t, resp["token"])

		claims, err := token.ValidateToken(resp["token"])
		require.NoError(t, err)
		var user models.User
		require.NoError(t, db.Where("username = ?", "alice").First(&user).Error)
		assert.Equal(t, user.ID, claims.UserID)
	})

	t.Run("wrong password is rejected", func(t *testing.T) {
		w := postJSON(t, Login(db), "/login/", `{"username":"alice","password":"wrong"}`)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.JSONEq(t, `{"error":"user or password incorrect"}`, w.Body.String())
	})

	t.Run("unknown user is rejected with the same message", func(t *testing.T) {
		w := postJSON(t, Login(db), "/login/", `{"username":"mallory","password":"whatever"}`)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.JSONEq(t, `{"error":"user or password incorrect"}`, w.Body.String())
	})
}

func TestLogout(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/logout/", nil)
	Logout()(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"logged out"}`, w.Body.String())
}
