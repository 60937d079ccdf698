package productcontroller

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/shoppee-dev/shoppee-api/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{}, &models.Category{}, &models.Product{},
		&models.Order{}, &models.OrderItem{},
		&models.ShippingAddress{}, &models.Province{},
	))
	return db
}

func seedCatalog(t *testing.T, db *gorm.DB) (models.Category, models.Category) {
	shoes := models.Category{Name: "Shoes", Slug: "shoes"}
	require.NoError(t, db.Create(&shoes).Error)
	bags := models.Category{Name: "Bags", Slug: "bags"}
	require.NoError(t, db.Create(&bags).Error)

	sneaker := models.Product{Name: "Sneaker", Price: 80, Categories: []models.Category{shoes}}
	require.NoError(t, db.Create(&sneaker).Error)
	boot := models.Product{Name: "Boot", Price: 120, Categories: []models.Category{shoes}}
	require.NoError(t, db.Create(&boot).Error)
	tote := models.Product{Name: "Tote bag", Price: 40, Categories: []models.Category{bags}}
	require.NoError(t, db.Create(&tote).Error)

	return shoes, bags
}

func getJSON(t *testing.T, handler gin.HandlerFunc, target string) (*httptest.ResponseRecorder, map[string]json.RawMessage) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, target, nil)
	handler(c)

	var payload map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &payload))
	return w, payload
}

func productNames(t *testing.T, raw json.RawMessage) []string {
	var products []models.Product
	require.NoError(t, json.Unmarshal(raw, &products))
	names := make([]string, 0, len(products))
	for _, p := range products {
		names = append(names, p.Name)
	}
	return names
}

func TestHomeListsEverything(t *testing.T) {
	db := setupTestDB(t)
	seedCatalog(t, db)

	w, payload := getJSON(t, Home(db), "/")
	require.Equal(t, http.StatusOK, w.Code)

	assert.ElementsMatch(t, []string{"Sneaker", "Boot", "Tote bag"}, productNames(t, payload["products"]))

	var cart map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(payload["cart"], &cart))
	assert.Equal(t, "0", string(cart["cart_items"]))
}

func TestCategoryPageFiltersBySlug(t *testing.T) {
	db := setupTestDB(t)
	seedCatalog(t, db)

	w, payload := getJSON(t, CategoryPage(db), "/category/?category=shoes")
	require.Equal(t, http.StatusOK, w.Code)

	assert.ElementsMatch(t, []string{"Sneaker", "Boot"}, productNames(t, payload["products"]))
	assert.Equal(t, `"shoes"`, string(payload["active_category"]))
}

func TestCategoryPayloadCarriesImageURL(t *testing.T) {
	db := setupTestDB(t)

	hats := models.Category{Name: "Hats", Slug: "hats", Image: "hats.png"}
	require.NoError(t, db.Create(&hats).Error)
	bare := models.Category{Name: "Bare", Slug: "bare"}
	require.NoError(t, db.Create(&bare).Error)

	w, payload := getJSON(t, CategoryPage(db), "/category/")
	require.Equal(t, http.StatusOK, w.Code)

	var categories []CategorySchema
	require.NoError(t, json.Unmarshal(payload["categories"], &categories))
	require.Len(t, categories, 2)

	bySlug := map[string]CategorySchema{}
	for _, c := range categories {
		bySlug[c.Slug] = c
	}
	assert.Equal(t, "/uploads/hats.png", bySlug["hats"].ImageURL)
	assert.Equal(t, "", bySlug["bare"].ImageURL)
}

func TestCategoryPageUnknownSlugIsEmpty(t *testing.T) {
	db := setupTestDB(t)
	seedCatalog(t, db)

	w, payload := getJSON(t, CategoryPage(db), "/category/?category=hats")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, productNames(t, payload["products"]))
}

func TestDetailByID(t *testing.T) {
	db := setupTestDB(t)
	seedCatalog(t, db)

	var sneaker models.Product
	require.NoError(t, db.Where("name = ?", "Sneaker").First(&sneaker).Error)

	w, payload := getJSON(t, Detail(db), fmt.Sprintf("/detail/?id=%d", sneaker.ID))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{sneaker.Name}, productNames(t, payload["products"]))
}

func TestDetailUnknownIDIsEmptyNotError(t *testing.T) {
	db := setupTestDB(t)
	seedCatalog(t, db)

	w, payload := getJSON(t, Detail(db), "/detail/?id=999")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, productNames(t, payload["products"]))

	w, payload = getJSON(t, Detail(db), "/detail/")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, productNames(t, payload["products"]))
}

func TestSearchSubstringMatch(t *testing.T) {
	db := setupTestDB(t)
	seedCatalog(t, db)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/search/", strings.NewReader("searched=oo"))
	c.Request.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	Search(db)(c)

	require.Equal(t, http.StatusOK, w.Code)

	var payload map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &payload))
	assert.Equal(t, []string{"Boot"}, productNames(t, payload["keys"]))
	assert.Equal(t, `"oo"`, string(payload["searched"]))
}

func TestProvinces(t *testing.T) {
	db := setupTestDB(t)
	require.NoError(t, db.Create(&models.Province{Name: "Da Nang"}).Error)
	require.NoError(t, db.Create(&models.Province{Name: "Can Tho"}).Error)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/provinces/", nil)
	Provinces(db)(c)

	require.Equal(t, http.StatusOK, w.Code)

	var provinces []models.Province
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &provinces))
	require.Len(t, provinces, 2)
	assert.Equal(t, "Can Tho", provinces[0].Name)
}
