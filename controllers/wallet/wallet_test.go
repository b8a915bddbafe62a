package walletController

import (
	"bytes"
	"encoding/json"
	"fmt"
	"lms/config"
	"lms/database"
	"lms/middleware"
	"lms/models"
	walletValidator "lms/validators/wallet"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type noopMailer struct{}

func (noopMailer) SendWalletEmail(email, name string, amount, balance float64, credited bool) {}

type apiResponse struct {
	Success bool                   `json:"success"`
	Message string                 `json:"message"`
	Data    map[string]interface{} `json:"data"`
}

func setupWalletTest(t *testing.T) *fiber.App {
	t.Helper()

	config.AppConfig = &config.Config{JWTKey: "test-secret", SaltRound: 4, Currency: "INR"}

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	database.RunMigrations(db)
	database.Database = database.DbInstance{Db: db}

	app := fiber.New()
	controller := New(noopMailer{})

	walletGroup := app.Group("/wallet")
	walletGroup.Post("/add", middleware.JWTMiddleware, walletValidator.Amount(), controller.AddToWallet)
	walletGroup.Get("/balance", middleware.JWTMiddleware, controller.GetWallet)
	walletGroup.Post("/deduct", middleware.JWTMiddleware, walletValidator.Amount(), controller.DeductFromWallet)
	walletGroup.Get("/history", middleware.JWTMiddleware, controller.GetWalletHistory)

	return app
}

func createTestUser(t *testing.T, email string) (models.User, string) {
	t.Helper()

	user := models.User{FirstName: "Test", LastName: "User", Email: email, Password: "x", Role: "STUDENT"}
	require.NoError(t, database.Database.Db.Create(&user).Error)

	token, err := middleware.GenerateJWT(user.ID, user.Email, user.Role)
	require.NoError(t, err)

	return user, token
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, body interface{}) (*http.Response, apiResponse) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var parsed apiResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&parsed))
	return resp, parsed
}

func walletOf(t *testing.T, parsed apiResponse) float64 {
	t.Helper()
	wallet, ok := parsed.Data["wallet"].(float64)
	require.True(t, ok, "response should carry a wallet balance")
	return wallet
}

func TestWalletCreditDebitScenario(t *testing.T) {
	app := setupWalletTest(t)
	_, token := createTestUser(t, "user123@test.in")

	// Credit 500 on an empty wallet
	resp, parsed := doJSON(t, app, "POST", "/wallet/add", token, fiber.Map{"amount": 500})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, parsed.Success)
	assert.Equal(t, float64(500), walletOf(t, parsed))

	// Over-drawing fails and leaves the balance untouched
	resp, parsed = doJSON(t, app, "POST", "/wallet/deduct", token, fiber.Map{"amount": 600})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.False(t, parsed.Success)
	assert.Equal(t, "Insufficient wallet balance.", parsed.Message)

	_, parsed = doJSON(t, app, "GET", "/wallet/balance", token, nil)
	assert.Equal(t, float64(500), walletOf(t, parsed))

	// Draining the wallet exactly succeeds
	resp, parsed = doJSON(t, app, "POST", "/wallet/deduct", token, fiber.Map{"amount": 500})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(0), walletOf(t, parsed))

	_, parsed = doJSON(t, app, "GET", "/wallet/balance", token, nil)
	assert.Equal(t, float64(0), walletOf(t, parsed))
}

func TestWalletCreditIncrementsBalance(t *testing.T) {
	app := setupWalletTest(t)
	user, token := createTestUser(t, "credit@test.in")

	_, parsed := doJSON(t, app, "POST", "/wallet/add", token, fiber.Map{"amount": 199.99})
	assert.Equal(t, 199.99, walletOf(t, parsed))

	_, parsed = doJSON(t, app, "POST", "/wallet/add", token, fiber.Map{"amount": 0.01})
	assert.Equal(t, float64(200), walletOf(t, parsed))

	var stored models.User
	require.NoError(t, database.Database.Db.First(&stored, user.ID).Error)
	assert.Equal(t, float64(200), stored.WalletBalance)
}

func TestWalletRejectsInvalidAmounts(t *testing.T) {
	app := setupWalletTest(t)
	_, token := createTestUser(t, "invalid@test.in")

	for _, amount := range []float64{0, -10} {
		resp, parsed := doJSON(t, app, "POST", "/wallet/add", token, fiber.Map{"amount": amount})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.False(t, parsed.Success)

		resp, parsed = doJSON(t, app, "POST", "/wallet/deduct", token, fiber.Map{"amount": amount})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.False(t, parsed.Success)
	}
}

func TestWalletRequiresAuth(t *testing.T) {
	app := setupWalletTest(t)

	resp, parsed := doJSON(t, app, "GET", "/wallet/balance", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.False(t, parsed.Success)
}

func TestWalletHistoryRecordsLedger(t *testing.T) {
	app := setupWalletTest(t)
	user, token := createTestUser(t, "ledger@test.in")

	doJSON(t, app, "POST", "/wallet/add", token, fiber.Map{"amount": 300})
	doJSON(t, app, "POST", "/wallet/deduct", token, fiber.Map{"amount": 100})

	var transactions []models.WalletTransaction
	require.NoError(t, database.Database.Db.Where("user_id = ?", user.ID).Order("id").Find(&transactions).Error)
	require.Len(t, transactions, 2)

	assert.Equal(t, models.TransactionTypeCredit, transactions[0].TransactionType)
	assert.Equal(t, float64(0), transactions[0].BalanceBefore)
	assert.Equal(t, float64(300), transactions[0].BalanceAfter)

	assert.Equal(t, models.TransactionTypeDebit, transactions[1].TransactionType)
	assert.Equal(t, float64(300), transactions[1].BalanceBefore)
	assert.Equal(t, float64(200), transactions[1].BalanceAfter)

	resp, parsed := doJSON(t, app, "GET", "/wallet/history", token, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, parsed.Success)
}
