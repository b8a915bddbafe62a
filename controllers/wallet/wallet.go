package walletController

import (
	"lms/database"
	"lms/middleware"
	"lms/models"
	walletValidator "lms/validators/wallet"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/now"
	"gorm.io/gorm"
)

// Mailer notifies users about balance changes; delivery is best effort
type Mailer interface {
	SendWalletEmail(email, name string, amount, balance float64, credited bool)
}

// WalletController maintains the per-user balance
type WalletController struct {
	Mailer Mailer
}

func New(mailer Mailer) *WalletController {
	return &WalletController{Mailer: mailer}
}

// GetWallet returns the caller's current wallet balance
func (w *WalletController) GetWallet(c *fiber.Ctx) error {
	userID := c.Locals("userId").(uint)

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = false", userID).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found.", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Wallet balance fetched!", fiber.Map{
		"wallet": user.WalletBalance,
	})
}

// AddToWallet credits the caller's wallet
func (w *WalletController) AddToWallet(c *fiber.Ctx) error {
	userID := c.Locals("userId").(uint)

	reqData, ok := c.Locals("validatedAmount").(*walletValidator.AmountRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid amount.", nil)
	}

	db := database.Database.Db

	var user models.User
	if err := db.Where("id = ? AND is_deleted = false", userID).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found.", nil)
	}

	// Credit in a single UPDATE so concurrent requests cannot lose each
	// other's increments
	if err := db.Model(&models.User{}).
		Where("id = ?", userID).
		Update("wallet_balance", gorm.Expr("wallet_balance + ?", reqData.Amount)).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update balance!", nil)
	}

	var updated models.User
	db.Where("id = ?", userID).First(&updated)

	recordTransaction(db, userID, models.TransactionTypeCredit, reqData.Amount, user.WalletBalance, updated.WalletBalance, "Wallet top-up")
	w.Mailer.SendWalletEmail(user.Email, user.FirstName, reqData.Amount, updated.WalletBalance, true)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Amount added to wallet!", fiber.Map{
		"wallet": updated.WalletBalance,
	})
}

// DeductFromWallet debits the caller's wallet; the balance never goes
// negative
func (w *WalletController) DeductFromWallet(c *fiber.Ctx) error {
	userID := c.Locals("userId").(uint)

	reqData, ok := c.Locals("validatedAmount").(*walletValidator.AmountRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid amount.", nil)
	}

	db := database.Database.Db

	var user models.User
	if err := db.Where("id = ? AND is_deleted = false", userID).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found.", nil)
	}

	// Guarded UPDATE: the sufficiency check and the subtraction happen in
	// one statement, so two concurrent debits cannot overdraw the account
	result := db.Model(&models.User{}).
		Where("id = ? AND wallet_balance >= ?", userID, reqData.Amount).
		Update("wallet_balance", gorm.Expr("wallet_balance - ?", reqData.Amount))
	if result.Error != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update balance!", nil)
	}
	if result.RowsAffected == 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Insufficient wallet balance.", nil)
	}

	var updated models.User
	db.Where("id = ?", userID).First(&updated)

	recordTransaction(db, userID, models.TransactionTypeDebit, reqData.Amount, user.WalletBalance, updated.WalletBalance, "Wallet payment")
	w.Mailer.SendWalletEmail(user.Email, user.FirstName, reqData.Amount, updated.WalletBalance, false)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Amount deducted from wallet!", fiber.Map{
		"wallet": updated.WalletBalance,
	})
}

// GetWalletHistory returns the caller's ledger entries, newest first
func (w *WalletController) GetWalletHistory(c *fiber.Ctx) error {
	userID := c.Locals("userId").(uint)

	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 10)
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	offset := (page - 1) * limit

	db := database.Database.Db
	query := db.Model(&models.WalletTransaction{}).Where("user_id = ? AND is_deleted = false", userID)

	var total int64
	query.Count(&total)

	var transactions []models.WalletTransaction
	if err := query.
		Order("transaction_date DESC").
		Offset(offset).
		Limit(limit).
		Find(&transactions).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch history!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Wallet history fetched!", fiber.Map{
		"transactions": transactions,
		"pagination": fiber.Map{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}

// GetMonthlySummary totals the caller's credits and debits for the current
// month
func (w *WalletController) GetMonthlySummary(c *fiber.Ctx) error {
	userID := c.Locals("userId").(uint)

	monthStart := now.BeginningOfMonth()
	db := database.Database.Db

	var credited, debited float64
	db.Model(&models.WalletTransaction{}).
		Where("user_id = ? AND transaction_type = ? AND transaction_date >= ? AND is_deleted = false",
			userID, models.TransactionTypeCredit, monthStart).
		Select("COALESCE(SUM(amount), 0)").Scan(&credited)
	db.Model(&models.WalletTransaction{}).
		Where("user_id = ? AND transaction_type IN ? AND transaction_date >= ? AND is_deleted = false",
			userID, []models.TransactionType{models.TransactionTypeDebit, models.TransactionTypePurchase}, monthStart).
		Select("COALESCE(SUM(amount), 0)").Scan(&debited)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Wallet summary fetched!", fiber.Map{
		"monthStart": monthStart,
		"credited":   credited,
		"debited":    debited,
	})
}

// recordTransaction appends a ledger row; ledger failures are not surfaced
// to the user because the balance update already committed
func recordTransaction(db *gorm.DB, userID uint, txnType models.TransactionType, amount, before, after float64, description string) {
	txn := models.WalletTransaction{
		UserID:          userID,
		TransactionType: txnType,
		Amount:          amount,
		BalanceBefore:   before,
		BalanceAfter:    after,
		Description:     description,
		TransactionDate: time.Now(),
	}
	db.Create(&txn)
}
