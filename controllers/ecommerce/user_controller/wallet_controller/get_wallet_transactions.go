package wallet_controller

import (
	"errors"
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/novamart-commerce/novamart-backoffice/config"
	"github.com/novamart-commerce/novamart-backoffice/models"
	"gorm.io/gorm"
)

// GetWalletTransactions godoc
// @Summary Get wallet transaction history
// @Description Paginated ledger rows for the customer's wallet, newest first
// @Tags User - Wallet
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(20)
// @Param type query string false "Filter by type" Enums(credit, debit)
// @Success 200 {object} models.APIResponse{data=[]models.WalletTransactionResponse,meta=models.Paging}
// @Failure 401 {object} models.APIResponse
// @Router /api/v1/user/wallet/transactions [get]
func GetWalletTransactions(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	offset := (page - 1) * limit

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var wallet models.Wallet
	if err := config.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&wallet).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// No wallet yet means no history
			meta := &models.Paging{Page: page, Limit: limit, Total: 0, TotalPages: 0}
			c.JSON(http.StatusOK, models.PaginatedResponse(c, "Transactions fetched successfully",
				[]models.WalletTransactionResponse{}, meta))
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to load wallet"))
		return
	}

	query := config.DB.WithContext(ctx).
		Model(&models.WalletTransaction{}).
		Where("wallet_id = ?", wallet.ID)

	if txType := c.Query("type"); txType == models.WalletTxCredit || txType == models.WalletTxDebit {
		query = query.Where("type = ?", txType)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to count transactions"))
		return
	}

	var transactions []models.WalletTransaction
	if err := query.
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&transactions).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch transactions"))
		return
	}

	responses := make([]models.WalletTransactionResponse, 0, len(transactions))
	for i := range transactions {
		responses = append(responses, transactions[i].ToResponse())
	}

	totalPages := int(math.Ceil(float64(total) / float64(limit)))
	meta := &models.Paging{
		Page:       page,
		Limit:      limit,
		Total:      int(total),
		TotalPages: totalPages,
	}

	c.JSON(http.StatusOK, models.PaginatedResponse(c, "Transactions fetched successfully", responses, meta))
}
