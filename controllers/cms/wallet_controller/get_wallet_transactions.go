package wallet_controller

import (
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/novamart-commerce/novamart-backoffice/config"
	"github.com/novamart-commerce/novamart-backoffice/models"
	"gorm.io/gorm"
)

// GetWalletTransactions godoc
// @Summary Get a customer's wallet ledger (CMS)
// @Description Paginated wallet transactions, newest first
// @Tags CMS - Wallets
// @Produce json
// @Security BearerAuth
// @Param id path string true "Customer ID (UUID)"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(20)
// @Param type query string false "Filter by type" Enums(credit, debit)
// @Success 200 {object} models.APIResponse{data=[]models.WalletTransactionResponse,meta=models.Paging}
// @Failure 400 {object} models.APIResponse
// @Failure 404 {object} models.APIResponse
// @Router /api/v1/admin/customers/{id}/wallet/transactions [get]
func GetWalletTransactions(c *gin.Context) {
	customerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid customer ID"))
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
		First(&wallet, "user_id = ?", customerID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Wallet not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
		return
	}

	query := config.DB.WithContext(ctx).
		Model(&models.WalletTransaction{}).
		Where("wallet_id = ?", wallet.ID)

	txType := c.Query("type")
	if txType == models.WalletTxCredit || txType == models.WalletTxDebit {
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

	c.JSON(http.StatusOK, models.PaginatedResponse(c, "Wallet transactions fetched successfully", gin.H{
		"wallet":       wallet.ToResponse(),
		"transactions": responses,
	}, meta))
}
