package wallet_controller

import (
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/novamart-commerce/novamart-backoffice/config"
	"github.com/novamart-commerce/novamart-backoffice/models"
)

// WalletListRow joins the owning customer into the wallet list view
type WalletListRow struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	UserName  string    `json:"user_name"`
	UserEmail string    `json:"user_email"`
	Balance   float64   `json:"balance"`
	Currency  string    `json:"currency"`
	TxCount   int       `json:"tx_count"`
	UpdatedAt time.Time `json:"updated_at"`
}

// GetWallets godoc
// @Summary Get wallets (CMS)
// @Description Paginated wallet list with owner details, highest balance first
// @Tags CMS - Wallets
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(10)
// @Param q query string false "Search by customer name or email"
// @Success 200 {object} models.APIResponse{data=[]WalletListRow,meta=models.Paging}
// @Failure 500 {object} models.APIResponse
// @Router /api/v1/admin/wallets [get]
func GetWallets(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}
	offset := (page - 1) * limit

	whereConditions := []string{}
	whereArgs := []interface{}{}

	if q := strings.TrimSpace(c.Query("q")); q != "" {
		like := "%" + q + "%"
		whereConditions = append(whereConditions, "(u.name ILIKE ? OR u.email ILIKE ?)")
		whereArgs = append(whereArgs, like, like)
	}

	whereSQL := "1=1"
	if len(whereConditions) > 0 {
		whereSQL = strings.Join(whereConditions, " AND ")
	}

	countSQL := `
		SELECT COUNT(w.id)
		FROM wallets w
		JOIN users u ON u.id = w.user_id
		WHERE ` + whereSQL

	var total int64
	if err := config.DB.Raw(countSQL, whereArgs...).Scan(&total).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to count wallets"))
		return
	}

	dataSQL := `
		SELECT
			w.id::text AS id,
			w.user_id::text AS user_id,
			u.name AS user_name,
			u.email AS user_email,
			w.balance,
			w.currency,
			(SELECT COUNT(*) FROM wallet_transactions t WHERE t.wallet_id = w.id)::int AS tx_count,
			w.updated_at
		FROM wallets w
		JOIN users u ON u.id = w.user_id
		WHERE ` + whereSQL + `
		ORDER BY w.balance DESC, w.updated_at DESC
		LIMIT ? OFFSET ?
	`
	dataArgs := append(whereArgs, limit, offset)

	rows := make([]WalletListRow, 0, limit)
	if err := config.DB.Raw(dataSQL, dataArgs...).Scan(&rows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch wallets"))
		return
	}

	totalPages := int(math.Ceil(float64(total) / float64(limit)))
	meta := &models.Paging{
		Page:       page,
		Limit:      limit,
		Total:      int(total),
		TotalPages: totalPages,
	}

	c.JSON(http.StatusOK, models.PaginatedResponse(c, "Wallets fetched successfully", rows, meta))
}
