package middleware

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/novamart-commerce/novamart-backoffice/config"
	"github.com/novamart-commerce/novamart-backoffice/models"
	"github.com/novamart-commerce/novamart-backoffice/services"
)

// ════════════════════════════════════════════════════════════
// Configuration Maps
// ════════════════════════════════════════════════════════════

// pathToResourceType maps URL path segments to resource types
var pathToResourceType = map[string]string{
	"categories":    models.ResourceTypeCategory,
	"products":      models.ResourceTypeProduct,
	"orders":        models.ResourceTypeOrder,
	"campaigns":     models.ResourceTypeCouponCampaign,
	"suppliers":     models.ResourceTypeSupplier,
	"tickets":       models.ResourceTypeTicket,
	"posts":         models.ResourceTypeBlogPost,
	"wallets":       models.ResourceTypeWallet,
	"notifications": models.ResourceTypeNotification,
	"customers":     models.ResourceTypeCustomer,
	"admins":        models.ResourceTypeAdmin,
}

// resourceTypeToNameField maps resource types to their display-name field
var resourceTypeToNameField = map[string]string{
	models.ResourceTypeCategory:       "name",
	models.ResourceTypeProduct:        "name",
	models.ResourceTypeOrder:          "order_number",
	models.ResourceTypeCouponCampaign: "code",
	models.ResourceTypeSupplier:       "name",
	models.ResourceTypeTicket:         "ticket_number",
	models.ResourceTypeBlogPost:       "title",
	models.ResourceTypeCustomer:       "email",
	models.ResourceTypeAdmin:          "email",
}

// methodToActionVerb maps HTTP methods to action verbs
var methodToActionVerb = map[string]string{
	"POST":   "created",
	"PATCH":  "updated",
	"PUT":    "updated",
	"DELETE": "deleted",
}

// ════════════════════════════════════════════════════════════
// Activity Logging Middleware
// ════════════════════════════════════════════════════════════

// ActivityLoggingMiddleware logs admin actions automatically.
// Must be used AFTER AdminAuthMiddleware (which sets adminID and adminEmail)
func ActivityLoggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Only non-GET requests are logged
		if c.Request.Method == "GET" {
			c.Next()
			return
		}

		adminIDRaw, adminIDExists := c.Get("adminID")
		adminEmailRaw, adminEmailExists := c.Get("adminEmail")

		if !adminIDExists || !adminEmailExists {
			log.Printf("[activity-logging] warning: admin info not in context")
			c.Next()
			return
		}

		adminID := uuid.UUID{}
		if id, ok := adminIDRaw.(uuid.UUID); ok {
			adminID = id
		} else if idStr, ok := adminIDRaw.(string); ok {
			parsedID, err := uuid.Parse(idStr)
			if err != nil {
				log.Printf("[activity-logging] failed to parse admin ID: %v", err)
				c.Next()
				return
			}
			adminID = parsedID
		}

		adminEmail := adminEmailRaw.(string)

		resourceType := extractResourceType(c.Request.URL.Path)
		if resourceType == "" {
			log.Printf("[activity-logging] could not determine resource type from path: %s", c.Request.URL.Path)
			c.Next()
			return
		}

		resourceID := c.Param("id")
		if resourceID == "" {
			log.Printf("[activity-logging] warning: no :id param found for %s", c.Request.URL.Path)
		}

		actionVerb := methodToActionVerb[c.Request.Method]
		if actionVerb == "" {
			log.Printf("[activity-logging] unknown HTTP method: %s", c.Request.Method)
			c.Next()
			return
		}

		// Full action name, e.g. "created_product", "updated_coupon_campaign"
		action := actionVerb + "_" + resourceType

		// Fetch "before" object from DB (only for updates and deletes)
		var beforeObject interface{}
		if c.Request.Method != "POST" && resourceID != "" {
			beforeObject = fetchResourceFromDB(resourceType, resourceID)
		}

		resourceName := extractResourceName(resourceType, beforeObject)

		c.Set("activityAction", action)
		c.Set("activityResourceType", resourceType)
		c.Set("activityResourceID", resourceID)
		c.Set("activityResourceName", resourceName)
		c.Set("activityBeforeObject", beforeObject)
		c.Set("activityAdminID", adminID)
		c.Set("activityAdminEmail", adminEmail)

		c.Next()

		statusCode := c.Writer.Status()
		isSuccess := statusCode >= 200 && statusCode < 300

		if isSuccess {
			var afterObject interface{}
			if resourceID != "" {
				afterObject = fetchResourceFromDB(resourceType, resourceID)
			}

			updatedResourceName := extractResourceName(resourceType, afterObject)

			services.LogActivity(services.LogActivityRequest{
				AdminID:      adminID,
				AdminEmail:   adminEmail,
				Action:       action,
				ResourceType: resourceType,
				ResourceID:   resourceID,
				ResourceName: updatedResourceName,
				Changes:      services.CreateChanges(beforeObject, afterObject),
				Status:       models.StatusSuccess,
				Context:      c,
			})

			log.Printf("[activity-logging] success: %s by %s", action, adminEmail)
		} else {
			errorMsg := "Request failed with status " + http.StatusText(statusCode)

			services.LogActivity(services.LogActivityRequest{
				AdminID:      adminID,
				AdminEmail:   adminEmail,
				Action:       action,
				ResourceType: resourceType,
				ResourceID:   resourceID,
				ResourceName: resourceName,
				Status:       models.StatusFailed,
				ErrorMessage: errorMsg,
				Context:      c,
			})

			log.Printf("[activity-logging] failed: %s by %s - status %d", action, adminEmail, statusCode)
		}
	}
}

// ════════════════════════════════════════════════════════════
// Helper Functions
// ════════════════════════════════════════════════════════════

// extractResourceType extracts the resource type from a URL path,
// e.g. "/api/v1/admin/campaigns/123" → "coupon_campaign"
func extractResourceType(path string) string {
	parts := strings.Split(path, "/")

	for i := len(parts) - 1; i >= 0; i-- {
		if parts[i] != "" && !isIDParam(parts[i]) {
			singular := strings.TrimSuffix(parts[i], "s")
			if resourceType, exists := pathToResourceType[parts[i]]; exists {
				return resourceType
			}
			if resourceType, exists := pathToResourceType[singular]; exists {
				return resourceType
			}
		}
	}

	return ""
}

// isIDParam checks if a path segment is an ID parameter
func isIDParam(segment string) bool {
	if segment == ":id" || segment == "" {
		return true
	}
	if _, err := uuid.Parse(segment); err == nil {
		return true
	}
	return false
}

// fetchResourceFromDB fetches a resource snapshot for the changes diff
func fetchResourceFromDB(resourceType, resourceID string) interface{} {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	switch resourceType {
	case models.ResourceTypeProduct:
		var product models.Product
		if err := config.DB.WithContext(ctx).First(&product, "id = ?", resourceID).Error; err != nil {
			log.Printf("[activity-logging] failed to fetch product %s: %v", resourceID, err)
			return nil
		}
		return product

	case models.ResourceTypeCategory:
		var category models.Category
		if err := config.DB.WithContext(ctx).First(&category, "id = ?", resourceID).Error; err != nil {
			log.Printf("[activity-logging] failed to fetch category %s: %v", resourceID, err)
			return nil
		}
		return category

	case models.ResourceTypeOrder:
		var order models.Order
		if err := config.DB.WithContext(ctx).First(&order, "id = ?", resourceID).Error; err != nil {
			log.Printf("[activity-logging] failed to fetch order %s: %v", resourceID, err)
			return nil
		}
		return order

	case models.ResourceTypeCouponCampaign:
		var campaign models.CouponCampaign
		if err := config.DB.WithContext(ctx).First(&campaign, "id = ?", resourceID).Error; err != nil {
			log.Printf("[activity-logging] failed to fetch campaign %s: %v", resourceID, err)
			return nil
		}
		return campaign

	case models.ResourceTypeSupplier:
		var supplier models.Supplier
		if err := config.DB.WithContext(ctx).First(&supplier, "id = ?", resourceID).Error; err != nil {
			log.Printf("[activity-logging] failed to fetch supplier %s: %v", resourceID, err)
			return nil
		}
		return supplier

	case models.ResourceTypeTicket:
		var ticket models.SupportTicket
		if err := config.DB.WithContext(ctx).First(&ticket, "id = ?", resourceID).Error; err != nil {
			log.Printf("[activity-logging] failed to fetch ticket %s: %v", resourceID, err)
			return nil
		}
		return ticket

	case models.ResourceTypeBlogPost:
		var post models.BlogPost
		if err := config.DB.WithContext(ctx).First(&post, "id = ?", resourceID).Error; err != nil {
			log.Printf("[activity-logging] failed to fetch blog post %s: %v", resourceID, err)
			return nil
		}
		return post

	case models.ResourceTypeCustomer:
		var customer models.User
		if err := config.DB.WithContext(ctx).First(&customer, "id = ?", resourceID).Error; err != nil {
			log.Printf("[activity-logging] failed to fetch customer %s: %v", resourceID, err)
			return nil
		}
		return customer

	case models.ResourceTypeAdmin:
		var admin models.Admin
		if err := config.DB.WithContext(ctx).First(&admin, "id = ?", resourceID).Error; err != nil {
			log.Printf("[activity-logging] failed to fetch admin %s: %v", resourceID, err)
			return nil
		}
		return admin

	default:
		log.Printf("[activity-logging] unknown resource type: %s", resourceType)
		return nil
	}
}

// extractResourceName extracts the name/identifier from a resource object
func extractResourceName(resourceType string, obj interface{}) string {
	if obj == nil {
		return ""
	}

	data, err := json.Marshal(obj)
	if err != nil {
		return ""
	}

	var resourceMap map[string]interface{}
	if err := json.Unmarshal(data, &resourceMap); err != nil {
		return ""
	}

	fieldName := resourceTypeToNameField[resourceType]
	if fieldName == "" {
		return ""
	}

	if value, exists := resourceMap[fieldName]; exists {
		return toString(value)
	}

	return ""
}

func toString(v interface{}) string {
	switch val := v.(type) {
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	default:
		data, err := json.Marshal(val)
		if err != nil {
			return ""
		}
		return string(data)
	}
}
