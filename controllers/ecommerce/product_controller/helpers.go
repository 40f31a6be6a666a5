package storefront_product_controller

import (
	"github.com/novamart-commerce/novamart-backoffice/models"
)

// toStorefrontProductResponse mirrors the CMS product envelope but drops
// supplier details, which are back-office only
func toStorefrontProductResponse(product *models.Product) models.ProductResponse {
	var subCategoryPath *string
	if product.SubCategory != nil {
		var path string
		if product.SubCategory.ParentName != nil {
			path = *product.SubCategory.ParentName + " -> " + product.SubCategory.Name
		} else {
			path = product.SubCategory.Name
		}
		subCategoryPath = &path
	}

	return models.ProductResponse{
		BasicInfo: models.ProductBase{
			ID:              product.ID,
			Name:            product.Name,
			SKU:             product.SKU,
			Description:     product.Description,
			Attributes:      []models.Attribute(product.Attributes),
			Price:           product.Price,
			SubCategoryID:   product.SubCategoryID,
			SubCategoryName: product.SubCategoryName,
			SubCategoryPath: subCategoryPath,
			Status:          product.Status,
			Tags:            []string(product.Tags),
			AvailableUnits:  product.Inventory.AvailableUnits(),
			CreatedAt:       product.CreatedAt,
			UpdatedAt:       product.UpdatedAt,
		},
		SEO:       product.SEO,
		Media:     product.Media,
		Variants:  []models.ProductVariant(product.Variants),
		Inventory: []models.PackEntry(product.Inventory),
	}
}
