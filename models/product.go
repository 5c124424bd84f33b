package models

import (
	"context"
	"time"

	"github.com/mmdatafocus/inventory_backend/config"
	"github.com/mmdatafocus/inventory_backend/utils"
	"github.com/shopspring/decimal"
)

type Product struct {
	ID           int             `gorm:"primary_key" json:"id"`
	Name         string          `gorm:"size:100;not null;index" json:"product_name"`
	Description  string          `gorm:"type:text" json:"description"`
	Category     string          `gorm:"size:100;not null" json:"category"`
	CostPrice    decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"costprice"`
	SellingPrice decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"sellingprice"`
	// opening quantity
	Qty decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"qty"`
	// running counter bumped by purchases only
	Stock      decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"stock"`
	SupplierId int             `gorm:"index;not null" json:"supplierId"`
	Supplier   *Supplier       `gorm:"foreignKey:SupplierId" json:"supplier,omitempty"`
	CreatedAt  time.Time       `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt  time.Time       `gorm:"autoUpdateTime" json:"updatedAt"`
}

type NewProduct struct {
	Name         string          `json:"product_name" validate:"required"`
	Description  string          `json:"description"`
	Category     string          `json:"category" validate:"required"`
	CostPrice    decimal.Decimal `json:"costprice" validate:"gte=0"`
	SellingPrice decimal.Decimal `json:"sellingprice" validate:"gte=0"`
	Qty          decimal.Decimal `json:"qty" validate:"gte=0"`
	SupplierId   int             `json:"supplierId" validate:"required"`
}

func (input *NewProduct) validate(ctx context.Context) error {
	if err := utils.ValidateStruct(input); err != nil {
		return err
	}
	err := validateScale(
		[]string{"costprice", "sellingprice", "qty"},
		[]decimal.Decimal{input.CostPrice, input.SellingPrice, input.Qty},
	)
	if err != nil {
		return err
	}
	if err := utils.ValidateResourceId[Supplier](ctx, input.SupplierId, "supplier not found"); err != nil {
		return err
	}
	return nil
}

func CreateProduct(ctx context.Context, input *NewProduct) (*Product, error) {
	if err := input.validate(ctx); err != nil {
		return nil, err
	}

	product := Product{
		Name:         input.Name,
		Description:  input.Description,
		Category:     input.Category,
		CostPrice:    input.CostPrice,
		SellingPrice: input.SellingPrice,
		Qty:          input.Qty,
		Stock:        input.Qty,
		SupplierId:   input.SupplierId,
	}

	db := config.GetDB()
	if err := db.WithContext(ctx).Create(&product).Error; err != nil {
		return nil, utils.AsAppError(err)
	}
	invalidateReports("Product", "CreateProduct")
	return &product, nil
}

// UpdateProduct replaces the editable fields. Stock is left alone; it is only
// moved by purchases.
func UpdateProduct(ctx context.Context, id int, input *NewProduct) (*Product, error) {
	if err := input.validate(ctx); err != nil {
		return nil, err
	}

	product, err := utils.FetchModel[Product](ctx, id)
	if err != nil {
		return nil, err
	}

	db := config.GetDB()
	err = db.WithContext(ctx).Model(product).Updates(map[string]interface{}{
		"Name":         input.Name,
		"Description":  input.Description,
		"Category":     input.Category,
		"CostPrice":    input.CostPrice,
		"SellingPrice": input.SellingPrice,
		"Qty":          input.Qty,
		"SupplierId":   input.SupplierId,
	}).Error
	if err != nil {
		return nil, utils.AsAppError(err)
	}
	product.Name = input.Name
	product.Description = input.Description
	product.Category = input.Category
	product.CostPrice = input.CostPrice
	product.SellingPrice = input.SellingPrice
	product.Qty = input.Qty
	product.SupplierId = input.SupplierId
	invalidateReports("Product", "UpdateProduct")
	return product, nil
}

func DeleteProduct(ctx context.Context, id int) (*Product, error) {
	result, err := utils.FetchModel[Product](ctx, id)
	if err != nil {
		return nil, err
	}

	count, err := utils.ResourceCountWhere[SalesDetail](ctx, "product_id = ?", id)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, utils.NewValidationError("sales associated with product exist")
	}

	count, err = utils.ResourceCountWhere[PurchaseDetail](ctx, "product_id = ?", id)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, utils.NewValidationError("purchases associated with product exist")
	}

	db := config.GetDB()
	if err := db.WithContext(ctx).Delete(result).Error; err != nil {
		return nil, utils.AsAppError(err)
	}
	invalidateReports("Product", "DeleteProduct")
	return result, nil
}

func GetProduct(ctx context.Context, id int) (*Product, error) {
	return utils.FetchModel[Product](ctx, id, "Supplier")
}

func GetProducts(ctx context.Context) ([]*Product, error) {
	return utils.FetchAllModels[Product](ctx, "id", "Supplier")
}
