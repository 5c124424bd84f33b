package models

import (
	"context"
	"time"

	"github.com/mmdatafocus/inventory_backend/config"
	"github.com/mmdatafocus/inventory_backend/utils"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/attribute"
	"gorm.io/gorm"
)

type PurchaseMaster struct {
	ID          int              `gorm:"primary_key" json:"id"`
	BillNo      string           `gorm:"-" json:"billNo"`
	SupplierId  int              `gorm:"index;not null" json:"supplierId"`
	Supplier    *Supplier        `gorm:"foreignKey:SupplierId" json:"supplier,omitempty"`
	TotalAmount decimal.Decimal  `gorm:"type:decimal(20,4);default:0" json:"totalAmount"`
	Date        time.Time        `gorm:"index;not null" json:"date"`
	Details     []PurchaseDetail `gorm:"foreignKey:PurchaseMasterId" json:"details"`
	CreatedAt   time.Time        `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time        `gorm:"autoUpdateTime" json:"updatedAt"`
}

type PurchaseDetail struct {
	ID               int             `gorm:"primary_key" json:"id"`
	PurchaseMasterId int             `gorm:"index;not null" json:"purchaseMasterId"`
	ProductId        int             `gorm:"index;not null" json:"productId"`
	Product          *Product        `gorm:"foreignKey:ProductId" json:"product,omitempty"`
	Quantity         decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"quantity"`
	Rate             decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"rate"`
	Total            decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"total"`
	PurchaseInward   decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"purchase_inward"`
}

type NewPurchase struct {
	SupplierId int               `json:"supplierId" validate:"required"`
	Date       string            `json:"date"`
	Items      []NewPurchaseItem `json:"items" validate:"required,min=1,dive"`
}

type NewPurchaseItem struct {
	ProductId int             `json:"productId" validate:"required"`
	Quantity  decimal.Decimal `json:"quantity" validate:"gt=0"`
	Rate      decimal.Decimal `json:"rate" validate:"gt=0"`
}

func (m *PurchaseMaster) AfterFind(tx *gorm.DB) error {
	m.BillNo = PurchaseBillNo(m.ID)
	return nil
}

func (m *PurchaseMaster) AfterCreate(tx *gorm.DB) error {
	m.BillNo = PurchaseBillNo(m.ID)
	return nil
}

func (input *NewPurchase) lines() []txLine {
	lines := make([]txLine, 0, len(input.Items))
	for _, item := range input.Items {
		lines = append(lines, txLine{ProductId: item.ProductId, Quantity: item.Quantity, UnitPrice: item.Rate})
	}
	return lines
}

func (input *NewPurchase) validate(ctx context.Context) (time.Time, error) {
	if err := validateLines(ctx, input, input.lines(), "rate"); err != nil {
		return time.Time{}, err
	}
	if err := utils.ValidateResourceId[Supplier](ctx, input.SupplierId, "supplier not found"); err != nil {
		return time.Time{}, err
	}
	return transactionDate(input.Date)
}

func mapPurchaseDetails(masterId int, lines []txLine) []PurchaseDetail {
	details := make([]PurchaseDetail, 0, len(lines))
	for _, l := range lines {
		details = append(details, PurchaseDetail{
			PurchaseMasterId: masterId,
			ProductId:        l.ProductId,
			Quantity:         l.Quantity,
			Rate:             l.UnitPrice,
			Total:            l.amount(),
			PurchaseInward:   l.Quantity,
		})
	}
	return details
}

// incrementStock bumps Product.stock in the store itself, so concurrent
// purchases of one product cannot lose an update.
func incrementStock(ctx context.Context, tx *gorm.DB, productId int, qty decimal.Decimal) error {
	result := tx.WithContext(ctx).Model(&Product{}).
		Where("id = ?", productId).
		UpdateColumn("stock", gorm.Expr("stock + ?", qty))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return utils.NewNotFoundError("product not found")
	}
	return nil
}

// CreatePurchase writes master, details and the stock increments in one transaction.
func CreatePurchase(ctx context.Context, input *NewPurchase) (result *PurchaseMaster, err error) {
	ctx, span := startSpan(ctx, "models.CreatePurchase")
	defer func() { endSpan(span, err) }()

	date, err := input.validate(ctx)
	if err != nil {
		return nil, err
	}

	lines := input.lines()
	purchase := PurchaseMaster{
		SupplierId:  input.SupplierId,
		TotalAmount: totalAmount(lines),
		Date:        date,
		Details:     mapPurchaseDetails(0, lines),
	}

	db := config.GetDB()
	tx := db.Begin()
	if err = tx.WithContext(ctx).Create(&purchase).Error; err != nil {
		tx.Rollback()
		config.LogError(config.GetLogger(), "Purchase", "CreatePurchase", "creating purchase", input, err)
		return nil, utils.NewTransactionError("failed to create purchase", err)
	}
	for _, l := range lines {
		if err = incrementStock(ctx, tx, l.ProductId, l.Quantity); err != nil {
			tx.Rollback()
			config.LogError(config.GetLogger(), "Purchase", "CreatePurchase", "incrementing stock", l, err)
			return nil, utils.NewTransactionError("failed to create purchase", err)
		}
	}
	if err = tx.Commit().Error; err != nil {
		return nil, utils.NewTransactionError("failed to create purchase", err)
	}

	span.SetAttributes(attribute.Int("purchase.id", purchase.ID))
	invalidateReports("Purchase", "CreatePurchase")
	return &purchase, nil
}

// UpdatePurchase overwrites the master and replaces all of its details.
// Product stock is not re-adjusted for the replaced lines.
func UpdatePurchase(ctx context.Context, id int, input *NewPurchase) (result *PurchaseMaster, err error) {
	ctx, span := startSpan(ctx, "models.UpdatePurchase", attribute.Int("purchase.id", id))
	defer func() { endSpan(span, err) }()

	date, err := input.validate(ctx)
	if err != nil {
		return nil, err
	}

	release, err := utils.ObtainLock(ctx, lockKey("Purchase", id), "Purchase", "UpdatePurchase")
	if err != nil {
		return nil, err
	}
	defer release()

	purchase, err := fetchMaster[PurchaseMaster](ctx, id, "purchase not found")
	if err != nil {
		return nil, err
	}

	lines := input.lines()
	details := mapPurchaseDetails(id, lines)

	db := config.GetDB()
	tx := db.Begin()
	err = tx.WithContext(ctx).Model(purchase).Updates(map[string]interface{}{
		"SupplierId":  input.SupplierId,
		"TotalAmount": totalAmount(lines),
		"Date":        date,
	}).Error
	if err != nil {
		tx.Rollback()
		return nil, utils.NewTransactionError("failed to update purchase", err)
	}
	if err = tx.WithContext(ctx).Where("purchase_master_id = ?", id).Delete(&PurchaseDetail{}).Error; err != nil {
		tx.Rollback()
		return nil, utils.NewTransactionError("failed to update purchase", err)
	}
	if err = tx.WithContext(ctx).Create(&details).Error; err != nil {
		tx.Rollback()
		return nil, utils.NewTransactionError("failed to update purchase", err)
	}
	if err = tx.Commit().Error; err != nil {
		return nil, utils.NewTransactionError("failed to update purchase", err)
	}

	purchase.SupplierId = input.SupplierId
	purchase.TotalAmount = totalAmount(lines)
	purchase.Date = date
	purchase.Details = details
	invalidateReports("Purchase", "UpdatePurchase")
	return purchase, nil
}

// DeletePurchase removes the master and cascades to its details.
// Stock added by the purchase stays on the product.
func DeletePurchase(ctx context.Context, id int) (result *PurchaseMaster, err error) {
	ctx, span := startSpan(ctx, "models.DeletePurchase", attribute.Int("purchase.id", id))
	defer func() { endSpan(span, err) }()

	release, err := utils.ObtainLock(ctx, lockKey("Purchase", id), "Purchase", "DeletePurchase")
	if err != nil {
		return nil, err
	}
	defer release()

	purchase, err := fetchMaster[PurchaseMaster](ctx, id, "purchase not found", "Details")
	if err != nil {
		return nil, err
	}

	db := config.GetDB()
	tx := db.Begin()
	if err = tx.WithContext(ctx).Where("purchase_master_id = ?", id).Delete(&PurchaseDetail{}).Error; err != nil {
		tx.Rollback()
		return nil, utils.NewTransactionError("failed to delete purchase", err)
	}
	if err = tx.WithContext(ctx).Delete(&PurchaseMaster{}, id).Error; err != nil {
		tx.Rollback()
		return nil, utils.NewTransactionError("failed to delete purchase", err)
	}
	if err = tx.Commit().Error; err != nil {
		return nil, utils.NewTransactionError("failed to delete purchase", err)
	}

	invalidateReports("Purchase", "DeletePurchase")
	return purchase, nil
}

func GetPurchase(ctx context.Context, id int) (*PurchaseMaster, error) {
	return fetchMaster[PurchaseMaster](ctx, id, "purchase not found", "Supplier", "Details", "Details.Product")
}

// newest first
func GetPurchases(ctx context.Context) ([]*PurchaseMaster, error) {
	return utils.FetchAllModels[PurchaseMaster](ctx, "date desc, id desc", "Supplier", "Details", "Details.Product")
}

func GetPurchaseDetails(ctx context.Context, masterId int) ([]*PurchaseDetail, error) {
	db := config.GetDB()
	var details []*PurchaseDetail
	if err := db.WithContext(ctx).Where("purchase_master_id = ?", masterId).Order("id").Find(&details).Error; err != nil {
		return nil, utils.AsAppError(err)
	}
	return details, nil
}
