package models

import (
	"context"
	"time"

	"github.com/mmdatafocus/inventory_backend/config"
	"github.com/mmdatafocus/inventory_backend/utils"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/attribute"
)

type SalesMaster struct {
	ID          int             `gorm:"primary_key" json:"id"`
	InvoiceNo   string          `gorm:"size:50;index;not null" json:"invoiceNo"`
	CustomerId  int             `gorm:"index;not null" json:"customerId"`
	Customer    *Customer       `gorm:"foreignKey:CustomerId" json:"customer,omitempty"`
	TotalAmount decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"totalAmount"`
	Date        time.Time       `gorm:"index;not null" json:"date"`
	Details     []SalesDetail   `gorm:"foreignKey:SalesMasterId" json:"details"`
	CreatedAt   time.Time       `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time       `gorm:"autoUpdateTime" json:"updatedAt"`
}

type SalesDetail struct {
	ID            int             `gorm:"primary_key" json:"id"`
	SalesMasterId int             `gorm:"index;not null" json:"salesMasterId"`
	ProductId     int             `gorm:"index;not null" json:"productId"`
	Product       *Product        `gorm:"foreignKey:ProductId" json:"product,omitempty"`
	Quantity      decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"quantity"`
	Price         decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"price"`
	Amount        decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"amount"`
}

type NewSale struct {
	CustomerId int           `json:"customerId" validate:"required"`
	Date       string        `json:"date"`
	Items      []NewSaleItem `json:"items" validate:"required,min=1,dive"`
}

type NewSaleItem struct {
	ProductId int             `json:"productId" validate:"required"`
	Quantity  decimal.Decimal `json:"quantity" validate:"gt=0"`
	Price     decimal.Decimal `json:"price" validate:"gt=0"`
}

func (input *NewSale) lines() []txLine {
	lines := make([]txLine, 0, len(input.Items))
	for _, item := range input.Items {
		lines = append(lines, txLine{ProductId: item.ProductId, Quantity: item.Quantity, UnitPrice: item.Price})
	}
	return lines
}

func (input *NewSale) validate(ctx context.Context) (time.Time, error) {
	if err := validateLines(ctx, input, input.lines(), "price"); err != nil {
		return time.Time{}, err
	}
	if err := utils.ValidateResourceId[Customer](ctx, input.CustomerId, "customer not found"); err != nil {
		return time.Time{}, err
	}
	return transactionDate(input.Date)
}

func mapSalesDetails(masterId int, lines []txLine) []SalesDetail {
	details := make([]SalesDetail, 0, len(lines))
	for _, l := range lines {
		details = append(details, SalesDetail{
			SalesMasterId: masterId,
			ProductId:     l.ProductId,
			Quantity:      l.Quantity,
			Price:         l.UnitPrice,
			Amount:        l.amount(),
		})
	}
	return details
}

// CreateSale writes the master and its details in one transaction.
func CreateSale(ctx context.Context, input *NewSale) (result *SalesMaster, err error) {
	ctx, span := startSpan(ctx, "models.CreateSale")
	defer func() { endSpan(span, err) }()

	date, err := input.validate(ctx)
	if err != nil {
		return nil, err
	}

	lines := input.lines()
	sale := SalesMaster{
		InvoiceNo:   newInvoiceNo(time.Now()),
		CustomerId:  input.CustomerId,
		TotalAmount: totalAmount(lines),
		Date:        date,
		Details:     mapSalesDetails(0, lines),
	}

	db := config.GetDB()
	tx := db.Begin()
	// details are inserted with the master through the has-many association
	if err = tx.WithContext(ctx).Create(&sale).Error; err != nil {
		tx.Rollback()
		config.LogError(config.GetLogger(), "Sales", "CreateSale", "creating sale", input, err)
		return nil, utils.NewTransactionError("failed to create sale", err)
	}
	if err = tx.Commit().Error; err != nil {
		return nil, utils.NewTransactionError("failed to create sale", err)
	}

	span.SetAttributes(attribute.Int("sales.id", sale.ID))
	invalidateReports("Sales", "CreateSale")
	return &sale, nil
}

// UpdateSale overwrites the master and replaces all of its details.
func UpdateSale(ctx context.Context, id int, input *NewSale) (result *SalesMaster, err error) {
	ctx, span := startSpan(ctx, "models.UpdateSale", attribute.Int("sales.id", id))
	defer func() { endSpan(span, err) }()

	date, err := input.validate(ctx)
	if err != nil {
		return nil, err
	}

	release, err := utils.ObtainLock(ctx, lockKey("Sales", id), "Sales", "UpdateSale")
	if err != nil {
		return nil, err
	}
	defer release()

	sale, err := fetchMaster[SalesMaster](ctx, id, "sale not found")
	if err != nil {
		return nil, err
	}

	lines := input.lines()
	details := mapSalesDetails(id, lines)

	db := config.GetDB()
	tx := db.Begin()
	err = tx.WithContext(ctx).Model(sale).Updates(map[string]interface{}{
		"CustomerId":  input.CustomerId,
		"TotalAmount": totalAmount(lines),
		"Date":        date,
	}).Error
	if err != nil {
		tx.Rollback()
		return nil, utils.NewTransactionError("failed to update sale", err)
	}
	if err = tx.WithContext(ctx).Where("sales_master_id = ?", id).Delete(&SalesDetail{}).Error; err != nil {
		tx.Rollback()
		return nil, utils.NewTransactionError("failed to update sale", err)
	}
	if err = tx.WithContext(ctx).Create(&details).Error; err != nil {
		tx.Rollback()
		return nil, utils.NewTransactionError("failed to update sale", err)
	}
	if err = tx.Commit().Error; err != nil {
		return nil, utils.NewTransactionError("failed to update sale", err)
	}

	sale.CustomerId = input.CustomerId
	sale.TotalAmount = totalAmount(lines)
	sale.Date = date
	sale.Details = details
	invalidateReports("Sales", "UpdateSale")
	return sale, nil
}

// DeleteSale removes the master and cascades to its details.
func DeleteSale(ctx context.Context, id int) (result *SalesMaster, err error) {
	ctx, span := startSpan(ctx, "models.DeleteSale", attribute.Int("sales.id", id))
	defer func() { endSpan(span, err) }()

	release, err := utils.ObtainLock(ctx, lockKey("Sales", id), "Sales", "DeleteSale")
	if err != nil {
		return nil, err
	}
	defer release()

	sale, err := fetchMaster[SalesMaster](ctx, id, "sale not found", "Details")
	if err != nil {
		return nil, err
	}

	db := config.GetDB()
	tx := db.Begin()
	if err = tx.WithContext(ctx).Where("sales_master_id = ?", id).Delete(&SalesDetail{}).Error; err != nil {
		tx.Rollback()
		return nil, utils.NewTransactionError("failed to delete sale", err)
	}
	if err = tx.WithContext(ctx).Delete(&SalesMaster{}, id).Error; err != nil {
		tx.Rollback()
		return nil, utils.NewTransactionError("failed to delete sale", err)
	}
	if err = tx.Commit().Error; err != nil {
		return nil, utils.NewTransactionError("failed to delete sale", err)
	}

	invalidateReports("Sales", "DeleteSale")
	return sale, nil
}

func GetSale(ctx context.Context, id int) (*SalesMaster, error) {
	return fetchMaster[SalesMaster](ctx, id, "sale not found", "Customer", "Details", "Details.Product")
}

// newest first
func GetSales(ctx context.Context) ([]*SalesMaster, error) {
	return utils.FetchAllModels[SalesMaster](ctx, "date desc, id desc", "Customer", "Details", "Details.Product")
}

func GetSalesDetails(ctx context.Context, masterId int) ([]*SalesDetail, error) {
	db := config.GetDB()
	var details []*SalesDetail
	if err := db.WithContext(ctx).Where("sales_master_id = ?", masterId).Order("id").Find(&details).Error; err != nil {
		return nil, utils.AsAppError(err)
	}
	return details, nil
}
