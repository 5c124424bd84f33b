package models

import (
	"context"
	"time"

	"github.com/mmdatafocus/inventory_backend/config"
	"github.com/mmdatafocus/inventory_backend/utils"
)

type Supplier struct {
	ID            int       `gorm:"primary_key" json:"id"`
	SrNo          int       `gorm:"not null;index" json:"sr_no"`
	Name          string    `gorm:"size:100;not null" json:"supplier_name"`
	ContactNumber string    `gorm:"size:20;not null" json:"contact_number"`
	Email         string    `gorm:"size:100;not null" json:"email"`
	Address       string    `gorm:"type:text;not null" json:"address"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

type NewSupplier struct {
	Name          string `json:"supplier_name" validate:"required"`
	ContactNumber string `json:"contact_number" validate:"required,min=10,max=15"`
	Email         string `json:"email" validate:"required,email"`
	Address       string `json:"address" validate:"required"`
}

func (input *NewSupplier) validate() error {
	if err := utils.ValidateStruct(input); err != nil {
		return err
	}
	return validateContactNumber(input.ContactNumber)
}

// sr_no is the number of suppliers at creation time plus one
func CreateSupplier(ctx context.Context, input *NewSupplier) (*Supplier, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	db := config.GetDB()
	tx := db.Begin()

	var count int64
	if err := tx.WithContext(ctx).Model(&Supplier{}).Count(&count).Error; err != nil {
		tx.Rollback()
		return nil, utils.AsAppError(err)
	}

	supplier := Supplier{
		SrNo:          int(count) + 1,
		Name:          input.Name,
		ContactNumber: input.ContactNumber,
		Email:         input.Email,
		Address:       input.Address,
	}
	if err := tx.WithContext(ctx).Create(&supplier).Error; err != nil {
		tx.Rollback()
		return nil, utils.AsAppError(err)
	}

	if err := tx.Commit().Error; err != nil {
		return nil, utils.AsAppError(err)
	}
	return &supplier, nil
}

func UpdateSupplier(ctx context.Context, id int, input *NewSupplier) (*Supplier, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	supplier, err := utils.FetchModel[Supplier](ctx, id)
	if err != nil {
		return nil, err
	}

	db := config.GetDB()
	err = db.WithContext(ctx).Model(supplier).Updates(map[string]interface{}{
		"Name":          input.Name,
		"ContactNumber": input.ContactNumber,
		"Email":         input.Email,
		"Address":       input.Address,
	}).Error
	if err != nil {
		return nil, utils.AsAppError(err)
	}
	supplier.Name = input.Name
	supplier.ContactNumber = input.ContactNumber
	supplier.Email = input.Email
	supplier.Address = input.Address

	invalidateReports("Supplier", "UpdateSupplier")
	return supplier, nil
}

func DeleteSupplier(ctx context.Context, id int) (*Supplier, error) {
	result, err := utils.FetchModel[Supplier](ctx, id)
	if err != nil {
		return nil, err
	}

	count, err := utils.ResourceCountWhere[Product](ctx, "supplier_id = ?", id)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, utils.NewValidationError("products associated with supplier exist")
	}

	count, err = utils.ResourceCountWhere[PurchaseMaster](ctx, "supplier_id = ?", id)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, utils.NewValidationError("purchases associated with supplier exist")
	}

	db := config.GetDB()
	if err := db.WithContext(ctx).Delete(result).Error; err != nil {
		return nil, utils.AsAppError(err)
	}
	return result, nil
}

func GetSupplier(ctx context.Context, id int) (*Supplier, error) {
	return utils.FetchModel[Supplier](ctx, id)
}

func GetSuppliers(ctx context.Context) ([]*Supplier, error) {
	return utils.FetchAllModels[Supplier](ctx, "sr_no")
}
