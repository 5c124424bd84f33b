package models

import (
	"context"
	"time"

	"github.com/mmdatafocus/inventory_backend/config"
	"github.com/mmdatafocus/inventory_backend/utils"
)

type Customer struct {
	ID            int       `gorm:"primary_key" json:"id"`
	Name          string    `gorm:"size:100;not null;index" json:"customer_name"`
	ContactNumber string    `gorm:"size:20;not null" json:"contact_number"`
	Email         string    `gorm:"size:100;not null" json:"email"`
	Address       string    `gorm:"type:text;not null" json:"address"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

type NewCustomer struct {
	Name          string `json:"customer_name" validate:"required,min=2"`
	ContactNumber string `json:"contact_number" validate:"required,min=10,max=15"`
	Email         string `json:"email" validate:"required,email"`
	Address       string `json:"address" validate:"required,min=2"`
}

func (input *NewCustomer) validate() error {
	if err := utils.ValidateStruct(input); err != nil {
		return err
	}
	return validateContactNumber(input.ContactNumber)
}

func CreateCustomer(ctx context.Context, input *NewCustomer) (*Customer, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	customer := Customer{
		Name:          input.Name,
		ContactNumber: input.ContactNumber,
		Email:         input.Email,
		Address:       input.Address,
	}

	db := config.GetDB()
	if err := db.WithContext(ctx).Create(&customer).Error; err != nil {
		return nil, utils.AsAppError(err)
	}
	return &customer, nil
}

func UpdateCustomer(ctx context.Context, id int, input *NewCustomer) (*Customer, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	customer, err := utils.FetchModel[Customer](ctx, id)
	if err != nil {
		return nil, err
	}

	db := config.GetDB()
	err = db.WithContext(ctx).Model(customer).Updates(map[string]interface{}{
		"Name":          input.Name,
		"ContactNumber": input.ContactNumber,
		"Email":         input.Email,
		"Address":       input.Address,
	}).Error
	if err != nil {
		return nil, utils.AsAppError(err)
	}
	customer.Name = input.Name
	customer.ContactNumber = input.ContactNumber
	customer.Email = input.Email
	customer.Address = input.Address

	invalidateReports("Customer", "UpdateCustomer")
	return customer, nil
}

func DeleteCustomer(ctx context.Context, id int) (*Customer, error) {
	result, err := utils.FetchModel[Customer](ctx, id)
	if err != nil {
		return nil, err
	}

	count, err := utils.ResourceCountWhere[SalesMaster](ctx, "customer_id = ?", id)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, utils.NewValidationError("sales associated with customer exist")
	}

	db := config.GetDB()
	if err := db.WithContext(ctx).Delete(result).Error; err != nil {
		return nil, utils.AsAppError(err)
	}
	return result, nil
}

func GetCustomer(ctx context.Context, id int) (*Customer, error) {
	return utils.FetchModel[Customer](ctx, id)
}

func GetCustomers(ctx context.Context, name *string) ([]*Customer, error) {
	db := config.GetDB()

	var results []*Customer
	dbCtx := db.WithContext(ctx)
	if name != nil && len(*name) > 0 {
		dbCtx = dbCtx.Where("name LIKE ?", "%"+*name+"%")
	}
	if err := dbCtx.Order("name").Find(&results).Error; err != nil {
		return nil, utils.AsAppError(err)
	}
	return results, nil
}
