package models

import (
	"github.com/mmdatafocus/inventory_backend/config"
)

func MigrateTable() error {
	db := config.GetDB()

	return db.AutoMigrate(
		&Customer{}, &Supplier{}, &Product{},
		&PurchaseMaster{}, &PurchaseDetail{},
		&SalesMaster{}, &SalesDetail{},
	)
}
