// seed-demo fills an empty database with a few customers, a supplier, products,
// a purchase and some sales so the dashboard and reports have something to show.
// It does nothing when products already exist.
//
// Usage (from backend directory):
//
//	DB_USER=... DB_PASSWORD=... DB_HOST=... DB_PORT=... DB_NAME=... go run ./cmd/seed-demo
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/mmdatafocus/inventory_backend/config"
	"github.com/mmdatafocus/inventory_backend/models"
	"github.com/mmdatafocus/inventory_backend/utils"
	"github.com/shopspring/decimal"
)

func main() {
	ctx := context.Background()
	config.ConnectDatabaseWithRetry()
	if config.GetDB() == nil {
		fmt.Fprintln(os.Stderr, "database not initialized (config.GetDB returned nil). Set DB_* env vars.")
		os.Exit(1)
	}
	defer config.CloseDB()

	if err := models.MigrateTable(); err != nil {
		fmt.Fprintf(os.Stderr, "migrate failed: %v\n", err)
		os.Exit(1)
	}

	count, err := utils.ResourceCountWhere[models.Product](ctx, "1 = 1")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to count products: %v\n", err)
		os.Exit(1)
	}
	if count > 0 {
		fmt.Println("products already exist; nothing to seed")
		return
	}

	if err := seed(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "seed failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("seeded demo data")
}

func seed(ctx context.Context) error {
	supplier, err := models.CreateSupplier(ctx, &models.NewSupplier{
		Name:          "Sharma Traders",
		ContactNumber: "9876543210",
		Email:         "orders@sharmatraders.example",
		Address:       "12 Market Road, Pune",
	})
	if err != nil {
		return err
	}

	customers := []models.NewCustomer{
		{Name: "Asha Patel", ContactNumber: "9123456780", Email: "asha@example.com", Address: "4 Lake View, Mumbai"},
		{Name: "Ravi Kumar", ContactNumber: "9988776655", Email: "ravi@example.com", Address: "88 MG Road, Bengaluru"},
	}
	var customerIds []int
	for i := range customers {
		c, err := models.CreateCustomer(ctx, &customers[i])
		if err != nil {
			return err
		}
		customerIds = append(customerIds, c.ID)
	}

	products := []models.NewProduct{
		{Name: "Notebook A5", Category: "Stationery", CostPrice: decimal.NewFromInt(40), SellingPrice: decimal.NewFromInt(60), Qty: decimal.NewFromInt(50)},
		{Name: "Gel Pen", Category: "Stationery", CostPrice: decimal.NewFromInt(8), SellingPrice: decimal.NewFromInt(15), Qty: decimal.NewFromInt(200)},
		{Name: "Desk Lamp", Category: "Electronics", CostPrice: decimal.NewFromInt(450), SellingPrice: decimal.NewFromInt(699), Qty: decimal.NewFromInt(10)},
	}
	var productIds []int
	for i := range products {
		products[i].SupplierId = supplier.ID
		p, err := models.CreateProduct(ctx, &products[i])
		if err != nil {
			return err
		}
		productIds = append(productIds, p.ID)
	}

	if _, err := models.CreatePurchase(ctx, &models.NewPurchase{
		SupplierId: supplier.ID,
		Items: []models.NewPurchaseItem{
			{ProductId: productIds[0], Quantity: decimal.NewFromInt(20), Rate: decimal.NewFromInt(38)},
			{ProductId: productIds[2], Quantity: decimal.NewFromInt(5), Rate: decimal.NewFromInt(440)},
		},
	}); err != nil {
		return err
	}

	for i, customerId := range customerIds {
		if _, err := models.CreateSale(ctx, &models.NewSale{
			CustomerId: customerId,
			Items: []models.NewSaleItem{
				{ProductId: productIds[0], Quantity: decimal.NewFromInt(int64(3 + i)), Price: decimal.NewFromInt(60)},
				{ProductId: productIds[1], Quantity: decimal.NewFromInt(10), Price: decimal.NewFromInt(15)},
			},
		}); err != nil {
			return err
		}
	}
	return nil
}
