package models_test

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/mmdatafocus/inventory_backend/config"
	"github.com/mmdatafocus/inventory_backend/models"
	"github.com/mmdatafocus/inventory_backend/models/reports"
	"github.com/mmdatafocus/inventory_backend/utils"
	"github.com/shopspring/decimal"
)

func TestInventoryFlowAgainstMySQL(t *testing.T) {
	if strings.TrimSpace(os.Getenv("INTEGRATION_TESTS")) == "" {
		t.Skip("set INTEGRATION_TESTS=1 to run integration tests (requires docker)")
	}

	ctx := context.Background()

	redisName, redisPort := startRedisContainer(t)
	t.Cleanup(func() { _ = dockerRmForce(redisName) })

	mysqlName, mysqlPort := startMySQLContainer(t)
	t.Cleanup(func() { _ = dockerRmForce(mysqlName) })

	t.Setenv("REDIS_ADDRESS", fmt.Sprintf("127.0.0.1:%s", redisPort))
	t.Setenv("DB_USER", "root")
	t.Setenv("DB_PASSWORD", "testpw")
	t.Setenv("DB_HOST", "127.0.0.1")
	t.Setenv("DB_PORT", mysqlPort)
	t.Setenv("DB_NAME", "inventory_test")
	t.Setenv("ENABLE_REPORT_CACHE", "")

	config.ConnectDatabaseWithRetry()
	t.Cleanup(config.CloseDB)
	config.ConnectRedis()
	t.Cleanup(func() {
		config.CloseRedis()
		config.SetRedisDB(nil)
	})
	if config.GetRedisDB() == nil {
		t.Fatalf("expected redis to connect")
	}
	if err := models.MigrateTable(); err != nil {
		t.Fatalf("MigrateTable: %v", err)
	}

	supplier, err := models.CreateSupplier(ctx, &models.NewSupplier{
		Name: "Sharma Traders", ContactNumber: "9876543210", Email: "orders@sharma.example", Address: "Pune",
	})
	if err != nil {
		t.Fatalf("CreateSupplier: %v", err)
	}
	if supplier.SrNo != 1 {
		t.Fatalf("expected first supplier sr_no=1, got %d", supplier.SrNo)
	}

	customer, err := models.CreateCustomer(ctx, &models.NewCustomer{
		Name: "Asha Patel", ContactNumber: "9123456780", Email: "asha@example.com", Address: "Mumbai",
	})
	if err != nil {
		t.Fatalf("CreateCustomer: %v", err)
	}

	notebook, err := models.CreateProduct(ctx, &models.NewProduct{
		Name: "Notebook", Category: "Stationery", CostPrice: dec(40), SellingPrice: dec(100), Qty: dec(50), SupplierId: supplier.ID,
	})
	if err != nil {
		t.Fatalf("CreateProduct(notebook): %v", err)
	}
	pen, err := models.CreateProduct(ctx, &models.NewProduct{
		Name: "Gel Pen", Category: "Stationery", CostPrice: dec(8), SellingPrice: dec(15), Qty: dec(5), SupplierId: supplier.ID,
	})
	if err != nil {
		t.Fatalf("CreateProduct(pen): %v", err)
	}

	// untouched product closes at its opening quantity
	penStock, err := models.GetProductStock(ctx, pen.ID)
	if err != nil {
		t.Fatalf("GetProductStock(pen): %v", err)
	}
	if !penStock.AvailableStock.Equal(dec(5)) {
		t.Fatalf("expected pen stock 5, got %s", penStock.AvailableStock)
	}

	purchase, err := models.CreatePurchase(ctx, &models.NewPurchase{
		SupplierId: supplier.ID,
		Date:       "2024-01-10",
		Items:      []models.NewPurchaseItem{{ProductId: notebook.ID, Quantity: dec(20), Rate: dec(38)}},
	})
	if err != nil {
		t.Fatalf("CreatePurchase: %v", err)
	}
	if purchase.BillNo != models.PurchaseBillNo(purchase.ID) {
		t.Fatalf("expected bill no to be set after create, got %q", purchase.BillNo)
	}

	sale, err := models.CreateSale(ctx, &models.NewSale{
		CustomerId: customer.ID,
		Date:       "2024-01-12",
		Items: []models.NewSaleItem{
			{ProductId: notebook.ID, Quantity: dec(2), Price: dec(100)},
			{ProductId: notebook.ID, Quantity: dec(8), Price: dec(25)},
		},
	})
	if err != nil {
		t.Fatalf("CreateSale: %v", err)
	}
	if !sale.TotalAmount.Equal(dec(400)) {
		t.Fatalf("expected sale total 400, got %s", sale.TotalAmount)
	}

	// opening 50 + purchased 20 - sold 10
	notebookStock, err := models.GetProductStock(ctx, notebook.ID)
	if err != nil {
		t.Fatalf("GetProductStock(notebook): %v", err)
	}
	if !notebookStock.AvailableStock.Equal(dec(60)) {
		t.Fatalf("expected notebook stock 60, got %s", notebookStock.AvailableStock)
	}
	stored, err := utils.FetchModel[models.Product](ctx, notebook.ID)
	if err != nil {
		t.Fatalf("FetchModel(notebook): %v", err)
	}
	if !stored.Stock.Equal(dec(70)) {
		t.Fatalf("expected purchase to raise product.stock to 70, got %s", stored.Stock)
	}

	rows, err := models.GetStockView(ctx)
	if err != nil {
		t.Fatalf("GetStockView: %v", err)
	}
	if len(rows) != 2 || rows[0].SrNo != 1 || rows[1].SrNo != 2 {
		t.Fatalf("unexpected stock view %+v", rows)
	}
	if !rows[0].ClosingStock.Equal(dec(60)) || !rows[1].ClosingStock.Equal(dec(5)) {
		t.Fatalf("unexpected closing stock %s / %s", rows[0].ClosingStock, rows[1].ClosingStock)
	}

	// sales report: two lines plus one subtotal for (2024-01-12, Asha Patel)
	report, err := reports.GetSalesReport(ctx, nil)
	if err != nil {
		t.Fatalf("GetSalesReport: %v", err)
	}
	if len(report) != 3 || !report[2].IsSubtotal || !report[2].TotalAmount.Equal(dec(400)) {
		t.Fatalf("unexpected sales report %+v", report)
	}
	if !report[0].ProfitPerUnit.Equal(dec(60)) || !report[0].TotalProfit.Equal(dec(120)) {
		t.Fatalf("unexpected profit on first line %+v", report[0])
	}

	// range that excludes the sale
	januaryFirst, err := reports.ParseDateRange("2024-01-01", "2024-01-11")
	if err != nil {
		t.Fatalf("ParseDateRange: %v", err)
	}
	filtered, err := reports.GetSalesReport(ctx, januaryFirst)
	if err != nil {
		t.Fatalf("GetSalesReport(filtered): %v", err)
	}
	if len(filtered) != 0 {
		t.Fatalf("expected no rows before the sale date, got %d", len(filtered))
	}

	salesSummary, err := reports.GetSalesSummary(ctx, nil)
	if err != nil {
		t.Fatalf("GetSalesSummary: %v", err)
	}
	if len(salesSummary) != 1 || salesSummary[0].ProductCount != 2 || !salesSummary[0].TotalAmount.Equal(dec(400)) {
		t.Fatalf("unexpected sales summary %+v", salesSummary)
	}
	if salesSummary[0].CustomerName != "Asha Patel" || salesSummary[0].Date != "2024-01-12" {
		t.Fatalf("unexpected sales summary row %+v", salesSummary[0])
	}

	// update replaces the detail set
	updated, err := models.UpdateSale(ctx, sale.ID, &models.NewSale{
		CustomerId: customer.ID,
		Date:       "2024-01-12",
		Items:      []models.NewSaleItem{{ProductId: pen.ID, Quantity: dec(3), Price: dec(15)}},
	})
	if err != nil {
		t.Fatalf("UpdateSale: %v", err)
	}
	if !updated.TotalAmount.Equal(dec(45)) {
		t.Fatalf("expected updated total 45, got %s", updated.TotalAmount)
	}
	details, err := models.GetSalesDetails(ctx, sale.ID)
	if err != nil {
		t.Fatalf("GetSalesDetails: %v", err)
	}
	if len(details) != 1 || details[0].ProductId != pen.ID {
		t.Fatalf("expected only the replacement detail, got %+v", details)
	}

	// blocked while referenced
	if _, err := models.DeleteCustomer(ctx, customer.ID); utils.HTTPStatus(err) != 400 {
		t.Fatalf("expected customer delete to be rejected, got %v", err)
	}

	// delete cascades to details
	if _, err := models.DeleteSale(ctx, sale.ID); err != nil {
		t.Fatalf("DeleteSale: %v", err)
	}
	if _, err := models.GetSale(ctx, sale.ID); !utils.IsNotFound(err) {
		t.Fatalf("expected deleted sale to be not found, got %v", err)
	}
	details, err = models.GetSalesDetails(ctx, sale.ID)
	if err != nil {
		t.Fatalf("GetSalesDetails(after delete): %v", err)
	}
	if len(details) != 0 {
		t.Fatalf("expected details to be removed with the sale, got %d", len(details))
	}

	// an empty line list creates no master
	if _, err := models.CreateSale(ctx, &models.NewSale{CustomerId: customer.ID, Items: []models.NewSaleItem{}}); utils.HTTPStatus(err) != 400 {
		t.Fatalf("expected validation error for empty items, got %v", err)
	}
	sales, err := models.GetSales(ctx)
	if err != nil {
		t.Fatalf("GetSales: %v", err)
	}
	if len(sales) != 0 {
		t.Fatalf("expected no sales after delete and rejected create, got %d", len(sales))
	}

	// unknown product aborts the whole purchase
	if _, err := models.CreatePurchase(ctx, &models.NewPurchase{
		SupplierId: supplier.ID,
		Items:      []models.NewPurchaseItem{{ProductId: 9999, Quantity: dec(1), Rate: dec(1)}},
	}); !utils.IsNotFound(err) {
		t.Fatalf("expected not found for unknown product, got %v", err)
	}

	summary, err := reports.GetDashboardSummary(ctx)
	if err != nil {
		t.Fatalf("GetDashboardSummary: %v", err)
	}
	if summary.TotalProducts != 2 || !summary.TotalPurchase.Equal(dec(760)) || !summary.TotalSales.IsZero() {
		t.Fatalf("unexpected dashboard summary %+v", summary)
	}

	purchaseReport, err := reports.GetPurchaseReport(ctx, nil)
	if err != nil {
		t.Fatalf("GetPurchaseReport: %v", err)
	}
	if len(purchaseReport) != 2 || purchaseReport[0].BillNo != purchase.BillNo || !purchaseReport[1].IsSubtotal {
		t.Fatalf("unexpected purchase report %+v", purchaseReport)
	}
	if !purchaseReport[1].TotalAmount.Equal(dec(760)) {
		t.Fatalf("expected purchase subtotal 760, got %s", purchaseReport[1].TotalAmount)
	}

	// cached reports pick up counterparty renames
	t.Setenv("ENABLE_REPORT_CACHE", "true")
	if _, err := models.CreateSale(ctx, &models.NewSale{
		CustomerId: customer.ID,
		Date:       "2024-01-15",
		Items:      []models.NewSaleItem{{ProductId: pen.ID, Quantity: dec(1), Price: dec(15)}},
	}); err != nil {
		t.Fatalf("CreateSale(cached): %v", err)
	}
	if _, err := reports.GetSalesSummary(ctx, nil); err != nil {
		t.Fatalf("GetSalesSummary(warm): %v", err)
	}
	if _, err := reports.GetPurchaseSummary(ctx, nil); err != nil {
		t.Fatalf("GetPurchaseSummary(warm): %v", err)
	}
	if n, err := config.GetRedisDB().Exists(ctx, "report:sales_summary:all").Result(); err != nil || n != 1 {
		t.Fatalf("expected sales summary to be cached, got %d, %v", n, err)
	}

	if _, err := models.UpdateCustomer(ctx, customer.ID, &models.NewCustomer{
		Name: "Asha Kulkarni", ContactNumber: "9123456780", Email: "asha@example.com", Address: "Mumbai",
	}); err != nil {
		t.Fatalf("UpdateCustomer: %v", err)
	}
	if _, err := models.UpdateSupplier(ctx, supplier.ID, &models.NewSupplier{
		Name: "Sharma & Sons", ContactNumber: "9876543210", Email: "orders@sharma.example", Address: "Pune",
	}); err != nil {
		t.Fatalf("UpdateSupplier: %v", err)
	}
	salesSummary, err = reports.GetSalesSummary(ctx, nil)
	if err != nil {
		t.Fatalf("GetSalesSummary(after rename): %v", err)
	}
	if len(salesSummary) != 1 || salesSummary[0].CustomerName != "Asha Kulkarni" {
		t.Fatalf("expected renamed customer in sales summary, got %+v", salesSummary)
	}
	purchaseSummary, err := reports.GetPurchaseSummary(ctx, nil)
	if err != nil {
		t.Fatalf("GetPurchaseSummary(after rename): %v", err)
	}
	if len(purchaseSummary) != 1 || purchaseSummary[0].SupplierName != "Sharma & Sons" {
		t.Fatalf("expected renamed supplier in purchase summary, got %+v", purchaseSummary)
	}

	// update replaces purchase details
	updatedPurchase, err := models.UpdatePurchase(ctx, purchase.ID, &models.NewPurchase{
		SupplierId: supplier.ID,
		Date:       "2024-01-10",
		Items:      []models.NewPurchaseItem{{ProductId: pen.ID, Quantity: dec(4), Rate: dec(7)}},
	})
	if err != nil {
		t.Fatalf("UpdatePurchase: %v", err)
	}
	if !updatedPurchase.TotalAmount.Equal(dec(28)) {
		t.Fatalf("expected updated purchase total 28, got %s", updatedPurchase.TotalAmount)
	}
	purchaseDetails, err := models.GetPurchaseDetails(ctx, purchase.ID)
	if err != nil {
		t.Fatalf("GetPurchaseDetails: %v", err)
	}
	if len(purchaseDetails) != 1 || purchaseDetails[0].ProductId != pen.ID || !purchaseDetails[0].Total.Equal(dec(28)) {
		t.Fatalf("expected only the replacement purchase detail, got %+v", purchaseDetails)
	}
	purchaseSummary, err = reports.GetPurchaseSummary(ctx, nil)
	if err != nil {
		t.Fatalf("GetPurchaseSummary(after update): %v", err)
	}
	if len(purchaseSummary) != 1 || purchaseSummary[0].ProductCount != 1 || !purchaseSummary[0].TotalAmount.Equal(dec(28)) {
		t.Fatalf("unexpected purchase summary after update %+v", purchaseSummary)
	}

	// delete cascades to purchase details
	if _, err := models.DeletePurchase(ctx, purchase.ID); err != nil {
		t.Fatalf("DeletePurchase: %v", err)
	}
	if _, err := models.GetPurchase(ctx, purchase.ID); !utils.IsNotFound(err) {
		t.Fatalf("expected deleted purchase to be not found, got %v", err)
	}
	purchaseDetails, err = models.GetPurchaseDetails(ctx, purchase.ID)
	if err != nil {
		t.Fatalf("GetPurchaseDetails(after delete): %v", err)
	}
	if len(purchaseDetails) != 0 {
		t.Fatalf("expected purchase details to be removed, got %d", len(purchaseDetails))
	}
	purchaseSummary, err = reports.GetPurchaseSummary(ctx, nil)
	if err != nil {
		t.Fatalf("GetPurchaseSummary(after delete): %v", err)
	}
	if len(purchaseSummary) != 0 {
		t.Fatalf("expected empty purchase summary after delete, got %+v", purchaseSummary)
	}
}

func dec(v int64) decimal.Decimal {
	return decimal.NewFromInt(v)
}

func startRedisContainer(t *testing.T) (containerName, hostPort string) {
	t.Helper()
	name := fmt.Sprintf("inventory-test-redis-%d", time.Now().UnixNano())
	out, err := dockerRun(
		"run", "-d", "--name", name,
		"-p", "127.0.0.1:0:6379",
		"redis:7-alpine",
	)
	if err != nil {
		t.Fatalf("start redis container: %v\n%s", err, out)
	}
	port, err := dockerHostPort(name, "6379/tcp")
	if err != nil {
		t.Fatalf("redis docker port: %v", err)
	}
	// wait until ready
	deadline := time.Now().Add(60 * time.Second)
	for time.Now().Before(deadline) {
		_, err := dockerRun("exec", name, "redis-cli", "ping")
		if err == nil {
			return name, port
		}
		time.Sleep(250 * time.Millisecond)
	}
	t.Fatalf("redis did not become ready")
	return "", ""
}

func startMySQLContainer(t *testing.T) (containerName, hostPort string) {
	t.Helper()
	name := fmt.Sprintf("inventory-test-mysql-%d", time.Now().UnixNano())
	out, err := dockerRun(
		"run", "-d", "--name", name,
		"-e", "MYSQL_ROOT_PASSWORD=testpw",
		"-e", "MYSQL_DATABASE=inventory_test",
		"-p", "127.0.0.1:0:3306",
		"mysql:8.0",
		"--default-authentication-plugin=mysql_native_password",
	)
	if err != nil {
		t.Fatalf("start mysql container: %v\n%s", err, out)
	}
	port, err := dockerHostPort(name, "3306/tcp")
	if err != nil {
		t.Fatalf("mysql docker port: %v", err)
	}
	// wait until ready
	deadline := time.Now().Add(120 * time.Second)
	for time.Now().Before(deadline) {
		_, err := dockerRun("exec", name, "mysqladmin", "ping", "-h", "127.0.0.1", "-ptestpw", "--silent")
		if err == nil {
			return name, port
		}
		time.Sleep(500 * time.Millisecond)
	}
	t.Fatalf("mysql did not become ready")
	return "", ""
}

func dockerHostPort(container, portProto string) (string, error) {
	out, err := dockerRun("port", container, portProto)
	if err != nil {
		return "", fmt.Errorf("docker port: %w: %s", err, out)
	}
	// Example: "127.0.0.1:49154\n"
	re := regexp.MustCompile(`:(\d+)`)
	m := re.FindStringSubmatch(out)
	if len(m) != 2 {
		return "", fmt.Errorf("unexpected docker port output: %q", out)
	}
	return m[1], nil
}

func dockerRmForce(container string) error {
	if strings.TrimSpace(container) == "" {
		return nil
	}
	_, err := dockerRun("rm", "-f", container)
	return err
}

func dockerRun(args ...string) (string, error) {
	cmd := exec.Command("docker", args...)
	b, err := cmd.CombinedOutput()
	return string(b), err
}
