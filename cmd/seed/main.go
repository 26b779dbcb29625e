// Package main provides a CLI tool that applies the PostgreSQL schema
// and optionally loads demo data.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"

	"vendorledger/internal/core/types"
	"vendorledger/internal/domain/brand"
	"vendorledger/internal/domain/invoice"
	"vendorledger/internal/domain/issue"
	"vendorledger/internal/domain/vendor"
	"vendorledger/internal/infrastructure/storage"
	"vendorledger/internal/infrastructure/storage/postgres"
	"vendorledger/pkg/logger"
)

func main() {
	_ = godotenv.Load()

	log, err := logger.New(logger.Config{
		Level:       "info",
		Development: true,
	})
	if err != nil {
		fmt.Printf("failed to create logger: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL environment variable is required")
	}

	pool, err := postgres.NewPool(ctx, postgres.DefaultPoolConfig(dbURL))
	if err != nil {
		log.Fatalw("failed to connect to database", "error", err)
	}
	defer pool.Close()

	log.Info("connected to database")

	if err := postgres.ApplySchema(ctx, pool); err != nil {
		log.Fatalw("failed to apply schema", "error", err)
	}
	log.Info("schema applied")

	if os.Getenv("SEED_DEMO_DATA") == "true" {
		if err := seedDemoData(ctx, postgres.NewStore(pool).Stores(), log); err != nil {
			log.Fatalw("failed to seed demo data", "error", err)
		}
	}

	log.Info("seeding completed successfully")
}

// seedDemoData loads a small demo dataset through the domain services so
// all validation and uniqueness rules apply.
func seedDemoData(ctx context.Context, stores storage.Stores, log *logger.Logger) error {
	vendors := vendor.NewService(stores.Vendors)
	brands := brand.NewService(stores.Brands)
	issues := issue.NewService(stores.Issues)
	invoices := invoice.NewService(stores.Invoices)

	freshDairy := vendor.NewVendor("Fresh Dairy Distributors", vendor.TermsCredit)
	freshDairy.ContactPerson = strPtr("Anita Rao")
	freshDairy.Phone = strPtr("+91 98200 11223")
	freshDairy.Email = strPtr("orders@freshdairy.example")
	freshDairy.VisitCadence = strPtr("weekly")
	freshDairy.HasDisplay = true
	freshDairy.DisplayRent = types.MustMoney("1500.00")
	if err := vendors.Create(ctx, freshDairy); err != nil {
		return fmt.Errorf("seed vendor: %w", err)
	}

	snackCo := vendor.NewVendor("Golden Snacks Co", vendor.TermsAdvance)
	snackCo.ContactPerson = strPtr("Vikram Shah")
	if err := vendors.Create(ctx, snackCo); err != nil {
		return fmt.Errorf("seed vendor: %w", err)
	}

	for _, b := range []*brand.Brand{
		brand.NewBrand(freshDairy.ID, "MorningMilk", "MM-500", brand.CategoryDairy),
		brand.NewBrand(freshDairy.ID, "CreamLine", "CL-200", brand.CategoryDairy),
		brand.NewBrand(snackCo.ID, "CrispBite", "CB-90", brand.CategorySnacks),
	} {
		if err := brands.Create(ctx, b); err != nil {
			return fmt.Errorf("seed brand: %w", err)
		}
	}

	expired := issue.NewIssue(freshDairy.ID, "MorningMilk 500ml", issue.TypeExpired)
	expired.Quantity = 12
	expired.EstimatedLoss = types.MustMoney("540.00")
	expired.Description = "past expiry on delivery"
	if err := issues.Create(ctx, expired); err != nil {
		return fmt.Errorf("seed issue: %w", err)
	}

	now := time.Now().UTC()
	due := now.AddDate(0, 0, 14)

	inv, _, err := invoices.Upsert(ctx, invoice.UpsertInput{
		VendorID:   freshDairy.ID,
		Number:     "FD-2024-0117",
		Date:       now.AddDate(0, 0, -7),
		Amount:     types.MustMoney("12450.00"),
		TotalItems: 48,
		DueDate:    &due,
	})
	if err != nil {
		return fmt.Errorf("seed invoice: %w", err)
	}

	if _, err := invoices.RecordPayment(ctx, invoice.PaymentInput{
		InvoiceID: inv.ID,
		Date:      now.AddDate(0, 0, -2),
		Amount:    types.MustMoney("5000.00"),
		Method:    invoice.MethodCheque,
	}); err != nil {
		return fmt.Errorf("seed payment: %w", err)
	}

	if _, err := invoices.RecordCreditNote(ctx, invoice.CreditNoteInput{
		InvoiceID:     inv.ID,
		Number:        "CRN-2024-0031",
		Date:          now.AddDate(0, 0, -1),
		Amount:        types.MustMoney("540.00"),
		ItemsReturned: 12,
		Reason:        "expired stock returned",
	}); err != nil {
		return fmt.Errorf("seed credit note: %w", err)
	}

	log.Info("demo data loaded")
	return nil
}

func strPtr(s string) *string {
	return &s
}
