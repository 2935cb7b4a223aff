package services

import (
	"database/sql"
	"log"
	"time"

	"sala-admin/app/database"
	"sala-admin/app/ledger"
)

// StartScheduler starts the background task scheduler
func StartScheduler(db *sql.DB) {
	go func() {
		log.Println("Scheduler started...")
		ticker := time.NewTicker(1 * time.Minute)
		defer ticker.Stop()

		for range ticker.C {
			now := time.Now()

			// Trigger at 8:05 PM (20:05)
			if now.Hour() == 20 && now.Minute() == 5 {
				log.Println("Triggering scheduled tasks [20:05]...")

				if err := ReconcileLegacyStatuses(db, now); err != nil {
					log.Printf("Error reconciling payment statuses: %v", err)
				}
			}
		}
	}()
}

// ReconcileLegacyStatuses stamps the legacy payment_status column for
// students whose balance has cleared but whose status text still says
// otherwise. Only records without a parseable due date are touched; for
// everyone else the due date, not the text, drives classification.
func ReconcileLegacyStatuses(db *sql.DB, now time.Time) error {
	students, _, err := database.GetStudentsWithInstallments(db, database.StudentFilters{Status: "active"})
	if err != nil {
		return err
	}

	updated := 0
	for _, s := range students {
		if _, ok := ledger.ParseDueDate(s.DueDate); ok {
			continue
		}
		acct := s.LedgerAccount()
		if !ledger.RemainingBalance(acct).IsZero() {
			continue
		}
		if ledger.PaymentStatus(acct, now).Kind == ledger.StatusPaid && s.PaymentStatus != "Paid" {
			if err := database.SetStudentLegacyStatus(db, s.ID, "Paid"); err != nil {
				log.Printf("Error stamping status for student %s: %v", s.ID, err)
				continue
			}
			updated++
		}
	}

	if updated > 0 {
		log.Printf("Reconciled payment status for %d students", updated)
	}
	return nil
}
