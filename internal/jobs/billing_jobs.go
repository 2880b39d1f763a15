package jobs

import (
	"context"
	"time"

	"rental-management-backend/internal/logger"
)

// MarkOverdueBillings flips pending billings whose due date has passed to
// overdue.
func (jr *JobRunner) MarkOverdueBillings() {
	jr.runWithRecovery("MarkOverdueBillings", func() {
		ctx := context.Background()

		count, err := jr.services.Billing.MarkOverdueBillings(ctx, time.Now())
		if err != nil {
			logger.Error("Failed to mark overdue billings", "error", err)
			return
		}

		logger.Info("Overdue billing sweep finished", "marked_overdue", count)
	})
}

// reminderWindow is how far ahead of the due date reminders go out.
const reminderWindow = 3 * 24 * time.Hour

// SendBillReminders emails every operator about billings that are due within
// the reminder window (or already past due).
func (jr *JobRunner) SendBillReminders() {
	jr.runWithRecovery("SendBillReminders", func() {
		ctx := context.Background()

		billings, err := jr.store.BillingRepository.ListPendingDueBefore(ctx, time.Now().Add(reminderWindow))
		if err != nil {
			logger.Error("Failed to list pending billings", "error", err)
			return
		}
		if len(billings) == 0 {
			logger.Info("No pending billings near due, skipping reminders")
			return
		}

		users, err := jr.store.UserRepository.List(ctx)
		if err != nil {
			logger.Error("Failed to list users for reminders", "error", err)
			return
		}

		sent := 0
		for _, billing := range billings {
			for _, user := range users {
				if err := jr.services.Email.SendBillReminder(ctx, user.Email, user.Name, &billing); err != nil {
					logger.Error("Failed to send bill reminder",
						"billing_id", billing.ID,
						"user_id", user.ID,
						"error", err)
					continue
				}
				sent++
			}
		}

		logger.Info("Bill reminders sent", "billings", len(billings), "emails_sent", sent)
	})
}
