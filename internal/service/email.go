package service

import (
	"context"
	"fmt"

	"rental-management-backend/internal/domain"

	"gopkg.in/gomail.v2"
)

type emailService struct {
	host     string
	port     int
	username string
	password string
	from     string
}

func NewEmailService(host string, port int, username, password, from string) EmailService {
	return &emailService{
		host:     host,
		port:     port,
		username: username,
		password: password,
		from:     from,
	}
}

func (s *emailService) SendBillReminder(ctx context.Context, toEmail, toName string, billing *domain.Billing) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", fmt.Sprintf("Bill #%d is awaiting payment", billing.ID))

	body := fmt.Sprintf("Hello %s,\n\nBill #%d for %s is still pending.\nDue date: %s",
		toName, billing.ID, formatCents(billing.AmountCents), billing.DueDate.Format("2006-01-02"))
	if billing.Rental != nil && billing.Rental.Customer != nil {
		c := billing.Rental.Customer
		body += fmt.Sprintf("\nCustomer: %s %s (%s)", c.FirstName, c.LastName, c.Email)
	}
	body += "\n\nBest regards,\nThe Rental Management Team"
	m.SetBody("text/plain", body)

	d := gomail.NewDialer(s.host, s.port, s.username, s.password)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send bill reminder: %w", err)
	}
	return nil
}

func formatCents(cents int64) string {
	return fmt.Sprintf("$%d.%02d", cents/100, cents%100)
}
