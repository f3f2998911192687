// Package email provides the email client for sending transactional emails.
package email

import (
	"fmt"

	"github.com/pagemint/pagemint-go/internal/domain/entities/content"
	"github.com/pagemint/pagemint-go/internal/domain/entities/rendering"
	"github.com/pagemint/pagemint-go/internal/infrastructure/email/templates"
	"github.com/pagemint/pagemint-go/pkg/config"
	"github.com/resendlabs/resend-go"
)

// Service defines the interface for sending emails, allowing for mock implementations in tests.
type Service interface {
	SendOrderNotificationEmail(toEmail string, order *content.Order, product *content.Product) error
}

// ResendClient is the concrete implementation of the email Service using the Resend API.
type ResendClient struct {
	client    *resend.Client
	fromEmail string
	fromName  string
}

// NewService creates a new email service client, returning the Service interface.
func NewService() (Service, error) {
	if config.ResendAPIKey == "" {
		return nil, fmt.Errorf("RESEND_API_KEY environment variable is required")
	}

	return &ResendClient{
		client:    resend.NewClient(config.ResendAPIKey),
		fromEmail: config.OrderEmailFrom,
		fromName:  "PageMint",
	}, nil
}

// SendOrderNotificationEmail composes and sends the new-order notification to the seller.
func (c *ResendClient) SendOrderNotificationEmail(toEmail string, order *content.Order, product *content.Product) error {
	subject := fmt.Sprintf("New order: %s", product.Name)

	body := templates.GetHeading("You have a new order") +
		templates.GetOrderSummaryTable(templates.OrderSummaryProps{
			ProductName: product.Name,
			Price:       rendering.FormatPrice(product.Price, product.Currency),
			FullName:    order.FullName,
			Phone:       order.Phone,
			City:        order.City,
			Address:     order.Address,
			Attributes:  order.Attributes,
		}) +
		templates.GetParagraph("Reply to this email or call the customer to confirm delivery.")

	htmlContent := templates.GetEmailLayout(templates.EmailLayoutProps{
		Preheader: subject,
		Content:   body,
	})

	params := &resend.SendEmailRequest{
		From:    fmt.Sprintf("%s <%s>", c.fromName, c.fromEmail),
		To:      []string{toEmail},
		Subject: subject,
		Html:    htmlContent,
	}

	_, err := c.client.Emails.Send(params)
	if err != nil {
		return fmt.Errorf("failed to send order notification email: %w", err)
	}
	return nil
}
