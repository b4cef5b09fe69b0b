package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"pharmastock/internal/dto"
	"pharmastock/internal/infra"
	"pharmastock/internal/repository"
)

// DigestSender delivers the notification digest; *infra.Mailer satisfies it.
type DigestSender interface {
	Send(to, subject, body string, attachments ...infra.Attachment) error
}

// NotificationSettings holds the defaults a request may override.
type NotificationSettings struct {
	LowStockThreshold int
	ExpiryWarningDays int
	Now               func() time.Time // nil means time.Now
}

type NotificationService interface {
	// Summary lists low-stock drugs and lots that expire within the window.
	Summary(ctx context.Context, q dto.NotificationQuery) (*dto.NotificationResponse, error)
	// SendDigest mails the summary with the PDF stock report attached.
	SendDigest(ctx context.Context, to string) error
}

type notificationService struct {
	drugs    repository.DrugRepository
	stocks   repository.StockRepository
	reports  ReportService
	mailer   DigestSender
	settings NotificationSettings
}

func NewNotificationService(
	drugs repository.DrugRepository,
	stocks repository.StockRepository,
	reports ReportService,
	mailer DigestSender,
	settings NotificationSettings,
) NotificationService {
	if settings.Now == nil {
		settings.Now = time.Now
	}
	return &notificationService{
		drugs:    drugs,
		stocks:   stocks,
		reports:  reports,
		mailer:   mailer,
		settings: settings,
	}
}

func (s *notificationService) Summary(ctx context.Context, q dto.NotificationQuery) (*dto.NotificationResponse, error) {
	threshold := s.settings.LowStockThreshold
	if q.Threshold != nil {
		threshold = *q.Threshold
	}
	days := s.settings.ExpiryWarningDays
	if q.Days != nil {
		days = *q.Days
	}
	if threshold < 0 || days < 0 {
		return nil, invalid("threshold and days must be zero or greater")
	}

	low, err := s.drugs.ListLowStock(ctx, threshold)
	if err != nil {
		return nil, fmt.Errorf("low stock: %w", err)
	}

	today := startOfDay(s.settings.Now())
	rows, err := s.stocks.ListExpiringBefore(ctx, today.AddDate(0, 0, days))
	if err != nil {
		return nil, fmt.Errorf("expiring lots: %w", err)
	}

	resp := &dto.NotificationResponse{
		Threshold: threshold,
		Days:      days,
		LowStock:  make([]dto.LowStockItem, 0, len(low)),
		Expiring:  []dto.ExpiringLotItem{},
		Expired:   []dto.ExpiringLotItem{},
	}
	for _, r := range low {
		resp.LowStock = append(resp.LowStock, dto.LowStockItem{
			DrugID:      r.DrugID.String(),
			Name:        r.Name,
			UnitType:    r.UnitType,
			TotalAmount: r.TotalAmount,
		})
	}
	for _, r := range rows {
		exp := startOfDay(r.Expired)
		item := dto.ExpiringLotItem{
			StockID:  r.StockID.String(),
			DrugID:   r.DrugID.String(),
			DrugName: r.DrugName,
			Amount:   r.Amount,
			Expired:  exp.Format(dto.DateLayout),
			DaysLeft: int(exp.Sub(today).Hours() / 24),
		}
		if exp.Before(today) {
			resp.Expired = append(resp.Expired, item)
		} else {
			resp.Expiring = append(resp.Expiring, item)
		}
	}
	return resp, nil
}

func (s *notificationService) SendDigest(ctx context.Context, to string) error {
	if s.mailer == nil {
		return errors.New("no mailer configured")
	}
	summary, err := s.Summary(ctx, dto.NotificationQuery{})
	if err != nil {
		return err
	}
	report, err := s.reports.StockReport(ctx)
	if err != nil {
		return fmt.Errorf("render report: %w", err)
	}

	now := s.settings.Now()
	subject := fmt.Sprintf("Stock notifications %s", now.Format(dto.DateLayout))
	return s.mailer.Send(to, subject, digestBody(summary), infra.Attachment{
		Filename:    fmt.Sprintf("stock-report-%s.pdf", now.Format("20060102")),
		ContentType: "application/pdf",
		Data:        report,
	})
}

func digestBody(n *dto.NotificationResponse) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Low stock (below %d):\n", n.Threshold)
	if len(n.LowStock) == 0 {
		b.WriteString("  none\n")
	}
	for _, d := range n.LowStock {
		fmt.Fprintf(&b, "  - %s: %d %s\n", d.Name, d.TotalAmount, d.UnitType)
	}

	fmt.Fprintf(&b, "\nExpiring within %d days:\n", n.Days)
	if len(n.Expiring) == 0 {
		b.WriteString("  none\n")
	}
	for _, l := range n.Expiring {
		fmt.Fprintf(&b, "  - %s: %d left, expires %s (%d days)\n", l.DrugName, l.Amount, l.Expired, l.DaysLeft)
	}

	b.WriteString("\nExpired:\n")
	if len(n.Expired) == 0 {
		b.WriteString("  none\n")
	}
	for _, l := range n.Expired {
		fmt.Fprintf(&b, "  - %s: %d left, expired %s\n", l.DrugName, l.Amount, l.Expired)
	}
	return b.String()
}
