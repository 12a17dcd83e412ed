package services

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"helha-jobapp/internal/adapters/persistence/models"
	"helha-jobapp/internal/adapters/persistence/repositories"

	"github.com/robfig/cron/v3"
)

// DigestService mails each company a daily summary of the applications
// received on its offers during the previous day.
type DigestService struct {
	applicationRepo repositories.ApplicationRepository
	mailer          Mailer
	cron            *cron.Cron
	started         bool
}

// NewDigestService creates a new digest service
func NewDigestService(applicationRepo repositories.ApplicationRepository, mailer Mailer) *DigestService {
	return &DigestService{
		applicationRepo: applicationRepo,
		mailer:          mailer,
		cron:            cron.New(),
	}
}

// Start schedules the daily digest at 08:30. Without SMTP configured
// the digest could never be delivered, so nothing is scheduled.
func (s *DigestService) Start() error {
	if !s.mailer.IsEnabled() {
		log.Println("⚠️ SMTP not configured, daily digest disabled")
		return nil
	}

	_, err := s.cron.AddFunc("30 8 * * *", func() {
		if err := s.SendDailyDigest(context.Background()); err != nil {
			log.Printf("❌ Daily digest failed: %v", err)
		}
	})
	if err != nil {
		return err
	}

	s.cron.Start()
	s.started = true
	log.Println("✅ Daily application digest scheduled (08:30)")
	return nil
}

// Stop stops the scheduler and waits for a running job to finish
func (s *DigestService) Stop() {
	if !s.started {
		return
	}
	ctx := s.cron.Stop()
	<-ctx.Done()
	log.Println("🛑 Digest scheduler stopped")
}

// SendDailyDigest mails every company that received applications in the
// last 24 hours a summary of them
func (s *DigestService) SendDailyDigest(ctx context.Context) error {
	since := time.Now().Add(-24 * time.Hour)
	applications, err := s.applicationRepo.ListSince(ctx, since)
	if err != nil {
		return err
	}
	if len(applications) == 0 {
		log.Println("✉️ No applications in the last 24h, skipping digest")
		return nil
	}

	// Group by company email
	byCompany := make(map[string][]*models.Application)
	for _, application := range applications {
		if application.Offer == nil || application.Offer.CreatedBy == nil {
			continue
		}
		email := application.Offer.CreatedBy.Email
		byCompany[email] = append(byCompany[email], application)
	}

	for email, group := range byCompany {
		var b strings.Builder
		fmt.Fprintf(&b, "You received %d application(s) in the last 24 hours:\r\n\r\n", len(group))
		for _, application := range group {
			student := "A student"
			if application.Student != nil {
				student = fmt.Sprintf("%s %s", application.Student.FirstName, application.Student.LastName)
			}
			fmt.Fprintf(&b, "- %s applied to \"%s\" at %s\r\n",
				student, application.Offer.Title, application.AppliedAt.Format("15:04"))
		}

		if err := s.mailer.Send(email, "Daily application digest", b.String()); err != nil {
			log.Printf("❌ Failed to mail digest to %s: %v", email, err)
			continue
		}
		log.Printf("✉️ Digest sent to %s (%d applications)", email, len(group))
	}
	return nil
}
