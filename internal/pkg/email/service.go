package email

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"
)

// Config holds email service configuration
type Config struct {
	SendGrid SendGridConfig
	// BaseURL is the public frontend URL used when building links in emails
	BaseURL string
}

// Service handles email sending with templates.
// Sends are queued and processed by a background worker: delivery failures
// are logged and never propagate back to the caller.
type Service struct {
	client       *SendGridClient
	baseURL      string
	templates    map[string]*template.Template
	baseTemplate *template.Template
	queue        chan *QueuedEmail
	wg           sync.WaitGroup
}

// QueuedEmail represents an email in the send queue
type QueuedEmail struct {
	To           string
	ToName       string
	Subject      string
	TemplateName string
	Data         interface{}
}

// NewService creates email service
func NewService(cfg Config) *Service {
	s := &Service{
		client:    NewSendGridClient(cfg.SendGrid),
		baseURL:   strings.TrimRight(cfg.BaseURL, "/"),
		templates: make(map[string]*template.Template),
		queue:     make(chan *QueuedEmail, 100),
	}

	s.baseTemplate, _ = template.New("base").Parse(BaseTemplate)
	s.loadTemplates()

	s.wg.Add(1)
	go s.worker()

	return s
}

// loadTemplates loads all email templates
func (s *Service) loadTemplates() {
	templates := map[string]string{
		"welcome":             WelcomeTemplate,
		"submission_approved": SubmissionApprovedTemplate,
		"submission_rejected": SubmissionRejectedTemplate,
	}

	for name, content := range templates {
		tmpl, err := template.New(name).Parse(content)
		if err != nil {
			log.Error().Err(err).Str("template", name).Msg("Failed to parse email template")
			continue
		}
		s.templates[name] = tmpl
	}
}

// worker processes queued emails asynchronously
func (s *Service) worker() {
	defer s.wg.Done()

	for email := range s.queue {
		ctx := context.Background()
		if err := s.send(ctx, email); err != nil {
			log.Error().Err(err).
				Str("to", email.To).
				Str("template", email.TemplateName).
				Msg("Failed to send email")
		}
	}
}

// send renders and sends the email
func (s *Service) send(ctx context.Context, email *QueuedEmail) error {
	tmpl, ok := s.templates[email.TemplateName]
	if !ok {
		log.Warn().Str("template", email.TemplateName).Msg("Template not found")
		return nil
	}

	var contentBuf bytes.Buffer
	if err := tmpl.Execute(&contentBuf, email.Data); err != nil {
		return err
	}

	var htmlBuf bytes.Buffer
	if err := s.baseTemplate.Execute(&htmlBuf, map[string]interface{}{
		"Content": template.HTML(contentBuf.String()),
	}); err != nil {
		return err
	}

	return s.client.Send(ctx, &Message{
		To:          email.To,
		ToName:      email.ToName,
		Subject:     email.Subject,
		HTMLContent: htmlBuf.String(),
	})
}

// Queue adds an email to the async send queue
func (s *Service) Queue(to, toName, templateName, subject string, data interface{}) {
	select {
	case s.queue <- &QueuedEmail{
		To:           to,
		ToName:       toName,
		Subject:      subject,
		TemplateName: templateName,
		Data:         data,
	}:
	default:
		log.Warn().Str("to", to).Msg("Email queue full, dropping email")
	}
}

// Close stops the email worker
func (s *Service) Close() {
	close(s.queue)
	s.wg.Wait()
}

// --- Convenience methods for specific emails ---

// SendWelcome notifies a user their account was approved and bonus credited
func (s *Service) SendWelcome(to, userName string, bonusAmount float64) {
	s.Queue(to, userName, "welcome", "🎉 Welcome to PromoHive - Account Approved!", map[string]string{
		"UserName":    userName,
		"BonusAmount": fmt.Sprintf("%.2f", bonusAmount),
		"LoginURL":    s.baseURL + "/login",
	})
}

// SendSubmissionApproved notifies a user their task submission was approved
func (s *Service) SendSubmissionApproved(to, userName, taskTitle string, amount float64) {
	s.Queue(to, userName, "submission_approved", "✅ Task Approved - Reward Credited", map[string]string{
		"UserName":     userName,
		"TaskTitle":    taskTitle,
		"Amount":       fmt.Sprintf("%.2f", amount),
		"DashboardURL": s.baseURL + "/dashboard",
	})
}

// SendSubmissionRejected notifies a user their task submission was rejected
func (s *Service) SendSubmissionRejected(to, userName, taskTitle, notes string) {
	s.Queue(to, userName, "submission_rejected", "Task Submission Reviewed", map[string]string{
		"UserName":  userName,
		"TaskTitle": taskTitle,
		"Notes":     notes,
		"TasksURL":  s.baseURL + "/tasks",
	})
}
