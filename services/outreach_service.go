// services/outreach_service.go
package services

import (
	"context"
	"log"
	"os"
	"time"

	"salonsync-backend/appstore"
	"salonsync-backend/docstore"
	"salonsync-backend/models"
	"salonsync-backend/utils"

	"github.com/robfig/cron/v3"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
)

// MessageSender delivers one message to one recipient. The "to" value is
// either a whatsapp:-prefixed E.164 number or a bare phone number for SMS.
type MessageSender interface {
	Send(to, body string) error
}

// TwilioSender sends through the Twilio REST API.
type TwilioSender struct {
	client       *twilio.RestClient
	whatsappFrom string
	smsFrom      string
}

func NewTwilioSender() *TwilioSender {
	accountSid := os.Getenv("TWILIO_ACCOUNT_SID")
	authToken := os.Getenv("TWILIO_AUTH_TOKEN")

	return &TwilioSender{
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSid,
			Password: authToken,
		}),
		whatsappFrom: "whatsapp:" + os.Getenv("TWILIO_WHATSAPP_NUMBER"),
		smsFrom:      os.Getenv("TWILIO_PHONE_NUMBER"),
	}
}

func (t *TwilioSender) Send(to, body string) error {
	params := &twilioApi.CreateMessageParams{}
	params.SetTo(to)
	params.SetBody(body)
	if len(to) > 9 && to[:9] == "whatsapp:" {
		params.SetFrom(t.whatsappFrom)
	} else {
		params.SetFrom(t.smsFrom)
	}

	resp, err := t.client.Api.CreateMessage(params)
	if err != nil {
		return err
	}
	if resp.Sid != nil {
		log.Printf("outreach: message sent to %s, SID: %s", to, *resp.Sid)
	} else {
		log.Printf("outreach: message sent to %s, but no SID returned", to)
	}
	return nil
}

// OutreachService personalizes message templates and delivers them, both
// on the daily greetings schedule and on demand for bulk campaigns. Every
// attempt is recorded as a messageLogs document.
type OutreachService struct {
	app         *appstore.Store
	ds          docstore.Store
	sender      MessageSender
	senderName  string
	countryCode string
	cron        *cron.Cron
}

func NewOutreachService(app *appstore.Store, ds docstore.Store, sender MessageSender) *OutreachService {
	senderName := os.Getenv("SENDER_NAME")
	if senderName == "" {
		senderName = "Life Style Studio"
	}
	countryCode := os.Getenv("COUNTRY_CODE")
	if countryCode == "" {
		countryCode = "+91"
	}
	return &OutreachService{
		app:         app,
		ds:          ds,
		sender:      sender,
		senderName:  senderName,
		countryCode: countryCode,
	}
}

// StartScheduler runs the greetings job every day at 9 AM.
func (s *OutreachService) StartScheduler() {
	c := cron.New()
	c.AddFunc("0 9 * * *", s.SendDailyGreetings)
	c.Start()
	s.cron = c
	log.Println("Outreach scheduler started")
}

func (s *OutreachService) StopScheduler() {
	if s.cron != nil {
		s.cron.Stop()
	}
}

// SendDailyGreetings messages every customer whose birthday or
// anniversary falls on today's date.
func (s *OutreachService) SendDailyGreetings() {
	log.Println("Starting daily greetings processing...")
	now := time.Now()
	ctx := context.Background()

	for _, customer := range s.app.Customers() {
		if utils.SameMonthDay(customer.Birthday, now) {
			s.sendGreeting(ctx, customer, "birthday")
		}
		if utils.SameMonthDay(customer.Anniversary, now) {
			s.sendGreeting(ctx, customer, "anniversary")
		}
	}

	log.Println("Daily greetings processing completed")
}

func (s *OutreachService) sendGreeting(ctx context.Context, customer models.Customer, kind string) {
	template, ok := s.greetingTemplate()
	if !ok {
		log.Printf("outreach: no template available for %s greeting", kind)
		return
	}
	s.deliver(ctx, customer, template, kind)
}

// greetingTemplate prefers a general-category template and falls back to
// whatever exists.
func (s *OutreachService) greetingTemplate() (models.MessageTemplate, bool) {
	templates := s.app.Templates()
	for _, t := range templates {
		if t.Category == models.TemplateCategoryGeneral {
			return t, true
		}
	}
	if len(templates) > 0 {
		return templates[0], true
	}
	return models.MessageTemplate{}, false
}

// SendBulk delivers one template to a list of customers. A failing
// recipient never aborts the batch.
func (s *OutreachService) SendBulk(ctx context.Context, templateID string, customerIDs []string) (sent, failed int) {
	template, ok := s.app.TemplateByID(templateID)
	if !ok {
		log.Printf("outreach: bulk send with unknown template %s", templateID)
		return 0, len(customerIDs)
	}

	for _, id := range customerIDs {
		customer, ok := s.app.CustomerByID(id)
		if !ok {
			log.Printf("outreach: bulk send to unknown customer %s", id)
			failed++
			continue
		}
		if s.deliver(ctx, customer, template, "bulk") {
			sent++
		} else {
			failed++
		}
	}
	return sent, failed
}

func (s *OutreachService) deliver(ctx context.Context, customer models.Customer, template models.MessageTemplate, kind string) bool {
	message := utils.Personalize(template.Content, customer.Name, s.senderName)

	channel := models.ChannelSMS
	to := customer.Mobile
	if utils.ValidateMobile(customer.Mobile) || (len(customer.Mobile) > 0 && customer.Mobile[0] == '+') {
		to = "whatsapp:" + utils.WhatsAppNumber(customer.Mobile, s.countryCode)
		channel = models.ChannelWhatsApp
	}

	status := models.MessageStatusSent
	errorMsg := ""
	if err := s.sender.Send(to, message); err != nil {
		log.Printf("outreach: send to %s: %v", customer.Mobile, err)
		status = models.MessageStatusFailed
		errorMsg = err.Error()
	}

	entry := models.MessageLog{
		CustomerID:   customer.ID,
		CustomerName: customer.Name,
		TemplateID:   template.ID,
		Kind:         kind,
		Message:      message,
		Channel:      channel,
		Status:       status,
		ErrorMessage: errorMsg,
		SentAt:       time.Now().UTC().Format(time.RFC3339),
	}
	doc, err := docstore.Encode(entry)
	if err != nil {
		log.Printf("outreach: encode message log: %v", err)
		return status == models.MessageStatusSent
	}
	if _, err := s.ds.Add(ctx, models.CollectionMessageLogs, doc); err != nil {
		log.Printf("outreach: log message for customer %s: %v", customer.ID, err)
	}
	return status == models.MessageStatusSent
}
