package services

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"salonsync-backend/appstore"
	"salonsync-backend/docstore"
	"salonsync-backend/models"
)

// timeNowDate is today's month-day, for building dates that match the
// greetings scan.
func timeNowDate() string {
	return time.Now().Format("01-02")
}

type fakeSender struct {
	sent   []string // "to|body"
	failOn string   // recipient substring that fails
}

func (f *fakeSender) Send(to, body string) error {
	if f.failOn != "" && strings.Contains(to, f.failOn) {
		return errors.New("provider rejected")
	}
	f.sent = append(f.sent, to+"|"+body)
	return nil
}

func newOutreach(t *testing.T, sender MessageSender) (*appstore.Store, *docstore.BoltStore, *OutreachService) {
	t.Helper()
	dir := t.TempDir()
	ds, err := docstore.OpenBolt(filepath.Join(dir, "test.db"), models.CollectionMessageLogs)
	if err != nil {
		t.Fatalf("failed to open test store: %v", err)
	}
	t.Cleanup(func() { ds.Close() })
	app := appstore.New(ds)
	return app, ds, NewOutreachService(app, ds, sender)
}

func TestSendBulkPersonalizesAndLogs(t *testing.T) {
	sender := &fakeSender{}
	app, ds, svc := newOutreach(t, sender)

	app.SetCustomers([]models.Customer{
		{ID: "c1", Name: "Asha", Mobile: "9876543210"},
		{ID: "c2", Name: "Meera", Mobile: "9123456780"},
	})
	app.SetTemplates([]models.MessageTemplate{
		{ID: "t1", Name: "Grand Sale", Content: "Hi {name}! Sale on. - {sender}", Category: models.TemplateCategorySale},
	})

	sent, failed := svc.SendBulk(context.Background(), "t1", []string{"c1", "c2"})
	if sent != 2 || failed != 0 {
		t.Fatalf("expected 2 sent / 0 failed, got %d / %d", sent, failed)
	}
	if len(sender.sent) != 2 {
		t.Fatalf("expected 2 deliveries, got %d", len(sender.sent))
	}
	if !strings.Contains(sender.sent[0], "Hi Asha! Sale on. - Life Style Studio") {
		t.Fatalf("message not personalized: %q", sender.sent[0])
	}
	if !strings.HasPrefix(sender.sent[0], "whatsapp:+91") {
		t.Fatalf("expected whatsapp E.164 recipient, got %q", sender.sent[0])
	}

	logs := ds.GetAll(context.Background(), models.CollectionMessageLogs)
	if len(logs) != 2 {
		t.Fatalf("expected 2 message logs, got %d", len(logs))
	}
	if logs[0]["status"] != models.MessageStatusSent || logs[0]["kind"] != "bulk" {
		t.Fatalf("unexpected log document: %v", logs[0])
	}
}

func TestSendBulkCountsFailures(t *testing.T) {
	sender := &fakeSender{failOn: "9123456780"}
	app, ds, svc := newOutreach(t, sender)

	app.SetCustomers([]models.Customer{
		{ID: "c1", Name: "Asha", Mobile: "9876543210"},
		{ID: "c2", Name: "Meera", Mobile: "9123456780"},
	})
	app.SetTemplates([]models.MessageTemplate{
		{ID: "t1", Content: "Hi {name}", Category: models.TemplateCategorySale},
	})

	sent, failed := svc.SendBulk(context.Background(), "t1", []string{"c1", "c2", "ghost"})
	if sent != 1 || failed != 2 {
		t.Fatalf("expected 1 sent / 2 failed, got %d / %d", sent, failed)
	}

	// The provider failure is still recorded; the unknown customer is not.
	logs := ds.GetAll(context.Background(), models.CollectionMessageLogs)
	if len(logs) != 2 {
		t.Fatalf("expected 2 message logs, got %d", len(logs))
	}
	statuses := map[string]bool{}
	for _, entry := range logs {
		statuses[entry["status"].(string)] = true
	}
	if !statuses[models.MessageStatusSent] || !statuses[models.MessageStatusFailed] {
		t.Fatalf("expected one sent and one failed log, got %v", logs)
	}
}

func TestSendBulkUnknownTemplate(t *testing.T) {
	sender := &fakeSender{}
	app, _, svc := newOutreach(t, sender)
	app.SetCustomers([]models.Customer{{ID: "c1", Name: "Asha", Mobile: "9876543210"}})

	sent, failed := svc.SendBulk(context.Background(), "missing", []string{"c1"})
	if sent != 0 || failed != 1 {
		t.Fatalf("expected 0 sent / 1 failed, got %d / %d", sent, failed)
	}
	if len(sender.sent) != 0 {
		t.Fatalf("expected no deliveries, got %v", sender.sent)
	}
}

func TestDailyGreetingsMatchTodaysDates(t *testing.T) {
	sender := &fakeSender{}
	app, _, svc := newOutreach(t, sender)

	today := timeNowDate()
	notToday := time.Now().AddDate(0, 1, 1).Format("01-02")
	app.SetCustomers([]models.Customer{
		{ID: "c1", Name: "Asha", Mobile: "9876543210", Birthday: "1990-" + today},
		{ID: "c2", Name: "Meera", Mobile: "9123456780", Birthday: "1990-" + notToday, Anniversary: "2010-" + today},
		{ID: "c3", Name: "Ravi", Mobile: "9111111111"},
	})
	app.SetTemplates([]models.MessageTemplate{
		{ID: "t1", Content: "Hi {name}!", Category: models.TemplateCategoryGeneral},
	})

	svc.SendDailyGreetings()

	if len(sender.sent) != 2 {
		t.Fatalf("expected greetings for two customers, got %d: %v", len(sender.sent), sender.sent)
	}
}

func TestGreetingTemplatePrefersGeneral(t *testing.T) {
	sender := &fakeSender{}
	app, _, svc := newOutreach(t, sender)

	app.SetTemplates([]models.MessageTemplate{
		{ID: "t1", Content: "sale", Category: models.TemplateCategorySale},
		{ID: "t2", Content: "general", Category: models.TemplateCategoryGeneral},
	})
	template, ok := svc.greetingTemplate()
	if !ok || template.ID != "t2" {
		t.Fatalf("expected the general template, got %v %v", template, ok)
	}

	app.SetTemplates([]models.MessageTemplate{{ID: "t1", Content: "sale", Category: models.TemplateCategorySale}})
	template, ok = svc.greetingTemplate()
	if !ok || template.ID != "t1" {
		t.Fatalf("expected fallback to first template, got %v %v", template, ok)
	}

	app.SetTemplates(nil)
	if _, ok := svc.greetingTemplate(); ok {
		t.Fatal("expected no template")
	}
}
