package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/Vaujx/BAAC/internal/constant"
	"github.com/Vaujx/BAAC/internal/dto"
	"github.com/Vaujx/BAAC/internal/entity"
	"github.com/Vaujx/BAAC/internal/pkg/logger"
	"github.com/Vaujx/BAAC/internal/repository/contract"
	"github.com/Vaujx/BAAC/internal/repository/specification"
	"github.com/Vaujx/BAAC/internal/repository/unitofwork"
	"github.com/Vaujx/BAAC/pkg/conversation"
	"github.com/Vaujx/BAAC/pkg/intent"

	"github.com/google/uuid"
)

type fakeCreds struct{}

func (fakeCreds) AdminCredentials() (string, string) { return "EASTER", "EGG" }

type fakeGenerator struct {
	reply string
	err   error
}

func (g *fakeGenerator) Generate(_ context.Context, _ string) (string, error) {
	return g.reply, g.err
}

type capturingPublisher struct {
	events []dto.AnalyticsEventMessage
}

func (p *capturingPublisher) Publish(_ context.Context, payload []byte) error {
	var event dto.AnalyticsEventMessage
	if err := json.Unmarshal(payload, &event); err != nil {
		return err
	}
	p.events = append(p.events, event)
	return nil
}

func (p *capturingPublisher) byKind(kind string) []dto.AnalyticsEventMessage {
	var out []dto.AnalyticsEventMessage
	for _, e := range p.events {
		if e.Kind == kind {
			out = append(out, e)
		}
	}
	return out
}

type nopLogger struct{}

func (nopLogger) Debug(string, string, map[string]interface{}) {}
func (nopLogger) Info(string, string, map[string]interface{})  {}
func (nopLogger) Warn(string, string, map[string]interface{})  {}
func (nopLogger) Error(string, string, map[string]interface{}) {}
func (nopLogger) Sync() error                                  { return nil }
func (nopLogger) GetLogs(string, int, int) ([]logger.LogEntry, error) {
	return nil, nil
}

type fakeDocumentRepo struct {
	contract.DocumentRepository
	submission *entity.DocumentSubmission
}

func (r *fakeDocumentRepo) FindOne(_ context.Context, _ ...specification.Specification) (*entity.DocumentSubmission, error) {
	return r.submission, nil
}

type fakeUow struct {
	unitofwork.UnitOfWork
	documents contract.DocumentRepository
}

func (u *fakeUow) DocumentRepository() contract.DocumentRepository { return u.documents }

type fakeFactory struct {
	uow unitofwork.UnitOfWork
}

func (f *fakeFactory) NewUnitOfWork(_ context.Context) unitofwork.UnitOfWork { return f.uow }

func newTestService(gen *fakeGenerator, docRepo contract.DocumentRepository) (IChatService, *capturingPublisher, conversation.Store) {
	publisher := &capturingPublisher{}
	store := conversation.NewMemoryStore()
	svc := NewChatService(
		&fakeFactory{uow: &fakeUow{documents: docRepo}},
		intent.NewClassifier(fakeCreds{}),
		gen,
		store,
		publisher,
		nopLogger{},
	)
	return svc, publisher, store
}

func TestSendMessageEmptyPrompt(t *testing.T) {
	svc, _, _ := newTestService(&fakeGenerator{}, &fakeDocumentRepo{})

	_, err := svc.SendMessage(context.Background(), "s1", nil, &dto.GetResponseRequest{Prompt: "   "})
	if !errors.Is(err, ErrEmptyPrompt) {
		t.Fatalf("err = %v, want ErrEmptyPrompt", err)
	}
}

func TestSendMessageAdminProbe(t *testing.T) {
	svc, publisher, _ := newTestService(&fakeGenerator{}, &fakeDocumentRepo{})

	resp, err := svc.SendMessage(context.Background(), "s1", nil, &dto.GetResponseRequest{Prompt: "EASTER EGG"})
	if err != nil {
		t.Fatal(err)
	}
	if resp.Response != constant.AdminAuthenticatedSentinel {
		t.Errorf("Response = %q, want sentinel", resp.Response)
	}
	if !resp.AdminAuthenticated {
		t.Error("AdminAuthenticated not set")
	}

	logs := publisher.byKind(dto.AnalyticsEventConversation)
	if len(logs) != 1 {
		t.Fatalf("conversation events = %d, want 1", len(logs))
	}
	if logs[0].AiResponse != constant.AdminAccessAcknowledgement {
		t.Errorf("logged response = %q, want fixed acknowledgement", logs[0].AiResponse)
	}
	if strings.Contains(logs[0].AiResponse, "EGG") {
		t.Error("credential pair leaked into the conversation log")
	}
}

func TestSendMessageReferenceNotFound(t *testing.T) {
	svc, _, _ := newTestService(&fakeGenerator{}, &fakeDocumentRepo{submission: nil})

	resp, err := svc.SendMessage(context.Background(), "s1", nil, &dto.GetResponseRequest{
		Prompt: "What is the reference REF-42",
	})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(resp.Response, "could not find") {
		t.Errorf("Response = %q, want not-found template", resp.Response)
	}
}

func TestSendMessageReferenceApproved(t *testing.T) {
	submission := &entity.DocumentSubmission{
		Id:            42,
		DocumentTypes: []string{"barangay clearance"},
		Status:        entity.DocumentStatusApproved,
	}
	svc, _, _ := newTestService(&fakeGenerator{}, &fakeDocumentRepo{submission: submission})

	resp, err := svc.SendMessage(context.Background(), "s1", nil, &dto.GetResponseRequest{
		Prompt: "status of ref-42 please",
	})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(resp.Response, "REF-42") {
		t.Errorf("Response = %q, want the reference echoed", resp.Response)
	}
	if !strings.Contains(resp.Response, "Approved") {
		t.Errorf("Response = %q, want Approved status", resp.Response)
	}
	if !strings.Contains(resp.Response, "barangay clearance") {
		t.Errorf("Response = %q, want document type named", resp.Response)
	}
}

func TestSendMessageDirectRequestUnauthenticated(t *testing.T) {
	svc, publisher, _ := newTestService(&fakeGenerator{}, &fakeDocumentRepo{})

	resp, err := svc.SendMessage(context.Background(), "s1", nil, &dto.GetResponseRequest{
		Prompt:                  "I want to get a barangay clearance",
		IsDirectDocumentRequest: true,
		ContainsDocumentType:    true,
	})
	if err != nil {
		t.Fatal(err)
	}
	if !resp.SuggestAuth {
		t.Error("SuggestAuth not set for anonymous direct request")
	}
	if resp.ShowFormButton {
		t.Error("ShowFormButton set for anonymous caller")
	}
	if resp.DocumentType != "barangay clearance" {
		t.Errorf("DocumentType = %q, want barangay clearance", resp.DocumentType)
	}
	if got := publisher.byKind(dto.AnalyticsEventDocumentRequest); len(got) != 0 {
		t.Errorf("document stats logged for unauthenticated request: %d events", len(got))
	}
}

func TestSendMessageDirectRequestAuthenticated(t *testing.T) {
	svc, publisher, _ := newTestService(&fakeGenerator{}, &fakeDocumentRepo{})
	userID := uuid.New()

	resp, err := svc.SendMessage(context.Background(), "s1", &userID, &dto.GetResponseRequest{
		Prompt:                  "I want to get a barangay clearance",
		IsDirectDocumentRequest: true,
		ContainsDocumentType:    true,
	})
	if err != nil {
		t.Fatal(err)
	}
	if !resp.ShowFormButton {
		t.Error("ShowFormButton not set for authenticated direct request")
	}
	if resp.FormType != "barangay clearance" {
		t.Errorf("FormType = %q, want barangay clearance", resp.FormType)
	}

	stats := publisher.byKind(dto.AnalyticsEventDocumentRequest)
	if len(stats) != 1 {
		t.Fatalf("document stats events = %d, want 1", len(stats))
	}
	if stats[0].DocumentType != "barangay clearance" {
		t.Errorf("stat document type = %q", stats[0].DocumentType)
	}
}

func TestSendMessageFreeformAppendsContext(t *testing.T) {
	gen := &fakeGenerator{reply: "The office opens at 8 AM."}
	svc, publisher, store := newTestService(gen, &fakeDocumentRepo{})

	resp, err := svc.SendMessage(context.Background(), "s1", nil, &dto.GetResponseRequest{
		Prompt: "what time does the office open",
	})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(resp.Response, gen.reply) {
		t.Errorf("Response = %q, want generated text embedded", resp.Response)
	}

	history, err := store.Load(context.Background(), "s1")
	if err != nil {
		t.Fatal(err)
	}
	if history.Len() != 1 {
		t.Fatalf("context Len = %d, want 1", history.Len())
	}

	if logs := publisher.byKind(dto.AnalyticsEventConversation); len(logs) != 1 {
		t.Errorf("conversation events = %d, want 1", len(logs))
	}
}

func TestSendMessageFreeformUpstreamFailure(t *testing.T) {
	gen := &fakeGenerator{err: errors.New("upstream down")}
	svc, _, store := newTestService(gen, &fakeDocumentRepo{})

	_, err := svc.SendMessage(context.Background(), "s1", nil, &dto.GetResponseRequest{
		Prompt: "what time does the office open",
	})
	if !errors.Is(err, ErrGenerateReply) {
		t.Fatalf("err = %v, want ErrGenerateReply", err)
	}

	// No partial exchange may survive a failed completion.
	history, _ := store.Load(context.Background(), "s1")
	if history.Len() != 0 {
		t.Errorf("context Len = %d after failure, want 0", history.Len())
	}
}

func TestSendMessageFreeformSuggestsForm(t *testing.T) {
	gen := &fakeGenerator{reply: "You can get a barangay clearance at the barangay hall."}
	svc, _, _ := newTestService(gen, &fakeDocumentRepo{})
	userID := uuid.New()

	resp, err := svc.SendMessage(context.Background(), "s1", &userID, &dto.GetResponseRequest{
		Prompt:                  "how do i apply for a barangay clearance",
		ContainsDocumentType:    true,
		StartsWithInterrogative: true,
	})
	if err != nil {
		t.Fatal(err)
	}
	if !resp.SuggestForm {
		t.Error("SuggestForm not set for authenticated document-flavored reply")
	}
	if resp.FormType != "barangay clearance" {
		t.Errorf("FormType = %q", resp.FormType)
	}
}

func TestClearContext(t *testing.T) {
	svc, _, store := newTestService(&fakeGenerator{reply: "ok"}, &fakeDocumentRepo{})

	if _, err := svc.SendMessage(context.Background(), "s1", nil, &dto.GetResponseRequest{Prompt: "what time is it"}); err != nil {
		t.Fatal(err)
	}
	if err := svc.ClearContext(context.Background(), "s1"); err != nil {
		t.Fatal(err)
	}

	history, _ := store.Load(context.Background(), "s1")
	if history.Len() != 0 {
		t.Errorf("context Len = %d after clear, want 0", history.Len())
	}
}

func TestLogVisit(t *testing.T) {
	svc, publisher, _ := newTestService(&fakeGenerator{}, &fakeDocumentRepo{})

	if err := svc.LogVisit(context.Background(), "s1"); err != nil {
		t.Fatal(err)
	}
	if got := publisher.byKind(dto.AnalyticsEventWebsiteVisit); len(got) != 1 {
		t.Errorf("visit events = %d, want 1", len(got))
	}
}
