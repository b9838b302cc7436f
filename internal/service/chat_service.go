package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Vaujx/BAAC/internal/constant"
	"github.com/Vaujx/BAAC/internal/dto"
	"github.com/Vaujx/BAAC/internal/entity"
	"github.com/Vaujx/BAAC/internal/pkg/logger"
	"github.com/Vaujx/BAAC/internal/repository/specification"
	"github.com/Vaujx/BAAC/internal/repository/unitofwork"
	"github.com/Vaujx/BAAC/pkg/barangay"
	"github.com/Vaujx/BAAC/pkg/chatbot"
	"github.com/Vaujx/BAAC/pkg/conversation"
	"github.com/Vaujx/BAAC/pkg/intent"
	"github.com/Vaujx/BAAC/pkg/markup"

	"github.com/google/uuid"
)

var (
	ErrEmptyPrompt   = errors.New("prompt is required")
	ErrChatNotFound  = errors.New("chat not found")
	ErrGenerateReply = errors.New("failed to generate a response")
)

// GeneralDocumentType is the stats bucket for document inquiries that never
// named a specific type.
const GeneralDocumentType = "General Document"

type IChatService interface {
	SendMessage(ctx context.Context, sessionID string, userID *uuid.UUID, req *dto.GetResponseRequest) (*dto.GetResponseResponse, error)
	ClearContext(ctx context.Context, sessionID string) error
	LogVisit(ctx context.Context, sessionID string) error

	CreateChat(ctx context.Context, userID uuid.UUID, title string) (*dto.CreateChatResponse, error)
	ListChats(ctx context.Context, userID uuid.UUID) ([]dto.ChatListItem, error)
	ChatHistory(ctx context.Context, userID, chatID uuid.UUID) ([]dto.ChatHistoryItem, error)
	DeleteChat(ctx context.Context, userID, chatID uuid.UUID) error
}

type chatService struct {
	uowFactory   unitofwork.RepositoryFactory
	classifier   *intent.Classifier
	generator    chatbot.Generator
	sessionStore conversation.Store
	publisher    IPublisherService
	logger       logger.ILogger
}

func NewChatService(
	uowFactory unitofwork.RepositoryFactory,
	classifier *intent.Classifier,
	generator chatbot.Generator,
	sessionStore conversation.Store,
	publisher IPublisherService,
	sysLogger logger.ILogger,
) IChatService {
	return &chatService{
		uowFactory:   uowFactory,
		classifier:   classifier,
		generator:    generator,
		sessionStore: sessionStore,
		publisher:    publisher,
		logger:       sysLogger,
	}
}

func (s *chatService) SendMessage(ctx context.Context, sessionID string, userID *uuid.UUID, req *dto.GetResponseRequest) (*dto.GetResponseResponse, error) {
	prompt := strings.TrimSpace(req.Prompt)
	if prompt == "" {
		return nil, ErrEmptyPrompt
	}

	hints := intent.Hints{
		IsDirectDocumentRequest: req.IsDirectDocumentRequest,
		ContainsDocumentType:    req.ContainsDocumentType,
		ContainsDocumentWord:    req.ContainsDocumentWord,
		ContainsInterrogative:   req.ContainsInterrogative,
		StartsWithInterrogative: req.StartsWithInterrogative,
		RequestedDocType:        req.RequestedDocType,
	}

	result := s.classifier.Classify(prompt, hints)

	var (
		resp *dto.GetResponseResponse
		err  error
	)

	switch result.Kind {
	case intent.KindAdminAuth:
		// The credential pair is never echoed back or stored verbatim as a
		// reply; the log records the fixed acknowledgement instead.
		s.logConversation(ctx, prompt, constant.AdminAccessAcknowledgement, userID)
		return &dto.GetResponseResponse{
			Response:           constant.AdminAuthenticatedSentinel,
			AdminAuthenticated: true,
		}, nil

	case intent.KindKnowledge:
		resp = s.respondKnowledge(result.Sections)

	case intent.KindPlace:
		resp = s.respondPlace(result)

	case intent.KindReference:
		resp = s.respondReference(ctx, result)

	case intent.KindDocumentInquiry:
		resp, err = s.respondDocumentInquiry(ctx)
		if err != nil {
			return nil, err
		}
		s.logDocumentRequest(ctx, GeneralDocumentType)

	case intent.KindDocumentRequest:
		resp = s.respondDocumentRequest(ctx, result.DocumentType, userID)

	default:
		resp, err = s.respondFreeform(ctx, sessionID, userID, prompt, hints, req.ChatId)
		if err != nil {
			return nil, err
		}
	}

	s.appendContext(ctx, sessionID, userID, req.ChatId, prompt, resp.Response)
	s.logConversation(ctx, prompt, resp.Response, userID)

	return resp, nil
}

func (s *chatService) respondKnowledge(sections []barangay.Section) *dto.GetResponseResponse {
	var b strings.Builder
	b.WriteString(`<div class="ai-response" style="text-align: justify; line-height: 1.6;">`)
	for _, section := range sections {
		b.WriteString("<h4>")
		b.WriteString(section.Heading)
		b.WriteString("</h4>")
		b.WriteString(markup.FormatBullets(section.Body))
	}
	b.WriteString("</div>")
	return &dto.GetResponseResponse{Response: b.String()}
}

func (s *chatService) respondPlace(result intent.Result) *dto.GetResponseResponse {
	if result.AllPlaces {
		var b strings.Builder
		var images []string
		b.WriteString(`<div class="ai-response"><p>Here are some notable places in Barangay Amungan:</p><ul>`)
		for _, place := range barangay.AllPlaces() {
			b.WriteString("<li><strong>")
			b.WriteString(place.Name)
			b.WriteString("</strong>: ")
			b.WriteString(place.Description)
			b.WriteString("</li>")
			images = append(images, place.RandomImages(1)...)
		}
		b.WriteString("</ul></div>")
		return &dto.GetResponseResponse{Response: b.String(), Images: images}
	}

	place := result.Place
	body := fmt.Sprintf(`<div class="ai-response"><p><strong>%s</strong></p><p>%s</p></div>`,
		place.Name, place.Description)
	return &dto.GetResponseResponse{
		Response: body,
		Images:   place.RandomImages(2),
	}
}

func (s *chatService) respondReference(ctx context.Context, result intent.Result) *dto.GetResponseResponse {
	token := result.ReferenceToken
	if token == "" {
		token = "(none)"
	}

	if !result.ReferenceValid {
		return &dto.GetResponseResponse{
			Response: fmt.Sprintf(constant.ReferenceNotFoundTemplate, token),
		}
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	submission, err := uow.DocumentRepository().FindOne(ctx, specification.ByNumericID{ID: result.ReferenceID})
	if err != nil {
		s.logger.Error("chat", "reference lookup failed", map[string]interface{}{
			"reference_id": result.ReferenceID,
			"error":        err.Error(),
		})
		submission = nil
	}
	if submission == nil {
		return &dto.GetResponseResponse{
			Response: fmt.Sprintf(constant.ReferenceNotFoundTemplate, token),
		}
	}

	reference := intent.FormatReference(submission.Id)
	docTypes := strings.Join(submission.DocumentTypes, ", ")

	var body string
	switch submission.Status {
	case entity.DocumentStatusApproved:
		body = fmt.Sprintf(constant.ReferenceApprovedTemplate, reference, docTypes)
	case entity.DocumentStatusRejected:
		body = fmt.Sprintf(constant.ReferenceRejectedTemplate, reference, docTypes)
	case entity.DocumentStatusClaimed:
		pickup := "an earlier date"
		if submission.PickupDate != nil {
			pickup = submission.PickupDate.Format("January 2, 2006")
		}
		body = fmt.Sprintf(constant.ReferenceClaimedTemplate, reference, docTypes, pickup)
	default:
		body = fmt.Sprintf(constant.ReferencePendingTemplate, reference, docTypes, string(submission.Status))
	}

	return &dto.GetResponseResponse{Response: body}
}

func (s *chatService) respondDocumentInquiry(ctx context.Context) (*dto.GetResponseResponse, error) {
	prompt := constant.SystemPromptHeader + "\n\n" +
		"The citizen is asking about barangay documents in general. List the available document types (" +
		strings.Join(barangay.AvailableDocuments, ", ") +
		") and briefly explain how to request one through this assistant.\nBAAC: "

	text, err := s.generator.Generate(ctx, prompt)
	if err != nil {
		// The canned inquiry reply still serves the citizen when the model
		// is unreachable.
		s.logger.Warn("chat", "inquiry draft failed, using canned reply", map[string]interface{}{
			"error": err.Error(),
		})
		return &dto.GetResponseResponse{
			Response:            constant.DocumentInquiryResponse,
			SuggestAllDocuments: true,
		}, nil
	}

	return &dto.GetResponseResponse{
		Response:            fmt.Sprintf(constant.FreeformResponseWrapper, markup.FormatBullets(text)),
		SuggestAllDocuments: true,
	}, nil
}

func (s *chatService) respondDocumentRequest(ctx context.Context, docType string, userID *uuid.UUID) *dto.GetResponseResponse {
	if userID == nil {
		// No stats row for unauthenticated attempts.
		return &dto.GetResponseResponse{
			Response:     fmt.Sprintf(constant.AuthRequiredResponse, docType),
			SuggestAuth:  true,
			DocumentType: docType,
		}
	}

	s.logDocumentRequest(ctx, docType)
	return &dto.GetResponseResponse{
		Response:       fmt.Sprintf(constant.FormCTAResponse, docType),
		ShowFormButton: true,
		FormType:       docType,
	}
}

func (s *chatService) respondFreeform(ctx context.Context, sessionID string, userID *uuid.UUID, prompt string, hints intent.Hints, chatID *uuid.UUID) (*dto.GetResponseResponse, error) {
	history := s.loadContext(ctx, sessionID, userID, chatID)

	var b strings.Builder
	b.WriteString(constant.SystemPromptHeader)
	b.WriteString("\n\n")
	b.WriteString(barangay.OfficialsInfo)
	b.WriteString("\n\n")
	b.WriteString(barangay.PopulationInfo)
	b.WriteString("\n\n")
	for _, line := range history.PromptLines() {
		b.WriteString(line)
		b.WriteString("\n")
	}
	b.WriteString("User: ")
	b.WriteString(prompt)
	b.WriteString("\nBAAC: ")

	text, err := s.generator.Generate(ctx, b.String())
	if err != nil {
		s.logger.Error("chat", "completion failed", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, ErrGenerateReply
	}

	resp := &dto.GetResponseResponse{
		Response: fmt.Sprintf(constant.FreeformResponseWrapper, markup.FormatBullets(text)),
	}

	// A document-flavored freeform answer may still deserve a nudge toward
	// the request form, but only when the hint named a type and this was not
	// already routed as a direct request.
	if hints.ContainsDocumentType && !hints.IsDirectDocumentRequest && mentionsDocuments(text) {
		docType := hints.RequestedDocType
		if docType == "" {
			docType = barangay.DetectDocumentType(prompt)
		}
		if docType != "" {
			resp.DocumentType = docType
			if userID != nil {
				resp.SuggestForm = true
				resp.FormType = docType
			} else {
				resp.SuggestAuth = true
			}
		}
	}

	return resp, nil
}

var documentVocabulary = []string{"document", "clearance", "certificate", "indigency", "residency", "request", "barangay hall"}

func mentionsDocuments(text string) bool {
	lower := strings.ToLower(text)
	for _, word := range documentVocabulary {
		if strings.Contains(lower, word) {
			return true
		}
	}
	return false
}

// loadContext picks exactly one context source per turn: the persisted chat
// when an authenticated caller names one they own, else the session store.
// Every failure degrades to an empty context.
func (s *chatService) loadContext(ctx context.Context, sessionID string, userID *uuid.UUID, chatID *uuid.UUID) *conversation.Context {
	if userID != nil && chatID != nil {
		uow := s.uowFactory.NewUnitOfWork(ctx)
		chat, err := uow.ChatRepository().FindOne(ctx,
			specification.ByID{ID: *chatID},
			specification.UserOwnedBy{UserID: *userID},
			specification.ActiveOnly{},
		)
		if err != nil || chat == nil {
			s.logger.Warn("chat", "context chat not accessible", map[string]interface{}{
				"chat_id": chatID.String(),
			})
			return conversation.NewContext()
		}

		messages, err := uow.ChatMessageRepository().FindAll(ctx,
			specification.ByChatID{ChatID: chat.Id},
			specification.OrderBy{Field: "created_at"},
		)
		if err != nil {
			return conversation.NewContext()
		}
		return restoreFromMessages(messages)
	}

	history, err := s.sessionStore.Load(ctx, sessionID)
	if err != nil {
		return conversation.NewContext()
	}
	return history
}

func restoreFromMessages(messages []*entity.ChatMessage) *conversation.Context {
	history := conversation.NewContext()
	var pendingUser string
	for _, msg := range messages {
		switch msg.Role {
		case entity.ChatMessageRoleUser:
			pendingUser = msg.Content
		case entity.ChatMessageRoleAssistant:
			history.Append(pendingUser, msg.Content)
			pendingUser = ""
		}
	}
	return history
}

// appendContext records the finished exchange. Ownership failures and store
// errors are logged and swallowed; the reply has already been built.
func (s *chatService) appendContext(ctx context.Context, sessionID string, userID *uuid.UUID, chatID *uuid.UUID, userMsg, assistantMsg string) {
	if userID != nil && chatID != nil {
		uow := s.uowFactory.NewUnitOfWork(ctx)
		chat, err := uow.ChatRepository().FindOne(ctx,
			specification.ByID{ID: *chatID},
			specification.UserOwnedBy{UserID: *userID},
			specification.ActiveOnly{},
		)
		if err != nil || chat == nil {
			s.logger.Warn("chat", "append to inaccessible chat skipped", map[string]interface{}{
				"chat_id": chatID.String(),
			})
			return
		}

		pair := []*entity.ChatMessage{
			{Id: uuid.New(), ChatId: chat.Id, Role: entity.ChatMessageRoleUser, Content: userMsg, CreatedAt: time.Now()},
			{Id: uuid.New(), ChatId: chat.Id, Role: entity.ChatMessageRoleAssistant, Content: assistantMsg, CreatedAt: time.Now()},
		}
		for _, msg := range pair {
			if err := uow.ChatMessageRepository().Create(ctx, msg); err != nil {
				s.logger.Error("chat", "failed to append chat message", map[string]interface{}{
					"chat_id": chat.Id.String(),
					"error":   err.Error(),
				})
				return
			}
		}

		now := time.Now()
		chat.UpdatedAt = &now
		if err := uow.ChatRepository().Update(ctx, chat); err != nil {
			s.logger.Warn("chat", "failed to touch chat timestamp", map[string]interface{}{
				"chat_id": chat.Id.String(),
			})
		}
		return
	}

	if err := s.sessionStore.Append(ctx, sessionID, userMsg, assistantMsg); err != nil {
		s.logger.Warn("chat", "failed to append session context", map[string]interface{}{
			"session_id": sessionID,
		})
	}
}

func (s *chatService) ClearContext(ctx context.Context, sessionID string) error {
	return s.sessionStore.Clear(ctx, sessionID)
}

// LogVisit records a landing page load and resets the visitor's session
// context, matching the behavior of reloading the page.
func (s *chatService) LogVisit(ctx context.Context, sessionID string) error {
	if err := s.sessionStore.Clear(ctx, sessionID); err != nil {
		s.logger.Warn("chat", "failed to reset session context on visit", map[string]interface{}{
			"session_id": sessionID,
		})
	}
	return s.publishEvent(ctx, dto.AnalyticsEventMessage{Kind: dto.AnalyticsEventWebsiteVisit})
}

func (s *chatService) CreateChat(ctx context.Context, userID uuid.UUID, title string) (*dto.CreateChatResponse, error) {
	if strings.TrimSpace(title) == "" {
		title = "New Conversation"
	}
	chat := &entity.Chat{
		Id:        uuid.New(),
		UserId:    userID,
		Title:     title,
		IsActive:  true,
		CreatedAt: time.Now(),
	}
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.ChatRepository().Create(ctx, chat); err != nil {
		return nil, err
	}
	return &dto.CreateChatResponse{Id: chat.Id}, nil
}

func (s *chatService) ListChats(ctx context.Context, userID uuid.UUID) ([]dto.ChatListItem, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	chats, err := uow.ChatRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userID},
		specification.ActiveOnly{},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	items := make([]dto.ChatListItem, 0, len(chats))
	for _, chat := range chats {
		items = append(items, dto.ChatListItem{
			Id:        chat.Id,
			Title:     chat.Title,
			CreatedAt: chat.CreatedAt,
			UpdatedAt: chat.UpdatedAt,
		})
	}
	return items, nil
}

func (s *chatService) ChatHistory(ctx context.Context, userID, chatID uuid.UUID) ([]dto.ChatHistoryItem, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	chat, err := uow.ChatRepository().FindOne(ctx,
		specification.ByID{ID: chatID},
		specification.UserOwnedBy{UserID: userID},
		specification.ActiveOnly{},
	)
	if err != nil {
		return nil, err
	}
	if chat == nil {
		return nil, ErrChatNotFound
	}

	messages, err := uow.ChatMessageRepository().FindAll(ctx,
		specification.ByChatID{ChatID: chat.Id},
		specification.OrderBy{Field: "created_at"},
	)
	if err != nil {
		return nil, err
	}

	items := make([]dto.ChatHistoryItem, 0, len(messages))
	for _, msg := range messages {
		items = append(items, dto.ChatHistoryItem{
			Id:        msg.Id,
			Role:      msg.Role,
			Content:   msg.Content,
			CreatedAt: msg.CreatedAt,
		})
	}
	return items, nil
}

func (s *chatService) DeleteChat(ctx context.Context, userID, chatID uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	chat, err := uow.ChatRepository().FindOne(ctx,
		specification.ByID{ID: chatID},
		specification.UserOwnedBy{UserID: userID},
		specification.ActiveOnly{},
	)
	if err != nil {
		return err
	}
	if chat == nil {
		return ErrChatNotFound
	}
	return uow.ChatRepository().SoftDelete(ctx, chat.Id)
}

func (s *chatService) logConversation(ctx context.Context, userInput, aiResponse string, userID *uuid.UUID) {
	err := s.publishEvent(ctx, dto.AnalyticsEventMessage{
		Kind:       dto.AnalyticsEventConversation,
		UserInput:  userInput,
		AiResponse: aiResponse,
		UserId:     userID,
	})
	if err != nil {
		s.logger.Warn("chat", "failed to publish conversation log", map[string]interface{}{
			"error": err.Error(),
		})
	}
}

func (s *chatService) logDocumentRequest(ctx context.Context, docType string) {
	err := s.publishEvent(ctx, dto.AnalyticsEventMessage{
		Kind:         dto.AnalyticsEventDocumentRequest,
		DocumentType: docType,
	})
	if err != nil {
		s.logger.Warn("chat", "failed to publish document request stat", map[string]interface{}{
			"error": err.Error(),
		})
	}
}

func (s *chatService) publishEvent(ctx context.Context, event dto.AnalyticsEventMessage) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return s.publisher.Publish(ctx, payload)
}
