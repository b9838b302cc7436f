package service

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/Vaujx/BAAC/internal/dto"
	"github.com/Vaujx/BAAC/internal/entity"
	"github.com/Vaujx/BAAC/internal/repository/unitofwork"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

type consumerService struct {
	pubSub     *gochannel.GoChannel
	topicName  string
	uowFactory unitofwork.RepositoryFactory
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	uowFactory unitofwork.RepositoryFactory,
) IConsumerService {
	return &consumerService{
		pubSub:     pubSub,
		topicName:  topicName,
		uowFactory: uowFactory,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.AnalyticsEventMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		log.Printf("[ERROR] Failed to unmarshal analytics event: %v", err)
		msg.Ack() // invalid payloads are never retriable
		return
	}

	uow := cs.uowFactory.NewUnitOfWork(ctx)
	analytics := uow.AnalyticsRepository()

	var err error
	switch payload.Kind {
	case dto.AnalyticsEventConversation:
		err = analytics.InsertConversationLog(ctx, &entity.ConversationLog{
			UserInput:  payload.UserInput,
			AiResponse: payload.AiResponse,
			UserId:     payload.UserId,
		})
	case dto.AnalyticsEventWebsiteVisit:
		err = analytics.IncrementWebsiteVisit(ctx, time.Now())
	case dto.AnalyticsEventDocumentRequest:
		err = analytics.IncrementDocumentRequest(ctx, time.Now(), payload.DocumentType)
	default:
		log.Printf("[WARN] Unknown analytics event kind %q", payload.Kind)
		msg.Ack()
		return
	}

	if err != nil {
		log.Printf("[ERROR] Failed to apply analytics event %q: %v", payload.Kind, err)
		msg.Nack()
		return
	}

	msg.Ack()
}
