package line

import (
	"github.com/line/line-bot-sdk-go/v7/linebot"
)

// Event types we forward to the worker. Everything else (unfollow, join,
// beacon...) needs no reply and is dropped at ingest.
const (
	EventMessage = "message"
	EventFollow  = "follow"
)

// WebhookMessage is the reduced webhook event pushed through SQS. Only the
// fields the reply worker needs survive the reduction.
type WebhookMessage struct {
	EventType  string `json:"event_type"`
	ReplyToken string `json:"reply_token"`
	UserID     string `json:"user_id,omitempty"`
	Text       string `json:"text,omitempty"`
}

// ReduceEvents filters a verified webhook batch down to the replyable events.
// Non-text messages and events without a reply token are dropped.
func ReduceEvents(events []*linebot.Event) []WebhookMessage {
	var out []WebhookMessage
	for _, ev := range events {
		if ev.ReplyToken == "" {
			continue
		}

		var userID string
		if ev.Source != nil {
			userID = ev.Source.UserID
		}

		switch ev.Type {
		case linebot.EventTypeMessage:
			text, ok := ev.Message.(*linebot.TextMessage)
			if !ok {
				continue
			}
			out = append(out, WebhookMessage{
				EventType:  EventMessage,
				ReplyToken: ev.ReplyToken,
				UserID:     userID,
				Text:       text.Text,
			})
		case linebot.EventTypeFollow:
			out = append(out, WebhookMessage{
				EventType:  EventFollow,
				ReplyToken: ev.ReplyToken,
				UserID:     userID,
			})
		}
	}
	return out
}
