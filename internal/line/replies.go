package line

import (
	"context"
	"fmt"

	"github.com/line/line-bot-sdk-go/v7/linebot"
)

// Replier sends canned replies for webhook events. The keyword table mirrors
// what the service bot answers in chat; anything unrecognized gets the echo
// fallback pointing at the mini-app.
type Replier struct {
	client  *linebot.Client
	liffURL string
}

func NewReplier(client *linebot.Client, liffURL string) *Replier {
	return &Replier{client: client, liffURL: liffURL}
}

// Reply answers one reduced webhook event.
func (r *Replier) Reply(ctx context.Context, msg WebhookMessage) error {
	reply := BuildReply(r.liffURL, msg)
	if reply == nil {
		return nil
	}
	if _, err := r.client.ReplyMessage(msg.ReplyToken, reply).WithContext(ctx).Do(); err != nil {
		return fmt.Errorf("reply message: %w", err)
	}
	return nil
}

// BuildReply maps a webhook event to its canned reply. Returns nil when no
// reply is warranted. Split from Reply so the table is testable without a
// Messaging API client.
func BuildReply(liffURL string, msg WebhookMessage) linebot.SendingMessage {
	openApp := linebot.NewQuickReplyButton("", linebot.NewURIAction("開啟應用", liffURL))
	menu := linebot.NewQuickReplyButton("", linebot.NewMessageAction("選單", "選單"))

	switch msg.EventType {
	case EventFollow:
		return linebot.NewTextMessage(
			"感謝您加入我們！\n\n點擊下方按鈕開啟應用，或輸入「選單」查看更多功能。",
		).WithQuickReplies(linebot.NewQuickReplyItems(
			openApp,
			linebot.NewQuickReplyButton("", linebot.NewMessageAction("功能介紹", "功能介紹")),
		))

	case EventMessage:
		switch msg.Text {
		case "你好", "hello":
			return linebot.NewTextMessage(
				"您好！歡迎使用我們的服務！\n\n點擊下方按鈕開啟應用，或輸入「選單」查看更多功能。",
			).WithQuickReplies(linebot.NewQuickReplyItems(openApp, menu))

		case "選單", "menu":
			return linebot.NewTextMessage(
				"請選擇您需要的功能：",
			).WithQuickReplies(linebot.NewQuickReplyItems(
				linebot.NewQuickReplyButton("", linebot.NewURIAction("🚀 開啟應用", liffURL)),
				linebot.NewQuickReplyButton("", linebot.NewMessageAction("📋 功能介紹", "功能介紹")),
				linebot.NewQuickReplyButton("", linebot.NewMessageAction("❓ 常見問題", "常見問題")),
			))

		case "功能介紹":
			return linebot.NewTextMessage(
				"我們提供以下功能：\n\n✅ LINE 帳號快速登入\n✅ 行李配送預約\n✅ QR Code 訂單查詢\n\n點擊下方按鈕立即體驗！",
			).WithQuickReplies(linebot.NewQuickReplyItems(
				linebot.NewQuickReplyButton("", linebot.NewURIAction("立即開啟", liffURL)),
			))

		case "常見問題":
			return linebot.NewTextMessage(
				"Q: 如何使用應用？\nA: 點擊「開啟應用」按鈕即可使用。\n\nQ: 需要註冊嗎？\nA: 不需要，使用 LINE 帳號即可登入。",
			).WithQuickReplies(linebot.NewQuickReplyItems(
				openApp,
				linebot.NewQuickReplyButton("", linebot.NewMessageAction("返回選單", "選單")),
			))

		default:
			return linebot.NewTextMessage(
				fmt.Sprintf("您說：%s\n\n輸入「選單」查看可用功能，或點擊下方按鈕開啟應用。", msg.Text),
			).WithQuickReplies(linebot.NewQuickReplyItems(openApp, menu))
		}
	}
	return nil
}
