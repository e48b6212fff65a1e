package line

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/line/line-bot-sdk-go/v7/linebot"
)

const liffURL = "https://liff.line.me/123-abc"

func textOf(t *testing.T, m linebot.SendingMessage) string {
	t.Helper()
	tm, ok := m.(*linebot.TextMessage)
	if !ok {
		t.Fatalf("expected *linebot.TextMessage, got %T", m)
	}
	return tm.Text
}

func TestBuildReply_KeywordTable(t *testing.T) {
	cases := []struct {
		text string
		want string
	}{
		{"你好", "歡迎使用我們的服務"},
		{"hello", "歡迎使用我們的服務"},
		{"選單", "請選擇您需要的功能"},
		{"menu", "請選擇您需要的功能"},
		{"功能介紹", "我們提供以下功能"},
		{"常見問題", "如何使用應用"},
	}
	for _, tc := range cases {
		msg := WebhookMessage{EventType: EventMessage, ReplyToken: "tok", Text: tc.text}
		reply := BuildReply(liffURL, msg)
		if reply == nil {
			t.Fatalf("expected reply for %q", tc.text)
		}
		if got := textOf(t, reply); !strings.Contains(got, tc.want) {
			t.Fatalf("reply for %q = %q, want substring %q", tc.text, got, tc.want)
		}
	}
}

func TestBuildReply_DefaultEchoes(t *testing.T) {
	msg := WebhookMessage{EventType: EventMessage, ReplyToken: "tok", Text: "隨便說點什麼"}
	reply := BuildReply(liffURL, msg)
	if got := textOf(t, reply); !strings.Contains(got, "隨便說點什麼") {
		t.Fatalf("default reply should echo the user text, got %q", got)
	}
}

func TestBuildReply_Follow(t *testing.T) {
	msg := WebhookMessage{EventType: EventFollow, ReplyToken: "tok"}
	reply := BuildReply(liffURL, msg)
	if got := textOf(t, reply); !strings.Contains(got, "感謝您加入") {
		t.Fatalf("unexpected follow greeting %q", got)
	}
}

func TestBuildReply_UnknownEventType(t *testing.T) {
	if reply := BuildReply(liffURL, WebhookMessage{EventType: "unfollow"}); reply != nil {
		t.Fatalf("expected no reply, got %v", reply)
	}
}

func TestReduceEvents(t *testing.T) {
	events := []*linebot.Event{
		{
			Type:       linebot.EventTypeMessage,
			ReplyToken: "tok-1",
			Source:     &linebot.EventSource{UserID: "U1"},
			Message:    linebot.NewTextMessage("你好"),
		},
		{
			Type:       linebot.EventTypeFollow,
			ReplyToken: "tok-2",
			Source:     &linebot.EventSource{UserID: "U2"},
		},
		{
			// sticker messages get no canned reply
			Type:       linebot.EventTypeMessage,
			ReplyToken: "tok-3",
			Message:    &linebot.StickerMessage{PackageID: "1", StickerID: "2"},
		},
		{
			// no reply token, nothing to answer
			Type:    linebot.EventTypeMessage,
			Message: linebot.NewTextMessage("hi"),
		},
	}

	got := ReduceEvents(events)
	if len(got) != 2 {
		t.Fatalf("expected 2 reduced messages, got %d: %+v", len(got), got)
	}
	if got[0].EventType != EventMessage || got[0].Text != "你好" || got[0].UserID != "U1" {
		t.Fatalf("unexpected first message: %+v", got[0])
	}
	if got[1].EventType != EventFollow || got[1].ReplyToken != "tok-2" {
		t.Fatalf("unexpected second message: %+v", got[1])
	}

	// the reduced form is what rides through SQS
	b, err := json.Marshal(got[0])
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !strings.Contains(string(b), `"reply_token":"tok-1"`) {
		t.Fatalf("unexpected wire form: %s", b)
	}
}
