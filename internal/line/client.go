package line

import (
	"fmt"

	"github.com/line/line-bot-sdk-go/v7/linebot"
)

// Config holds the LINE channel credentials and app links.
type Config struct {
	ChannelSecret      string
	ChannelAccessToken string
	LiffID             string
	AppURL             string
}

// LiffURL is the deep link that opens the mini-app inside LINE.
func (c Config) LiffURL() string {
	return "https://liff.line.me/" + c.LiffID
}

// NewClient builds the Messaging API client.
func NewClient(cfg Config) (*linebot.Client, error) {
	client, err := linebot.New(cfg.ChannelSecret, cfg.ChannelAccessToken)
	if err != nil {
		return nil, fmt.Errorf("init line client: %w", err)
	}
	return client, nil
}
