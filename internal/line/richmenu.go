package line

import (
	"context"
	"fmt"

	"github.com/line/line-bot-sdk-go/v7/linebot"
)

// RichMenuTemplate is the four-area main menu shown under the chat input.
func RichMenuTemplate(cfg Config) linebot.RichMenu {
	liffURL := cfg.LiffURL()
	siteURL := cfg.AppURL
	if siteURL == "" {
		siteURL = "https://example.com"
	}

	return linebot.RichMenu{
		Size:        linebot.RichMenuSize{Width: 2500, Height: 1686},
		Selected:    true,
		Name:        "主選單",
		ChatBarText: "點擊開啟選單",
		Areas: []linebot.AreaDetail{
			{
				Bounds: linebot.RichMenuBounds{X: 0, Y: 0, Width: 1250, Height: 843},
				Action: linebot.RichMenuAction{
					Type:  linebot.RichMenuActionTypeURI,
					Label: "開啟應用",
					URI:   liffURL,
				},
			},
			{
				Bounds: linebot.RichMenuBounds{X: 1250, Y: 0, Width: 1250, Height: 843},
				Action: linebot.RichMenuAction{
					Type:  linebot.RichMenuActionTypeMessage,
					Label: "聯絡我們",
					Text:  "我想聯絡客服",
				},
			},
			{
				Bounds: linebot.RichMenuBounds{X: 0, Y: 843, Width: 1250, Height: 843},
				Action: linebot.RichMenuAction{
					Type:  linebot.RichMenuActionTypeMessage,
					Label: "常見問題",
					Text:  "常見問題",
				},
			},
			{
				Bounds: linebot.RichMenuBounds{X: 1250, Y: 843, Width: 1250, Height: 843},
				Action: linebot.RichMenuAction{
					Type:  linebot.RichMenuActionTypeURI,
					Label: "官方網站",
					URI:   siteURL,
				},
			},
		},
	}
}

// SetupRichMenu creates the menu and makes it the channel default. Returns
// the new rich menu id.
func SetupRichMenu(ctx context.Context, client *linebot.Client, cfg Config) (string, error) {
	res, err := client.CreateRichMenu(RichMenuTemplate(cfg)).WithContext(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("create rich menu: %w", err)
	}
	if _, err := client.SetDefaultRichMenu(res.RichMenuID).WithContext(ctx).Do(); err != nil {
		return "", fmt.Errorf("set default rich menu: %w", err)
	}
	return res.RichMenuID, nil
}
