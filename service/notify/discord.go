package notify

import (
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/x-xyz/nftdash/base/ctx"
	"github.com/x-xyz/nftdash/base/log"
)

type DiscordCfg struct {
	AppName   string
	BotKey    string
	ChannelId string
}

type embedSender interface {
	ChannelMessageSendEmbed(channelID string, embed *discordgo.MessageEmbed) (*discordgo.Message, error)
}

type discordImpl struct {
	cfg     DiscordCfg
	discord embedSender
}

// NewDiscord posts failures to a discord channel. Without a bot key or channel
// it returns Nop.
func NewDiscord(cfg DiscordCfg) (Notifier, error) {
	if cfg.BotKey == "" || cfg.ChannelId == "" {
		return Nop(), nil
	}

	discord, err := discordgo.New(fmt.Sprintf("Bot %s", cfg.BotKey))
	if err != nil {
		return nil, err
	}
	return &discordImpl{cfg, discord}, nil
}

func (im *discordImpl) NotifyFailure(c ctx.Ctx, f Failure) error {
	msg := &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("%s: %s failed", im.cfg.AppName, f.Stage),
		Description: f.Reason,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Chain", Value: fmt.Sprint(f.ChainId), Inline: true},
			{Name: "Contract", Value: orDash(string(f.Contract))},
			{Name: "Owner", Value: orDash(string(f.Owner))},
		},
	}

	if _, err := im.discord.ChannelMessageSendEmbed(im.cfg.ChannelId, msg); err != nil {
		c.WithFields(log.Fields{
			"err":   err,
			"stage": f.Stage,
		}).Warn("failed to send discord message")
		return err
	}
	return nil
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
