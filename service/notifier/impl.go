package notifier

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/shopspring/decimal"

	bCtx "github.com/auton-labs/goapi/base/ctx"
)

// lamportExp shifts lamports into whole native units for display
const lamportExp = -9

type DiscordCfg struct {
	BotKey    string
	ChannelId string
}

type discordImpl struct {
	channelId string
	discord   *discordgo.Session
}

// NewDiscord creates a notifier posting embeds to a discord channel.
// An empty bot key returns a disabled notifier which drops every event.
func NewDiscord(cfg *DiscordCfg) Service {
	if cfg == nil || len(cfg.BotKey) == 0 {
		return &noopImpl{}
	}

	discord, err := discordgo.New(fmt.Sprintf("Bot %s", cfg.BotKey))
	if err != nil {
		panic("failed to connect to discord")
	}

	return &discordImpl{channelId: cfg.ChannelId, discord: discord}
}

func (im *discordImpl) NotifyPaymentConfirmed(c bCtx.Ctx, evt PaymentEvent) {
	amount := "-"
	fee := "-"
	if evt.Asset != nil {
		amount = fmt.Sprintf("%s %s", decimal.New(evt.Amount, -evt.Asset.Decimals).String(), evt.Asset.Symbol)
		fee = fmt.Sprintf("%s %s", decimal.New(evt.PlatformFee, -evt.Asset.Decimals).String(), evt.Asset.Symbol)
	}

	msg := &discordgo.MessageEmbed{
		Title: "Content unlocked!",
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Buyer", Value: string(evt.Buyer)},
			{Name: "Creator", Value: string(evt.Creator)},
			{Name: "Content", Value: evt.ContentId},
			{Name: "Amount", Value: amount},
			{Name: "Platform Fee", Value: fee},
			{Name: "Tx", Value: evt.TxSignature},
		},
	}

	im.send(c, msg)
}

func (im *discordImpl) NotifyWalletSponsored(c bCtx.Ctx, evt SponsorshipEvent) {
	msg := &discordgo.MessageEmbed{
		Title: "Wallet sponsored",
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Address", Value: string(evt.Address)},
			{Name: "Amount", Value: fmt.Sprintf("%s SOL", decimal.New(evt.Lamports, lamportExp).String())},
			{Name: "Tx", Value: evt.TxSignature},
		},
	}

	im.send(c, msg)
}

func (im *discordImpl) NotifySuspiciousRequest(c bCtx.Ctx, evt SuspicionEvent) {
	hints := "-"
	if len(evt.Hints) > 0 {
		hints = strings.Join(evt.Hints, ", ")
	}

	msg := &discordgo.MessageEmbed{
		Title: "Suspicious sponsorship request",
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Address", Value: string(evt.Address)},
			{Name: "Client IP", Value: evt.ClientIp},
			{Name: "Hints", Value: hints},
		},
	}

	im.send(c, msg)
}

func (im *discordImpl) NotifyVaultLowBalance(c bCtx.Ctx, evt VaultBalanceEvent) {
	msg := &discordgo.MessageEmbed{
		Title: "Vault balance below floor",
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Vault", Value: string(evt.Address)},
			{Name: "Balance", Value: fmt.Sprintf("%s SOL", decimal.New(evt.Balance, lamportExp).String())},
			{Name: "Floor", Value: fmt.Sprintf("%s SOL", decimal.New(evt.Floor, lamportExp).String())},
		},
	}

	im.send(c, msg)
}

func (im *discordImpl) send(c bCtx.Ctx, msg *discordgo.MessageEmbed) {
	if _, err := im.discord.ChannelMessageSendEmbed(im.channelId, msg); err != nil {
		c.WithField("err", err).WithField("title", msg.Title).Warn("failed to send discord notification")
	}
}

type noopImpl struct{}

func (im *noopImpl) NotifyPaymentConfirmed(c bCtx.Ctx, evt PaymentEvent) {}

func (im *noopImpl) NotifyWalletSponsored(c bCtx.Ctx, evt SponsorshipEvent) {}

func (im *noopImpl) NotifySuspiciousRequest(c bCtx.Ctx, evt SuspicionEvent) {}

func (im *noopImpl) NotifyVaultLowBalance(c bCtx.Ctx, evt VaultBalanceEvent) {}
