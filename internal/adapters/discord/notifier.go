package discord

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"
	"golang.org/x/text/language"

	"cycletext/internal/catalog"
	"cycletext/internal/content"
	"cycletext/internal/ports/input"
	"cycletext/internal/ports/output"
)

// Notifier posts localized alerts to the companion Discord channel. It
// is a delivery consumer of the resolver, not part of the engine, and
// is only wired when a bot token is configured.
type Notifier struct {
	session   *discordgo.Session
	channelID string
	resolver  input.TextResolver
	state     output.StateProvider
	lang      language.Tag
	pattern   string
	log       *zap.Logger

	// notified suppresses repeat alerts until a fresh sync lands. Only
	// the watcher goroutine touches it.
	notified bool
}

func NewNotifier(token, channelID string, resolver input.TextResolver, state output.StateProvider, lang language.Tag, pattern string, log *zap.Logger) (*Notifier, error) {
	s, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("discord session: %w", err)
	}
	return &Notifier{
		session:   s,
		channelID: channelID,
		resolver:  resolver,
		state:     state,
		lang:      lang,
		pattern:   pattern,
		log:       log,
	}, nil
}

func (n *Notifier) Open() error {
	return n.session.Open()
}

func (n *Notifier) Close() error {
	return n.session.Close()
}

// sendAlert resolves the alert dialog plus the last-sync line and
// posts them as one message.
func (n *Notifier) sendAlert(key content.Key) error {
	value, err := n.resolver.Resolve(n.lang, key)
	if err != nil {
		return fmt.Errorf("resolve alert %s: %w", key, err)
	}
	dialog, ok := value.(content.Dialog)
	if !ok {
		return fmt.Errorf("alert %s: expected dialog, got %T", key, value)
	}

	msg := "**" + dialog.Title + "**\n" + dialog.Message
	if line := n.resolver.Text(n.lang, catalog.KeySyncLastSynced, n.pattern); line != "" {
		msg += "\n" + line
	}

	if _, err := n.session.ChannelMessageSend(n.channelID, msg); err != nil {
		return fmt.Errorf("send alert %s: %w", key, err)
	}
	return nil
}
