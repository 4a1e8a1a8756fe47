package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Kilat-Pet-Delivery/client-adoption/internal/domain/message"
	"github.com/Kilat-Pet-Delivery/client-adoption/internal/events"
)

func newMessagesCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "messages",
		Aliases: []string{"msg"},
		Short:   "Read and send shelter messages",
	}
	cmd.AddCommand(
		newMessagesThreadsCmd(a),
		newMessagesShowCmd(a),
		newMessagesSendCmd(a),
		newMessagesAnnounceCmd(a),
	)
	return cmd
}

func (a *app) printThread(threadID string, msgs []message.Message) error {
	if a.jsonOut {
		return printJSON(a.out, msgs)
	}
	fmt.Fprintf(a.out, "thread %s\n", threadID)
	rows := make([][]string, 0, len(msgs))
	for _, m := range msgs {
		from := "shelter"
		if m.IsMine() {
			from = "me"
		}
		body := m.Text
		if m.ImageURL != "" {
			body = "[image] " + m.ImageURL
		}
		rows = append(rows, []string{m.Timestamp, from, body})
	}
	printTable(a.out, []string{"Time", "From", "Message"}, rows)
	return nil
}

func newMessagesThreadsCmd(a *app) *cobra.Command {
	var unreadOnly bool
	cmd := &cobra.Command{
		Use:   "threads",
		Short: "List conversations",
		RunE: func(cmd *cobra.Command, args []string) error {
			threads, err := a.client.GetMessageThreads(cmd.Context())
			if err != nil {
				return err
			}
			if unreadOnly {
				var unread []message.Thread
				for _, t := range threads {
					if t.HasUnread() {
						unread = append(unread, t)
					}
				}
				threads = unread
			}
			rows := make([][]string, 0, len(threads))
			for _, t := range threads {
				rows = append(rows, []string{
					t.ID, t.Name, t.PetName, t.LastMessage, t.Time, strconv.Itoa(t.UnreadCount),
				})
			}
			return a.emit(threads, []string{"ID", "Shelter", "Pet", "Last message", "Time", "Unread"}, rows)
		},
	}
	cmd.Flags().BoolVar(&unreadOnly, "unread", false, "only threads with unread messages")
	return cmd
}

func newMessagesShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show THREAD_ID",
		Short: "Print the messages of a thread",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			profile := newProfileScreen(a)
			if err := profile.OpenChat(cmd.Context(), args[0]); err != nil {
				return screenErr(err, profile.Chat.State().Err)
			}
			return a.printThread(args[0], profile.Chat.Data())
		},
	}
}

func newMessagesSendCmd(a *app) *cobra.Command {
	var image string
	cmd := &cobra.Command{
		Use:   "send THREAD_ID [TEXT...]",
		Short: "Send a text or image message",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			profile := newProfileScreen(a)
			chat := profile.Chat
			if err := profile.OpenChat(cmd.Context(), args[0]); err != nil {
				return screenErr(err, chat.State().Err)
			}

			if image != "" {
				if err := chat.SendImage(cmd.Context(), image); err != nil {
					return screenErr(err, chat.SendError())
				}
			}
			if text := strings.Join(args[1:], " "); text != "" {
				chat.SetInput(text)
				if err := chat.SendText(cmd.Context()); err != nil {
					return screenErr(err, chat.SendError())
				}
			}
			return a.printThread(args[0], chat.Data())
		},
	}
	cmd.Flags().StringVar(&image, "image", "", "image reference to send")
	return cmd
}

// newMessagesAnnounceCmd publishes a message.received event, the feed
// that drives banners in `adoptctl watch`.
func newMessagesAnnounceCmd(a *app) *cobra.Command {
	var sender string
	cmd := &cobra.Command{
		Use:   "announce THREAD_ID TEXT...",
		Short: "Publish a new-message event to the notification feed",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !a.cfg.KafkaConfig.Enabled() {
				return fmt.Errorf("no brokers configured: set ADOPT_KAFKA_BROKERS")
			}
			ce, err := events.NewCloudEvent(events.SourceMessaging, events.MessageReceived, events.MessageReceivedEvent{
				ThreadID: args[0],
				Sender:   sender,
				Text:     strings.Join(args[1:], " "),
			})
			if err != nil {
				return err
			}

			producer := events.NewProducer(a.cfg.KafkaConfig.Brokers, a.logger)
			defer func() { _ = producer.Close() }()

			topic := a.cfg.KafkaConfig.MessageTopic
			if topic == "" {
				topic = events.TopicMessageEvents
			}
			if err := producer.PublishEvent(cmd.Context(), topic, ce); err != nil {
				return err
			}
			a.logger.Info("message event announced", zap.String("thread_id", args[0]), zap.String("event_id", ce.ID))
			printSuccess(a.out, "announced %s on %s", ce.ID, topic)
			return nil
		},
	}
	cmd.Flags().StringVar(&sender, "sender", "快樂爪收容所", "sender shown on the banner")
	return cmd
}
