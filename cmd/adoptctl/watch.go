package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Kilat-Pet-Delivery/client-adoption/internal/events"
	"github.com/Kilat-Pet-Delivery/client-adoption/internal/navigation"
	"github.com/Kilat-Pet-Delivery/client-adoption/internal/notification"
)

// newWatchCmd prints new-message banners until interrupted. With brokers
// configured the banners come from the message topic; otherwise the demo
// banner is shown once after the configured delay, unless it is zero.
func newWatchCmd(a *app) *cobra.Command {
	var open bool
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Print message notifications as they arrive",
		RunE: func(cmd *cobra.Command, args []string) error {
			center := notification.NewCenter()
			nav := navigation.NewNavigator(center)

			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()

			// Listeners run on consumer and timer goroutines; all output is
			// written from the loop below.
			type banner struct {
				n      notification.Notification
				unread int
			}
			banners := make(chan banner, 8)
			unsubscribe := center.Subscribe(func(active *notification.Notification, unread int) {
				if active == nil {
					return
				}
				select {
				case banners <- banner{n: *active, unread: unread}:
				case <-ctx.Done():
				}
			})
			defer unsubscribe()

			if a.cfg.KafkaConfig.Enabled() {
				consumer := events.NewMessageEventConsumer(a.cfg.KafkaConfig, center, a.logger)
				defer func() { _ = consumer.Close() }()

				go func() {
					a.logger.Info("starting message event consumer")
					if err := consumer.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
						a.logger.Error("message event consumer error", zap.Error(err))
					}
				}()
			} else if a.cfg.NotificationDelay > 0 {
				a.logger.Info("no brokers configured, scheduling demo notification",
					zap.Duration("delay", a.cfg.NotificationDelay),
				)
				stop := center.ScheduleDemo(a.cfg.NotificationDelay, notification.Demo)
				defer stop()
			}

			quit := make(chan os.Signal, 1)
			signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
			defer signal.Stop(quit)

			for {
				select {
				case <-quit:
					a.logger.Info("watch stopped")
					return nil
				case <-ctx.Done():
					return nil
				case b := <-banners:
					printBanner(a.out, b.n, b.unread)
					if !open {
						continue
					}
					threadID, ok := nav.OpenActiveNotification()
					if !ok {
						continue
					}
					profile := newProfileScreen(a)
					if err := profile.ApplyInitialThread(ctx, nav.TakeInitialThread()); err != nil {
						a.logger.Warn("failed to open thread", zap.String("thread_id", threadID), zap.Error(err))
						continue
					}
					if err := a.printThread(threadID, profile.Chat.Data()); err != nil {
						return err
					}
				}
			}
		},
	}
	cmd.Flags().BoolVar(&open, "open", false, "print the conversation behind each banner")
	return cmd
}
