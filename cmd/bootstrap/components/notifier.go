package components

import (
	"context"

	"driveshare/internal/notify"

	"go.uber.org/fx"
)

var NotifierModule = fx.Module("notifier",
	fx.Provide(
		func() notify.Sender { return notify.LogSender{} },
		notify.NewDispatcher,
	),
	fx.Invoke(startDispatcher),
)

func startDispatcher(lc fx.Lifecycle, dispatcher *notify.Dispatcher) {
	// Background context keeps the poller alive past the fx start hook.
	ctx, cancel := context.WithCancel(context.Background())

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go dispatcher.Start(ctx)
			return nil
		},
		OnStop: func(_ context.Context) error {
			cancel()
			dispatcher.Stop()
			return nil
		},
	})
}
