package events

import (
	"context"
	"log/slog"

	"shopkeep/config"
	"shopkeep/internal/domain/service"

	"go.uber.org/fx"
)

// BrokerParams holds dependencies for the Broker, injected by Fx
type BrokerParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewFxBroker creates the Broker and closes it on shutdown
func NewFxBroker(params BrokerParams) *Broker {
	broker := NewBroker(params.Logger, params.Config.Websocket.SendBuffer)

	params.Lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			params.Logger.Info("Closing event broker")
			broker.Close()

			return nil
		},
	})

	return broker
}

// Module provides the event broker FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(
		NewFxBroker,
		func(b *Broker) service.EventPublisher { return b },
	),
)
