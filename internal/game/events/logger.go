package events

import "github.com/rs/zerolog"

// AttachLogger subscribes a structured-log handler to every event on the bus.
func AttachLogger(bus *Bus, logger zerolog.Logger, level zerolog.Level) {
	l := logger.With().Str("subscriber", "event_logger").Logger()
	bus.Subscribe(AllEvents, func(event Event) {
		l.WithLevel(level).
			Str("event_type", event.Type()).
			Str("game_id", event.GameID()).
			Interface("event", event).
			Msg("Game event")
	})
}
