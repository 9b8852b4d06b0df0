package components

import (
	"sauna-booking/internal/handler"
	"sauna-booking/internal/handler/api"
	"sauna-booking/internal/handler/middleware"
	"sauna-booking/internal/pkg/config"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAvailabilityHandler,
		api.NewReservationHandler,
		api.NewAdminHandler,
		NewHandlers,
		NewAdminMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)

func NewHandlers(availability *api.AvailabilityHandler, reservation *api.ReservationHandler, admin *api.AdminHandler) handler.Handlers {
	return handler.Handlers{
		Availability: availability,
		Reservation:  reservation,
		Admin:        admin,
	}
}

func NewAdminMiddleware(cfg config.Config) *middleware.AdminMiddleware {
	return middleware.NewAdminMiddleware(cfg.Admin)
}
