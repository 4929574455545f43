package ownerBookings

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"pgBooker/internal/http-server/middleware/mwauth"
	"pgBooker/internal/lib/api/response"
	"pgBooker/internal/lib/logger/sl"
	"pgBooker/internal/models"
	"pgBooker/internal/service/booking"

	"github.com/go-chi/render"
)

type BookingsResponse struct {
	response.Response
	Bookings []models.BookingDetail `json:"bookings"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=OwnerBookingsLister
type OwnerBookingsLister interface {
	OwnerBookings(ctx context.Context, actor models.Actor) ([]models.BookingDetail, error)
}

func New(log *slog.Logger, lister OwnerBookingsLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.booking.ownerBookings.New"

		log = log.With(slog.String("op", op))

		actor, ok := mwauth.Actor(r.Context())
		if !ok {
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("please log in to continue"))
			return
		}

		bookings, err := lister.OwnerBookings(r.Context(), actor)
		if err != nil {
			var deniedErr *booking.AccessDeniedError
			if errors.As(err, &deniedErr) {
				render.Status(r, http.StatusForbidden)
				render.JSON(w, r, response.Error(deniedErr.Reason.String()))
				return
			}

			log.Error("failed to get bookings", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("something went wrong"))
			return
		}

		log.Info("bookings retrieved", slog.Int64("owner_id", actor.ID), slog.Int("count", len(bookings)))

		render.JSON(w, r, BookingsResponse{
			Response: response.OK(),
			Bookings: bookings,
		})
	}
}
