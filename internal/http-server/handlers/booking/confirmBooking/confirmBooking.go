package confirmBooking

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"pgBooker/internal/http-server/middleware/mwauth"
	"pgBooker/internal/lib/api/response"
	"pgBooker/internal/lib/logger/sl"
	"pgBooker/internal/models"
	"pgBooker/internal/service/booking"
	"pgBooker/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=Confirmer
type Confirmer interface {
	Confirm(ctx context.Context, actor models.Actor, bookingID int64) error
}

func New(log *slog.Logger, confirmer Confirmer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.booking.confirmBooking.New"

		log = log.With(slog.String("op", op))

		bookingIDStr := chi.URLParam(r, "id")
		if bookingIDStr == "" {
			log.Error("booking id is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("booking id is required"))
			return
		}

		bookingID, err := strconv.ParseInt(bookingIDStr, 10, 64)
		if err != nil {
			log.Error("invalid booking id format", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid booking id format"))
			return
		}

		log = log.With(slog.Int64("booking_id", bookingID))

		actor, ok := mwauth.Actor(r.Context())
		if !ok {
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("please log in to continue"))
			return
		}

		err = confirmer.Confirm(r.Context(), actor, bookingID)
		if err != nil {
			var deniedErr *booking.AccessDeniedError

			switch {
			case errors.Is(err, storage.ErrBookingNotFound):
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("booking not found"))
			case errors.Is(err, storage.ErrListingNotFound):
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("listing not found"))
			case errors.Is(err, storage.ErrBookingNotPending):
				render.Status(r, http.StatusConflict)
				render.JSON(w, r, response.Error("booking is not pending"))
			case errors.As(err, &deniedErr):
				render.Status(r, http.StatusForbidden)
				render.JSON(w, r, response.Error(deniedErr.Reason.String()))
			default:
				log.Error("failed to confirm booking", sl.Err(err))
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("something went wrong"))
			}
			return
		}

		log.Info("booking confirmed", slog.Int64("owner_id", actor.ID))

		render.JSON(w, r, response.Success("booking confirmed successfully"))
	}
}
