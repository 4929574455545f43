package createBooking

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

type BookingResponse struct {
	response.Response
	Booking *models.Booking `json:"booking,omitempty"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=Booker
type Booker interface {
	Book(ctx context.Context, actor models.Actor, listingID int64) (*models.Booking, error)
}

func New(log *slog.Logger, booker Booker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.booking.createBooking.New"

		log = log.With(slog.String("op", op))

		listingIDStr := chi.URLParam(r, "id")
		if listingIDStr == "" {
			log.Error("listing id is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("listing id is required"))
			return
		}

		listingID, err := strconv.ParseInt(listingIDStr, 10, 64)
		if err != nil {
			log.Error("invalid listing id format", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid listing id format"))
			return
		}

		log = log.With(slog.Int64("listing_id", listingID))

		actor, ok := mwauth.Actor(r.Context())
		if !ok {
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("please log in to continue"))
			return
		}

		result, err := booker.Book(r.Context(), actor, listingID)
		if err != nil {
			var deniedErr *booking.AccessDeniedError

			switch {
			case errors.Is(err, storage.ErrListingNotFound):
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("listing not found"))
			case errors.Is(err, storage.ErrNoRoomsAvailable):
				render.Status(r, http.StatusConflict)
				render.JSON(w, r, response.Error("no rooms available for booking"))
			case errors.As(err, &deniedErr):
				render.Status(r, http.StatusForbidden)
				render.JSON(w, r, response.Error(deniedErr.Reason.String()))
			default:
				log.Error("failed to book listing", sl.Err(err))
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("something went wrong"))
			}
			return
		}

		log.Info("room booked", slog.Int64("booking_id", result.ID), slog.Int64("user_id", actor.ID))

		render.JSON(w, r, BookingResponse{
			Response: response.Success("room booked successfully, please wait for confirmation"),
			Booking:  result,
		})
	}
}
