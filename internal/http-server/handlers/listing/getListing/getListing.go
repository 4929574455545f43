package getListing

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"pgBooker/internal/lib/api/response"
	"pgBooker/internal/lib/logger/sl"
	"pgBooker/internal/models"
	"pgBooker/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

type ListingResponse struct {
	response.Response
	Listing *models.Listing `json:"listing,omitempty"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ListingGetter
type ListingGetter interface {
	GetListing(ctx context.Context, id int64) (*models.Listing, error)
}

func New(log *slog.Logger, getter ListingGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.listing.getListing.New"

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

		listing, err := getter.GetListing(r.Context(), listingID)
		if err != nil {
			if errors.Is(err, storage.ErrListingNotFound) {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("listing not found"))
				return
			}

			log.Error("failed to get listing", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("something went wrong"))
			return
		}

		log.Info("listing retrieved", slog.Int64("listing_id", listingID))

		render.JSON(w, r, ListingResponse{
			Response: response.OK(),
			Listing:  listing,
		})
	}
}
