package searchListings

import (
	"context"
	"log/slog"
	"net/http"

	"pgBooker/internal/lib/api/response"
	"pgBooker/internal/lib/logger/sl"
	"pgBooker/internal/models"

	"github.com/go-chi/render"
)

type ListingsResponse struct {
	response.Response
	Listings []models.Listing `json:"listings"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ListingSearcher
type ListingSearcher interface {
	SearchListings(ctx context.Context, filter models.ListingFilter) ([]models.Listing, error)
}

func New(log *slog.Logger, searcher ListingSearcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.listing.searchListings.New"

		log = log.With(slog.String("op", op))

		gender := models.Gender(r.URL.Query().Get("gender"))
		if gender != "" && !gender.Valid() {
			log.Error("invalid gender filter", slog.String("gender", string(gender)))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("gender must be one of: girls boys"))
			return
		}

		filter := models.ListingFilter{
			Gender:  gender,
			Address: r.URL.Query().Get("address"),
		}

		listings, err := searcher.SearchListings(r.Context(), filter)
		if err != nil {
			log.Error("failed to search listings", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("something went wrong"))
			return
		}

		log.Info("listings retrieved", slog.Int("count", len(listings)))

		render.JSON(w, r, ListingsResponse{
			Response: response.OK(),
			Listings: listings,
		})
	}
}
