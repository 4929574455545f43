package dashboard

import (
	"context"
	"log/slog"
	"net/http"

	"pgBooker/internal/http-server/middleware/mwauth"
	"pgBooker/internal/lib/api/response"
	"pgBooker/internal/lib/logger/sl"
	"pgBooker/internal/models"

	"github.com/go-chi/render"
)

type DashboardResponse struct {
	response.Response
	Listings []models.Listing `json:"listings"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=OwnerListingsLister
type OwnerListingsLister interface {
	ListingsByOwner(ctx context.Context, ownerID int64) ([]models.Listing, error)
}

// New serves the owner dashboard. Students get an empty list rather than
// a denial, matching the public dashboard page behavior.
func New(log *slog.Logger, lister OwnerListingsLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.listing.dashboard.New"

		log = log.With(slog.String("op", op))

		actor, ok := mwauth.Actor(r.Context())
		if !ok {
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("please log in to continue"))
			return
		}

		var listings []models.Listing

		if actor.Role == models.RoleOwner {
			var err error
			listings, err = lister.ListingsByOwner(r.Context(), actor.ID)
			if err != nil {
				log.Error("failed to get listings", sl.Err(err))
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("something went wrong"))
				return
			}
		}

		log.Info("dashboard retrieved", slog.Int64("user_id", actor.ID), slog.Int("count", len(listings)))

		render.JSON(w, r, DashboardResponse{
			Response: response.OK(),
			Listings: listings,
		})
	}
}
