package editListing

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
	"pgBooker/internal/policy"
	"pgBooker/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

type ListingRequest struct {
	Title          string  `json:"title" validate:"required"`
	Gender         string  `json:"gender" validate:"required,oneof=girls boys"`
	Description    string  `json:"description"`
	Address        string  `json:"address" validate:"required"`
	Wifi           bool    `json:"wifi"`
	MonthlyFees    float64 `json:"monthly_fees" validate:"required,gte=0"`
	FoodFees       float64 `json:"food_fees" validate:"gte=0"`
	RoomsAvailable int     `json:"rooms_available" validate:"gte=0"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ListingUpdater
type ListingUpdater interface {
	GetListing(ctx context.Context, id int64) (*models.Listing, error)
	UpdateListing(ctx context.Context, l *models.Listing) error
}

func New(log *slog.Logger, updater ListingUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.listing.editListing.New"

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

		listing, err := updater.GetListing(r.Context(), listingID)
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

		if ok, reason := policy.CanEditListing(actor, listing); !ok {
			log.Info("listing edit denied", slog.Int64("user_id", actor.ID))
			render.Status(r, http.StatusForbidden)
			render.JSON(w, r, response.Error(reason.String()))
			return
		}

		var req ListingRequest

		err = render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		log.Info("request body decoded", slog.Any("request", req))

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			if errors.As(err, &validateErr) {
				log.Error("invalid request", sl.Err(err))
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.ValidationError(validateErr))
				return
			}
		}

		listing.Title = req.Title
		listing.Gender = models.Gender(req.Gender)
		listing.Description = req.Description
		listing.Address = req.Address
		listing.Wifi = req.Wifi
		listing.MonthlyFees = req.MonthlyFees
		listing.FoodFees = req.FoodFees
		listing.RoomsAvailable = req.RoomsAvailable

		if err = updater.UpdateListing(r.Context(), listing); err != nil {
			if errors.Is(err, storage.ErrListingNotFound) {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("listing not found"))
				return
			}

			log.Error("failed to update listing", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("something went wrong"))
			return
		}

		log.Info("listing updated", slog.Int64("owner_id", actor.ID))

		render.JSON(w, r, response.Success("listing updated successfully"))
	}
}
