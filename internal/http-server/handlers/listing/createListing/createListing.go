package createListing

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"pgBooker/internal/http-server/middleware/mwauth"
	"pgBooker/internal/lib/api/response"
	"pgBooker/internal/lib/logger/sl"
	"pgBooker/internal/models"
	"pgBooker/internal/policy"

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

type ListingResponse struct {
	response.Response
	ListingID int64 `json:"listing_id,omitempty"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ListingSaver
type ListingSaver interface {
	SaveListing(ctx context.Context, l *models.Listing) (int64, error)
}

func New(log *slog.Logger, saver ListingSaver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.listing.createListing.New"

		log = log.With(slog.String("op", op))

		actor, ok := mwauth.Actor(r.Context())
		if !ok {
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("please log in to continue"))
			return
		}

		if ok, reason := policy.CanCreateListing(actor); !ok {
			log.Info("listing creation denied", slog.Int64("user_id", actor.ID))
			render.Status(r, http.StatusForbidden)
			render.JSON(w, r, response.Error(reason.String()))
			return
		}

		var req ListingRequest

		err := render.DecodeJSON(r.Body, &req)
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

		listingID, err := saver.SaveListing(r.Context(), &models.Listing{
			OwnerID:        actor.ID,
			Title:          req.Title,
			Gender:         models.Gender(req.Gender),
			Description:    req.Description,
			Address:        req.Address,
			Wifi:           req.Wifi,
			MonthlyFees:    req.MonthlyFees,
			FoodFees:       req.FoodFees,
			RoomsAvailable: req.RoomsAvailable,
			Images:         []string{},
		})
		if err != nil {
			log.Error("failed to save listing", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("something went wrong"))
			return
		}

		log.Info("listing added", slog.Int64("listing_id", listingID), slog.Int64("owner_id", actor.ID))

		render.JSON(w, r, ListingResponse{
			Response:  response.Success("PG listing added successfully"),
			ListingID: listingID,
		})
	}
}
