package uploadImages

import (
	"context"
	"errors"
	"io"
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
)

const (
	maxUploadBytes = 10 << 20
	maxImages      = 5
)

type UploadResponse struct {
	response.Response
	Images []string `json:"images"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ImageAppender
type ImageAppender interface {
	GetListing(ctx context.Context, id int64) (*models.Listing, error)
	AppendListingImages(ctx context.Context, id int64, images []string) error
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=FileSaver
type FileSaver interface {
	Save(r io.Reader, originalName string) (string, error)
}

func New(log *slog.Logger, listings ImageAppender, files FileSaver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.listing.uploadImages.New"

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

		listing, err := listings.GetListing(r.Context(), listingID)
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
			log.Info("image upload denied", slog.Int64("user_id", actor.ID))
			render.Status(r, http.StatusForbidden)
			render.JSON(w, r, response.Error(reason.String()))
			return
		}

		if err = r.ParseMultipartForm(maxUploadBytes); err != nil {
			log.Error("failed to parse multipart form", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to parse upload"))
			return
		}

		headers := r.MultipartForm.File["images"]
		if len(headers) == 0 {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("at least one image is required"))
			return
		}
		if len(headers) > maxImages {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("at most 5 images per upload"))
			return
		}

		var names []string
		for _, hdr := range headers {
			f, err := hdr.Open()
			if err != nil {
				log.Error("failed to open upload", sl.Err(err))
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("something went wrong"))
				return
			}

			name, err := files.Save(f, hdr.Filename)
			f.Close()
			if err != nil {
				log.Error("failed to store upload", sl.Err(err))
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("something went wrong"))
				return
			}

			names = append(names, name)
		}

		if err = listings.AppendListingImages(r.Context(), listingID, names); err != nil {
			log.Error("failed to update listing images", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("something went wrong"))
			return
		}

		log.Info("images uploaded", slog.Int("count", len(names)))

		render.JSON(w, r, UploadResponse{
			Response: response.Success("images uploaded successfully"),
			Images:   names,
		})
	}
}
