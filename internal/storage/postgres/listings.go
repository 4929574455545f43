package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"pgBooker/internal/models"
	"pgBooker/internal/storage"

	"github.com/lib/pq"
)

func (s *Storage) SaveListing(ctx context.Context, l *models.Listing) (int64, error) {
	query := `
		INSERT INTO listings (owner_id, title, gender, description, address, wifi, monthly_fees, food_fees, rooms_available, images)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id`

	var id int64
	err := s.DB.QueryRowContext(ctx, query,
		l.OwnerID,
		l.Title,
		l.Gender,
		l.Description,
		l.Address,
		l.Wifi,
		l.MonthlyFees,
		l.FoodFees,
		l.RoomsAvailable,
		pq.Array(l.Images),
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to save listing: %w", err)
	}

	return id, nil
}

func (s *Storage) GetListing(ctx context.Context, id int64) (*models.Listing, error) {
	query := `
		SELECT id, owner_id, title, gender, description, address, wifi, monthly_fees, food_fees, rooms_available, images, posted_at
		FROM listings
		WHERE id = $1`

	var l models.Listing
	err := s.DB.QueryRowContext(ctx, query, id).Scan(
		&l.ID,
		&l.OwnerID,
		&l.Title,
		&l.Gender,
		&l.Description,
		&l.Address,
		&l.Wifi,
		&l.MonthlyFees,
		&l.FoodFees,
		&l.RoomsAvailable,
		pq.Array(&l.Images),
		&l.PostedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrListingNotFound
		}
		return nil, fmt.Errorf("failed to get listing: %w", err)
	}

	return &l, nil
}

// UpdateListing rewrites every mutable field of the listing except the
// room counter, which only the booking transactions touch, and the
// images, which AppendListingImages owns. Last write wins.
func (s *Storage) UpdateListing(ctx context.Context, l *models.Listing) error {
	query := `
		UPDATE listings
		SET title = $2, gender = $3, description = $4, address = $5, wifi = $6, monthly_fees = $7, food_fees = $8, rooms_available = $9
		WHERE id = $1`

	res, err := s.DB.ExecContext(ctx, query,
		l.ID,
		l.Title,
		l.Gender,
		l.Description,
		l.Address,
		l.Wifi,
		l.MonthlyFees,
		l.FoodFees,
		l.RoomsAvailable,
	)
	if err != nil {
		return fmt.Errorf("failed to update listing: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update listing: %w", err)
	}
	if rows == 0 {
		return storage.ErrListingNotFound
	}

	return nil
}

func (s *Storage) AppendListingImages(ctx context.Context, id int64, images []string) error {
	query := `
		UPDATE listings
		SET images = images || $2
		WHERE id = $1`

	res, err := s.DB.ExecContext(ctx, query, id, pq.Array(images))
	if err != nil {
		return fmt.Errorf("failed to append listing images: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to append listing images: %w", err)
	}
	if rows == 0 {
		return storage.ErrListingNotFound
	}

	return nil
}

func (s *Storage) ListingsByOwner(ctx context.Context, ownerID int64) ([]models.Listing, error) {
	query := `
		SELECT id, owner_id, title, gender, description, address, wifi, monthly_fees, food_fees, rooms_available, images, posted_at
		FROM listings
		WHERE owner_id = $1
		ORDER BY posted_at DESC`

	rows, err := s.DB.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get listings: %w", err)
	}
	defer rows.Close()

	return scanListings(rows)
}

func (s *Storage) SearchListings(ctx context.Context, filter models.ListingFilter) ([]models.Listing, error) {
	query := `
		SELECT id, owner_id, title, gender, description, address, wifi, monthly_fees, food_fees, rooms_available, images, posted_at
		FROM listings
		WHERE ($1 = '' OR gender = $1)
		AND ($2 = '' OR address ILIKE '%' || $2 || '%')
		ORDER BY posted_at DESC`

	rows, err := s.DB.QueryContext(ctx, query, string(filter.Gender), filter.Address)
	if err != nil {
		return nil, fmt.Errorf("failed to search listings: %w", err)
	}
	defer rows.Close()

	return scanListings(rows)
}

func scanListings(rows *sql.Rows) ([]models.Listing, error) {
	var listings []models.Listing
	for rows.Next() {
		var l models.Listing
		err := rows.Scan(
			&l.ID,
			&l.OwnerID,
			&l.Title,
			&l.Gender,
			&l.Description,
			&l.Address,
			&l.Wifi,
			&l.MonthlyFees,
			&l.FoodFees,
			&l.RoomsAvailable,
			pq.Array(&l.Images),
			&l.PostedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan listing: %w", err)
		}
		listings = append(listings, l)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating listings: %w", err)
	}

	return listings, nil
}
