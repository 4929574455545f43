package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"pgBooker/internal/models"
	"pgBooker/internal/storage"
)

// BookListing claims one room on the listing and writes the ledger row in
// a single transaction. The decrement is conditional on the counter being
// positive, so concurrent calls on the last room serialize in the database:
// one commits, the rest see no affected rows and get ErrNoRoomsAvailable.
// The counter can never go negative.
func (s *Storage) BookListing(ctx context.Context, listingID, userID int64) (*models.Booking, error) {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	decrementQuery := `
		UPDATE listings
		SET rooms_available = rooms_available - 1
		WHERE id = $1 AND rooms_available > 0`

	res, err := tx.ExecContext(ctx, decrementQuery, listingID)
	if err != nil {
		return nil, fmt.Errorf("failed to decrement rooms: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to decrement rooms: %w", err)
	}

	if rows == 0 {
		var exists bool
		checkQuery := `SELECT EXISTS(SELECT 1 FROM listings WHERE id = $1)`
		if err = tx.QueryRowContext(ctx, checkQuery, listingID).Scan(&exists); err != nil {
			return nil, fmt.Errorf("failed to check listing: %w", err)
		}
		if !exists {
			return nil, storage.ErrListingNotFound
		}
		return nil, storage.ErrNoRoomsAvailable
	}

	insertQuery := `
		INSERT INTO bookings (user_id, listing_id, status)
		VALUES ($1, $2, $3)
		RETURNING id, booked_at`

	booking := models.Booking{
		UserID:    userID,
		ListingID: listingID,
		Status:    models.StatusPending,
	}
	err = tx.QueryRowContext(ctx, insertQuery, userID, listingID, models.StatusPending).Scan(&booking.ID, &booking.BookedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit booking: %w", err)
	}

	return &booking, nil
}

// CancelBooking removes the ledger row and restores the room it claimed,
// in one transaction. The delete is keyed on both booking and user so a
// cancel can never outrun an ownership check. A listing deleted since the
// booking was made is tolerated: the row still goes away, nothing is
// restored.
func (s *Storage) CancelBooking(ctx context.Context, bookingID, userID int64) error {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	deleteQuery := `
		DELETE FROM bookings
		WHERE id = $1 AND user_id = $2
		RETURNING listing_id`

	var listingID int64
	err = tx.QueryRowContext(ctx, deleteQuery, bookingID, userID).Scan(&listingID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return storage.ErrBookingNotFound
		}
		return fmt.Errorf("failed to delete booking: %w", err)
	}

	restoreQuery := `
		UPDATE listings
		SET rooms_available = rooms_available + 1
		WHERE id = $1`

	if _, err = tx.ExecContext(ctx, restoreQuery, listingID); err != nil {
		return fmt.Errorf("failed to restore room: %w", err)
	}

	return tx.Commit()
}

func (s *Storage) GetBooking(ctx context.Context, id int64) (*models.Booking, error) {
	query := `
		SELECT id, user_id, listing_id, booked_at, status
		FROM bookings
		WHERE id = $1`

	var b models.Booking
	err := s.DB.QueryRowContext(ctx, query, id).Scan(
		&b.ID,
		&b.UserID,
		&b.ListingID,
		&b.BookedAt,
		&b.Status,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to get booking: %w", err)
	}

	return &b, nil
}

func (s *Storage) ConfirmBooking(ctx context.Context, bookingID int64) error {
	query := `
		UPDATE bookings
		SET status = $2
		WHERE id = $1 AND status = $3`

	res, err := s.DB.ExecContext(ctx, query, bookingID, models.StatusConfirmed, models.StatusPending)
	if err != nil {
		return fmt.Errorf("failed to confirm booking: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to confirm booking: %w", err)
	}

	if rows == 0 {
		var exists bool
		checkQuery := `SELECT EXISTS(SELECT 1 FROM bookings WHERE id = $1)`
		if err = s.DB.QueryRowContext(ctx, checkQuery, bookingID).Scan(&exists); err != nil {
			return fmt.Errorf("failed to check booking: %w", err)
		}
		if !exists {
			return storage.ErrBookingNotFound
		}
		return storage.ErrBookingNotPending
	}

	return nil
}

func (s *Storage) BookingsByUser(ctx context.Context, userID int64) ([]models.BookingDetail, error) {
	query := `
		SELECT b.id, b.user_id, b.listing_id, b.booked_at, b.status, l.title
		FROM bookings b
		JOIN listings l ON l.id = b.listing_id
		WHERE b.user_id = $1
		ORDER BY b.booked_at DESC`

	rows, err := s.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get bookings: %w", err)
	}
	defer rows.Close()

	var bookings []models.BookingDetail
	for rows.Next() {
		var b models.BookingDetail
		err = rows.Scan(
			&b.ID,
			&b.UserID,
			&b.ListingID,
			&b.BookedAt,
			&b.Status,
			&b.ListingTitle,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan booking: %w", err)
		}
		bookings = append(bookings, b)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating bookings: %w", err)
	}

	return bookings, nil
}

// BookingsForOwner lists every booking placed against the owner's
// listings, with who booked.
func (s *Storage) BookingsForOwner(ctx context.Context, ownerID int64) ([]models.BookingDetail, error) {
	query := `
		SELECT b.id, b.user_id, b.listing_id, b.booked_at, b.status, l.title, u.username
		FROM bookings b
		JOIN listings l ON l.id = b.listing_id
		JOIN users u ON u.id = b.user_id
		WHERE l.owner_id = $1
		ORDER BY b.booked_at DESC`

	rows, err := s.DB.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get bookings: %w", err)
	}
	defer rows.Close()

	var bookings []models.BookingDetail
	for rows.Next() {
		var b models.BookingDetail
		err = rows.Scan(
			&b.ID,
			&b.UserID,
			&b.ListingID,
			&b.BookedAt,
			&b.Status,
			&b.ListingTitle,
			&b.Username,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan booking: %w", err)
		}
		bookings = append(bookings, b)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating bookings: %w", err)
	}

	return bookings, nil
}
