package sqlite

import (
	"context"
	"database/sql"
	"encoding/binary"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/cespare/xxhash/v2"

	"github.com/avolos/flatscan"
)

// Compile-time interface verification.
var _ flatscan.ListingWriter = (*ListingService)(nil)

// ListingService stores extracted listings in SQLite. Rows carry a few
// denormalized query columns plus the full JSON document.
type ListingService struct {
	db *DB
}

// NewListingService creates a new ListingService.
func NewListingService(db *DB) *ListingService {
	return &ListingService{db: db}
}

// hashContent computes xxHash of content and returns a hex string.
func hashContent(content []byte) string {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], xxhash.Sum64(content))
	return hex.EncodeToString(b[:])
}

// CreateListing inserts or replaces a listing keyed by its id.
func (s *ListingService) CreateListing(ctx context.Context, apt *flatscan.Apartment) error {
	if err := apt.Validate(); err != nil {
		return err
	}

	data, err := json.Marshal(apt)
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT OR REPLACE INTO listings (id, link, city, district, price, currency, data, data_hash, fetched_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, apt.ID, apt.Link, apt.Address.City, apt.Address.District, apt.Price.Amount, string(apt.Price.Currency),
		string(data), hashContent(data), time.Now().UTC().Format(time.RFC3339))

	return err
}

// FindListingByID retrieves a stored listing.
// Returns ENOTFOUND if no row exists for the id.
func (s *ListingService) FindListingByID(ctx context.Context, id string) (*flatscan.Apartment, error) {
	var data string

	err := s.db.QueryRowContext(ctx, `
		SELECT data FROM listings WHERE id = ?
	`, id).Scan(&data)

	if err == sql.ErrNoRows {
		return nil, flatscan.Errorf(flatscan.ENOTFOUND, "listing %q not found", id)
	}
	if err != nil {
		return nil, err
	}

	var apt flatscan.Apartment
	if err := json.Unmarshal([]byte(data), &apt); err != nil {
		return nil, fmt.Errorf("failed to decode stored listing: %w", err)
	}
	return &apt, nil
}

// ListListingIDs returns the ids of all stored listings in insertion
// order of their keys.
func (s *ListingService) ListListingIDs(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id FROM listings ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
