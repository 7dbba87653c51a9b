package sqlite_test

import (
	"context"
	"testing"

	"github.com/avolos/flatscan"
	"github.com/avolos/flatscan/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mustOpenDB returns an open in-memory database, closed on test cleanup.
func mustOpenDB(t *testing.T) *sqlite.DB {
	t.Helper()
	db := sqlite.NewDB(":memory:")
	require.NoError(t, db.Open())
	t.Cleanup(func() { db.Close() })
	return db
}

func testApartment(id string) *flatscan.Apartment {
	apt := flatscan.NewApartment()
	apt.ID = id
	apt.Link = "https://rieltor.ua/flats-rent/view/" + id + "/"
	apt.Address.City = "Київ"
	apt.Price = flatscan.Price{Amount: 35000, Currency: flatscan.CurrencyUAH}
	return apt
}

func TestListingService_CreateAndFind(t *testing.T) {
	t.Parallel()

	s := sqlite.NewListingService(mustOpenDB(t))
	ctx := context.Background()

	require.NoError(t, s.CreateListing(ctx, testApartment("11569123")))

	got, err := s.FindListingByID(ctx, "11569123")
	require.NoError(t, err)
	assert.Equal(t, "11569123", got.ID)
	assert.Equal(t, "https://rieltor.ua/flats-rent/view/11569123/", got.Link)
	assert.Equal(t, uint32(35000), got.Price.Amount)
	assert.Equal(t, "Київ", got.Address.City)
}

func TestListingService_CreateReplacesExisting(t *testing.T) {
	t.Parallel()

	s := sqlite.NewListingService(mustOpenDB(t))
	ctx := context.Background()

	require.NoError(t, s.CreateListing(ctx, testApartment("42")))

	updated := testApartment("42")
	updated.Price.Amount = 40000
	require.NoError(t, s.CreateListing(ctx, updated))

	got, err := s.FindListingByID(ctx, "42")
	require.NoError(t, err)
	assert.Equal(t, uint32(40000), got.Price.Amount)

	ids, err := s.ListListingIDs(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"42"}, ids)
}

func TestListingService_FindMissing(t *testing.T) {
	t.Parallel()

	s := sqlite.NewListingService(mustOpenDB(t))

	_, err := s.FindListingByID(context.Background(), "nope")

	assert.Equal(t, flatscan.ENOTFOUND, flatscan.ErrorCode(err))
}

func TestListingService_CreateInvalid(t *testing.T) {
	t.Parallel()

	s := sqlite.NewListingService(mustOpenDB(t))

	err := s.CreateListing(context.Background(), flatscan.NewApartment())

	assert.Equal(t, flatscan.EINVALID, flatscan.ErrorCode(err))
}

func TestListingService_ListListingIDs(t *testing.T) {
	t.Parallel()

	s := sqlite.NewListingService(mustOpenDB(t))
	ctx := context.Background()

	require.NoError(t, s.CreateListing(ctx, testApartment("2")))
	require.NoError(t, s.CreateListing(ctx, testApartment("1")))

	ids, err := s.ListListingIDs(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2"}, ids)
}
