package flatscan_test

import (
	"encoding/json"
	"testing"

	"github.com/avolos/flatscan"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewApartment_Defaults(t *testing.T) {
	t.Parallel()

	apt := flatscan.NewApartment()

	assert.Equal(t, uint32(1), apt.Characteristics.RoomCount)
	assert.Equal(t, uint32(1), apt.Characteristics.Floor)
	assert.Equal(t, uint32(1), apt.Characteristics.MaxFloor)
	assert.Equal(t, flatscan.CurrencyUAH, apt.Price.Currency)
	assert.NotNil(t, apt.Infrastructure.SubwayStations)
	assert.NotNil(t, apt.Infrastructure.Landmarks)
	assert.NotNil(t, apt.Photo)
	assert.Empty(t, apt.Photo)
	assert.Nil(t, apt.Characteristics.HouseType)
	assert.Nil(t, apt.Infrastructure.ResidentialComplex)
	assert.Zero(t, apt.Permits.Commission.Rate)
	assert.Nil(t, apt.Permits.Commission.Fee)
}

func TestApartment_Validate(t *testing.T) {
	t.Parallel()

	t.Run("valid", func(t *testing.T) {
		t.Parallel()

		apt := flatscan.NewApartment()
		apt.ID = "11569123"
		apt.Link = "https://rieltor.ua/flats-rent/view/11569123/"

		assert.NoError(t, apt.Validate())
	})

	t.Run("missing id", func(t *testing.T) {
		t.Parallel()

		apt := flatscan.NewApartment()
		apt.Link = "https://rieltor.ua/flats-rent/view/11569123/"

		err := apt.Validate()
		assert.Equal(t, flatscan.EINVALID, flatscan.ErrorCode(err))
	})

	t.Run("missing link", func(t *testing.T) {
		t.Parallel()

		apt := flatscan.NewApartment()
		apt.ID = "11569123"

		err := apt.Validate()
		assert.Equal(t, flatscan.EINVALID, flatscan.ErrorCode(err))
	})
}

func TestCommission_SetRateClearsFee(t *testing.T) {
	t.Parallel()

	var c flatscan.Commission
	c.SetFee(flatscan.Price{Amount: 300, Currency: flatscan.CurrencyUSD})
	c.SetRate(50)

	assert.Equal(t, uint32(50), c.Rate)
	assert.Nil(t, c.Fee)
}

func TestCommission_SetFeeClearsRate(t *testing.T) {
	t.Parallel()

	var c flatscan.Commission
	c.SetRate(50)
	c.SetFee(flatscan.Price{Amount: 300, Currency: flatscan.CurrencyUSD})

	assert.Zero(t, c.Rate)
	require.NotNil(t, c.Fee)
	assert.Equal(t, uint32(300), c.Fee.Amount)
	assert.Equal(t, flatscan.CurrencyUSD, c.Fee.Currency)
}

func TestApartment_JSONFieldNames(t *testing.T) {
	t.Parallel()

	apt := flatscan.NewApartment()
	apt.ID = "11569123"
	apt.Link = "https://rieltor.ua/flats-rent/view/11569123/"
	apt.Price = flatscan.Price{Amount: 35000, Currency: flatscan.CurrencyUAH}

	data, err := json.Marshal(apt)
	require.NoError(t, err)

	js := string(data)
	assert.Contains(t, js, `"_id":"11569123"`)
	assert.Contains(t, js, `"price_number":35000`)
	assert.Contains(t, js, `"currency":"Uah"`)
	assert.Contains(t, js, `"rieltor":`)
	assert.Contains(t, js, `"rieltor_name":`)
	assert.Contains(t, js, `"commission_rate":`)
	assert.Contains(t, js, `"commission_price":`)
	assert.Contains(t, js, `"subway_station":[]`)
}
