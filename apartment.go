package flatscan

// Currency is the closed set of price currency tags. Unrecognized symbols
// fall back to the local currency during extraction.
type Currency string

// Currency tags as they appear in the serialized record.
const (
	CurrencyUAH Currency = "Uah"
	CurrencyUSD Currency = "Usd"
	CurrencyEUR Currency = "Eur"
)

// SubwayLine is the closed set of transit-line tags. Unlike Currency there
// is no fallback: an unrecognized line keyword fails the whole extraction.
type SubwayLine string

// Subway lines of the source city.
const (
	LineRed   SubwayLine = "Red"
	LineGreen SubwayLine = "Green"
	LineBlue  SubwayLine = "Blue"
)

// Apartment is the root listing record. It is created with NewApartment,
// populated once during extraction, and not mutated afterwards.
type Apartment struct {
	ID              string          `json:"_id"`
	Link            string          `json:"link"`
	Price           Price           `json:"price"`
	Address         Address         `json:"address"`
	Characteristics Characteristics `json:"characteristics"`
	Description     Description     `json:"description"`
	Permits         Permits         `json:"permits"`
	Infrastructure  Infrastructure  `json:"infrastructure"`
	Realtor         Realtor         `json:"rieltor"`
	Photo           []string        `json:"photo"`
}

// Price is an amount with its currency tag.
type Price struct {
	Amount   uint32   `json:"price_number"`
	Currency Currency `json:"currency"`
}

// Address holds the four positional address components. The house number
// stays a string: values like "13/8" or "5а" are not numeric.
type Address struct {
	Street      string `json:"street"`
	HouseNumber string `json:"house_number"`
	City        string `json:"city"`
	District    string `json:"district"`
}

// Characteristics holds room, area, and floor facts plus listing statistics.
// No relationship between the values is enforced (total vs living+kitchen,
// floor vs max floor): the record mirrors the source document.
type Characteristics struct {
	RoomCount    uint32           `json:"room_count"`
	Area         Area             `json:"area"`
	Floor        uint32           `json:"floor"`
	MaxFloor     uint32           `json:"max_floor"`
	HouseType    *string          `json:"house_type"`
	RoomPlanning *string          `json:"room_planning"`
	State        *string          `json:"state"`
	Statistics   AdvertStatistics `json:"statistics"`
}

// Area in square meters.
type Area struct {
	Total   float32 `json:"total"`
	Living  float32 `json:"living"`
	Kitchen float32 `json:"kitchen"`
}

// AdvertStatistics carries the listing's renewal/publish phrases and view
// counts. The date phrases are stored verbatim ("вчора", "1 тиж. тому");
// no arithmetic is ever performed on them.
type AdvertStatistics struct {
	Renewed   string `json:"renewed"`
	Published string `json:"published"`
	Views     Views  `json:"views"`
}

// Views holds the view counters of a listing.
type Views struct {
	Total     uint32 `json:"total"`
	Today     uint32 `json:"today"`
	Yesterday uint32 `json:"yesterday"`
}

// Description holds the short advertisement text and the longer details
// text, both with embedded line-break markup stripped.
type Description struct {
	Advert  string `json:"advert_description"`
	Details string `json:"details_description"`
}

// Permits holds the independent boolean labels of a listing plus the
// commission terms. Every flag defaults to false and is set only when the
// corresponding label is present in the source.
type Permits struct {
	PremiumAdvert bool       `json:"premium_advert"`
	ShortPeriod   bool       `json:"short_period"`
	Commission    Commission `json:"commission"`
	AllowChildren bool       `json:"allow_children"`
	AllowPets     bool       `json:"allow_pets"`
	Bargain       bool       `json:"bargain"`
}

// Commission is either a percentage rate or a fixed fee, never both.
// Use SetRate or SetFee so the unused arm is always cleared.
type Commission struct {
	Rate uint32 `json:"commission_rate"`
	Fee  *Price `json:"commission_price"`
}

// SetRate records a percentage commission and clears any fixed fee.
func (c *Commission) SetRate(rate uint32) {
	c.Rate = rate
	c.Fee = nil
}

// SetFee records a fixed-fee commission and clears the rate.
func (c *Commission) SetFee(fee Price) {
	c.Rate = 0
	c.Fee = &fee
}

// Infrastructure lists nearby subway stations and landmarks in source
// order, plus the residential complex when the listing names one.
type Infrastructure struct {
	SubwayStations     []SubwayStation `json:"subway_station"`
	Landmarks          []string        `json:"landmarks"`
	ResidentialComplex *string         `json:"residential_complex"`
}

// SubwayStation is a station name with its line tag.
type SubwayStation struct {
	Name string     `json:"name"`
	Line SubwayLine `json:"line"`
}

// Realtor identifies the listing agent.
type Realtor struct {
	Name        string  `json:"rieltor_name"`
	PhoneNumber string  `json:"rieltor_phone_number"`
	Position    string  `json:"rieltor_position"`
	Agency      *string `json:"rieltor_agency"`
}

// NewApartment returns an Apartment with every field at its documented
// default, so the extractor can populate fields independently and partial
// documents still produce a valid record.
func NewApartment() *Apartment {
	return &Apartment{
		Price: Price{Currency: CurrencyUAH},
		Characteristics: Characteristics{
			RoomCount: 1,
			Floor:     1,
			MaxFloor:  1,
		},
		Infrastructure: Infrastructure{
			SubwayStations: []SubwayStation{},
			Landmarks:      []string{},
		},
		Photo: []string{},
	}
}

// Validate returns an error if the record is missing its identity fields.
func (a *Apartment) Validate() error {
	if a.ID == "" {
		return Errorf(EINVALID, "listing id required")
	}
	if a.Link == "" {
		return Errorf(EINVALID, "listing link required")
	}
	return nil
}
