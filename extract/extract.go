// Package extract converts grammar match trees into Apartment records.
// The extraction is a single tag-dispatched pass that mutates a record
// initialized to defaults, so partial documents still produce a valid,
// fully-typed value. Extraction is deterministic and performs no I/O.
package extract

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/avolos/flatscan"
	"github.com/avolos/flatscan/grammar"
)

// canonicalLink is the listing URL derived from the extracted identifier.
const canonicalLink = "https://rieltor.ua/flats-rent/view/%s/"

// Listing extracts one apartment record from raw listing markup.
// It fails with ESYNTAX when no listing structure is recognized,
// ECONVERSION when a captured fragment is not numeric, and EDOMAIN when a
// subway-line keyword falls outside the known set. Any failure aborts the
// extraction; no partial record is returned.
func Listing(src string) (*flatscan.Apartment, error) {
	frags, err := grammar.Document(src)
	if err != nil {
		return nil, err
	}

	apt := flatscan.NewApartment()
	for _, f := range frags {
		switch f.Tag {
		case grammar.TagIdentifier:
			apt.ID = f.Captures[0]
			apt.Link = fmt.Sprintf(canonicalLink, apt.ID)
		case grammar.TagPrice:
			if err := extractPrice(f, apt); err != nil {
				return nil, err
			}
		case grammar.TagAddress:
			apt.Address = flatscan.Address{
				Street:      f.Captures[0],
				HouseNumber: f.Captures[1],
				City:        f.Captures[2],
				District:    f.Captures[3],
			}
		case grammar.TagDescription:
			apt.Description.Advert = stripBreaks(f.Captures[0])
		case grammar.TagCharacteristics:
			if err := extractCharacteristics(f, apt); err != nil {
				return nil, err
			}
		case grammar.TagLabelSection:
			if err := extractLabels(f, apt); err != nil {
				return nil, err
			}
		case grammar.TagDetails:
			extractDetails(f, apt)
		case grammar.TagRealtor:
			extractRealtor(f, apt)
		case grammar.TagPhotoList:
			for _, photo := range f.Children {
				apt.Photo = append(apt.Photo, photo.Captures[0])
			}
		}
	}

	return apt, nil
}

func extractPrice(f grammar.Fragment, apt *flatscan.Apartment) error {
	amount, err := parseAmount(f.Captures[0])
	if err != nil {
		return err
	}
	apt.Price = flatscan.Price{
		Amount:   amount,
		Currency: currencyFromSymbol(f.Captures[1]),
	}
	return nil
}

// extractCharacteristics fills the six positional sub-groups: room count,
// area triple, floor pair, renewal phrase, publish phrase, views triple.
func extractCharacteristics(f grammar.Fragment, apt *flatscan.Apartment) error {
	c := &apt.Characteristics

	var err error
	if c.RoomCount, err = parseCount(f.Captures[0]); err != nil {
		return err
	}
	if c.Area.Total, err = parseAreaValue(f.Captures[1]); err != nil {
		return err
	}
	if c.Area.Living, err = parseAreaValue(f.Captures[2]); err != nil {
		return err
	}
	if c.Area.Kitchen, err = parseAreaValue(f.Captures[3]); err != nil {
		return err
	}
	if c.Floor, err = parseCount(f.Captures[4]); err != nil {
		return err
	}
	if c.MaxFloor, err = parseCount(f.Captures[5]); err != nil {
		return err
	}

	// Renewal and publish phrases are stored verbatim.
	c.Statistics.Renewed = f.Captures[6]
	c.Statistics.Published = f.Captures[7]

	if c.Statistics.Views.Total, err = parseCount(f.Captures[8]); err != nil {
		return err
	}
	if c.Statistics.Views.Today, err = parseCount(f.Captures[9]); err != nil {
		return err
	}
	if c.Statistics.Views.Yesterday, err = parseCount(f.Captures[10]); err != nil {
		return err
	}
	return nil
}

// extractLabels accumulates the order-independent label fragments. Flags
// are set independently; subway stations and landmarks keep encounter
// order; the residential complex keeps the last match.
func extractLabels(f grammar.Fragment, apt *flatscan.Apartment) error {
	for _, label := range f.Children {
		switch label.Tag {
		case grammar.TagPremium:
			apt.Permits.PremiumAdvert = true
		case grammar.TagShortPeriod:
			apt.Permits.ShortPeriod = true
		case grammar.TagAllowChildren:
			apt.Permits.AllowChildren = true
		case grammar.TagAllowPets:
			apt.Permits.AllowPets = true
		case grammar.TagCommissionRate:
			rate, err := parseCount(label.Captures[0])
			if err != nil {
				return err
			}
			apt.Permits.Commission.SetRate(rate)
		case grammar.TagCommissionFee:
			amount, err := parseAmount(label.Captures[0])
			if err != nil {
				return err
			}
			apt.Permits.Commission.SetFee(flatscan.Price{
				Amount:   amount,
				Currency: currencyFromCode(label.Captures[1]),
			})
		case grammar.TagSubwayStation:
			line, err := subwayLine(label.Captures[0])
			if err != nil {
				return err
			}
			apt.Infrastructure.SubwayStations = append(apt.Infrastructure.SubwayStations, flatscan.SubwayStation{
				Name: label.Captures[1],
				Line: line,
			})
		case grammar.TagLandmark:
			apt.Infrastructure.Landmarks = append(apt.Infrastructure.Landmarks, label.Captures[0])
		case grammar.TagResidentialComplex:
			name := label.Captures[0]
			apt.Infrastructure.ResidentialComplex = &name
		}
	}
	return nil
}

// extractDetails stores the details text verbatim and picks up the
// optional bargain, house-type, planning, and state sub-fragments.
func extractDetails(f grammar.Fragment, apt *flatscan.Apartment) {
	apt.Description.Details = stripBreaks(f.Captures[0])
	for _, d := range f.Children {
		switch d.Tag {
		case grammar.TagBargain:
			apt.Permits.Bargain = true
		case grammar.TagHouseType:
			v := d.Text
			apt.Characteristics.HouseType = &v
		case grammar.TagRoomPlanning:
			v := d.Text
			apt.Characteristics.RoomPlanning = &v
		case grammar.TagState:
			v := d.Text
			apt.Characteristics.State = &v
		}
	}
}

func extractRealtor(f grammar.Fragment, apt *flatscan.Apartment) {
	apt.Realtor = flatscan.Realtor{
		PhoneNumber: f.Captures[0],
		Name:        f.Captures[1],
		Position:    f.Captures[2],
	}
	// The agency container is optional; an absent fourth capture leaves
	// the agency unset rather than failing.
	if agency := f.Captures[3]; agency != "" {
		apt.Realtor.Agency = &agency
	}
}

// parseAmount converts a price amount, stripping thousands separators.
func parseAmount(s string) (uint32, error) {
	clean := strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\u00A0', '\u202F', '\u2009':
			return -1
		}
		return r
	}, s)
	return parseCount(clean)
}

func parseCount(s string) (uint32, error) {
	n, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, flatscan.Errorf(flatscan.ECONVERSION, "not an unsigned number: %q", s)
	}
	return uint32(n), nil
}

func parseAreaValue(s string) (float32, error) {
	f, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", "."), 32)
	if err != nil {
		return 0, flatscan.Errorf(flatscan.ECONVERSION, "not an area value: %q", s)
	}
	return float32(f), nil
}

// currencyFromSymbol maps a price symbol to its currency tag. Absence of a
// symbol, or an unrecognized one, means the local currency.
func currencyFromSymbol(s string) flatscan.Currency {
	switch s {
	case "$":
		return flatscan.CurrencyUSD
	case "€":
		return flatscan.CurrencyEUR
	default:
		return flatscan.CurrencyUAH
	}
}

// currencyFromCode maps the commission fee currency token.
func currencyFromCode(s string) flatscan.Currency {
	switch s {
	case "USD", "$":
		return flatscan.CurrencyUSD
	case "€":
		return flatscan.CurrencyEUR
	default:
		return flatscan.CurrencyUAH
	}
}

// subwayLine maps a line keyword to the closed enumeration. This is the
// one place where default-fallback is deliberately disabled: an
// unrecognized keyword is a hard extraction failure.
func subwayLine(s string) (flatscan.SubwayLine, error) {
	switch s {
	case "red":
		return flatscan.LineRed, nil
	case "green":
		return flatscan.LineGreen, nil
	case "blue":
		return flatscan.LineBlue, nil
	default:
		return "", flatscan.Errorf(flatscan.EDOMAIN, "unexpected subway line %q", s)
	}
}

// stripBreaks removes embedded line-break markup from captured text.
func stripBreaks(s string) string {
	for _, br := range []string{"<br />", "<br/>", "<br>"} {
		s = strings.ReplaceAll(s, br, "")
	}
	return s
}
