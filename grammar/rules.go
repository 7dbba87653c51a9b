package grammar

import "regexp"

// Lexical atoms. Thousands groups may be separated by regular, no-break,
// narrow no-break, or thin spaces; decimals accept both '.' and ','.
const (
	intPat   = `\d+`
	moneyPat = `\d+(?:[ \x{00A0}\x{202F}\x{2009}]\d{3})*`
	floatPat = `\d+(?:[.,]\d+)?`

	// datePat is the closed family of relative-date phrases. The matched
	// phrase is the stored value; no date arithmetic is ever performed.
	datePat = `вчора|сьогодні` +
		`|\d+\s+дн(?:ів|і|я)\s+тому` +
		`|\d+\s+тиж\.\s+тому` +
		`|\d+\s+міс\.\s+тому` +
		`|\d+\s+р\.(?:\s+\d+\s+міс\.)?\s+тому`
)

// EventDate validates a relative-date phrase in isolation.
var EventDate = &Rule{
	tag: TagEventDate,
	re:  regexp.MustCompile(`^(?:` + datePat + `)$`),
}

// Identifier matches the listing id container. The canonical link is
// derived from the captured number during extraction.
var Identifier = &Rule{
	tag: TagIdentifier,
	re:  regexp.MustCompile(`<div class="offer-view-id"[^>]*>\s*(?:Код:\s*)?(` + intPat + `)\s*</div>`),
}

// Price matches the price title and exposes the amount and the optional
// currency symbol in that order. "грн" is the no-op local-currency match.
var Price = &Rule{
	tag: TagPrice,
	re:  regexp.MustCompile(`<div class="offer-view-price-title">\s*(` + moneyPat + `)\s*(\$|€|грн)?`),
}

// Address exposes street, house number, city, and district positionally.
// The house number may contain letters and fractions ("13/8", "5а").
var Address = &Rule{
	tag: TagAddress,
	re: regexp.MustCompile(`(?s)<div class="offer-view-address">\s*([^,<]+?),\s*([^<,\s]+)\s*</div>` +
		`.*?<div class="offer-view-region">.*?<a[^>]*>\s*([^<]+?)\s*</a>\s*,\s*<a[^>]*>\s*([^<]+?)\s*</a>`),
}

// Description captures the short advertisement text under the "Опис"
// section title.
var Description = &Rule{
	tag: TagDescription,
	re: regexp.MustCompile(`(?s)<div class="offer-view-section-title">Опис</div>\s*` +
		`<div class="offer-view-section-text">\s*(.*?)\s*</div>`),
}

// Characteristics is strictly positional: room count, area triple, floor
// pair, renewal phrase, publish phrase, views triple. All six sub-groups
// must be present for the section to match.
var Characteristics = &Rule{
	tag: TagCharacteristics,
	re: regexp.MustCompile(`(?s)<div class="offer-view-details-column">` +
		`.*?(` + intPat + `)\s+кімнат` +
		`.*?(` + floatPat + `)\s*/\s*(` + floatPat + `)\s*/\s*(` + floatPat + `)\s*м²` +
		`.*?поверх\s+(` + intPat + `)\s+з\s+(` + intPat + `)` +
		`.*?<span>\s*(` + datePat + `)\s*</span>` +
		`.*?<span>\s*(` + datePat + `)\s*</span>` +
		`.*?(` + intPat + `)\s*\(сьогодні\s+(` + intPat + `),\s*вчора\s+(` + intPat + `)\)`),
}

// Label-section child rules. Each is independently optional and repeatable;
// the section imposes no order and no count.
var (
	premium = &Rule{
		tag:     TagPremium,
		re:      regexp.MustCompile(`-premium[^>]*>\s*(ПРЕМІУМ)`),
		capText: true,
	}
	shortPeriod = &Rule{
		tag:     TagShortPeriod,
		re:      regexp.MustCompile(`card-click-short_period_chip[^>]*>\s*(?:<img[^>]*>)?\s*(Подобово)`),
		capText: true,
	}
	commissionRate = &Rule{
		tag: TagCommissionRate,
		re:  regexp.MustCompile(`Комісія\s+(` + intPat + `)\s*%`),
	}
	commissionFee = &Rule{
		tag: TagCommissionFee,
		re:  regexp.MustCompile(`Комісія\s+(` + moneyPat + `)\s*(USD|\$|€|грн)`),
	}
	subwayStation = &Rule{
		tag: TagSubwayStation,
		re:  regexp.MustCompile(`(?s)-subway-([a-z]+)"[^>]*>.*?<span>\s*([^<]+?)\s*</span>`),
	}
	landmark = &Rule{
		tag:     TagLandmark,
		re:      regexp.MustCompile(`card-click-landmark_chip[^>]*>\s*([^<]+?)\s*</a>`),
		capText: true,
	}
	residentialComplex = &Rule{
		tag:     TagResidentialComplex,
		re:      regexp.MustCompile(`card-click-newhouse_chip[^>]*>\s*(ЖК[^<]*?)\s*</a>`),
		capText: true,
	}
	allowChildren = &Rule{
		tag:     TagAllowChildren,
		re:      regexp.MustCompile(`card-click-allow_children_chip[^>]*>\s*(?:<img[^>]*>)?\s*(Можна з дітьми)`),
		capText: true,
	}
	allowPets = &Rule{
		tag:     TagAllowPets,
		re:      regexp.MustCompile(`card-click-allow_pets_chip[^>]*>\s*(?:<img[^>]*>)?\s*(Можна з тваринами)`),
		capText: true,
	}
)

// LabelSection matches the labels container and scans it for its repeated,
// order-independent children.
var LabelSection = &Rule{
	tag:  TagLabelSection,
	re:   regexp.MustCompile(`(?s)<div class="offer-view-labels[^"]*">(.*?)</div>`),
	body: 1,
	children: []*Rule{
		premium, shortPeriod, commissionRate, commissionFee,
		subwayStation, landmark, residentialComplex, allowChildren, allowPets,
	},
}

// Details child rules, each optional and located anywhere inside the
// details text.
var (
	houseType = &Rule{
		tag:     TagHouseType,
		re:      regexp.MustCompile(`Будинок\s*-\s*([^,.<]+)`),
		capText: true,
	}
	roomPlanning = &Rule{
		tag:     TagRoomPlanning,
		re:      regexp.MustCompile(`Планування кімнат\s+([^.<]+?)\s*\.`),
		capText: true,
	}
	apartmentState = &Rule{
		tag:     TagState,
		re:      regexp.MustCompile(`Загальний стан квартири\s*-\s*([^.<]+?)\s*\.`),
		capText: true,
	}
	bargain = &Rule{
		tag:     TagBargain,
		re:      regexp.MustCompile(`(Торг доречний)`),
		capText: true,
	}
)

// Details captures the full details text under the "Деталі" section title
// and scans it for the optional house-type, planning, state, and bargain
// sub-fragments.
var Details = &Rule{
	tag: TagDetails,
	re: regexp.MustCompile(`(?s)<div class="offer-view-section-title">Деталі</div>\s*` +
		`<div class="offer-view-section-text">\s*(.*?)\s*</div>`),
	body:     1,
	children: []*Rule{houseType, roomPlanning, apartmentState, bargain},
}

// Realtor is strictly positional: phone number (from the agent's profile
// subdomain), name, position, then an optional agency container.
var Realtor = &Rule{
	tag: TagRealtor,
	re: regexp.MustCompile(`(?s)href="https://(\d+)\.rieltor\.ua/"\s+class="offer-view-rieltor-name"[^>]*>` +
		`\s*(.+?)\s*</a>` +
		`\s*<div class="offer-view-rieltor-position">\s*(.+?)\s*</div>` +
		`(?:\s*<a href="[^"]*" class="offer-view-rieltor-agency-link">\s*(.+?)\s*</a>)?`),
}

// PhotoList collects every gallery image URL in source order, without
// de-duplication.
var PhotoList = &Rule{
	tag:      TagPhotoList,
	re:       regexp.MustCompile(`<img class="offer-photo-gallery__image"\s+src="(https://img\.lunstatic\.net/[^"]+)"`),
	repeat:   true,
	childTag: TagPhoto,
}
