// Package grammar recognizes the listing-relevant fragments of rieltor.ua
// markup. Each semantic field has one declarative rule tolerant of
// arbitrary surrounding noise; no DOM is built. Rules produce tagged
// fragments with positional sub-captures which the extract package
// converts into the domain record.
//
// The grammar targets one markup snapshot of the site; it is not expected
// to survive markup redesigns.
package grammar

import (
	"regexp"
	"sort"

	"github.com/avolos/flatscan"
)

// Tag identifies the grammar rule that produced a fragment.
type Tag string

// Document-level fragment tags.
const (
	TagIdentifier      Tag = "identifier"
	TagPrice           Tag = "price"
	TagAddress         Tag = "address"
	TagDescription     Tag = "description"
	TagCharacteristics Tag = "characteristics"
	TagLabelSection    Tag = "label_section"
	TagDetails         Tag = "details"
	TagRealtor         Tag = "realtor"
	TagPhotoList       Tag = "photo_list"
)

// Child fragment tags produced inside the label section, the details text,
// and the photo list.
const (
	TagPremium            Tag = "premium_advert"
	TagShortPeriod        Tag = "short_period"
	TagCommissionRate     Tag = "commission_rate"
	TagCommissionFee      Tag = "commission_fee"
	TagSubwayStation      Tag = "subway_station"
	TagLandmark           Tag = "landmark"
	TagResidentialComplex Tag = "residential_complex"
	TagAllowChildren      Tag = "allow_children"
	TagAllowPets          Tag = "allow_pets"
	TagBargain            Tag = "bargain"
	TagHouseType          Tag = "house_type"
	TagRoomPlanning       Tag = "room_planning"
	TagState              Tag = "state"
	TagPhoto              Tag = "photo"
	TagEventDate          Tag = "event_date"
)

// Fragment is a tagged, bounded region of the input recognized by one rule.
// Captures holds the rule's positional sub-captures; repeated or
// order-independent sub-matches appear as Children in encounter order.
type Fragment struct {
	Tag      Tag
	Text     string
	Captures []string
	Children []Fragment

	start int
}

// Rule is one pattern of the grammar. Rules with child rules scan their
// body for every child match and report them sorted by position, which is
// what makes the label section order-independent.
type Rule struct {
	tag      Tag
	re       *regexp.Regexp
	body     int // capture group index scanned for children; 0 = whole match
	children []*Rule
	repeat   bool // rule matches a repeated item; Find returns a container
	childTag Tag  // tag assigned to repeated items
	capText  bool // fragment text is the first capture, not the full match
}

// Tag returns the tag of fragments produced by the rule.
func (r *Rule) Tag() Tag { return r.tag }

// Match reports whether src as a whole satisfies the rule.
// Used by the lexical atoms and link validators.
func (r *Rule) Match(src string) bool { return r.re.MatchString(src) }

// Find returns the first fragment the rule recognizes in src.
func (r *Rule) Find(src string) (Fragment, bool) {
	if r.repeat {
		return r.findContainer(src)
	}
	m := r.re.FindStringSubmatchIndex(src)
	if m == nil {
		return Fragment{}, false
	}
	return r.fragmentAt(src, m), true
}

// findContainer collects every match of a repeated rule into a single
// container fragment whose children preserve source order.
func (r *Rule) findContainer(src string) (Fragment, bool) {
	ms := r.re.FindAllStringSubmatchIndex(src, -1)
	if len(ms) == 0 {
		return Fragment{}, false
	}
	container := Fragment{
		Tag:   r.tag,
		Text:  src[ms[0][0]:ms[len(ms)-1][1]],
		start: ms[0][0],
	}
	for _, m := range ms {
		child := r.fragmentAt(src, m)
		child.Tag = r.childTag
		container.Children = append(container.Children, child)
	}
	return container, true
}

func (r *Rule) fragmentAt(src string, m []int) Fragment {
	f := Fragment{Tag: r.tag, Text: src[m[0]:m[1]], start: m[0]}
	for i := 1; 2*i < len(m); i++ {
		if m[2*i] < 0 {
			f.Captures = append(f.Captures, "")
		} else {
			f.Captures = append(f.Captures, src[m[2*i]:m[2*i+1]])
		}
	}
	if r.capText && len(f.Captures) > 0 {
		f.Text = f.Captures[0]
	}
	if len(r.children) > 0 && !r.repeat {
		b0, b1 := m[0], m[1]
		if r.body > 0 && m[2*r.body] >= 0 {
			b0, b1 = m[2*r.body], m[2*r.body+1]
		}
		f.Children = scanChildren(src[b0:b1], b0, r.children)
	}
	return f
}

// scanChildren runs every child rule over the body and merges the matches
// by position. Zero or more of each child may appear; no order or count is
// imposed.
func scanChildren(body string, offset int, rules []*Rule) []Fragment {
	var kids []Fragment
	for _, c := range rules {
		for _, m := range c.re.FindAllStringSubmatchIndex(body, -1) {
			kf := c.fragmentAt(body, m)
			kf.start += offset
			kids = append(kids, kf)
		}
	}
	sort.Slice(kids, func(i, j int) bool { return kids[i].start < kids[j].start })
	return kids
}

// documentRules are the top-level rules tried against a listing document,
// in no significant order; fragments are reported in document order.
var documentRules = []*Rule{
	Identifier,
	Price,
	Address,
	Description,
	Characteristics,
	LabelSection,
	Details,
	Realtor,
	PhotoList,
}

// Document matches a whole listing page, skipping unrecognized markup
// silently. It does not require every field to be present, but fails with
// a structural-mismatch error when nothing in the input is recognized.
func Document(src string) ([]Fragment, error) {
	var frags []Fragment
	for _, r := range documentRules {
		if f, ok := r.Find(src); ok {
			frags = append(frags, f)
		}
	}
	if len(frags) == 0 {
		return nil, flatscan.Errorf(flatscan.ESYNTAX, "no listing structure recognized in document")
	}
	sort.Slice(frags, func(i, j int) bool { return frags[i].start < frags[j].start })
	return frags, nil
}
