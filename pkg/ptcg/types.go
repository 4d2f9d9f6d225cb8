package ptcg

// ResourceKind identifies one of the six catalog entity categories served by
// the upstream API. Each kind maps to exactly one URL path segment.
type ResourceKind string

const (
	// KindCard is the cards collection.
	KindCard ResourceKind = "cards"

	// KindSet is the sets collection.
	KindSet ResourceKind = "sets"

	// KindType is the energy type catalog.
	KindType ResourceKind = "types"

	// KindSupertype is the supertype catalog.
	KindSupertype ResourceKind = "supertypes"

	// KindSubtype is the subtype catalog.
	KindSubtype ResourceKind = "subtypes"

	// KindRarity is the rarity catalog.
	KindRarity ResourceKind = "rarities"
)

// Path returns the URL path segment for the kind, relative to the API base.
func (k ResourceKind) Path() string {
	return string(k)
}

// Lookupable reports whether the upstream exposes a lookup-by-id endpoint for
// the kind. Only cards and sets do; the catalog kinds are list-only.
func (k ResourceKind) Lookupable() bool {
	return k == KindCard || k == KindSet
}

// SingleResponse is the wire envelope around a single resource.
type SingleResponse[T any] struct {
	Data T `json:"data" yaml:"data"`
}

// ListResponse is the wire envelope around a collection of resources. The
// pagination fields are present on upstream collection responses but are
// optional on decode.
type ListResponse[T any] struct {
	Data       []T `json:"data"                 yaml:"data"`
	Page       int `json:"page,omitempty"       yaml:"page,omitempty"`
	PageSize   int `json:"pageSize,omitempty"   yaml:"pageSize,omitempty"`
	Count      int `json:"count,omitempty"      yaml:"count,omitempty"`
	TotalCount int `json:"totalCount,omitempty" yaml:"totalCount,omitempty"`
}

// Type is an energy type, e.g. "Colorless" or "Fire".
type Type string

// Supertype is a card supertype, e.g. "Pokémon", "Trainer" or "Energy".
type Supertype string

// Subtype is a card subtype, e.g. "Item" or "Supporter".
type Subtype string

// Rarity is a card rarity, e.g. "Rare Holo".
type Rarity string

// Legalities records format legality of a card or set.
type Legalities struct {
	Unlimited string `json:"unlimited,omitempty" yaml:"unlimited,omitempty"`
	Standard  string `json:"standard,omitempty"  yaml:"standard,omitempty"`
	Expanded  string `json:"expanded,omitempty"  yaml:"expanded,omitempty"`
}

// SetImages holds the artwork URLs of a set.
type SetImages struct {
	Symbol string `json:"symbol" yaml:"symbol"`
	Logo   string `json:"logo"   yaml:"logo"`
}

// Set represents an expansion set.
type Set struct {
	ID           string     `json:"id"                 yaml:"id"`
	Name         string     `json:"name"               yaml:"name"`
	Series       string     `json:"series"             yaml:"series"`
	PrintedTotal int        `json:"printedTotal"       yaml:"printedTotal"`
	Total        int        `json:"total"              yaml:"total"`
	Legalities   Legalities `json:"legalities"         yaml:"legalities"`
	PTCGOCode    string     `json:"ptcgoCode,omitempty" yaml:"ptcgoCode,omitempty"`
	ReleaseDate  string     `json:"releaseDate"        yaml:"releaseDate"`
	UpdatedAt    string     `json:"updatedAt"          yaml:"updatedAt"`
	Images       SetImages  `json:"images"             yaml:"images"`
}

// Ability is an ability printed on a card.
type Ability struct {
	Name string `json:"name" yaml:"name"`
	Text string `json:"text" yaml:"text"`
	Type string `json:"type" yaml:"type"`
}

// Attack is an attack printed on a card.
type Attack struct {
	Name                string   `json:"name"                yaml:"name"`
	Cost                []string `json:"cost,omitempty"      yaml:"cost,omitempty"`
	ConvertedEnergyCost int      `json:"convertedEnergyCost" yaml:"convertedEnergyCost"`
	Damage              string   `json:"damage,omitempty"    yaml:"damage,omitempty"`
	Text                string   `json:"text,omitempty"      yaml:"text,omitempty"`
}

// Effect is a weakness or resistance entry.
type Effect struct {
	Type  string `json:"type"  yaml:"type"`
	Value string `json:"value" yaml:"value"`
}

// CardImages holds the artwork URLs of a card.
type CardImages struct {
	Small string `json:"small" yaml:"small"`
	Large string `json:"large" yaml:"large"`
}

// Prices is one price bucket from a market listing.
type Prices struct {
	Low       *float64 `json:"low,omitempty"       yaml:"low,omitempty"`
	Mid       *float64 `json:"mid,omitempty"       yaml:"mid,omitempty"`
	High      *float64 `json:"high,omitempty"      yaml:"high,omitempty"`
	Market    *float64 `json:"market,omitempty"    yaml:"market,omitempty"`
	DirectLow *float64 `json:"directLow,omitempty" yaml:"directLow,omitempty"`
}

// TCGPlayer is the tcgplayer.com market block attached to a card.
type TCGPlayer struct {
	URL       string            `json:"url"              yaml:"url"`
	UpdatedAt string            `json:"updatedAt"        yaml:"updatedAt"`
	Prices    map[string]Prices `json:"prices,omitempty" yaml:"prices,omitempty"`
}

// CardmarketPrices is the cardmarket.com price summary.
type CardmarketPrices struct {
	AverageSellPrice *float64 `json:"averageSellPrice,omitempty" yaml:"averageSellPrice,omitempty"`
	LowPrice         *float64 `json:"lowPrice,omitempty"         yaml:"lowPrice,omitempty"`
	TrendPrice       *float64 `json:"trendPrice,omitempty"       yaml:"trendPrice,omitempty"`
	Avg1             *float64 `json:"avg1,omitempty"             yaml:"avg1,omitempty"`
	Avg7             *float64 `json:"avg7,omitempty"             yaml:"avg7,omitempty"`
	Avg30            *float64 `json:"avg30,omitempty"            yaml:"avg30,omitempty"`
	ReverseHoloTrend *float64 `json:"reverseHoloTrend,omitempty" yaml:"reverseHoloTrend,omitempty"`
}

// Cardmarket is the cardmarket.com market block attached to a card.
type Cardmarket struct {
	URL       string           `json:"url"       yaml:"url"`
	UpdatedAt string           `json:"updatedAt" yaml:"updatedAt"`
	Prices    CardmarketPrices `json:"prices"    yaml:"prices"`
}

// Card represents a single card.
type Card struct {
	ID                     string      `json:"id"                               yaml:"id"`
	Name                   string      `json:"name"                             yaml:"name"`
	Supertype              Supertype   `json:"supertype"                        yaml:"supertype"`
	Subtypes               []Subtype   `json:"subtypes,omitempty"               yaml:"subtypes,omitempty"`
	Level                  string      `json:"level,omitempty"                  yaml:"level,omitempty"`
	HP                     string      `json:"hp,omitempty"                     yaml:"hp,omitempty"`
	Types                  []Type      `json:"types,omitempty"                  yaml:"types,omitempty"`
	EvolvesFrom            string      `json:"evolvesFrom,omitempty"            yaml:"evolvesFrom,omitempty"`
	EvolvesTo              []string    `json:"evolvesTo,omitempty"              yaml:"evolvesTo,omitempty"`
	Rules                  []string    `json:"rules,omitempty"                  yaml:"rules,omitempty"`
	Abilities              []Ability   `json:"abilities,omitempty"              yaml:"abilities,omitempty"`
	Attacks                []Attack    `json:"attacks,omitempty"                yaml:"attacks,omitempty"`
	Weaknesses             []Effect    `json:"weaknesses,omitempty"             yaml:"weaknesses,omitempty"`
	Resistances            []Effect    `json:"resistances,omitempty"            yaml:"resistances,omitempty"`
	RetreatCost            []string    `json:"retreatCost,omitempty"            yaml:"retreatCost,omitempty"`
	ConvertedRetreatCost   int         `json:"convertedRetreatCost,omitempty"   yaml:"convertedRetreatCost,omitempty"`
	Set                    Set         `json:"set"                              yaml:"set"`
	Number                 string      `json:"number"                           yaml:"number"`
	Artist                 string      `json:"artist,omitempty"                 yaml:"artist,omitempty"`
	Rarity                 Rarity      `json:"rarity,omitempty"                 yaml:"rarity,omitempty"`
	FlavorText             string      `json:"flavorText,omitempty"             yaml:"flavorText,omitempty"`
	NationalPokedexNumbers []int       `json:"nationalPokedexNumbers,omitempty" yaml:"nationalPokedexNumbers,omitempty"`
	Legalities             Legalities  `json:"legalities"                       yaml:"legalities"`
	Images                 CardImages  `json:"images"                           yaml:"images"`
	TCGPlayer              *TCGPlayer  `json:"tcgplayer,omitempty"              yaml:"tcgplayer,omitempty"`
	Cardmarket             *Cardmarket `json:"cardmarket,omitempty"             yaml:"cardmarket,omitempty"`
}
