package pricing

// Definition names a pack: one base service plus the add-ons offered with it.
type Definition struct {
	Name        string
	Description string
	BaseID      string
	AddonIDs    []string
	Popular     bool
}

// Pack is the priced view of a Definition. It is derived on every request and
// never stored.
// Price is OriginalPrice minus Savings; Savings is the rounded-up discount.
type Pack struct {
	Name           string   `json:"name"`
	Description    string   `json:"description,omitempty"`
	ServiceID      string   `json:"serviceId"`
	Price          int      `json:"price"`
	OriginalPrice  int      `json:"originalPrice"`
	Savings        int      `json:"savings"`
	DiscountRate   int      `json:"discountRate"`
	ComponentCount int      `json:"componentCount"`
	Components     []string `json:"components"`
	Features       []string `json:"features"`
	Excluded       []string `json:"excluded,omitempty"`
	Complexity     string   `json:"complexity"`
	CTA            string   `json:"cta"`
	Popular        bool     `json:"popular"`
}

// Calculator describes the behaviour required from a pack pricer.
type Calculator interface {
	Build(def Definition) (Pack, bool)
	BuildAll(defs []Definition) []Pack
	Quote(baseID string, addonIDs []string) (Pack, error)
}
