package jsonld

const (
	schemaContext = "https://schema.org"
	inStock       = "https://schema.org/InStock"
	currency      = "EUR"
)

// Graph is a JSON-LD document holding several linked nodes.
type Graph struct {
	Context string `json:"@context"`
	Graph   []any  `json:"@graph"`
}

// Organization is used both as a full node and as a reference by @id.
type Organization struct {
	Context         string           `json:"@context,omitempty"`
	Type            string           `json:"@type,omitempty"`
	ID              string           `json:"@id,omitempty"`
	Name            string           `json:"name,omitempty"`
	URL             string           `json:"url,omitempty"`
	Logo            string           `json:"logo,omitempty"`
	AggregateRating *AggregateRating `json:"aggregateRating,omitempty"`
	Review          []Review         `json:"review,omitempty"`
}

type WebSite struct {
	Type string `json:"@type"`
	ID   string `json:"@id"`
	Name string `json:"name"`
	URL  string `json:"url,omitempty"`
}

type WebPage struct {
	Type        string          `json:"@type"`
	ID          string          `json:"@id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	URL         string          `json:"url"`
	InLanguage  string          `json:"inLanguage,omitempty"`
	IsPartOf    WebSite         `json:"isPartOf"`
	Breadcrumb  *BreadcrumbList `json:"breadcrumb,omitempty"`
}

type BreadcrumbList struct {
	Type            string     `json:"@type"`
	ItemListElement []ListItem `json:"itemListElement"`
}

type ListItem struct {
	Type     string `json:"@type"`
	Position int    `json:"position"`
	Name     string `json:"name"`
	Item     string `json:"item,omitempty"`
}

type Brand struct {
	Type string `json:"@type"`
	Name string `json:"name"`
}

type Offer struct {
	Type          string        `json:"@type"`
	Name          string        `json:"name,omitempty"`
	Description   string        `json:"description,omitempty"`
	Price         int           `json:"price"`
	PriceCurrency string        `json:"priceCurrency"`
	Availability  string        `json:"availability"`
	ValidFrom     string        `json:"validFrom,omitempty"`
	URL           string        `json:"url,omitempty"`
	Seller        *Organization `json:"seller,omitempty"`
}

type AggregateRating struct {
	Type        string  `json:"@type"`
	RatingValue float64 `json:"ratingValue"`
	ReviewCount int     `json:"reviewCount"`
	BestRating  int     `json:"bestRating,omitempty"`
}

type Rating struct {
	Type        string `json:"@type"`
	RatingValue int    `json:"ratingValue"`
	BestRating  int    `json:"bestRating"`
}

type Person struct {
	Type string `json:"@type"`
	Name string `json:"name"`
}

type Review struct {
	Type         string `json:"@type"`
	Author       Person `json:"author"`
	ReviewRating Rating `json:"reviewRating"`
	ReviewBody   string `json:"reviewBody"`
}

// ServiceProduct is a service that is also sold as a product, so it carries
// both schema types.
type ServiceProduct struct {
	Type            []string        `json:"@type"`
	ID              string          `json:"@id"`
	Name            string          `json:"name"`
	Description     string          `json:"description"`
	Image           string          `json:"image"`
	URL             string          `json:"url"`
	SKU             string          `json:"sku"`
	Brand           Brand           `json:"brand"`
	Category        string          `json:"category"`
	ServiceType     string          `json:"serviceType"`
	Provider        Organization    `json:"provider"`
	Offers          Offer           `json:"offers"`
	AggregateRating AggregateRating `json:"aggregateRating"`
}

type OfferCatalog struct {
	Type            string  `json:"@type"`
	Name            string  `json:"name"`
	ItemListElement []Offer `json:"itemListElement"`
}

type Service struct {
	Type            string       `json:"@type"`
	Name            string       `json:"name"`
	Provider        Organization `json:"provider"`
	ServiceType     string       `json:"serviceType"`
	AreaServed      string       `json:"areaServed"`
	HasOfferCatalog OfferCatalog `json:"hasOfferCatalog"`
}

type FAQPage struct {
	Type       string     `json:"@type"`
	MainEntity []Question `json:"mainEntity"`
}

type Question struct {
	Type           string `json:"@type"`
	Name           string `json:"name"`
	AcceptedAnswer Answer `json:"acceptedAnswer"`
}

type Answer struct {
	Type string `json:"@type"`
	Text string `json:"text"`
}

func question(name, answer string) Question {
	return Question{
		Type:           "Question",
		Name:           name,
		AcceptedAnswer: Answer{Type: "Answer", Text: answer},
	}
}
