package analytics

// Testimonial is a client review shown on the home page.
type Testimonial struct {
	Author  string `json:"author"`
	Company string `json:"company"`
	Rating  int    `json:"rating"`
	Quote   string `json:"quote"`
}

// Testimonials returns the reviews featured on the home page.
func Testimonials() []Testimonial {
	return []Testimonial{
		{
			Author:  "Claire Martin",
			Company: "Atelier Lumière",
			Rating:  5,
			Quote:   "Notre site vitrine a doublé nos demandes de devis en trois mois.",
		},
		{
			Author:  "Karim Benali",
			Company: "Maison Benali",
			Rating:  5,
			Quote:   "La boutique en ligne a été livrée dans les temps, et le suivi est impeccable.",
		},
		{
			Author:  "Sophie Lefèvre",
			Company: "Studio Nord",
			Rating:  5,
			Quote:   "Le chatbot répond à la moitié de nos questions clients sans intervention.",
		},
	}
}
