package catalog

// Default returns a fresh copy of the built-in service catalog.
func Default() []Service {
	out := make([]Service, len(defaultServices))
	for i, svc := range defaultServices {
		out[i] = svc.clone()
	}
	return out
}

var defaultServices = []Service{
	{
		ID:          "site-vitrine",
		Name:        "Site Vitrine",
		Description: "Un site professionnel et responsive pour présenter votre activité et convertir vos visiteurs.",
		Price:       890,
		Duration:    "7-10 jours",
		Features: []string{
			"Design sur-mesure",
			"Jusqu'à 5 pages",
			"Responsive mobile",
			"Formulaire de contact",
			"Optimisation SEO de base",
			"Hébergement la première année",
		},
		Category:    CategoryBase,
		SubCategory: "visibilite",
	},
	{
		ID:          "site-ecommerce",
		Name:        "Site E-commerce",
		Description: "Une boutique en ligne complète pour vendre vos produits 24h/24.",
		Price:       2900,
		Duration:    "4-6 semaines",
		Features: []string{
			"Catalogue produits illimité",
			"Paiement sécurisé",
			"Gestion des commandes",
			"Comptes clients",
			"Tableau de bord des ventes",
		},
		Category:    CategoryBase,
		SubCategory: "vente",
	},
	{
		ID:          "landing-page",
		Name:        "Landing Page",
		Description: "Une page unique pensée pour vos campagnes et vos lancements.",
		Price:       490,
		Duration:    "3-5 jours",
		Features: []string{
			"Copywriting orienté conversion",
			"Intégration analytics",
			"Formulaire de capture",
		},
		Category:    CategoryBase,
		SubCategory: "conversion",
	},
	{
		ID:          "marketplace",
		Name:        "Marketplace",
		Description: "Une plateforme multi-vendeurs avec commissions, profils vendeurs et modération.",
		Price:       5900,
		Duration:    "8-12 semaines",
		Features: []string{
			"Espaces vendeurs",
			"Commissions automatiques",
			"Modération des annonces",
			"Messagerie intégrée",
		},
		Category:    CategoryBase,
		SubCategory: "plateforme",
	},
	{
		ID:          "application-mobile",
		Name:        "Application Mobile",
		Description: "Une application iOS et Android connectée à votre activité.",
		Price:       4500,
		Duration:    "6-8 semaines",
		Features: []string{
			"iOS et Android",
			"Notifications push",
			"Publication sur les stores",
		},
		Category:    CategoryBase,
		SubCategory: "plateforme",
	},
	{
		ID:          "seo-avance",
		Name:        "SEO Avancé",
		Description: "Audit, optimisation technique et stratégie de contenu pour dominer les résultats de recherche.",
		Price:       350,
		Duration:    "2 semaines",
		Features: []string{
			"Audit technique complet",
			"Recherche de mots-clés",
			"Données structurées",
			"Rapport mensuel",
		},
		Category:     CategoryAddon,
		SubCategory:  "visibilite",
		Dependencies: []string{"site-vitrine", "site-ecommerce", "landing-page"},
	},
	{
		ID:          "maintenance-annuelle",
		Name:        "Maintenance Annuelle",
		Description: "Mises à jour, sauvegardes et support pendant douze mois.",
		Price:       190,
		Features: []string{
			"Mises à jour de sécurité",
			"Sauvegardes quotidiennes",
			"Support prioritaire",
		},
		Category:     CategoryAddon,
		SubCategory:  "optimisation",
		Dependencies: []string{"site-vitrine", "site-ecommerce", "marketplace", "application-mobile"},
	},
	{
		ID:          "gestion-inventaire-ia",
		Name:        "Gestion d'Inventaire IA",
		Description: "Prévisions de stock et réassort automatique grâce à l'intelligence artificielle.",
		Price:       690,
		Duration:    "2-3 semaines",
		Features: []string{
			"Prévision des ventes",
			"Alertes de rupture",
			"Réassort automatique",
		},
		Category:     CategoryAddon,
		SubCategory:  "innovation",
		Dependencies: []string{"site-ecommerce", "marketplace"},
	},
	{
		ID:          "systeme-parrainage",
		Name:        "Système de Parrainage",
		Description: "Transformez vos clients en ambassadeurs avec un programme de parrainage.",
		Price:       490,
		Duration:    "1-2 semaines",
		Features: []string{
			"Liens de parrainage uniques",
			"Récompenses automatiques",
			"Suivi des conversions",
		},
		Category:     CategoryAddon,
		SubCategory:  "growth",
		Dependencies: []string{"site-ecommerce", "marketplace", "application-mobile"},
	},
	{
		ID:          "chatbot-ia",
		Name:        "Chatbot IA",
		Description: "Un assistant conversationnel qui répond à vos clients et qualifie vos prospects.",
		Price:       1200,
		Duration:    "2-3 semaines",
		Features: []string{
			"Entraîné sur vos contenus",
			"Disponible 24h/24",
			"Transfert vers un humain",
		},
		Category:     CategoryAddon,
		SubCategory:  "innovation",
		Dependencies: []string{"site-vitrine", "site-ecommerce", "marketplace"},
	},
	{
		ID:          "blog-integre",
		Name:        "Blog Intégré",
		Description: "Un blog pour publier vos actualités et renforcer votre référencement.",
		Price:       290,
		Duration:    "3 jours",
		Features: []string{
			"Catégories et tags",
			"Partage social",
		},
		Category:     CategoryAddon,
		SubCategory:  "visibilite",
		Dependencies: []string{"site-vitrine"},
	},
	{
		ID:          "google-business",
		Name:        "Fiche Google Business",
		Description: "Création et optimisation de votre fiche pour le référencement local.",
		Price:       150,
		Duration:    "2 jours",
		Features: []string{
			"Création de la fiche",
			"Photos et horaires",
		},
		Category:     CategoryAddon,
		SubCategory:  "visibilite",
		Dependencies: []string{"site-vitrine", "landing-page"},
	},
	{
		ID:          "ab-testing",
		Name:        "A/B Testing",
		Description: "Testez vos variantes de pages et gardez celle qui convertit le mieux.",
		Price:       390,
		Features: []string{
			"Tests multivariés",
			"Rapports de significativité",
		},
		Category:     CategoryAddon,
		SubCategory:  "conversion",
		Dependencies: []string{"landing-page", "site-ecommerce"},
	},
	{
		ID:          "formulaire-avance",
		Name:        "Formulaire Avancé",
		Description: "Formulaires multi-étapes avec logique conditionnelle et intégration CRM.",
		Price:       190,
		Duration:    "3 jours",
		Features: []string{
			"Logique conditionnelle",
			"Envoi vers votre CRM",
		},
		Category:     CategoryAddon,
		SubCategory:  "conversion",
		Dependencies: []string{"site-vitrine", "landing-page"},
	},
	{
		ID:          "paiement-multiple",
		Name:        "Paiement en Plusieurs Fois",
		Description: "Proposez le paiement fractionné pour augmenter votre panier moyen.",
		Price:       450,
		Duration:    "1 semaine",
		Features: []string{
			"Paiement en 3 ou 4 fois",
			"Compatible Stripe et PayPal",
		},
		Category:     CategoryAddon,
		SubCategory:  "vente",
		Dependencies: []string{"site-ecommerce", "marketplace"},
	},
	{
		ID:          "relance-panier",
		Name:        "Relance de Panier Abandonné",
		Description: "Récupérez les ventes perdues avec des relances e-mail automatiques.",
		Price:       320,
		Features: []string{
			"Séquences de relance",
			"Codes promo dynamiques",
		},
		Category:     CategoryAddon,
		SubCategory:  "vente",
		Dependencies: []string{"site-ecommerce"},
	},
	{
		ID:          "optimisation-performance",
		Name:        "Optimisation des Performances",
		Description: "Des pages plus rapides pour de meilleurs Core Web Vitals.",
		Price:       420,
		Duration:    "1 semaine",
		Features: []string{
			"Compression des images",
			"Mise en cache",
			"Audit Lighthouse",
		},
		Category:     CategoryAddon,
		SubCategory:  "optimisation",
		Dependencies: []string{"site-vitrine", "site-ecommerce", "marketplace"},
	},
	{
		ID:          "securite-rgpd",
		Name:        "Sécurité & RGPD",
		Description: "Mise en conformité RGPD et durcissement de la sécurité de votre site.",
		Price:       280,
		Duration:    "1 semaine",
		Features: []string{
			"Bannière de consentement",
			"Registre des traitements",
			"Certificat SSL",
		},
		Category:     CategoryAddon,
		SubCategory:  "optimisation",
		Dependencies: []string{"site-vitrine", "site-ecommerce", "marketplace", "application-mobile"},
	},
	{
		ID:          "emailing-automatise",
		Name:        "E-mailing Automatisé",
		Description: "Des scénarios e-mail qui nourrissent vos prospects automatiquement.",
		Price:       360,
		Duration:    "1 semaine",
		Features: []string{
			"Scénarios automatisés",
			"Segmentation",
		},
		Category:     CategoryAddon,
		SubCategory:  "growth",
		Dependencies: []string{"site-vitrine", "site-ecommerce"},
	},
	{
		ID:          "programme-fidelite",
		Name:        "Programme de Fidélité",
		Description: "Points, paliers et récompenses pour faire revenir vos clients.",
		Price:       540,
		Duration:    "2 semaines",
		Features: []string{
			"Points de fidélité",
			"Paliers VIP",
		},
		Category:     CategoryAddon,
		SubCategory:  "growth",
		Dependencies: []string{"site-ecommerce"},
	},
	{
		ID:          "pwa",
		Name:        "Progressive Web App",
		Description: "Votre site installable et utilisable hors ligne.",
		Price:       1100,
		Duration:    "2-3 semaines",
		Features: []string{
			"Mode hors ligne",
			"Installation sur l'écran d'accueil",
			"Notifications web",
		},
		Category:     CategoryAddon,
		SubCategory:  "plateforme",
		Dependencies: []string{"site-vitrine", "site-ecommerce"},
	},
	{
		ID:          "recherche-ia",
		Name:        "Recherche Intelligente IA",
		Description: "Une recherche sémantique qui comprend ce que vos clients veulent dire.",
		Price:       780,
		Duration:    "2 semaines",
		Features: []string{
			"Recherche sémantique",
			"Suggestions instantanées",
		},
		Category:     CategoryAddon,
		SubCategory:  "innovation",
		Dependencies: []string{"site-ecommerce", "marketplace"},
	},
	{
		ID:          "web3-nft",
		Name:        "Intégration Web3 & NFT",
		Description: "Connexion de wallets et vente d'actifs numériques sur votre plateforme.",
		Price:       2400,
		Duration:    "4 semaines",
		Features: []string{
			"Connexion de wallets",
			"Mint de NFT",
		},
		Category:     CategoryAddon,
		SubCategory:  "innovation",
		Dependencies: []string{"marketplace"},
	},
}
