// Package catalog holds the compiled-in sales catalog: priced service
// entries grouped by category, discounted bundle packs, the USD→FC exchange
// rate, the marketing services list and the testimonial fallback set.
// All data is static; there are no mutation entry points.
package catalog

import "github.com/neuronova/backend/internal/model"

// ExchangeRateFC is the fixed conversion rate used for all FC prices:
// francs congolais per US dollar.
const ExchangeRateFC = 2200

// ServiceEntry is a single sellable offering with its price in both
// currencies.
type ServiceEntry struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	PriceUSD float64 `json:"price_usd"`
	PriceFC  float64 `json:"price_fc"`
}

// Category groups related service entries.
type Category struct {
	ID       string         `json:"id"`
	Title    string         `json:"title"`
	Services []ServiceEntry `json:"services"`
}

// Pack bundles a fixed set of service ids at a discounted combined price.
type Pack struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Services    []string `json:"services"`
	PriceUSD    float64  `json:"price_usd"`
	PriceFC     float64  `json:"price_fc"`
}

// Service is an entry of the marketing services list shown on the site.
type Service struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

func entry(id, name string, priceUSD float64) ServiceEntry {
	return ServiceEntry{ID: id, Name: name, PriceUSD: priceUSD, PriceFC: priceUSD * ExchangeRateFC}
}

func pack(id, name, description string, priceUSD float64, services ...string) Pack {
	return Pack{
		ID:          id,
		Name:        name,
		Description: description,
		Services:    services,
		PriceUSD:    priceUSD,
		PriceFC:     priceUSD * ExchangeRateFC,
	}
}

var categories = []Category{
	{
		ID:    "web",
		Title: "Sites Web",
		Services: []ServiceEntry{
			entry("site-vitrine", "Site vitrine", 350),
			entry("e-commerce", "Boutique e-commerce", 600),
			entry("application-web", "Application web sur mesure", 900),
		},
	},
	{
		ID:    "design",
		Title: "Design & Branding",
		Services: []ServiceEntry{
			entry("logo", "Création de logo", 100),
			entry("identite-visuelle", "Identité visuelle complète", 250),
			entry("montage-video", "Montage vidéo professionnel", 200),
		},
	},
	{
		ID:    "ai",
		Title: "Intelligence Artificielle",
		Services: []ServiceEntry{
			entry("chatbot", "Chatbot intelligent", 400),
			entry("agent-ia", "Agent IA sur mesure", 800),
		},
	},
	{
		ID:    "security",
		Title: "Cybersécurité",
		Services: []ServiceEntry{
			entry("audit-securite", "Audit de sécurité", 500),
			entry("formation-securite", "Formation aux bonnes pratiques", 300),
		},
	},
}

var packs = []Pack{
	pack("pack-starter", "Pack Starter",
		"Logo et site vitrine pour lancer votre présence en ligne.",
		400, "logo", "site-vitrine"),
	pack("pack-business", "Pack Business",
		"Site vitrine, logo et chatbot pour automatiser votre relation client.",
		750, "logo", "site-vitrine", "chatbot"),
	pack("pack-premium", "Pack Premium",
		"Identité visuelle, application web et agent IA sur mesure.",
		1700, "identite-visuelle", "application-web", "agent-ia"),
}

var services = []Service{
	{
		ID:          "web",
		Title:       "Création de Sites Web",
		Description: "Sites vitrines, e-commerce, applications web sur mesure avec les dernières technologies.",
		Icon:        "Globe",
	},
	{
		ID:          "ai",
		Title:       "Agents IA",
		Description: "Chatbots intelligents, assistants virtuels et automatisation par intelligence artificielle.",
		Icon:        "Bot",
	},
	{
		ID:          "gadgets",
		Title:       "Gadgets Tech",
		Description: "Conception et fabrication de dispositifs IoT et solutions hardware innovantes.",
		Icon:        "Cpu",
	},
	{
		ID:          "security",
		Title:       "Cybersécurité",
		Description: "Audits de sécurité, protection des données et formation aux bonnes pratiques.",
		Icon:        "Shield",
	},
	{
		ID:          "design",
		Title:       "Design & Montage Vidéo",
		Description: "Identité visuelle, UI/UX design, montage vidéo professionnel et motion design.",
		Icon:        "Palette",
	},
	{
		ID:          "coaching",
		Title:       "Coaching Entrepreneurial",
		Description: "Accompagnement stratégique, mentorat et formation pour entrepreneurs tech.",
		Icon:        "Rocket",
	},
}

// fallbackTestimonials is served when the testimonials collection is empty.
// Derived data: it is never written to the store.
var fallbackTestimonials = []*model.Testimonial{
	{
		ID:       "1",
		Name:     "Marie Kabongo",
		Company:  "TechStart RDC",
		Content:  "Neuronova a transformé notre présence en ligne. Leur équipe est professionnelle et créative. Notre site attire maintenant 3x plus de clients.",
		Rating:   5,
		ImageURL: "https://images.pexels.com/photos/3769021/pexels-photo-3769021.jpeg?auto=compress&cs=tinysrgb&w=150",
	},
	{
		ID:       "2",
		Name:     "Patrick Mukendi",
		Company:  "FinanceHub Africa",
		Content:  "L'agent IA développé par Neuronova a révolutionné notre service client. Réponses instantanées 24/7, nos clients sont ravis!",
		Rating:   5,
		ImageURL: "https://images.pexels.com/photos/2379004/pexels-photo-2379004.jpeg?auto=compress&cs=tinysrgb&w=150",
	},
	{
		ID:       "3",
		Name:     "Sophie Ilunga",
		Company:  "EcoVert Kinshasa",
		Content:  "Excellente collaboration sur notre identité visuelle. Le design est moderne et reflète parfaitement nos valeurs environnementales.",
		Rating:   5,
		ImageURL: "https://images.pexels.com/photos/1239291/pexels-photo-1239291.jpeg?auto=compress&cs=tinysrgb&w=150",
	},
	{
		ID:       "4",
		Name:     "Jean-Baptiste Lumumba",
		Company:  "SecureBank Congo",
		Content:  "L'audit cybersécurité de Neuronova a identifié des failles critiques. Leur expertise nous a permis de renforcer significativement notre infrastructure.",
		Rating:   5,
		ImageURL: "https://images.pexels.com/photos/614810/pexels-photo-614810.jpeg?auto=compress&cs=tinysrgb&w=150",
	},
}

// Categories returns the priced service categories.
func Categories() []Category { return categories }

// Packs returns the discounted service bundles.
func Packs() []Pack { return packs }

// ExchangeRate returns the fixed FC-per-USD conversion rate.
func ExchangeRate() float64 { return ExchangeRateFC }

// Services returns the marketing services list.
func Services() []Service { return services }

// FallbackTestimonials returns the default testimonial set served when the
// store holds none.
func FallbackTestimonials() []*model.Testimonial { return fallbackTestimonials }
