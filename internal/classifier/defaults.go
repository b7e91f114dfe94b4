package classifier

import "github.com/funnelscope/awareness-classifier/internal/domain"

// Canonical phase colors.
const (
	colorUnaware       = "#9CA3AF"
	colorProblemAware  = "#F87171"
	colorSolutionAware = "#FBBF24"
	colorProductAware  = "#60A5FA"
	colorMostAware     = "#34D399"
)

// DefaultPhases returns fresh copies of the five canonical phase
// definitions for a project: Dutch-language default indicators, two
// recommended marketing angles per phase, zero percentage and empty
// content. Indicator and angle ids are stable so removals of default
// entries round-trip across re-initialization.
func DefaultPhases(projectID string) []*domain.Phase {
	phases := make([]*domain.Phase, 0, domain.PhaseCount)
	for _, def := range defaultPhaseDefs {
		phase := &domain.Phase{
			ProjectID:         projectID,
			Name:              def.name,
			DisplayName:       def.displayName,
			Description:       def.description,
			Order:             def.order,
			Color:             def.color,
			Percentage:        0,
			Indicators:        append([]domain.Indicator(nil), def.indicators...),
			RecommendedAngles: append([]domain.MarketingAngle(nil), def.angles...),
			Content:           []domain.ContentItem{},
		}
		phases = append(phases, phase)
	}
	return phases
}

type phaseDef struct {
	name        domain.PhaseName
	displayName string
	description string
	order       int
	color       string
	indicators  []domain.Indicator
	angles      []domain.MarketingAngle
}

var defaultPhaseDefs = []phaseDef{
	{
		name:        domain.PhaseUnaware,
		displayName: "Onbewust",
		description: "De doelgroep ervaart nog geen probleem en zoekt niet naar een oplossing.",
		order:       1,
		color:       colorUnaware,
		indicators: []domain.Indicator{
			{ID: "default-unaware-1", Pattern: "gewoon", Weight: 1, Description: "Alledaagse context zonder probleemtaal"},
			{ID: "default-unaware-2", Pattern: "dagelijks", Weight: 1, Description: "Routine en gewoonten"},
			{ID: "default-unaware-3", Pattern: "nooit bij stilgestaan", Weight: 4, Description: "Expliciet gebrek aan bewustzijn"},
			{ID: "default-unaware-4", Pattern: "geen idee", Weight: 3, Description: "Onwetendheid over het onderwerp"},
			{ID: "default-unaware-5", Pattern: "zomaar", Weight: 2, Description: "Toevallige, ongerichte context"},
		},
		angles: []domain.MarketingAngle{
			{
				ID:          "default-angle-unaware-1",
				Title:       "Verhaal en herkenning",
				Description: "Vertel herkenbare verhalen zonder direct over het probleem te beginnen.",
				Examples:    []string{"Een dag uit het leven van je klant", "Herkenbare situaties op social media"},
			},
			{
				ID:          "default-angle-unaware-2",
				Title:       "Levensstijl content",
				Description: "Sluit aan bij interesses en waarden van de doelgroep.",
				Examples:    []string{"Lifestyle video's", "Inspirerende quotes rond het thema"},
			},
		},
	},
	{
		name:        domain.PhaseProblemAware,
		displayName: "Probleembewust",
		description: "De doelgroep voelt het probleem maar kent de oplossingen nog niet.",
		order:       2,
		color:       colorProblemAware,
		indicators: []domain.Indicator{
			{ID: "default-problem-1", Pattern: "probleem", Weight: 3, Description: "Benoemt expliciet een probleem"},
			{ID: "default-problem-2", Pattern: "hoe kan ik", Weight: 5, Description: "Zoekt hulp bij een probleem"},
			{ID: "default-problem-3", Pattern: "last van", Weight: 4, Description: "Ervaart hinder of klachten"},
			{ID: "default-problem-4", Pattern: "worstel", Weight: 4, Description: "Worstelt met een situatie"},
			{ID: "default-problem-5", Pattern: "frustrerend", Weight: 3, Description: "Uit frustratie"},
			{ID: "default-problem-6", Pattern: "help", Weight: 2, Description: "Roept om hulp"},
		},
		angles: []domain.MarketingAngle{
			{
				ID:          "default-angle-problem-1",
				Title:       "Pijnpunt uitvergroten",
				Description: "Maak het probleem en de gevolgen ervan concreet en voelbaar.",
				Examples:    []string{"Voor/na scenario's", "Cijfers over de impact van het probleem"},
			},
			{
				ID:          "default-angle-problem-2",
				Title:       "Probleem erkennen",
				Description: "Laat zien dat je het probleem begrijpt voordat je iets aanbiedt.",
				Examples:    []string{"Empathische content", "Community-vragen uitlichten"},
			},
		},
	},
	{
		name:        domain.PhaseSolutionAware,
		displayName: "Oplossingsbewust",
		description: "De doelgroep kent oplossingsrichtingen maar nog niet jouw product.",
		order:       3,
		color:       colorSolutionAware,
		indicators: []domain.Indicator{
			{ID: "default-solution-1", Pattern: "oplossing", Weight: 3, Description: "Spreekt over oplossingen"},
			{ID: "default-solution-2", Pattern: "manieren om", Weight: 3, Description: "Verkent meerdere aanpakken"},
			{ID: "default-solution-3", Pattern: "wat werkt", Weight: 3, Description: "Vergelijkt wat effectief is"},
			{ID: "default-solution-4", Pattern: "alternatief", Weight: 3, Description: "Zoekt alternatieven"},
			{ID: "default-solution-5", Pattern: "vergelijk", Weight: 2, Description: "Vergelijkt opties"},
			{ID: "default-solution-6", Pattern: "tips", Weight: 2, Description: "Vraagt om tips"},
		},
		angles: []domain.MarketingAngle{
			{
				ID:          "default-angle-solution-1",
				Title:       "Oplossingen vergelijken",
				Description: "Positioneer jouw aanpak tegenover de bekende alternatieven.",
				Examples:    []string{"Vergelijkingsartikelen", "Voors en tegens per aanpak"},
			},
			{
				ID:          "default-angle-solution-2",
				Title:       "Educatieve content",
				Description: "Leg uit hoe de oplossingscategorie werkt en waar je op moet letten.",
				Examples:    []string{"How-to gidsen", "Webinars en uitlegvideo's"},
			},
		},
	},
	{
		name:        domain.PhaseProductAware,
		displayName: "Productbewust",
		description: "De doelgroep kent jouw product maar is nog niet overtuigd.",
		order:       4,
		color:       colorProductAware,
		indicators: []domain.Indicator{
			{ID: "default-product-1", Pattern: "review", Weight: 3, Description: "Zoekt reviews"},
			{ID: "default-product-2", Pattern: "ervaringen met", Weight: 4, Description: "Vraagt naar ervaringen"},
			{ID: "default-product-3", Pattern: "de moeite waard", Weight: 4, Description: "Weegt de aanschaf af"},
			{ID: "default-product-4", Pattern: "verschil tussen", Weight: 3, Description: "Vergelijkt producten onderling"},
			{ID: "default-product-5", Pattern: "demo", Weight: 2, Description: "Wil het product zien"},
			{ID: "default-product-6", Pattern: "prijs", Weight: 2, Description: "Informeert naar de prijs"},
		},
		angles: []domain.MarketingAngle{
			{
				ID:          "default-angle-product-1",
				Title:       "Social proof",
				Description: "Laat tevreden klanten en resultaten het verhaal vertellen.",
				Examples:    []string{"Klantcases", "Reviews en beoordelingen in campagnes"},
			},
			{
				ID:          "default-angle-product-2",
				Title:       "Productdemonstratie",
				Description: "Toon concreet hoe het product het probleem oplost.",
				Examples:    []string{"Demovideo's", "Gratis proefperiode"},
			},
		},
	},
	{
		name:        domain.PhaseMostAware,
		displayName: "Meest bewust",
		description: "De doelgroep staat op het punt te kopen en zoekt het juiste moment.",
		order:       5,
		color:       colorMostAware,
		indicators: []domain.Indicator{
			{ID: "default-most-1", Pattern: "kopen", Weight: 4, Description: "Spreekt over kopen"},
			{ID: "default-most-2", Pattern: "bestellen", Weight: 4, Description: "Wil bestellen"},
			{ID: "default-most-3", Pattern: "korting", Weight: 3, Description: "Zoekt korting"},
			{ID: "default-most-4", Pattern: "aanbieding", Weight: 3, Description: "Zoekt aanbiedingen"},
			{ID: "default-most-5", Pattern: "waar kan ik", Weight: 3, Description: "Zoekt een verkooppunt"},
			{ID: "default-most-6", Pattern: "verzendkosten", Weight: 3, Description: "Checkt de laatste details"},
		},
		angles: []domain.MarketingAngle{
			{
				ID:          "default-angle-most-1",
				Title:       "Urgentie en aanbod",
				Description: "Geef het laatste zetje met een concreet aanbod.",
				Examples:    []string{"Tijdelijke kortingen", "Bundelaanbiedingen"},
			},
			{
				ID:          "default-angle-most-2",
				Title:       "Drempels wegnemen",
				Description: "Neem de laatste twijfels over de aankoop weg.",
				Examples:    []string{"Gratis verzending", "Niet-goed-geld-terug garantie"},
			},
		},
	},
}
