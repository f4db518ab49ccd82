package signal

import (
	"fmt"

	"github.com/caribeleads/intel-cli/internal/model"
)

// Analysis is the signal engine's full output for a business.
type Analysis struct {
	Vertical string   `json:"vertical"`
	Signals  []string `json:"signals"`
	Offer    *Offer   `json:"offer,omitempty"`
	Problem  string   `json:"problem"`
}

// Analyze runs signal detection, offer selection, and problem
// identification for a business.
func Analyze(biz model.Business) Analysis {
	vertical := CategoryKey(biz.Category)
	signals := DetectSignals(biz)
	return Analysis{
		Vertical: vertical,
		Signals:  signals,
		Offer:    FindBestOffer(vertical, signals),
		Problem:  IdentifyProblem(signals),
	}
}

// Scripts holds rendered outreach copy per channel.
type Scripts struct {
	WhatsApp    string `json:"whatsapp"`
	InstagramDM string `json:"instagram_dm"`
	Email       string `json:"email"`
	ColdCall    string `json:"cold_call"`
}

// BuildScripts renders the multi-channel outreach copy from an
// analysis. Plain template substitution; tone per channel.
func BuildScripts(biz model.Business, a Analysis) Scripts {
	offerName := "automatización a la medida"
	pitch := ""
	if a.Offer != nil {
		offerName = a.Offer.Name
		pitch = a.Offer.Pitch
	}

	return Scripts{
		WhatsApp: fmt.Sprintf(
			"Hola, ¿hablo con el equipo de %s? Vi que %s. Ayudamos a negocios de %s en %s con %s. %s ¿Les interesa una demo de 15 minutos?",
			biz.Name, a.Problem, verticalLabel(a.Vertical), cityOrDefault(biz.City), offerName, pitch),
		InstagramDM: fmt.Sprintf(
			"¡Hola %s! 👋 Noté que %s. Trabajamos con %s en %s — %s Les muestro cómo en 2 minutos de video si me dejan un \"sí\".",
			biz.Name, a.Problem, verticalLabel(a.Vertical), cityOrDefault(biz.City), offerName),
		Email: fmt.Sprintf(
			"Asunto: %s — una oportunidad concreta para %s\n\nEquipo %s:\n\nAl revisar su presencia digital notamos que %s.\n\n%s\n\n¿Tienen 15 minutos esta semana para ver números reales de negocios como el suyo?\n\nSaludos,",
			offerName, biz.Name, biz.Name, a.Problem, pitch),
		ColdCall: fmt.Sprintf(
			"Buenos días, le hablo porque revisamos la presencia digital de %s y vimos que %s. En una llamada de 15 minutos le muestro cómo %s resuelve eso — ¿le sirve mañana en la mañana?",
			biz.Name, a.Problem, offerName),
	}
}

// verticalLabel returns the Spanish label for a vertical key.
func verticalLabel(vertical string) string {
	labels := map[string]string{
		VerticalRestaurant:   "restaurantes",
		VerticalCafe:         "cafés",
		VerticalHostel:       "hostales",
		VerticalHotel:        "hoteles",
		VerticalVillaRental:  "rentas vacacionales",
		VerticalTourOperator: "operadores de tours",
		VerticalBoatCharter:  "charters náuticos",
		VerticalSpa:          "spas",
		VerticalNightclub:    "clubes nocturnos",
	}
	if l, ok := labels[vertical]; ok {
		return l
	}
	return "negocios turísticos"
}

func cityOrDefault(city string) string {
	if city == "" {
		return "Cartagena"
	}
	return city
}
