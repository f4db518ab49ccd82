package signal

// problemStatements map signals to canned problem statements for
// outreach copy. Not every signal carries one.
var problemStatements = map[string]string{
	SignalNoWebsite:         "no tienen página web, así que el turista que busca en Google reserva con la competencia",
	SignalNoInstagram:       "no aparecen en Instagram, donde el viajero decide qué hacer en Cartagena",
	SignalNoPhone:           "no publican un teléfono de contacto, y el cliente no espera a encontrarlo",
	SignalNoGoogleListing:   "no tienen ficha de Google, así que son invisibles en Maps",
	SignalLowRating:         "su calificación está por debajo de 3.5 y eso frena reservas antes de la primera conversación",
	SignalNoReviews:         "no tienen reseñas todavía, y sin prueba social el precio se discute más",
	SignalLowReviews:        "tienen muy pocas reseñas, y el viajero compara por volumen",
	SignalManyUnanswered:    "acumulan reseñas sin responder, y cada una le dice al próximo cliente que nadie escucha",
	SignalUnansweredReviews: "tienen reseñas sin responder a la vista de todos",
	SignalManualResponses:   "responden mensajes a mano, con el horario y la demora que eso implica",
	SignalOTADependent:      "dependen de las OTAs y les regalan la comisión de cada reserva",
}

// defaultProblem covers businesses with no matching signal.
const defaultProblem = "compiten en un mercado turístico saturado sin automatización que los diferencie"

// IdentifyProblem returns the first canned problem statement whose
// signal appears in the detected list, iterating in detection order.
// The detection order, not a severity ranking, decides which problem
// leads the pitch.
func IdentifyProblem(signals []string) string {
	for _, s := range signals {
		if p, ok := problemStatements[s]; ok {
			return p
		}
	}
	return defaultProblem
}
