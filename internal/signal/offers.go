package signal

// Offer is a canned automation offer with the signals that trigger it
// and a loss estimate for the pitch.
type Offer struct {
	ID                      string   `json:"id"`
	Name                    string   `json:"name"`
	TriggerSignals          []string `json:"trigger_signals"`
	EstimatedMonthlyLossUSD float64  `json:"estimated_monthly_loss_usd"`
	Pitch                   string   `json:"pitch"`
}

// offerMatrix holds per-vertical offers in priority order. Selection is
// first-match-wins over the trigger-signal intersection; the table
// order encodes the vertical's sales playbook.
var offerMatrix = map[string][]Offer{
	VerticalRestaurant: {
		{
			ID:                      "resv_whatsapp",
			Name:                    "Reservas automáticas por WhatsApp",
			TriggerSignals:          []string{SignalManualResponses, SignalNoPhone},
			EstimatedMonthlyLossUSD: 1800,
			Pitch:                   "Cada mesa vacía por un mensaje sin responder son ~$60 USD perdidos; el bot confirma reservas al instante, 24/7.",
		},
		{
			ID:                      "review_rescue",
			Name:                    "Gestión de reseñas",
			TriggerSignals:          []string{SignalLowRating, SignalUnansweredReviews},
			EstimatedMonthlyLossUSD: 1200,
			Pitch:                   "Responder cada reseña y recuperar clientes molestos sube el rating medio 0.4 estrellas en 3 meses.",
		},
		{
			ID:                      "digital_presence",
			Name:                    "Presencia digital básica",
			TriggerSignals:          []string{SignalNoWebsite, SignalNoInstagram},
			EstimatedMonthlyLossUSD: 900,
			Pitch:                   "Sin página ni Instagram el turista no los encuentra: paquete de presencia digital en 2 semanas.",
		},
	},
	VerticalCafe: {
		{
			ID:                      "digital_presence",
			Name:                    "Presencia digital básica",
			TriggerSignals:          []string{SignalNoWebsite, SignalNoInstagram, SignalLowReviews},
			EstimatedMonthlyLossUSD: 600,
			Pitch:                   "Los cafés viven del descubrimiento: presencia digital que convierte el tráfico de paso en clientes fijos.",
		},
		{
			ID:                      "loyalty_bot",
			Name:                    "Programa de fidelidad por WhatsApp",
			TriggerSignals:          []string{SignalManualResponses},
			EstimatedMonthlyLossUSD: 400,
			Pitch:                   "Un cliente fiel vale 10 visitas: fidelidad automática sin tarjetas de cartón.",
		},
	},
	VerticalHostel: {
		{
			ID:                      "direct_booking",
			Name:                    "Motor de reserva directa",
			TriggerSignals:          []string{SignalOTADependent, SignalNoWebsite},
			EstimatedMonthlyLossUSD: 1500,
			Pitch:                   "Cada reserva por OTA deja 15-20% en comisiones; el motor directo las recupera desde el primer mes.",
		},
		{
			ID:                      "whatsapp_desk",
			Name:                    "Recepción virtual por WhatsApp",
			TriggerSignals:          []string{SignalManualResponses, SignalUnansweredReviews},
			EstimatedMonthlyLossUSD: 800,
			Pitch:                   "Los mochileros preguntan a medianoche: la recepción virtual responde y cobra mientras duermen.",
		},
	},
	VerticalHotel: {
		{
			ID:                      "direct_booking",
			Name:                    "Motor de reserva directa",
			TriggerSignals:          []string{SignalOTADependent, SignalNoWebsite},
			EstimatedMonthlyLossUSD: 4500,
			Pitch:                   "Con 18% de comisión promedio, cada 100 noches por OTA son ~$4.500 USD regalados; la reserva directa los recupera.",
		},
		{
			ID:                      "guest_concierge",
			Name:                    "Concierge automático para huéspedes",
			TriggerSignals:          []string{SignalManualResponses, SignalLuxuryPositioning},
			EstimatedMonthlyLossUSD: 2000,
			Pitch:                   "El huésped de lujo espera respuesta al minuto: el concierge digital vende upgrades y experiencias sin sumar nómina.",
		},
		{
			ID:                      "review_rescue",
			Name:                    "Gestión de reseñas",
			TriggerSignals:          []string{SignalLowRating, SignalManyUnanswered},
			EstimatedMonthlyLossUSD: 2500,
			Pitch:                   "Un hotel bajo 4.0 pierde el 30% de reservas potenciales: rescate de rating con respuesta y recuperación sistemática.",
		},
	},
	VerticalVillaRental: {
		{
			ID:                      "direct_booking",
			Name:                    "Motor de reserva directa",
			TriggerSignals:          []string{SignalOTADependent},
			EstimatedMonthlyLossUSD: 3000,
			Pitch:                   "Airbnb y Vrbo cobran hasta 15%: el calendario propio con pagos directos elimina la comisión en reservas repetidas.",
		},
		{
			ID:                      "inquiry_bot",
			Name:                    "Cotizador automático",
			TriggerSignals:          []string{SignalManualResponses, SignalNoWebsite},
			EstimatedMonthlyLossUSD: 1200,
			Pitch:                   "La primera villa que cotiza gana la reserva: cotización instantánea con fotos, fechas y precio.",
		},
	},
	VerticalTourOperator: {
		{
			ID:                      "direct_booking",
			Name:                    "Venta directa de cupos",
			TriggerSignals:          []string{SignalOTADependent},
			EstimatedMonthlyLossUSD: 2500,
			Pitch:                   "Viator y GetYourGuide se quedan con hasta 25%: la venta directa de cupos devuelve ese margen.",
		},
		{
			ID:                      "whatsapp_sales",
			Name:                    "Ventas por WhatsApp",
			TriggerSignals:          []string{SignalManualResponses, SignalNoWebsite},
			EstimatedMonthlyLossUSD: 1000,
			Pitch:                   "El turista decide el tour de mañana hoy a las 9pm: el bot cierra la venta cuando el equipo ya salió.",
		},
	},
	VerticalBoatCharter: {
		{
			ID:                      "inquiry_bot",
			Name:                    "Cotizador automático de charters",
			TriggerSignals:          []string{SignalManualResponses, SignalNoWebsite},
			EstimatedMonthlyLossUSD: 2200,
			Pitch:                   "Un charter perdido por demora son $800+ USD: cotización de bote, fecha y menú en 30 segundos.",
		},
		{
			ID:                      "direct_booking",
			Name:                    "Reserva directa con anticipo",
			TriggerSignals:          []string{SignalOTADependent},
			EstimatedMonthlyLossUSD: 1800,
			Pitch:                   "Cobrar anticipo en línea elimina los plantones y las comisiones de intermediarios.",
		},
	},
	VerticalSpa: {
		{
			ID:                      "booking_calendar",
			Name:                    "Agenda en línea",
			TriggerSignals:          []string{SignalManualResponses, SignalNoWebsite},
			EstimatedMonthlyLossUSD: 900,
			Pitch:                   "Cada llamada no contestada es una cita que se va al spa de enfrente: agenda en línea 24/7.",
		},
		{
			ID:                      "review_rescue",
			Name:                    "Gestión de reseñas",
			TriggerSignals:          []string{SignalLowRating, SignalLowReviews},
			EstimatedMonthlyLossUSD: 500,
			Pitch:                   "El bienestar se vende por confianza: más reseñas y mejor rating con seguimiento post-cita automático.",
		},
	},
	VerticalNightclub: {
		{
			ID:                      "guest_list",
			Name:                    "Lista y reservas VIP automáticas",
			TriggerSignals:          []string{SignalManualResponses, SignalNoInstagram},
			EstimatedMonthlyLossUSD: 1500,
			Pitch:                   "Las mesas VIP se venden por DM: reservas y listas automáticas sin perder mensajes el viernes a las 8pm.",
		},
	},
}

// FindBestOffer scans the vertical's ordered offer table and returns
// the first offer with any trigger signal among the detected ones.
// Falls back to the vertical's first offer when nothing matches, and
// nil for an unknown vertical.
func FindBestOffer(vertical string, signals []string) *Offer {
	offers, ok := offerMatrix[vertical]
	if !ok || len(offers) == 0 {
		return nil
	}

	for i := range offers {
		for _, trigger := range offers[i].TriggerSignals {
			if hasSignal(signals, trigger) {
				o := offers[i]
				return &o
			}
		}
	}

	o := offers[0]
	return &o
}
