package chat

import (
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"padelmania/internal/domain"
	"padelmania/internal/money"
)

// Message is one chat bubble, bot or user.
type Message struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	IsBot     bool      `json:"isBot"`
	Timestamp time.Time `json:"timestamp"`
}

// Reply is a bot answer, optionally carrying product suggestions.
type Reply struct {
	Text     string           `json:"text"`
	Products []domain.Product `json:"products,omitempty"`
}

type rule struct {
	keywords []string
	response string
}

// First matching rule wins, so broader keywords come first.
var rules = []rule{
	{[]string{"precio", "costo"},
		"💰 Envío gratis en compras desde $50.000. Los precios van desde $8.000 hasta $25.000. ¿Buscás algo en particular?"},
	{[]string{"envío", "envio"},
		"🚚 Ofrecemos envío gratis en compras superiores a $50.000. Para compras menores, el costo se calcula en el checkout según tu ubicación. ¡Los envíos llegan en 3-5 días hábiles!"},
	{[]string{"cuotas", "pago"},
		"💳 Aceptamos pago por transferencia bancaria. Coordinamos todos los detalles por WhatsApp. ¡Es rápido y seguro!"},
	{[]string{"stock", "disponible"},
		"📦 Mantenemos stock actualizado en tiempo real. Si un producto figura como disponible, lo tenemos listo para enviar. ¿Hay algún producto específico que te interese?"},
	{[]string{"pelota"},
		"🎾 Tenemos pelotas de diferentes tipos: PadelNature Pro para jugadores avanzados y EcoSpin Soft para principiantes. ¿Cuál es tu nivel de juego?"},
	{[]string{"grip"},
		"🎯 Nuestros grips Wave Control y EcoFeel son ideales para mejorar tu agarre. ¿Preferís grip o cubregrip?"},
	{[]string{"gorra", "accesorio"},
		"🧢 Tenemos gorras técnicas con protección UV y muñequeras con tecnología antibacterial. ¿Buscás protección solar o absorción de humedad?"},
}

const fallback = "Gracias por tu consulta. Para ayudarte mejor, podés usar los botones de acceso rápido o visitá nuestra tienda para ver todos los productos. ¿Hay algo específico que te interese?"

const greetingText = "Hola 👋 Soy tu asistente Padelmania. ¿Querés ayuda para encontrar el producto ideal o conocer más sobre bienestar y pádel?"

// Bot is a canned-string keyword matcher over the static catalog. No
// state between messages. Safe for concurrent use.
type Bot struct {
	products []domain.Product

	mu  sync.Mutex // guards rng, which is not concurrency-safe
	rng *rand.Rand
}

func New(products []domain.Product) *Bot {
	return &Bot{
		products: products,
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Greeting is the opening bot message.
func Greeting() Message {
	return Message{ID: uuid.NewString(), Text: greetingText, IsBot: true, Timestamp: time.Now()}
}

// Respond matches the lowered message against the rule table.
func (b *Bot) Respond(message string) Reply {
	m := strings.ToLower(strings.TrimSpace(message))
	if m == "" {
		return Reply{Text: fallback}
	}
	if strings.Contains(m, "recomend") {
		ps := b.randomProducts(3)
		return Reply{Text: recoText(ps), Products: ps}
	}
	for _, r := range rules {
		for _, kw := range r.keywords {
			if strings.Contains(m, kw) {
				return Reply{Text: r.response}
			}
		}
	}
	return Reply{Text: fallback}
}

// QuickReply handles the widget's shortcut buttons.
func (b *Bot) QuickReply(action string) Reply {
	switch action {
	case "search":
		return Reply{Text: "¡Perfecto! Podés usar nuestro buscador o visitá la tienda para ver todos los productos. ¿Buscás algo específico como pelotas, grips o accesorios?"}
	case "promos":
		return Reply{Text: "🎉 ¡Tenemos ofertas increíbles! Productos con hasta 25% de descuento y envío gratis en compras superiores a $50.000. ¡Aprovechá!"}
	case "contact":
		return Reply{Text: "📞 Podés contactarnos por:\n• WhatsApp\n• Email: info@padelmania.com\n• Instagram: @padelmania\n\n¡Estamos para ayudarte!"}
	case "recommend":
		ps := b.randomProducts(3)
		return Reply{Text: recoText(ps), Products: ps}
	default:
		return Reply{Text: fallback}
	}
}

func recoText(ps []domain.Product) string {
	var b strings.Builder
	b.WriteString("🌟 Te recomiendo estos productos populares:\n\n")
	for _, p := range ps {
		fmt.Fprintf(&b, "• %s - %s\n", p.Title, money.FormatCurrency(p.Price))
	}
	b.WriteString("\n¿Te interesa alguno de estos?")
	return b.String()
}

func (b *Bot) randomProducts(n int) []domain.Product {
	out := append([]domain.Product(nil), b.products...)
	b.mu.Lock()
	b.rng.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	b.mu.Unlock()
	if len(out) > n {
		out = out[:n]
	}
	return out
}
