package chat_test

import (
	"strings"
	"sync"
	"testing"

	"padelmania/internal/chat"
	"padelmania/internal/domain"
)

func testBot() *chat.Bot {
	return chat.New([]domain.Product{
		{ID: "p1", Title: "PadelNature Pro", Price: 25000, Stock: 5},
		{ID: "p2", Title: "Wave Control", Price: 9500, Stock: 3},
		{ID: "p3", Title: "EcoFeel", Price: 8000, Stock: 0},
		{ID: "p4", Title: "Gorra Técnica", Price: 15000, Stock: 2},
	})
}

func TestRespondKeywords(t *testing.T) {
	b := testBot()
	cases := []struct {
		message string
		wants   string
	}{
		{"¿Cuál es el precio de las pelotas premium?", "Envío gratis en compras desde"},
		{"hacen ENVIO al interior?", "3-5 días hábiles"},
		{"aceptan pago en cuotas", "transferencia bancaria"},
		{"hay stock?", "stock actualizado"},
		{"busco una pelota", "PadelNature Pro"},
		{"necesito un grip nuevo", "Wave Control"},
		{"tienen gorras?", "protección UV"},
	}
	for _, c := range cases {
		got := b.Respond(c.message)
		if !strings.Contains(got.Text, c.wants) {
			t.Fatalf("message %q: want reply containing %q, got %q", c.message, c.wants, got.Text)
		}
	}
}

func TestRespondFallback(t *testing.T) {
	b := testBot()
	for _, m := range []string{"", "   ", "asdf qwerty"} {
		got := b.Respond(m)
		if !strings.Contains(got.Text, "Gracias por tu consulta") {
			t.Fatalf("message %q: want fallback, got %q", m, got.Text)
		}
		if len(got.Products) != 0 {
			t.Fatalf("fallback should not suggest products")
		}
	}
}

func TestRespondRecommend(t *testing.T) {
	b := testBot()
	got := b.Respond("me podés recomendar algo?")
	if len(got.Products) != 3 {
		t.Fatalf("want 3 suggestions, got %d", len(got.Products))
	}
	if !strings.Contains(got.Text, "Te recomiendo") {
		t.Fatalf("unexpected text %q", got.Text)
	}
}

func TestQuickReplies(t *testing.T) {
	b := testBot()
	if got := b.QuickReply("promos"); !strings.Contains(got.Text, "ofertas") {
		t.Fatalf("promos: %q", got.Text)
	}
	if got := b.QuickReply("recommend"); len(got.Products) == 0 {
		t.Fatal("recommend should carry products")
	}
	if got := b.QuickReply("bogus"); !strings.Contains(got.Text, "Gracias por tu consulta") {
		t.Fatalf("unknown action should fall back, got %q", got.Text)
	}
}

func TestRespondConcurrent(t *testing.T) {
	b := testBot()
	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				got := b.Respond("recomendar")
				if len(got.Products) != 3 {
					t.Errorf("want 3 suggestions, got %d", len(got.Products))
					return
				}
			}
		}()
	}
	wg.Wait()
}

func TestGreeting(t *testing.T) {
	g := chat.Greeting()
	if g.ID == "" || !g.IsBot || g.Text == "" {
		t.Fatalf("bad greeting %+v", g)
	}
}
