package components

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/petitemaison/epouvante/internal/catalog"
	"github.com/petitemaison/epouvante/pkg/assets"
	"github.com/petitemaison/epouvante/pkg/render"
	"github.com/petitemaison/epouvante/pkg/router"
	"github.com/petitemaison/epouvante/pkg/server"
	"github.com/petitemaison/epouvante/pkg/toast"
	"github.com/petitemaison/epouvante/pkg/vdom"
)

func renderHTML(t *testing.T, node *vdom.VNode) string {
	t.Helper()
	out, err := render.NewRenderer(render.RendererConfig{}).RenderToString(node)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	return out
}

func byClass(class string) func(*vdom.VNode) bool {
	return func(n *vdom.VNode) bool {
		if n.Kind != vdom.KindElement {
			return false
		}
		for _, c := range strings.Fields(n.Attr("class")) {
			if c == class {
				return true
			}
		}
		return false
	}
}

func price(v float64) *float64 { return &v }

func TestNavbarActiveLink(t *testing.T) {
	c := catalog.Default()
	nav := Navbar(router.StaticLocation("/fanzine"), c, NavbarState{})

	links := vdom.FindAll(nav, byClass("nav-link"))
	if len(links) != len(c.Nav) {
		t.Fatalf("nav links = %d, want %d", len(links), len(c.Nav))
	}
	active := 0
	for _, l := range links {
		if strings.Contains(l.Attr("class"), "active") {
			active++
			if l.Attr("href") != "/fanzine" {
				t.Errorf("active link href = %q", l.Attr("href"))
			}
			if l.Attr("aria-current") != "page" {
				t.Error("active link should carry aria-current=page")
			}
		}
	}
	if active != 1 {
		t.Errorf("active links = %d, want 1", active)
	}
}

func TestNavbarUnknownLocation(t *testing.T) {
	nav := Navbar(router.StaticLocation("/nulle-part"), catalog.Default(), NavbarState{})
	for _, l := range vdom.FindAll(nav, byClass("nav-link")) {
		if strings.Contains(l.Attr("class"), "active") {
			t.Errorf("link %q should not be active", l.Attr("href"))
		}
	}
}

func TestNavbarMenu(t *testing.T) {
	c := catalog.Default()

	closed := Navbar(router.StaticLocation("/"), c, NavbarState{})
	if vdom.Find(closed, vdom.ByID("mobile-menu")) != nil {
		t.Error("closed menu should not be rendered")
	}
	toggle := vdom.Find(closed, byClass("menu-toggle"))
	if toggle == nil || toggle.Attr("href") != "/?menu=open" {
		t.Fatalf("toggle = %+v", toggle)
	}

	open := Navbar(router.StaticLocation("/"), c, NavbarState{MenuOpen: true})
	menu := vdom.Find(open, vdom.ByID("mobile-menu"))
	if menu == nil {
		t.Fatal("open menu should be rendered")
	}
	text := menu.TextContent()
	for _, want := range []string{"Panier", "Compte", "S'abonner au Fanzine"} {
		if !strings.Contains(text, want) {
			t.Errorf("mobile menu missing %q", want)
		}
	}
	if got := vdom.Find(open, byClass("menu-toggle")).Attr("href"); got != "/" {
		t.Errorf("open toggle href = %q, want /", got)
	}
}

func TestNavbarStateFrom(t *testing.T) {
	open := server.NewTestContext(httptest.NewRequest(http.MethodGet, "/?menu=open", nil))
	if !NavbarStateFrom(open).MenuOpen {
		t.Error("menu=open should open the menu")
	}
	if NavbarStateFrom(server.NewTestContext(nil)).MenuOpen {
		t.Error("menu should be closed by default")
	}
}

func TestProductCard(t *testing.T) {
	m := assets.NewManifest()
	m.Set("a.jpg", "a.123.jpg")
	r := assets.NewResolver(m, "/static/")

	plain := ProductCard(r, catalog.Product{ID: 1, Image: "a.jpg", Title: "Crâne", Category: "Figurines", Price: 12.5})
	html := renderHTML(t, plain)
	for _, want := range []string{`src="/static/a.123.jpg"`, `alt="Crâne"`, "12.50€", "Figurines"} {
		if !strings.Contains(html, want) {
			t.Errorf("card missing %q in %s", want, html)
		}
	}
	if vdom.Find(plain, byClass("badge")) != nil {
		t.Error("full-price product should have no badge")
	}
	if vdom.Find(plain, vdom.ByTag("s")) != nil {
		t.Error("full-price product should have no original price")
	}

	promo := ProductCard(nil, catalog.Product{ID: 2, Image: "b.jpg", Title: "Dé", Category: "Jeux", Price: 5, OriginalPrice: price(8)})
	if b := vdom.Find(promo, byClass("badge")); b == nil || b.TextContent() != "Promo" {
		t.Error("discounted product should show a Promo badge")
	}
	if s := vdom.Find(promo, vdom.ByTag("s")); s == nil || s.TextContent() != "8.00€" {
		t.Errorf("original price = %v", s)
	}
	if img := vdom.Find(promo, vdom.ByTag("img")); img.Attr("src") != "b.jpg" {
		t.Errorf("nil resolver src = %q", img.Attr("src"))
	}
}

func TestProductsSection(t *testing.T) {
	c := catalog.Default()
	s := ProductsSection(nil, c.Products)

	if s.Attr("id") != "boutique" {
		t.Errorf("id = %q", s.Attr("id"))
	}
	cards := vdom.FindAll(s, vdom.ByTag("article"))
	if len(cards) != len(c.Products.Items) {
		t.Errorf("cards = %d, want %d", len(cards), len(c.Products.Items))
	}
}

func TestSectionIDs(t *testing.T) {
	c := catalog.Default()
	tests := []struct {
		name string
		node *vdom.VNode
		id   string
	}{
		{"hero", Hero(nil, c.Hero), "accueil"},
		{"fanzine", FanzineSection(nil, c.Fanzine), "fanzine"},
		{"community", CommunitySection(c.Community), "communaute"},
		{"newsletter", NewsletterSection(c.Newsletter, ""), "newsletter"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.node.Attr("id") != tt.id {
				t.Errorf("id = %q, want %q", tt.node.Attr("id"), tt.id)
			}
		})
	}
}

func TestFanzinePerks(t *testing.T) {
	f := catalog.Default().Fanzine
	perks := vdom.FindAll(FanzineSection(nil, f), vdom.ByTag("li"))
	if len(perks) != len(f.Perks) {
		t.Errorf("perks = %d, want %d", len(perks), len(f.Perks))
	}
}

func TestCommunityFeatures(t *testing.T) {
	c := catalog.Default().Community
	cards := vdom.FindAll(CommunitySection(c), byClass("feature-card"))
	if len(cards) != len(c.Features) {
		t.Errorf("features = %d, want %d", len(cards), len(c.Features))
	}
	for _, card := range cards {
		if !strings.Contains(renderHTML(t, card), "<svg") {
			t.Error("feature card should carry an icon")
		}
	}
}

func TestNewsletterForm(t *testing.T) {
	n := catalog.Default().Newsletter
	s := NewsletterSection(n, "ed@example.com")

	form := vdom.Find(s, vdom.ByTag("form"))
	if form == nil {
		t.Fatal("form not rendered")
	}
	if form.Attr("method") != "post" || form.Attr("action") != NewsletterAction {
		t.Errorf("form method/action = %q %q", form.Attr("method"), form.Attr("action"))
	}
	input := vdom.Find(form, vdom.ByTag("input"))
	if input.Attr("name") != "email" || input.Attr("type") != "email" {
		t.Errorf("input = %+v", input.Props)
	}
	if input.Attr("value") != "ed@example.com" {
		t.Errorf("value = %q", input.Attr("value"))
	}
	if !input.HasAttr("required") {
		t.Error("email input should be required")
	}
}

func TestToaster(t *testing.T) {
	empty := Toaster(nil)
	if empty.Attr("role") != "status" || empty.Attr("aria-live") != "polite" {
		t.Errorf("live region attrs = %+v", empty.Props)
	}
	if len(empty.Children) != 0 {
		t.Errorf("empty toaster children = %d", len(empty.Children))
	}

	node := Toaster([]toast.Toast{
		{Title: "Bienvenue", Description: "Inscrit", Level: toast.LevelSuccess},
		{Title: "Oups", Level: toast.LevelError},
	})
	toasts := vdom.FindAll(node, byClass("toast"))
	if len(toasts) != 2 {
		t.Fatalf("toasts = %d, want 2", len(toasts))
	}
	if !strings.Contains(toasts[0].Attr("class"), "toast-success") {
		t.Errorf("class = %q", toasts[0].Attr("class"))
	}
	if vdom.Find(toasts[1], byClass("toast-description")) != nil {
		t.Error("empty description should not render")
	}
}

func TestSiteFooter(t *testing.T) {
	c := catalog.Default()
	footer := SiteFooter(c.Brand, c.Footer)
	html := renderHTML(t, footer)

	text := footer.TextContent()
	for _, want := range []string{"Boutique", "Entreprise", "Nos Magasins", c.Footer.Copyright} {
		if !strings.Contains(text, want) {
			t.Errorf("footer missing %q", want)
		}
	}
	if c.Footer.Email != "" && !strings.Contains(html, `href="mailto:`+c.Footer.Email+`"`) {
		t.Error("footer missing mailto link")
	}
}

func TestSiteFooterContactLinks(t *testing.T) {
	footer := SiteFooter(catalog.Brand{}, catalog.Footer{
		Email: "contact@example.com",
		Phone: "+33 1 23 45 67 89",
	})

	tests := []struct {
		href string
	}{
		{"mailto:contact@example.com"},
		{"tel:+33123456789"},
	}
	for _, tt := range tests {
		a := vdom.Find(footer, func(n *vdom.VNode) bool {
			return n.Tag == "a" && n.Attr("href") == tt.href
		})
		if a == nil {
			t.Errorf("no anchor for %q", tt.href)
			continue
		}
		if a.HasAttr("data-link") {
			t.Errorf("%q has data-link, want a plain anchor", tt.href)
		}
	}
}

func TestTelHref(t *testing.T) {
	if got := telHref("+33 1 23 45 67 89"); got != "tel:+33123456789" {
		t.Errorf("telHref = %q", got)
	}
}

func TestIcon(t *testing.T) {
	if Icon("nope") != nil {
		t.Error("unknown icon should be nil")
	}
	html := renderHTML(t, vdom.Div(Icon("skull")))
	if !strings.Contains(html, "<svg") || !strings.Contains(html, `aria-hidden="true"`) {
		t.Errorf("icon html = %s", html)
	}
}
