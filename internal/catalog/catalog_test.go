package catalog

import (
	"strings"
	"testing"

	"github.com/spf13/afero"

	siteerrors "github.com/petitemaison/epouvante/internal/errors"
)

const minimalYAML = `
brand:
  name: Test
nav:
  - name: Boutique
    href: /boutique
hero:
  title: Hero
  lead: "Bonjour <em>frissons</em><script>alert(1)</script>"
  primary_cta: {label: a, href: /}
  secondary_cta: {label: b, href: /}
products:
  title: Produits
  cta: {label: c, href: /boutique}
  items:
    - {id: 1, image: a.jpg, title: A, category: Jeux, price: 10}
    - {id: 2, image: b.jpg, title: B, category: Films, price: 5, original_price: 8}
    - {id: 3, image: a.jpg, title: C, category: Jeux, price: 7.5}
fanzine:
  title: Fanzine
  subscribe: {label: s, href: /newsletter}
  sample: {label: e, href: /fanzine}
community:
  title: Communauté
  cta: {label: r, href: /communaute}
newsletter:
  title: News
  submit: Go
  success_title: Yes
  error_title: No
`

func TestDefault(t *testing.T) {
	c := Default()

	if len(c.Products.Items) != 3 {
		t.Fatalf("products = %d, want 3", len(c.Products.Items))
	}
	first := c.Products.Items[0]
	if first.Title != "Figurine Collector - Le Démon des Abysses" {
		t.Errorf("first product = %q", first.Title)
	}
	if !first.OnSale() || *first.OriginalPrice != 119.99 {
		t.Errorf("first product should be on sale from 119.99")
	}
	if c.Products.Items[1].OnSale() {
		t.Error("board game should not be on sale")
	}
	if c.Newsletter.SuccessTitle != "Bienvenue dans l'épouvante !" {
		t.Errorf("SuccessTitle = %q", c.Newsletter.SuccessTitle)
	}
	if c.Newsletter.SuccessDescription != "Vous recevrez bientôt nos dernières actualités." {
		t.Errorf("SuccessDescription = %q", c.Newsletter.SuccessDescription)
	}
	if got := len(c.Footer.Stores); got != 5 {
		t.Errorf("stores = %d, want 5", got)
	}
	if Default() != c {
		t.Error("Default() should return the same catalog")
	}
}

func TestDefaultNav(t *testing.T) {
	var names []string
	for _, l := range Default().Nav {
		names = append(names, l.Name)
	}
	want := "Boutique,Fanzine,Communauté,Festival,Evil Ed"
	if got := strings.Join(names, ","); got != want {
		t.Errorf("nav = %q, want %q", got, want)
	}
}

func TestParseSanitizesRichText(t *testing.T) {
	c, err := Parse([]byte(minimalYAML))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	lead := c.Hero.Lead.HTML()
	if strings.Contains(lead, "script") || strings.Contains(lead, "alert") {
		t.Errorf("script survived sanitizing: %q", lead)
	}
	if !strings.Contains(lead, "<em>frissons</em>") {
		t.Errorf("allowed markup was removed: %q", lead)
	}
	if got := c.Hero.Lead.Plain(); got != "Bonjour frissons" {
		t.Errorf("Plain() = %q, want %q", got, "Bonjour frissons")
	}
}

func TestRichTextFoldsWhitespace(t *testing.T) {
	got := Default().Hero.Lead.Plain()
	want := "Plongez dans l'univers de l'horreur avec notre boutique exclusive, notre fanzine culte et notre communauté de passionnés."
	if got != want {
		t.Errorf("Plain() = %q, want %q", got, want)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name     string
		yaml     string
		wantCode string
		wantText string
	}{
		{"malformed yaml", "nav: [unclosed", "E121", ""},
		{"missing nav", strings.Replace(minimalYAML, "nav:\n  - name: Boutique\n    href: /boutique\n", "", 1), "E122", "Nav"},
		{"negative price", strings.Replace(minimalYAML, "price: 10}", "price: -1}", 1), "E122", "Price"},
		{"duplicate id", strings.Replace(minimalYAML, "{id: 3,", "{id: 1,", 1), "E122", "duplicate product id 1"},
		{"original below price", strings.Replace(minimalYAML, "original_price: 8", "original_price: 4", 1), "E122", "original_price"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			if !siteerrors.Is(err, tt.wantCode) {
				t.Fatalf("Parse() error = %v, want %s", err, tt.wantCode)
			}
			if tt.wantText != "" && !strings.Contains(err.Error(), tt.wantText) {
				t.Errorf("error %q does not mention %q", err, tt.wantText)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	fs := afero.NewMemMapFs()
	_ = afero.WriteFile(fs, "content/catalog.yaml", []byte(minimalYAML), 0o644)

	c, err := Load(fs, "content/catalog.yaml")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if c.Brand.Name != "Test" {
		t.Errorf("Brand.Name = %q", c.Brand.Name)
	}

	if _, err := Load(fs, "missing.yaml"); !siteerrors.Is(err, "E120") {
		t.Errorf("Load(missing) error = %v, want E120", err)
	}
}

func TestLoadOrDefault(t *testing.T) {
	c, err := LoadOrDefault(afero.NewMemMapFs(), "")
	if err != nil || c != Default() {
		t.Errorf("LoadOrDefault(\"\") = %p, %v; want Default()", c, err)
	}
}

func TestCatalogQueries(t *testing.T) {
	c, err := Parse([]byte(minimalYAML))
	if err != nil {
		t.Fatal(err)
	}

	if got := strings.Join(c.Categories(), ","); got != "Jeux,Films" {
		t.Errorf("Categories() = %q, want Jeux,Films", got)
	}
	if got := len(c.ProductsIn("Jeux")); got != 2 {
		t.Errorf("ProductsIn(Jeux) = %d, want 2", got)
	}
	if p, ok := c.Product(2); !ok || p.Title != "B" {
		t.Errorf("Product(2) = %+v, %v", p, ok)
	}
	if _, ok := c.Product(42); ok {
		t.Error("Product(42) should not exist")
	}
	if got := strings.Join(c.Images(), ","); got != "a.jpg,b.jpg" {
		t.Errorf("Images() = %q, want a.jpg,b.jpg", got)
	}
}

func TestFormatPrice(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{29.99, "29.99€"},
		{19.5, "19.50€"},
		{89.99, "89.99€"},
		{119.99, "119.99€"},
		{0, "0.00€"},
		{5, "5.00€"},
	}
	for _, tt := range tests {
		if got := FormatPrice(tt.in); got != tt.want {
			t.Errorf("FormatPrice(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
