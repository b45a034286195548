// Package catalog holds the site's content: navigation, section copy and
// the featured products.
//
// Content is YAML. A built-in catalog is embedded in the binary; a
// deployment can point catalog.path at its own file and, with
// catalog.watch, have edits picked up without a restart (see Watch).
package catalog

import (
	_ "embed"
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	siteerrors "github.com/petitemaison/epouvante/internal/errors"
)

//go:embed default.yaml
var defaultYAML []byte

// Catalog is the complete site content.
type Catalog struct {
	Brand      Brand           `yaml:"brand"`
	Nav        []Link          `yaml:"nav" validate:"required,dive"`
	Hero       Hero            `yaml:"hero"`
	Products   ProductsSection `yaml:"products"`
	Fanzine    Fanzine         `yaml:"fanzine"`
	Community  Community       `yaml:"community"`
	Newsletter Newsletter      `yaml:"newsletter"`
	Footer     Footer          `yaml:"footer"`
}

// Link is a labelled target.
type Link struct {
	Name string `yaml:"name" validate:"required"`
	Href string `yaml:"href" validate:"required"`
}

// CTA is a call-to-action button rendered as a link.
type CTA struct {
	Label string `yaml:"label" validate:"required"`
	Href  string `yaml:"href" validate:"required"`
}

type Brand struct {
	Name        string   `yaml:"name" validate:"required"`
	Tagline     string   `yaml:"tagline"`
	Description RichText `yaml:"description"`
}

type Hero struct {
	Image        string   `yaml:"image"`
	Eyebrow      string   `yaml:"eyebrow"`
	Title        string   `yaml:"title" validate:"required"`
	TitleAccent  string   `yaml:"title_accent"`
	Lead         RichText `yaml:"lead"`
	PrimaryCTA   CTA      `yaml:"primary_cta"`
	SecondaryCTA CTA      `yaml:"secondary_cta"`
}

type ProductsSection struct {
	Eyebrow string    `yaml:"eyebrow"`
	Title   string    `yaml:"title" validate:"required"`
	Lead    RichText  `yaml:"lead"`
	CTA     CTA       `yaml:"cta"`
	Items   []Product `yaml:"items" validate:"dive"`
}

// Product is one featured product card.
type Product struct {
	ID       int     `yaml:"id" validate:"required"`
	Image    string  `yaml:"image" validate:"required"`
	Title    string  `yaml:"title" validate:"required"`
	Category string  `yaml:"category" validate:"required"`
	Price    float64 `yaml:"price" validate:"gt=0"`

	// OriginalPrice is set only for discounted products.
	OriginalPrice *float64 `yaml:"original_price,omitempty" validate:"omitempty,gt=0"`
}

// OnSale reports whether the product shows a promo badge.
func (p Product) OnSale() bool {
	return p.OriginalPrice != nil
}

type Fanzine struct {
	Image       string   `yaml:"image"`
	Issue       string   `yaml:"issue"`
	Eyebrow     string   `yaml:"eyebrow"`
	Title       string   `yaml:"title" validate:"required"`
	TitleAccent string   `yaml:"title_accent"`
	Lead        RichText `yaml:"lead"`
	Perks       []string `yaml:"perks"`
	Subscribe   CTA      `yaml:"subscribe"`
	Sample      CTA      `yaml:"sample"`
}

type Community struct {
	Eyebrow  string    `yaml:"eyebrow"`
	Title    string    `yaml:"title" validate:"required"`
	Lead     RichText  `yaml:"lead"`
	Features []Feature `yaml:"features" validate:"dive"`
	CTA      CTA       `yaml:"cta"`
}

type Feature struct {
	Title       string `yaml:"title" validate:"required"`
	Description string `yaml:"description"`
}

// Newsletter holds the signup section copy and its toast messages.
type Newsletter struct {
	Title              string   `yaml:"title" validate:"required"`
	TitleAccent        string   `yaml:"title_accent"`
	Lead               RichText `yaml:"lead"`
	Placeholder        string   `yaml:"placeholder"`
	Submit             string   `yaml:"submit" validate:"required"`
	Legal              RichText `yaml:"legal"`
	SuccessTitle       string   `yaml:"success_title" validate:"required"`
	SuccessDescription string   `yaml:"success_description"`
	ErrorTitle         string   `yaml:"error_title" validate:"required"`
	ErrorDescription   string   `yaml:"error_description"`
}

type Footer struct {
	Social    []SocialLink `yaml:"social" validate:"dive"`
	Shop      []Link       `yaml:"shop" validate:"dive"`
	Company   []Link       `yaml:"company" validate:"dive"`
	Stores    []string     `yaml:"stores"`
	Email     string       `yaml:"email" validate:"omitempty,email"`
	Phone     string       `yaml:"phone"`
	Copyright string       `yaml:"copyright"`
	Legal     []Link       `yaml:"legal" validate:"dive"`
}

// SocialLink is an icon link identified by its accessible label.
type SocialLink struct {
	Label string `yaml:"label" validate:"required"`
	Href  string `yaml:"href" validate:"required"`
}

// Parse decodes, validates and sanitizes a YAML catalog.
func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, siteerrors.New("E121").WithDetail(err.Error()).Wrap(err)
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	c.sanitize()
	return &c, nil
}

// Load reads and parses the catalog at path on fs.
func Load(fs afero.Fs, path string) (*Catalog, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, siteerrors.New("E120").WithDetail(path).Wrap(err)
	}
	return Parse(data)
}

// LoadOrDefault loads path, or returns the built-in catalog when path is
// empty.
func LoadOrDefault(fs afero.Fs, path string) (*Catalog, error) {
	if path == "" {
		return Default(), nil
	}
	return Load(fs, path)
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
)

// Default returns the built-in catalog. Callers must not modify it.
func Default() *Catalog {
	defaultOnce.Do(func() {
		c, err := Parse(defaultYAML)
		if err != nil {
			panic(fmt.Sprintf("catalog: built-in catalog is invalid: %v", err))
		}
		defaultCatalog = c
	})
	return defaultCatalog
}

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		validateInst = validator.New()
	})
	return validateInst
}

func (c *Catalog) validate() error {
	if err := validatorInstance().Struct(c); err != nil {
		detail := err.Error()
		if ves, ok := err.(validator.ValidationErrors); ok && len(ves) > 0 {
			detail = fmt.Sprintf("%s failed validation for tag '%s'", ves[0].Namespace(), ves[0].Tag())
		}
		return siteerrors.New("E122").WithDetail(detail).Wrap(err)
	}

	if dups := lo.FindDuplicatesBy(c.Products.Items, func(p Product) int { return p.ID }); len(dups) > 0 {
		return siteerrors.New("E122").WithDetailf("duplicate product id %d", dups[0].ID)
	}
	for _, p := range c.Products.Items {
		if p.OriginalPrice != nil && *p.OriginalPrice <= p.Price {
			return siteerrors.New("E122").
				WithDetailf("product %d: original_price %.2f is not above price %.2f", p.ID, *p.OriginalPrice, p.Price)
		}
	}
	return nil
}

// Categories returns the distinct product categories in catalog order.
func (c *Catalog) Categories() []string {
	return lo.Uniq(lo.Map(c.Products.Items, func(p Product, _ int) string {
		return p.Category
	}))
}

// ProductsIn returns the products of one category.
func (c *Catalog) ProductsIn(category string) []Product {
	return lo.Filter(c.Products.Items, func(p Product, _ int) bool {
		return p.Category == category
	})
}

// Product looks a product up by id.
func (c *Catalog) Product(id int) (Product, bool) {
	return lo.Find(c.Products.Items, func(p Product) bool {
		return p.ID == id
	})
}

// Images lists every image the catalog references, without duplicates.
// Static export uses it to know which assets a page needs.
func (c *Catalog) Images() []string {
	images := []string{c.Hero.Image, c.Fanzine.Image}
	images = append(images, lo.Map(c.Products.Items, func(p Product, _ int) string {
		return p.Image
	})...)
	return lo.Uniq(lo.Compact(images))
}
