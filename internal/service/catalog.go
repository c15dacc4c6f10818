package service

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/floramar/flower-service/internal/domain/model"
)

// DefaultCatalog is the built-in storefront catalog, used when no catalog
// file is configured.
var DefaultCatalog = model.Catalog{
	Categories: []model.Category{
		{ID: "bouquets", Name: "Ramos", Description: "Ramos de flores frescas"},
		{ID: "arrangements", Name: "Arreglos", Description: "Arreglos florales para toda ocasión"},
		{ID: "plants", Name: "Plantas", Description: "Plantas ornamentales"},
	},
	Products: []model.Product{
		{ID: "rosas-rojas", Name: "Ramo de Rosas Rojas", Description: "Doce rosas rojas con follaje", Price: 1200, ImageURL: "/images/rosas-rojas.webp", CategoryID: "bouquets"},
		{ID: "girasoles", Name: "Ramo de Girasoles", Description: "Cinco girasoles grandes", Price: 950, ImageURL: "/images/girasoles.webp", CategoryID: "bouquets"},
		{ID: "mixto-primavera", Name: "Ramo Mixto Primavera", Description: "Flores de temporada variadas", Price: 800, ImageURL: "/images/mixto-primavera.webp", CategoryID: "bouquets"},
		{ID: "centro-mesa", Name: "Centro de Mesa", Description: "Arreglo bajo para mesa", Price: 1500, ImageURL: "/images/centro-mesa.webp", CategoryID: "arrangements"},
		{ID: "caja-sorpresa", Name: "Caja Sorpresa Floral", Description: "Caja con flores y detalles", Price: 1800, ImageURL: "/images/caja-sorpresa.webp", CategoryID: "arrangements"},
		{ID: "orquidea-maceta", Name: "Orquídea en Maceta", Description: "Orquídea phalaenopsis", Price: 2200, ImageURL: "/images/orquidea.webp", CategoryID: "plants"},
	},
	Accessories: []model.Accessory{
		{ID: "peluche-oso", Name: "Peluche de Oso", Description: "Peluche suave de 25cm", Price: 350, ImageURL: "/images/peluche.webp"},
		{ID: "caja-bombones", Name: "Caja de Bombones", Description: "Bombones surtidos", Price: 280, ImageURL: "/images/bombones.webp"},
		{ID: "tarjeta-dedicatoria", Name: "Tarjeta con Dedicatoria", Description: "Tarjeta personalizada", Price: 50, ImageURL: "/images/tarjeta.webp"},
	},
}

// CatalogProvider exposes read-only access to the storefront catalog.
type CatalogProvider interface {
	Categories() []model.Category
	Products() []model.Product
	ProductsByCategory(categoryID string) []model.Product
	Product(id string) (model.Product, bool)
	Accessories() []model.Accessory
	Accessory(id string) (model.Accessory, bool)
}

// CatalogService implements CatalogProvider over an immutable catalog
// snapshot taken at construction time.
type CatalogService struct {
	catalog     model.Catalog
	products    map[string]model.Product
	accessories map[string]model.Accessory
}

// NewCatalogService creates a CatalogService for the given catalog.
func NewCatalogService(catalog model.Catalog) *CatalogService {
	s := &CatalogService{
		catalog:     catalog,
		products:    make(map[string]model.Product, len(catalog.Products)),
		accessories: make(map[string]model.Accessory, len(catalog.Accessories)),
	}
	for _, p := range catalog.Products {
		s.products[p.ID] = p
	}
	for _, a := range catalog.Accessories {
		s.accessories[a.ID] = a
	}
	return s
}

// LoadCatalogFile reads a catalog from a JSON file.
func LoadCatalogFile(path string) (model.Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.Catalog{}, fmt.Errorf("read catalog file: %w", err)
	}

	var catalog model.Catalog
	if err := json.Unmarshal(data, &catalog); err != nil {
		return model.Catalog{}, fmt.Errorf("parse catalog file: %w", err)
	}
	return catalog, nil
}

// Categories returns all categories.
func (s *CatalogService) Categories() []model.Category {
	return append([]model.Category(nil), s.catalog.Categories...)
}

// Products returns all products.
func (s *CatalogService) Products() []model.Product {
	return append([]model.Product(nil), s.catalog.Products...)
}

// ProductsByCategory returns the products of one category, in catalog order.
func (s *CatalogService) ProductsByCategory(categoryID string) []model.Product {
	result := make([]model.Product, 0)
	for _, p := range s.catalog.Products {
		if p.CategoryID == categoryID {
			result = append(result, p)
		}
	}
	return result
}

// Product looks up a product by ID.
func (s *CatalogService) Product(id string) (model.Product, bool) {
	p, ok := s.products[id]
	return p, ok
}

// Accessories returns all accessories.
func (s *CatalogService) Accessories() []model.Accessory {
	return append([]model.Accessory(nil), s.catalog.Accessories...)
}

// Accessory looks up an accessory by ID.
func (s *CatalogService) Accessory(id string) (model.Accessory, bool) {
	a, ok := s.accessories[id]
	return a, ok
}
