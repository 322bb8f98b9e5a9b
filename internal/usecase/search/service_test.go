package search

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/kailas-cloud/storefront/internal/domain"
	domprod "github.com/kailas-cloud/storefront/internal/domain/product"
)

type mockLister struct {
	products []domprod.Product
	err      error
}

func (m *mockLister) List(_ context.Context) ([]domprod.Product, error) {
	return m.products, m.err
}

func prod(id, name, desc string, stock int64) domprod.Product {
	return domprod.Reconstruct(id, name, desc, stock, decimal.NewFromInt(10))
}

func ids(products []domprod.Product) []string {
	out := make([]string, len(products))
	for i, p := range products {
		out[i] = p.ID()
	}
	return out
}

func TestSearch_RanksNameMatchFirst(t *testing.T) {
	svc := New(&mockLister{products: []domprod.Product{
		prod("p1", "Desk Lamp", "warm LED lamp", 10),
		prod("p2", "Laptop Stand", "aluminium stand for laptops", 50),
		prod("p3", "Coffee Mug", "ceramic mug", 30),
	}})

	results, err := svc.Search(context.Background(), "laptop", 20)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("expected only the matching product, got %v", ids(results))
	}
	if results[0].ID() != "p2" {
		t.Errorf("expected p2 first, got %s", results[0].ID())
	}
}

func TestSearch_FuzzyMatchesTypo(t *testing.T) {
	svc := New(&mockLister{products: []domprod.Product{
		prod("p1", "Bluetooth Speaker", "portable wireless speaker", 5),
		prod("p2", "Coffee Mug", "ceramic mug", 30),
	}})

	results, err := svc.Search(context.Background(), "speker", 20)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 1 || results[0].ID() != "p1" {
		t.Fatalf("typo must still find the speaker, got %v", ids(results))
	}
}

func TestSearch_SynonymExpansion(t *testing.T) {
	svc := New(&mockLister{products: []domprod.Product{
		prod("p1", "Notebook Pro", "thin and light", 5),
		prod("p2", "Coffee Mug", "ceramic mug", 30),
	}})

	// "laptop" never appears in the product text; the synonym group carries it.
	results, err := svc.Search(context.Background(), "laptop", 20)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 1 || results[0].ID() != "p1" {
		t.Fatalf("synonym must match the notebook, got %v", ids(results))
	}
}

func TestSearch_StockMultipliers(t *testing.T) {
	svc := New(&mockLister{products: []domprod.Product{
		prod("p1", "Speaker Almost Gone", "wireless speaker", 1),
		prod("p2", "Speaker In Stock", "wireless speaker", 40),
	}})

	results, err := svc.Search(context.Background(), "speaker", 20)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected both speakers, got %v", ids(results))
	}
	// Equal base scores; the low-stock penalty (x0.90) demotes p1.
	if results[0].ID() != "p2" || results[1].ID() != "p1" {
		t.Errorf("expected p2 before p1, got %v", ids(results))
	}
}

func TestSearch_BlankQueryReturnsCatalogHead(t *testing.T) {
	svc := New(&mockLister{products: []domprod.Product{
		prod("p1", "A", "", 1),
		prod("p2", "B", "", 1),
		prod("p3", "C", "", 1),
	}})

	results, err := svc.Search(context.Background(), "   ", 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 2 || results[0].ID() != "p1" || results[1].ID() != "p2" {
		t.Errorf("expected catalog head [p1 p2], got %v", ids(results))
	}
}

func TestSearch_Truncates(t *testing.T) {
	svc := New(&mockLister{products: []domprod.Product{
		prod("p1", "Speaker One", "speaker", 5),
		prod("p2", "Speaker Two", "speaker", 5),
		prod("p3", "Speaker Three", "speaker", 5),
	}})

	results, err := svc.Search(context.Background(), "speaker", 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 2 {
		t.Errorf("expected 2 results, got %d", len(results))
	}
}

func TestSearch_ListFailure(t *testing.T) {
	svc := New(&mockLister{err: errors.New("store down")})

	_, err := svc.Search(context.Background(), "anything", 20)
	if err == nil {
		t.Fatal("expected store failure to propagate")
	}
}

func TestSuggestions_ShortPrefix(t *testing.T) {
	svc := New(&mockLister{})

	got, err := svc.Suggestions(context.Background(), "l", 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("prefix shorter than 2 chars must yield nothing, got %v", got)
	}
}

func TestSuggestions_CatalogAndSynonyms(t *testing.T) {
	svc := New(&mockLister{products: []domprod.Product{
		prod("p1", "Laptop Stand", "foldable laptops welcome", 5),
	}})

	got, err := svc.Suggestions(context.Background(), "lap", 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Catalog words first (insertion order), then table entries; "laptop"
	// appears in both and is deduplicated.
	want := []string{"laptop", "laptops"}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestSuggestions_StrictlyLonger(t *testing.T) {
	svc := New(&mockLister{products: []domprod.Product{
		prod("p1", "Hub", "usb hub", 5),
	}})

	got, err := svc.Suggestions(context.Background(), "hub", 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, s := range got {
		if s == "hub" {
			t.Errorf("catalog word equal to the prefix must be excluded, got %v", got)
		}
	}
}

func TestSuggestions_Truncates(t *testing.T) {
	svc := New(&mockLister{products: []domprod.Product{
		prod("p1", "Speaker Special Spectrum", "spectacular sparkling", 5),
	}})

	got, err := svc.Suggestions(context.Background(), "sp", 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("expected 2 suggestions, got %v", got)
	}
}

func TestRelatedTerms_SynonymKey(t *testing.T) {
	svc := New(&mockLister{})

	got, err := svc.RelatedTerms(context.Background(), "laptop")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Up to 3 group members, then up to 3 other computing keywords, capped at 6.
	want := []string{"notebook", "computer", "ultrabook", "desktop", "monitor", "keyboard"}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestRelatedTerms_SynonymMember(t *testing.T) {
	svc := New(&mockLister{})

	got, err := svc.RelatedTerms(context.Background(), "notebook")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"laptop", "computer", "ultrabook"}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestRelatedTerms_BlankQuery(t *testing.T) {
	svc := New(&mockLister{})

	_, err := svc.RelatedTerms(context.Background(), "  ")
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestRelatedTerms_UnknownWord(t *testing.T) {
	svc := New(&mockLister{})

	got, err := svc.RelatedTerms(context.Background(), "zeppelin")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("unknown word must expand to nothing, got %v", got)
	}
}

func TestCategories_Sorted(t *testing.T) {
	svc := New(&mockLister{})

	got := svc.Categories(context.Background())
	want := []string{"accessories", "audio", "computing", "gaming", "mobile"}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}
