package request

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestProductRequest_Validate(t *testing.T) {
	cases := []struct {
		name    string
		body    string
		wantErr bool
		slug    string
	}{
		{name: "omitted slug", body: `{"title":"Tanque"}`},
		{name: "valid slug", body: `{"slug":" tanque-15000 "}`, slug: "tanque-15000"},
		{name: "uppercase slug", body: `{"slug":"Tanque-15000"}`, wantErr: true},
		{name: "spaces in slug", body: `{"slug":"tanque 15000"}`, wantErr: true},
		{name: "blank slug", body: `{"slug":"  "}`, wantErr: true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var r ProductRequest
			if err := json.Unmarshal([]byte(tc.body), &r); err != nil {
				t.Fatalf("unexpected decode error: %v", err)
			}
			err := r.Validate()
			if tc.wantErr != (err != nil) {
				t.Fatalf("unexpected validation result: %v", err)
			}
			if tc.wantErr && !errors.Is(err, ErrInvalidSlug) {
				t.Fatalf("expected ErrInvalidSlug, got %v", err)
			}
			if tc.slug != "" && *r.Slug != tc.slug {
				t.Fatalf("expected trimmed slug %q, got %q", tc.slug, *r.Slug)
			}
		})
	}
}

func TestQuoteSubmitRequest_ToPatch(t *testing.T) {
	r := QuoteSubmitRequest{
		CustomerName:  " Ana ",
		CustomerEmail: "ana@frota.com.br",
		CustomerPhone: "(11) 98888-0000",
		CompanyName:   "   ",
		Message:       "Preciso de prazo",
	}
	p := r.ToPatch()
	if *p.CustomerName != "Ana" || p.CompanyName != nil || p.ProductInterest != nil || *p.Message != "Preciso de prazo" {
		t.Fatalf("unexpected patch %+v", p)
	}
	if p.Status != nil {
		t.Fatalf("status must be left to the use case")
	}
}

func TestEmbeddedPatchDecoding(t *testing.T) {
	var r QuoteUpdateRequest
	if err := json.Unmarshal([]byte(`{"status":"WON","internal_notes":"fechado"}`), &r); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Status == nil || *r.Status != "WON" || *r.InternalNotes != "fechado" || r.CustomerName != nil {
		t.Fatalf("unexpected patch %+v", r.QuoteRequestPatch)
	}
}
