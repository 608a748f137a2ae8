package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/rs/zerolog"

	"github.com/campus-compass/campus-api/internal/core/domain"
	"github.com/campus-compass/campus-api/internal/core/ports"
)

type stubDrawingRepo struct {
	drawings map[ports.DrawingKey]domain.Drawing
	nextID   int
}

func newStubDrawingRepo() *stubDrawingRepo {
	return &stubDrawingRepo{drawings: make(map[ports.DrawingKey]domain.Drawing), nextID: 1}
}

func (r *stubDrawingRepo) Insert(_ context.Context, d *domain.Drawing) (*domain.Drawing, error) {
	stored := *d
	stored.ID = fmt.Sprintf("drw-%d", r.nextID)
	r.nextID++
	r.drawings[ports.DrawingKey{UserID: d.UserID, PdfURL: d.PdfURL, PageNumber: d.PageNumber}] = stored
	out := stored
	return &out, nil
}

func (r *stubDrawingRepo) Find(_ context.Context, userID, pdfURL string) ([]domain.Drawing, error) {
	out := []domain.Drawing{}
	for _, d := range r.drawings {
		if d.UserID == userID && d.PdfURL == pdfURL {
			out = append(out, d)
		}
	}
	return out, nil
}

func (r *stubDrawingRepo) Upsert(_ context.Context, key ports.DrawingKey, payload string) (*domain.Drawing, error) {
	if existing, ok := r.drawings[key]; ok {
		existing.Drawing = payload
		r.drawings[key] = existing
		out := existing
		return &out, nil
	}
	created := domain.Drawing{
		ID:         fmt.Sprintf("drw-%d", r.nextID),
		UserID:     key.UserID,
		PdfURL:     key.PdfURL,
		PageNumber: key.PageNumber,
		Drawing:    payload,
	}
	r.nextID++
	r.drawings[key] = created
	out := created
	return &out, nil
}

func TestDrawingService_Create_AssignsID(t *testing.T) {
	svc := NewDrawingService(newStubDrawingRepo(), zerolog.Nop())

	created, err := svc.Create(context.Background(), ports.DrawingInput{
		UserID:     "u1",
		PdfURL:     "plans/library.pdf",
		PageNumber: 1,
		Drawing:    `{"strokes":[]}`,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.ID == "" {
		t.Fatalf("expected assigned id")
	}
}

func TestDrawingService_List_ScopedToUserAndPdf(t *testing.T) {
	repo := newStubDrawingRepo()
	svc := NewDrawingService(repo, zerolog.Nop())

	inputs := []ports.DrawingInput{
		{UserID: "u1", PdfURL: "a.pdf", PageNumber: 1, Drawing: "d1"},
		{UserID: "u1", PdfURL: "a.pdf", PageNumber: 2, Drawing: "d2"},
		{UserID: "u1", PdfURL: "b.pdf", PageNumber: 1, Drawing: "d3"},
		{UserID: "u2", PdfURL: "a.pdf", PageNumber: 1, Drawing: "d4"},
	}
	for _, in := range inputs {
		if _, err := svc.Create(context.Background(), in); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	got, err := svc.List(context.Background(), "u1", "a.pdf")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 drawings, got %d", len(got))
	}

	empty, err := svc.List(context.Background(), "u3", "a.pdf")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(empty) != 0 {
		t.Fatalf("expected no drawings, got %d", len(empty))
	}
}

func TestDrawingService_Save_UpsertReplaces(t *testing.T) {
	repo := newStubDrawingRepo()
	svc := NewDrawingService(repo, zerolog.Nop())

	first, err := svc.Save(context.Background(), ports.DrawingInput{
		UserID: "u1", PdfURL: "a.pdf", PageNumber: 1, Drawing: "v1",
	})
	if err != nil {
		t.Fatalf("first save: %v", err)
	}
	if first.Drawing != "v1" {
		t.Fatalf("unexpected payload: %s", first.Drawing)
	}

	second, err := svc.Save(context.Background(), ports.DrawingInput{
		UserID: "u1", PdfURL: "a.pdf", PageNumber: 1, Drawing: "v2",
	})
	if err != nil {
		t.Fatalf("second save: %v", err)
	}
	if second.Drawing != "v2" {
		t.Fatalf("payload not replaced: %s", second.Drawing)
	}
	if second.ID != first.ID {
		t.Fatalf("upsert created a second document: %s vs %s", first.ID, second.ID)
	}

	all, err := svc.List(context.Background(), "u1", "a.pdf")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("expected exactly one drawing after upsert, got %d", len(all))
	}
}
