package commands

import (
	"context"
	"errors"
	"testing"

	"figlens/internal/application"
	"figlens/internal/domain"
)

// stubSource serves a canned document without touching the network.
type stubSource struct {
	doc    *domain.Document
	images map[string]string
	err    error

	fileCalls int
}

func (s *stubSource) GetFile(_ context.Context, fileKey string) (*domain.Document, error) {
	s.fileCalls++
	if s.err != nil {
		return nil, s.err
	}
	return s.doc, nil
}

func (s *stubSource) GetNodes(_ context.Context, fileKey string, ids []string) (map[string]*domain.Node, error) {
	return nil, s.err
}

func (s *stubSource) GetImages(_ context.Context, fileKey string, ids []string, format string, scale float64) (map[string]string, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.images, nil
}

func stubDocument() *domain.Document {
	return &domain.Document{
		Name: "Stub",
		Document: &domain.Node{
			ID: "0:0", Type: domain.NodeDocument,
			Children: []*domain.Node{
				{ID: "1:1", Name: "Page 1", Type: domain.NodeCanvas, Children: []*domain.Node{
					{ID: "2:1", Name: "Primary Button", Type: domain.NodeFrame},
				}},
			},
		},
	}
}

func TestPaletteCommand_FetchesAndBuilds(t *testing.T) {
	source := &stubSource{doc: stubDocument()}

	report, err := NewPaletteCommand(source, "abc123").Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if source.fileCalls != 1 {
		t.Errorf("expected one fetch, got %d", source.fileCalls)
	}
	if report.FileName != "Stub" {
		t.Errorf("expected Stub, got %s", report.FileName)
	}
}

func TestUICommand_ReportsNameMatches(t *testing.T) {
	source := &stubSource{doc: stubDocument()}

	report, err := NewUICommand(source, "abc123").Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if len(report.Pages) != 1 || len(report.Pages[0].UI.Buttons) != 1 {
		t.Fatalf("expected one button, got %+v", report.Pages)
	}
	if report.Pages[0].UI.Buttons[0].Name != "Primary Button" {
		t.Errorf("unexpected button %+v", report.Pages[0].UI.Buttons[0])
	}
}

func TestCommands_RejectInvalidFileKey(t *testing.T) {
	source := &stubSource{doc: stubDocument()}

	_, err := NewStatsCommand(source, "not a key").Execute(context.Background())
	if !errors.Is(err, application.ErrInvalidFileKey) {
		t.Errorf("expected ErrInvalidFileKey, got %v", err)
	}
	if source.fileCalls != 0 {
		t.Errorf("expected no fetch on invalid key, got %d", source.fileCalls)
	}
}

func TestCommands_PropagateSourceErrors(t *testing.T) {
	boom := errors.New("upstream down")
	source := &stubSource{err: boom}

	_, err := NewUsageCommand(source, "abc123").Execute(context.Background())
	if !errors.Is(err, boom) {
		t.Errorf("expected upstream error, got %v", err)
	}
}

func TestExportImagesCommand(t *testing.T) {
	source := &stubSource{images: map[string]string{"2:1": "https://img.example/2-1.png"}}

	export, err := NewExportImagesCommand(source, "abc123", []string{"2:1"}).Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if export.Format != "png" || export.Scale != 1 {
		t.Errorf("unexpected defaults %+v", export)
	}
	if export.Images["2:1"] != "https://img.example/2-1.png" {
		t.Errorf("unexpected images %+v", export.Images)
	}
}
