package material_test

import (
	"testing"

	"github.com/doodhq/dood/core/material"
	inmemdb "github.com/doodhq/dood/storage/database/inmem"
)

func newTestService(t *testing.T) *material.Service {
	t.Helper()

	db, err := inmemdb.Open()
	if err != nil {
		t.Fatalf("inmemdb.Open() failed: %v", err)
	}
	return material.NewService(inmemdb.NewMaterialRepository(db))
}

func TestService_Accept(t *testing.T) {
	svc := newTestService(t)

	accepted, err := svc.Accept([]material.FileInfo{
		{Name: "biology-notes.pdf", Size: 120_000, ContentType: material.PDFContentType},
		{Name: "syllabus.docx", Size: 40_000, ContentType: "application/vnd.openxmlformats-officedocument.wordprocessingml.document"},
		{Name: "chapter-3.pdf", Size: 310_000, ContentType: material.PDFContentType},
		{Name: "diagram.png", Size: 80_000, ContentType: "image/png"},
	})
	if err != nil {
		t.Fatalf("Accept() failed: %v", err)
	}

	if len(accepted) != 2 {
		t.Fatalf("Accept() kept %d files; want 2", len(accepted))
	}
	if accepted[0].Name != "biology-notes.pdf" || accepted[1].Name != "chapter-3.pdf" {
		t.Errorf("Accept() kept %q, %q; want the two PDFs", accepted[0].Name, accepted[1].Name)
	}
	for _, mat := range accepted {
		if mat.ID == "" {
			t.Errorf("Accept() left %q without an id", mat.Name)
		}
		if mat.UploadedAt.IsZero() {
			t.Errorf("Accept() left %q without a timestamp", mat.Name)
		}
	}

	// rejected entries never reach the store
	mats, err := svc.List()
	if err != nil {
		t.Fatalf("List() failed: %v", err)
	}
	if len(mats) != 2 {
		t.Errorf("List() = %d materials; want 2", len(mats))
	}
}

func TestService_Accept_allFiltered(t *testing.T) {
	svc := newTestService(t)

	accepted, err := svc.Accept([]material.FileInfo{
		{Name: "notes.txt", Size: 100, ContentType: "text/plain"},
	})
	if err != nil {
		t.Fatalf("Accept() failed: %v", err)
	}
	if len(accepted) != 0 {
		t.Errorf("Accept() = %v; want none", accepted)
	}
}

func TestService_Remove(t *testing.T) {
	svc := newTestService(t)

	accepted, err := svc.Accept([]material.FileInfo{
		{Name: "biology-notes.pdf", Size: 120_000, ContentType: material.PDFContentType},
	})
	if err != nil {
		t.Fatalf("Accept() failed: %v", err)
	}

	if err = svc.Remove(accepted[0].ID); err != nil {
		t.Fatalf("Remove() failed: %v", err)
	}
	mats, err := svc.List()
	if err != nil {
		t.Fatalf("List() failed: %v", err)
	}
	if len(mats) != 0 {
		t.Errorf("material still listed after Remove(): %v", mats)
	}

	// idempotent
	if err = svc.Remove(accepted[0].ID); err != nil {
		t.Errorf("second Remove() = %v; want no-op", err)
	}
}

func TestService_HasMaterials(t *testing.T) {
	svc := newTestService(t)

	has, err := svc.HasMaterials()
	if err != nil {
		t.Fatalf("HasMaterials() failed: %v", err)
	}
	if has {
		t.Error("HasMaterials() = true on an empty store")
	}

	if _, err = svc.Accept([]material.FileInfo{
		{Name: "biology-notes.pdf", Size: 120_000, ContentType: material.PDFContentType},
	}); err != nil {
		t.Fatalf("Accept() failed: %v", err)
	}

	if has, _ = svc.HasMaterials(); !has {
		t.Error("HasMaterials() = false after an upload")
	}
}
