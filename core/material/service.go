package material

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	// errors
	ErrNotFound = errors.New("material not found")
)

type (
	Repository interface {
		CreateMaterial(mat Material) (Material, error)
		// QueryAllMaterials returns every material in upload order.
		QueryAllMaterials() ([]Material, error)
		GetMaterialByID(id string) (Material, error)
		DeleteMaterialByID(id string) error
	}

	ServiceInterface interface {
		Accept(files []FileInfo) ([]Material, error)
		List() ([]Material, error)
		Remove(id string) error
		HasMaterials() (bool, error)
	}

	Service struct {
		repo Repository

		now func() time.Time // mockable
	}
)

var _ ServiceInterface = (*Service)(nil)

func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

// Accept registers the PDF entries among the given files and drops the rest.
// The MIME filter is the only validation; an all-filtered batch is a no-op
// and returns an empty slice, not an error.
func (svc *Service) Accept(files []FileInfo) ([]Material, error) {
	accepted := make([]Material, 0, len(files))
	for _, f := range files {
		if f.ContentType != PDFContentType {
			continue
		}
		mat, err := svc.repo.CreateMaterial(Material{
			ID:          uuid.New().String(),
			Name:        f.Name,
			Size:        f.Size,
			ContentType: f.ContentType,
			UploadedAt:  svc.now().UTC(),
		})
		if err != nil {
			return accepted, err
		}
		accepted = append(accepted, mat)
	}
	return accepted, nil
}

func (svc *Service) List() ([]Material, error) {
	return svc.repo.QueryAllMaterials()
}

// Remove deletes the material; removing an unknown id is a no-op.
func (svc *Service) Remove(id string) error {
	return svc.repo.DeleteMaterialByID(id)
}

// HasMaterials reports whether anything has been uploaded yet; the demo
// panels are gated on it.
func (svc *Service) HasMaterials() (bool, error) {
	mats, err := svc.repo.QueryAllMaterials()
	if err != nil {
		return false, err
	}
	return len(mats) > 0, nil
}
