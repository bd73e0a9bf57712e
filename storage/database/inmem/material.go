package inmemdb

import (
	"sort"

	"github.com/doodhq/dood/core/material"
)

type materialRepository struct {
	db *materialTable
}

func NewMaterialRepository(db *DB) material.Repository {
	return &materialRepository{db: db.material}
}

// query returns materials in upload order. Callers hold the lock.
func (repo *materialRepository) query() []material.Material {
	rows := make([]materialRow, 0, len(repo.db.table))
	for _, row := range repo.db.table {
		rows = append(rows, row)
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].seq < rows[j].seq })

	mats := make([]material.Material, 0, len(rows))
	for _, row := range rows {
		mats = append(mats, row.mat)
	}
	return mats
}

func (repo *materialRepository) CreateMaterial(mat material.Material) (material.Material, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	repo.db.seq++
	repo.db.table[mat.ID] = materialRow{mat: mat, seq: repo.db.seq}
	return mat, nil
}

func (repo *materialRepository) QueryAllMaterials() ([]material.Material, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()
	return repo.query(), nil
}

func (repo *materialRepository) GetMaterialByID(id string) (material.Material, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	if row, ok := repo.db.table[id]; ok {
		return row.mat, nil
	}
	return material.Material{}, material.ErrNotFound
}

func (repo *materialRepository) DeleteMaterialByID(id string) error {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	delete(repo.db.table, id)
	return nil
}
