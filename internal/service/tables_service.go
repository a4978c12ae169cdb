package service

import "storroz/internal/repository"

// expectedSchemaTables is the number of tables the migration creates.
const expectedSchemaTables = 8

type TablesService interface {
	SchemaStatus() (int, bool, error)
}

type tablesService struct {
	tablesRepo repository.TablesRepository
}

func NewTablesService(tablesRepo repository.TablesRepository) TablesService {
	return &tablesService{tablesRepo: tablesRepo}
}

// SchemaStatus reports the number of migration tables present and whether
// the schema is complete.
func (t *tablesService) SchemaStatus() (int, bool, error) {
	countTables, err := t.tablesRepo.CountSchemaTables()
	if err != nil {
		return 0, false, err
	}

	return countTables, countTables == expectedSchemaTables, nil
}
