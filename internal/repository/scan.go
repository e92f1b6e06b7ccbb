package repository

import "heroapi/internal/model"

// SuperheroColumns is the column list shared by every SQL implementation, in ScanSuperhero order.
const SuperheroColumns = `id, slug, name, real_name, publisher, first_appearance, description, portrait_path, created_at, updated_at`

// RowScanner is satisfied by *sql.Row and *sql.Rows.
type RowScanner interface {
	Scan(dest ...any) error
}

// ScanSuperhero reads one row selected with SuperheroColumns.
func ScanSuperhero(row RowScanner) (*model.Superhero, error) {
	var h model.Superhero
	if err := row.Scan(
		&h.ID,
		&h.Slug,
		&h.Name,
		&h.RealName,
		&h.Publisher,
		&h.FirstAppearance,
		&h.Description,
		&h.PortraitPath,
		&h.CreatedAt,
		&h.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &h, nil
}
