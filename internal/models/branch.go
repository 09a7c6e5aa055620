package models

// Branch mirrors the branches table.
type Branch struct {
	ID   int64  `db:"id"`
	Code string `db:"code"`
	Name string `db:"name"`
	Area string `db:"area"`
}
