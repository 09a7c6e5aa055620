package models

// OrderSequence mirrors the order_sequences counter table. One row per
// (prefix, year, month); next_value is the number the next allocation mints.
type OrderSequence struct {
	Prefix    string `db:"prefix"`
	Year      int    `db:"year"`
	Month     int    `db:"month"`
	NextValue int    `db:"next_value"`
}
