package controller

import (
	"maps"

	"github.com/ghscout/ghscout/internal/domain"
)

// Roster is the ordered set of rows for the page on display, keyed by identity.
// A Roster is never modified in place: replace returns a new Roster so states
// handed out earlier keep seeing their own rows.
type Roster struct {
	order []domain.UserID
	rows  map[domain.UserID]Row
}

// NewRoster builds fresh rows for users, keeping their order.
// Users repeating an identity already seen are skipped.
func NewRoster(users []domain.User) Roster {
	r := Roster{
		order: make([]domain.UserID, 0, len(users)),
		rows:  make(map[domain.UserID]Row, len(users)),
	}
	for _, u := range users {
		if _, dup := r.rows[u.ID]; dup {
			continue
		}
		r.order = append(r.order, u.ID)
		r.rows[u.ID] = newRow(u)
	}
	return r
}

// Len returns the number of rows
func (r Roster) Len() int {
	return len(r.order)
}

// Get returns the row for id
func (r Roster) Get(id domain.UserID) (Row, bool) {
	row, ok := r.rows[id]
	return row, ok
}

// At returns the row at position i in display order
func (r Roster) At(i int) (Row, bool) {
	if i < 0 || i >= len(r.order) {
		return Row{}, false
	}
	return r.rows[r.order[i]], true
}

// IndexOf returns the display position of id, or -1
func (r Roster) IndexOf(id domain.UserID) int {
	for i, candidate := range r.order {
		if candidate == id {
			return i
		}
	}
	return -1
}

// Rows returns all rows in display order
func (r Roster) Rows() []Row {
	rows := make([]Row, 0, len(r.order))
	for _, id := range r.order {
		rows = append(rows, r.rows[id])
	}
	return rows
}

// replace returns a roster with the entry at row.Identity swapped for row.
// Unknown identities leave the roster unchanged.
func (r Roster) replace(row Row) Roster {
	if _, ok := r.rows[row.Identity]; !ok {
		return r
	}
	rows := maps.Clone(r.rows)
	rows[row.Identity] = row
	return Roster{order: r.order, rows: rows}
}
