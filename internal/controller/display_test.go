package controller

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ghscout/ghscout/internal/domain"
)

func TestDerive_Body(t *testing.T) {
	rows := NewRoster(users(1, 2))

	tests := []struct {
		name  string
		state State
		want  Body
	}{
		{"idle", New(10), BodyEmpty},
		{"loading hides rows", State{CurrentPage: 1, PageSize: 10, Roster: rows, Status: StatusLoading}, BodyLoading},
		{"failed", State{CurrentPage: 1, PageSize: 10, Status: StatusFailed, ErrorMessage: "boom"}, BodyError},
		{"ready without rows", State{CurrentPage: 1, PageSize: 10, Status: StatusReady}, BodyEmpty},
		{"ready with rows", State{CurrentPage: 1, PageSize: 10, Roster: rows, Status: StatusReady, TotalRows: 2}, BodyRows},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := Derive(tt.state)
			assert.Equal(t, tt.want, d.Body)
			if tt.want != BodyRows {
				assert.Empty(t, d.Rows)
			}
			if tt.want != BodyError {
				assert.Empty(t, d.ErrorMessage)
			}
		})
	}
}

func TestDerive_Panels(t *testing.T) {
	base := NewRoster(users(1, 2, 3, 4, 5))
	set := func(r Roster, id domain.UserID, f func(*Row)) Roster {
		row, _ := r.Get(id)
		f(&row)
		return r.replace(row)
	}

	r := base
	r = set(r, 2, func(row *Row) { row.Expanded = true; row.DetailStatus = DetailLoading })
	r = set(r, 3, func(row *Row) { row.Expanded = true; row.DetailStatus = DetailFailed; row.DetailError = "Not Found" })
	r = set(r, 4, func(row *Row) { row.Expanded = true; row.DetailStatus = DetailLoaded })
	r = set(r, 5, func(row *Row) {
		row.Expanded = true
		row.DetailStatus = DetailLoaded
		row.DetailItems = []domain.Repository{{ID: 9, Name: "spoon-knife"}}
	})

	d := Derive(State{CurrentPage: 1, PageSize: 10, Roster: r, Status: StatusReady, TotalRows: 5})

	var panels []Panel
	for _, rd := range d.Rows {
		panels = append(panels, rd.Panel)
	}
	assert.Equal(t, []Panel{PanelHidden, PanelLoading, PanelError, PanelEmpty, PanelItems}, panels)
}

func TestDerive_Range(t *testing.T) {
	s := State{CurrentPage: 3, PageSize: 10, Roster: NewRoster(users(1, 2, 3)), Status: StatusReady, TotalRows: 23}

	d := Derive(s)

	assert.Equal(t, 21, d.From)
	assert.Equal(t, 23, d.To)
	assert.True(t, d.PrevEnabled)
	assert.False(t, d.NextEnabled)
}
