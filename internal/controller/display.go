package controller

import "github.com/ghscout/ghscout/internal/pagination"

// Body is what the result area shows
type Body int

const (
	BodyLoading Body = iota
	BodyError
	BodyEmpty
	BodyRows
)

// Panel is what an expanded row shows underneath it
type Panel int

const (
	PanelHidden Panel = iota
	PanelLoading
	PanelError
	PanelEmpty
	PanelItems
)

// RowDisplay is a row together with the panel it should render
type RowDisplay struct {
	Panel Panel
	Row   Row
}

// Display is the render-ready projection of a State.
// It is derived on every frame and never stored.
type Display struct {
	Body         Body
	CurrentPage  int
	ErrorMessage string
	From         int // 1-based position of the first row shown, 0 when none
	Keyword      string
	NextEnabled  bool
	PrevEnabled  bool
	Rows         []RowDisplay
	Submitted    bool
	To           int
	TotalRows    int
	Window       pagination.Window
}

// Derive projects s into what the screen should show
func Derive(s State) Display {
	d := Display{
		CurrentPage: s.CurrentPage,
		Keyword:     s.Keyword,
		Submitted:   s.Submitted,
		TotalRows:   s.TotalRows,
	}

	totalPages := s.TotalPages()
	d.Window = pagination.ComputeWindow(s.CurrentPage, totalPages)
	_, d.PrevEnabled = pagination.Prev(s.CurrentPage, totalPages)
	_, d.NextEnabled = pagination.Next(s.CurrentPage, totalPages)

	switch {
	case s.Status == StatusLoading:
		d.Body = BodyLoading
		return d
	case s.Status == StatusFailed:
		d.Body = BodyError
		d.ErrorMessage = s.ErrorMessage
		return d
	case s.Roster.Len() == 0:
		d.Body = BodyEmpty
		return d
	}

	d.Body = BodyRows
	offset := (s.CurrentPage - 1) * s.PageSize
	d.From = offset + 1
	d.To = offset + s.Roster.Len()
	for _, row := range s.Roster.Rows() {
		d.Rows = append(d.Rows, RowDisplay{Panel: panelFor(row), Row: row})
	}
	return d
}

func panelFor(row Row) Panel {
	if !row.Expanded {
		return PanelHidden
	}
	switch row.DetailStatus {
	case DetailLoading:
		return PanelLoading
	case DetailFailed:
		return PanelError
	case DetailLoaded:
		if len(row.DetailItems) == 0 {
			return PanelEmpty
		}
		return PanelItems
	}
	// Expanded but never requested cannot happen through Update; show a spinner.
	return PanelLoading
}
