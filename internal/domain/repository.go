package domain

// Repository is one public repository owned by a user.
// It is the detail record shown under an expanded result row.
type Repository struct {
	Description *string
	Fork        bool
	FullName    string
	HTMLURL     string
	ID          int64
	Language    string
	Name        string
	Stars       int
}

// DescriptionText returns the description or an empty string when unset
func (r Repository) DescriptionText() string {
	if r.Description == nil {
		return ""
	}
	return *r.Description
}
