// Package routepath stores canonical HTTP paths for the site.
package routepath

const (
	Root         = "/"
	Health       = "/healthz"
	Suggestions  = "/suggestions"
	StaticPrefix = "/static/"
)

// SectionAnchor returns the root path with the fragment for a section, for
// redirects back to a scroll position.
func SectionAnchor(sectionID string) string {
	if sectionID == "" {
		return Root
	}
	return Root + "#" + sectionID
}
