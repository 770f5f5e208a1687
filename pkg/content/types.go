package content

// Primary type tags used by the built-in traversal defaults. The vocabulary
// is open: sources may expose any tag, these are just the ones the default
// recurse/accept lists know about.
const (
	TypeSiteRoot = "site-root"
	TypePage     = "page"
	TypeArchive  = "archive"
	TypeFolder   = "folder"
	TypeArticle  = "article"
)

// DefaultRecurseTypes returns the container-like tags descended into by
// default. A fresh slice is returned each call so callers can mutate it
// freely.
func DefaultRecurseTypes() []string {
	return []string{TypeSiteRoot, TypePage, TypeArchive, TypeFolder}
}

// DefaultAcceptTypes returns the content-like tags accepted by default.
func DefaultAcceptTypes() []string {
	return []string{TypePage, TypeArticle}
}
