package leetdoc

// Extractor extracts a submission from a rendered submission page.
type Extractor interface {
	// Extract runs the full pipeline over a page snapshot. It either returns
	// a complete submission or an error with one of the codes ENOTSUBMISSION,
	// ENOID, ENOCODE, EBADCODE, or ENONAME.
	Extract(page *Page) (*Submission, error)
}
