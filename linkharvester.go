package newspulse

// LinkHarvester extracts candidate article URLs from rendered HTML.
type LinkHarvester interface {
	// Harvest returns the unique absolute URLs in html that contain prefix.
	// Relative links are resolved against the harvester's site origin.
	Harvest(html, prefix string) ([]string, error)
}
