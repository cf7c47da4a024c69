package newspulse

// Converter turns page HTML into compact Markdown text, used to keep
// prompts sent to language models small.
type Converter interface {
	// Convert transforms HTML content into Markdown.
	Convert(html string) (string, error)
}
