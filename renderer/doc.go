// Package renderer turns merged documents into text, HTML, and coloured
// terminal output.
//
// Every renderer understands the diff marks produced by the differ package.
// A View picks what to show: ViewMerged shows both sides with changes
// highlighted, ViewOld and ViewNew reconstruct one side. Project performs the
// same reconstruction on the tree itself.
//
//	fmt.Print(renderer.Text(merged, renderer.ViewMerged))
//	// Hello {+there +}world
//
//	html := renderer.HTML(merged)
//	// <p>Hello <ins>there </ins>world</p>
//
//	fmt.Print(renderer.Terminal(merged, renderer.ViewMerged))
//
// Terminal detects colour support from the writer given by WithOutput
// (stdout by default). WithColorProfile overrides the detection and
// WithTheme replaces the default colours.
package renderer
