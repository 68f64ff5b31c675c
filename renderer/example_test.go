package renderer_test

import (
	"fmt"
	"log"

	"github.com/erraggy/docdiff/differ"
	"github.com/erraggy/docdiff/document"
	"github.com/erraggy/docdiff/renderer"
)

func ExampleText() {
	oldDoc, err := document.Parse([]byte(`{"type":"doc","content":[{"type":"paragraph","content":[{"type":"text","text":"Hello world"}]}]}`))
	if err != nil {
		log.Fatal(err)
	}
	newDoc, err := document.Parse([]byte(`{"type":"doc","content":[{"type":"paragraph","content":[{"type":"text","text":"Hello there world"}]}]}`))
	if err != nil {
		log.Fatal(err)
	}

	merged, err := differ.Diff(document.DefaultSchema(), oldDoc, newDoc)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Print(renderer.Text(merged, renderer.ViewMerged))
	fmt.Print(renderer.Text(merged, renderer.ViewOld))
	fmt.Print(renderer.HTML(merged))
	// Output:
	// Hello {+there +}world
	// Hello world
	// <p>Hello <ins>there </ins>world</p>
}
