package differ_test

import (
	"fmt"
	"log"

	"github.com/erraggy/docdiff/differ"
	"github.com/erraggy/docdiff/document"
)

// Example demonstrates diffing two document files with functional options
func Example() {
	result, err := differ.DiffWithOptions(
		differ.WithSourceFilePath("../testdata/release-v1.json"),
		differ.WithTargetFilePath("../testdata/release-v2.json"),
	)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("inserted=%d deleted=%d unchanged=%d\n",
		result.Stats.Inserted, result.Stats.Deleted, result.Stats.Unchanged)
	for _, change := range result.Changes {
		fmt.Println(change)
	}
	// Output:
	// inserted=2 deleted=0 unchanged=4
	// + $.content[1].content[1] "much "
	// + $.content[3].content[0] "Upgrade today."
}

// ExampleDiff demonstrates diffing in-memory trees
func ExampleDiff() {
	oldDoc := document.NewElement("doc", nil,
		document.NewElement("paragraph", nil, document.NewText("Hello world")))
	newDoc := document.NewElement("doc", nil,
		document.NewElement("paragraph", nil, document.NewText("Hello there world")))

	merged, err := differ.Diff(document.DefaultSchema(), oldDoc, newDoc)
	if err != nil {
		log.Fatal(err)
	}

	for _, leaf := range merged.Content[0].Content {
		state := "unchanged"
		if t, ok := document.DiffMarkOf(leaf); ok {
			state = t.String()
		}
		fmt.Printf("%-9s %q\n", state, leaf.Text)
	}
	// Output:
	// unchanged "Hello "
	// inserted  "there "
	// unchanged "world"
}

// ExampleDiffer demonstrates a reusable Differ with custom settings
func ExampleDiffer() {
	d := differ.New()
	d.SemanticCleanup = false

	oldDoc := document.NewElement("doc", nil,
		document.NewElement("paragraph", nil, document.NewText("The cat sat")))
	newDoc := document.NewElement("doc", nil,
		document.NewElement("paragraph", nil, document.NewText("The bat sat")))

	merged, err := d.Diff(document.DefaultSchema(), oldDoc, newDoc)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(len(merged.Content[0].Content), "leaves")
	// Output:
	// 4 leaves
}
