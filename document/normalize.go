package document

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// normalizationForms maps the accepted WithNormalizeText names to forms.
var normalizationForms = map[string]norm.Form{
	"NFC":  norm.NFC,
	"NFD":  norm.NFD,
	"NFKC": norm.NFKC,
	"NFKD": norm.NFKD,
}

func lookupForm(name string) (norm.Form, bool) {
	f, ok := normalizationForms[strings.ToUpper(name)]
	return f, ok
}

// normalizeText rewrites every text leaf below n into form f in place.
// Only freshly decoded trees are passed here.
func normalizeText(n *Node, f norm.Form) {
	if n == nil {
		return
	}
	if n.Kind == KindText {
		n.Text = f.String(n.Text)
		return
	}
	for _, c := range n.Content {
		normalizeText(c, f)
	}
}

// NormalizeText returns a copy of the tree with every text leaf in the
// given Unicode normalization form (NFC, NFD, NFKC or NFKD). Two documents
// that differ only in how accented characters are composed compare equal
// once both are normalized to the same form.
func NormalizeText(n *Node, form string) (*Node, bool) {
	f, ok := lookupForm(form)
	if !ok {
		return nil, false
	}
	out := n.Clone()
	normalizeText(out, f)
	return out, true
}

// IsNormalizationForm reports whether name is an accepted normalization
// form name (case-insensitive).
func IsNormalizationForm(name string) bool {
	_, ok := lookupForm(name)
	return ok
}
