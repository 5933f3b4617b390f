package papertree

import "fmt"

// WarnMalformedHeadingOrder marks a heading shallower than the top depth of
// the run it appears in. The builder treats it as a top-depth heading.
const WarnMalformedHeadingOrder = "malformed_heading_order"

// WarnRemoteTable marks a linked table page that could not be fetched or
// parsed. The article is kept without that table.
const WarnRemoteTable = "remote_table"

// Warning records a recoverable anomaly found while extracting an article or
// building its outline. Section and Index locate builder warnings in the
// token streams.
type Warning struct {
	Code    string `json:"code"`
	Section int    `json:"section"`
	Index   int    `json:"index"`
	Message string `json:"message"`
}

// Builder folds flat token streams into section trees.
// The zero value reproduces the legacy single-heading flattening.
type Builder struct {
	// TopDepth, if positive, is the shallowest heading depth a run may use.
	// Shallower headings are coerced to TopDepth with a warning.
	TopDepth int

	// KeepNestedTitles keeps a lone subsection as a titled child instead of
	// splicing its content into the parent.
	KeepNestedTitles bool
}

// Build folds tokens into a section tree using the default Builder.
func Build(tokens []Token) (*Section, []Warning) {
	return Builder{}.Build(tokens)
}

// Build folds tokens into a section tree.
//
// The shallowest heading depth present is the top level. A run with at most
// one top-level heading becomes a single section titled by that heading;
// deeper runs inside it are built recursively and their content is spliced
// in. A run with several top-level headings becomes an untitled container
// with one child per top-level heading. Body tokens always become leaves in
// input order, so concatenating the leaves reproduces the body text.
func (b Builder) Build(tokens []Token) (*Section, []Warning) {
	tokens, warnings := b.normalize(tokens)
	return b.build(tokens), warnings
}

// normalize clamps headings shallower than the allowed floor. The input slice
// is never modified.
func (b Builder) normalize(tokens []Token) ([]Token, []Warning) {
	floor := max(b.TopDepth, 1)
	var out []Token
	var warnings []Warning
	for i, t := range tokens {
		if !t.IsHeading() || t.Depth >= floor {
			continue
		}
		if out == nil {
			out = make([]Token, len(tokens))
			copy(out, tokens)
		}
		warnings = append(warnings, Warning{
			Code:    WarnMalformedHeadingOrder,
			Index:   i,
			Message: fmt.Sprintf("heading %q at depth %d is above top depth %d", t.Text, t.Depth, floor),
		})
		out[i].Depth = floor
	}
	if out == nil {
		return tokens, nil
	}
	return out, warnings
}

func (b Builder) build(tokens []Token) *Section {
	sec := &Section{Content: []Item{}}

	top, ok := topDepth(tokens)
	if !ok {
		for _, t := range tokens {
			sec.Content = append(sec.Content, Text(t.Text))
		}
		return sec
	}

	var splits []int
	for i, t := range tokens {
		if t.IsHeading() && t.Depth == top {
			splits = append(splits, i)
		}
	}

	if len(splits) <= 1 {
		sec.Content = b.fold(sec, sec.Content, tokens, top)
		return sec
	}

	// Body before the first top-level heading precedes the sibling sections.
	sec.Content = b.fold(sec, sec.Content, tokens[:splits[0]], top)
	for i, start := range splits {
		end := len(tokens)
		if i+1 < len(splits) {
			end = splits[i+1]
		}
		sec.Content = append(sec.Content, b.build(tokens[start:end]))
	}
	return sec
}

// fold appends the items of a run containing at most one top-level heading.
// The top-level heading, if any, titles sec.
func (b Builder) fold(sec *Section, dst []Item, tokens []Token, top int) []Item {
	for i := 0; i < len(tokens); {
		t := tokens[i]
		switch {
		case !t.IsHeading():
			dst = append(dst, Text(t.Text))
			i++
		case t.Depth <= top:
			sec.Title = t.Text
			i++
		default:
			j := i + 1
			for j < len(tokens) && !(tokens[j].IsHeading() && tokens[j].Depth <= top) {
				j++
			}
			sub := b.build(tokens[i:j])
			if b.KeepNestedTitles && sub.Title != "" {
				dst = append(dst, sub)
			} else {
				dst = append(dst, sub.Content...)
			}
			i = j
		}
	}
	return dst
}

func topDepth(tokens []Token) (int, bool) {
	top, found := 0, false
	for _, t := range tokens {
		if !t.IsHeading() {
			continue
		}
		if !found || t.Depth < top {
			top, found = t.Depth, true
		}
	}
	return top, found
}
