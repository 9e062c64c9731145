package outline

import "fmt"

// Kind tags a content item with its place in the slide outline.
type Kind int

const (
	Plain Kind = iota
	Title
	Item
	SubItem
)

const (
	// NoTextPlaceholder is emitted for empty or whitespace-only slide text.
	NoTextPlaceholder = "No text detected in this slide"
	// NoContentPlaceholder is emitted when classification produced nothing.
	NoContentPlaceholder = "No meaningful content detected"
)

var kindNames = map[Kind]string{
	Plain:   "plain",
	Title:   "title",
	Item:    "item",
	SubItem: "subitem",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// MarshalText lets outlines round-trip through YAML and JSON as readable names.
func (k Kind) MarshalText() ([]byte, error) {
	if _, ok := kindNames[k]; !ok {
		return nil, fmt.Errorf("unknown outline kind %d", int(k))
	}
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(b []byte) error {
	for kind, name := range kindNames {
		if name == string(b) {
			*k = kind
			return nil
		}
	}
	return fmt.Errorf("unknown outline kind %q", string(b))
}

// ContentItem is a single classified line of a slide outline. Text is never empty.
type ContentItem struct {
	Kind Kind   `yaml:"kind" json:"kind"`
	Text string `yaml:"text" json:"text"`
}

// Outline is the ordered list of items for one slide.
type Outline []ContentItem

// Equal reports whether both outlines carry the same kind/text sequence.
func (o Outline) Equal(other Outline) bool {
	if len(o) != len(other) {
		return false
	}
	for i := range o {
		if o[i] != other[i] {
			return false
		}
	}
	return true
}
