package deck

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

var ErrEmptyDeck = errors.New("deck contains no slides")

// Write saves the deck as YAML.
func Write(d *Deck, path string) error {
	data, err := yaml.Marshal(d)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Read loads a deck previously saved with Write.
func Read(path string) (*Deck, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var d Deck
	if err := yaml.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("parse deck %s: %w", path, err)
	}
	if len(d.Slides) == 0 {
		return nil, fmt.Errorf("%s: %w", path, ErrEmptyDeck)
	}

	return &d, nil
}
