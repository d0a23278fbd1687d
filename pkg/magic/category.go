package magic

import (
	"errors"
	"fmt"
)

// Category groups related file types.
type Category int

const (
	App Category = iota
	Archive
	Audio
	Book
	Document
	Font
	Image
	Video
	Text
	Custom
)

var ErrUnknownCategory = errors.New("unknown category")

var categoryNames = [...]string{
	App:      "app",
	Archive:  "archive",
	Audio:    "audio",
	Book:     "book",
	Document: "document",
	Font:     "font",
	Image:    "image",
	Video:    "video",
	Text:     "text",
	Custom:   "custom",
}

// Categories returns every category in declaration order.
func Categories() []Category {
	cats := make([]Category, len(categoryNames))
	for i := range categoryNames {
		cats[i] = Category(i)
	}
	return cats
}

func (c Category) String() string {
	if c < 0 || int(c) >= len(categoryNames) {
		return fmt.Sprintf("Category(%d)", int(c))
	}
	return categoryNames[c]
}

func ParseCategory(s string) (Category, error) {
	for i, name := range categoryNames {
		if name == s {
			return Category(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownCategory, s)
}
