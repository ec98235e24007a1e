package config

import (
	"fmt"
	"io"
	"strings"

	"github.com/beevik/etree"

	clierr "github.com/randalmurphal/cliforge/errors"
)

// ImportDescriptor parses a project descriptor and inserts the text of every
// element with non-blank text into the project layer, unless the derived key
// is already set. It returns the number of inserted keys. The project file is
// not written.
func (s *Store) ImportDescriptor(r io.Reader) (int, error) {
	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(r); err != nil {
		return 0, clierr.Application("config.descriptor", fmt.Errorf("parse descriptor: %w", err))
	}
	root := doc.Root()
	if root == nil {
		return 0, clierr.Application("config.descriptor", fmt.Errorf("descriptor has no root element"))
	}

	inserted := 0
	var visit func(el *etree.Element)
	visit = func(el *etree.Element) {
		if text := strings.TrimSpace(el.Text()); text != "" {
			key := DescriptorKey(el.Tag)
			if !s.project.Has(key) {
				s.project.Set(key, text)
				inserted++
			}
		}
		for _, child := range el.ChildElements() {
			visit(child)
		}
	}
	visit(root)

	return inserted, nil
}

// DescriptorKey converts a descriptor tag to a property key. Dash-separated
// segments are joined with dots; a single segment is prefixed with "project.".
func DescriptorKey(tag string) string {
	parts := strings.Split(tag, "-")
	if len(parts) == 1 {
		parts = append([]string{"project"}, parts...)
	}
	return strings.Join(parts, ".")
}
