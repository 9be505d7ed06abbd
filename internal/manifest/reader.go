package manifest

import (
	"errors"
	"fmt"
	"os"

	"github.com/beevik/etree"

	"github.com/conn-castle/swinst/internal/messages"
)

// readFileFunc is a seam for tests.
var readFileFunc = os.ReadFile

// ReadTree parses manifest bytes into a generic element tree and returns its root.
// Any markup problem, including an empty document, is reported as ErrXMLSyntax.
func ReadTree(data []byte) (*etree.Element, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrXMLSyntax, err)
	}
	root := doc.Root()
	if root == nil {
		return nil, fmt.Errorf("%w: %w", ErrXMLSyntax, errors.New(messages.ManifestNoRootElement))
	}
	return root, nil
}

// ReadFile reads and parses the manifest at path.
func ReadFile(path string) (*etree.Element, error) {
	data, err := readFileFunc(path)
	if err != nil {
		return nil, fmt.Errorf(messages.ManifestReadFailedFmt, ErrIO, path, err)
	}
	root, err := ReadTree(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return root, nil
}
