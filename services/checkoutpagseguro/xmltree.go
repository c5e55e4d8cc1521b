package checkoutpagseguro

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding/charmap"
)

// Tree is a nested key/value view of an XML response body. Leaf elements
// become strings, repeated elements become []any.
type Tree map[string]any

func charsetReader(charset string, input io.Reader) (io.Reader, error) {
	switch strings.ToLower(charset) {
	case "", "utf-8":
		return input, nil
	case "iso-8859-1", "latin1", "windows-1252":
		return charmap.ISO8859_1.NewDecoder().Reader(input), nil
	default:
		return nil, fmt.Errorf("unsupported charset %q", charset)
	}
}

// parseTree converts a whole XML document into a single-rooted Tree.
func parseTree(body []byte) (Tree, error) {
	decoder := xml.NewDecoder(bytes.NewReader(body))
	decoder.CharsetReader = charsetReader

	for {
		token, err := decoder.Token()
		if err == io.EOF {
			return nil, fmt.Errorf("document contains no element")
		}
		if err != nil {
			return nil, err
		}

		start, isStart := token.(xml.StartElement)
		if !isStart {
			continue
		}

		value, err := parseElement(decoder, start)
		if err != nil {
			return nil, err
		}

		return Tree{start.Name.Local: value}, nil
	}
}

func parseElement(decoder *xml.Decoder, start xml.StartElement) (any, error) {
	children := Tree{}
	text := strings.Builder{}

	for {
		token, err := decoder.Token()
		if err != nil {
			return nil, err
		}

		switch t := token.(type) {
		case xml.StartElement:
			child, err := parseElement(decoder, t)
			if err != nil {
				return nil, err
			}
			addChild(children, t.Name.Local, child)
		case xml.CharData:
			text.Write(t)
		case xml.EndElement:
			if len(children) > 0 {
				return children, nil
			}

			return strings.TrimSpace(text.String()), nil
		}
	}
}

// addChild turns a repeated element name into a list
func addChild(parent Tree, name string, value any) {
	existing, exists := parent[name]
	if !exists {
		parent[name] = value

		return
	}

	if list, isList := existing.([]any); isList {
		parent[name] = append(list, value)

		return
	}

	parent[name] = []any{existing, value}
}
