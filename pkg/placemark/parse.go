package placemark

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/net/html/charset"
)

// ErrNoDocument reports a KML payload without a Document element.
var ErrNoDocument = errors.New("placemark: document element not found")

// Placemark is one marker read from a KML Document.
type Placemark struct {
	Name string
	// Description is the raw inner markup with CDATA sections unwrapped.
	Description string
	// Coordinates is the trimmed coordinates text as found in the document.
	Coordinates string
	Longitude   float64
	Latitude    float64
	// HasPosition is false when the first tuple could not be parsed.
	HasPosition bool
}

type node struct {
	XMLName  xml.Name
	Text     string `xml:",chardata"`
	Inner    string `xml:",innerxml"`
	Children []node `xml:",any"`
}

func (n *node) find(local string) *node {
	for i := range n.Children {
		child := &n.Children[i]
		if child.XMLName.Local == local {
			return child
		}
		if found := child.find(local); found != nil {
			return found
		}
	}
	return nil
}

// Parse reads the first Document element of r and returns every Placemark
// beneath it in document order. Names are left empty when the marker has
// none. Element matching ignores namespaces.
func Parse(r io.Reader) ([]Placemark, error) {
	dec := xml.NewDecoder(r)
	dec.CharsetReader = charset.NewReaderLabel

	if err := seek(dec, "Document"); err != nil {
		return nil, err
	}

	var (
		out   []Placemark
		depth int
	)
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			return nil, fmt.Errorf("placemark: parse: %w", io.ErrUnexpectedEOF)
		}
		if err != nil {
			return nil, fmt.Errorf("placemark: parse: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local != "Placemark" {
				depth++
				continue
			}
			var n node
			if err := dec.DecodeElement(&n, &t); err != nil {
				return nil, fmt.Errorf("placemark: parse: %w", err)
			}
			out = append(out, fromNode(&n))
		case xml.EndElement:
			if depth == 0 {
				return out, nil
			}
			depth--
		}
	}
}

func seek(dec *xml.Decoder, local string) error {
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			return ErrNoDocument
		}
		if err != nil {
			return fmt.Errorf("placemark: parse: %w", err)
		}
		if start, ok := tok.(xml.StartElement); ok && start.Name.Local == local {
			return nil
		}
	}
}

func fromNode(n *node) Placemark {
	var p Placemark
	if name := n.find("name"); name != nil {
		p.Name = strings.TrimSpace(name.Text)
	}
	if desc := n.find("description"); desc != nil {
		p.Description = strings.TrimSpace(unwrapCDATA(desc.Inner))
	}
	if coords := n.find("coordinates"); coords != nil {
		p.Coordinates = strings.TrimSpace(coords.Text)
		p.Longitude, p.Latitude, p.HasPosition = parseCoordinates(p.Coordinates)
	}
	return p
}

// parseCoordinates reads the first "lng,lat[,alt]" tuple. Values are not
// range checked.
func parseCoordinates(raw string) (lng, lat float64, ok bool) {
	fields := strings.Fields(raw)
	if len(fields) == 0 {
		return 0, 0, false
	}
	parts := strings.Split(fields[0], ",")
	if len(parts) < 2 {
		return 0, 0, false
	}
	lng, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return 0, 0, false
	}
	lat, err = strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return 0, 0, false
	}
	return lng, lat, true
}

func unwrapCDATA(s string) string {
	const open, closing = "<![CDATA[", "]]>"
	var b strings.Builder
	for {
		start := strings.Index(s, open)
		if start < 0 {
			b.WriteString(s)
			return b.String()
		}
		b.WriteString(s[:start])
		rest := s[start+len(open):]
		end := strings.Index(rest, closing)
		if end < 0 {
			b.WriteString(rest)
			return b.String()
		}
		b.WriteString(rest[:end])
		s = rest[end+len(closing):]
	}
}
