package mp42srt

import (
	"encoding/xml"
	"strings"
)

// XMLSummary holds the fields of interest from embedded camera
// metadata. Sony cameras store a creation date and a device
// description in the non-real-time metadata document.
type XMLSummary struct {
	CreationDate string
	Device       []xml.Attr
}

type xmlNode struct {
	XMLName xml.Name
	Attr    []xml.Attr `xml:",any,attr"`
	Child   []xmlNode  `xml:",any"`
}

// SummarizeXML extracts the creation date and device attributes from
// an embedded XML fragment. Returns false if the fragment does not
// parse or carries neither field.
func SummarizeXML(fragment []byte) (XMLSummary, bool) {
	var root xmlNode
	if err := xml.Unmarshal(fragment, &root); err != nil {
		return XMLSummary{}, false
	}

	var s XMLSummary
	found := false
	for _, c := range root.Child {
		switch strings.ToLower(c.XMLName.Local) {
		case "creationdate":
			for _, a := range c.Attr {
				if a.Name.Local == "value" {
					s.CreationDate = a.Value
					found = true
				}
			}
		case "device":
			s.Device = c.Attr
			found = true
		}
	}
	return s, found
}
