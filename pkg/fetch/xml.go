// ABOUTME: XML asset discovery over fetched documents
// ABOUTME: Finds xlink:href references and supports in-place rewriting

package fetch

import (
	"fmt"
	"time"

	"github.com/beevik/etree"
)

// staticAssetPaths lists the elements whose xlink:href attribute references
// a static asset.
var staticAssetPaths = []string{
	"//graphic",
	"//media",
	"//inline-graphic",
	"//supplementary-material",
	"//inline-supplementary-material",
}

const xlinkHref = "xlink:href"

type xmlContent struct {
	doc *etree.Document
}

func (c *xmlContent) Bytes() ([]byte, error) {
	return c.doc.WriteToBytes()
}

type xmlAssetRef struct {
	el *etree.Element
	id string
}

func (r *xmlAssetRef) ID() string {
	return r.id
}

func (r *xmlAssetRef) Rewrite(uri string) {
	r.el.CreateAttr(xlinkHref, uri)
}

// ParseXML parses an XML payload and enumerates its asset references.
func ParseXML(data []byte) (Content, []AssetRef, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, nil, &NonRetryableError{Err: fmt.Errorf("parse xml: %w", err)}
	}
	return &xmlContent{doc: doc}, staticAssets(doc), nil
}

// AssetsFromRemoteXML is the default Getter: it fetches an XML document and
// enumerates its static asset references.
func AssetsFromRemoteXML(rawURL string, timeout time.Duration) (Content, []AssetRef, error) {
	data, err := FetchData(rawURL, timeout)
	if err != nil {
		return nil, nil, err
	}
	return ParseXML(data)
}

func staticAssets(doc *etree.Document) []AssetRef {
	var refs []AssetRef
	for _, path := range staticAssetPaths {
		for _, el := range doc.FindElements(path) {
			attr := el.SelectAttr(xlinkHref)
			if attr == nil {
				continue
			}
			refs = append(refs, &xmlAssetRef{el: el, id: attr.Value})
		}
	}
	return refs
}
