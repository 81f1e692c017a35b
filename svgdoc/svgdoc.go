/*
Package svgdoc exports signatures as standalone SVG documents.

A document holds a single path element, styled for hand-drawn strokes
(no fill, round caps and joins). Its view box is either the full drawing
surface or, if cropping is requested, the extent of the strokes.

BSD License

Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package svgdoc

import (
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/sigpath"
	"github.com/npillmayer/sigpath/config"
	"github.com/npillmayer/sigpath/pathdata"
	"github.com/npillmayer/sigpath/polygon"
)

// tracer writes to trace with key 'sigpath.svgdoc'
func tracer() tracing.Trace {
	return tracing.Select("sigpath.svgdoc")
}

// Namespace is the SVG XML namespace.
const Namespace = "http://www.w3.org/2000/svg"

// Document is an SVG document with a single path.
type Document struct {
	XMLName xml.Name `xml:"svg"`
	Xmlns   string   `xml:"xmlns,attr"`
	Class   string   `xml:"class,attr,omitempty"`
	ViewBox string   `xml:"viewBox,attr"`
	Width   string   `xml:"width,attr,omitempty"`
	Height  string   `xml:"height,attr,omitempty"`
	Path    Path     `xml:"path"`
}

// Path is the path element of a Document.
type Path struct {
	Class          string `xml:"class,attr,omitempty"`
	D              string `xml:"d,attr"`
	Fill           string `xml:"fill,attr"`
	Stroke         string `xml:"stroke,attr"`
	StrokeWidth    string `xml:"stroke-width,attr"`
	StrokeLinecap  string `xml:"stroke-linecap,attr"`
	StrokeLinejoin string `xml:"stroke-linejoin,attr"`
}

// New creates a document for an encoded path. The view box covers the
// drawing surface of the options. Width and height are set to the surface
// size times the export scale.
func New(d string, opts config.Options) *Document {
	return newDocument(d, sigpath.Origin, sigpath.P(opts.Width, opts.Height), opts)
}

func newDocument(d string, origin, size sigpath.Pair, opts config.Options) *Document {
	dec := opts.Decimals
	return &Document{
		Xmlns: Namespace,
		Class: opts.ClassName,
		ViewBox: strings.Join([]string{
			num(origin.X(), dec), num(origin.Y(), dec), num(size.X(), dec), num(size.Y(), dec),
		}, " "),
		Width:  num(size.X()*opts.Scale, dec),
		Height: num(size.Y()*opts.Scale, dec),
		Path: Path{
			Class:          opts.ClassPath,
			D:              d,
			Fill:           "none",
			Stroke:         opts.Stroke,
			StrokeWidth:    num(opts.StrokeWidth, -1),
			StrokeLinecap:  "round",
			StrokeLinejoin: "round",
		},
	}
}

// FromData creates a document for absolute path data. With opts.Crop set,
// the strokes are moved to the origin and the view box is shrunk to their
// extent, padded by half the stroke width and limited to the drawing
// surface.
func FromData(data pathdata.Data, opts config.Options) (*Document, error) {
	if len(data) == 0 {
		return New("", opts), nil
	}
	if !opts.Crop {
		d, err := pathdata.Encode(data, opts.Decimals, opts.Minify)
		if err != nil {
			return nil, err
		}
		return New(d, opts), nil
	}
	lo, hi, err := extent(data, opts)
	if err != nil {
		return nil, err
	}
	tracer().Debugf("crop to (%v, %v)", lo, hi)
	moved, err := pathdata.Transform(data, sigpath.Translation(-lo))
	if err != nil {
		return nil, err
	}
	d, err := pathdata.Encode(moved, opts.Decimals, opts.Minify)
	if err != nil {
		return nil, err
	}
	return newDocument(d, sigpath.Origin, hi-lo, opts), nil
}

// extent returns the area covered by the strokes, intersected with the
// drawing surface.
func extent(data pathdata.Data, opts config.Options) (lo, hi sigpath.Pair, err error) {
	pts, err := pathdata.Sample(data, 0, 0.25, 0.5, 0.75, 1)
	if err != nil {
		return
	}
	strokes := polygon.Enclosing(pts, opts.StrokeWidth/2)
	surface := polygon.Box(sigpath.Origin, sigpath.P(opts.Width, opts.Height))
	var ok bool
	if lo, hi, ok = polygon.Intersection(strokes, surface); !ok {
		tracer().Infof("strokes outside of drawing surface, not cropping")
		lo, hi = surface.BoundingBox()
	}
	return
}

// Write writes doc as XML to w.
func (doc *Document) Write(w io.Writer) error {
	enc := xml.NewEncoder(w)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("writing SVG document: %w", err)
	}
	return enc.Flush()
}

// String returns the XML markup of doc.
func (doc *Document) String() string {
	var b strings.Builder
	if err := doc.Write(&b); err != nil {
		return fmt.Sprintf("<!-- %v -->", err)
	}
	return b.String()
}

func num(v float64, decimals int) string {
	return strconv.FormatFloat(sigpath.RoundTo(v, decimals), 'f', -1, 64)
}
