package chart

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.dedis.ch/onet/v3/log"
	"golang.org/x/xerrors"
)

// Formats lists the output formats, as file extensions.
var Formats = []string{"png", "svg", "pdf", "eps", "jpg", "jpeg", "tif", "tiff", "xlsx"}

// FormatOf returns the format for the extension of path.
func FormatOf(path string) string {
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
}

func supported(format string) bool {
	for _, f := range Formats {
		if f == format {
			return true
		}
	}
	return false
}

// WriteTo encodes the figure in the given format and writes it to w.
func (f *Figure) WriteTo(w io.Writer, format string) error {
	format = strings.ToLower(format)
	if !supported(format) {
		return newRenderError("encode", xerrors.Errorf("unsupported format %q", format))
	}
	if format == "xlsx" {
		return f.writeXLSX(w)
	}

	wt, err := f.plot.WriterTo(f.width, f.height, format)
	if err != nil {
		return newRenderError("encode "+format, err)
	}
	if _, err := wt.WriteTo(w); err != nil {
		return newRenderError("write "+format, err)
	}
	return nil
}

// Save writes the figure to path in the format given by its extension.
// The figure is encoded before the file is created, so a failure leaves
// no file behind.
func (f *Figure) Save(path string) error {
	var buf bytes.Buffer
	if err := f.WriteTo(&buf, FormatOf(path)); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return newRenderError("save", err)
	}
	log.Lvl2("Wrote chart to", path)
	return nil
}
