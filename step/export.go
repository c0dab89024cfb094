package step

import (
	"fmt"
	"os"

	"github.com/darrenoakey/daz-cad-sub000/kernel"
	"go.uber.org/zap"
)

// WriteSTEP renders tris as a STEP AP214 file and returns its bytes,
// following kernel.WriteSTL's scratch-file-then-read-back shape: a Writer
// streams into a temp file, which is read back in full and removed on every
// exit path. This is the facade's alternate export path alongside STL/3MF.
func WriteSTEP(tris []kernel.Triangle3, name, author, org string, log *zap.Logger) ([]byte, error) {
	f, err := os.CreateTemp("", "cad-export-*.step")
	if err != nil {
		return nil, fmt.Errorf("step: create scratch file: %w", err)
	}
	path := f.Name()
	f.Close()
	defer os.Remove(path)

	w, err := NewWriter(path, log)
	if err != nil {
		return nil, fmt.Errorf("step: open writer: %w", err)
	}
	w.SetAuthor(author, org)

	if err := w.WriteMesh(tris, name); err != nil {
		w.Close()
		return nil, fmt.Errorf("step: write mesh: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("step: close writer: %w", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("step: read back scratch file: %w", err)
	}
	return data, nil
}

// WriteNamedSTEP renders faces as a STEP AP214 file the same way
// WriteSTEP does for a flat triangle soup, but threads each face's
// semantic name (faceNames, keyed by kernel.Face.ID) and the shape's
// color into the exported ADVANCED_FACE/STYLED_ITEM entities.
func WriteNamedSTEP(faces []kernel.Face, faceNames map[uint64]string, color, name, author, org string, log *zap.Logger) ([]byte, error) {
	f, err := os.CreateTemp("", "cad-export-*.step")
	if err != nil {
		return nil, fmt.Errorf("step: create scratch file: %w", err)
	}
	path := f.Name()
	f.Close()
	defer os.Remove(path)

	w, err := NewWriter(path, log)
	if err != nil {
		return nil, fmt.Errorf("step: open writer: %w", err)
	}
	w.SetAuthor(author, org)

	if err := w.WriteFaces(faces, faceNames, color, name); err != nil {
		w.Close()
		return nil, fmt.Errorf("step: write faces: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("step: close writer: %w", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("step: read back scratch file: %w", err)
	}
	return data, nil
}
