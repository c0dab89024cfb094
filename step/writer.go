package step

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/darrenoakey/daz-cad-sub000/kernel"
	"go.uber.org/zap"
)

// Writer streams a triangle mesh out as a STEP AP214 file, following the
// sdfx exporter's header/data/footer section shape.
type Writer struct {
	file       *os.File
	writer     *bufio.Writer
	converter  *MeshConverter
	fileName   string
	authorName string
	orgName    string
	log        *zap.Logger
}

// NewWriter creates a new STEP writer at path.
func NewWriter(path string, log *zap.Logger) (*Writer, error) {
	file, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	if log == nil {
		log = zap.NewNop()
	}

	return &Writer{
		file:       file,
		writer:     bufio.NewWriter(file),
		converter:  NewMeshConverter(),
		fileName:   path,
		authorName: "cad-fluent user",
		orgName:    "cad-fluent",
		log:        log,
	}, nil
}

// SetAuthor sets the FILE_NAME author/organization fields.
func (w *Writer) SetAuthor(name, org string) {
	w.authorName = name
	w.orgName = org
}

// Close flushes and closes the underlying file.
func (w *Writer) Close() error {
	if err := w.writer.Flush(); err != nil {
		w.file.Close()
		return err
	}
	return w.file.Close()
}

func (w *Writer) writeHeader() error {
	header := []string{
		"ISO-10303-21;",
		"HEADER;",
		"FILE_DESCRIPTION(('STEP AP214'),'1');",
		fmt.Sprintf("FILE_NAME('%s','%s',('%s'),('%s'),'cad-fluent STEP Writer','cad-fluent','');",
			w.fileName,
			time.Now().Format("2006-01-02T15:04:05"),
			w.authorName,
			w.orgName),
		"FILE_SCHEMA(('AUTOMOTIVE_DESIGN'));",
		"ENDSEC;",
	}

	for _, line := range header {
		if _, err := w.writer.WriteString(line + "\n"); err != nil {
			return err
		}
	}
	return nil
}

func (w *Writer) writeData(entities []Entity) error {
	if _, err := w.writer.WriteString("DATA;\n"); err != nil {
		return err
	}

	for _, entity := range entities {
		str := entity.String()
		if strings.Contains(str, "\n") {
			for _, line := range strings.Split(str, "\n") {
				if _, err := w.writer.WriteString(line + "\n"); err != nil {
					return err
				}
			}
		} else if _, err := w.writer.WriteString(str + "\n"); err != nil {
			return err
		}
	}

	_, err := w.writer.WriteString("ENDSEC;\n")
	return err
}

func (w *Writer) writeFooter() error {
	_, err := w.writer.WriteString("END-ISO-10303-21;\n")
	return err
}

// WriteMesh converts tris to STEP BREP entities and writes the full file.
func (w *Writer) WriteMesh(tris []kernel.Triangle3, name string) error {
	w.log.Debug("step: writing mesh", zap.Int("triangles", len(tris)), zap.String("name", name))

	optimized := OptimizeMesh(tris)
	entities := w.converter.ConvertMesh(optimized, name)
	return w.writeFile(entities)
}

// WriteFaces converts a named, colored B-Rep solid's faces to STEP BREP
// entities and writes the full file, carrying each face's semantic name
// and the shape's color into the ADVANCED_FACE/STYLED_ITEM entities.
func (w *Writer) WriteFaces(faces []kernel.Face, faceNames map[uint64]string, color, name string) error {
	w.log.Debug("step: writing named faces",
		zap.Int("faces", len(faces)), zap.String("name", name), zap.String("color", color))

	entities := w.converter.ConvertFaces(faces, faceNames, color, name)
	return w.writeFile(entities)
}

func (w *Writer) writeFile(entities []Entity) error {
	if err := w.writeHeader(); err != nil {
		return err
	}
	if err := w.writeData(entities); err != nil {
		return err
	}
	if err := w.writeFooter(); err != nil {
		return err
	}
	return w.writer.Flush()
}
