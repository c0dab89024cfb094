package kernel

import (
	"bufio"
	"fmt"
	"os"
)

// WriteSTL renders tris as ASCII STL, mirroring step/writer.go's Writer
// shape: a buffered writer streams the header/facets/footer to a temp
// file, which is then read back in full and returned as bytes, and the
// temp file is removed on every exit path.
func WriteSTL(tris []Triangle3, solidName string) ([]byte, error) {
	f, err := os.CreateTemp("", "cad-export-*.stl")
	if err != nil {
		return nil, fmt.Errorf("stl: create scratch file: %w", err)
	}
	path := f.Name()
	defer os.Remove(path)

	if err := writeSTLTo(f, tris, solidName); err != nil {
		f.Close()
		return nil, err
	}
	if err := f.Close(); err != nil {
		return nil, fmt.Errorf("stl: close scratch file: %w", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("stl: read back scratch file: %w", err)
	}
	return data, nil
}

func writeSTLTo(f *os.File, tris []Triangle3, solidName string) error {
	w := bufio.NewWriter(f)
	if solidName == "" {
		solidName = "shape"
	}
	if _, err := fmt.Fprintf(w, "solid %s\n", solidName); err != nil {
		return err
	}
	for _, t := range tris {
		if t.Degenerate(1e-12) {
			continue
		}
		n := t.Normal()
		if _, err := fmt.Fprintf(w, "  facet normal %g %g %g\n    outer loop\n", n.X, n.Y, n.Z); err != nil {
			return err
		}
		for _, v := range t {
			if _, err := fmt.Fprintf(w, "      vertex %g %g %g\n", v.X, v.Y, v.Z); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprint(w, "    endloop\n  endfacet\n"); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(w, "endsolid %s\n", solidName); err != nil {
		return err
	}
	return w.Flush()
}

// WriteCompoundSTL writes several named solids into one STL file, used by
// cad's Assembly.ToSTL to build a compound of all parts before writing.
func WriteCompoundSTL(parts [][]Triangle3, name string) ([]byte, error) {
	var all []Triangle3
	for _, p := range parts {
		all = append(all, p...)
	}
	return WriteSTL(all, name)
}
