package convert

import (
	"path/filepath"
	"strings"

	"github.com/dunamismax/imgconvert/internal/domain"
)

const convertedSuffix = "_converted"

// DestinationPath strips the final extension of source and appends
// "_converted.<format>". Leading dots of the file name never start an
// extension, so ".bashrc" keeps its name.
func DestinationPath(source string, format domain.Format) string {
	return stripExtension(source) + convertedSuffix + "." + format.Extension()
}

func stripExtension(path string) string {
	base := filepath.Base(path)
	name := strings.TrimLeft(base, ".")
	ext := filepath.Ext(name)
	if ext == "" {
		return path
	}
	return strings.TrimSuffix(path, ext)
}
