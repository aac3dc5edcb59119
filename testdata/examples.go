// Package testdata bundles example payloads shared by the tests of the
// model packages.
package testdata

import (
	"embed"
	"io/fs"
	"path"
	"strings"
)

//go:embed examples/*.json
var examples embed.FS

// GetExamples returns the bundled examples of format ("json") by file name.
func GetExamples(format string) map[string][]byte {
	names, err := fs.Glob(examples, "examples/*."+format)
	if err != nil {
		panic(err)
	}

	out := map[string][]byte{}
	for _, name := range names {
		b, err := examples.ReadFile(name)
		if err != nil {
			panic(err)
		}
		out[strings.TrimPrefix(name, "examples/")] = b
	}
	return out
}

// GetExample returns a single bundled example by file name.
func GetExample(name string) []byte {
	b, err := examples.ReadFile(path.Join("examples", name))
	if err != nil {
		panic(err)
	}
	return b
}
