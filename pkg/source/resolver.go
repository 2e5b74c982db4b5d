package source

import (
	"io/fs"
	"path/filepath"
	"strings"
)

// Resolve turns command-line inputs into the ordered list of streams to
// scan. No inputs means standard input is the sole stream. With recursive
// set, every regular file under each input is yielded in walk order;
// directories, non-regular entries, and entries the walk cannot read are
// skipped. Without recursive, literal paths are kept as-is.
func Resolve(inputs []string, recursive bool, excludeDirs []string) []Stream {
	if len(inputs) == 0 {
		return []Stream{Stdin()}
	}

	if !recursive {
		streams := make([]Stream, 0, len(inputs))
		for _, path := range inputs {
			streams = append(streams, File(path))
		}
		return streams
	}

	skip := make(map[string]bool, len(excludeDirs))
	for _, name := range excludeDirs {
		if name != "" {
			skip[strings.ToLower(name)] = true
		}
	}

	var streams []Stream
	for _, root := range inputs {
		streams = append(streams, walk(root, skip)...)
	}
	return streams
}

// walk collects the regular files under root in lexical order. Unreadable
// entries are skipped so one bad directory cannot end the run. Excluded
// directory names apply during descent only, never to root itself.
func walk(root string, skip map[string]bool) []Stream {
	var streams []Stream
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() {
			if path != root && skip[strings.ToLower(d.Name())] {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}
		streams = append(streams, File(path))
		return nil
	})
	return streams
}
