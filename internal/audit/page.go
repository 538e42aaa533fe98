package audit

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/spf13/afero"
)

// Page is a parsed HTML document from the build output.
type Page struct {
	// Path is the file path the page was read from.
	Path string
	// Name is the page's path relative to the output root, e.g. "/about/index.html".
	Name string
	Doc  *goquery.Document
}

// ParsePage parses an HTML document.
func ParsePage(name string, r io.Reader) (*Page, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", name, err)
	}
	return &Page{Name: name, Doc: doc}, nil
}

// LoadPage reads and parses the HTML file at path, naming it relative to root.
func LoadPage(fs afero.Fs, root, path string) (*Page, error) {
	f, err := fs.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	page, err := ParsePage(pageName(root, path), f)
	if err != nil {
		return nil, err
	}
	page.Path = path
	return page, nil
}

func pageName(root, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return filepath.ToSlash(path)
	}
	return "/" + filepath.ToSlash(rel)
}

// maxLinkDepth bounds how many symbolic links resolveLinks follows.
const maxLinkDepth = 40

// resolveLinks follows symbolic links on root itself. Walking starts with an
// Lstat, so a linked output directory would otherwise look like a file.
func resolveLinks(fs afero.Fs, root string) (string, error) {
	lstater, ok := fs.(afero.Lstater)
	if !ok {
		return root, nil
	}
	reader, ok := fs.(afero.LinkReader)
	if !ok {
		return root, nil
	}

	path := root
	for range maxLinkDepth {
		info, _, err := lstater.LstatIfPossible(path)
		if err != nil {
			return "", err
		}
		if info.Mode()&os.ModeSymlink == 0 {
			return path, nil
		}
		target, err := reader.ReadlinkIfPossible(path)
		if err != nil {
			return "", err
		}
		if !filepath.IsAbs(target) {
			target = filepath.Join(filepath.Dir(path), target)
		}
		path = target
	}
	return "", fmt.Errorf("too many levels of symbolic links: %s", root)
}

// HTMLFiles returns every .html file under root in lexical order. Directories
// whose name starts with an underscore are not descended into. A root that
// is a symbolic link is followed, and the returned paths stay under root.
func HTMLFiles(fs afero.Fs, root string) ([]string, error) {
	walkRoot, err := resolveLinks(fs, root)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s: %w", root, err)
	}

	var files []string
	err = afero.Walk(fs, walkRoot, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			if path != walkRoot && strings.HasPrefix(info.Name(), "_") {
				return filepath.SkipDir
			}
			return nil
		}
		if strings.HasSuffix(info.Name(), ".html") {
			rel, err := filepath.Rel(walkRoot, path)
			if err != nil {
				return err
			}
			files = append(files, filepath.Join(root, rel))
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list HTML files in %s: %w", root, err)
	}
	return files, nil
}
