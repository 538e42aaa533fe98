package audit

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/auditware/sitecheck/internal/config"
	"github.com/spf13/afero"
)

// ErrOutputMissing is returned when the build output directory does not
// exist. No other check is meaningful without it, so the audit stops.
var ErrOutputMissing = errors.New("build output directory does not exist")

const (
	sitemapFile = "sitemap-index.xml"
	robotsFile  = "robots.txt"
	indexFile   = "index.html"
)

// CheckBuildArtifacts verifies that the build produced the output directory,
// the sitemap, robots.txt and every required page. Only a missing output
// directory stops the audit; every other miss is recorded as a fail.
func CheckBuildArtifacts(fs afero.Fs, root string, site config.Site, r *Report) error {
	r.Section("Build Artifacts")

	exists, err := afero.DirExists(fs, root)
	if err != nil {
		return fmt.Errorf("failed to stat %s: %w", root, err)
	}
	if !exists {
		r.Fail("%s directory does not exist. Run the site build first.", root)
		return fmt.Errorf("%w: %s", ErrOutputMissing, root)
	}
	r.Pass("%s directory exists", root)

	if ok, _ := afero.Exists(fs, filepath.Join(root, sitemapFile)); ok {
		r.Pass("%s exists", sitemapFile)
	} else {
		r.Fail("%s is missing", sitemapFile)
	}

	robotsPath := filepath.Join(root, robotsFile)
	if ok, _ := afero.Exists(fs, robotsPath); ok {
		r.Pass("%s exists", robotsFile)
		content, err := afero.ReadFile(fs, robotsPath)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", robotsPath, err)
		}
		if strings.Contains(string(content), "Sitemap:") {
			r.Pass("%s contains sitemap reference", robotsFile)
		} else {
			r.Fail("%s missing sitemap reference", robotsFile)
		}
	} else {
		r.Fail("%s is missing", robotsFile)
	}

	for _, page := range site.RequiredPages {
		if ok, _ := afero.Exists(fs, requiredPagePath(root, page)); ok {
			r.Pass("Required page exists: %s", page)
		} else {
			r.Fail("Required page missing: %s", page)
		}
	}

	return nil
}

// requiredPagePath maps a required page to its file: "index.html" is the
// root document and any other name is a directory holding an index.html.
func requiredPagePath(root, page string) string {
	if page == indexFile {
		return filepath.Join(root, indexFile)
	}
	return filepath.Join(root, page, indexFile)
}
