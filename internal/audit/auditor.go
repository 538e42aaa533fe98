package audit

import (
	"io"

	"github.com/auditware/sitecheck/internal/config"
	"github.com/hashicorp/go-hclog"
	"github.com/spf13/afero"
)

// Check inspects one page and records its results on the report. Checks are
// independent of each other and never stop the audit.
type Check func(site config.Site, p *Page, r *Report)

// Checklist returns the check groups run against every page, in order.
func Checklist() []Check {
	return []Check{
		CheckMetaTags,
		CheckStructuredData,
		CheckImages,
		CheckPerformance,
		CheckAccessibility,
		CheckInternalLinks,
	}
}

// Builder provides a fluent interface for constructing an Auditor.
type Builder struct {
	fs     afero.Fs
	root   string
	site   config.Site
	logger hclog.Logger
	out    io.Writer
	checks []Check
}

// NewBuilder creates an Auditor builder for the build output at root, read
// from the OS filesystem with the default site settings.
func NewBuilder(root string) *Builder {
	return &Builder{
		fs:     afero.NewOsFs(),
		root:   root,
		site:   config.Default(),
		logger: hclog.NewNullLogger(),
		checks: Checklist(),
	}
}

// WithFs sets the filesystem the build output is read from.
func (b *Builder) WithFs(fs afero.Fs) *Builder {
	b.fs = fs
	return b
}

// WithSite sets the site settings pages are checked against.
func (b *Builder) WithSite(site config.Site) *Builder {
	b.site = site
	return b
}

// WithLogger sets the logger for progress and debug messages.
func (b *Builder) WithLogger(logger hclog.Logger) *Builder {
	b.logger = logger
	return b
}

// WithOutput sets where the report lines are written.
func (b *Builder) WithOutput(out io.Writer) *Builder {
	b.out = out
	return b
}

// WithChecks replaces the per-page checklist.
func (b *Builder) WithChecks(checks ...Check) *Builder {
	b.checks = checks
	return b
}

// Build constructs the Auditor.
func (b *Builder) Build() *Auditor {
	return &Auditor{
		fs:     b.fs,
		root:   b.root,
		site:   b.site,
		logger: b.logger.Named("audit"),
		out:    b.out,
		checks: b.checks,
	}
}

// Auditor runs the checklist over a build output directory.
type Auditor struct {
	fs     afero.Fs
	root   string
	site   config.Site
	logger hclog.Logger
	out    io.Writer
	checks []Check
}

// Run audits the build output. The returned report holds every result
// recorded, including when an error is returned. Run returns an error wrapping
// ErrOutputMissing when the output directory does not exist, and returns
// read or parse errors as they occur.
func (a *Auditor) Run() (*Report, error) {
	r := NewReport(a.out)
	a.logger.Debug("starting audit", "root", a.root, "site", a.site.SiteURL)

	if err := CheckBuildArtifacts(a.fs, a.root, a.site, r); err != nil {
		return r, err
	}

	files, err := HTMLFiles(a.fs, a.root)
	if err != nil {
		return r, err
	}
	r.Infof("\nFound %d HTML files to test", len(files))
	a.logger.Debug("found HTML files", "count", len(files))

	r.Section("Testing HTML Pages")
	for _, path := range files {
		page, err := LoadPage(a.fs, a.root, path)
		if err != nil {
			return r, err
		}

		r.Page(page.Name)
		before := len(r.results)
		for _, check := range a.checks {
			check(a.site, page, r)
		}
		a.logger.Debug("page audited", "page", page.Name, "results", len(r.results)-before)
	}

	a.logger.Info("audit complete", "pages", len(files), "failures", r.Failures(), "warnings", len(r.Warnings()))
	return r, nil
}
