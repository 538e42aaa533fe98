package audit

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/auditware/sitecheck/internal/config"
)

// Recommended upper bounds for search result snippets.
const (
	maxTitleLength       = 60
	maxDescriptionLength = 160
)

const (
	expectedOGType      = "website"
	expectedOGLocale    = "en_US"
	expectedTwitterCard = "summary_large_image"
)

// attr returns the named attribute of the first element matching selector.
func attr(doc *goquery.Document, selector, name string) (string, bool) {
	return doc.Find(selector).First().Attr(name)
}

// metaProperty returns the content of <meta property="...">.
func metaProperty(doc *goquery.Document, property string) (string, bool) {
	return attr(doc, fmt.Sprintf(`meta[property=%q]`, property), "content")
}

// metaName returns the content of <meta name="...">.
func metaName(doc *goquery.Document, name string) (string, bool) {
	return attr(doc, fmt.Sprintf(`meta[name=%q]`, name), "content")
}

// describe renders an attribute value for a failure message.
func describe(value string, ok bool) string {
	if !ok {
		return "<missing>"
	}
	return fmt.Sprintf("%q", value)
}

// CheckMetaTags checks the title, description, canonical link, Open Graph
// and Twitter Card tags.
func CheckMetaTags(site config.Site, p *Page, r *Report) {
	doc := p.Doc

	title := doc.Find("title").Text()
	if title != "" {
		r.Pass("Title exists: %q", title)
		if n := utf8.RuneCountInString(title); n > maxTitleLength {
			r.Warn("Title is long (%d chars, recommended < %d)", n, maxTitleLength)
		}
	} else {
		r.Fail("Title is missing or empty")
	}

	if desc, _ := metaName(doc, "description"); desc != "" {
		n := utf8.RuneCountInString(desc)
		r.Pass("Description exists (%d chars)", n)
		if n > maxDescriptionLength {
			r.Warn("Description is long (%d chars, recommended < %d)", n, maxDescriptionLength)
		}
	} else {
		r.Fail("Meta description is missing")
	}

	if canonical, _ := attr(doc, `link[rel="canonical"]`, "href"); canonical != "" {
		r.Pass("Canonical URL: %s", canonical)
		if !strings.HasPrefix(canonical, site.SiteURL) {
			r.Fail("Canonical URL doesn't match site URL: %s", canonical)
		}
	} else {
		r.Fail("Canonical URL is missing")
	}

	checkOpenGraph(site, doc, r)
	checkTwitterCard(site, doc, r)
}

func checkOpenGraph(site config.Site, doc *goquery.Document, r *Report) {
	for _, prop := range []string{"og:title", "og:description"} {
		if v, _ := metaProperty(doc, prop); v != "" {
			r.Pass("%s exists", prop)
		} else {
			r.Fail("%s is missing", prop)
		}
	}

	if image, _ := metaProperty(doc, "og:image"); image != "" {
		r.Pass("og:image exists: %s", image)
	} else {
		r.Fail("og:image is missing")
	}

	if v, _ := metaProperty(doc, "og:url"); v != "" {
		r.Pass("og:url exists")
	} else {
		r.Fail("og:url is missing")
	}

	expectProperty(doc, r, "og:type", expectedOGType)
	expectProperty(doc, r, "og:site_name", site.SiteName)
	expectProperty(doc, r, "og:locale", expectedOGLocale)
}

func expectProperty(doc *goquery.Document, r *Report, property, want string) {
	got, ok := metaProperty(doc, property)
	if ok && got == want {
		r.Pass("%s is %q", property, want)
		return
	}
	r.Fail("%s should be %q, got: %s", property, want, describe(got, ok))
}

func checkTwitterCard(site config.Site, doc *goquery.Document, r *Report) {
	for _, field := range []struct{ name, want string }{
		{"twitter:card", expectedTwitterCard},
		{"twitter:site", site.TwitterHandle},
	} {
		got, ok := metaName(doc, field.name)
		if ok && got == field.want {
			r.Pass("%s is %q", field.name, field.want)
		} else {
			r.Fail("%s should be %q, got: %s", field.name, field.want, describe(got, ok))
		}
	}

	for _, name := range []string{"twitter:title", "twitter:description", "twitter:image"} {
		if v, _ := metaName(doc, name); v != "" {
			r.Pass("%s exists", name)
		} else {
			r.Fail("%s is missing", name)
		}
	}
}
