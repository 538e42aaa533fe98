package audit

import (
	"github.com/PuerkitoBio/goquery"
	"github.com/auditware/sitecheck/internal/config"
)

// CheckImages checks that every image carries an alt attribute. An empty alt
// marks a decorative image and counts as present. Pages without images
// produce no results beyond the loading hints.
func CheckImages(_ config.Site, p *Page, r *Report) {
	images := p.Doc.Find("img")
	total := images.Length()

	missing := 0
	images.Each(func(_ int, img *goquery.Selection) {
		if _, ok := img.Attr("alt"); !ok {
			missing++
			src, _ := img.Attr("src")
			r.Warn("Image missing alt text: %s", src)
		}
	})

	if total > 0 {
		if missing == 0 {
			r.Pass("All %d images have alt text", total)
		} else {
			r.Fail("%d/%d images missing alt text", missing, total)
		}
	}

	if n := p.Doc.Find(`img[loading="lazy"]`).Length(); n > 0 {
		r.Pass("%d images use lazy loading", n)
	}
	if n := p.Doc.Find(`img[loading="eager"]`).Length(); n > 0 {
		r.Pass("%d images use eager loading (above fold)", n)
	}
}

// CheckPerformance looks for performance hints. None of them fail a page.
func CheckPerformance(_ config.Site, p *Page, r *Report) {
	if p.Doc.Find(`link[rel="preconnect"][href*="fonts"]`).Length() > 0 {
		r.Pass("Font preconnect configured")
	} else {
		r.Warn("No font preconnect found")
	}

	if n := p.Doc.Find("style").Length(); n > 0 {
		r.Pass("%d inline style blocks (component styles)", n)
	}
}

// CheckAccessibility checks the document language, the viewport meta tag and
// that the page has exactly one h1.
func CheckAccessibility(_ config.Site, p *Page, r *Report) {
	if lang, _ := p.Doc.Find("html").First().Attr("lang"); lang != "" {
		r.Pass("HTML lang attribute: %s", lang)
	} else {
		r.Fail("HTML lang attribute is missing")
	}

	if viewport, _ := metaName(p.Doc, "viewport"); viewport != "" {
		r.Pass("Viewport meta tag exists")
	} else {
		r.Fail("Viewport meta tag is missing")
	}

	switch h1 := p.Doc.Find("h1").Length(); {
	case h1 == 1:
		r.Pass("Exactly one h1 tag")
	case h1 == 0:
		r.Fail("No h1 tag found")
	default:
		r.Warn("Multiple h1 tags found: %d", h1)
	}
}

// CheckInternalLinks counts root-relative links and checks that external
// links opened in a new tab carry rel="noopener".
func CheckInternalLinks(_ config.Site, p *Page, r *Report) {
	if n := p.Doc.Find(`a[href^="/"]`).Length(); n > 0 {
		r.Pass("%d internal links found", n)
	} else {
		r.Warn("No internal links found")
	}

	external := p.Doc.Find(`a[href^="http"]`).Length()
	unsafe := p.Doc.Find(`a[href^="http"][target="_blank"]:not([rel*="noopener"])`).Length()
	if unsafe > 0 {
		r.Warn(`%d external links missing rel="noopener"`, unsafe)
	} else if external > 0 {
		r.Pass("All external links have proper rel attributes")
	}
}
