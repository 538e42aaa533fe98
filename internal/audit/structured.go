package audit

import (
	"encoding/json"
	"fmt"

	"github.com/PuerkitoBio/goquery"
	"github.com/auditware/sitecheck/internal/config"
	"github.com/samber/lo"
)

// Schema.org types the checklist recognises.
const (
	typeOrganization   = "Organization"
	typeWebSite        = "WebSite"
	typeFAQPage        = "FAQPage"
	typeBreadcrumbList = "BreadcrumbList"
)

// CheckStructuredData checks the page's JSON-LD blocks. At least one block
// must exist and parse. Organization objects must carry the configured name
// and URL; FAQPage objects must list at least one question.
func CheckStructuredData(site config.Site, p *Page, r *Report) {
	scripts := p.Doc.Find(`script[type="application/ld+json"]`)
	if scripts.Length() == 0 {
		r.Fail("No JSON-LD structured data found")
		return
	}
	r.Pass("Found %d JSON-LD script(s)", scripts.Length())

	scripts.Each(func(_ int, s *goquery.Selection) {
		var data any
		if err := json.Unmarshal([]byte(s.Text()), &data); err != nil {
			r.Fail("Invalid JSON-LD: %v", err)
			return
		}

		for _, schema := range asList(data) {
			obj, ok := schema.(map[string]any)
			if !ok {
				r.Fail("Invalid JSON-LD: schema is %s, not an object", describeValue(schema))
				continue
			}
			switch obj["@type"] {
			case typeOrganization:
				checkOrganization(site, obj, r)
			case typeWebSite:
				r.Pass("WebSite schema found")
			case typeFAQPage:
				r.Pass("FAQPage schema found")
				if questions, ok := obj["mainEntity"].([]any); ok && len(questions) > 0 {
					r.Pass("%d FAQ items", len(questions))
				} else {
					r.Fail("FAQPage schema has no questions")
				}
			case typeBreadcrumbList:
				r.Pass("BreadcrumbList schema found")
			}
		}
	})
}

func checkOrganization(site config.Site, org map[string]any, r *Report) {
	r.Pass("Organization schema found")

	if org["name"] == site.SiteName {
		r.Pass("Organization name matches config")
	} else {
		r.Fail("Organization name should be %q, got: %s", site.SiteName, describeJSON(org, "name"))
	}

	if org["url"] == site.SiteURL {
		r.Pass("Organization URL matches config")
	} else {
		r.Fail("Organization URL should be %q, got: %s", site.SiteURL, describeJSON(org, "url"))
	}

	if org["foundingDate"] == site.FoundingDate {
		r.Pass("Founding date matches config")
	} else {
		r.Warn("Founding date is %s, expected %q", describeJSON(org, "foundingDate"), site.FoundingDate)
	}

	profiles := asStrings(org["sameAs"])
	if len(profiles) == 0 {
		r.Warn("No social profiles in Organization schema")
		return
	}
	r.Pass("Social profiles listed: %d", len(profiles))
	for _, want := range site.SocialProfiles {
		if lo.Contains(profiles, want) {
			r.Pass("Social profile listed: %s", want)
		} else {
			r.Warn("Social profile missing: %s", want)
		}
	}
}

// asList treats a top-level JSON-LD array as a list of schemas and anything
// else as a single schema.
func asList(v any) []any {
	if list, ok := v.([]any); ok {
		return list
	}
	return []any{v}
}

// asStrings returns the string entries of a JSON value that may be a single
// string or an array.
func asStrings(v any) []string {
	switch val := v.(type) {
	case string:
		if val == "" {
			return nil
		}
		return []string{val}
	case []any:
		return lo.FilterMap(val, func(item any, _ int) (string, bool) {
			s, ok := item.(string)
			return s, ok
		})
	default:
		return nil
	}
}

// describeValue names the JSON kind of a decoded value.
func describeValue(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case []any:
		return "an array"
	case string:
		return "a string"
	case float64:
		return "a number"
	case bool:
		return "a boolean"
	default:
		return fmt.Sprintf("%T", v)
	}
}

func describeJSON(obj map[string]any, key string) string {
	v, ok := obj[key]
	if !ok {
		return "<missing>"
	}
	return fmt.Sprintf("%q", fmt.Sprint(v))
}
