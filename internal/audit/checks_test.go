package audit

import (
	"strings"
	"testing"
)

func TestValidPageHasNoFailuresOrWarnings(t *testing.T) {
	for i, check := range Checklist() {
		r := runCheck(t, check, validHTML)
		if fails := messages(r, StatusFail); len(fails) > 0 {
			t.Errorf("check %d: unexpected failures %v", i, fails)
		}
		if warns := messages(r, StatusWarn); len(warns) > 0 {
			t.Errorf("check %d: unexpected warnings %v", i, warns)
		}
	}
}

func TestCheckMetaTagsLongTitle(t *testing.T) {
	title := strings.Repeat("a", 65)
	html := withReplacement(t, "<title>Auditware | Smart Contract Security</title>", "<title>"+title+"</title>")

	r := runCheck(t, CheckMetaTags, html)
	if !hasMessage(r, StatusPass, "Title exists") {
		t.Error("expected a pass for the title")
	}
	if !hasMessage(r, StatusWarn, "Title is long (65 chars") {
		t.Errorf("expected a long title warning, got %v", messages(r, StatusWarn))
	}
	if r.Failures() != 0 {
		t.Errorf("a long title should not fail: %v", messages(r, StatusFail))
	}
}

func TestCheckMetaTagsTitleCountsCharacters(t *testing.T) {
	title := strings.Repeat("é", 60)
	html := withReplacement(t, "<title>Auditware | Smart Contract Security</title>", "<title>"+title+"</title>")

	r := runCheck(t, CheckMetaTags, html)
	if len(messages(r, StatusWarn)) != 0 {
		t.Errorf("a 60 character title should not warn: %v", messages(r, StatusWarn))
	}
}

func TestCheckMetaTagsFailures(t *testing.T) {
	tests := []struct {
		name     string
		old, new string
		wantFail string
	}{
		{
			name:     "missing title",
			old:      "<title>Auditware | Smart Contract Security</title>",
			new:      "",
			wantFail: "Title is missing or empty",
		},
		{
			name:     "missing description",
			old:      `<meta name="description" content="Security audits and tooling for smart contracts.">`,
			new:      "",
			wantFail: "Meta description is missing",
		},
		{
			name:     "foreign canonical",
			old:      `<link rel="canonical" href="https://auditware.io/">`,
			new:      `<link rel="canonical" href="https://example.com/">`,
			wantFail: "Canonical URL doesn't match site URL",
		},
		{
			name:     "missing canonical",
			old:      `<link rel="canonical" href="https://auditware.io/">`,
			new:      "",
			wantFail: "Canonical URL is missing",
		},
		{
			name:     "missing og:image",
			old:      `<meta property="og:image" content="https://auditware.io/og.png">`,
			new:      "",
			wantFail: "og:image is missing",
		},
		{
			name:     "wrong og:type",
			old:      `<meta property="og:type" content="website">`,
			new:      `<meta property="og:type" content="article">`,
			wantFail: `og:type should be "website", got: "article"`,
		},
		{
			name:     "missing og:locale",
			old:      `<meta property="og:locale" content="en_US">`,
			new:      "",
			wantFail: `og:locale should be "en_US", got: <missing>`,
		},
		{
			name:     "wrong site name",
			old:      `<meta property="og:site_name" content="Auditware">`,
			new:      `<meta property="og:site_name" content="Other">`,
			wantFail: "og:site_name should be",
		},
		{
			name:     "wrong twitter card",
			old:      `<meta name="twitter:card" content="summary_large_image">`,
			new:      `<meta name="twitter:card" content="summary">`,
			wantFail: "twitter:card should be",
		},
		{
			name:     "wrong twitter handle",
			old:      `<meta name="twitter:site" content="@auditware">`,
			new:      `<meta name="twitter:site" content="@someone">`,
			wantFail: `twitter:site should be "@auditware"`,
		},
		{
			name:     "missing twitter image",
			old:      `<meta name="twitter:image" content="https://auditware.io/og.png">`,
			new:      "",
			wantFail: "twitter:image is missing",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := runCheck(t, CheckMetaTags, withReplacement(t, tt.old, tt.new))
			if !hasMessage(r, StatusFail, tt.wantFail) {
				t.Errorf("expected failure containing %q, got %v", tt.wantFail, messages(r, StatusFail))
			}
			if r.Failures() != 1 {
				t.Errorf("expected exactly one failure, got %v", messages(r, StatusFail))
			}
		})
	}
}

func TestCheckMetaTagsLongDescription(t *testing.T) {
	desc := strings.Repeat("d", 161)
	html := withReplacement(t,
		`content="Security audits and tooling for smart contracts."`,
		`content="`+desc+`"`)

	r := runCheck(t, CheckMetaTags, html)
	if !hasMessage(r, StatusWarn, "Description is long (161 chars") {
		t.Errorf("expected a long description warning, got %v", messages(r, StatusWarn))
	}
	if r.Failures() != 0 {
		t.Errorf("unexpected failures %v", messages(r, StatusFail))
	}
}

func organizationPage(t *testing.T, ld string) string {
	t.Helper()
	return withReplacement(t, validOrganization, ld)
}

func TestCheckStructuredDataOrganization(t *testing.T) {
	t.Run("name mismatch fails", func(t *testing.T) {
		ld := strings.Replace(validOrganization, `"name":"Auditware"`, `"name":"Auditwear"`, 1)
		r := runCheck(t, CheckStructuredData, organizationPage(t, ld))
		if !hasMessage(r, StatusFail, `Organization name should be "Auditware", got: "Auditwear"`) {
			t.Errorf("expected a name mismatch failure, got %v", messages(r, StatusFail))
		}
	})

	t.Run("url mismatch fails", func(t *testing.T) {
		ld := strings.Replace(validOrganization, `"url":"https://auditware.io"`, `"url":"https://auditware.com"`, 1)
		r := runCheck(t, CheckStructuredData, organizationPage(t, ld))
		if !hasMessage(r, StatusFail, "Organization URL should be") {
			t.Errorf("expected a URL mismatch failure, got %v", messages(r, StatusFail))
		}
	})

	t.Run("founding date mismatch only warns", func(t *testing.T) {
		ld := strings.Replace(validOrganization, `"foundingDate":"2020"`, `"foundingDate":"2019"`, 1)
		r := runCheck(t, CheckStructuredData, organizationPage(t, ld))
		if r.Failures() != 0 {
			t.Errorf("unexpected failures %v", messages(r, StatusFail))
		}
		if !hasMessage(r, StatusWarn, `Founding date is "2019", expected "2020"`) {
			t.Errorf("expected a founding date warning, got %v", messages(r, StatusWarn))
		}
	})

	t.Run("missing social profile warns", func(t *testing.T) {
		ld := strings.Replace(validOrganization, `,"https://linkedin.com/company/auditware"`, "", 1)
		r := runCheck(t, CheckStructuredData, organizationPage(t, ld))
		if r.Failures() != 0 {
			t.Errorf("unexpected failures %v", messages(r, StatusFail))
		}
		if !hasMessage(r, StatusWarn, "Social profile missing: https://linkedin.com/company/auditware") {
			t.Errorf("expected a missing profile warning, got %v", messages(r, StatusWarn))
		}
	})

	t.Run("no social profiles warns", func(t *testing.T) {
		ld := `{"@type":"Organization","name":"Auditware","url":"https://auditware.io","foundingDate":"2020"}`
		r := runCheck(t, CheckStructuredData, organizationPage(t, ld))
		if !hasMessage(r, StatusWarn, "No social profiles in Organization schema") {
			t.Errorf("expected a warning, got %v", messages(r, StatusWarn))
		}
	})
}

func TestCheckStructuredDataTypes(t *testing.T) {
	tests := []struct {
		name     string
		ld       string
		wantPass string
		wantFail string
	}{
		{
			name:     "array of schemas",
			ld:       `[{"@type":"WebSite","name":"Auditware"},{"@type":"BreadcrumbList","itemListElement":[]}]`,
			wantPass: "BreadcrumbList schema found",
		},
		{
			name:     "faq with questions",
			ld:       `{"@type":"FAQPage","mainEntity":[{"@type":"Question"},{"@type":"Question"}]}`,
			wantPass: "2 FAQ items",
		},
		{
			name:     "faq without questions",
			ld:       `{"@type":"FAQPage","mainEntity":[]}`,
			wantFail: "FAQPage schema has no questions",
		},
		{
			name:     "invalid json",
			ld:       `{"@type": "Organization",`,
			wantFail: "Invalid JSON-LD",
		},
		{
			name:     "null schema",
			ld:       `null`,
			wantFail: "Invalid JSON-LD: schema is null, not an object",
		},
		{
			name:     "scalar inside array",
			ld:       `[{"@type":"WebSite","name":"Auditware"},42]`,
			wantPass: "WebSite schema found",
			wantFail: "Invalid JSON-LD: schema is a number, not an object",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := runCheck(t, CheckStructuredData, organizationPage(t, tt.ld))
			if tt.wantPass != "" && !hasMessage(r, StatusPass, tt.wantPass) {
				t.Errorf("expected pass %q, got %v", tt.wantPass, messages(r, StatusPass))
			}
			if tt.wantFail != "" && !hasMessage(r, StatusFail, tt.wantFail) {
				t.Errorf("expected failure %q, got %v", tt.wantFail, messages(r, StatusFail))
			}
			if tt.wantFail == "" && r.Failures() != 0 {
				t.Errorf("unexpected failures %v", messages(r, StatusFail))
			}
		})
	}
}

func TestCheckStructuredDataMissing(t *testing.T) {
	html := withReplacement(t, `<script type="application/ld+json">`+validOrganization+`</script>`, "")
	r := runCheck(t, CheckStructuredData, html)
	if !hasMessage(r, StatusFail, "No JSON-LD structured data found") {
		t.Errorf("expected a failure, got %v", messages(r, StatusFail))
	}
}

func TestCheckImages(t *testing.T) {
	t.Run("no images produces no results", func(t *testing.T) {
		html := withReplacement(t,
			`<img src="/logo.png" alt="Auditware logo" loading="eager">
<img src="/divider.png" alt="" loading="lazy">`, "")
		r := runCheck(t, CheckImages, html)
		if n := len(r.Results()); n != 0 {
			t.Errorf("expected no results, got %+v", r.Results())
		}
	})

	t.Run("missing alt fails once and warns per image", func(t *testing.T) {
		html := withReplacement(t, `alt="Auditware logo" `, "")
		html = strings.Replace(html, `<h1>Auditware</h1>`, `<h1>Auditware</h1><img src="/hero.png">`, 1)
		r := runCheck(t, CheckImages, html)

		if !hasMessage(r, StatusFail, "2/3 images missing alt text") {
			t.Errorf("expected aggregate failure, got %v", messages(r, StatusFail))
		}
		warns := messages(r, StatusWarn)
		if len(warns) != 2 {
			t.Fatalf("expected 2 warnings, got %v", warns)
		}
		if !hasMessage(r, StatusWarn, "Image missing alt text: /hero.png") {
			t.Errorf("warning should name the image, got %v", warns)
		}
	})

	t.Run("empty alt counts as present", func(t *testing.T) {
		r := runCheck(t, CheckImages, validHTML)
		if !hasMessage(r, StatusPass, "All 2 images have alt text") {
			t.Errorf("expected pass, got %v", messages(r, StatusPass))
		}
		if !hasMessage(r, StatusPass, "1 images use lazy loading") || !hasMessage(r, StatusPass, "1 images use eager loading") {
			t.Errorf("expected loading passes, got %v", messages(r, StatusPass))
		}
	})
}

func TestCheckPerformance(t *testing.T) {
	html := withReplacement(t, `<link rel="preconnect" href="https://fonts.googleapis.com">`, "")
	html = strings.Replace(html, "<style>body { margin: 0; }</style>", "", 1)

	r := runCheck(t, CheckPerformance, html)
	if r.Failures() != 0 {
		t.Errorf("performance checks should never fail: %v", messages(r, StatusFail))
	}
	if !hasMessage(r, StatusWarn, "No font preconnect found") {
		t.Errorf("expected a preconnect warning, got %v", messages(r, StatusWarn))
	}
	if len(r.Results()) != 1 {
		t.Errorf("expected only the preconnect warning, got %+v", r.Results())
	}
}

func TestCheckAccessibility(t *testing.T) {
	tests := []struct {
		name     string
		old, new string
		status   Status
		want     string
	}{
		{
			name:   "missing lang",
			old:    `<html lang="en">`,
			new:    `<html>`,
			status: StatusFail,
			want:   "HTML lang attribute is missing",
		},
		{
			name:   "missing viewport",
			old:    `<meta name="viewport" content="width=device-width, initial-scale=1">`,
			new:    "",
			status: StatusFail,
			want:   "Viewport meta tag is missing",
		},
		{
			name:   "no h1",
			old:    `<h1>Auditware</h1>`,
			new:    `<h2>Auditware</h2>`,
			status: StatusFail,
			want:   "No h1 tag found",
		},
		{
			name:   "multiple h1",
			old:    `<h1>Auditware</h1>`,
			new:    `<h1>Auditware</h1><h1>Again</h1>`,
			status: StatusWarn,
			want:   "Multiple h1 tags found: 2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := runCheck(t, CheckAccessibility, withReplacement(t, tt.old, tt.new))
			if !hasMessage(r, tt.status, tt.want) {
				t.Errorf("expected %s %q, got %+v", tt.status, tt.want, r.Results())
			}
			if tt.status == StatusWarn && r.Failures() != 0 {
				t.Errorf("unexpected failures %v", messages(r, StatusFail))
			}
		})
	}
}

func TestCheckAccessibilityMissingLangExitsNonZero(t *testing.T) {
	r := runCheck(t, CheckAccessibility, withReplacement(t, `<html lang="en">`, `<html>`))
	if r.ExitCode() == 0 {
		t.Error("a missing lang attribute should make the exit code non-zero")
	}
}

func TestCheckInternalLinks(t *testing.T) {
	t.Run("no internal links warns", func(t *testing.T) {
		r := runCheck(t, CheckInternalLinks, withReplacement(t, `<a href="/audits">Audits</a>`, ""))
		if !hasMessage(r, StatusWarn, "No internal links found") {
			t.Errorf("expected a warning, got %+v", r.Results())
		}
	})

	t.Run("blank target without noopener warns", func(t *testing.T) {
		r := runCheck(t, CheckInternalLinks, withReplacement(t, ` rel="noopener noreferrer"`, ""))
		if !hasMessage(r, StatusWarn, `1 external links missing rel="noopener"`) {
			t.Errorf("expected a warning, got %+v", r.Results())
		}
		if r.Failures() != 0 {
			t.Errorf("unexpected failures %v", messages(r, StatusFail))
		}
	})

	t.Run("no external links skips the rel pass", func(t *testing.T) {
		html := withReplacement(t,
			`<a href="https://github.com/auditware" target="_blank" rel="noopener noreferrer">GitHub</a>`, "")
		r := runCheck(t, CheckInternalLinks, html)
		if hasMessage(r, StatusPass, "All external links") {
			t.Errorf("unexpected rel pass without external links: %+v", r.Results())
		}
	})
}
