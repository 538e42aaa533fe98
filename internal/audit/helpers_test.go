package audit

import (
	"strings"
	"testing"

	"github.com/auditware/sitecheck/internal/config"
)

// validHTML is a page that passes every check without warnings.
const validHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>Auditware | Smart Contract Security</title>
<meta name="description" content="Security audits and tooling for smart contracts.">
<link rel="canonical" href="https://auditware.io/">
<meta property="og:title" content="Auditware">
<meta property="og:description" content="Security audits and tooling.">
<meta property="og:image" content="https://auditware.io/og.png">
<meta property="og:url" content="https://auditware.io/">
<meta property="og:type" content="website">
<meta property="og:site_name" content="Auditware">
<meta property="og:locale" content="en_US">
<meta name="twitter:card" content="summary_large_image">
<meta name="twitter:site" content="@auditware">
<meta name="twitter:title" content="Auditware">
<meta name="twitter:description" content="Security audits and tooling.">
<meta name="twitter:image" content="https://auditware.io/og.png">
<link rel="preconnect" href="https://fonts.googleapis.com">
<style>body { margin: 0; }</style>
<script type="application/ld+json">{"@context":"https://schema.org","@type":"Organization","name":"Auditware","url":"https://auditware.io","foundingDate":"2020","sameAs":["https://twitter.com/auditware","https://linkedin.com/company/auditware"]}</script>
</head>
<body>
<h1>Auditware</h1>
<a href="/audits">Audits</a>
<a href="https://github.com/auditware" target="_blank" rel="noopener noreferrer">GitHub</a>
<img src="/logo.png" alt="Auditware logo" loading="eager">
<img src="/divider.png" alt="" loading="lazy">
</body>
</html>
`

const validOrganization = `{"@context":"https://schema.org","@type":"Organization","name":"Auditware","url":"https://auditware.io","foundingDate":"2020","sameAs":["https://twitter.com/auditware","https://linkedin.com/company/auditware"]}`

// withReplacement returns validHTML with old replaced by new.
func withReplacement(t *testing.T, old, new string) string {
	t.Helper()
	if !strings.Contains(validHTML, old) {
		t.Fatalf("fixture does not contain %q", old)
	}
	return strings.Replace(validHTML, old, new, 1)
}

// runCheck parses html and runs a single check against the default site.
func runCheck(t *testing.T, check Check, html string) *Report {
	t.Helper()
	page, err := ParsePage("/index.html", strings.NewReader(html))
	if err != nil {
		t.Fatalf("ParsePage() error = %v", err)
	}
	r := NewReport(nil)
	r.Page(page.Name)
	check(config.Default(), page, r)
	return r
}

// messages returns the messages of results with the given status.
func messages(r *Report, status Status) []string {
	var out []string
	for _, res := range r.Results() {
		if res.Status == status {
			out = append(out, res.Message)
		}
	}
	return out
}

func hasMessage(r *Report, status Status, substr string) bool {
	for _, msg := range messages(r, status) {
		if strings.Contains(msg, substr) {
			return true
		}
	}
	return false
}
