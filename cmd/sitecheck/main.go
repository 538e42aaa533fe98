// sitecheck - theme and SEO tooling for the Auditware website
//
// sitecheck audits the generated site against its SEO and accessibility
// checklist and renders the per-page colour themes as CSS.
package main

import "github.com/auditware/sitecheck/internal/cli"

func main() {
	cli.Execute()
}
