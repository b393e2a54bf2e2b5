package viewer

import (
	"bytes"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/yuin/goldmark"

	"github.com/Makepad-fr/robo/internal/model"
)

// SectionSeparator joins sections in the Markdown export.
const SectionSeparator = "---\n\n"

const (
	markdownSuffix = "_Business_Plan.md"
	printSuffix    = "_Business_Plan.html"
	printDateFmt   = "January 2, 2006"
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// Markdown renders every section as "# title\n\ncontent\n\n", separated by
// a horizontal rule.
func Markdown(plan model.BusinessPlan) string {
	parts := make([]string, len(plan))
	for i, s := range plan {
		parts[i] = fmt.Sprintf("# %s\n\n%s\n\n", s.Title, s.Content)
	}
	return strings.Join(parts, SectionSeparator)
}

// ExportFilename derives the download name from the business name.
func ExportFilename(businessName string) string {
	return safeName(businessName) + markdownSuffix
}

// PrintFilename is ExportFilename for the printable HTML document.
func PrintFilename(businessName string) string {
	return safeName(businessName) + printSuffix
}

func safeName(businessName string) string {
	name := whitespaceRun.ReplaceAllString(businessName, "_")
	return strings.Map(func(r rune) rune {
		if r == '/' || r == '\\' || r == 0 {
			return '_'
		}
		return r
	}, name)
}

// WriteMarkdown writes the Markdown export into dir and returns its path.
func WriteMarkdown(dir, businessName string, plan model.BusinessPlan) (string, error) {
	return writeExport(dir, ExportFilename(businessName), []byte(Markdown(plan)))
}

// PrintDocument is the full-document view: a header followed by all
// sections in order, whatever section is active on screen.
func PrintDocument(businessName string, plan model.BusinessPlan, generated time.Time) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", businessName)
	b.WriteString("_Generated by Robo AI_\n\n")
	fmt.Fprintf(&b, "Generated on %s\n\n", generated.Format(printDateFmt))
	for _, s := range plan {
		fmt.Fprintf(&b, "## %s\n\n%s\n\n", strings.ToUpper(s.Title), s.Content)
	}
	return b.String()
}

var printTemplate = template.Must(template.New("print").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Name}} Business Plan</title>
<style>
body { font-family: Georgia, serif; color: #000; background: #fff; max-width: 52rem; margin: 2rem auto; line-height: 1.6; }
header { border-bottom: 1px solid #000; padding-bottom: 1rem; margin-bottom: 2rem; }
header p { color: #555; margin: .25rem 0; }
header .date { font-size: .75rem; color: #888; }
section { break-inside: avoid; text-align: justify; font-size: .9rem; }
section h2 { text-transform: uppercase; letter-spacing: .05em; border-bottom: 1px solid #ccc; padding-bottom: .5rem; margin-top: 2rem; }
</style>
</head>
<body onload="window.print()">
<header>
<h1>{{.Name}}</h1>
<p>Generated by Robo AI</p>
<p class="date">Generated on {{.Date}}</p>
</header>
{{range .Sections}}<section>
<h2>{{.Title}}</h2>
{{.Body}}</section>
{{end}}</body>
</html>
`))

type printSection struct {
	Title string
	Body  template.HTML
}

// PrintHTML renders the print view as a standalone HTML page that opens the
// browser's print dialog (print to PDF).
func PrintHTML(businessName string, plan model.BusinessPlan, generated time.Time) (string, error) {
	md := goldmark.New()
	sections := make([]printSection, 0, len(plan))
	for _, s := range plan {
		var body bytes.Buffer
		if err := md.Convert([]byte(s.Content), &body); err != nil {
			return "", fmt.Errorf("render section %q: %w", s.Title, err)
		}
		sections = append(sections, printSection{Title: s.Title, Body: template.HTML(body.String())})
	}
	var out bytes.Buffer
	err := printTemplate.Execute(&out, struct {
		Name     string
		Date     string
		Sections []printSection
	}{businessName, generated.Format(printDateFmt), sections})
	if err != nil {
		return "", fmt.Errorf("render print page: %w", err)
	}
	return out.String(), nil
}

// WritePrintHTML writes PrintHTML into dir and returns its path.
func WritePrintHTML(dir, businessName string, plan model.BusinessPlan, generated time.Time) (string, error) {
	page, err := PrintHTML(businessName, plan, generated)
	if err != nil {
		return "", err
	}
	return writeExport(dir, PrintFilename(businessName), []byte(page))
}

func writeExport(dir, name string, data []byte) (string, error) {
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("mkdir: %w", err)
	}
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, data, 0o644); err != nil {
		return "", fmt.Errorf("write file: %w", err)
	}
	return p, nil
}
