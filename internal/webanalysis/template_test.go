package webanalysis

import (
	"strings"
	"testing"
)

func TestReduceTemplate_PrunesBlocklistedNodes(t *testing.T) {
	html := `<!DOCTYPE html><html><head><title>Page</title>
		<script src="https://www.googletagmanager.com/gtag/js"></script>
	</head><body>
		<script src="/js/analytics.min.js"></script>
		<script async src="/js/widget.js"></script>
		<noscript>enable js</noscript>
		<div class="advertisement">buy stuff</div>
		<div data-ad="slot1">ad here</div>
		<p>Real content stays</p>
		<script src="/js/app.js"></script>
	</body></html>`

	out := ReduceTemplate(html)

	for _, gone := range []string{"googletagmanager", "analytics.min.js", "widget.js", "noscript", "advertisement", "ad here"} {
		if strings.Contains(out, gone) {
			t.Errorf("pruned output still contains %q", gone)
		}
	}
	if !strings.Contains(out, "Real content stays") {
		t.Error("pruned output lost real content")
	}
	if !strings.Contains(out, "app.js") {
		t.Error("pruned output lost a non-tracking script")
	}
}

func TestReduceTemplate_SmallDocumentReturnsPrunedForm(t *testing.T) {
	html := `<!DOCTYPE html><html lang="fr"><head><title>Petit</title></head>
		<body><main><p>bonjour</p></main></body></html>`

	out := ReduceTemplate(html)

	if len(out) > maxTemplateSize {
		t.Fatalf("len = %d, exceeds gate %d", len(out), maxTemplateSize)
	}
	// The pruned form is the whole document, not the skeleton.
	if !strings.Contains(out, `lang="fr"`) || !strings.Contains(out, "bonjour") {
		t.Errorf("pruned output mangled the document: %s", out)
	}
	if strings.Contains(out, "width=device-width, initial-scale=1.0") {
		t.Error("small document should not be replaced by the skeleton")
	}
}

func TestReduceTemplate_OversizedDocumentReturnsSkeleton(t *testing.T) {
	filler := strings.Repeat("<p>"+strings.Repeat("x", 96)+"</p>", 700) // ~70k chars
	html := `<!DOCTYPE html><html lang="es"><head><title>Grande</title>
		<style>body { color: #222; }</style>
	</head><body>
		<header><h1>Sitio</h1></header>
		<nav><a href="/">inicio</a></nav>
		<main><p>principal</p>` + filler + `</main>
		<footer>pie</footer>
	</body></html>`

	out := ReduceTemplate(html)

	if !strings.HasPrefix(out, "<!DOCTYPE html>\n") {
		t.Fatalf("oversized document must be replaced by the skeleton, got prefix %q", out[:40])
	}
	for _, want := range []string{
		`<html lang="es">`,
		`<meta charset="UTF-8">`,
		`content="width=device-width, initial-scale=1.0"`,
		"<title>Grande</title>",
		"color: #222",
		"<header>",
		"<nav>",
		"<footer>",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("skeleton missing %q:\n%s", want, out)
		}
	}
	// The skeleton keeps the first <main> wholesale and must not also
	// duplicate the body around it.
	if strings.Count(out, "principal") != 1 {
		t.Error("skeleton duplicated main content")
	}
}

func TestReduceTemplate_SkeletonFallsBackToBodyWithoutMain(t *testing.T) {
	filler := strings.Repeat("<p>"+strings.Repeat("y", 96)+"</p>", 700)
	html := `<!DOCTYPE html><html><head><title>NoMain</title></head><body>
		<div id="wrapper"><span>kept inline</span>` + filler + `</div>
	</body></html>`

	out := ReduceTemplate(html)

	if !strings.Contains(out, `lang="en"`) {
		t.Error("skeleton missing default lang")
	}
	if !strings.Contains(out, "kept inline") {
		t.Error("skeleton without <main> must carry the body's inner markup")
	}
}

func TestReduceTemplate_KeepsFirstLandmarkOnly(t *testing.T) {
	filler := strings.Repeat("<p>"+strings.Repeat("z", 96)+"</p>", 700)
	html := `<html><head><title>Two</title></head><body>
		<header id="first-header">one</header>
		<header id="second-header">two</header>
		<main>` + filler + `</main>
	</body></html>`

	out := ReduceTemplate(html)

	if !strings.Contains(out, "first-header") {
		t.Error("skeleton missing first header")
	}
	if strings.Contains(out, "second-header") {
		t.Error("skeleton must keep only the first header")
	}
}
