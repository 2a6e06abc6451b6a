package webanalysis

import (
	"github.com/PuerkitoBio/goquery"

	"github.com/SkorpionOP/UI-UX-Analyzer/internal/model"
)

// A landmark counts as present when the semantic tag exists or when an
// element carries the conventional class token or id.
const (
	headerSelector  = `header, .header, #header`
	navSelector     = `nav, .nav, .navbar, #nav`
	mainSelector    = `main, .main, #main, .content, #content`
	sidebarSelector = `aside, .sidebar, #sidebar`
	footerSelector  = `footer, .footer, #footer`
)

func analyzeStructure(doc *goquery.Document) model.Structure {
	s := model.Structure{
		HasHeader:    doc.Find(headerSelector).Length() > 0,
		HasNav:       doc.Find(navSelector).Length() > 0,
		HasMain:      doc.Find(mainSelector).Length() > 0,
		HasSidebar:   doc.Find(sidebarSelector).Length() > 0,
		HasFooter:    doc.Find(footerSelector).Length() > 0,
		SectionCount: doc.Find("section").Length(),
		ArticleCount: doc.Find("article").Length(),
	}
	s.LayoutType = classifyLayout(s)
	return s
}

// classifyLayout returns the highest-priority matching layout label. The
// order is significant: a sidebar outranks any section or article count.
func classifyLayout(s model.Structure) string {
	switch {
	case s.HasSidebar:
		return "sidebar-layout"
	case s.SectionCount > 3:
		return "multi-section"
	case s.ArticleCount > 0:
		return "article-based"
	default:
		return "simple-page"
	}
}
