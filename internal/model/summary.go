package model

// WebsiteSummary holds the complete analysis of a web page, composed of six
// independent sub-records. Every field has a usable zero value, so a summary
// is always total: the worst case for any section is all-default, never nil.
type WebsiteSummary struct {
	Metadata      Metadata      `json:"metadata"`
	Structure     Structure     `json:"structure"`
	Content       Content       `json:"content"`
	Design        Design        `json:"design"`
	Technical     Technical     `json:"technical"`
	Accessibility Accessibility `json:"accessibility"`
}

// Metadata describes the document head and source location.
type Metadata struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Keywords    string `json:"keywords"`
	Domain      string `json:"domain"`
	Language    string `json:"language"`
	// Viewport is the viewport meta content, or the literal string
	// "missing" when the tag is absent.
	Viewport string `json:"viewport"`
}

// Structure describes the page's landmark layout.
type Structure struct {
	HasHeader    bool   `json:"hasHeader"`
	HasNav       bool   `json:"hasNav"`
	HasMain      bool   `json:"hasMainContent"`
	HasSidebar   bool   `json:"hasSidebar"`
	HasFooter    bool   `json:"hasFooter"`
	SectionCount int    `json:"sectionCount"`
	ArticleCount int    `json:"articleCount"`
	LayoutType   string `json:"layoutType"`
}

// Headings carries the first headings of each level, capped per level.
type Headings struct {
	H1 []string `json:"h1"`
	H2 []string `json:"h2"`
	H3 []string `json:"h3"`
}

// Content describes what the page contains.
type Content struct {
	Headings       Headings `json:"headings"`
	ParagraphCount int      `json:"paragraphCount"`
	ImageCount     int      `json:"imageCount"`
	LinkCount      int      `json:"linkCount"`
	FormCount      int      `json:"formCount"`
	ButtonCount    int      `json:"buttonCount"`
	Type           string   `json:"type"`
}

// Design describes the visual style mined from the page's CSS.
type Design struct {
	Colors        []string `json:"colors"`
	Fonts         []string `json:"fonts"`
	HasAnimations bool     `json:"hasAnimations"`
	UsesGrid      bool     `json:"usesGrid"`
	UsesFlexbox   bool     `json:"usesFlexbox"`
	IsResponsive  bool     `json:"isResponsive"`
	HasDarkMode   bool     `json:"hasDarkMode"`
	DesignSystem  string   `json:"designSystem"`
}

// Technical describes the page's technical features.
type Technical struct {
	HasJavascript       bool   `json:"hasJavascript"`
	ExternalStylesheets int    `json:"externalStylesheets"`
	InlineStyles        int    `json:"inlineStyles"`
	MetaTagCount        int    `json:"metaTagCount"`
	HTMLVersion         string `json:"htmlVersion"`
	HasServiceWorker    bool   `json:"hasServiceWorker"`
	HasManifest         bool   `json:"hasManifest"`
}

// HeadingStructure describes the document's heading outline health.
type HeadingStructure struct {
	HasH1           bool `json:"hasH1"`
	MultipleH1      bool `json:"multipleH1"`
	ProperHierarchy bool `json:"properHierarchy"`
}

// FormLabels reports how many form controls are associated with a label.
// Percentage is 100 when Total is 0: a page with no inputs is compliant.
type FormLabels struct {
	Total      int `json:"total"`
	Labeled    int `json:"labeled"`
	Percentage int `json:"percentage"`
}

// Accessibility describes the page's accessibility posture. Color contrast
// is reported as "unknown": evaluating it would require rendering.
type Accessibility struct {
	HasAltTexts      bool             `json:"hasAltTexts"`
	HasAriaLabels    bool             `json:"hasAriaLabels"`
	HasSemanticHTML  bool             `json:"hasSemanticHTML"`
	HasSkipLinks     bool             `json:"hasSkipLinks"`
	HeadingStructure HeadingStructure `json:"headingStructure"`
	FormLabels       FormLabels       `json:"formLabels"`
	ColorContrast    string           `json:"colorContrast"`
}

// RedesignResult is returned by the redesign endpoint.
type RedesignResult struct {
	URL     string         `json:"url"`
	Summary WebsiteSummary `json:"summary"`
	HTML    string         `json:"html"`
}

// ErrorResponse is the JSON shape returned on failure.
type ErrorResponse struct {
	Error      string `json:"error"`
	StatusCode int    `json:"status_code"`
	Message    string `json:"message"`
}
