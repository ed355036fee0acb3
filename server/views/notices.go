package views

import (
	"html/template"
	"strings"
	"sync"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
)

// Notice keys. Configured notices with the same key replace the defaults.
const (
	PendingNotice = "pending"
	CookiesNotice = "cookies"
)

// dataTypePlaceholder is replaced by the pending data type, e.g.
// "Power Rankings is".
const dataTypePlaceholder = "{data}"

var defaultNotices = map[string]string{
	PendingNotice: "*Note that scores have not yet been finalized for this week and the " + dataTypePlaceholder +
		" likely to change.*  \n*Please check back on Tuesday morning for the final results.*",
	CookiesNotice: `### *Don't know your SWID or espn_s2? (instructions for Mac / PC)*

1. Log into your espn fantasy football account at <https://www.espn.com/fantasy/football/>.
2. Right click anywhere on the screen (Chrome browser only) and click *Inspect*.
3. In the window that appears on the right, click *Application* on the top bar (you may have to click the dropdown arrow next to *Elements, Console, Sources...*).
4. On the left, navigate to *Storage > Cookies > http://fantasy.espn.com*.
5. Scroll down in the table to the right until you find **SWID**. Copy & paste the alphanumeric string in the *Value* column (without the curly brackets).  
   It should look something like: *43B70875-0C4B-428L-B608-759A4BB28FA1*
6. Next, keep scrolling until you find **espn_s2**. Again, copy and paste the alphanumeric string in the *Value* column. This code will be much longer and won't have curly brackets in it.
`,
}

// NoticeStore holds the Markdown site notices. It is safe for concurrent use
// and can be updated while the server runs.
type NoticeStore struct {
	mu      sync.RWMutex
	sources map[string]string
}

// NewNoticeStore creates a store with the default notices overridden by
// configured.
func NewNoticeStore(configured map[string]string) *NoticeStore {
	s := &NoticeStore{}
	s.Update(configured)
	return s
}

// Update replaces the configured notices. Keys missing from configured fall
// back to their defaults.
func (s *NoticeStore) Update(configured map[string]string) {
	sources := make(map[string]string, len(defaultNotices)+len(configured))
	for key, md := range defaultNotices {
		sources[key] = md
	}
	for key, md := range configured {
		if strings.TrimSpace(md) != "" {
			sources[key] = md
		}
	}

	s.mu.Lock()
	s.sources = sources
	s.mu.Unlock()
}

// HTML renders the notice stored under key, or "" when there is none.
func (s *NoticeStore) HTML(key string) template.HTML {
	s.mu.RLock()
	md, ok := s.sources[key]
	s.mu.RUnlock()
	if !ok {
		return ""
	}
	return renderMarkdown(md)
}

// Pending renders the notice shown while the week's scores are not final.
func (s *NoticeStore) Pending(dataType string) template.HTML {
	verb := "is"
	if strings.Contains(strings.ToLower(dataType), "list") {
		verb = "are"
	}
	s.mu.RLock()
	md := s.sources[PendingNotice]
	s.mu.RUnlock()
	return renderMarkdown(strings.ReplaceAll(md, dataTypePlaceholder, dataType+" "+verb))
}

// Cookies renders the SWID and espn_s2 instructions.
func (s *NoticeStore) Cookies() template.HTML {
	return s.HTML(CookiesNotice)
}

func renderMarkdown(md string) template.HTML {
	p := parser.NewWithExtensions(parser.CommonExtensions | parser.AutoHeadingIDs)
	renderer := html.NewRenderer(html.RendererOptions{
		Flags: html.CommonFlags | html.HrefTargetBlank | html.SkipHTML,
	})
	return template.HTML(markdown.ToHTML([]byte(md), p, renderer))
}
