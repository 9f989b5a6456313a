package boxscore

import (
	"strings"

	"go.uber.org/zap"

	"brefstats/internal/page"
)

// BaseURL is prepended to relative box score paths.
const BaseURL = "https://www.basketball-reference.com"

// linkStrategy is one way of locating box score anchors on a daily
// schedule page. Strategies are tried in order until one yields links;
// keeping them as data means a new site layout is a one-line addition.
type linkStrategy struct {
	selector    string
	description string
}

var linkStrategies = []linkStrategy{
	{`td.gamelink a[href*="/boxscores/"]`, "gamelink cell anchors"},
	{`div.game_summary a[href*="/boxscores/"], div.games_summaries a[href*="/boxscores/"]`, "game summary anchors"},
}

// Box score sub-pages that share the /boxscores/ path prefix but are
// not box scores themselves.
var subPagePaths = []string{"/pbp/", "/shot-chart/", "/plus-minus/", "/leaders/"}

// ExtractBoxScoreRefs returns the box score URLs linked from a daily
// schedule page. A day with no games yields an empty slice, not an
// error.
func (p *Parser) ExtractBoxScoreRefs(doc page.Document) []string {
	if doc == nil {
		p.log.Warn("no document provided for daily schedule page")
		return nil
	}

	for i, strategy := range linkStrategies {
		refs := p.collectRefs(doc.Select(strategy.selector))
		if len(refs) > 0 {
			p.log.Debug("box score links found",
				zap.String("strategy", strategy.description),
				zap.Int("count", len(refs)))
			return refs
		}
		if i < len(linkStrategies)-1 {
			p.log.Warn("no box score links found, trying next strategy",
				zap.String("strategy", strategy.description))
		}
	}

	p.log.Warn("no box score links found with any strategy")
	return []string{}
}

// collectRefs filters anchors down to deduplicated full box score URLs.
func (p *Parser) collectRefs(anchors []page.Element) []string {
	var refs []string
	seen := make(map[string]bool)
	for _, a := range anchors {
		href, ok := a.Attr("href")
		if !ok {
			continue
		}
		if !strings.HasPrefix(href, "/boxscores/") || !strings.HasSuffix(href, ".html") {
			continue
		}
		if isSubPage(href) {
			p.log.Debug("filtered box score sub-page link", zap.String("href", href))
			continue
		}
		ref := BaseURL + href
		if !seen[ref] {
			seen[ref] = true
			refs = append(refs, ref)
		}
	}
	return refs
}

func isSubPage(href string) bool {
	for _, sub := range subPagePaths {
		if strings.Contains(href, sub) {
			return true
		}
	}
	return false
}
