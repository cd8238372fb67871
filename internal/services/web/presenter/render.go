package presenter

import (
	"encoding/json"
	"fmt"
	"strconv"

	"mailvet/internal/adapters/intel/upstream"
	pstrings "mailvet/internal/platform/strings"
	"mailvet/internal/services/api/validate/domain"

	"golang.org/x/text/feature/plural"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Tone is the visual weight of a label
type Tone string

// Tones map onto stylesheet classes
const (
	TonePositive Tone = "positive"
	ToneGood     Tone = "good"
	ToneInfo     Tone = "info"
	ToneNeutral  Tone = "neutral"
	ToneCaution  Tone = "caution"
	ToneWarning  Tone = "warning"
	ToneNegative Tone = "negative"
)

// Badge is a label with a tone
type Badge struct {
	Label string
	Tone  Tone
}

// Tile is one boolean check in the result grid
type Tile struct {
	Title string
	Value string
	OK    bool
}

// Detail is one label/value pair under the grid
type Detail struct {
	Label string
	Value string
}

// AuthenticityView is the authenticity tile
type AuthenticityView struct {
	Score string
	Band  Badge
}

// ReputationView is the reputation tile
type ReputationView struct {
	Badge
	// Lists is "N list" or "N lists" when blacklisted
	Lists string
}

// Page is everything the template needs
type Page struct {
	Email   string
	Loading bool
	Error   string

	HasResult    bool
	ResultEmail  string
	Status       Badge
	Tiles        []Tile
	ShowDomain   bool
	Authenticity *AuthenticityView
	Reputation   *ReputationView
	Details      []Detail
	RequestID    string
}

// Render turns form state into a page
func Render(f Form) Page {
	p := Page{Email: f.Email, Loading: f.Loading, Error: f.Error}
	if f.Result == nil {
		return p
	}
	r := f.Result
	p.HasResult = true
	p.ResultEmail = str(r.Fields["email"])
	p.Status = StatusBadge(r.Fields["is_reachable"])
	p.Tiles = Tiles(r.Fields)

	if r.DomainAuthenticity != nil && r.DomainAuthenticity.Score != nil {
		s := *r.DomainAuthenticity.Score
		p.Authenticity = &AuthenticityView{Score: strconv.FormatFloat(s, 'f', -1, 64), Band: ScoreBand(&s)}
	}
	if r.DomainReputation != nil {
		p.Reputation = &ReputationView{Badge: ReputationBadge(r.DomainReputation)}
		if !r.DomainReputation.IsClean {
			p.Reputation.Lists = ListCount(r.DomainReputation.ListedCount)
		}
	}
	p.ShowDomain = ShowDomainMetrics(r)
	p.Details = Details(r.Fields)
	p.RequestID = TruncateID(str(r.Fields["request_id"]))
	return p
}

// StatusBadge maps is_reachable onto the banner
func StatusBadge(reachable any) Badge {
	switch reachable {
	case "Safe":
		return Badge{Label: "Valid", Tone: TonePositive}
	case "Invalid":
		return Badge{Label: "Invalid", Tone: ToneNegative}
	default:
		return Badge{Label: "Risky", Tone: ToneCaution}
	}
}

// ScoreBand labels an authenticity score; bands are checked in this order
func ScoreBand(score *float64) Badge {
	if score == nil {
		return Badge{Label: "N/A", Tone: ToneNeutral}
	}
	s := *score
	switch {
	case s > 3:
		return Badge{Label: "Excellent", Tone: TonePositive}
	case s == 3:
		return Badge{Label: "Good", Tone: ToneGood}
	case s >= 1:
		return Badge{Label: "Okay", Tone: ToneInfo}
	case s == 0:
		return Badge{Label: "Neutral", Tone: ToneNeutral}
	case s >= -2:
		return Badge{Label: "Very Poor", Tone: ToneWarning}
	default:
		return Badge{Label: "Poor", Tone: ToneNegative}
	}
}

// Tiles builds the four check tiles; disposable and role are inverted
func Tiles(fields map[string]any) []Tile {
	return []Tile{
		tile("Syntax", truthy(fields["is_valid_syntax"]), "Valid", "Invalid"),
		tile("MX Records", truthy(fields["mx_exists"]), "Found", "Missing"),
		tile("Disposable", !truthy(fields["is_disposable"]), "No", "Yes"),
		tile("Role Account", !truthy(fields["is_role_account"]), "Personal", "Role"),
	}
}

func tile(title string, ok bool, yes, no string) Tile {
	if ok {
		return Tile{Title: title, Value: yes, OK: true}
	}
	return Tile{Title: title, Value: no}
}

// ReputationBadge is Clean or Blacklisted
func ReputationBadge(r *domain.ReputationResult) Badge {
	if r.IsClean {
		return Badge{Label: "Clean", Tone: TonePositive}
	}
	return Badge{Label: "Blacklisted", Tone: ToneNegative}
}

const listsKey = "%d lists"

var printer = func() *message.Printer {
	cat := catalog.NewBuilder()
	_ = cat.Set(language.English, listsKey, plural.Selectf(1, "%d",
		"=1", "%d list",
		plural.Other, "%d lists",
	))
	return message.NewPrinter(language.English, message.Catalog(cat))
}()

// ListCount is "1 list" for exactly one and "N lists" otherwise
func ListCount(n int) string { return printer.Sprintf(listsKey, n) }

// ShowDomainMetrics reports whether the domain block has anything to show
func ShowDomainMetrics(r *domain.CombinedValidationResult) bool {
	return r.DomainReputation != nil || (r.DomainAuthenticity != nil && r.DomainAuthenticity.Score != nil)
}

// Details builds the deliverable, type and speed rows
func Details(fields map[string]any) []Detail {
	deliverable := "No"
	if truthy(fields["is_deliverable"]) {
		deliverable = "Yes"
	}
	return []Detail{
		{Label: "Deliverable", Value: deliverable},
		{Label: "Type", Value: str(fields["classification"])},
		{Label: "Speed", Value: str(fields["processing_time_ms"]) + "ms"},
	}
}

// TruncateID keeps the first 12 characters of a request id
func TruncateID(id string) string {
	if id == "" {
		return ""
	}
	return pstrings.Ellipsis(id, 12)
}

func truthy(v any) bool { return upstream.Truthy(v) }

func str(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case json.Number:
		return x.String()
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	default:
		return fmt.Sprint(x)
	}
}
