package markup

import (
	"fmt"
	"regexp"
	"strings"
)

// Kind selects how a rule rewrites its matches
type Kind int

const (
	// KindWrap wraps the delimited content in the rule's span
	KindWrap Kind = iota
	// KindBilingual splits the content at the first CJK character into an
	// English and a Chinese sub-span before wrapping it
	KindBilingual
	// KindNested applies the rule's sub-rules and separators to the content
	// before wrapping it
	KindNested
	// KindBareWord wraps the first whole-word occurrence of any of the
	// rule's words; no delimiters are involved
	KindBareWord
	// KindCrossRef wraps a slash-led run of words such as "/look up"
	KindCrossRef
)

func (k Kind) String() string {
	switch k {
	case KindWrap:
		return "wrap"
	case KindBilingual:
		return "bilingual"
	case KindNested:
		return "nested"
	case KindBareWord:
		return "bare-word"
	case KindCrossRef:
		return "cross-reference"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Rule names of the default registry
const (
	RuleRed      = "red"
	RulePOS      = "pos"
	RulePhrasal  = "phrasal"
	RuleIdiom    = "idiom"
	RuleCrossRef = "crossref"
	RuleCf       = "cf"
	RuleDef      = "def"
	RuleBlue     = "blue"
	RuleShortcut = "shcut"
	RuleGeo      = "geo"
	RulePrefix   = "prefix"
	RuleGreen    = "green"
)

// Span describes the element a rule emits
type Span struct {
	Class string // semantic class name
	Dict  string // dictionary scope attribute, optional
	Style string // inline style, used in inline-style mode
}

// open returns the opening tag of the span
func (s Span) open(inline bool) string {
	var b strings.Builder
	b.WriteString(`<span class="`)
	b.WriteString(s.Class)
	b.WriteString(`"`)
	if s.Dict != "" {
		b.WriteString(` dict="`)
		b.WriteString(s.Dict)
		b.WriteString(`"`)
	}
	if inline && s.Style != "" {
		b.WriteString(` style="`)
		b.WriteString(s.Style)
		b.WriteString(`"`)
	}
	b.WriteString(">")
	return b.String()
}

func (s Span) wrap(content string, inline bool) string {
	return s.open(inline) + content + "</span>"
}

// openedBy reports whether prefix ends with an opening tag of this span in
// either styling mode, i.e. whatever follows is already wrapped.
func (s Span) openedBy(prefix string) bool {
	return strings.HasSuffix(prefix, s.open(false)) || strings.HasSuffix(prefix, s.open(true))
}

// Rule is one entry of the registry
type Rule struct {
	Span

	Name  string
	Kind  Kind
	Open  rune // opening delimiter, unused for bare-word and cross-reference rules
	Close rune // closing delimiter

	// KeepDelimiters emits the delimiters inside the span (e.g. ⟨informal⟩)
	KeepDelimiters bool
	// Words are the alternatives of a bare-word rule
	Words []string
	// Sub are rules applied to the content of bilingual and nested rules
	Sub []Rule
	// Separators maps literal markers inside nested content to the text
	// shown in their separator span
	Separators []Separator

	pattern *regexp.Regexp
}

// Separator is a literal marker re-wrapped inside nested content
type Separator struct {
	Literal string
	Display string
}

// compile builds the rule's matching pattern. Delimiter rules capture a
// non-empty run without their closing character. Sub-rules and the angle
// rule also exclude '<' and '>' so they never reach into emitted markup.
func (r *Rule) compile(sub bool) error {
	var expr string
	switch r.Kind {
	case KindWrap, KindBilingual, KindNested:
		if r.Open == 0 || r.Close == 0 {
			return fmt.Errorf("rule %q: missing delimiters", r.Name)
		}
		open := regexp.QuoteMeta(string(r.Open))
		closer := regexp.QuoteMeta(string(r.Close))
		exclude := closer
		switch {
		case r.Close == '>':
			exclude = `<>`
		case sub:
			exclude += `<>`
		}
		expr = open + `([^` + exclude + `]+)` + closer
	case KindBareWord:
		if len(r.Words) == 0 {
			return fmt.Errorf("rule %q: no words", r.Name)
		}
		quoted := make([]string, len(r.Words))
		for i, w := range r.Words {
			quoted[i] = regexp.QuoteMeta(w)
		}
		expr = `\b(` + strings.Join(quoted, "|") + `)\b`
	case KindCrossRef:
		expr = `/[A-Za-z.-]+(?:[ \t]+[A-Za-z.-]+)*`
	default:
		return fmt.Errorf("rule %q: unknown kind %v", r.Name, r.Kind)
	}

	re, err := regexp.Compile(expr)
	if err != nil {
		return fmt.Errorf("rule %q: %w", r.Name, err)
	}
	r.pattern = re

	for i := range r.Sub {
		if err := r.Sub[i].compile(true); err != nil {
			return err
		}
	}
	return nil
}

// Registry is the ordered, read-only set of delimiter rules together with
// the spans used to compose a note. Build it once and share it; it is safe
// for concurrent use.
type Registry struct {
	rules  []Rule
	byName map[string]int

	English Span // English part of a bilingual split
	Chinese Span // Chinese part of a bilingual split
	Sep     Span // separators inside nested content
	Label   Span // section labels; the label slug is appended to Class
	Tags    Span // tag line
	Note    Span // outer wrapper, its style is always emitted
	Divider Span // <hr> between combined notes
}

// NewRegistry compiles rules into a registry. Rule order is the order in
// which the notes pipeline applies them.
func NewRegistry(rules []Rule) (*Registry, error) {
	reg := &Registry{
		rules:  make([]Rule, len(rules)),
		byName: make(map[string]int, len(rules)),
	}
	copy(reg.rules, rules)

	for i := range reg.rules {
		rule := &reg.rules[i]
		if rule.Name == "" {
			return nil, fmt.Errorf("rule %d has no name", i)
		}
		if _, dup := reg.byName[rule.Name]; dup {
			return nil, fmt.Errorf("duplicate rule %q", rule.Name)
		}
		if err := rule.compile(false); err != nil {
			return nil, err
		}
		reg.byName[rule.Name] = i
	}

	return reg, nil
}

// Rule returns the rule with the given name
func (reg *Registry) Rule(name string) (Rule, bool) {
	i, ok := reg.byName[name]
	if !ok {
		return Rule{}, false
	}
	return reg.rules[i], true
}

// Rules returns the rules in pipeline order
func (reg *Registry) Rules() []Rule {
	rules := make([]Rule, len(reg.rules))
	copy(rules, reg.rules)
	return rules
}

// Names returns the rule names in pipeline order
func (reg *Registry) Names() []string {
	names := make([]string, len(reg.rules))
	for i, r := range reg.rules {
		names[i] = r.Name
	}
	return names
}

// DefaultRegistry returns the registry with the complete delimiter
// vocabulary. Colors follow the OALD palette.
func DefaultRegistry() *Registry {
	reg, err := NewRegistry(defaultRules())
	if err != nil {
		panic(fmt.Sprintf("markup: invalid default registry: %v", err))
	}

	reg.English = Span{Class: "en", Dict: "oald"}
	reg.Chinese = Span{Class: "OALECD_chn", Dict: "oald", Style: "font-family: 'Source Han Serif CN'; color: #555555;"}
	reg.Sep = Span{Class: "sep", Dict: "oald", Style: "color: #333333; font-weight: normal; padding: 0 2px;"}
	reg.Label = Span{Class: "label", Style: "font-family: Bookerly; color: #4F7DC0; font-weight: 500;"}
	reg.Tags = Span{Class: "tags", Style: "font-family: Bookerly; color: #0D85FF;"}
	reg.Note = Span{Class: "note", Style: "font-family: Optima, Bookerly, 'Source Han Serif CN'; font-size: 16px;"}
	reg.Divider = Span{Class: "note-separator", Style: "border: none; height: 2px; background-color: #949494; margin: 20px 0;"}

	return reg
}

func defaultRules() []Rule {
	ndv := Rule{
		Name: "ndv", Kind: KindWrap, Open: '{', Close: '}',
		Span: Span{Class: "ndv", Dict: "oald", Style: "color: #007A6C; font-style: italic;"},
	}

	return []Rule{
		{
			Name: RuleRed, Kind: KindWrap, Open: '<', Close: '>',
			Span: Span{Class: "highlight red", Style: "color: #DE002D; font-weight: bold;"},
		},
		{
			Name: RulePOS, Kind: KindBareWord,
			Words: []string{"noun", "verb", "adjective", "adverb", "preposition", "conjunction", "pronoun"},
			Span: Span{Class: "lm5pp_POS", Dict: "lm5pp",
				Style: "color: rgba(196, 21, 27, 0.8); font-family: Georgia, 'Times New Roman', serif; font-style: italic; font-weight: bold;"},
		},
		{
			Name: RulePhrasal, Kind: KindBareWord,
			Words: []string{"Phrasal Verb"},
			Span: Span{Class: "lm5pp_POS phr", Dict: "lm5pp",
				Style: "color: rgba(196, 21, 27, 0.8); font-family: Georgia, 'Times New Roman', serif; font-weight: bold;"},
		},
		{
			Name: RuleIdiom, Kind: KindBareWord,
			Words: []string{"Idioms"},
			Span:  Span{Class: "idiom", Dict: "oald", Style: "color: #0072CF; font-weight: bold; text-transform: uppercase;"},
		},
		{
			Name: RuleCrossRef, Kind: KindCrossRef,
			Span: Span{Class: "ACTIV", Dict: "lm5pp",
				Style: "color: hotpink; font-weight: bold; font-size: 90%; text-transform: uppercase; padding: 0px 2px;"},
		},
		{
			Name: RuleCf, Kind: KindNested, Open: '@', Close: '@',
			Span: Span{Class: "cf", Dict: "oald", Style: "color: #0072CF; font-weight: bold;"},
			Sub: []Rule{
				{
					Name: "reg", Kind: KindWrap, Open: '⟨', Close: '⟩', KeepDelimiters: true,
					Span: Span{Class: "reg", Dict: "oald", Style: "font-size: 85%; font-weight: normal;"},
				},
				ndv,
				{
					Name: "geo", Kind: KindWrap, Open: '_', Close: '_',
					Span: Span{Class: "geo", Dict: "oald", Style: "color: #007A6C; font-weight: normal;"},
				},
			},
			Separators: []Separator{
				{Literal: "$sep$", Display: ","},
				{Literal: ",", Display: ","},
				{Literal: "|", Display: "|"},
			},
		},
		{
			Name: RuleDef, Kind: KindBilingual, Open: '&', Close: '&',
			Span: Span{Class: "def", Dict: "oald", Style: "color: #333333;"},
			Sub:  []Rule{ndv},
		},
		{
			Name: RuleBlue, Kind: KindWrap, Open: '+', Close: '+',
			Span: Span{Class: "highlight blue", Style: "color: #0072CF; font-weight: bold;"},
		},
		{
			Name: RuleShortcut, Kind: KindBilingual, Open: '*', Close: '*',
			Span: Span{Class: "shcut", Dict: "oald", Style: "color: #DE002D; font-weight: bold;"},
		},
		{
			Name: RuleGeo, Kind: KindBilingual, Open: '^', Close: '^',
			Span: Span{Class: "geo", Dict: "oald", Style: "color: #007A6C; font-style: italic;"},
		},
		{
			Name: RulePrefix, Kind: KindWrap, Open: '!', Close: '!',
			Span: Span{Class: "prefix", Dict: "oald",
				Style: "background-color: #0072CF; color: white; font-size: 85%; border-radius: 5px; padding: 1px 5px;"},
		},
		{
			Name: RuleGreen, Kind: KindWrap, Open: '[', Close: ']',
			Span: Span{Class: "highlight green", Style: "color: #007A6C; font-weight: bold;"},
		},
	}
}
