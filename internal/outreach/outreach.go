// Package outreach renders personalized outreach messages for assembled
// leads from fixed templates. Template selection is deterministic; message
// quality beyond simple variable substitution is out of scope.
package outreach

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/okian/prospect/internal/domain/model"
)

// Template type labels carried on the lead table.
const (
	TypeInitialOutreach = "initial_outreach"
	TypeFollowUp        = "follow_up"
	TypeEventBased      = "event_based"
)

const defaultScoreThreshold = 0.7

// Message is one rendered outreach message.
type Message struct {
	Type    string
	Subject string
	Body    string
}

// Option applies a configuration option to the Generator.
type Option func(*Generator)

// WithProductName sets the product referenced in messages.
func WithProductName(name string) Option {
	return func(g *Generator) {
		if name != "" {
			g.productName = name
		}
	}
}

// WithScoreThreshold sets the lead score at or above which the initial
// outreach template is preferred over the follow-up one.
func WithScoreThreshold(t float64) Option {
	return func(g *Generator) {
		if t > 0 && t <= 1 {
			g.scoreThreshold = t
		}
	}
}

// Generator renders outreach messages for leads.
type Generator struct {
	productName    string
	scoreThreshold float64
	templates      map[string]*messageTemplate
}

type messageTemplate struct {
	subject *template.Template
	body    *template.Template
}

// New creates a Generator with configuration options. Template parsing is
// done once here; the templates are constants, so parse errors are
// programmer errors and panic.
func New(opts ...Option) *Generator {
	g := &Generator{
		productName:    "Tedlar",
		scoreThreshold: defaultScoreThreshold,
	}
	for _, opt := range opts {
		opt(g)
	}
	g.templates = map[string]*messageTemplate{
		TypeInitialOutreach: parseTemplate(TypeInitialOutreach, initialSubject, initialBody),
		TypeFollowUp:        parseTemplate(TypeFollowUp, followUpSubject, followUpBody),
		TypeEventBased:      parseTemplate(TypeEventBased, eventSubject, eventBody),
	}
	return g
}

// templateData is the variable set available inside message templates.
type templateData struct {
	Name                string
	Title               string
	Company             string
	Industry            string
	Product             string
	ProductsOrServices  string
	SpecificApplication string
	EventName           string
}

// Generate renders the message for one lead, selecting the template from
// the lead score and the company's source. It never fails on a sparse
// record; empty fields render through neutral placeholders.
func (g *Generator) Generate(lead model.Lead, company model.Company) Message {
	msgType := g.selectType(lead, company)
	data := templateData{
		Name:                orDefault(lead.Name, "there"),
		Title:               orDefault(lead.Title, "professional"),
		Company:             orDefault(lead.Company, "your company"),
		Industry:            orDefault(company.Industry, "graphics and signage"),
		Product:             g.productName,
		ProductsOrServices:  joinOr(company.Products, "products and services"),
		SpecificApplication: firstOr(company.TargetMarkets, "signage and graphics"),
		EventName:           eventName(company.Source),
	}

	tmpl := g.templates[msgType]
	return Message{
		Type:    msgType,
		Subject: render(tmpl.subject, data),
		Body:    render(tmpl.body, data),
	}
}

// selectType picks event_based when the company came from an event
// source, initial outreach for leads at or above the threshold, and the
// follow-up template otherwise.
func (g *Generator) selectType(lead model.Lead, company model.Company) string {
	if eventName(company.Source) != "" {
		return TypeEventBased
	}
	if lead.LeadScore.Float64() >= g.scoreThreshold {
		return TypeInitialOutreach
	}
	return TypeFollowUp
}

// eventName extracts the event from a "Event: <name>" source tag.
func eventName(source string) string {
	const prefix = "Event:"
	if strings.HasPrefix(source, prefix) {
		return strings.TrimSpace(strings.TrimPrefix(source, prefix))
	}
	return ""
}

func parseTemplate(name, subject, body string) *messageTemplate {
	return &messageTemplate{
		subject: template.Must(template.New(name + "_subject").Parse(subject)),
		body:    template.Must(template.New(name + "_body").Parse(body)),
	}
}

func render(t *template.Template, data templateData) string {
	var sb strings.Builder
	if err := t.Execute(&sb, data); err != nil {
		// Templates are static and data is a plain struct; an execute
		// error is a programmer error.
		panic(fmt.Sprintf("outreach template %s: %v", t.Name(), err))
	}
	return sb.String()
}

func orDefault(v, def string) string {
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}

func joinOr(values []string, def string) string {
	if len(values) == 0 {
		return def
	}
	if len(values) > 2 {
		values = values[:2]
	}
	return strings.Join(values, ", ")
}

func firstOr(values []string, def string) string {
	if len(values) == 0 {
		return def
	}
	return values[0]
}
