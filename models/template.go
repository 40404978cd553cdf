package models

// The presentation layer knows a fixed set of invitation templates.
// TemplateID is kept as a plain string in storage; validation happens at
// the transport and rendering boundaries.
const (
	TemplateClassic = "template1"
	TemplateModern  = "template2"
	TemplateRustic  = "template3"
)

var knownTemplates = []string{TemplateClassic, TemplateModern, TemplateRustic}

func ValidTemplate(id string) bool {
	for _, t := range knownTemplates {
		if t == id {
			return true
		}
	}
	return false
}

func TemplateIDs() []string {
	return knownTemplates
}
