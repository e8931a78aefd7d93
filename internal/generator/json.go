package generator

import (
	"bytes"
	"encoding/json"
	"time"

	"github.com/mj1618/uibuilder/internal/model"
)

// timestampLayout is RFC 3339 in UTC with millisecond precision.
const timestampLayout = "2006-01-02T15:04:05.000Z07:00"

func formatTimestamp(t time.Time) string {
	return t.UTC().Format(timestampLayout)
}

// designJSON renders the framework-neutral interchange document.
func designJSON(elements []model.DesignElement, now time.Time) (string, error) {
	doc := model.InterchangeDocument{
		Version:  model.InterchangeVersion,
		Type:     model.InterchangeTypeDesign,
		Elements: model.ToInterchange(elements),
		Metadata: model.InterchangeMetadata{
			TotalElements: len(elements),
			ExportedAt:    formatTimestamp(now),
		},
	}
	return marshalIndent(doc)
}

// angularJSON renders the Angular template document: one template node per
// element with tag, Tailwind classes, attributes and listeners.
func angularJSON(elements []model.DesignElement, now time.Time) (string, error) {
	doc := model.AngularDocument{
		Version:   model.InterchangeVersion,
		Type:      model.InterchangeTypeTemplate,
		Templates: AngularTemplates(elements),
		Metadata: model.InterchangeMetadata{
			TotalElements:   len(elements),
			ExportedAt:      formatTimestamp(now),
			TailwindEnabled: true,
		},
	}
	return marshalIndent(doc)
}

// AngularTemplates maps elements to Angular template nodes, recursing into
// children of every type.
func AngularTemplates(elements []model.DesignElement) []model.AngularTemplate {
	out := make([]model.AngularTemplate, 0, len(elements))
	for _, el := range elements {
		out = append(out, angularTemplate(el))
	}
	return out
}

func angularTemplate(el model.DesignElement) model.AngularTemplate {
	tmpl := model.AngularTemplate{
		Element:    TemplateTag(el.Type),
		ClassNames: ClassNames(el),
		Text:       el.Args.Text,
		Attributes: templateAttributes(el.Args),
		Listeners:  templateListeners(el.Type),
	}
	if len(el.Children) > 0 {
		tmpl.Children = AngularTemplates(el.Children)
	}
	return tmpl
}

func templateAttributes(a model.Args) []model.AngularAttribute {
	var attrs []model.AngularAttribute
	if a.Placeholder != "" {
		attrs = append(attrs, model.AngularAttribute{Name: "placeholder", Value: a.Placeholder})
	}
	if a.IsDisabled() {
		attrs = append(attrs, model.AngularAttribute{Name: "disabled", Value: "true"})
	}
	if a.Type != "" {
		attrs = append(attrs, model.AngularAttribute{Name: "type", Value: a.Type})
	}
	return attrs
}

func templateListeners(t model.ElementType) []model.AngularListener {
	switch t {
	case model.TypeButton:
		return []model.AngularListener{{EventName: clickEvent, CallBack: clickHandler}}
	case model.TypeInput:
		return []model.AngularListener{{EventName: changeEvent, CallBack: changeHandler}}
	}
	return nil
}

func marshalIndent(v any) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return "", err
	}
	return string(bytes.TrimRight(buf.Bytes(), "\n")), nil
}
