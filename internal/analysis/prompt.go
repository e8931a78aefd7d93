package analysis

import "strings"

const promptHeader = `Analyze this UI design image and extract every visible UI element. Return ONLY a valid JSON object with this structure:
{
  "elements": [
    {
      "type": "button",
      "name": "PrimaryAction",
      "x": 24, "y": 480, "width": 160, "height": 44,
      "args": {
        "text": "Get Started",
        "backgroundColor": "#0ea5e9",
        "textColor": "#ffffff",
        "borderRadius": 8,
        "padding": 12,
        "fontSize": 16,
        "fontWeight": "bold"
      }
    },
    {
      "type": "card",
      "name": "LoginCard",
      "x": 16, "y": 120, "width": 343, "height": 320,
      "args": { "backgroundColor": "#ffffff", "borderRadius": 16, "padding": 24 },
      "children": [
        { "type": "input", "name": "Email", "x": 40, "y": 160, "width": 295, "height": 44,
          "args": { "placeholder": "Enter your email", "type": "email" } }
      ]
    }
  ],
  "summary": "Brief description of the UI",
  "confidence": 0.9,
  "suggestions": ["improvement1", "improvement2"]
}

Rules:
- "type" is one of: button, input, text, image, container, card, list, icon.
- Geometry is in pixels of the source image.
- Colors are hex strings; sizes are numbers in pixels.
- Only container and card elements have children, in visual reading order.
`

const defaultContext = "Extract all UI elements from this design image and return a valid element tree."

// BuildPrompt returns the analysis prompt with optional user context.
func BuildPrompt(description string) string {
	var sb strings.Builder
	sb.WriteString(promptHeader)
	sb.WriteString("\n")
	if d := strings.TrimSpace(description); d != "" {
		sb.WriteString("Context: ")
		sb.WriteString(d)
	} else {
		sb.WriteString(defaultContext)
	}
	return sb.String()
}
