package generator

import (
	"strings"

	"github.com/mj1618/uibuilder/internal/model"
)

// FallbackColor is the token used for colors missing from colorTokens.
const FallbackColor = "gray-500"

// colorTokens maps known hex colors (lowercase, six digits) to Tailwind
// color tokens. The mapping is a lookup, not a nearest-color search.
var colorTokens = map[string]string{
	"#ffffff": "white",
	"#000000": "black",
	"#f9fafb": "gray-50",
	"#f3f4f6": "gray-100",
	"#e5e7eb": "gray-200",
	"#d1d5db": "gray-300",
	"#9ca3af": "gray-400",
	"#6b7280": "gray-500",
	"#4b5563": "gray-600",
	"#374151": "gray-700",
	"#1f2937": "gray-800",
	"#111827": "gray-900",
	"#ef4444": "red-500",
	"#dc2626": "red-600",
	"#f97316": "orange-500",
	"#f59e0b": "amber-500",
	"#eab308": "yellow-500",
	"#22c55e": "green-500",
	"#16a34a": "green-600",
	"#10b981": "emerald-500",
	"#14b8a6": "teal-500",
	"#06b6d4": "cyan-500",
	"#3b82f6": "blue-500",
	"#2563eb": "blue-600",
	"#1d4ed8": "blue-700",
	"#6366f1": "indigo-500",
	"#8b5cf6": "violet-500",
	"#a855f7": "purple-500",
	"#ec4899": "pink-500",
}

// ColorToken maps a hex color to a Tailwind color token, falling back to
// FallbackColor. Three-digit hex values are expanded before lookup.
func ColorToken(hex string) string {
	key := strings.ToLower(strings.TrimSpace(hex))
	if !strings.HasPrefix(key, "#") {
		key = "#" + key
	}
	if len(key) == 4 {
		key = string([]byte{'#', key[1], key[1], key[2], key[2], key[3], key[3]})
	}
	if token, ok := colorTokens[key]; ok {
		return token
	}
	return FallbackColor
}

// PaddingClass buckets a padding in pixels into p-2, p-3, p-4 or p-6.
func PaddingClass(px float64) string {
	return "p-" + spacingTier(px)
}

// MarginClass buckets a margin in pixels into m-2, m-3, m-4 or m-6.
func MarginClass(px float64) string {
	return "m-" + spacingTier(px)
}

func spacingTier(px float64) string {
	switch {
	case px >= 24:
		return "6"
	case px >= 16:
		return "4"
	case px >= 12:
		return "3"
	default:
		return "2"
	}
}

// RadiusClass buckets a border radius into rounded-2xl, rounded-lg or
// rounded. Non-positive radii yield "".
func RadiusClass(px float64) string {
	switch {
	case px >= 16:
		return "rounded-2xl"
	case px >= 8:
		return "rounded-lg"
	case px > 0:
		return "rounded"
	default:
		return ""
	}
}

// TextSizeClass buckets a font size into a text-* tier.
func TextSizeClass(px float64) string {
	switch {
	case px >= 28:
		return "text-3xl"
	case px >= 24:
		return "text-2xl"
	case px >= 20:
		return "text-xl"
	case px > 0 && px <= 12:
		return "text-xs"
	default:
		return "text-base"
	}
}

func isBold(weight string) bool {
	w := strings.ToLower(strings.TrimSpace(weight))
	return w == "bold" || w == "w600"
}

// classList is an ordered set of class names.
type classList struct {
	names []string
	seen  map[string]bool
}

func (c *classList) add(names ...string) {
	if c.seen == nil {
		c.seen = make(map[string]bool)
	}
	for _, n := range names {
		if n == "" || c.seen[n] {
			continue
		}
		c.seen[n] = true
		c.names = append(c.names, n)
	}
}

// ClassNames computes the Tailwind classes for one element: the base set for
// its type followed by classes derived from its args, de-duplicated in first
// occurrence order. The result is never empty.
func ClassNames(el model.DesignElement) []string {
	a := el.Args
	var c classList

	radius := func(def string) string {
		if n, ok := number(a.BorderRadius); ok {
			return RadiusClass(n)
		}
		return def
	}
	color := func(prefix, hex, def string) string {
		if hex == "" {
			return prefix + def
		}
		return prefix + ColorToken(hex)
	}

	switch el.Type {
	case model.TypeButton:
		c.add("px-4", "py-2", radius("rounded"), "font-medium", "transition-colors",
			color("bg-", a.BackgroundColor, "blue-500"), color("text-", a.TextColor, "white"))
		if a.IsDisabled() {
			c.add("opacity-50", "cursor-not-allowed")
		} else {
			c.add("hover:opacity-90")
		}
	case model.TypeInput:
		c.add("w-full", "px-3", "py-2", "border", color("border-", a.BorderColor, "gray-300"), radius("rounded"),
			"focus:outline-none", "focus:ring-2", "focus:ring-blue-500")
	case model.TypeText:
		fontSize, _ := number(a.FontSize)
		c.add(TextSizeClass(fontSize))
	case model.TypeImage:
		c.add("object-cover")
	case model.TypeCard:
		c.add("flex", "flex-col", radius("rounded-lg"), "shadow-md", color("bg-", a.BackgroundColor, "white"))
		if _, ok := number(a.Padding); !ok {
			c.add("p-4")
		}
	case model.TypeList:
		c.add("list-disc", "pl-5", "space-y-1")
	case model.TypeIcon:
		c.add("inline-block")
	case model.TypeContainer:
		c.add("flex", "flex-col")
	default:
		c.add("flex", "flex-col")
	}

	if a.BackgroundColor != "" {
		c.add("bg-" + ColorToken(a.BackgroundColor))
	}
	if a.TextColor != "" {
		c.add("text-" + ColorToken(a.TextColor))
	}
	if a.BorderColor != "" {
		c.add("border", "border-"+ColorToken(a.BorderColor))
	}
	if n, ok := number(a.BorderRadius); ok {
		c.add(RadiusClass(n))
	}
	if n, ok := number(a.Padding); ok {
		c.add(PaddingClass(n))
	}
	if n, ok := number(a.Margin); ok {
		c.add(MarginClass(n))
	}
	if n, ok := number(a.FontSize); ok {
		c.add(TextSizeClass(n))
	}
	if isBold(a.FontWeight) {
		c.add("font-bold")
	}
	return c.names
}
