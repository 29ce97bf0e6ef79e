package site

// CategoryStyle is the badge look of a sub-category.
type CategoryStyle struct {
	Icon    string
	Classes string
}

var defaultStyle = CategoryStyle{Icon: "bar-chart", Classes: "bg-gray-100 text-gray-800"}

var categoryStyles = map[string]CategoryStyle{
	"visibilite":   {Icon: "globe", Classes: "bg-blue-100 text-blue-800"},
	"conversion":   {Icon: "target", Classes: "bg-green-100 text-green-800"},
	"vente":        {Icon: "bar-chart", Classes: "bg-purple-100 text-purple-800"},
	"optimisation": {Icon: "shield", Classes: "bg-orange-100 text-orange-800"},
	"growth":       {Icon: "star", Classes: "bg-pink-100 text-pink-800"},
	"plateforme":   {Icon: "layers", Classes: "bg-indigo-100 text-indigo-800"},
	"innovation":   {Icon: "zap", Classes: "bg-red-100 text-red-800"},
}

// StyleFor returns the badge style of subCategory, grey when unknown.
func StyleFor(subCategory string) CategoryStyle {
	if style, ok := categoryStyles[subCategory]; ok {
		return style
	}
	return defaultStyle
}
