package themes

import "strings"

// Category is the closed set of themed card categories. Unknown is the zero
// value and the only variant without a theme of its own: a Catalog answers
// it with the catalog's fallback theme.
type Category uint8

// Categories. Values are grouped by card type; the order inside a group is
// the order forms list them in.
const (
	Unknown Category = iota

	// typology temperaments
	Defender
	Thinker
	Explorer
	Diplomat

	// faction academies
	Oarai
	Kuromorimine
	Pravda
	StGloriana
	Anzio
	Chihatan
	Saunders
	BCFreedom
	KoalaForest
	Jatkosota

	// developer languages
	JavaScript
	Python
	Java
	CPP
	CSharp
	Ruby
	PHP
	Go
	Rust
	Dart
	Kotlin
	Swift
	TypeScript
	HTML
	CSS
	R
	Scala
	Perl
	Bash
	Lua

	categoryCount
)

// Key returns the category key forms submit, "" for Unknown.
func (c Category) Key() string {
	if !c.Valid() {
		return ""
	}
	return categoryThemes[c].Key
}

// Valid reports whether c is a themed category
func (c Category) Valid() bool {
	return c > Unknown && c < categoryCount
}

func (c Category) String() string {
	if !c.Valid() {
		return "unknown"
	}
	return categoryThemes[c].Key
}

const devicon = "https://cdn.jsdelivr.net/gh/devicons/devicon/icons/"

var categoryThemes = [categoryCount]Theme{
	Defender: {Key: "defender", Label: "Defender", Symbol: "🛡️", IDPrefix: "4",
		GradientStops: []string{"#1e3a8a", "#06b6d4", "#93c5fd"}},
	Thinker: {Key: "thinker", Label: "Thinker", Symbol: "🧠", IDPrefix: "2",
		GradientStops: []string{"#6b21a8", "#ec4899", "#d8b4fe"}},
	Explorer: {Key: "explorer", Label: "Explorer", Symbol: "🧭", IDPrefix: "3",
		GradientStops: []string{"#ca8a04", "#fb923c", "#fef08a"}},
	Diplomat: {Key: "diplomat", Label: "Diplomat", Symbol: "🌳", IDPrefix: "1",
		GradientStops: []string{"#065f46", "#10b981", "#86efac"}},

	Oarai: {Key: "oarai", Label: "Oarai", Symbol: "🐟", IDPrefix: "OA",
		GradientStops: []string{"#ca8a04", "#fde047", "#fef9c3"},
		LogoRef:       "https://i.ibb.co.com/wN9RcDDf/GUP-Ooarai-Small-9335.webp"},
	Kuromorimine: {Key: "kuromorimine", Label: "Kuromorimine", Symbol: "⚔️", IDPrefix: "KM",
		GradientStops: []string{"#000000", "#4b5563", "#7f1d1d"},
		LogoRef:       "https://i.ibb.co.com/nNMytgxj/GUP-Kuromorimine-Small-5224.webp"},
	Pravda: {Key: "pravda", Label: "Pravda", Symbol: "🌨️", IDPrefix: "PR",
		GradientStops: []string{"#991b1b", "#ef4444", "#fecaca"},
		LogoRef:       "https://i.ibb.co.com/G49Sqg7v/GUP-Pravda-Small-3053.webp"},
	StGloriana: {Key: "st_gloriana", Label: "St Gloriana", Symbol: "🍵", IDPrefix: "SG",
		GradientStops: []string{"#9d174d", "#ec4899", "#fbcfe8"},
		LogoRef:       "https://i.ibb.co.com/4RDSN5YT/GUP-St-Gloriana-Small-124.webp"},
	Anzio: {Key: "anzio", Label: "Anzio", Symbol: "🍝", IDPrefix: "AZ",
		GradientStops: []string{"#065f46", "#84cc16", "#d9f99d"},
		LogoRef:       "https://i.ibb.co.com/8LgRH5gL/GUP-Anzio-Small-860.webp"},
	Chihatan: {Key: "chihatan", Label: "Chihatan", Symbol: "⛩️", IDPrefix: "CH",
		GradientStops: []string{"#1e3a8a", "#4f46e5", "#c7d2fe"},
		LogoRef:       "https://i.ibb.co.com/LzWFR2Tz/Ap2-C12x122-Ctransparent-t-u1.webp"},
	Saunders: {Key: "saunders", Label: "Saunders", Symbol: "🎯", IDPrefix: "SA",
		GradientStops: []string{"#1e40af", "#3b82f6", "#93c5fd"},
		LogoRef:       "https://i.ibb.co.com/q3kZnTpm/GUP-Saunders-Small-7264.webp"},
	BCFreedom: {Key: "bc_freedom", Label: "Bc Freedom", Symbol: "🎆", IDPrefix: "BC",
		GradientStops: []string{"#6b21a8", "#a855f7", "#d8b4fe"},
		LogoRef:       "https://i.ibb.co.com/8gG0Cq43/BC-Freedom.webp"},
	KoalaForest: {Key: "koala_forest", Label: "Koala Forest", Symbol: "🐨", IDPrefix: "KF",
		GradientStops: []string{"#365314", "#84cc16", "#bef264"},
		LogoRef:       "https://i.ibb.co.com/209jCTXr/KoalaHD.webp"},
	Jatkosota: {Key: "jatkosota", Label: "Jatkosota", Symbol: "❄️", IDPrefix: "JT",
		GradientStops: []string{"#0f766e", "#14b8a6", "#5eead4"},
		LogoRef:       "https://i.ibb.co.com/ycQXH51j/Jaktosoka.webp"},

	JavaScript: language("javascript", "javascript/javascript-original.svg", "#fde047", "#facc15", "#ca8a04"),
	Python:     language("python", "python/python-original.svg", "#1e3a8a", "#4ade80", "#facc15"),
	Java:       language("java", "java/java-original.svg", "#ef4444", "#f97316", "#374151"),
	CPP:        language("cpp", "cplusplus/cplusplus-original.svg", "#0e7490", "#60a5fa", "#111827"),
	CSharp:     language("csharp", "csharp/csharp-original.svg", "#8b5cf6", "#4f46e5", "#6b21a8"),
	Ruby:       language("ruby", "ruby/ruby-original.svg", "#f87171", "#ec4899", "#7f1d1d"),
	PHP:        language("php", "php/php-original.svg", "#a5b4fc", "#a855f7", "#4b5563"),
	Go:         language("go", "go/go-original.svg", "#67e8f9", "#2dd4bf", "#2563eb"),
	Rust:       language("rust", "rust/rust-plain.svg", "#ea580c", "#f59e0b", "#000000"),
	Dart:       language("dart", "dart/dart-original.svg", "#93c5fd", "#2dd4bf", "#0e7490"),
	Kotlin:     language("kotlin", "kotlin/kotlin-original.svg", "#d946ef", "#db2777", "#4338ca"),
	Swift:      language("swift", "swift/swift-original.svg", "#fdba74", "#f87171", "#eab308"),
	TypeScript: language("typescript", "typescript/typescript-original.svg", "#0ea5e9", "#2563eb", "#4338ca"),
	HTML:       language("html", "html5/html5-original.svg", "#ef4444", "#f97316", "#eab308"),
	CSS:        language("css", "css3/css3-original.svg", "#60a5fa", "#6366f1", "#9333ea"),
	R:          language("r", "r/r-original.svg", "#0284c7", "#1d4ed8", "#164e63"),
	Scala:      language("scala", "scala/scala-original.svg", "#ef4444", "#f97316", "#000000"),
	Perl:       language("perl", "perl/perl-original.svg", "#c084fc", "#4f46e5", "#374151"),
	Bash:       language("bash", "bash/bash-original.svg", "#a3e635", "#22c55e", "#047857"),
	Lua:        language("lua", "lua/lua-original.svg", "#312e81", "#0284c7", "#1e40af"),
}

// language themes share one symbol and take their prefix from the first two
// letters of the key.
func language(key, icon string, stops ...string) Theme {
	prefix := key
	if len(prefix) > 2 {
		prefix = prefix[:2]
	}
	return Theme{
		Key:           key,
		Label:         strings.ToUpper(key),
		Symbol:        "💻",
		IDPrefix:      strings.ToUpper(prefix),
		LogoRef:       devicon + icon,
		GradientStops: stops,
	}
}
