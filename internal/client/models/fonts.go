package models

import (
	"slices"
	"strings"
)

// DefaultFontStack is used for any style outside FontStyles.
const DefaultFontStack = "Helvetica, Arial, sans-serif"

// FontSizes are the selectable note font sizes, in pixels.
var FontSizes = []int{12, 14, 16, 18, 20, 24, 28, 32}

// FontStyles are the selectable note font styles, in menu order.
var FontStyles = []string{
	"Calibri Body",
	"Arial",
	"Times New Roman",
	"Courier New",
	"Georgia",
	"Verdana",
}

var fontStacks = map[string]string{
	"Calibri Body":    "Calibri, Candara, Segoe, 'Segoe UI', Optima, Arial, sans-serif",
	"Arial":           "Arial, Helvetica, sans-serif",
	"Times New Roman": "'Times New Roman', Times, serif",
	"Courier New":     "'Courier New', Courier, monospace",
	"Georgia":         "Georgia, 'Times New Roman', serif",
	"Verdana":         "Verdana, Geneva, Tahoma, sans-serif",
}

// FontStack maps a style to a font-family stack.
func FontStack(style string) string {
	if s, ok := fontStacks[style]; ok {
		return s
	}
	return DefaultFontStack
}

// PrimaryFamily returns the first family of a font-family stack, unquoted.
func PrimaryFamily(stack string) string {
	first, _, _ := strings.Cut(stack, ",")
	return strings.Trim(strings.TrimSpace(first), `'"`)
}

func ValidFontSize(px int) bool { return slices.Contains(FontSizes, px) }

func ValidFontStyle(style string) bool { return slices.Contains(FontStyles, style) }
