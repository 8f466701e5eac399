package docs

import (
	_ "embed"
)

// AuthoringGuide embeds the descriptor authoring guide
// This document teaches tenant developers the descriptor YAML format, the
// placeholder language and the context roles available in each section
//
//go:embed authoring/descriptor_guide.md
var AuthoringGuide string
