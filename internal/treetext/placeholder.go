package treetext

import (
	"path"
	"strings"
)

type commentStyle int

const (
	slashComment commentStyle = iota
	hashComment
	markupComment
	blockComment
	dashComment
	plainText
	noComment
)

var commentByExt = map[string]commentStyle{
	".py":           hashComment,
	".sh":           hashComment,
	".bash":         hashComment,
	".zsh":          hashComment,
	".rb":           hashComment,
	".pl":           hashComment,
	".r":            hashComment,
	".yml":          hashComment,
	".yaml":         hashComment,
	".toml":         hashComment,
	".ini":          hashComment,
	".cfg":          hashComment,
	".conf":         hashComment,
	".env":          hashComment,
	".gitignore":    hashComment,
	".dockerignore": hashComment,
	".editorconfig": hashComment,
	".md":           markupComment,
	".markdown":     markupComment,
	".html":         markupComment,
	".htm":          markupComment,
	".xml":          markupComment,
	".svg":          markupComment,
	".vue":          markupComment,
	".css":          blockComment,
	".scss":         slashComment,
	".less":         slashComment,
	".sql":          dashComment,
	".lua":          dashComment,
	".hs":           dashComment,
	".txt":          plainText,
	".json":         noComment,
	".lock":         noComment,
	".sum":          noComment,
	".png":          noComment,
	".jpg":          noComment,
	".jpeg":         noComment,
	".gif":          noComment,
	".ico":          noComment,
}

var commentByName = map[string]commentStyle{
	"makefile":   hashComment,
	"dockerfile": hashComment,
	"gemfile":    hashComment,
	"rakefile":   hashComment,
	"procfile":   hashComment,
	"license":    plainText,
	"readme":     plainText,
}

// Placeholder returns the default body for a newly listed file: a single
// comment naming p in the comment syntax of its file type. Formats without
// comments get an empty body.
func Placeholder(p string) string {
	base := strings.ToLower(path.Base(p))
	ext := path.Ext(base)

	style, ok := commentByName[base]
	if !ok {
		style, ok = commentByExt[ext]
	}
	if !ok && ext == "" {
		style = plainText
	}

	switch style {
	case hashComment:
		return "# " + p + "\n"
	case markupComment:
		return "<!-- " + p + " -->\n"
	case blockComment:
		return "/* " + p + " */\n"
	case dashComment:
		return "-- " + p + "\n"
	case plainText:
		return p + "\n"
	case noComment:
		return ""
	default:
		return "// " + p + "\n"
	}
}
