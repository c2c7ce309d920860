package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"

	"github.com/tdewolff/sxml/xml"
)

type tokenRecord struct {
	Type  string `json:"type" yaml:"type" msgpack:"type"`
	Start uint32 `json:"start" yaml:"start" msgpack:"start"`
	End   uint32 `json:"end" yaml:"end" msgpack:"end"`
	Size  uint32 `json:"size,omitempty" yaml:"size,omitempty" msgpack:"size,omitempty"`
	Text  string `json:"text" yaml:"text" msgpack:"text"`
}

type fileRecord struct {
	File   string        `json:"file" yaml:"file" msgpack:"file"`
	Tokens []tokenRecord `json:"tokens" yaml:"tokens" msgpack:"tokens"`
}

func newFileRecord(name string, doc *xml.Document) fileRecord {
	tokens := make([]tokenRecord, len(doc.Tokens))
	for i, t := range doc.Tokens {
		tokens[i] = tokenRecord{
			Type:  t.TokenType.String(),
			Start: t.Start,
			End:   t.End,
			Size:  t.Size,
			Text:  string(doc.Text(i)),
		}
	}
	return fileRecord{name, tokens}
}

func writeFiles(w io.Writer, format string, files []fileRecord) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(files)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(files); err != nil {
			return err
		}
		return enc.Close()
	case "msgpack":
		return msgpack.NewEncoder(w).Encode(files)
	case "pretty":
		for _, file := range files {
			if err := writePretty(w, file); err != nil {
				return err
			}
		}
		return nil
	}
	return fmt.Errorf("unknown output format %q", format)
}

// maxTextWidth is the number of terminal cells after which texts are cut short in pretty output.
const maxTextWidth = 72

func truncate(text string) string {
	if runewidth.StringWidth(text) <= maxTextWidth {
		return text
	}
	return runewidth.Truncate(text, maxTextWidth, "...")
}

var (
	nameColor    = color.New(color.FgBlue, color.Bold)
	attrColor    = color.New(color.FgCyan)
	valueColor   = color.New(color.FgGreen)
	textColor    = color.New(color.Reset)
	commentColor = color.New(color.FgHiBlack)
	declColor    = color.New(color.FgMagenta)
)

// writePretty prints one token per line indented by element depth, with the attributes of a tag on the lines below it.
func writePretty(w io.Writer, file fileRecord) error {
	if _, err := fmt.Fprintln(w, color.New(color.Bold, color.Underline).Sprint(file.File)); err != nil {
		return err
	}

	depth := 0
	tokens := file.Tokens
	for i := 0; i < len(tokens); i++ {
		t := tokens[i]
		if t.Type == xml.EndTagToken.String() && 0 < depth {
			depth--
		}
		indent := strings.Repeat("  ", depth)

		var line string
		switch t.Type {
		case xml.StartTagToken.String(), xml.InstructionToken.String():
			line = fmt.Sprintf("%-11s %s", t.Type, nameColor.Sprint(t.Text))
			for j := 0; j < int(t.Size) && i+2 < len(tokens); j++ {
				name, val := tokens[i+1], tokens[i+2]
				line += fmt.Sprintf("\n%s  %s = %s", indent, attrColor.Sprint(name.Text), valueColor.Sprint(strconv.Quote(truncate(val.Text))))
				i += 2
			}
			if t.Type == xml.StartTagToken.String() {
				depth++
			}
		case xml.EndTagToken.String():
			line = fmt.Sprintf("%-11s %s", t.Type, nameColor.Sprint(t.Text))
		case xml.CommentToken.String():
			line = fmt.Sprintf("%-11s %s", t.Type, commentColor.Sprint(strconv.Quote(truncate(t.Text))))
		case xml.DOCTYPEToken.String():
			line = fmt.Sprintf("%-11s %s", t.Type, declColor.Sprint(strconv.Quote(truncate(t.Text))))
		default:
			line = fmt.Sprintf("%-11s %s", t.Type, textColor.Sprint(strconv.Quote(truncate(t.Text))))
		}
		if _, err := fmt.Fprintf(w, "%s%s\n", indent, line); err != nil {
			return err
		}
	}
	return nil
}
