package printer

import (
	"fmt"
	"io"
	"math/big"
	"strings"

	emberruntime "github.com/emberlang/ember-runtime"
	"github.com/emberlang/ember-runtime/numeric"
)

// FprintArray writes seq in literal syntax followed by a newline:
// "[e0, e1, ...]". A nil sequence writes the bare literal "null".
// Element rendering follows tag; unknown tags render "?" per element.
func FprintArray(w io.Writer, seq emberruntime.Sequence, tag emberruntime.ElemTag) error {
	if seq == nil {
		_, err := fmt.Fprintln(w, "null")
		return err
	}

	var b strings.Builder
	b.WriteByte('[')
	for i := 0; i < seq.Len(); i++ {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(formatElem(tag, seq.Item(i)))
	}
	b.WriteString("]\n")

	_, err := io.WriteString(w, b.String())
	return err
}

// Fprint writes one scalar per the tag rules, followed by a newline.
func Fprint(w io.Writer, tag emberruntime.ElemTag, v any) error {
	_, err := fmt.Fprintln(w, formatElem(tag, v))
	return err
}

func formatElem(tag emberruntime.ElemTag, v any) string {
	switch tag {
	case emberruntime.TagInt:
		return formatInt(v)
	case emberruntime.TagFloat, emberruntime.TagDouble:
		return formatFloat(v)
	case emberruntime.TagBool:
		if b, ok := v.(bool); ok {
			if b {
				return "true"
			}
			return "false"
		}
		return "?"
	case emberruntime.TagString:
		return formatString(v)
	default:
		return "?"
	}
}

func formatInt(v any) string {
	switch x := v.(type) {
	case int:
		return fmt.Sprintf("%d", x)
	case int8:
		return fmt.Sprintf("%d", x)
	case int16:
		return fmt.Sprintf("%d", x)
	case int32:
		return fmt.Sprintf("%d", x)
	case int64:
		return fmt.Sprintf("%d", x)
	case uint8:
		return fmt.Sprintf("%d", x)
	case uint16:
		return fmt.Sprintf("%d", x)
	case uint32:
		return fmt.Sprintf("%d", x)
	case uint64:
		return fmt.Sprintf("%d", x)
	case *big.Int:
		return numeric.FormatInt(x)
	default:
		return "?"
	}
}

func formatFloat(v any) string {
	switch x := v.(type) {
	case float32:
		return numeric.FormatFloat(x)
	case float64:
		return numeric.FormatDouble(x)
	case *big.Float:
		return numeric.FormatDec(x)
	default:
		return "?"
	}
}

// formatString double-quotes present entries and renders absent ones as
// the unquoted literal null.
func formatString(v any) string {
	if v == nil {
		return "null"
	}
	s, ok := v.(string)
	if !ok {
		return "?"
	}
	return quote(s)
}

func quote(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '"', '\\':
			b.WriteByte('\\')
		}
		b.WriteByte(s[i])
	}
	b.WriteByte('"')
	return b.String()
}
