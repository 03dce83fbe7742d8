package glyphmerge

import (
	"fmt"
	"strconv"
	"strings"
)

// CsToken is a single element of a Charstring: either an integer
// operand or an operator name (spec.md §3).
type CsToken struct {
	IsOperator bool
	Operand    int32
	Operator   string
}

// Op constructs an operator token.
func Op(name string) CsToken {
	return CsToken{IsOperator: true, Operator: name}
}

// Operand constructs an operand token.
func Operand(v int32) CsToken {
	return CsToken{Operand: v}
}

func (t CsToken) String() string {
	if t.IsOperator {
		return t.Operator
	}
	return strconv.FormatInt(int64(t.Operand), 10)
}

// Charstring is an ordered sequence of tokens (spec.md §3/§6). The core
// contract only ever deals in already-decoded Charstring values; no
// binary encoding is defined here (spec.md §6).
type Charstring []CsToken

func (cs Charstring) String() string {
	parts := make([]string, len(cs))
	for i, tok := range cs {
		parts[i] = tok.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

var operatorNames = map[string]bool{
	"rmoveto": true, "hmoveto": true, "vmoveto": true,
	"rlineto": true, "hlineto": true, "vlineto": true,
	"rrcurveto": true, "hhcurveto": true, "vvcurveto": true,
	"hvcurveto": true, "vhcurveto": true,
	"rcurveline": true, "rlinecurve": true,
	"endchar": true,
	"flex": true, "hflex": true, "hflex1": true, "flex1": true,
}

// ParseText decodes the whitespace-separated textual notation used by
// spec.md §8's scenarios and by cmd/glyphmerge-demo
// ("-10 -10 rmoveto 0 20 rlineto endchar") into a Charstring. This is a
// demo/test convenience, not part of the core parse/generate contract.
func ParseText(s string) (Charstring, error) {
	fields := strings.Fields(s)
	cs := make(Charstring, 0, len(fields))
	for _, f := range fields {
		if operatorNames[f] {
			cs = append(cs, Op(f))
			continue
		}
		n, err := strconv.ParseInt(f, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("glyphmerge: invalid token %q: %w", f, err)
		}
		cs = append(cs, Operand(int32(n)))
	}
	return cs, nil
}

// Text encodes cs back into the whitespace-separated notation ParseText
// accepts.
func (cs Charstring) Text() string {
	parts := make([]string, len(cs))
	for i, tok := range cs {
		parts[i] = tok.String()
	}
	return strings.Join(parts, " ")
}
