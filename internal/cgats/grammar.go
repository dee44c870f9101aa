package cgats

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// file is a parsed CGATS text file.
type file struct {
	Ident   string   `Newline* @Ident Newline+`
	Entries []*entry `@@*`
}

// entry is one header line or block.
type entry struct {
	Format *formatBlock `  @@`
	Data   *dataBlock   `| @@`
	Field  *field       `| @@`
}

type formatBlock struct {
	Names []string `"BEGIN_DATA_FORMAT" Newline* (@Ident Newline*)* "END_DATA_FORMAT" Newline+`
}

type dataBlock struct {
	Rows []*row `"BEGIN_DATA" Newline+ @@* "END_DATA" Newline+`
}

type row struct {
	Pos    lexer.Position
	Values []string `(@String | @Number | @Ident)+ Newline+`
}

// field is a KEY [VALUE] header line.
type field struct {
	Pos   lexer.Position
	Key   string   `@Ident`
	Value []string `(@String | @Number | @Ident)* Newline+`
}

// cgatsLexer tokenizes CGATS text. Markers come before Ident so the block
// keywords never lex as field names.
var cgatsLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `#[^\r\n]*`},
	{Name: "String", Pattern: `"[^"\r\n]*"`},
	{Name: "Marker", Pattern: `\b(BEGIN_DATA_FORMAT|END_DATA_FORMAT|BEGIN_DATA|END_DATA)\b`},
	{Name: "Number", Pattern: `[-+]?(\d+\.?\d*|\.\d+)([eE][-+]?\d+)?`},
	{Name: "Ident", Pattern: `[A-Za-z_][A-Za-z0-9_.\-/]*`},
	{Name: "Whitespace", Pattern: `[ \t]+`},
	{Name: "Newline", Pattern: `[\r\n]+`},
})

var cgatsParser = participle.MustBuild[file](
	participle.Lexer(cgatsLexer),
	participle.Elide("Comment", "Whitespace"),
)
