// Package layout parses world seed files describing the initial grid.
// The format is line-oriented:
//
//	# starting scenario
//	world 5x5
//	life 1 at (2,2)
//	resource 5 at (2,3)
//	egg 4 at (0,0)
//
// Initial world construction is owned by the driver; the engine only ever
// sees the resulting World value.
package layout

import (
	"fmt"
	"os"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/udisondev/lifegrid/internal/model"
	"github.com/udisondev/lifegrid/internal/world"
)

// File is the top-level AST node of a seed file.
type File struct {
	Width      int          `parser:"'world' @Int"`
	Height     int          `parser:"'x' @Int"`
	Placements []*Placement `parser:"@@*"`
}

// Placement puts one non-empty tile on the grid.
type Placement struct {
	Kind  string `parser:"@('life' | 'resource' | 'egg')"`
	Value int    `parser:"@Int"`
	Row   int    `parser:"'at' '(' @Int"`
	Col   int    `parser:"',' @Int ')'"`
}

var layoutLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Whitespace", Pattern: `[\s]+`},
	{Name: "Comment", Pattern: `#[^\n]*`},
	{Name: "Int", Pattern: `[0-9]+`},
	{Name: "Ident", Pattern: `[a-z]+`},
	{Name: "Punct", Pattern: `[(),]`},
})

var parser = participle.MustBuild[File](
	participle.Lexer(layoutLexer),
	participle.Elide("Whitespace", "Comment"),
)

// Parse parses seed file source into its AST.
func Parse(source string) (*File, error) {
	return parser.ParseString("", source)
}

// ParseFile reads and parses the seed file at path.
func ParseFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading layout %s: %w", path, err)
	}
	f, err := Parse(string(data))
	if err != nil {
		return nil, fmt.Errorf("parsing layout %s: %w", path, err)
	}
	return f, nil
}

// BuildWorld validates the AST and materializes the initial World.
func (f *File) BuildWorld() (world.World, error) {
	if f.Width != f.Height {
		return world.World{}, fmt.Errorf("grid must be square, got %dx%d", f.Width, f.Height)
	}
	if f.Width <= 0 {
		return world.World{}, fmt.Errorf("grid size must be positive, got %d", f.Width)
	}

	w := world.New(f.Width)
	for _, p := range f.Placements {
		loc := model.NewLocation(p.Row, p.Col)
		if !w.InBounds(loc) {
			return world.World{}, fmt.Errorf("%s at (%d,%d) is outside the %dx%d grid",
				p.Kind, p.Row, p.Col, f.Width, f.Height)
		}
		if !w.Get(loc).IsEmpty() {
			return world.World{}, fmt.Errorf("duplicate placement at (%d,%d)", p.Row, p.Col)
		}

		var tile model.Tile
		switch p.Kind {
		case "life":
			tile = model.NewLife(p.Value)
		case "resource":
			tile = model.NewResource(p.Value)
		case "egg":
			if p.Value < 1 {
				return world.World{}, fmt.Errorf("egg at (%d,%d) needs a positive hatch countdown, got %d",
					p.Row, p.Col, p.Value)
			}
			tile = model.NewEgg(p.Value)
		}
		w.Put(loc, tile)
	}
	return w, nil
}
