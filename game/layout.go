package game

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var ErrUnknownLayout = errors.New("unknown layout")

// Layout is the static part of a game: walls and the initial placement of everything else.
type Layout struct {
	Name        string
	Width       int
	Height      int
	walls       []bool // Indexed by y*Width+x
	Food        []Position
	Capsules    []Position
	PacmanStart Position
	GhostStarts []Position
}

// NewLayout builds a layout from rows of cells: '%' wall, '.' food, 'o' capsule, 'P' Pacman,
// 'G' ghost, anything else empty.
func NewLayout(name string, rows []string) (*Layout, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("layout %s: no rows", name)
	}
	width := len(rows[0])
	l := &Layout{
		Name:   name,
		Width:  width,
		Height: len(rows),
		walls:  make([]bool, width*len(rows)),
	}

	pacmen := 0
	for y, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("layout %s: row %d has width %d, want %d", name, y, len(row), width)
		}
		for x, cell := range row {
			p := Position{x, y}
			switch cell {
			case '%':
				l.walls[l.index(p)] = true
			case '.':
				l.Food = append(l.Food, p)
			case 'o':
				l.Capsules = append(l.Capsules, p)
			case 'P':
				l.PacmanStart = p
				pacmen++
			case 'G':
				l.GhostStarts = append(l.GhostStarts, p)
			}
		}
	}
	if pacmen != 1 {
		return nil, fmt.Errorf("layout %s: found %d Pacman start cells, want 1", name, pacmen)
	}
	return l, nil
}

// IsWall reports whether p is a wall. Cells outside the grid count as walls.
func (l *Layout) IsWall(p Position) bool {
	if p.X < 0 || p.Y < 0 || p.X >= l.Width || p.Y >= l.Height {
		return true
	}
	return l.walls[l.index(p)]
}

func (l *Layout) index(p Position) int {
	return p.Y*l.Width + p.X
}

// Exits lists the moving actions that do not run into a wall, in Directions order.
func (l *Layout) Exits(p Position) []Action {
	exits := make([]Action, 0, len(Directions))
	for _, dir := range Directions {
		if !l.IsWall(p.Move(dir)) {
			exits = append(exits, dir)
		}
	}
	return exits
}

// LoadLayout returns one of the compiled-in layouts.
func LoadLayout(name string) (*Layout, error) {
	rows, ok := builtinLayouts[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownLayout, name)
	}
	return NewLayout(name, rows)
}

// LayoutNames lists the compiled-in layouts in sorted order.
func LayoutNames() []string {
	names := make([]string, 0, len(builtinLayouts))
	for name := range builtinLayouts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (l *Layout) String() string {
	var b strings.Builder
	for y := 0; y < l.Height; y++ {
		for x := 0; x < l.Width; x++ {
			if l.walls[l.index(Position{x, y})] {
				b.WriteByte('%')
			} else {
				b.WriteByte(' ')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

var builtinLayouts = map[string][]string{
	"tinyMaze": {
		"%%%%%%%",
		"%    P%",
		"% %%% %",
		"%  %  %",
		"%%   %%",
		"%. %%%%",
		"%%%%%%%",
	},
	"testClassic": {
		"%%%%%",
		"% . %",
		"%.G.%",
		"% . %",
		"%. .%",
		"%   %",
		"%  .%",
		"%   %",
		"%P .%",
		"%%%%%",
	},
	"trappedClassic": {
		"%%%%%%%%",
		"%   P G%",
		"%G%%%%%%",
		"%....  %",
		"%%%%%%%%",
	},
	"smallClassic": {
		"%%%%%%%%%%%%%%%%%%%%",
		"%......%G  G%......%",
		"%.%%...%%  %%...%%.%",
		"%.%o.%........%.o%.%",
		"%.%%.%.%%%%%%.%.%%.%",
		"%........P.........%",
		"%%%%%%%%%%%%%%%%%%%%",
	},
	"capsuleClassic": {
		"%%%%%%%%%%%%%%%%%%%",
		"%G.       G   ....%",
		"%.% % %%%%%% %.%%.%",
		"%.%o% %   o% %.o%.%",
		"%.%%%.%  %%% %..%.%",
		"%.....  P    %..%G%",
		"%%%%%%%%%%%%%%%%%%%",
	},
}
