package maze

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"chosenoffset.com/chomper/internal/core/geom"
	"chosenoffset.com/chomper/internal/entity"
)

//go:embed classic.yaml
var classicYAML []byte

// CellRef addresses a maze cell.
type CellRef struct {
	Col int `yaml:"col"`
	Row int `yaml:"row"`
}

// AdversarySpawn defines where an adversary starts and where it is heading.
type AdversarySpawn struct {
	Col       int    `yaml:"col"`
	Row       int    `yaml:"row"`
	Color     string `yaml:"color"`
	Direction string `yaml:"direction"`
}

// Definition is a maze as stored on disk.
type Definition struct {
	Name        string           `yaml:"name"`
	CellSize    float64          `yaml:"cell_size"`
	AvatarSpawn CellRef          `yaml:"avatar_spawn"`
	Adversaries []AdversarySpawn `yaml:"adversaries"`
	Rows        []string         `yaml:"rows"`

	grid Grid
}

// Classic returns the built-in maze.
func Classic() *Definition {
	def, err := Parse(classicYAML, "classic.yaml")
	if err != nil {
		// The embedded file is covered by tests.
		panic(err)
	}
	return def
}

// LoadFile reads and validates a maze definition from disk.
func LoadFile(path string) (*Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read maze file %s: %w", path, err)
	}
	return Parse(data, path)
}

// Parse decodes and validates a maze definition. source is only used in errors.
func Parse(data []byte, source string) (*Definition, error) {
	def := &Definition{CellSize: entity.CellSize}
	if err := yaml.Unmarshal(data, def); err != nil {
		return nil, fmt.Errorf("failed to parse maze file %s: %w", source, err)
	}

	def.grid = make(Grid, len(def.Rows))
	for i, row := range def.Rows {
		def.grid[i] = []rune(row)
	}

	if err := def.validate(); err != nil {
		return nil, fmt.Errorf("invalid maze data in %s: %w", source, err)
	}

	return def, nil
}

// validate checks dimensions and that every spawn lies inside the grid.
func (d *Definition) validate() error {
	if d.CellSize <= 0 {
		return fmt.Errorf("invalid cell size: %v", d.CellSize)
	}

	if len(d.grid) == 0 {
		return fmt.Errorf("maze has no rows")
	}

	width := len(d.grid[0])
	if width == 0 {
		return fmt.Errorf("maze has an empty first row")
	}
	for y, row := range d.grid {
		if len(row) != width {
			return fmt.Errorf("rows width mismatch at row %d: expected %d, got %d", y, width, len(row))
		}
	}

	if !d.inBounds(d.AvatarSpawn.Col, d.AvatarSpawn.Row) {
		return fmt.Errorf("avatar spawn out of bounds: (%d, %d)", d.AvatarSpawn.Col, d.AvatarSpawn.Row)
	}

	for i, spawn := range d.Adversaries {
		if !d.inBounds(spawn.Col, spawn.Row) {
			return fmt.Errorf("adversary %d spawn out of bounds: (%d, %d)", i, spawn.Col, spawn.Row)
		}
		if _, err := entity.ParseDirection(spawn.Direction); err != nil {
			return fmt.Errorf("adversary %d: %w", i, err)
		}
	}

	return nil
}

func (d *Definition) inBounds(col, row int) bool {
	return row >= 0 && row < len(d.grid) && col >= 0 && col < len(d.grid[row])
}

// Grid returns the parsed symbol grid.
func (d *Definition) Grid() Grid {
	return d.grid
}

// Width returns the number of columns.
func (d *Definition) Width() int {
	if len(d.grid) == 0 {
		return 0
	}
	return len(d.grid[0])
}

// Height returns the number of rows.
func (d *Definition) Height() int {
	return len(d.grid)
}

// PixelSize returns the maze extent in maze units.
func (d *Definition) PixelSize() (w, h float64) {
	return float64(d.Width()) * d.CellSize, float64(d.Height()) * d.CellSize
}

// AvatarStart returns the centre of the avatar's spawn cell.
func (d *Definition) AvatarStart() geom.Vec {
	return CellCenter(d.AvatarSpawn.Col, d.AvatarSpawn.Row, d.CellSize)
}

// SpawnAdversaries creates one adversary per spawn definition.
func (d *Definition) SpawnAdversaries(speed float64) []*entity.Adversary {
	adversaries := make([]*entity.Adversary, 0, len(d.Adversaries))
	for i, spawn := range d.Adversaries {
		// validate has already rejected unknown directions.
		dir, _ := entity.ParseDirection(spawn.Direction)
		pos := CellCenter(spawn.Col, spawn.Row, d.CellSize)
		adversaries = append(adversaries, entity.NewAdversary(i+1, pos, spawn.Color, dir, speed))
	}
	return adversaries
}
