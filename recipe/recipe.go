// Package recipe loads declarative transform descriptions.
//
// A recipe is a YAML list of steps, folded in order into a single
// [xform.Matrix] starting from the identity:
//
//   - rotate: 1.5707963267948966
//   - translate: {dx: 1, dy: 0}
//   - scale: 3
//   - offset: {dx: -2, dy: 5}
//   - multiply: [1, 0, 0, 0, 1, 0]
//
// Steps can also be built with the constructors in this package and mixed
// freely with parsed ones.
package recipe

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"deedles.dev/xform"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
	"gopkg.in/yaml.v3"
)

var (
	// ErrUnknownStep is returned for a step whose name is not recognized.
	ErrUnknownStep = errors.New("unknown step")

	// ErrBadStep is returned for a step whose shape or arguments are
	// invalid.
	ErrBadStep = errors.New("malformed step")
)

// A Step is one entry of a [Recipe]. In YAML it is a single-key mapping
// naming the operation, such as
//
//   - scale: 3
//
// The zero Step is invalid; get Steps from parsing or from the
// constructors.
type Step struct {
	apply func(m *xform.Matrix)
}

// Identity returns a step that resets the transform.
func Identity() Step {
	return Step{apply: func(m *xform.Matrix) { m.Identity() }}
}

// Rotate returns a step that rotates by angle radians.
func Rotate(angle float64) Step {
	return Step{apply: func(m *xform.Matrix) { m.Rotate(angle) }}
}

// Translate returns a step that translates by (dx, dy) in the transform's
// own frame.
func Translate(dx, dy float64) Step {
	return Step{apply: func(m *xform.Matrix) { m.Translate(dx, dy) }}
}

// Offset returns a step that adds (dx, dy) directly to the translation
// terms.
func Offset(dx, dy float64) Step {
	return Step{apply: func(m *xform.Matrix) { m.Offset(dx, dy) }}
}

// Scale returns a step that multiplies every coefficient by factor.
func Scale(factor float64) Step {
	return Step{apply: func(m *xform.Matrix) { m.Scale(factor) }}
}

// Multiply returns a step that folds o into the transform.
func Multiply(o xform.Matrix) Step {
	return Step{apply: func(m *xform.Matrix) { m.Multiply(o) }}
}

// Invert returns a step that inverts the transform.
func Invert() Step {
	return Step{apply: func(m *xform.Matrix) { m.Invert() }}
}

var parsers = map[string]func(*yaml.Node) (Step, error){
	"rotate":    parseRotate,
	"translate": parseTranslate,
	"offset":    parseOffset,
	"scale":     parseScale,
	"multiply":  parseMultiply,
	"identity":  parseFlag("identity", Identity),
	"invert":    parseFlag("invert", Invert),
}

func stepNames() string {
	names := maps.Keys(parsers)
	slices.Sort(names)
	return strings.Join(names, ", ")
}

func (s *Step) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode || len(value.Content) != 2 {
		return fmt.Errorf("line %d: %w: a step is a single-key mapping", value.Line, ErrBadStep)
	}

	key, arg := value.Content[0], value.Content[1]
	parse, ok := parsers[key.Value]
	if !ok {
		return fmt.Errorf("line %d: %w %q, want one of %s", key.Line, ErrUnknownStep, key.Value, stepNames())
	}

	step, err := parse(arg)
	if err != nil {
		return fmt.Errorf("line %d: %s: %w", key.Line, key.Value, err)
	}
	*s = step
	return nil
}

func parseRotate(value *yaml.Node) (Step, error) {
	var angle float64
	if err := value.Decode(&angle); err != nil {
		return Step{}, err
	}
	return Rotate(angle), nil
}

func parseScale(value *yaml.Node) (Step, error) {
	var factor float64
	if err := value.Decode(&factor); err != nil {
		return Step{}, err
	}
	return Scale(factor), nil
}

func parseDelta(value *yaml.Node) (dx, dy float64, err error) {
	var d struct {
		Dx float64 `yaml:"dx"`
		Dy float64 `yaml:"dy"`
	}
	if err := value.Decode(&d); err != nil {
		return 0, 0, err
	}
	return d.Dx, d.Dy, nil
}

func parseTranslate(value *yaml.Node) (Step, error) {
	dx, dy, err := parseDelta(value)
	if err != nil {
		return Step{}, err
	}
	return Translate(dx, dy), nil
}

func parseOffset(value *yaml.Node) (Step, error) {
	dx, dy, err := parseDelta(value)
	if err != nil {
		return Step{}, err
	}
	return Offset(dx, dy), nil
}

func parseMultiply(value *yaml.Node) (Step, error) {
	var c []float64
	if err := value.Decode(&c); err != nil {
		return Step{}, err
	}
	if len(c) != 6 {
		return Step{}, fmt.Errorf("%w: multiply takes 6 coefficients, got %d", ErrBadStep, len(c))
	}
	var o xform.Matrix
	o.SetCoefficients([6]float64(c))
	return Multiply(o), nil
}

func parseFlag(name string, step func() Step) func(*yaml.Node) (Step, error) {
	return func(value *yaml.Node) (Step, error) {
		var on bool
		if err := value.Decode(&on); err != nil {
			return Step{}, err
		}
		if !on {
			return Step{}, fmt.Errorf("%w: %s must be true", ErrBadStep, name)
		}
		return step(), nil
	}
}

// A Recipe is an ordered list of steps.
type Recipe []Step

// Matrix folds the recipe into a single transform, applying each step in
// order starting from the identity.
func (r Recipe) Matrix() (xform.Matrix, error) {
	var m xform.Matrix
	m.Identity()
	for i, s := range r {
		if s.apply == nil {
			return xform.Matrix{}, fmt.Errorf("step %d: %w", i+1, ErrBadStep)
		}
		s.apply(&m)
	}
	return m, nil
}

// Parse decodes a YAML recipe.
func Parse(data []byte) (Recipe, error) {
	var r Recipe
	if err := yaml.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("recipe: parse: %w", err)
	}
	return r, nil
}

// Load reads and decodes a YAML recipe file.
func Load(filename string) (Recipe, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("recipe: load %s: %w", filename, err)
	}
	var r Recipe
	if err := yaml.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("recipe: unmarshal %s: %w", filename, err)
	}
	return r, nil
}
